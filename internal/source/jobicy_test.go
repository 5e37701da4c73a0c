package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestJobicyFetch_Success(t *testing.T) {
	payload := `{
		"jobs": [
			{
				"id": 201,
				"jobTitle": "Junior Go Developer",
				"companyName": "Gamma",
				"jobExcerpt": "<p>Write services in Go.</p>",
				"url": "https://jobicy.com/jobs/201",
				"jobGeo": "Europe",
				"jobType": "full-time",
				"jobPosted": "2026-08-10"
			},
			{
				"id": 202,
				"jobTitle": "Support Engineer",
				"companyName": "Delta",
				"jobExcerpt": "Help customers.",
				"url": "https://jobicy.com/jobs/202",
				"jobGeo": ""
			}
		]
	}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(payload))
	}))
	defer srv.Close()

	a := NewJobicyAdapter(srv.Client())
	a.baseURL = srv.URL

	jobs, err := a.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}

	j := jobs[0]
	if j.Fingerprint != "jobicy:201" {
		t.Errorf("fingerprint = %s, want jobicy:201", j.Fingerprint)
	}
	if j.Description != "Write services in Go." {
		t.Errorf("description = %q, want stripped HTML", j.Description)
	}
	if j.Employment != "full-time" {
		t.Errorf("employment = %q, want full-time", j.Employment)
	}
	if j.PostedAt == nil {
		t.Error("expected posted date to be parsed")
	}
	if jobs[1].Location != "Remote" {
		t.Errorf("empty geo should default to Remote, got %s", jobs[1].Location)
	}
}

func TestJobicyFetch_SkipsMalformedListing(t *testing.T) {
	// The first listing carries a string id; only it should be dropped.
	payload := `{
		"jobs": [
			{"id": "not-a-number", "jobTitle": "Broken", "url": "https://jobicy.com/jobs/x"},
			{"id": 2, "jobTitle": "Developer", "companyName": "Ok Co", "url": "https://jobicy.com/jobs/2"}
		]
	}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(payload))
	}))
	defer srv.Close()

	a := NewJobicyAdapter(srv.Client())
	a.baseURL = srv.URL

	jobs, err := a.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 1 || jobs[0].Fingerprint != "jobicy:2" {
		t.Fatalf("expected only the well-formed listing to survive, got %+v", jobs)
	}
}
