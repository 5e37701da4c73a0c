package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"jobpulse/internal/model"
)

func TestRemoteOKFetch_SkipsNoticeAndBrokenEntries(t *testing.T) {
	// First element is RemoteOK's legal notice, second is broken, third is real.
	payload := `[
		{"legal": "API terms of service..."},
		"not an object",
		{
			"position": "Junior Go Developer",
			"company": "Gopher Inc",
			"description": "<b>Build APIs</b> in Go and Docker",
			"url": "https://remoteok.com/jobs/42",
			"salary": "",
			"location": "",
			"date": "2026-08-02T12:00:00Z",
			"tags": ["golang", "backend"]
		}
	]`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(payload))
	}))
	defer srv.Close()

	a := NewRemoteOKAdapter(srv.Client())
	a.baseURL = srv.URL

	jobs, err := a.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("expected 1 job, got %d", len(jobs))
	}

	j := jobs[0]
	if j.Title != "Junior Go Developer" {
		t.Errorf("title = %s", j.Title)
	}
	if j.Location != "Remote" {
		t.Errorf("location = %s, want Remote default", j.Location)
	}
	if j.Description != "Build APIs in Go and Docker" {
		t.Errorf("description = %q, want HTML stripped", j.Description)
	}
	if j.PostedAt == nil || j.PostedAt.Day() != 2 {
		t.Errorf("unexpected PostedAt: %v", j.PostedAt)
	}
}

func TestRemoteOKFetch_StableFingerprint(t *testing.T) {
	// The same vacancy must hash to the same fingerprint on every fetch.
	fp1 := model.ContentFingerprint("Junior Go Developer", "Gopher Inc")
	fp2 := model.ContentFingerprint("Junior Go Developer", "Gopher Inc")
	if fp1 != fp2 {
		t.Fatal("fingerprint is not stable across fetches")
	}

	other := model.ContentFingerprint("Senior Go Developer", "Gopher Inc")
	if fp1 == other {
		t.Fatal("distinct vacancies should not share a fingerprint")
	}
}

func TestRemoteOKFetch_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	a := NewRemoteOKAdapter(srv.Client())
	a.baseURL = srv.URL

	if _, err := a.Fetch(context.Background()); err == nil {
		t.Fatal("expected error for HTTP 500, got nil")
	}
}
