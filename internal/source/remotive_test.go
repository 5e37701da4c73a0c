package source

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"jobpulse/internal/model"
)

func TestRemotiveFetch_Success(t *testing.T) {
	payload := `{
		"jobs": [
			{
				"id": 101,
				"title": "Junior Python Developer",
				"company_name": "Acme",
				"description": "<p>Django and PostgreSQL work.</p>",
				"url": "https://remotive.com/jobs/101",
				"salary": "$50k-$70k",
				"candidate_required_location": "Worldwide",
				"publication_date": "2026-08-01T09:00:00",
				"job_type": "full_time",
				"tags": ["python", "django"]
			},
			{
				"id": 102,
				"title": "QA Engineer",
				"company_name": "Beta Inc",
				"description": "Manual testing.",
				"url": "https://remotive.com/jobs/102",
				"candidate_required_location": "",
				"publication_date": ""
			}
		]
	}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(payload))
	}))
	defer srv.Close()

	a := NewRemotiveAdapter(srv.Client())
	a.baseURL = srv.URL

	jobs, err := a.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}

	j := jobs[0]
	if j.Fingerprint != "remotive:101" {
		t.Errorf("fingerprint = %s, want remotive:101", j.Fingerprint)
	}
	if j.Title != "Junior Python Developer" || j.Company != "Acme" {
		t.Errorf("unexpected job: %+v", j)
	}
	if j.Description != "Django and PostgreSQL work." {
		t.Errorf("description = %q, want stripped HTML", j.Description)
	}
	if j.RawText != "Junior Python Developer Django and PostgreSQL work." {
		t.Errorf("raw text = %q", j.RawText)
	}
	if j.Location != "Worldwide" {
		t.Errorf("location = %s", j.Location)
	}
	if j.Employment != "full_time" {
		t.Errorf("employment = %q, want full_time", j.Employment)
	}

	// Second job has an empty location; adapter defaults it.
	if jobs[1].Location != "Remote" {
		t.Errorf("empty location should default to Remote, got %s", jobs[1].Location)
	}
}

func TestRemotiveFetch_SkipsIncompleteListings(t *testing.T) {
	payload := `{
		"jobs": [
			{"id": 1, "title": "", "url": "https://remotive.com/jobs/1"},
			{"id": 2, "title": "Developer", "url": ""},
			{"id": 3, "title": "Developer", "company_name": "Ok Co", "url": "https://remotive.com/jobs/3"}
		]
	}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(payload))
	}))
	defer srv.Close()

	a := NewRemotiveAdapter(srv.Client())
	a.baseURL = srv.URL

	jobs, err := a.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 1 || jobs[0].Fingerprint != "remotive:3" {
		t.Fatalf("expected only the complete listing to survive, got %+v", jobs)
	}
}

func TestRemotiveFetch_SkipsMalformedListing(t *testing.T) {
	// The middle listing has tags as a string instead of an array; it must be
	// dropped on its own while the surrounding listings survive.
	payload := `{
		"jobs": [
			{"id": 1, "title": "Backend Developer", "company_name": "One", "url": "https://remotive.com/jobs/1"},
			{"id": 2, "title": "Frontend Developer", "company_name": "Two", "url": "https://remotive.com/jobs/2", "tags": "python"},
			{"id": 3, "title": "Data Engineer", "company_name": "Three", "url": "https://remotive.com/jobs/3"}
		]
	}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(payload))
	}))
	defer srv.Close()

	a := NewRemotiveAdapter(srv.Client())
	a.baseURL = srv.URL

	jobs, err := a.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d: %+v", len(jobs), jobs)
	}
	if jobs[0].Fingerprint != "remotive:1" || jobs[1].Fingerprint != "remotive:3" {
		t.Errorf("wrong listings survived: %s, %s", jobs[0].Fingerprint, jobs[1].Fingerprint)
	}
}

func TestRemotiveFetch_MalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not valid json`))
	}))
	defer srv.Close()

	a := NewRemotiveAdapter(srv.Client())
	a.baseURL = srv.URL

	if _, err := a.Fetch(context.Background()); err == nil {
		t.Fatal("expected error for malformed JSON, got nil")
	}
}

func TestRemotiveFetch_RateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	a := NewRemotiveAdapter(srv.Client())
	a.baseURL = srv.URL

	_, err := a.Fetch(context.Background())
	var httpErr *model.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if httpErr.StatusCode != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", httpErr.StatusCode)
	}
	if httpErr.RetryAfter.Seconds() != 30 {
		t.Errorf("retry-after = %v, want 30s", httpErr.RetryAfter)
	}
}
