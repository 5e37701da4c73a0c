package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"jobpulse/internal/model"
)

const remotiveBaseURL = "https://remotive.com/api/remote-jobs"

// remotiveJob represents a single job in the Remotive API response.
type remotiveJob struct {
	ID              int64    `json:"id"`
	Title           string   `json:"title"`
	CompanyName     string   `json:"company_name"`
	Description     string   `json:"description"`
	URL             string   `json:"url"`
	Salary          string   `json:"salary"`
	Location        string   `json:"candidate_required_location"`
	PublicationDate string   `json:"publication_date"`
	JobType         string   `json:"job_type"`
	Tags            []string `json:"tags"`
}

// remotiveResponse is the top-level Remotive API response. Jobs stay raw so
// a single malformed listing can be skipped without failing the whole batch.
type remotiveResponse struct {
	Jobs []json.RawMessage `json:"jobs"`
}

// RemotiveAdapter fetches jobs from the Remotive public API.
type RemotiveAdapter struct {
	baseURL string
	client  *http.Client
}

// NewRemotiveAdapter creates a new Remotive adapter.
func NewRemotiveAdapter(client *http.Client) *RemotiveAdapter {
	return &RemotiveAdapter{baseURL: remotiveBaseURL, client: client}
}

func (a *RemotiveAdapter) Name() string { return "remotive" }

// Fetch retrieves all jobs from Remotive and normalizes them into Jobs.
// Malformed or incomplete listings are skipped individually.
func (a *RemotiveAdapter) Fetch(ctx context.Context) ([]model.Job, error) {
	var resp remotiveResponse
	if err := getJSON(ctx, a.client, a.baseURL, nil, &resp); err != nil {
		return nil, fmt.Errorf("remotive fetch: %w", err)
	}

	jobs := make([]model.Job, 0, len(resp.Jobs))
	for _, entry := range resp.Jobs {
		var rj remotiveJob
		if err := json.Unmarshal(entry, &rj); err != nil {
			continue
		}
		if rj.Title == "" || rj.URL == "" {
			continue
		}

		desc := extractText(rj.Description)
		location := rj.Location
		if location == "" {
			location = "Remote"
		}

		job := model.Job{
			Fingerprint: model.SourceFingerprint(a.Name(), strconv.FormatInt(rj.ID, 10)),
			Title:       rj.Title,
			Company:     rj.CompanyName,
			Location:    location,
			Salary:      rj.Salary,
			Skills:      extractSkills(rj.Tags, rj.Title+" "+desc),
			URL:         rj.URL,
			Source:      a.Name(),
			RawText:     rj.Title + " " + desc,
			Description: truncate(desc, maxDescriptionLen),
			PostedAt:    parseTimestamp(rj.PublicationDate),
			Employment:  rj.JobType,
		}
		jobs = append(jobs, job)
	}

	return jobs, nil
}
