package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"jobpulse/internal/model"
)

const jobicyBaseURL = "https://jobicy.com/api/v2/remote-jobs?count=50"

// jobicyJob represents a single job in the Jobicy API response.
type jobicyJob struct {
	ID          int64  `json:"id"`
	JobTitle    string `json:"jobTitle"`
	CompanyName string `json:"companyName"`
	JobExcerpt  string `json:"jobExcerpt"`
	URL         string `json:"url"`
	JobGeo      string `json:"jobGeo"`
	JobType     string `json:"jobType"`
	JobPosted   string `json:"jobPosted"`
}

// jobicyResponse is the top-level Jobicy API response. Jobs stay raw so one
// malformed listing cannot sink the rest of the batch.
type jobicyResponse struct {
	Jobs []json.RawMessage `json:"jobs"`
}

// JobicyAdapter fetches jobs from the Jobicy public API.
type JobicyAdapter struct {
	baseURL string
	client  *http.Client
}

// NewJobicyAdapter creates a new Jobicy adapter.
func NewJobicyAdapter(client *http.Client) *JobicyAdapter {
	return &JobicyAdapter{baseURL: jobicyBaseURL, client: client}
}

func (a *JobicyAdapter) Name() string { return "jobicy" }

// Fetch retrieves jobs from Jobicy and normalizes them into Jobs.
// Jobicy only returns a short excerpt, so descriptions are thin but still
// enough for keyword classification.
func (a *JobicyAdapter) Fetch(ctx context.Context) ([]model.Job, error) {
	var resp jobicyResponse
	if err := getJSON(ctx, a.client, a.baseURL, nil, &resp); err != nil {
		return nil, fmt.Errorf("jobicy fetch: %w", err)
	}

	jobs := make([]model.Job, 0, len(resp.Jobs))
	for _, entry := range resp.Jobs {
		var jj jobicyJob
		if err := json.Unmarshal(entry, &jj); err != nil {
			continue
		}
		if jj.JobTitle == "" || jj.URL == "" {
			continue
		}

		desc := extractText(jj.JobExcerpt)
		location := jj.JobGeo
		if location == "" {
			location = "Remote"
		}

		job := model.Job{
			Fingerprint: model.SourceFingerprint(a.Name(), strconv.FormatInt(jj.ID, 10)),
			Title:       jj.JobTitle,
			Company:     jj.CompanyName,
			Location:    location,
			Skills:      extractSkills(nil, jj.JobTitle+" "+desc),
			URL:         jj.URL,
			Source:      a.Name(),
			RawText:     jj.JobTitle + " " + desc,
			Description: truncate(desc, maxDescriptionLen),
			PostedAt:    parseTimestamp(jj.JobPosted),
			Employment:  jj.JobType,
		}
		jobs = append(jobs, job)
	}

	return jobs, nil
}
