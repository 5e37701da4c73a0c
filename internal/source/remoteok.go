package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"jobpulse/internal/model"
)

const remoteOKBaseURL = "https://remoteok.com/api"

// remoteOKJob represents a single entry in the RemoteOK API response.
type remoteOKJob struct {
	Position     string   `json:"position"`
	PositionType string   `json:"position_type"`
	Company      string   `json:"company"`
	Description  string   `json:"description"`
	URL          string   `json:"url"`
	Salary       string   `json:"salary"`
	Location     string   `json:"location"`
	Date         string   `json:"date"`
	Tags         []string `json:"tags"`
}

// RemoteOKAdapter fetches jobs from the RemoteOK public API.
type RemoteOKAdapter struct {
	baseURL string
	client  *http.Client
}

// NewRemoteOKAdapter creates a new RemoteOK adapter.
func NewRemoteOKAdapter(client *http.Client) *RemoteOKAdapter {
	return &RemoteOKAdapter{baseURL: remoteOKBaseURL, client: client}
}

func (a *RemoteOKAdapter) Name() string { return "remoteok" }

// Fetch retrieves the RemoteOK feed and normalizes it into Jobs.
// The response is a JSON array whose first element is a legal notice, not a
// job. Entries that fail to decode are skipped individually so one broken
// listing does not lose the batch.
func (a *RemoteOKAdapter) Fetch(ctx context.Context) ([]model.Job, error) {
	var entries []json.RawMessage
	if err := getJSON(ctx, a.client, a.baseURL, nil, &entries); err != nil {
		return nil, fmt.Errorf("remoteok fetch: %w", err)
	}

	var jobs []model.Job
	for i, entry := range entries {
		if i == 0 {
			continue
		}

		var rj remoteOKJob
		if err := json.Unmarshal(entry, &rj); err != nil {
			continue
		}
		if rj.Position == "" || rj.URL == "" {
			continue
		}

		desc := extractText(rj.Description)
		location := rj.Location
		if location == "" {
			location = "Remote"
		}

		job := model.Job{
			// RemoteOK recycles slots; title+company is the stable identity here.
			Fingerprint: model.ContentFingerprint(rj.Position, rj.Company),
			Title:       rj.Position,
			Company:     rj.Company,
			Location:    location,
			Salary:      rj.Salary,
			Skills:      extractSkills(rj.Tags, rj.Position+" "+desc),
			URL:         rj.URL,
			Source:      a.Name(),
			RawText:     rj.Position + " " + desc,
			Description: truncate(desc, maxDescriptionLen),
			PostedAt:    parseTimestamp(rj.Date),
			Employment:  rj.PositionType,
		}
		jobs = append(jobs, job)
	}

	return jobs, nil
}
