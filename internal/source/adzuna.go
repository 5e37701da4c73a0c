package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"jobpulse/internal/model"
)

const adzunaBaseURL = "https://api.adzuna.com/v1/api/jobs"

// Countries queried on every fetch; each is a separate API call.
var adzunaCountries = []string{"us", "gb"}

// adzunaJob represents a single result in the Adzuna search response.
type adzunaJob struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	RedirectURL string         `json:"redirect_url"`
	Company     adzunaCompany  `json:"company"`
	Location    adzunaLocation `json:"location"`
	SalaryMin   float64        `json:"salary_min"`
	SalaryMax   float64        `json:"salary_max"`
	Created     string         `json:"created"`
	Contract    string         `json:"contract_type"`
}

type adzunaCompany struct {
	DisplayName string `json:"display_name"`
}

type adzunaLocation struct {
	DisplayName string `json:"display_name"`
}

// adzunaResponse is the top-level Adzuna search response. Results stay raw so
// one malformed result is skipped without losing the rest of the page.
type adzunaResponse struct {
	Results []json.RawMessage `json:"results"`
}

// AdzunaAdapter fetches jobs from the Adzuna search API across the configured
// countries. Requires an app ID and key.
type AdzunaAdapter struct {
	baseURL string
	appID   string
	appKey  string
	client  *http.Client
}

// NewAdzunaAdapter creates a new Adzuna adapter with the given credentials.
func NewAdzunaAdapter(appID, appKey string, client *http.Client) *AdzunaAdapter {
	return &AdzunaAdapter{baseURL: adzunaBaseURL, appID: appID, appKey: appKey, client: client}
}

func (a *AdzunaAdapter) Name() string { return "adzuna" }

// Fetch queries each country page in turn. A failing country does not discard
// the results of the others; the first error is returned only when every
// country failed.
func (a *AdzunaAdapter) Fetch(ctx context.Context) ([]model.Job, error) {
	var jobs []model.Job
	var firstErr error

	for _, country := range adzunaCountries {
		batch, err := a.fetchCountry(ctx, country)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		jobs = append(jobs, batch...)
	}

	if len(jobs) == 0 && firstErr != nil {
		return nil, firstErr
	}
	return jobs, nil
}

func (a *AdzunaAdapter) fetchCountry(ctx context.Context, country string) ([]model.Job, error) {
	params := url.Values{}
	params.Set("app_id", a.appID)
	params.Set("app_key", a.appKey)
	params.Set("results_per_page", "30")
	params.Set("what", "developer programmer engineer")
	params.Set("where", "remote")
	params.Set("sort_by", "date")

	endpoint := fmt.Sprintf("%s/%s/search/1?%s", a.baseURL, country, params.Encode())

	var resp adzunaResponse
	if err := getJSON(ctx, a.client, endpoint, nil, &resp); err != nil {
		return nil, fmt.Errorf("adzuna fetch for %s: %w", country, err)
	}

	jobs := make([]model.Job, 0, len(resp.Results))
	for _, entry := range resp.Results {
		var aj adzunaJob
		if err := json.Unmarshal(entry, &aj); err != nil {
			continue
		}
		if aj.Title == "" || aj.RedirectURL == "" {
			continue
		}

		desc := extractText(aj.Description)
		location := aj.Location.DisplayName
		if location == "" {
			location = "Remote"
		}

		job := model.Job{
			Fingerprint: model.SourceFingerprint(a.Name(), aj.ID),
			Title:       aj.Title,
			Company:     aj.Company.DisplayName,
			Location:    location,
			Salary:      formatSalaryRange(aj.SalaryMin, aj.SalaryMax, "USD"),
			Skills:      extractSkills(nil, aj.Title+" "+desc),
			URL:         aj.RedirectURL,
			Source:      a.Name(),
			RawText:     aj.Title + " " + desc,
			Description: truncate(desc, maxDescriptionLen),
			PostedAt:    parseTimestamp(aj.Created),
			Employment:  aj.Contract,
		}
		jobs = append(jobs, job)
	}

	return jobs, nil
}
