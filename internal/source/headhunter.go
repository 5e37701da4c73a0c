package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"jobpulse/internal/model"
)

const headHunterBaseURL = "https://api.hh.ru/vacancies"

// hhVacancy represents a single item in the HeadHunter API response.
type hhVacancy struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	AlternateURL string       `json:"alternate_url"`
	PublishedAt  string       `json:"published_at"`
	Employer     hhEmployer   `json:"employer"`
	Salary       *hhSalary    `json:"salary"`
	Snippet      hhSnippet    `json:"snippet"`
	Area         hhArea       `json:"area"`
	Employment   hhEmployment `json:"employment"`
}

type hhEmployer struct {
	Name string `json:"name"`
}

type hhEmployment struct {
	Name string `json:"name"`
}

type hhSalary struct {
	From     float64 `json:"from"`
	To       float64 `json:"to"`
	Currency string  `json:"currency"`
}

type hhSnippet struct {
	Requirement    string `json:"requirement"`
	Responsibility string `json:"responsibility"`
}

type hhArea struct {
	Name string `json:"name"`
}

// hhResponse is the top-level HeadHunter API response. Items stay raw so a
// malformed vacancy is skipped on its own instead of failing the fetch.
type hhResponse struct {
	Items []json.RawMessage `json:"items"`
}

// HeadHunterAdapter fetches vacancies from the HeadHunter public API.
// No credentials required.
type HeadHunterAdapter struct {
	baseURL string
	client  *http.Client
}

// NewHeadHunterAdapter creates a new HeadHunter adapter.
func NewHeadHunterAdapter(client *http.Client) *HeadHunterAdapter {
	return &HeadHunterAdapter{baseURL: headHunterBaseURL, client: client}
}

func (a *HeadHunterAdapter) Name() string { return "headhunter" }

// Fetch retrieves vacancies from HeadHunter and normalizes them into Jobs.
// The snippet requirement and responsibility fields stand in for the full
// description, which the list endpoint does not return.
func (a *HeadHunterAdapter) Fetch(ctx context.Context) ([]model.Job, error) {
	params := url.Values{}
	params.Set("text", "программист разработчик developer")
	params.Set("per_page", "50")
	params.Set("page", "0")

	var resp hhResponse
	if err := getJSON(ctx, a.client, a.baseURL+"?"+params.Encode(), nil, &resp); err != nil {
		return nil, fmt.Errorf("headhunter fetch: %w", err)
	}

	jobs := make([]model.Job, 0, len(resp.Items))
	for _, entry := range resp.Items {
		var item hhVacancy
		if err := json.Unmarshal(entry, &item); err != nil {
			continue
		}
		if item.Name == "" || item.AlternateURL == "" {
			continue
		}

		desc := extractText(item.Snippet.Requirement + " " + item.Snippet.Responsibility)
		location := item.Area.Name
		if location == "" {
			location = "Удалённо"
		}

		var salary string
		if item.Salary != nil {
			currency := item.Salary.Currency
			if currency == "" {
				currency = "RUB"
			}
			salary = formatSalaryRange(item.Salary.From, item.Salary.To, currency)
		}

		job := model.Job{
			Fingerprint: model.SourceFingerprint(a.Name(), item.ID),
			Title:       item.Name,
			Company:     item.Employer.Name,
			Location:    location,
			Salary:      salary,
			Skills:      extractSkills(nil, item.Name+" "+desc),
			URL:         item.AlternateURL,
			Source:      a.Name(),
			RawText:     item.Name + " " + desc,
			Description: truncate(desc, maxDescriptionLen),
			PostedAt:    parseTimestamp(item.PublishedAt),
			Employment:  item.Employment.Name,
		}
		jobs = append(jobs, job)
	}

	return jobs, nil
}
