package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"jobpulse/internal/model"
)

const superJobBaseURL = "https://api.superjob.ru/2.0/vacancies/"

// sjVacancy represents a single object in the SuperJob API response.
type sjVacancy struct {
	ID            int64        `json:"id"`
	Profession    string       `json:"profession"`
	FirmName      string       `json:"firm_name"`
	Candidat      string       `json:"candidat"`
	Link          string       `json:"link"`
	PaymentFrom   float64      `json:"payment_from"`
	PaymentTo     float64      `json:"payment_to"`
	DatePublished int64        `json:"date_published"`
	TypeOfWork    sjTypeOfWork `json:"type_of_work"`
}

type sjTypeOfWork struct {
	Title string `json:"title"`
}

// sjResponse is the top-level SuperJob API response. Objects stay raw so a
// single malformed vacancy is skipped rather than erroring the fetch.
type sjResponse struct {
	Objects []json.RawMessage `json:"objects"`
}

// SuperJobAdapter fetches vacancies from the SuperJob API.
// Requires an application key (sent as X-Api-App-Id).
type SuperJobAdapter struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewSuperJobAdapter creates a new SuperJob adapter with the given key.
func NewSuperJobAdapter(apiKey string, client *http.Client) *SuperJobAdapter {
	return &SuperJobAdapter{baseURL: superJobBaseURL, apiKey: apiKey, client: client}
}

func (a *SuperJobAdapter) Name() string { return "superjob" }

// Fetch retrieves vacancies from SuperJob and normalizes them into Jobs.
func (a *SuperJobAdapter) Fetch(ctx context.Context) ([]model.Job, error) {
	params := url.Values{}
	params.Set("keyword", "программист разработчик")
	params.Set("count", "20")

	header := http.Header{}
	header.Set("X-Api-App-Id", a.apiKey)

	var resp sjResponse
	if err := getJSON(ctx, a.client, a.baseURL+"?"+params.Encode(), header, &resp); err != nil {
		return nil, fmt.Errorf("superjob fetch: %w", err)
	}

	jobs := make([]model.Job, 0, len(resp.Objects))
	for _, entry := range resp.Objects {
		var item sjVacancy
		if err := json.Unmarshal(entry, &item); err != nil {
			continue
		}
		if item.Profession == "" || item.Link == "" {
			continue
		}

		desc := extractText(item.Candidat)

		job := model.Job{
			Fingerprint: model.SourceFingerprint(a.Name(), strconv.FormatInt(item.ID, 10)),
			Title:       item.Profession,
			Company:     item.FirmName,
			Location:    "Удалённо",
			Salary:      formatSalaryRange(item.PaymentFrom, item.PaymentTo, "RUB"),
			Skills:      extractSkills(nil, item.Profession+" "+desc),
			URL:         item.Link,
			Source:      a.Name(),
			RawText:     item.Profession + " " + desc,
			Description: truncate(desc, maxDescriptionLen),
			Employment:  item.TypeOfWork.Title,
		}
		if item.DatePublished > 0 {
			t := time.Unix(item.DatePublished, 0).UTC()
			job.PostedAt = &t
		}
		jobs = append(jobs, job)
	}

	return jobs, nil
}
