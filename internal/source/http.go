package source

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"

	"jobpulse/internal/model"
)

// Rotated on every request, same as a browser pool would present.
var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36",
}

func randomUserAgent() string {
	return userAgents[rand.Intn(len(userAgents))]
}

// getJSON issues a GET against url with a browser User-Agent plus any extra
// headers, and decodes the JSON response into v. Non-200 responses become
// *model.HTTPError carrying the Retry-After hint so retry logic can inspect it.
func getJSON(ctx context.Context, client *http.Client, url string, extra http.Header, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", randomUserAgent())
	for key, values := range extra {
		for _, val := range values {
			req.Header.Add(key, val)
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &model.HTTPError{
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Err:        fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	return json.NewDecoder(resp.Body).Decode(v)
}
