package source

import (
	"fmt"
	"html"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Display descriptions are cut at a word boundary around this length.
const maxDescriptionLen = 350

var htmlTagRegex = regexp.MustCompile(`<[^>]*>`)

// extractText converts an HTML or HTML-encoded string to plain text.
// It first unescapes HTML entities (no-op on already-plain text), strips all
// tags, then collapses whitespace.
func extractText(content string) string {
	unescaped := html.UnescapeString(content)
	plain := htmlTagRegex.ReplaceAllString(unescaped, "")
	return strings.Join(strings.Fields(plain), " ")
}

// truncate cuts s at the last word boundary before maxLen bytes and appends
// an ellipsis. The cut never lands mid-rune, so the result stays valid UTF-8
// even for text with no spaces. Strings within the limit are returned
// unchanged.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	end := maxLen
	for end > 0 && !utf8.RuneStart(s[end]) {
		end--
	}
	cut := s[:end]
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	}
	return cut + "..."
}

// parseRetryAfter parses the Retry-After header value into a duration.
// Supports seconds format (e.g. "120"). Returns zero if absent or unparseable.
func parseRetryAfter(value string) time.Duration {
	if value == "" {
		return 0
	}
	seconds, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return time.Duration(seconds) * time.Second
}

// formatSalaryRange renders numeric min/max salary fields as display text.
// Returns "" when neither bound is present.
func formatSalaryRange(min, max float64, currency string) string {
	switch {
	case min > 0 && max > 0:
		return fmt.Sprintf("%.0f-%.0f %s", min, max, currency)
	case min > 0:
		return fmt.Sprintf("от %.0f %s", min, currency)
	case max > 0:
		return fmt.Sprintf("до %.0f %s", max, currency)
	}
	return ""
}

// parseTimestamp tries the timestamp layouts seen across providers.
func parseTimestamp(value string) *time.Time {
	if value == "" {
		return nil
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05-0700",
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	return nil
}
