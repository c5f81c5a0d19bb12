package flight

import (
	"fmt"
	"strings"

	"tripsmith/internal/search"
)

const (
	defaultOptionTitle = "Flight result"
	maxSnippetRunes    = 300
)

// AdaptResults maps raw provider hits into at most n flight options, keeping
// provider rank order.
func AdaptResults(raw []search.RawResult, n int) []FlightOption {
	if n > len(raw) {
		n = len(raw)
	}
	if n < 0 {
		n = 0
	}

	options := make([]FlightOption, 0, n)
	for _, r := range raw[:n] {
		title := field(r, "title")
		if title == "" {
			title = defaultOptionTitle
		}
		options = append(options, FlightOption{
			Title:   title,
			URL:     field(r, "url"),
			Snippet: truncateRunes(field(r, "content"), maxSnippetRunes),
		})
	}
	return options
}

// field stringifies and trims a result field; absent and null fields are empty.
func field(r search.RawResult, key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(fmt.Sprint(v))
}

func truncateRunes(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
