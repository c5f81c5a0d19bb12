package flight

import (
	"fmt"
	"strings"
)

// maxContextOptions caps the link bullets in the markdown block regardless of
// how many results were fetched.
const maxContextOptions = 5

// ComposeContext renders the flight summary block that the itinerary tool embeds
// verbatim. Downstream consumers treat it as plain text.
func ComposeContext(query string, options []FlightOption, advice TimingAdvice) string {
	lines := []string{
		"**Flight shopping summary (web results):**",
		fmt.Sprintf("- Query: `%s`", query),
		fmt.Sprintf("- Arrival window: %s", advice.RecommendedArrivalWindow),
		fmt.Sprintf("- Departure window: %s", advice.RecommendedDepartureWindow),
		fmt.Sprintf("- Why: %s", advice.Reasoning),
		"",
		"**Where to check live prices/availability:**",
	}

	for i, opt := range options {
		if i == maxContextOptions {
			break
		}
		if opt.URL != "" {
			lines = append(lines, fmt.Sprintf("- [%s](%s)", opt.Title, opt.URL))
		} else {
			lines = append(lines, fmt.Sprintf("- %s", opt.Title))
		}
	}

	lines = append(lines, "", "_Note: Prices/availability change frequently; open links for live details._")
	return strings.Join(lines, "\n")
}
