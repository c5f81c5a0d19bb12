package itinerary

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// TemplateKeys lists the recognised placeholders in substitution order.
var TemplateKeys = []string{
	"destination",
	"start_date",
	"end_date",
	"travelers",
	"budget",
	"travel_style",
	"interests",
	"day_start_time",
	"pace",
	"mobility",
	"food_prefs",
	"flight_context",
	"arrival_window",
	"departure_window",
}

const (
	unknownValue     = "UNKNOWN"
	notSpecified     = "Not specified"
	noConstraints    = "No constraints"
	noFlightProvided = "Flight details not provided."
)

// Values maps template keys to their substitution text.
type Values map[string]string

// Lookup satisfies the Render lookup signature.
func (v Values) Lookup(key string) (string, bool) {
	s, ok := v[key]
	return s, ok
}

// Render replaces every {{key}} for each key in keys in a single left-to-right
// pass, so placeholders inside substituted values are never expanded. Keys the
// lookup does not know and placeholders not named in keys are left untouched.
func Render(tmpl string, keys []string, lookup func(string) (string, bool)) string {
	pairs := make([]string, 0, 2*len(keys))
	for _, key := range keys {
		v, ok := lookup(key)
		if !ok {
			continue
		}
		pairs = append(pairs, "{{"+key+"}}", v)
	}
	if len(pairs) == 0 {
		return tmpl
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

// TemplateValues resolves every template key for req, falling back to the
// documented defaults for blank fields.
func TemplateValues(req ItineraryRequest) Values {
	return Values{
		"destination":      orDefault(req.Destination, unknownValue),
		"start_date":       orDefault(req.StartDate, unknownValue),
		"end_date":         orDefault(req.EndDate, unknownValue),
		"travelers":        orDefault(req.Travelers, notSpecified),
		"budget":           orDefault(req.Budget, notSpecified),
		"travel_style":     capitalize(orDefault(req.TravelStyle, "Balanced")),
		"interests":        orDefault(req.Interests, "General sightseeing"),
		"day_start_time":   orDefault(req.DayStartTime, "09:00"),
		"pace":             capitalize(orDefault(req.Pace, "Moderate")),
		"mobility":         orDefault(req.Mobility, noConstraints),
		"food_prefs":       orDefault(req.FoodPrefs, noConstraints),
		"flight_context":   orDefault(req.FlightContextMarkdown, noFlightProvided),
		"arrival_window":   orDefault(req.ArrivalWindow, notSpecified),
		"departure_window": orDefault(req.DepartureWindow, notSpecified),
	}
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v == "" {
		return def
	}
	return v
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
