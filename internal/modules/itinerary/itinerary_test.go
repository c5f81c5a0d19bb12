package itinerary

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tripsmith/internal/types"
)

func intPtr(v int) *int { return &v }

func TestNewItineraryRequest(t *testing.T) {
	cases := []struct {
		name  string
		p     ItineraryParams
		field string
	}{
		{"missing destination", ItineraryParams{StartDate: "a", EndDate: "b"}, "destination"},
		{"blank start", ItineraryParams{Destination: "Tokyo", StartDate: "  ", EndDate: "b"}, "start_date"},
		{"missing end", ItineraryParams{Destination: "Tokyo", StartDate: "a"}, "end_date"},
		{"adults too low", ItineraryParams{Destination: "Tokyo", StartDate: "a", EndDate: "b", Adults: intPtr(0)}, "adults"},
		{"adults too high", ItineraryParams{Destination: "Tokyo", StartDate: "a", EndDate: "b", Adults: intPtr(10)}, "adults"},
		{"valid", ItineraryParams{Destination: "Tokyo", StartDate: "a", EndDate: "b", Adults: intPtr(2)}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := NewItineraryRequest(tc.p)
			if tc.field == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if req.Adults != 2 {
					t.Errorf("adults = %d", req.Adults)
				}
				return
			}
			verr, ok := err.(*types.ValidationError)
			if !ok || verr.Field != tc.field {
				t.Fatalf("expected ValidationError on %s, got %v", tc.field, err)
			}
		})
	}
}

func TestWithFlightReturnsCopy(t *testing.T) {
	req, err := NewItineraryRequest(ItineraryParams{Destination: "SIN", StartDate: "a", EndDate: "b"})
	if err != nil {
		t.Fatal(err)
	}
	withFlight := req.WithFlight("md", "arr", "dep")
	if req.HasFlightContext() {
		t.Error("original request must not change")
	}
	if !withFlight.HasFlightContext() || withFlight.ArrivalWindow != "arr" || withFlight.DepartureWindow != "dep" {
		t.Errorf("flight fields not set: %+v", withFlight)
	}
}

func TestRender(t *testing.T) {
	values := Values{"destination": "Lisbon", "pace": "Fast"}
	tmpl := "# {{destination}}\nPace: {{pace}} / {{pace}}\n{{unused_key}} {{budget}}"

	got := Render(tmpl, TemplateKeys, values.Lookup)
	want := "# Lisbon\nPace: Fast / Fast\n{{unused_key}} {{budget}}"
	if got != want {
		t.Errorf("Render() =\n%q\nwant\n%q", got, want)
	}
}

func TestRenderIdempotentOnFilledText(t *testing.T) {
	req, _ := NewItineraryRequest(ItineraryParams{Destination: "Lisbon", StartDate: "2026-06-01", EndDate: "2026-06-05"})
	values := TemplateValues(req)

	once := Render("{{destination}} {{start_date}} {{pace}}", TemplateKeys, values.Lookup)
	twice := Render(once, TemplateKeys, values.Lookup)
	if once != twice {
		t.Errorf("second pass changed output: %q -> %q", once, twice)
	}
	if strings.Contains(once, "{{") {
		t.Errorf("placeholders left after render: %q", once)
	}
}

func TestRenderDoesNotRescanSubstitutedText(t *testing.T) {
	tests := []struct {
		name   string
		tmpl   string
		keys   []string
		values Values
		want   string
	}{
		{
			name:   "later key inside earlier value",
			tmpl:   "{{destination}}",
			keys:   []string{"destination", "budget"},
			values: Values{"destination": "{{budget}}", "budget": "cheap"},
			want:   "{{budget}}",
		},
		{
			name:   "earlier key inside later value",
			tmpl:   "{{budget}}",
			keys:   []string{"destination", "budget"},
			values: Values{"budget": "{{destination}}", "destination": "x"},
			want:   "{{destination}}",
		},
		{
			name:   "both placeholders in template",
			tmpl:   "{{destination}} / {{budget}}",
			keys:   []string{"destination", "budget"},
			values: Values{"destination": "{{budget}}", "budget": "cheap"},
			want:   "{{budget}} / cheap",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.tmpl, tt.keys, tt.values.Lookup); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderKeepsSearchTitlesVerbatim(t *testing.T) {
	req, err := NewItineraryRequest(ItineraryParams{
		Destination:           "Singapore",
		StartDate:             "2026-03-10",
		EndDate:               "2026-03-14",
		FlightContextMarkdown: "- [Cheap {{arrival_window}} deals](https://x)",
		ArrivalWindow:         "07:00-11:00",
	})
	if err != nil {
		t.Fatalf("NewItineraryRequest: %v", err)
	}

	got := Render("{{flight_context}}\nArrive: {{arrival_window}}", TemplateKeys, TemplateValues(req).Lookup)
	want := "- [Cheap {{arrival_window}} deals](https://x)\nArrive: 07:00-11:00"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestTemplateValuesDefaults(t *testing.T) {
	got := TemplateValues(ItineraryRequest{Travelers: "   "})
	want := map[string]string{
		"destination":      "UNKNOWN",
		"start_date":       "UNKNOWN",
		"end_date":         "UNKNOWN",
		"travelers":        "Not specified",
		"budget":           "Not specified",
		"travel_style":     "Balanced",
		"interests":        "General sightseeing",
		"day_start_time":   "09:00",
		"pace":             "Moderate",
		"mobility":         "No constraints",
		"food_prefs":       "No constraints",
		"flight_context":   "Flight details not provided.",
		"arrival_window":   "Not specified",
		"departure_window": "Not specified",
	}
	if len(got) != len(TemplateKeys) {
		t.Errorf("expected %d values, got %d", len(TemplateKeys), len(got))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s = %q, want %q", k, got[k], v)
		}
	}
}

func TestTemplateValuesCapitalisesPaceAndStyle(t *testing.T) {
	got := TemplateValues(ItineraryRequest{Pace: "fast", TravelStyle: "relaxed", Budget: "mid-range"})
	if got["pace"] != "Fast" {
		t.Errorf("pace = %q", got["pace"])
	}
	if got["travel_style"] != "Relaxed" {
		t.Errorf("travel_style = %q", got["travel_style"])
	}
	if got["budget"] != "mid-range" {
		t.Errorf("budget should be untouched, got %q", got["budget"])
	}
}

func TestBuildUserPrompt(t *testing.T) {
	got := BuildUserPrompt("FILLED", "", "")

	for _, part := range []string{
		"Generate a complete itinerary using the template below.\n\nHard requirements:\n",
		"- Follow the template headings exactly.\n",
		"- Include 2 optional swaps per day.\n",
		"cost ranges",
		"align Day 1 with the arrival window",
		"Never invent exact flight prices or guaranteed schedules",
		"- Output only Markdown.\n",
		"- Do not mention that you are using a template.\n",
		"Extra constraints (if any): \n",
		"Special requests (if any): \n\n",
	} {
		if !strings.Contains(got, part) {
			t.Errorf("prompt missing %q", part)
		}
	}
	if !strings.HasSuffix(got, "TEMPLATE (filled inputs):\n-------------------------\nFILLED\n") {
		t.Errorf("filled template must close the prompt:\n%s", got)
	}
	if strings.Index(got, "Extra constraints") > strings.Index(got, "Special requests") {
		t.Error("constraints must precede special requests")
	}
}

func TestBuildPromptFastNoFlight(t *testing.T) {
	req, err := NewItineraryRequest(ItineraryParams{Destination: "Tokyo", StartDate: "2026-04-01", EndDate: "2026-04-04", Pace: "fast", Constraints: "no museums"})
	if err != nil {
		t.Fatal(err)
	}
	tmpl := "Pace: {{pace}}\n{{flight_context}}\nArrive {{arrival_window}}"

	p := BuildPrompt(tmpl, req)
	if p.System != SystemPrompt {
		t.Errorf("system prompt = %q", p.System)
	}
	section := p.User[strings.Index(p.User, "TEMPLATE (filled inputs):"):]
	if !strings.Contains(section, "Pace: Fast") {
		t.Errorf("pace not substituted:\n%s", section)
	}
	if !strings.Contains(section, "Flight details not provided.") {
		t.Errorf("flight default missing:\n%s", section)
	}
	if !strings.Contains(section, "Arrive Not specified") {
		t.Errorf("arrival default missing:\n%s", section)
	}
	if !strings.Contains(p.User, "Extra constraints (if any): no museums\n") {
		t.Errorf("constraints missing:\n%s", p.User)
	}
}

func TestBundledTemplateHasAllPlaceholders(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "..", "..", "templates", "itinerary_template_v1.md"))
	if err != nil {
		t.Fatalf("read bundled template: %v", err)
	}
	for _, key := range TemplateKeys {
		if !strings.Contains(string(data), "{{"+key+"}}") {
			t.Errorf("template has no {{%s}} placeholder", key)
		}
	}
}

func TestFileTemplateStore(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tmpl.md")
	if err := os.WriteFile(path, []byte("# {{destination}}"), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := NewFileTemplateStore(path).Load()
	if err != nil || got != "# {{destination}}" {
		t.Fatalf("Load() = %q, %v", got, err)
	}

	_, err = NewFileTemplateStore(filepath.Join(dir, "missing.md")).Load()
	if !types.IsResource(err) {
		t.Errorf("expected ResourceError, got %v", err)
	}
	_, err = StaticTemplateStore("").Load()
	if !types.IsResource(err) {
		t.Errorf("expected ResourceError for empty static template, got %v", err)
	}
}
