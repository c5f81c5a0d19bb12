package tools

import (
	"context"

	"tripsmith/internal/modules/flight"
	"tripsmith/internal/modules/itinerary"
)

const (
	FlightSearchName    = "flight_search"
	TravelItineraryName = "travel_itinerary"
)

// FlightSearcher runs the flight path.
type FlightSearcher interface {
	Search(ctx context.Context, req flight.FlightSearchRequest) (*flight.FlightSearchResult, error)
}

// ItineraryGenerator runs the itinerary path.
type ItineraryGenerator interface {
	Generate(ctx context.Context, req itinerary.ItineraryRequest) (*itinerary.ItineraryResult, error)
}

// NewFlightSearchTool wraps svc as the flight_search tool.
func NewFlightSearchTool(svc FlightSearcher) *ToolFunc[flight.FlightSearchParams, *flight.FlightSearchResult] {
	return NewToolFunc(
		FlightSearchName,
		"Find flight shopping links and summaries using Tavily web search. "+
			"Use this tool when the user asks about flights, prices, airlines, or routes.",
		flightSearchSchema,
		func(ctx context.Context, p flight.FlightSearchParams) (*flight.FlightSearchResult, error) {
			req, err := flight.NewFlightSearchRequest(p)
			if err != nil {
				return nil, err
			}
			return svc.Search(ctx, req)
		},
	)
}

// NewTravelItineraryTool wraps svc as the travel_itinerary tool.
func NewTravelItineraryTool(svc ItineraryGenerator) *ToolFunc[itinerary.ItineraryParams, *itinerary.ItineraryResult] {
	return NewToolFunc(
		TravelItineraryName,
		"Generate the FINAL trip itinerary in Markdown using the predefined template. "+
			"Use this tool whenever the user requests a travel plan or itinerary.",
		travelItinerarySchema,
		func(ctx context.Context, p itinerary.ItineraryParams) (*itinerary.ItineraryResult, error) {
			req, err := itinerary.NewItineraryRequest(p)
			if err != nil {
				return nil, err
			}
			return svc.Generate(ctx, req)
		},
	)
}

func str(description string) map[string]any {
	return map[string]any{"type": "string", "description": description}
}

var flightSearchSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"origin":      str("Origin city/airport code (e.g., DEL)"),
		"destination": str("Destination city/airport/city (e.g., SIN or Singapore)"),
		"depart_date": str("Departure date in YYYY-MM-DD"),
		"return_date": str("Return date in YYYY-MM-DD (optional)"),
		"adults": map[string]any{
			"type": "integer", "minimum": 1, "maximum": 9, "default": flight.DefaultAdults,
			"description": "Number of adult travelers",
		},
		"cabin": str("Cabin: economy/premium economy/business/first"),
		"max_results": map[string]any{
			"type": "integer", "minimum": 1, "maximum": 10, "default": flight.DefaultMaxResults,
			"description": "How many web results to return",
		},
		"day_start_time":   str("Typical itinerary day start time"),
		"pace":             str("Itinerary pace (slow/moderate/fast)"),
		"constraints":      str("Trip constraints that may affect flight timing"),
		"special_requests": str("Special requests that may affect flight timing"),
	},
	"required": []string{"origin", "destination", "depart_date"},
}

var travelItinerarySchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"destination":      str("Primary destination city/region/country"),
		"start_date":       str("Trip start date (e.g., 2026-03-10)"),
		"end_date":         str("Trip end date (e.g., 2026-03-14)"),
		"travelers":        str("Who is traveling (e.g., '2 adults', 'family of 4')"),
		"budget":           str("Budget level (e.g., 'budget', 'mid-range', 'luxury')"),
		"travel_style":     str("Style (e.g., 'relaxed', 'packed', 'balanced')"),
		"interests":        str("Comma-separated interests"),
		"day_start_time":   str("Typical day start time"),
		"pace":             str("Pace (slow/moderate/fast)"),
		"mobility":         str("Mobility constraints if any"),
		"food_prefs":       str("Food preferences/allergies"),
		"constraints":      str("Hard constraints (must-dos, avoid, etc.)"),
		"special_requests": str("Any special requests"),
		"origin":           str("Origin city/airport, enables flight-aware planning"),
		"adults": map[string]any{
			"type": "integer", "minimum": 1, "maximum": 9,
			"description": "Number of adult travelers for flight search",
		},
		"cabin":                   str("Cabin class for flight search"),
		"flight_context_markdown": str("Flight summary from flight_search, embedded verbatim"),
		"arrival_window":          str("Recommended arrival window from flight_search"),
		"departure_window":        str("Recommended departure window from flight_search"),
	},
	"required": []string{"destination", "start_date", "end_date"},
}
