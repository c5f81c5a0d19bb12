// README: Itinerary request/result types and the validating request constructor.
package itinerary

import (
	"strings"

	"tripsmith/internal/types"
)

// ItineraryParams is the raw travel_itinerary tool input.
type ItineraryParams struct {
	Destination string `json:"destination"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`

	Travelers   string `json:"travelers,omitempty"`
	Budget      string `json:"budget,omitempty"`
	TravelStyle string `json:"travel_style,omitempty"`
	Interests   string `json:"interests,omitempty"`

	DayStartTime string `json:"day_start_time,omitempty"`
	Pace         string `json:"pace,omitempty"`
	Mobility     string `json:"mobility,omitempty"`
	FoodPrefs    string `json:"food_prefs,omitempty"`

	Constraints     string `json:"constraints,omitempty"`
	SpecialRequests string `json:"special_requests,omitempty"`

	// Flight integration.
	Origin                string `json:"origin,omitempty"`
	Adults                *int   `json:"adults,omitempty"`
	Cabin                 string `json:"cabin,omitempty"`
	FlightContextMarkdown string `json:"flight_context_markdown,omitempty"`
	ArrivalWindow         string `json:"arrival_window,omitempty"`
	DepartureWindow       string `json:"departure_window,omitempty"`
}

// ItineraryRequest is a validated itinerary request. Empty strings mean
// "not given"; defaults are applied when the template is rendered.
type ItineraryRequest struct {
	Destination     string
	StartDate       string
	EndDate         string
	Travelers       string
	Budget          string
	TravelStyle     string
	Interests       string
	DayStartTime    string
	Pace            string
	Mobility        string
	FoodPrefs       string
	Constraints     string
	SpecialRequests string

	Origin                string
	Adults                int // 0 when not given
	Cabin                 string
	FlightContextMarkdown string
	ArrivalWindow         string
	DepartureWindow       string
}

// ItineraryResult is the travel_itinerary tool output: the completion text, untouched.
type ItineraryResult struct {
	ItineraryMarkdown string `json:"itinerary_markdown"`
}

// NewItineraryRequest validates p. Destination and both dates are required;
// adults, when given, must be 1-9.
func NewItineraryRequest(p ItineraryParams) (ItineraryRequest, error) {
	req := ItineraryRequest{
		Destination:           strings.TrimSpace(p.Destination),
		StartDate:             strings.TrimSpace(p.StartDate),
		EndDate:               strings.TrimSpace(p.EndDate),
		Travelers:             p.Travelers,
		Budget:                p.Budget,
		TravelStyle:           p.TravelStyle,
		Interests:             p.Interests,
		DayStartTime:          p.DayStartTime,
		Pace:                  p.Pace,
		Mobility:              p.Mobility,
		FoodPrefs:             p.FoodPrefs,
		Constraints:           p.Constraints,
		SpecialRequests:       p.SpecialRequests,
		Origin:                strings.TrimSpace(p.Origin),
		Cabin:                 strings.TrimSpace(p.Cabin),
		FlightContextMarkdown: p.FlightContextMarkdown,
		ArrivalWindow:         p.ArrivalWindow,
		DepartureWindow:       p.DepartureWindow,
	}

	switch {
	case req.Destination == "":
		return ItineraryRequest{}, &types.ValidationError{Field: "destination", Reason: "is required"}
	case req.StartDate == "":
		return ItineraryRequest{}, &types.ValidationError{Field: "start_date", Reason: "is required"}
	case req.EndDate == "":
		return ItineraryRequest{}, &types.ValidationError{Field: "end_date", Reason: "is required"}
	}

	if p.Adults != nil {
		if *p.Adults < 1 || *p.Adults > 9 {
			return ItineraryRequest{}, &types.ValidationError{Field: "adults", Reason: "must be between 1 and 9"}
		}
		req.Adults = *p.Adults
	}
	return req, nil
}

// HasFlightContext reports whether flight markdown was supplied.
func (r ItineraryRequest) HasFlightContext() bool {
	return strings.TrimSpace(r.FlightContextMarkdown) != ""
}

// WithFlight returns a copy of r carrying the flight summary and timing windows.
func (r ItineraryRequest) WithFlight(markdown, arrival, departure string) ItineraryRequest {
	r.FlightContextMarkdown = markdown
	r.ArrivalWindow = arrival
	r.DepartureWindow = departure
	return r
}
