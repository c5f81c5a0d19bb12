// README: Flight search request/result types and the validating request constructor.
package flight

import (
	"strings"

	"tripsmith/internal/types"
)

const (
	DefaultAdults       = 1
	DefaultCabin        = "economy"
	DefaultMaxResults   = 5
	DefaultDayStartTime = "09:00"
	DefaultPace         = "moderate"

	// Note is attached to every result; the tool discovers shopping links, it does not book.
	Note = "Web-based flight discovery only; not a booking system. Use links for live prices and schedules."
)

// FlightSearchParams is the raw tool input. Pointer fields distinguish "absent"
// from an explicit zero so defaults apply only to missing values.
type FlightSearchParams struct {
	Origin          string  `json:"origin"`
	Destination     string  `json:"destination"`
	DepartDate      string  `json:"depart_date"`
	ReturnDate      *string `json:"return_date,omitempty"`
	Adults          *int    `json:"adults,omitempty"`
	Cabin           string  `json:"cabin,omitempty"`
	MaxResults      *int    `json:"max_results,omitempty"`
	DayStartTime    string  `json:"day_start_time,omitempty"`
	Pace            string  `json:"pace,omitempty"`
	Constraints     string  `json:"constraints,omitempty"`
	SpecialRequests string  `json:"special_requests,omitempty"`
}

// FlightSearchRequest is a validated flight search. Build it with
// NewFlightSearchRequest; it is passed by value and never mutated.
type FlightSearchRequest struct {
	Origin      string
	Destination string
	DepartDate  string
	// ReturnDate is empty for one-way trips.
	ReturnDate string
	Adults     int
	Cabin      string
	MaxResults int

	// Itinerary context, used only for timing advice.
	DayStartTime    string
	Pace            string
	Constraints     string
	SpecialRequests string
}

// FlightOption is one web result pointing at a place to check prices.
type FlightOption struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// TimingAdvice is a heuristic arrival/departure recommendation.
type TimingAdvice struct {
	RecommendedArrivalWindow   string `json:"recommended_arrival_window"`
	RecommendedDepartureWindow string `json:"recommended_departure_window"`
	Reasoning                  string `json:"reasoning"`
}

// FlightSearchResult is the flight tool output.
type FlightSearchResult struct {
	Query                 string         `json:"query"`
	Options               []FlightOption `json:"options"`
	TimingAdvice          TimingAdvice   `json:"timing_advice"`
	FlightContextMarkdown string         `json:"flight_context_markdown"`
	Note                  string         `json:"note"`
}

// NewFlightSearchRequest validates params and applies defaults.
// Errors are *types.ValidationError.
func NewFlightSearchRequest(p FlightSearchParams) (FlightSearchRequest, error) {
	req := FlightSearchRequest{
		Origin:          strings.TrimSpace(p.Origin),
		Destination:     strings.TrimSpace(p.Destination),
		DepartDate:      strings.TrimSpace(p.DepartDate),
		Adults:          DefaultAdults,
		Cabin:           strings.TrimSpace(p.Cabin),
		MaxResults:      DefaultMaxResults,
		DayStartTime:    strings.TrimSpace(p.DayStartTime),
		Pace:            p.Pace,
		Constraints:     p.Constraints,
		SpecialRequests: p.SpecialRequests,
	}
	if p.ReturnDate != nil {
		req.ReturnDate = strings.TrimSpace(*p.ReturnDate)
	}

	switch {
	case req.Origin == "":
		return FlightSearchRequest{}, &types.ValidationError{Field: "origin", Reason: "is required"}
	case req.Destination == "":
		return FlightSearchRequest{}, &types.ValidationError{Field: "destination", Reason: "is required"}
	case req.DepartDate == "":
		return FlightSearchRequest{}, &types.ValidationError{Field: "depart_date", Reason: "is required"}
	}

	if p.Adults != nil {
		if *p.Adults < 1 || *p.Adults > 9 {
			return FlightSearchRequest{}, &types.ValidationError{Field: "adults", Reason: "must be between 1 and 9"}
		}
		req.Adults = *p.Adults
	}
	if p.MaxResults != nil {
		if *p.MaxResults < 1 || *p.MaxResults > 10 {
			return FlightSearchRequest{}, &types.ValidationError{Field: "max_results", Reason: "must be between 1 and 10"}
		}
		req.MaxResults = *p.MaxResults
	}

	if req.Cabin == "" {
		req.Cabin = DefaultCabin
	}
	if req.DayStartTime == "" {
		req.DayStartTime = DefaultDayStartTime
	}
	if strings.TrimSpace(req.Pace) == "" {
		req.Pace = DefaultPace
	}
	return req, nil
}
