package service

import (
	"context"
	"fmt"
	"log"

	"tripsmith/internal/modules/flight"
	"tripsmith/internal/modules/itinerary"
	"tripsmith/internal/tools"
)

// PlanResult is the combined planner output. Flight is nil when no flight
// search ran.
type PlanResult struct {
	Flight    *flight.FlightSearchResult `json:"flight,omitempty"`
	Itinerary *itinerary.ItineraryResult `json:"itinerary"`
}

// TravelPlanner chains the flight search into the itinerary when the traveller
// gives an origin but no flight summary.
type TravelPlanner struct {
	flights   tools.FlightSearcher
	itinerary tools.ItineraryGenerator
}

// NewTravelPlanner creates a TravelPlanner with initialized dependencies.
func NewTravelPlanner(flights tools.FlightSearcher, itin tools.ItineraryGenerator) *TravelPlanner {
	return &TravelPlanner{flights: flights, itinerary: itin}
}

// Plan runs the flight path first when needed, then the itinerary path.
// Any failure aborts the whole plan; no partial itinerary is returned.
func (p *TravelPlanner) Plan(ctx context.Context, req itinerary.ItineraryRequest) (*PlanResult, error) {
	var result PlanResult

	if req.Origin != "" && !req.HasFlightContext() {
		freq, err := FlightRequestFor(req)
		if err != nil {
			return nil, err
		}

		fres, err := p.flights.Search(ctx, freq)
		if err != nil {
			log.Printf("[PLAN] flight step failed | %s -> %s | err=%v", req.Origin, req.Destination, err)
			return nil, fmt.Errorf("plan: flight search: %w", err)
		}
		result.Flight = fres
		req = req.WithFlight(fres.FlightContextMarkdown, fres.TimingAdvice.RecommendedArrivalWindow, fres.TimingAdvice.RecommendedDepartureWindow)
	}

	ires, err := p.itinerary.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("plan: itinerary: %w", err)
	}
	result.Itinerary = ires

	log.Printf("[PLAN] %s | flight_step=%t", req.Destination, result.Flight != nil)
	return &result, nil
}

// FlightRequestFor derives the flight search for an itinerary: the trip dates
// become depart/return dates and the pacing fields drive timing advice.
func FlightRequestFor(req itinerary.ItineraryRequest) (flight.FlightSearchRequest, error) {
	params := flight.FlightSearchParams{
		Origin:          req.Origin,
		Destination:     req.Destination,
		DepartDate:      req.StartDate,
		Cabin:           req.Cabin,
		DayStartTime:    req.DayStartTime,
		Pace:            req.Pace,
		Constraints:     req.Constraints,
		SpecialRequests: req.SpecialRequests,
	}
	if req.EndDate != "" {
		end := req.EndDate
		params.ReturnDate = &end
	}
	if req.Adults > 0 {
		adults := req.Adults
		params.Adults = &adults
	}
	return flight.NewFlightSearchRequest(params)
}
