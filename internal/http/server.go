// README: Tool gateway; wires the flight and itinerary services into tools and exposes them over HTTP.
package http

import (
	"net/http"

	"tripsmith/internal/config"
	"tripsmith/internal/modules/flight"
	"tripsmith/internal/modules/itinerary"
	"tripsmith/internal/service"
	"tripsmith/internal/tools"
)

type ServerDeps struct {
	Config    config.Config
	Flight    *flight.Service
	Itinerary *itinerary.Service
}

type Server struct {
	cfg      config.Config
	registry *tools.Registry
	planner  *service.TravelPlanner
}

func NewServer(deps ServerDeps) *Server {
	return &Server{
		cfg: deps.Config,
		registry: tools.NewRegistry(
			tools.NewFlightSearchTool(deps.Flight),
			tools.NewTravelItineraryTool(deps.Itinerary),
		),
		planner: service.NewTravelPlanner(deps.Flight, deps.Itinerary),
	}
}

// Registry exposes the tool set served by this gateway.
func (s *Server) Registry() *tools.Registry {
	return s.registry
}

func (s *Server) Routes() http.Handler {
	return NewRouter(s.registry, s.planner, s.cfg.Tools.Token, s.cfg.HTTP.RequestTimeout)
}
