package main

import (
	"strings"

	"github.com/spf13/cobra"

	"tripsmith/internal/modules/itinerary"
	"tripsmith/internal/service"
)

var (
	planParams itinerary.ItineraryParams
	planAdults int
)

var planCmd = &cobra.Command{
	Use:   "plan <origin> <destination> <start-date> <end-date>",
	Short: "Search flights, then generate an itinerary aligned with them",
	Long: `Run flight_search for the trip dates and feed its summary and timing
windows into travel_itinerary.

Example:
  tripsmith plan DEL Singapore 2026-03-10 2026-03-14 --adults 2 --pace relaxed`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := planParams
		p.Origin, p.Destination, p.StartDate, p.EndDate = args[0], args[1], args[2], args[3]
		if cmd.Flags().Changed("adults") {
			p.Adults = &planAdults
		}

		req, err := itinerary.NewItineraryRequest(p)
		if err != nil {
			return err
		}
		svc, err := buildServices()
		if err != nil {
			return err
		}
		res, err := service.NewTravelPlanner(svc.flight, svc.itinerary).Plan(cmd.Context(), req)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), res)
		}

		var b strings.Builder
		if res.Flight != nil {
			b.WriteString(res.Flight.FlightContextMarkdown)
			b.WriteString("\n\n---\n\n")
		}
		b.WriteString(res.Itinerary.ItineraryMarkdown)
		return printText(cmd.OutOrStdout(), b.String())
	},
}

func init() {
	addTripFlags(planCmd.Flags(), &planParams)
	planCmd.Flags().IntVar(&planAdults, "adults", 1, "Number of adult travelers (1-9)")
	planCmd.Flags().StringVar(&planParams.Cabin, "cabin", "", "Cabin class for the flight search")
}
