package main

import (
	"github.com/spf13/cobra"

	"tripsmith/internal/modules/flight"
)

var flightParams flight.FlightSearchParams

var (
	flightReturn     string
	flightAdults     int
	flightMaxResults int
)

var flightsCmd = &cobra.Command{
	Use:   "flights <origin> <destination> <depart-date>",
	Short: "Find flight shopping links and timing advice",
	Long: `Search the web for places to check flight prices and derive arrival and
departure windows from the itinerary pace and constraints.

Examples:
  tripsmith flights DEL SIN 2026-03-10 --return 2026-03-14 --adults 2
  tripsmith flights BOM Singapore 2026-05-01 --pace fast --json`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := flightParams
		p.Origin, p.Destination, p.DepartDate = args[0], args[1], args[2]
		if cmd.Flags().Changed("return") {
			p.ReturnDate = &flightReturn
		}
		if cmd.Flags().Changed("adults") {
			p.Adults = &flightAdults
		}
		if cmd.Flags().Changed("max-results") {
			p.MaxResults = &flightMaxResults
		}

		req, err := flight.NewFlightSearchRequest(p)
		if err != nil {
			return err
		}
		svc, err := buildServices()
		if err != nil {
			return err
		}
		res, err := svc.flight.Search(cmd.Context(), req)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), res)
		}
		return printText(cmd.OutOrStdout(), res.FlightContextMarkdown+"\n\n_"+res.Note+"_")
	},
}

func init() {
	f := flightsCmd.Flags()
	f.StringVar(&flightReturn, "return", "", "Return date (YYYY-MM-DD); omit for one way")
	f.IntVar(&flightAdults, "adults", flight.DefaultAdults, "Number of adult travelers (1-9)")
	f.StringVar(&flightParams.Cabin, "cabin", flight.DefaultCabin, "Cabin: economy/premium economy/business/first")
	f.IntVar(&flightMaxResults, "max-results", flight.DefaultMaxResults, "How many web results to return (1-10)")
	f.StringVar(&flightParams.DayStartTime, "day-start", flight.DefaultDayStartTime, "Typical itinerary day start time")
	f.StringVar(&flightParams.Pace, "pace", flight.DefaultPace, "Itinerary pace (slow/moderate/fast)")
	f.StringVar(&flightParams.Constraints, "constraints", "", "Trip constraints that may affect flight timing")
	f.StringVar(&flightParams.SpecialRequests, "special-requests", "", "Special requests that may affect flight timing")
}
