package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"tripsmith/internal/modules/itinerary"
)

var itineraryParams itinerary.ItineraryParams

var itineraryCmd = &cobra.Command{
	Use:   "itinerary <destination> <start-date> <end-date>",
	Short: "Generate a Markdown itinerary",
	Long: `Fill the itinerary template with the trip details and ask the completion
provider for the final Markdown itinerary.

Examples:
  tripsmith itinerary Singapore 2026-03-10 2026-03-14 --pace fast
  tripsmith itinerary Kyoto 2026-04-01 2026-04-05 --interests "temples, food" --budget luxury`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := itineraryParams
		p.Destination, p.StartDate, p.EndDate = args[0], args[1], args[2]

		req, err := itinerary.NewItineraryRequest(p)
		if err != nil {
			return err
		}
		svc, err := buildServices()
		if err != nil {
			return err
		}
		res, err := svc.itinerary.Generate(cmd.Context(), req)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), res)
		}
		return printText(cmd.OutOrStdout(), res.ItineraryMarkdown)
	},
}

// addTripFlags registers the itinerary inputs shared by itinerary and plan.
func addTripFlags(f *pflag.FlagSet, p *itinerary.ItineraryParams) {
	f.StringVar(&p.Travelers, "travelers", "", "Who is traveling (e.g., '2 adults', 'family of 4')")
	f.StringVar(&p.Budget, "budget", "", "Budget level (e.g., 'budget', 'mid-range', 'luxury')")
	f.StringVar(&p.TravelStyle, "style", "", "Style (e.g., 'relaxed', 'packed', 'balanced')")
	f.StringVar(&p.Interests, "interests", "", "Comma-separated interests")
	f.StringVar(&p.DayStartTime, "day-start", "", "Typical day start time")
	f.StringVar(&p.Pace, "pace", "", "Pace (slow/moderate/fast)")
	f.StringVar(&p.Mobility, "mobility", "", "Mobility constraints if any")
	f.StringVar(&p.FoodPrefs, "food", "", "Food preferences/allergies")
	f.StringVar(&p.Constraints, "constraints", "", "Hard constraints (must-dos, avoid, etc.)")
	f.StringVar(&p.SpecialRequests, "special-requests", "", "Any special requests")
}

func init() {
	addTripFlags(itineraryCmd.Flags(), &itineraryParams)
	itineraryCmd.Flags().StringVar(&itineraryParams.FlightContextMarkdown, "flight-context", "", "Flight summary Markdown to embed")
	itineraryCmd.Flags().StringVar(&itineraryParams.ArrivalWindow, "arrival-window", "", "Planned arrival window")
	itineraryCmd.Flags().StringVar(&itineraryParams.DepartureWindow, "departure-window", "", "Planned departure window")
}
