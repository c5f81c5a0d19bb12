package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tripsmith/internal/config"
	"tripsmith/internal/modules/flight"
	"tripsmith/internal/modules/itinerary"
	"tripsmith/internal/tools"
)

var (
	settingsFile string
	templatePath string
	jsonOutput   bool
)

var rootCmd = &cobra.Command{
	Use:   "tripsmith",
	Short: "Flight-aware travel itinerary tools",
	Long: `tripsmith runs the flight_search and travel_itinerary tools from the
command line. Settings (TAVILY_API_KEY, NVIDIA_API_KEY, MODEL_NAME, ...) are
read from the environment first, then from the [settings] table of the
config file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&settingsFile, "config", "", "Settings file (default $TRIPSMITH_CONFIG_FILE or tripsmith.toml)")
	rootCmd.PersistentFlags().StringVar(&templatePath, "template", "", "Itinerary template path (default $ITINERARY_TEMPLATE_PATH)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print the raw tool output as JSON")

	rootCmd.AddCommand(flightsCmd, itineraryCmd, planCmd, toolsCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitWithCode(exitCodeFor(err))
	}
}

// settings resolves the layered settings source for this run.
func settings() (config.Source, error) {
	if settingsFile == "" {
		return config.DefaultSource()
	}
	file, err := config.NewFileSource(settingsFile)
	if err != nil {
		return nil, err
	}
	return config.Chain{config.EnvSource{}, file}, nil
}

type services struct {
	flight    *flight.Service
	itinerary *itinerary.Service
	registry  *tools.Registry
}

func buildServices() (*services, error) {
	src, err := settings()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(src)
	if err != nil {
		return nil, err
	}
	path := cfg.Itinerary.TemplatePath
	if templatePath != "" {
		path = templatePath
	}

	flightSvc := flight.NewService(src, flight.TavilyFactory)
	itinerarySvc := itinerary.NewService(src, itinerary.NewFileTemplateStore(path), nil)
	return &services{
		flight:    flightSvc,
		itinerary: itinerarySvc,
		registry: tools.NewRegistry(
			tools.NewFlightSearchTool(flightSvc),
			tools.NewTravelItineraryTool(itinerarySvc),
		),
	}, nil
}
