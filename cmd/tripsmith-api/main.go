// README: Entry point; loads config, wires the flight and itinerary tools, serves them over HTTP.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tripsmith/internal/config"
	httptransport "tripsmith/internal/http"
	"tripsmith/internal/modules/flight"
	"tripsmith/internal/modules/itinerary"
)

const shutdownTimeout = 10 * time.Second

func main() {
	src, err := config.DefaultSource()
	if err != nil {
		log.Fatal(err)
	}
	cfg, err := config.Load(src)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Provider keys are resolved on every call, so a missing key surfaces as a
	// configuration error on the first request rather than at startup.
	if _, err := config.LoadSearch(src); err != nil {
		log.Printf("[API] warning: %v", err)
	}
	if _, err := config.LoadChat(src); err != nil {
		log.Printf("[API] warning: %v", err)
	}

	flightSvc := flight.NewService(src, flight.TavilyFactory)
	itinerarySvc := itinerary.NewService(src, itinerary.NewFileTemplateStore(cfg.Itinerary.TemplatePath), nil)

	handler := httptransport.NewServer(httptransport.ServerDeps{
		Config:    cfg,
		Flight:    flightSvc,
		Itinerary: itinerarySvc,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler.Routes()}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("[API] shutdown: %v", err)
		}
	}()

	log.Printf("[API] listening on %s (tools: %d)", cfg.HTTP.Addr, len(handler.Registry().List()))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
