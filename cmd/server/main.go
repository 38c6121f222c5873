package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travelrecords-service/internal/domain/manager"
	"travelrecords-service/internal/infrastructure/config"
	"travelrecords-service/internal/infrastructure/persistence"
	jsonlManager "travelrecords-service/internal/interface/manager"
	"travelrecords-service/pkg/logger"
	"travelrecords-service/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	log.Info("Starting Travel Records Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	// Set up metrics
	registry := prometheus.NewRegistry()
	m := metrics.NewMetrics(cfg.MetricsNamespace, registry)

	// Set up backing stores, one JSONL file per entity
	clientStore := persistence.NewStore(cfg.ClientDataFile, log)
	airlineStore := persistence.NewStore(cfg.AirlineDataFile, log)
	flightStore := persistence.NewStore(cfg.FlightDataFile, log)

	// Set up managers; the flight manager validates its references
	// against the other two
	clients := jsonlManager.NewJSONLClientManager(clientStore, log, m)
	airlines := jsonlManager.NewJSONLAirlineManager(airlineStore, log, m)
	flights, err := jsonlManager.NewJSONLFlightManager(flightStore, clients, airlines, log, m)
	if err != nil {
		log.Fatal("Failed to create flight manager", "error", err)
	}

	records := jsonlManager.NewRegistry(clients, airlines, flights)
	for _, category := range manager.Categories() {
		if rm, ok := records.For(category); ok {
			log.Info("Loaded records", "category", string(category), "count", len(rm.All()))
		}
	}

	// Set up HTTP server for metrics and health; no record data is
	// exposed here
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	log.Info("Travel Records Service stopped")
}
