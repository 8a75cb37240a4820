// Package main is the entry point for the API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/fintrip-ai/assistant-platform/internal/config"
	"github.com/fintrip-ai/assistant-platform/internal/data"
	"github.com/fintrip-ai/assistant-platform/internal/dialogue"
	"github.com/fintrip-ai/assistant-platform/internal/events"
	"github.com/fintrip-ai/assistant-platform/internal/handler"
	"github.com/fintrip-ai/assistant-platform/internal/intent"
	"github.com/fintrip-ai/assistant-platform/internal/locale"
	"github.com/fintrip-ai/assistant-platform/internal/middleware"
	"github.com/fintrip-ai/assistant-platform/internal/report"
	"github.com/fintrip-ai/assistant-platform/internal/service"
	"github.com/fintrip-ai/assistant-platform/pkg/logger"
	"github.com/fintrip-ai/assistant-platform/pkg/tracing"
)

func main() {
	// Load .env if present
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Initialize logger
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	logger.SetGlobal(log)

	log.Info("starting API server")

	// Initialize tracing if enabled
	ctx := context.Background()
	if cfg.TracingEnabled {
		tp, err := tracing.InitTracer(ctx, "assistant-platform", cfg.TracingEndpoint)
		if err != nil {
			log.Warn("failed to initialize tracing", zap.Error(err))
		} else {
			defer tracing.Shutdown(ctx, tp)
		}
	}

	// Connect to NATS when event publishing is enabled. A nil publisher
	// drops events silently.
	var (
		eventsClient *events.Client
		publisher    *events.Publisher
	)
	if cfg.EventsEnabled {
		eventsClient, err = events.Connect(ctx, events.Config{
			URL:      cfg.NATSURL,
			CAFile:   cfg.NATSCAFile,
			CertFile: cfg.NATSCertFile,
			KeyFile:  cfg.NATSKeyFile,
			Token:    cfg.NATSToken,
		}, log)
		if err != nil {
			log.Error("failed to connect to NATS", zap.Error(err))
			os.Exit(1)
		}
		defer eventsClient.Close()

		publisher = events.NewPublisher(eventsClient, log)
		if err := publisher.EnsureStream(ctx); err != nil {
			log.Error("failed to ensure stream", zap.Error(err))
			os.Exit(1)
		}
	}

	// Data sources
	clock := time.Now
	financialSource := data.NewMemoryFinancialSource()
	tripSource := data.NewMemoryTripSource()
	if cfg.SeedDemoData {
		financialSource.Seed("demo-user", data.SampleTransactions(clock()))
	}

	// Dialogue engine
	store := locale.NewStore()
	suggester := dialogue.NewSuggester(store)
	financeMatcher := intent.NewMatcher(store, intent.FinanceRules)
	travelMatcher := intent.NewMatcher(store, intent.TravelRules)

	financePolicy := dialogue.NewFinancePolicy(
		store, suggester, financeMatcher, financialSource,
		report.ListReportTypes(), log, clock, cfg.DataFetchTimeout)
	travelPolicy := dialogue.NewTravelPolicy(
		store, suggester, travelMatcher, tripSource, log, cfg.DataFetchTimeout)

	// Report pipeline
	builder := report.NewBuilder(financialSource, clock, cfg.DataFetchTimeout)

	// Initialize services
	assistantSvc := service.NewAssistantService(
		financePolicy, travelPolicy, suggester, tripSource, publisher, log, clock)
	reportSvc := service.NewReportService(builder, publisher, log)

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(eventsClient)
	assistantHandler := handler.NewAssistantHandler(assistantSvc, log)
	reportHandler := handler.NewReportHandler(reportSvc, log)

	// Create router
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging(log))
	r.Use(middleware.SecurityHeaders)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposedHeaders:   []string{"Content-Disposition", "X-Correlation-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health endpoints (no auth required)
	r.Get("/health", healthHandler.Health)
	r.Get("/ready", healthHandler.Ready)

	// Metrics endpoint
	r.Handle("/metrics", promhttp.Handler())

	// API routes with authentication
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWTSecret))
		r.Use(middleware.RateLimit(cfg.RateLimitRequests, cfg.RateLimitWindow))

		r.Route("/assistant/{variant}", func(r chi.Router) {
			r.Post("/query", assistantHandler.Query)
			r.Get("/suggestions", assistantHandler.Suggestions)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/types", reportHandler.ListTypes)
			r.Post("/generate", reportHandler.Generate)
		})
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      r,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info("server listening", zap.String("port", cfg.ServerPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", zap.Error(err))
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}

	log.Info("server stopped")
}
