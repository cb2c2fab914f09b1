package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mandate-gateway/config"
	consentAdapter "mandate-gateway/internal/adapter/consent"
	httpHandler "mandate-gateway/internal/adapter/http/handler"
	"mandate-gateway/internal/adapter/settlement"
	"mandate-gateway/internal/adapter/storage/memory"
	"mandate-gateway/internal/metrics"
	"mandate-gateway/internal/service"
	"mandate-gateway/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Mandate Gateway")

	// Initialize in-memory stores
	signer := service.NewHMACSigner(cfg.Signing.Secret)
	mandateRepo := memory.NewMandateRepo()
	ledger := memory.NewAuditLedger(signer, cfg.Ledger.MaxEvents)

	// Initialize collaborators
	consentRegistry := consentAdapter.NewCBUAERegistry(log)
	rail := settlement.NewClient(cfg.Settlement.InstantCeiling, log)

	// Initialize core services
	met := metrics.New()
	mandateSvc := service.NewMandateService(mandateRepo, ledger, consentRegistry, met, log)
	riskSvc := service.NewRiskService(cfg.Risk.LowCeiling, cfg.Risk.MediumCeiling, cfg.Risk.BaseCurrency)
	workflowSvc := service.NewWorkflowService(mandateSvc, riskSvc, rail, cfg.Settlement.Timeout, log)
	exportSvc := service.NewExportService(mandateRepo, ledger, log)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		MandateSvc:  mandateSvc,
		WorkflowSvc: workflowSvc,
		ExportSvc:   exportSvc,
		Ledger:      ledger,
		Metrics:     true,
		Logger:      log,
	})

	// HTTP Server with graceful shutdown
	srv := &http.Server{
		Addr:    cfg.Server.Addr(),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
