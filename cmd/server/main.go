// Package main is the entry point for the MarketLens company analysis server.
// It wires the analysis pipeline (ticker resolution, sector classification,
// risk factor modelling, price statistics, recommendation synthesis) behind
// an HTTP API and keeps the market data cache tidy with a scheduled sweep.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/aristath/marketlens/internal/clientdata"
	"github.com/aristath/marketlens/internal/clients/yahoo"
	"github.com/aristath/marketlens/internal/config"
	"github.com/aristath/marketlens/internal/database"
	"github.com/aristath/marketlens/internal/modules/analysis"
	analysishandlers "github.com/aristath/marketlens/internal/modules/analysis/handlers"
	"github.com/aristath/marketlens/internal/modules/resolver"
	"github.com/aristath/marketlens/internal/modules/riskfactors"
	"github.com/aristath/marketlens/internal/modules/sectors"
	"github.com/aristath/marketlens/internal/scheduler"
	"github.com/aristath/marketlens/internal/server"
	"github.com/aristath/marketlens/pkg/logger"
)

func main() {
	// Load configuration first to get log level
	cfg, err := config.Load()
	if err != nil {
		fallbackLog := logger.New(logger.Config{Level: "info", Pretty: true})
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})
	logger.SetGlobalLogger(log)

	log.Info().Msg("Starting MarketLens")

	// Client data cache database (Yahoo history and search responses)
	db, err := database.New(database.Config{
		Path: filepath.Join(cfg.DataDir, "client_data.db"),
		Name: "client_data",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open client data database")
	}
	defer db.Close()

	cacheRepo := clientdata.NewRepository(db.Conn())
	if err := cacheRepo.InitSchema(); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize client data schema")
	}

	// Market data client, cache-first with stale fallback
	yahooClient := yahoo.NewClient(cacheRepo, log)
	if cfg.YahooBaseURL != "" {
		yahooClient.SetBaseURL(cfg.YahooBaseURL)
	}
	yahooClient.SetTimeout(cfg.FetchTimeout)
	yahooClient.SetCacheTTLs(cfg.HistoryTTL, cfg.SearchTTL)

	// Analysis pipeline
	tickerResolver := resolver.New(resolver.DefaultAliases(), yahooClient, log)
	classifier := sectors.NewClassifier(sectors.DefaultRules())
	riskModel := riskfactors.NewDefaultModel()

	analysisService := analysis.NewService(
		tickerResolver,
		classifier,
		riskModel,
		yahooClient,
		cfg.DefaultPeriod,
		log,
	)
	analysisHandler := analysishandlers.NewHandler(analysisService, log)

	// Background cache sweep
	sched := scheduler.New(log)
	if err := sched.AddJob(cfg.CacheSweepSpec, clientdata.NewCleanupJob(cacheRepo, log)); err != nil {
		log.Fatal().Err(err).Msg("Failed to schedule cache cleanup job")
	}
	sched.Start()

	srv := server.New(server.Config{
		Log:             log,
		Port:            cfg.Port,
		DevMode:         cfg.DevMode,
		AnalysisHandler: analysisHandler,
	})

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Int("port", cfg.Port).Msg("Server started successfully")

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
	}

	sched.Stop()

	log.Info().Msg("Shutdown complete")
}
