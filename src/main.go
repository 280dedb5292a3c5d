package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/contre95/zenify/src/features/catalog"
	"github.com/contre95/zenify/src/features/config"
	"github.com/contre95/zenify/src/features/hosting"
	"github.com/contre95/zenify/src/features/logging"
	"github.com/contre95/zenify/src/features/metrics"
	"github.com/contre95/zenify/src/features/playlist"
	"github.com/contre95/zenify/src/features/preview"
	"github.com/contre95/zenify/src/features/ui"
	catalogfile "github.com/contre95/zenify/src/infra/catalog"
	"github.com/contre95/zenify/src/infra/catalogapi"
	"github.com/contre95/zenify/src/infra/providers"
	"github.com/contre95/zenify/src/infra/storage"
)

func main() {
	// Load configuration
	cfgManager, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg := cfgManager.Get()

	// Setup default logger with slog
	logger := logging.SetupLogger(cfgManager)
	slog.SetDefault(logger)

	// Collectors always count, the endpoint is optional
	collectors := metrics.NewCollectors()

	// Catalog service
	songs, err := catalogfile.Load(cfg.Catalog.Path)
	if err != nil {
		log.Fatalf("failed to load catalog: %v", err)
	}
	catalogService := catalog.NewService(songs, collectors)

	// Clients' local storage
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		log.Fatalf("failed to open storage: %v", err)
	}
	defer store.Close()

	// Playlist client talking to the catalog API
	apiClient := catalogapi.NewClient(cfg.Client.APIBaseURL, cfgManager.ClientTimeout())
	loader := playlist.NewLoader(apiClient, cfg.Client.SampleSize, collectors)
	sessions := playlist.NewSessions(loader, store, collectors).Limit(cfg.Client.MaxSessions, cfgManager.SessionIdle())
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go sessions.Run(sweepCtx, time.Minute)

	// Song previews
	itunes := providers.NewITunesProvider(cfg.Preview.BaseURL, cfgManager.ClientTimeout())
	previewService := preview.NewService(itunes, cfg.Preview.Enabled, collectors)

	// Create and start the Telegram bot if enabled
	var telegramBot *hosting.TelegramBot
	if cfg.Telegram.Enabled {
		telegramBot, err = hosting.NewTelegramBot(cfgManager, sessions)
		if err != nil {
			slog.Error("Failed to initialize Telegram bot", "error", err)
		} else {
			go telegramBot.Start()
			slog.Info("Telegram bot started")
		}
	}

	var exposed *metrics.Collectors
	if cfg.Metrics.Enabled {
		exposed = collectors
	}
	uiHandler := ui.NewHandler(sessions, previewService.Enabled())
	server := hosting.NewServer(cfgManager, catalogService, previewService, uiHandler, exposed)
	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("server stopped: %v", err)
		}
	}()
	slog.Info("Server started. Press Ctrl+C to shut down.", "port", cfg.Server.Port, "api", cfg.Client.APIBaseURL)

	// Wait for a shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	if telegramBot != nil {
		telegramBot.Stop()
		slog.Info("Telegram bot stopped")
	}

	if err := server.Shutdown(); err != nil {
		log.Fatalf("failed to shutdown server: %v", err)
	}
	slog.Info("Server gracefully shut down.", "sessions", sessions.Count())
}
