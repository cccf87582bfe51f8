package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/handler/http"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/server"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/session"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/view"
	"github.com/MKhiriev/go-blog/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("blog-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err := log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	cfg.App.Version = buildVersion

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Dur("session_ttl", cfg.App.SessionTTL).
		Dur("request_timeout", cfg.Server.RequestTimeout).
		Msg("received configs")

	if err := run(context.Background(), cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) error {
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, cfg.App, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	renderer, err := view.New()
	if err != nil {
		return fmt.Errorf("error loading templates: %w", err)
	}

	sessionStore := session.NewStore(storages.SessionRepository, cfg.App, log)
	handler := http.NewHandler(services, sessionStore, renderer, storages, cfg, log)

	backgroundWorkers := workers.NewWorkers(
		workers.NewSessionCleaner(sessionStore, cfg.Workers, log),
	)

	srv, err := server.NewServer(handler.Init(), backgroundWorkers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return srv.RunServer(ctx)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
