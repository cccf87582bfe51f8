package main

import (
	"context"
	"os"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/store"
)

var buildVersion = "N/A"

func main() {
	log := logger.NewLogger("blog-seed")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err := log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	cfg.App.Version = buildVersion

	if cfg.Seed.File == "" {
		log.Fatal().Msg("no seed file given, use --seed-file or SEED_FILE")
	}

	posts, err := loadPosts(cfg.Seed.File)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.Seed.File).Msg("error loading seed file")
	}

	ctx := log.WithContext(context.Background())
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, cfg.App, log)
	if err != nil {
		log.Err(err).Msg("error creating services")
		return
	}

	created, err := seedPosts(ctx, services.PostService, posts)
	if err != nil {
		log.Err(err).Int("created", created).Msg("seeding stopped")
		return
	}
	log.Info().Int("created", created).Msg("seeding finished")
}
