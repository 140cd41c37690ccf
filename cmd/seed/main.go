package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/course-api/internal/adapter"
	"github.com/MKhiriev/course-api/internal/config"
	"github.com/MKhiriev/course-api/internal/logger"
	"github.com/MKhiriev/course-api/internal/seeder"
)

func main() {
	log := logger.NewLogger("course-api-seed")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	data, err := seeder.LoadData(cfg.Seed.FilePath)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.Seed.FilePath).Msg("error loading seed data")
	}

	api, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating api adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	report, err := seeder.NewSeeder(api, log).Run(ctx, data)
	if err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}

	log.Info().
		Int("accounts_created", report.AccountsCreated).
		Int("accounts_skipped", report.AccountsSkipped).
		Int("courses_created", report.CoursesCreated).
		Msg("seeding finished")
}
