package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"contactbook/internal/auth"
	"contactbook/internal/config"
	"contactbook/internal/db"
	"contactbook/internal/logger"
	"contactbook/internal/repository"
	"contactbook/internal/service"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load(ctx)
	if err != nil {
		boot := zerolog.New(os.Stderr)
		boot.Fatal().Err(err).Msg("load config")
	}
	log := logger.New(logger.Options{Level: cfg.LogLevel, Pretty: true})
	log.Info().Msg("starting seed script")

	// Connect to database
	gormDB, err := db.Open(cfg.DB.Driver, cfg.DB.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Run migrations to ensure schema is up to date
	if err := db.Migrate(gormDB, false); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}
	log.Info().Msg("database migrations completed")

	hasher := auth.NewBcryptHasher(auth.DefaultBcryptCost)
	users := service.NewUserService(repository.NewUserRepository(gormDB), hasher, nil)
	contacts := service.NewContactService(repository.NewContactRepository(gormDB), nil)

	created, err := seedAdmin(ctx, users, cfg.Seed)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to seed admin")
	}
	log.Info().Str("email", cfg.Seed.AdminEmail).Bool("created", created).Msg("admin principal ready")

	list := sampleContacts
	if cfg.Seed.ContactsURL != "" {
		log.Info().Str("url", cfg.Seed.ContactsURL).Msg("fetching contacts")
		list, err = fetchContacts(ctx, cfg.Seed.ContactsURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to fetch contacts")
		}
	}

	result, err := seedContacts(ctx, contacts, list)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to seed contacts")
	}

	log.Info().
		Int("created", result.Created).
		Int("existing", result.Existing).
		Int("invalid", result.Invalid).
		Msg("seed completed")
}
