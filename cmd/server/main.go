package main

import (
	"context"
	"fmt"

	"github.com/blushrz/salon-admin/internal/config"
	handlerHTTP "github.com/blushrz/salon-admin/internal/handler/http"
	"github.com/blushrz/salon-admin/internal/hub"
	"github.com/blushrz/salon-admin/internal/logger"
	"github.com/blushrz/salon-admin/internal/server"
	"github.com/blushrz/salon-admin/internal/service"
	"github.com/blushrz/salon-admin/internal/store"
	"github.com/blushrz/salon-admin/internal/workers"
	"github.com/blushrz/salon-admin/migrations"
	"github.com/joho/godotenv"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	log := logger.New("server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	repos, err := buildRepositories(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storage")
	}

	// the hub verifies handshake tokens with its own auth service instance;
	// token verification is stateless, so sharing state is not required
	eventHub := hub.New(service.NewAuthService(repos.Admins, cfg.Auth, log), log)
	defer eventHub.Close()

	services := service.NewServices(repos, eventHub, cfg, log)

	router := handlerHTTP.NewHandler(services, log).Init()
	router.Handle("/ws", eventHub)

	background := workers.NewWorkers(
		workers.NewOfferExpiryWorker(services.Offers, cfg.Workers, log),
	)
	background.Run()
	defer background.Stop()

	srv, err := server.NewServer(router, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// buildRepositories selects the storage backend: PostgreSQL when a DSN is
// configured, the seeded in-memory fixture otherwise.
func buildRepositories(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*store.Repositories, error) {
	if cfg.Storage.DSN == "" {
		log.Info().Msg("no database DSN configured, using the in-memory store")
		return store.NewMemoryRepositories(log), nil
	}

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DSN, log)
	if err != nil {
		return nil, err
	}

	if err = migrations.Migrate(db.DB); err != nil {
		return nil, err
	}

	repos := store.NewPostgresRepositories(db, log)

	if cfg.Storage.Seed {
		if err = store.SeedDefaultAdmin(ctx, repos.Admins, log); err != nil {
			return nil, err
		}
	}

	return repos, nil
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
