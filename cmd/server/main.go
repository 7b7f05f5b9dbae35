package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cloud-vault/internal/config"
	"github.com/MKhiriev/go-cloud-vault/internal/handler"
	"github.com/MKhiriev/go-cloud-vault/internal/logger"
	"github.com/MKhiriev/go-cloud-vault/internal/server"
	"github.com/MKhiriev/go-cloud-vault/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("vault-server", "info")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log = logger.NewLogger("vault-server", cfg.App.LogLevel)
	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := connectDatabase(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	repository := store.NewBlobRepository(db, log)

	handlers, err := handler.NewHandlers(repository, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	servers, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	servers.RunServer()
}

func connectDatabase(cfg *config.StructuredConfig, log *logger.Logger) (*store.DB, error) {
	ctx := context.Background()

	switch cfg.Storage.DB.Engine {
	case config.EngineSQLite:
		return store.NewConnectSQLite(ctx, cfg.Storage.DB, log)
	default:
		return store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	}
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
