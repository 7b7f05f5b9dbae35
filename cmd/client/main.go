package main

import (
	"fmt"

	"github.com/MKhiriev/go-cloud-vault/internal/client"
	"github.com/MKhiriev/go-cloud-vault/internal/config"
	"github.com/MKhiriev/go-cloud-vault/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("vault-client", "info").Fatal().Err(err).Msg("error getting configs")
	}

	// The client logs to a file so log lines do not tear the TUI.
	log := logger.NewFileLogger(cfg.App.LogFile, "vault-client", cfg.App.LogLevel)

	app, err := client.NewApp(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
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
