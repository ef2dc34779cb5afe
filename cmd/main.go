package main

import (
	"context"
	"errors"
	"os"

	"github.com/charmbracelet/log"
	"github.com/honkingversion/honk/internal/services"
	"github.com/honkingversion/honk/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		} else {
			logger.Warn("failed to load config.toml, using defaults", "error", err)
		}
	}
	shared.ApplyEnvOverrides(config, ".env")

	if config.App.Mode == shared.ModeDev {
		shared.SetLogLevel(logger, log.DebugLevel)
	}

	catalog := services.NewHonkingService(services.HonkingOpts{
		BaseURL:   config.API.BaseURL,
		Token:     config.API.Token,
		RateLimit: config.Search.RateLimit,
	})
	apiService := services.NewAPIService(config.API.BaseURL, nil)

	runner := NewRunner(RunnerOpts{
		Config:  config,
		Catalog: catalog,
		API:     apiService,
		Logger:  logger,
	})

	app := &cli.Command{
		Name:     "honk",
		Usage:    "Browse and search the HonkingVersion live show archive",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		err_ := errors.Unwrap(err)
		if errors.Is(err_, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		} else {
			logger.Fatalf("application error: %v", err)
		}
	}
}
