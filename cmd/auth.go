package main

import (
	"context"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/honkingversion/honk/internal/shared"
	"github.com/urfave/cli/v3"
)

// AuthToken stores an API bearer token in the config file.
func (r *Runner) AuthToken(ctx context.Context, cmd *cli.Command) error {
	token := cmd.StringArg("token")
	configPath := cmd.String("config")

	if token == "" {
		return fmt.Errorf("%w: token argument is required", shared.ErrMissingArgument)
	}

	config, err := shared.LoadConfig(configPath)
	if err != nil {
		if _, statErr := os.Stat(configPath); statErr != nil {
			r.logger.Info("config file not found, creating from template", "path", configPath)
			if err := shared.CreateConfigFile(configPath); err != nil {
				return fmt.Errorf("failed to create config file: %w", err)
			}
			if config, err = shared.LoadConfig(configPath); err != nil {
				return fmt.Errorf("failed to load created config: %w", err)
			}
		} else {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}

	config.API.Token = token

	f, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(config); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	r.logger.Info("token saved", "path", configPath)
	return r.writePlain("✓ Token saved to %s\n", configPath)
}

// AuthStatus checks connectivity to the archive API.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	r.logger.Info("checking API connectivity", "url", r.config.API.BaseURL)

	shows, err := r.catalog.Shows(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrServiceUnavailable, err)
	}

	r.writePlain("✓ %s reachable\n", r.config.API.BaseURL)
	r.writePlain("Shows available: %d\n", len(shows))
	if r.config.API.Token != "" {
		r.writePlain("Authentication: ✓ token configured\n")
	} else {
		r.writePlain("Authentication: ✗ no token (read-only access)\n")
	}
	return nil
}
