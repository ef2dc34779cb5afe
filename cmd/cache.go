package main

import (
	"context"
	"fmt"

	"github.com/honkingversion/honk/internal/repositories"
	"github.com/urfave/cli/v3"
)

// CacheShows refreshes the local show cache from the API.
func (r *Runner) CacheShows(ctx context.Context, cmd *cli.Command) error {
	r.logger.Info("refreshing show cache", "source", r.catalog.Name())

	shows, err := r.catalog.Shows(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch shows: %w", err)
	}

	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := repositories.NewShowRepository(db).ReplaceAll(shows); err != nil {
		return fmt.Errorf("failed to cache shows: %w", err)
	}

	r.logger.Infof("cached %d shows", len(shows))
	return r.writePlain("✓ Cached %d shows\n", len(shows))
}

// CacheStatus reports the cached show count and recent searches.
func (r *Runner) CacheStatus(ctx context.Context, cmd *cli.Command) error {
	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	count, err := repositories.NewShowRepository(db).Count()
	if err != nil {
		return fmt.Errorf("failed to count cached shows: %w", err)
	}

	entries, err := repositories.NewHistoryRepository(db).Recent(5)
	if err != nil {
		return fmt.Errorf("failed to read search history: %w", err)
	}

	r.writePlainHeader("Cache status")
	r.writePlain("Database: %s\n", r.config.Database.Path)
	r.writePlain("Cached shows: %d\n", count)
	if len(entries) > 0 {
		r.writePlain("Recent searches:\n")
		for _, entry := range entries {
			r.writePlain("  %s (%d results)\n", entry.Term, entry.ResultCount)
		}
	}
	return nil
}
