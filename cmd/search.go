package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/honkingversion/honk/internal/repositories"
	"github.com/honkingversion/honk/internal/shared"
	"github.com/urfave/cli/v3"
)

// Search queries the archive and prints matching songs, shows, and users.
func (r *Runner) Search(ctx context.Context, cmd *cli.Command) error {
	query := strings.TrimSpace(cmd.StringArg("query"))
	useJSON := cmd.Bool("json")

	if len([]rune(query)) < r.config.Search.MinQueryLen {
		return fmt.Errorf("%w: need at least %d characters", shared.ErrQueryTooShort, r.config.Search.MinQueryLen)
	}

	r.logger.Info("searching", "query", query)

	results, err := r.catalog.Search(ctx, query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if !cmd.Bool("no-history") {
		r.recordSearch(query, len(results))
	}

	if useJSON {
		return r.writeJSON(results, true)
	}

	if len(results) == 0 {
		return r.writePlain("No results for %q\n", query)
	}

	r.writePlainHeader(fmt.Sprintf("Results for %q", query))
	for _, result := range results {
		line := fmt.Sprintf("[%s] %s", result.Type, result.Title)
		if result.Subtitle != "" {
			line += " — " + result.Subtitle
		}
		r.writePlain("%s\n", line)
		r.writePlain("      %s\n", result.URL)
	}
	return nil
}

// recordSearch logs the term to the local history table. Failures are
// non-fatal; searching works without a cache database.
func (r *Runner) recordSearch(term string, resultCount int) {
	db, err := r.openDatabase()
	if err != nil {
		r.logger.Debug("search history unavailable", "error", err)
		return
	}
	defer db.Close()

	history := repositories.NewHistoryRepository(db)
	if err := history.Record(term, resultCount); err != nil {
		r.logger.Debug("failed to record search", "error", err)
	}
}

// SearchHistory lists recent search terms from the local cache.
func (r *Runner) SearchHistory(ctx context.Context, cmd *cli.Command) error {
	limit := cmd.Int("limit")

	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	history := repositories.NewHistoryRepository(db)
	entries, err := history.Recent(int(limit))
	if err != nil {
		return fmt.Errorf("failed to read search history: %w", err)
	}

	if len(entries) == 0 {
		return r.writePlain("No search history yet\n")
	}

	r.writePlainHeader("Recent searches")
	for _, entry := range entries {
		r.writePlain("%-30s %d results\n", entry.Term, entry.ResultCount)
	}
	return nil
}
