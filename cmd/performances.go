package main

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/honkingversion/honk/internal/catalog"
	"github.com/honkingversion/honk/internal/formatter"
	"github.com/honkingversion/honk/internal/shared"
	"github.com/honkingversion/honk/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Performances lists every performance of a song with local sorting.
func (r *Runner) Performances(ctx context.Context, cmd *cli.Command) error {
	slug := cmd.String("song")
	if slug == "" {
		return fmt.Errorf("%w: --song flag is required", shared.ErrMissingArgument)
	}
	ratedOnly := cmd.Bool("rated-only")

	by, err := catalog.ParseSortOption(cmd.String("sort"))
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidFlag, err)
	}

	song, err := r.catalog.Song(ctx, slug)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", shared.ErrSongNotFound, slug, err)
	}

	performances, err := r.catalog.SongPerformances(ctx, slug)
	if err != nil {
		return fmt.Errorf("failed to fetch performances: %w", err)
	}

	sorted := catalog.FilterPerformances(performances, ratedOnly, by)

	if cmd.Bool("json") {
		return r.writeJSON(sorted, true)
	}

	if cmd.Bool("csv") {
		data, err := formatter.PerformancesToCSV(sorted)
		if err != nil {
			return fmt.Errorf("failed to render CSV: %w", err)
		}
		_, err = r.output.Write(data)
		return err
	}

	title := fmt.Sprintf("%s — %d of %d performances (%s)", song.Name, len(sorted), len(performances), by.Label())
	r.writePlainHeader(title)
	for _, p := range sorted {
		rating := "unrated"
		if p.Rated() {
			rating = fmt.Sprintf("%.2f", p.Rating())
		}
		r.writePlain("%s  %-40s set %d  %s (%d votes)\n", p.Show.Date, p.Show.Venue, p.SetNumber, rating, p.VoteCount)
	}
	return nil
}

// PerformancesExport exports the history of multiple songs concurrently.
func (r *Runner) PerformancesExport(ctx context.Context, cmd *cli.Command) error {
	var slugs []string
	for _, s := range strings.Split(cmd.String("songs"), ",") {
		if s = strings.TrimSpace(s); s != "" {
			slugs = append(slugs, s)
		}
	}
	if len(slugs) == 0 {
		return fmt.Errorf("%w: --songs must name at least one slug", shared.ErrMissingArgument)
	}

	by, err := catalog.ParseSortOption(cmd.String("sort"))
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidFlag, err)
	}

	prog := make(chan tasks.ProgressUpdate, 50)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for update := range prog {
			r.writePlain("%s\n", update.Message)
		}
	}()

	result, err := r.engine.BulkHistory(ctx, prog, slugs, tasks.BulkHistoryOpts{
		Format:     cmd.String("format"),
		OutputDir:  cmd.String("output"),
		NumWorkers: int(cmd.Int("workers")),
		RateLimit:  r.config.Search.RateLimit,
		SortBy:     by,
		RatedOnly:  cmd.Bool("rated-only"),
	})
	close(prog)
	wg.Wait()

	if err != nil {
		return fmt.Errorf("bulk export failed: %w", err)
	}

	r.writePlainln("✓ Exported %d of %d songs to %s", result.SuccessfulExports, result.TotalSongs, result.OutputDirectory)
	if result.FailedExports > 0 {
		r.writePlain("✗ %d songs failed, see %s\n", result.FailedExports, result.ManifestPath)
	}
	return nil
}
