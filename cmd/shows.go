package main

import (
	"context"
	"fmt"

	"github.com/honkingversion/honk/internal/catalog"
	"github.com/honkingversion/honk/internal/models"
	"github.com/honkingversion/honk/internal/repositories"
	"github.com/honkingversion/honk/internal/shared"
	"github.com/urfave/cli/v3"
)

// selectionFromFlags builds a filter selection from the shared filter flags.
func selectionFromFlags(cmd *cli.Command) catalog.Selection {
	var sel catalog.Selection
	sel.SetDecade(cmd.String("decade"))
	sel.SetYear(cmd.String("year"))
	sel.VenueType = catalog.VenueType(cmd.String("venue-type"))
	sel.Term = cmd.String("filter")
	sel.Fuzzy = cmd.Bool("fuzzy")
	return sel
}

// loadShows fetches the show collection from the API, or from the local
// cache when cached is set.
func (r *Runner) loadShows(ctx context.Context, cached bool) ([]models.Show, error) {
	if !cached {
		shows, err := r.catalog.Shows(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch shows: %w", err)
		}
		return shows, nil
	}

	db, err := r.openDatabase()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	shows, err := repositories.NewShowRepository(db).List()
	if err != nil {
		return nil, fmt.Errorf("failed to read cached shows: %w", err)
	}
	return shows, nil
}

// Shows lists the show collection through the local filter pipeline.
func (r *Runner) Shows(ctx context.Context, cmd *cli.Command) error {
	sel := selectionFromFlags(cmd)
	useJSON := cmd.Bool("json")

	shows, err := r.loadShows(ctx, cmd.Bool("cached"))
	if err != nil {
		return err
	}

	result := catalog.FilterShows(shows, sel)

	if useJSON {
		return r.writeJSON(result.Shows, true)
	}

	r.writePlainHeader(result.Summary())
	for _, show := range result.Shows {
		venueType := catalog.ClassifyVenue(show.Venue)
		r.writePlain("%s  %-40s %-12s %s\n", show.Date, show.Venue, venueType, show.Location)
	}
	return nil
}

// Show fetches a single show by date.
func (r *Runner) Show(ctx context.Context, cmd *cli.Command) error {
	date := cmd.StringArg("date")
	if date == "" {
		return fmt.Errorf("%w: date argument is required", shared.ErrMissingArgument)
	}

	show, err := r.catalog.Show(ctx, date)
	if err != nil {
		return fmt.Errorf("failed to fetch show: %w", err)
	}
	if show == nil {
		return fmt.Errorf("%w: %s", shared.ErrShowNotFound, date)
	}

	if cmd.Bool("json") {
		return r.writeJSON(show, true)
	}

	r.writePlainHeader(fmt.Sprintf("%s — %s", show.Date, show.Venue))
	r.writePlain("Location: %s\n", show.Location)
	r.writePlain("Venue type: %s\n", catalog.ClassifyVenue(show.Venue))
	if show.Notes != "" {
		r.writePlain("Notes: %s\n", show.Notes)
	}
	return nil
}
