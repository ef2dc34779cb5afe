package main

import (
	"context"
	"fmt"

	"github.com/honkingversion/honk/internal/catalog"
	"github.com/urfave/cli/v3"
)

// Venues lists known venues with their keyword-classified types.
func (r *Runner) Venues(ctx context.Context, cmd *cli.Command) error {
	venues, err := r.catalog.Venues(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch venues: %w", err)
	}

	if cmd.Bool("json") {
		type classified struct {
			Name string `json:"name"`
			Slug string `json:"slug"`
			Type string `json:"type"`
		}
		out := make([]classified, len(venues))
		for i, v := range venues {
			out[i] = classified{Name: v.Name, Slug: v.Slug, Type: string(catalog.ClassifyVenue(v.Name))}
		}
		return r.writeJSON(out, true)
	}

	r.writePlainHeader(fmt.Sprintf("%d venues", len(venues)))
	for _, v := range venues {
		r.writePlain("%-40s %s\n", v.Name, catalog.ClassifyVenue(v.Name))
	}
	return nil
}
