package main

import (
	"context"
	"fmt"

	"github.com/honkingversion/honk/internal/catalog"
	"github.com/honkingversion/honk/internal/formatter"
	"github.com/urfave/cli/v3"
)

// Export writes the (optionally filtered) show collection to a file.
func (r *Runner) Export(ctx context.Context, cmd *cli.Command) error {
	sel := selectionFromFlags(cmd)
	format := cmd.String("format")
	output := cmd.String("output")

	shows, err := r.loadShows(ctx, cmd.Bool("cached"))
	if err != nil {
		return err
	}

	result := catalog.FilterShows(shows, sel)

	path, err := formatter.WriteShowsExport(result.Shows, format, output, result.Summary())
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	r.logger.Info("export written", "path", path, "format", format, "shows", len(result.Shows))
	return r.writePlain("✓ Exported %d shows to %s\n", len(result.Shows), path)
}
