package main

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/honkingversion/honk/internal/search"
	"github.com/honkingversion/honk/internal/shared"
	"github.com/honkingversion/honk/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive search and browse UI.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	if r.catalog == nil {
		return fmt.Errorf("%w: catalog service not initialized", shared.ErrServiceUnavailable)
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/honk-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	debouncer := search.NewDebouncer(
		r.catalog.Search,
		fileLogger,
		search.WithQuiet(time.Duration(r.config.Search.QuietMs)*time.Millisecond),
		search.WithMinQueryLen(r.config.Search.MinQueryLen),
	)
	defer debouncer.Cancel()

	model := ui.NewModel(ctx, r.catalog, debouncer, fileLogger)
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
