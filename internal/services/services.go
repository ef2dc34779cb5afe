// package services defines interface Catalog for the HonkingVersion REST API
package services

import (
	"context"

	"github.com/honkingversion/honk/internal/models"
)

// Catalog defines the read surface of the HonkingVersion API that the client
// consumes. All persistence, ranking, and aggregation live behind it.
type Catalog interface {
	// Search queries songs, shows, and users for a free-text term.
	Search(ctx context.Context, term string) ([]models.SearchResult, error)

	// Shows retrieves the full show collection.
	Shows(ctx context.Context) ([]models.Show, error)

	// Show retrieves a single show by its ISO date.
	Show(ctx context.Context, date string) (*models.Show, error)

	// Venues retrieves venue references for filter controls.
	Venues(ctx context.Context) ([]models.Venue, error)

	// Song retrieves a song entry by slug.
	Song(ctx context.Context, slug string) (*models.Song, error)

	// SongPerformances retrieves every performance of a song.
	SongPerformances(ctx context.Context, slug string) ([]models.Performance, error)

	// Name returns the name of the backing service.
	Name() string
}
