package repositories

import (
	"database/sql"
	"fmt"

	"github.com/honkingversion/honk/internal/models"
)

// ShowRepository persists cached show listings in SQLite.
type ShowRepository struct {
	db *sql.DB
}

// NewShowRepository creates a repository backed by the given database.
func NewShowRepository(db *sql.DB) *ShowRepository {
	return &ShowRepository{db: db}
}

// Upsert inserts a show or refreshes an existing cached row by remote ID.
func (r *ShowRepository) Upsert(show models.Show) error {
	_, err := r.db.Exec(`
		INSERT INTO shows (remote_id, date, venue, location, notes)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (remote_id) DO UPDATE SET
			date = excluded.date,
			venue = excluded.venue,
			location = excluded.location,
			notes = excluded.notes,
			fetched_at = CURRENT_TIMESTAMP`,
		show.ID, show.Date, show.Venue, show.Location, show.Notes)
	if err != nil {
		return fmt.Errorf("failed to upsert show %d: %w", show.ID, err)
	}
	return nil
}

// GetByDate retrieves a cached show by ISO date.
func (r *ShowRepository) GetByDate(date string) (*models.Show, error) {
	row := r.db.QueryRow(`
		SELECT remote_id, date, venue, location, COALESCE(notes, '')
		FROM shows WHERE date = ?`, date)

	var show models.Show
	if err := row.Scan(&show.ID, &show.Date, &show.Venue, &show.Location, &show.Notes); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get show %s: %w", date, err)
	}
	return &show, nil
}

// List retrieves all cached shows ordered by date descending.
func (r *ShowRepository) List() ([]models.Show, error) {
	rows, err := r.db.Query(`
		SELECT remote_id, date, venue, location, COALESCE(notes, '')
		FROM shows ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list shows: %w", err)
	}
	defer rows.Close()

	var shows []models.Show
	for rows.Next() {
		var show models.Show
		if err := rows.Scan(&show.ID, &show.Date, &show.Venue, &show.Location, &show.Notes); err != nil {
			return nil, fmt.Errorf("failed to scan show: %w", err)
		}
		shows = append(shows, show)
	}
	return shows, rows.Err()
}

// Count returns the number of cached shows.
func (r *ShowRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM shows").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count shows: %w", err)
	}
	return count, nil
}

// ReplaceAll refreshes the whole cache in one transaction.
func (r *ShowRepository) ReplaceAll(shows []models.Show) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM shows"); err != nil {
		return fmt.Errorf("failed to clear shows: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO shows (remote_id, date, venue, location, notes)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, show := range shows {
		if _, err := stmt.Exec(show.ID, show.Date, show.Venue, show.Location, show.Notes); err != nil {
			return fmt.Errorf("failed to insert show %d: %w", show.ID, err)
		}
	}

	return tx.Commit()
}
