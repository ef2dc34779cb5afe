package repositories

import (
	"database/sql"
	"fmt"

	"github.com/honkingversion/honk/internal/shared"
)

// SearchEntry is one remembered search term.
type SearchEntry struct {
	ID          string
	Term        string
	ResultCount int
}

// HistoryRepository records search terms for the TUI's recent-search list.
type HistoryRepository struct {
	db *sql.DB
}

// NewHistoryRepository creates a repository backed by the given database.
func NewHistoryRepository(db *sql.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Record stores a completed search and how many results it returned.
func (r *HistoryRepository) Record(term string, resultCount int) error {
	_, err := r.db.Exec(
		"INSERT INTO searches (id, term, result_count) VALUES (?, ?, ?)",
		shared.GenerateID(), term, resultCount)
	if err != nil {
		return fmt.Errorf("failed to record search: %w", err)
	}
	return nil
}

// Recent returns the latest distinct search terms, newest first.
func (r *HistoryRepository) Recent(limit int) ([]SearchEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := r.db.Query(`
		SELECT id, term, result_count FROM searches
		GROUP BY term
		ORDER BY MAX(searched_at) DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list searches: %w", err)
	}
	defer rows.Close()

	var entries []SearchEntry
	for rows.Next() {
		var e SearchEntry
		if err := rows.Scan(&e.ID, &e.Term, &e.ResultCount); err != nil {
			return nil, fmt.Errorf("failed to scan search: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
