// package formatter provides functions to export show and performance listings to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/honkingversion/honk/internal/catalog"
	"github.com/honkingversion/honk/internal/models"
)

// ShowsToCSV converts a show listing to CSV with columns: ID, Date, Venue, VenueType, Location, Notes
func ShowsToCSV(shows []models.Show) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Date", "Venue", "VenueType", "Location", "Notes"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, show := range shows {
		record := []string{
			strconv.Itoa(show.ID),
			show.Date,
			show.Venue,
			string(catalog.ClassifyVenue(show.Venue)),
			show.Location,
			show.Notes,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ShowsToMarkdown converts a show listing to a Markdown document with an
// optional title and a summary line.
func ShowsToMarkdown(shows []models.Show, title, summary string) []byte {
	var buf bytes.Buffer

	if title == "" {
		title = "Shows"
	}
	buf.WriteString(fmt.Sprintf("# %s\n\n", title))
	if summary != "" {
		buf.WriteString(fmt.Sprintf("%s\n\n", summary))
	}

	buf.WriteString("| Date | Venue | Location |\n")
	buf.WriteString("| --- | --- | --- |\n")
	for _, show := range shows {
		buf.WriteString(fmt.Sprintf("| %s | %s | %s |\n", show.Date, show.Venue, show.Location))
	}

	return buf.Bytes()
}

// ShowsToText converts a show listing to plain text, one show per line.
func ShowsToText(shows []models.Show) []byte {
	var buf bytes.Buffer

	for i, show := range shows {
		buf.WriteString(fmt.Sprintf("%d. %s — %s (%s)\n", i+1, show.Date, show.Venue, show.Location))
	}

	return buf.Bytes()
}

// PerformancesToCSV converts a performance listing to CSV with columns:
// ID, Song, Date, Venue, Set, Position, VoteCount, AvgRating
func PerformancesToCSV(performances []models.Performance) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Song", "Date", "Venue", "Set", "Position", "VoteCount", "AvgRating"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, p := range performances {
		rating := ""
		if p.Rated() {
			rating = strconv.FormatFloat(p.Rating(), 'f', 2, 64)
		}
		record := []string{
			strconv.Itoa(p.ID),
			p.Song.Name,
			p.Show.Date,
			p.Show.Venue,
			strconv.Itoa(p.SetNumber),
			strconv.Itoa(p.Position),
			strconv.Itoa(p.VoteCount),
			rating,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// WriteShowsExport exports a show listing to the given path in the given
// format ("csv", "markdown", or "txt"). Returns the written path.
func WriteShowsExport(shows []models.Show, format, path, summary string) (string, error) {
	var data []byte
	var err error

	switch format {
	case "csv":
		if path == "" {
			path = "shows.csv"
		}
		data, err = ShowsToCSV(shows)
	case "markdown", "md":
		if path == "" {
			path = "shows.md"
		}
		data = ShowsToMarkdown(shows, "", summary)
	case "txt", "text":
		if path == "" {
			path = "shows.txt"
		}
		data = ShowsToText(shows)
	default:
		return "", fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}

	return path, nil
}
