package tasks

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/honkingversion/honk/internal/catalog"
	"github.com/honkingversion/honk/internal/formatter"
	"github.com/honkingversion/honk/internal/models"
	"github.com/honkingversion/honk/internal/shared"
	"golang.org/x/time/rate"
)

// BulkHistoryOpts contains configuration for bulk performance-history exports.
type BulkHistoryOpts struct {
	Format     string             // Export format: json or csv
	OutputDir  string             // Base output directory (default: honk_history_{epoch})
	NumWorkers int                // Concurrent workers (default: 5)
	RateLimit  float64            // Requests per second (default: 5)
	SortBy     catalog.SortOption // Ordering applied before export (default: recent)
	RatedOnly  bool               // Drop unrated performances before export
}

// SongHistoryJob carries one fetched song history to a worker.
type SongHistoryJob struct {
	Slug         string
	Song         *models.Song
	Performances []models.Performance
}

// SongHistoryResult is the outcome of exporting one song's history.
type SongHistoryResult struct {
	Slug     string
	SongName string
	Success  bool
	Files    []string
	Error    error
}

// BulkHistoryResult summarizes a bulk history export.
type BulkHistoryResult struct {
	TotalSongs        int
	SuccessfulExports int
	FailedExports     int
	OutputDirectory   string
	ManifestPath      string
	Results           []SongHistoryResult
}

// BulkHistory exports the performance history of multiple songs concurrently
// with rate limiting and progress tracking.
//
// Fetching is serialized behind a rate limiter to stay polite to the API;
// file writes run on a worker pool. Partial failures are collected per song
// and a manifest file summarizes the run.
func (e *HistoryEngine) BulkHistory(
	ctx context.Context,
	prog chan<- ProgressUpdate,
	slugs []string,
	opts BulkHistoryOpts,
) (*BulkHistoryResult, error) {
	if e.catalog == nil {
		return nil, fmt.Errorf("%w: catalog service not initialized", shared.ErrServiceUnavailable)
	}

	if opts.OutputDir == "" {
		opts.OutputDir = fmt.Sprintf("honk_history_%d", time.Now().Unix())
	}
	if opts.NumWorkers <= 0 {
		opts.NumWorkers = 5
	}
	if opts.NumWorkers > 10 {
		opts.NumWorkers = 10
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 5.0
	}
	if opts.SortBy == "" {
		opts.SortBy = catalog.SortRecent
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	result := &BulkHistoryResult{
		TotalSongs:      len(slugs),
		OutputDirectory: opts.OutputDir,
		Results:         make([]SongHistoryResult, 0, len(slugs)),
	}

	limiter := rate.NewLimiter(rate.Limit(opts.RateLimit), 1)

	jobs := make(chan SongHistoryJob, len(slugs))
	results := make(chan SongHistoryResult, len(slugs))

	var wg sync.WaitGroup
	for i := 0; i < opts.NumWorkers; i++ {
		wg.Add(1)
		go e.exportWorker(ctx, &wg, jobs, results, opts)
	}

	go func() {
		for i, slug := range slugs {
			select {
			case <-ctx.Done():
				close(jobs)
				return
			default:
			}

			if err := limiter.Wait(ctx); err != nil {
				close(jobs)
				return
			}

			e.sendProgress(prog, fetchingSongUpdate(i+1, len(slugs), slug))

			song, err := e.catalog.Song(ctx, slug)
			if err != nil {
				results <- SongHistoryResult{
					Slug:     slug,
					SongName: fmt.Sprintf("Unknown (%s)", slug),
					Success:  false,
					Error:    fmt.Errorf("failed to fetch song: %w", err),
				}
				continue
			}

			performances, err := e.catalog.SongPerformances(ctx, slug)
			if err != nil {
				results <- SongHistoryResult{
					Slug:     slug,
					SongName: song.Name,
					Success:  false,
					Error:    fmt.Errorf("failed to fetch performances: %w", err),
				}
				continue
			}

			jobs <- SongHistoryJob{Slug: slug, Song: song, Performances: performances}
		}
		close(jobs)
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	completed := 0
	for res := range results {
		completed++
		result.Results = append(result.Results, res)

		if res.Success {
			result.SuccessfulExports++
			e.sendProgress(prog, exportCompletedUpdate(completed, len(slugs), res.SongName, len(res.Files)))
		} else {
			result.FailedExports++
			e.sendProgress(prog, exportFailedUpdate(completed, len(slugs), res.SongName, res.Error))
		}
	}

	manifestPath := filepath.Join(opts.OutputDir, "history_manifest.json")
	if err := writeManifest(result, manifestPath); err != nil {
		return result, fmt.Errorf("export completed but failed to write manifest: %w", err)
	}
	result.ManifestPath = manifestPath
	return result, nil
}

// exportWorker is a worker goroutine that writes song histories from the jobs channel.
func (e *HistoryEngine) exportWorker(
	ctx context.Context,
	wg *sync.WaitGroup,
	jobs <-chan SongHistoryJob,
	results chan<- SongHistoryResult,
	opts BulkHistoryOpts,
) {
	defer wg.Done()

	for job := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
		}

		results <- e.exportSingleSong(job, opts)
	}
}

// exportSingleSong writes one song's sorted history to the configured format.
func (e *HistoryEngine) exportSingleSong(j SongHistoryJob, opts BulkHistoryOpts) SongHistoryResult {
	result := SongHistoryResult{
		Slug:     j.Slug,
		SongName: j.Song.Name,
		Success:  false,
		Files:    []string{},
	}

	sorted := catalog.FilterPerformances(j.Performances, opts.RatedOnly, opts.SortBy)

	switch opts.Format {
	case "csv":
		data, err := formatter.PerformancesToCSV(sorted)
		if err != nil {
			result.Error = fmt.Errorf("CSV export failed: %w", err)
			return result
		}
		csvPath := filepath.Join(opts.OutputDir, fmt.Sprintf("%s.csv", j.Slug))
		if err := os.WriteFile(csvPath, data, 0644); err != nil {
			result.Error = fmt.Errorf("CSV write failed: %w", err)
			return result
		}
		result.Files = []string{csvPath}
		result.Success = true

	case "json":
		fallthrough
	default:
		history := struct {
			Song         *models.Song         `json:"song"`
			Performances []models.Performance `json:"performances"`
		}{Song: j.Song, Performances: sorted}

		data, err := shared.MarshalJSON(history, true)
		if err != nil {
			result.Error = fmt.Errorf("JSON marshal failed: %w", err)
			return result
		}
		jsonPath := filepath.Join(opts.OutputDir, fmt.Sprintf("%s.json", j.Slug))
		if err := os.WriteFile(jsonPath, data, 0644); err != nil {
			result.Error = fmt.Errorf("JSON write failed: %w", err)
			return result
		}
		result.Files = []string{jsonPath}
		result.Success = true
	}
	return result
}

// writeManifest records the run summary with errors flattened to strings.
func writeManifest(result *BulkHistoryResult, path string) error {
	type manifestEntry struct {
		Slug     string   `json:"slug"`
		SongName string   `json:"song_name"`
		Success  bool     `json:"success"`
		Files    []string `json:"files,omitempty"`
		Error    string   `json:"error,omitempty"`
	}
	manifest := struct {
		TotalSongs        int             `json:"total_songs"`
		SuccessfulExports int             `json:"successful_exports"`
		FailedExports     int             `json:"failed_exports"`
		OutputDirectory   string          `json:"output_directory"`
		Results           []manifestEntry `json:"results"`
	}{
		TotalSongs:        result.TotalSongs,
		SuccessfulExports: result.SuccessfulExports,
		FailedExports:     result.FailedExports,
		OutputDirectory:   result.OutputDirectory,
		Results:           make([]manifestEntry, 0, len(result.Results)),
	}

	for _, res := range result.Results {
		entry := manifestEntry{
			Slug:     res.Slug,
			SongName: res.SongName,
			Success:  res.Success,
			Files:    res.Files,
		}
		if res.Error != nil {
			entry.Error = res.Error.Error()
		}
		manifest.Results = append(manifest.Results, entry)
	}

	data, err := shared.MarshalJSON(manifest, true)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
