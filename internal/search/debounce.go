package search

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/honkingversion/honk/internal/models"
)

const (
	// DefaultQuiet is the typing-settle period before a query is issued.
	DefaultQuiet = 300 * time.Millisecond
	// DefaultMinQueryLen is the minimum trimmed query length that triggers
	// a request. Shorter queries clear the suggestion list instead.
	DefaultMinQueryLen = 2
)

// Func performs the actual remote search for a settled query.
type Func func(ctx context.Context, query string) ([]models.SearchResult, error)

// Update is one suggestion-list transition delivered to the consumer.
//
// Cleared updates carry no results and mean "close the dropdown"; they are
// emitted when the query drops below the minimum length.
type Update struct {
	Query   string
	Results []models.SearchResult
	Cleared bool
}

// Debouncer collapses a stream of query edits into at most one in-flight
// request per settled typing burst.
//
// Each edit cancels the previously scheduled request before scheduling its
// own, so only one timer/request chain is alive at a time. On top of that,
// every scheduled request carries a sequence number and a response is applied
// only while its sequence is still the latest issued: a slow response that
// arrives after a newer query was scheduled is dropped rather than
// overwriting fresher results.
type Debouncer struct {
	mu     sync.Mutex
	timer  *time.Timer
	seq    uint64
	quiet  time.Duration
	minLen int
	search Func
	logger *log.Logger

	updates chan Update
}

// Option configures a [Debouncer].
type Option func(*Debouncer)

// WithQuiet overrides the settle period.
func WithQuiet(d time.Duration) Option {
	return func(db *Debouncer) { db.quiet = d }
}

// WithMinQueryLen overrides the minimum query length.
func WithMinQueryLen(n int) Option {
	return func(db *Debouncer) { db.minLen = n }
}

// NewDebouncer creates a debouncer delivering updates on [Debouncer.Updates].
func NewDebouncer(search Func, logger *log.Logger, opts ...Option) *Debouncer {
	db := &Debouncer{
		quiet:   DefaultQuiet,
		minLen:  DefaultMinQueryLen,
		search:  search,
		logger:  logger,
		updates: make(chan Update, 8),
	}
	for _, opt := range opts {
		opt(db)
	}
	return db
}

// Updates returns the channel on which suggestion transitions arrive.
func (db *Debouncer) Updates() <-chan Update {
	return db.updates
}

// Update feeds one query edit into the debouncer.
//
// A query shorter than the minimum clears suggestions immediately and issues
// no request. Otherwise the search is scheduled after the quiet period;
// editing again before it elapses discards the pending schedule.
func (db *Debouncer) Update(ctx context.Context, query string) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.timer != nil {
		db.timer.Stop()
		db.timer = nil
	}

	trimmed := strings.TrimSpace(query)
	if len([]rune(trimmed)) < db.minLen {
		db.seq++ // invalidate any in-flight response
		db.deliver(Update{Query: trimmed, Cleared: true})
		return
	}

	db.seq++
	seq := db.seq

	db.timer = time.AfterFunc(db.quiet, func() {
		results, err := db.search(ctx, trimmed)

		db.mu.Lock()
		defer db.mu.Unlock()

		if seq != db.seq {
			// A newer query was issued while this one was in flight.
			return
		}
		if err != nil {
			// Degrade to the prior suggestions; no user-facing error.
			db.logger.Warn("search failed", "query", trimmed, "error", err)
			return
		}
		db.deliver(Update{Query: trimmed, Results: results})
	})
}

// Cancel discards any pending scheduled request and invalidates in-flight
// responses. Call on navigation away from the search box.
func (db *Debouncer) Cancel() {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.timer != nil {
		db.timer.Stop()
		db.timer = nil
	}
	db.seq++
}

// deliver pushes an update without blocking the timer goroutine. Consumers
// that fall behind lose the oldest update; only the latest matters.
func (db *Debouncer) deliver(u Update) {
	for {
		select {
		case db.updates <- u:
			return
		default:
			select {
			case <-db.updates:
			default:
			}
		}
	}
}
