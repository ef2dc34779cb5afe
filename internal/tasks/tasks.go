package tasks

import (
	"github.com/honkingversion/honk/internal/services"
)

// HistoryEngine orchestrates long-running catalog operations.
//
// Operations emit progress updates via channels for non-blocking status
// reporting to CLI/UI layers.
type HistoryEngine struct {
	catalog services.Catalog
}

// NewHistoryEngine creates an engine backed by the given catalog service.
func NewHistoryEngine(catalog services.Catalog) *HistoryEngine {
	return &HistoryEngine{catalog: catalog}
}

// sendProgress sends a progress update without blocking when no consumer
// is attached or the channel is full.
func (e *HistoryEngine) sendProgress(prog chan<- ProgressUpdate, update ProgressUpdate) {
	if prog == nil {
		return
	}
	select {
	case prog <- update:
	default:
	}
}
