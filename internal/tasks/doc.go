// Package tasks implements long-running catalog operations.
//
// The core abstraction is HistoryEngine, which fetches and exports
// performance histories for batches of songs. Fetching is rate limited and
// file writes run on a bounded worker pool; progress updates are emitted on
// channels for non-blocking status reporting to CLI/UI layers.
package tasks
