// Package repositories provides the SQLite persistence layer for locally
// cached catalog data.
//
// The cache is an offline convenience, not a source of truth: the API remains
// authoritative, and `honk cache shows` simply snapshots its current show
// collection so `honk shows --cached` and the TUI work without a network.
package repositories
