// Package search implements the debounced remote search used by the TUI
// search box.
//
// The [Debouncer] is the single source of "which request is current": every
// edit cancels the previously scheduled request, and sequence numbers drop
// responses that resolve after a newer query was issued. Consumers read
// [Update] values from a channel; a Cleared update closes the dropdown, a
// result update replaces it.
//
// Failures never surface to the suggestion UI. A failed request is logged
// and the previous suggestions stand.
package search
