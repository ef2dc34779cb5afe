// Package ui implements the interactive terminal interface.
//
// The model is a single bubbletea state machine with four views: a search
// prompt with a debounced suggestion dropdown, a full result listing, the
// filterable show browser, and a sortable performance history. All filtering
// and sorting runs locally through the catalog package; only search queries
// and the initial collection fetches hit the network.
package ui
