package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	back      key.Binding
	browse    key.Binding
	filter    key.Binding
	year      key.Binding
	decade    key.Binding
	venueType key.Binding
	fuzzy     key.Binding
	clear     key.Binding
	sort      key.Binding
	rated     key.Binding
	quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:        key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		down:      key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		browse:    key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "browse shows")),
		filter:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "text filter")),
		year:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "cycle year")),
		decade:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "cycle decade")),
		venueType: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "cycle venue type")),
		fuzzy:     key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "fuzzy match")),
		clear:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear filters")),
		sort:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "cycle sort")),
		rated:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rated only")),
		quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.enter},
		{k.back, k.browse, k.filter},
		{k.year, k.decade, k.venueType},
		{k.fuzzy, k.clear, k.sort, k.quit},
	}
}
