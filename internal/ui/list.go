package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/honkingversion/honk/internal/catalog"
	"github.com/honkingversion/honk/internal/models"
)

var (
	_ list.Item = showItem{}
	_ list.Item = resultItem{}
	_ list.Item = performanceItem{}
)

// showItem wraps [models.Show] to implement [list.Item].
type showItem struct {
	show models.Show
}

func (i showItem) FilterValue() string { return i.show.Venue }
func (i showItem) Title() string       { return fmt.Sprintf("%s — %s", i.show.Date, i.show.Venue) }
func (i showItem) Description() string {
	desc := i.show.Location
	if t := catalog.ClassifyVenue(i.show.Venue); t != catalog.VenueOther {
		desc = fmt.Sprintf("%s • %s", desc, t)
	}
	return desc
}

// resultItem wraps [models.SearchResult] to implement [list.Item].
type resultItem struct {
	result models.SearchResult
}

func (i resultItem) FilterValue() string { return i.result.Title }
func (i resultItem) Title() string       { return i.result.Title }
func (i resultItem) Description() string {
	if i.result.Subtitle != "" {
		return fmt.Sprintf("%s • %s", i.result.Type, i.result.Subtitle)
	}
	return string(i.result.Type)
}

// performanceItem wraps [models.Performance] to implement [list.Item].
type performanceItem struct {
	performance models.Performance
}

func (i performanceItem) FilterValue() string { return i.performance.Show.Venue }
func (i performanceItem) Title() string {
	return fmt.Sprintf("%s — %s", i.performance.Show.Date, i.performance.Show.Venue)
}
func (i performanceItem) Description() string {
	desc := fmt.Sprintf("set %d • %d votes", i.performance.SetNumber, i.performance.VoteCount)
	if i.performance.Rated() {
		desc = fmt.Sprintf("%s • %.1f avg", desc, i.performance.Rating())
	}
	return desc
}
