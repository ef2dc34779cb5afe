package catalog

import (
	"fmt"
	"strings"

	"github.com/honkingversion/honk/internal/models"
)

// Selection is the ephemeral filter state for a show listing.
//
// Year and decade are mutually exclusive granularities: use [Selection.SetYear]
// and [Selection.SetDecade] so selecting one clears the other. All predicates
// are conjunctive; empty fields are inactive.
type Selection struct {
	Year      string
	Decade    string
	VenueType VenueType
	Term      string

	// Fuzzy widens the free-text predicate with an edit-distance match on
	// the venue name. Opt-in; the substring match always applies first.
	Fuzzy bool
}

// SetYear activates the year filter and clears any decade selection.
// An empty year deactivates the year filter.
func (sel *Selection) SetYear(year string) {
	sel.Year = year
	if year != "" {
		sel.Decade = ""
	}
}

// SetDecade activates the decade filter and clears any year selection.
// An empty decade deactivates the decade filter.
func (sel *Selection) SetDecade(decade string) {
	sel.Decade = decade
	if decade != "" {
		sel.Year = ""
	}
}

// Clear resets every filter field in one action. Clearing an already-empty
// selection is a no-op.
func (sel *Selection) Clear() {
	sel.Year = ""
	sel.Decade = ""
	sel.VenueType = ""
	sel.Term = ""
}

// Active reports whether any filter field is set.
func (sel Selection) Active() bool {
	return sel.Year != "" || sel.Decade != "" || sel.VenueType != "" || sel.Term != ""
}

// Matches reports whether a show passes every active predicate.
func (sel Selection) Matches(show models.Show) bool {
	if sel.Year != "" && !strings.HasPrefix(show.Date, sel.Year) {
		return false
	}

	if sel.Decade != "" && Decade(show.Year()) != sel.Decade {
		return false
	}

	if sel.VenueType != "" && ClassifyVenue(show.Venue) != sel.VenueType {
		return false
	}

	if sel.Term != "" {
		term := strings.ToLower(sel.Term)
		if !strings.Contains(strings.ToLower(show.Venue), term) &&
			!strings.Contains(strings.ToLower(show.Location), term) &&
			!strings.Contains(show.Date, term) {
			if !sel.Fuzzy || !fuzzyVenueMatch(show.Venue, sel.Term) {
				return false
			}
		}
	}

	return true
}

// FilterResult is the outcome of applying a [Selection] to a collection.
type FilterResult struct {
	Shows    []models.Show
	Total    int  // size of the unfiltered collection
	Filtered bool // whether any predicate was active
}

// FilterShows applies the selection to the collection. Pure and synchronous;
// the input slice is never mutated and relative order is preserved.
func FilterShows(shows []models.Show, sel Selection) FilterResult {
	result := FilterResult{
		Total:    len(shows),
		Filtered: sel.Active(),
	}

	if !sel.Active() {
		result.Shows = append([]models.Show(nil), shows...)
		return result
	}

	for _, show := range shows {
		if sel.Matches(show) {
			result.Shows = append(result.Shows, show)
		}
	}

	return result
}

// Summary renders the "N of M shown" line for a listing.
func (r FilterResult) Summary() string {
	return fmt.Sprintf("Showing %d of %d shows", len(r.Shows), r.Total)
}
