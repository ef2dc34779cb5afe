package catalog

import (
	"reflect"
	"testing"

	"github.com/honkingversion/honk/internal/models"
)

func TestSelection(t *testing.T) {
	t.Run("SetYear clears decade", func(t *testing.T) {
		var sel Selection
		sel.SetDecade("2010s")
		sel.SetYear("2019")

		if sel.Year != "2019" || sel.Decade != "" {
			t.Errorf("expected year to replace decade, got %+v", sel)
		}
	})

	t.Run("SetDecade clears year", func(t *testing.T) {
		var sel Selection
		sel.SetYear("2019")
		sel.SetDecade("2010s")

		if sel.Decade != "2010s" || sel.Year != "" {
			t.Errorf("expected decade to replace year, got %+v", sel)
		}
	})

	t.Run("empty setters deactivate without side effects", func(t *testing.T) {
		var sel Selection
		sel.SetDecade("2010s")
		sel.SetYear("")

		if sel.Decade != "2010s" {
			t.Errorf("expected decade untouched, got %+v", sel)
		}
	})

	t.Run("Clear resets every field and is idempotent", func(t *testing.T) {
		sel := Selection{Year: "2019", VenueType: VenueArena, Term: "rocks"}
		sel.Clear()

		if sel.Active() {
			t.Errorf("expected inactive selection, got %+v", sel)
		}

		before := sel
		sel.Clear()
		if sel != before {
			t.Errorf("second clear changed the selection: %+v", sel)
		}
	})
}

func TestFilterShows(t *testing.T) {
	shows := facetShows()

	t.Run("no filters returns the whole collection", func(t *testing.T) {
		result := FilterShows(shows, Selection{})

		if len(result.Shows) != len(shows) || result.Total != len(shows) {
			t.Errorf("expected full collection, got %+v", result)
		}
		if result.Filtered {
			t.Error("expected Filtered to be false")
		}
	})

	t.Run("result is a copy", func(t *testing.T) {
		result := FilterShows(shows, Selection{})
		result.Shows[0].Venue = "mutated"

		if shows[0].Venue == "mutated" {
			t.Error("expected input slice untouched")
		}
	})

	t.Run("year filter matches the date prefix", func(t *testing.T) {
		var sel Selection
		sel.SetYear("2019")

		result := FilterShows(shows, sel)
		if len(result.Shows) != 2 {
			t.Fatalf("expected 2 shows, got %d", len(result.Shows))
		}
		for _, s := range result.Shows {
			if s.Year() != "2019" {
				t.Errorf("unexpected show %+v", s)
			}
		}
	})

	t.Run("decade filter", func(t *testing.T) {
		var sel Selection
		sel.SetDecade("2000s")

		result := FilterShows(shows, sel)
		if len(result.Shows) != 1 || result.Shows[0].ID != 4 {
			t.Errorf("expected the 2008 show, got %+v", result.Shows)
		}
	})

	t.Run("venue type filter", func(t *testing.T) {
		result := FilterShows(shows, Selection{VenueType: VenueTheater})

		if len(result.Shows) != 1 || result.Shows[0].Venue != "The Fillmore Theatre" {
			t.Errorf("expected the theatre show, got %+v", result.Shows)
		}
	})

	t.Run("text filter matches venue, location, and date", func(t *testing.T) {
		tc := []struct {
			name string
			term string
			ids  []int
		}{
			{"venue substring", "rocks", []int{1}},
			{"venue case insensitive", "FILLMORE", []int{2}},
			{"location substring", "new york", []int{3}},
			{"date substring", "12-31", []int{3}},
			{"no match", "zzzz", nil},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				result := FilterShows(shows, Selection{Term: tt.term})

				var ids []int
				for _, s := range result.Shows {
					ids = append(ids, s.ID)
				}
				if !reflect.DeepEqual(ids, tt.ids) {
					t.Errorf("term %q matched %v, want %v", tt.term, ids, tt.ids)
				}
			})
		}
	})

	t.Run("filters are conjunctive", func(t *testing.T) {
		var sel Selection
		sel.SetYear("2019")
		sel.VenueType = VenueGarden

		result := FilterShows(shows, sel)
		if len(result.Shows) != 1 || result.Shows[0].ID != 3 {
			t.Errorf("expected the garden show from 2019, got %+v", result.Shows)
		}

		// The conjunction equals the intersection of individual filters.
		var yearOnly Selection
		yearOnly.SetYear("2019")
		yearMatches := map[int]bool{}
		for _, s := range FilterShows(shows, yearOnly).Shows {
			yearMatches[s.ID] = true
		}
		for _, s := range FilterShows(shows, Selection{VenueType: VenueGarden}).Shows {
			if yearMatches[s.ID] && s.ID != result.Shows[0].ID {
				t.Errorf("conjunction missed show %d", s.ID)
			}
		}
	})

	t.Run("relative order is preserved", func(t *testing.T) {
		var sel Selection
		sel.SetYear("2019")

		result := FilterShows(shows, sel)
		if result.Shows[0].ID != 1 || result.Shows[1].ID != 3 {
			t.Errorf("expected incoming order kept, got %+v", result.Shows)
		}
	})

	t.Run("Summary", func(t *testing.T) {
		var sel Selection
		sel.SetYear("2019")

		result := FilterShows(shows, sel)
		if got := result.Summary(); got != "Showing 2 of 4 shows" {
			t.Errorf("Summary() = %q", got)
		}

		empty := FilterShows(nil, Selection{})
		if got := empty.Summary(); got != "Showing 0 of 0 shows" {
			t.Errorf("Summary() = %q", got)
		}
	})
}

func TestFuzzyMatching(t *testing.T) {
	shows := []models.Show{
		{ID: 1, Date: "2019-06-21", Venue: "Fillmore", Location: "San Francisco, CA"},
	}

	t.Run("off by default", func(t *testing.T) {
		result := FilterShows(shows, Selection{Term: "filmore"})
		if len(result.Shows) != 0 {
			t.Errorf("expected no match without fuzzy, got %+v", result.Shows)
		}
	})

	t.Run("tolerates a typo when enabled", func(t *testing.T) {
		result := FilterShows(shows, Selection{Term: "filmore", Fuzzy: true})
		if len(result.Shows) != 1 {
			t.Errorf("expected fuzzy match, got %+v", result.Shows)
		}
	})

	t.Run("still rejects unrelated terms", func(t *testing.T) {
		result := FilterShows(shows, Selection{Term: "garden", Fuzzy: true})
		if len(result.Shows) != 0 {
			t.Errorf("expected no match, got %+v", result.Shows)
		}
	})
}
