package catalog

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/honkingversion/honk/internal/models"
)

// Facets holds the filter option lists derived from a loaded show collection.
//
// Facets depend only on the collection, never on active filters: changing a
// filter selection must not change the options offered.
type Facets struct {
	Years      []string    // distinct 4-digit years, descending
	Decades    []string    // e.g. "2010s", descending
	VenueTypes []VenueType // labels present in the collection, ascending
}

// DeriveFacets recomputes the facet lists for a show collection.
func DeriveFacets(shows []models.Show) Facets {
	yearSet := make(map[string]struct{})
	decadeSet := make(map[string]struct{})
	typeSet := make(map[VenueType]struct{})

	for _, s := range shows {
		year := s.Year()
		if year == "" {
			continue
		}
		yearSet[year] = struct{}{}
		decadeSet[Decade(year)] = struct{}{}
		typeSet[ClassifyVenue(s.Venue)] = struct{}{}
	}

	facets := Facets{
		Years:      make([]string, 0, len(yearSet)),
		Decades:    make([]string, 0, len(decadeSet)),
		VenueTypes: make([]VenueType, 0, len(typeSet)),
	}

	for y := range yearSet {
		facets.Years = append(facets.Years, y)
	}
	for d := range decadeSet {
		facets.Decades = append(facets.Decades, d)
	}
	for t := range typeSet {
		facets.VenueTypes = append(facets.VenueTypes, t)
	}

	sort.Sort(sort.Reverse(sort.StringSlice(facets.Years)))
	sort.Sort(sort.Reverse(sort.StringSlice(facets.Decades)))
	sort.Slice(facets.VenueTypes, func(i, j int) bool {
		return facets.VenueTypes[i] < facets.VenueTypes[j]
	})

	return facets
}

// Decade converts a 4-digit year string into its decade label ("2010s").
// Unparseable years map to the empty decade.
func Decade(year string) string {
	n, err := strconv.Atoi(year)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%ds", n/10*10)
}
