package catalog

import (
	"fmt"
	"sort"

	"github.com/honkingversion/honk/internal/models"
)

// SortOption is the closed set of orderings for a performance listing.
type SortOption string

const (
	SortRecent       SortOption = "recent"
	SortOldest       SortOption = "oldest"
	SortHighestRated SortOption = "highest-rated"
	SortLowestRated  SortOption = "lowest-rated"
	SortMostVoted    SortOption = "most-voted"
)

// SortOptions lists every ordering in display order.
var SortOptions = []SortOption{SortRecent, SortOldest, SortHighestRated, SortLowestRated, SortMostVoted}

// ParseSortOption validates a user-supplied sort key.
func ParseSortOption(s string) (SortOption, error) {
	switch opt := SortOption(s); opt {
	case SortRecent, SortOldest, SortHighestRated, SortLowestRated, SortMostVoted:
		return opt, nil
	default:
		return "", fmt.Errorf("unknown sort option %q", s)
	}
}

// Label returns the display name for a sort option.
func (o SortOption) Label() string {
	switch o {
	case SortRecent:
		return "Most Recent"
	case SortOldest:
		return "Oldest First"
	case SortHighestRated:
		return "Highest Rated"
	case SortLowestRated:
		return "Lowest Rated"
	case SortMostVoted:
		return "Most Voted"
	default:
		return string(o)
	}
}

// SortPerformances returns a sorted copy of the performances.
//
// Missing ratings and vote counts sort as zero, so unrated performances land
// at the bottom of a descending order and the top of an ascending one. The
// sort is stable; ties keep their incoming order.
func SortPerformances(performances []models.Performance, by SortOption) []models.Performance {
	sorted := append([]models.Performance(nil), performances...)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		switch by {
		case SortRecent:
			return a.Show.Date > b.Show.Date
		case SortOldest:
			return a.Show.Date < b.Show.Date
		case SortHighestRated:
			return a.Rating() > b.Rating()
		case SortLowestRated:
			return a.Rating() < b.Rating()
		case SortMostVoted:
			return a.VoteCount > b.VoteCount
		default:
			return false
		}
	})

	return sorted
}

// FilterPerformances optionally drops unrated performances, then sorts.
// This is the performance variant of the listing pipeline.
func FilterPerformances(performances []models.Performance, ratedOnly bool, by SortOption) []models.Performance {
	filtered := performances
	if ratedOnly {
		filtered = make([]models.Performance, 0, len(performances))
		for _, p := range performances {
			if p.Rated() {
				filtered = append(filtered, p)
			}
		}
	}
	return SortPerformances(filtered, by)
}
