package catalog

import (
	"strings"

	"github.com/agext/levenshtein"
)

// fuzzySimilarity is the minimum levenshtein similarity for a fuzzy venue
// match. 0.8 tolerates a typo or two without matching unrelated names.
const fuzzySimilarity = 0.8

// fuzzyVenueMatch reports whether the term approximately matches the venue
// name or any of its words.
func fuzzyVenueMatch(venue, term string) bool {
	venue = strings.ToLower(venue)
	term = strings.ToLower(term)

	if levenshtein.Match(venue, term, nil) >= fuzzySimilarity {
		return true
	}
	for _, word := range strings.Fields(venue) {
		if levenshtein.Match(word, term, nil) >= fuzzySimilarity {
			return true
		}
	}
	return false
}
