package catalog

import "strings"

// VenueType is a coarse classification of a venue derived from its name.
type VenueType string

const (
	VenueArena    VenueType = "Arena"
	VenueTheater  VenueType = "Theater/Hall"
	VenueFestival VenueType = "Festival"
	VenuePark     VenueType = "Park"
	VenueGarden   VenueType = "Garden"
	VenueClub     VenueType = "Club/Bar"
	VenueOther    VenueType = "Other"
)

// venueRules maps keyword sets to venue types, checked in order.
// First matching rule wins; "amphith" covers both amphitheater and
// amphitheatre spellings.
var venueRules = []struct {
	keywords []string
	venue    VenueType
}{
	{[]string{"amphith", "arena"}, VenueArena},
	{[]string{"theater", "theatre", "hall"}, VenueTheater},
	{[]string{"festival"}, VenueFestival},
	{[]string{"park"}, VenuePark},
	{[]string{"garden"}, VenueGarden},
	{[]string{"bar", "pub", "club"}, VenueClub},
}

// ClassifyVenue buckets a venue name into a [VenueType].
//
// Classification is total and deterministic: every input maps to exactly one
// type, falling through to [VenueOther] when no keyword matches.
func ClassifyVenue(name string) VenueType {
	lowered := strings.ToLower(name)
	for _, rule := range venueRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lowered, kw) {
				return rule.venue
			}
		}
	}
	return VenueOther
}
