package bucketlist

import (
	"strings"
	"unicode/utf8"

	"github.com/dorsabag/bucketListBackendDeploy/core/notion"
)

// Heuristic relation matching. The around_world and episodes tables carry no
// reliable foreign keys, so parent/child links are inferred from record
// content. The keyword and flag tables below are seed data tied to the
// collections this backend was built around; they are kept as open,
// append-only data so new countries and relation spellings are added here
// rather than in the matching code. False positives and negatives are a
// known limitation of the heuristics, not a correctness bug.

// episodeRelationProperties lists every property name an episode's show link
// has been observed under, checked in order.
var episodeRelationProperties = []string{
	"סדרה (Relation)",
	"סדרה",
	"Relation",
	"TV Show",
	"Show",
	"Series",
}

// countryFlags is the set of flag glyphs recognized as marking a country.
var countryFlags = []string{
	"🇩🇪", "🇺🇸", "🇫🇷", "🇮🇱", "🇬🇧", "🇮🇹", "🇪🇸", "🇳🇱", "🇨🇭", "🇦🇹",
	"🇹🇭", "🇩🇰", "🇯🇵", "🇰🇷", "🇨🇳", "🇮🇳", "🇦🇺", "🇨🇦", "🇧🇷", "🇲🇽",
	"🇷🇺", "🇿🇦",
}

// countrySeed carries everything known about one country: its flag, the
// names it may appear under, and city keywords seen in its child items.
type countrySeed struct {
	Flag   string
	Names  []string
	Cities []string
}

var countrySeeds = []countrySeed{
	{
		Flag:   "🇩🇪",
		Names:  []string{"germany"},
		Cities: []string{"berlin", "ברלין", "munich", "hamburg", "cologne", "frankfurt"},
	},
	{
		Flag:   "🇹🇭",
		Names:  []string{"thailand"},
		Cities: []string{"bangkok", "chiang mai", "phuket", "pattaya", "krabi", "samui", "koh samui"},
	},
	{
		Flag:   "🇩🇰",
		Names:  []string{"denmark"},
		Cities: []string{"copenhagen", "aarhus", "odense", "aalborg"},
	},
}

// cityIndicators marks around_world titles that look like cities rather than
// countries, independent of which country they belong to.
var cityIndicators = []string{
	"ברלין", "amsterdam", "copenhagen", "bangkok", "phuket", "krabi",
	"chiang mai", "pattaya", "samui", "koh", "berlin", "munich", "hamburg",
}

// EpisodeMatchesShow reports whether an episode record belongs to the given
// show. Candidate relation properties are checked in order; within one, an
// exact relation-id match wins outright, otherwise a resolved title is
// compared case-insensitively for equality or containment either way. The
// first property yielding a match decides.
func EpisodeMatchesShow(showID, showTitle string, props map[string]any) bool {
	for _, name := range episodeRelationProperties {
		value, ok := props[name]
		if !ok || value == nil {
			continue
		}

		switch v := value.(type) {
		case []notion.RelationRef:
			for _, ref := range v {
				if ref.ID == showID {
					return true
				}
			}
			for _, ref := range v {
				title := ref.Title
				if title == "" {
					title = ref.PlainText
				}
				if titlesMatch(showTitle, title) {
					return true
				}
			}
		case string:
			if titlesMatch(showTitle, v) {
				return true
			}
		}
	}
	return false
}

// titlesMatch compares two titles case-insensitively, accepting equality or
// containment in either direction.
func titlesMatch(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	return a == b || strings.Contains(a, b) || strings.Contains(b, a)
}

// CityBelongsToCountry reports whether an around_world item is a child of
// the given country record. An item carrying another known country's flag is
// vetoed regardless of any positive signal.
func CityBelongsToCountry(countryTitle, itemTitle string) bool {
	if hasForeignFlag(countryTitle, itemTitle) {
		return false
	}

	lowerItem := strings.ToLower(itemTitle)

	clean := strings.ToLower(StripFlags(countryTitle))
	if clean != "" && strings.Contains(lowerItem, clean) {
		return true
	}

	lowerCountry := strings.ToLower(countryTitle)
	for _, seed := range countrySeeds {
		if !seedMatchesCountry(seed, countryTitle, lowerCountry) {
			continue
		}
		for _, city := range seed.Cities {
			if strings.Contains(lowerItem, city) {
				return true
			}
		}
	}
	return false
}

func seedMatchesCountry(seed countrySeed, countryTitle, lowerCountry string) bool {
	if seed.Flag != "" && strings.Contains(countryTitle, seed.Flag) {
		return true
	}
	for _, name := range seed.Names {
		if strings.Contains(lowerCountry, name) {
			return true
		}
	}
	return false
}

// hasForeignFlag reports whether the item title carries a known flag that
// belongs to a different country. The target country's own flag is resolved
// from its title, or from the seed table when the title is flagless.
func hasForeignFlag(countryTitle, itemTitle string) bool {
	ownFlag := ""
	lowerCountry := strings.ToLower(countryTitle)
	for _, seed := range countrySeeds {
		if seedMatchesCountry(seed, countryTitle, lowerCountry) {
			ownFlag = seed.Flag
			break
		}
	}

	for _, flag := range countryFlags {
		if flag == ownFlag || strings.Contains(countryTitle, flag) {
			continue
		}
		if strings.Contains(itemTitle, flag) {
			return true
		}
	}
	return false
}

// StripFlags removes every known flag glyph from a title, yielding the clean
// country name.
func StripFlags(title string) string {
	for _, flag := range countryFlags {
		title = strings.ReplaceAll(title, flag, "")
	}
	return strings.TrimSpace(title)
}

// IsParentItem classifies an around_world record as a country rather than a
// city. Flagged titles are always parents; otherwise short titles win unless
// they look like a city.
func IsParentItem(title string) bool {
	for _, flag := range countryFlags {
		if strings.Contains(title, flag) {
			return true
		}
	}

	stripped := strings.ReplaceAll(StripFlags(title), " ", "")
	isShort := utf8.RuneCountInString(stripped) < 15

	lower := strings.ToLower(title)
	looksLikeCity := strings.Contains(title, ",")
	if !looksLikeCity {
		for _, indicator := range cityIndicators {
			if strings.Contains(lower, indicator) {
				looksLikeCity = true
				break
			}
		}
	}

	return isShort && !looksLikeCity
}
