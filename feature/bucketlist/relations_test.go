package bucketlist

import (
	"testing"

	"github.com/dorsabag/bucketListBackendDeploy/core/notion"

	"github.com/stretchr/testify/assert"
)

func TestEpisodeMatchesShowByRelationID(t *testing.T) {
	props := map[string]any{
		"סדרה": []notion.RelationRef{{ID: "show-1"}},
	}
	assert.True(t, EpisodeMatchesShow("show-1", "The Wire", props))
	assert.False(t, EpisodeMatchesShow("show-2", "The Wire", props))
}

func TestEpisodeMatchesShowIDBeatsTitle(t *testing.T) {
	// The id pass runs before the title pass inside a property, so a title
	// that happens to match a different show cannot shadow an exact id.
	props := map[string]any{
		"Relation": []notion.RelationRef{
			{ID: "other", Title: "The Wire"},
			{ID: "show-1", Title: "Unrelated"},
		},
	}
	assert.True(t, EpisodeMatchesShow("show-1", "Nope", props))
}

func TestEpisodeMatchesShowByResolvedTitle(t *testing.T) {
	props := map[string]any{
		"TV Show": []notion.RelationRef{{ID: "other", Title: "The Wire"}},
	}
	assert.True(t, EpisodeMatchesShow("show-1", "the wire", props))
}

func TestEpisodeMatchesShowByPlainTextFallback(t *testing.T) {
	props := map[string]any{
		"Series": []notion.RelationRef{{ID: "other", PlainText: "The Wire"}},
	}
	assert.True(t, EpisodeMatchesShow("show-1", "The Wire", props))
}

func TestEpisodeMatchesShowStringContainment(t *testing.T) {
	props := map[string]any{"Show": "The Wire S01"}
	assert.True(t, EpisodeMatchesShow("show-1", "The Wire", props))
	assert.False(t, EpisodeMatchesShow("show-1", "Breaking Bad", props))
}

func TestEpisodeMatchesShowEmptyNeverMatches(t *testing.T) {
	props := map[string]any{"Show": ""}
	assert.False(t, EpisodeMatchesShow("show-1", "", props))
	assert.False(t, EpisodeMatchesShow("show-1", "The Wire", map[string]any{}))
}

func TestCityBelongsToCountryByName(t *testing.T) {
	assert.True(t, CityBelongsToCountry("🇩🇪 Germany", "Berlin, Germany"))
	assert.False(t, CityBelongsToCountry("🇩🇪 Germany", "Paris"))
}

func TestCityBelongsToCountryBySeedKeyword(t *testing.T) {
	assert.True(t, CityBelongsToCountry("🇹🇭 Thailand", "Koh Samui beach week"))
	assert.True(t, CityBelongsToCountry("🇩🇰 Denmark", "Copenhagen"))
	assert.True(t, CityBelongsToCountry("Germany", "ברלין"))
}

func TestCityBelongsToCountryForeignFlagVeto(t *testing.T) {
	// A Thai flag on the item overrides even a name match for Germany.
	assert.False(t, CityBelongsToCountry("🇩🇪 Germany", "Germany day trip 🇹🇭"))
	// The country's own flag on the item is fine.
	assert.True(t, CityBelongsToCountry("🇩🇪 Germany", "Berlin 🇩🇪"))
}

func TestCityBelongsToCountryFlaglessParent(t *testing.T) {
	// A flagless country record still recognizes its own flag on items; only
	// another country's flag vetoes.
	assert.True(t, CityBelongsToCountry("Germany", "Berlin 🇩🇪"))
	assert.False(t, CityBelongsToCountry("Germany", "Bangkok 🇹🇭"))
}

func TestStripFlags(t *testing.T) {
	assert.Equal(t, "Germany", StripFlags("🇩🇪 Germany"))
	assert.Equal(t, "Thailand", StripFlags("Thailand"))
	assert.Equal(t, "", StripFlags("🇩🇰"))
}

func TestIsParentItem(t *testing.T) {
	// Flagged titles are always parents.
	assert.True(t, IsParentItem("🇩🇪 Germany"))
	assert.True(t, IsParentItem("🇹🇭 Thailand with a very long descriptive suffix"))

	// Short unflagged titles are parents unless they look like a city.
	assert.True(t, IsParentItem("Japan"))
	assert.False(t, IsParentItem("Berlin"))
	assert.False(t, IsParentItem("Chiang Mai"))
	assert.False(t, IsParentItem("Springfield, IL"))

	// Long unflagged titles are treated as items.
	assert.False(t, IsParentItem("That unforgettable road trip across the coast"))
}
