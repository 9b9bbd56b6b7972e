package notion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimplifyFlattensProperties(t *testing.T) {
	raw := []byte(`{
		"id": "page-1",
		"created_time": "2024-01-01T00:00:00.000Z",
		"last_edited_time": "2024-01-02T00:00:00.000Z",
		"properties": {
			"Name": {"type": "title", "title": [{"text": {"content": "Radiohead"}}]},
			"מקום": {"type": "rich_text", "rich_text": [{"text": {"content": "Park HaYarkon"}}]},
			"ציון": {"type": "select", "select": {"name": "9"}},
			"עם מי הלכתי": {"type": "multi_select", "multi_select": [{"name": "Dana"}, {"name": "Omer"}]},
			"תאריך": {"type": "date", "date": {"start": "2024-06-15", "end": null}},
			"Pages": {"type": "number", "number": 320},
			"Done": {"type": "checkbox", "checkbox": true},
			"Image": {"type": "files", "files": [{"type": "external", "external": {"url": "https://img.example/a.jpg"}}]},
			"IMDb Link": {"type": "url", "url": "https://imdb.com/title/tt1"},
			"Rollup": {"type": "rollup", "rollup": {}}
		}
	}`)

	rec, err := Simplify(raw)
	require.NoError(t, err)

	assert.Equal(t, "page-1", rec.ID)
	assert.Equal(t, "2024-01-01T00:00:00.000Z", rec.CreatedTime)
	assert.Equal(t, "Radiohead", rec.Properties["Name"])
	assert.Equal(t, "Park HaYarkon", rec.Properties["מקום"])
	assert.Equal(t, "9", rec.Properties["ציון"])
	assert.Equal(t, []string{"Dana", "Omer"}, rec.Properties["עם מי הלכתי"])
	assert.Equal(t, "2024-06-15", rec.Properties["תאריך"])
	assert.Equal(t, float64(320), rec.Properties["Pages"])
	assert.Equal(t, true, rec.Properties["Done"])
	assert.Equal(t, "https://img.example/a.jpg", rec.Properties["Image"])
	assert.Equal(t, "https://imdb.com/title/tt1", rec.Properties["IMDb Link"])

	// Unknown property kinds are dropped entirely.
	_, present := rec.Properties["Rollup"]
	assert.False(t, present)
}

func TestSimplifyOmitsEmptyValues(t *testing.T) {
	raw := []byte(`{
		"id": "page-2",
		"properties": {
			"Title": {"type": "title", "title": []},
			"Status": {"type": "select", "select": null},
			"תאריך": {"type": "date", "date": null},
			"Pages": {"type": "number", "number": null},
			"Image": {"type": "files", "files": []}
		}
	}`)

	rec, err := Simplify(raw)
	require.NoError(t, err)

	// Empty title still yields "" so the record keeps a title key.
	assert.Equal(t, "", rec.Properties["Title"])
	for _, name := range []string{"Status", "תאריך", "Pages", "Image"} {
		_, present := rec.Properties[name]
		assert.False(t, present, name)
	}
}

func TestSimplifyRichTextFallsBackToPlainText(t *testing.T) {
	raw := []byte(`{
		"id": "page-3",
		"properties": {
			"Notes": {"type": "rich_text", "rich_text": [{"plain_text": "mention text"}]}
		}
	}`)

	rec, err := Simplify(raw)
	require.NoError(t, err)
	assert.Equal(t, "mention text", rec.Properties["Notes"])
}

func TestSimplifyKeepsRelations(t *testing.T) {
	raw := []byte(`{
		"id": "page-4",
		"properties": {
			"סדרה": {"type": "relation", "relation": [{"id": "show-1"}, {"id": "show-2"}]}
		}
	}`)

	rec, err := Simplify(raw)
	require.NoError(t, err)

	refs, ok := rec.Properties["סדרה"].([]RelationRef)
	require.True(t, ok)
	require.Len(t, refs, 2)
	assert.Equal(t, "show-1", refs[0].ID)
}

func TestRecordTitle(t *testing.T) {
	rec := &Record{Properties: map[string]any{"Name": "Berlin 🇩🇪"}}
	assert.Equal(t, "Berlin 🇩🇪", rec.Title())

	rec = &Record{Properties: map[string]any{"Title": "1984", "Name": "ignored"}}
	assert.Equal(t, "1984", rec.Title())

	rec = &Record{Properties: map[string]any{}}
	assert.Equal(t, "", rec.Title())
}

func TestSimplifyRejectsMalformedPayload(t *testing.T) {
	_, err := Simplify([]byte(`{"properties": "nope"`))
	require.Error(t, err)
}
