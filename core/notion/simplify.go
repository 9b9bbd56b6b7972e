package notion

import (
	"encoding/json"
	"fmt"
)

// Record is a Notion page flattened into plain key→value pairs.
//
// Property values use the simplest Go representation that preserves the
// information downstream code needs: strings for title/rich text/select,
// []string for multi select, float64 for numbers, bool for checkboxes and
// []RelationRef for relation stubs. Properties whose value is empty on the
// Notion side are omitted entirely, as are property kinds the backend does
// not understand.
type Record struct {
	ID             string         `json:"id"`
	CreatedTime    string         `json:"created_time"`
	LastEditedTime string         `json:"last_edited_time"`
	Properties     map[string]any `json:"properties"`
}

// Title returns the record's display title, checking the property names the
// bucket list databases actually use.
func (r *Record) Title() string {
	for _, name := range []string{"Title", "Name"} {
		if v, ok := r.Properties[name].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// RelationRef is one entry of a relation property, preserved verbatim for
// downstream matching. Title and PlainText are only set when Notion already
// resolved the related page.
type RelationRef struct {
	ID        string `json:"id"`
	Title     string `json:"title,omitempty"`
	PlainText string `json:"plain_text,omitempty"`
}

// rawPage mirrors the wire shape of a Notion page object.
type rawPage struct {
	ID             string                 `json:"id"`
	CreatedTime    string                 `json:"created_time"`
	LastEditedTime string                 `json:"last_edited_time"`
	Properties     map[string]rawProperty `json:"properties"`
}

type rawProperty struct {
	Type        string         `json:"type"`
	Title       []rawRichText  `json:"title"`
	RichText    []rawRichText  `json:"rich_text"`
	Select      *rawOption     `json:"select"`
	MultiSelect []rawOption    `json:"multi_select"`
	Date        *rawDate       `json:"date"`
	Number      *float64       `json:"number"`
	Checkbox    *bool          `json:"checkbox"`
	Files       []rawFile      `json:"files"`
	URL         *string        `json:"url"`
	Relation    []RelationRef  `json:"relation"`
}

type rawRichText struct {
	Text struct {
		Content string `json:"content"`
	} `json:"text"`
	PlainText string `json:"plain_text"`
}

type rawOption struct {
	Name string `json:"name"`
}

type rawDate struct {
	Start string  `json:"start"`
	End   *string `json:"end"`
}

type rawFile struct {
	Type     string `json:"type"`
	External *struct {
		URL string `json:"url"`
	} `json:"external"`
	File *struct {
		URL string `json:"url"`
	} `json:"file"`
}

// Simplify converts a raw Notion page payload into a flat Record.
func Simplify(data []byte) (*Record, error) {
	var page rawPage
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, fmt.Errorf("failed to decode notion page: %w", err)
	}
	return simplifyPage(&page), nil
}

func simplifyPage(page *rawPage) *Record {
	rec := &Record{
		ID:             page.ID,
		CreatedTime:    page.CreatedTime,
		LastEditedTime: page.LastEditedTime,
		Properties:     make(map[string]any, len(page.Properties)),
	}

	for name, prop := range page.Properties {
		switch prop.Type {
		case "title":
			rec.Properties[name] = firstText(prop.Title)
		case "rich_text":
			rec.Properties[name] = firstText(prop.RichText)
		case "select":
			if prop.Select != nil {
				rec.Properties[name] = prop.Select.Name
			}
		case "multi_select":
			names := make([]string, 0, len(prop.MultiSelect))
			for _, opt := range prop.MultiSelect {
				names = append(names, opt.Name)
			}
			rec.Properties[name] = names
		case "date":
			if prop.Date != nil {
				rec.Properties[name] = prop.Date.Start
			}
		case "number":
			if prop.Number != nil {
				rec.Properties[name] = *prop.Number
			}
		case "checkbox":
			if prop.Checkbox != nil {
				rec.Properties[name] = *prop.Checkbox
			}
		case "files":
			if len(prop.Files) > 0 {
				if url := fileURL(prop.Files[0]); url != "" {
					rec.Properties[name] = url
				}
			}
		case "url":
			if prop.URL != nil {
				rec.Properties[name] = *prop.URL
			}
		case "relation":
			// Kept verbatim: resolving relation ids to titles needs a
			// cross-database lookup that is not available here.
			if len(prop.Relation) > 0 {
				rec.Properties[name] = prop.Relation
			}
		default:
			// Unknown property kinds are dropped.
		}
	}

	return rec
}

func firstText(segments []rawRichText) string {
	if len(segments) == 0 {
		return ""
	}
	if segments[0].Text.Content != "" {
		return segments[0].Text.Content
	}
	return segments[0].PlainText
}

func fileURL(f rawFile) string {
	switch {
	case f.External != nil:
		return f.External.URL
	case f.File != nil:
		return f.File.URL
	}
	return ""
}
