package models

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

const (
	// MaxTitleLength bounds item titles.
	MaxTitleLength = 300
	// MaxNotesLength bounds item notes.
	MaxNotesLength = 2000
)

// ItemCreate is the inbound payload for creating a bucket list item. Beyond
// the fixed title/notes fields it accepts arbitrary category-specific
// attributes, which are preserved in Extra for the property mapper.
type ItemCreate struct {
	Title string
	Notes *string
	Extra map[string]any
}

func (i *ItemCreate) UnmarshalJSON(b []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if v, ok := raw["title"]; ok && v != nil {
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("title must be a string")
		}
		i.Title = s
	}
	if v, ok := raw["notes"]; ok && v != nil {
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("notes must be a string")
		}
		i.Notes = &s
	}
	delete(raw, "title")
	delete(raw, "notes")
	i.Extra = raw
	return nil
}

// Validate enforces the shape constraints on a create payload.
func (i *ItemCreate) Validate() error {
	n := utf8.RuneCountInString(i.Title)
	if n < 1 {
		return fmt.Errorf("title is required")
	}
	if n > MaxTitleLength {
		return fmt.Errorf("title must be at most %d characters", MaxTitleLength)
	}
	if i.Notes != nil && utf8.RuneCountInString(*i.Notes) > MaxNotesLength {
		return fmt.Errorf("notes must be at most %d characters", MaxNotesLength)
	}
	return nil
}

// Data flattens the payload into the map form the property mapper consumes.
func (i *ItemCreate) Data() map[string]any {
	data := make(map[string]any, len(i.Extra)+2)
	for k, v := range i.Extra {
		data[k] = v
	}
	data["title"] = i.Title
	if i.Notes != nil {
		data["notes"] = *i.Notes
	}
	return data
}

// ItemUpdate is the inbound payload for a partial item update. Every field
// is optional; absent fields are left untouched remotely.
type ItemUpdate struct {
	Title *string
	Notes *string
	Extra map[string]any
}

func (i *ItemUpdate) UnmarshalJSON(b []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if v, ok := raw["title"]; ok && v != nil {
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("title must be a string")
		}
		i.Title = &s
	}
	if v, ok := raw["notes"]; ok && v != nil {
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("notes must be a string")
		}
		i.Notes = &s
	}
	delete(raw, "title")
	delete(raw, "notes")
	i.Extra = raw
	return nil
}

// Validate enforces the shape constraints on an update payload.
func (i *ItemUpdate) Validate() error {
	if i.Title != nil {
		n := utf8.RuneCountInString(*i.Title)
		if n < 1 {
			return fmt.Errorf("title cannot be empty")
		}
		if n > MaxTitleLength {
			return fmt.Errorf("title must be at most %d characters", MaxTitleLength)
		}
	}
	if i.Notes != nil && utf8.RuneCountInString(*i.Notes) > MaxNotesLength {
		return fmt.Errorf("notes must be at most %d characters", MaxNotesLength)
	}
	return nil
}

// Data flattens the update into mapper form, dropping explicit nulls so the
// resulting write never clears remote values unintentionally.
func (i *ItemUpdate) Data() map[string]any {
	data := make(map[string]any)
	for k, v := range i.Extra {
		if v != nil {
			data[k] = v
		}
	}
	if i.Title != nil {
		data["title"] = *i.Title
	}
	if i.Notes != nil {
		data["notes"] = *i.Notes
	}
	return data
}

// IsEmpty reports whether the update carries no usable fields.
func (i *ItemUpdate) IsEmpty() bool {
	return len(i.Data()) == 0
}
