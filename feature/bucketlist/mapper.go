package bucketlist

import (
	"strings"
	"time"

	"github.com/dorsabag/bucketListBackendDeploy/core/utils"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// PropertyKind tags how an internal field is written to Notion.
type PropertyKind int

const (
	KindTitle PropertyKind = iota
	KindRichText
	KindSelect
	KindMultiSelect
	KindDate
	// KindDateStart is a date that keeps only the start of an "X to Y" range.
	KindDateStart
	KindNumber
	KindURL
)

// FieldMapping binds one internal field name to a Notion property.
type FieldMapping struct {
	Key      string
	Property string
	Kind     PropertyKind
}

// Buckets for the generic (naming-convention) mapper. Keys not matching any
// bucket are dropped.
var (
	genericTitleKeys = map[string]bool{
		"title": true, "name": true,
	}
	genericMultiSelectKeys = map[string]bool{
		"genre": true, "cuisine_type": true, "price_range": true,
		"with_whom": true, "עם מי הלכתי": true,
	}
	genericRichTextKeys = map[string]bool{
		"notes": true, "artist": true, "venue": true,
		"restaurant": true, "author": true, "director": true,
	}
	genericImageKeys = map[string]bool{
		"image_url": true, "image": true, "cover": true,
	}
	genericNumberKeys = map[string]bool{
		"pages": true, "runtime": true, "release_year": true, "ticket_price": true,
	}
)

var titleCaser = cases.Title(language.English)

// MapProperties transforms a flat item payload into the Notion property
// payload for the given category.
//
// Legacy categories use their fixed field table; fields the legacy schema
// has no property for are silently dropped. Generic categories classify
// every key by naming convention. In both paths a field whose transformed
// value would be empty is omitted, so updates merge sparsely instead of
// clearing remote values.
func MapProperties(category Category, data map[string]any) (map[string]any, error) {
	desc, ok := descriptors[category]
	if !ok {
		return nil, &UnknownCategoryError{Category: string(category)}
	}

	if desc.Generic {
		return mapGeneric(data), nil
	}
	return mapLegacy(desc.Fields, data), nil
}

func mapLegacy(fields []FieldMapping, data map[string]any) map[string]any {
	props := make(map[string]any)
	for _, m := range fields {
		value, ok := data[m.Key]
		if !ok || !utils.Truthy(value) {
			continue
		}
		if prop, ok := buildProperty(m.Kind, value); ok {
			props[m.Property] = prop
		}
	}
	return props
}

func mapGeneric(data map[string]any) map[string]any {
	props := make(map[string]any)
	for key, value := range data {
		if value == nil {
			continue
		}
		k := strings.ToLower(key)

		switch {
		case genericTitleKeys[k]:
			if utils.Truthy(value) {
				props["Title"] = titleProperty(value)
			}

		case genericMultiSelectKeys[k]:
			if prop, ok := multiSelectProperty(value); ok {
				props[displayName(key)] = prop
			}

		case genericRichTextKeys[k]:
			if utils.Truthy(value) {
				props[displayName(key)] = richTextProperty(value)
			}

		case genericImageKeys[k]:
			name := "Image"
			if k != "image_url" {
				name = displayName(key)
			}
			// An explicit empty value writes a null url, clearing the link.
			props[name] = urlProperty(value)

		case strings.HasSuffix(k, "date"):
			if start, ok := dateStart(value); ok {
				props[displayName(key)] = dateProperty(start)
			}

		case genericNumberKeys[k]:
			// Present-but-falsy coerces to 0; nil was dropped above.
			props[displayName(key)] = map[string]any{"number": utils.ToFloat(value)}
		}
	}
	return props
}

func buildProperty(kind PropertyKind, value any) (any, bool) {
	switch kind {
	case KindTitle:
		return titleProperty(value), true
	case KindRichText:
		return richTextProperty(value), true
	case KindSelect:
		return map[string]any{
			"select": map[string]any{"name": utils.ToString(value)},
		}, true
	case KindMultiSelect:
		return multiSelectProperty(value)
	case KindDate:
		return dateProperty(utils.ToString(value)), true
	case KindDateStart:
		s := utils.ToString(value)
		if start, _, found := strings.Cut(s, " to "); found {
			s = start
		}
		return dateProperty(s), true
	case KindNumber:
		return map[string]any{"number": utils.ToFloat(value)}, true
	case KindURL:
		return urlProperty(value), true
	}
	return nil, false
}

func titleProperty(value any) map[string]any {
	return map[string]any{
		"title": []any{
			map[string]any{"text": map[string]any{"content": utils.ToString(value)}},
		},
	}
}

func richTextProperty(value any) map[string]any {
	return map[string]any{
		"rich_text": []any{
			map[string]any{"text": map[string]any{"content": utils.ToString(value)}},
		},
	}
}

// multiSelectProperty accepts either a single value or an ordered list,
// stringifying each entry and dropping empties. Returns false when nothing
// remains, so the property is omitted rather than cleared.
func multiSelectProperty(value any) (any, bool) {
	var entries []string
	switch v := value.(type) {
	case []any:
		for _, item := range v {
			if utils.Truthy(item) {
				entries = append(entries, utils.ToString(item))
			}
		}
	case []string:
		for _, item := range v {
			if item != "" {
				entries = append(entries, item)
			}
		}
	default:
		if utils.Truthy(v) {
			entries = append(entries, utils.ToString(v))
		}
	}

	if len(entries) == 0 {
		return nil, false
	}
	options := make([]any, 0, len(entries))
	for _, name := range entries {
		options = append(options, map[string]any{"name": name})
	}
	return map[string]any{"multi_select": options}, true
}

func dateProperty(start string) map[string]any {
	return map[string]any{"date": map[string]any{"start": start}}
}

// dateStart normalizes structured and raw date values to a start string.
func dateStart(value any) (string, bool) {
	switch v := value.(type) {
	case time.Time:
		return v.Format(time.RFC3339), true
	case string:
		if v == "" {
			return "", false
		}
		return v, true
	default:
		s := utils.ToString(v)
		return s, s != ""
	}
}

func urlProperty(value any) map[string]any {
	if !utils.Truthy(value) {
		return map[string]any{"url": nil}
	}
	return map[string]any{"url": utils.ToString(value)}
}

// displayName derives a Notion property name from an internal key:
// separators become spaces and each word is title-cased.
func displayName(key string) string {
	return titleCaser.String(strings.ReplaceAll(key, "_", " "))
}
