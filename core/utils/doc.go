// Package utils provides small type-conversion helpers.
//
// Item payloads arrive as loosely typed JSON (map[string]any), so the
// property mapper needs forgiving conversions from arbitrary values to
// strings and numbers, plus a truthiness check used when deciding whether
// a field should be written at all.
package utils
