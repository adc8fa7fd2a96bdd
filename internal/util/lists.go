package util

import (
	"encoding/json"
	"strings"
)

// ListToJSON encodes a string list as a JSON array. A nil or empty list
// becomes "[]".
func ListToJSON(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	bytes, _ := json.Marshal(items)
	return string(bytes)
}

// JSONToList decodes a JSON array produced by ListToJSON. Empty input and
// "null" yield nil so that a label without bands round-trips as nil.
func JSONToList(jsonStr string) ([]string, error) {
	jsonStr = strings.TrimSpace(jsonStr)
	if jsonStr == "" || jsonStr == "null" || jsonStr == "[]" {
		return nil, nil
	}
	var items []string
	if err := json.Unmarshal([]byte(jsonStr), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Fields splits s on commas and whitespace, dropping empty entries.
func Fields(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}
