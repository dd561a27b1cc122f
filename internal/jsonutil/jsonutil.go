// Package jsonutil provides helper functions for working with JSON data,
// particularly for reading objects whose key order matters.
package jsonutil

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Entry is one member of a JSON object
type Entry struct {
	Key   string
	Value json.RawMessage
}

// ObjectEntries decodes a JSON object into its members in document order.
// A key that appears more than once keeps its first position and its last
// value. Returns an error if data is not a single JSON object.
func ObjectEntries(data []byte) ([]Entry, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected JSON object, got %v", tok)
	}

	var entries []Entry
	index := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", tok)
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("decoding value of %q: %w", key, err)
		}

		if i, seen := index[key]; seen {
			entries[i].Value = value
			continue
		}
		index[key] = len(entries)
		entries = append(entries, Entry{Key: key, Value: value})
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("unexpected data after JSON object")
	}

	return entries, nil
}

// Find returns the value of key in entries
func Find(entries []Entry, key string) (json.RawMessage, bool) {
	for _, e := range entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// GetString extracts a string value from entries by key.
// Returns empty string if the key doesn't exist or the value is not a string.
func GetString(entries []Entry, key string) string {
	raw, ok := Find(entries, key)
	if !ok {
		return ""
	}
	s, _ := AsString(raw)
	return s
}

// AsString decodes raw as a JSON string.
// Returns false if raw is not a string.
func AsString(raw json.RawMessage) (string, bool) {
	if IsNull(raw) {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// IsNull reports whether raw is the JSON literal null
func IsNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}
