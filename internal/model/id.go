package model

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ID identifies a user record. Datasets carry ids as numbers while the
// edit form carries them as text, so every ID is kept in canonical string
// form and compared on that.
type ID struct {
	value string
}

// ParseID builds an ID from user-entered or decoded text.
func ParseID(s string) ID {
	return ID{value: canonicalID(s)}
}

// canonicalID trims surrounding whitespace and re-renders numeric text in
// its shortest form, so "1", "1.0" and " 1 " are the same id.
func canonicalID(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return s
	}

	return strconv.FormatFloat(f, 'f', -1, 64)
}

// String returns the canonical form.
func (id ID) String() string {
	return id.value
}

// IsZero reports whether the id is empty.
func (id ID) IsZero() bool {
	return id.value == ""
}

// Equal compares two ids after normalization.
func (id ID) Equal(other ID) bool {
	return id.value == other.value
}

// MarshalJSON writes ids that are already in canonical numeric form as JSON
// numbers and everything else, NaN and Inf spellings included, as strings.
func (id ID) MarshalJSON() ([]byte, error) {
	f, err := strconv.ParseFloat(id.value, 64)
	if err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) &&
		strconv.FormatFloat(f, 'f', -1, 64) == id.value {
		return []byte(id.value), nil
	}

	return json.Marshal(id.value)
}

// UnmarshalJSON accepts either a JSON string or a JSON number.
func (id *ID) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case string:
		*id = ParseID(v)
	case float64:
		*id = ParseID(strconv.FormatFloat(v, 'f', -1, 64))
	case nil:
		*id = ID{}
	default:
		return fmt.Errorf("id must be a string or number, got %s", string(data))
	}

	return nil
}

// UnmarshalYAML accepts any scalar node.
func (id *ID) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("id must be a scalar, line %d", node.Line)
	}

	*id = ParseID(node.Value)

	return nil
}
