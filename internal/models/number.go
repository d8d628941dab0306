// ABOUTME: Lenient number parsing for user-entered form values.
// ABOUTME: Anything that is not a finite number becomes zero instead of an error.
package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ParseNumber parses s as a float, returning 0 for blank, malformed, or non-finite input.
func ParseNumber(s string) float64 {
	v, ok := parseNumber(s)
	if !ok {
		return 0
	}
	return v
}

func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// decodeNumber reads a JSON number or numeric string. The bool is false when the
// value is absent, null, blank, or not numeric.
func decodeNumber(raw json.RawMessage) (float64, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, false
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, true
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return parseNumber(s)
	}
	return 0, false
}
