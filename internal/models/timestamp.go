// ABOUTME: Lenient timestamp decoding for stored documents.
// ABOUTME: Blank or unparseable times decode as the zero time instead of failing the record.
package models

import (
	"encoding/json"
	"strings"
	"time"
)

// decodeTime reads an RFC 3339 timestamp or a YYYY-MM-DD date. Anything else,
// including null and blank strings, yields the zero time.
func decodeTime(raw json.RawMessage) time.Time {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return time.Time{}
	}
	s = strings.TrimSpace(s)
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// DecodeList decodes raw as a JSON array of T. A value that is not an array
// yields an empty slice, and elements that do not decode are skipped. The
// counts of dropped elements let callers report what was lost.
func DecodeList[T any](raw json.RawMessage) (items []T, dropped int, ok bool) {
	items = []T{}
	var elems []json.RawMessage
	if len(raw) == 0 || json.Unmarshal(raw, &elems) != nil || elems == nil {
		return items, 0, false
	}
	for _, elem := range elems {
		var v T
		if err := json.Unmarshal(elem, &v); err != nil {
			dropped++
			continue
		}
		items = append(items, v)
	}
	return items, dropped, true
}
