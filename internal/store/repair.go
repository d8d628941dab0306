// ABOUTME: Decoding and best-effort repair of stored or imported documents.
// ABOUTME: Bad fields are reset one at a time so the rest of the document survives.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/harperreed/lift/internal/models"
)

var errNotObject = errors.New("document is not a JSON object")

var collectionKeys = []string{"profiles", "exercises", "sessions"}

// decodeDocument parses data field by field and repairs it. It fails only when
// data is not a JSON object. A collection that is not an array becomes empty,
// records that cannot be decoded are dropped, and every such repair is
// described in the returned notes.
func decodeDocument(data []byte) (*models.Document, []string, error) {
	top, err := decodeTop(data)
	if err != nil {
		return nil, nil, err
	}

	var doc models.Document
	var notes []string
	field := func(key string, v any) {
		raw, ok := top[key]
		if !ok {
			return
		}
		if err := json.Unmarshal(raw, v); err != nil {
			notes = append(notes, fmt.Sprintf("%s: ignored malformed value", key))
		}
	}
	field("version", &doc.Version)
	field("settings", &doc.Settings)
	field("activeProfileId", &doc.ActiveProfileID)

	var ok bool
	var dropped [3]int
	if doc.Profiles, dropped[0], ok = models.DecodeList[models.Profile](top["profiles"]); !ok {
		notes = appendReset(notes, top, "profiles")
	}
	if doc.Exercises, dropped[1], ok = models.DecodeList[models.Exercise](top["exercises"]); !ok {
		notes = appendReset(notes, top, "exercises")
	}
	if doc.Sessions, dropped[2], ok = models.DecodeList[models.Session](top["sessions"]); !ok {
		notes = appendReset(notes, top, "sessions")
	}
	for i, key := range collectionKeys {
		if dropped[i] > 0 {
			notes = append(notes, fmt.Sprintf("%s: dropped %d malformed records", key, dropped[i]))
		}
	}

	repair(&doc)
	return &doc, notes, nil
}

// appendReset notes a collection that was present but not an array.
func appendReset(notes []string, top map[string]json.RawMessage, key string) []string {
	if raw, ok := top[key]; ok && string(bytes.TrimSpace(raw)) != "null" {
		notes = append(notes, fmt.Sprintf("%s: not a list, reset to empty", key))
	}
	return notes
}

func decodeTop(data []byte) (map[string]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, errNotObject
	}
	var top map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &top); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return top, nil
}

// requireCollections rejects imports that carry none of the document's
// collections, or carry one that is not a list, so an unrelated JSON file
// cannot wipe the store.
func requireCollections(data []byte) error {
	top, err := decodeTop(data)
	if err != nil {
		return err
	}
	found := false
	for _, key := range collectionKeys {
		raw, ok := top[key]
		if !ok {
			continue
		}
		found = true
		var elems []json.RawMessage
		if err := json.Unmarshal(raw, &elems); err != nil {
			return fmt.Errorf("%s must be a list", key)
		}
	}
	if !found {
		return errors.New("no profiles, exercises or sessions found")
	}
	return nil
}

func repair(d *models.Document) {
	if d.Version == 0 {
		d.Version = models.CurrentVersion
	}

	if _, err := models.ParseUnits(string(d.Settings.Units)); err != nil {
		d.Settings.Units = models.UnitsPounds
	}
	if d.Settings.E1RMFormula != "" {
		if _, err := models.ParseFormula(string(d.Settings.E1RMFormula)); err != nil {
			d.Settings.E1RMFormula = ""
		}
	}

	if d.Profiles == nil {
		d.Profiles = []models.Profile{}
	}
	if d.Exercises == nil {
		d.Exercises = []models.Exercise{}
	}
	if d.Sessions == nil {
		d.Sessions = []models.Session{}
	}
	for i := range d.Sessions {
		if d.Sessions[i].Entries == nil {
			d.Sessions[i].Entries = []models.Entry{}
		}
		for j := range d.Sessions[i].Entries {
			if d.Sessions[i].Entries[j].Sets == nil {
				d.Sessions[i].Entries[j].Sets = []models.Set{}
			}
		}
	}

	if d.FindProfile(d.ActiveID()) < 0 {
		d.SetActiveID(firstProfileID(d))
	}
}

func firstProfileID(d *models.Document) string {
	if len(d.Profiles) == 0 {
		return ""
	}
	return d.Profiles[0].ID
}
