// ABOUTME: Range export payload for a profile's sessions within a date window.
// ABOUTME: Renders as indented JSON or YAML.
package metrics

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/harperreed/lift/internal/models"
)

// DateRange is the inclusive calendar range an export covers.
type DateRange struct {
	Start string `json:"start" yaml:"start"`
	End   string `json:"end" yaml:"end"`
}

// ExportPayload wraps a date-filtered subset of sessions with the settings
// needed to interpret them.
type ExportPayload struct {
	ExportedAt  time.Time        `json:"exportedAt" yaml:"exported_at"`
	Units       models.Units     `json:"units" yaml:"units"`
	E1RMFormula models.Formula   `json:"e1rmFormula" yaml:"e1rm_formula"`
	ProfileID   string           `json:"profileId" yaml:"profile_id"`
	DateRange   DateRange        `json:"dateRange" yaml:"date_range"`
	Sessions    []models.Session `json:"sessions" yaml:"sessions"`
}

// ToExportPayload selects profileID's sessions dated inside window, oldest first.
func ToExportPayload(sessions []models.Session, settings models.Settings, profileID string, window Window, now time.Time) ExportPayload {
	selected := SessionsInWindow(SortOldestFirst(FilterByProfile(sessions, profileID)), window)
	if selected == nil {
		selected = []models.Session{}
	}
	return ExportPayload{
		ExportedAt:  now,
		Units:       settings.Units,
		E1RMFormula: settings.Formula(),
		ProfileID:   profileID,
		DateRange:   DateRange{Start: window.StartDate(), End: window.EndDate()},
		Sessions:    selected,
	}
}

// JSON renders the payload as indented JSON.
func (p ExportPayload) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal export: %w", err)
	}
	return data, nil
}

// YAML renders the payload as YAML.
func (p ExportPayload) YAML() ([]byte, error) {
	data, err := yaml.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal export: %w", err)
	}
	return data, nil
}
