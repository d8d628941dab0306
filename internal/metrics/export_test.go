// ABOUTME: Tests for building export payloads.
// ABOUTME: Checks session filtering by range and that empty ranges serialize as arrays.
package metrics_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/harperreed/lift/internal/metrics"
	"github.com/harperreed/lift/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestToExportPayload(t *testing.T) {
	now := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	window := metrics.NewWindow(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC))

	sessions := []models.Session{
		session("in2", time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC), entry("e1", "Bench", set(100, 5))),
		session("in1", time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC), entry("e1", "Bench", set(100, 5))),
		session("late", time.Date(2024, 1, 9, 12, 0, 0, 0, time.UTC), entry("e1", "Bench", set(100, 5))),
		{ID: "other", ProfileID: "p2", DateISO: time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC)},
	}
	settings := models.Settings{Units: models.UnitsKilograms}

	p := metrics.ToExportPayload(sessions, settings, "p1", window, now)
	assert.Equal(t, now, p.ExportedAt)
	assert.Equal(t, models.UnitsKilograms, p.Units)
	assert.Equal(t, models.FormulaEpley, p.E1RMFormula)
	assert.Equal(t, metrics.DateRange{Start: "2024-01-01", End: "2024-01-07"}, p.DateRange)
	assert.Equal(t, []string{"in1", "in2"}, ids(p.Sessions))

	data, err := p.JSON()
	require.NoError(t, err)
	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	for _, key := range []string{"exportedAt", "units", "e1rmFormula", "profileId", "dateRange", "sessions"} {
		assert.Contains(t, raw, key)
	}

	out, err := p.YAML()
	require.NoError(t, err)
	var back map[string]any
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, "p1", back["profile_id"])
}

func TestToExportPayload_EmptySessionsIsArray(t *testing.T) {
	now := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	p := metrics.ToExportPayload(nil, models.DefaultSettings(), "p1", metrics.LastNDays(now, 7), now)
	data, err := p.JSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"sessions": []`)
}
