// ABOUTME: Tests for the dashboard summary.
// ABOUTME: Covers workout counts, volume, and top records over the recent window.
package metrics_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/harperreed/lift/internal/metrics"
	"github.com/harperreed/lift/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboard(t *testing.T) {
	now := time.Date(2024, 6, 15, 20, 0, 0, 0, time.UTC)

	var sessions []models.Session
	for i := 0; i < 10; i++ {
		id := fmt.Sprintf("s%d", i)
		ex := fmt.Sprintf("e%d", i)
		sessions = append(sessions, session(id, now.AddDate(0, 0, -i), entry(ex, ex, set(100+float64(i), 1))))
	}

	d := metrics.Dashboard(sessions, models.FormulaEpley, now)
	assert.Equal(t, 7, d.Workouts)
	// days 0..6: sum of (100+i)
	assert.Equal(t, 721.0, d.Volume)
	assert.Equal(t, "2024-06-09", d.WeekStart)
	assert.Equal(t, "2024-06-15", d.WeekEnd)
	assert.Len(t, d.Records, 8)
	assert.Equal(t, 10, d.AllRecords)
	assert.Equal(t, "e9", d.Records[0].ExerciseID)
	require.Len(t, d.Recent, 5)
	assert.Equal(t, "s0", d.Recent[0].ID)
}

func TestDashboard_Empty(t *testing.T) {
	d := metrics.Dashboard(nil, models.FormulaBrzycki, time.Now())
	assert.Zero(t, d.Workouts)
	assert.Zero(t, d.Volume)
	assert.Empty(t, d.Records)
	assert.Empty(t, d.Recent)
}
