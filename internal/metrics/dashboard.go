// ABOUTME: Dashboard summary combining weekly activity, top records, and recent sessions.
// ABOUTME: Used by the stats dashboard command and the MCP dashboard resource.
package metrics

import (
	"time"

	"github.com/harperreed/lift/internal/models"
)

const (
	dashboardDays    = 7
	dashboardRecords = 8
	dashboardRecent  = 5
)

// Summary is the dashboard view of one profile's sessions.
type Summary struct {
	Formula    models.Formula   `json:"e1rmFormula" yaml:"e1rm_formula"`
	WeekStart  string           `json:"weekStart" yaml:"week_start"`
	WeekEnd    string           `json:"weekEnd" yaml:"week_end"`
	Workouts   int              `json:"workouts" yaml:"workouts"`
	Volume     float64          `json:"volume" yaml:"volume"`
	Records    []PersonalRecord `json:"records" yaml:"records"`
	Recent     []models.Session `json:"recent" yaml:"recent"`
	AllRecords int              `json:"allRecords" yaml:"all_records"`
}

// Dashboard summarizes sessions as of now: workouts and volume over the last
// seven days, the strongest records, and the most recent sessions.
func Dashboard(sessions []models.Session, formula models.Formula, now time.Time) Summary {
	week := LastNDays(now, dashboardDays)
	inWeek := SessionsInWindow(sessions, week)

	records := BestPersonalRecords(SortOldestFirst(sessions), formula)
	top := records
	if len(top) > dashboardRecords {
		top = top[:dashboardRecords]
	}

	recent := SortNewestFirst(sessions)
	if len(recent) > dashboardRecent {
		recent = recent[:dashboardRecent]
	}

	return Summary{
		Formula:    formula,
		WeekStart:  week.StartDate(),
		WeekEnd:    week.EndDate(),
		Workouts:   len(inWeek),
		Volume:     WindowVolume(sessions, week.Start, week.End),
		Records:    top,
		Recent:     recent,
		AllRecords: len(records),
	}
}
