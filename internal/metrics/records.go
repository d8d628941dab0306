// ABOUTME: Personal records and e1RM trend series per exercise.
// ABOUTME: Pure functions over session slices; callers filter by profile first.
package metrics

import (
	"iter"
	"sort"
	"time"

	"github.com/harperreed/lift/internal/models"
)

// PersonalRecord is the best set ever logged for an exercise.
type PersonalRecord struct {
	ExerciseID   string    `json:"exerciseId" yaml:"exercise_id"`
	ExerciseName string    `json:"exerciseName" yaml:"exercise_name"`
	E1RM         float64   `json:"e1rm" yaml:"e1rm"`
	DateISO      time.Time `json:"dateIso" yaml:"date"`
	Weight       float64   `json:"weight" yaml:"weight"`
	Reps         float64   `json:"reps" yaml:"reps"`
}

// BestPersonalRecords finds the best set by e1RM for each exercise in sessions.
// A later set replaces the record only when strictly better, so ties keep the
// first one seen in input order. Records are ordered by e1RM, highest first.
func BestPersonalRecords(sessions []models.Session, formula models.Formula) []PersonalRecord {
	best := make(map[string]int)
	var records []PersonalRecord

	for _, s := range sessions {
		for _, e := range s.Entries {
			for _, set := range e.Sets {
				e1 := SetE1RM(set, formula)
				idx, seen := best[e.ExerciseID]
				if seen && !(e1 > records[idx].E1RM) {
					continue
				}
				rec := PersonalRecord{
					ExerciseID:   e.ExerciseID,
					ExerciseName: e.ExerciseName,
					E1RM:         e1,
					DateISO:      s.DateISO,
					Weight:       set.Weight,
					Reps:         set.Reps,
				}
				if seen {
					records[idx] = rec
					continue
				}
				best[e.ExerciseID] = len(records)
				records = append(records, rec)
			}
		}
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].E1RM > records[j].E1RM
	})
	return records
}

// TrendPoint is one session's best e1RM for an exercise.
type TrendPoint struct {
	Date string  `json:"date" yaml:"date"`
	E1RM float64 `json:"e1rm" yaml:"e1rm"`
}

// Trend yields one point per session containing exerciseID, oldest session first.
// Sessions whose best set for the exercise estimates to 0 are skipped.
// The sequence can be ranged over any number of times.
func Trend(sessions []models.Session, exerciseID string, formula models.Formula) iter.Seq[TrendPoint] {
	ordered := SortOldestFirst(sessions)
	return func(yield func(TrendPoint) bool) {
		for _, s := range ordered {
			var found bool
			var bestSet float64
			for _, e := range s.Entries {
				if e.ExerciseID != exerciseID {
					continue
				}
				found = true
				for _, set := range e.Sets {
					if e1 := SetE1RM(set, formula); e1 > bestSet {
						bestSet = e1
					}
				}
			}
			if !found || bestSet <= 0 {
				continue
			}
			if !yield(TrendPoint{Date: FormatDate(s.DateISO), E1RM: bestSet}) {
				return
			}
		}
	}
}

// TrendSeries collects Trend into a slice.
func TrendSeries(sessions []models.Session, exerciseID string, formula models.Formula) []TrendPoint {
	var points []TrendPoint
	for p := range Trend(sessions, exerciseID, formula) {
		points = append(points, p)
	}
	return points
}
