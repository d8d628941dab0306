// ABOUTME: CSV rendering of sessions, one row per logged set.
// ABOUTME: Quoting follows RFC 4180 via encoding/csv.
package metrics

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"math"
	"strconv"

	"github.com/harperreed/lift/internal/models"
)

// CSVHeader is the first row of every CSV export.
var CSVHeader = []string{"date", "dayType", "exercise", "set", "weight", "reps", "rpe", "e1rm", "sessionNotes"}

// ToCSV flattens sessions into CSV text in the order given. Set numbers are
// 1-based within each entry, e1rm is rounded to a whole number and a missing
// RPE is left blank.
func ToCSV(sessions []models.Session, formula models.Formula) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(CSVHeader); err != nil {
		return "", fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, s := range sessions {
		date := FormatDate(s.DateISO)
		for _, e := range s.Entries {
			for i, set := range e.Sets {
				rpe := ""
				if set.RPE != nil {
					rpe = formatNumber(*set.RPE)
				}
				row := []string{
					date,
					models.DayLabel(s.DayType),
					e.ExerciseName,
					strconv.Itoa(i + 1),
					formatNumber(set.Weight),
					formatNumber(set.Reps),
					rpe,
					formatNumber(math.Round(SetE1RM(set, formula))),
					s.Notes,
				}
				if err := w.Write(row); err != nil {
					return "", fmt.Errorf("failed to write csv row: %w", err)
				}
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.String(), nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
