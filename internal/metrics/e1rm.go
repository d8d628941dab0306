// ABOUTME: Estimated one-rep-max formulas.
// ABOUTME: Epley and Brzycki, returning 0 for sets that cannot produce an estimate.
package metrics

import "github.com/harperreed/lift/internal/models"

// brzyckiMaxReps is the rep count at which the Brzycki denominator reaches zero.
const brzyckiMaxReps = 37

// EstimatedOneRepMax predicts a single-rep max from a weight x reps set.
// It returns 0 when weight or reps is not positive, and for Brzycki at 37 reps or more.
func EstimatedOneRepMax(weight, reps float64, formula models.Formula) float64 {
	if !(weight > 0) || !(reps > 0) {
		return 0
	}

	if formula == models.FormulaBrzycki {
		if reps >= brzyckiMaxReps {
			return 0
		}
		return weight * 36 / (37 - reps)
	}

	return weight * (1 + reps/30)
}

// SetE1RM is EstimatedOneRepMax for a logged set.
func SetE1RM(s models.Set, formula models.Formula) float64 {
	return EstimatedOneRepMax(s.Weight, s.Reps, formula)
}
