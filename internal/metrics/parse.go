// ABOUTME: Shorthand set notation used by the CLI and MCP tools.
// ABOUTME: "135x5@8" is 135 for 5 reps at RPE 8; numbers parse leniently.
package metrics

import (
	"fmt"
	"strings"

	"github.com/harperreed/lift/internal/models"
)

// ParseSet parses WEIGHTxREPS with an optional @RPE suffix. Non-numeric parts
// become 0 so the set is later dropped as invalid; only a missing "x" is an error.
func ParseSet(s string) (models.Set, error) {
	s = strings.TrimSpace(s)
	body, rpe, hasRPE := strings.Cut(s, "@")

	weight, reps, ok := strings.Cut(strings.ToLower(body), "x")
	if !ok {
		return models.Set{}, fmt.Errorf("invalid set %q: expected WEIGHTxREPS[@RPE]", s)
	}

	set := models.Set{
		Weight: models.ParseNumber(weight),
		Reps:   models.ParseNumber(reps),
	}
	if hasRPE && strings.TrimSpace(rpe) != "" {
		set = set.WithRPE(models.ParseNumber(rpe))
	}
	return set, nil
}

// ParseSets parses a comma-separated list of sets.
func ParseSets(s string) ([]models.Set, error) {
	var sets []models.Set
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		set, err := ParseSet(part)
		if err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}
	return sets, nil
}
