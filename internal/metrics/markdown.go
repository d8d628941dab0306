// ABOUTME: Markdown rendering of an export payload for sharing or notes.
// ABOUTME: One table per session plus a personal records table for the range.
package metrics

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/harperreed/lift/internal/models"
)

// Markdown renders the payload as Markdown. Sessions keep payload order.
func (p ExportPayload) Markdown() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Lift Export - %s to %s\n\n", p.DateRange.Start, p.DateRange.End))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", p.ExportedAt.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("Units: %s, e1RM: %s\n\n", p.Units, p.E1RMFormula.Label()))

	if len(p.Sessions) == 0 {
		sb.WriteString("No sessions in this range.\n")
		return sb.String()
	}

	for _, s := range p.Sessions {
		title := FormatDate(s.DateISO)
		if s.DayType != "" {
			title += " - " + models.DayLabel(s.DayType)
		}
		sb.WriteString(fmt.Sprintf("## %s\n\n", title))
		if s.Notes != "" {
			sb.WriteString(fmt.Sprintf("%s\n\n", s.Notes))
		}

		sb.WriteString("| Exercise | Sets | Best e1RM |\n")
		sb.WriteString("|----------|------|-----------|\n")
		for _, e := range s.Entries {
			var best float64
			sets := make([]string, len(e.Sets))
			for i, set := range e.Sets {
				sets[i] = markdownSet(set)
				best = max(best, SetE1RM(set, p.E1RMFormula))
			}
			sb.WriteString(fmt.Sprintf("| %s | %s | %.1f |\n",
				markdownCell(e.ExerciseName), strings.Join(sets, ", "), best))
		}
		sb.WriteString(fmt.Sprintf("\nVolume: %s %s\n\n", formatNumber(s.TotalVolume), p.Units))
	}

	records := BestPersonalRecords(p.Sessions, p.E1RMFormula)
	sb.WriteString("## Personal Records\n\n")
	sb.WriteString("| Exercise | e1RM | Set | Date |\n")
	sb.WriteString("|----------|------|-----|------|\n")
	for _, r := range records {
		sb.WriteString(fmt.Sprintf("| %s | %.1f | %sx%s | %s |\n",
			markdownCell(r.ExerciseName), r.E1RM,
			formatNumber(r.Weight), formatNumber(r.Reps), FormatDate(r.DateISO)))
	}

	return sb.String()
}

func markdownSet(s models.Set) string {
	out := formatNumber(s.Weight) + "x" + formatNumber(s.Reps)
	if s.RPE != nil {
		out += "@" + strconv.FormatFloat(*s.RPE, 'f', -1, 64)
	}
	return out
}

// markdownCell escapes pipes so names cannot break the table.
func markdownCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
