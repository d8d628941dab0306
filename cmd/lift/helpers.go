// ABOUTME: Shared helpers for lift CLI commands.
// ABOUTME: Date flags, profile selection, confirmation prompts, and text layout.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/harperreed/lift/internal/metrics"
	"github.com/harperreed/lift/internal/models"
)

var faint = color.New(color.Faint)

// stdin is swapped out in tests.
var stdin io.Reader = os.Stdin

// parseDay reads a YYYY-MM-DD flag value in local time. Blank means zero time.
func parseDay(s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return time.Time{}, nil
	}
	return metrics.ParseDate(s, time.Local)
}

// dayWindow builds the inclusive window for --from/--to/--days flags. A blank
// --to means today; a blank --from means days days ending at --to.
func dayWindow(from, to string, days int, now time.Time) (metrics.Window, error) {
	end := now
	if to != "" {
		t, err := parseDay(to)
		if err != nil {
			return metrics.Window{}, err
		}
		end = t
	}
	if from == "" {
		return metrics.LastNDays(end, days), nil
	}
	start, err := parseDay(from)
	if err != nil {
		return metrics.Window{}, err
	}
	if start.After(end) {
		return metrics.Window{}, fmt.Errorf("--from %s is after --to %s", metrics.FormatDate(start), metrics.FormatDate(end))
	}
	return metrics.NewWindow(start, end), nil
}

// selectProfile resolves ref, or the active profile when ref is blank.
func selectProfile(ref string) (models.Profile, error) {
	if ref != "" {
		return liftStore.Profile(ref)
	}
	p, ok := liftStore.ActiveProfile()
	if !ok {
		return models.Profile{}, fmt.Errorf("no active profile; create one with 'lift profile add <name>'")
	}
	return p, nil
}

// confirm asks a yes/no question; only y or yes counts as yes.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	response, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && response == "" {
		return false
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}

func formatWeight(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}

func formatSet(s models.Set) string {
	out := formatWeight(s.Weight) + "x" + formatWeight(s.Reps)
	if s.RPE != nil {
		out += "@" + formatWeight(*s.RPE)
	}
	return out
}

func formatSets(sets []models.Set) string {
	parts := make([]string, len(sets))
	for i, s := range sets {
		parts[i] = formatSet(s)
	}
	return strings.Join(parts, ", ")
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}

func padRight(s string, length int) string {
	n := len([]rune(s))
	if n >= length {
		return s
	}
	return s + strings.Repeat(" ", length-n)
}
