// ABOUTME: CLI command for logging a training session.
// ABOUTME: Entries use NAME=WEIGHTxREPS[@RPE],... and may follow a day template.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/lift/internal/metrics"
	"github.com/harperreed/lift/internal/store"
)

var (
	logEntries  []string
	logTemplate string
	logDate     string
	logNotes    string
	logProfile  string
)

var logCmd = &cobra.Command{
	Use:     "log",
	Aliases: []string{"add", "a"},
	Short:   "Log a training session",
	Long: `Log a training session for the active profile.

Each --entry names an exercise (ID, ID prefix, or name) and its sets:

  --entry "Leg Press=200x10,200x8,180x10@9"

Sets are WEIGHTxREPS with an optional @RPE. Sets without a positive weight
and reps are dropped; a session needs at least one valid set.

With --template the session is labeled with the day type and entries are
ordered the way the template lists them. See 'lift templates'.

EXAMPLES:

  lift log --entry "Lat Pulldown=120x10,120x10"
  lift log --template day3_legs \
    --entry "Leg Press=200x10,200x10" \
    --entry "Hamstring Curls=80x12"
  lift log --date 2024-01-08 --notes "deload" --entry "Face Pulls=30x15"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := selectProfile(logProfile)
		if err != nil {
			return err
		}
		if len(logEntries) == 0 {
			return fmt.Errorf("nothing to log: add at least one --entry")
		}

		entries, err := parseEntries(logEntries)
		if err != nil {
			return err
		}

		in := store.SessionInput{Entries: entries}
		if logTemplate != "" {
			in, err = liftStore.SessionFromTemplate(logTemplate, entries)
			if err != nil {
				return err
			}
		}
		in.ProfileID = profile.ID
		in.Notes = logNotes
		if logDate != "" {
			day, err := parseDay(logDate)
			if err != nil {
				return err
			}
			in.Date = store.Noon(day)
		}

		sess, err := liftStore.NewSession(in)
		if err != nil {
			return err
		}
		stored, err := liftStore.AddSession(sess)
		if err := persisted(err); err != nil {
			return fmt.Errorf("failed to log session: %w", err)
		}

		color.Green("✓ Logged session for %s", profile.Name)
		fmt.Printf("  %s %s  volume %s\n",
			faint.Sprint(stored.ShortID()),
			metrics.FormatDate(stored.DateISO),
			formatWeight(stored.TotalVolume))
		for _, e := range stored.Entries {
			fmt.Printf("  %s %s\n", padRight(truncate(e.ExerciseName, 40), 40), formatSets(e.Sets))
		}
		return nil
	},
}

// parseEntries turns NAME=SETS flags into entry input, resolving each exercise.
func parseEntries(raw []string) ([]store.EntryInput, error) {
	entries := make([]store.EntryInput, 0, len(raw))
	for _, r := range raw {
		i := strings.LastIndex(r, "=")
		if i < 0 {
			return nil, fmt.Errorf("invalid entry %q: expected EXERCISE=WEIGHTxREPS,...", r)
		}
		ex, err := liftStore.ResolveExercise(r[:i])
		if err != nil {
			return nil, err
		}
		sets, err := metrics.ParseSets(r[i+1:])
		if err != nil {
			return nil, err
		}
		entries = append(entries, store.EntryInput{ExerciseID: ex.ID, ExerciseName: ex.Name, Sets: sets})
	}
	return entries, nil
}

func init() {
	logCmd.Flags().StringArrayVarP(&logEntries, "entry", "e", nil, "exercise and sets, e.g. \"Leg Press=200x10,200x8@9\" (repeatable)")
	logCmd.Flags().StringVarP(&logTemplate, "template", "t", "", "day template key, e.g. day1_push")
	logCmd.Flags().StringVar(&logDate, "date", "", "session date (YYYY-MM-DD, default today)")
	logCmd.Flags().StringVar(&logNotes, "notes", "", "session notes")
	logCmd.Flags().StringVarP(&logProfile, "profile", "p", "", "profile (default active)")
	rootCmd.AddCommand(logCmd)
}
