// ABOUTME: CLI commands for viewing and deleting logged sessions.
// ABOUTME: Includes session list/show/delete and the 14-day history view.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/lift/internal/metrics"
	"github.com/harperreed/lift/internal/models"
)

const historyDays = 14

var (
	sessionDays    int
	sessionLimit   int
	sessionProfile string
)

var sessionCmd = &cobra.Command{
	Use:     "session",
	Aliases: []string{"sessions", "s"},
	Short:   "View and delete logged sessions",
	Long: `View and delete logged sessions.

Sessions are referenced by ID or ID prefix, shown in the first column of
'lift session list'.

EXAMPLES:

  lift session list              # Last 20 sessions
  lift session list --days 30    # Sessions from the last 30 days
  lift session show abc12345     # Sets for one session
  lift session delete abc1       # Delete (prefix must be unique)`,
}

var sessionListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List sessions, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := selectProfile(sessionProfile)
		if err != nil {
			return err
		}

		sessions := liftStore.ProfileSessions(profile.ID)
		if sessionDays > 0 {
			sessions = metrics.SessionsInWindow(sessions, metrics.LastNDays(liftStore.Now(), sessionDays))
		}
		if sessionLimit > 0 && len(sessions) > sessionLimit {
			sessions = sessions[:sessionLimit]
		}

		if len(sessions) == 0 {
			fmt.Println("No sessions found.")
			return nil
		}
		for _, s := range sessions {
			printSessionLine(s)
		}
		return nil
	},
}

var sessionShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a session with all its sets",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := liftStore.Session(args[0])
		if err != nil {
			return err
		}
		printSession(s, liftStore.Settings())
		return nil
	},
}

var sessionDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a session",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := liftStore.Session(args[0])
		if err != nil {
			return err
		}
		if err := persisted(liftStore.DeleteSession(s.ID)); err != nil {
			return fmt.Errorf("failed to delete session: %w", err)
		}

		color.Yellow("✗ Deleted session")
		printSessionLine(s)
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"h"},
	Short:   "Show sessions from the last 14 days with their sets",
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := selectProfile(sessionProfile)
		if err != nil {
			return err
		}

		window := metrics.LastNDays(liftStore.Now(), historyDays)
		sessions := metrics.SessionsInWindow(liftStore.ProfileSessions(profile.ID), window)
		if len(sessions) == 0 {
			fmt.Printf("No sessions since %s.\n", window.StartDate())
			return nil
		}

		settings := liftStore.Settings()
		for i, s := range sessions {
			if i > 0 {
				fmt.Println()
			}
			printSession(s, settings)
		}
		return nil
	},
}

func printSessionLine(s models.Session) {
	var sets int
	for _, e := range s.Entries {
		sets += len(e.Sets)
	}
	notes := ""
	if s.Notes != "" {
		notes = faint.Sprintf(" (%s)", truncate(s.Notes, 30))
	}
	fmt.Printf("%s %s %s %2d exercises %3d sets  volume %s%s\n",
		faint.Sprint(s.ShortID()),
		metrics.FormatDate(s.DateISO),
		padRight(truncate(models.DayLabel(s.DayType), 20), 20),
		len(s.Entries),
		sets,
		formatWeight(s.TotalVolume),
		notes)
}

func printSession(s models.Session, settings models.Settings) {
	title := metrics.FormatDate(s.DateISO)
	if s.DayType != "" {
		title += " " + models.DayLabel(s.DayType)
	}
	color.New(color.Bold).Println(title)
	fmt.Printf("  %s volume %s %s\n", faint.Sprint(s.ShortID()), formatWeight(s.TotalVolume), settings.Units)
	if s.Notes != "" {
		fmt.Printf("  %s\n", faint.Sprint(s.Notes))
	}

	formula := settings.Formula()
	for _, e := range s.Entries {
		var best float64
		for _, set := range e.Sets {
			if e1 := metrics.SetE1RM(set, formula); e1 > best {
				best = e1
			}
		}
		fmt.Printf("  %s %s %s\n",
			padRight(truncate(e.ExerciseName, 40), 40),
			formatSets(e.Sets),
			faint.Sprintf("e1RM %.0f", best))
	}
}

func init() {
	sessionListCmd.Flags().IntVarP(&sessionDays, "days", "d", 0, "only sessions from the last N days")
	sessionListCmd.Flags().IntVarP(&sessionLimit, "limit", "n", 20, "max number of results")
	sessionListCmd.Flags().StringVarP(&sessionProfile, "profile", "p", "", "profile (default active)")
	historyCmd.Flags().StringVarP(&sessionProfile, "profile", "p", "", "profile (default active)")

	sessionCmd.AddCommand(sessionListCmd)
	sessionCmd.AddCommand(sessionShowCmd)
	sessionCmd.AddCommand(sessionDeleteCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(historyCmd)
}
