// ABOUTME: CLI commands for training statistics.
// ABOUTME: Dashboard, personal records, e1RM trend, and window volume.
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
	statsProfile string
	statsLimit   int
	statsFrom    string
	statsTo      string
	statsDays    int
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Training statistics",
	Long: `Training statistics for the active profile.

Estimated one-rep max (e1RM) uses the formula from 'lift settings'
(Epley by default, or Brzycki).

EXAMPLES:

  lift stats dashboard                        # Last 7 days at a glance
  lift stats prs -n 5                         # Top 5 personal records
  lift stats trend "Leg Press"                # e1RM per session
  lift stats volume --from 2024-01-01 --to 2024-01-31`,
}

var statsDashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Workouts, volume, and records for the last 7 days",
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := selectProfile(statsProfile)
		if err != nil {
			return err
		}

		settings := liftStore.Settings()
		summary := metrics.Dashboard(liftStore.ProfileSessions(profile.ID), settings.Formula(), liftStore.Now())

		color.New(color.Bold).Printf("%s  %s → %s\n", profile.Name, summary.WeekStart, summary.WeekEnd)
		fmt.Printf("  Workouts: %d\n", summary.Workouts)
		fmt.Printf("  Volume:   %s %s\n", formatWeight(summary.Volume), settings.Units)
		fmt.Println()

		fmt.Printf("Top records (%s, %d total)\n", summary.Formula.Label(), summary.AllRecords)
		if len(summary.Records) == 0 {
			fmt.Println("  No records yet.")
		}
		for _, r := range summary.Records {
			printRecord(r)
		}
		fmt.Println()

		fmt.Println("Recent sessions")
		if len(summary.Recent) == 0 {
			fmt.Println("  No sessions yet.")
		}
		for _, s := range summary.Recent {
			fmt.Print("  ")
			printSessionLine(s)
		}
		return nil
	},
}

var statsPRsCmd = &cobra.Command{
	Use:     "prs",
	Aliases: []string{"records"},
	Short:   "Best e1RM per exercise",
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := selectProfile(statsProfile)
		if err != nil {
			return err
		}

		formula := liftStore.Settings().Formula()
		records := metrics.BestPersonalRecords(metrics.SortOldestFirst(liftStore.ProfileSessions(profile.ID)), formula)
		if len(records) == 0 {
			fmt.Println("No records yet.")
			return nil
		}
		if statsLimit > 0 && len(records) > statsLimit {
			records = records[:statsLimit]
		}

		fmt.Printf("Personal records (%s)\n", formula.Label())
		for _, r := range records {
			printRecord(r)
		}
		return nil
	},
}

var statsTrendCmd = &cobra.Command{
	Use:   "trend <exercise>",
	Short: "Best e1RM per session for one exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := selectProfile(statsProfile)
		if err != nil {
			return err
		}

		exerciseID, name := args[0], args[0]
		ex, err := liftStore.ResolveExercise(args[0])
		switch {
		case err == nil:
			exerciseID, name = ex.ID, ex.Name
		case !store.IsNotFound(err):
			return err
		}

		formula := liftStore.Settings().Formula()
		var points []metrics.TrendPoint
		var top float64
		for p := range metrics.Trend(liftStore.ProfileSessions(profile.ID), exerciseID, formula) {
			points = append(points, p)
			top = max(top, p.E1RM)
		}
		if len(points) == 0 {
			fmt.Printf("No sessions with %s.\n", name)
			return nil
		}

		fmt.Printf("%s e1RM (%s)\n", name, formula.Label())
		for _, p := range points {
			width := int(p.E1RM / top * 30)
			fmt.Printf("  %s %6.1f %s\n", p.Date, p.E1RM, color.CyanString(strings.Repeat("█", max(width, 1))))
		}
		return nil
	},
}

var statsVolumeCmd = &cobra.Command{
	Use:   "volume",
	Short: "Total volume (weight x reps) in a date range",
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := selectProfile(statsProfile)
		if err != nil {
			return err
		}
		window, err := dayWindow(statsFrom, statsTo, statsDays, liftStore.Now())
		if err != nil {
			return err
		}

		sessions := liftStore.ProfileSessions(profile.ID)
		volume := metrics.WindowVolume(sessions, window.Start, window.End)
		count := len(metrics.SessionsInWindow(sessions, window))

		fmt.Printf("%s → %s\n", window.StartDate(), window.EndDate())
		fmt.Printf("  Sessions: %d\n", count)
		fmt.Printf("  Volume:   %s %s\n", formatWeight(volume), liftStore.Settings().Units)
		return nil
	},
}

func printRecord(r metrics.PersonalRecord) {
	fmt.Printf("  %s %6.1f  %s %s\n",
		padRight(truncate(r.ExerciseName, 40), 40),
		r.E1RM,
		faint.Sprintf("%sx%s", formatWeight(r.Weight), formatWeight(r.Reps)),
		faint.Sprint(metrics.FormatDate(r.DateISO)))
}

func init() {
	statsCmd.PersistentFlags().StringVarP(&statsProfile, "profile", "p", "", "profile (default active)")
	statsPRsCmd.Flags().IntVarP(&statsLimit, "limit", "n", 0, "max number of records")
	statsVolumeCmd.Flags().StringVar(&statsFrom, "from", "", "first day (YYYY-MM-DD)")
	statsVolumeCmd.Flags().StringVar(&statsTo, "to", "", "last day, inclusive (YYYY-MM-DD, default today)")
	statsVolumeCmd.Flags().IntVarP(&statsDays, "days", "d", 7, "days ending at --to when --from is not set")

	statsCmd.AddCommand(statsDashboardCmd)
	statsCmd.AddCommand(statsPRsCmd)
	statsCmd.AddCommand(statsTrendCmd)
	statsCmd.AddCommand(statsVolumeCmd)
	rootCmd.AddCommand(statsCmd)
}
