// ABOUTME: CLI commands for settings and day templates.
// ABOUTME: Units and e1RM formula are the only settings.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/lift/internal/models"
)

var (
	settingsUnits   string
	settingsFormula string
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change settings",
	Long: `Show or change settings.

  units     lb or kg (labels only; stored weights are not converted)
  formula   epley or brzycki, used for e1RM in stats and exports`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return settingsShowCmd.RunE(cmd, args)
	},
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := liftStore.Settings()
		fmt.Printf("Units:   %s\n", s.Units)
		fmt.Printf("Formula: %s\n", s.Formula().Label())
		fmt.Printf("Backend: %s %s\n", cfg.GetBackend(), faint.Sprint(cfg.GetDataDir()))
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change units or e1RM formula",
	Long: `Change units or e1RM formula.

EXAMPLES:

  lift settings set --units kg
  lift settings set --formula brzycki`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if settingsUnits == "" && settingsFormula == "" {
			return fmt.Errorf("nothing to change: use --units or --formula")
		}

		s, err := liftStore.UpdateSettings(models.Settings{
			Units:       models.Units(settingsUnits),
			E1RMFormula: models.Formula(settingsFormula),
		})
		if err := persisted(err); err != nil {
			return err
		}

		color.Green("✓ Settings updated")
		fmt.Printf("  Units:   %s\n", s.Units)
		fmt.Printf("  Formula: %s\n", s.Formula().Label())
		return nil
	},
}

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the six-day split templates",
	Long: `List the day templates used with 'lift log --template'.

Each item shows the planned number of sets. Items whose exercise is no longer
in the library are marked missing; inactive ones are marked inactive.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		for i, tmpl := range models.DayTemplates {
			if i > 0 {
				fmt.Println()
			}
			color.New(color.Bold).Printf("%s ", tmpl.Label)
			fmt.Println(faint.Sprint(tmpl.Key))

			for _, plan := range liftStore.TemplatePlan(tmpl) {
				status := ""
				switch {
				case plan.Exercise == nil:
					status = color.RedString(" (missing)")
				case !plan.Exercise.IsActive:
					status = faint.Sprint(" (inactive)")
				}
				fmt.Printf("  %d x %s%s\n", plan.Item.Sets, plan.Item.Name, status)
			}
		}
		return nil
	},
}

func init() {
	settingsSetCmd.Flags().StringVar(&settingsUnits, "units", "", "lb or kg")
	settingsSetCmd.Flags().StringVar(&settingsFormula, "formula", "", "epley or brzycki")

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(templatesCmd)
}
