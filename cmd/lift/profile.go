// ABOUTME: CLI commands for managing profiles.
// ABOUTME: Supports add, list, use, rename, and delete with session cascade.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var profileDeleteYes bool

var profileCmd = &cobra.Command{
	Use:     "profile",
	Aliases: []string{"p"},
	Short:   "Manage profiles",
	Long: `Manage training profiles.

Each profile has its own sessions. One profile is active at a time and
commands that log or report use it unless --profile is given.

EXAMPLES:

  lift profile add Jane       # Create a profile
  lift profile list           # Show profiles (* marks active)
  lift profile use jane       # Switch active profile
  lift profile rename jane J  # Rename
  lift profile delete jane    # Delete profile and its sessions`,
}

var profileAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := liftStore.NewProfile(args[0])
		if err != nil {
			return err
		}
		stored, err := liftStore.UpsertProfile(p)
		if err := persisted(err); err != nil {
			return fmt.Errorf("failed to add profile: %w", err)
		}

		color.Green("✓ Added profile %s", stored.Name)
		fmt.Printf("  %s\n", faint.Sprint(stored.ShortID()))
		return nil
	},
}

var profileListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		profiles := liftStore.Profiles()
		if len(profiles) == 0 {
			fmt.Println("No profiles found.")
			return nil
		}

		active, _ := liftStore.ActiveProfile()
		for _, p := range profiles {
			marker := " "
			if p.ID == active.ID {
				marker = color.GreenString("*")
			}
			sessions := len(liftStore.ProfileSessions(p.ID))
			fmt.Printf("%s %s %s %s\n",
				marker,
				faint.Sprint(p.ShortID()),
				padRight(p.Name, 20),
				faint.Sprintf("%d sessions", sessions))
		}
		return nil
	},
}

var profileUseCmd = &cobra.Command{
	Use:   "use <profile>",
	Short: "Switch the active profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := liftStore.Profile(args[0])
		if err != nil {
			return err
		}
		if err := persisted(liftStore.SetActiveProfile(p.ID)); err != nil {
			return fmt.Errorf("failed to switch profile: %w", err)
		}

		color.Green("✓ Active profile: %s", p.Name)
		return nil
	},
}

var profileRenameCmd = &cobra.Command{
	Use:   "rename <profile> <new-name>",
	Short: "Rename a profile",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := liftStore.Profile(args[0])
		if err != nil {
			return err
		}
		renamed, err := liftStore.NewProfile(args[1])
		if err != nil {
			return err
		}
		old := p.Name
		p.Name = renamed.Name

		stored, err := liftStore.UpsertProfile(p)
		if err := persisted(err); err != nil {
			return fmt.Errorf("failed to rename profile: %w", err)
		}

		color.Green("✓ Renamed %s to %s", old, stored.Name)
		return nil
	},
}

var profileDeleteCmd = &cobra.Command{
	Use:     "delete <profile>",
	Aliases: []string{"rm"},
	Short:   "Delete a profile and all its sessions",
	Long: `Delete a profile by ID, ID prefix, or name.

All sessions logged under the profile are deleted too. If it was the
active profile, the first remaining profile becomes active.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := liftStore.Profile(args[0])
		if err != nil {
			return err
		}
		sessions := len(liftStore.ProfileSessions(p.ID))

		if !profileDeleteYes && !confirm(fmt.Sprintf("Delete %s and %d sessions?", p.Name, sessions)) {
			fmt.Println("Canceled.")
			return nil
		}

		if err := persisted(liftStore.DeleteProfile(p.ID)); err != nil {
			return fmt.Errorf("failed to delete profile: %w", err)
		}

		color.Yellow("✗ Deleted profile %s", p.Name)
		fmt.Printf("  %s %d sessions removed\n", faint.Sprint(p.ShortID()), sessions)
		if active, ok := liftStore.ActiveProfile(); ok {
			fmt.Printf("  Active profile: %s\n", active.Name)
		} else {
			fmt.Println("  No profiles left. Add one with 'lift profile add <name>'.")
		}
		return nil
	},
}

func init() {
	profileDeleteCmd.Flags().BoolVarP(&profileDeleteYes, "yes", "y", false, "skip confirmation prompt")

	profileCmd.AddCommand(profileAddCmd)
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileUseCmd)
	profileCmd.AddCommand(profileRenameCmd)
	profileCmd.AddCommand(profileDeleteCmd)
	rootCmd.AddCommand(profileCmd)
}
