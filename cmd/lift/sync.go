// ABOUTME: CLI commands for the Charm backend's cloud sync.
// ABOUTME: Supports link, unlink, status, repair, reset, and wipe operations.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/charmbracelet/charm/kv"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/lift/internal/metrics"
	"github.com/harperreed/lift/internal/models"
	"github.com/harperreed/lift/internal/storage"
	"github.com/harperreed/lift/internal/store"
)

var syncYes bool

var syncCmd = &cobra.Command{
	Use:         "sync",
	Short:       "Manage Charm Cloud sync for the charm backend",
	Annotations: map[string]string{skipStore: "true"},
	Long: `Manage Charm Cloud sync for the charm backend (--backend charm).

The whole lift document is stored as one encrypted value and pushed to
Charm Cloud after each change. The last device to write wins.

  lift sync link                        link this device
  lift migrate --from sqlite --to charm copy existing data into charm
  export LIFT_BACKEND=charm             use it from now on

Run 'lift sync status' to see what charm currently holds.`,
}

// runCharmCLI shells out to the charm binary with the terminal attached.
func runCharmCLI(args ...string) error {
	c := exec.Command("charm", args...)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c.Run()
}

var syncLinkCmd = &cobra.Command{
	Use:   "link",
	Short: "Link this device to Charm",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runCharmCLI("link"); err != nil {
			return fmt.Errorf("failed to link: %w\n\nInstall the charm CLI with: go install github.com/charmbracelet/charm@latest", err)
		}
		color.Green("\n✓ Device linked to Charm")

		c, err := storage.OpenCharm(storage.CharmDBName)
		if err != nil {
			color.Yellow("⚠ Could not pull lift data: %v", err)
			return nil
		}
		defer func() { _ = c.Close() }()

		if err := c.Sync(); err != nil {
			color.Yellow("⚠ Could not pull lift data: %v", err)
			return nil
		}
		color.Green("✓ Pulled lift data from Charm Cloud")
		return nil
	},
}

var syncUnlinkCmd = &cobra.Command{
	Use:   "unlink",
	Short: "Disconnect this device from Charm",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runCharmCLI("unlink"); err != nil {
			return fmt.Errorf("failed to unlink: %w", err)
		}
		color.Green("✓ Device unlinked from Charm")
		fmt.Println("Local lift data in charm is kept.")
		return nil
	},
}

var syncStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the charm account and the lift data it holds",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := storage.OpenCharm(storage.CharmDBName)
		if err != nil {
			color.Yellow("Charm storage unavailable: %v", err)
			fmt.Println("\nRun 'lift sync link' to connect.")
			return nil
		}
		defer func() { _ = c.Close() }()

		id, err := c.ID()
		if err != nil {
			color.Yellow("Not linked to Charm")
			fmt.Println("\nRun 'lift sync link' to connect.")
			return nil
		}

		fmt.Println("Charm ID:      ", id)
		if host := os.Getenv("CHARM_HOST"); host != "" {
			fmt.Println("Server:        ", host)
		}
		fmt.Println("Active backend:", cfg.GetBackend())
		if c.IsReadOnly() {
			color.Yellow("⚠ Read-only: another lift process (mcp?) has the database open")
		}
		fmt.Println()

		// Read the raw blob; opening a Store here would seed an empty account.
		data, err := c.Get(store.DocumentKey)
		if errors.Is(err, storage.ErrNotFound) {
			fmt.Println("No lift data in charm yet.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read charm data: %w", err)
		}
		var doc models.Document
		if err := json.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("charm data is not a lift document: %w", err)
		}
		printDocumentSummary(&doc)
		return nil
	},
}

func printDocumentSummary(doc *models.Document) {
	active := "none"
	if i := doc.FindProfile(doc.ActiveID()); i >= 0 {
		active = doc.Profiles[i].Name
	}
	fmt.Printf("Profiles:  %d (active: %s)\n", len(doc.Profiles), active)
	fmt.Printf("Exercises: %d\n", len(doc.Exercises))
	fmt.Printf("Sessions:  %d\n", len(doc.Sessions))
	if sessions := metrics.SortNewestFirst(doc.Sessions); len(sessions) > 0 {
		fmt.Printf("Last session: %s\n", metrics.FormatDate(sessions[0].DateISO))
	}
}

var syncRepairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Repair the local charm database",
	Long: `Repair the local charm database: checkpoint the WAL, remove a stale SHM
file, run an integrity check, and vacuum.

Use this after "database is locked" errors. --force keeps going when the
integrity check fails.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		fmt.Println("Repairing charm database...")
		result, err := kv.Repair(storage.CharmDBName, force)

		steps := []struct {
			done bool
			msg  string
		}{
			{result.WalCheckpointed, "WAL checkpointed"},
			{result.ShmRemoved, "SHM file removed"},
			{result.Vacuumed, "database vacuumed"},
		}
		for _, s := range steps {
			if s.done {
				color.Green("  ✓ %s", s.msg)
			}
		}
		if result.IntegrityOK {
			color.Green("  ✓ integrity check passed")
		} else {
			color.Red("  ✗ integrity check failed")
		}

		if err != nil {
			if !force {
				color.Yellow("\nRetry with --force to attempt recovery.")
			}
			return fmt.Errorf("repair failed: %w", err)
		}
		color.Green("\n✓ Repair complete")
		return nil
	},
}

// destructiveSync builds a confirm-then-run command around a charm kv operation.
func destructiveSync(use, short, long, prompt string, run func() error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Long:  long,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !syncYes {
				fmt.Println(prompt)
				if !confirm("Continue?") {
					fmt.Println("Canceled.")
					return nil
				}
			}
			return run()
		},
	}
}

var syncResetCmd = destructiveSync(
	"reset",
	"Replace local charm data with the cloud copy",
	`Delete the local charm database and pull the lift document back from
Charm Cloud. Changes that never reached the cloud are lost.`,
	"This deletes local lift data in charm and restores it from the cloud.",
	func() error {
		if err := kv.Reset(storage.CharmDBName); err != nil {
			return fmt.Errorf("reset failed: %w", err)
		}
		color.Green("✓ Local charm data restored from cloud")
		return nil
	},
)

var syncWipeCmd = destructiveSync(
	"wipe",
	"Delete lift data from charm, locally and in the cloud",
	`Permanently delete every cloud backup and the local charm database.
The sqlite, badger and file backends are not touched.`,
	"This PERMANENTLY deletes all lift data held by charm, including cloud backups.",
	func() error {
		result, err := kv.Wipe(storage.CharmDBName)
		if err != nil {
			return fmt.Errorf("wipe failed: %w", err)
		}
		color.Green("✓ Charm data wiped")
		fmt.Printf("  Cloud backups deleted: %d\n", result.CloudBackupsDeleted)
		fmt.Printf("  Local files deleted:   %d\n", result.LocalFilesDeleted)
		return nil
	},
)

func init() {
	syncCmd.AddCommand(syncLinkCmd, syncUnlinkCmd, syncStatusCmd, syncRepairCmd, syncResetCmd, syncWipeCmd)

	syncRepairCmd.Flags().Bool("force", false, "keep going when the integrity check fails")
	syncResetCmd.Flags().BoolVarP(&syncYes, "yes", "y", false, "skip confirmation prompt")
	syncWipeCmd.Flags().BoolVarP(&syncYes, "yes", "y", false, "skip confirmation prompt")

	rootCmd.AddCommand(syncCmd)
}
