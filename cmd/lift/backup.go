// ABOUTME: CLI commands for whole-document backup and restore.
// ABOUTME: Backups are pretty-printed JSON named lift-backup-YYYY-MM-DD.json.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	backupDir  string
	restoreYes bool
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Write a full backup of all profiles, exercises, and sessions",
	Long: `Write the whole lift document to lift-backup-YYYY-MM-DD.json.

EXAMPLES:

  lift backup                 # Into the current directory
  lift backup --dir ~/backups`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := backupDir
		if dir == "" {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			dir = wd
		}

		path, err := liftStore.WriteBackup(dir)
		if err != nil {
			return err
		}
		color.Green("✓ Backup written to %s", path)
		return nil
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore <file>",
	Short: "Replace all data with a backup",
	Long: `Replace all data with the contents of a backup file.

Missing fields are repaired the same way stored data is when it loads.
A file that is not a lift backup is rejected and nothing changes.

CAUTION:

  This replaces every profile, exercise, and session. There is no undo;
  run 'lift backup' first if you want to keep the current data.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !restoreYes && !confirm(fmt.Sprintf("Replace all data with %s?", args[0])) {
			fmt.Println("Canceled.")
			return nil
		}

		if err := persisted(liftStore.RestoreBackup(args[0])); err != nil {
			return fmt.Errorf("restore failed: %w", err)
		}

		doc := liftStore.Snapshot()
		color.Green("✓ Restored from %s", args[0])
		fmt.Printf("  Profiles: %d\n", len(doc.Profiles))
		fmt.Printf("  Exercises: %d\n", len(doc.Exercises))
		fmt.Printf("  Sessions: %d\n", len(doc.Sessions))
		return nil
	},
}

func init() {
	backupCmd.Flags().StringVar(&backupDir, "dir", "", "directory for the backup file (default current directory)")
	restoreCmd.Flags().BoolVarP(&restoreYes, "yes", "y", false, "skip confirmation prompt")
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(restoreCmd)
}
