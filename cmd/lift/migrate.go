// ABOUTME: CLI command for copying lift data between storage backends.
// ABOUTME: Refuses to overwrite existing data unless --force is given.
package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/harperreed/lift/internal/storage"
	"github.com/harperreed/lift/internal/store"
)

var (
	migrateFrom  string
	migrateTo    string
	migrateForce bool
)

var migrateCmd = &cobra.Command{
	Use:         "migrate",
	Short:       "Copy data from one storage backend to another",
	Annotations: map[string]string{skipStore: "true"},
	Long: `Copy the lift document from one storage backend to another.

Backends: sqlite, badger, file, charm. Local backends live under the data
directory (--data-dir). The source is left untouched.

IMPORTANT:

  - Existing data in the destination is NOT overwritten unless --force is set
  - Stop any running 'lift mcp' server first so the source is not locked
  - Afterwards select the new backend with --backend, LIFT_BACKEND, or
    "backend" in ~/.config/lift/config.json

EXAMPLES:

  lift migrate --from sqlite --to badger
  lift migrate --from file --to charm --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := storage.ParseKind(migrateFrom)
		if err != nil {
			return err
		}
		to, err := storage.ParseKind(migrateTo)
		if err != nil {
			return err
		}
		if from == to {
			return fmt.Errorf("--from and --to are both %s", from)
		}

		dataDir := cfg.GetDataDir()
		src, err := storage.Open(from, dataDir)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", from, err)
		}
		defer func() { _ = src.Close() }()

		dst, err := storage.Open(to, dataDir)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", to, err)
		}
		defer func() { _ = dst.Close() }()

		summary, err := storage.MigrateKeys(src, dst, []string{store.DocumentKey}, migrateForce)
		if errors.Is(err, storage.ErrDestinationExists) {
			return fmt.Errorf("%w\n\nRun with --force to replace it", err)
		}
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		log.WithFields(log.Fields{
			"from":  from,
			"to":    to,
			"keys":  summary.Keys,
			"bytes": summary.Bytes,
		}).Info("migration complete")

		if summary.Keys == 0 {
			color.Yellow("⚠ Nothing to migrate: %s has no lift data", from)
			return nil
		}
		color.Green("✓ Migrated %s → %s", from, to)
		fmt.Printf("  %d bytes copied\n", summary.Bytes)
		fmt.Printf("\nUse it with: lift --backend %s ...\n", to)
		return nil
	},
}

func init() {
	migrateCmd.Flags().StringVar(&migrateFrom, "from", "", "source backend")
	migrateCmd.Flags().StringVar(&migrateTo, "to", "", "destination backend")
	migrateCmd.Flags().BoolVar(&migrateForce, "force", false, "overwrite existing data in the destination")
	_ = migrateCmd.MarkFlagRequired("from")
	_ = migrateCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(migrateCmd)
}
