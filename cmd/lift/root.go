// ABOUTME: Root Cobra command for lift CLI.
// ABOUTME: Loads config, sets up logging, and opens the store via PersistentPre/PostRunE.
package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/harperreed/lift/internal/config"
	"github.com/harperreed/lift/internal/logging"
	"github.com/harperreed/lift/internal/store"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	cfg       *config.Config
	liftStore *store.Store
	logCloser io.Closer

	flagBackend  string
	flagDataDir  string
	flagLogLevel string
	flagLogFile  string
)

// skipStore marks commands that manage storage themselves.
const skipStore = "lift/skip-store"

var rootCmd = &cobra.Command{
	Use:           "lift",
	Short:         "Strength training log",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	Long: `Lift is a CLI tool for logging strength training sessions.

WHAT IT TRACKS:

  Profiles    one training log per person, one of them active
  Exercises   a starter library for a six-day split, editable
  Sessions    dated sets of weight x reps (optional RPE) per exercise

QUICK START:

  $ lift log --entry "Leg Press=200x10,200x8"      # Log a session
  $ lift log --template day3_legs --entry ...       # Log a planned day
  $ lift history                                    # Last 14 days
  $ lift stats prs                                  # Personal records (e1RM)
  $ lift stats trend "Leg Press"                    # e1RM over time
  $ lift export csv --from 2024-01-01               # Export a date range

STORAGE:

  The whole log is one JSON document stored under a single key.
  Pick a backend with --backend or LIFT_BACKEND:

    sqlite   ~/.local/share/lift/lift.db (default)
    badger   ~/.local/share/lift/badger/
    file     ~/.local/share/lift/documents/
    charm    Charm KV with cloud sync (see 'lift sync')

  Copy data between backends with 'lift migrate'.

MCP INTEGRATION:

  Run 'lift mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants.

  {
    "mcpServers": {
      "lift": { "command": "lift", "args": ["mcp"] }
    }
  }`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" {
			return nil
		}

		loaded, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		applyFlags(loaded)
		cfg = loaded

		logCloser = logging.Setup(logging.Params{
			Level:      cfg.GetLogLevel(),
			FileName:   config.ExpandPath(cfg.LogFile),
			FormatJSON: cfg.LogJSON,
			Quiet:      cmd.Name() == "mcp",
		})

		if skipsStore(cmd) {
			return nil
		}

		liftStore, err = openStore(cfg)
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return cleanup()
	},
}

// cleanup closes the store and log file. Cobra skips PersistentPostRunE when
// a command fails, so main calls it too; it is safe to call twice.
func cleanup() error {
	var err error
	if liftStore != nil {
		err = liftStore.Close()
		liftStore = nil
	}
	if logCloser != nil {
		_ = logCloser.Close()
		logCloser = nil
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "storage backend: sqlite, badger, file, or charm")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default ~/.local/share/lift)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "also write logs to this rotating file")
}

// applyFlags lets command-line flags override file and environment config.
func applyFlags(c *config.Config) {
	if flagBackend != "" {
		c.Backend = flagBackend
	}
	if flagDataDir != "" {
		c.DataDir = flagDataDir
	}
	if flagLogLevel != "" {
		c.LogLevel = flagLogLevel
	}
	if flagLogFile != "" {
		c.LogFile = flagLogFile
	}
}

func skipsStore(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[skipStore] == "true" {
			return true
		}
	}
	return false
}

// openStore opens the configured backend and loads the document. A failed
// seed write still returns a usable in-memory store.
func openStore(c *config.Config) (*store.Store, error) {
	backend, err := c.OpenStorage()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s storage: %w", c.GetBackend(), err)
	}

	st, err := store.Open(backend)
	if st == nil {
		_ = backend.Close()
		return nil, fmt.Errorf("failed to load data: %w", err)
	}
	if err != nil {
		warn(err)
	}

	log.WithFields(log.Fields{
		"backend":  c.GetBackend(),
		"data_dir": c.GetDataDir(),
	}).Debug("store opened")
	return st, nil
}

// persisted reports a failed save as a warning; the change stays in memory
// for the rest of the command. Other errors pass through.
func persisted(err error) error {
	if err == nil {
		return nil
	}
	if store.IsPersistence(err) {
		warn(err)
		return nil
	}
	return err
}

func warn(err error) {
	color.Yellow("⚠ %v", err)
}
