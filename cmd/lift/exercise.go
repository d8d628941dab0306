// ABOUTME: CLI commands for the exercise library.
// ABOUTME: Supports add, list, edit, activate, deactivate, and delete.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/lift/internal/models"
	"github.com/harperreed/lift/internal/store"
)

var (
	exerciseCategory  string
	exerciseEquipment string
	exerciseName      string
	exerciseListAll   bool
	exerciseListOff   bool
)

var exerciseCmd = &cobra.Command{
	Use:     "exercise",
	Aliases: []string{"ex"},
	Short:   "Manage the exercise library",
	Long: `Manage the exercise library.

Exercises can be referenced by ID, ID prefix, or full name (case-insensitive).
Inactive exercises are hidden from templates and lists but keep their history.
Deleting an exercise leaves logged sessions untouched.

EXAMPLES:

  lift exercise list                               # Active exercises
  lift exercise list --all                         # Include inactive
  lift exercise add "Back Squat" -c Legs -e Barbell
  lift exercise edit "Back Squat" --name "High-Bar Squat"
  lift exercise deactivate "Cable Y-Raise"
  lift exercise delete "High-Bar Squat"`,
}

var exerciseAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add an exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ex, err := liftStore.NewExercise(args[0], exerciseCategory, exerciseEquipment)
		if err != nil {
			return err
		}
		if existing, ok := liftStore.ExerciseNamed(ex.Name); ok {
			return fmt.Errorf("exercise already exists: %s (%s)", existing.Name, existing.ShortID())
		}

		stored, err := liftStore.UpsertExercise(ex)
		if err := persisted(err); err != nil {
			return fmt.Errorf("failed to add exercise: %w", err)
		}

		color.Green("✓ Added %s", stored.Name)
		fmt.Printf("  %s %s / %s\n", faint.Sprint(stored.ShortID()), stored.Category, stored.Equipment)
		return nil
	},
}

var exerciseListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List exercises",
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := store.FilterActive
		switch {
		case exerciseListAll:
			filter = store.FilterAll
		case exerciseListOff:
			filter = store.FilterInactive
		}

		exercises := liftStore.Exercises(filter)
		if len(exercises) == 0 {
			fmt.Println("No exercises found.")
			return nil
		}

		for _, e := range exercises {
			status := ""
			if !e.IsActive {
				status = faint.Sprint(" (inactive)")
			}
			fmt.Printf("%s %s %s%s\n",
				faint.Sprint(e.ShortID()),
				padRight(truncate(e.Name, 44), 44),
				faint.Sprintf("%s / %s", e.Category, e.Equipment),
				status)
		}
		return nil
	},
}

var exerciseEditCmd = &cobra.Command{
	Use:   "edit <exercise>",
	Short: "Edit an exercise's name, category, or equipment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ex, err := liftStore.ResolveExercise(args[0])
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("name") && exerciseCategory == "" && exerciseEquipment == "" {
			return fmt.Errorf("nothing to change: use --name, --category, or --equipment")
		}
		name := exerciseName
		if cmd.Flags().Changed("name") {
			if name, err = store.ValidateExerciseName(name); err != nil {
				return err
			}
			if existing, ok := liftStore.ExerciseNamed(name); ok && existing.ID != ex.ID {
				return fmt.Errorf("exercise already exists: %s (%s)", existing.Name, existing.ShortID())
			}
		}

		stored, err := liftStore.UpsertExercise(models.Exercise{
			ID:        ex.ID,
			Name:      name,
			Category:  exerciseCategory,
			Equipment: exerciseEquipment,
			IsActive:  ex.IsActive,
		})
		if err := persisted(err); err != nil {
			return fmt.Errorf("failed to edit exercise: %w", err)
		}

		color.Green("✓ Updated %s", stored.Name)
		fmt.Printf("  %s %s / %s\n", faint.Sprint(stored.ShortID()), stored.Category, stored.Equipment)
		return nil
	},
}

func setActiveCmd(use, short string, active bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <exercise>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ex, err := liftStore.ResolveExercise(args[0])
			if err != nil {
				return err
			}
			if err := persisted(liftStore.SetExerciseActive(ex.ID, active)); err != nil {
				return fmt.Errorf("failed to update exercise: %w", err)
			}

			if active {
				color.Green("✓ Activated %s", ex.Name)
			} else {
				color.Yellow("✓ Deactivated %s", ex.Name)
			}
			return nil
		},
	}
}

var exerciseDeleteCmd = &cobra.Command{
	Use:     "delete <exercise>",
	Aliases: []string{"rm"},
	Short:   "Delete an exercise from the library",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ex, err := liftStore.ResolveExercise(args[0])
		if err != nil {
			return err
		}
		if err := persisted(liftStore.DeleteExercise(ex.ID)); err != nil {
			return fmt.Errorf("failed to delete exercise: %w", err)
		}

		color.Yellow("✗ Deleted %s", ex.Name)
		fmt.Printf("  %s logged sessions keep their history\n", faint.Sprint(ex.ShortID()))
		return nil
	},
}

func init() {
	exerciseAddCmd.Flags().StringVarP(&exerciseCategory, "category", "c", "", "category (default Other)")
	exerciseAddCmd.Flags().StringVarP(&exerciseEquipment, "equipment", "e", "", "equipment (default Other)")

	exerciseEditCmd.Flags().StringVar(&exerciseName, "name", "", "new name")
	exerciseEditCmd.Flags().StringVarP(&exerciseCategory, "category", "c", "", "new category")
	exerciseEditCmd.Flags().StringVarP(&exerciseEquipment, "equipment", "e", "", "new equipment")

	exerciseListCmd.Flags().BoolVarP(&exerciseListAll, "all", "a", false, "include inactive exercises")
	exerciseListCmd.Flags().BoolVar(&exerciseListOff, "inactive", false, "only inactive exercises")

	exerciseCmd.AddCommand(exerciseAddCmd)
	exerciseCmd.AddCommand(exerciseListCmd)
	exerciseCmd.AddCommand(exerciseEditCmd)
	exerciseCmd.AddCommand(setActiveCmd("activate", "Show an exercise in lists and templates", true))
	exerciseCmd.AddCommand(setActiveCmd("deactivate", "Hide an exercise without deleting it", false))
	exerciseCmd.AddCommand(exerciseDeleteCmd)
	rootCmd.AddCommand(exerciseCmd)
}
