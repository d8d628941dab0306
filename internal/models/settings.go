// ABOUTME: Process-wide settings: weight units and estimated 1RM formula.
// ABOUTME: Includes parsing helpers used at the CLI and MCP input boundary.
package models

import (
	"fmt"
	"strings"
)

// Units is the weight unit used for display and export.
type Units string

const (
	UnitsPounds    Units = "lb"
	UnitsKilograms Units = "kg"
)

// Formula selects the estimated one-rep-max formula.
type Formula string

const (
	FormulaEpley   Formula = "epley"
	FormulaBrzycki Formula = "brzycki"
)

// Settings holds the single settings record of the document.
type Settings struct {
	Units       Units   `json:"units" yaml:"units"`
	E1RMFormula Formula `json:"e1rmFormula,omitempty" yaml:"e1rm_formula,omitempty"`
}

// DefaultSettings returns the settings a freshly seeded document starts with.
func DefaultSettings() Settings {
	return Settings{Units: UnitsPounds, E1RMFormula: FormulaEpley}
}

// Formula returns the configured formula, defaulting to Epley.
func (s Settings) Formula() Formula {
	if s.E1RMFormula == "" {
		return FormulaEpley
	}
	return s.E1RMFormula
}

// Label returns the display name of the formula.
func (f Formula) Label() string {
	if f == FormulaBrzycki {
		return "Brzycki"
	}
	return "Epley"
}

// ParseUnits validates a units string.
func ParseUnits(s string) (Units, error) {
	switch u := Units(strings.ToLower(strings.TrimSpace(s))); u {
	case UnitsPounds, UnitsKilograms:
		return u, nil
	default:
		return "", fmt.Errorf("unknown units: %q (use lb or kg)", s)
	}
}

// ParseFormula validates a formula string.
func ParseFormula(s string) (Formula, error) {
	switch f := Formula(strings.ToLower(strings.TrimSpace(s))); f {
	case FormulaEpley, FormulaBrzycki:
		return f, nil
	default:
		return "", fmt.Errorf("unknown formula: %q (use epley or brzycki)", s)
	}
}
