// ABOUTME: Exercise library entry model.
// ABOUTME: Inactive exercises stay in the library but are hidden from logging.
package models

import (
	"encoding/json"
	"time"
)

// Exercise is an entry in the exercise library.
type Exercise struct {
	ID        string    `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	Category  string    `json:"category" yaml:"category"`
	Equipment string    `json:"equipment" yaml:"equipment"`
	IsActive  bool      `json:"isActive" yaml:"is_active"`
	CreatedAt time.Time `json:"createdAt" yaml:"created_at"`
}

// ShortID returns the 8-character prefix shown in CLI listings.
func (e Exercise) ShortID() string {
	return shortID(e.ID)
}

// UnmarshalJSON defaults isActive to true when the field is absent and
// tolerates a blank or malformed createdAt.
func (e *Exercise) UnmarshalJSON(data []byte) error {
	type alias Exercise
	raw := struct {
		*alias
		IsActive  *bool           `json:"isActive"`
		CreatedAt json.RawMessage `json:"createdAt"`
	}{alias: (*alias)(e)}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	e.IsActive = raw.IsActive == nil || *raw.IsActive
	e.CreatedAt = decodeTime(raw.CreatedAt)
	return nil
}

// Categories lists the category choices offered when adding an exercise.
var Categories = []string{"Push", "Pull", "Legs", "Shoulders", "Arms", "Core", "Cardio", "Other"}

// EquipmentTypes lists the equipment choices offered when adding an exercise.
var EquipmentTypes = []string{"Barbell", "Dumbbell", "Machine", "Cable", "Bodyweight", "Kettlebell", "Other"}
