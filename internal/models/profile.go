// ABOUTME: Profile model for the person logging workouts on this device.
// ABOUTME: One profile is active at a time via the document's activeProfileId.
package models

import (
	"encoding/json"
	"time"
)

// Profile represents one person using the device.
type Profile struct {
	ID        string    `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	CreatedAt time.Time `json:"createdAt" yaml:"created_at"`
}

// ShortID returns the 8-character prefix shown in CLI listings.
func (p Profile) ShortID() string {
	return shortID(p.ID)
}

// UnmarshalJSON tolerates a blank or malformed createdAt.
func (p *Profile) UnmarshalJSON(data []byte) error {
	type alias Profile
	raw := struct {
		*alias
		CreatedAt json.RawMessage `json:"createdAt"`
	}{alias: (*alias)(p)}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.CreatedAt = decodeTime(raw.CreatedAt)
	return nil
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
