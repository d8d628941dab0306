// ABOUTME: Session, Entry, and Set models for logged workouts.
// ABOUTME: Entries keep a snapshot of the exercise name so history survives library edits.
package models

import (
	"encoding/json"
	"time"
)

// Session is one workout day for one profile.
type Session struct {
	ID          string    `json:"id" yaml:"id"`
	ProfileID   string    `json:"profileId" yaml:"profile_id"`
	DateISO     time.Time `json:"dateIso" yaml:"date"`
	DayType     string    `json:"dayType,omitempty" yaml:"day_type,omitempty"`
	Notes       string    `json:"notes" yaml:"notes"`
	Entries     []Entry   `json:"entries" yaml:"entries"`
	TotalVolume float64   `json:"totalVolume" yaml:"total_volume"`
	CreatedAt   time.Time `json:"createdAt" yaml:"created_at"`
}

// ShortID returns the 8-character prefix shown in CLI listings.
func (s Session) ShortID() string {
	return shortID(s.ID)
}

// Entry is one exercise's logged sets within a session.
type Entry struct {
	ExerciseID   string `json:"exerciseId" yaml:"exercise_id"`
	ExerciseName string `json:"exerciseName" yaml:"exercise_name"`
	Sets         []Set  `json:"sets" yaml:"sets"`
}

// Set is a single weight x reps effort with an optional RPE.
type Set struct {
	Weight float64  `json:"weight" yaml:"weight"`
	Reps   float64  `json:"reps" yaml:"reps"`
	RPE    *float64 `json:"rpe,omitempty" yaml:"rpe,omitempty"`
}

// Valid reports whether the set counts toward volume and records.
func (s Set) Valid() bool {
	return s.Weight > 0 && s.Reps > 0
}

// Volume returns weight x reps.
func (s Set) Volume() float64 {
	return s.Weight * s.Reps
}

// WithRPE sets the rate of perceived exertion.
func (s Set) WithRPE(rpe float64) Set {
	s.RPE = &rpe
	return s
}

// UnmarshalJSON accepts numbers, numeric strings, or empty strings for every field.
// Backups written by older form-driven clients store blank inputs as "".
func (s *Set) UnmarshalJSON(data []byte) error {
	var raw struct {
		Weight json.RawMessage `json:"weight"`
		Reps   json.RawMessage `json:"reps"`
		RPE    json.RawMessage `json:"rpe"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	s.Weight, _ = decodeNumber(raw.Weight)
	s.Reps, _ = decodeNumber(raw.Reps)
	s.RPE = nil
	if rpe, ok := decodeNumber(raw.RPE); ok {
		s.RPE = &rpe
	}
	return nil
}

// UnmarshalJSON tolerates blank or malformed timestamps and drops entries that
// cannot be decoded, so one bad field does not cost the whole session.
func (s *Session) UnmarshalJSON(data []byte) error {
	type alias Session
	raw := struct {
		*alias
		DateISO   json.RawMessage `json:"dateIso"`
		CreatedAt json.RawMessage `json:"createdAt"`
		Entries   json.RawMessage `json:"entries"`
	}{alias: (*alias)(s)}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.DateISO = decodeTime(raw.DateISO)
	s.CreatedAt = decodeTime(raw.CreatedAt)
	s.Entries, _, _ = DecodeList[Entry](raw.Entries)
	return nil
}

// UnmarshalJSON drops sets that are not objects.
func (e *Entry) UnmarshalJSON(data []byte) error {
	type alias Entry
	raw := struct {
		*alias
		Sets json.RawMessage `json:"sets"`
	}{alias: (*alias)(e)}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	e.Sets, _, _ = DecodeList[Set](raw.Sets)
	return nil
}

// Clone returns a deep copy of the session.
func (s Session) Clone() Session {
	out := s
	if s.Entries != nil {
		out.Entries = make([]Entry, len(s.Entries))
		for i, e := range s.Entries {
			out.Entries[i] = e.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of the entry.
func (e Entry) Clone() Entry {
	out := e
	if e.Sets != nil {
		out.Sets = make([]Set, len(e.Sets))
		for i, set := range e.Sets {
			out.Sets[i] = set
			if set.RPE != nil {
				rpe := *set.RPE
				out.Sets[i].RPE = &rpe
			}
		}
	}
	return out
}
