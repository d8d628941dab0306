// ABOUTME: Tests for Session, Entry, and Set models.
// ABOUTME: Covers lenient set decoding, validity, and deep copies.
package models

import (
	"encoding/json"
	"testing"
)

func TestSetUnmarshalLenient(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantWeight float64
		wantReps   float64
		wantRPE    *float64
	}{
		{
			name:       "numbers",
			input:      `{"weight":135,"reps":5,"rpe":8}`,
			wantWeight: 135,
			wantReps:   5,
			wantRPE:    ptr(8),
		},
		{
			name:       "numeric strings",
			input:      `{"weight":"135.5","reps":" 5 ","rpe":"7.5"}`,
			wantWeight: 135.5,
			wantReps:   5,
			wantRPE:    ptr(7.5),
		},
		{
			name:       "blank rpe",
			input:      `{"weight":100,"reps":10,"rpe":""}`,
			wantWeight: 100,
			wantReps:   10,
		},
		{
			name:       "missing rpe",
			input:      `{"weight":100,"reps":10}`,
			wantWeight: 100,
			wantReps:   10,
		},
		{
			name:  "garbage becomes zero",
			input: `{"weight":"heavy","reps":"","rpe":"hard"}`,
		},
		{
			name:  "null fields",
			input: `{"weight":null,"reps":null,"rpe":null}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Set
			if err := json.Unmarshal([]byte(tt.input), &s); err != nil {
				t.Fatalf("Unmarshal failed: %v", err)
			}
			if s.Weight != tt.wantWeight {
				t.Errorf("Weight = %v, want %v", s.Weight, tt.wantWeight)
			}
			if s.Reps != tt.wantReps {
				t.Errorf("Reps = %v, want %v", s.Reps, tt.wantReps)
			}
			switch {
			case tt.wantRPE == nil && s.RPE != nil:
				t.Errorf("RPE = %v, want nil", *s.RPE)
			case tt.wantRPE != nil && (s.RPE == nil || *s.RPE != *tt.wantRPE):
				t.Errorf("RPE = %v, want %v", s.RPE, *tt.wantRPE)
			}
		})
	}
}

func TestSetMarshalOmitsMissingRPE(t *testing.T) {
	data, err := json.Marshal(Set{Weight: 100, Reps: 5})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `{"weight":100,"reps":5}` {
		t.Errorf("Marshal = %s", data)
	}
}

func TestSetValid(t *testing.T) {
	tests := []struct {
		set  Set
		want bool
	}{
		{Set{Weight: 100, Reps: 5}, true},
		{Set{Weight: 0, Reps: 5}, false},
		{Set{Weight: 100, Reps: 0}, false},
		{Set{Weight: -5, Reps: 5}, false},
	}
	for _, tt := range tests {
		if got := tt.set.Valid(); got != tt.want {
			t.Errorf("%+v.Valid() = %v, want %v", tt.set, got, tt.want)
		}
	}
}

func TestSessionCloneIsDeep(t *testing.T) {
	s := Session{
		ID: "s1",
		Entries: []Entry{{
			ExerciseID:   "e1",
			ExerciseName: "Bench",
			Sets:         []Set{Set{Weight: 100, Reps: 5}.WithRPE(8)},
		}},
	}

	c := s.Clone()
	c.Entries[0].Sets[0].Weight = 200
	*c.Entries[0].Sets[0].RPE = 10
	c.Entries[0].ExerciseName = "Changed"

	if s.Entries[0].Sets[0].Weight != 100 {
		t.Error("clone shares set slice with original")
	}
	if *s.Entries[0].Sets[0].RPE != 8 {
		t.Error("clone shares RPE pointer with original")
	}
	if s.Entries[0].ExerciseName != "Bench" {
		t.Error("clone shares entry slice with original")
	}
}

func TestExerciseDefaultsActive(t *testing.T) {
	var e Exercise
	if err := json.Unmarshal([]byte(`{"id":"x","name":"Row"}`), &e); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !e.IsActive {
		t.Error("expected missing isActive to default to true")
	}

	if err := json.Unmarshal([]byte(`{"id":"x","name":"Row","isActive":false}`), &e); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if e.IsActive {
		t.Error("expected explicit isActive=false to be kept")
	}
	if e.Name != "Row" {
		t.Errorf("Name = %q, want Row", e.Name)
	}
}

func TestParseNumber(t *testing.T) {
	tests := map[string]float64{
		"135":   135,
		" 2.5 ": 2.5,
		"":      0,
		"abc":   0,
		"NaN":   0,
		"Inf":   0,
		"-10":   -10,
	}
	for in, want := range tests {
		if got := ParseNumber(in); got != want {
			t.Errorf("ParseNumber(%q) = %v, want %v", in, got, want)
		}
	}
}

func ptr(v float64) *float64 {
	return &v
}

func TestSessionUnmarshalLenientTimes(t *testing.T) {
	var s Session
	input := `{"id":"s1","dateIso":"2024-03-01T12:00:00Z","createdAt":"","entries":[{"exerciseId":"e1","sets":[{"weight":50,"reps":8},"bad"]},42]}`
	if err := json.Unmarshal([]byte(input), &s); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if s.DateISO.Day() != 1 || s.DateISO.Month() != 3 {
		t.Errorf("DateISO = %v", s.DateISO)
	}
	if !s.CreatedAt.IsZero() {
		t.Errorf("CreatedAt = %v, want zero", s.CreatedAt)
	}
	if len(s.Entries) != 1 || len(s.Entries[0].Sets) != 1 {
		t.Fatalf("Entries = %+v, want one entry with one set", s.Entries)
	}
}

func TestDecodeList(t *testing.T) {
	items, dropped, ok := DecodeList[Profile]([]byte(`[{"id":"p1"},"x",{"id":"p2"}]`))
	if !ok || dropped != 1 || len(items) != 2 {
		t.Errorf("DecodeList = %+v, %d, %v", items, dropped, ok)
	}

	items, _, ok = DecodeList[Profile]([]byte(`{"id":"p1"}`))
	if ok || items == nil || len(items) != 0 {
		t.Errorf("object input = %#v, %v; want empty slice, false", items, ok)
	}
}
