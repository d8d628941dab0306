// ABOUTME: Input-boundary constructors that validate and normalize user data.
// ABOUTME: Sessions are filtered to valid sets and carry a computed total volume.
package store

import (
	"strings"
	"time"

	"github.com/harperreed/lift/internal/metrics"
	"github.com/harperreed/lift/internal/models"
)

const defaultCategory = "Other"

// EntryInput is one exercise's sets as entered by the user.
type EntryInput struct {
	ExerciseID   string
	ExerciseName string
	Sets         []models.Set
}

// SessionInput is a session as entered by the user.
type SessionInput struct {
	ProfileID string
	Date      time.Time
	DayType   string
	Notes     string
	Entries   []EntryInput
}

// NewProfile validates name and returns an unsaved profile.
func (s *Store) NewProfile(name string) (models.Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Profile{}, &ValidationError{Field: "name", Msg: "must not be empty"}
	}
	return models.Profile{ID: s.newID(), Name: name, CreatedAt: s.now()}, nil
}

// ValidateExerciseName trims name and rejects it when nothing is left.
func ValidateExerciseName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", &ValidationError{Field: "name", Msg: "must not be empty"}
	}
	return name, nil
}

// NewExercise validates name and returns an unsaved, active exercise.
// Blank category and equipment default to "Other".
func (s *Store) NewExercise(name, category, equipment string) (models.Exercise, error) {
	name, err := ValidateExerciseName(name)
	if err != nil {
		return models.Exercise{}, err
	}
	category = strings.TrimSpace(category)
	if category == "" {
		category = defaultCategory
	}
	equipment = strings.TrimSpace(equipment)
	if equipment == "" {
		equipment = defaultCategory
	}
	return models.Exercise{
		ID:        s.newID(),
		Name:      name,
		Category:  category,
		Equipment: equipment,
		IsActive:  true,
		CreatedAt: s.now(),
	}, nil
}

// NewSession turns user input into an unsaved session. Sets without a
// positive weight and reps are dropped, then entries left without sets, and a
// session with nothing left is rejected. The profile defaults to the active
// one and the date to today at noon.
func (s *Store) NewSession(in SessionInput) (models.Session, error) {
	profileID := in.ProfileID
	if profileID == "" {
		p, ok := s.ActiveProfile()
		if !ok {
			return models.Session{}, &ValidationError{Field: "profileId", Msg: "no active profile"}
		}
		profileID = p.ID
	} else {
		p, err := s.Profile(profileID)
		if err != nil {
			return models.Session{}, err
		}
		profileID = p.ID
	}

	var entries []models.Entry
	seen := make(map[string]bool)
	for _, e := range in.Entries {
		if e.ExerciseID == "" {
			return models.Session{}, &ValidationError{Field: "exerciseId", Msg: "must not be empty"}
		}
		if seen[e.ExerciseID] {
			return models.Session{}, &ValidationError{Field: "entries", Msg: "exercise logged twice: " + e.ExerciseName}
		}
		seen[e.ExerciseID] = true

		name := e.ExerciseName
		if name == "" {
			ex, err := s.ResolveExercise(e.ExerciseID)
			if err != nil {
				return models.Session{}, err
			}
			name = ex.Name
		}

		var sets []models.Set
		for _, set := range e.Sets {
			if set.Valid() {
				sets = append(sets, set)
			}
		}
		if len(sets) == 0 {
			continue
		}
		entries = append(entries, models.Entry{ExerciseID: e.ExerciseID, ExerciseName: name, Sets: sets})
	}

	if len(entries) == 0 {
		return models.Session{}, &ValidationError{Field: "entries", Msg: "add at least one set with weight and reps"}
	}

	now := s.now()
	date := in.Date
	if date.IsZero() {
		date = Noon(now)
	}

	return models.Session{
		ID:          s.newID(),
		ProfileID:   profileID,
		DateISO:     date,
		DayType:     strings.TrimSpace(in.DayType),
		Notes:       strings.TrimSpace(in.Notes),
		Entries:     entries,
		TotalVolume: metrics.EntriesVolume(entries),
		CreatedAt:   now,
	}, nil
}

// SessionFromTemplate lays out a session for the template key: one entry per
// template item found in the library, in template order, with logged sets
// filled in by exercise id. Logged exercises outside the template are
// appended. Template items with nothing logged produce no entry.
func (s *Store) SessionFromTemplate(key string, logged []EntryInput) (SessionInput, error) {
	tmpl, ok := models.FindTemplate(key)
	if !ok {
		return SessionInput{}, &NotFoundError{Kind: "template", ID: key}
	}

	byID := make(map[string]EntryInput, len(logged))
	for _, e := range logged {
		byID[e.ExerciseID] = e
	}

	in := SessionInput{DayType: tmpl.Label}
	used := make(map[string]bool)
	for _, plan := range s.TemplatePlan(tmpl) {
		if plan.Exercise == nil {
			continue
		}
		e, ok := byID[plan.Exercise.ID]
		if !ok {
			continue
		}
		used[e.ExerciseID] = true
		in.Entries = append(in.Entries, e)
	}
	for _, e := range logged {
		if !used[e.ExerciseID] {
			in.Entries = append(in.Entries, e)
		}
	}
	return in, nil
}

// PlannedItem is a template item resolved against the exercise library.
// Exercise is nil when the library no longer has the named exercise.
type PlannedItem struct {
	Item     models.TemplateItem
	Exercise *models.Exercise
}

// TemplatePlan resolves each template item to a library exercise by name.
func (s *Store) TemplatePlan(tmpl models.DayTemplate) []PlannedItem {
	plan := make([]PlannedItem, 0, len(tmpl.Items))
	for _, item := range tmpl.Items {
		p := PlannedItem{Item: item}
		if ex, err := s.ResolveExercise(item.Name); err == nil {
			p.Exercise = &ex
		}
		plan = append(plan, p)
	}
	return plan
}

// Noon returns 12:00 on t's calendar day in t's location.
func Noon(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 12, 0, 0, 0, t.Location())
}
