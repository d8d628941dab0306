// ABOUTME: Read-only queries over the current document.
// ABOUTME: Returned values are copies; callers may modify them freely.
package store

import (
	"fmt"
	"sort"
	"strings"

	"github.com/harperreed/lift/internal/metrics"
	"github.com/harperreed/lift/internal/models"
)

// ExerciseFilter selects exercises by active state.
type ExerciseFilter string

const (
	FilterAll      ExerciseFilter = "all"
	FilterActive   ExerciseFilter = "active"
	FilterInactive ExerciseFilter = "inactive"
)

// Snapshot returns a deep copy of the whole document.
func (s *Store) Snapshot() *models.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Clone()
}

// Settings returns the current settings.
func (s *Store) Settings() models.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Settings
}

// Profiles returns all profiles in insertion order.
func (s *Store) Profiles() []models.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Profile(nil), s.doc.Profiles...)
}

// ActiveProfile returns the active profile, if any.
func (s *Store) ActiveProfile() (models.Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.doc.FindProfile(s.doc.ActiveID()); i >= 0 {
		return s.doc.Profiles[i], true
	}
	return models.Profile{}, false
}

// ActiveExercises returns exercises offered for logging, sorted by name.
func (s *Store) ActiveExercises() []models.Exercise {
	return s.Exercises(FilterActive)
}

// Exercises returns exercises matching filter, sorted by name.
func (s *Store) Exercises(filter ExerciseFilter) []models.Exercise {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Exercise
	for _, e := range s.doc.Exercises {
		switch {
		case filter == FilterActive && !e.IsActive:
			continue
		case filter == FilterInactive && e.IsActive:
			continue
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

// ExerciseNamed returns the exercise whose name matches name case-insensitively.
func (s *Store) ExerciseNamed(name string) (models.Exercise, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	name = strings.TrimSpace(name)
	for _, e := range s.doc.Exercises {
		if strings.EqualFold(e.Name, name) {
			return e, true
		}
	}
	return models.Exercise{}, false
}

// Sessions returns every session in stored order.
func (s *Store) Sessions() []models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Session, len(s.doc.Sessions))
	for i, sess := range s.doc.Sessions {
		out[i] = sess.Clone()
	}
	return out
}

// ProfileSessions returns profileID's sessions, newest first.
func (s *Store) ProfileSessions(profileID string) []models.Session {
	return metrics.SortNewestFirst(metrics.FilterByProfile(s.Sessions(), profileID))
}

// ResolveExercise finds an exercise by exact id, case-insensitive name, or
// unique id prefix, in that order.
func (s *Store) ResolveExercise(ref string) (models.Exercise, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return resolve(s.doc.Exercises, "exercise", ref,
		func(e models.Exercise) string { return e.ID },
		func(e models.Exercise) string { return e.Name })
}

// Profile finds a profile by exact id, case-insensitive name, or unique id prefix.
func (s *Store) Profile(ref string) (models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return resolve(s.doc.Profiles, "profile", ref,
		func(p models.Profile) string { return p.ID },
		func(p models.Profile) string { return p.Name })
}

// Session finds a session by exact id or unique id prefix.
func (s *Store) Session(ref string) (models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, err := resolve(s.doc.Sessions, "session", ref,
		func(x models.Session) string { return x.ID },
		nil)
	if err != nil {
		return models.Session{}, err
	}
	return sess.Clone(), nil
}

func resolve[T any](items []T, kind, ref string, id, name func(T) string) (T, error) {
	var zero T
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return zero, &NotFoundError{Kind: kind, ID: ref}
	}

	for _, it := range items {
		if id(it) == ref {
			return it, nil
		}
	}

	if name != nil {
		for _, it := range items {
			if strings.EqualFold(name(it), ref) {
				return it, nil
			}
		}
	}

	var matches []T
	for _, it := range items {
		if strings.HasPrefix(id(it), ref) {
			matches = append(matches, it)
		}
	}
	switch len(matches) {
	case 0:
		return zero, &NotFoundError{Kind: kind, ID: ref}
	case 1:
		return matches[0], nil
	default:
		return zero, fmt.Errorf("%w %s: matches multiple records", ErrAmbiguous, ref)
	}
}
