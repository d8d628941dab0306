// ABOUTME: Mutation operations on the document store.
// ABOUTME: Each call persists the full document before returning.
package store

import (
	"encoding/json"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/harperreed/lift/internal/models"
)

// SetActiveProfile makes id the active profile. Unknown ids are rejected.
func (s *Store) SetActiveProfile(id string) error {
	return s.mutate("set active profile", func(d *models.Document) error {
		if d.FindProfile(id) < 0 {
			return &NotFoundError{Kind: "profile", ID: id}
		}
		d.SetActiveID(id)
		return nil
	})
}

// UpsertProfile inserts p, or merges it into the profile with the same id.
// The profile becomes active when no profile is.
func (s *Store) UpsertProfile(p models.Profile) (models.Profile, error) {
	if p.ID == "" {
		p.ID = s.newID()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = s.now()
	}

	var stored models.Profile
	err := s.mutate("upsert profile", func(d *models.Document) error {
		if i := d.FindProfile(p.ID); i >= 0 {
			cur := d.Profiles[i]
			if p.Name != "" {
				cur.Name = p.Name
			}
			d.Profiles[i] = cur
			stored = cur
		} else {
			d.Profiles = append(d.Profiles, p)
			stored = p
		}
		if d.FindProfile(d.ActiveID()) < 0 {
			d.SetActiveID(stored.ID)
		}
		return nil
	})
	return stored, err
}

// DeleteProfile removes the profile and every session it owns. When it was
// active, the first remaining profile becomes active.
func (s *Store) DeleteProfile(id string) error {
	return s.mutate("delete profile", func(d *models.Document) error {
		i := d.FindProfile(id)
		if i < 0 {
			return &NotFoundError{Kind: "profile", ID: id}
		}
		d.Profiles = append(d.Profiles[:i], d.Profiles[i+1:]...)

		kept := d.Sessions[:0]
		for _, sess := range d.Sessions {
			if sess.ProfileID != id {
				kept = append(kept, sess)
			}
		}
		d.Sessions = kept

		if d.ActiveID() == id {
			d.SetActiveID(firstProfileID(d))
		}
		return nil
	})
}

// UpsertExercise inserts e, or merges it into the exercise with the same id.
// Names are not re-validated here; use NewExercise at the input boundary.
func (s *Store) UpsertExercise(e models.Exercise) (models.Exercise, error) {
	if e.ID == "" {
		e.ID = s.newID()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = s.now()
	}

	var stored models.Exercise
	err := s.mutate("upsert exercise", func(d *models.Document) error {
		i := d.FindExercise(e.ID)
		if i < 0 {
			d.Exercises = append(d.Exercises, e)
			stored = e
			return nil
		}
		cur := d.Exercises[i]
		if e.Name != "" {
			cur.Name = e.Name
		}
		if e.Category != "" {
			cur.Category = e.Category
		}
		if e.Equipment != "" {
			cur.Equipment = e.Equipment
		}
		cur.IsActive = e.IsActive
		d.Exercises[i] = cur
		stored = cur
		return nil
	})
	return stored, err
}

// SetExerciseActive toggles whether an exercise is offered for logging.
func (s *Store) SetExerciseActive(id string, active bool) error {
	return s.mutate("set exercise active", func(d *models.Document) error {
		i := d.FindExercise(id)
		if i < 0 {
			return &NotFoundError{Kind: "exercise", ID: id}
		}
		d.Exercises[i].IsActive = active
		return nil
	})
}

// DeleteExercise removes an exercise from the library. Logged sessions keep
// their entries and the exercise name they were saved with.
func (s *Store) DeleteExercise(id string) error {
	return s.mutate("delete exercise", func(d *models.Document) error {
		i := d.FindExercise(id)
		if i < 0 {
			return &NotFoundError{Kind: "exercise", ID: id}
		}
		d.Exercises = append(d.Exercises[:i], d.Exercises[i+1:]...)
		return nil
	})
}

// AddSession appends sess as given. Build it with NewSession to get filtered
// sets and a computed total volume.
func (s *Store) AddSession(sess models.Session) (models.Session, error) {
	if sess.ID == "" {
		sess.ID = s.newID()
	}
	if sess.CreatedAt.IsZero() {
		sess.CreatedAt = s.now()
	}
	sess = sess.Clone()

	err := s.mutate("add session", func(d *models.Document) error {
		d.Sessions = append(d.Sessions, sess)
		return nil
	})
	return sess.Clone(), err
}

// UpdateSession merges sess into the session with the same id. Zero-valued
// fields are left alone; supplying entries replaces entries and total volume.
func (s *Store) UpdateSession(sess models.Session) (models.Session, error) {
	var stored models.Session
	err := s.mutate("update session", func(d *models.Document) error {
		i := d.FindSession(sess.ID)
		if i < 0 {
			return &NotFoundError{Kind: "session", ID: sess.ID}
		}
		cur := d.Sessions[i]
		if sess.ProfileID != "" {
			cur.ProfileID = sess.ProfileID
		}
		if !sess.DateISO.IsZero() {
			cur.DateISO = sess.DateISO
		}
		if sess.DayType != "" {
			cur.DayType = sess.DayType
		}
		if sess.Notes != "" {
			cur.Notes = sess.Notes
		}
		if sess.Entries != nil {
			cur.Entries = sess.Clone().Entries
			cur.TotalVolume = sess.TotalVolume
		}
		d.Sessions[i] = cur
		stored = cur.Clone()
		return nil
	})
	return stored, err
}

// DeleteSession removes a session.
func (s *Store) DeleteSession(id string) error {
	return s.mutate("delete session", func(d *models.Document) error {
		i := d.FindSession(id)
		if i < 0 {
			return &NotFoundError{Kind: "session", ID: id}
		}
		d.Sessions = append(d.Sessions[:i], d.Sessions[i+1:]...)
		return nil
	})
}

// UpdateSettings shallow-merges the non-empty fields of partial.
func (s *Store) UpdateSettings(partial models.Settings) (models.Settings, error) {
	if partial.Units != "" {
		u, err := models.ParseUnits(string(partial.Units))
		if err != nil {
			return models.Settings{}, &ValidationError{Field: "units", Msg: err.Error()}
		}
		partial.Units = u
	}
	if partial.E1RMFormula != "" {
		f, err := models.ParseFormula(string(partial.E1RMFormula))
		if err != nil {
			return models.Settings{}, &ValidationError{Field: "e1rmFormula", Msg: err.Error()}
		}
		partial.E1RMFormula = f
	}

	var stored models.Settings
	err := s.mutate("update settings", func(d *models.Document) error {
		if partial.Units != "" {
			d.Settings.Units = partial.Units
		}
		if partial.E1RMFormula != "" {
			d.Settings.E1RMFormula = partial.E1RMFormula
		}
		stored = d.Settings
		return nil
	})
	return stored, err
}

// ExportAll returns the full document as indented JSON.
func (s *Store) ExportAll() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to export document: %w", err)
	}
	return data, nil
}

// ImportAll replaces the whole document with data. Input that is not a lift
// document fails with *ImportError and changes nothing. Accepted documents are
// repaired the same way Load repairs stored ones.
func (s *Store) ImportAll(data []byte) error {
	if err := requireCollections(data); err != nil {
		return &ImportError{Err: err}
	}
	doc, notes, err := decodeDocument(data)
	if err != nil {
		return &ImportError{Err: err}
	}
	for _, note := range notes {
		log.WithField("repair", note).Warn("imported document repaired")
	}

	return s.mutate("import", func(d *models.Document) error {
		*d = *doc
		return nil
	})
}
