// ABOUTME: Document store owning the single persisted lift document.
// ABOUTME: Loads or seeds on open and persists the full document after every mutation.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/harperreed/lift/internal/models"
	"github.com/harperreed/lift/internal/storage"
)

// DocumentKey is the backend key holding the serialized document.
const DocumentKey = "lift:document:v1"

// Store is the handle every operation goes through. It is safe for concurrent
// use; mutations are serialized.
type Store struct {
	mu      sync.RWMutex
	backend storage.Backend
	doc     *models.Document
	now     func() time.Time
	newID   func() string
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the wall clock used for createdAt and default dates.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides the record id generator.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// Open loads the document from backend, seeding a fresh one when nothing
// usable is stored. When seeding succeeds in memory but cannot be written,
// Open returns the usable Store together with a *PersistenceError.
func Open(backend storage.Backend, opts ...Option) (*Store, error) {
	s := &Store{
		backend: backend,
		now:     time.Now,
		newID:   func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.Load(); err != nil {
		if s.doc == nil {
			return nil, err
		}
		return s, err
	}
	return s, nil
}

// Load replaces the in-memory document with the stored one. An absent blob, or
// one that is not a JSON object, is replaced by a seeded document. Any other
// object is repaired field by field and nothing is written back until the next
// mutation.
func (s *Store) Load() error {
	data, err := s.backend.Get(DocumentKey)
	if errors.Is(err, storage.ErrNotFound) {
		log.Info("no stored document, seeding")
		return s.Seed()
	}
	if err != nil {
		return &PersistenceError{Op: "load", Err: err}
	}

	doc, notes, err := decodeDocument(data)
	if err != nil {
		log.WithError(err).Warn("stored document is malformed, seeding a fresh one")
		return s.Seed()
	}
	for _, note := range notes {
		log.WithField("repair", note).Warn("stored document repaired")
	}

	s.mu.Lock()
	s.doc = doc
	s.mu.Unlock()

	log.WithFields(log.Fields{
		"profiles":  len(doc.Profiles),
		"exercises": len(doc.Exercises),
		"sessions":  len(doc.Sessions),
	}).Debug("document loaded")
	return nil
}

// Seed replaces the document with the starter document and persists it.
func (s *Store) Seed() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc = s.seedDocument()
	return s.persistLocked("seed")
}

// Save writes the current document to the backend.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persistLocked("save")
}

// Close closes the underlying backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

// Now returns the store's current time.
func (s *Store) Now() time.Time {
	return s.now()
}

func (s *Store) seedDocument() *models.Document {
	now := s.now()
	john := models.Profile{ID: s.newID(), Name: models.DefaultProfileName, CreatedAt: now}

	exercises := make([]models.Exercise, 0, len(models.StarterLibrary))
	for _, e := range models.StarterLibrary {
		exercises = append(exercises, models.Exercise{
			ID:        s.newID(),
			Name:      e.Name,
			Category:  e.Category,
			Equipment: e.Equipment,
			IsActive:  true,
			CreatedAt: now,
		})
	}

	doc := &models.Document{
		Version:   models.CurrentVersion,
		Settings:  models.DefaultSettings(),
		Profiles:  []models.Profile{john},
		Exercises: exercises,
		Sessions:  []models.Session{},
	}
	doc.SetActiveID(john.ID)
	return doc
}

// mutate applies fn to a copy of the document and swaps the copy in before
// persisting. fn errors leave the document untouched.
func (s *Store) mutate(op string, fn func(d *models.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.doc.Clone()
	if err := fn(next); err != nil {
		return err
	}
	s.doc = next
	return s.persistLocked(op)
}

func (s *Store) persistLocked(op string) error {
	data, err := json.Marshal(s.doc)
	if err != nil {
		return &PersistenceError{Op: op, Err: fmt.Errorf("encode document: %w", err)}
	}
	if err := s.backend.Set(DocumentKey, data); err != nil {
		log.WithError(err).WithField("op", op).Warn("document not persisted")
		return &PersistenceError{Op: op, Err: err}
	}
	log.WithFields(log.Fields{"op": op, "bytes": len(data)}).Debug("document persisted")
	return nil
}
