// ABOUTME: Error types reported by the document store.
// ABOUTME: Callers distinguish them with errors.As and errors.Is.
package store

import (
	"errors"
	"fmt"
)

// ErrAmbiguous is wrapped when a prefix matches more than one record.
var ErrAmbiguous = errors.New("ambiguous prefix")

// PersistenceError means the backend rejected a read or write. After a failed
// write the in-memory document is still updated and stays authoritative for
// the life of the process.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to persist (%s): %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// ImportError means an import payload is not a lift document. Nothing is applied.
type ImportError struct {
	Err error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("invalid backup: %v", e.Err)
}

func (e *ImportError) Unwrap() error { return e.Err }

// ValidationError rejects user input at the boundary.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
}

// NotFoundError means no record matched a reference.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// IsPersistence reports whether err is (or wraps) a PersistenceError.
func IsPersistence(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
