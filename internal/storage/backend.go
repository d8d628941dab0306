// ABOUTME: Key-value persistence boundary for the lift document.
// ABOUTME: Defines the Backend interface, backend kinds, and the open factory.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned by Get when no value is stored under the key.
var ErrNotFound = errors.New("key not found")

// ErrReadOnly is returned by Set when the backend cannot accept writes.
var ErrReadOnly = errors.New("cannot write: database is locked by another process (MCP server?)")

// Backend stores opaque blobs under string keys.
type Backend interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Close() error
}

// Kind names a Backend implementation.
type Kind string

const (
	KindSQLite Kind = "sqlite"
	KindBadger Kind = "badger"
	KindCharm  Kind = "charm"
	KindFile   Kind = "file"
	KindMemory Kind = "memory"
)

// Kinds lists the backends selectable from config and flags.
var Kinds = []Kind{KindSQLite, KindBadger, KindCharm, KindFile}

// ParseKind validates a backend name.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case KindSQLite, KindBadger, KindCharm, KindFile, KindMemory:
		return k, nil
	default:
		return "", fmt.Errorf("unknown backend: %q", s)
	}
}

// Open opens the backend of the given kind rooted at dataDir.
func Open(kind Kind, dataDir string) (Backend, error) {
	switch kind {
	case KindSQLite:
		return OpenSQLite(filepath.Join(dataDir, "lift.db"))
	case KindBadger:
		return OpenBadger(filepath.Join(dataDir, "badger"))
	case KindCharm:
		return OpenCharm(CharmDBName)
	case KindFile:
		return OpenFile(filepath.Join(dataDir, "documents"))
	case KindMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown backend: %q", kind)
	}
}

// DataDir returns the default data directory under $XDG_DATA_HOME.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "lift")
}
