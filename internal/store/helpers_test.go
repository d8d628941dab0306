// ABOUTME: Shared fixtures for store tests.
// ABOUTME: Deterministic clock and ids plus a backend that fails reads.
package store

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/harperreed/lift/internal/storage"
)

var testNow = time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%04d", n)
	}
}

func openTestStore(t *testing.T) (*Store, *storage.Memory) {
	t.Helper()
	mem := storage.NewMemory()
	s, err := Open(mem, WithClock(func() time.Time { return testNow }), WithIDGenerator(sequentialIDs()))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return s, mem
}

type brokenBackend struct{}

func (brokenBackend) Get(string) ([]byte, error) { return nil, errors.New("disk on fire") }
func (brokenBackend) Set(string, []byte) error { return errors.New("disk on fire") }
func (brokenBackend) Close() error { return nil }
