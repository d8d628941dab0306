// ABOUTME: Copies stored documents between lift storage backends.
// ABOUTME: Refuses to clobber an existing destination unless told to overwrite.
package storage

import (
	"errors"
	"fmt"
	"os"
)

// MigrateSummary reports what MigrateKeys copied.
type MigrateSummary struct {
	Keys    int
	Bytes   int
	Skipped []string
}

// ErrDestinationExists is returned when the destination already holds a key.
var ErrDestinationExists = errors.New("destination already has data")

// MigrateKeys copies each key from src to dst. Keys absent in src are skipped.
// Unless overwrite is set, a key already present in dst aborts the migration
// before anything is written.
func MigrateKeys(src, dst Backend, keys []string, overwrite bool) (*MigrateSummary, error) {
	values := make(map[string][]byte, len(keys))
	summary := &MigrateSummary{}

	for _, key := range keys {
		value, err := src.Get(key)
		if errors.Is(err, ErrNotFound) {
			summary.Skipped = append(summary.Skipped, key)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read source %s: %w", key, err)
		}
		values[key] = value

		if overwrite {
			continue
		}
		if _, err := dst.Get(key); err == nil {
			return nil, fmt.Errorf("%w: %s", ErrDestinationExists, key)
		} else if !errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("read destination %s: %w", key, err)
		}
	}

	for _, key := range keys {
		value, ok := values[key]
		if !ok {
			continue
		}
		if err := dst.Set(key, value); err != nil {
			return nil, fmt.Errorf("write destination %s: %w", key, err)
		}
		summary.Keys++
		summary.Bytes += len(value)
	}

	return summary, nil
}

// IsDirNonEmpty checks whether a directory exists and contains any files or subdirectories.
// Returns false if the directory does not exist or is empty.
func IsDirNonEmpty(path string) (bool, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read directory %q: %w", path, err)
	}
	return len(entries) > 0, nil
}
