// ABOUTME: Backup file naming and whole-document backup and restore to disk.
// ABOUTME: Backups are the pretty-printed document produced by ExportAll.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// BackupFileName returns the default backup file name for the given day.
func BackupFileName(now time.Time) string {
	return fmt.Sprintf("lift-backup-%s.json", now.Format("2006-01-02"))
}

// WriteBackup exports the document into dir and returns the file path.
func (s *Store) WriteBackup(dir string) (string, error) {
	data, err := s.ExportAll()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}
	path := filepath.Join(dir, BackupFileName(s.now()))
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}
	return path, nil
}

// RestoreBackup imports the document stored at path.
func (s *Store) RestoreBackup(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read backup: %w", err)
	}
	return s.ImportAll(data)
}
