// Package storage persists assembled view results as JSON files. Persistence
// is always an explicit caller step, never a hidden side effect of computing
// a view.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ReportStore writes view results under a single directory.
type ReportStore struct {
	dir string
	now func() time.Time
}

// NewReportStore builds a store rooted at dir. The directory is created on
// first save.
func NewReportStore(dir string) *ReportStore {
	return &ReportStore{dir: dir, now: time.Now}
}

// Save writes v as indented JSON to "<dir>/<name>_<timestamp>.json" and
// returns the file path.
//
// The write is atomic: a temp file is written first and renamed into place,
// so a crash mid-write never leaves a truncated report behind.
func (s *ReportStore) Save(name string, v any) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create reports dir: %w", err)
	}

	filename := fmt.Sprintf("%s_%s.json", name, s.now().Format("20060102T150405"))
	path := filepath.Join(s.dir, filename)
	tmp := path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return "", fmt.Errorf("create report file: %w", err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return "", fmt.Errorf("encode report: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return "", err
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", err
	}
	return path, nil
}
