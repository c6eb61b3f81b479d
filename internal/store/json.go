package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/medvoice/medvoice/internal/records"
	"github.com/medvoice/medvoice/pkg/logger"
	"github.com/medvoice/medvoice/pkg/metrics"
)

// JSONStore persists the snapshot as a single indented JSON file.
type JSONStore struct {
	path string
}

// NewJSONStore returns a store backed by the file at path. The file and its
// parent directory are created on first write.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// Read loads the full snapshot. A missing file reads as an empty snapshot.
// An unparseable file also reads as empty; that forgiveness covers the
// blank-file-on-first-run case but can mask real corruption, so it is logged.
func (s *JSONStore) Read() (records.Database, error) {
	metrics.StoreReads.WithLabelValues("json").Inc()
	data, err := os.ReadFile(s.path)
	if err != nil {
		return records.Empty(), nil
	}
	var db records.Database
	if err := json.Unmarshal(data, &db); err != nil {
		logger.Warnf("store file %s is unparseable, treating as empty: %v", s.path, err)
		return records.Empty(), nil
	}
	return normalize(db), nil
}

// Write replaces the persisted document with db, creating the parent
// directory if needed. Failures propagate to the caller.
func (s *JSONStore) Write(db records.Database) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	data, err := json.MarshalIndent(normalize(db), "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	metrics.StoreWrites.WithLabelValues("json").Inc()
	return nil
}
