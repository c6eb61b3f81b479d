package store

import (
	"sync"

	"github.com/medvoice/medvoice/internal/records"
	"github.com/medvoice/medvoice/pkg/metrics"
)

// MemoryStore holds the snapshot in memory. Used for unit tests and as a
// throwaway backend; it copies collections on the way in and out so callers
// see snapshot semantics, same as the file backend.
type MemoryStore struct {
	mu sync.RWMutex
	db records.Database
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{db: records.Empty()}
}

func (s *MemoryStore) Read() (records.Database, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	metrics.StoreReads.WithLabelValues("memory").Inc()
	return copySnapshot(s.db), nil
}

func (s *MemoryStore) Write(db records.Database) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.db = copySnapshot(normalize(db))
	metrics.StoreWrites.WithLabelValues("memory").Inc()
	return nil
}

func copySnapshot(db records.Database) records.Database {
	out := records.Database{
		Patients:  make([]records.Patient, len(db.Patients)),
		Notes:     make([]records.VoiceNote, len(db.Notes)),
		Summaries: make([]records.Summary, len(db.Summaries)),
	}
	copy(out.Patients, db.Patients)
	copy(out.Notes, db.Notes)
	copy(out.Summaries, db.Summaries)
	return out
}
