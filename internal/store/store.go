// Package store owns the persisted snapshot. All backends share the same
// whole-document contract: Read returns the full snapshot, Write replaces it
// entirely. Callers must read-modify-write the full snapshot, never a partial
// one.
//
// There is deliberately no locking around the read-modify-write cycle: two
// concurrent writers can race and one update can be lost. This matches the
// system this service is compatible with and is a documented consistency
// hazard, not something to silently harden here.
package store

import "github.com/medvoice/medvoice/internal/records"

// Store reads and writes the persisted snapshot as one operation.
type Store interface {
	// Read returns the current snapshot. A missing or unreadable document
	// is valid initial state and reads as an empty snapshot.
	Read() (records.Database, error)
	// Write persists the given snapshot in full, replacing prior content.
	Write(db records.Database) error
}

// normalize replaces nil collections with empty ones so a snapshot always
// serializes with three present arrays.
func normalize(db records.Database) records.Database {
	if db.Patients == nil {
		db.Patients = []records.Patient{}
	}
	if db.Notes == nil {
		db.Notes = []records.VoiceNote{}
	}
	if db.Summaries == nil {
		db.Summaries = []records.Summary{}
	}
	return db
}
