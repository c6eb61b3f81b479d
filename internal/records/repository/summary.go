package repository

import (
	"github.com/medvoice/medvoice/internal/records"
	"github.com/medvoice/medvoice/internal/store"
)

// SummaryRepository is keyed by note id for lookup and delete; the service
// guarantees at most one summary per note.
type SummaryRepository struct {
	store store.Store
}

func NewSummaryRepository(s store.Store) *SummaryRepository {
	return &SummaryRepository{store: s}
}

func (r *SummaryRepository) FindByNoteID(noteID string) (*records.Summary, error) {
	db, err := r.store.Read()
	if err != nil {
		return nil, err
	}
	for i := range db.Summaries {
		if db.Summaries[i].NoteID == noteID {
			s := db.Summaries[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (r *SummaryRepository) Create(s records.Summary) (records.Summary, error) {
	db, err := r.store.Read()
	if err != nil {
		return records.Summary{}, err
	}
	db.Summaries = append(db.Summaries, s)
	if err := r.store.Write(db); err != nil {
		return records.Summary{}, err
	}
	return s, nil
}

func (r *SummaryRepository) Delete(noteID string) (bool, error) {
	db, err := r.store.Read()
	if err != nil {
		return false, err
	}
	for i := range db.Summaries {
		if db.Summaries[i].NoteID == noteID {
			db.Summaries = append(db.Summaries[:i], db.Summaries[i+1:]...)
			if err := r.store.Write(db); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}
