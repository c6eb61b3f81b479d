package repository

import (
	"github.com/medvoice/medvoice/internal/records"
	"github.com/medvoice/medvoice/internal/store"
)

type NoteRepository struct {
	store store.Store
}

func NewNoteRepository(s store.Store) *NoteRepository {
	return &NoteRepository{store: s}
}

func (r *NoteRepository) FindAll() ([]records.VoiceNote, error) {
	db, err := r.store.Read()
	if err != nil {
		return nil, err
	}
	return db.Notes, nil
}

func (r *NoteRepository) FindByID(id string) (*records.VoiceNote, error) {
	db, err := r.store.Read()
	if err != nil {
		return nil, err
	}
	for i := range db.Notes {
		if db.Notes[i].ID == id {
			n := db.Notes[i]
			return &n, nil
		}
	}
	return nil, nil
}

// FindByPatientID returns the patient's notes in storage order.
func (r *NoteRepository) FindByPatientID(patientID string) ([]records.VoiceNote, error) {
	db, err := r.store.Read()
	if err != nil {
		return nil, err
	}
	out := []records.VoiceNote{}
	for _, n := range db.Notes {
		if n.PatientID == patientID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *NoteRepository) Create(n records.VoiceNote) (records.VoiceNote, error) {
	db, err := r.store.Read()
	if err != nil {
		return records.VoiceNote{}, err
	}
	db.Notes = append(db.Notes, n)
	if err := r.store.Write(db); err != nil {
		return records.VoiceNote{}, err
	}
	return n, nil
}

func (r *NoteRepository) Delete(id string) (bool, error) {
	db, err := r.store.Read()
	if err != nil {
		return false, err
	}
	for i := range db.Notes {
		if db.Notes[i].ID == id {
			db.Notes = append(db.Notes[:i], db.Notes[i+1:]...)
			if err := r.store.Write(db); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}
