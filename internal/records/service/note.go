package service

import (
	"github.com/google/uuid"

	"github.com/medvoice/medvoice/internal/records"
	"github.com/medvoice/medvoice/internal/records/repository"
)

type NoteService struct {
	notes    *repository.NoteRepository
	patients *repository.PatientRepository
}

func NewNoteService(notes *repository.NoteRepository, patients *repository.PatientRepository) *NoteService {
	return &NoteService{notes: notes, patients: patients}
}

// GetAll returns every note, or only one patient's notes when patientID is
// non-empty. Storage order either way.
func (s *NoteService) GetAll(patientID string) ([]records.VoiceNote, error) {
	if patientID != "" {
		return s.notes.FindByPatientID(patientID)
	}
	return s.notes.FindAll()
}

func (s *NoteService) GetByID(id string) (*records.VoiceNote, error) {
	return s.notes.FindByID(id)
}

// Create fails with ErrPatientNotFound when the referenced patient does not
// exist. The failure is in the submitted reference, so callers treat it as a
// bad request, not a missing resource.
func (s *NoteService) Create(dto records.CreateNote) (*records.VoiceNote, error) {
	patient, err := s.patients.FindByID(dto.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, records.ErrPatientNotFound
	}

	n := records.VoiceNote{
		ID:         uuid.NewString(),
		PatientID:  dto.PatientID,
		Title:      dto.Title,
		Duration:   dto.Duration,
		RecordedAt: dto.RecordedAt,
		Metadata:   dto.Metadata,
		CreatedAt:  records.Now(),
	}
	created, err := s.notes.Create(n)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *NoteService) Delete(id string) (bool, error) {
	return s.notes.Delete(id)
}
