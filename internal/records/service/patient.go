// Package service enforces the cross-entity business rules: unique patient
// email, note-to-patient referential integrity at creation time, and at most
// one summary per note. Services assign identifiers and timestamps; entities
// never self-assign them. Storage failures pass through untranslated.
package service

import (
	"github.com/google/uuid"

	"github.com/medvoice/medvoice/internal/records"
	"github.com/medvoice/medvoice/internal/records/repository"
)

type PatientService struct {
	patients *repository.PatientRepository
}

func NewPatientService(patients *repository.PatientRepository) *PatientService {
	return &PatientService{patients: patients}
}

func (s *PatientService) GetAll() ([]records.Patient, error) {
	return s.patients.FindAll()
}

func (s *PatientService) GetByID(id string) (*records.Patient, error) {
	return s.patients.FindByID(id)
}

// Create fails with ErrEmailExists when another patient already has the
// email; the store is left untouched in that case. CreatedAt and UpdatedAt
// get the same value on creation.
func (s *PatientService) Create(dto records.CreatePatient) (*records.Patient, error) {
	existing, err := s.patients.FindByEmail(dto.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, records.ErrEmailExists
	}

	now := records.Now()
	p := records.Patient{
		ID:          uuid.NewString(),
		Name:        dto.Name,
		DateOfBirth: dto.DateOfBirth,
		Email:       dto.Email,
		Phone:       dto.Phone,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := s.patients.Create(p)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update returns (nil, nil) when the patient does not exist. The email
// uniqueness check reruns only when the update carries an email different
// from the stored one; a conflict fails with ErrEmailInUse.
func (s *PatientService) Update(id string, dto records.UpdatePatient) (*records.Patient, error) {
	existing, err := s.patients.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	if dto.Email != nil && *dto.Email != existing.Email {
		inUse, err := s.patients.FindByEmail(*dto.Email)
		if err != nil {
			return nil, err
		}
		if inUse != nil {
			return nil, records.ErrEmailInUse
		}
	}

	dto.UpdatedAt = records.Now()
	return s.patients.Update(id, dto)
}

// Delete does not touch the patient's notes; they stay behind as orphans.
func (s *PatientService) Delete(id string) (bool, error) {
	return s.patients.Delete(id)
}
