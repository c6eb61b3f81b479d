// Package repository provides typed data access over the shared snapshot
// store. Every operation is a full read of the snapshot, an in-memory
// mutation of one collection, and (for writes) a full write back. No business
// rules live here; uniqueness and referential checks belong to the services.
package repository

import (
	"github.com/medvoice/medvoice/internal/records"
	"github.com/medvoice/medvoice/internal/store"
)

type PatientRepository struct {
	store store.Store
}

func NewPatientRepository(s store.Store) *PatientRepository {
	return &PatientRepository{store: s}
}

func (r *PatientRepository) FindAll() ([]records.Patient, error) {
	db, err := r.store.Read()
	if err != nil {
		return nil, err
	}
	return db.Patients, nil
}

// FindByID returns (nil, nil) when no patient has the given id; absence on a
// direct lookup is not an error.
func (r *PatientRepository) FindByID(id string) (*records.Patient, error) {
	db, err := r.store.Read()
	if err != nil {
		return nil, err
	}
	for i := range db.Patients {
		if db.Patients[i].ID == id {
			p := db.Patients[i]
			return &p, nil
		}
	}
	return nil, nil
}

// FindByEmail matches exactly, case-sensitive as stored.
func (r *PatientRepository) FindByEmail(email string) (*records.Patient, error) {
	db, err := r.store.Read()
	if err != nil {
		return nil, err
	}
	for i := range db.Patients {
		if db.Patients[i].Email == email {
			p := db.Patients[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (r *PatientRepository) Create(p records.Patient) (records.Patient, error) {
	db, err := r.store.Read()
	if err != nil {
		return records.Patient{}, err
	}
	db.Patients = append(db.Patients, p)
	if err := r.store.Write(db); err != nil {
		return records.Patient{}, err
	}
	return p, nil
}

// Update merges the non-nil fields of upd over the stored record. ID and
// CreatedAt always keep their stored values. Returns (nil, nil) when no
// patient has the given id.
func (r *PatientRepository) Update(id string, upd records.UpdatePatient) (*records.Patient, error) {
	db, err := r.store.Read()
	if err != nil {
		return nil, err
	}
	for i := range db.Patients {
		if db.Patients[i].ID != id {
			continue
		}
		p := &db.Patients[i]
		if upd.Name != nil {
			p.Name = *upd.Name
		}
		if upd.DateOfBirth != nil {
			p.DateOfBirth = *upd.DateOfBirth
		}
		if upd.Email != nil {
			p.Email = *upd.Email
		}
		if upd.Phone != nil {
			p.Phone = *upd.Phone
		}
		p.UpdatedAt = upd.UpdatedAt
		if err := r.store.Write(db); err != nil {
			return nil, err
		}
		out := *p
		return &out, nil
	}
	return nil, nil
}

// Delete reports whether a patient with the given id existed and was removed.
func (r *PatientRepository) Delete(id string) (bool, error) {
	db, err := r.store.Read()
	if err != nil {
		return false, err
	}
	for i := range db.Patients {
		if db.Patients[i].ID == id {
			db.Patients = append(db.Patients[:i], db.Patients[i+1:]...)
			if err := r.store.Write(db); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}
