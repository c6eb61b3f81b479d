package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/medvoice/medvoice/internal/records"
	"github.com/medvoice/medvoice/internal/records/repository"
	"github.com/medvoice/medvoice/internal/store"
)

func newPatientService() *PatientService {
	return NewPatientService(repository.NewPatientRepository(store.NewMemoryStore()))
}

func strPtr(s string) *string { return &s }

func parseTS(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339Nano, s)
	require.NoError(t, err)
	return ts
}

func TestPatientCreateAssignsIdentityAndTimestamps(t *testing.T) {
	svc := newPatientService()

	p, err := svc.Create(records.CreatePatient{
		Name: "John Doe", DateOfBirth: "1990-05-15", Email: "john@example.com",
	})
	require.NoError(t, err)
	require.NotEmpty(t, p.ID)
	require.Equal(t, "John Doe", p.Name)
	require.Equal(t, p.CreatedAt, p.UpdatedAt)
	parseTS(t, p.CreatedAt)
}

func TestPatientCreateDuplicateEmail(t *testing.T) {
	svc := newPatientService()

	_, err := svc.Create(records.CreatePatient{Name: "John Doe", DateOfBirth: "1990-05-15", Email: "john@example.com"})
	require.NoError(t, err)

	_, err = svc.Create(records.CreatePatient{Name: "Jane Doe", DateOfBirth: "1992-01-01", Email: "john@example.com"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "already exists")
	require.True(t, records.IsClientError(err))

	// the failed create left the store untouched
	all, err := svc.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestPatientUpdatePreservesIdentityAndCreationTime(t *testing.T) {
	svc := newPatientService()
	created, err := svc.Create(records.CreatePatient{Name: "John Doe", DateOfBirth: "1990-05-15", Email: "john@example.com"})
	require.NoError(t, err)

	time.Sleep(2 * time.Millisecond)
	updated, err := svc.Update(created.ID, records.UpdatePatient{Name: strPtr("Johnny Doe")})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, created.CreatedAt, updated.CreatedAt)
	require.True(t, parseTS(t, updated.UpdatedAt).After(parseTS(t, created.UpdatedAt)))
	require.Equal(t, "Johnny Doe", updated.Name)
	require.Equal(t, "john@example.com", updated.Email)
}

func TestPatientUpdateEmailInUse(t *testing.T) {
	svc := newPatientService()
	_, err := svc.Create(records.CreatePatient{Name: "John Doe", DateOfBirth: "1990-05-15", Email: "john@example.com"})
	require.NoError(t, err)
	other, err := svc.Create(records.CreatePatient{Name: "Jane Doe", DateOfBirth: "1992-01-01", Email: "jane@example.com"})
	require.NoError(t, err)

	_, err = svc.Update(other.ID, records.UpdatePatient{Email: strPtr("john@example.com")})
	require.Error(t, err)
	require.Contains(t, err.Error(), "already in use")
	require.True(t, records.IsClientError(err))

	// re-submitting the patient's own email is not a conflict
	got, err := svc.Update(other.ID, records.UpdatePatient{Email: strPtr("jane@example.com")})
	require.NoError(t, err)
	require.NotNil(t, got)
}

func TestPatientUpdateMissingReturnsNil(t *testing.T) {
	svc := newPatientService()
	got, err := svc.Update("nope", records.UpdatePatient{Name: strPtr("X")})
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestPatientDeleteMissingReturnsFalse(t *testing.T) {
	svc := newPatientService()
	deleted, err := svc.Delete("nope")
	require.NoError(t, err)
	require.False(t, deleted)
}
