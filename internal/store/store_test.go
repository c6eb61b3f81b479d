package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/medvoice/medvoice/internal/records"
)

func TestJSONStoreMissingFileReadsEmpty(t *testing.T) {
	s := NewJSONStore(filepath.Join(t.TempDir(), "db.json"))
	db, err := s.Read()
	require.NoError(t, err)
	require.Empty(t, db.Patients)
	require.Empty(t, db.Notes)
	require.Empty(t, db.Summaries)
	require.NotNil(t, db.Patients)
	require.NotNil(t, db.Notes)
	require.NotNil(t, db.Summaries)
}

func TestJSONStoreCorruptFileReadsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := NewJSONStore(path)
	db, err := s.Read()
	require.NoError(t, err)
	require.Empty(t, db.Patients)
}

func TestJSONStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	s := NewJSONStore(path)

	want := records.Database{
		Patients: []records.Patient{{
			ID: "p1", Name: "John Doe", DateOfBirth: "1990-05-15",
			Email: "john@example.com", CreatedAt: "2024-01-01T00:00:00Z", UpdatedAt: "2024-01-01T00:00:00Z",
		}},
		Notes: []records.VoiceNote{{
			ID: "n1", PatientID: "p1", Title: "Consultation", Duration: 185,
			RecordedAt: "2024-01-02T00:00:00Z",
			Metadata:   map[string]any{"format": "mp3", "fileSize": float64(1024)},
			CreatedAt:  "2024-01-02T00:00:00Z",
		}},
		Summaries: []records.Summary{{
			ID: "s1", NoteID: "n1", Content: "text", KeyPoints: []string{"a", "b"},
			GeneratedAt: "2024-01-03T00:00:00Z",
		}},
	}
	require.NoError(t, s.Write(want))

	got, err := s.Read()
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestJSONStoreWriteCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data", "db.json")
	s := NewJSONStore(path)
	require.NoError(t, s.Write(records.Empty()))

	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestJSONStoreWriteReplacesWholeDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	s := NewJSONStore(path)

	db := records.Empty()
	db.Patients = append(db.Patients, records.Patient{ID: "p1", Email: "a@example.com"})
	require.NoError(t, s.Write(db))

	// a later write with a different snapshot fully replaces the first
	require.NoError(t, s.Write(records.Empty()))
	got, err := s.Read()
	require.NoError(t, err)
	require.Empty(t, got.Patients)
}

func TestMemoryStoreSnapshotIsolation(t *testing.T) {
	s := NewMemoryStore()
	db := records.Empty()
	db.Patients = append(db.Patients, records.Patient{ID: "p1"})
	require.NoError(t, s.Write(db))

	first, err := s.Read()
	require.NoError(t, err)
	first.Patients[0].ID = "mutated"

	second, err := s.Read()
	require.NoError(t, err)
	require.Equal(t, "p1", second.Patients[0].ID)
}
