package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/medvoice/medvoice/internal/records"
)

func createNoteForSummary(t *testing.T, duration float64) (*NoteService, *SummaryService, string) {
	t.Helper()
	patients, notes, summaries := newServices()
	p, err := patients.Create(records.CreatePatient{Name: "John Doe", DateOfBirth: "1990-05-15", Email: "john@example.com"})
	require.NoError(t, err)
	n, err := notes.Create(records.CreateNote{
		PatientID: p.ID, Title: "Consultation", Duration: duration, RecordedAt: "2024-01-01T10:00:00Z",
	})
	require.NoError(t, err)
	return notes, summaries, n.ID
}

func TestSummaryGenerateContent(t *testing.T) {
	_, summaries, noteID := createNoteForSummary(t, 185)

	sum, err := summaries.Generate(noteID)
	require.NoError(t, err)
	require.NotEmpty(t, sum.ID)
	require.Equal(t, noteID, sum.NoteID)
	require.NotEmpty(t, sum.GeneratedAt)

	// duration splits into whole minutes plus remainder
	require.Contains(t, sum.Content, `"Consultation"`)
	require.Contains(t, sum.Content, "3 minutes and 5 seconds")

	require.Len(t, sum.KeyPoints, 5)
	require.Equal(t, "Patient consultation recorded", sum.KeyPoints[0])
	require.Equal(t, "Total duration: 3m 5s", sum.KeyPoints[3])
	require.Equal(t, "Follow-up recommendations provided", sum.KeyPoints[4])
}

func TestSummaryGenerateTwiceFails(t *testing.T) {
	_, summaries, noteID := createNoteForSummary(t, 90)

	first, err := summaries.Generate(noteID)
	require.NoError(t, err)

	_, err = summaries.Generate(noteID)
	require.Error(t, err)
	require.Contains(t, err.Error(), "already exists")
	require.True(t, records.IsClientError(err))

	// the existing summary is unaltered
	got, err := summaries.GetByNoteID(noteID)
	require.NoError(t, err)
	require.Equal(t, first.ID, got.ID)
	require.Equal(t, first.GeneratedAt, got.GeneratedAt)
}

func TestSummaryGenerateMissingNote(t *testing.T) {
	_, _, summaries := newServices()
	_, err := summaries.Generate("ghost")
	require.Error(t, err)
	require.Contains(t, err.Error(), "not found")
	require.True(t, records.IsClientError(err))
}

func TestSummaryGetAndDeleteByNoteID(t *testing.T) {
	_, summaries, noteID := createNoteForSummary(t, 60)

	missing, err := summaries.GetByNoteID(noteID)
	require.NoError(t, err)
	require.Nil(t, missing)

	_, err = summaries.Generate(noteID)
	require.NoError(t, err)

	deleted, err := summaries.Delete(noteID)
	require.NoError(t, err)
	require.True(t, deleted)

	deleted, err = summaries.Delete(noteID)
	require.NoError(t, err)
	require.False(t, deleted)

	// deleting frees the slot for regeneration
	_, err = summaries.Generate(noteID)
	require.NoError(t, err)
}

func TestSummarizeWholeMinutes(t *testing.T) {
	_, summaries, noteID := createNoteForSummary(t, 120)
	sum, err := summaries.Generate(noteID)
	require.NoError(t, err)
	require.Contains(t, sum.Content, "2 minutes and 0 seconds")
	require.Equal(t, "Total duration: 2m 0s", sum.KeyPoints[3])
}
