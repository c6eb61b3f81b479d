package service

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/medvoice/medvoice/internal/records"
	"github.com/medvoice/medvoice/internal/records/repository"
)

type SummaryService struct {
	summaries *repository.SummaryRepository
	notes     *repository.NoteRepository
}

func NewSummaryService(summaries *repository.SummaryRepository, notes *repository.NoteRepository) *SummaryService {
	return &SummaryService{summaries: summaries, notes: notes}
}

func (s *SummaryService) GetByNoteID(noteID string) (*records.Summary, error) {
	return s.summaries.FindByNoteID(noteID)
}

// Generate creates the summary for a note. Fails with ErrNoteNotFound when
// the note does not exist and with ErrSummaryExists when the note already has
// one; the existing summary is never altered.
func (s *SummaryService) Generate(noteID string) (*records.Summary, error) {
	note, err := s.notes.FindByID(noteID)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, records.ErrNoteNotFound
	}

	existing, err := s.summaries.FindByNoteID(noteID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, records.ErrSummaryExists
	}

	content, keyPoints := summarize(*note)
	sum := records.Summary{
		ID:          uuid.NewString(),
		NoteID:      noteID,
		Content:     content,
		KeyPoints:   keyPoints,
		GeneratedAt: records.Now(),
	}
	created, err := s.summaries.Create(sum)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *SummaryService) Delete(noteID string) (bool, error) {
	return s.summaries.Delete(noteID)
}

// summarize builds the deterministic summary text from the note's title and
// duration. Not a real model; the template stands in for generated text.
func summarize(note records.VoiceNote) (string, []string) {
	minutes := int(note.Duration / 60)
	seconds := formatSeconds(note.Duration - float64(minutes)*60)

	content := fmt.Sprintf(
		"This is an AI-generated summary of the voice note titled \"%s\". "+
			"The recording lasted %d minutes and %s seconds. "+
			"The patient discussed their current symptoms, treatment progress, and any concerns they may have. "+
			"The healthcare provider can use this summary to quickly review the main points of the consultation.",
		note.Title, minutes, seconds)

	keyPoints := []string{
		"Patient consultation recorded",
		"Current symptoms and concerns discussed",
		"Treatment compliance and progress reviewed",
		fmt.Sprintf("Total duration: %dm %ss", minutes, seconds),
		"Follow-up recommendations provided",
	}
	return content, keyPoints
}

// formatSeconds renders a whole-number remainder without a decimal point, so
// a 185s note reads "3 minutes and 5 seconds".
func formatSeconds(s float64) string {
	return strconv.FormatFloat(s, 'f', -1, 64)
}
