package records

import "time"

// Patient is the persisted patient record. Email is unique across the whole
// collection; the uniqueness check lives in the service layer.
type Patient struct {
	ID          string `json:"id" bson:"id"`
	Name        string `json:"name" bson:"name"`
	DateOfBirth string `json:"dateOfBirth" bson:"dateOfBirth"`
	Email       string `json:"email" bson:"email"`
	Phone       string `json:"phone,omitempty" bson:"phone,omitempty"`
	CreatedAt   string `json:"createdAt" bson:"createdAt"`
	UpdatedAt   string `json:"updatedAt" bson:"updatedAt"`
}

// VoiceNote is a recorded consultation. PatientID must reference an existing
// patient at creation time; it is not re-validated afterwards, so deleting a
// patient leaves its notes in place.
type VoiceNote struct {
	ID         string         `json:"id" bson:"id"`
	PatientID  string         `json:"patientId" bson:"patientId"`
	Title      string         `json:"title" bson:"title"`
	Duration   float64        `json:"duration" bson:"duration"` // seconds
	RecordedAt string         `json:"recordedAt" bson:"recordedAt"`
	Metadata   map[string]any `json:"metadata,omitempty" bson:"metadata,omitempty"`
	CreatedAt  string         `json:"createdAt" bson:"createdAt"`
}

// Summary is generated summary text for a voice note. At most one summary
// exists per note.
type Summary struct {
	ID          string   `json:"id" bson:"id"`
	NoteID      string   `json:"noteId" bson:"noteId"`
	Content     string   `json:"content" bson:"content"`
	KeyPoints   []string `json:"keyPoints" bson:"keyPoints"`
	GeneratedAt string   `json:"generatedAt" bson:"generatedAt"`
}

// Database is the whole persisted snapshot: three independent collections.
// The storage layer enforces no cross-collection constraints; those live in
// the services.
type Database struct {
	Patients  []Patient   `json:"patients" bson:"patients"`
	Notes     []VoiceNote `json:"notes" bson:"notes"`
	Summaries []Summary   `json:"summaries" bson:"summaries"`
}

// Empty returns a snapshot with three empty collections, the valid initial
// state when nothing has been persisted yet.
func Empty() Database {
	return Database{Patients: []Patient{}, Notes: []VoiceNote{}, Summaries: []Summary{}}
}

// CreatePatient is the shape-validated input for creating a patient. The
// service assigns ID and timestamps.
type CreatePatient struct {
	Name        string
	DateOfBirth string
	Email       string
	Phone       string
}

// UpdatePatient carries a partial patient update. Nil fields are left
// unchanged. UpdatedAt is set by the service, never by callers; ID and
// CreatedAt are not expressible here and can never be overwritten.
type UpdatePatient struct {
	Name        *string
	DateOfBirth *string
	Email       *string
	Phone       *string
	UpdatedAt   string
}

// CreateNote is the shape-validated input for creating a voice note.
type CreateNote struct {
	PatientID  string
	Title      string
	Duration   float64
	RecordedAt string
	Metadata   map[string]any
}

// Now returns the current UTC time in the string form used for all persisted
// timestamps.
func Now() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
