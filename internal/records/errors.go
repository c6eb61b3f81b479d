package records

import (
	"errors"
	"strings"
)

// Business-rule violations raised by the services. The exact message text is
// part of the client contract: callers classify failures by substring match,
// so these strings must not change.
var (
	ErrEmailExists     = errors.New("Patient with this email already exists")
	ErrEmailInUse      = errors.New("Email already in use")
	ErrPatientNotFound = errors.New("Patient not found")
	ErrNoteNotFound    = errors.New("Note not found")
	ErrSummaryExists   = errors.New("Summary already exists for this note")
)

// IsClientError reports whether err is a business-rule violation the caller
// can fix, as opposed to an unexpected storage failure. Classification is by
// message content to stay compatible with clients built against the original
// contract.
func IsClientError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "already exists") ||
		strings.Contains(msg, "not found") ||
		strings.Contains(msg, "already in use")
}
