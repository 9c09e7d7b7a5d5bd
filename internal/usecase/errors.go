package usecase

import (
	"errors"
	"strings"
)

var (
	ErrRecordNotFound      = errors.New("health record not found")
	ErrMedicationNotFound  = errors.New("medication not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
)

// ValidationError carries the ordered list of rule violations back to the
// presentation layer. It is the only way validation failures leave a
// usecase; the store never sees invalid entities.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

func validationFailed(messages []string) error {
	if len(messages) == 0 {
		return nil
	}
	return &ValidationError{Messages: messages}
}
