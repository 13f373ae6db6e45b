package lead

import (
	"errors"
	"strings"
)

var (
	ErrInvalidContact = errors.New("invalid contact")
	// ErrStoreUnavailable means the lead could not be persisted; the visitor
	// may resubmit.
	ErrStoreUnavailable = errors.New("lead store unavailable")
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ContactError lists the contact fields that failed validation.
type ContactError struct {
	Fields []FieldError
}

func (e *ContactError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return strings.Join(msgs, "; ")
}

func (e *ContactError) Is(target error) bool { return target == ErrInvalidContact }
