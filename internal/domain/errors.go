package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// NonFieldErrors is the key used for validation messages that do not belong
// to a single input field.
const NonFieldErrors = "non_field_errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrSeatTaken    = errors.New("seat already taken")
	ErrUnauthorized = errors.New("authentication credentials were not provided")
	ErrForbidden    = errors.New("you do not have permission to perform this action")
)

// ValidationError carries field keyed messages for malformed or out of range input.
type ValidationError struct {
	Fields map[string][]string
}

func NewValidationError(field, message string) *ValidationError {
	e := &ValidationError{}
	e.Add(field, message)
	return e
}

func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], message)
}

// Merge copies every message of other into e, prefixing the field names.
func (e *ValidationError) Merge(prefix string, other *ValidationError) {
	if other == nil {
		return
	}
	for field, messages := range other.Fields {
		for _, m := range messages {
			e.Add(prefix+field, m)
		}
	}
}

func (e *ValidationError) Empty() bool {
	return e == nil || len(e.Fields) == 0
}

// OrNil returns nil when no message was collected.
func (e *ValidationError) OrNil() error {
	if e.Empty() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, strings.Join(e.Fields[f], "; ")))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// ConflictError reports a ticket that lost the race for a physical seat.
type ConflictError struct {
	FlightID int64
	Row      int
	Seat     int
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("seat already taken: flight %d, row %d, seat %d", e.FlightID, e.Row, e.Seat)
}

func (e *ConflictError) Unwrap() error {
	return ErrSeatTaken
}
