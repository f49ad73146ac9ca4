package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrEmptySelection is returned when a booking request selects no slots.
var ErrEmptySelection = errors.New("no slots selected")

// ErrInvalidRange is returned when a slot time range produces no slots.
var ErrInvalidRange = errors.New("end time must be after start time")

// ValidationError reports malformed input with the offending field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NotFoundError reports a referenced entity that does not exist.
type NotFoundError struct {
	Entity string
	ID     uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// ConflictError reports a time overlap or a unique-constraint violation.
// ReservationID is set when an existing reservation caused the overlap.
type ConflictError struct {
	Message       string
	ReservationID *uuid.UUID
}

func (e *ConflictError) Error() string {
	return e.Message
}
