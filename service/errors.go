package service

import (
	"errors"
	"fmt"
)

// ErrNotFound reports an operation targeting an id absent from its collection.
var ErrNotFound = errors.New("record not found")

// ErrEquipmentConflict reports a finalize attempt while the linked equipment
// was moved to maintenance; the rental is left active.
var ErrEquipmentConflict = errors.New("equipment is under maintenance")

// ValidationError reports a caller-correctable precondition failure. Nothing
// is written when one is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func required(field string) *ValidationError {
	return invalid(field, "is required")
}
