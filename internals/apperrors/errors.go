// Package apperrors defines the errors the service layer reports to its
// callers. The controller maps each of them to an HTTP status and a
// client-facing message.
package apperrors

import "errors"

var (
	// ErrInvalidID reports an id that is not a positive integer.
	ErrInvalidID = errors.New("El id es invalido")

	// ErrNotFound reports an operation against an id with no record.
	ErrNotFound = errors.New("Libro no encontrado")

	// ErrImmutableID reports an update payload that tries to set the id.
	ErrImmutableID = errors.New("No se puede actualizar el id")
)

// ConflictError reports a duplicate titulo or isbn at creation time.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func NewConflict(message string) *ConflictError {
	return &ConflictError{Message: message}
}
