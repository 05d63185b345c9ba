package service

import (
	"errors"
	"fmt"

	"github.com/PONGPONGz/GearMate/internal/models"
)

// Kind classifies a service failure so transports can map it to a status.
type Kind string

const (
	KindValidation Kind = "validation"
	KindReference  Kind = "reference"
	KindConflict   Kind = "conflict"
	KindStorage    Kind = "storage"
)

// Error is returned by every service operation. Reference errors carry the
// target entity and the offending id.
type Error struct {
	Kind    Kind
	Message string
	Entity  models.Entity
	ID      int64
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Kind == KindStorage {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func ValidationError(format string, args ...any) error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func ReferenceError(entity models.Entity, id int64) error {
	return &Error{
		Kind:    KindReference,
		Message: fmt.Sprintf("%s %d does not exist", entity, id),
		Entity:  entity,
		ID:      id,
	}
}

func ConflictError(format string, args ...any) error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func StorageError(op string, err error) error {
	return &Error{Kind: KindStorage, Message: op, Err: err}
}

// KindOf returns the kind of a service error, or KindStorage for any other non-nil error.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindStorage
}

// IsKind reports whether err is a service error of the given kind.
func IsKind(err error, kind Kind) bool {
	var se *Error
	return errors.As(err, &se) && se.Kind == kind
}
