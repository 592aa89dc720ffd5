// Package apperror is the error taxonomy shared by repositories, services and handlers.
package apperror

import (
	"fmt"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// FieldError is an error tied to a single input field.
type FieldError struct {
	Field string
	Error string
}

// ValidationError means the caller sent malformed or missing input.
type ValidationError struct {
	Message string
	Fields  []FieldError
}

func (e *ValidationError) Error() string { return e.Message }

// FieldMap groups field errors by field name, the shape helper.JsonValidationError expects.
func (e *ValidationError) FieldMap() map[string][]string {
	out := make(map[string][]string, len(e.Fields))
	for _, f := range e.Fields {
		out[f.Field] = append(out[f.Field], f.Error)
	}
	return out
}

func NewValidationError(msg string, flds ...FieldError) error {
	return &ValidationError{Message: msg, Fields: flds}
}

var ErrNotFound = errors.New("record not found")

// StorageError wraps a connection or query failure.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *StorageError) Cause() error { return e.Err }

func (e *StorageError) Unwrap() error { return e.Err }

// Storage classifies a gorm/sql error: missing rows become ErrNotFound,
// anything else a *StorageError. nil stays nil.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.Wrap(ErrNotFound, op)
	}
	return &StorageError{Op: op, Err: err}
}

func IsNotFound(err error) bool {
	return errors.Cause(err) == ErrNotFound || errors.Is(err, gorm.ErrRecordNotFound)
}

func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

func IsStorage(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
