package typecheck

import (
	"errors"
	"reflect"
)

// Sentinel causes, distinguishable with errors.Is.
var (
	// ErrValidationFailed is the cause of every whitelist mismatch.
	ErrValidationFailed = errors.New("validation failed")

	// ErrNotIterable is the cause when an All* validator receives a value
	// that cannot be iterated.
	ErrNotIterable = errors.New("value is not iterable")

	// ErrNotType is the cause when a subclass validator receives a value
	// that is not a reflect.Type.
	ErrNotType = errors.New("value is not a type")
)

// ValidationError reports a candidate whose type matched no whitelist entry.
// For the All* variants Value is the failing element, not the iterable it
// came from.
type ValidationError struct {
	Field     string
	Value     any
	Whitelist []reflect.Type

	constraint string
	compliment string
}

func (e *ValidationError) Error() string {
	return formatMessage(e.Field, e.constraint, oxfordComma(e.Whitelist), e.compliment, e.Value)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// TypeError reports a candidate of the wrong shape for the check: not
// iterable for the All* variants, or not a type for the subclass variants.
type TypeError struct {
	Field string
	Value any

	cause error
	elem  bool
}

func (e *TypeError) Error() string {
	switch {
	case errors.Is(e.cause, ErrNotIterable):
		return formatMessage(e.Field, "must be", "iterable", "is", e.Value)
	case e.elem:
		return formatMessage(e.Field, "must contain", "types", "has", e.Value)
	default:
		return formatMessage(e.Field, "must be", "a type", "is", e.Value)
	}
}

func (e *TypeError) Unwrap() error {
	return e.cause
}

// ExtractValidationError extracts a ValidationError from an error chain.
func ExtractValidationError(err error) *ValidationError {
	if err == nil {
		return nil
	}

	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr
	}

	return nil
}

// ExtractTypeError extracts a TypeError from an error chain.
func ExtractTypeError(err error) *TypeError {
	if err == nil {
		return nil
	}

	var terr *TypeError
	if errors.As(err, &terr) {
		return terr
	}

	return nil
}

func IsValidationError(err error) bool {
	return ExtractValidationError(err) != nil
}

func IsTypeError(err error) bool {
	return ExtractTypeError(err) != nil
}
