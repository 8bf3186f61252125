package reconcile

import (
	"errors"
	"fmt"
)

// Kind classifies an engine error.
type Kind int

const (
	// KindInvalidInput is a missing or malformed argument, detected before any store access.
	KindInvalidInput Kind = iota + 1
	// KindAuthorization is a caller the authorizer rejected.
	KindAuthorization
	// KindReferenceableNotFound is a lineage or attachment endpoint that does not resolve.
	KindReferenceableNotFound
	// KindUnsupportedOperation is a delete semantic the engine is not configured for.
	KindUnsupportedOperation
	// KindStore is a backend read or write failure.
	KindStore
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrAuthorization         = errors.New("not authorized")
	ErrReferenceableNotFound = errors.New("referenceable not found")
	ErrUnsupportedOperation  = errors.New("unsupported operation")
	ErrStore                 = errors.New("store failure")
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid input"
	case KindAuthorization:
		return "authorization"
	case KindReferenceableNotFound:
		return "referenceable not found"
	case KindUnsupportedOperation:
		return "unsupported operation"
	case KindStore:
		return "store"
	default:
		return "unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindInvalidInput:
		return ErrInvalidInput
	case KindAuthorization:
		return ErrAuthorization
	case KindReferenceableNotFound:
		return ErrReferenceableNotFound
	case KindUnsupportedOperation:
		return ErrUnsupportedOperation
	case KindStore:
		return ErrStore
	default:
		return nil
	}
}

// Error is returned by every Engine operation.
type Error struct {
	// Op is the engine operation, e.g. "upsert_schema_type".
	Op string
	// Kind classifies the failure.
	Kind Kind
	// Name is the qualified name, GUID or field the failure is about.
	Name string
	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Name != "" {
		msg += fmt.Sprintf(" (%s)", e.Name)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel of the error's kind. An unsupported delete semantic is also
// an invalid input.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	if target == e.Kind.sentinel() {
		return true
	}
	return e.Kind == KindUnsupportedOperation && target == ErrInvalidInput
}

// KindOf returns the Kind of an engine error, or 0 when err is not one.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// IsKind reports whether err is an engine error of kind k.
func IsKind(err error, k Kind) bool {
	return KindOf(err) == k
}

func newError(op string, kind Kind, name string, err error) *Error {
	return &Error{Op: op, Kind: kind, Name: name, Err: err}
}

func invalidInput(op, field, reason string) *Error {
	return newError(op, KindInvalidInput, field, errors.New(reason))
}

func storeError(op, name string, err error) *Error {
	return newError(op, KindStore, name, err)
}
