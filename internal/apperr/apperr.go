// Package apperr defines the typed failures surfaced by the query engine.
// Every failure carries a Kind so the embedding layer can map it to an exit
// code or an error envelope without parsing messages.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindSchema
	KindStore
)

// String returns the lower-case name of the kind
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindSchema:
		return "schema"
	case KindStore:
		return "store"
	default:
		return "unknown"
	}
}

// Error is a typed engine failure.
type Error struct {
	Kind Kind
	Op   string // optional operation name, e.g. "repository.Years"
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Msg
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		if msg == "" {
			return e.Err.Error()
		}
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validationf returns a validation failure with a formatted message.
func Validationf(format string, args ...any) error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

// Schema returns a schema-compatibility failure.
func Schema(op, msg string) error {
	return &Error{Kind: KindSchema, Op: op, Msg: msg}
}

// Store wraps a failure of the underlying store. A nil err returns nil.
func Store(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: KindStore, Op: op, Msg: "query failed", Err: err}
}

// KindOf reports the Kind of the first *Error in err's chain,
// or KindUnknown if there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
