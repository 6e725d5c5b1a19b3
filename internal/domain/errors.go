package domain

import (
	"errors"
	"fmt"
)

// Kind classifies an error by how it is reported to API clients
type Kind int

// Error kinds reported to API clients
const (
	KindInternal Kind = iota
	KindBadRequest
	KindNotFound
	KindUnprocessable
)

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad request"
	case KindNotFound:
		return "not found"
	case KindUnprocessable:
		return "unprocessable"
	default:
		return "internal"
	}
}

// Error carries a Kind together with the operation that failed and its cause
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// E builds an *Error. err may be nil when the condition itself is the failure.
func E(kind Kind, op string, err error) error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf reports the Kind of the outermost *Error in err's chain.
// Errors that carry no Kind are internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
