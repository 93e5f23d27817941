package model

import (
	"errors"
	"fmt"
)

// Kind classifies the failures minigrep can report.
type Kind int

// Available Kind values.
const (
	KindMissingArgument Kind = iota + 1
	KindFileOpen
	KindFileRead
	KindOutputWrite
)

func (k Kind) String() string {
	switch k {
	case KindMissingArgument:
		return "missing argument"
	case KindFileOpen:
		return "file open"
	case KindFileRead:
		return "file read"
	case KindOutputWrite:
		return "output write"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is the single error surface of minigrep. It carries a description,
// an optional underlying cause, or both.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

// NewError builds an *Error of the given kind.
func NewError(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: cause}
}

func (e *Error) Error() string {
	switch {
	case e.Err == nil:
		return e.Msg
	case e.Msg == "":
		return e.Err.Error()
	default:
		return e.Msg + ": " + e.Err.Error()
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether any *Error in err's chain has the given kind.
func IsKind(err error, kind Kind) bool {
	var target *Error
	if !errors.As(err, &target) {
		return false
	}

	return target.Kind == kind
}
