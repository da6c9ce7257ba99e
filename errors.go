package entropy

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind discriminates the failure modes a coder construction or operation
// can report. There are no recoverable errors inside an encode or decode
// inner loop: arithmetic there is total and bounded, so every Kind is
// raised synchronously at an API entry point.
type Kind string

const (
	// KindInvalidArgument marks a constructor argument outside its
	// documented domain: a probability outside [0, 1], a range bit width
	// outside [2, 23], a FastDiv31 divisor outside [0, 2^31), or a
	// FastMulByFraction fraction outside [0, 1].
	KindInvalidArgument Kind = "invalid_argument"

	// KindPrecondition marks an operation called before a precondition it
	// documents was satisfied, such as a table-based coder method called
	// before the corresponding table was built.
	KindPrecondition Kind = "precondition"
)

// Error is the error type returned by every fallible constructor and
// operation in this module. It identifies which precondition failed via
// Kind and participates in errors.Is comparisons against the sentinel
// values below.
type Error struct {
	Kind  Kind
	cause error
}

func (e *Error) Error() string {
	return e.cause.Error()
}

// Unwrap exposes the underlying stack-traced cause for errors.As and for
// callers that want %+v-style stack formatting via pkg/errors.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target is an *Error of the same Kind, letting
// callers write errors.Is(err, entropy.ErrInvalidArgument) without caring
// about the specific message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// ErrInvalidArgument is the sentinel for errors.Is comparisons against
// KindInvalidArgument errors.
var ErrInvalidArgument = &Error{Kind: KindInvalidArgument}

// ErrPrecondition is the sentinel for errors.Is comparisons against
// KindPrecondition errors.
var ErrPrecondition = &Error{Kind: KindPrecondition}

// NewInvalidArgument builds a KindInvalidArgument error with a
// stack-traced cause.
func NewInvalidArgument(format string, args ...any) error {
	return &Error{Kind: KindInvalidArgument, cause: errors.New(fmt.Sprintf(format, args...))}
}

// NewPrecondition builds a KindPrecondition error with a stack-traced
// cause.
func NewPrecondition(format string, args ...any) error {
	return &Error{Kind: KindPrecondition, cause: errors.New(fmt.Sprintf(format, args...))}
}
