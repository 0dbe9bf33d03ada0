package format

import (
	"fmt"
	"log/slog"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

// Error is returned when source text cannot be parsed or formatted, whatever the cause.
type Error struct {
	// Pos is the location of the failure. Zero when the failure has no position (internal faults).
	Pos lexer.Position
	// Message describes the failure without the position prefix.
	Message string

	cause error
}

func (e *Error) Error() string {
	if e.Pos.Line > 0 {
		return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Column, e.Message)
	}

	return e.Message
}

// Unwrap returns the underlying parser error, if any.
func (e *Error) Unwrap() error { return e.cause }

// Cause implements the github.com/pkg/errors causer interface.
func (e *Error) Cause() error { return e.cause }

// LogValue renders the error as a group so diagnostics carry the position as separate fields.
func (e *Error) LogValue() slog.Value {
	attrs := []slog.Attr{slog.String("msg", e.Message)}
	if e.Pos.Line > 0 {
		attrs = append(attrs, slog.Int("line", e.Pos.Line), slog.Int("column", e.Pos.Column))
	}

	return slog.GroupValue(attrs...)
}

type (
	positioned interface{ Position() lexer.Position }
	messenger  interface{ Message() string }
)

// newError converts a parser (or lexer) failure into an *Error, keeping its position.
func newError(err error) *Error {
	fe := &Error{Message: err.Error(), cause: err}

	var pe positioned
	if errors.As(err, &pe) {
		fe.Pos = pe.Position()
	}

	var me messenger
	if errors.As(err, &me) {
		fe.Message = me.Message()
	}

	return fe
}

// faultError converts a recovered panic into an *Error.
func faultError(r any) *Error {
	if err, ok := r.(error); ok {
		return &Error{Message: "internal formatter fault: " + err.Error(), cause: err}
	}

	return &Error{Message: fmt.Sprintf("internal formatter fault: %v", r)}
}
