// Package errors provides sentinel errors and error types for chesskit.
// It defines the failure conditions of the notation codec and position
// model as structured errors that preserve context while allowing
// inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the failure conditions of the core.
// Use these with errors.Is() to check for specific error kinds.
var (
	// ErrInvalidNotation indicates malformed square, file, or rank text.
	ErrInvalidNotation = errors.New("invalid notation")

	// ErrMalformedFEN indicates a FEN string with a wrong field count,
	// a bad board layout, or invalid rights/clock values.
	ErrMalformedFEN = errors.New("malformed FEN")

	// ErrMalformedPGN indicates an unparseable PGN tag or movetext token.
	ErrMalformedPGN = errors.New("malformed PGN")

	// ErrIllegalBoardState indicates a structurally impossible position,
	// e.g. two kings of the same side or a piece count overflow. It is
	// reserved for defensive validation and is not raised by parsing alone.
	ErrIllegalBoardState = errors.New("illegal board state")

	// ErrIllegalMove indicates a move inconsistent with the position it
	// is applied to (no piece on the source square, wrong side, etc.).
	ErrIllegalMove = errors.New("illegal move")
)

// ParseError reports a parsing failure with its location in the input.
// It is used for FEN field errors and PGN tag/movetext errors.
type ParseError struct {
	Err      error  // The underlying sentinel error
	Field    string // FEN field name, if applicable
	Line     int    // Line number (1-based, 0 if unknown)
	Column   int    // Column number (1-based, 0 if unknown)
	Expected string // What was expected (for syntax errors)
	Got      string // What was found instead
}

// Error returns a formatted message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field %q", e.Field))
	}
	if e.Line > 0 {
		loc := fmt.Sprintf("line %d", e.Line)
		if e.Column > 0 {
			loc += fmt.Sprintf(":%d", e.Column)
		}
		parts = append(parts, loc)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error, enabling errors.Is() and
// errors.As() to work through the ParseError wrapper.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the
// underlying error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
