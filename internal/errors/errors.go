// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidLayout indicates a malformed board setup string.
	ErrInvalidLayout = errors.New("invalid board layout")

	// ErrInvalidSquare indicates a square name or coordinate outside the board.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrIllegalMove indicates a move that is not in the legal move table.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidPromotion indicates a promotion to King or Pawn.
	ErrInvalidPromotion = errors.New("invalid promotion choice")

	// ErrNoPendingPromotion indicates a promotion choice outside the promotion state.
	ErrNoPendingPromotion = errors.New("no promotion pending")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNoKing indicates a colour has no king on the board.
	ErrNoKing = errors.New("king not found")

	// ErrEmptySquare indicates a move was executed from an empty square.
	ErrEmptySquare = errors.New("square holds no piece")

	// ErrNotPawn indicates a pawn-only operation applied to another piece.
	ErrNotPawn = errors.New("piece is not a pawn")
)

// InvariantError reports a broken engine invariant. The engine panics with
// an *InvariantError because continuing would make all further legality
// reasoning unsound.
type InvariantError struct {
	Err    error  // The underlying error
	Op     string // Operation that detected the violation
	Square string // Square involved (if applicable)
	Board  string // Board dump at the time of the violation (if available)
}

// Error returns a formatted error message including all available context.
func (e *InvariantError) Error() string {
	var parts []string

	if e.Op != "" {
		parts = append(parts, e.Op)
	}
	if e.Square != "" {
		parts = append(parts, fmt.Sprintf("square %s", e.Square))
	}

	context := strings.Join(parts, ", ")

	msg := context
	if e.Err != nil {
		if context != "" {
			msg = fmt.Sprintf("%s: %v", context, e.Err)
		} else {
			msg = e.Err.Error()
		}
	}
	if msg == "" {
		msg = "engine invariant violated"
	}
	if e.Board != "" {
		msg += "\n" + e.Board
	}
	return msg
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the InvariantError wrapper.
func (e *InvariantError) Unwrap() error {
	return e.Err
}

// LayoutError represents a board layout parsing error with position context.
type LayoutError struct {
	Err   error // The underlying error
	Index int   // Index of the offending square (-1 if not applicable)
	Char  byte  // Offending character (0 if not applicable)
}

// Error returns a formatted error message with location and context.
func (e *LayoutError) Error() string {
	var parts []string

	if e.Index >= 0 {
		parts = append(parts, fmt.Sprintf("square %d", e.Index))
	}
	if e.Char != 0 {
		parts = append(parts, fmt.Sprintf("unexpected %q", e.Char))
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
	return "layout error"
}

// Unwrap returns the underlying error.
func (e *LayoutError) Unwrap() error {
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

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
