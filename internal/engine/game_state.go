package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// TurnState is the state of the side to move.
type TurnState int

const (
	Normal TurnState = iota
	Check
	Checkmate
	Stalemate
	PendingPromotion // a pawn reached the last rank; waiting for the choice
)

// String returns the status-line text for the state.
func (s TurnState) String() string {
	switch s {
	case Normal:
		return "Normal"
	case Check:
		return "Check"
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	case PendingPromotion:
		return "Promotion"
	}
	return "Unknown"
}

// IsTerminal reports whether the game is over.
func (s TurnState) IsTerminal() bool {
	return s == Checkmate || s == Stalemate
}

// Promotion identifies the pawn waiting for a promotion choice.
type Promotion struct {
	Square chess.Square
	Colour chess.Colour
}

// Status is the snapshot shown on the status line.
type Status struct {
	Turn  chess.Colour
	State TurnState
	// Promotion is set only while State is PendingPromotion.
	Promotion *Promotion
}

// MoveOutcome is the result of AttemptMove.
type MoveOutcome int

const (
	Rejected MoveOutcome = iota
	Moved
	RequiresPromotionChoice
)

// String returns the string representation of a move outcome.
func (o MoveOutcome) String() string {
	switch o {
	case Moved:
		return "Moved"
	case RequiresPromotionChoice:
		return "RequiresPromotionChoice"
	}
	return "Rejected"
}

// IsCheckmate returns true if colour is in check and has no legal move.
func IsCheckmate(board *chess.Board, colour chess.Colour) bool {
	return IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}

// IsStalemate returns true if colour is not in check and has no legal move.
func IsStalemate(board *chess.Board, colour chess.Colour) bool {
	return !IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}
