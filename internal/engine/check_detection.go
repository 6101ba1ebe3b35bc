package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// AttackedSquares returns the union of the pseudo-legal destinations of
// every piece of the given colour. Pawn diagonals appear only where a
// capture is possible, which is always the case for an occupied king square.
func AttackedSquares(board *chess.Board, colour chess.Colour) chess.SquareSet {
	var attacks chess.SquareSet
	for i := range board.Squares {
		sq := chess.Square(i)
		if board.IsColour(sq, colour) {
			attacks = attacks.Union(PseudoLegalMoves(board, sq))
		}
	}
	return attacks
}

// IsInCheck returns true if the given colour's king is attacked.
// A board without that king is corrupt and causes a panic.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king := findKing(board, colour)
	return isSquareAttacked(board, king, colour.Opposite())
}

// findKing finds the king of the given colour on the board.
func findKing(board *chess.Board, colour chess.Colour) chess.Square {
	sq, ok := board.FindKing(colour)
	if !ok {
		panic(&errors.InvariantError{
			Err:   errors.ErrNoKing,
			Op:    "find " + colour.String() + " king",
			Board: board.String(),
		})
	}
	return sq
}

// isSquareAttacked returns true if the square is attacked by the given colour.
func isSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	return AttackedSquares(board, byColour).Has(sq)
}
