package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Execute applies the move from→to to the board. The destination must be a
// member of LegalMoves(board, from); it is not validated again here.
//
// Side effects, in order: the piece is marked as moved; a pawn double step
// makes the pawn en passant eligible; an en passant capture removes the
// captured pawn beside the mover; castling moves the rook next to the king
// and marks it as moved; the source square is cleared and the piece placed
// on the destination, replacing any captured piece. Pawn promotion is left
// to the caller.
func Execute(board *chess.Board, from, to chess.Square) {
	piece, ok := board.Get(from)
	if !ok {
		panic(&errors.InvariantError{
			Err:    errors.ErrEmptySquare,
			Op:     "execute",
			Square: from.String(),
			Board:  board.String(),
		})
	}

	piece.SetMoved()

	switch piece.Kind() {
	case chess.Pawn:
		if isDoubleStep(from, to) {
			piece.SetEnPassant(true)
		} else if victim, ok := enPassantVictim(board, from, to, piece.Colour()); ok {
			board.Clear(victim)
		}

	case chess.King:
		if isCastle(piece, from, to) {
			applyCastle(board, from, to)
		}
	}

	board.Clear(from)
	board.Set(to, piece)
}

// applyCastle relocates the rook of a castling king move from→to.
func applyCastle(board *chess.Board, from, to chess.Square) {
	rookFrom, rookTo := castleRookSquares(from, to)
	rook, ok := board.Get(rookFrom)
	if !ok {
		panic(&errors.InvariantError{
			Err:    errors.ErrEmptySquare,
			Op:     "castle rook",
			Square: rookFrom.String(),
			Board:  board.String(),
		})
	}
	rook.SetMoved()
	board.Clear(rookFrom)
	board.Set(rookTo, rook)
}
