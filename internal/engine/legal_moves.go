package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// LegalMoves returns the destinations of the piece on from that do not leave
// its own king in check. Each pseudo-legal candidate is executed on the
// board, including en passant and castling side effects, tested and then
// undone by restoring a snapshot, so the board is unchanged on return.
func LegalMoves(board *chess.Board, from chess.Square) chess.SquareSet {
	piece, ok := board.Get(from)
	if !ok {
		return 0
	}
	colour := piece.Colour()

	candidates := PseudoLegalMoves(board, from)
	legal := candidates
	saved := board.SaveState()
	for _, to := range candidates.Squares() {
		if !tryMove(board, from, to, colour) {
			legal = legal.Remove(to)
		}
		board.RestoreState(saved)
	}

	if piece.Kind() == chess.King {
		legal = filterCastling(board, from, colour, legal)
	}
	return legal
}

// tryMove executes a move on the board and reports whether the mover's king
// is safe afterwards. The caller restores the board.
func tryMove(board *chess.Board, from, to chess.Square, colour chess.Colour) bool {
	Execute(board, from, to)
	return !IsInCheck(board, colour)
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for i := range board.Squares {
		sq := chess.Square(i)
		if board.IsColour(sq, colour) && !LegalMoves(board, sq).IsEmpty() {
			return true
		}
	}
	return false
}
