// Package engine implements the chess rules: pseudo-legal move generation,
// check detection, the legality filter, move execution and the turn state
// machine that drives a game.
package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

var (
	knightOffsets = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// PseudoLegalMoves returns the squares the piece on sq can move to by its
// movement pattern and the occupancy of the board, without regard to
// whether the move leaves its own king in check. An empty square yields
// the empty set.
func PseudoLegalMoves(board *chess.Board, sq chess.Square) chess.SquareSet {
	piece, ok := board.Get(sq)
	if !ok {
		return 0
	}

	colour := piece.Colour()
	switch piece.Kind() {
	case chess.Pawn:
		return pawnMoves(board, sq, piece)
	case chess.Knight:
		return stepMoves(board, sq, colour, knightOffsets[:])
	case chess.Bishop:
		return slidingMoves(board, sq, colour, true, false)
	case chess.Rook:
		return slidingMoves(board, sq, colour, false, true)
	case chess.Queen:
		return slidingMoves(board, sq, colour, true, true)
	case chess.King:
		return stepMoves(board, sq, colour, kingOffsets[:]).Union(castlingMoves(board, sq, piece))
	}
	return 0
}

// stepMoves returns the single-step destinations (knight, king) that are
// empty or hold an enemy piece.
func stepMoves(board *chess.Board, from chess.Square, colour chess.Colour, offsets [][2]int) chess.SquareSet {
	var moves chess.SquareSet
	for _, offset := range offsets {
		to, ok := from.Offset(offset[0], offset[1])
		if !ok {
			continue
		}
		if !board.IsColour(to, colour) {
			moves = moves.Add(to)
		}
	}
	return moves
}

// slidingMoves casts rays for bishops, rooks and queens. A ray stops at the
// first occupied square, which is included only when it holds an enemy.
func slidingMoves(board *chess.Board, from chess.Square, colour chess.Colour, diagonal, straight bool) chess.SquareSet {
	var dirs [][2]int
	if diagonal {
		dirs = append(dirs, diagonalDirs[:]...)
	}
	if straight {
		dirs = append(dirs, straightDirs[:]...)
	}

	var moves chess.SquareSet
	for _, dir := range dirs {
		to, ok := from.Offset(dir[0], dir[1])
		for ok {
			if !board.IsEmpty(to) {
				if !board.IsColour(to, colour) {
					moves = moves.Add(to)
				}
				break // Blocked
			}
			moves = moves.Add(to)
			to, ok = to.Offset(dir[0], dir[1])
		}
	}
	return moves
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns -1, 0 or 1.
func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
