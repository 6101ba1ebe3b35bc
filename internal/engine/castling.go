package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// castleSide describes one castling direction on the king's rank.
type castleSide struct {
	dir      int // file step from king towards rook
	rookFile int
}

var castleSides = [2]castleSide{
	{dir: 1, rookFile: chess.BoardSize - 1}, // kingside
	{dir: -1, rookFile: 0},                  // queenside
}

// castlingMoves returns the two-square king destinations for which castling
// is pseudo-legal: king and rook unmoved, rook of the same colour on the
// corner of the king's rank, every square between them empty. Attacks on
// the king's path are checked later by the legality filter.
func castlingMoves(board *chess.Board, from chess.Square, king chess.Piece) chess.SquareSet {
	if king.HasMoved() {
		return 0
	}

	var moves chess.SquareSet
	colour := king.Colour()
	rank := from.Rank()
	for _, side := range castleSides {
		// The destination must lie strictly between king and rook.
		if (side.rookFile-from.File())*side.dir < 3 {
			continue
		}
		rook := board.At(chess.NewSquare(side.rookFile, rank))
		if !rook.Is(colour, chess.Rook) || rook.HasMoved() {
			continue
		}
		if !pathEmpty(board, rank, from.File()+side.dir, side.rookFile, side.dir) {
			continue
		}
		moves = moves.Add(chess.NewSquare(from.File()+2*side.dir, rank))
	}
	return moves
}

// pathEmpty reports whether the squares on rank from file start up to, but
// excluding, file end are all empty.
func pathEmpty(board *chess.Board, rank, start, end, dir int) bool {
	for file := start; file != end; file += dir {
		if !board.IsEmpty(chess.NewSquare(file, rank)) {
			return false
		}
	}
	return true
}

// isCastle reports whether a king move from→to is a castling move.
func isCastle(piece chess.Piece, from, to chess.Square) bool {
	return piece.Kind() == chess.King && abs(to.File()-from.File()) == 2
}

// castleRookSquares returns where the rook starts and lands for a castling
// king move from→to.
func castleRookSquares(from, to chess.Square) (rookFrom, rookTo chess.Square) {
	dir := sign(to.File() - from.File())
	rookFile := 0
	if dir > 0 {
		rookFile = chess.BoardSize - 1
	}
	return chess.NewSquare(rookFile, from.Rank()), chess.NewSquare(to.File()-dir, from.Rank())
}

// filterCastling removes castling destinations the king may not use because
// it would start in, pass through or land on an attacked square. The king's
// walk is replayed one square at a time from its starting square.
func filterCastling(board *chess.Board, from chess.Square, colour chess.Colour, moves chess.SquareSet) chess.SquareSet {
	king := board.At(from)
	for _, side := range castleSides {
		dest, ok := from.Offset(2*side.dir, 0)
		if !ok || !moves.Has(dest) || !isCastle(king, from, dest) {
			continue
		}
		if castlePathAttacked(board, from, side.dir, colour) {
			moves = moves.Remove(dest)
		}
	}
	return moves
}

// castlePathAttacked walks the king from its square two steps in dir,
// checking for check after each step.
func castlePathAttacked(board *chess.Board, from chess.Square, dir int, colour chess.Colour) bool {
	saved := board.SaveState()
	defer board.RestoreState(saved)

	for step := 0; step <= 2; step++ {
		if step > 0 {
			board.RestoreState(saved)
			to, _ := from.Offset(step*dir, 0)
			Execute(board, from, to)
		}
		if IsInCheck(board, colour) {
			return true
		}
	}
	return false
}
