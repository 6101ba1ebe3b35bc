package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// pawnMoves generates pawn advances, diagonal captures and en passant captures.
func pawnMoves(board *chess.Board, from chess.Square, pawn chess.Piece) chess.SquareSet {
	var moves chess.SquareSet
	colour := pawn.Colour()
	dir := colour.Forward()

	// Forward move, two squares if the pawn has not moved yet
	reach := 2
	if pawn.HasMoved() {
		reach = 1
	}
	for step := 1; step <= reach; step++ {
		to, ok := from.Offset(0, step*dir)
		if !ok || !board.IsEmpty(to) {
			break
		}
		moves = moves.Add(to)
	}

	// Captures
	for _, df := range [2]int{-1, 1} {
		to, ok := from.Offset(df, dir)
		if !ok {
			continue
		}
		if board.IsColour(to, colour.Opposite()) {
			moves = moves.Add(to)
			continue
		}
		if _, ok := enPassantVictim(board, from, to, colour); ok {
			moves = moves.Add(to)
		}
	}
	return moves
}

// enPassantVictim returns the square of the pawn captured en passant when a
// pawn of the given colour moves from→to. The destination must be an empty
// diagonal square and the square beside the mover, on the destination's
// file, must hold an enemy pawn that just made a double step.
func enPassantVictim(board *chess.Board, from, to chess.Square, colour chess.Colour) (chess.Square, bool) {
	if from.File() == to.File() || !board.IsEmpty(to) {
		return chess.NoSquare, false
	}
	victim := chess.NewSquare(to.File(), from.Rank())
	p := board.At(victim)
	if !p.Is(colour.Opposite(), chess.Pawn) || !p.EnPassant() {
		return chess.NoSquare, false
	}
	return victim, true
}

// isDoubleStep reports whether a pawn move from→to advances two squares.
func isDoubleStep(from, to chess.Square) bool {
	return abs(to.Rank()-from.Rank()) == 2
}

// isPromotion reports whether piece arriving on to must be promoted.
func isPromotion(piece chess.Piece, to chess.Square) bool {
	return piece.Kind() == chess.Pawn && to.Rank() == piece.Colour().PromotionRank()
}
