package chess

import (
	"strings"
)

// Board is the 8x8 grid of optional pieces, addressed by Square.
// It is a fixed-size value: assigning a Board copies every square, which
// keeps snapshot and restore O(board size) with no allocation.
type Board struct {
	// Squares holds one Piece per board index; the zero Piece is empty.
	Squares [NumSquares]Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *Board {
	b, err := ParseLayout(InitialLayout)
	if err != nil {
		panic(err)
	}
	return b
}

// Get returns the piece on sq and whether the square is occupied.
// sq must be a valid square.
func (b *Board) Get(sq Square) (Piece, bool) {
	p := b.Squares[sq]
	return p, !p.IsEmpty()
}

// At returns the piece on sq, the zero Piece when empty.
func (b *Board) At(sq Square) Piece {
	return b.Squares[sq]
}

// Set places a piece on sq, overwriting any occupant.
func (b *Board) Set(sq Square, p Piece) {
	b.Squares[sq] = p
}

// Clear empties sq.
func (b *Board) Clear(sq Square) {
	b.Squares[sq] = Piece{}
}

// IsEmpty reports whether sq is unoccupied.
func (b *Board) IsEmpty(sq Square) bool {
	return b.Squares[sq].IsEmpty()
}

// IsColour reports whether sq holds a piece of the given colour.
// It is false for an empty square.
func (b *Board) IsColour(sq Square, colour Colour) bool {
	p := b.Squares[sq]
	return !p.IsEmpty() && p.colour == colour
}

// FindKing returns the square of the given colour's king.
func (b *Board) FindKing(colour Colour) (Square, bool) {
	for i := range b.Squares {
		if b.Squares[i].Is(colour, King) {
			return Square(i), true
		}
	}
	return NoSquare, false
}

// Count returns the number of pieces of the given colour and kind.
func (b *Board) Count(colour Colour, kind PieceKind) int {
	n := 0
	for i := range b.Squares {
		if b.Squares[i].Is(colour, kind) {
			n++
		}
	}
	return n
}

// Occupied returns the squares holding pieces of the given colour.
func (b *Board) Occupied(colour Colour) SquareSet {
	var s SquareSet
	for i := range b.Squares {
		if b.IsColour(Square(i), colour) {
			s = s.Add(Square(i))
		}
	}
	return s
}

// ClearEnPassant resets the en passant flag of every pawn of the given colour.
func (b *Board) ClearEnPassant(colour Colour) {
	for i := range b.Squares {
		p := &b.Squares[i]
		if p.Is(colour, Pawn) {
			p.enPassant = false
		}
	}
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// BoardState captures all mutable board state for save/restore operations.
// Move simulation saves the state, applies a candidate move and restores it.
type BoardState struct {
	Squares [NumSquares]Piece
}

// SaveState captures the current board state for later restoration.
func (b *Board) SaveState() BoardState {
	return BoardState{Squares: b.Squares}
}

// RestoreState restores the board to a previously saved state.
func (b *Board) RestoreState(s BoardState) {
	b.Squares = s.Squares
}

// String returns the rank-major debug dump of the board: one row per rank
// starting with Black's back row, '-' for empty squares, uppercase for White.
// It is a debugging aid, not an interchange format.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(NumSquares + BoardSize)
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			sb.WriteByte(b.Squares[NewSquare(file, rank)].Letter())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
