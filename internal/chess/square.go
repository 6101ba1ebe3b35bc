package chess

import (
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Square is a flat board index, rank*BoardSize+file. Rank 0 is Black's back
// row, so index 0 is a8 and index 63 is h1.
type Square int

// NoSquare marks the absence of a square.
const NoSquare Square = -1

// InBounds reports whether the signed file and rank lie on the board.
func InBounds(file, rank int) bool {
	return file >= 0 && file < BoardSize && rank >= 0 && rank < BoardSize
}

// NewSquare converts a file and rank to a square. Callers must check
// InBounds first.
func NewSquare(file, rank int) Square {
	return Square(rank*BoardSize + file)
}

// SquareAt converts a signed file and rank to a square, reporting false
// when the coordinates are off the board.
func SquareAt(file, rank int) (Square, bool) {
	if !InBounds(file, rank) {
		return NoSquare, false
	}
	return NewSquare(file, rank), true
}

// File returns the file (column) of the square, 0 = a.
func (s Square) File() int {
	return int(s) % BoardSize
}

// Rank returns the rank index of the square, 0 = Black's back row.
func (s Square) Rank() int {
	return int(s) / BoardSize
}

// Valid reports whether s addresses a board square.
func (s Square) Valid() bool {
	return s >= 0 && s < NumSquares
}

// Offset returns the square displaced by (df, dr), reporting false when the
// result leaves the board.
func (s Square) Offset(df, dr int) (Square, bool) {
	return SquareAt(s.File()+df, s.Rank()+dr)
}

// String returns the algebraic name of the square ("e4").
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + s.File()), byte('0' + BoardSize - s.Rank())})
}

// ParseSquare parses an algebraic square name such as "e4".
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return NoSquare, errors.Wrapf(errors.ErrInvalidSquare, "square %q", name)
	}
	file := int(name[0]) - 'a'
	if name[0] >= 'A' && name[0] <= 'H' {
		file = int(name[0]) - 'A'
	}
	rank := BoardSize - (int(name[1]) - '0')
	sq, ok := SquareAt(file, rank)
	if !ok {
		return NoSquare, errors.Wrapf(errors.ErrInvalidSquare, "square %q", name)
	}
	return sq, nil
}

// MustParseSquare is like ParseSquare but panics on error.
// It is intended for tests and constant tables.
func MustParseSquare(name string) Square {
	sq, err := ParseSquare(name)
	if err != nil {
		panic(err)
	}
	return sq
}
