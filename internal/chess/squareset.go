package chess

import (
	"math/bits"
	"strings"
)

// SquareSet is a set of squares, one bit per board index.
type SquareSet uint64

// NewSquareSet builds a set from the given squares.
func NewSquareSet(squares ...Square) SquareSet {
	var s SquareSet
	for _, sq := range squares {
		s = s.Add(sq)
	}
	return s
}

// Add returns the set with sq included.
func (s SquareSet) Add(sq Square) SquareSet {
	return s | 1<<uint(sq)
}

// Remove returns the set with sq excluded.
func (s SquareSet) Remove(sq Square) SquareSet {
	return s &^ (1 << uint(sq))
}

// Has reports whether sq is a member of the set.
func (s SquareSet) Has(sq Square) bool {
	if !sq.Valid() {
		return false
	}
	return s&(1<<uint(sq)) != 0
}

// Union returns the squares in either set.
func (s SquareSet) Union(o SquareSet) SquareSet {
	return s | o
}

// IsEmpty reports whether the set has no members.
func (s SquareSet) IsEmpty() bool {
	return s == 0
}

// Len returns the number of squares in the set.
func (s SquareSet) Len() int {
	return bits.OnesCount64(uint64(s))
}

// Squares returns the members in ascending index order.
func (s SquareSet) Squares() []Square {
	out := make([]Square, 0, s.Len())
	for rest := uint64(s); rest != 0; rest &= rest - 1 {
		out = append(out, Square(bits.TrailingZeros64(rest)))
	}
	return out
}

// String lists the members by name, e.g. "{e3 e4}".
func (s SquareSet) String() string {
	names := make([]string, 0, s.Len())
	for _, sq := range s.Squares() {
		names = append(names, sq.String())
	}
	return "{" + strings.Join(names, " ") + "}"
}
