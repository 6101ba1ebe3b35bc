package testutil

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// PieceComparer lets cmp look inside chess.Piece values.
var PieceComparer = cmp.AllowUnexported(chess.Piece{})

// MustLayout parses a board setup string, failing the test on error.
// Rows may be separated by spaces or newlines.
func MustLayout(t *testing.T, rows ...string) *chess.Board {
	t.Helper()
	layout := strings.Join(rows, "")
	b, err := chess.ParseLayout(layout)
	if err != nil {
		t.Fatalf("ParseLayout(%q) error: %v", layout, err)
	}
	return b
}

// Squares builds a square set from algebraic names.
func Squares(t *testing.T, names ...string) chess.SquareSet {
	t.Helper()
	var s chess.SquareSet
	for _, name := range names {
		sq, err := chess.ParseSquare(name)
		if err != nil {
			t.Fatalf("ParseSquare(%q) error: %v", name, err)
		}
		s = s.Add(sq)
	}
	return s
}

// AssertBoardEqual compares two boards square by square, including the
// moved and en passant flags of every piece.
func AssertBoardEqual(t *testing.T, got, want *chess.Board) {
	t.Helper()
	if diff := cmp.Diff(want, got, PieceComparer); diff != "" {
		t.Errorf("board mismatch (-want +got):\n%s\ngot:\n%s", diff, got)
	}
}

// AssertSquares compares a square set against the named squares and
// reports both sets by name on mismatch.
func AssertSquares(t *testing.T, got chess.SquareSet, want ...string) {
	t.Helper()
	if w := Squares(t, want...); got != w {
		t.Errorf("squares = %s, want %s", got, w)
	}
}
