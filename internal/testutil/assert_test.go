package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Failure paths cannot be observed without a fake *testing.T, so these
// tests cover the passing cases and the message helper.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "e4", "e4")
	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3})
	AssertEqualf(t, 42, 42, "value for %s", "x")
}

func TestAssertErrorIs_Success(t *testing.T) {
	sentinel := errors.New("sentinel")
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", sentinel), sentinel)
	AssertNoError(t, nil, "no error for %s", "nil")
}

func TestAssertContains_Success(t *testing.T) {
	AssertContains(t, "hello world", "world")
	AssertContains(t, "test", "")
}

func TestAssertPanics(t *testing.T) {
	got := AssertPanics(t, func() { panic("boom") })
	if got != "boom" {
		t.Errorf("AssertPanics() = %v; want boom", got)
	}
}

func TestPrefix(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"plain string", []interface{}{"setup"}, "setup: "},
		{"format", []interface{}{"move %d", 3}, "move 3: "},
		{"non-string", []interface{}{42}, "42: "},
		{"empty string", []interface{}{""}, ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := prefix(tt.args...); got != tt.want {
				t.Errorf("prefix() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestMustLayout(t *testing.T) {
	b := MustLayout(t, chess.InitialLayout)
	AssertBoardEqual(t, b, chess.NewInitialBoard())
}

func TestSquares(t *testing.T) {
	got := Squares(t, "e4", "e3")
	want := chess.NewSquareSet(chess.MustParseSquare("e3"), chess.MustParseSquare("e4"))
	if got != want {
		t.Errorf("Squares() = %s; want %s", got, want)
	}
	AssertSquares(t, got, "e3", "e4")
}
