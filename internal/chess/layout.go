package chess

import (
	"fmt"
	"unicode"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialLayout is the setup string for the standard starting position:
// eight rows of piece letters from Black's back row down to White's,
// '-' for an empty square, uppercase for White.
const InitialLayout = "rnbqkbnr" +
	"pppppppp" +
	"--------" +
	"--------" +
	"--------" +
	"--------" +
	"PPPPPPPP" +
	"RNBQKBNR"

// ParseLayout builds a board from a setup string. Whitespace is ignored so
// rows may be separated by newlines or spaces. Pieces standing off their
// starting squares are marked as moved, so a layout never grants castling
// or a double pawn step that the position could not have.
func ParseLayout(layout string) (*Board, error) {
	b := NewBoard()
	idx := 0
	for i := 0; i < len(layout); i++ {
		c := layout[i]
		if unicode.IsSpace(rune(c)) {
			continue
		}
		if idx >= NumSquares {
			return nil, &errors.LayoutError{
				Err:   fmt.Errorf("more than %d squares: %w", NumSquares, errors.ErrInvalidLayout),
				Index: idx,
				Char:  c,
			}
		}
		if c != '-' {
			kind := KindFromLetter(c)
			if kind == NoKind {
				return nil, &errors.LayoutError{Err: errors.ErrInvalidLayout, Index: idx, Char: c}
			}
			colour := White
			if unicode.IsLower(rune(c)) {
				colour = Black
			}
			sq := Square(idx)
			if kind == Pawn && (sq.Rank() == 0 || sq.Rank() == BoardSize-1) {
				return nil, &errors.LayoutError{
					Err:   fmt.Errorf("pawn on back rank: %w", errors.ErrInvalidLayout),
					Index: idx,
					Char:  c,
				}
			}
			p := NewPiece(colour, kind)
			if !onHomeSquare(p, sq) {
				p.SetMoved()
			}
			b.Set(sq, p)
		}
		idx++
	}
	if idx != NumSquares {
		return nil, &errors.LayoutError{
			Err:   fmt.Errorf("got %d squares, want %d: %w", idx, NumSquares, errors.ErrInvalidLayout),
			Index: -1,
		}
	}
	for _, colour := range []Colour{White, Black} {
		if n := b.Count(colour, King); n != 1 {
			return nil, &errors.LayoutError{
				Err:   fmt.Errorf("%s has %d kings, want 1: %w", colour, n, errors.ErrInvalidLayout),
				Index: -1,
			}
		}
	}
	return b, nil
}

// MustParseLayout is like ParseLayout but panics on error.
func MustParseLayout(layout string) *Board {
	b, err := ParseLayout(layout)
	if err != nil {
		panic(err)
	}
	return b
}

// onHomeSquare reports whether p stands where it could stand unmoved.
// Only pawns, kings and rooks carry moved-dependent rights.
func onHomeSquare(p Piece, sq Square) bool {
	back := p.colour.BackRank()
	switch p.kind {
	case Pawn:
		return sq.Rank() == p.colour.PawnRank()
	case King:
		return sq.Rank() == back && sq.File() == KingFile
	case Rook:
		return sq.Rank() == back && (sq.File() == 0 || sq.File() == BoardSize-1)
	}
	return true
}

// KingFile is the file both kings start on.
const KingFile = 4
