package chess

import (
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Piece is a piece standing on the board. It is a plain value: copying a
// Piece never aliases the original, which lets move simulation work on
// copies of the board.
//
// The zero Piece is the empty square.
type Piece struct {
	kind      PieceKind
	colour    Colour
	moved     bool
	enPassant bool // pawns only
}

// NewPiece creates an unmoved piece.
func NewPiece(colour Colour, kind PieceKind) Piece {
	return Piece{kind: kind, colour: colour}
}

// W creates a white piece.
func W(kind PieceKind) Piece {
	return NewPiece(White, kind)
}

// B creates a black piece.
func B(kind PieceKind) Piece {
	return NewPiece(Black, kind)
}

// Kind returns the piece type.
func (p Piece) Kind() PieceKind {
	return p.kind
}

// Colour returns the piece colour.
func (p Piece) Colour() Colour {
	return p.colour
}

// IsEmpty reports whether p is the empty square.
func (p Piece) IsEmpty() bool {
	return p.kind == NoKind
}

// Is reports whether p is a piece of the given colour and kind.
func (p Piece) Is(colour Colour, kind PieceKind) bool {
	return p.kind == kind && p.colour == colour
}

// HasMoved reports whether the piece has moved since the game started.
func (p Piece) HasMoved() bool {
	return p.moved
}

// SetMoved records that the piece has moved.
func (p *Piece) SetMoved() {
	p.moved = true
}

// EnPassant reports whether this pawn advanced two squares on the previous
// ply and may be captured en passant. It panics if p is not a pawn.
func (p Piece) EnPassant() bool {
	p.mustBePawn("en passant")
	return p.enPassant
}

// SetEnPassant sets the en passant flag of a pawn. It panics if p is not a pawn.
func (p *Piece) SetEnPassant(eligible bool) {
	p.mustBePawn("set en passant")
	p.enPassant = eligible
}

// Promote turns a pawn into the given kind in place.
func (p *Piece) Promote(kind PieceKind) error {
	if p.kind != Pawn {
		return errors.Wrapf(errors.ErrNotPawn, "promote %s", p.kind)
	}
	if !kind.CanPromoteTo() {
		return errors.Wrapf(errors.ErrInvalidPromotion, "promote to %s", kind)
	}
	p.kind = kind
	p.enPassant = false
	return nil
}

// Letter returns the layout letter of the piece: uppercase for White,
// lowercase for Black and '-' for the empty square.
func (p Piece) Letter() byte {
	c := p.kind.Letter()
	if p.colour == Black && p.kind != NoKind {
		c += 'a' - 'A'
	}
	return c
}

// SpriteKey returns the colour and kind key ("wq", "bp") used by
// presentation layers to look up a piece image.
func (p Piece) SpriteKey() string {
	if p.IsEmpty() {
		return ""
	}
	k := p.kind.Letter() + ('a' - 'A')
	return string([]byte{p.colour.Letter(), k})
}

// String returns the layout letter of the piece.
func (p Piece) String() string {
	return string(p.Letter())
}

func (p Piece) mustBePawn(op string) {
	if p.kind != Pawn {
		panic(&errors.InvariantError{Err: errors.ErrNotPawn, Op: op})
	}
}
