package engine

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Move is a source and destination pair, plus the promotion choice for a
// pawn reaching the last rank (NoKind otherwise).
type Move struct {
	From      chess.Square
	To        chess.Square
	Promotion chess.PieceKind
}

// String returns the coordinate form of the move, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != chess.NoKind {
		s += strings.ToLower(string(m.Promotion.Letter()))
	}
	return s
}

// ParseMove parses the coordinate form produced by Move.String.
func ParseMove(text string) (Move, error) {
	text = strings.TrimSpace(text)
	if len(text) != 4 && len(text) != 5 {
		return Move{}, errors.Wrapf(errors.ErrIllegalMove, "move %q", text)
	}
	from, err := chess.ParseSquare(text[0:2])
	if err != nil {
		return Move{}, errors.Wrapf(err, "move %q", text)
	}
	to, err := chess.ParseSquare(text[2:4])
	if err != nil {
		return Move{}, errors.Wrapf(err, "move %q", text)
	}
	m := Move{From: from, To: to}
	if len(text) == 5 {
		m.Promotion = chess.KindFromLetter(text[4])
		if !m.Promotion.CanPromoteTo() {
			return Move{}, errors.Wrapf(errors.ErrInvalidPromotion, "move %q", text)
		}
	}
	return m, nil
}
