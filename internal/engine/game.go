package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Game is the turn state machine of one game. It owns the board and the
// legal move table of the side to move. A Game holds no references, so
// copying it (see Clone) yields a fully independent game; a single Game
// must not be used from several goroutines at once.
type Game struct {
	board     chess.Board
	turn      chess.Colour
	state     TurnState
	promotion Promotion
	selected  chess.Square

	// Legal destinations per source square for the side to move. Valid only
	// while computed is set; cleared whenever the board or turn changes.
	moves    [chess.NumSquares]chess.SquareSet
	computed bool
}

// NewGame creates a game in the standard starting position, White to move.
func NewGame() *Game {
	return newGame(chess.NewInitialBoard(), chess.White)
}

// NewGameFromLayout creates a game from a board setup string with the given
// side to move. The layout must hold exactly one king of each colour.
func NewGameFromLayout(layout string, toMove chess.Colour) (*Game, error) {
	board, err := chess.ParseLayout(layout)
	if err != nil {
		return nil, err
	}
	return newGame(board, toMove), nil
}

func newGame(board *chess.Board, toMove chess.Colour) *Game {
	g := &Game{
		board:    *board,
		turn:     toMove,
		selected: chess.NoSquare,
	}
	if IsInCheck(&g.board, g.turn) {
		g.state = Check
	}
	return g
}

// Clone returns an independent copy of the game.
func (g *Game) Clone() *Game {
	c := *g
	return &c
}

// Board returns a copy of the current board.
func (g *Game) Board() chess.Board {
	return g.board
}

// Turn returns the colour to move.
func (g *Game) Turn() chess.Colour {
	return g.turn
}

// Status returns the side to move and its state, computing the legal move
// table first so checkmate and stalemate are always reported.
func (g *Game) Status() Status {
	g.ensureMoves()
	s := Status{Turn: g.turn, State: g.state}
	if g.state == PendingPromotion {
		p := g.promotion
		s.Promotion = &p
	}
	return s
}

// LegalDestinations returns the squares the piece on sq may move to. It is
// empty when sq is off the board or empty, holds a piece of the side not to
// move, or the game is over or waiting for a promotion choice.
func (g *Game) LegalDestinations(sq chess.Square) chess.SquareSet {
	if !sq.Valid() {
		return 0
	}
	g.ensureMoves()
	if !g.accepting() {
		return 0
	}
	return g.moves[sq]
}

// LegalMoves lists every legal move of the side to move. A pawn move onto
// the last rank is listed once per promotion choice.
func (g *Game) LegalMoves() []Move {
	g.ensureMoves()
	if !g.accepting() {
		return nil
	}
	var out []Move
	for i := range g.moves {
		from := chess.Square(i)
		piece := g.board.At(from)
		for _, to := range g.moves[i].Squares() {
			if isPromotion(piece, to) {
				for _, kind := range chess.PromotionKinds {
					out = append(out, Move{From: from, To: to, Promotion: kind})
				}
				continue
			}
			out = append(out, Move{From: from, To: to})
		}
	}
	return out
}

// Select marks sq as the selected square when it holds a movable piece of
// the side to move, and clears the selection otherwise.
func (g *Game) Select(sq chess.Square) bool {
	g.selected = chess.NoSquare
	if g.LegalDestinations(sq).IsEmpty() {
		return false
	}
	g.selected = sq
	return true
}

// Selected returns the selected square, if any.
func (g *Game) Selected() (chess.Square, bool) {
	return g.selected, g.selected != chess.NoSquare
}

// Click handles a click on sq: a legal destination of the selected piece
// is played, any other square becomes the new selection.
func (g *Game) Click(sq chess.Square) MoveOutcome {
	if from, ok := g.Selected(); ok && g.LegalDestinations(from).Has(sq) {
		return g.AttemptMove(from, sq)
	}
	g.Select(sq)
	return Rejected
}

// AttemptMove plays from→to if it is in the legal move table. Moves from
// or to squares off the board, illegal moves and moves while the game is
// over or waiting for a promotion choice are rejected without effect
// beyond clearing an out-of-bounds selection.
func (g *Game) AttemptMove(from, to chess.Square) MoveOutcome {
	if !from.Valid() || !to.Valid() {
		g.selected = chess.NoSquare
		return Rejected
	}
	if !g.LegalDestinations(from).Has(to) {
		return Rejected
	}

	piece := g.board.At(from)
	Execute(&g.board, from, to)
	g.invalidate()
	g.selected = chess.NoSquare

	if isPromotion(piece, to) {
		g.state = PendingPromotion
		g.promotion = Promotion{Square: to, Colour: piece.Colour()}
		return RequiresPromotionChoice
	}

	g.changeTurn()
	return Moved
}

// ResolvePromotion promotes the pending pawn to kind and hands the turn to
// the opponent. Outside the promotion state, or for a King or Pawn choice,
// it returns an error and leaves the game unchanged.
func (g *Game) ResolvePromotion(kind chess.PieceKind) error {
	if g.state != PendingPromotion {
		return errors.Wrapf(errors.ErrNoPendingPromotion, "promote to %s", kind)
	}
	if !kind.CanPromoteTo() {
		return errors.Wrapf(errors.ErrInvalidPromotion, "promote to %s", kind)
	}

	sq := g.promotion.Square
	pawn := g.board.At(sq)
	if !pawn.Is(g.promotion.Colour, chess.Pawn) {
		panic(&errors.InvariantError{
			Err:    errors.ErrNotPawn,
			Op:     "resolve promotion",
			Square: sq.String(),
			Board:  g.board.String(),
		})
	}
	if err := pawn.Promote(kind); err != nil {
		return err
	}
	g.board.Set(sq, pawn)
	g.promotion = Promotion{}

	g.changeTurn()
	return nil
}

// Play applies a move given as a Move value. A promotion move without a
// promotion kind leaves the game waiting for ResolvePromotion.
func (g *Game) Play(m Move) error {
	switch g.AttemptMove(m.From, m.To) {
	case Rejected:
		return errors.Wrapf(errors.ErrIllegalMove, "move %s", m)
	case RequiresPromotionChoice:
		if m.Promotion == chess.NoKind {
			return nil
		}
		return g.ResolvePromotion(m.Promotion)
	}
	return nil
}

// accepting reports whether the side to move may play.
func (g *Game) accepting() bool {
	return g.state != PendingPromotion && !g.state.IsTerminal()
}

// changeTurn passes the move to the opponent. The opponent's pawns lose
// their en passant eligibility: it lasted for exactly the ply just played.
func (g *Game) changeTurn() {
	next := g.turn.Opposite()
	g.board.ClearEnPassant(next)
	g.turn = next
	g.selected = chess.NoSquare
	g.invalidate()

	if IsInCheck(&g.board, g.turn) {
		g.state = Check
	} else {
		g.state = Normal
	}
}

func (g *Game) invalidate() {
	g.moves = [chess.NumSquares]chess.SquareSet{}
	g.computed = false
}

// ensureMoves builds the legal move table on the turn's first query and
// settles checkmate or stalemate when the side to move has no move.
func (g *Game) ensureMoves() {
	if g.computed || !g.accepting() {
		return
	}

	movable := false
	for i := range g.board.Squares {
		sq := chess.Square(i)
		if !g.board.IsColour(sq, g.turn) {
			continue
		}
		g.moves[i] = LegalMoves(&g.board, sq)
		movable = movable || !g.moves[i].IsEmpty()
	}
	g.computed = true

	if !movable {
		if g.state == Check {
			g.state = Checkmate
		} else {
			g.state = Stalemate
		}
	}
}
