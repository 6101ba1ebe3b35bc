package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

// promotionRaceLayout has a white pawn one step from promoting.
var promotionRaceLayout = []string{
	"--------",
	"P-------",
	"--------",
	"-------k",
	"--------",
	"--------",
	"--------",
	"----K---",
}

func TestNewGame(t *testing.T) {
	g := NewGame()

	testutil.AssertEqual(t, g.Status(), Status{Turn: chess.White, State: Normal})
	if got := len(g.LegalMoves()); got != 20 {
		t.Errorf("len(LegalMoves()) = %d; want 20", got)
	}
	if _, ok := g.Selected(); ok {
		t.Errorf("Selected() reports a selection in a new game")
	}
	want := chess.NewInitialBoard()
	got := g.Board()
	testutil.AssertBoardEqual(t, &got, want)
}

func TestNewGameFromLayout_Errors(t *testing.T) {
	tests := []struct {
		name   string
		layout string
	}{
		{"too short", "rnbqkbnr"},
		{"no white king", "----k---" + "--------" + "--------" + "--------" + "--------" + "--------" + "--------" + "--------"},
		{"unknown letter", "----k---" + "--------" + "--------" + "--------" + "--------" + "--------" + "--------" + "----K--x"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewGameFromLayout(tt.layout, chess.White)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidLayout)
		})
	}
}

func TestAttemptMove(t *testing.T) {
	tests := []struct {
		name     string
		from, to chess.Square
		want     MoveOutcome
		turn     chess.Colour
	}{
		{"legal pawn move", sq("e2"), sq("e4"), Moved, chess.Black},
		{"legal knight move", sq("g1"), sq("f3"), Moved, chess.Black},
		{"illegal destination", sq("e2"), sq("e5"), Rejected, chess.White},
		{"opponent piece", sq("e7"), sq("e5"), Rejected, chess.White},
		{"empty source", sq("e4"), sq("e5"), Rejected, chess.White},
		{"source off the board", chess.Square(64), sq("e4"), Rejected, chess.White},
		{"negative destination", sq("e2"), chess.Square(-9), Rejected, chess.White},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := NewGame()
			before := g.Board()
			if got := g.AttemptMove(tt.from, tt.to); got != tt.want {
				t.Errorf("AttemptMove(%s, %s) = %s; want %s", tt.from, tt.to, got, tt.want)
			}
			if got := g.Turn(); got != tt.turn {
				t.Errorf("Turn() = %s; want %s", got, tt.turn)
			}
			if tt.want == Rejected {
				after := g.Board()
				testutil.AssertBoardEqual(t, &after, &before)
			}
		})
	}
}

func TestClickSelectsAndMoves(t *testing.T) {
	g := NewGame()

	if got := g.Click(sq("e2")); got != Rejected {
		t.Fatalf("Click(e2) = %s; want Rejected", got)
	}
	if from, ok := g.Selected(); !ok || from != sq("e2") {
		t.Fatalf("Selected() = %s, %v; want e2, true", from, ok)
	}

	// Clicking another own piece moves the selection.
	g.Click(sq("g1"))
	if from, _ := g.Selected(); from != sq("g1") {
		t.Fatalf("Selected() = %s; want g1", from)
	}

	if got := g.Click(sq("f3")); got != Moved {
		t.Fatalf("Click(f3) = %s; want Moved", got)
	}
	if _, ok := g.Selected(); ok {
		t.Errorf("Selected() still set after a move")
	}

	// White pieces cannot be selected on Black's turn.
	if g.Select(sq("f3")) {
		t.Errorf("Select(f3) = true on Black's turn")
	}
	// Neither can a piece without moves.
	if g.Select(sq("e8")) {
		t.Errorf("Select(e8) = true for a boxed-in king")
	}
}

func TestEnPassantWindow(t *testing.T) {
	g := NewGame()
	playMoves(t, g, "e2e4", "a7a6", "e4e5", "d7d5")

	testutil.AssertSquares(t, g.LegalDestinations(sq("e5")), "e6", "d6")

	// One quiet move each and the capture is gone.
	playMoves(t, g, "h2h3", "h7h6")
	testutil.AssertSquares(t, g.LegalDestinations(sq("e5")), "e6")
}

func TestEnPassantCapture(t *testing.T) {
	g := NewGame()
	playMoves(t, g, "e2e4", "a7a6", "e4e5", "d7d5", "e5d6")

	board := g.Board()
	if !board.IsEmpty(sq("d5")) {
		t.Errorf("d5 still occupied after en passant:\n%s", board.String())
	}
	if got := board.Count(chess.Black, chess.Pawn); got != 7 {
		t.Errorf("Count(Black, Pawn) = %d; want 7", got)
	}
}

func TestPromotion(t *testing.T) {
	g := newLayoutGame(t, chess.White, promotionRaceLayout...)

	var pawnMoves []string
	for _, m := range g.LegalMoves() {
		if m.From == sq("a7") {
			pawnMoves = append(pawnMoves, m.String())
		}
	}
	testutil.AssertEqual(t, pawnMoves, []string{"a7a8q", "a7a8r", "a7a8b", "a7a8n"})

	if got := g.AttemptMove(sq("a7"), sq("a8")); got != RequiresPromotionChoice {
		t.Fatalf("AttemptMove(a7, a8) = %s; want RequiresPromotionChoice", got)
	}

	want := Status{
		Turn:      chess.White,
		State:     PendingPromotion,
		Promotion: &Promotion{Square: sq("a8"), Colour: chess.White},
	}
	testutil.AssertEqual(t, g.Status(), want)

	// Nothing else moves while the choice is open.
	if got := g.AttemptMove(sq("e1"), sq("e2")); got != Rejected {
		t.Errorf("AttemptMove(e1, e2) while promoting = %s; want Rejected", got)
	}
	if got := g.LegalDestinations(sq("e1")); !got.IsEmpty() {
		t.Errorf("LegalDestinations(e1) while promoting = %s; want empty", got)
	}

	for _, kind := range []chess.PieceKind{chess.King, chess.Pawn, chess.NoKind} {
		err := g.ResolvePromotion(kind)
		testutil.AssertErrorIs(t, err, errors.ErrInvalidPromotion, "ResolvePromotion(%s)", kind)
	}
	testutil.AssertEqual(t, g.Status(), want)

	testutil.AssertNoError(t, g.ResolvePromotion(chess.Knight))
	if p := g.board.At(sq("a8")); !p.Is(chess.White, chess.Knight) {
		t.Errorf("a8 = %v; want white knight", p)
	}
	testutil.AssertEqual(t, g.Status(), Status{Turn: chess.Black, State: Normal})

	err := g.ResolvePromotion(chess.Queen)
	testutil.AssertErrorIs(t, err, errors.ErrNoPendingPromotion)
}

func TestPlay_PromotionWithChoice(t *testing.T) {
	g := newLayoutGame(t, chess.White, promotionRaceLayout...)
	playMoves(t, g, "a7a8q")

	if p := g.board.At(sq("a8")); !p.Is(chess.White, chess.Queen) {
		t.Errorf("a8 = %v; want white queen", p)
	}
	if got := g.Turn(); got != chess.Black {
		t.Errorf("Turn() = %s; want Black", got)
	}
}

func TestPlay_PromotionWithoutChoice(t *testing.T) {
	g := newLayoutGame(t, chess.White, promotionRaceLayout...)
	testutil.AssertNoError(t, g.Play(Move{From: sq("a7"), To: sq("a8")}))
	if got := g.Status().State; got != PendingPromotion {
		t.Errorf("Status().State = %s; want Promotion", got)
	}
}

func TestPlay_Illegal(t *testing.T) {
	g := NewGame()
	err := g.Play(Move{From: sq("e2"), To: sq("e5")})
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
	testutil.AssertContains(t, err.Error(), "e2e5")
}

func TestCheckAndCheckmate(t *testing.T) {
	tests := []struct {
		name   string
		moves  []string
		status Status
		legal  []string
	}{
		{
			name:   "check with a single block",
			moves:  []string{"e2e4", "f7f6", "d1h5"},
			status: Status{Turn: chess.Black, State: Check},
			legal:  []string{"g7g6"},
		},
		{
			name:   "fool's mate",
			moves:  []string{"f2f3", "e7e5", "g2g4", "d8h4"},
			status: Status{Turn: chess.White, State: Checkmate},
		},
		{
			name:   "scholar's mate",
			moves:  []string{"e2e4", "e7e5", "f1c4", "b8c6", "d1h5", "g8f6", "h5f7"},
			status: Status{Turn: chess.Black, State: Checkmate},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := NewGame()
			playMoves(t, g, tt.moves...)
			testutil.AssertEqual(t, g.Status(), tt.status)

			var legal []string
			for _, m := range g.LegalMoves() {
				legal = append(legal, m.String())
			}
			testutil.AssertEqual(t, legal, tt.legal)
		})
	}
}

func TestTerminalStatesRejectInput(t *testing.T) {
	tests := []struct {
		name   string
		layout []string
		state  TurnState
	}{
		{
			name: "checkmate",
			layout: []string{
				"R------k",
				"------pp",
				"--------",
				"--------",
				"--------",
				"--------",
				"--------",
				"----K---",
			},
			state: Checkmate,
		},
		{
			name: "stalemate",
			layout: []string{
				"k-------",
				"--Q-----",
				"--------",
				"--------",
				"--------",
				"--------",
				"--------",
				"----K---",
			},
			state: Stalemate,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := newLayoutGame(t, chess.Black, tt.layout...)
			if got := g.Status().State; got != tt.state {
				t.Fatalf("Status().State = %s; want %s", got, tt.state)
			}
			if !g.Status().State.IsTerminal() {
				t.Errorf("IsTerminal() = false; want true")
			}
			if got := g.AttemptMove(sq("h7"), sq("h6")); got != Rejected {
				t.Errorf("AttemptMove() = %s; want Rejected", got)
			}
			if got := g.LegalMoves(); got != nil {
				t.Errorf("LegalMoves() = %v; want nil", got)
			}
			testutil.AssertErrorIs(t, g.ResolvePromotion(chess.Queen), errors.ErrNoPendingPromotion)
		})
	}
}

func TestCheckmateSettledWithoutStatusQuery(t *testing.T) {
	// AttemptMove alone must see the mate: it builds the move table, finds
	// it empty and settles the state before rejecting.
	g := NewGame()
	playMoves(t, g, "f2f3", "e7e5", "g2g4", "d8h4")
	if got := g.AttemptMove(sq("e1"), sq("f2")); got != Rejected {
		t.Errorf("AttemptMove(e1, f2) = %s; want Rejected", got)
	}
	if got := g.state; got != Checkmate {
		t.Errorf("state = %s; want Checkmate", got)
	}
}

func TestClone(t *testing.T) {
	g := NewGame()
	playMoves(t, g, "e2e4")

	c := g.Clone()
	playMoves(t, c, "e7e5")

	if g.Turn() != chess.Black {
		t.Errorf("original Turn() = %s; want Black", g.Turn())
	}
	if !g.board.IsEmpty(sq("e5")) {
		t.Errorf("move on the clone changed the original board")
	}
}
