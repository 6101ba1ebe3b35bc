package engine

import (
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

// Board setups shared by the tests, one row per rank from rank 8 down.
var (
	// Castling rights on both wings for both sides.
	castlingLayout = []string{
		"r---k--r",
		"pppppppp",
		"--------",
		"--------",
		"--------",
		"--------",
		"PPPPPPPP",
		"R---K--R",
	}

	// The "Kiwipete" perft position.
	kiwipeteLayout = []string{
		"r---k--r",
		"p-ppqpb-",
		"bn--pnp-",
		"---PN---",
		"-p--P---",
		"--N--Q-p",
		"PPPBBPPP",
		"R---K--R",
	}

	// Rook and pawn endgame rich in en passant and pin cases.
	endgameLayout = []string{
		"--------",
		"--p-----",
		"---p----",
		"KP-----r",
		"-R---p-k",
		"--------",
		"----P-P-",
		"--------",
	}

	// Promotions and captures on b2, White castled by hand.
	promotionLayout = []string{
		"r---k--r",
		"Pppp-ppp",
		"-b---nbN",
		"nP------",
		"BBP-P---",
		"q----N--",
		"Pp-P--PP",
		"R--Q-RK-",
	}
)

// sq is shorthand for chess.MustParseSquare.
func sq(name string) chess.Square {
	return chess.MustParseSquare(name)
}

// newLayoutGame creates a game from layout rows, failing the test on error.
func newLayoutGame(t *testing.T, toMove chess.Colour, rows ...string) *Game {
	t.Helper()
	g, err := NewGameFromLayout(joinRows(rows), toMove)
	if err != nil {
		t.Fatalf("NewGameFromLayout() error: %v", err)
	}
	return g
}

// joinRows concatenates layout rows into a setup string.
func joinRows(rows []string) string {
	return strings.Join(rows, "")
}

// playMoves plays a sequence of coordinate moves, failing on the first
// illegal one.
func playMoves(t *testing.T, g *Game, moves ...string) {
	t.Helper()
	for _, text := range moves {
		m, err := ParseMove(text)
		testutil.AssertNoError(t, err, "ParseMove(%q)", text)
		if err := g.Play(m); err != nil {
			t.Fatalf("Play(%s) error: %v\n%s", text, err, g.board.String())
		}
	}
}
