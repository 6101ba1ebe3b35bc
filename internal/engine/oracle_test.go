package engine

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/dylhunn/dragontoothmg"
	nchess "github.com/notnil/chess"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

// referencePerft counts leaf nodes with dragontoothmg.
func referencePerft(b *dragontoothmg.Board, depth int) uint64 {
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += referencePerft(b, depth-1)
		unapply()
	}
	return nodes
}

func TestPerft_MatchesDragontooth(t *testing.T) {
	tests := []struct {
		name   string
		layout []string
		fen    string
		depth  int
	}{
		{"initial", []string{chess.InitialLayout}, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", 3},
		{"kiwipete", kiwipeteLayout, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 2},
		{"endgame", endgameLayout, "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 3},
		{"promotion", promotionLayout, "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 2},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := newLayoutGame(t, chess.White, tt.layout...)
			if got := gameFEN(g); got != tt.fen {
				t.Fatalf("gameFEN() = %q; want %q", got, tt.fen)
			}
			ref := dragontoothmg.ParseFen(tt.fen)
			for depth := 1; depth <= tt.depth; depth++ {
				want := referencePerft(&ref, depth)
				if got := Perft(g, depth); got != want {
					t.Errorf("Perft(%d) = %d; dragontoothmg = %d", depth, got, want)
				}
			}
		})
	}
}

// moveStrings returns the coordinate form of each move, sorted.
func moveStrings(moves []Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.String())
	}
	sort.Strings(out)
	return out
}

// TestRandomGamesMatchNotnil plays seeded random games and checks the
// legal move list, the board and the final state against notnil/chess
// after every ply. Every tenth ply the position also goes through a
// depth-2 perft against dragontoothmg.
func TestRandomGamesMatchNotnil(t *testing.T) {
	games, plies := 40, 300
	if testing.Short() {
		games = 5
	}
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < games; i++ {
		g := NewGame()
		ref := nchess.NewGame(nchess.UseNotation(nchess.UCINotation{}))
		var history []string

	plyLoop:
		for ply := 0; ply < plies; ply++ {
			if got, want := placementFEN(&g.board), ref.Position().Board().String(); got != want {
				t.Fatalf("game %d after %v: board = %s; want %s", i, history, got, want)
			}

			if ref.Outcome() != nchess.NoOutcome {
				state := g.Status().State
				switch ref.Method() {
				case nchess.Checkmate:
					if state != Checkmate {
						t.Fatalf("game %d after %v: state = %s; want Checkmate", i, history, state)
					}
				case nchess.Stalemate:
					if state != Stalemate {
						t.Fatalf("game %d after %v: state = %s; want Stalemate", i, history, state)
					}
				}
				break plyLoop
			}

			mine := moveStrings(g.LegalMoves())
			theirs := make([]string, 0, len(mine))
			byName := make(map[string]*nchess.Move)
			for _, m := range ref.ValidMoves() {
				theirs = append(theirs, m.String())
				byName[m.String()] = m
			}
			sort.Strings(theirs)
			testutil.AssertEqualf(t, mine, theirs, "game %d after %v", i, history)
			if t.Failed() || len(mine) == 0 {
				return
			}

			if ply%10 == 0 {
				fen := gameFEN(g)
				dt := dragontoothmg.ParseFen(fen)
				if got, want := Perft(g, 2), referencePerft(&dt, 2); got != want {
					t.Fatalf("Perft(2) at %s = %d; dragontoothmg = %d", fen, got, want)
				}
			}

			pick := mine[rng.Intn(len(mine))]
			history = append(history, pick)
			playMoves(t, g, pick)
			if err := ref.Move(byName[pick]); err != nil {
				t.Fatalf("notnil Move(%s) error: %v", pick, err)
			}
		}
	}
}
