// play.go - Interactive two-player session on a text board
package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

const playHelp = `Commands:
  e2e4, e7e8q    play a move (the promotion letter is optional)
  click <sq>     select a piece, or move the selected piece to <sq>
  moves [sq]     list legal moves, of one piece when sq is given
  promote <q|r|b|n>
                 choose the piece for a pawn waiting on the last rank
  board          redraw the board
  status         show whose turn it is
  help           show this text
  quit           leave
`

// session is one interactive game.
type session struct {
	game *engine.Game
	out  io.Writer
	view renderer
}

// runPlay reads commands from in until quit, end of input or the end of
// the game. Rejected input is reported and the session continues.
func runPlay(game *engine.Game, in io.Reader, out io.Writer, view renderer) error {
	s := &session{game: game, out: out, view: view}
	s.show(0)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		quit, err := s.handle(line)
		if err != nil {
			slog.Debug("rejected input", "input", line, "err", err)
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		if quit || s.game.Status().State.IsTerminal() {
			return nil
		}
	}
}

// handle runs one command line and reports whether the session should end.
func (s *session) handle(line string) (bool, error) {
	fields := strings.Fields(line)
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "quit", "exit":
		return true, nil
	case "help":
		fmt.Fprint(s.out, playHelp)
	case "board":
		s.show(0)
	case "status":
		fmt.Fprintln(s.out, statusLine(s.game.Status()))
	case "moves":
		return false, s.listMoves(args)
	case "click":
		return false, s.click(args)
	case "promote":
		return false, s.promote(args)
	default:
		if len(fields) != 1 {
			return false, fmt.Errorf("unknown command %q", cmd)
		}
		m, err := engine.ParseMove(cmd)
		if err != nil {
			return false, err
		}
		if err := s.game.Play(m); err != nil {
			return false, err
		}
		slog.Debug("move played", "move", m.String())
		s.show(0)
	}
	return false, nil
}

func (s *session) listMoves(args []string) error {
	if len(args) == 0 {
		moves := s.game.LegalMoves()
		names := make([]string, len(moves))
		for i, m := range moves {
			names[i] = m.String()
		}
		fmt.Fprintf(s.out, "%d moves: %s\n", len(moves), strings.Join(names, " "))
		return nil
	}

	sq, err := chess.ParseSquare(args[0])
	if err != nil {
		return err
	}
	dests := s.game.LegalDestinations(sq)
	s.show(dests)
	fmt.Fprintf(s.out, "%s: %s\n", sq, dests)
	return nil
}

func (s *session) click(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("click needs one square")
	}
	sq, err := chess.ParseSquare(args[0])
	if err != nil {
		return err
	}

	outcome := s.game.Click(sq)
	slog.Debug("click", "square", sq.String(), "outcome", outcome.String())
	if from, ok := s.game.Selected(); ok {
		s.show(s.game.LegalDestinations(from))
		return nil
	}
	if outcome == engine.Rejected {
		return errors.Wrapf(errors.ErrIllegalMove, "nothing to select on %s", sq)
	}
	s.show(0)
	return nil
}

func (s *session) promote(args []string) error {
	if len(args) != 1 || len(args[0]) != 1 {
		return errors.Wrap(errors.ErrInvalidPromotion, "promote needs one of q, r, b, n")
	}
	if err := s.game.ResolvePromotion(chess.KindFromLetter(args[0][0])); err != nil {
		return err
	}
	s.show(0)
	return nil
}

// show draws the board with highlight marked, followed by the status line.
func (s *session) show(highlight chess.SquareSet) {
	board := s.game.Board()
	st := s.game.Status()

	check := chess.NoSquare
	if st.State == engine.Check || st.State == engine.Checkmate {
		if king, ok := board.FindKing(st.Turn); ok {
			check = king
		}
	}
	fmt.Fprint(s.out, s.view.render(&board, highlight, check))
	fmt.Fprintln(s.out, statusLine(st))
}

// statusLine describes the side to move and the state of its turn.
func statusLine(st engine.Status) string {
	switch st.State {
	case engine.Check:
		return fmt.Sprintf("%s to move, in check", st.Turn)
	case engine.Checkmate:
		return fmt.Sprintf("Checkmate, %s wins", st.Turn.Opposite())
	case engine.Stalemate:
		return "Stalemate, draw"
	case engine.PendingPromotion:
		return fmt.Sprintf("%s to choose a promotion on %s (q, r, b, n)", st.Promotion.Colour, st.Promotion.Square)
	}
	return fmt.Sprintf("%s to move", st.Turn)
}
