// render.go - Text board drawing for the terminal
package main

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
)

// Square backgrounds.
const (
	lightSquare     = color.BgWhite
	darkSquare      = color.BgCyan
	highlightSquare = color.BgGreen
	checkSquare     = color.BgRed
)

// renderer draws a board as eight text rows plus a file legend.
type renderer struct {
	colour bool
	flip   bool
}

// newRenderer builds a renderer for out from the display settings.
func newRenderer(display config.DisplayConfig, out io.Writer) renderer {
	return renderer{
		colour: useColour(display.Colour, out),
		flip:   display.Flip,
	}
}

// useColour resolves a colour mode. Auto colours only terminals, and only
// when NO_COLOR is unset.
func useColour(mode config.ColourMode, out io.Writer) bool {
	switch mode {
	case config.ColourAlways:
		return true
	case config.ColourNever:
		return false
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return os.Getenv("NO_COLOR") == "" && term.IsTerminal(int(f.Fd()))
}

// render returns the board drawing. Squares in highlight are marked, and
// check (when valid) is drawn as the square of a king in check.
func (r renderer) render(b *chess.Board, highlight chess.SquareSet, check chess.Square) string {
	var sb strings.Builder
	for row := 0; row < chess.BoardSize; row++ {
		rank := row
		if r.flip {
			rank = chess.BoardSize - 1 - row
		}
		sb.WriteByte(byte('8' - rank))
		sb.WriteByte(' ')
		for col := 0; col < chess.BoardSize; col++ {
			file := col
			if r.flip {
				file = chess.BoardSize - 1 - col
			}
			sq := chess.NewSquare(file, rank)
			sb.WriteString(r.cell(b.At(sq), sq, highlight.Has(sq), sq == check))
		}
		sb.WriteByte('\n')
	}

	sb.WriteString("  ")
	for col := 0; col < chess.BoardSize; col++ {
		file := col
		if r.flip {
			file = chess.BoardSize - 1 - col
		}
		sb.WriteByte(' ')
		sb.WriteByte(byte('a' + file))
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')
	return sb.String()
}

// cell draws one square three characters wide.
func (r renderer) cell(p chess.Piece, sq chess.Square, marked, inCheck bool) string {
	letter := "."
	if !p.IsEmpty() {
		letter = p.String()
	}

	if !r.colour {
		switch {
		case inCheck:
			return "(" + letter + ")"
		case marked:
			return "[" + letter + "]"
		}
		return " " + letter + " "
	}

	bg := lightSquare
	if (sq.File()+sq.Rank())%2 == 1 {
		bg = darkSquare
	}
	switch {
	case inCheck:
		bg = checkSquare
	case marked:
		bg = highlightSquare
	}

	fg := color.FgBlack
	if p.Colour() == chess.White && !p.IsEmpty() {
		fg = color.FgHiWhite
	}
	if p.IsEmpty() {
		letter = " "
	}

	c := color.New(bg, fg, color.Bold)
	c.EnableColor()
	return c.Sprint(" " + letter + " ")
}
