package engine

// Perft counts the leaf nodes of the legal move tree of the given depth.
// Each promotion choice counts as a separate move. It is the standard
// correctness check for move generators.
func Perft(g *Game, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := g.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		child := g.Clone()
		child.mustPlay(m)
		nodes += Perft(child, depth-1)
	}
	return nodes
}

// DivideEntry is the perft count below one root move.
type DivideEntry struct {
	Move  Move
	Nodes uint64
}

// Divide runs Perft separately below every legal root move.
func Divide(g *Game, depth int) []DivideEntry {
	if depth <= 0 {
		return nil
	}
	moves := g.LegalMoves()
	entries := make([]DivideEntry, 0, len(moves))
	for _, m := range moves {
		entries = append(entries, DivideEntry{Move: m, Nodes: PerftAfter(g, m, depth)})
	}
	return entries
}

// PerftAfter plays m on a copy of g and counts the nodes of the remaining
// depth-1 plies.
func PerftAfter(g *Game, m Move, depth int) uint64 {
	child := g.Clone()
	child.mustPlay(m)
	return Perft(child, depth-1)
}

// mustPlay plays a move taken from LegalMoves.
func (g *Game) mustPlay(m Move) {
	if err := g.Play(m); err != nil {
		panic(err)
	}
}
