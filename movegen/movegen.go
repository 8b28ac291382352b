// Package movegen generates the legal destinations for checkers
// pieces. Generation explores each diagonal direction a single hop at
// a time: an adjacent empty square is a plain move, an adjacent enemy
// piece with an empty landing square behind it is a jump. A jump is
// never extended into a second hop within the same call; evaluating
// chained captures is left to deeper plies of the search.
package movegen

import (
	"draughts/board"
	"draughts/move"
)

// MoveGenerator is the interface the solver and the game boundary use
// to generate plays.
type MoveGenerator interface {
	ValidMoves(b *board.Board, p *board.Piece, row, col int) []move.Move
	MovesForSide(b *board.Board, c board.Color) []move.Move
}

// Generator is the standard single-hop move generator.
type Generator struct{}

// NewGenerator creates a Generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// direction steps, in the fixed order the search relies on: the two
// up-board diagonals, then the two down-board diagonals. White men use
// the first pair, black men the second, kings all four.
var directions = [4]board.Pos{
	{Row: -1, Col: -1},
	{Row: -1, Col: 1},
	{Row: 1, Col: -1},
	{Row: 1, Col: 1},
}

// ValidMoves returns every legal destination for the piece on
// (row, col), each tagged with the squares captured en route. The
// result is ordered by the direction order above. Destinations are
// unique per the board geometry; should two directions ever yield the
// same square, the later one wins.
func (g *Generator) ValidMoves(b *board.Board, p *board.Piece, row, col int) []move.Move {
	var moves []move.Move
	if p.Color() == board.White || p.IsKing() {
		moves = g.traverse(b, p, row, col, directions[0], moves)
		moves = g.traverse(b, p, row, col, directions[1], moves)
	}
	if p.Color() == board.Black || p.IsKing() {
		moves = g.traverse(b, p, row, col, directions[2], moves)
		moves = g.traverse(b, p, row, col, directions[3], moves)
	}
	return moves
}

// traverse checks a single direction and appends the move found there,
// if any. A destination that collides with an earlier one replaces it
// in place (last write wins), keeping the result free of duplicates
// without disturbing its order.
func (g *Generator) traverse(b *board.Board, p *board.Piece, row, col int, dir board.Pos, moves []move.Move) []move.Move {
	from := board.Pos{Row: row, Col: col}
	adj := board.Pos{Row: row + dir.Row, Col: col + dir.Col}
	if !adj.OnBoard() {
		return moves
	}
	next := b.GetPiece(adj.Row, adj.Col)
	if next == nil {
		return record(moves, move.Move{From: from, To: adj})
	}
	if next.Color() != p.Color() {
		land := board.Pos{Row: adj.Row + dir.Row, Col: adj.Col + dir.Col}
		if land.OnBoard() && b.GetPiece(land.Row, land.Col) == nil {
			return record(moves, move.Move{From: from, To: land, Captures: []board.Pos{adj}})
		}
	}
	return moves
}

func record(moves []move.Move, m move.Move) []move.Move {
	for i := range moves {
		if moves[i].To == m.To {
			moves[i] = m
			return moves
		}
	}
	return append(moves, m)
}

// MovesForSide concatenates the valid moves of every piece of the given
// color, pieces in the board's row-major order. The solver iterates
// plays in exactly this order.
func (g *Generator) MovesForSide(b *board.Board, c board.Color) []move.Move {
	var moves []move.Move
	for _, pp := range b.AllPieces(c) {
		moves = append(moves, g.ValidMoves(b, pp.Piece, pp.Row, pp.Col)...)
	}
	return moves
}
