// Package eval implements the heuristic evaluators applied at search
// cutoff. Scores are signed: positive favors White, negative favors
// Black.
package eval

import (
	"fmt"

	"draughts/board"
)

// An Evaluator scores a board position. Evaluators are stateless, so a
// single instance may be shared between solvers.
type Evaluator interface {
	Evaluate(b *board.Board) float32
	Name() string
}

const (
	// MaterialEvaluator is the name of the piece-count evaluator.
	MaterialEvaluator = "material"
	// PositionalEvaluator is the name of the center-weighted evaluator.
	PositionalEvaluator = "positional"
)

// New returns the evaluator registered under the given name.
func New(name string) (Evaluator, error) {
	switch name {
	case MaterialEvaluator:
		return Material{}, nil
	case PositionalEvaluator:
		return Positional{}, nil
	}
	return nil, fmt.Errorf("no such evaluator: %q", name)
}

// Material scores a board by piece difference, with kings worth an
// extra half piece.
type Material struct{}

func (Material) Name() string { return MaterialEvaluator }

func (Material) Evaluate(b *board.Board) float32 {
	men := b.PiecesLeft(board.White) - b.PiecesLeft(board.Black)
	kings := b.Kings(board.White) - b.Kings(board.Black)
	return float32(men) + 0.5*float32(kings)
}

// Positional scores each piece at 3 for a king and 1 for a man, plus a
// half-point bonus for occupying the central 4x4 sub-board (rows 2-5,
// cols 2-5), signed by color.
type Positional struct{}

func (Positional) Name() string { return PositionalEvaluator }

func (Positional) Evaluate(b *board.Board) float32 {
	var score float32
	for _, c := range []board.Color{board.White, board.Black} {
		sign := float32(1)
		if c == board.Black {
			sign = -1
		}
		for _, pp := range b.AllPieces(c) {
			contrib := float32(1)
			if pp.Piece.IsKing() {
				contrib = 3
			}
			if pp.Row >= 2 && pp.Row <= 5 && pp.Col >= 2 && pp.Col <= 5 {
				contrib += 0.5
			}
			score += sign * contrib
		}
	}
	return score
}
