// Package alphabeta implements the checkers engine's move chooser:
// depth-limited minimax with alpha-beta pruning.
package alphabeta

import (
	"time"

	"github.com/rs/zerolog/log"

	"draughts/board"
	"draughts/eval"
	"draughts/move"
	"draughts/movegen"
)

// thanks Wikipedia:
/**function alphabeta(node, depth, α, β, maximizingPlayer) is
    if depth = 0 or node is a terminal node then
        return the heuristic value of node
    if maximizingPlayer then
        value := −∞
        for each child of node do
            value := max(value, alphabeta(child, depth − 1, α, β, FALSE))
            α := max(α, value)
            if α ≥ β then
                break (* β cut-off *)
        return value
    else
        value := +∞
        for each child of node do
            value := min(value, alphabeta(child, depth − 1, α, β, TRUE))
            β := min(β, value)
            if β ≤ α then
                break (* α cut-off *)
        return value
(* Initial call *)
alphabeta(origin, depth, −∞, +∞, TRUE)
**/
//
// Two deliberate departures from the textbook version:
//   - White is always the maximizing player; the color-to-role binding
//     is fixed, not side-agnostic.
//   - The cutoff break leaves only the destination loop of the piece
//     currently being scanned; the remaining pieces of the side to
//     move are still visited. This prunes less than classical
//     alpha-beta but returns identical scores.

// Infinity is 10 million.
const Infinity = float32(10000000)

// Solver implements the minimax + alphabeta algorithm.
type Solver struct {
	gen       movegen.MoveGenerator
	evaluator eval.Evaluator

	disablePruning bool
	totalNodes     int
}

func max(x, y float32) float32 {
	if x < y {
		return y
	}
	return x
}

func min(x, y float32) float32 {
	if x < y {
		return x
	}
	return y
}

// Init initializes the solver with a move generator and an evaluator.
func (s *Solver) Init(gen movegen.MoveGenerator, evaluator eval.Evaluator) error {
	s.gen = gen
	s.evaluator = evaluator
	s.totalNodes = 0
	return nil
}

// SetPruningDisabled turns alpha-beta cutoffs off, degrading the
// solver to a full minimax sweep. Only useful for verifying that
// pruning does not change the result.
func (s *Solver) SetPruningDisabled(d bool) {
	s.disablePruning = d
}

// Nodes returns the number of nodes expanded by the last Solve call.
func (s *Solver) Nodes() int {
	return s.totalNodes
}

// Solve finds the best move for the side onTurn, searching plies plies
// deep. It returns the score of the chosen line (positive favors
// White) and the move itself. A nil move means the side to move has no
// legal play and loses; that is an outcome, not an error.
func (s *Solver) Solve(b *board.Board, plies int, onTurn board.Color) (float32, *move.Move) {
	tstart := time.Now()
	s.totalNodes = 0
	val, m := s.alphabeta(b, plies, -Infinity, Infinity, onTurn == board.White)
	log.Debug().
		Int("plies", plies).
		Str("on-turn", onTurn.String()).
		Int("nodes", s.totalNodes).
		Float64("time-elapsed-sec", time.Since(tstart).Seconds()).
		Msg("solve-returning")
	return val, m
}

// alphabeta recursively explores the game tree. Every candidate move
// is applied to a private clone of the board, so no two in-flight
// branches share state. Move ordering is fixed (pieces in row-major
// order, destinations in generator direction order), and with the
// strict comparisons below it makes the returned move deterministic:
// the first move to strictly beat the running best is kept through
// ties.
func (s *Solver) alphabeta(b *board.Board, depth int, α, β float32, maximizing bool) (float32, *move.Move) {
	s.totalNodes++
	if depth == 0 || b.IsTerminal() {
		return s.evaluator.Evaluate(b), nil
	}

	if maximizing {
		best := -Infinity
		var bestMove *move.Move
		for _, pp := range b.AllPieces(board.White) {
			for _, m := range s.gen.ValidMoves(b, pp.Piece, pp.Row, pp.Col) {
				val, _ := s.alphabeta(s.child(b, m), depth-1, α, β, false)
				if val > best {
					best = val
					m := m
					bestMove = &m
				}
				α = max(α, val)
				if β <= α && !s.disablePruning {
					break // β cut-off; next piece
				}
			}
		}
		return best, bestMove
	}

	best := Infinity
	var bestMove *move.Move
	for _, pp := range b.AllPieces(board.Black) {
		for _, m := range s.gen.ValidMoves(b, pp.Piece, pp.Row, pp.Col) {
			val, _ := s.alphabeta(s.child(b, m), depth-1, α, β, true)
			if val < best {
				best = val
				m := m
				bestMove = &m
			}
			β = min(β, val)
			if β <= α && !s.disablePruning {
				break // α cut-off; next piece
			}
		}
	}
	return best, bestMove
}

// child clones the board and applies the move and its captures to the
// clone.
func (s *Solver) child(b *board.Board, m move.Move) *board.Board {
	c := b.Clone()
	p := c.GetPiece(m.From.Row, m.From.Col)
	c.MovePiece(p, m.From, m.To)
	c.RemovePieces(m.Captures)
	return c
}
