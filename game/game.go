// Package game tracks a live checkers game: the single board that
// persists for the whole game, whose turn it is, and how the game
// ended. It is the validation boundary between raw caller input and
// the core packages, which trust their arguments.
package game

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"draughts/alphabeta"
	"draughts/board"
	"draughts/move"
	"draughts/movegen"
)

// DefaultMaxTurns caps the length of a game. Two lone kings can shuffle
// forever; past this many plies the game is scored a draw.
const DefaultMaxTurns = 256

var (
	// ErrGameOver is returned when a play is attempted after the game
	// has ended.
	ErrGameOver = errors.New("the game is over")
	// ErrIllegalMove is returned when a proposed move is not among the
	// legal moves of the selected piece.
	ErrIllegalMove = errors.New("illegal move")
)

// Game is a live game of checkers.
type Game struct {
	board    *board.Board
	gen      movegen.MoveGenerator
	onTurn   board.Color
	turn     int
	maxTurns int
	playing  bool
	winner   board.Color
	won      bool
}

// NewGame starts a game from the standard starting position, White to
// move.
func NewGame() *Game {
	return &Game{
		board:    board.New(),
		gen:      movegen.NewGenerator(),
		onTurn:   board.White,
		maxTurns: DefaultMaxTurns,
		playing:  true,
	}
}

func (g *Game) Board() *board.Board       { return g.board }
func (g *Game) PlayerOnTurn() board.Color { return g.onTurn }
func (g *Game) Turn() int                 { return g.turn }

// Playing reports whether the game is still going.
func (g *Game) Playing() bool { return g.playing }

// Winner returns the winning color. The second return is false while
// the game is still going, and also for a drawn game.
func (g *Game) Winner() (board.Color, bool) {
	return g.winner, g.won
}

// SetMaxTurns overrides the draw cap. Zero means no cap.
func (g *Game) SetMaxTurns(n int) { g.maxTurns = n }

// ValidMoves validates a square selected by the caller and returns the
// legal moves of the piece there. Out-of-grid squares, empty squares
// and opponent pieces are errors; the caller is expected to re-prompt.
func (g *Game) ValidMoves(row, col int) ([]move.Move, error) {
	if !(board.Pos{Row: row, Col: col}).OnBoard() {
		return nil, fmt.Errorf("square (%d,%d) is off the board", row, col)
	}
	p := g.board.GetPiece(row, col)
	if p == nil {
		return nil, fmt.Errorf("no piece on square (%d,%d)", row, col)
	}
	if p.Color() != g.onTurn {
		return nil, fmt.Errorf("the piece on (%d,%d) is not yours; %v to move", row, col, g.onTurn)
	}
	return g.gen.ValidMoves(g.board, p, row, col), nil
}

// PlayMove validates m against the mover's legal moves and applies it
// to the live board, flipping the turn. Only moves that came through
// ValidMoves (or equal ones) are accepted.
func (g *Game) PlayMove(m *move.Move) error {
	if !g.playing {
		return ErrGameOver
	}
	legal, err := g.ValidMoves(m.From.Row, m.From.Col)
	if err != nil {
		return err
	}
	for i := range legal {
		if legal[i].Equals(m) {
			g.apply(&legal[i])
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrIllegalMove, m.ShortDescription())
}

// PlayBestTurn asks the solver for the best move for the side on turn
// and plays it. A nil best move means the side cannot move, which
// loses the game for it.
func (g *Game) PlayBestTurn(s *alphabeta.Solver, depth int) (*move.Move, error) {
	if !g.playing {
		return nil, ErrGameOver
	}
	val, m := s.Solve(g.board, depth, g.onTurn)
	if m == nil {
		g.conclude(g.onTurn.Other())
		log.Debug().Str("loser", g.onTurn.String()).Msg("no-moves-available")
		return nil, nil
	}
	log.Debug().
		Int("turn", g.turn).
		Str("on-turn", g.onTurn.String()).
		Str("play", m.ShortDescription()).
		Float32("value", val).
		Msg("playing-best-turn")
	g.apply(m)
	return m, nil
}

// apply trusts m, routes it to the board, and advances the game state.
func (g *Game) apply(m *move.Move) {
	p := g.board.GetPiece(m.From.Row, m.From.Col)
	g.board.MovePiece(p, m.From, m.To)
	g.board.RemovePieces(m.Captures)
	g.turn++
	g.onTurn = g.onTurn.Other()

	if g.board.IsTerminal() {
		if g.board.PiecesLeft(board.Black) == 0 {
			g.conclude(board.White)
		} else {
			g.conclude(board.Black)
		}
		return
	}
	if g.maxTurns > 0 && g.turn >= g.maxTurns {
		g.playing = false
		log.Debug().Int("turns", g.turn).Msg("max-turns-reached-draw")
	}
}

func (g *Game) conclude(winner board.Color) {
	g.playing = false
	g.winner = winner
	g.won = true
}
