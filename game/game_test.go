package game

import (
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"draughts/alphabeta"
	"draughts/board"
	"draughts/eval"
	"draughts/move"
	"draughts/movegen"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	os.Exit(m.Run())
}

func TestNewGame(t *testing.T) {
	g := NewGame()
	assert.True(t, g.Playing())
	assert.Equal(t, board.White, g.PlayerOnTurn())
	assert.Equal(t, 0, g.Turn())
	_, won := g.Winner()
	assert.False(t, won)
}

func TestValidMovesBoundaryValidation(t *testing.T) {
	g := NewGame()

	_, err := g.ValidMoves(-1, 3)
	assert.Error(t, err, "off-board squares are rejected")
	_, err = g.ValidMoves(8, 8)
	assert.Error(t, err)
	_, err = g.ValidMoves(4, 4)
	assert.Error(t, err, "empty squares are rejected")
	_, err = g.ValidMoves(2, 2)
	assert.Error(t, err, "it is not black's turn")

	legal, err := g.ValidMoves(5, 1)
	require.NoError(t, err)
	assert.Len(t, legal, 2)
}

func TestPlayMove(t *testing.T) {
	g := NewGame()

	// A fabricated move is rejected even if its origin square is fine.
	err := g.PlayMove(&move.Move{From: board.Pos{Row: 5, Col: 1}, To: board.Pos{Row: 3, Col: 3}})
	assert.ErrorIs(t, err, ErrIllegalMove)

	legal, err := g.ValidMoves(5, 1)
	require.NoError(t, err)
	require.NotEmpty(t, legal)
	require.NoError(t, g.PlayMove(&legal[0]))

	assert.Equal(t, board.Black, g.PlayerOnTurn())
	assert.Equal(t, 1, g.Turn())
	assert.Nil(t, g.Board().GetPiece(5, 1))
}

func TestPlayMoveAppliesCaptures(t *testing.T) {
	g := NewGame()

	// d3-e4, c6-d5: black steps into range and e4 jumps d5, landing on
	// the square c6 just vacated.
	require.NoError(t, g.playCoords(t, "d3", "e4"))
	require.NoError(t, g.playCoords(t, "c6", "d5"))
	legal, err := g.ValidMoves(4, 4) // e4
	require.NoError(t, err)
	var jump *move.Move
	for i := range legal {
		if legal[i].IsCapture() {
			jump = &legal[i]
			break
		}
	}
	require.NotNil(t, jump)
	before := g.Board().PiecesLeft(board.Black)
	require.NoError(t, g.PlayMove(jump))
	assert.Equal(t, before-1, g.Board().PiecesLeft(board.Black))
}

// playCoords plays the move with the given display coordinates,
// failing the test if it is not legal.
func (g *Game) playCoords(t *testing.T, from, to string) error {
	t.Helper()
	f, err := move.FromBoardCoords(from)
	if err != nil {
		return err
	}
	dest, err := move.FromBoardCoords(to)
	if err != nil {
		return err
	}
	legal, err := g.ValidMoves(f.Row, f.Col)
	if err != nil {
		return err
	}
	for i := range legal {
		if legal[i].To == dest {
			return g.PlayMove(&legal[i])
		}
	}
	t.Fatalf("%s %s is not legal here", from, to)
	return nil
}

func newSolver(t *testing.T) *alphabeta.Solver {
	t.Helper()
	s := &alphabeta.Solver{}
	require.NoError(t, s.Init(movegen.NewGenerator(), eval.Material{}))
	return s
}

func TestPlayBestTurn(t *testing.T) {
	g := NewGame()
	s := newSolver(t)

	m, err := g.PlayBestTurn(s, 2)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, board.Black, g.PlayerOnTurn())
	assert.Equal(t, 1, g.Turn())
}

func TestPlayBestTurnNoMovesLoses(t *testing.T) {
	g := NewGame()
	s := newSolver(t)

	// Rebuild the live board into a position where black cannot move.
	b := g.Board()
	b.RemovePieces(allSquares())
	b.SetPiece(7, 0, board.Black, false)
	b.SetPiece(0, 1, board.White, false)
	g.onTurn = board.Black

	m, err := g.PlayBestTurn(s, 3)
	require.NoError(t, err)
	assert.Nil(t, m)
	assert.False(t, g.Playing())
	winner, won := g.Winner()
	assert.True(t, won)
	assert.Equal(t, board.White, winner)
}

func TestMaxTurnsDraw(t *testing.T) {
	g := NewGame()
	g.SetMaxTurns(10)
	s := newSolver(t)

	for g.Playing() {
		_, err := g.PlayBestTurn(s, 2)
		require.NoError(t, err)
	}
	assert.Equal(t, 10, g.Turn())
	_, won := g.Winner()
	assert.False(t, won, "a capped game is a draw")
}

func TestFullGameEnds(t *testing.T) {
	g := NewGame()
	s := newSolver(t)

	for g.Playing() {
		_, err := g.PlayBestTurn(s, 2)
		require.NoError(t, err)
	}
	assert.False(t, g.Playing())
	// Either somebody won or the draw cap tripped; both are final.
	_, err := g.PlayBestTurn(s, 2)
	assert.ErrorIs(t, err, ErrGameOver)
	assert.Error(t, g.PlayMove(&move.Move{}))
}

func allSquares() []board.Pos {
	var all []board.Pos
	for row := 0; row < board.Dim; row++ {
		for col := 0; col < board.Dim; col++ {
			all = append(all, board.Pos{Row: row, Col: col})
		}
	}
	return all
}
