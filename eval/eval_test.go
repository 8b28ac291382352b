package eval

import (
	"testing"

	"github.com/matryer/is"

	"draughts/board"
)

func TestNew(t *testing.T) {
	is := is.New(t)
	ev, err := New("material")
	is.NoErr(err)
	is.Equal(ev.Name(), "material")
	ev, err = New("positional")
	is.NoErr(err)
	is.Equal(ev.Name(), "positional")
	_, err = New("psychic")
	is.True(err != nil)
}

func TestMaterial(t *testing.T) {
	is := is.New(t)
	ev := Material{}

	is.Equal(ev.Evaluate(board.New()), float32(0)) // starting position is level

	b := board.Empty()
	b.SetPiece(3, 3, board.White, false)
	b.SetPiece(4, 4, board.White, false)
	b.SetPiece(5, 5, board.White, true)
	b.SetPiece(2, 2, board.Black, false)
	// 3 white vs 1 black, plus half a point for the white king.
	is.Equal(ev.Evaluate(b), float32(2.5))
}

func TestMaterialFavorsBlack(t *testing.T) {
	is := is.New(t)
	ev := Material{}

	b := board.Empty()
	b.SetPiece(3, 3, board.Black, true)
	b.SetPiece(4, 4, board.Black, false)
	b.SetPiece(5, 5, board.White, false)
	is.Equal(ev.Evaluate(b), float32(-1.5))
}

func TestPositional(t *testing.T) {
	is := is.New(t)
	ev := Positional{}

	b := board.Empty()
	b.SetPiece(3, 3, board.White, false) // central man: 1 + 0.5
	is.Equal(ev.Evaluate(b), float32(1.5))

	b = board.Empty()
	b.SetPiece(7, 7, board.White, false) // edge man: no bonus
	is.Equal(ev.Evaluate(b), float32(1))

	b = board.Empty()
	b.SetPiece(2, 5, board.Black, true) // central black king: -(3 + 0.5)
	is.Equal(ev.Evaluate(b), float32(-3.5))

	b = board.Empty()
	b.SetPiece(0, 0, board.Black, true) // corner black king
	b.SetPiece(4, 4, board.White, false)
	is.Equal(ev.Evaluate(b), float32(1.5-3))
}

func TestPositionalStartingPositionIsLevel(t *testing.T) {
	is := is.New(t)
	ev := Positional{}
	is.Equal(ev.Evaluate(board.New()), float32(0))
}

func TestEvaluatorsAreSwappable(t *testing.T) {
	is := is.New(t)
	var evs []Evaluator
	for _, name := range []string{MaterialEvaluator, PositionalEvaluator} {
		ev, err := New(name)
		is.NoErr(err)
		evs = append(evs, ev)
	}
	b := board.New()
	for _, ev := range evs {
		is.Equal(ev.Evaluate(b), float32(0))
	}
}
