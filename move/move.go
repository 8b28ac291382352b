// Package move defines the Move type exchanged between the move
// generator, the solver and the game boundary.
package move

import (
	"fmt"
	"strings"

	"draughts/board"
)

// A Move relocates the piece on From to To. Captures holds the squares
// of any pieces jumped on the way; an empty list is a plain move. A
// Move never holds the piece itself: a move generated on one board can
// be replayed on any clone of it.
type Move struct {
	From     board.Pos
	To       board.Pos
	Captures []board.Pos
}

// IsCapture reports whether the move jumps at least one piece.
func (m *Move) IsCapture() bool {
	return len(m.Captures) > 0
}

// Equals reports whether two moves describe the same relocation and the
// same capture list, in order.
func (m *Move) Equals(o *Move) bool {
	if m.From != o.From || m.To != o.To || len(m.Captures) != len(o.Captures) {
		return false
	}
	for i := range m.Captures {
		if m.Captures[i] != o.Captures[i] {
			return false
		}
	}
	return true
}

// String provides a string just for debugging purposes.
func (m *Move) String() string {
	return fmt.Sprintf("<move %v -> %v captures %v>", m.From, m.To, m.Captures)
}

// ShortDescription provides a short description, useful for logging or
// user display, e.g. "b6 a5" or "c4 x a6".
func (m *Move) ShortDescription() string {
	sep := " "
	if m.IsCapture() {
		sep = " x "
	}
	return ToBoardCoords(m.From) + sep + ToBoardCoords(m.To)
}

// ToBoardCoords converts a position to display coordinates: files a-h
// left to right, ranks 8-1 top to bottom.
func ToBoardCoords(p board.Pos) string {
	return fmt.Sprintf("%c%d", 'a'+p.Col, board.Dim-p.Row)
}

// FromBoardCoords parses display coordinates ("a3", "H8") back into a
// position. It returns an error for anything that is not a square on
// the board.
func FromBoardCoords(s string) (board.Pos, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 {
		return board.Pos{}, fmt.Errorf("bad coordinates %q", s)
	}
	col := int(s[0] - 'a')
	rank := int(s[1] - '0')
	pos := board.Pos{Row: board.Dim - rank, Col: col}
	if rank < 1 || rank > board.Dim || !pos.OnBoard() {
		return board.Pos{}, fmt.Errorf("square %q is off the board", s)
	}
	return pos, nil
}
