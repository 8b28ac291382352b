package board

import "fmt"

// Color is the color of a checkers piece. White pieces start on the
// bottom three rows and advance toward row 0; Black pieces start on the
// top three rows and advance toward row 7.
type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Other returns the opposing color.
func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

// PromotionRow is the rank at which a piece of this color is crowned:
// row 7 for White, row 0 for Black. That is the opposite end from the
// direction each side's men advance, so a piece normally has to be a
// king already to re-enter its own promotion row.
func (c Color) PromotionRow() int {
	if c == White {
		return Dim - 1
	}
	return 0
}

// A Piece is a single checker. Its color never changes; its king flag
// transitions false→true at most once, when the board promotes it.
type Piece struct {
	color Color
	king  bool
}

func (p *Piece) Color() Color { return p.color }
func (p *Piece) IsKing() bool { return p.king }

func (p *Piece) String() string {
	if p == nil {
		return " . "
	}
	letter := "w"
	if p.color == Black {
		letter = "b"
	}
	if p.king {
		return fmt.Sprintf("[%s]", letter)
	}
	return fmt.Sprintf(" %s ", letter)
}

// Pos is a 0-indexed (row, col) square on the board.
type Pos struct {
	Row int
	Col int
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// OnBoard reports whether the position is within the 8x8 grid.
func (p Pos) OnBoard() bool {
	return p.Row >= 0 && p.Row < Dim && p.Col >= 0 && p.Col < Dim
}
