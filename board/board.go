// Package board implements the checkers game board: an 8x8 grid of
// optional pieces with incrementally maintained piece and king counts.
package board

import (
	"fmt"
	"strings"
)

// Dim is the board dimension.
const Dim = 8

// StartingPieces is the number of pieces each side begins with.
const StartingPieces = 12

// A Board is the canonical mutable game state. It exclusively owns the
// Piece values it holds; Clone allocates fresh ones. The left and kings
// counters are maintained incrementally so terminal checks and
// evaluation stay O(1).
type Board struct {
	squares [Dim][Dim]*Piece
	left    [2]int
	kings   [2]int
}

// A PlacedPiece is a piece together with its current square, as
// returned by AllPieces.
type PlacedPiece struct {
	Piece *Piece
	Row   int
	Col   int
}

// New creates a board with the standard starting layout: Black on rows
// 0-2, White on rows 5-7, on alternating cells.
func New() *Board {
	b := &Board{}
	for row := 0; row < 3; row++ {
		for col := row % 2; col < Dim; col += 2 {
			b.SetPiece(row, col, Black, false)
		}
	}
	for row := 5; row < Dim; row++ {
		for col := row % 2; col < Dim; col += 2 {
			b.SetPiece(row, col, White, false)
		}
	}
	return b
}

// Empty creates a board with no pieces on it. Use SetPiece to build
// synthetic positions.
func Empty() *Board {
	return &Board{}
}

// SetPiece places a new piece on an empty square, keeping the counters
// in sync. It panics if the square is occupied or off the grid; it is
// meant for board setup, not for play.
func (b *Board) SetPiece(row, col int, c Color, king bool) *Piece {
	pos := Pos{row, col}
	if !pos.OnBoard() {
		panic(fmt.Sprintf("square %v is off the board", pos))
	}
	if b.squares[row][col] != nil {
		panic(fmt.Sprintf("square %v is already occupied", pos))
	}
	p := &Piece{color: c, king: king}
	b.squares[row][col] = p
	b.left[c]++
	if king {
		b.kings[c]++
	}
	return p
}

// GetPiece returns the piece on the given square, or nil if the square
// is empty.
func (b *Board) GetPiece(row, col int) *Piece {
	return b.squares[row][col]
}

// AllPieces returns every piece of the given color with its square, in
// row-major scan order. The order is part of the engine's contract:
// the solver's move ordering, and therefore its tie-breaking, depends
// on it.
func (b *Board) AllPieces(c Color) []PlacedPiece {
	pieces := make([]PlacedPiece, 0, b.left[c])
	for row := 0; row < Dim; row++ {
		for col := 0; col < Dim; col++ {
			if p := b.squares[row][col]; p != nil && p.color == c {
				pieces = append(pieces, PlacedPiece{Piece: p, Row: row, Col: col})
			}
		}
	}
	return pieces
}

// MovePiece relocates p from start to end, crowning it if end is on its
// promotion row. The caller guarantees that start holds p and that end
// was produced by the move generator; the board does not re-validate
// legality. Moving from an empty square is a programming error and
// panics.
func (b *Board) MovePiece(p *Piece, start, end Pos) {
	if b.squares[start.Row][start.Col] != p {
		panic(fmt.Sprintf("piece is not on square %v", start))
	}
	b.squares[start.Row][start.Col] = nil
	b.squares[end.Row][end.Col] = p

	if end.Row == p.color.PromotionRow() && !p.king {
		p.king = true
		b.kings[p.color]++
	}
}

// RemovePieces clears each given square and decrements the counters for
// whatever was there. Empty squares are skipped silently, so applying a
// capture list is idempotent.
func (b *Board) RemovePieces(positions []Pos) {
	for _, pos := range positions {
		p := b.squares[pos.Row][pos.Col]
		if p == nil {
			continue
		}
		b.left[p.color]--
		if p.king {
			b.kings[p.color]--
		}
		b.squares[pos.Row][pos.Col] = nil
	}
}

// PiecesLeft returns the number of pieces of the given color still on
// the board.
func (b *Board) PiecesLeft(c Color) int { return b.left[c] }

// Kings returns the number of kings of the given color.
func (b *Board) Kings(c Color) int { return b.kings[c] }

// IsTerminal reports whether either side has run out of pieces.
func (b *Board) IsTerminal() bool {
	return b.left[White] == 0 || b.left[Black] == 0
}

// Clone returns a fully independent deep copy. No squares, pieces or
// counters are shared with the original; the search mutates clones
// freely without touching the live board.
func (b *Board) Clone() *Board {
	c := &Board{left: b.left, kings: b.kings}
	for row := 0; row < Dim; row++ {
		for col := 0; col < Dim; col++ {
			if p := b.squares[row][col]; p != nil {
				c.squares[row][col] = &Piece{color: p.color, king: p.king}
			}
		}
	}
	return c
}

// ToDisplayText returns a console rendering of the board, with file
// letters and rank numbers around the grid.
func (b *Board) ToDisplayText() string {
	var str strings.Builder
	str.WriteString("   ")
	for col := 0; col < Dim; col++ {
		fmt.Fprintf(&str, " %c ", 'a'+col)
	}
	str.WriteString("\n")
	for row := 0; row < Dim; row++ {
		fmt.Fprintf(&str, "%2d ", Dim-row)
		for col := 0; col < Dim; col++ {
			str.WriteString(b.squares[row][col].String())
		}
		fmt.Fprintf(&str, "%2d\n", Dim-row)
	}
	str.WriteString("   ")
	for col := 0; col < Dim; col++ {
		fmt.Fprintf(&str, " %c ", 'a'+col)
	}
	str.WriteString("\n")
	return str.String()
}
