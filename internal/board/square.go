// Package board implements the chess board, movement rules, and legal
// move generation on a plain 8x8 grid.
package board

import "fmt"

// Square identifies a board square by file and rank indices.
// File 0..7 maps a..h; rank 0 is the 8th rank (top of the external
// matrix) down to rank 7 for the 1st rank.
type Square struct {
	File int
	Rank int
}

// NoSquare is the sentinel for "no square" (missing en passant target,
// no capture, and so on).
var NoSquare = Square{File: -1, Rank: -1}

// NewSquare creates a square from file and rank indices.
func NewSquare(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// InBounds reports whether the square lies on the board.
func (sq Square) InBounds() bool {
	return sq.File >= 0 && sq.File < 8 && sq.Rank >= 0 && sq.Rank < 8
}

// IsValid reports whether the square is a real board square rather
// than the NoSquare sentinel.
func (sq Square) IsValid() bool {
	return sq.InBounds()
}

// String returns the algebraic square label (e.g. "e4"), or "-" for
// the NoSquare sentinel.
func (sq Square) String() string {
	if !sq.InBounds() {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'a'+sq.File, 8-sq.Rank)
}

// ParseSquare parses an algebraic square label (e.g. "e4").
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("invalid square: %q", s)
	}
	file := int(s[0] - 'a')
	rank := 8 - int(s[1]-'0')
	sq := Square{File: file, Rank: rank}
	if !sq.InBounds() {
		return NoSquare, fmt.Errorf("invalid square: %q", s)
	}
	return sq, nil
}
