package board

import (
	"fmt"
	"strings"
)

// Board is an 8x8 grid of pieces indexed [rank][file], rank 0 at the
// top (the 8th rank). It is a value type: assigning or passing a Board
// copies the whole grid, so a copy never aliases its source. Pieces
// themselves are immutable bytes and safe to share.
type Board struct {
	grid [8][8]Piece
}

// PieceAt returns the piece on a square, or NoPiece if empty.
func (b *Board) PieceAt(sq Square) Piece {
	return b.grid[sq.Rank][sq.File]
}

// SetPiece places a piece on a square, replacing whatever was there.
// NoPiece clears the square.
func (b *Board) SetPiece(sq Square, p Piece) {
	b.grid[sq.Rank][sq.File] = p
}

// Clone returns an independent copy of the board.
func (b Board) Clone() Board {
	return b
}

// FromMatrix builds a Board from an 8x8 matrix of piece codes, oriented
// rank-major top to bottom and file-minor a to h. Empty squares are ""
// (or any value that is not a piece letter is rejected).
func FromMatrix(matrix [][]string) (Board, error) {
	var b Board
	if len(matrix) != 8 {
		return b, fmt.Errorf("board matrix: need 8 ranks, got %d", len(matrix))
	}
	for rank, row := range matrix {
		if len(row) != 8 {
			return b, fmt.Errorf("board matrix: rank %d has %d files, need 8", rank, len(row))
		}
		for file, cell := range row {
			if cell == "" {
				continue
			}
			if len(cell) != 1 {
				return b, fmt.Errorf("board matrix: invalid piece code %q at rank %d file %d", cell, rank, file)
			}
			p := PieceFromCode(cell[0])
			if p == NoPiece {
				return b, fmt.Errorf("board matrix: invalid piece code %q at rank %d file %d", cell, rank, file)
			}
			b.grid[rank][file] = p
		}
	}
	return b, nil
}

// ToMatrix serializes the board back into the external matrix form.
// FromMatrix followed by ToMatrix yields the identical matrix.
func (b *Board) ToMatrix() [][]string {
	matrix := make([][]string, 8)
	for rank := 0; rank < 8; rank++ {
		row := make([]string, 8)
		for file := 0; file < 8; file++ {
			if p := b.grid[rank][file]; p != NoPiece {
				row[file] = string(p.Code())
			}
		}
		matrix[rank] = row
	}
	return matrix
}

// String returns a human-readable grid for debugging, 8th rank first.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := 0; rank < 8; rank++ {
		fmt.Fprintf(&sb, "%d ", 8-rank)
		for file := 0; file < 8; file++ {
			sb.WriteString(b.grid[rank][file].String())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
