package board

// step is a (file, rank) offset.
type step struct {
	df, dr int
}

var knightSteps = [8]step{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingSteps = [8]step{
	{-1, -1}, {-1, 0}, {-1, 1}, {0, -1},
	{0, 1}, {1, -1}, {1, 0}, {1, 1},
}

var bishopDirs = [4]step{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var rookDirs = [4]step{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// pawnDir returns the rank delta a pawn of the given color advances by.
// White moves toward rank 0 (the 8th rank), Black toward rank 7.
func pawnDir(c Color) int {
	if c == White {
		return -1
	}
	return 1
}

// sliderDirs returns the ray directions for a sliding piece type.
func sliderDirs(pt PieceType) []step {
	switch pt {
	case Bishop:
		return bishopDirs[:]
	case Rook:
		return rookDirs[:]
	case Queen:
		dirs := make([]step, 0, 8)
		dirs = append(dirs, bishopDirs[:]...)
		return append(dirs, rookDirs[:]...)
	default:
		return nil
	}
}

// AttackedSquares lists every square the piece on sq could capture on
// if an enemy stood there. Turn order and king safety are ignored;
// this is the raw attack map used for check detection and castling
// safety. Pawns attack only their two forward diagonals, and sliders
// include the first occupied square on each ray (a capture).
func AttackedSquares(b *Board, sq Square, p Piece) []Move {
	var moves []Move
	switch p.Type() {
	case Pawn:
		dr := pawnDir(p.Color())
		for _, df := range [2]int{-1, 1} {
			to := Square{File: sq.File + df, Rank: sq.Rank + dr}
			if to.InBounds() {
				moves = append(moves, Move{From: sq, To: to})
			}
		}

	case Knight:
		for _, st := range knightSteps {
			to := Square{File: sq.File + st.df, Rank: sq.Rank + st.dr}
			if to.InBounds() {
				moves = append(moves, Move{From: sq, To: to})
			}
		}

	case Bishop, Rook, Queen:
		for _, dir := range sliderDirs(p.Type()) {
			to := Square{File: sq.File + dir.df, Rank: sq.Rank + dir.dr}
			for to.InBounds() {
				moves = append(moves, Move{From: sq, To: to})
				if b.PieceAt(to) != NoPiece {
					break
				}
				to = Square{File: to.File + dir.df, Rank: to.Rank + dir.dr}
			}
		}

	case King:
		for _, st := range kingSteps {
			to := Square{File: sq.File + st.df, Rank: sq.Rank + st.dr}
			if to.InBounds() {
				moves = append(moves, Move{From: sq, To: to})
			}
		}
	}
	return moves
}

// IsSquareAttacked reports whether any piece of byColor attacks sq.
// It scans the whole board; the fixed search depth keeps the quadratic
// cost acceptable.
func IsSquareAttacked(b *Board, sq Square, byColor Color) bool {
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			from := Square{File: file, Rank: rank}
			p := b.PieceAt(from)
			if p == NoPiece || p.Color() != byColor {
				continue
			}
			for _, m := range AttackedSquares(b, from, p) {
				if m.To == sq {
					return true
				}
			}
		}
	}
	return false
}

// FindKing locates the king of the given color.
func FindKing(b *Board, color Color) (Square, bool) {
	want := NewPiece(King, color)
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			sq := Square{File: file, Rank: rank}
			if b.PieceAt(sq) == want {
				return sq, true
			}
		}
	}
	return NoSquare, false
}

// IsInCheck reports whether the given color's king is attacked.
// A board with no king for that color is not in check.
func IsInCheck(b *Board, color Color) bool {
	kingSq, ok := FindKing(b, color)
	if !ok {
		return false
	}
	return IsSquareAttacked(b, kingSq, color.Other())
}
