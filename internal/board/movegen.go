package board

import "sort"

// candidateMoves collects pseudo-legal moves for the piece on sq,
// plus the two synthetic two-file king displacements that probe
// castling in both directions. CheckLegal sorts out the rest.
func candidateMoves(b *Board, sq Square, p Piece, enPassant Square) []Move {
	moves := PseudoLegalMoves(b, sq, p, enPassant)
	if p.Type() == King {
		moves = append(moves,
			Move{From: sq, To: Square{File: sq.File + 2, Rank: sq.Rank}},
			Move{From: sq, To: Square{File: sq.File - 2, Rank: sq.Rank}},
		)
	}
	return moves
}

// LegalMoves enumerates every legal move for the given color, sorted
// ascending by (from file, from rank, to file, to rank). The ordering
// is a hard contract: search reproducibility depends on it.
func LegalMoves(b *Board, color Color, rights CastlingRights, enPassant Square) []Move {
	var moves []Move
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			sq := Square{File: file, Rank: rank}
			p := b.PieceAt(sq)
			if p == NoPiece || p.Color() != color {
				continue
			}
			for _, m := range candidateMoves(b, sq, p, enPassant) {
				if CheckLegal(b, m, color, rights, enPassant).Legal {
					moves = append(moves, m)
				}
			}
		}
	}
	sort.Slice(moves, func(i, j int) bool { return moves[i].Less(moves[j]) })
	return moves
}

// HasAnyLegalMove reports whether the given color has at least one
// legal move, returning as soon as one is found. This is how checkmate
// and stalemate are detected without a full enumeration.
func HasAnyLegalMove(b *Board, color Color, rights CastlingRights, enPassant Square) bool {
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			sq := Square{File: file, Rank: rank}
			p := b.PieceAt(sq)
			if p == NoPiece || p.Color() != color {
				continue
			}
			for _, m := range candidateMoves(b, sq, p, enPassant) {
				if CheckLegal(b, m, color, rights, enPassant).Legal {
					return true
				}
			}
		}
	}
	return false
}
