package board

// Reason identifies why a move was accepted or rejected. Rule
// violations are reported as values from this closed set, never as
// errors or panics.
type Reason string

const (
	ReasonOK                 Reason = "ok"
	ReasonOutOfBounds        Reason = "out_of_bounds"
	ReasonNoPiece            Reason = "no_piece"
	ReasonWrongColor         Reason = "wrong_color"
	ReasonOccupiedByAlly     Reason = "occupied_by_ally"
	ReasonIllegalCastle      Reason = "illegal_castle"
	ReasonCastleRights       Reason = "castle_rights"
	ReasonRookMissing        Reason = "rook_missing"
	ReasonCastleBlocked      Reason = "castle_blocked"
	ReasonKingInCheck        Reason = "king_in_check"
	ReasonCastleThroughCheck Reason = "castle_through_check"
	ReasonIllegalMove        Reason = "illegal_move"
	ReasonKingMissing        Reason = "king_missing"
)

// Verdict is the outcome of a full legality check.
type Verdict struct {
	Legal       bool
	Reason      Reason
	IsCastle    bool
	IsEnPassant bool
}

// homeRank returns the back rank for a color (where its king and rooks
// start): 7 for White, 0 for Black.
func homeRank(c Color) int {
	if c == White {
		return 7
	}
	return 0
}

// promotionRank returns the farthest rank for a color's pawns.
func promotionRank(c Color) int {
	if c == White {
		return 0
	}
	return 7
}

// PseudoLegalMoves generates the movement-rule moves for the piece on
// sq, without king-safety filtering. Pawns get single and double
// pushes plus diagonal captures (real or onto the en passant target);
// castling is not produced here, it is handled by CheckLegal.
func PseudoLegalMoves(b *Board, sq Square, p Piece, enPassant Square) []Move {
	var moves []Move
	switch p.Type() {
	case Pawn:
		dr := pawnDir(p.Color())
		startRank := 6
		if p.Color() == Black {
			startRank = 1
		}
		one := Square{File: sq.File, Rank: sq.Rank + dr}
		if one.InBounds() && b.PieceAt(one) == NoPiece {
			moves = append(moves, Move{From: sq, To: one})
			two := Square{File: sq.File, Rank: sq.Rank + 2*dr}
			if sq.Rank == startRank && b.PieceAt(two) == NoPiece {
				moves = append(moves, Move{From: sq, To: two})
			}
		}
		for _, df := range [2]int{-1, 1} {
			to := Square{File: sq.File + df, Rank: sq.Rank + dr}
			if !to.InBounds() {
				continue
			}
			target := b.PieceAt(to)
			if target != NoPiece && target.Color() != p.Color() {
				moves = append(moves, Move{From: sq, To: to})
			}
			if to == enPassant {
				moves = append(moves, Move{From: sq, To: to})
			}
		}

	case Knight:
		for _, st := range knightSteps {
			to := Square{File: sq.File + st.df, Rank: sq.Rank + st.dr}
			if !to.InBounds() {
				continue
			}
			if target := b.PieceAt(to); target == NoPiece || target.Color() != p.Color() {
				moves = append(moves, Move{From: sq, To: to})
			}
		}

	case Bishop, Rook, Queen:
		for _, dir := range sliderDirs(p.Type()) {
			to := Square{File: sq.File + dir.df, Rank: sq.Rank + dir.dr}
			for to.InBounds() {
				target := b.PieceAt(to)
				if target == NoPiece {
					moves = append(moves, Move{From: sq, To: to})
				} else {
					if target.Color() != p.Color() {
						moves = append(moves, Move{From: sq, To: to})
					}
					break
				}
				to = Square{File: to.File + dir.df, Rank: to.Rank + dir.dr}
			}
		}

	case King:
		for _, st := range kingSteps {
			to := Square{File: sq.File + st.df, Rank: sq.Rank + st.dr}
			if !to.InBounds() {
				continue
			}
			if target := b.PieceAt(to); target == NoPiece || target.Color() != p.Color() {
				moves = append(moves, Move{From: sq, To: to})
			}
		}
	}
	return moves
}

// CheckLegal is the full legality gate. It validates coordinates,
// source piece and ownership, evaluates two-file king moves as castle
// attempts (rights, rook presence, empty corridor, and the no-check
// constraints on origin and crossed squares), matches everything else
// against the pseudo-legal set, and finally simulates the move on a
// cloned board to reject anything that leaves the mover's own king in
// check. The board is never modified.
func CheckLegal(b *Board, m Move, color Color, rights CastlingRights, enPassant Square) Verdict {
	v := Verdict{Reason: ReasonOK}

	if !m.From.InBounds() || !m.To.InBounds() {
		return Verdict{Reason: ReasonOutOfBounds}
	}

	p := b.PieceAt(m.From)
	if p == NoPiece {
		return Verdict{Reason: ReasonNoPiece}
	}
	if p.Color() != color {
		return Verdict{Reason: ReasonWrongColor}
	}

	target := b.PieceAt(m.To)
	if target != NoPiece && target.Color() == color {
		return Verdict{Reason: ReasonOccupiedByAlly}
	}

	if p.Type() == King && m.From.Rank == m.To.Rank && abs(m.To.File-m.From.File) == 2 {
		if reason := checkCastle(b, m, color, rights); reason != ReasonOK {
			return Verdict{Reason: reason}
		}
		v.IsCastle = true
	} else {
		found := false
		for _, pm := range PseudoLegalMoves(b, m.From, p, enPassant) {
			if pm.To == m.To {
				found = true
				break
			}
		}
		if !found {
			return Verdict{Reason: ReasonIllegalMove}
		}
		if p.Type() == Pawn && enPassant.IsValid() && m.To == enPassant && target == NoPiece {
			v.IsEnPassant = true
		}
	}

	// Simulate on a clone and verify the mover's king survives.
	test := b.Clone()
	if v.IsEnPassant {
		test.SetPiece(Square{File: m.To.File, Rank: m.From.Rank}, NoPiece)
	}
	if v.IsCastle {
		rookFrom, rookTo := castleRookSquares(m)
		rook := test.PieceAt(rookFrom)
		test.SetPiece(rookTo, rook)
		test.SetPiece(rookFrom, NoPiece)
	}
	test.SetPiece(m.To, p)
	test.SetPiece(m.From, NoPiece)

	kingSq, ok := FindKing(&test, color)
	if !ok {
		return Verdict{Reason: ReasonKingMissing, IsCastle: v.IsCastle, IsEnPassant: v.IsEnPassant}
	}
	if IsSquareAttacked(&test, kingSq, color.Other()) {
		return Verdict{Reason: ReasonKingInCheck, IsCastle: v.IsCastle, IsEnPassant: v.IsEnPassant}
	}

	v.Legal = true
	return v
}

// checkCastle validates a two-file king move as a castle attempt.
func checkCastle(b *Board, m Move, color Color, rights CastlingRights) Reason {
	rank := homeRank(color)
	if m.From.Rank != rank || m.To.Rank != rank {
		return ReasonIllegalCastle
	}

	var rookFile int
	var between []int
	var crossed []int
	switch m.To.File {
	case 6:
		if !rights.CanCastle(color, true) {
			return ReasonCastleRights
		}
		rookFile = 7
		between = []int{5, 6}
		crossed = []int{5, 6}
	case 2:
		if !rights.CanCastle(color, false) {
			return ReasonCastleRights
		}
		rookFile = 0
		between = []int{1, 2, 3}
		crossed = []int{3, 2}
	default:
		return ReasonIllegalCastle
	}

	rook := b.PieceAt(Square{File: rookFile, Rank: rank})
	if rook == NoPiece || rook.Type() != Rook || rook.Color() != color {
		return ReasonRookMissing
	}

	for _, file := range between {
		if b.PieceAt(Square{File: file, Rank: rank}) != NoPiece {
			return ReasonCastleBlocked
		}
	}

	enemy := color.Other()
	if IsSquareAttacked(b, m.From, enemy) {
		return ReasonKingInCheck
	}
	for _, file := range crossed {
		if IsSquareAttacked(b, Square{File: file, Rank: rank}, enemy) {
			return ReasonCastleThroughCheck
		}
	}

	return ReasonOK
}

// castleRookSquares returns the rook's origin and destination for a
// castling king move.
func castleRookSquares(m Move) (from, to Square) {
	if m.To.File == 6 {
		return Square{File: 7, Rank: m.From.Rank}, Square{File: 5, Rank: m.From.Rank}
	}
	return Square{File: 0, Rank: m.From.Rank}, Square{File: 3, Rank: m.From.Rank}
}

// UpdateCastlingRights removes rights invalidated by a move: both of a
// color's rights when its king moves, the matching corner right when a
// rook leaves its home square, and the matching corner right when a
// rook is captured on its home square.
func UpdateCastlingRights(rights CastlingRights, m Move, mover, captured Piece) CastlingRights {
	if mover.Type() == King {
		if mover.Color() == White {
			rights &^= WhiteKingSideCastle | WhiteQueenSideCastle
		} else {
			rights &^= BlackKingSideCastle | BlackQueenSideCastle
		}
	}
	if mover.Type() == Rook {
		rights = clearRookRight(rights, mover.Color(), m.From)
	}
	if captured != NoPiece && captured.Type() == Rook {
		rights = clearRookRight(rights, captured.Color(), m.To)
	}
	return rights
}

// clearRookRight removes the corner right matching a rook square.
func clearRookRight(rights CastlingRights, c Color, sq Square) CastlingRights {
	if sq.Rank != homeRank(c) {
		return rights
	}
	switch sq.File {
	case 0:
		if c == White {
			rights &^= WhiteQueenSideCastle
		} else {
			rights &^= BlackQueenSideCastle
		}
	case 7:
		if c == White {
			rights &^= WhiteKingSideCastle
		} else {
			rights &^= BlackKingSideCastle
		}
	}
	return rights
}

// MoveResult carries the state updates produced by a successful move
// application.
type MoveResult struct {
	Castling  CastlingRights
	EnPassant Square // new target after a double push, else NoSquare
	HalfMove  int
	FullMove  int
	Capture   Square // square the captured piece stood on, NoSquare if none
	RookFrom  Square // castle detail; NoSquare unless castling
	RookTo    Square
	Promotion PieceType // Queen when a pawn promoted, else NoPieceType
}

// Apply re-validates the move via CheckLegal and, if legal, mutates the
// board: the en-passant-captured pawn is removed, the mover relocated,
// the rook relocated for castling, and a pawn reaching its last rank
// replaced by a queen of the same color. The returned result carries
// the updated castling rights, en passant target, clocks, capture
// square, castle detail, and promotion marker. On an illegal move the
// board is untouched and the reason is returned.
func Apply(b *Board, m Move, color Color, rights CastlingRights, enPassant Square, halfmove, fullmove int) (MoveResult, Reason) {
	v := CheckLegal(b, m, color, rights, enPassant)
	if !v.Legal {
		return MoveResult{}, v.Reason
	}

	mover := b.PieceAt(m.From)
	captured := b.PieceAt(m.To)

	res := MoveResult{
		EnPassant: NoSquare,
		Capture:   NoSquare,
		RookFrom:  NoSquare,
		RookTo:    NoSquare,
		Promotion: NoPieceType,
	}

	if v.IsEnPassant {
		res.Capture = Square{File: m.To.File, Rank: m.From.Rank}
		b.SetPiece(res.Capture, NoPiece)
		captured = NewPiece(Pawn, color.Other())
	} else if captured != NoPiece {
		res.Capture = m.To
	}

	b.SetPiece(m.To, mover)
	b.SetPiece(m.From, NoPiece)

	if v.IsCastle {
		res.RookFrom, res.RookTo = castleRookSquares(m)
		rook := b.PieceAt(res.RookFrom)
		b.SetPiece(res.RookTo, rook)
		b.SetPiece(res.RookFrom, NoPiece)
	}

	if mover.Type() == Pawn && m.To.Rank == promotionRank(color) {
		b.SetPiece(m.To, NewPiece(Queen, color))
		res.Promotion = Queen
	}

	res.Castling = UpdateCastlingRights(rights, m, mover, captured)

	if mover.Type() == Pawn && abs(m.To.Rank-m.From.Rank) == 2 {
		res.EnPassant = Square{File: m.From.File, Rank: m.From.Rank + pawnDir(color)}
	}

	if mover.Type() == Pawn || res.Capture.IsValid() {
		res.HalfMove = 0
	} else {
		res.HalfMove = halfmove + 1
	}
	res.FullMove = fullmove
	if color == Black {
		res.FullMove = fullmove + 1
	}

	return res, ReasonOK
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
