package board

import "fmt"

// CastlingRights represents the available castling options.
type CastlingRights uint8

const (
	WhiteKingSideCastle  CastlingRights = 1 << iota // K
	WhiteQueenSideCastle                            // Q
	BlackKingSideCastle                             // k
	BlackQueenSideCastle                            // q
	NoCastling           CastlingRights = 0
	AllCastling          CastlingRights = WhiteKingSideCastle | WhiteQueenSideCastle | BlackKingSideCastle | BlackQueenSideCastle
)

// String returns the rights in the canonical "KQkq" order, or "-" when
// no rights remain.
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	s := ""
	if cr&WhiteKingSideCastle != 0 {
		s += "K"
	}
	if cr&WhiteQueenSideCastle != 0 {
		s += "Q"
	}
	if cr&BlackKingSideCastle != 0 {
		s += "k"
	}
	if cr&BlackQueenSideCastle != 0 {
		s += "q"
	}
	return s
}

// CanCastle reports whether the given side still has the given right.
func (cr CastlingRights) CanCastle(c Color, kingSide bool) bool {
	var flag CastlingRights
	switch {
	case c == White && kingSide:
		flag = WhiteKingSideCastle
	case c == White:
		flag = WhiteQueenSideCastle
	case kingSide:
		flag = BlackKingSideCastle
	default:
		flag = BlackQueenSideCastle
	}
	return cr&flag != 0
}

// ParseCastlingRights parses a rights string such as "KQkq" or "-".
func ParseCastlingRights(s string) (CastlingRights, error) {
	if s == "-" || s == "" {
		return NoCastling, nil
	}
	var cr CastlingRights
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'K':
			cr |= WhiteKingSideCastle
		case 'Q':
			cr |= WhiteQueenSideCastle
		case 'k':
			cr |= BlackKingSideCastle
		case 'q':
			cr |= BlackQueenSideCastle
		default:
			return NoCastling, fmt.Errorf("invalid castling rights: %q", s)
		}
	}
	return cr, nil
}

// State is the full game state threaded explicitly through rule and
// search calls. It is a value type; copying a State yields a fully
// independent position (the Board is an embedded value).
type State struct {
	Board     Board
	Turn      Color
	Castling  CastlingRights
	EnPassant Square // NoSquare when there is no target
	HalfMove  int    // plies since the last pawn move or capture
	FullMove  int    // starts at 1, increments after Black moves
}

// StartingState returns the standard initial position.
func StartingState() State {
	s, err := ParseFEN(StartFEN)
	if err != nil {
		panic("board: bad start FEN: " + err.Error())
	}
	return s
}

// Apply validates and applies a move for the side to move, mutating the
// state in place: board contents, castling rights, en passant target,
// the clocks, and the turn. On failure the state is untouched and the
// reason identifies the violated rule.
func (s *State) Apply(m Move) (MoveResult, Reason) {
	res, reason := Apply(&s.Board, m, s.Turn, s.Castling, s.EnPassant, s.HalfMove, s.FullMove)
	if reason != ReasonOK {
		return res, reason
	}
	s.Castling = res.Castling
	s.EnPassant = res.EnPassant
	s.HalfMove = res.HalfMove
	s.FullMove = res.FullMove
	s.Turn = s.Turn.Other()
	return res, ReasonOK
}

// LegalMoves enumerates every legal move for the side to move.
func (s *State) LegalMoves() []Move {
	return LegalMoves(&s.Board, s.Turn, s.Castling, s.EnPassant)
}

// HasAnyLegalMove reports whether the side to move has a legal reply.
func (s *State) HasAnyLegalMove() bool {
	return HasAnyLegalMove(&s.Board, s.Turn, s.Castling, s.EnPassant)
}
