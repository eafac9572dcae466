package board

import "fmt"

// Move is a bare origin/destination pair. It carries no piece or
// capture information; those are derived from board contents when the
// move is checked or applied.
type Move struct {
	From Square
	To   Square
}

// NoMove is the sentinel for "no move" (e.g. a terminal search result).
var NoMove = Move{From: NoSquare, To: NoSquare}

// NewMove creates a move between two squares.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to}
}

// IsValid reports whether both endpoints are board squares.
func (m Move) IsValid() bool {
	return m.From.InBounds() && m.To.InBounds()
}

// Less orders moves by (from file, from rank, to file, to rank).
// Move generation sorts by this key so that search results are
// reproducible: ties always resolve toward the earliest move.
func (m Move) Less(o Move) bool {
	if m.From.File != o.From.File {
		return m.From.File < o.From.File
	}
	if m.From.Rank != o.From.Rank {
		return m.From.Rank < o.From.Rank
	}
	if m.To.File != o.To.File {
		return m.To.File < o.To.File
	}
	return m.To.Rank < o.To.Rank
}

// String returns the move in coordinate notation (e.g. "e2e4").
func (m Move) String() string {
	if !m.IsValid() {
		return "0000"
	}
	return m.From.String() + m.To.String()
}

// LAN renders the move in long algebraic notation, appending "=X" when
// a promotion piece is given (e.g. "e7e8=Q").
func (m Move) LAN(promotion PieceType) string {
	s := m.From.String() + m.To.String()
	if promotion != NoPieceType {
		s += "=" + string(promotion.Letter())
	}
	return s
}

// ParseMove parses a coordinate move string such as "e2e4". A trailing
// promotion suffix ("=Q" or a bare letter, any case) is accepted and
// discarded: promotion is decided by move application, which always
// promotes to a queen.
func ParseMove(s string) (Move, error) {
	if len(s) < 4 {
		return NoMove, fmt.Errorf("invalid move string: %q", s)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NoMove, fmt.Errorf("invalid move string: %q", s)
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NoMove, fmt.Errorf("invalid move string: %q", s)
	}
	switch rest := s[4:]; {
	case rest == "":
	case len(rest) == 1 && isPromoLetter(rest[0]):
	case len(rest) == 2 && rest[0] == '=' && isPromoLetter(rest[1]):
	default:
		return NoMove, fmt.Errorf("invalid move string: %q", s)
	}
	return Move{From: from, To: to}, nil
}

func isPromoLetter(c byte) bool {
	switch c {
	case 'Q', 'q', 'R', 'r', 'B', 'b', 'N', 'n':
		return true
	}
	return false
}
