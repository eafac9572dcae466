package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FEN renders the state as a standard six-field FEN record.
func (s *State) FEN() string {
	var sb strings.Builder
	for rank := 0; rank < 8; rank++ {
		if rank > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for file := 0; file < 8; file++ {
			p := s.Board.PieceAt(Square{File: file, Rank: rank})
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(p.Code())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
	}

	side := "w"
	if s.Turn == Black {
		side = "b"
	}

	return fmt.Sprintf("%s %s %s %s %d %d",
		sb.String(), side, s.Castling, s.EnPassant, s.HalfMove, s.FullMove)
}

// ParseFEN parses a FEN string into a State. The halfmove clock and
// fullmove number fields are optional and default to 0 and 1.
func ParseFEN(fen string) (State, error) {
	s := State{EnPassant: NoSquare, FullMove: 1}

	parts := strings.Fields(fen)
	if len(parts) < 4 {
		return s, fmt.Errorf("invalid FEN: need at least 4 fields, got %d", len(parts))
	}

	if err := parsePlacement(&s.Board, parts[0]); err != nil {
		return s, err
	}

	switch parts[1] {
	case "w":
		s.Turn = White
	case "b":
		s.Turn = Black
	default:
		return s, fmt.Errorf("invalid side to move: %q", parts[1])
	}

	castling, err := ParseCastlingRights(parts[2])
	if err != nil {
		return s, err
	}
	s.Castling = castling

	if parts[3] != "-" {
		sq, err := ParseSquare(parts[3])
		if err != nil {
			return s, fmt.Errorf("invalid en passant square: %q", parts[3])
		}
		s.EnPassant = sq
	}

	if len(parts) > 4 {
		hm, err := strconv.Atoi(parts[4])
		if err != nil || hm < 0 {
			return s, fmt.Errorf("invalid halfmove clock: %q", parts[4])
		}
		s.HalfMove = hm
	}

	if len(parts) > 5 {
		fm, err := strconv.Atoi(parts[5])
		if err != nil || fm < 1 {
			return s, fmt.Errorf("invalid fullmove number: %q", parts[5])
		}
		s.FullMove = fm
	}

	return s, nil
}

// parsePlacement fills the board from the piece placement field.
func parsePlacement(b *Board, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("invalid piece placement: need 8 ranks, got %d", len(ranks))
	}

	for rank, rankStr := range ranks {
		file := 0
		for i := 0; i < len(rankStr); i++ {
			c := rankStr[i]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			p := PieceFromCode(c)
			if p == NoPiece {
				return fmt.Errorf("invalid piece character: %c", c)
			}
			if file > 7 {
				return fmt.Errorf("too many squares in rank %d", 8-rank)
			}
			b.SetPiece(Square{File: file, Rank: rank}, p)
			file++
		}
		if file != 8 {
			return fmt.Errorf("rank %d has %d squares, need 8", 8-rank, file)
		}
	}

	return nil
}
