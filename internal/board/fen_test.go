package board

import (
	"testing"

	"github.com/mdeclerk/WebChess/internal/testutil"
)

func TestStartingStateFEN(t *testing.T) {
	s := StartingState()

	if got := s.FEN(); got != StartFEN {
		t.Errorf("FEN() = %q, want %q", got, StartFEN)
	}
	if s.Turn != White {
		t.Errorf("Turn = %v, want White", s.Turn)
	}
	if s.Castling != AllCastling {
		t.Errorf("Castling = %v, want KQkq", s.Castling)
	}
	if s.EnPassant.IsValid() {
		t.Errorf("EnPassant = %v, want none", s.EnPassant)
	}
	if s.HalfMove != 0 || s.FullMove != 1 {
		t.Errorf("clocks = %d/%d, want 0/1", s.HalfMove, s.FullMove)
	}
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"8/P7/8/8/8/8/k6K/8 w - - 12 40",
		"R6k/6pp/8/8/8/8/8/K7 b - - 0 1",
		"4k3/8/8/8/8/8/8/4K2R w K - 3 20",
	}

	for _, fen := range fens {
		s, err := ParseFEN(fen)
		testutil.AssertNoError(t, err, fen)
		if got := s.FEN(); got != fen {
			t.Errorf("round trip changed FEN:\n got %q\nwant %q", got, fen)
		}
	}
}

func TestParseFENRejectsMalformed(t *testing.T) {
	fens := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",              // too few fields
		"rnbqkbnr/pppppppp/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -",       // seven ranks
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPX/RNBQKBNR w KQkq -",     // bad piece
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq -",     // bad side
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KXkq -",     // bad rights
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9",    // bad ep square
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - x 1", // bad clock
	}

	for _, fen := range fens {
		if _, err := ParseFEN(fen); err == nil {
			t.Errorf("ParseFEN(%q): expected error", fen)
		}
	}
}

func TestCastlingRightsString(t *testing.T) {
	tests := []struct {
		cr   CastlingRights
		want string
	}{
		{AllCastling, "KQkq"},
		{NoCastling, "-"},
		{WhiteKingSideCastle | BlackQueenSideCastle, "Kq"},
		{BlackKingSideCastle, "k"},
	}

	for _, tt := range tests {
		if got := tt.cr.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
		parsed, err := ParseCastlingRights(tt.want)
		testutil.AssertNoError(t, err, tt.want)
		if parsed != tt.cr {
			t.Errorf("ParseCastlingRights(%q) = %v, want %v", tt.want, parsed, tt.cr)
		}
	}
}
