package engine

import (
	"testing"

	"github.com/mdeclerk/WebChess/internal/board"
)

func TestSearchStartingPositionDepthOne(t *testing.T) {
	s := board.StartingState()

	move, info := SearchBestMove(s, 1)
	if !move.IsValid() {
		t.Fatal("no move returned for the starting position")
	}
	if info.NoLegalMoves {
		t.Error("NoLegalMoves set for the starting position")
	}
	// Twenty root moves, each a single leaf; the root itself is free.
	if info.Nodes != 20 {
		t.Errorf("nodes = %d, want 20", info.Nodes)
	}
	if info.Depth != 1 {
		t.Errorf("depth = %d, want 1", info.Depth)
	}
}

func TestSearchIsDeterministic(t *testing.T) {
	for _, fen := range []string{
		board.StartFEN,
		"r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R b KQkq - 3 3",
	} {
		s1 := mustParseFEN(t, fen)
		s2 := mustParseFEN(t, fen)

		for depth := 1; depth <= 3; depth++ {
			m1, i1 := SearchBestMove(s1, depth)
			m2, i2 := SearchBestMove(s2, depth)
			if m1 != m2 {
				t.Errorf("depth %d: moves differ: %v vs %v", depth, m1, m2)
			}
			if i1.Score != i2.Score {
				t.Errorf("depth %d: scores differ: %d vs %d", depth, i1.Score, i2.Score)
			}
			if i1.Nodes != i2.Nodes {
				t.Errorf("depth %d: node counts differ: %d vs %d", depth, i1.Nodes, i2.Nodes)
			}
		}
	}
}

func TestSearchFindsMateInOne(t *testing.T) {
	s := mustParseFEN(t, "6k1/8/6K1/8/8/8/8/R7 w - - 0 1")

	move, info := SearchBestMove(s, 1)
	if got := move.String(); got != "a1a8" {
		t.Errorf("best move = %q, want a1a8", got)
	}
	if info.Score != MateScore {
		t.Errorf("score = %d, want %d", info.Score, MateScore)
	}
}

func TestSearchCheckmatePositionIsTerminal(t *testing.T) {
	// Black to move, mated on the back rank. White is the winner, so
	// the terminal score is +MateScore.
	s := mustParseFEN(t, "R6k/6pp/8/8/8/8/8/K7 b - - 0 1")

	move, info := SearchBestMove(s, 3)
	if move.IsValid() {
		t.Errorf("move = %v, want none", move)
	}
	if !info.NoLegalMoves {
		t.Error("NoLegalMoves not set")
	}
	if info.Nodes != 1 {
		t.Errorf("nodes = %d, want 1", info.Nodes)
	}
	if info.Score != MateScore {
		t.Errorf("score = %d, want %d", info.Score, MateScore)
	}
}

func TestSearchStalematePositionIsTerminal(t *testing.T) {
	s := mustParseFEN(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")

	move, info := SearchBestMove(s, 2)
	if move.IsValid() {
		t.Errorf("move = %v, want none", move)
	}
	if !info.NoLegalMoves {
		t.Error("NoLegalMoves not set")
	}
	if info.Score != 0 {
		t.Errorf("score = %d, want 0 for stalemate", info.Score)
	}
}

func TestSearchPrefersCapturingMaterial(t *testing.T) {
	// White queen can take a free rook on h8; depth two lets Black
	// respond, so only genuinely free material keeps its score.
	s := mustParseFEN(t, "4k2r/8/8/8/8/8/8/QK6 w - - 0 1")

	move, info := SearchBestMove(s, 2)
	if got := move.String(); got != "a1h8" {
		t.Errorf("best move = %q, want a1h8", got)
	}
	if info.Score <= 0 {
		t.Errorf("score = %d, want White advantage", info.Score)
	}
}

func TestSearchDoesNotMutateInput(t *testing.T) {
	s := board.StartingState()
	fen := s.FEN()

	SearchBestMove(s, 2)

	if got := s.FEN(); got != fen {
		t.Errorf("search mutated the input state:\n got %q\nwant %q", got, fen)
	}
}

func TestClampDepth(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-3, 1}, {0, 1}, {1, 1}, {3, 3}, {4, 4}, {9, 4},
	}
	for _, tt := range tests {
		if got := ClampDepth(tt.in); got != tt.want {
			t.Errorf("ClampDepth(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
