package engine

import "github.com/mdeclerk/WebChess/internal/board"

// MateScore dwarfs any material and positional score.
const MateScore = 100000

// Search depth bounds. Callers clamp the requested depth into this
// range before invoking the search; it is the only latency control.
const (
	DepthMin = 1
	DepthMax = 4
)

// ClampDepth forces a requested depth into [DepthMin, DepthMax].
func ClampDepth(depth int) int {
	if depth < DepthMin {
		return DepthMin
	}
	if depth > DepthMax {
		return DepthMax
	}
	return depth
}

// SearchInfo describes a completed search.
type SearchInfo struct {
	Depth        int
	Nodes        int
	Score        int // centipawns, White-positive
	NoLegalMoves bool
}

// SearchBestMove selects a move for the side to move in s using
// depth-bounded minimax with alpha-beta pruning. With no legal moves
// the position is terminal: the result is NoMove, the terminal
// (mate/stalemate) score, a node count of 1, and NoLegalMoves set.
// Otherwise moves are explored in generator order on cloned states;
// White keeps the maximum child score and Black the minimum, replacing
// the incumbent only on strict improvement so that ties resolve to the
// earliest move in generator order. The root itself is not counted as
// a node.
func SearchBestMove(s board.State, depth int) (board.Move, SearchInfo) {
	moves := s.LegalMoves()
	if len(moves) == 0 {
		return board.NoMove, SearchInfo{
			Depth:        depth,
			Nodes:        1,
			Score:        terminalScore(&s.Board, s.Turn),
			NoLegalMoves: true,
		}
	}

	nodes := 0
	bestMove := board.NoMove
	bestScore := 0
	haveBest := false

	for _, m := range moves {
		child := s
		if _, reason := child.Apply(m); reason != board.ReasonOK {
			continue
		}
		score, childNodes := minimax(child, depth-1, -MateScore, MateScore)
		nodes += childNodes

		if !haveBest {
			bestMove, bestScore, haveBest = m, score, true
			continue
		}
		if s.Turn == board.White {
			if score > bestScore {
				bestMove, bestScore = m, score
			}
		} else {
			if score < bestScore {
				bestMove, bestScore = m, score
			}
		}
	}

	// Every application failed: fall back to the static evaluation of
	// the unmodified root board.
	if !haveBest {
		bestScore = Evaluate(&s.Board)
	}

	return bestMove, SearchInfo{Depth: depth, Nodes: nodes, Score: bestScore}
}

// minimax evaluates the position for the side to move in s and returns
// (score, nodes visited). A node with no legal moves scores as
// terminal even at depth zero; a depth-zero node with moves left
// scores statically. White raises alpha toward its running maximum and
// Black lowers beta toward its running minimum; siblings are pruned
// once beta <= alpha.
func minimax(s board.State, depth, alpha, beta int) (int, int) {
	moves := s.LegalMoves()
	if depth <= 0 || len(moves) == 0 {
		if len(moves) == 0 {
			return terminalScore(&s.Board, s.Turn), 1
		}
		return Evaluate(&s.Board), 1
	}

	nodes := 0
	if s.Turn == board.White {
		value := -MateScore
		for _, m := range moves {
			child := s
			if _, reason := child.Apply(m); reason != board.ReasonOK {
				continue
			}
			score, childNodes := minimax(child, depth-1, alpha, beta)
			nodes += childNodes
			if score > value {
				value = score
			}
			if value > alpha {
				alpha = value
			}
			if beta <= alpha {
				break
			}
		}
		return value, nodes
	}

	value := MateScore
	for _, m := range moves {
		child := s
		if _, reason := child.Apply(m); reason != board.ReasonOK {
			continue
		}
		score, childNodes := minimax(child, depth-1, alpha, beta)
		nodes += childNodes
		if score < value {
			value = score
		}
		if value < beta {
			beta = value
		}
		if beta <= alpha {
			break
		}
	}
	return value, nodes
}

// terminalScore scores a position where color has no legal moves: a
// mated White scores -MateScore, a mated Black +MateScore, and a
// stalemate 0.
func terminalScore(b *board.Board, color board.Color) int {
	if board.IsInCheck(b, color) {
		if color == board.White {
			return -MateScore
		}
		return MateScore
	}
	return 0
}
