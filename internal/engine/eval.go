// Package engine implements the static evaluator and the depth-bounded
// minimax search.
package engine

import (
	"math"

	"github.com/mdeclerk/WebChess/internal/board"
)

// Material values in centipawns. The king carries no material value;
// losing it is handled by mate scores, not by evaluation.
const (
	PawnValue   = 100
	KnightValue = 320
	BishopValue = 330
	RookValue   = 500
	QueenValue  = 900
	KingValue   = 0
)

var pieceValues = [6]int{PawnValue, KnightValue, BishopValue, RookValue, QueenValue, KingValue}

// Piece-square tables, indexed [rank][file] with rank 0 at the top,
// from White's viewpoint. Black reads the vertically mirrored row, so
// placement incentives are symmetric between the colors.
var pawnTable = [8][8]int{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{5, 10, 10, -20, -20, 10, 10, 5},
	{5, -5, -10, 0, 0, -10, -5, 5},
	{0, 0, 0, 20, 20, 0, 0, 0},
	{5, 5, 10, 25, 25, 10, 5, 5},
	{10, 10, 20, 30, 30, 20, 10, 10},
	{50, 50, 50, 50, 50, 50, 50, 50},
	{0, 0, 0, 0, 0, 0, 0, 0},
}

var knightTable = [8][8]int{
	{-50, -40, -30, -30, -30, -30, -40, -50},
	{-40, -20, 0, 0, 0, 0, -20, -40},
	{-30, 0, 10, 15, 15, 10, 0, -30},
	{-30, 5, 15, 20, 20, 15, 5, -30},
	{-30, 0, 15, 20, 20, 15, 0, -30},
	{-30, 5, 10, 15, 15, 10, 5, -30},
	{-40, -20, 0, 5, 5, 0, -20, -40},
	{-50, -40, -30, -30, -30, -30, -40, -50},
}

var bishopTable = [8][8]int{
	{-20, -10, -10, -10, -10, -10, -10, -20},
	{-10, 0, 0, 0, 0, 0, 0, -10},
	{-10, 0, 5, 10, 10, 5, 0, -10},
	{-10, 5, 5, 10, 10, 5, 5, -10},
	{-10, 0, 10, 10, 10, 10, 0, -10},
	{-10, 10, 10, 10, 10, 10, 10, -10},
	{-10, 5, 0, 0, 0, 0, 5, -10},
	{-20, -10, -10, -10, -10, -10, -10, -20},
}

var rookTable = [8][8]int{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{5, 10, 10, 10, 10, 10, 10, 5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{0, 0, 0, 5, 5, 0, 0, 0},
}

var queenTable = [8][8]int{
	{-20, -10, -10, -5, -5, -10, -10, -20},
	{-10, 0, 0, 0, 0, 0, 0, -10},
	{-10, 0, 5, 5, 5, 5, 0, -10},
	{-5, 0, 5, 5, 5, 5, 0, -5},
	{0, 0, 5, 5, 5, 5, 0, -5},
	{-10, 5, 5, 5, 5, 5, 0, -10},
	{-10, 0, 5, 0, 0, 0, 0, -10},
	{-20, -10, -10, -5, -5, -10, -10, -20},
}

var kingTable = [8][8]int{
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-20, -30, -30, -40, -40, -30, -30, -20},
	{-10, -20, -20, -20, -20, -20, -20, -10},
	{20, 20, 0, 0, 0, 0, 20, 20},
	{20, 30, 10, 0, 0, 10, 30, 20},
}

var positionTables = [6]*[8][8]int{
	&pawnTable, &knightTable, &bishopTable, &rookTable, &queenTable, &kingTable,
}

// positionalBonus returns the piece-square bonus for a piece on sq.
func positionalBonus(p board.Piece, sq board.Square) int {
	pt := p.Type()
	if pt >= board.NoPieceType {
		return 0
	}
	table := positionTables[pt]
	if p.Color() == board.White {
		return table[sq.Rank][sq.File]
	}
	return table[7-sq.Rank][sq.File]
}

// Evaluate scores a position in centipawns from White's perspective:
// material plus piece-square bonus for every occupied square, White
// adding and Black subtracting. It is a pure function of the board.
func Evaluate(b *board.Board) int {
	score := 0
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			sq := board.Square{File: file, Rank: rank}
			p := b.PieceAt(sq)
			if p == board.NoPiece {
				continue
			}
			value := pieceValues[p.Type()] + positionalBonus(p, sq)
			if p.Color() == board.White {
				score += value
			} else {
				score -= value
			}
		}
	}
	return score
}

// WinProbability maps a centipawn score to a White-win probability via
// the logistic transform 1/(1+e^(-score/400)). It is symmetric around
// 0.5: p(s) + p(-s) = 1.
func WinProbability(score int) float64 {
	return 1.0 / (1.0 + math.Exp(-float64(score)/400.0))
}
