// Package engine implements the move-selection core: a positional
// evaluator, a one-ply move scorer, fixed-depth alpha-beta search and a
// difficulty facade dispatching between three selection strategies.
package engine

import (
	"chess-ai/rules"
)

// Score is a signed evaluation in pawn units. Positive always favors
// White, regardless of whose turn it is.
type Score float64

// =============================================================================
// SCORE CONSTANTS
// =============================================================================
const (
	// MateScore dominates every reachable material and positional sum;
	// ordinary evaluation never produces it.
	MateScore Score = 10000
	DrawScore Score = 0

	centerControlBonus Score = 0.5
	mobilityWeight     Score = 0.1
)

// Piece values in pawn units, indexed by rules.Piece.
var pieceValue = [7]Score{
	rules.Pawn:   1,
	rules.Knight: 3,
	rules.Bishop: 3,
	rules.Rook:   5,
	rules.Queen:  9,
	rules.King:   100,
}

// The four central squares: d4, e4, d5, e5.
var centerSquares = [4]rules.Square{27, 28, 35, 36}

// Evaluate scores pos from White's perspective. Checkmate and draws map
// to the sentinels; otherwise the score is material plus center control
// plus a mobility term. The mobility term is one-sided on purpose: only
// the side whose turn it is contributes, so the same material balance
// evaluates differently depending on whose move it is.
func Evaluate(pos rules.Position) Score {
	moves := pos.LegalMoves()
	if len(moves) == 0 {
		if pos.InCheck() {
			if pos.SideToMove() == rules.White {
				return -MateScore
			}
			return MateScore
		}
		return DrawScore // stalemate
	}
	if pos.IsDraw() {
		return DrawScore
	}

	var score Score
	for sq := rules.Square(0); sq < 64; sq++ {
		piece, color, ok := pos.PieceAt(sq)
		if !ok {
			continue
		}
		if color == rules.White {
			score += pieceValue[piece]
		} else {
			score -= pieceValue[piece]
		}
	}

	for _, sq := range centerSquares {
		if _, color, ok := pos.PieceAt(sq); ok {
			if color == rules.White {
				score += centerControlBonus
			} else {
				score -= centerControlBonus
			}
		}
	}

	mobility := mobilityWeight * Score(len(moves))
	if pos.SideToMove() == rules.White {
		score += mobility
	} else {
		score -= mobility
	}
	return score
}

func isCenter(sq rules.Square) bool {
	for _, c := range centerSquares {
		if sq == c {
			return true
		}
	}
	return false
}
