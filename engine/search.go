package engine

import (
	"math"

	"chess-ai/rules"
)

// SearchDepth is the fixed search horizon in plies for the Hard tier.
const SearchDepth = 3

// Search returns the minimax value of pos searched to the given depth
// with alpha-beta pruning. maximizing selects whose turn the current
// layer plays from: true for White. Pruning never changes the value, so
// the result is the exact fixed-depth minimax value.
func Search(pos rules.Position, depth int, maximizing bool) Score {
	return alphabeta(pos, depth, Score(math.Inf(-1)), Score(math.Inf(1)), maximizing)
}

func alphabeta(pos rules.Position, depth int, alpha, beta Score, maximizing bool) Score {
	moves := pos.LegalMoves()
	if depth <= 0 || len(moves) == 0 || pos.IsTerminal() {
		return Evaluate(pos)
	}

	// Moves stay in generation order; no ordering heuristic is applied.
	if maximizing {
		best := Score(math.Inf(-1))
		for _, m := range moves {
			score := alphabeta(pos.Apply(m), depth-1, alpha, beta, false)
			if score > best {
				best = score
			}
			if score > alpha {
				alpha = score
			}
			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := Score(math.Inf(1))
	for _, m := range moves {
		score := alphabeta(pos.Apply(m), depth-1, alpha, beta, true)
		if score < best {
			best = score
		}
		if score < beta {
			beta = score
		}
		if beta <= alpha {
			break
		}
	}
	return best
}
