package engine

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"golang.org/x/exp/slices"

	"chess-ai/rules"
)

// Difficulty selects one of the three move-selection strategies.
type Difficulty uint8

const (
	Easy Difficulty = iota
	Medium
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	}
	return fmt.Sprintf("difficulty(%d)", uint8(d))
}

// ParseDifficulty maps a tier name to its Difficulty, case-insensitively.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	}
	return Easy, fmt.Errorf("engine: unknown difficulty %q (want easy, medium or hard)", s)
}

const (
	// Chance that the Easy tier goes looking for a "bad" move.
	badMoveChance = 0.3
	// Fraction of the ranked move list the Medium tier draws from.
	mediumTopShare = 0.3
)

// Bot is the selection facade. The difficulty field is its only mutable
// state; the random source is injected at construction rather than taken
// from a process-wide generator. A Bot is not safe for concurrent use --
// give each concurrent caller its own, or serialize calls.
type Bot struct {
	level Difficulty
	rng   *rand.Rand
}

// NewBot returns a Bot at the given tier seeded from the clock.
func NewBot(level Difficulty) *Bot {
	return NewSeededBot(level, time.Now().UnixNano())
}

// NewSeededBot returns a Bot with a deterministic random stream; two bots
// built from the same seed make identical choices on identical input.
func NewSeededBot(level Difficulty, seed int64) *Bot {
	return &Bot{level: level, rng: rand.New(rand.NewSource(seed))}
}

// SetDifficulty switches the active tier for subsequent selections.
func (b *Bot) SetDifficulty(level Difficulty) {
	b.level = level
}

// Difficulty reports the active tier.
func (b *Bot) Difficulty() Difficulty {
	return b.level
}

// BestMove picks a move for the side to move in pos according to the
// active tier. ok is false when no legal move exists, whatever the tier;
// that is a terminal position, not an error. pos is never mutated.
func (b *Bot) BestMove(pos rules.Position) (move rules.Move, ok bool) {
	moves := pos.LegalMoves()
	if len(moves) == 0 {
		return rules.Move{}, false
	}
	switch b.level {
	case Easy:
		return b.easyMove(pos, moves), true
	case Medium:
		return b.mediumMove(pos, moves), true
	default:
		return hardMove(pos, moves), true
	}
}

// easyMove plays uniformly at random, except that 30% of the time it
// hunts for a "bad" candidate: one whose simulated result is checkmate or
// a check. If any exist it picks among those; otherwise it falls through
// to the uniform choice.
func (b *Bot) easyMove(pos rules.Position, moves []rules.Move) rules.Move {
	if b.rng.Float64() < badMoveChance {
		var bad []rules.Move
		for _, m := range moves {
			next := pos.Apply(m)
			if next.IsCheckmate() || next.InCheck() {
				bad = append(bad, m)
			}
		}
		if len(bad) > 0 {
			return bad[b.rng.Intn(len(bad))]
		}
	}
	return moves[b.rng.Intn(len(moves))]
}

// mediumMove ranks every legal move with the one-ply scorer and picks
// uniformly among the top ceil(30%) of the list. The sort is stable, so
// equal scores keep the generator's order and the top slice is
// deterministic for a fixed position.
func (b *Bot) mediumMove(pos rules.Position, moves []rules.Move) rules.Move {
	type scoredMove struct {
		move  rules.Move
		score Score
	}
	scored := make([]scoredMove, len(moves))
	for i, m := range moves {
		scored[i] = scoredMove{move: m, score: ScoreMove(pos, m)}
	}
	slices.SortStableFunc(scored, func(a, b scoredMove) bool {
		return a.score > b.score
	})

	top := int(math.Ceil(mediumTopShare * float64(len(moves))))
	if top < 1 {
		top = 1
	}
	return scored[b.rng.Intn(top)].move
}

// hardMove runs the fixed-depth search from every root move, maximizing
// when White is to move. The first move is the default; a later move
// displaces it only on a strictly better value, so selection is fully
// deterministic for a fixed position.
func hardMove(pos rules.Position, moves []rules.Move) rules.Move {
	maximizing := pos.SideToMove() == rules.White

	best := moves[0]
	bestValue := Search(pos.Apply(best), SearchDepth-1, !maximizing)
	for _, m := range moves[1:] {
		value := Search(pos.Apply(m), SearchDepth-1, !maximizing)
		if (maximizing && value > bestValue) || (!maximizing && value < bestValue) {
			best, bestValue = m, value
		}
	}
	return best
}
