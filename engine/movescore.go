package engine

import (
	"chess-ai/rules"
)

// Capture weights for the one-ply scorer. There is deliberately no king
// entry: a king is never captured, and an unrecognized kind contributes 0.
var captureValue = [7]Score{
	rules.Pawn:   1,
	rules.Knight: 3,
	rules.Bishop: 3,
	rules.Rook:   5,
	rules.Queen:  9,
}

const (
	captureWeight   Score = 10
	centerDestBonus Score = 2
	checkBonus      Score = 5
	mateBonus       Score = 1000
)

// ScoreMove ranks a single candidate without recursive search by
// simulating it on a copy of pos. The result is side-agnostic: higher is
// better for whichever side is choosing. The mate bonus stacks on top of
// the check bonus, since a mating position is also a checking one.
func ScoreMove(pos rules.Position, m rules.Move) Score {
	next := pos.Apply(m)

	var score Score
	if m.Captured != rules.NoPiece {
		score += captureWeight * captureValue[m.Captured]
	}
	if isCenter(m.To) {
		score += centerDestBonus
	}
	if next.InCheck() {
		score += checkBonus
	}
	if next.IsCheckmate() {
		score += mateBonus
	}
	return score
}
