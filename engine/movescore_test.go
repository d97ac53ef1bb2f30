package engine

import (
	"testing"
)

func TestScoreMoveCaptureAndCenter(t *testing.T) {
	// exd5 takes a pawn on a central square: 10*1 + 2.
	pos := mustPos(t, "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2")
	if got := ScoreMove(pos, findMove(t, pos, "e4d5")); got != 12 {
		t.Fatalf("exd5: got %v, want 12", got)
	}
}

func TestScoreMoveCheckBonus(t *testing.T) {
	pos := mustPos(t, "4k3/8/8/8/8/8/3R4/4K3 w - - 0 1")

	if got := ScoreMove(pos, findMove(t, pos, "d2d8")); got != 5 {
		t.Fatalf("Rd8+: got %v, want 5", got)
	}
	if got := ScoreMove(pos, findMove(t, pos, "d2d4")); got != 2 {
		t.Fatalf("Rd4 (center): got %v, want 2", got)
	}
	if got := ScoreMove(pos, findMove(t, pos, "d2d3")); got != 0 {
		t.Fatalf("Rd3 (quiet): got %v, want 0", got)
	}
}

func TestScoreMoveMateStacksOnCheck(t *testing.T) {
	// A mating move scores the mate bonus on top of the check bonus.
	pos := mustPos(t, backRankFEN)
	if got := ScoreMove(pos, findMove(t, pos, "a1a8")); got != 1005 {
		t.Fatalf("Ra8#: got %v, want 1005", got)
	}
}

func TestScoreMoveQueenCapture(t *testing.T) {
	// Rook takes queen and checks from d8: 10*9 + 5.
	pos := mustPos(t, "3q3k/8/8/8/8/8/8/3R3K w - - 0 1")
	if got := ScoreMove(pos, findMove(t, pos, "d1d8")); got != 95 {
		t.Fatalf("Rxd8+: got %v, want 95", got)
	}
}
