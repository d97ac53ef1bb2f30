package main

import (
	"strings"
	"testing"

	"chess-ai/engine"
	"chess-ai/rules"
)

func runCommands(t *testing.T, state *uciState, lines ...string) string {
	t.Helper()
	var out strings.Builder
	for _, line := range lines {
		handleCommand(state, line, &out)
	}
	return out.String()
}

func TestUCIHandshake(t *testing.T) {
	out := runCommands(t, newUCIState(), "uci", "isready")
	for _, want := range []string{"id name chess-ai", "option name Difficulty", "uciok", "readyok"} {
		if !strings.Contains(out, want) {
			t.Fatalf("handshake output missing %q:\n%s", want, out)
		}
	}
}

func TestPositionStartposWithMoves(t *testing.T) {
	state := newUCIState()
	runCommands(t, state, "position startpos moves e2e4 e7e5")

	if state.pos.SideToMove() != rules.White {
		t.Fatalf("expected White to move, got %s", state.pos.SideToMove())
	}
	if piece, color, ok := state.pos.PieceAt(28); !ok || piece != rules.Pawn || color != rules.White {
		t.Fatalf("expected white pawn on e4")
	}
	if piece, color, ok := state.pos.PieceAt(36); !ok || piece != rules.Pawn || color != rules.Black {
		t.Fatalf("expected black pawn on e5")
	}
}

func TestPositionFEN(t *testing.T) {
	state := newUCIState()
	fen := "6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1"
	out := runCommands(t, state, "position fen "+fen)
	if strings.Contains(out, "info string") {
		t.Fatalf("unexpected complaint: %s", out)
	}
	if got := state.pos.FEN(); got != fen {
		t.Fatalf("position fen: got %q, want %q", got, fen)
	}
}

func TestIllegalMoveReported(t *testing.T) {
	out := runCommands(t, newUCIState(), "position startpos moves e2e5")
	if !strings.Contains(out, "info string Illegal move e2e5") {
		t.Fatalf("expected illegal-move diagnostic, got: %s", out)
	}
}

func TestMalformedFENReported(t *testing.T) {
	out := runCommands(t, newUCIState(), "position fen not a fen at all")
	if !strings.Contains(out, "info string") {
		t.Fatalf("expected malformed-FEN diagnostic, got: %s", out)
	}
}

func TestSetOptionDifficulty(t *testing.T) {
	state := newUCIState()
	runCommands(t, state, "setoption name Difficulty value easy")
	if got := state.bot.Difficulty(); got != engine.Easy {
		t.Fatalf("difficulty after setoption: got %s, want easy", got)
	}

	out := runCommands(t, state, "setoption name Difficulty value grandmaster")
	if !strings.Contains(out, "info string") {
		t.Fatalf("expected diagnostic for unknown tier, got: %s", out)
	}
	if got := state.bot.Difficulty(); got != engine.Easy {
		t.Fatalf("unknown tier must not change the setting, got %s", got)
	}
}

func TestGoReturnsLegalBestmove(t *testing.T) {
	state := newUCIState()
	out := runCommands(t, state, "position startpos", "go")

	fields := strings.Fields(out)
	if len(fields) != 2 || fields[0] != "bestmove" {
		t.Fatalf("unexpected go output: %q", out)
	}
	if _, ok := rules.ParseMove(rules.Startpos(), fields[1], ""); !ok {
		t.Fatalf("bestmove %q is not legal in the initial position", fields[1])
	}
}

func TestGoOnTerminalPosition(t *testing.T) {
	state := newUCIState()
	out := runCommands(t, state,
		"position fen rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3",
		"go")
	if !strings.Contains(out, "bestmove (none)") {
		t.Fatalf("expected bestmove (none), got: %s", out)
	}
}

func TestQuit(t *testing.T) {
	var out strings.Builder
	if quit := handleCommand(newUCIState(), "quit", &out); !quit {
		t.Fatalf("quit must end the loop")
	}
	if quit := handleCommand(newUCIState(), "isready", &out); quit {
		t.Fatalf("isready must not end the loop")
	}
}
