package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"chess-ai/engine"
	"chess-ai/rules"
)

func main() {
	uciLoop(os.Stdin, os.Stdout)
}

type uciState struct {
	pos rules.Position
	bot *engine.Bot
}

func newUCIState() *uciState {
	return &uciState{
		pos: rules.Startpos(),
		bot: engine.NewBot(engine.Hard),
	}
}

func uciLoop(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	state := newUCIState()
	for scanner.Scan() {
		if quit := handleCommand(state, scanner.Text(), out); quit {
			return
		}
	}
}

func handleCommand(state *uciState, line string, out io.Writer) (quit bool) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 { // ignore blank lines
		return false
	}
	switch strings.ToLower(tokens[0]) {
	case "uci":
		fmt.Fprintln(out, "id name chess-ai")
		fmt.Fprintln(out, "id author chess-ai")
		fmt.Fprintln(out, "option name Difficulty type combo default hard var easy var medium var hard")
		fmt.Fprintln(out, "uciok")
	case "isready":
		fmt.Fprintln(out, "readyok")
	case "ucinewgame":
		state.pos = rules.Startpos()
	case "setoption":
		handleSetOption(state, tokens, out)
	case "position":
		handlePosition(state, tokens, out)
	case "go":
		move, ok := state.bot.BestMove(state.pos)
		if !ok {
			fmt.Fprintln(out, "bestmove (none)")
			return false
		}
		fmt.Fprintln(out, "bestmove", move)
	case "quit":
		return true
	}
	return false
}

// setoption name Difficulty value <easy|medium|hard>
func handleSetOption(state *uciState, tokens []string, out io.Writer) {
	var name, value string
	for i := 1; i < len(tokens)-1; i++ {
		switch strings.ToLower(tokens[i]) {
		case "name":
			name = tokens[i+1]
		case "value":
			value = tokens[i+1]
		}
	}
	if !strings.EqualFold(name, "Difficulty") {
		fmt.Fprintln(out, "info string Unknown option", name)
		return
	}
	level, err := engine.ParseDifficulty(value)
	if err != nil {
		fmt.Fprintln(out, "info string", err)
		return
	}
	state.bot.SetDifficulty(level)
}

// position [startpos | fen <fen>] [moves <uci>...]
func handlePosition(state *uciState, tokens []string, out io.Writer) {
	if len(tokens) < 2 {
		fmt.Fprintln(out, "info string Malformed position command")
		return
	}

	moveIdx := len(tokens)
	for i, tok := range tokens {
		if strings.ToLower(tok) == "moves" {
			moveIdx = i
			break
		}
	}

	switch strings.ToLower(tokens[1]) {
	case "startpos":
		state.pos = rules.Startpos()
	case "fen":
		pos, err := rules.FromFEN(strings.Join(tokens[2:moveIdx], " "))
		if err != nil {
			fmt.Fprintln(out, "info string", err)
			return
		}
		state.pos = pos
	default:
		fmt.Fprintln(out, "info string Malformed position command option", tokens[1])
		return
	}

	for i := moveIdx + 1; i < len(tokens); i++ {
		move, ok := rules.ParseMove(state.pos, tokens[i], "")
		if !ok {
			fmt.Fprintln(out, "info string Illegal move", tokens[i])
			return
		}
		state.pos = state.pos.Apply(move)
	}
}
