package main

import (
	"flag"
	"fmt"
	"os"

	"chess-ai/engine"
	"chess-ai/rules"
)

func main() {
	fen := flag.String("fen", rules.Startpos().FEN(), "FEN string (defaults to initial position)")
	level := flag.String("level", "hard", "Difficulty tier: easy, medium or hard")
	seed := flag.Int64("seed", 0, "Random seed for easy/medium tiers (0 seeds from the clock)")
	flag.Parse()

	pos, err := rules.FromFEN(*fen)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	tier, err := engine.ParseDifficulty(*level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	var bot *engine.Bot
	if *seed != 0 {
		bot = engine.NewSeededBot(tier, *seed)
	} else {
		bot = engine.NewBot(tier)
	}

	move, ok := bot.BestMove(pos)
	if !ok {
		fmt.Printf("no legal moves (%s)\n", rules.GameOutcome(pos))
		return
	}

	// Single line: tier, move, SAN, eval after the move.
	next := pos.Apply(move)
	fmt.Printf("%s \t%s \t%s \t%+.1f\n", tier, move, rules.SAN(pos, move), engine.Evaluate(next))
}
