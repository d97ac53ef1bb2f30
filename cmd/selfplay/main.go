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
	white := flag.String("white", "hard", "White's difficulty tier")
	black := flag.String("black", "hard", "Black's difficulty tier")
	maxMoves := flag.Int("maxmoves", 200, "Abort after this many full moves")
	seed := flag.Int64("seed", 1, "Random seed shared by both bots")
	flag.Parse()

	pos, err := rules.FromFEN(*fen)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	wTier, err := engine.ParseDifficulty(*white)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	bTier, err := engine.ParseDifficulty(*black)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	bots := map[rules.Color]*engine.Bot{
		rules.White: engine.NewSeededBot(wTier, *seed),
		rules.Black: engine.NewSeededBot(bTier, *seed+1),
	}

	for moveNo := 1; moveNo <= *maxMoves; moveNo++ {
		for _, side := range []rules.Color{rules.White, rules.Black} {
			if pos.SideToMove() != side {
				continue // partial first move from a FEN mid-game
			}
			move, ok := bots[side].BestMove(pos)
			if !ok {
				printResult(pos)
				return
			}
			san := rules.SAN(pos, move)
			if side == rules.White {
				fmt.Printf("%d. %s", moveNo, san)
			} else {
				fmt.Printf(" %s\n", san)
			}
			pos = pos.Apply(move)
			if pos.IsTerminal() {
				if side == rules.White {
					fmt.Println()
				}
				printResult(pos)
				return
			}
		}
	}
	fmt.Printf("aborted after %d moves: %s\n", *maxMoves, pos.FEN())
}

func printResult(pos rules.Position) {
	fmt.Printf("result %s (%s)\n", rules.GameOutcome(pos), pos.FEN())
}
