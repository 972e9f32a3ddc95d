package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"
	"github.com/rs/zerolog/log"

	"cardguess/internal/deck"
	"cardguess/internal/solver"
)

var (
	cInfo   = color.New(color.FgCyan)
	cWarn   = color.New(color.FgHiYellow)
	cGuess  = color.New(color.FgWhite, color.Bold)
	cWin    = color.New(color.FgGreen, color.Bold)
	cPrompt = color.New(color.FgHiWhite)
)

// runPlay is the interactive loop: the user holds the answer, the engine
// guesses. One outer iteration per answer; "exit" or EOF ends the session.
func runPlay() {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	cInfo.Println("cardguess — think of 2 to 4 distinct cards and I will guess them.")
	cInfo.Println("Cards are rank then suit, e.g. \"2C TH AS\". Type \"exit\" to quit.")

	for {
		cPrompt.Print("answer> ")
		input, err := line.Prompt("")
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				cInfo.Println("Goodbye!")
				return
			}
			log.Fatal().Err(err).Msg("read input")
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if strings.EqualFold(input, "exit") {
			cInfo.Println("Goodbye!")
			return
		}
		line.AppendHistory(input)

		answer, err := deck.ParseHand(input)
		if err != nil {
			cWarn.Println("Invalid selection, please try again.")
			continue
		}

		if err := solve(solver.Hand(answer)); err != nil {
			switch {
			case errors.Is(err, solver.ErrInvalidHandSize):
				cWarn.Println("Error:", err)
				os.Exit(1)
			case errors.Is(err, solver.ErrNoCandidates):
				// Should be unreachable with honest feedback; it means the
				// answer was filtered out of its own candidate space.
				cWarn.Println("Internal inconsistency:", err)
				os.Exit(1)
			default:
				cWarn.Println("Error:", err)
				os.Exit(1)
			}
		}
	}
}

// solve runs one full game against a known answer, printing each round.
func solve(answer solver.Hand) error {
	guesser, err := solver.NewGuesser(len(answer))
	if err != nil {
		return err
	}

	for round := 1; ; round++ {
		if len(guesser.Guess) != len(answer) {
			return fmt.Errorf("guess %q has wrong size for answer", guesser.Guess)
		}
		fb := solver.Score(answer, guesser.Guess)
		cGuess.Printf("guess %d: %s", round, guesser.Guess)
		fmt.Printf("  (%s)\n", fb)

		if fb.AllCorrect(len(answer)) {
			cWin.Printf("Got it in %d guesses!\n\n", round)
			return nil
		}
		guesser, err = guesser.Refine(fb)
		if err != nil {
			return err
		}
	}
}
