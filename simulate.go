package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"cardguess/internal/deck"
	"cardguess/internal/results"
	"cardguess/internal/solver"
)

// maxRounds bounds a single self-play game; the engine converges in a
// handful of guesses, so hitting this means something is broken.
const maxRounds = 64

// runSimulate plays the engine against itself over random answers and
// reports the guess-count distribution.
func runSimulate(args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	size := fs.Int("size", 3, "hand size (2-4)")
	games := fs.Int("games", 200, "number of random answers to play")
	seed := fs.Int64("seed", 0, "RNG seed (0 = time-based)")
	dsn := fs.String("db", os.Getenv("RESULTS_DB"), "optional sqlite file for run summaries")
	_ = fs.Parse(args)

	if *size < 2 || *size > 4 {
		fmt.Fprintln(os.Stderr, "simulate: size must be 2, 3, or 4")
		os.Exit(2)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	// Draw all answers up front from one seeded source so a run is
	// reproducible regardless of goroutine scheduling.
	r := rand.New(rand.NewSource(*seed))
	answers := make([]solver.Hand, *games)
	for i := range answers {
		answers[i] = randomHand(r, *size)
	}

	fmt.Printf("simulating %d games, hand size %d, seed %d\n", *games, *size, *seed)
	bar := progressbar.Default(int64(*games))
	start := time.Now()

	var dist [maxRounds + 1]int
	var mu sync.Mutex
	var grp errgroup.Group
	grp.SetLimit(runtime.GOMAXPROCS(0))

	for _, answer := range answers {
		answer := answer
		grp.Go(func() error {
			rounds, err := playOut(answer)
			if err != nil {
				return fmt.Errorf("answer %s: %w", answer, err)
			}
			mu.Lock()
			dist[rounds]++
			mu.Unlock()
			_ = bar.Add(1)
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		log.Fatal().Err(err).Msg("simulation failed")
	}
	elapsed := time.Since(start)

	sum, worst := 0, 0
	for rounds, n := range dist {
		if n == 0 {
			continue
		}
		fmt.Printf("%2d guesses: %d\n", rounds, n)
		sum += rounds * n
		worst = rounds
	}
	avg := float64(sum) / float64(*games)
	fmt.Printf("average %.2f, worst %d, elapsed %v\n", avg, worst, elapsed.Round(time.Millisecond))

	if *dsn != "" {
		db, err := results.Open(*dsn)
		if err != nil {
			log.Fatal().Err(err).Str("db", *dsn).Msg("open results db")
		}
		defer db.Close()
		run := results.Run{
			HandSize:   *size,
			Games:      *games,
			AvgGuesses: avg,
			MaxGuesses: worst,
			Seed:       *seed,
			ElapsedMs:  elapsed.Milliseconds(),
		}
		if err := results.InsertRun(context.Background(), db, run); err != nil {
			log.Fatal().Err(err).Msg("record run")
		}
		log.Info().Str("db", *dsn).Float64("avg", avg).Msg("run recorded")
	}
}

// playOut runs one quiet game against a known answer and returns the number
// of guesses taken.
func playOut(answer solver.Hand) (int, error) {
	guesser, err := solver.NewGuesser(len(answer))
	if err != nil {
		return 0, err
	}
	for round := 1; round <= maxRounds; round++ {
		fb := solver.Score(answer, guesser.Guess)
		if fb.AllCorrect(len(answer)) {
			return round, nil
		}
		guesser, err = guesser.Refine(fb)
		if err != nil {
			return round, err
		}
	}
	return maxRounds, fmt.Errorf("no convergence within %d rounds", maxRounds)
}

// randomHand draws n distinct cards with a seeded source via a partial
// Fisher-Yates shuffle of a fresh deck.
func randomHand(r *rand.Rand, n int) solver.Hand {
	cards := deck.Full()
	for i := 0; i < n; i++ {
		j := i + r.Intn(len(cards)-i)
		cards[i], cards[j] = cards[j], cards[i]
	}
	return solver.Hand(cards[:n])
}
