// internal/game/engine.go
//
// Session engine for both roles of the game.
// Responsibilities:
//   - Create answerer sessions with a fixed or random hidden hand.
//   - Validate and score guesses: size check, then feedback via the solver.
//   - Track state transitions: playing → won.
//   - Create and advance guesser (assist) sessions.
//
// Validation of card notation happens at the boundary (deck.ParseHand);
// this package assumes duplicate-free hands and only checks sizes.

package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"cardguess/internal/deck"
	"cardguess/internal/solver"
)

// ErrSizeMismatch is returned when a guess has a different number of cards
// than the hidden hand.
var ErrSizeMismatch = errors.New("guess size does not match hand size")

// ErrFinished is returned for guesses against an already-won session.
var ErrFinished = errors.New("game finished")

// New constructs an answerer session of the given hand size.
// If withAnswer is empty, a random hand is drawn; otherwise it is parsed
// and must match size.
func New(size int, withAnswer string) (*Game, error) {
	if size < 2 || size > 4 {
		return nil, solver.ErrInvalidHandSize
	}
	var ans solver.Hand
	if withAnswer == "" {
		ans = solver.Hand(deck.RandomHand(size))
	} else {
		cards, err := deck.ParseHand(withAnswer)
		if err != nil {
			return nil, err
		}
		if len(cards) != size {
			return nil, fmt.Errorf("%w: answer has %d cards, want %d", ErrSizeMismatch, len(cards), size)
		}
		ans = solver.Hand(cards)
	}
	return &Game{ID: randomID(), Answer: ans}, nil
}

// ApplyGuess scores a guess against the hidden hand, mutating the session.
// Returns the feedback, the new state string ("playing"/"won"), or an error.
func (g *Game) ApplyGuess(guess solver.Hand) (solver.Feedback, string, error) {
	if g.Finished {
		return solver.Feedback{}, g.state(), ErrFinished
	}
	if len(guess) != len(g.Answer) {
		return solver.Feedback{}, g.state(), ErrSizeMismatch
	}
	fb := solver.Score(g.Answer, guess)
	g.Guesses++
	if fb.AllCorrect(len(g.Answer)) {
		g.Finished, g.Won = true, true
	}
	return fb, g.state(), nil
}

// state reports a coarse string representation of the current game state.
func (g *Game) state() string {
	if g.Finished {
		return "won"
	}
	return "playing"
}

// NewAssist constructs a guesser session; its first guess is ready
// immediately in Guesser.Guess.
func NewAssist(size int) (*Assist, error) {
	gu, err := solver.NewGuesser(size)
	if err != nil {
		return nil, err
	}
	return &Assist{ID: randomID(), Guesser: gu, Rounds: 1}, nil
}

// Next consumes the feedback earned by the current guess and advances the
// session. An all-correct signature marks the session solved and echoes the
// winning guess.
func (a *Assist) Next(fb solver.Feedback) (solver.Hand, string, error) {
	if a.Done {
		return nil, a.state(), ErrFinished
	}
	if fb.AllCorrect(len(a.Guesser.Guess)) {
		a.Done = true
		return a.Guesser.Guess, a.state(), nil
	}
	refined, err := a.Guesser.Refine(fb)
	if err != nil {
		return nil, a.state(), err
	}
	a.Guesser = refined
	a.Rounds++
	return refined.Guess, a.state(), nil
}

func (a *Assist) state() string {
	if a.Done {
		return "solved"
	}
	return "guessing"
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
