package game

import (
	"errors"
	"testing"

	"cardguess/internal/deck"
	"cardguess/internal/solver"
)

func hand(t *testing.T, s string) solver.Hand {
	t.Helper()
	cards, err := deck.ParseHand(s)
	if err != nil {
		t.Fatalf("bad hand %q: %v", s, err)
	}
	return solver.Hand(cards)
}

func TestNewValidation(t *testing.T) {
	for _, n := range []int{0, 1, 5} {
		if _, err := New(n, ""); !errors.Is(err, solver.ErrInvalidHandSize) {
			t.Errorf("New(%d): want ErrInvalidHandSize, got %v", n, err)
		}
	}
	if _, err := New(3, "2C 3H"); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("answer/size mismatch: want ErrSizeMismatch, got %v", err)
	}
	if _, err := New(2, "2C 2C"); !errors.Is(err, deck.ErrInvalidSelection) {
		t.Errorf("duplicate answer: want ErrInvalidSelection, got %v", err)
	}
}

func TestNewRandomAnswer(t *testing.T) {
	g, err := New(4, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Answer) != 4 {
		t.Fatalf("random answer has %d cards, want 4", len(g.Answer))
	}
	if g.ID == "" {
		t.Error("missing session ID")
	}
}

func TestApplyGuess(t *testing.T) {
	g, err := New(2, "2C 3H")
	if err != nil {
		t.Fatal(err)
	}

	if _, _, err := g.ApplyGuess(hand(t, "2C 3H 4D")); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("oversized guess: want ErrSizeMismatch, got %v", err)
	}
	if g.Guesses != 0 {
		t.Errorf("rejected guess counted: %d", g.Guesses)
	}

	fb, state, err := g.ApplyGuess(hand(t, "2C 4H"))
	if err != nil {
		t.Fatal(err)
	}
	if state != "playing" || g.Finished {
		t.Errorf("state = %q after partial match", state)
	}
	if fb.CorrectCards != 1 {
		t.Errorf("CorrectCards = %d, want 1", fb.CorrectCards)
	}

	fb, state, err = g.ApplyGuess(hand(t, "3H 2C"))
	if err != nil {
		t.Fatal(err)
	}
	if state != "won" || !g.Won || !g.Finished {
		t.Errorf("exact guess (any order) should win, state = %q", state)
	}
	if !fb.AllCorrect(2) {
		t.Errorf("winning feedback = %+v", fb)
	}
	if g.Guesses != 2 {
		t.Errorf("Guesses = %d, want 2", g.Guesses)
	}

	if _, _, err := g.ApplyGuess(hand(t, "2C 3H")); !errors.Is(err, ErrFinished) {
		t.Errorf("guess after win: want ErrFinished, got %v", err)
	}
}

func TestAssistFlow(t *testing.T) {
	answer := hand(t, "4C 3H 2D")
	a, err := NewAssist(3)
	if err != nil {
		t.Fatal(err)
	}
	if a.Rounds != 1 || len(a.Guesser.Guess) != 3 {
		t.Fatalf("fresh assist: rounds %d, guess %s", a.Rounds, a.Guesser.Guess)
	}

	for i := 0; i < 10; i++ {
		fb := solver.Score(answer, a.Guesser.Guess)
		guess, state, err := a.Next(fb)
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if state == "solved" {
			if !solver.SameCards(guess, answer) {
				t.Fatalf("solved with %s, answer was %s", guess, answer)
			}
			if _, _, err := a.Next(fb); !errors.Is(err, ErrFinished) {
				t.Errorf("Next after solved: want ErrFinished, got %v", err)
			}
			return
		}
	}
	t.Fatalf("assist did not solve %s within 10 rounds", answer)
}

func TestAssistInvalidSize(t *testing.T) {
	if _, err := NewAssist(7); !errors.Is(err, solver.ErrInvalidHandSize) {
		t.Errorf("want ErrInvalidHandSize, got %v", err)
	}
}

func TestAssistInconsistentFeedback(t *testing.T) {
	a, err := NewAssist(2)
	if err != nil {
		t.Fatal(err)
	}
	impossible := solver.Feedback{CorrectCards: 2}
	if _, _, err := a.Next(impossible); !errors.Is(err, solver.ErrNoCandidates) {
		t.Errorf("want ErrNoCandidates, got %v", err)
	}
}
