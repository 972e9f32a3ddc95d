// internal/solver/feedback.go
//
// Feedback scoring: the five-number signature a guess earns against a
// reference hand. Pure and total for equal-size, duplicate-free hands.

package solver

import (
	"fmt"

	"cardguess/internal/deck"
)

// Feedback is the score of a guess against a reference hand. Each field is
// bounded by the hand size. CorrectCards, CorrectRanks and CorrectSuits are
// symmetric in the two hands; LowerRanks and HigherRanks are relative to
// the guess's minimum and maximum rank.
type Feedback struct {
	CorrectCards int `json:"correctCards"`
	LowerRanks   int `json:"lowerRanks"`
	CorrectRanks int `json:"correctRanks"`
	HigherRanks  int `json:"higherRanks"`
	CorrectSuits int `json:"correctSuits"`
}

// AllCorrect reports whether f is the winning signature for hand size n.
func (f Feedback) AllCorrect(n int) bool {
	return f == Feedback{CorrectCards: n, CorrectRanks: n, CorrectSuits: n}
}

func (f Feedback) String() string {
	return fmt.Sprintf("%d correct, %d lower, %d same rank, %d higher, %d same suit",
		f.CorrectCards, f.LowerRanks, f.CorrectRanks, f.HigherRanks, f.CorrectSuits)
}

// Score computes the feedback for guess against reference.
//
// Counting rules:
//   - CorrectCards: exact (suit, rank) matches between the two hands.
//   - LowerRanks / HigherRanks: reference cards strictly below the guess's
//     minimum rank / strictly above its maximum rank. Ties never count.
//   - CorrectRanks / CorrectSuits: multiset intersections — each rank or
//     suit counts at most min(count in reference, count in guess) times,
//     so repeated ranks are never double counted.
//
// Like the two-pass scorer this is modeled on, it works over per-symbol
// count arrays rather than set membership.
func Score(reference, guess Hand) Feedback {
	var fb Feedback

	lo, hi := deck.Ace, deck.Two
	var guessRanks [int(deck.Ace) + 1]int
	var guessSuits [4]int
	for _, c := range guess {
		guessRanks[c.Rank]++
		guessSuits[c.Suit]++
		if c.Rank < lo {
			lo = c.Rank
		}
		if c.Rank > hi {
			hi = c.Rank
		}
	}

	var refRanks [int(deck.Ace) + 1]int
	var refSuits [4]int
	for _, c := range reference {
		refRanks[c.Rank]++
		refSuits[c.Suit]++
		if c.Rank < lo {
			fb.LowerRanks++
		}
		if c.Rank > hi {
			fb.HigherRanks++
		}
	}

	// Hands are small (≤ 4 cards); a direct scan beats building sets.
	for _, rc := range reference {
		for _, gc := range guess {
			if rc == gc {
				fb.CorrectCards++
				break
			}
		}
	}

	for r := deck.Two; r <= deck.Ace; r++ {
		fb.CorrectRanks += min(refRanks[r], guessRanks[r])
	}
	for s := 0; s < 4; s++ {
		fb.CorrectSuits += min(refSuits[s], guessSuits[s])
	}
	return fb
}
