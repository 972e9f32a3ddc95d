package solver

import (
	"testing"

	"cardguess/internal/deck"
)

func hand(t *testing.T, s string) Hand {
	t.Helper()
	cards, err := deck.ParseHand(s)
	if err != nil {
		t.Fatalf("bad hand %q: %v", s, err)
	}
	return Hand(cards)
}

func TestScoreKnownCases(t *testing.T) {
	cases := []struct {
		reference, guess string
		want             Feedback
	}{
		// Same set in a different order: everything matches.
		{"3C 4H", "4H 3C", Feedback{2, 0, 2, 0, 2}},
		// Ace above the guess range, deuce below it, one shared suit.
		{"AC 2C", "3C 4H", Feedback{0, 1, 0, 1, 1}},
		// Both reference cards above the guess's maximum rank.
		{"TC JC", "3C 4H", Feedback{0, 0, 0, 2, 1}},
		// One exact card, one rank below the guess's minimum.
		{"2C 3C", "3C 4H", Feedback{1, 1, 1, 0, 1}},
		// Boundary ranks tie with the guess's min/max: never lower/higher.
		{"3H 4D", "3C 4H", Feedback{0, 0, 2, 0, 1}},
	}
	for _, c := range cases {
		got := Score(hand(t, c.reference), hand(t, c.guess))
		if got != c.want {
			t.Errorf("Score(%s | %s) = %+v, want %+v", c.reference, c.guess, got, c.want)
		}
	}
}

func TestScoreIdentity(t *testing.T) {
	for _, s := range []string{"2C 3H", "5C 9D KH", "4C 7D TH KS", "AC AD AH AS"} {
		h := hand(t, s)
		n := len(h)
		want := Feedback{CorrectCards: n, CorrectRanks: n, CorrectSuits: n}
		if got := Score(h, h); got != want {
			t.Errorf("Score(%s, itself) = %+v, want %+v", s, got, want)
		}
		if !Score(h, h).AllCorrect(n) {
			t.Errorf("AllCorrect(%d) false for identity feedback of %s", n, s)
		}
	}
}

func TestScoreBounds(t *testing.T) {
	refs := []string{"2C 3H 4D", "AC KC QC", "7H 7D 7S"}
	guesses := []string{"5C 9D KH", "2C 3H 4D", "AH AS 2D"}
	for _, rs := range refs {
		for _, gs := range guesses {
			ref, g := hand(t, rs), hand(t, gs)
			fb := Score(ref, g)
			for i, v := range []int{fb.CorrectCards, fb.LowerRanks, fb.CorrectRanks, fb.HigherRanks, fb.CorrectSuits} {
				if v < 0 || v > len(ref) {
					t.Errorf("Score(%s | %s) component %d = %d out of [0,%d]", rs, gs, i, v, len(ref))
				}
			}
		}
	}
}

func TestScoreSymmetricComponents(t *testing.T) {
	a := hand(t, "2C 7H KD")
	b := hand(t, "7C 9H AS")
	ab := Score(a, b)
	ba := Score(b, a)
	if ab.CorrectCards != ba.CorrectCards || ab.CorrectRanks != ba.CorrectRanks || ab.CorrectSuits != ba.CorrectSuits {
		t.Errorf("set components not symmetric: %+v vs %+v", ab, ba)
	}
	// Lower/higher depend on the guess's rank span, so swapping flips them.
	if ab.LowerRanks == ba.LowerRanks && ab.HigherRanks == ba.HigherRanks {
		t.Errorf("expected asymmetric lower/higher for %+v vs %+v", ab, ba)
	}
}

func TestScoreMultisetRanks(t *testing.T) {
	// Two fours on each side: rank 4 counts twice, not four times.
	fb := Score(hand(t, "4C 4D"), hand(t, "4H 4S"))
	if fb.CorrectRanks != 2 {
		t.Errorf("CorrectRanks = %d, want 2 (bag intersection)", fb.CorrectRanks)
	}
	if fb.CorrectCards != 0 || fb.CorrectSuits != 0 {
		t.Errorf("unexpected card/suit matches: %+v", fb)
	}

	// One four versus two: count-min caps the rank at one.
	fb = Score(hand(t, "4C 5D"), hand(t, "4H 4S"))
	if fb.CorrectRanks != 1 {
		t.Errorf("CorrectRanks = %d, want 1", fb.CorrectRanks)
	}
}

func TestScoreMultisetSuits(t *testing.T) {
	// Two clubs versus one: suit C counts once.
	fb := Score(hand(t, "2C 9C"), hand(t, "5C 6H"))
	if fb.CorrectSuits != 1 {
		t.Errorf("CorrectSuits = %d, want 1 (bag intersection)", fb.CorrectSuits)
	}
}
