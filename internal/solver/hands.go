// internal/solver/hands.go
//
// Hand type and candidate-space enumeration.

package solver

import (
	"strings"

	"cardguess/internal/deck"
)

// Hand is a fixed-size set of distinct cards. The slice order is incidental:
// two hands are the same hand whenever they contain the same cards.
type Hand []deck.Card

func (h Hand) String() string {
	toks := make([]string, len(h))
	for i, c := range h {
		toks[i] = c.String()
	}
	return strings.Join(toks, " ")
}

// SameCards reports set equality between two hands of the same size.
func SameCards(a, b Hand) bool {
	if len(a) != len(b) {
		return false
	}
	for _, ca := range a {
		found := false
		for _, cb := range b {
			if ca == cb {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Combinations enumerates every n-card subset of cards, each exactly once,
// in lexicographic order of deck positions. Implemented as a choose-or-skip
// walk over the ordered deck, so no permutation duplicates are ever
// produced and C(52,4) = 270,725 hands materialize in one pass.
func Combinations(n int, cards []deck.Card) []Hand {
	out := make([]Hand, 0, binomial(len(cards), n))
	cur := make([]deck.Card, 0, n)
	var walk func(start int)
	walk = func(start int) {
		if len(cur) == n {
			out = append(out, append(Hand(nil), cur...))
			return
		}
		// Stop early once too few cards remain to fill the hand.
		for i := start; i <= len(cards)-(n-len(cur)); i++ {
			cur = append(cur, cards[i])
			walk(i + 1)
			cur = cur[:len(cur)-1]
		}
	}
	walk(0)
	return out
}

// SpaceSize is the number of distinct n-card hands in a full deck, C(52, n).
func SpaceSize(n int) int {
	return binomial(deck.Size, n)
}

func binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	out := 1
	for i := 1; i <= k; i++ {
		out = out * (n - k + i) / i
	}
	return out
}
