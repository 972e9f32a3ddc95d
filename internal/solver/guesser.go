// internal/solver/guesser.go
//
// The guessing side of the engine: initial guess, consistency filtering,
// and next-guess selection over the surviving candidate space.
//
// State per round is a (current guess, candidate space) pair. Refine never
// mutates shared state: each round returns a fresh Guesser owning a fresh
// candidate slice, so callers can keep or discard old rounds freely.

package solver

import (
	"errors"
	"runtime"

	"golang.org/x/exp/constraints"
	"golang.org/x/sync/errgroup"

	"cardguess/internal/deck"
)

var (
	// ErrInvalidHandSize is returned for hand sizes outside 2..4.
	ErrInvalidHandSize = errors.New("hand size must be 2, 3, or 4")

	// ErrNoCandidates means the consistency filter removed every candidate.
	// Under honest feedback the true answer always survives filtering, so
	// this signals an inconsistency in the feedback stream, not a state the
	// engine can recover from.
	ErrNoCandidates = errors.New("no candidates consistent with feedback")
)

// Fixed starting guesses per hand size: suits spread out, ranks roughly
// 13/(n+1) apart. Tuned starting points, not derived from the deck.
var initialGuesses = map[int]Hand{
	2: mustHand("6C JH"),
	3: mustHand("5C 9D KH"),
	4: mustHand("4C 7D TH KS"),
}

func mustHand(s string) Hand {
	cards, err := deck.ParseHand(s)
	if err != nil {
		panic(err)
	}
	return Hand(cards)
}

// Guesser holds the engine's current guess and the hands still consistent
// with every feedback signature seen so far. The candidate slice keeps the
// enumeration order from Combinations; that order is the selection
// tie-break.
type Guesser struct {
	Guess      Hand
	Candidates []Hand
}

// NewGuesser starts a game of the given hand size. The candidate space is
// every n-card hand except the initial guess itself, which has already
// been played.
func NewGuesser(size int) (*Guesser, error) {
	first, ok := initialGuesses[size]
	if !ok {
		return nil, ErrInvalidHandSize
	}
	all := Combinations(size, deck.Full())
	cands := make([]Hand, 0, len(all)-1)
	for _, h := range all {
		if !SameCards(h, first) {
			cands = append(cands, h)
		}
	}
	return &Guesser{Guess: first, Candidates: cands}, nil
}

// Refine consumes the feedback earned by the current guess and returns the
// next round's state.
//
// A candidate c survives iff Score(c, guess) equals the observed feedback:
// had c been the answer, it would have produced exactly what we saw. The
// true answer therefore always survives. The guess just played is dropped,
// as is the newly selected guess, so no hand is ever proposed twice.
func (g *Guesser) Refine(fb Feedback) (*Guesser, error) {
	kept := make([]Hand, 0, len(g.Candidates))
	for _, c := range g.Candidates {
		if SameCards(c, g.Guess) {
			continue
		}
		if Score(c, g.Guess) == fb {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		return nil, ErrNoCandidates
	}

	// Size 2 affords the full expected-remaining cost over all candidate
	// pairs. For 3 and 4 cards that pass is quadratic in a much larger
	// space, so take the middle of the filtered list instead; it narrows
	// nearly as fast in practice.
	idx := len(kept) / 2
	if len(g.Guess) == 2 {
		idx = bestByExpectedRemaining(kept)
	}

	next := kept[idx]
	rest := make([]Hand, 0, len(kept)-1)
	rest = append(rest, kept[:idx]...)
	rest = append(rest, kept[idx+1:]...)
	return &Guesser{Guess: next, Candidates: rest}, nil
}

// bestByExpectedRemaining returns the index of the candidate minimizing
// expectedRemaining, ties going to the earliest index.
//
// Costs are independent per candidate, so they are computed in parallel
// shards; the argmin itself runs sequentially afterwards to keep the
// tie-break deterministic.
func bestByExpectedRemaining(cands []Hand) int {
	costs := make([]float64, len(cands))
	workers := runtime.GOMAXPROCS(0)
	shard := (len(cands) + workers - 1) / workers

	var grp errgroup.Group
	for lo := 0; lo < len(cands); lo += shard {
		lo, hi := lo, min(lo+shard, len(cands))
		grp.Go(func() error {
			for i := lo; i < hi; i++ {
				costs[i] = expectedRemaining(cands[i], cands)
			}
			return nil
		})
	}
	_ = grp.Wait() // workers never fail

	return argMin(costs)
}

// expectedRemaining is the expected size of the candidate space after
// guessing g, averaged over which group the unknown answer falls into:
// candidates are grouped by their feedback signature against g, and the
// cost is Σ groupSize² / Σ groupSize. Lower means a tighter expected
// narrowing.
func expectedRemaining(g Hand, cands []Hand) float64 {
	groups := make(map[Feedback]int)
	for _, c := range cands {
		groups[Score(c, g)]++
	}
	sumSq := 0
	for _, size := range groups {
		sumSq += size * size
	}
	return float64(sumSq) / float64(len(cands))
}

// argMin returns the index of the first minimum of xs.
func argMin[T constraints.Ordered](xs []T) int {
	best := 0
	for i, x := range xs {
		if x < xs[best] {
			best = i
		}
	}
	return best
}
