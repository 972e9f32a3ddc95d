// internal/deck/deck.go
//
// The 52-card deck in canonical order, plus random hand selection for
// engine-held games.

package deck

import (
	"crypto/rand"
	"math/big"
)

// Size is the number of cards in a standard deck.
const Size = 52

// Full returns the standard deck in canonical order: suit-major
// (C, D, H, S), ranks ascending within each suit. Candidate enumeration
// is defined over this order.
func Full() []Card {
	deck := make([]Card, 0, Size)
	for s := Club; s <= Spade; s++ {
		for r := Two; r <= Ace; r++ {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	return deck
}

// RandomHand returns n distinct cards chosen uniformly from the deck.
// Uses crypto/rand; callers that need reproducible draws (the simulator)
// shuffle a deck with a seeded source instead.
func RandomHand(n int) []Card {
	deck := Full()
	hand := make([]Card, 0, n)
	for i := 0; i < n; i++ {
		jBig, _ := rand.Int(rand.Reader, big.NewInt(int64(len(deck)-i)))
		j := int(jBig.Int64()) + i
		deck[i], deck[j] = deck[j], deck[i]
		hand = append(hand, deck[i])
	}
	return hand
}
