// internal/deck/card.go
//
// Playing-card value types for the guessing engine.
// Defines:
//   - Suit: one of four suits with a fixed canonical order (C < D < H < S).
//   - Rank: 2..10, J, Q, K, A with a fixed canonical order.
//   - Card: a (suit, rank) pair with structural equality.
//
// The canonical orders matter: candidate enumeration and guess-selection
// tie-breaks are defined over deck order, so the orders here are part of
// the engine's determinism contract.

package deck

import (
	"errors"
	"fmt"
	"strings"
)

// Suit is one of the four suits, ordered Club < Diamond < Heart < Spade.
type Suit uint8

const (
	Club Suit = iota
	Diamond
	Heart
	Spade
)

// Rank is a card rank, ordered Two < ... < Ten < Jack < Queen < King < Ace.
// The numeric value of a Rank equals its face value (Two = 2, Ace = 14),
// so ranks compare directly with < and >.
type Rank uint8

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

const (
	suitSymbols = "CDHS"
	// Indexed by Rank value; positions 0 and 1 are unused.
	rankSymbols = "  23456789TJQKA"
)

// Card is an immutable (suit, rank) pair. Equality is structural.
type Card struct {
	Suit Suit
	Rank Rank
}

func (s Suit) String() string {
	if int(s) >= len(suitSymbols) {
		return "?"
	}
	return string(suitSymbols[s])
}

func (r Rank) String() string {
	if r < Two || r > Ace {
		return "?"
	}
	return string(rankSymbols[r])
}

// String renders the two-character notation: rank symbol then suit symbol,
// e.g. "3C", "TH", "AS".
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// ErrInvalidSelection is the validation failure for user-entered hands:
// empty input, malformed tokens, or duplicate cards.
var ErrInvalidSelection = errors.New("invalid selection")

// ParseCard parses a two-character token like "3C" or "th" (case
// insensitive) into a Card.
func ParseCard(tok string) (Card, error) {
	t := strings.ToUpper(strings.TrimSpace(tok))
	if len(t) != 2 {
		return Card{}, fmt.Errorf("%w: bad card %q", ErrInvalidSelection, tok)
	}
	r := strings.IndexByte(rankSymbols[Two:], t[0])
	if r < 0 {
		return Card{}, fmt.Errorf("%w: bad rank in %q", ErrInvalidSelection, tok)
	}
	s := strings.IndexByte(suitSymbols, t[1])
	if s < 0 {
		return Card{}, fmt.Errorf("%w: bad suit in %q", ErrInvalidSelection, tok)
	}
	return Card{Suit: Suit(s), Rank: Rank(r) + Two}, nil
}

// ParseHand parses a whitespace-separated hand string into distinct cards.
// Rejects empty input and duplicate cards with ErrInvalidSelection.
func ParseHand(s string) ([]Card, error) {
	toks := strings.Fields(s)
	if len(toks) == 0 {
		return nil, fmt.Errorf("%w: empty hand", ErrInvalidSelection)
	}
	cards := make([]Card, 0, len(toks))
	seen := make(map[Card]struct{}, len(toks))
	for _, tok := range toks {
		c, err := ParseCard(tok)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[c]; dup {
			return nil, fmt.Errorf("%w: duplicate card %s", ErrInvalidSelection, c)
		}
		seen[c] = struct{}{}
		cards = append(cards, c)
	}
	return cards, nil
}
