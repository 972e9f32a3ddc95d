package solver

import (
	"testing"

	"cardguess/internal/deck"
)

func TestCombinationsCount(t *testing.T) {
	want := map[int]int{2: 1326, 3: 22100, 4: 270725}
	for n, count := range want {
		hands := Combinations(n, deck.Full())
		if len(hands) != count {
			t.Errorf("Combinations(%d) produced %d hands, want %d", n, len(hands), count)
		}
		if got := SpaceSize(n); got != count {
			t.Errorf("SpaceSize(%d) = %d, want %d", n, got, count)
		}
	}
}

func TestCombinationsDistinct(t *testing.T) {
	hands := Combinations(2, deck.Full())
	seen := make(map[string]struct{}, len(hands))
	for _, h := range hands {
		if len(h) != 2 {
			t.Fatalf("hand %v has size %d", h, len(h))
		}
		if h[0] == h[1] {
			t.Fatalf("hand %v repeats a card", h)
		}
		key := h.String()
		if _, dup := seen[key]; dup {
			t.Fatalf("duplicate hand %s", key)
		}
		seen[key] = struct{}{}
	}
}

func TestCombinationsOrder(t *testing.T) {
	hands := Combinations(2, deck.Full())
	if got := hands[0].String(); got != "2C 3C" {
		t.Errorf("first hand = %q, want \"2C 3C\"", got)
	}
	if got := hands[len(hands)-1].String(); got != "KS AS" {
		t.Errorf("last hand = %q, want \"KS AS\"", got)
	}
}

func TestSameCards(t *testing.T) {
	a := hand(t, "3C 4H")
	b := hand(t, "4H 3C")
	c := hand(t, "3C 4D")
	if !SameCards(a, b) {
		t.Errorf("%s and %s should be the same hand", a, b)
	}
	if SameCards(a, c) {
		t.Errorf("%s and %s should differ", a, c)
	}
	if SameCards(a, hand(t, "3C 4H 5S")) {
		t.Errorf("hands of different sizes should never match")
	}
}
