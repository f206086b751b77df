package card

import (
	"math/rand"
	"testing"
)

func TestParse_RoundTripsEveryCard(t *testing.T) {
	for _, c := range NewDeck() {
		got, err := Parse(c.Code())
		if err != nil {
			t.Fatalf("Parse(%q) err: %v", c.Code(), err)
		}
		if got != c {
			t.Fatalf("Parse(%q) = %v, want %v", c.Code(), got, c)
		}
	}
}

func TestParse_AcceptsTenAsDigits(t *testing.T) {
	c, err := Parse("10h")
	if err != nil {
		t.Fatalf("Parse err: %v", err)
	}
	if c.Rank() != Ten || c.Suit() != Heart {
		t.Fatalf("unexpected card %v", c)
	}
	if c.String() != "10♥" {
		t.Fatalf("unexpected String(): %q", c.String())
	}
}

func TestParse_RejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "A", "Ax", "1s", "11s", "Zs"} {
		if _, err := Parse(s); err == nil {
			t.Fatalf("expected error for %q", s)
		}
	}
}

func TestValue_AceHigh(t *testing.T) {
	if v := MustParse("As").Value(); v != 14 {
		t.Fatalf("ace value = %d, want 14", v)
	}
	if v := MustParse("2c").Value(); v != 2 {
		t.Fatalf("deuce value = %d, want 2", v)
	}
}

func TestNewDeck_HasFiftyTwoUniqueCards(t *testing.T) {
	deck := NewDeck()
	if deck.Count() != 52 {
		t.Fatalf("deck size = %d", deck.Count())
	}
	if c, dup := deck.Duplicate(); dup {
		t.Fatalf("duplicate card %v", c)
	}
}

func TestShuffle_IsPermutationAndSeedDeterministic(t *testing.T) {
	a := NewDeck()
	b := NewDeck()
	a.Shuffle(rand.New(rand.NewSource(7)))
	b.Shuffle(rand.New(rand.NewSource(7)))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different order at %d", i)
		}
	}
	if _, dup := a.Duplicate(); dup {
		t.Fatalf("shuffle produced a duplicate")
	}
	for _, c := range NewDeck() {
		if !a.Contains(c) {
			t.Fatalf("shuffle lost card %v", c)
		}
	}
}

func TestDeal_ConsumesFromTop(t *testing.T) {
	deck := MustParseList("As Kd 2c")
	c, ok := deck.Deal()
	if !ok || c != MustParse("As") {
		t.Fatalf("Deal = %v,%v", c, ok)
	}
	rest, ok := deck.PopCards(2)
	if !ok || rest[0] != MustParse("Kd") || rest[1] != MustParse("2c") {
		t.Fatalf("PopCards = %v,%v", rest, ok)
	}
	if _, ok := deck.Deal(); ok {
		t.Fatalf("expected empty deck")
	}
}
