package npc

import (
	"math/rand"
	"testing"

	"github.com/paulhankin/poker"

	"headsup-holdem/card"
	"headsup-holdem/holdem"
)

func TestEquity_PreflopRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	cases := []struct {
		hole     string
		min, max float64
	}{
		{"As Ah", 0.80, 0.90},
		{"7c 2d", 0.27, 0.42},
	}
	for _, tc := range cases {
		eq, err := Equity(card.MustParseList(tc.hole), nil, 3000, rng)
		if err != nil {
			t.Fatalf("%s: %v", tc.hole, err)
		}
		if eq < tc.min || eq > tc.max {
			t.Errorf("%s: equity %.3f outside [%.2f, %.2f]", tc.hole, eq, tc.min, tc.max)
		}
	}
}

func TestEquity_NutsOnTheRiverAlwaysWin(t *testing.T) {
	eq, err := Equity(card.MustParseList("As Ks"), card.MustParseList("Qs Js Ts 2c 3d"), 200, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	if eq != 1 {
		t.Fatalf("royal flush equity = %v, want 1", eq)
	}
}

func TestEquity_RejectsBadInput(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if _, err := Equity(card.MustParseList("As As"), nil, 10, rng); err == nil {
		t.Fatalf("expected duplicate error")
	}
	if _, err := Equity(card.MustParseList("As"), nil, 10, rng); err == nil {
		t.Fatalf("expected hole size error")
	}
}

func TestEquityBrain_FoldsTrashToBigBet(t *testing.T) {
	view := preflopView("7c 2d")
	view.BetToMatch = 310
	view.ToCall = 305
	view.MinTotal = 610
	view.RaisesThisStreet = 1

	persona := *mustPersona(t, "grinder")
	persona.Brain.FoldThreshold = 0.45
	brain := NewEquityBrain(&persona, 5)
	if d := brain.Decide(view); d.Action != (holdem.Fold{}) {
		t.Fatalf("expected fold, got %v (%s)", d.Action, d.Reason)
	}

	view = preflopView("As Ah")
	if d := brain.Decide(view); d.Action.Type() != holdem.ActionRaise {
		t.Fatalf("expected raise with aces, got %v (%s)", d.Action, d.Reason)
	}
}

// The local evaluator and poker.Eval7 must order random 7-card hands the same way.
func TestEvalBestOf7_AgreesWithPokerEval7(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	for i := 0; i < 2000; i++ {
		deck := card.NewDeck()
		deck.Shuffle(rng)
		a := deck[:7].Clone()
		b := append(card.CardList{deck[7], deck[8]}, deck[2:7]...)

		local := holdem.EvalBestOf7(a).Score.Compare(holdem.EvalBestOf7(b).Score)
		pa, pb := eval7(t, a), eval7(t, b)
		ref := 0
		switch {
		case pa > pb:
			ref = 1
		case pa < pb:
			ref = -1
		}
		if local != ref {
			t.Fatalf("ordering mismatch for %v vs %v: local %d, poker %d", a, b, local, ref)
		}
	}
}

func eval7(t *testing.T, cs card.CardList) int16 {
	t.Helper()
	pcs, err := toPokerCards(cs)
	if err != nil {
		t.Fatal(err)
	}
	var arr [7]poker.Card
	copy(arr[:], pcs)
	return poker.Eval7(&arr)
}

func TestDescribe(t *testing.T) {
	s, err := Describe(card.MustParseList("As Ks Qs Js Ts 2d 2h"))
	if err != nil || s == "" {
		t.Fatalf("Describe = %q, %v", s, err)
	}
}
