package bkgm

import "testing"

func TestNewDiceOrdersMixedRolls(t *testing.T) {
	d, err := NewDice(3, 5)
	if err != nil {
		t.Fatalf("NewDice: %v", err)
	}
	if d.Big() != 5 || d.Small() != 3 || d.IsDouble() {
		t.Errorf("NewDice(3, 5) = %+v, want big=5 small=3 not a double", d)
	}
}

func TestNewDiceDouble(t *testing.T) {
	d, err := NewDice(4, 4)
	if err != nil {
		t.Fatalf("NewDice: %v", err)
	}
	if !d.IsDouble() || d.Big() != 4 {
		t.Errorf("NewDice(4, 4) = %+v, want a double of 4", d)
	}
}

func TestNewDiceRejectsOutOfRange(t *testing.T) {
	cases := [][2]int{{0, 3}, {7, 3}, {3, 0}, {3, 7}}
	for _, c := range cases {
		if _, err := NewDice(c[0], c[1]); err == nil {
			t.Errorf("NewDice(%d, %d) should have failed", c[0], c[1])
		}
	}
}

func TestAllSinglesHasFifteenDistinctMixedRolls(t *testing.T) {
	if len(AllSingles) != 15 {
		t.Fatalf("len(AllSingles) = %d, want 15", len(AllSingles))
	}
	for _, d := range AllSingles {
		if d.IsDouble() {
			t.Errorf("AllSingles contains a double: %v", d)
		}
	}
}

func TestAll21Weights(t *testing.T) {
	var doubleCount, mixedCount int
	for _, wd := range All21 {
		if wd.Dice.IsDouble() {
			doubleCount++
			if wd.Weight != 1.0 {
				t.Errorf("double %v has weight %v, want 1.0", wd.Dice, wd.Weight)
			}
		} else {
			mixedCount++
			if wd.Weight != 2.0 {
				t.Errorf("mixed roll %v has weight %v, want 2.0", wd.Dice, wd.Weight)
			}
		}
	}
	if doubleCount != 6 || mixedCount != 15 {
		t.Errorf("All21 has %d doubles and %d mixed rolls, want 6 and 15", doubleCount, mixedCount)
	}
}

func TestAll36HasThirtySixRolls(t *testing.T) {
	if len(All36) != 36 {
		t.Fatalf("len(All36) = %d, want 36", len(All36))
	}
}

func TestAll1296HasAllPairs(t *testing.T) {
	if len(All1296) != 1296 {
		t.Fatalf("len(All1296) = %d, want 1296", len(All1296))
	}
}
