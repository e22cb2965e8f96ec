package bkgm

import "testing"

func TestNewStandardStartingPosition(t *testing.T) {
	p := NewStandard()
	want := [26]int8{
		0, -2, 0, 0, 0, 0, 5, 0, 3, 0, 0, 0, -5,
		5, 0, 0, 0, -3, 0, -5, 0, 0, 0, 0, 2, 0,
	}
	if p.Pips() != want {
		t.Errorf("NewStandard pips = %v, want %v", p.Pips(), want)
	}
	if p.NumCheckers() != 15 || p.XOff() != 0 || p.OOff() != 0 {
		t.Errorf("NewStandard = %+v, want 15 checkers per side, nobody off", p)
	}
	if !p.Turn() {
		t.Errorf("NewStandard should have X on roll")
	}
}

func TestNewNackgammonStartingPosition(t *testing.T) {
	p := NewNackgammon()
	want := [26]int8{
		0, -2, -2, 0, 0, 0, 4, 0, 3, 0, 0, 0, -4,
		4, 0, 0, 0, -3, 0, -4, 0, 0, 0, 2, 2, 0,
	}
	if p.Pips() != want {
		t.Errorf("NewNackgammon pips = %v, want %v", p.Pips(), want)
	}
	if p.NumCheckers() != 15 {
		t.Errorf("NewNackgammon should have 15 checkers per side, got %d", p.NumCheckers())
	}
}

func TestNewHypergammonStartingPosition(t *testing.T) {
	p := NewHypergammon()
	want := [26]int8{
		0, -1, -1, -1, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 0,
	}
	if p.Pips() != want {
		t.Errorf("NewHypergammon pips = %v, want %v", p.Pips(), want)
	}
	if p.NumCheckers() != 3 {
		t.Errorf("NewHypergammon should have 3 checkers per side, got %d", p.NumCheckers())
	}
}

func TestHypergammonVariantsHaveMatchingCheckerCounts(t *testing.T) {
	variants := []struct {
		name string
		pos  Position
		n    uint8
	}{
		{"Hypergammon2", NewHypergammon2(), 2},
		{"Hypergammon4", NewHypergammon4(), 4},
		{"Hypergammon5", NewHypergammon5(), 5},
	}
	for _, v := range variants {
		if v.pos.NumCheckers() != v.n {
			t.Errorf("%s.NumCheckers() = %d, want %d", v.name, v.pos.NumCheckers(), v.n)
		}
		var xTotal, oTotal int8
		for i := 1; i <= 24; i++ {
			if v.pos.Pip(i) > 0 {
				xTotal += v.pos.Pip(i)
			} else {
				oTotal -= v.pos.Pip(i)
			}
		}
		xTotal += v.pos.Pip(XBar)
		oTotal -= v.pos.Pip(OBar)
		if xTotal != int8(v.n) || oTotal != int8(v.n) {
			t.Errorf("%s has %d X checkers and %d O checkers on the board, want %d each", v.name, xTotal, oTotal, v.n)
		}
	}
}

func TestNewLonggammonStartingPosition(t *testing.T) {
	p := NewLonggammon()
	if p.Pip(24) != 15 || p.Pip(1) != -15 {
		t.Errorf("NewLonggammon = %v, want all 15 checkers per side stacked on the 24-point", p.Pips())
	}
	if p.NumCheckers() != 15 {
		t.Errorf("NewLonggammon should have 15 checkers per side, got %d", p.NumCheckers())
	}
}
