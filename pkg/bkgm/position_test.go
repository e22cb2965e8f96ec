package bkgm

import "testing"

func TestNewPositionValidation(t *testing.T) {
	var base [26]int8
	base[10] = 1
	base[11] = -1

	t.Run("legal", func(t *testing.T) {
		pips := base
		pips[XBar] = 2
		pips[10] = 10
		pips[OBar] = -3
		p, err := NewPosition(pips, 0, 0, 15)
		if err != nil {
			t.Fatalf("NewPosition: %v", err)
		}
		if p.Pip(XBar) != 2 || p.Pip(10) != 10 || p.Pip(OBar) != -3 {
			t.Errorf("unexpected pips stored: %+v", p)
		}
	})

	t.Run("negative x bar", func(t *testing.T) {
		pips := base
		pips[XBar] = -10
		if _, err := NewPosition(pips, 0, 0, 15); err == nil {
			t.Error("expected an error for a negative X bar count")
		}
	})

	t.Run("positive o bar", func(t *testing.T) {
		pips := base
		pips[OBar] = 10
		if _, err := NewPosition(pips, 0, 0, 15); err == nil {
			t.Error("expected an error for a positive O bar count")
		}
	})

	t.Run("too many x checkers", func(t *testing.T) {
		pips := base
		pips[XBar] = 10
		pips[10] = 10
		pips[11] = -10
		if _, err := NewPosition(pips, 0, 0, 15); err == nil {
			t.Error("expected an error for too many X checkers")
		}
	})

	t.Run("too many o checkers", func(t *testing.T) {
		pips := base
		pips[10] = 10
		pips[11] = -10
		pips[OBar] = -10
		if _, err := NewPosition(pips, 0, 0, 15); err == nil {
			t.Error("expected an error for too many O checkers")
		}
	})
}

func TestFlipIsInvolution(t *testing.T) {
	p := NewStandard()
	flipped := p.Flip()
	back := flipped.Flip()
	if !back.Equal(p) {
		t.Errorf("flipping twice did not return the original position")
	}
	if flipped.Turn() == p.Turn() {
		t.Errorf("flip should toggle the turn flag")
	}
}

func TestPositionIDRoundTrip(t *testing.T) {
	p := NewStandard()
	id := p.PositionID()
	got, err := FromPositionID(id, p.NumCheckers())
	if err != nil {
		t.Fatalf("FromPositionID(%q): %v", id, err)
	}
	if !got.Equal(p) {
		t.Errorf("round trip through a position ID changed the position")
	}
}

func TestTryMoveSingleChecker(t *testing.T) {
	p := NewStandard()
	if _, ok := p.TryMoveSingleChecker(24, 2); !ok {
		t.Fatalf("expected 24/22 to be a legal opening move")
	}
	if _, ok := p.TryMoveSingleChecker(1, 6); ok {
		t.Fatalf("did not expect an empty origin point to yield a legal move")
	}
}
