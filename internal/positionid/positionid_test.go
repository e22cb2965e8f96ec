package positionid

import "testing"

// startingPips is the standard backgammon starting position: X's 2
// checkers on the 24-point etc, in the single signed pip array this
// package codes to a gnubg position ID.
func startingPips() [26]int8 {
	return [26]int8{
		0, -2, 0, 0, 0, 0, 5, 0, 3, 0, 0, 0, -5,
		5, 0, 0, 0, -3, 0, -5, 0, 0, 0, 0, 2, 0,
	}
}

const startingPositionID = "4HPwATDgc/ABMA"

func TestIDStartingPosition(t *testing.T) {
	if got := ID(startingPips()); got != startingPositionID {
		t.Errorf("ID(starting position) = %q, want %q", got, startingPositionID)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	pips := startingPips()
	key := Encode(pips)
	decoded, xOff, oOff, ok := Decode(key, 15)
	if !ok {
		t.Fatalf("Decode reported an invalid position for the standard starting array")
	}
	if decoded != pips {
		t.Errorf("Decode round-trip mismatch:\n got  %v\n want %v", decoded, pips)
	}
	if xOff != 0 || oOff != 0 {
		t.Errorf("Decode off counts = (%d, %d), want (0, 0)", xOff, oOff)
	}
}

func TestFromIDRoundTrip(t *testing.T) {
	pips, xOff, oOff, err := FromID(startingPositionID, 15)
	if err != nil {
		t.Fatalf("FromID(%q) failed: %v", startingPositionID, err)
	}
	if pips != startingPips() {
		t.Errorf("FromID pips mismatch:\n got  %v\n want %v", pips, startingPips())
	}
	if xOff != 0 || oOff != 0 {
		t.Errorf("FromID off counts = (%d, %d), want (0, 0)", xOff, oOff)
	}
	if got := ID(pips); got != startingPositionID {
		t.Errorf("re-encoding decoded pips gave %q, want %q", got, startingPositionID)
	}
}

func TestFromIDRejectsTooManyCheckers(t *testing.T) {
	var pips [26]int8
	pips[10] = 15
	pips[XBar] = 5 // 20 checkers total, more than numCheckers allows
	id := ID(pips)
	if _, _, _, err := FromID(id, 15); err == nil {
		t.Errorf("FromID accepted a position with more checkers than numCheckers allows")
	}
}

func TestFromIDRejectsMalformedInput(t *testing.T) {
	cases := []string{
		"",
		"tooshort",
		"not a valid base64 chars!!",
	}
	for _, id := range cases {
		if _, _, _, err := FromID(id, 15); err == nil {
			t.Errorf("FromID(%q) should have failed", id)
		}
	}
}

func TestDBHashIsStableAcrossEquivalentCalls(t *testing.T) {
	pips := startingPips()
	h1 := DBHash(pips, 0, 0, 15)
	h2 := DBHash(pips, 0, 0, 15)
	if h1 != h2 {
		t.Errorf("DBHash is not deterministic: got %d and %d", h1, h2)
	}
}

func TestDBHashDiffersForDifferentPositions(t *testing.T) {
	a := startingPips()
	b := startingPips()
	b[24]--
	b[23]++
	if DBHash(a, 0, 0, 15) == DBHash(b, 0, 0, 15) {
		t.Errorf("DBHash collided for two distinct positions")
	}
}
