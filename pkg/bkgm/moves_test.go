package bkgm

import "testing"

// numberOfMoves mirrors the convention the move counts below were recorded
// under: a roll that can't be played at all returns exactly one position,
// the unchanged position flipped to the opponent's side, which is
// reported as 0 rather than 1.
func numberOfMoves(t *testing.T, p Position, big, small int) int {
	t.Helper()
	d, err := NewDice(big, small)
	if err != nil {
		t.Fatalf("NewDice(%d, %d): %v", big, small, err)
	}
	all := p.PossiblePositions(d)
	if len(all) == 1 && all[0].Flip().Equal(p) {
		return 0
	}
	return len(all)
}

// TestNumberOfMovesForVariousPositionsAndDice ports a table of known-good
// move counts recorded against real position IDs, covering ordinary rolls,
// entering from the bar, rolls that can only partially be played, and bear
// off, including several doubles.
func TestNumberOfMovesForVariousPositionsAndDice(t *testing.T) {
	cases := []struct {
		id         string
		big, small int
		want       int
	}{
		{"4HPwATDgc/ABMA", 4, 4, 52},
		{"4HPwATDgc/ABMA", 3, 1, 16},
		{"4HPwATDgc/ABMA", 1, 3, 16},
		{"0HPwATDgc/ABMA", 6, 4, 15},
		{"0HPwATDgc/ABMA", 4, 6, 15},
		{"4DnyATDgc/ABMA", 6, 4, 14},
		{"4DnyATDgc/ABMA", 4, 6, 14},
		{"AACAkCRJqqoAAA", 1, 1, 2220},

		// from the bar
		{"4HPwATDgc/ABUA", 6, 6, 0},
		{"4HPwATDgc/ABUA", 5, 6, 4},
		{"4HPwATDgc/ABUA", 5, 2, 7},
		{"0HPwATDgc/ABUA", 5, 2, 8},
		{"4HPwATDgc/ABYA", 5, 2, 1},
		{"sHPwATDgc/ABYA", 5, 2, 1},
		{"hnPwATDgc/ABYA", 5, 2, 1},
		{"sHPwATDgc/ABYA", 2, 2, 12},
		{"sHPwATDgOfgAcA", 2, 2, 4},
		{"sHPwATDgHHwAeA", 2, 2, 1},
		{"sHPwATDgHDwAfA", 2, 2, 1},
		{"sHPwATDgHDwAfA", 2, 1, 1},
		{"sHPwATDgHDwAfA", 6, 1, 1},
		{"xOfgATDgc/ABUA", 4, 3, 10},
		{"lOfgATDgc/ABUA", 4, 3, 10},

		// unable to play the full roll
		{"sNvBATBw38ABMA", 6, 6, 1},
		{"YNsWADZsuzsAAA", 6, 5, 1},
		{"YNsWADNm7zkAAA", 6, 5, 1},
		{"4BwcMBvgAYABAA", 4, 3, 1},
		{"4DgcMBvgAYABAA", 4, 3, 1},
		{"wAYAMBsAAAQAAA", 4, 3, 1},
		{"GBsAmA0EACAAAA", 4, 3, 2},
		{"MBsAsA0EACAAAA", 4, 3, 2},

		// bear off
		{"2G4bADDOAgAAAA", 5, 1, 2},
		{"2G4bADDObgAAAA", 4, 2, 7},
		{"AwAACAAAAAAAAA", 4, 2, 1},
		{"AwAAYDsAAAAAAA", 6, 5, 1},
		{"AwAAYDsAAAAAAA", 6, 2, 3},
		{"2+4OAADs3hcAAA", 4, 3, 12},
		{"tN0dAATb3AMAAA", 4, 2, 9},
		{"tN0dAATb3AMAAA", 2, 2, 38},
		{"2L07AAC274YAAA", 6, 5, 3},
		{"2L07AAC23wYBAA", 6, 5, 2},
		{"27ZFAAR7swEAAA", 6, 2, 4},
		{"27ZFAAR7swEAAA", 2, 6, 4},
		{"v0MChgK7HwgAAA", 5, 6, 1},
		{"u20DAAP77hEAAA", 6, 3, 3},
		{"u20DYAD77hEAAA", 6, 3, 3},
		{"ABDAEBIAAAAAAA", 6, 2, 1},
	}

	for _, tc := range cases {
		p, err := FromPositionID(tc.id, 15)
		if err != nil {
			t.Errorf("FromPositionID(%q): %v", tc.id, err)
			continue
		}
		if got := numberOfMoves(t, p, tc.big, tc.small); got != tc.want {
			t.Errorf("position %s with dice (%d,%d): got %d moves, want %d", tc.id, tc.big, tc.small, got, tc.want)
		}
	}
}
