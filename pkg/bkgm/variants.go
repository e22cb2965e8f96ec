package bkgm

// newVariant builds the starting Position for a checker variant from its
// starting pip array and per-side checker count. It always panics on
// failure: these are compiled-in constants, not user input, so a failure
// here can only mean a mistake in this file.
func newVariant(pips [26]int8, numCheckers uint8) Position {
	p, err := NewPosition(pips, 0, 0, numCheckers)
	if err != nil {
		panic("bkgm: invalid built-in starting position: " + err.Error())
	}
	return p.WithTurn(true)
}

// NewStandard returns the starting position of standard backgammon: 15
// checkers per side, the classic 24-point setup.
func NewStandard() Position {
	return newVariant([26]int8{
		0, -2, 0, 0, 0, 0, 5, 0, 3, 0, 0, 0, -5,
		5, 0, 0, 0, -3, 0, -5, 0, 0, 0, 0, 2, 0,
	}, 15)
}

// NewNackgammon returns the starting position of Nackgammon, a backgammon
// variant that spreads the back checkers out to make early contact more
// likely.
func NewNackgammon() Position {
	return newVariant([26]int8{
		0, -2, -2, 0, 0, 0, 4, 0, 3, 0, 0, 0, -4,
		4, 0, 0, 0, -3, 0, -4, 0, 0, 0, 2, 2, 0,
	}, 15)
}

// NewHypergammon2 returns the starting position of the 2-checker variant of
// Hypergammon.
func NewHypergammon2() Position {
	return newVariant(hypergammonPips(2), 2)
}

// NewHypergammon returns the starting position of Hypergammon, the
// 3-checker speed variant.
func NewHypergammon() Position {
	return newVariant(hypergammonPips(3), 3)
}

// NewHypergammon4 returns the starting position of the 4-checker variant of
// Hypergammon.
func NewHypergammon4() Position {
	return newVariant(hypergammonPips(4), 4)
}

// NewHypergammon5 returns the starting position of the 5-checker variant of
// Hypergammon.
func NewHypergammon5() Position {
	return newVariant(hypergammonPips(5), 5)
}

// hypergammonPips builds a Hypergammon starting array: n checkers per side,
// one checker each on points 24, 23, 22, 21, 20 (as many of those as n
// allows, spreading back from point 24 rather than stacking).
func hypergammonPips(n int8) [26]int8 {
	var pips [26]int8
	for pt := 24; pt > 24-int(n); pt-- {
		pips[pt] = 1
	}

	for i := 20; i <= 24; i++ {
		pips[25-i] = -pips[i]
	}
	return pips
}

// NewLonggammon returns the starting position of Longgammon, a backgammon
// variant where every checker starts stacked on the 24-point.
func NewLonggammon() Position {
	return newVariant([26]int8{
		0, -15, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 15, 0,
	}, 15)
}
