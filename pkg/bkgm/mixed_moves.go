package bkgm

// allPositionsAfterMixedMove returns every legal position reachable by
// playing a mixed (non-double) dice roll, still in the mover's own frame
// of reference (not yet flipped to the other player's point of view).
func allPositionsAfterMixedMove(p Position, d Dice) []Position {
	switch {
	case p.pips[XBar] == 0:
		return movesWith0CheckersOnBar(p, d)
	case p.pips[XBar] == 1:
		return movesWith1CheckerOnBar(p, d)
	default:
		return movesWith2CheckersOnBar(p, d)
	}
}

// movesWith0CheckersOnBar plays a mixed roll when the mover has no checker
// on the bar: try to use both dice, falling back to the bigger die alone,
// then the smaller die alone, then no move at all if nothing can be
// played.
func movesWith0CheckersOnBar(p Position, d Dice) []Position {
	moves := twoCheckerMoves(p, d)
	if len(moves) == 0 {
		moves = oneCheckerMoves(p, d.Big())
	}
	if len(moves) == 0 {
		moves = oneCheckerMoves(p, d.Small())
	}
	if len(moves) == 0 {
		moves = []Position{p}
	}
	return moves
}

// oneCheckerMoves returns every position reachable by moving exactly one
// checker the given single die value.
func oneCheckerMoves(p Position, die int) []Position {
	var moves []Position
	for from := 1; from <= 24; from++ {
		if canMove(p.pips, from, die) {
			moves = append(moves, mustMove(p, from, die))
		}
	}
	return moves
}

// twoCheckerMoves returns every position reachable by playing both dice of
// a mixed roll, deduplicated by position ID: every combination of origin
// points and die order is tried, since which order is legal (or which pair
// of origins is legal) can differ depending on intervening blots and
// blocked points.
func twoCheckerMoves(p Position, d Dice) []Position {
	seen := make(map[string]bool)
	var moves []Position
	add := func(np Position) {
		id := np.PositionID()
		if !seen[id] {
			seen[id] = true
			moves = append(moves, np)
		}
	}

	big, small := d.Big(), d.Small()
	for _, order := range [2][2]int{{small, big}, {big, small}} {
		die1, die2 := order[0], order[1]
		for from1 := 1; from1 <= 24; from1++ {
			if !canMove(p.pips, from1, die1) {
				continue
			}
			mid, _ := cloneAndMoveSingleChecker(p, from1, die1)
			for from2 := 1; from2 <= 24; from2++ {
				if !canMove(mid.pips, from2, die2) {
					continue
				}
				final, _ := cloneAndMoveSingleChecker(mid, from2, die2)
				add(final)
			}
		}
	}
	return moves
}

// mustMove applies a move already known to be legal.
func mustMove(p Position, from, die int) Position {
	np, _ := cloneAndMoveSingleChecker(p, from, die)
	return np
}

// movesWith1CheckerOnBar plays a mixed roll when the mover has exactly one
// checker on the bar: the bar checker must enter before any other checker
// can move, so every legal move starts with an entry, followed by playing
// the other die anywhere on the board if possible.
func movesWith1CheckerOnBar(p Position, d Dice) []Position {
	big, small := d.Big(), d.Small()
	var moves []Position
	var enterBig, enterSmall *Position

	if canEnter(p.pips, big) {
		entered, _ := cloneAndEnterSingleChecker(p, big)
		enterBig = &entered
		for i := small + 1; i <= 24; i++ {
			if canMove(entered.pips, i, small) {
				moves = append(moves, mustMove(entered, i, small))
			}
		}
	}

	differentOutcomes := p.pips[XBar-big] < 0 || p.pips[XBar-small] < 0
	if canEnter(p.pips, small) {
		entered, _ := cloneAndEnterSingleChecker(p, small)
		enterSmall = &entered
		skip := XBar - small
		for i := big + 1; i <= 24; i++ {
			if !differentOutcomes && i == skip {
				continue
			}
			if canMove(entered.pips, i, big) {
				moves = append(moves, mustMove(entered, i, big))
			}
		}
	}

	if len(moves) == 0 {
		switch {
		case enterBig != nil:
			moves = append(moves, *enterBig)
		case enterSmall != nil:
			moves = append(moves, *enterSmall)
		default:
			moves = append(moves, p)
		}
	}
	return moves
}

// movesWith2CheckersOnBar plays a mixed roll when the mover has two or more
// checkers on the bar: at most one checker can enter per die and no other
// checker may move, so there is exactly one resulting position: a checker
// enters with the bigger die if its point is open, then another with the
// smaller die if its point is open (the position is unchanged if neither
// is).
func movesWith2CheckersOnBar(p Position, d Dice) []Position {
	position := p
	if canEnter(position.pips, d.Big()) {
		position, _ = cloneAndEnterSingleChecker(position, d.Big())
	}
	if canEnter(position.pips, d.Small()) {
		position, _ = cloneAndEnterSingleChecker(position, d.Small())
	}
	return []Position{position}
}
