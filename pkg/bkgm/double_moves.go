package bkgm

// allPositionsAfterDoubleMove returns every legal position reachable by
// playing a double roll: the same die value up to four times, using as
// many of those four plays as the position allows. There is no simpler
// closed-form algorithm the way there is for a mixed roll, since any of
// the four plays might open up (or close off) entry and bear-off
// opportunities for the plays after it, so this walks the full game tree
// of possible play sequences and keeps only the positions found at the
// greatest depth actually reached.
func allPositionsAfterDoubleMove(p Position, die int) []Position {
	var leaves []doubleLeaf
	collectDoubleMoveLeaves(p, die, 0, &leaves)

	maxDepth := 0
	for _, leaf := range leaves {
		if leaf.depth > maxDepth {
			maxDepth = leaf.depth
		}
	}

	seen := make(map[string]bool)
	var moves []Position
	for _, leaf := range leaves {
		if leaf.depth != maxDepth {
			continue
		}
		id := leaf.pos.PositionID()
		if seen[id] {
			continue
		}
		seen[id] = true
		moves = append(moves, leaf.pos)
	}
	return moves
}

type doubleLeaf struct {
	pos   Position
	depth int
}

// collectDoubleMoveLeaves recursively plays one more copy of the die from
// every legal origin, down to a maximum of four plays, appending a leaf
// whenever a branch runs out of further legal plays (including depth 4
// itself, and depth 0 when the roll can't be played at all).
func collectDoubleMoveLeaves(cur Position, die, depth int, leaves *[]doubleLeaf) {
	if depth == 4 {
		*leaves = append(*leaves, doubleLeaf{pos: cur, depth: depth})
		return
	}

	played := false
	if cur.pips[XBar] > 0 {
		if canEnter(cur.pips, die) {
			next, _ := cloneAndEnterSingleChecker(cur, die)
			played = true
			collectDoubleMoveLeaves(next, die, depth+1, leaves)
		}
	} else {
		for from := 1; from <= 24; from++ {
			if !canMove(cur.pips, from, die) {
				continue
			}
			next, _ := cloneAndMoveSingleChecker(cur, from, die)
			played = true
			collectDoubleMoveLeaves(next, die, depth+1, leaves)
		}
	}

	if !played {
		*leaves = append(*leaves, doubleLeaf{pos: cur, depth: depth})
	}
}
