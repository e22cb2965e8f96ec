package bkgm

// PossiblePositions returns every legal position reachable by playing the
// given dice, already flipped to the opponent's point of view and with the
// turn handed to the other player. Positions are deduplicated by
// their position ID, mirroring pip-order-invariant moves (two different
// sequences of steps landing on the same final board) onto a single
// result.
func (p Position) PossiblePositions(d Dice) []Position {
	var raw []Position
	if d.IsDouble() {
		raw = allPositionsAfterDoubleMove(p, d.Big())
	} else {
		raw = allPositionsAfterMixedMove(p, d)
	}

	seen := make(map[string]bool, len(raw))
	moves := make([]Position, 0, len(raw))
	for _, np := range raw {
		flipped := np.Flip()
		flipped.turn = !p.turn
		id := flipped.PositionID()
		if seen[id] {
			continue
		}
		seen[id] = true
		moves = append(moves, flipped)
	}
	return moves
}
