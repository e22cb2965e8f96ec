// Package bkgm implements a backgammon position: its board representation,
// the GNU Backgammon Position ID codec, move generation for both mixed and
// double rolls, and game-state/game-phase classification. It is a from
// scratch Go port of the position module of a Rust backgammon engine, built
// around a single signed pip array rather than a pair of per-player boards.
package bkgm

import (
	"fmt"
	"strings"

	"github.com/bkgmgo/bkgm/internal/positionid"
)

// XBar and OBar are the pip-array indices used as the bar for each side.
// Index 25 holds X's checkers on the bar as a positive count; index 0 holds
// O's checkers on the bar as a negative count, keeping the sign convention
// uniform across the whole array: positive is X, negative is O.
const (
	XBar = 25
	OBar = 0
)

// Position is a backgammon position for one particular checker variant.
// pips[1..24] holds each point's occupancy: positive for X's checkers,
// negative for O's. pips[XBar] is X's bar count (>= 0); pips[OBar] is O's
// bar count (<= 0). xOff/oOff count checkers already borne off. turn is not
// part of a position's identity: two positions with the same pips and off
// counts but different turn are the same position from each player's own
// point of view, and compare/hash equal.
//
// numCheckers carries what would be a const generic parameter N in a
// language that has one; Go doesn't, so it travels as a runtime field set
// once by the variant constructors in variants.go.
type Position struct {
	pips        [26]int8
	xOff        uint8
	oOff        uint8
	numCheckers uint8
	turn        bool
}

// NewPosition validates a raw pip array plus off counts against the
// structural invariants a legal position must satisfy for the given
// checker count, mirroring the four checks the original implementation's
// TryFrom impl performs.
func NewPosition(pips [26]int8, xOff, oOff, numCheckers uint8) (Position, error) {
	if pips[XBar] < 0 {
		return Position{}, &RawPositionError{Reason: NegativeXBar}
	}
	if pips[OBar] > 0 {
		return Position{}, &RawPositionError{Reason: PositiveOBar}
	}

	xCheckers := int(xOff)
	oCheckers := int(oOff)
	for i := 1; i <= 24; i++ {
		n := pips[i]
		if n > 0 {
			xCheckers += int(n)
		} else if n < 0 {
			oCheckers += int(-n)
		}
	}
	xCheckers += int(pips[XBar])
	oCheckers += int(-pips[OBar])

	if xCheckers > int(numCheckers) {
		return Position{}, &RawPositionError{Reason: TooManyXCheckers}
	}
	if oCheckers > int(numCheckers) {
		return Position{}, &RawPositionError{Reason: TooManyOCheckers}
	}

	return Position{pips: pips, xOff: xOff, oOff: oOff, numCheckers: numCheckers}, nil
}

// Turn reports whether it is X's turn to move. turn is excluded from
// equality and hashing: it is a fact about whose move it is, not about the
// position itself.
func (p Position) Turn() bool { return p.turn }

// WithTurn returns a copy of p with the turn flag set, leaving the board
// unchanged.
func (p Position) WithTurn(xToMove bool) Position {
	p.turn = xToMove
	return p
}

// Pip returns the signed checker count at the given pip index (1..24), or
// the bar count at XBar/OBar.
func (p Position) Pip(i int) int8 { return p.pips[i] }

// XOff returns the number of X's checkers already borne off.
func (p Position) XOff() uint8 { return p.xOff }

// OOff returns the number of O's checkers already borne off.
func (p Position) OOff() uint8 { return p.oOff }

// NumCheckers returns the per-side checker count of the variant this
// position belongs to.
func (p Position) NumCheckers() uint8 { return p.numCheckers }

// Pips returns a copy of the raw pip array.
func (p Position) Pips() [26]int8 { return p.pips }

// Equal reports whether p and other are the same position: same pips, same
// off counts, same checker count. Turn is deliberately excluded.
func (p Position) Equal(other Position) bool {
	return p.pips == other.pips &&
		p.xOff == other.xOff &&
		p.oOff == other.oOff &&
		p.numCheckers == other.numCheckers
}

// Flip swaps the two players' perspectives: X's checkers become O's and
// vice versa, and every point is mirrored around the middle of the board
// (point i becomes point 25-i). The move generators always move "the
// player on roll" as X from point 24 down to point 1; PossiblePositions
// then flips each result so it is seen from the opponent's side.
func (p Position) Flip() Position {
	var flipped [26]int8
	for i := 1; i <= 24; i++ {
		flipped[25-i] = -p.pips[i]
	}
	flipped[XBar] = -p.pips[OBar]
	flipped[OBar] = -p.pips[XBar]

	return Position{
		pips:        flipped,
		xOff:        p.oOff,
		oOff:        p.xOff,
		numCheckers: p.numCheckers,
		turn:        !p.turn,
	}
}

// PositionID renders the position as a GNU Backgammon Position ID string.
func (p Position) PositionID() string {
	return positionid.ID(p.pips)
}

// FromPositionID reconstructs a Position of the given checker count from a
// position ID string.
func FromPositionID(id string, numCheckers uint8) (Position, error) {
	pips, xOff, oOff, err := positionid.FromID(id, numCheckers)
	if err != nil {
		return Position{}, fmt.Errorf("bkgm: %q: %w", id, ErrMalformedPositionID)
	}
	return NewPosition(pips, xOff, oOff, numCheckers)
}

// DBHash computes the perfect minimal hash of the position among all
// reachable positions with this checker count, as used to index a
// bearoff-style database.
func (p Position) DBHash() int {
	return positionid.DBHash(p.pips, p.xOff, p.oOff, p.numCheckers)
}

func (p Position) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Position { x_off: %d, o_off: %d, pips: [", p.xOff, p.oOff)
	for i, n := range p.pips {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d", n)
	}
	b.WriteString("] }")
	return b.String()
}

// canMoveInternally reports whether a checker known to sit on `from` can
// legally play a die of value `die`, not worrying about whether `from` is
// the bar (the caller, canMove, handles that).
func canMoveInternally(pips [26]int8, from, die int) bool {
	if pips[from] < 1 {
		return false
	}
	if from > die {
		// ordinary move, no bear off
		return pips[from-die] > -2
	}
	if from == die {
		// bear off exactly
		for i := 7; i < XBar; i++ {
			if pips[i] > 0 {
				return false
			}
		}
		return true
	}
	// from < die: bear off a checker not on the die's own point, only
	// legal if no checker sits on a higher point than `from`.
	for i := from + 1; i < XBar; i++ {
		if pips[i] > 0 {
			return false
		}
	}
	return true
}

// canMove reports whether a checker can legally play a die of value `die`
// from `from`, including the bar (from == XBar): entering from the bar is
// only considered when the player actually has a checker on the bar, and
// every other origin is only considered when the bar is empty, since a
// checker on the bar must always be entered before any other move.
func canMove(pips [26]int8, from, die int) bool {
	if (from == XBar) != (pips[XBar] > 0) {
		return false
	}
	return canMoveInternally(pips, from, die)
}

// TryMoveSingleChecker moves one checker belonging to the player on roll
// from the given pip by the given die value, reporting whether the move
// was legal. from == XBar moves a checker off the bar. It does not flip
// the position to the other player's point of view.
func (p Position) TryMoveSingleChecker(from, die int) (Position, bool) {
	if !canMove(p.pips, from, die) {
		return Position{}, false
	}
	if from == XBar {
		np, _ := cloneAndEnterSingleChecker(p, die)
		return np, true
	}
	np, _ := cloneAndMoveSingleChecker(p, from, die)
	return np, true
}

// cloneAndMoveSingleChecker returns a copy of p with one checker moved from
// `from` by `pip` pips, along with whether that move hit an O blot.
func cloneAndMoveSingleChecker(p Position, from, pip int) (Position, bool) {
	pips := p.pips
	xOff := p.xOff
	to := from - pip
	hit := false
	pips[from]--
	if to <= 0 {
		xOff++
	} else if pips[to] == -1 {
		pips[to] = 1
		pips[OBar]--
		hit = true
	} else {
		pips[to]++
	}
	return Position{pips: pips, xOff: xOff, oOff: p.oOff, numCheckers: p.numCheckers}, hit
}

// canEnter reports whether a checker on the bar can enter on the point
// corresponding to the given die value (die 1 enters on point 24, die 6 on
// point 19).
func canEnter(pips [26]int8, die int) bool {
	point := 25 - die
	return pips[point] >= -1
}

// cloneAndEnterSingleChecker returns a copy of p with one checker entered
// from the bar using the given die, along with whether it hit an O blot.
func cloneAndEnterSingleChecker(p Position, die int) (Position, bool) {
	pips := p.pips
	point := 25 - die
	hit := false
	pips[XBar]--
	if pips[point] == -1 {
		pips[point] = 1
		pips[OBar]--
		hit = true
	} else {
		pips[point]++
	}
	return Position{pips: pips, xOff: p.xOff, oOff: p.oOff, numCheckers: p.numCheckers}, hit
}
