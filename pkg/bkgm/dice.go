package bkgm

import "fmt"

// Dice is a rolled pair of dice: either a Double (both dice the same
// value) or a Mixed roll of two distinct values.
type Dice struct {
	big, small int // small == 0 marks a Double of value big
	double     bool
}

// NewDice builds a Dice from two die values in 1..6, ordering a mixed
// roll so Big() is always the larger value.
func NewDice(d1, d2 int) (Dice, error) {
	if d1 < 1 || d1 > 6 || d2 < 1 || d2 > 6 {
		return Dice{}, fmt.Errorf("bkgm: %w: (%d,%d)", ErrInvalidDice, d1, d2)
	}
	if d1 == d2 {
		return Dice{big: d1, double: true}, nil
	}
	if d1 < d2 {
		d1, d2 = d2, d1
	}
	return Dice{big: d1, small: d2}, nil
}

// IsDouble reports whether the roll is a double.
func (d Dice) IsDouble() bool { return d.double }

// Big returns the larger die value (or the repeated value for a double).
func (d Dice) Big() int { return d.big }

// Small returns the smaller die value of a mixed roll. Panics if called
// on a double; check IsDouble first.
func (d Dice) Small() int {
	if d.double {
		panic("bkgm: Small called on a double")
	}
	return d.small
}

func (d Dice) String() string {
	if d.double {
		return fmt.Sprintf("(%d,%d)", d.big, d.big)
	}
	return fmt.Sprintf("(%d,%d)", d.big, d.small)
}

// AllSingles holds the 15 distinct mixed (non-double) dice rolls, used to
// enumerate the rolls that could lead to a position regardless of
// probability.
var AllSingles [15]Dice

// All21 holds the 21 distinct first-roll possibilities together with
// their relative probability weight: 1.0 for each of the 6 doubles, 2.0
// for each of the 15 mixed rolls (reflecting that a mixed roll can appear
// in either die order).
var All21 [21]WeightedDice

// All36 holds all 36 equally likely two-die outcomes; mixed rolls appear
// twice, once per die ordering.
var All36 [36]Dice

// All1296 holds all 1296 equally likely combinations of a player's first
// two rolls (36 possibilities for the opening roll times 36 for the
// response), used to weight a two-ply rollout by its true probability.
var All1296 [1296][2]Dice

// WeightedDice pairs a dice roll with its relative probability weight
// among the 21 distinct first rolls.
type WeightedDice struct {
	Dice   Dice
	Weight float32
}

func init() {
	count := 0
	for i := 1; i <= 6; i++ {
		for j := i + 1; j <= 6; j++ {
			d, _ := NewDice(i, j)
			AllSingles[count] = d
			count++
		}
	}

	idx := 0
	for i := 1; i <= 6; i++ {
		d, _ := NewDice(i, i)
		All21[idx] = WeightedDice{Dice: d, Weight: 1.0}
		idx++
		for j := i + 1; j <= 6; j++ {
			d, _ := NewDice(i, j)
			All21[idx] = WeightedDice{Dice: d, Weight: 2.0}
			idx++
		}
	}

	for i := 1; i <= 6; i++ {
		for j := 1; j <= 6; j++ {
			d, _ := NewDice(i, j)
			All36[(i-1)*6+(j-1)] = d
		}
	}

	for i, first := range All36 {
		for j, second := range All36 {
			All1296[i*36+j] = [2]Dice{first, second}
		}
	}
}
