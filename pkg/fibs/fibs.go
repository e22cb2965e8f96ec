// Package fibs parses and renders the FIBS "board:" wire format, a
// colon-separated text interchange used by FIBS and gnubg's external
// player protocol, and converts it to and from bkgm.Position.
package fibs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bkgmgo/bkgm/pkg/bkgm"
)

// Board is a parsed FIBS board line. The cube, score, and Crawford fields
// are parsed and exposed as plain data because every real FIBS board
// string carries them and a parser that rejected their absence would
// reject valid input, but nothing in this module interprets or acts on
// them: cube and match play are out of scope here.
type Board struct {
	Player1     string
	Player2     string
	MatchLength int
	Score1      int
	Score2      int

	// Points holds the 26 signed checker counts FIBS sends, in the same
	// pip numbering bkgm.Position uses: index 25 is the mover's bar,
	// index 0 is the opponent's, positive counts are the mover's
	// checkers, negative counts are the opponent's.
	Points [26]int

	Turn    int // 1 if it's this side's turn, -1 otherwise
	Dice    [2]int
	OppDice [2]int

	Cube         int
	CanDouble    bool
	OppCanDouble bool
	Doubled      bool
	Color        int
	Direction    int
	Crawford     bool
}

// ParseBoard parses a FIBS "board:..." line, with or without the leading
// "board:" tag.
func ParseBoard(s string) (*Board, error) {
	s = strings.TrimPrefix(s, "board:")

	parts := strings.Split(s, ":")
	if len(parts) < 32 {
		return nil, fmt.Errorf("fibs: malformed board line: expected at least 32 fields, got %d", len(parts))
	}

	b := &Board{
		Player1: parts[0],
		Player2: parts[1],
	}
	var err error
	if b.MatchLength, err = strconv.Atoi(parts[2]); err != nil {
		return nil, fmt.Errorf("fibs: malformed match length %q: %w", parts[2], err)
	}
	if b.Score1, err = strconv.Atoi(parts[3]); err != nil {
		return nil, fmt.Errorf("fibs: malformed score %q: %w", parts[3], err)
	}
	if b.Score2, err = strconv.Atoi(parts[4]); err != nil {
		return nil, fmt.Errorf("fibs: malformed score %q: %w", parts[4], err)
	}
	for i := 0; i < 26; i++ {
		v, err := strconv.Atoi(parts[5+i])
		if err != nil {
			return nil, fmt.Errorf("fibs: malformed board point %d (%q): %w", i, parts[5+i], err)
		}
		b.Points[i] = v
	}
	if b.Turn, err = strconv.Atoi(parts[31]); err != nil {
		return nil, fmt.Errorf("fibs: malformed turn %q: %w", parts[31], err)
	}

	if len(parts) > 35 {
		b.Dice[0], _ = strconv.Atoi(parts[32])
		b.Dice[1], _ = strconv.Atoi(parts[33])
		b.OppDice[0], _ = strconv.Atoi(parts[34])
		b.OppDice[1], _ = strconv.Atoi(parts[35])
	}
	if len(parts) > 36 {
		b.Cube, _ = strconv.Atoi(parts[36])
	}
	if len(parts) > 37 {
		b.CanDouble = parts[37] == "1"
	}
	if len(parts) > 38 {
		b.OppCanDouble = parts[38] == "1"
	}
	if len(parts) > 39 {
		b.Doubled = parts[39] == "1"
	}
	if len(parts) > 40 {
		b.Color, _ = strconv.Atoi(parts[40])
	}
	if len(parts) > 41 {
		b.Direction, _ = strconv.Atoi(parts[41])
	}
	if len(parts) > 42 {
		b.Crawford = parts[42] == "1"
	}

	return b, nil
}

// String renders a Board back to the FIBS colon-separated wire format.
func (b *Board) String() string {
	fields := make([]string, 0, 43)
	fields = append(fields, b.Player1, b.Player2,
		strconv.Itoa(b.MatchLength), strconv.Itoa(b.Score1), strconv.Itoa(b.Score2))
	for _, v := range b.Points {
		fields = append(fields, strconv.Itoa(v))
	}
	fields = append(fields, strconv.Itoa(b.Turn),
		strconv.Itoa(b.Dice[0]), strconv.Itoa(b.Dice[1]),
		strconv.Itoa(b.OppDice[0]), strconv.Itoa(b.OppDice[1]),
		strconv.Itoa(b.Cube), boolField(b.CanDouble), boolField(b.OppCanDouble),
		boolField(b.Doubled), strconv.Itoa(b.Color), strconv.Itoa(b.Direction),
		boolField(b.Crawford))
	return "board:" + strings.Join(fields, ":")
}

func boolField(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

// ToPosition converts a parsed board to a bkgm.Position. numCheckers is
// the per-side checker count of the variant in play (15 for standard
// backgammon), since a FIBS board carries no explicit checker count.
func (b *Board) ToPosition(numCheckers uint8) (bkgm.Position, error) {
	var pips [26]int8
	var xOff, oOff int
	for i, v := range b.Points {
		pips[i] = int8(v)
	}
	xTotal, oTotal := 0, 0
	for i := 0; i <= 25; i++ {
		if pips[i] > 0 {
			xTotal += int(pips[i])
		} else {
			oTotal -= int(pips[i])
		}
	}
	xOff = int(numCheckers) - xTotal
	oOff = int(numCheckers) - oTotal
	if xOff < 0 || oOff < 0 {
		return bkgm.Position{}, fmt.Errorf("fibs: board has more than %d checkers on one side", numCheckers)
	}

	p, err := bkgm.NewPosition(pips, uint8(xOff), uint8(oOff), numCheckers)
	if err != nil {
		return bkgm.Position{}, fmt.Errorf("fibs: %w", err)
	}
	return p.WithTurn(b.Turn == 1), nil
}

// FromPosition builds a Board carrying p's checkers, bar counts, turn,
// and dice, leaving the names, score, match length, and cube fields at
// their zero values for the caller to fill in.
func FromPosition(p bkgm.Position, dice bkgm.Dice) *Board {
	b := &Board{}
	for i := 0; i <= 25; i++ {
		b.Points[i] = int(p.Pip(i))
	}
	if p.Turn() {
		b.Turn = 1
	} else {
		b.Turn = -1
	}
	if !dice.IsDouble() {
		b.Dice[0], b.Dice[1] = dice.Big(), dice.Small()
	} else {
		b.Dice[0], b.Dice[1] = dice.Big(), dice.Big()
	}
	return b
}
