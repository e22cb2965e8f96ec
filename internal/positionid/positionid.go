// Package positionid implements the GNU Backgammon Position ID: a 10-byte,
// run-length-unary-encoded key for a backgammon position, rendered as a
// 14-character base64 string. This is a port of gnubg's positionid.c,
// adapted to a single signed pip array rather than a per-player board.
package positionid

import (
	"errors"
	"fmt"

	"github.com/bkgmgo/bkgm/internal/combin"
)

// Length is the number of characters in a position ID string.
const Length = 14

// XBar and OBar are the pip-array indices used as the bar for each side,
// matching the convention of the rest of the module: index 25 holds X's
// checkers on the bar (positive), index 0 holds O's (as a negative count).
const (
	XBar = 25
	OBar = 0
)

// base64Chars is the alphabet gnubg uses for position IDs. It happens to
// match the standard base64 alphabet, but position IDs are encoded and
// decoded six bits at a time below rather than through encoding/base64,
// since the final ID is always truncated to 14 characters (no trailing
// '=' padding) and gnubg tooling expects exactly this alphabet.
const base64Chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// ErrMalformedID is returned when a position ID string cannot be decoded:
// wrong length, a character outside the base64 alphabet, or a decoded
// board that violates a structural invariant (too many checkers, a
// checker stacked on both sides of the same point).
var ErrMalformedID = errors.New("positionid: malformed position ID")

// Encode packs a pip array into the 10-byte key gnubg calls the "old"
// position key: for each side, in point order, a run of 1-bits (one per
// checker) terminated by a 0-bit, the player not on roll first.
func Encode(pips [26]int8) [10]byte {
	var key [10]byte
	bit := 0
	set := func() {
		key[bit/8] |= 1 << (uint(bit) % 8)
		bit++
	}

	for point := 24; point >= 1; point-- {
		for n := int8(0); n < -pips[point]; n++ {
			set()
		}
		bit++
	}
	for n := int8(0); n < oBar(pips); n++ {
		set()
	}
	bit++

	for point := 1; point <= 24; point++ {
		for n := int8(0); n < pips[point]; n++ {
			set()
		}
		bit++
	}
	for n := int8(0); n < xBar(pips); n++ {
		set()
	}

	return key
}

// Decode unpacks a 10-byte key into a pip array plus the off counts
// implied by numCheckers (the per-variant total checker count per side).
// If the key puts checkers of both sides on one point, or encodes more
// checkers for a side than numCheckers allows, ok is false and the off
// counts are meaningless.
func Decode(key [10]byte, numCheckers uint8) (pips [26]int8, xOff, oOff uint8, ok bool) {
	bit := 0
	get := func() bool {
		if bit >= len(key)*8 {
			return false
		}
		v := (key[bit/8] >> (uint(bit) % 8)) & 1
		bit++
		return v == 1
	}

	var xPieces, oPieces, xBarN, oBarN int
	for point := 23; point >= 0; point-- {
		for get() {
			pips[point+1]--
			oPieces++
		}
	}
	for get() {
		oBarN++
	}

	shared := false
	for point := 0; point < 24; point++ {
		for get() {
			if pips[point+1] < 0 {
				shared = true
			}
			pips[point+1]++
			xPieces++
		}
	}
	for get() {
		xBarN++
	}

	pips[XBar] = int8(xBarN)
	pips[OBar] = int8(-oBarN)

	xRemaining := int(numCheckers) - xPieces - xBarN
	oRemaining := int(numCheckers) - oPieces - oBarN
	if shared || xRemaining < 0 || oRemaining < 0 {
		return pips, 0, 0, false
	}
	return pips, uint8(xRemaining), uint8(oRemaining), true
}

// ID renders a pip array as a position ID string.
func ID(pips [26]int8) string {
	key := Encode(pips)
	return idFromKey(key)
}

func idFromKey(key [10]byte) string {
	out := make([]byte, Length)
	k := key[:]

	for i := 0; i < 3; i++ {
		out[i*4] = base64Chars[k[0]>>2]
		out[i*4+1] = base64Chars[((k[0]&0x03)<<4)|(k[1]>>4)]
		out[i*4+2] = base64Chars[((k[1]&0x0F)<<2)|(k[2]>>6)]
		out[i*4+3] = base64Chars[k[2]&0x3F]
		k = k[3:]
	}
	out[12] = base64Chars[k[0]>>2]
	out[13] = base64Chars[(k[0]&0x03)<<4]

	return string(out)
}

// FromID decodes a position ID string into a pip array, validating the
// structural invariants a legal position must satisfy.
func FromID(id string, numCheckers uint8) (pips [26]int8, xOff, oOff uint8, err error) {
	if len(id) != Length {
		return pips, 0, 0, fmt.Errorf("positionid: %q: %w", id, ErrMalformedID)
	}

	var decoded [Length]byte
	for i := 0; i < Length; i++ {
		v := base64Decode(id[i])
		if v == 0xFF {
			return pips, 0, 0, fmt.Errorf("positionid: %q: %w", id, ErrMalformedID)
		}
		decoded[i] = v
	}

	var key [10]byte
	src := decoded[:]
	dst := 0
	for i := 0; i < 3; i++ {
		key[dst] = (src[0] << 2) | (src[1] >> 4)
		key[dst+1] = (src[1] << 4) | (src[2] >> 2)
		key[dst+2] = (src[2] << 6) | src[3]
		dst += 3
		src = src[4:]
	}
	key[9] = (src[0] << 2) | (src[1] >> 4)

	var ok bool
	pips, xOff, oOff, ok = Decode(key, numCheckers)
	if !ok {
		return pips, 0, 0, fmt.Errorf("positionid: %q: invalid board for %d checkers per side: %w", id, numCheckers, ErrMalformedID)
	}
	return pips, xOff, oOff, nil
}

func base64Decode(ch byte) byte {
	switch {
	case ch >= 'A' && ch <= 'Z':
		return ch - 'A'
	case ch >= 'a' && ch <= 'z':
		return ch - 'a' + 26
	case ch >= '0' && ch <= '9':
		return ch - '0' + 52
	case ch == '+':
		return 62
	case ch == '/':
		return 63
	default:
		return 0xFF
	}
}

func xBar(pips [26]int8) int8 {
	if pips[XBar] < 0 {
		return 0
	}
	return pips[XBar]
}

func oBar(pips [26]int8) int8 {
	if pips[OBar] > 0 {
		return 0
	}
	return -pips[OBar]
}

// DBHash computes the perfect minimal hash of a position among all
// reachable positions for a given per-side checker count, using the
// lexicographic multiset-combination index gnubg's bearoff databases key
// on. It delegates the coefficient arithmetic to internal/combin (gonum)
// rather than a hand-rolled recursive table.
func DBHash(pips [26]int8, xOff, oOff, numCheckers uint8) int {
	const points = 26
	xRemaining := int(numCheckers) - int(xOff)
	oRemaining := int(numCheckers) - int(oOff)

	xIndex := 0
	if xRemaining > 0 {
		xIndex = combin.Multiset(points, xRemaining-1)
	}
	oIndex := 0
	if oRemaining > 0 {
		oIndex = combin.Multiset(points, oRemaining-1)
	}

	for i := 1; i <= 24; i++ {
		n := pips[i]
		switch {
		case n < 0:
			oRemaining -= int(-n)
		case n > 0:
			xRemaining -= int(n)
		}
		if oRemaining > 0 {
			oIndex += combin.Multiset(points-i, oRemaining-1)
		}
		if xRemaining > 0 {
			xIndex += combin.Multiset(points-i, xRemaining-1)
		}
	}

	return xIndex*combin.Multiset(points, int(numCheckers)) + oIndex
}
