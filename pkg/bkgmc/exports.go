// Package main provides C-compatible functions for building a shared
// library over the position and move-generation engine in pkg/bkgm.
// Build with: go build -buildmode=c-shared -o libbkgm.so ./pkg/bkgmc
package main

/*
#include <stdlib.h>
#include <stdint.h>
*/
import "C"
import (
	"encoding/json"
	"sync"
	"unsafe"

	"github.com/bkgmgo/bkgm/pkg/bkgm"
)

var (
	lastError string
	errorMu   sync.Mutex
)

// setError stores an error message for later retrieval by bkgm_last_error.
func setError(err error) {
	errorMu.Lock()
	defer errorMu.Unlock()
	if err != nil {
		lastError = err.Error()
	} else {
		lastError = ""
	}
}

//export bkgm_version
func bkgm_version() *C.char {
	return C.CString("0.1.0")
}

//export bkgm_last_error
func bkgm_last_error() *C.char {
	errorMu.Lock()
	defer errorMu.Unlock()
	if lastError == "" {
		return nil
	}
	return C.CString(lastError)
}

//export bkgm_from_id
func bkgm_from_id(positionID *C.char, numCheckers C.int, resultJSON **C.char) C.int {
	id := C.GoString(positionID)
	p, err := bkgm.FromPositionID(id, uint8(numCheckers))
	if err != nil {
		setError(err)
		*resultJSON = C.CString(`{"error":"invalid position"}`)
		return -1
	}

	jsonBytes, _ := json.Marshal(positionJSON(p))
	*resultJSON = C.CString(string(jsonBytes))
	setError(nil)
	return 0
}

//export bkgm_position_id
func bkgm_position_id(pipsJSON *C.char, xOff, oOff, numCheckers C.int, turn C.int, result **C.char) C.int {
	var pips [26]int8
	if err := json.Unmarshal([]byte(C.GoString(pipsJSON)), &pips); err != nil {
		setError(err)
		*result = C.CString("")
		return -1
	}
	p, err := bkgm.NewPosition(pips, uint8(xOff), uint8(oOff), uint8(numCheckers))
	if err != nil {
		setError(err)
		*result = C.CString("")
		return -1
	}
	p = p.WithTurn(turn != 0)

	*result = C.CString(p.PositionID())
	setError(nil)
	return 0
}

//export bkgm_possible_positions
func bkgm_possible_positions(positionID *C.char, numCheckers C.int, die1, die2 C.int, resultJSON **C.char) C.int {
	p, err := bkgm.FromPositionID(C.GoString(positionID), uint8(numCheckers))
	if err != nil {
		setError(err)
		*resultJSON = C.CString(`{"error":"invalid position"}`)
		return -1
	}
	dice, err := bkgm.NewDice(int(die1), int(die2))
	if err != nil {
		setError(err)
		*resultJSON = C.CString(`{"error":"invalid dice"}`)
		return -1
	}

	positions := p.PossiblePositions(dice)
	ids := make([]string, len(positions))
	for i, np := range positions {
		ids[i] = np.PositionID()
	}

	jsonBytes, _ := json.Marshal(ids)
	*resultJSON = C.CString(string(jsonBytes))
	setError(nil)
	return 0
}

//export bkgm_game_state
func bkgm_game_state(positionID *C.char, numCheckers C.int, resultJSON **C.char) C.int {
	p, err := bkgm.FromPositionID(C.GoString(positionID), uint8(numCheckers))
	if err != nil {
		setError(err)
		*resultJSON = C.CString(`{"error":"invalid position"}`)
		return -1
	}

	state := p.GameState()
	result, over := state.Result()
	payload := map[string]interface{}{
		"game_over": over,
		"phase":     p.Phase().String(),
	}
	if over {
		payload["result"] = result.String()
		payload["value"] = result.Value()
	}

	jsonBytes, _ := json.Marshal(payload)
	*resultJSON = C.CString(string(jsonBytes))
	setError(nil)
	return 0
}

func positionJSON(p bkgm.Position) map[string]interface{} {
	pips := p.Pips()
	return map[string]interface{}{
		"id":           p.PositionID(),
		"pips":         pips,
		"x_off":        p.XOff(),
		"o_off":        p.OOff(),
		"turn":         p.Turn(),
		"num_checkers": p.NumCheckers(),
	}
}

//export bkgm_free_string
func bkgm_free_string(s *C.char) {
	if s != nil {
		C.free(unsafe.Pointer(s))
	}
}

func main() {}
