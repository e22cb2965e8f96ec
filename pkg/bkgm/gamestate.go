package bkgm

// GameResult is the outcome of a finished game from one player's point of
// view, as a win or a loss of one of three sizes: normal, gammon (loser
// bore off nothing), or backgammon (loser still has a checker in the
// winner's home board or on the bar).
type GameResult int

const (
	WinNormal GameResult = iota
	WinGammon
	WinBackgammon
	LoseNormal
	LoseGammon
	LoseBackgammon
)

// Reverse returns the result from the other player's point of view: a win
// becomes the matching loss and vice versa.
func (r GameResult) Reverse() GameResult {
	switch r {
	case WinNormal:
		return LoseNormal
	case WinGammon:
		return LoseGammon
	case WinBackgammon:
		return LoseBackgammon
	case LoseNormal:
		return WinNormal
	case LoseGammon:
		return WinGammon
	case LoseBackgammon:
		return WinBackgammon
	default:
		return r
	}
}

// IsWin reports whether this result is a win for the player it's stated
// from the point of view of.
func (r GameResult) IsWin() bool {
	return r == WinNormal || r == WinGammon || r == WinBackgammon
}

// Value returns the result's point value relative to the cube: +/-1 for a
// normal win/loss, +/-2 for a gammon, +/-3 for a backgammon.
func (r GameResult) Value() int {
	switch r {
	case WinNormal:
		return 1
	case WinGammon:
		return 2
	case WinBackgammon:
		return 3
	case LoseNormal:
		return -1
	case LoseGammon:
		return -2
	case LoseBackgammon:
		return -3
	default:
		return 0
	}
}

func (r GameResult) String() string {
	switch r {
	case WinNormal:
		return "WinNormal"
	case WinGammon:
		return "WinGammon"
	case WinBackgammon:
		return "WinBackgammon"
	case LoseNormal:
		return "LoseNormal"
	case LoseGammon:
		return "LoseGammon"
	case LoseBackgammon:
		return "LoseBackgammon"
	default:
		return "GameResult(?)"
	}
}

// GameState is either Ongoing or GameOver with a concluded result, stated
// from X's point of view (see Position.GameState).
type GameState struct {
	over   bool
	result GameResult
}

// Ongoing is the GameState of a position with checkers still to play.
var Ongoing = GameState{}

// GameOver builds a GameState reporting the game has concluded with the
// given result.
func GameOver(result GameResult) GameState {
	return GameState{over: true, result: result}
}

// IsOver reports whether the game has concluded.
func (s GameState) IsOver() bool { return s.over }

// Result returns the concluded result and true, or the zero value and
// false if the game is still ongoing.
func (s GameState) Result() (GameResult, bool) {
	return s.result, s.over
}

func (s GameState) String() string {
	if !s.over {
		return "Ongoing"
	}
	return "GameOver(" + s.result.String() + ")"
}

// GamePhase is the game-state classification for an ongoing game: either
// the two sides still have checkers within range to hit each other
// (Contact), or no further contact is possible and the position is a pure
// Race.
type GamePhase struct {
	over   bool
	result GameResult
	race   bool
}

// PhaseContact is the GamePhase of an ongoing position where contact is
// still possible.
var PhaseContact = GamePhase{}

// PhaseRace is the GamePhase of an ongoing position where no further
// contact is possible.
var PhaseRace = GamePhase{race: true}

// PhaseGameOver builds a GamePhase reporting the game has concluded.
func PhaseGameOver(result GameResult) GamePhase {
	return GamePhase{over: true, result: result}
}

// IsOver reports whether the game has concluded.
func (p GamePhase) IsOver() bool { return p.over }

// IsRace reports whether, for an ongoing game, no further contact between
// the two sides is possible.
func (p GamePhase) IsRace() bool { return !p.over && p.race }

// Result returns the concluded result and true, or the zero value and
// false if the game is still ongoing.
func (p GamePhase) Result() (GameResult, bool) {
	return p.result, p.over
}

func (p GamePhase) String() string {
	switch {
	case p.over:
		return "GameOver(" + p.result.String() + ")"
	case p.race:
		return "Race"
	default:
		return "Contact"
	}
}

// GameState classifies the position as Ongoing or GameOver, from the point
// of view of the player on roll (turn is ignored; the classification is
// always stated as if X is on roll, matching the pip array's own
// convention, and the caller flips it if O is actually on roll).
func (p Position) GameState() GameState {
	if p.xOff == p.numCheckers {
		return GameOver(p.gameResultForWinner(true))
	}
	if p.oOff == p.numCheckers {
		return GameOver(p.gameResultForWinner(false))
	}
	return Ongoing
}

// gameResultForWinner builds the GameResult for the side that just bore off
// its last checker, checking the loser's checkers for a gammon or
// backgammon.
func (p Position) gameResultForWinner(xWon bool) GameResult {
	if xWon {
		if p.oOff > 0 {
			return WinNormal
		}
		if p.oHasCheckerInXHomeOrBar() {
			return WinBackgammon
		}
		return WinGammon
	}
	if p.xOff > 0 {
		return LoseNormal
	}
	if p.xHasCheckerInOHomeOrBar() {
		return LoseBackgammon
	}
	return LoseGammon
}

// oHasCheckerInXHomeOrBar reports whether O still has a checker on the bar
// or in X's home board (points 1..6), the condition for X's win to count
// as a backgammon.
func (p Position) oHasCheckerInXHomeOrBar() bool {
	if p.pips[OBar] < 0 {
		return true
	}
	for i := 1; i <= 6; i++ {
		if p.pips[i] < 0 {
			return true
		}
	}
	return false
}

// xHasCheckerInOHomeOrBar is the mirror check for O's win counting as a
// backgammon against X.
func (p Position) xHasCheckerInOHomeOrBar() bool {
	if p.pips[XBar] > 0 {
		return true
	}
	for i := 19; i <= 24; i++ {
		if p.pips[i] > 0 {
			return true
		}
	}
	return false
}

// Phase classifies an ongoing position as Contact or Race: a race is a
// position where X's rearmost checker is already ahead of O's rearmost
// checker, so no further hit is possible for either side.
func (p Position) Phase() GamePhase {
	if state := p.GameState(); state.IsOver() {
		result, _ := state.Result()
		return PhaseGameOver(result)
	}

	xRearmost := 0
	for i := 24; i >= 1; i-- {
		if p.pips[i] > 0 {
			xRearmost = i
			break
		}
	}
	if p.pips[XBar] > 0 {
		xRearmost = 25
	}

	oRearmost := 25
	for i := 1; i <= 24; i++ {
		if p.pips[i] < 0 {
			oRearmost = i
			break
		}
	}
	if p.pips[OBar] < 0 {
		oRearmost = 0
	}

	if xRearmost < oRearmost {
		return PhaseRace
	}
	return PhaseContact
}
