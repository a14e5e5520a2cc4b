package game

import "github.com/gdamore/tcell/v2"

// Action represents a player-requested game action.
type Action uint8

const (
	ActionNone Action = iota
	ActionCursorN
	ActionCursorS
	ActionCursorE
	ActionCursorW
	ActionCursorNE
	ActionCursorNW
	ActionCursorSE
	ActionCursorSW
	ActionNextSoldier
	ActionPrevSoldier
	ActionMoveToCursor
	ActionFire
	ActionReload
	ActionEndTurn
	ActionCenter
	ActionQuit
)

// keyToAction maps a tcell key event to a game action.
func keyToAction(ev *tcell.EventKey) Action {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionCursorN
	case tcell.KeyDown:
		return ActionCursorS
	case tcell.KeyRight:
		return ActionCursorE
	case tcell.KeyLeft:
		return ActionCursorW
	case tcell.KeyTab:
		return ActionNextSoldier
	case tcell.KeyBacktab:
		return ActionPrevSoldier
	case tcell.KeyEnter:
		return ActionMoveToCursor
	case tcell.KeyEscape:
		return ActionQuit
	}

	// Rune keys.
	switch ev.Rune() {
	case 'k', 'K':
		return ActionCursorN
	case 'j', 'J':
		return ActionCursorS
	case 'l', 'L':
		return ActionCursorE
	case 'h', 'H':
		return ActionCursorW
	case 'y', 'Y':
		return ActionCursorNW
	case 'u', 'U':
		return ActionCursorNE
	case 'b', 'B':
		return ActionCursorSW
	case 'n', 'N':
		return ActionCursorSE
	case 'm', 'M':
		return ActionMoveToCursor
	case 'f', 'F':
		return ActionFire
	case 'r', 'R':
		return ActionReload
	case 'e', 'E':
		return ActionEndTurn
	case 'c', 'C':
		return ActionCenter
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// actionToDelta converts a cursor action to (dx, dy).
func actionToDelta(a Action) (int, int) {
	switch a {
	case ActionCursorN:
		return 0, -1
	case ActionCursorS:
		return 0, 1
	case ActionCursorE:
		return 1, 0
	case ActionCursorW:
		return -1, 0
	case ActionCursorNE:
		return 1, -1
	case ActionCursorNW:
		return -1, -1
	case ActionCursorSE:
		return 1, 1
	case ActionCursorSW:
		return -1, 1
	}
	return 0, 0
}
