package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Action is what a terminal key means to the game.
type Action uint8

const (
	ActionNone Action = iota
	ActionMove        // see the Direction returned alongside
	ActionConfirm
	ActionRestart
	ActionQuit
	ActionClose
)

// FromKey maps a terminal key event. Arrows and WASD move, space starts,
// R restarts, Q quits, Escape and Ctrl-C close.
func FromKey(ev *tcell.EventKey) (Action, Direction) {
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionMove, DirUp
	case tcell.KeyDown:
		return ActionMove, DirDown
	case tcell.KeyLeft:
		return ActionMove, DirLeft
	case tcell.KeyRight:
		return ActionMove, DirRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionClose, 0
	case tcell.KeyRune:
	default:
		return ActionNone, 0
	}

	switch unicode.ToLower(ev.Rune()) {
	case 'w':
		return ActionMove, DirUp
	case 's':
		return ActionMove, DirDown
	case 'a':
		return ActionMove, DirLeft
	case 'd':
		return ActionMove, DirRight
	case ' ':
		return ActionConfirm, 0
	case 'r':
		return ActionRestart, 0
	case 'q':
		return ActionQuit, 0
	}
	return ActionNone, 0
}
