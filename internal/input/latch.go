package input

import "github.com/spacehole-rogue/spacechase/internal/game"

// Direction is one of the four movement keys.
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
	dirCount
)

func (d Direction) opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Latch turns discrete key presses into held directions. Terminals report
// presses and autorepeat but never releases, so a press counts as held for a
// fixed number of ticks and each repeat renews it.
type Latch struct {
	hold int
	left [dirCount]int // ticks remaining per direction
}

// NewLatch returns a latch that holds each press for holdTicks ticks.
func NewLatch(holdTicks int) *Latch {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &Latch{hold: holdTicks}
}

// Press marks d as held and releases the opposite direction.
func (l *Latch) Press(d Direction) {
	if d >= dirCount {
		return
	}
	l.left[d] = l.hold
	l.left[d.opposite()] = 0
}

// Tick reports the directions held this tick and counts the hold down.
func (l *Latch) Tick() game.Input {
	in := game.Input{
		Up:    l.left[DirUp] > 0,
		Down:  l.left[DirDown] > 0,
		Left:  l.left[DirLeft] > 0,
		Right: l.left[DirRight] > 0,
	}
	for d := range l.left {
		if l.left[d] > 0 {
			l.left[d]--
		}
	}
	return in
}

// Reset releases everything.
func (l *Latch) Reset() {
	l.left = [dirCount]int{}
}
