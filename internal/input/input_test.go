package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/spacehole-rogue/spacechase/internal/game"
)

func TestLatchHoldsForConfiguredTicks(t *testing.T) {
	l := NewLatch(3)
	l.Press(DirRight)

	for i := 0; i < 3; i++ {
		assert.Equal(t, game.Input{Right: true}, l.Tick(), "tick %d", i)
	}
	assert.Equal(t, game.Input{}, l.Tick())
}

func TestLatchRepeatRenewsHold(t *testing.T) {
	l := NewLatch(2)
	l.Press(DirUp)
	l.Tick()
	l.Press(DirUp)

	assert.True(t, l.Tick().Up)
	assert.True(t, l.Tick().Up)
	assert.False(t, l.Tick().Up)
}

func TestLatchCombinesDiagonals(t *testing.T) {
	l := NewLatch(5)
	l.Press(DirUp)
	l.Press(DirLeft)

	assert.Equal(t, game.Input{Up: true, Left: true}, l.Tick())
}

func TestLatchOppositeReleases(t *testing.T) {
	l := NewLatch(5)
	l.Press(DirLeft)
	l.Press(DirRight)

	assert.Equal(t, game.Input{Right: true}, l.Tick())
}

func TestLatchReset(t *testing.T) {
	l := NewLatch(5)
	l.Press(DirDown)
	l.Reset()

	assert.Equal(t, game.Input{}, l.Tick())
}

func TestNewLatchMinimumHold(t *testing.T) {
	l := NewLatch(0)
	l.Press(DirDown)

	assert.True(t, l.Tick().Down)
	assert.False(t, l.Tick().Down)
}

func TestFromKey(t *testing.T) {
	tests := []struct {
		name   string
		ev     *tcell.EventKey
		action Action
		dir    Direction
	}{
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), ActionMove, DirUp},
		{"arrow left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), ActionMove, DirLeft},
		{"w", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), ActionMove, DirUp},
		{"shift D", tcell.NewEventKey(tcell.KeyRune, 'D', tcell.ModShift), ActionMove, DirRight},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), ActionConfirm, 0},
		{"r", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), ActionRestart, 0},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), ActionQuit, 0},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionClose, 0},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), ActionClose, 0},
		{"other rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), ActionNone, 0},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), ActionNone, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, dir := FromKey(tt.ev)
			assert.Equal(t, tt.action, action)
			assert.Equal(t, tt.dir, dir)
		})
	}
}
