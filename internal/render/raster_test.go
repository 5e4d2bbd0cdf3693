package render

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacehole-rogue/spacechase/internal/game"
	"github.com/spacehole-rogue/spacechase/internal/session"
	"github.com/spacehole-rogue/spacechase/internal/world"
)

func playingView() session.View {
	return session.View{
		Phase:    session.PhasePlaying,
		HasArena: true,
		Arena: game.Snapshot{
			Field:      world.DefaultField(),
			SpriteSize: world.SpriteSize,
			State:      game.StateRunning,
			Score:      7,
			Player:     world.Position{X: 400, Y: 300},
			Shadows: []world.Position{
				game.ShadowSpawn,
				{X: 105, Y: 45},
			},
			Orb: world.Position{X: 780, Y: 580},
		},
	}
}

func TestRasterizeArena(t *testing.T) {
	buf := NewCellBuffer(TermCols, TermRows)
	Rasterize(buf, playingView())

	want := map[[2]int]Cell{
		{40, 15}: {Glyph: ShipGlyph, FG: ShipFG, BG: ColorBlack},
		{10, 2}:  {Glyph: ShadowGlyph, FG: ShadowFG, BG: ColorBlack},
		{78, 29}: {Glyph: OrbGlyph, FG: OrbFG, BG: ColorBlack},
	}
	for at, cell := range want {
		if diff := cmp.Diff(cell, buf.Get(at[0], at[1])); diff != "" {
			t.Errorf("cell %v (-want +got):\n%s", at, diff)
		}
	}
	assert.True(t, strings.HasPrefix(buf.Row(0)[1:], "Score: 7"), "row 0: %q", buf.Row(0))

	shadows := 0
	for _, c := range buf.Cells {
		if c.Glyph == ShadowGlyph {
			shadows++
		}
	}
	assert.Equal(t, 1, shadows, "parked shadow stays off screen")
}

func TestRasterizeShipDrawnOverShadow(t *testing.T) {
	v := playingView()
	v.Arena.Shadows = []world.Position{{X: 405, Y: 305}}
	buf := NewCellBuffer(TermCols, TermRows)
	Rasterize(buf, v)

	assert.Equal(t, ShipGlyph, buf.Get(40, 15).Glyph)
}

func TestRasterizeTitle(t *testing.T) {
	buf := NewCellBuffer(TermCols, TermRows)
	Rasterize(buf, session.View{Phase: session.PhaseTitle})

	assert.Contains(t, buf.Row(2), "SPACE CHASE")
	start := strings.Index(buf.Row(2), "SPACE CHASE")
	assert.Equal(t, (TermCols-len("SPACE CHASE"))/2, start)
	assert.Equal(t, uint8(TitleFG), buf.Get(start, 2).FG)

	last := session.Rules[len(session.Rules)-1]
	assert.Contains(t, buf.Row(6+len(session.Rules)-1), last)
}

func TestRasterizeCountdown(t *testing.T) {
	buf := NewCellBuffer(TermCols, TermRows)
	Rasterize(buf, session.View{Phase: session.PhaseCountdown, Countdown: "GO!"})

	assert.Contains(t, buf.Row(TermRows/2-1), "GO!")
	for _, c := range buf.Cells {
		require.NotEqual(t, ShipGlyph, c.Glyph, "no arena during the countdown")
	}
}

func TestRasterizeGameOver(t *testing.T) {
	buf := NewCellBuffer(TermCols, TermRows)
	v := playingView()
	v.Phase = session.PhaseGameOver
	v.FinalScore = 12
	Rasterize(buf, v)

	assert.Contains(t, buf.Row(6), "GAME OVER")
	assert.Contains(t, buf.Row(12), "Final Score: 12")
	assert.Contains(t, buf.Row(16), GameOverHint)
}

func TestRasterizeClearsPreviousFrame(t *testing.T) {
	buf := NewCellBuffer(TermCols, TermRows)
	Rasterize(buf, playingView())
	Rasterize(buf, session.View{Phase: session.PhaseCountdown, Countdown: "3"})

	assert.NotEqual(t, ShipGlyph, buf.Get(40, 15).Glyph)
}

func TestCellBufferIgnoresOutOfBounds(t *testing.T) {
	buf := NewCellBuffer(4, 2)
	buf.Set(-1, 0, 'x', ColorWhite, ColorBlack)
	buf.Set(4, 1, 'x', ColorWhite, ColorBlack)
	buf.WriteString(2, 1, "abc", ColorWhite, ColorBlack)

	assert.Equal(t, "    ", buf.Row(0))
	assert.Equal(t, "  ab", buf.Row(1))
	assert.Equal(t, Cell{}, buf.Get(9, 9))
}
