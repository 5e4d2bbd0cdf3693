package render

import (
	"fmt"

	"github.com/spacehole-rogue/spacechase/internal/game"
	"github.com/spacehole-rogue/spacechase/internal/session"
	"github.com/spacehole-rogue/spacechase/internal/world"
)

// Terminal grid size. The field maps onto it at 10 by 20 pixels per cell.
const (
	TermCols = 80
	TermRows = 30
)

// Glyphs for the terminal view.
const (
	ShipGlyph   = '^'
	ShadowGlyph = 'X'
	OrbGlyph    = 'o'
	StarGlyph   = '.'
)

// GameOverHint is the key help on the game-over screen.
const GameOverHint = "Press R to Restart  |  Q to Quit"

var termStars = Stars(60, world.FieldWidth, world.FieldHeight)

// Rasterize draws the session view into buf, which should be TermCols by TermRows.
func Rasterize(buf *CellBuffer, v session.View) {
	buf.Clear()
	field := world.DefaultField()
	for _, s := range termStars {
		x, y := cellOf(buf, field, world.Position{X: float64(s.X), Y: float64(s.Y)})
		buf.Set(x, y, StarGlyph, StarFG, ColorBlack)
	}

	switch v.Phase {
	case session.PhaseTitle:
		buf.WriteCentered(2, "SPACE CHASE", TitleFG, ColorBlack)
		for i, line := range session.Rules {
			buf.WriteCentered(6+i, line, TextFG, ColorBlack)
		}

	case session.PhaseCountdown:
		buf.WriteCentered(buf.Rows/2-1, v.Countdown, TextFG, ColorBlack)

	case session.PhasePlaying:
		if v.HasArena {
			rasterizeArena(buf, v.Arena)
		}

	case session.PhaseGameOver:
		buf.WriteCentered(6, "GAME OVER", TitleFG, ColorBlack)
		buf.WriteCentered(12, fmt.Sprintf("Final Score: %d", v.FinalScore), TextFG, ColorBlack)
		buf.WriteCentered(16, GameOverHint, HintFG, ColorBlack)
	}
}

func rasterizeArena(buf *CellBuffer, snap game.Snapshot) {
	x, y := cellOf(buf, snap.Field, snap.Orb)
	buf.Set(x, y, OrbGlyph, OrbFG, ColorBlack)
	for _, p := range snap.Shadows {
		x, y := cellOf(buf, snap.Field, p)
		buf.Set(x, y, ShadowGlyph, ShadowFG, ColorBlack)
	}
	x, y = cellOf(buf, snap.Field, snap.Player)
	buf.Set(x, y, ShipGlyph, ShipFG, ColorBlack)

	buf.WriteString(1, 0, fmt.Sprintf("Score: %d", snap.Score), TextFG, ColorBlack)
}

// cellOf maps a field position to a cell. Positions off the field map
// outside the buffer and are dropped by Set.
func cellOf(buf *CellBuffer, f world.Field, p world.Position) (int, int) {
	if !f.Contains(p) {
		return -1, -1
	}
	x := int(p.X * float64(buf.Cols) / float64(f.Width))
	y := int(p.Y * float64(buf.Rows) / float64(f.Height))
	return x, y
}
