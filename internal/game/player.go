package game

import "github.com/spacehole-rogue/spacechase/internal/world"

// PlayerSpeed is the per-axis displacement in pixels per tick.
const PlayerSpeed = 5

// movePlayer applies one tick of input to the ship's center.
// Diagonals are not normalized: both axes move at full speed.
func movePlayer(pos world.Position, in Input, field world.Field) world.Position {
	dx, dy := 0.0, 0.0
	if in.Left {
		dx -= PlayerSpeed
	}
	if in.Right {
		dx += PlayerSpeed
	}
	if in.Up {
		dy -= PlayerSpeed
	}
	if in.Down {
		dy += PlayerSpeed
	}
	return field.ClampCenter(pos.Add(dx, dy), world.SpriteSize)
}
