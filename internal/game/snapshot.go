package game

import "github.com/spacehole-rogue/spacechase/internal/world"

// Snapshot is everything a front end needs to draw one frame of the arena.
type Snapshot struct {
	Field      world.Field
	SpriteSize float64
	State      State
	Tick       uint64
	Score      int
	Player     world.Position
	Shadows    []world.Position
	Orb        world.Position
}

// Snapshot copies the drawable state. The result shares nothing with the arena.
func (a *Arena) Snapshot() Snapshot {
	shadows := make([]world.Position, len(a.shadows))
	for i, e := range a.shadows {
		shadows[i] = *a.posMap.Get(e)
	}
	return Snapshot{
		Field:      a.Field,
		SpriteSize: world.SpriteSize,
		State:      a.state,
		Tick:       a.ticks,
		Score:      a.score,
		Player:     a.PlayerPos(),
		Shadows:    shadows,
		Orb:        a.OrbPos(),
	}
}
