package game

import (
	"math"

	"github.com/spacehole-rogue/spacechase/internal/world"
)

// Shadow tuning. At 60 TPS the initial delay is two seconds of trail.
const (
	InitialShadowSpeed = 5.0
	InitialDelay       = 120 // trail samples
	DelayBonus         = 30  // added to every shadow's delay per fuel core
	SpeedStep          = 0.5 // base speed increase per spawn milestone
	SpawnEvery         = 2   // a new shadow joins on every 2nd fuel core
)

// ShadowSpawn is where new shadows wait, well off-field, until the trail is long enough.
var ShadowSpawn = world.Position{X: -100, Y: -100}

// Shadow is a pursuer that retraces the player's trail delay samples behind.
// It reads the trail through a TrailView and never writes to it.
type Shadow struct {
	Speed float64
	Delay int // how many samples behind the newest one the shadow may read
	Index int // read cursor, advances once per tick of movement

	trail TrailView
}

// NewShadow creates a shadow bound to trail.
func NewShadow(trail TrailView, delay int, speed float64) Shadow {
	return Shadow{Speed: speed, Delay: delay, trail: trail}
}

// Target returns the trail sample the shadow is heading for, or false if the
// trail is not yet longer than the delay.
func (s *Shadow) Target() (world.Position, bool) {
	n := s.trail.Len()
	if n <= s.Delay {
		return world.Position{}, false
	}
	return s.trail.At(min(s.Index, n-s.Delay-1)), true
}

// Advance moves pos one step toward the target sample and reports whether it moved.
// Displacement is truncated to whole pixels per axis, so a slow shadow can stall
// right next to its target.
func (s *Shadow) Advance(pos *world.Position) bool {
	target, ok := s.Target()
	if !ok {
		return false
	}
	dx := target.X - pos.X
	dy := target.Y - pos.Y
	dist := math.Max(1, math.Sqrt(dx*dx+dy*dy))
	pos.X += math.Trunc(s.Speed * dx / dist)
	pos.Y += math.Trunc(s.Speed * dy / dist)
	s.Index++
	return true
}
