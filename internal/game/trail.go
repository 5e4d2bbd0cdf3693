package game

import (
	"fmt"

	"github.com/spacehole-rogue/spacechase/internal/world"
)

// TrailCapacity is how many player positions the trail remembers (~83 seconds at 60 TPS).
const TrailCapacity = 5000

// TrailView is the read-only side of a Trail. Shadows only ever see this.
type TrailView interface {
	Len() int
	At(i int) world.Position
}

// Trail is a bounded FIFO of player positions, oldest first.
// Once full, each Append evicts the oldest sample.
type Trail struct {
	samples []world.Position
	head    int // index of the oldest sample in samples
	size    int
}

// NewTrail creates a trail that keeps at most capacity samples.
func NewTrail(capacity int) *Trail {
	if capacity < 1 {
		capacity = 1
	}
	return &Trail{samples: make([]world.Position, capacity)}
}

// Append adds p at the tail, evicting the head if the trail is over capacity.
func (t *Trail) Append(p world.Position) {
	tail := (t.head + t.size) % len(t.samples)
	t.samples[tail] = p
	if t.size < len(t.samples) {
		t.size++
		return
	}
	t.head = (t.head + 1) % len(t.samples)
}

// At returns the i-th sample counted from the oldest. Out of range panics.
func (t *Trail) At(i int) world.Position {
	if i < 0 || i >= t.size {
		panic(fmt.Sprintf("trail index %d out of range [0,%d)", i, t.size))
	}
	return t.samples[(t.head+i)%len(t.samples)]
}

// Len returns the number of samples currently held.
func (t *Trail) Len() int { return t.size }

// Cap returns the maximum number of samples.
func (t *Trail) Cap() int { return len(t.samples) }
