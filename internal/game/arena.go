package game

import (
	"math/rand/v2"

	"github.com/mlange-42/ark/ecs"
	"github.com/spacehole-rogue/spacechase/internal/world"
)

// Arena is one play session of the chase. It owns all gameplay state: the ship,
// its trail, the shadows in spawn order, the fuel core and the score.
type Arena struct {
	ECS   *ecs.World
	Field world.Field

	trail       *Trail
	rng         *rand.Rand
	state       State
	score       int
	shadowSpeed float64 // speed given to the next spawned shadow
	ticks       uint64

	player  ecs.Entity
	orb     ecs.Entity
	shadows []ecs.Entity // order decides which shadow survives a crash

	posMap    *ecs.Map[world.Position]
	shadowMap *ecs.Map[Shadow]
}

// NewArena creates a session with the ship at the field center, one shadow
// waiting off-field and a fuel core placed from seed.
func NewArena(seed int64) *Arena {
	w := ecs.NewWorld(64)
	field := world.DefaultField()
	trail := NewTrail(TrailCapacity)

	center := field.Center()
	player := ecs.NewMap2[world.Position, PlayerControlled](w).NewEntity(
		&center,
		&PlayerControlled{},
	)

	a := &Arena{
		ECS:         w,
		Field:       field,
		trail:       trail,
		rng:         rand.New(rand.NewPCG(uint64(seed), uint64(seed>>16|1))),
		shadowSpeed: InitialShadowSpeed,
		player:      player,
		posMap:      ecs.NewMap[world.Position](w),
		shadowMap:   ecs.NewMap[Shadow](w),
	}
	a.spawnShadow()
	a.orb = a.spawnOrb()
	return a
}

// Start moves a fresh arena into the running state.
func (a *Arena) Start() {
	if a.state == StateNotStarted {
		a.state = StateRunning
	}
}

// Tick advances the simulation by one step and returns the sound cues it raised.
// Ticking an arena that is not running does nothing.
func (a *Arena) Tick(in Input) []Cue {
	if a.state != StateRunning {
		return nil
	}
	a.ticks++

	pos := a.posMap.Get(a.player)
	*pos = movePlayer(*pos, in, a.Field)
	a.trail.Append(*pos)
	playerBox := world.RectAround(*pos, world.SpriteSize)

	// Every shadow reads the trail after this tick's append.
	for _, e := range a.shadows {
		a.shadowMap.Get(e).Advance(a.posMap.Get(e))
	}

	// Being caught ends the session before anything else is resolved.
	for _, e := range a.shadows {
		if playerBox.Intersects(a.box(e)) {
			a.state = StateEnded
			return []Cue{CueCaught}
		}
	}

	var cues []Cue
	if a.resolveShadowCrash() {
		cues = append(cues, CueShadowCrash)
	}
	if playerBox.Intersects(a.box(a.orb)) {
		a.collectOrb()
		cues = append(cues, CueOrb)
	}
	return cues
}

// resolveShadowCrash removes the later shadow of the first overlapping pair in
// (i, j) scan order. At most one shadow is removed per tick.
func (a *Arena) resolveShadowCrash() bool {
	for i := 0; i < len(a.shadows); i++ {
		bi := a.box(a.shadows[i])
		for j := i + 1; j < len(a.shadows); j++ {
			if bi.Intersects(a.box(a.shadows[j])) {
				a.removeShadow(j)
				return true
			}
		}
	}
	return false
}

func (a *Arena) collectOrb() {
	a.score++
	a.ECS.RemoveEntity(a.orb)
	a.orb = a.spawnOrb()

	for _, e := range a.shadows {
		a.shadowMap.Get(e).Delay += DelayBonus
	}
	if a.score%SpawnEvery == 0 {
		a.shadowSpeed += SpeedStep
		a.spawnShadow()
	}
}

// spawnShadow adds a shadow with the base delay and the current base speed.
// Delay bonuses earned by older shadows are not inherited.
func (a *Arena) spawnShadow() {
	pos := ShadowSpawn
	sh := NewShadow(a.trail, InitialDelay, a.shadowSpeed)
	e := ecs.NewMap2[world.Position, Shadow](a.ECS).NewEntity(&pos, &sh)
	a.shadows = append(a.shadows, e)
}

func (a *Arena) removeShadow(i int) {
	a.ECS.RemoveEntity(a.shadows[i])
	a.shadows = append(a.shadows[:i], a.shadows[i+1:]...)
}

func (a *Arena) spawnOrb() ecs.Entity {
	pos := SpawnOrb(a.rng, a.Field)
	return ecs.NewMap2[world.Position, Pickup](a.ECS).NewEntity(&pos, &Pickup{})
}

func (a *Arena) box(e ecs.Entity) world.Rect {
	return world.RectAround(*a.posMap.Get(e), world.SpriteSize)
}

// State returns the session lifecycle state.
func (a *Arena) State() State { return a.state }

// Score returns the number of fuel cores collected.
func (a *Arena) Score() int { return a.score }

// Ticks returns how many ticks the arena has simulated.
func (a *Arena) Ticks() uint64 { return a.ticks }

// ShadowSpeed returns the speed the next spawned shadow will get.
func (a *Arena) ShadowSpeed() float64 { return a.shadowSpeed }

// ShadowCount returns the number of live shadows.
func (a *Arena) ShadowCount() int { return len(a.shadows) }

// Trail exposes the ship's trail read-only.
func (a *Arena) Trail() TrailView { return a.trail }

// PlayerPos returns the ship's center.
func (a *Arena) PlayerPos() world.Position {
	return *a.posMap.Get(a.player)
}

// OrbPos returns the fuel core's center.
func (a *Arena) OrbPos() world.Position {
	return *a.posMap.Get(a.orb)
}

// ShadowState is a copy of one shadow's data, for inspection and display.
type ShadowState struct {
	Pos   world.Position
	Speed float64
	Delay int
	Index int
}

// Shadows returns the live shadows in spawn order.
func (a *Arena) Shadows() []ShadowState {
	out := make([]ShadowState, len(a.shadows))
	for i, e := range a.shadows {
		sh := a.shadowMap.Get(e)
		out[i] = ShadowState{
			Pos:   *a.posMap.Get(e),
			Speed: sh.Speed,
			Delay: sh.Delay,
			Index: sh.Index,
		}
	}
	return out
}
