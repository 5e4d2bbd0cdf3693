package game

// Input is the per-tick snapshot of held direction controls. Each flag is already the OR of
// every key bound to that direction.
type Input struct {
	Up, Down, Left, Right bool
}

// PlayerControlled tags the player's ship entity.
type PlayerControlled struct{}

// Pickup tags the fuel core entity.
type Pickup struct{}

// State is the lifecycle of one arena.
type State uint8

const (
	StateNotStarted State = iota
	StateRunning
	StateEnded // player was caught; score is final
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not started"
	case StateRunning:
		return "running"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Cue is a sound trigger raised by the simulation. Playback happens outside it.
type Cue uint8

const (
	CueOrb         Cue = iota // fuel core collected
	CueShadowCrash            // two shadows collided, one destroyed
	CueCaught                 // a shadow reached the player
	CueCount                  // sentinel
)

func (c Cue) String() string {
	switch c {
	case CueOrb:
		return "orb"
	case CueShadowCrash:
		return "shadow-crash"
	case CueCaught:
		return "caught"
	default:
		return "unknown"
	}
}
