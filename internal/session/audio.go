package session

import "github.com/spacehole-rogue/spacechase/internal/game"

// Track is a looping background tune.
type Track uint8

const (
	TrackGameplay Track = iota
	TrackGameOver
	TrackCount // sentinel
)

func (t Track) String() string {
	switch t {
	case TrackGameplay:
		return "gameplay"
	case TrackGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Audio is the sound collaborator. Calls are fire-and-forget: they must not
// block the tick, and a missing device or asset simply stays quiet.
type Audio interface {
	Play(cue game.Cue)
	PlayMusic(t Track)
	StopMusic()
}

// Silent is an Audio that plays nothing.
type Silent struct{}

func (Silent) Play(game.Cue)   {}
func (Silent) PlayMusic(Track) {}
func (Silent) StopMusic()      {}
