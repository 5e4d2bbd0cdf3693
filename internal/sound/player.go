package sound

import (
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/spacehole-rogue/spacechase/internal/config"
	"github.com/spacehole-rogue/spacechase/internal/game"
	"github.com/spacehole-rogue/spacechase/internal/session"
)

const sampleRate = beep.SampleRate(44100)

// format every clip is converted to on load.
var format = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

// Sound file names, looked up in the configured sound directory.
var (
	cueFiles = [game.CueCount]string{
		game.CueOrb:         "orb.wav",
		game.CueShadowCrash: "collision.wav",
		game.CueCaught:      "game_over.wav",
	}
	trackFiles = [session.TrackCount]string{
		session.TrackGameplay: "suspense_loop.wav",
		session.TrackGameOver: "game_over_bg.wav",
	}
)

// Player plays cues and background music through beep's speaker.
// Every method is safe to call with no device and no files; it just stays quiet.
type Player struct {
	mu     sync.Mutex
	ready  bool // speaker initialized
	volume float64

	cues   [game.CueCount]*beep.Buffer
	tracks [session.TrackCount]*beep.Buffer
	music  *beep.Ctrl
}

// Open loads the sound files and opens the speaker. It never fails: a missing
// device or file is logged once and the affected sounds stay silent.
func Open(cfg *config.Config) *Player {
	p := newPlayer(cfg.Volume)
	if !cfg.AudioEnabled {
		return p
	}

	if missing := p.Load(cfg.SoundDir); len(missing) > 0 {
		log.Printf("sound: silent for missing or unreadable files: %s", strings.Join(missing, ", "))
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Printf("sound: audio unavailable, running silent: %v", err)
		return p
	}
	p.ready = true
	return p
}

func newPlayer(volume float64) *Player {
	return &Player{volume: volume}
}

// Load decodes every known sound file in dir and returns the names it could not use.
func (p *Player) Load(dir string) (missing []string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i, name := range cueFiles {
		buf, err := loadWav(filepath.Join(dir, name))
		if err != nil {
			missing = append(missing, name)
			continue
		}
		p.cues[i] = buf
	}
	for i, name := range trackFiles {
		buf, err := loadWav(filepath.Join(dir, name))
		if err != nil {
			missing = append(missing, name)
			continue
		}
		p.tracks[i] = buf
	}
	return missing
}

// loadWav decodes a whole wav file into memory at the speaker's sample rate.
func loadWav(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	streamer, fileFormat, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if fileFormat.SampleRate != sampleRate {
		s = beep.Resample(4, fileFormat.SampleRate, sampleRate, streamer)
	}
	buf := beep.NewBuffer(format)
	buf.Append(s)
	return buf, nil
}

// Play starts a one-shot cue on top of whatever is playing.
func (p *Player) Play(cue game.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready || cue >= game.CueCount || p.cues[cue] == nil {
		return
	}
	buf := p.cues[cue]
	speaker.Play(p.withVolume(buf.Streamer(0, buf.Len())))
}

// PlayMusic replaces the current background track with t, looped forever.
func (p *Player) PlayMusic(t session.Track) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopMusic()
	if !p.ready || t >= session.TrackCount || p.tracks[t] == nil {
		return
	}
	buf := p.tracks[t]
	p.music = &beep.Ctrl{Streamer: beep.Loop(-1, buf.Streamer(0, buf.Len()))}
	speaker.Play(p.withVolume(p.music))
}

// StopMusic silences the background track. Cues keep playing.
func (p *Player) StopMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopMusic()
}

func (p *Player) stopMusic() {
	if p.music == nil {
		return
	}
	// A Ctrl with no streamer ends, and the speaker drops it.
	speaker.Lock()
	p.music.Streamer = nil
	speaker.Unlock()
	p.music = nil
}

// Close stops all playback.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return
	}
	p.stopMusic()
	speaker.Clear()
	p.ready = false
}

// withVolume scales s by the configured linear volume.
func (p *Player) withVolume(s beep.Streamer) beep.Streamer {
	if p.volume >= 1 {
		return s
	}
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   math.Log2(math.Max(p.volume, 1e-6)),
		Silent:   p.volume <= 0,
	}
}

var _ session.Audio = (*Player)(nil)
