package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvAssets       = "SPACECHASE_ASSETS"
	EnvSounds       = "SPACECHASE_SOUNDS"
	EnvAudioEnabled = "SPACECHASE_AUDIO_ENABLED"
	EnvVolume       = "SPACECHASE_VOLUME"
	EnvSeed         = "SPACECHASE_SEED"
	EnvFeedback     = "SPACECHASE_FEEDBACK"
	EnvKeyHold      = "SPACECHASE_KEY_HOLD"
	EnvLog          = "SPACECHASE_LOG"
)

// ErrInvalid wraps every malformed setting.
var ErrInvalid = errors.New("invalid setting")

// Config holds runtime settings. Gameplay tuning is fixed and lives in internal/game.
type Config struct {
	AssetDir     string  // sprite PNGs; empty means draw sprites procedurally
	SoundDir     string  // wav files
	AudioEnabled bool    // false keeps the speaker closed
	Volume       float64 // 0.0-1.0
	Seed         int64   // 0 picks a new seed every round
	FeedbackPage string  // opened on quit from the game-over screen
	KeyHoldTicks int     // terminal front end: ticks a key press counts as held
	LogFile      string  // terminal front end: where log output goes
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		SoundDir:     ".",
		AudioEnabled: true,
		Volume:       0.8,
		FeedbackPage: "index.html",
		KeyHoldTicks: 9,
	}
}

// Load reads an optional .env file from the working directory, then applies
// SPACECHASE_* environment variables over the defaults.
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile is Load with an explicit dotenv path. A missing file is not an error.
// Variables already set in the environment win over the file.
func LoadFile(dotenv string) (*Config, error) {
	if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", dotenv, err)
	}
	return FromEnv()
}

// FromEnv applies SPACECHASE_* variables over the defaults.
func FromEnv() (*Config, error) {
	cfg := Default()

	if v, ok := lookup(EnvAssets); ok {
		cfg.AssetDir = v
	}
	if v, ok := lookup(EnvSounds); ok {
		cfg.SoundDir = v
	}
	if v, ok := lookup(EnvFeedback); ok {
		cfg.FeedbackPage = v
	}
	if v, ok := lookup(EnvLog); ok {
		cfg.LogFile = v
	}

	if v, ok := lookup(EnvAudioEnabled); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, invalid(EnvAudioEnabled, v, err)
		}
		cfg.AudioEnabled = b
	}

	// Volume is given as 0-100.
	if v, ok := lookup(EnvVolume); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, invalid(EnvVolume, v, err)
		}
		if n < 0 || n > 100 {
			return nil, invalid(EnvVolume, v, errors.New("want 0-100"))
		}
		cfg.Volume = float64(n) / 100
	}

	if v, ok := lookup(EnvSeed); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, invalid(EnvSeed, v, err)
		}
		cfg.Seed = n
	}

	if v, ok := lookup(EnvKeyHold); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, invalid(EnvKeyHold, v, err)
		}
		if n < 1 {
			return nil, invalid(EnvKeyHold, v, errors.New("want at least 1"))
		}
		cfg.KeyHoldTicks = n
	}

	return cfg, nil
}

// SeedFunc returns the per-round seed source: the fixed seed if one is set,
// otherwise a fresh clock-derived seed per round.
func (c *Config) SeedFunc(now func() int64) func() int64 {
	if c.Seed != 0 {
		seed := c.Seed
		return func() int64 { return seed }
	}
	return now
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

func invalid(key, value string, err error) error {
	return fmt.Errorf("%w: %s=%q: %w", ErrInvalid, key, value, err)
}
