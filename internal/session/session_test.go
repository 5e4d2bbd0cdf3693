package session

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacehole-rogue/spacechase/internal/game"
)

// recorder is an Audio that writes down every call.
type recorder struct {
	calls []string
}

func (r *recorder) Play(c game.Cue)      { r.calls = append(r.calls, "cue:"+c.String()) }
func (r *recorder) PlayMusic(t Track)    { r.calls = append(r.calls, "music:"+t.String()) }
func (r *recorder) StopMusic()           { r.calls = append(r.calls, "stop") }
func (r *recorder) reset()               { r.calls = nil }
func (r *recorder) count(call string) int {
	n := 0
	for _, c := range r.calls {
		if c == call {
			n++
		}
	}
	return n
}

func newTestSession(t *testing.T) (*Session, *recorder, *[]string) {
	t.Helper()
	rec := &recorder{}
	var opened []string
	s := New(Options{
		Audio: rec,
		Seed:  func() int64 { return 1 },
		OpenPage: func(path string) error {
			opened = append(opened, path)
			return nil
		},
	})
	return s, rec, &opened
}

// skipCountdown confirms on the title screen and runs the countdown out.
func skipCountdown(t *testing.T, s *Session) {
	t.Helper()
	require.NoError(t, s.Update(Controls{Confirm: true}))
	for s.Phase() == PhaseCountdown {
		require.NoError(t, s.Update(Controls{}))
	}
	require.Equal(t, PhasePlaying, s.Phase())
}

// playUntilCaught idles until a shadow reaches the parked ship.
func playUntilCaught(t *testing.T, s *Session) {
	t.Helper()
	for i := 0; i < 10000 && s.Phase() == PhasePlaying; i++ {
		require.NoError(t, s.Update(Controls{}))
	}
	require.Equal(t, PhaseGameOver, s.Phase())
}

func TestNewSessionStartsOnTitle(t *testing.T) {
	s, rec, _ := newTestSession(t)

	assert.Equal(t, PhaseTitle, s.Phase())
	assert.Nil(t, s.Arena())
	assert.Equal(t, []string{"stop"}, rec.calls)

	require.NoError(t, s.Update(Controls{Up: true}))
	assert.Equal(t, PhaseTitle, s.Phase(), "only confirm leaves the title screen")
}

func TestCountdownTiming(t *testing.T) {
	s, rec, _ := newTestSession(t)
	rec.reset()

	require.NoError(t, s.Update(Controls{Confirm: true}))
	require.Equal(t, PhaseCountdown, s.Phase())

	labels := []string{s.View().Countdown}
	for i := 1; i < 3*60+36; i++ {
		require.NoError(t, s.Update(Controls{}))
		require.Equal(t, PhaseCountdown, s.Phase(), "update %d", i)
		if v := s.View().Countdown; v != labels[len(labels)-1] {
			labels = append(labels, v)
		}
	}
	assert.Equal(t, []string{"3", "2", "1", "GO!"}, labels)
	assert.Equal(t, 4, rec.count("cue:orb"), "one beep per countdown step")

	require.NoError(t, s.Update(Controls{}))
	assert.Equal(t, PhasePlaying, s.Phase())
	assert.Equal(t, "music:gameplay", rec.calls[len(rec.calls)-1])
	require.NotNil(t, s.Arena())
	assert.Equal(t, game.StateRunning, s.Arena().State())
}

func TestPlayingForwardsInputToArena(t *testing.T) {
	s, _, _ := newTestSession(t)
	skipCountdown(t, s)

	require.NoError(t, s.Update(Controls{Right: true}))
	require.NoError(t, s.Update(Controls{Right: true, Down: true}))

	pos := s.Arena().PlayerPos()
	assert.Equal(t, 410.0, pos.X)
	assert.Equal(t, 305.0, pos.Y)

	v := s.View()
	require.True(t, v.HasArena)
	assert.Equal(t, uint64(2), v.Arena.Tick)
}

func TestCaughtSwitchesToGameOver(t *testing.T) {
	s, rec, _ := newTestSession(t)
	skipCountdown(t, s)
	rec.reset()

	playUntilCaught(t, s)

	assert.Equal(t, 1, rec.count("cue:caught"))
	require.GreaterOrEqual(t, len(rec.calls), 3)
	assert.Equal(t, []string{"cue:caught", "stop", "music:game-over"}, rec.calls[len(rec.calls)-3:])
	v := s.View()
	assert.Equal(t, s.Arena().Score(), v.FinalScore)
	assert.Equal(t, game.StateEnded, v.Arena.State)
}

func TestRestartReturnsToTitle(t *testing.T) {
	s, rec, opened := newTestSession(t)
	skipCountdown(t, s)
	playUntilCaught(t, s)
	rec.reset()

	require.NoError(t, s.Update(Controls{Up: true}))
	assert.Equal(t, PhaseGameOver, s.Phase(), "movement keys do nothing on game over")

	require.NoError(t, s.Update(Controls{Restart: true}))
	assert.Equal(t, PhaseTitle, s.Phase())
	assert.Nil(t, s.Arena())
	assert.False(t, s.View().HasArena)
	assert.Equal(t, []string{"stop"}, rec.calls)
	assert.Empty(t, *opened)

	// A second round gets a fresh arena.
	skipCountdown(t, s)
	assert.Equal(t, 0, s.Arena().Score())
	assert.Equal(t, uint64(0), s.Arena().Ticks())
}

func TestQuitOpensFeedbackPage(t *testing.T) {
	s, _, opened := newTestSession(t)
	skipCountdown(t, s)
	playUntilCaught(t, s)

	err := s.Update(Controls{Quit: true})
	require.ErrorIs(t, err, ErrQuit)
	assert.Equal(t, []string{DefaultFeedbackPage}, *opened)
}

func TestQuitStillExitsWhenBrowserFails(t *testing.T) {
	s := New(Options{
		Seed:     func() int64 { return 1 },
		OpenPage: func(string) error { return errors.New("no browser") },
	})
	skipCountdown(t, s)
	playUntilCaught(t, s)

	assert.ErrorIs(t, s.Update(Controls{Quit: true}), ErrQuit)
}

func TestCloseQuitsFromAnyPhase(t *testing.T) {
	s, _, opened := newTestSession(t)
	assert.ErrorIs(t, s.Update(Controls{Close: true}), ErrQuit)

	s, _, _ = newTestSession(t)
	require.NoError(t, s.Update(Controls{Confirm: true}))
	assert.ErrorIs(t, s.Update(Controls{Close: true}), ErrQuit)

	s, _, _ = newTestSession(t)
	skipCountdown(t, s)
	assert.ErrorIs(t, s.Update(Controls{Close: true}), ErrQuit)

	assert.Empty(t, *opened, "closing the window skips the feedback page")
}

func TestQuitIgnoredOutsideGameOver(t *testing.T) {
	s, _, _ := newTestSession(t)
	require.NoError(t, s.Update(Controls{Quit: true, Restart: true}))
	assert.Equal(t, PhaseTitle, s.Phase())

	skipCountdown(t, s)
	require.NoError(t, s.Update(Controls{Quit: true}))
	assert.Equal(t, PhasePlaying, s.Phase())
}
