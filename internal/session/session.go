package session

import (
	"errors"
	"log"
	"time"

	"github.com/spacehole-rogue/spacechase/internal/game"
)

// ErrQuit is returned by Update when the player leaves the game.
var ErrQuit = errors.New("session: quit")

// Countdown timing, in ticks at 60 TPS.
const (
	countdownStepTicks = 60 // each of 3, 2, 1
	countdownGoTicks   = 36 // "GO!"
)

var countdownLabels = []string{"3", "2", "1", "GO!"}

// Rules is the briefing shown on the title screen.
var Rules = []string{
	"RULES:",
	"* Move with arrow keys or WASD (you are the SPACESHIP).",
	"* RED ALIENS retrace your past path (with a delay).",
	"* Collect glowing FUEL CORES to score and add delay.",
	"* Every 2nd core spawns a new alien shadow.",
	"* Make aliens collide to remove one.",
	"* If any alien hits you -> GAME OVER.",
	"",
	"Press SPACE to start",
}

// Phase is the screen the session is on.
type Phase uint8

const (
	PhaseTitle Phase = iota
	PhaseCountdown
	PhasePlaying
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseTitle:
		return "title"
	case PhaseCountdown:
		return "countdown"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Controls is one tick of player input. Directions are held state; the rest
// are presses that happened since the previous tick.
type Controls struct {
	Up, Down, Left, Right bool

	Confirm bool // start from the title screen
	Restart bool // back to the title screen after game over
	Quit    bool // leave via the feedback page after game over
	Close   bool // window closed; leave from anywhere
}

func (c Controls) input() game.Input {
	return game.Input{Up: c.Up, Down: c.Down, Left: c.Left, Right: c.Right}
}

// Options configures a Session. Zero values pick sensible defaults.
type Options struct {
	Audio        Audio
	Seed         func() int64
	FeedbackPage string
	OpenPage     func(path string) error
}

// Session runs the replay loop around arenas: title, countdown, play, game over.
type Session struct {
	phase Phase
	arena *game.Arena
	audio Audio

	step      int // index into countdownLabels
	stepTicks int // ticks left on the current countdown step

	finalScore int

	seed     func() int64
	feedback string
	openPage func(string) error
}

// New creates a session on the title screen.
func New(opts Options) *Session {
	s := &Session{
		audio:    opts.Audio,
		seed:     opts.Seed,
		feedback: opts.FeedbackPage,
		openPage: opts.OpenPage,
	}
	if s.audio == nil {
		s.audio = Silent{}
	}
	if s.seed == nil {
		s.seed = func() int64 { return time.Now().UnixNano() }
	}
	if s.feedback == "" {
		s.feedback = DefaultFeedbackPage
	}
	if s.openPage == nil {
		s.openPage = OpenFeedback
	}
	s.enterTitle()
	return s
}

// Update advances the session by one tick. It returns ErrQuit once the
// player has left; the caller should stop ticking and exit.
func (s *Session) Update(c Controls) error {
	if c.Close {
		return ErrQuit
	}

	switch s.phase {
	case PhaseTitle:
		if c.Confirm {
			s.enterCountdown()
		}

	case PhaseCountdown:
		s.stepTicks--
		if s.stepTicks > 0 {
			return nil
		}
		s.step++
		if s.step < len(countdownLabels) {
			s.startStep()
			return nil
		}
		s.enterPlaying()

	case PhasePlaying:
		for _, cue := range s.arena.Tick(c.input()) {
			s.audio.Play(cue)
		}
		if s.arena.State() == game.StateEnded {
			s.enterGameOver()
		}

	case PhaseGameOver:
		switch {
		case c.Restart:
			s.enterTitle()
		case c.Quit:
			if err := s.openPage(s.feedback); err != nil {
				log.Printf("feedback page: %v", err)
			}
			return ErrQuit
		}
	}
	return nil
}

func (s *Session) enterTitle() {
	s.phase = PhaseTitle
	s.arena = nil
	s.audio.StopMusic()
}

func (s *Session) enterCountdown() {
	s.phase = PhaseCountdown
	s.step = 0
	s.startStep()
}

func (s *Session) startStep() {
	s.stepTicks = countdownStepTicks
	if s.step == len(countdownLabels)-1 {
		s.stepTicks = countdownGoTicks
	}
	s.audio.Play(game.CueOrb)
}

func (s *Session) enterPlaying() {
	s.phase = PhasePlaying
	s.arena = game.NewArena(s.seed())
	s.arena.Start()
	s.audio.PlayMusic(TrackGameplay)
}

func (s *Session) enterGameOver() {
	s.phase = PhaseGameOver
	s.finalScore = s.arena.Score()
	s.audio.StopMusic()
	s.audio.PlayMusic(TrackGameOver)
}

// Phase returns the current screen.
func (s *Session) Phase() Phase { return s.phase }

// Arena returns the live arena, or nil outside play and game over.
func (s *Session) Arena() *game.Arena { return s.arena }

// View is what a front end needs to draw the current tick.
type View struct {
	Phase      Phase
	Countdown  string        // label during PhaseCountdown
	Arena      game.Snapshot // valid when HasArena
	HasArena   bool
	FinalScore int // valid in PhaseGameOver
}

// View captures the session for drawing.
func (s *Session) View() View {
	v := View{Phase: s.phase, FinalScore: s.finalScore}
	if s.phase == PhaseCountdown {
		v.Countdown = countdownLabels[s.step]
	}
	if s.arena != nil {
		v.Arena = s.arena.Snapshot()
		v.HasArena = true
	}
	return v
}
