// Command spacechase-term plays Space Chase in a terminal.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/spacehole-rogue/spacechase/internal/config"
	"github.com/spacehole-rogue/spacechase/internal/input"
	"github.com/spacehole-rogue/spacechase/internal/render"
	"github.com/spacehole-rogue/spacechase/internal/session"
	"github.com/spacehole-rogue/spacechase/internal/sound"
)

const ticksPerSec = 60

type term struct {
	screen  tcell.Screen
	session *session.Session
	latch   *input.Latch
	buf     *render.CellBuffer
	pending session.Controls // presses since the last tick
}

func newTerm(screen tcell.Screen, cfg *config.Config, audio session.Audio) (*term, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()

	return &term{
		screen: screen,
		session: session.New(session.Options{
			Audio:        audio,
			Seed:         cfg.SeedFunc(func() int64 { return time.Now().UnixNano() }),
			FeedbackPage: cfg.FeedbackPage,
		}),
		latch: input.NewLatch(cfg.KeyHoldTicks),
		buf:   render.NewCellBuffer(render.TermCols, render.TermRows),
	}, nil
}

func (t *term) run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / ticksPerSec)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			events <- ev
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				t.handleKey(ev)
			case *tcell.EventResize:
				t.screen.Sync()
			}

		case <-ticker.C:
			if err := t.tick(); err != nil {
				return err
			}
			t.draw()
		}
	}
}

func (t *term) handleKey(ev *tcell.EventKey) {
	action, dir := input.FromKey(ev)
	switch action {
	case input.ActionMove:
		t.latch.Press(dir)
	case input.ActionConfirm:
		t.pending.Confirm = true
	case input.ActionRestart:
		t.pending.Restart = true
	case input.ActionQuit:
		t.pending.Quit = true
	case input.ActionClose:
		t.pending.Close = true
	}
}

func (t *term) tick() error {
	c := t.pending
	t.pending = session.Controls{}

	held := t.latch.Tick()
	c.Up, c.Down, c.Left, c.Right = held.Up, held.Down, held.Left, held.Right

	before := t.session.Phase()
	if err := t.session.Update(c); err != nil {
		return err
	}
	if t.session.Phase() != before {
		t.latch.Reset()
	}
	return nil
}

func (t *term) draw() {
	render.Rasterize(t.buf, t.session.View())

	w, h := t.screen.Size()
	ox, oy := max(0, (w-t.buf.Cols)/2), max(0, (h-t.buf.Rows)/2)

	t.screen.Clear()
	for y := 0; y < t.buf.Rows; y++ {
		for x := 0; x < t.buf.Cols; x++ {
			cell := t.buf.Get(x, y)
			t.screen.SetContent(ox+x, oy+y, cell.Glyph, nil, cellStyle(cell))
		}
	}
	t.screen.Show()
}

func cellStyle(c render.Cell) tcell.Style {
	return tcell.StyleDefault.
		Foreground(paletteColor(c.FG)).
		Background(paletteColor(c.BG))
}

func paletteColor(i uint8) tcell.Color {
	p := render.Palette[i&0x0f]
	return tcell.NewRGBColor(int32(p.R), int32(p.G), int32(p.B))
}

func (t *term) close() {
	t.screen.Fini()
}

// setupLog sends log output to path, or nowhere when path is empty, so it
// never scribbles over the screen.
func setupLog(path string) (io.Closer, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	return f, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logFile, err := setupLog(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	audio := sound.Open(cfg)
	defer audio.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	t, err := newTerm(screen, cfg, audio)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	err = t.run(ctx)
	t.close()
	if err != nil && !errors.Is(err, session.ErrQuit) {
		fmt.Fprintf(os.Stderr, "spacechase: %v\n", err)
		os.Exit(1)
	}
}
