package main

import (
	"errors"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/spacehole-rogue/spacechase/internal/config"
	"github.com/spacehole-rogue/spacechase/internal/render"
	"github.com/spacehole-rogue/spacechase/internal/session"
	"github.com/spacehole-rogue/spacechase/internal/sound"
	"github.com/spacehole-rogue/spacechase/internal/world"
)

const (
	screenWidth  = world.FieldWidth
	screenHeight = world.FieldHeight
	title        = "Space Chase"
	ticksPerSec  = 60
)

// Game is the Ebitengine game struct. It owns rendering and input.
// All gameplay state lives in the session.
type Game struct {
	session *session.Session
	screen  *render.Screen
}

func NewGame(cfg *config.Config, audio session.Audio) *Game {
	sprites, err := render.LoadSprites(cfg.AssetDir)
	if err != nil {
		log.Fatalf("sprites: %v", err)
	}

	return &Game{
		session: session.New(session.Options{
			Audio:        audio,
			Seed:         cfg.SeedFunc(func() int64 { return time.Now().UnixNano() }),
			FeedbackPage: cfg.FeedbackPage,
		}),
		screen: render.NewScreen(sprites),
	}
}

func controls() session.Controls {
	return session.Controls{
		Up:    ebiten.IsKeyPressed(ebiten.KeyUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Down:  ebiten.IsKeyPressed(ebiten.KeyDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Left:  ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD),

		Confirm: inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Restart: inpututil.IsKeyJustPressed(ebiten.KeyR),
		Quit:    inpututil.IsKeyJustPressed(ebiten.KeyQ),
		Close:   inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}

func (g *Game) Update() error {
	if err := g.session.Update(controls()); err != nil {
		if errors.Is(err, session.ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.screen.Draw(screen, g.session.View())
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	audio := sound.Open(cfg)
	defer audio.Close()

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(ticksPerSec)

	game := NewGame(cfg, audio)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
