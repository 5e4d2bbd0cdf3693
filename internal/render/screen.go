package render

import (
	"fmt"
	"image/color"
	"path/filepath"

	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/spacehole-rogue/spacechase/internal/session"
	"github.com/spacehole-rogue/spacechase/internal/world"
)

// Sprite file names inside the asset directory.
const (
	BackgroundFile = "spacebg.png"
	ShipFile       = "spaceship.png"
	AlienFile      = "alien.png"
	FuelCoreFile   = "fuelcore.png"
)

// Sprites holds the images the window front end draws with.
type Sprites struct {
	Background *ebiten.Image
	Ship       *ebiten.Image
	Alien      *ebiten.Image
	FuelCore   *ebiten.Image
}

// LoadSprites reads the sprite PNGs from dir. An empty dir draws the
// sprites procedurally instead.
func LoadSprites(dir string) (*Sprites, error) {
	if dir == "" {
		return &Sprites{
			Background: ebiten.NewImageFromImage(BackgroundImage(world.FieldWidth, world.FieldHeight)),
			Ship:       ebiten.NewImageFromImage(ShipImage(world.SpriteSize)),
			Alien:      ebiten.NewImageFromImage(AlienImage(world.SpriteSize)),
			FuelCore:   ebiten.NewImageFromImage(FuelCoreImage(world.SpriteSize)),
		}, nil
	}

	s := &Sprites{}
	for _, f := range []struct {
		name string
		dst  **ebiten.Image
	}{
		{BackgroundFile, &s.Background},
		{ShipFile, &s.Ship},
		{AlienFile, &s.Alien},
		{FuelCoreFile, &s.FuelCore},
	} {
		img, _, err := ebitenutil.NewImageFromFile(filepath.Join(dir, f.name))
		if err != nil {
			return nil, fmt.Errorf("load sprite %s: %w", f.name, err)
		}
		*f.dst = img
	}
	return s, nil
}

// Text sizes as scale factors over the base faces.
const (
	bigScale  = 5 // basicfont 7x13
	bodyScale = 2 // bitmapfont 12px
)

var textColor = color.RGBA{255, 255, 255, 255}

// Screen draws a session view onto the window.
type Screen struct {
	sprites *Sprites
	big     text.Face
	body    text.Face
}

// NewScreen creates a screen that draws with sprites.
func NewScreen(sprites *Sprites) *Screen {
	return &Screen{
		sprites: sprites,
		big:     text.NewGoXFace(basicfont.Face7x13),
		body:    text.NewGoXFace(bitmapfont.Face),
	}
}

// Draw renders one frame of v.
func (s *Screen) Draw(dst *ebiten.Image, v session.View) {
	s.drawStretched(dst, s.sprites.Background)

	h := float64(world.FieldHeight)
	switch v.Phase {
	case session.PhaseTitle:
		s.drawCentered(dst, "SPACE CHASE", s.big, bigScale, 60, TitleColor)
		y := 180.0
		for _, line := range session.Rules {
			s.drawCentered(dst, line, s.body, bodyScale, y, textColor)
			y += 36
		}

	case session.PhaseCountdown:
		s.drawCentered(dst, v.Countdown, s.big, bigScale, h/2-60, textColor)

	case session.PhasePlaying:
		if v.HasArena {
			s.drawArena(dst, v)
		}

	case session.PhaseGameOver:
		s.drawCentered(dst, "GAME OVER", s.big, bigScale, 120, textColor)
		s.drawCentered(dst, fmt.Sprintf("Final Score: %d", v.FinalScore), s.body, bodyScale, 240, textColor)
		s.drawCentered(dst, GameOverHint, s.body, bodyScale, 320, textColor)
	}
}

func (s *Screen) drawArena(dst *ebiten.Image, v session.View) {
	snap := v.Arena
	s.drawSprite(dst, s.sprites.Ship, snap.Player, snap.SpriteSize)
	for _, p := range snap.Shadows {
		s.drawSprite(dst, s.sprites.Alien, p, snap.SpriteSize)
	}
	s.drawSprite(dst, s.sprites.FuelCore, snap.Orb, snap.SpriteSize)

	op := &text.DrawOptions{}
	op.GeoM.Scale(bodyScale, bodyScale)
	op.GeoM.Translate(10, 10)
	op.ColorScale.ScaleWithColor(textColor)
	text.Draw(dst, fmt.Sprintf("Score: %d", snap.Score), s.body, op)
}

// drawSprite draws img scaled to a size by size box centered on c.
func (s *Screen) drawSprite(dst, img *ebiten.Image, c world.Position, size float64) {
	b := img.Bounds()
	box := world.RectAround(c, size)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(box.W/float64(b.Dx()), box.H/float64(b.Dy()))
	op.GeoM.Translate(box.X, box.Y)
	dst.DrawImage(img, op)
}

func (s *Screen) drawStretched(dst, img *ebiten.Image) {
	sb, db := img.Bounds(), dst.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(db.Dx())/float64(sb.Dx()), float64(db.Dy())/float64(sb.Dy()))
	dst.DrawImage(img, op)
}

func (s *Screen) drawCentered(dst *ebiten.Image, str string, face text.Face, scale, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(dst.Bounds().Dx())/2, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, str, face, op)
}
