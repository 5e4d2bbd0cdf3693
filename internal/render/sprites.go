package render

import (
	"image"
	"image/color"
	"math"
	"math/rand/v2"
)

// Procedural stand-ins for the sprite PNGs, drawn pixel by pixel.

// ShipImage draws the player's ship: an upward arrowhead with an engine glow.
func ShipImage(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	hull := nrgba(Palette[ColorLightCyan])
	trim := nrgba(Palette[ColorLightBlue])
	flame := nrgba(Palette[ColorYellow])

	mid := float64(size-1) / 2
	tail := size * 3 / 4
	for y := 0; y < tail; y++ {
		// Half-width grows linearly from the nose to the tail.
		half := mid * float64(y) / float64(tail-1)
		for x := 0; x < size; x++ {
			d := math.Abs(float64(x) - mid)
			switch {
			case d <= half-2:
				img.SetNRGBA(x, y, hull)
			case d <= half:
				img.SetNRGBA(x, y, trim)
			}
		}
	}
	for y := tail; y < size; y++ {
		half := float64(size-y) / 2
		for x := 0; x < size; x++ {
			if math.Abs(float64(x)-mid) <= half {
				img.SetNRGBA(x, y, flame)
			}
		}
	}
	return img
}

// AlienImage draws a shadow: a red saucer with two eyes.
func AlienImage(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	body := nrgba(Palette[ColorLightRed])
	rim := nrgba(Palette[ColorRed])
	eye := nrgba(Palette[ColorBlack])

	c := float64(size-1) / 2
	r := float64(size) / 2
	eyeR := float64(size) / 10
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)-c, float64(y)-c)
			switch {
			case d > r:
				continue
			case d > r-2:
				img.SetNRGBA(x, y, rim)
			default:
				img.SetNRGBA(x, y, body)
			}
		}
	}
	for _, ex := range []float64{c - r/2.5, c + r/2.5} {
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				if math.Hypot(float64(x)-ex, float64(y)-(c-r/5)) <= eyeR {
					img.SetNRGBA(x, y, eye)
				}
			}
		}
	}
	return img
}

// FuelCoreImage draws the pickup: a yellow core fading out into a glow.
func FuelCoreImage(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	core := Palette[ColorYellow]

	c := float64(size-1) / 2
	r := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)-c, float64(y)-c) / r
			if d > 1 {
				continue
			}
			a := uint8(255)
			if d > 0.4 {
				a = uint8(255 * (1 - d) / 0.6)
			}
			img.SetNRGBA(x, y, color.NRGBA{core.R, core.G, core.B, a})
		}
	}
	return img
}

// Star is one background star in field coordinates.
type Star struct {
	X, Y   int
	Bright bool
}

// starSeed fixes the sky so every round and both front ends show the same one.
const starSeed = 0x5ace

// Stars returns n stars scattered over a w by h field.
func Stars(n, w, h int) []Star {
	rng := rand.New(rand.NewPCG(starSeed, starSeed>>4|1))
	stars := make([]Star, n)
	for i := range stars {
		stars[i] = Star{X: rng.IntN(w), Y: rng.IntN(h), Bright: rng.IntN(5) == 0}
	}
	return stars
}

// BackgroundImage draws the star field backdrop.
func BackgroundImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	space := nrgba(Palette[ColorBlack])
	for i := 0; i < len(img.Pix); i += 4 {
		copy(img.Pix[i:i+4], []uint8{space.R, space.G, space.B, space.A})
	}
	dim := nrgba(Palette[ColorDarkGray])
	bright := nrgba(Palette[ColorWhite])
	for _, s := range Stars(w*h/2000, w, h) {
		if s.Bright {
			img.SetNRGBA(s.X, s.Y, bright)
			img.SetNRGBA(s.X+1, s.Y, dim)
			img.SetNRGBA(s.X, s.Y+1, dim)
			continue
		}
		img.SetNRGBA(s.X, s.Y, dim)
	}
	return img
}

func nrgba(c color.RGBA) color.NRGBA {
	return color.NRGBA{c.R, c.G, c.B, c.A}
}
