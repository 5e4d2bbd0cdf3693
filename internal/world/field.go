package world

// Play field dimensions, in pixels.
const (
	FieldWidth  = 800
	FieldHeight = 600

	// SpriteSize is the edge length of every square sprite (ship, alien, fuel core).
	SpriteSize = 40
)

// Position is a point on the play field. Entity positions are sprite centers.
type Position struct {
	X, Y float64
}

// Add returns p shifted by (dx, dy).
func (p Position) Add(dx, dy float64) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Rect is an axis-aligned box with its top-left corner at (X, Y).
type Rect struct {
	X, Y, W, H float64
}

// RectAround returns the size×size box centered on c.
func RectAround(c Position, size float64) Rect {
	half := float64(int(size) / 2)
	return Rect{X: c.X - half, Y: c.Y - half, W: size, H: size}
}

// Intersects reports whether two boxes overlap. Boxes that only share an edge do not.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Field is the rectangular play area.
type Field struct {
	Width  int
	Height int
}

// DefaultField returns the 800×600 arena.
func DefaultField() Field {
	return Field{Width: FieldWidth, Height: FieldHeight}
}

// Center returns the middle of the field.
func (f Field) Center() Position {
	return Position{X: float64(f.Width / 2), Y: float64(f.Height / 2)}
}

// ClampCenter keeps a size×size box centered on p fully inside the field.
func (f Field) ClampCenter(p Position, size float64) Position {
	half := float64(int(size) / 2)
	p.X = clampFloat(p.X, half, float64(f.Width)-(size-half))
	p.Y = clampFloat(p.Y, half, float64(f.Height)-(size-half))
	return p
}

// Contains reports whether p lies inside the field (edges included).
func (f Field) Contains(p Position) bool {
	return p.X >= 0 && p.X <= float64(f.Width) && p.Y >= 0 && p.Y <= float64(f.Height)
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
