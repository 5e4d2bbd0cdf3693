package game

import (
	"math/rand/v2"

	"github.com/spacehole-rogue/spacechase/internal/world"
)

// orbInset keeps the whole fuel core sprite on the field.
const orbInset = world.SpriteSize / 2

// SpawnOrb picks a fuel core center uniformly over the whole-pixel positions
// in [inset, width-inset] × [inset, height-inset].
func SpawnOrb(rng *rand.Rand, field world.Field) world.Position {
	x := orbInset + rng.IntN(field.Width-2*orbInset+1)
	y := orbInset + rng.IntN(field.Height-2*orbInset+1)
	return world.Position{X: float64(x), Y: float64(y)}
}
