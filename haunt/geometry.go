package haunt

import (
	"math/rand/v2"

	"go.aimuz.me/haunt/internal/types"
)

// TypingBox is the area reserved on screen for the ghostly typing overlay.
var TypingBox = types.Size{Width: 300, Height: 100}

// RandomPoint returns a uniformly random point inside a screen of the given size.
func RandomPoint(r *rand.Rand, screen types.Size) types.Point {
	return types.Point{
		X: randUpTo(r, screen.Width-1),
		Y: randUpTo(r, screen.Height-1),
	}
}

// BoxOrigin returns a uniformly random top-left corner such that box fits
// inside screen. If the screen is smaller than the box along an axis, that
// coordinate is 0.
func BoxOrigin(r *rand.Rand, screen, box types.Size) types.Point {
	return types.Point{
		X: randUpTo(r, screen.Width-box.Width),
		Y: randUpTo(r, screen.Height-box.Height),
	}
}

// randUpTo returns a value in [0, n], or 0 when n < 0.
func randUpTo(r *rand.Rand, n int) int {
	if n <= 0 {
		return 0
	}
	return r.IntN(n + 1)
}
