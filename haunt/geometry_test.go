package haunt

import (
	"math/rand/v2"
	"testing"

	"go.aimuz.me/haunt/internal/types"
)

func TestRandomPointWithinScreen(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	screens := []types.Size{
		{Width: 1920, Height: 1080},
		{Width: 1, Height: 1},
		{Width: 2, Height: 3},
		{Width: 0, Height: 0},
	}

	for _, screen := range screens {
		for i := 0; i < 1000; i++ {
			p := RandomPoint(r, screen)
			if p.X < 0 || p.Y < 0 {
				t.Fatalf("negative point %+v on %+v", p, screen)
			}
			if screen.Width > 0 && p.X >= screen.Width {
				t.Fatalf("x=%d outside width %d", p.X, screen.Width)
			}
			if screen.Height > 0 && p.Y >= screen.Height {
				t.Fatalf("y=%d outside height %d", p.Y, screen.Height)
			}
		}
	}
}

func TestBoxOrigin(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))

	tests := []struct {
		name   string
		screen types.Size
		maxX   int
		maxY   int
	}{
		{"full_hd", types.Size{Width: 1920, Height: 1080}, 1620, 980},
		{"exact_fit", types.Size{Width: 300, Height: 100}, 0, 0},
		{"too_small", types.Size{Width: 200, Height: 50}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sawMaxX bool
			for i := 0; i < 20000; i++ {
				p := BoxOrigin(r, tt.screen, TypingBox)
				if p.X < 0 || p.X > tt.maxX || p.Y < 0 || p.Y > tt.maxY {
					t.Fatalf("origin %+v outside [0,%d]x[0,%d]", p, tt.maxX, tt.maxY)
				}
				if p.X == tt.maxX {
					sawMaxX = true
				}
			}
			if !sawMaxX {
				t.Errorf("upper bound x=%d never produced", tt.maxX)
			}
		})
	}
}
