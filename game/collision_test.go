package game

import (
	"math/rand"
	"testing"
)

// TestRectIntersects covers overlap, containment and edge contact
func TestRectIntersects(t *testing.T) {
	base := Rect{X: 0, Y: 0, W: 10, H: 10}
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"Overlap", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"Contained", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"Touching right edge", Rect{X: 10, Y: 0, W: 5, H: 5}, false},
		{"Touching bottom edge", Rect{X: 0, Y: 10, W: 5, H: 5}, false},
		{"Apart", Rect{X: 20, Y: 20, W: 5, H: 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
			if got := tt.other.Intersects(base); got != tt.want {
				t.Errorf("Expected symmetric %v, got %v", tt.want, got)
			}
		})
	}
}

// TestFirstCollisionOrder verifies slot order wins over distance
func TestFirstCollisionOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	far := NewFish(0, 1, rng)
	near := NewFish(1, 1, rng)

	hook := Rect{X: 100, Y: 100, W: 40, H: 40}
	// Slot 0 barely overlaps, slot 1 sits right on the hook
	far.X, far.Y = 139-80, 139-40
	near.X, near.Y = 80, 100

	if got := FirstCollision(hook, []*Fish{far, near}); got != far {
		t.Errorf("Expected slot 0, got %v", got)
	}
}

// TestFirstCollisionSkipsCaught verifies a caught fish is never caught again
func TestFirstCollisionSkipsCaught(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	a := NewFish(0, 1, rng)
	a.X, a.Y, a.Caught = 100, 100, true

	if got := FirstCollision(Rect{X: 100, Y: 100, W: 40, H: 40}, []*Fish{a}); got != nil {
		t.Errorf("Expected no collision, got fish %d", got.ID)
	}
}
