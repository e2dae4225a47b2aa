package game

import (
	"math/rand"

	"github.com/lixenwraith/quiz-fisher/constants"
)

// Fish is a swimming answer carrier. Fish are allocated once and recycled
// through Spawn, never destroyed.
type Fish struct {
	ID      int
	Variant int // Sprite set index

	X, Y  float64 // Top-left corner
	Speed float64 // World units per tick, rightward

	Frame     int // Animation frame
	animTimer int

	Caught  bool
	Label   string
	Correct bool
	Value   int

	rng *rand.Rand
}

// NewFish allocates a fish in its spawn state
func NewFish(id, value int, rng *rand.Rand) *Fish {
	f := &Fish{
		ID:      id,
		Variant: rng.Intn(constants.FishVariants),
		Value:   value,
		rng:     rng,
	}
	f.Spawn()
	return f
}

// Spawn places the fish just off the left edge in a random lane with a random speed
func (f *Fish) Spawn() {
	f.X = -constants.FishWidth
	f.Y = constants.FishLaneTop + f.rng.Float64()*(constants.FishLaneBottom-constants.FishLaneTop)
	f.Speed = constants.FishMinSpeed + f.rng.Float64()*(constants.FishMaxSpeed-constants.FishMinSpeed)
	f.Caught = false
}

// Tick advances one simulation step. A caught fish is towed at a fixed
// offset from the hook; a free fish swims, animates, and recycles past the right edge.
func (f *Fish) Tick(hookX, hookY float64) {
	if f.Caught {
		f.X = hookX + constants.TowOffsetX
		f.Y = hookY + constants.TowOffsetY
		return
	}

	f.X += f.Speed
	if f.X > constants.WorldWidth+constants.FishExitMargin {
		f.Spawn()
	}

	f.animTimer++
	if f.animTimer >= constants.FishAnimTicks {
		f.Frame = (f.Frame + 1) % constants.FishAnimFrames
		f.animTimer = 0
	}
}

// Bounds returns the fish bounding box
func (f *Fish) Bounds() Rect {
	return Rect{X: f.X, Y: f.Y, W: constants.FishWidth, H: constants.FishHeight}
}
