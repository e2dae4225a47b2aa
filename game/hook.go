package game

import (
	"math"

	"github.com/lixenwraith/quiz-fisher/constants"
	"github.com/lixenwraith/quiz-fisher/input"
)

// Motion is the vertical action the hook took on a tick
type Motion uint8

const (
	MotionSink    Motion = iota // Passive auto-sink
	MotionPull                  // Toward the surface
	MotionRelease               // Away from the surface
	MotionHold                  // Fish on the line, no pull requested
)

// Hook is the controlled end of the fishing line. AnchorX is the controlled
// horizontal target; X is the anchor plus rope sway; Y integrates vertical motion.
type Hook struct {
	AnchorX   float64
	X, Y      float64
	SwayPhase float64
}

// NewHook returns a hook at its initial anchor on the surface line
func NewHook() Hook {
	h := Hook{}
	h.Reset()
	return h
}

// Reset returns the hook to the initial anchor on the surface line; sway phase keeps running
func (h *Hook) Reset() {
	h.AnchorX = constants.HookInitialX
	h.X = constants.HookInitialX
	h.Y = constants.SurfaceLineY
}

// Update applies one tick of hook motion: horizontal steering, sway, vertical
// priority and clamping. caught reports whether a fish is on the line.
func (h *Hook) Update(f input.Frame, caught bool) Motion {
	h.Steer(f)
	h.clampAnchor()
	h.Sway()
	m := h.Lift(f, caught)
	h.clampDepth()
	return m
}

// Steer moves the anchor: the analog position is low-pass filtered toward its
// mapped target, otherwise digital left/right apply a fixed step
func (h *Hook) Steer(f input.Frame) {
	if f.HasHorizontal {
		target := AnalogTarget(f.Horizontal)
		h.AnchorX = h.AnchorX*(1-constants.AnalogSmoothing) + target*constants.AnalogSmoothing
		return
	}
	if f.Left {
		h.AnchorX -= constants.HorizontalSpeed
	}
	if f.Right {
		h.AnchorX += constants.HorizontalSpeed
	}
}

// AnalogTarget maps a normalized potentiometer reading onto the anchor range
func AnalogTarget(v float64) float64 {
	return constants.AnchorMargin + v*(constants.WorldWidth-2*constants.AnchorMargin)
}

// Sway advances the rope slack oscillation and derives the hook X from the anchor
func (h *Hook) Sway() {
	h.SwayPhase += constants.SwayRate
	h.X = h.AnchorX + constants.SwayAmplitude*math.Sin(h.SwayPhase)
}

// Lift applies the vertical priority: digital pull, analog pull, then, only
// without a fish on the line, digital release, analog release, auto-sink.
// A pull may always override; a release never happens while a fish is caught.
func (h *Hook) Lift(f input.Frame, caught bool) Motion {
	switch {
	case f.Up, f.Vertical == input.IntentUp:
		h.Y -= constants.PullSpeed
		return MotionPull
	case caught:
		return MotionHold
	case f.Down, f.Vertical == input.IntentDown:
		h.Y += constants.PullSpeed
		return MotionRelease
	default:
		h.Y += constants.AutoSinkSpeed
		return MotionSink
	}
}

func (h *Hook) clampAnchor() {
	h.AnchorX = clamp(h.AnchorX, constants.AnchorMargin, constants.WorldWidth-constants.AnchorMargin)
}

func (h *Hook) clampDepth() {
	h.Y = clamp(h.Y, constants.SurfaceLineY, constants.WorldHeight-constants.FloorMargin)
}

// AtSurface reports whether the hook has reached the surface line
func (h *Hook) AtSurface() bool {
	return h.Y <= constants.SurfaceLineY
}

// Bounds returns the hook box centered on the hook position
func (h *Hook) Bounds() Rect {
	return Rect{
		X: h.X - constants.HookWidth/2,
		Y: h.Y - constants.HookHeight/2,
		W: constants.HookWidth,
		H: constants.HookHeight,
	}
}

// LineAttach returns where the line ties onto the hook sprite
func (h *Hook) LineAttach() (float64, float64) {
	return h.X, h.Y - constants.HookHeight/2 + 5
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
