package input

// VerticalIntent is the line direction requested by the analog device.
// Values match the device protocol: D1 pulls, D-1 releases, D0 is idle.
type VerticalIntent int8

const (
	IntentDown VerticalIntent = -1
	IntentNone VerticalIntent = 0
	IntentUp   VerticalIntent = 1
)

func (v VerticalIntent) String() string {
	switch v {
	case IntentUp:
		return "up"
	case IntentDown:
		return "down"
	default:
		return "none"
	}
}

// Frame is one input sample; the simulation reads exactly one Frame per tick
type Frame struct {
	// Analog channel
	Vertical      VerticalIntent
	Horizontal    float64 // Normalized 0..1, valid only when HasHorizontal
	HasHorizontal bool

	// Digital channel (arrow keys, pointer buttons)
	Left, Right bool
	Up, Down    bool

	// Edge-triggered controls
	Start bool
	Quit  bool
}

// Source is any per-tick input provider. Poll never blocks longer than the
// provider's read budget and never fails; "no data" is an empty Frame.
type Source interface {
	Poll() Frame
}

// Merge combines two frames: digital flags are OR-ed, the first frame with
// an analog value wins for each analog field
func Merge(a, b Frame) Frame {
	out := Frame{
		Left:  a.Left || b.Left,
		Right: a.Right || b.Right,
		Up:    a.Up || b.Up,
		Down:  a.Down || b.Down,
		Start: a.Start || b.Start,
		Quit:  a.Quit || b.Quit,
	}

	out.Vertical = a.Vertical
	if out.Vertical == IntentNone {
		out.Vertical = b.Vertical
	}

	switch {
	case a.HasHorizontal:
		out.Horizontal, out.HasHorizontal = a.Horizontal, true
	case b.HasHorizontal:
		out.Horizontal, out.HasHorizontal = b.Horizontal, true
	}
	return out
}
