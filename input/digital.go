package input

// Key is a digital control sampled by a frontend
type Key uint8

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyPointerLeft
	KeyPointerRight
	KeyStart // Edge-triggered
	KeyQuit  // Edge-triggered
	keyCount
)

// KeySampler reports digital control state for the current frame.
// Held keys report true while down; KeyStart and KeyQuit report true only on
// the frame they were pressed.
type KeySampler interface {
	Pressed(k Key) bool
}

// KeyState is a fixed key table usable as a KeySampler
type KeyState [keyCount]bool

// Pressed implements KeySampler
func (s *KeyState) Pressed(k Key) bool {
	if k >= keyCount {
		return false
	}
	return s[k]
}

// Set updates one key
func (s *KeyState) Set(k Key, down bool) {
	if k < keyCount {
		s[k] = down
	}
}

// Digital maps keyboard arrows and pointer buttons directly to frame flags.
// It never reports an absolute horizontal position.
type Digital struct {
	sampler KeySampler
}

// NewDigital creates a digital provider over a frontend sampler
func NewDigital(sampler KeySampler) *Digital {
	return &Digital{sampler: sampler}
}

// Poll implements Source
func (d *Digital) Poll() Frame {
	s := d.sampler
	return Frame{
		Left:  s.Pressed(KeyLeft) || s.Pressed(KeyPointerLeft),
		Right: s.Pressed(KeyRight) || s.Pressed(KeyPointerRight),
		Up:    s.Pressed(KeyUp),
		Down:  s.Pressed(KeyDown),
		Start: s.Pressed(KeyStart),
		Quit:  s.Pressed(KeyQuit),
	}
}
