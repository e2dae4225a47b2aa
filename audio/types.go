package audio

// Sound identifies one of the feedback effects
type Sound int

const (
	SoundCatch   Sound = iota // Hook bites a fish
	SoundCorrect              // Correct answer reached the surface
	SoundWrong                // Wrong answer reached the surface
)

func (s Sound) String() string {
	switch s {
	case SoundCatch:
		return "catch"
	case SoundCorrect:
		return "correct"
	case SoundWrong:
		return "wrong"
	default:
		return "unknown"
	}
}

// Config holds sound settings; volumes are 0.0-1.0
type Config struct {
	Enabled      bool
	SampleRate   int
	MasterVolume float64
	Volumes      map[Sound]float64
}

// DefaultConfig returns audio enabled at half master volume
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		SampleRate:   44100,
		MasterVolume: 0.5,
		Volumes: map[Sound]float64{
			SoundCatch:   0.7,
			SoundCorrect: 1.0,
			SoundWrong:   0.8,
		},
	}
}

// volume returns the effective gain of s
func (c Config) volume(s Sound) float64 {
	v, ok := c.Volumes[s]
	if !ok {
		v = 1.0
	}
	return v * c.MasterVolume
}
