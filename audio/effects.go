package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/quiz-fisher/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

// oscillator generates a fixed-length tone, optionally gliding linearly
// from its start frequency to its end frequency
type oscillator struct {
	from, to float64
	phase    float64
	total    int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a steady tone
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewGlide(freq, freq, duration, wave, rate)
}

// NewGlide creates a tone sweeping from one frequency to another over its duration
func NewGlide(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		from:  from,
		to:    to,
		total: rate.N(duration),
		wave:  wave,
		rate:  rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.total {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveTriangle:
			val = 1.0 - 4.0*math.Abs(o.phase-0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.from + (o.to-o.from)*float64(o.position)/float64(o.total)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s with attack and release ramps inside duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	if att+rel > total {
		att, rel = total/2, total-total/2
	}

	return &envelope{
		streamer: s,
		attack:   att,
		release:  rel,
		total:    total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		gain := e.gain()
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.position++
	}
	return n, ok
}

func (e *envelope) gain() float64 {
	if e.attack > 0 && e.position < e.attack {
		return float64(e.position) / float64(e.attack)
	}
	if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
		return float64(remaining) / float64(e.release)
	}
	return 1.0
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain; zero or less is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CatchSound is a short upward blip
func CatchSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	blip := NewGlide(440.0, 880.0, constants.CatchSoundDuration, WaveTriangle, rate)
	shaped := NewEnvelope(blip, constants.CatchSoundDuration, constants.CatchSoundAttack, constants.CatchSoundRelease, rate)

	return newVolume(shaped, cfg.volume(SoundCatch))
}

// CorrectSound is a rising two-note chime (E5 then A5 with an octave overtone)
func CorrectSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	n1 := NewOscillator(659.25, constants.CorrectSoundNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, constants.CorrectSoundNote1Duration, constants.CorrectSoundAttack, constants.CorrectSoundNote1Release, rate)

	fund := NewOscillator(880.0, constants.CorrectSoundNote2Duration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, constants.CorrectSoundNote2Duration, constants.CorrectSoundAttack, constants.CorrectSoundNote2Release, rate)
	over := NewOscillator(1760.0, constants.CorrectSoundNote2Duration, WaveSine, rate)
	overShaped := NewEnvelope(over, constants.CorrectSoundNote2Duration, constants.CorrectSoundAttack, constants.CorrectSoundNote2Release, rate)

	n2 := beep.Mix(newVolume(fundShaped, 0.7), newVolume(overShaped, 0.3))

	return newVolume(beep.Seq(newVolume(n1Shaped, 0.5), n2), cfg.volume(SoundCorrect))
}

// WrongSound is a low falling buzz
func WrongSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	buzz := NewGlide(140.0, 90.0, constants.WrongSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(buzz, constants.WrongSoundDuration, constants.WrongSoundAttack, constants.WrongSoundRelease, rate)

	return newVolume(shaped, cfg.volume(SoundWrong))
}

// Effect returns the streamer for s, or nil for an unknown sound
func Effect(s Sound, cfg Config) beep.Streamer {
	switch s {
	case SoundCatch:
		return CatchSound(cfg)
	case SoundCorrect:
		return CorrectSound(cfg)
	case SoundWrong:
		return WrongSound(cfg)
	default:
		return nil
	}
}
