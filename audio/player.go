package audio

import (
	"fmt"
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/quiz-fisher/constants"
	"github.com/lixenwraith/quiz-fisher/game"
)

// output receives finished effect streamers
type output interface {
	Play(s beep.Streamer)
	Close()
}

// speakerOutput mixes effects into the system speaker
type speakerOutput struct {
	mixer *beep.Mixer
}

func newSpeakerOutput(rate beep.SampleRate) (*speakerOutput, error) {
	if err := speaker.Init(rate, rate.N(constants.SpeakerBuffer)); err != nil {
		return nil, err
	}
	out := &speakerOutput{mixer: &beep.Mixer{}}
	speaker.Play(out.mixer)
	return out, nil
}

func (o *speakerOutput) Play(s beep.Streamer) {
	speaker.Lock()
	o.mixer.Add(s)
	speaker.Unlock()
}

func (o *speakerOutput) Close() {
	speaker.Lock()
	o.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}

// Player turns game events into feedback sounds. A disabled or failed
// player is silent; the game runs the same either way.
type Player struct {
	mu     sync.Mutex
	cfg    Config
	out    output
	closed bool
}

// NewPlayer opens the speaker when cfg.Enabled. On failure it returns a
// silent player together with the error.
func NewPlayer(cfg Config) (*Player, error) {
	p := &Player{cfg: cfg}
	if !cfg.Enabled {
		return p, nil
	}

	out, err := newSpeakerOutput(beep.SampleRate(cfg.SampleRate))
	if err != nil {
		return p, fmt.Errorf("audio: speaker init: %w", err)
	}
	p.out = out
	return p, nil
}

// Enabled reports whether sounds reach an output
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.out != nil && !p.closed
}

// Play queues one effect
func (p *Player) Play(s Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.out == nil || p.closed {
		return
	}
	streamer := Effect(s, p.cfg)
	if streamer == nil {
		log.Printf("audio: unknown sound %d", s)
		return
	}
	p.out.Play(streamer)
}

// OnCatch implements game.Listener
func (p *Player) OnCatch(*game.Fish) {
	p.Play(SoundCatch)
}

// OnResolve implements game.Listener
func (p *Player) OnResolve(r game.Resolution) {
	if r.Correct {
		p.Play(SoundCorrect)
	} else {
		p.Play(SoundWrong)
	}
}

// Close stops playback and releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.out == nil || p.closed {
		return
	}
	p.closed = true
	p.out.Close()
}
