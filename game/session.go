package game

import "github.com/lixenwraith/quiz-fisher/question"

// State is the top-level game state
type State uint8

const (
	StateMenu State = iota
	StatePlay
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "MENU"
	case StatePlay:
		return "PLAY"
	default:
		return "UNKNOWN"
	}
}

// Outcome tells the frame driver whether to keep running
type Outcome uint8

const (
	OutcomeContinue Outcome = iota
	OutcomeQuit
)

// Feedback is the timed message shown after a catch is resolved
type Feedback struct {
	Text    string
	Correct bool
}

// Session is the mutable per-run state, owned by Game and passed to nothing else by reference
type Session struct {
	State State
	Score int

	// Caught is the fish currently on the line, nil when the line is free
	Caught *Fish

	FeedbackTimer int
	Feedback      Feedback

	Question question.Item
	Round    int // Incremented on every question draw

	// Ticks counts every frame since startup, menu included
	Ticks     uint64
	RopePhase float64
}

// Resolution describes a catch that reached the surface
type Resolution struct {
	Correct bool
	Delta   int
	Label   string
	Score   int
}

// Listener observes game events; audio and logging hang off this
type Listener interface {
	OnCatch(f *Fish)
	OnResolve(r Resolution)
}
