package game

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/lixenwraith/quiz-fisher/constants"
	"github.com/lixenwraith/quiz-fisher/input"
	"github.com/lixenwraith/quiz-fisher/question"
)

// Options tunes the rules that the configuration file may override
type Options struct {
	FishCount     int
	FishValue     int
	FeedbackTicks int
}

// DefaultOptions returns the stock rules
func DefaultOptions() Options {
	return Options{
		FishCount:     constants.FishCount,
		FishValue:     constants.FishValue,
		FeedbackTicks: constants.FeedbackTicks,
	}
}

// Game ties the hook, the fish population and the question bank together.
// It is driven one Tick per frame and is not safe for concurrent use.
type Game struct {
	Session
	Hook Hook
	Fish []*Fish

	opts      Options
	bank      *question.Bank
	listeners []Listener
}

// New creates a game in the MENU state with its fish population allocated
func New(bank *question.Bank, rng *rand.Rand, opts Options) *Game {
	if opts.FishCount < 0 {
		opts.FishCount = 0
	}

	g := &Game{
		Hook: NewHook(),
		opts: opts,
		bank: bank,
	}
	g.State = StateMenu

	g.Fish = make([]*Fish, opts.FishCount)
	for i := range g.Fish {
		g.Fish[i] = NewFish(i, opts.FishValue, rng)
	}

	if g.CanStart() {
		g.NewQuestion()
	}
	return g
}

// AddListener registers an event observer
func (g *Game) AddListener(l Listener) {
	g.listeners = append(g.listeners, l)
}

// Bank returns the question bank
func (g *Game) Bank() *question.Bank {
	return g.bank
}

// CanStart reports whether at least one question exists
func (g *Game) CanStart() bool {
	return g.bank != nil && g.bank.Len() > 0
}

// Tick advances one frame from a single input sample. Quit is honored before
// any state changes so the frame boundary is the only exit point.
func (g *Game) Tick(f input.Frame) Outcome {
	if f.Quit {
		return OutcomeQuit
	}

	g.Ticks++
	g.RopePhase += constants.RopePhaseRate

	switch g.State {
	case StateMenu:
		if f.Start && g.CanStart() {
			g.Start()
		}
	case StatePlay:
		g.step(f)
	}
	return OutcomeContinue
}

// Start enters PLAY with a fresh score, hook, fish and question
func (g *Game) Start() {
	g.State = StatePlay
	g.Score = 0
	g.Caught = nil
	g.FeedbackTimer = 0
	g.Hook.Reset()
	for _, f := range g.Fish {
		f.Spawn()
	}
	g.NewQuestion()
	log.Printf("game: started, question %s", g.Question.ID)
}

// NewQuestion draws a question and relabels every fish
func (g *Game) NewQuestion() {
	if !g.CanStart() {
		g.State = StateMenu
		return
	}

	item, labels := g.bank.PickNewQuestion(len(g.Fish))
	g.Question = item
	g.Round++
	for i, f := range g.Fish {
		f.Label = labels[i].Text
		f.Correct = labels[i].Correct
	}
}

func (g *Game) step(f input.Frame) {
	g.Hook.Update(f, g.Caught != nil)
	g.resolveCatch()

	for _, fish := range g.Fish {
		fish.Tick(g.Hook.X, g.Hook.Y)
	}

	if g.FeedbackTimer > 0 {
		g.FeedbackTimer--
	}
}

// resolveCatch hooks the first overlapping fish when the line is free, or
// scores the fish on the line once the hook reaches the surface
func (g *Game) resolveCatch() {
	if g.Caught == nil {
		fish := FirstCollision(g.Hook.Bounds(), g.Fish)
		if fish == nil {
			return
		}
		fish.Caught = true
		g.Caught = fish
		for _, l := range g.listeners {
			l.OnCatch(fish)
		}
		return
	}

	if !g.Hook.AtSurface() {
		return
	}

	fish := g.Caught
	res := Resolution{Correct: fish.Correct, Label: fish.Label}
	if fish.Correct {
		g.Score += fish.Value
		res.Delta = fish.Value
		g.Feedback = Feedback{Text: fmt.Sprintf("CORRECT! (+%d)", fish.Value), Correct: true}
	} else {
		g.Score -= fish.Value
		res.Delta = -fish.Value
		g.Feedback = Feedback{Text: fmt.Sprintf("WRONG! (-%d)", fish.Value)}
	}
	res.Score = g.Score
	g.FeedbackTimer = g.opts.FeedbackTicks

	fish.Spawn()
	g.Caught = nil
	g.Hook.Reset()

	if res.Correct {
		g.NewQuestion()
	}

	log.Printf("game: resolved %q correct=%v score=%d", res.Label, res.Correct, res.Score)
	for _, l := range g.listeners {
		l.OnResolve(res)
	}
}

// CorrectCount returns how many fish carry the correct answer
func (g *Game) CorrectCount() int {
	n := 0
	for _, f := range g.Fish {
		if f.Correct {
			n++
		}
	}
	return n
}

// ControlLabels returns the menu instructions for the active input method
func ControlLabels(analog bool) (vertical, horizontal string) {
	if analog {
		return constants.ControlVerticalAnalog, constants.ControlHorizontalAnalog
	}
	return constants.ControlVerticalDigital, constants.ControlHorizontalDigital
}
