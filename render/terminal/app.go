package terminal

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/quiz-fisher/constants"
	"github.com/lixenwraith/quiz-fisher/game"
	"github.com/lixenwraith/quiz-fisher/input"
)

// App runs the game on a tcell screen. Events are pumped from a reader
// goroutine into a channel; only Step, on the frame driver's goroutine,
// touches game or key state.
type App struct {
	screen   tcell.Screen
	game     *game.Game
	keys     *HeldKeys
	source   input.Source
	analog   bool
	renderer *Renderer

	events chan tcell.Event
}

// NewApp wires a game to a screen. source must sample keys, usually through
// input.NewMux(input.NewDigital(keys), analog).
func NewApp(screen tcell.Screen, g *game.Game, keys *HeldKeys, source input.Source, analog bool) *App {
	return &App{
		screen:   screen,
		game:     g,
		keys:     keys,
		source:   source,
		analog:   analog,
		renderer: NewRenderer(screen),
		events:   make(chan tcell.Event, constants.EventQueueSize),
	}
}

// Pump forwards screen events until the screen is finalized or ctx ends.
// PollEvent blocks, so this runs on its own goroutine.
func (a *App) Pump(ctx context.Context) {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case a.events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// Step runs one frame: apply pending events, tick, render.
// It satisfies engine.StepFunc.
func (a *App) Step() (bool, error) {
	a.drainEvents()

	outcome := a.game.Tick(a.source.Poll())
	a.keys.EndFrame()
	if outcome == game.OutcomeQuit {
		return false, nil
	}

	a.renderer.Draw(a.game, a.analog)
	return true, nil
}

func (a *App) drainEvents() {
	for {
		select {
		case ev := <-a.events:
			if _, ok := ev.(*tcell.EventResize); ok {
				a.renderer.Resize()
				a.screen.Sync()
				continue
			}
			a.keys.HandleEvent(ev)
		default:
			return
		}
	}
}
