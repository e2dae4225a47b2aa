package terminal

import (
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/quiz-fisher/constants"
	"github.com/lixenwraith/quiz-fisher/engine"
	"github.com/lixenwraith/quiz-fisher/game"
	"github.com/lixenwraith/quiz-fisher/input"
	"github.com/lixenwraith/quiz-fisher/question"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(120, 40)
	return screen
}

func newClock() *engine.MockTimeProvider {
	return engine.NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
}

func newApp(t *testing.T) (*App, tcell.SimulationScreen, *engine.MockTimeProvider) {
	t.Helper()
	screen := newScreen(t)
	clock := newClock()
	rng := rand.New(rand.NewSource(1))
	g := game.New(question.NewBank(nil, rng), rng, game.DefaultOptions())
	keys := NewHeldKeys(clock, constants.KeyHoldWindow)
	mux := input.NewMux(input.NewDigital(keys), nil)
	return NewApp(screen, g, keys, mux, false), screen, clock
}

// screenText returns every row of the simulation screen as a string
func screenText(screen tcell.SimulationScreen) []string {
	cells, w, h := screen.GetContents()
	rows := make([]string, h)
	for y := 0; y < h; y++ {
		var sb strings.Builder
		for x := 0; x < w; x++ {
			runes := cells[y*w+x].Runes
			if len(runes) == 0 {
				sb.WriteRune(' ')
				continue
			}
			sb.WriteRune(runes[0])
		}
		rows[y] = sb.String()
	}
	return rows
}

func containsRow(rows []string, s string) bool {
	for _, row := range rows {
		if strings.Contains(row, s) {
			return true
		}
	}
	return false
}

// TestHeldKeyWindow verifies a key stays held until repeats stop
func TestHeldKeyWindow(t *testing.T) {
	clock := newClock()
	keys := NewHeldKeys(clock, 150*time.Millisecond)

	keys.HandleEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	if !keys.Pressed(input.KeyLeft) {
		t.Fatal("Expected left held after key event")
	}

	clock.Advance(100 * time.Millisecond)
	if !keys.Pressed(input.KeyLeft) {
		t.Error("Expected left still held inside the window")
	}

	// A repeat extends the hold
	keys.HandleEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	clock.Advance(100 * time.Millisecond)
	if !keys.Pressed(input.KeyLeft) {
		t.Error("Expected repeat to extend the hold")
	}

	clock.Advance(100 * time.Millisecond)
	if keys.Pressed(input.KeyLeft) {
		t.Error("Expected left released after repeats stop")
	}
	if keys.Pressed(input.KeyRight) {
		t.Error("Right was never pressed")
	}
}

// TestEdgeControls verifies start and quit last exactly one frame
func TestEdgeControls(t *testing.T) {
	keys := NewHeldKeys(newClock(), constants.KeyHoldWindow)

	keys.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	if !keys.Pressed(input.KeyStart) {
		t.Error("Expected start after space")
	}
	keys.EndFrame()
	if keys.Pressed(input.KeyStart) {
		t.Error("Expected start cleared after the frame")
	}

	for _, ev := range []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
	} {
		keys.HandleEvent(ev)
		if !keys.Pressed(input.KeyQuit) {
			t.Errorf("Expected quit after %v", ev.Name())
		}
		keys.EndFrame()
	}
}

// TestMouseButtons verifies pointer buttons follow mouse state
func TestMouseButtons(t *testing.T) {
	keys := NewHeldKeys(newClock(), constants.KeyHoldWindow)

	keys.HandleEvent(tcell.NewEventMouse(10, 10, tcell.ButtonPrimary, tcell.ModNone))
	if !keys.Pressed(input.KeyPointerLeft) || keys.Pressed(input.KeyPointerRight) {
		t.Error("Expected only the left pointer held")
	}

	keys.HandleEvent(tcell.NewEventMouse(10, 10, tcell.ButtonSecondary, tcell.ModNone))
	if keys.Pressed(input.KeyPointerLeft) || !keys.Pressed(input.KeyPointerRight) {
		t.Error("Expected only the right pointer held")
	}

	keys.HandleEvent(tcell.NewEventMouse(10, 10, tcell.ButtonNone, tcell.ModNone))
	if keys.Pressed(input.KeyPointerLeft) || keys.Pressed(input.KeyPointerRight) {
		t.Error("Expected no pointer held after release")
	}
}

// TestRenderMenu verifies the menu text reaches the screen
func TestRenderMenu(t *testing.T) {
	app, screen, _ := newApp(t)

	if ok, err := app.Step(); !ok || err != nil {
		t.Fatalf("Expected step to continue, got %v %v", ok, err)
	}

	rows := screenText(screen)
	if !containsRow(rows, constants.MenuTitle) {
		t.Error("Expected menu title on screen")
	}
	if !containsRow(rows, constants.MenuStartHint) {
		t.Error("Expected start hint on screen")
	}
}

// TestRenderPlay verifies question, score and hook are drawn after start
func TestRenderPlay(t *testing.T) {
	app, screen, _ := newApp(t)

	app.events <- tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)
	app.Step()
	if app.game.State != game.StatePlay {
		t.Fatalf("Expected PLAY, got %v", app.game.State)
	}

	rows := screenText(screen)
	if !strings.Contains(rows[0], app.game.Question.Question) {
		t.Errorf("Expected question in the top row, got %q", rows[0])
	}
	if !containsRow(rows, constants.ScorePrefix+"0") {
		t.Error("Expected score on screen")
	}
	if !containsRow(rows, string(runeHook)) {
		t.Error("Expected hook on screen")
	}
}

// TestRenderFeedback verifies the result overlay text is drawn
func TestRenderFeedback(t *testing.T) {
	app, screen, _ := newApp(t)
	app.game.Start()
	app.game.FeedbackTimer = 10
	app.game.Feedback = game.Feedback{Text: "CORRECT! (+1)", Correct: true}

	app.renderer.Draw(app.game, false)

	if !containsRow(screenText(screen), "CORRECT! (+1)") {
		t.Error("Expected feedback text on screen")
	}
}

// TestStepQuit verifies Escape stops the loop before rendering
func TestStepQuit(t *testing.T) {
	app, _, _ := newApp(t)
	app.events <- tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)

	if ok, _ := app.Step(); ok {
		t.Error("Expected step to stop on escape")
	}
}

// TestHeldArrowMovesHook verifies a held key moves the hook across frames and stops after release
func TestHeldArrowMovesHook(t *testing.T) {
	app, _, clock := newApp(t)
	app.game.Start()

	app.events <- tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)
	anchor := app.game.Hook.AnchorX
	for i := 0; i < 3; i++ {
		app.Step()
		clock.Advance(constants.FrameUpdateInterval)
	}
	if want := anchor - 3*constants.HorizontalSpeed; app.game.Hook.AnchorX != want {
		t.Errorf("Expected anchor %v, got %v", want, app.game.Hook.AnchorX)
	}

	clock.Advance(time.Second)
	anchor = app.game.Hook.AnchorX
	app.Step()
	if app.game.Hook.AnchorX != anchor {
		t.Error("Expected hook to stop after the key was released")
	}
}

// TestRunnerDrivesApp verifies the app runs under the fixed-rate runner until quit
func TestRunnerDrivesApp(t *testing.T) {
	app, _, clock := newApp(t)
	runner := engine.NewRunner(constants.FrameUpdateInterval, clock)
	runner.SetWait(clock.Wait)

	frames := 0
	reason, err := runner.Run(context.Background(), func() (bool, error) {
		frames++
		if frames == 5 {
			app.events <- tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)
		}
		return app.Step()
	})

	if err != nil || reason != engine.ExitQuit {
		t.Fatalf("Expected clean quit, got %v %v", reason, err)
	}
	if runner.Frames() != 5 {
		t.Errorf("Expected 5 frames, got %d", runner.Frames())
	}
}

// TestCellMapping verifies world corners map inside the grid
func TestCellMapping(t *testing.T) {
	r := NewRenderer(newScreen(t))

	if x, y := r.Cell(0, 0); x != 0 || y != 0 {
		t.Errorf("Expected origin cell, got %d,%d", x, y)
	}
	if x, y := r.Cell(constants.WorldWidth-1, constants.WorldHeight-1); x != 119 || y != 39 {
		t.Errorf("Expected last cell 119,39, got %d,%d", x, y)
	}
}
