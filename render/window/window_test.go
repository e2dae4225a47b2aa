package window

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lixenwraith/quiz-fisher/constants"
	"github.com/lixenwraith/quiz-fisher/engine"
	"github.com/lixenwraith/quiz-fisher/game"
	"github.com/lixenwraith/quiz-fisher/input"
	"github.com/lixenwraith/quiz-fisher/question"
)

type scriptedSource struct {
	frames []input.Frame
	panics bool
}

func (s *scriptedSource) Poll() input.Frame {
	if s.panics {
		panic("device exploded")
	}
	if len(s.frames) == 0 {
		return input.Frame{}
	}
	f := s.frames[0]
	s.frames = s.frames[1:]
	return f
}

func newFrontend(src input.Source) *Frontend {
	rng := rand.New(rand.NewSource(1))
	g := game.New(question.NewBank(nil, rng), rng, game.DefaultOptions())
	return New(g, src, false, "assets")
}

// TestUpdateTicksGame verifies one Update advances the simulation one tick
func TestUpdateTicksGame(t *testing.T) {
	src := &scriptedSource{frames: []input.Frame{{Start: true}, {Down: true}}}
	f := newFrontend(src)

	if err := f.Update(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if f.game.State != game.StatePlay {
		t.Errorf("Expected PLAY, got %v", f.game.State)
	}

	y := f.game.Hook.Y
	f.Update()
	if f.game.Hook.Y != y+constants.PullSpeed {
		t.Errorf("Expected hook released to %v, got %v", y+constants.PullSpeed, f.game.Hook.Y)
	}
}

// TestUpdateQuit verifies a quit frame terminates the ebiten loop
func TestUpdateQuit(t *testing.T) {
	f := newFrontend(&scriptedSource{frames: []input.Frame{{Quit: true}}})

	if err := f.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Expected ebiten.Termination, got %v", err)
	}
}

// TestUpdatePanic verifies a panic becomes a FatalLoopError
func TestUpdatePanic(t *testing.T) {
	f := newFrontend(&scriptedSource{panics: true})

	var fatal *engine.FatalLoopError
	if err := f.Update(); !errors.As(err, &fatal) {
		t.Fatalf("Expected FatalLoopError, got %v", err)
	}
}

// TestLayout verifies the logical screen is the world size
func TestLayout(t *testing.T) {
	f := newFrontend(&scriptedSource{})
	w, h := f.Layout(3000, 2000)
	if w != constants.WorldWidth || h != constants.WorldHeight {
		t.Errorf("Expected %dx%d, got %dx%d", constants.WorldWidth, constants.WorldHeight, w, h)
	}
}

// TestFishTriangle verifies the stand-in shape stays inside the fish box
func TestFishTriangle(t *testing.T) {
	for frame := 0; frame < constants.FishAnimFrames; frame++ {
		for _, p := range fishTriangle(frame) {
			if p.X < 0 || p.X > constants.FishWidth || p.Y < 0 || p.Y > constants.FishHeight {
				t.Errorf("Frame %d: point %v outside fish box", frame, p)
			}
		}
	}
	if fishTriangle(0)[0] == fishTriangle(1)[0] {
		t.Error("Expected frames to differ")
	}
}

// TestBindingsCoverControls verifies every control has a binding
func TestBindingsCoverControls(t *testing.T) {
	controls := []input.Key{
		input.KeyUp, input.KeyDown, input.KeyLeft, input.KeyRight,
		input.KeyPointerLeft, input.KeyPointerRight, input.KeyStart, input.KeyQuit,
	}
	for _, k := range controls {
		_, held := heldKeys[k]
		_, pointer := pointerButtons[k]
		_, edge := edgeKeys[k]
		if !held && !pointer && !edge {
			t.Errorf("Control %d has no binding", k)
		}
	}
}

// TestTextOriginCentered verifies centered text straddles its anchor
func TestTextOriginCentered(t *testing.T) {
	left, _ := textOrigin("ABCD", 100, 50, 2, true)
	right, _ := textOrigin("ABCD", 100, 50, 2, false)

	if left >= 100 {
		t.Errorf("Expected centered text to start left of the anchor, got %v", left)
	}
	if right != 100 {
		t.Errorf("Expected left-aligned text at the anchor, got %v", right)
	}
}
