package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/quiz-fisher/engine"
	"github.com/lixenwraith/quiz-fisher/input"
)

// HeldKeys turns terminal key events into held digital state. Terminals send
// key repeats but no key-up, so a key counts as held until no event for it has
// arrived within the hold window. Mouse events carry full button state and
// need no window.
type HeldKeys struct {
	clock engine.TimeProvider
	hold  time.Duration

	until   map[input.Key]time.Time
	buttons tcell.ButtonMask

	start, quit bool
}

// NewHeldKeys creates a tracker reading time from clock
func NewHeldKeys(clock engine.TimeProvider, hold time.Duration) *HeldKeys {
	return &HeldKeys{
		clock: clock,
		hold:  hold,
		until: make(map[input.Key]time.Time),
	}
}

// arrowKeys maps tcell keys to held controls
var arrowKeys = map[tcell.Key]input.Key{
	tcell.KeyUp:    input.KeyUp,
	tcell.KeyDown:  input.KeyDown,
	tcell.KeyLeft:  input.KeyLeft,
	tcell.KeyRight: input.KeyRight,
}

// HandleEvent records one terminal event
func (h *HeldKeys) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			h.quit = true
			return
		}
		if k, ok := arrowKeys[ev.Key()]; ok {
			h.until[k] = h.clock.Now().Add(h.hold)
			return
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case ' ':
				h.start = true
			case 'q', 'Q':
				h.quit = true
			}
		}
	case *tcell.EventMouse:
		h.buttons = ev.Buttons()
	}
}

// Pressed implements input.KeySampler
func (h *HeldKeys) Pressed(k input.Key) bool {
	switch k {
	case input.KeyStart:
		return h.start
	case input.KeyQuit:
		return h.quit
	case input.KeyPointerLeft:
		return h.buttons&tcell.ButtonPrimary != 0
	case input.KeyPointerRight:
		return h.buttons&tcell.ButtonSecondary != 0
	}

	until, ok := h.until[k]
	return ok && h.clock.Now().Before(until)
}

// EndFrame clears the edge-triggered controls once a tick has consumed them
func (h *HeldKeys) EndFrame() {
	h.start = false
	h.quit = false
}
