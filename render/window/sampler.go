package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/lixenwraith/quiz-fisher/input"
)

// heldKeys maps held controls to keyboard keys
var heldKeys = map[input.Key][]ebiten.Key{
	input.KeyUp:    {ebiten.KeyArrowUp},
	input.KeyDown:  {ebiten.KeyArrowDown},
	input.KeyLeft:  {ebiten.KeyArrowLeft},
	input.KeyRight: {ebiten.KeyArrowRight},
}

// pointerButtons maps held controls to mouse buttons
var pointerButtons = map[input.Key]ebiten.MouseButton{
	input.KeyPointerLeft:  ebiten.MouseButtonLeft,
	input.KeyPointerRight: ebiten.MouseButtonRight,
}

// edgeKeys maps edge-triggered controls to keyboard keys
var edgeKeys = map[input.Key][]ebiten.Key{
	input.KeyStart: {ebiten.KeySpace},
	input.KeyQuit:  {ebiten.KeyEscape, ebiten.KeyQ},
}

// Keyboard samples ebiten's per-tick key and mouse state
type Keyboard struct{}

// Pressed implements input.KeySampler
func (Keyboard) Pressed(k input.Key) bool {
	if keys, ok := edgeKeys[k]; ok {
		for _, key := range keys {
			if inpututil.IsKeyJustPressed(key) {
				return true
			}
		}
		return false
	}
	if button, ok := pointerButtons[k]; ok {
		return ebiten.IsMouseButtonPressed(button)
	}
	for _, key := range heldKeys[k] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}
