package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lixenwraith/quiz-fisher/constants"
	"github.com/lixenwraith/quiz-fisher/engine"
	"github.com/lixenwraith/quiz-fisher/game"
	"github.com/lixenwraith/quiz-fisher/input"
)

// Frontend runs the game inside an ebiten window. ebiten calls Update at
// 60 TPS, which matches the simulation rate, so one Update is one tick.
type Frontend struct {
	game     *game.Game
	source   input.Source
	analog   bool
	assetDir string

	sprites *SpriteSet
	frame   uint64
}

// New creates a window frontend. analog selects the menu control labels.
func New(g *game.Game, source input.Source, analog bool, assetDir string) *Frontend {
	return &Frontend{
		game:     g,
		source:   source,
		analog:   analog,
		assetDir: assetDir,
	}
}

// Update implements ebiten.Game. A panic inside the tick surfaces as an
// *engine.FatalLoopError returned from RunGame.
func (f *Frontend) Update() error {
	var outcome game.Outcome
	err := engine.SafeStep(f.frame, func() error {
		outcome = f.game.Tick(f.source.Poll())
		return nil
	})
	f.frame++

	if err != nil {
		return err
	}
	if outcome == game.OutcomeQuit {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game
func (f *Frontend) Draw(screen *ebiten.Image) {
	if f.sprites == nil {
		f.sprites = LoadSprites(f.assetDir)
	}

	switch f.game.State {
	case game.StateMenu:
		drawMenu(screen, f.game, f.analog)
	case game.StatePlay:
		drawPlay(screen, f.game, f.sprites)
	}
}

// Layout implements ebiten.Game; the world is always drawn at its native size
func (f *Frontend) Layout(outsideWidth, outsideHeight int) (int, int) {
	return constants.WorldWidth, constants.WorldHeight
}

// Sprites returns the loaded sprite set, nil before the first Draw
func (f *Frontend) Sprites() *SpriteSet {
	return f.sprites
}

// Run opens the window and blocks until the game quits or the window closes
func Run(f *Frontend, scale float64) error {
	ebiten.SetWindowSize(int(constants.WorldWidth*scale), int(constants.WorldHeight*scale))
	ebiten.SetWindowTitle(constants.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(constants.TicksPerSecond)

	return ebiten.RunGame(f)
}
