package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/quiz-fisher/constants"
	"github.com/lixenwraith/quiz-fisher/game"
	"github.com/lixenwraith/quiz-fisher/render"
)

const (
	runeLine    = '·'
	runeHook    = 'J'
	runeSurface = '~'
)

// tailRunes alternate with the fish animation frame
var tailRunes = [constants.FishAnimFrames]rune{'<', '{'}

// Renderer draws the world scaled onto the terminal grid
type Renderer struct {
	screen tcell.Screen
	w, h   int
}

// NewRenderer creates a renderer for screen
func NewRenderer(screen tcell.Screen) *Renderer {
	r := &Renderer{screen: screen}
	r.Resize()
	return r
}

// Resize re-reads the screen size
func (r *Renderer) Resize() {
	r.w, r.h = r.screen.Size()
}

// Cell maps a world position to a terminal cell
func (r *Renderer) Cell(x, y float64) (int, int) {
	cx := int(math.Floor(x * float64(r.w) / constants.WorldWidth))
	cy := int(math.Floor(y * float64(r.h) / constants.WorldHeight))
	return cx, cy
}

// Draw renders one frame and shows it
func (r *Renderer) Draw(g *game.Game, analog bool) {
	r.screen.Clear()

	switch g.State {
	case game.StateMenu:
		r.drawMenu(g, analog)
	case game.StatePlay:
		r.drawPlay(g)
	}

	r.screen.Show()
}

func (r *Renderer) drawMenu(g *game.Game, analog bool) {
	r.fill(0, 0, r.w, r.h, style(render.RgbMenuBackground, render.RgbMenuBackground))
	for _, line := range render.MenuLines(g, analog) {
		_, row := r.Cell(0, line.Y)
		r.textCentered(row, line.Text, style(line.Color, render.RgbMenuBackground))
	}
}

func (r *Renderer) drawPlay(g *game.Game) {
	water := style(render.RgbWater, render.RgbWater)
	r.fill(0, 0, r.w, r.h, water)

	_, surface := r.Cell(0, constants.SurfaceLineY)
	for x := 0; x < r.w; x++ {
		r.set(x, surface, runeSurface, style(render.RgbLine, render.RgbWater))
	}

	for _, f := range g.Fish {
		r.drawFish(f)
	}

	lineStyle := style(render.RgbLine, render.RgbWater)
	for _, p := range render.Line(g) {
		x, y := r.Cell(p.X, p.Y)
		r.set(x, y, runeLine, lineStyle)
	}

	hx, hy := r.Cell(g.Hook.X, g.Hook.Y)
	r.set(hx, hy, runeHook, style(render.RgbHook, render.RgbWater).Bold(true))
	if ring, ok := render.CatchRing(g); ok {
		ringStyle := style(ring.Color, render.RgbWater).Bold(true)
		r.set(hx-1, hy, '(', ringStyle)
		r.set(hx+1, hy, ')', ringStyle)
	}

	bar := style(render.RgbQuestionText, render.RgbQuestionBar)
	r.fill(0, 0, r.w, 1, bar)
	r.textCentered(0, render.QuestionText(g), bar)
	r.text(1, 1, render.ScoreText(g), style(render.RgbScore, render.RgbWater).Bold(true))

	if render.FeedbackVisible(g) {
		r.drawFeedback(g)
	}
}

func (r *Renderer) drawFish(f *game.Fish) {
	x0, y := r.Cell(f.X, f.Y+constants.FishHeight/2)
	x1, _ := r.Cell(f.X+constants.FishWidth, f.Y)
	if x1 <= x0 {
		x1 = x0 + 1
	}

	body := render.FishColor(f.Variant)
	bodyStyle := style(render.RgbLabel, body)
	r.fill(x0, y, x1-x0, 1, bodyStyle)
	r.set(x0, y, tailRunes[f.Frame%constants.FishAnimFrames], bodyStyle)

	label := []rune(f.Label)
	width := x1 - x0 - 2
	if width < 1 {
		width = 1
	}
	if len(label) > width {
		label = label[:width]
	}
	start := x0 + (x1-x0-len(label))/2
	for i, ch := range label {
		r.set(start+i, y, ch, bodyStyle)
	}
}

func (r *Renderer) drawFeedback(g *game.Game) {
	bw := int(constants.FeedbackBoxW * float64(r.w) / constants.WorldWidth)
	bh := int(math.Max(3, constants.FeedbackBoxH*float64(r.h)/constants.WorldHeight))
	x := (r.w - bw) / 2
	y := (r.h - bh) / 2

	// The terminal has no translucency; pre-blend the overlay onto the water
	bg := render.RgbWater.Blend(render.RgbOverlay, float64(constants.FeedbackBoxAlpha)/255)
	r.fill(x, y, bw, bh, style(bg, bg))
	r.textCentered(y+bh/2, g.Feedback.Text, style(render.FeedbackColor(g.Feedback.Correct), bg).Bold(true))
}

func (r *Renderer) set(x, y int, ch rune, st tcell.Style) {
	if x < 0 || y < 0 || x >= r.w || y >= r.h {
		return
	}
	r.screen.SetContent(x, y, ch, nil, st)
}

func (r *Renderer) fill(x, y, w, h int, st tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			r.set(col, row, ' ', st)
		}
	}
}

func (r *Renderer) text(x, y int, s string, st tcell.Style) {
	for i, ch := range []rune(s) {
		r.set(x+i, y, ch, st)
	}
}

func (r *Renderer) textCentered(y int, s string, st tcell.Style) {
	r.text((r.w-len([]rune(s)))/2, y, s, st)
}

func style(fg, bg render.RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(color(fg)).Background(color(bg))
}

func color(c render.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
