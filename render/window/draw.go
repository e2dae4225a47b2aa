package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/lixenwraith/quiz-fisher/constants"
	"github.com/lixenwraith/quiz-fisher/game"
	"github.com/lixenwraith/quiz-fisher/render"
)

// Text scales over the 7x13 bitmap face
const (
	scaleMenu     = 2.0
	scaleQuestion = 2.0
	scaleScore    = 2.0
	scaleLabel    = 1.0
	scaleFeedback = 3.0
)

var face font.Face = basicfont.Face7x13

func drawMenu(screen *ebiten.Image, g *game.Game, analog bool) {
	screen.Fill(render.RgbMenuBackground.RGBA())
	for _, line := range render.MenuLines(g, analog) {
		drawText(screen, line.Text, constants.WorldWidth/2, line.Y, scaleMenu, line.Color, true)
	}
}

func drawPlay(screen *ebiten.Image, g *game.Game, sprites *SpriteSet) {
	drawScaled(screen, sprites.Background, 0, 0, constants.WorldWidth, constants.WorldHeight)

	for _, f := range g.Fish {
		img := sprites.Fish[f.Variant%constants.FishVariants][f.Frame%constants.FishAnimFrames]
		drawScaled(screen, img, f.X, f.Y, constants.FishWidth, constants.FishHeight)
		drawText(screen, f.Label, f.X+constants.FishWidth/2, f.Y+constants.FishHeight/2, scaleLabel, render.RgbLabel, true)
	}

	drawLine(screen, render.Line(g))

	hook := g.Hook.Bounds()
	drawScaled(screen, sprites.Hook, hook.X, hook.Y, hook.W, hook.H)

	if ring, ok := render.CatchRing(g); ok {
		vector.StrokeCircle(screen, float32(ring.X), float32(ring.Y), float32(ring.Radius),
			constants.CatchRingWidth, ring.Color.RGBA(), true)
	}

	vector.DrawFilledRect(screen, 0, 0, constants.WorldWidth, constants.QuestionBarH, render.RgbQuestionBar.RGBA(), false)
	drawText(screen, render.QuestionText(g), constants.WorldWidth/2, constants.QuestionBarH/2, scaleQuestion, render.RgbQuestionText, true)
	drawText(screen, render.ScoreText(g), constants.ScoreX, constants.ScoreY+constants.QuestionBarH, scaleScore, render.RgbScore, false)

	if render.FeedbackVisible(g) {
		x := (constants.WorldWidth - constants.FeedbackBoxW) / 2
		y := (constants.WorldHeight - constants.FeedbackBoxH) / 2
		vector.DrawFilledRect(screen, float32(x), float32(y), constants.FeedbackBoxW, constants.FeedbackBoxH,
			render.RgbOverlay.WithAlpha(constants.FeedbackBoxAlpha), false)
		drawText(screen, g.Feedback.Text, constants.WorldWidth/2, constants.WorldHeight/2, scaleFeedback,
			render.FeedbackColor(g.Feedback.Correct), true)
	}
}

func drawLine(screen *ebiten.Image, pts []game.Point) {
	c := render.RgbLine.RGBA()
	for i := 1; i < len(pts); i++ {
		vector.StrokeLine(screen,
			float32(pts[i-1].X), float32(pts[i-1].Y), float32(pts[i].X), float32(pts[i].Y),
			constants.LineWidth, c, true)
	}
}

// drawScaled draws img stretched to the w x h box at (x, y)
func drawScaled(screen, img *ebiten.Image, x, y, w, h float64) {
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	screen.DrawImage(img, op)
}

// drawText draws s with its vertical center at y; x is the center when
// centered is set and the left edge otherwise
func drawText(screen *ebiten.Image, s string, x, y, scale float64, c render.RGB, centered bool) {
	if s == "" {
		return
	}

	left, baseline := textOrigin(s, x, y, scale, centered)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(left, baseline)
	op.ColorScale.ScaleWithColor(c.RGBA())
	text.DrawWithOptions(screen, s, face, op)
}

// textOrigin returns the left edge and baseline that place s as drawText describes
func textOrigin(s string, x, y, scale float64, centered bool) (float64, float64) {
	m := face.Metrics()
	width := float64(font.MeasureString(face, s).Round()) * scale
	height := float64((m.Ascent + m.Descent).Round()) * scale

	left := x
	if centered {
		left = x - width/2
	}
	return left, y - height/2 + float64(m.Ascent.Round())*scale
}
