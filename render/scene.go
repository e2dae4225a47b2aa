package render

import (
	"strconv"

	"github.com/lixenwraith/quiz-fisher/constants"
	"github.com/lixenwraith/quiz-fisher/game"
	"github.com/lixenwraith/quiz-fisher/question"
)

// TextLine is one horizontally centered line of text at a world Y
type TextLine struct {
	Text  string
	Y     float64
	Color RGB
}

// MenuLines lists the menu text top to bottom. analog selects the control
// descriptions for the connected device.
func MenuLines(g *game.Game, analog bool) []TextLine {
	lines := []TextLine{
		{Text: constants.MenuTitle, Y: constants.MenuTitleY, Color: RgbTitle},
	}

	if g.CanStart() {
		lines = append(lines, TextLine{Text: constants.MenuStartHint, Y: constants.MenuHintY, Color: RgbHint})
	} else {
		lines = append(lines, TextLine{Text: constants.MenuNoQuestions, Y: constants.MenuHintY, Color: RgbError})
	}

	vertical, horizontal := game.ControlLabels(analog)
	lines = append(lines,
		TextLine{Text: constants.MenuVerticalPrefix + vertical, Y: constants.MenuVerticalY, Color: RgbInstruction},
		TextLine{Text: constants.MenuHorizontalPrefix + horizontal + constants.MenuPointerSuffix, Y: constants.MenuHorizontalY, Color: RgbInstruction},
		TextLine{Text: constants.MenuGoal, Y: constants.MenuGoalY, Color: RgbInstruction},
	)

	if bank := g.Bank(); bank != nil {
		origin := constants.MenuOriginPrefix + strconv.Itoa(bank.Len()) + " from " + bank.Origin().String()
		if bank.Origin() == question.OriginDefault {
			origin += " set"
		}
		lines = append(lines, TextLine{Text: origin, Y: constants.MenuOriginY, Color: RgbInstruction})
	}
	return lines
}

// QuestionText is the text of the question bar
func QuestionText(g *game.Game) string {
	return constants.QuestionPrefix + g.Question.Question
}

// ScoreText is the score readout
func ScoreText(g *game.Game) string {
	return constants.ScorePrefix + strconv.Itoa(g.Score)
}

// Ring is the indicator drawn around the hook while a fish is on the line
type Ring struct {
	X, Y   float64
	Radius float64
	Color  RGB
}

// CatchRing returns the caught-fish indicator, if a fish is on the line
func CatchRing(g *game.Game) (Ring, bool) {
	if g.Caught == nil {
		return Ring{}, false
	}
	return Ring{
		X:      g.Hook.X,
		Y:      g.Hook.Y,
		Radius: constants.CatchRingRadius,
		Color:  RingColor(g.Caught.Correct),
	}, true
}

// FeedbackVisible reports whether the result overlay is showing
func FeedbackVisible(g *game.Game) bool {
	return g.FeedbackTimer > 0
}

// Line returns the fishing line polyline from the rod tip to the hook
func Line(g *game.Game) []game.Point {
	x, y := g.Hook.LineAttach()
	return game.RopePoints(
		game.Point{X: constants.RodTipX, Y: constants.SurfaceLineY},
		game.Point{X: x, Y: y},
		g.RopePhase,
	)
}
