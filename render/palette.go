package render

// Scene colors
var (
	RgbMenuBackground = RGB{20, 20, 40}
	RgbWater          = RGB{0, 100, 150}
	RgbSky            = RGB{135, 190, 230}

	RgbTitle       = RGB{255, 255, 255}
	RgbHint        = RGB{200, 200, 200}
	RgbError       = RGB{255, 50, 50}
	RgbInstruction = RGB{150, 150, 150}

	RgbLine  = RGB{255, 255, 255}
	RgbHook  = RGB{200, 200, 200}
	RgbLabel = RGB{0, 0, 0}

	RgbQuestionBar  = RGB{0, 0, 0}
	RgbQuestionText = RGB{255, 255, 255}
	RgbScore        = RGB{255, 255, 0}

	RgbFeedbackCorrect = RGB{0, 255, 0}
	RgbFeedbackWrong   = RGB{255, 0, 0}
	RgbRingCorrect     = RGB{0, 200, 0}
	RgbRingWrong       = RGB{200, 0, 0}
	RgbOverlay         = RGB{0, 0, 0}
)

// fishColors are the fallback body colors per sprite variant
var fishColors = []RGB{
	{255, 165, 0},
	{255, 192, 203},
}

// FishColor returns the fallback body color of a sprite variant
func FishColor(variant int) RGB {
	if variant < 0 {
		variant = -variant
	}
	return fishColors[variant%len(fishColors)]
}

// FeedbackColor returns the overlay text color
func FeedbackColor(correct bool) RGB {
	if correct {
		return RgbFeedbackCorrect
	}
	return RgbFeedbackWrong
}

// RingColor returns the caught-fish indicator color
func RingColor(correct bool) RGB {
	if correct {
		return RgbRingCorrect
	}
	return RgbRingWrong
}
