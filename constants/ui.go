package constants

import "time"

// Window
const (
	WindowTitle = "Quiz Fisher"

	// WindowScale multiplies the world size for the desktop window
	WindowScale = 1.0
)

// Menu and HUD text
const (
	MenuTitle       = "Educational Fishing Quiz"
	MenuStartHint   = "Press SPACE to start"
	MenuNoQuestions = "ERROR: no questions loaded, check the question file"
	MenuGoal        = "Catch the fish carrying the correct answer and pull it to the surface."

	ControlVerticalAnalog    = "turn the rotary encoder"
	ControlVerticalDigital   = "Up/Down arrow keys"
	ControlHorizontalAnalog  = "slide the potentiometer"
	ControlHorizontalDigital = "Left/Right arrow keys"

	MenuVerticalPrefix   = "Vertical (pull/release): "
	MenuHorizontalPrefix = "Horizontal (left/right): "
	MenuPointerSuffix    = " or left/right mouse buttons"
	MenuOriginPrefix     = "Questions: "

	QuestionPrefix = "Q: "
	ScorePrefix    = "Score: "

	// PlaceholderLabel fills fish slots when a question has no distractors
	PlaceholderLabel = "..."
)

// Screen Layout (world units)
const (
	MenuTitleY       = 150.0
	MenuHintY        = 300.0
	MenuVerticalY    = 400.0
	MenuHorizontalY  = 450.0
	MenuGoalY        = 500.0
	MenuOriginY      = 550.0
	QuestionBarH     = 50.0
	ScoreX           = 20.0
	ScoreY           = 20.0
	FeedbackBoxW     = 450.0
	FeedbackBoxH     = 80.0
	FeedbackBoxAlpha = 180
	CatchRingRadius  = 25.0
	CatchRingWidth   = 3.0
	LineWidth        = 4.0
)

// Terminal frontend
const (
	// KeyHoldWindow is how long a terminal key event counts as a held key.
	// Terminals report repeats, not key-up, so a key is released when repeats stop.
	KeyHoldWindow = 150 * time.Millisecond

	// EventQueueSize is the terminal event pump capacity
	EventQueueSize = 256
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "quiz-fisher.log"
	MaxLogSize  = 10 * 1024 * 1024
)
