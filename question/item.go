package question

import "errors"

// Record field markers of the question file format
const (
	markerQuestion    = "SORU:"
	markerAnswer      = "CEVAP:"
	markerDistractors = "YANCILAR:"

	fieldSeparator      = "|"
	distractorSeparator = ","
)

// ErrNoQuestions is returned when a source yields no usable record
var ErrNoQuestions = errors.New("no usable questions")

// Item is a single trivia question with its correct answer and distractors
type Item struct {
	ID          string
	Question    string
	Answer      string
	Distractors []string
}

// Label is the answer text carried by one fish
type Label struct {
	Text    string
	Correct bool
}

// Origin tells where the active question set came from
type Origin uint8

const (
	OriginFile Origin = iota
	OriginDefault
)

func (o Origin) String() string {
	switch o {
	case OriginFile:
		return "file"
	case OriginDefault:
		return "built-in"
	default:
		return "unknown"
	}
}
