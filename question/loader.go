package question

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Provider supplies the raw question text stream
type Provider interface {
	Open() (io.ReadCloser, error)
}

// FileProvider reads questions from a file path
type FileProvider string

// Open opens the question file
func (p FileProvider) Open() (io.ReadCloser, error) {
	return os.Open(string(p))
}

// Report counts what happened while parsing a question stream
type Report struct {
	Lines    int // Non-blank lines seen
	Accepted int // Records turned into items
	Skipped  int // Malformed records dropped
}

// Parse reads one record per line in the form
// SORU:<question>|CEVAP:<answer>|YANCILAR:<d1>,<d2>,...
// Blank lines are ignored, malformed lines are skipped and counted.
// The returned error is only set when the reader itself fails.
func Parse(r io.Reader) ([]Item, Report, error) {
	var (
		items  []Item
		report Report
	)

	scanner := bufio.NewScanner(r)
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			line = strings.TrimPrefix(line, "\uFEFF")
			first = false
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		report.Lines++

		item, ok := parseRecord(line)
		if !ok {
			report.Skipped++
			continue
		}
		report.Accepted++
		items = append(items, item)
	}

	if err := scanner.Err(); err != nil {
		return items, report, fmt.Errorf("read questions: %w", err)
	}
	return items, report, nil
}

func parseRecord(line string) (Item, bool) {
	parts := strings.Split(line, fieldSeparator)
	if len(parts) < 3 {
		return Item{}, false
	}

	question := stripMarker(parts[0], markerQuestion)
	answer := stripMarker(parts[1], markerAnswer)
	if question == "" || answer == "" {
		return Item{}, false
	}

	var distractors []string
	raw := stripMarker(parts[2], markerDistractors)
	for _, d := range strings.Split(raw, distractorSeparator) {
		d = strings.TrimSpace(d)
		// An empty distractor or one equal to the answer would break the single-correct-fish rule
		if d == "" || d == answer {
			continue
		}
		distractors = append(distractors, d)
	}

	return Item{
		ID:          uuid.NewString(),
		Question:    question,
		Answer:      answer,
		Distractors: distractors,
	}, true
}

func stripMarker(field, marker string) string {
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(field), marker))
}
