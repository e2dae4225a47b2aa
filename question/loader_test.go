package question

import (
	"errors"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestParseValidRecords verifies marker stripping and distractor splitting
func TestParseValidRecords(t *testing.T) {
	input := "SORU: 2 + 2 ? |CEVAP: 4 |YANCILAR: 3, 5 ,6\n" +
		"SORU:Capital of France?|CEVAP:Paris|YANCILAR:Rome,Berlin\n"

	items, report, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if report.Accepted != 2 || report.Skipped != 0 {
		t.Errorf("Expected 2 accepted 0 skipped, got %+v", report)
	}
	if len(items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(items))
	}

	first := items[0]
	if first.Question != "2 + 2 ?" {
		t.Errorf("Expected question %q, got %q", "2 + 2 ?", first.Question)
	}
	if first.Answer != "4" {
		t.Errorf("Expected answer %q, got %q", "4", first.Answer)
	}
	if len(first.Distractors) != 3 || first.Distractors[1] != "5" {
		t.Errorf("Expected distractors [3 5 6], got %v", first.Distractors)
	}
	if first.ID == "" || first.ID == items[1].ID {
		t.Error("Expected distinct non-empty IDs")
	}
}

// TestParseSkipsMalformed verifies blank and short lines are dropped
func TestParseSkipsMalformed(t *testing.T) {
	input := strings.Join([]string{
		"",
		"   ",
		"SORU:only two|CEVAP:fields",
		"SORU:|CEVAP:x|YANCILAR:y",
		"SORU:no answer|CEVAP: |YANCILAR:y",
		"SORU:ok|CEVAP:yes|YANCILAR:no",
	}, "\n")

	items, report, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(items))
	}
	if report.Lines != 4 {
		t.Errorf("Expected 4 non-blank lines, got %d", report.Lines)
	}
	if report.Skipped != 3 {
		t.Errorf("Expected 3 skipped lines, got %d", report.Skipped)
	}
}

// TestParseFiltersDistractors verifies empty and answer-equal distractors are dropped
func TestParseFiltersDistractors(t *testing.T) {
	items, _, err := Parse(strings.NewReader("SORU:q|CEVAP:a|YANCILAR:a, ,b,"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(items))
	}
	if got := items[0].Distractors; len(got) != 1 || got[0] != "b" {
		t.Errorf("Expected distractors [b], got %v", got)
	}
}

// TestParseEmptyDistractors verifies a record with no distractors is still valid
func TestParseEmptyDistractors(t *testing.T) {
	items, _, err := Parse(strings.NewReader("SORU:q|CEVAP:a|YANCILAR:"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(items) != 1 || len(items[0].Distractors) != 0 {
		t.Errorf("Expected 1 item without distractors, got %+v", items)
	}
}

// TestParseStripsBOM verifies editors that write a byte order mark are tolerated
func TestParseStripsBOM(t *testing.T) {
	items, _, err := Parse(strings.NewReader("\uFEFFSORU:q|CEVAP:a|YANCILAR:b"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].Question != "q" {
		t.Errorf("Expected question %q, got %+v", "q", items)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk gone") }

// TestParseReaderError verifies read failures are reported
func TestParseReaderError(t *testing.T) {
	_, _, err := Parse(failingReader{})
	if err == nil {
		t.Error("Expected error from failing reader")
	}
}

// TestLoadMissingFile verifies a missing file selects the built-in set
func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")
	bank, _ := Load(FileProvider(path), rand.New(rand.NewSource(1)))

	if bank.Origin() != OriginDefault {
		t.Errorf("Expected origin %v, got %v", OriginDefault, bank.Origin())
	}
	if bank.Len() == 0 {
		t.Error("Expected the game to remain startable")
	}
}

// TestLoadEmptyFile verifies an empty file selects the built-in set
func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questions.txt")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	bank, report := Load(FileProvider(path), rand.New(rand.NewSource(1)))
	if bank.Origin() != OriginDefault {
		t.Errorf("Expected origin %v, got %v", OriginDefault, bank.Origin())
	}
	if report.Accepted != 0 {
		t.Errorf("Expected 0 accepted, got %d", report.Accepted)
	}
}

// TestLoadFile verifies a valid file is used as-is
func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questions.txt")
	content := "SORU:q1|CEVAP:a1|YANCILAR:b,c\nbroken line\nSORU:q2|CEVAP:a2|YANCILAR:d\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	bank, report := Load(FileProvider(path), rand.New(rand.NewSource(1)))
	if bank.Origin() != OriginFile {
		t.Errorf("Expected origin %v, got %v", OriginFile, bank.Origin())
	}
	if bank.Len() != 2 {
		t.Errorf("Expected 2 questions, got %d", bank.Len())
	}
	if report.Skipped != 1 {
		t.Errorf("Expected 1 skipped line, got %d", report.Skipped)
	}
}

type readerProvider struct{ r io.Reader }

func (p readerProvider) Open() (io.ReadCloser, error) { return io.NopCloser(p.r), nil }

// TestLoadMalformedOnly verifies a file of garbage selects the built-in set
func TestLoadMalformedOnly(t *testing.T) {
	bank, report := Load(readerProvider{strings.NewReader("x\ny|z\n")}, rand.New(rand.NewSource(1)))

	if bank.Origin() != OriginDefault {
		t.Errorf("Expected origin %v, got %v", OriginDefault, bank.Origin())
	}
	if report.Skipped != 2 {
		t.Errorf("Expected 2 skipped lines, got %d", report.Skipped)
	}
}

// TestLoadNilProvider verifies the built-in set without any source
func TestLoadNilProvider(t *testing.T) {
	bank, _ := Load(nil, rand.New(rand.NewSource(1)))
	if bank.Origin() != OriginDefault {
		t.Errorf("Expected origin %v, got %v", OriginDefault, bank.Origin())
	}
}

// TestShippedQuestionFile verifies the bundled question file parses cleanly
// and every record can fill a full pond
func TestShippedQuestionFile(t *testing.T) {
	bank, report := Load(FileProvider(filepath.Join("..", "questions.txt")), rand.New(rand.NewSource(3)))

	if report.Skipped != 0 {
		t.Errorf("Expected no malformed lines, got %d", report.Skipped)
	}
	if bank.Origin() != OriginFile {
		t.Errorf("Expected file origin, got %v", bank.Origin())
	}
	if bank.Len() != report.Accepted || bank.Len() == 0 {
		t.Errorf("Expected %d questions, got %d", report.Accepted, bank.Len())
	}
	for _, it := range bank.Items() {
		if len(it.Distractors) == 0 {
			t.Errorf("Expected distractors for %q", it.Question)
		}
	}
}
