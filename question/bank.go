package question

import (
	"log"
	"math/rand"
	"sort"

	"github.com/google/uuid"
	"github.com/lixenwraith/quiz-fisher/constants"
)

// Bank holds the loaded questions and draws the current one
type Bank struct {
	items  []Item
	pool   []string
	origin Origin
	rng    *rand.Rand
}

// Load builds a bank from a provider, falling back to the built-in set when
// the provider is missing, unreadable, or yields no valid record
func Load(p Provider, rng *rand.Rand) (*Bank, Report) {
	var report Report
	if p == nil {
		return NewBank(nil, rng), report
	}

	rc, err := p.Open()
	if err != nil {
		log.Printf("question: source unavailable, using built-in set: %v", err)
		return NewBank(nil, rng), report
	}
	defer rc.Close()

	items, report, err := Parse(rc)
	if err != nil {
		log.Printf("question: %v", err)
	}
	if report.Skipped > 0 {
		log.Printf("question: skipped %d malformed line(s)", report.Skipped)
	}
	if len(items) == 0 {
		log.Printf("question: %v, using built-in set", ErrNoQuestions)
	}
	return NewBank(items, rng), report
}

// NewBank creates a bank over items; an empty slice selects the built-in set
func NewBank(items []Item, rng *rand.Rand) *Bank {
	b := &Bank{
		origin: OriginFile,
		rng:    rng,
	}

	for _, it := range items {
		if it.Answer == "" {
			continue
		}
		if it.ID == "" {
			it.ID = uuid.NewString()
		}
		b.items = append(b.items, it)
	}

	if len(b.items) == 0 {
		b.origin = OriginDefault
		for _, it := range defaultItems() {
			it.ID = uuid.NewString()
			b.items = append(b.items, it)
		}
	}

	b.pool = buildPool(b.items)
	return b
}

func buildPool(items []Item) []string {
	seen := make(map[string]struct{})
	for _, it := range items {
		seen[it.Answer] = struct{}{}
		for _, d := range it.Distractors {
			seen[d] = struct{}{}
		}
	}
	pool := make([]string, 0, len(seen))
	for s := range seen {
		pool = append(pool, s)
	}
	sort.Strings(pool)
	return pool
}

// Len returns the number of questions
func (b *Bank) Len() int {
	return len(b.items)
}

// Origin reports whether the questions came from the provider or the built-in set
func (b *Bank) Origin() Origin {
	return b.origin
}

// Pool returns every distinct answer and distractor string, sorted
func (b *Bank) Pool() []string {
	return b.pool
}

// Items returns the loaded questions
func (b *Bank) Items() []Item {
	return b.items
}

// PickNewQuestion draws a uniformly random item and assigns one label per fish slot
func (b *Bank) PickNewQuestion(fishCount int) (Item, []Label) {
	item := b.items[b.rng.Intn(len(b.items))]
	return item, AssignLabels(item, fishCount, b.rng)
}

// AssignLabels produces exactly n labels for item, shuffled, with exactly one correct.
// Distractors are shuffled before truncation so large lists rotate between rounds;
// short lists are padded with random distractors, or the placeholder when there are none.
func AssignLabels(item Item, n int, rng *rand.Rand) []Label {
	if n <= 0 {
		return nil
	}

	labels := make([]Label, 0, n)
	labels = append(labels, Label{Text: item.Answer, Correct: true})

	distractors := make([]string, len(item.Distractors))
	copy(distractors, item.Distractors)
	rng.Shuffle(len(distractors), func(i, j int) {
		distractors[i], distractors[j] = distractors[j], distractors[i]
	})

	for _, d := range distractors {
		if len(labels) == n {
			break
		}
		labels = append(labels, Label{Text: d})
	}

	for len(labels) < n {
		if len(item.Distractors) > 0 {
			labels = append(labels, Label{Text: item.Distractors[rng.Intn(len(item.Distractors))]})
		} else {
			labels = append(labels, Label{Text: constants.PlaceholderLabel})
		}
	}

	rng.Shuffle(len(labels), func(i, j int) {
		labels[i], labels[j] = labels[j], labels[i]
	})

	ensureSingleCorrect(labels, item.Answer, rng)
	return labels
}

// ensureSingleCorrect forces exactly one correct label, overwriting a random slot if none survived
func ensureSingleCorrect(labels []Label, answer string, rng *rand.Rand) {
	found := false
	for i := range labels {
		if !labels[i].Correct {
			continue
		}
		if found {
			labels[i].Correct = false
			continue
		}
		found = true
	}
	if !found && len(labels) > 0 {
		i := rng.Intn(len(labels))
		labels[i] = Label{Text: answer, Correct: true}
	}
}
