package question

// defaultItems is the fallback set used when no question file is usable
func defaultItems() []Item {
	return []Item{
		{
			Question:    "Backup question: what is 1 + 1?",
			Answer:      "2",
			Distractors: []string{"3", "4", "5", "6"},
		},
		{
			Question:    "Backup question: which language is this game written in?",
			Answer:      "Go",
			Distractors: []string{"C++", "Java", "Ruby", "C#"},
		},
	}
}
