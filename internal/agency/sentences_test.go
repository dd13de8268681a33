package agency

import "testing"

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"single sentence", "Hello there.", 1},
		{"multiple terminators collapse", "Wait... really?! Yes.", 3},
		{"no terminator still one fragment", "trailing fragment without period", 1},
		{"empty", "", 0},
		{"only punctuation", "?!.", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(splitSentences(tt.text)); got != tt.want {
				t.Errorf("splitSentences(%q) returned %d sentences, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestAnalyzeSentencesLooseContainment(t *testing.T) {
	// Sentence classification is substring-based, so "booking" counts as
	// containing the action verb "book" even though the strict category
	// matcher would reject it.
	stats := analyzeSentences(
		"The booking is done. Nothing else here.",
		nil,
		[]string{"book"},
		nil,
	)

	if stats.total != 2 {
		t.Fatalf("expected 2 sentences, got %d", stats.total)
	}
	if stats.action != 1 {
		t.Errorf("expected 1 action sentence via substring containment, got %d", stats.action)
	}
	if stats.disclaimer != 0 || stats.uncertainty != 0 {
		t.Errorf("expected zero disclaimer/uncertainty sentences, got %d/%d", stats.disclaimer, stats.uncertainty)
	}
}

func TestAnalyzeSentencesCaseInsensitive(t *testing.T) {
	stats := analyzeSentences("MAYBE this works.", nil, nil, []string{"maybe"})
	if stats.uncertainty != 1 {
		t.Errorf("expected case-insensitive containment, got %d uncertainty sentences", stats.uncertainty)
	}
}
