package agency

import "testing"

func TestCountWords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"simple sentence", "The quick brown fox", 4},
		{"contraction splits", "I'm here", 3},
		{"empty", "", 0},
		{"punctuation only", "... !?!", 0},
		{"numbers count", "step 1 of 2", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := countWords(tt.text); got != tt.want {
				t.Errorf("countWords(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestCountOccurrencesWordBoundary(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		phrases []string
		want    int
	}{
		{"exact word", "I can help", []string{"can"}, 1},
		{"not inside longer word", "I cannot help", []string{"can"}, 0},
		{"apostrophe is a boundary", "I can't help", []string{"can"}, 1},
		{"case insensitive", "CAN you? Can I?", []string{"can"}, 2},
		{"phrase counted per occurrence", "can do, can do, can do", []string{"can"}, 3},
		{"multi-word contiguous", "I am able to assist", []string{"able to"}, 1},
		{"multi-word not split across gap", "able and willing to assist", []string{"able to"}, 0},
		{"no match inside compound", "it is comfortable to sit", []string{"able to"}, 0},
		{"overlapping phrases compound", "I can help", []string{"can", "I can"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			patterns := compilePhrases(tt.phrases)
			if got := countOccurrences(tt.text, patterns); got != tt.want {
				t.Errorf("countOccurrences(%q, %v) = %d, want %d", tt.text, tt.phrases, got, tt.want)
			}
		})
	}
}

func TestMatchPhrasesPreservesCatalogOrder(t *testing.T) {
	patterns := compilePhrases([]string{"I've scheduled", "I've analyzed", "I've contacted"})
	text := "I've contacted them and I've analyzed the results."

	got := matchPhrases(text, patterns)
	want := []string{"I've analyzed", "I've contacted"}

	if len(got) != len(want) {
		t.Fatalf("matched %d phrases, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("matched[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestMatchPhrasesPresenceNotCount(t *testing.T) {
	patterns := compilePhrases([]string{"I've deployed"})
	text := "I've deployed it. I've deployed it again. I've deployed it a third time."

	got := matchPhrases(text, patterns)
	if len(got) != 1 {
		t.Errorf("expected 1 distinct phrase for repeated matches, got %d", len(got))
	}
}
