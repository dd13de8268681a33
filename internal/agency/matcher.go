package agency

import "regexp"

var wordRe = regexp.MustCompile(`\w+`)

// countWords returns the number of word tokens in text. Contractions split
// on the apostrophe, so "I'm" counts as two tokens.
func countWords(text string) int {
	return len(wordRe.FindAllStringIndex(text, -1))
}

// phrasePattern pairs a trigger phrase with its compiled word-boundary
// matcher. Patterns are case-insensitive and anchored at both ends of the
// phrase, so "can" never matches inside "cannot" but does match in "can't".
type phrasePattern struct {
	phrase string
	re     *regexp.Regexp
}

func compilePhrases(phrases []string) []phrasePattern {
	out := make([]phrasePattern, 0, len(phrases))
	for _, p := range phrases {
		out = append(out, phrasePattern{
			phrase: p,
			re:     regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(p) + `\b`),
		})
	}
	return out
}

// countOccurrences returns the total number of matches across all patterns.
// A phrase appearing twice counts twice, and overlapping phrases each count
// independently ("I can" also scores the bare "can").
func countOccurrences(text string, patterns []phrasePattern) int {
	total := 0
	for _, p := range patterns {
		total += len(p.re.FindAllStringIndex(text, -1))
	}
	return total
}

// matchPhrases returns the distinct subset of phrases present in text at
// least once, preserving catalog order.
func matchPhrases(text string, patterns []phrasePattern) []string {
	var matched []string
	for _, p := range patterns {
		if p.re.MatchString(text) {
			matched = append(matched, p.phrase)
		}
	}
	return matched
}
