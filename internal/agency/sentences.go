package agency

import (
	"regexp"
	"strings"
)

var sentenceEndRe = regexp.MustCompile(`[.!?]+`)

// splitSentences splits text on runs of sentence-terminating punctuation,
// trimming whitespace and discarding empty fragments.
func splitSentences(text string) []string {
	var sentences []string
	for _, frag := range sentenceEndRe.Split(text, -1) {
		frag = strings.TrimSpace(frag)
		if frag != "" {
			sentences = append(sentences, frag)
		}
	}
	return sentences
}

// sentenceStats holds sentence-level counts for the three watched categories.
type sentenceStats struct {
	total       int
	disclaimer  int
	action      int
	uncertainty int
}

// analyzeSentences classifies each sentence by loose case-insensitive
// substring containment. This is deliberately weaker than the word-boundary
// matching used for category counts: it is a coarse structural signal, and
// tightening it would shift observable scores.
func analyzeSentences(text string, disclaimer, action, uncertainty []string) sentenceStats {
	sentences := splitSentences(text)
	stats := sentenceStats{total: len(sentences)}
	for _, s := range sentences {
		lower := strings.ToLower(s)
		if containsAny(lower, disclaimer) {
			stats.disclaimer++
		}
		if containsAny(lower, action) {
			stats.action++
		}
		if containsAny(lower, uncertainty) {
			stats.uncertainty++
		}
	}
	return stats
}

// containsAny reports whether the lowercased sentence contains any of the
// already-lowercased phrases as a substring.
func containsAny(sentenceLower string, phrasesLower []string) bool {
	for _, p := range phrasesLower {
		if strings.Contains(sentenceLower, p) {
			return true
		}
	}
	return false
}

func lowerAll(phrases []string) []string {
	out := make([]string, len(phrases))
	for i, p := range phrases {
		out[i] = strings.ToLower(p)
	}
	return out
}
