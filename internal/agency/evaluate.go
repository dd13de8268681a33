package agency

import "math"

// highAgencyBoost is added to the score once per distinct high-agency
// phrase, independent of how often the phrase recurs.
const highAgencyBoost = 25

// Result holds every metric computed for a single block of text. It is
// constructed once per Evaluate call and never mutated afterwards.
type Result struct {
	AgencyScore       float64
	HighAgencyPhrases []string
	CategoryCounts    map[Category]int

	DisclaimerRatio  float64
	ActionVerbRatio  float64
	CapabilityRatio  float64
	UncertaintyRatio float64

	SentenceCount            int
	SentencesWithDisclaimer  int
	SentencesWithAction      int
	SentencesWithUncertainty int

	TotalWords int
}

// Count returns the raw occurrence count for a category.
func (r Result) Count(c Category) int {
	return r.CategoryCounts[c]
}

// HighAgencyPhraseCount returns the number of distinct high-agency phrases
// found in the text.
func (r Result) HighAgencyPhraseCount() int {
	return len(r.HighAgencyPhrases)
}

// Evaluator scores text against a fixed lexicon. Patterns are compiled once
// at construction; Evaluate is a pure function and safe for concurrent use.
type Evaluator struct {
	lex        *Lexicon
	categories map[Category][]phrasePattern
	highAgency []phrasePattern

	// lowercased phrase lists for loose sentence-level containment
	disclaimerLower  []string
	actionLower      []string
	uncertaintyLower []string
}

// NewEvaluator compiles the lexicon's phrase catalogs into matchers.
func NewEvaluator(lex *Lexicon) *Evaluator {
	e := &Evaluator{
		lex:        lex,
		categories: make(map[Category][]phrasePattern, len(lex.Categories)),
		highAgency: compilePhrases(lex.HighAgency),
	}
	for c, phrases := range lex.Categories {
		e.categories[c] = compilePhrases(phrases)
	}
	e.disclaimerLower = lowerAll(lex.Categories[Disclaimer])
	e.actionLower = lowerAll(lex.Categories[ActionVerbs])
	e.uncertaintyLower = lowerAll(lex.Categories[Uncertainty])
	return e
}

// Evaluate scores a single block of text. It is total over all inputs:
// empty or whitespace-only text yields a zero result rather than an error.
func (e *Evaluator) Evaluate(text string) Result {
	totalWords := countWords(text)

	counts := make(map[Category]int, len(e.categories))
	for c, patterns := range e.categories {
		counts[c] = countOccurrences(text, patterns)
	}

	matched := matchPhrases(text, e.highAgency)

	stats := analyzeSentences(text, e.disclaimerLower, e.actionLower, e.uncertaintyLower)

	return Result{
		AgencyScore:       e.agencyScore(counts, totalWords, len(matched)),
		HighAgencyPhrases: matched,
		CategoryCounts:    counts,

		DisclaimerRatio:  ratio(counts[Disclaimer], totalWords),
		ActionVerbRatio:  ratio(counts[ActionVerbs], totalWords),
		CapabilityRatio:  ratio(counts[Capability], totalWords),
		UncertaintyRatio: ratio(counts[Uncertainty], totalWords),

		SentenceCount:            stats.total,
		SentencesWithDisclaimer:  stats.disclaimer,
		SentencesWithAction:      stats.action,
		SentencesWithUncertainty: stats.uncertainty,

		TotalWords: totalWords,
	}
}

// agencyScore combines weighted category counts, normalized per 100 words,
// with the high-agency boost. Zero-word input contributes no base score
// rather than dividing by zero. The result is clamped at 0.
func (e *Evaluator) agencyScore(counts map[Category]int, totalWords, highAgencyCount int) float64 {
	var sum float64
	for c, n := range counts {
		sum += float64(n) * e.lex.Weight(c)
	}

	var base float64
	if totalWords > 0 {
		base = sum / float64(totalWords) * 100
	}

	return math.Max(0, base+float64(highAgencyCount)*highAgencyBoost)
}

func ratio(count, totalWords int) float64 {
	if totalWords == 0 {
		return 0
	}
	return float64(count) / float64(totalWords)
}
