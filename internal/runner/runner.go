// Package runner drives batch assessment: generate a response for every
// prompt, score it with the agency engine, and collect the results.
package runner

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/trustsignal/agencymeter/internal/agency"
	"github.com/trustsignal/agencymeter/internal/prompts"
	"github.com/trustsignal/agencymeter/internal/provider"
)

// ResponseEval holds one generated sample and its scoring outcome. Err is
// set when generation failed; no score is substituted in that case.
type ResponseEval struct {
	Sample int
	Text   string
	Model  string
	Err    string
	Result agency.Result
	Risk   agency.RiskLevel
}

// Scored reports whether this sample produced a usable evaluation.
func (r ResponseEval) Scored() bool {
	return r.Err == ""
}

// PromptRun holds all samples for one prompt.
type PromptRun struct {
	Prompt    string
	Responses []ResponseEval
}

// CategoryRun holds all prompt runs for one prompt-file category.
type CategoryRun struct {
	Name    string
	Prompts []PromptRun
}

// Report is the complete outcome of a batch run.
type Report struct {
	Categories       []CategoryRun
	TotalCalls       int
	GenerationErrors int
	HighRiskCount    int
	Timestamp        string
}

// Config holds batch run settings.
type Config struct {
	Samples     int
	MaxTokens   int
	Temperature float64
	Concurrency int
	Delay       time.Duration
}

// Progress is called after each prompt completes.
type Progress func(done, total int, category, prompt string)

// Run generates and evaluates responses for every prompt in the set.
// Prompts run concurrently up to cfg.Concurrency; output order always
// follows file order. Generation failures are recorded per sample and
// never abort the batch.
func Run(ctx context.Context, set *prompts.Set, gen provider.TextGenerator,
	eval *agency.Evaluator, cfg Config, progress Progress) *Report {

	if cfg.Samples == 0 {
		cfg.Samples = 1
	}
	if cfg.Concurrency == 0 {
		cfg.Concurrency = 1
	}

	report := &Report{
		Categories: make([]CategoryRun, len(set.Categories)),
		Timestamp:  time.Now().Format(time.RFC3339),
	}

	total := set.TotalPrompts()
	var mu sync.Mutex
	completed := 0
	sem := make(chan struct{}, cfg.Concurrency)

	var wg sync.WaitGroup
	for ci, cat := range set.Categories {
		report.Categories[ci] = CategoryRun{
			Name:    cat.Name,
			Prompts: make([]PromptRun, len(cat.Prompts)),
		}

		for pi, prompt := range cat.Prompts {
			wg.Add(1)
			sem <- struct{}{}

			go func(ci, pi int, category, prompt string) {
				defer wg.Done()
				defer func() { <-sem }()

				run := PromptRun{Prompt: prompt}
				func() {
					defer func() {
						if r := recover(); r != nil {
							run.Responses = append(run.Responses, ResponseEval{
								Sample: len(run.Responses),
								Err:    fmt.Sprintf("panic: %v", r),
							})
						}
					}()
					run.Responses = generateSamples(ctx, gen, eval, prompt, cfg)
				}()

				mu.Lock()
				report.Categories[ci].Prompts[pi] = run
				for _, resp := range run.Responses {
					report.TotalCalls++
					if resp.Err != "" {
						report.GenerationErrors++
					} else if resp.Risk == agency.RiskHigh {
						report.HighRiskCount++
					}
				}
				completed++
				if progress != nil {
					progress(completed, total, category, prompt)
				}
				mu.Unlock()
			}(ci, pi, cat.Name, prompt)
		}
	}

	wg.Wait()
	return report
}

// generateSamples generates and scores cfg.Samples responses for one prompt.
func generateSamples(ctx context.Context, gen provider.TextGenerator,
	eval *agency.Evaluator, prompt string, cfg Config) []ResponseEval {

	out := make([]ResponseEval, 0, cfg.Samples)
	for i := 0; i < cfg.Samples; i++ {
		resp, err := gen.Generate(ctx, provider.Request{
			Prompt:      prompt,
			MaxTokens:   cfg.MaxTokens,
			Temperature: cfg.Temperature,
		})
		if err != nil {
			out = append(out, ResponseEval{Sample: i, Err: err.Error()})
		} else {
			text := stripEcho(resp.Text, prompt)
			result := eval.Evaluate(text)
			out = append(out, ResponseEval{
				Sample: i,
				Text:   text,
				Model:  resp.Model,
				Result: result,
				Risk:   agency.AssessRisk(result),
			})
		}

		if cfg.Delay > 0 && i < cfg.Samples-1 {
			time.Sleep(cfg.Delay)
		}
	}
	return out
}

// stripEcho removes the prompt from the front of a completion for models
// that echo their input.
func stripEcho(text, prompt string) string {
	if strings.HasPrefix(text, prompt) {
		return strings.TrimSpace(strings.TrimPrefix(text, prompt))
	}
	return text
}
