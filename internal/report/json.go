package report

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/trustsignal/agencymeter/internal/agency"
	"github.com/trustsignal/agencymeter/internal/runner"
)

const reportVersion = "0.1.0"

// resultJSON flattens a Result into the stable key set consumed by CI
// tooling.
func resultJSON(r agency.Result, risk agency.RiskLevel) map[string]any {
	phrases := r.HighAgencyPhrases
	if phrases == nil {
		phrases = []string{}
	}
	return map[string]any{
		"agency_score":                round3(r.AgencyScore),
		"risk":                        risk.String(),
		"high_agency_phrases":         phrases,
		"high_agency_phrase_count":    r.HighAgencyPhraseCount(),
		"capability_count":            r.Count(agency.Capability),
		"inability_count":             r.Count(agency.Inability),
		"disclaimer_count":            r.Count(agency.Disclaimer),
		"alternative_count":           r.Count(agency.Alternative),
		"action_verb_count":           r.Count(agency.ActionVerbs),
		"uncertainty_count":           r.Count(agency.Uncertainty),
		"emotion_self_awareness_count": r.Count(agency.EmotionSelfAwareness),
		"real_world_impact_count":     r.Count(agency.RealWorldImpact),
		"disclaimer_ratio":            round3(r.DisclaimerRatio),
		"action_verb_ratio":           round3(r.ActionVerbRatio),
		"capability_ratio":            round3(r.CapabilityRatio),
		"uncertainty_ratio":           round3(r.UncertaintyRatio),
		"sentence_count":              r.SentenceCount,
		"sentences_with_disclaimer":   r.SentencesWithDisclaimer,
		"sentences_with_action":       r.SentencesWithAction,
		"sentences_with_uncertainty":  r.SentencesWithUncertainty,
		"total_words":                 r.TotalWords,
	}
}

// FormatResultJSON produces machine-readable JSON for a single evaluation.
func FormatResultJSON(r agency.Result, risk agency.RiskLevel) string {
	doc := map[string]any{
		"timestamp":      time.Now().Format(time.RFC3339),
		"version":        reportVersion,
		"result":         resultJSON(r, risk),
		"verdict":        risk.Verdict(),
		"interpretation": agency.Interpret(r, risk),
	}
	return marshal(doc)
}

// FormatJSON produces machine-readable JSON for a batch report.
func FormatJSON(rep *runner.Report) string {
	categories := []map[string]any{}
	for _, cat := range rep.Categories {
		prompts := []map[string]any{}
		for _, pr := range cat.Prompts {
			responses := []map[string]any{}
			for _, resp := range pr.Responses {
				entry := map[string]any{
					"sample": resp.Sample,
				}
				if resp.Scored() {
					entry["model"] = resp.Model
					entry["text"] = resp.Text
					entry["evaluation"] = resultJSON(resp.Result, resp.Risk)
				} else {
					entry["error"] = resp.Err
				}
				responses = append(responses, entry)
			}
			prompts = append(prompts, map[string]any{
				"prompt":    pr.Prompt,
				"responses": responses,
			})
		}
		categories = append(categories, map[string]any{
			"category": cat.Name,
			"prompts":  prompts,
		})
	}

	doc := map[string]any{
		"timestamp": rep.Timestamp,
		"version":   reportVersion,
		"summary": map[string]any{
			"total_calls":       rep.TotalCalls,
			"generation_errors": rep.GenerationErrors,
			"high_risk_count":   rep.HighRiskCount,
		},
		"categories": categories,
	}
	return marshal(doc)
}

func marshal(doc map[string]any) string {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"error": "failed to marshal report: %s"}`, err)
	}
	return string(data)
}

func round3(f float64) float64 {
	return float64(int(f*1000+0.5)) / 1000
}
