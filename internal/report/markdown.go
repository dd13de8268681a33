package report

import (
	"fmt"
	"strings"

	"github.com/trustsignal/agencymeter/internal/agency"
	"github.com/trustsignal/agencymeter/internal/runner"
)

func riskEmoji(risk agency.RiskLevel) string {
	switch risk {
	case agency.RiskHigh:
		return "🔴"
	case agency.RiskModerate:
		return "🟡"
	case agency.RiskLow:
		return "🟢"
	default:
		return "⚪"
	}
}

// FormatResultMarkdown produces markdown for a single evaluation.
func FormatResultMarkdown(r agency.Result, risk agency.RiskLevel) string {
	var b strings.Builder

	fmt.Fprintf(&b, "## agencymeter: %s %s (score %.2f)\n\n", riskEmoji(risk), risk, r.AgencyScore)

	b.WriteString("| Metric | Value |\n")
	b.WriteString("|--------|-------|\n")
	fmt.Fprintf(&b, "| Total words | %d |\n", r.TotalWords)
	fmt.Fprintf(&b, "| Sentences | %d |\n", r.SentenceCount)
	for _, c := range agency.Categories {
		fmt.Fprintf(&b, "| %s | %d |\n", c, r.Count(c))
	}
	if n := r.HighAgencyPhraseCount(); n > 0 {
		fmt.Fprintf(&b, "| High-agency phrases | %s |\n", strings.Join(r.HighAgencyPhrases, ", "))
	}
	b.WriteString("\n")

	b.WriteString("### Interpretation\n\n")
	for _, f := range agency.Findings(r, risk) {
		fmt.Fprintf(&b, "- **%s**: %s\n", f.Tag, f.Message)
	}
	b.WriteString("\n")

	return b.String()
}

// FormatMarkdown produces markdown for a batch report, suitable for PR
// comments.
func FormatMarkdown(rep *runner.Report) string {
	var b strings.Builder

	status := "✅ Pass"
	if rep.HighRiskCount > 0 {
		status = "❌ Fail"
	} else if rep.GenerationErrors > 0 {
		status = "⚠️ Warning"
	}
	fmt.Fprintf(&b, "## agencymeter: %s (%d high risk / %d calls)\n\n", status, rep.HighRiskCount, rep.TotalCalls)

	for _, cat := range rep.Categories {
		fmt.Fprintf(&b, "### %s\n\n", cat.Name)
		b.WriteString("| Prompt | Risk | Score | High-agency phrases |\n")
		b.WriteString("|--------|------|-------|---------------------|\n")
		for _, pr := range cat.Prompts {
			for _, resp := range pr.Responses {
				if !resp.Scored() {
					fmt.Fprintf(&b, "| %s | — | — | generation failed: %s |\n",
						truncate(pr.Prompt, 60), resp.Err)
					continue
				}
				phrases := "—"
				if resp.Result.HighAgencyPhraseCount() > 0 {
					phrases = strings.Join(resp.Result.HighAgencyPhrases, ", ")
				}
				fmt.Fprintf(&b, "| %s | %s %s | %.2f | %s |\n",
					truncate(pr.Prompt, 60),
					riskEmoji(resp.Risk), resp.Risk,
					resp.Result.AgencyScore,
					phrases)
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

// FormatTranscript produces a full markdown transcript of prompts, raw
// responses, and their interpretations, for manual review.
func FormatTranscript(rep *runner.Report) string {
	if rep == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("# agencymeter transcript\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", rep.Timestamp)

	for _, cat := range rep.Categories {
		fmt.Fprintf(&b, "## %s\n\n", cat.Name)
		for _, pr := range cat.Prompts {
			fmt.Fprintf(&b, "### %s\n\n", pr.Prompt)
			for _, resp := range pr.Responses {
				fmt.Fprintf(&b, "**Sample %d**", resp.Sample+1)
				if resp.Model != "" {
					fmt.Fprintf(&b, " (%s)", resp.Model)
				}
				b.WriteString("\n\n")

				if !resp.Scored() {
					fmt.Fprintf(&b, "> generation failed: %s\n\n", resp.Err)
					continue
				}

				fmt.Fprintf(&b, "> %s\n\n", strings.ReplaceAll(resp.Text, "\n", "\n> "))
				b.WriteString("```\n")
				b.WriteString(agency.Interpret(resp.Result, resp.Risk))
				b.WriteString("\n```\n\n")
			}
		}
	}

	return b.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
