package report

import (
	"fmt"
	"strings"

	"github.com/trustsignal/agencymeter/internal/agency"
	"github.com/trustsignal/agencymeter/internal/runner"
)

// Muted 256-color palette
const (
	bold  = "\033[1m"
	reset = "\033[0m"

	rose  = "\033[38;5;174m" // soft red/pink
	amber = "\033[38;5;179m" // warm yellow
	sage  = "\033[38;5;108m" // muted green
	slate = "\033[38;5;110m" // muted blue
	stone = "\033[38;5;245m" // medium gray
	chalk = "\033[38;5;188m" // off-white
)

const ruler = "────────────────────────────────────────────────────────"

func sectionHeader(title string) string {
	return fmt.Sprintf("\n  %s%s%s\n  %s%s%s\n", bold+chalk, strings.ToUpper(title), reset, stone, ruler, reset)
}

func riskColor(risk agency.RiskLevel) string {
	switch risk {
	case agency.RiskHigh:
		return rose
	case agency.RiskModerate:
		return amber
	case agency.RiskLow:
		return sage
	default:
		return slate
	}
}

func findingColor(tag string) string {
	switch tag {
	case "CRITICAL":
		return rose
	case "HIGH ALERT", "CAUTION":
		return amber
	case "GOOD":
		return sage
	case "MODERATE":
		return slate
	default:
		return stone
	}
}

// FormatResultTerminal renders one evaluation as human-readable terminal
// output.
func FormatResultTerminal(r agency.Result, risk agency.RiskLevel) string {
	var b strings.Builder

	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s%sagencymeter report%s\n", bold, chalk, reset)
	fmt.Fprintf(&b, "  %s%s%s\n", stone, ruler, reset)

	b.WriteString(sectionHeader("Metrics"))
	fmt.Fprintf(&b, "  %sagency score%s     %s%.2f%s\n", stone, reset, chalk, r.AgencyScore, reset)
	fmt.Fprintf(&b, "  %stotal words%s      %d\n", stone, reset, r.TotalWords)
	fmt.Fprintf(&b, "  %ssentences%s        %d\n", stone, reset, r.SentenceCount)
	for _, c := range agency.Categories {
		fmt.Fprintf(&b, "  %s%-22s%s %d\n", stone, c, reset, r.Count(c))
	}
	if n := r.HighAgencyPhraseCount(); n > 0 {
		fmt.Fprintf(&b, "  %shigh-agency phrases%s %s%s%s\n",
			stone, reset, rose, strings.Join(r.HighAgencyPhrases, ", "), reset)
	}

	b.WriteString(sectionHeader("Interpretation"))
	for _, f := range agency.Findings(r, risk) {
		color := findingColor(f.Tag)
		fmt.Fprintf(&b, "  %s%-10s%s %s\n", color, f.Tag, reset, f.Message)
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s%s%s\n", stone, ruler, reset)
	fmt.Fprintf(&b, "  %s%sRisk%s   %s%s%s\n\n",
		bold, chalk, reset, riskColor(risk), risk, reset)

	return b.String()
}

// FormatTerminal renders a batch report as human-readable terminal output.
func FormatTerminal(rep *runner.Report) string {
	var b strings.Builder

	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s%sagencymeter batch report%s\n", bold, chalk, reset)
	fmt.Fprintf(&b, "  %s%s%s\n", stone, ruler, reset)

	for _, cat := range rep.Categories {
		b.WriteString(sectionHeader(cat.Name))

		for _, pr := range cat.Prompts {
			fmt.Fprintf(&b, "  %s%s%s\n", chalk, pr.Prompt, reset)
			for _, resp := range pr.Responses {
				if !resp.Scored() {
					fmt.Fprintf(&b, "    %s✘ generation failed: %s%s\n", rose, resp.Err, reset)
					continue
				}
				fmt.Fprintf(&b, "    %s●%s %s%-12s%s score %s%.2f%s  %s%d words, %d sentences%s\n",
					riskColor(resp.Risk), reset,
					riskColor(resp.Risk), resp.Risk, reset,
					chalk, resp.Result.AgencyScore, reset,
					stone, resp.Result.TotalWords, resp.Result.SentenceCount, reset)
				if n := resp.Result.HighAgencyPhraseCount(); n > 0 {
					fmt.Fprintf(&b, "      %s✘ %s%s\n",
						rose, strings.Join(resp.Result.HighAgencyPhrases, ", "), reset)
				}
			}
			b.WriteString("\n")
		}
	}

	b.WriteString(fmt.Sprintf("  %s%s%s\n", stone, ruler, reset))
	fmt.Fprintf(&b, "  %stotal calls: %d   generation errors: %d%s   %shigh risk: %d%s\n\n",
		stone, rep.TotalCalls, rep.GenerationErrors, reset,
		highRiskColor(rep.HighRiskCount), rep.HighRiskCount, reset)

	return b.String()
}

func highRiskColor(n int) string {
	if n > 0 {
		return rose
	}
	return sage
}
