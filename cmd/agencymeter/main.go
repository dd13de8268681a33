package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/trustsignal/agencymeter/internal/agency"
	"github.com/trustsignal/agencymeter/internal/config"
	"github.com/trustsignal/agencymeter/internal/prompts"
	"github.com/trustsignal/agencymeter/internal/provider"
	"github.com/trustsignal/agencymeter/internal/report"
	"github.com/trustsignal/agencymeter/internal/runner"
)

var version = "dev"

func main() {
	root := &cobra.Command{
		Use:     "agencymeter",
		Short:   "Lexical agency scoring and risk assessment for LLM responses",
		Version: version,
	}

	// Shared flags
	var (
		flagCI      bool
		flagFormat  string
		flagConfig  string
		flagOutput  string
		flagNoPager bool
	)

	// ── score command ────────────────────────────────────────────
	var flagFile string

	scoreCmd := &cobra.Command{
		Use:   "score [text]",
		Short: "Score a block of text for expressed agency (no API calls)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			applyCIDefaults(cmd, &flagFormat, &flagNoPager, flagCI)

			text, err := readText(args, flagFile)
			if err != nil {
				return err
			}

			cfg, err := config.Load(flagConfig, flagFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			eval, err := buildEvaluator(cfg)
			if err != nil {
				return err
			}

			result := eval.Evaluate(text)
			risk := agency.AssessRisk(result)

			output := formatResult(result, risk, flagFormat)
			if err := writeOutput(output, flagOutput, flagFormat, flagNoPager); err != nil {
				return err
			}

			if flagCI && risk == agency.RiskHigh {
				return fmt.Errorf("score failed: response assessed as HIGH risk (score %.2f)", result.AgencyScore)
			}
			return nil
		},
	}
	scoreCmd.Flags().BoolVar(&flagCI, "ci", false, "CI mode: JSON output, no pager, exit 1 on HIGH risk")
	scoreCmd.Flags().StringVar(&flagFormat, "format", "terminal", "Output format: terminal, json, markdown")
	scoreCmd.Flags().StringVar(&flagConfig, "config", "", "Path to agencymeter.yaml config")
	scoreCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Write report to file")
	scoreCmd.Flags().BoolVar(&flagNoPager, "no-pager", false, "Disable automatic paging")
	scoreCmd.Flags().StringVarP(&flagFile, "file", "f", "", "Read text from file instead of argument")

	// ── assess command ───────────────────────────────────────────
	var (
		flagBackend     string
		flagModel       string
		flagBaseURL     string
		flagAPIKeyEnv   string
		flagSamples     int
		flagMaxTokens   int
		flagConcurrency int
		flagTranscript  string
	)

	assessCmd := &cobra.Command{
		Use:   "assess <prompts-file>",
		Short: "Generate responses for a prompt file and score each one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			applyCIDefaults(cmd, &flagFormat, &flagNoPager, flagCI)
			promptsPath := args[0]

			cfg, err := config.Load(flagConfig, promptsPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			set, err := prompts.ParseFile(promptsPath)
			if err != nil {
				return fmt.Errorf("load prompts: %w", err)
			}
			if set.TotalPrompts() == 0 {
				return fmt.Errorf("no prompts found in %s", promptsPath)
			}

			eval, err := buildEvaluator(cfg)
			if err != nil {
				return err
			}

			providerCfg := resolveProviderConfig(cfg, flagBackend, flagModel, flagBaseURL, flagAPIKeyEnv, flagMaxTokens)
			gen, err := provider.New(providerCfg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to initialize generation backend: %v\n", err)
				fmt.Fprintln(os.Stderr, "Set the appropriate API key env var (e.g. ANTHROPIC_API_KEY, OPENAI_API_KEY).")
				os.Exit(1)
			}

			samples := flagSamples
			if samples == 0 {
				samples = cfg.Generation.Samples
			}
			if samples == 0 {
				samples = 1
			}
			totalCalls := set.TotalPrompts() * samples
			fmt.Fprintf(os.Stderr, "Loaded %d prompt(s) from %s\n", set.TotalPrompts(), promptsPath)
			fmt.Fprintf(os.Stderr, "Running %d API call(s)...\n", totalCalls)

			bar := newProgressBar(set.TotalPrompts(), flagCI)

			rep := runner.Run(
				context.Background(),
				set,
				gen,
				eval,
				runner.Config{
					Samples:     samples,
					MaxTokens:   providerCfg.MaxTokens,
					Temperature: cfg.Generation.Temperature,
					Concurrency: flagConcurrency,
					Delay:       300 * time.Millisecond,
				},
				func(done, total int, category, prompt string) {
					if bar != nil {
						bar.Describe(fmt.Sprintf("[%d/%d] %s", done, total, category))
						bar.Add(1)
					}
				},
			)
			if bar != nil {
				bar.Finish()
				fmt.Fprintln(os.Stderr)
			}

			output := formatBatch(rep, flagFormat)
			if err := writeOutput(output, flagOutput, flagFormat, flagNoPager); err != nil {
				return err
			}

			if flagTranscript != "" {
				transcript := report.FormatTranscript(rep)
				if err := os.WriteFile(flagTranscript, []byte(transcript), 0644); err != nil {
					return fmt.Errorf("write transcript: %w", err)
				}
				fmt.Fprintf(os.Stderr, "Transcript written to %s\n", flagTranscript)
			}

			if flagCI {
				return checkCIResult(rep, cfg)
			}
			return nil
		},
	}
	assessCmd.Flags().BoolVar(&flagCI, "ci", false, "CI mode: JSON output, no pager, exit 1 on failure")
	assessCmd.Flags().StringVar(&flagFormat, "format", "terminal", "Output format: terminal, json, markdown")
	assessCmd.Flags().StringVar(&flagConfig, "config", "", "Path to agencymeter.yaml config")
	assessCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Write report to file")
	assessCmd.Flags().BoolVar(&flagNoPager, "no-pager", false, "Disable automatic paging")
	assessCmd.Flags().StringVar(&flagBackend, "backend", "", "Generation backend: anthropic, openai, openai-compatible")
	assessCmd.Flags().StringVar(&flagModel, "model", "", "Model to generate responses with")
	assessCmd.Flags().StringVar(&flagBaseURL, "base-url", "", "Base URL for the openai-compatible backend")
	assessCmd.Flags().StringVar(&flagAPIKeyEnv, "api-key-env", "", "Environment variable name for API key")
	assessCmd.Flags().IntVar(&flagSamples, "samples", 0, "Samples per prompt (default from config)")
	assessCmd.Flags().IntVar(&flagMaxTokens, "max-tokens", 0, "Max tokens per generation (default from config)")
	assessCmd.Flags().IntVar(&flagConcurrency, "concurrency", 3, "Max concurrent API calls")
	assessCmd.Flags().StringVar(&flagTranscript, "transcript", "", "Write full prompt/response transcript to file (markdown)")

	root.AddCommand(scoreCmd, assessCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// readText resolves the text to score: positional argument, --file, or
// stdin when piped.
func readText(args []string, file string) (string, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read text: %w", err)
		}
		return string(data), nil
	}
	if len(args) == 1 {
		return args[0], nil
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		if strings.TrimSpace(string(data)) != "" {
			return string(data), nil
		}
	}
	return "", fmt.Errorf("no text to score: pass it as an argument, via --file, or on stdin")
}

// buildEvaluator applies any configured lexicon extensions before
// compiling the evaluator.
func buildEvaluator(cfg *config.Config) (*agency.Evaluator, error) {
	lex := agency.Default()
	if len(cfg.Lexicon.ExtraPhrases) > 0 || len(cfg.Lexicon.ExtraHighAgency) > 0 {
		extended, err := lex.Extend(cfg.Lexicon.ExtraPhrases, cfg.Lexicon.ExtraHighAgency)
		if err != nil {
			return nil, fmt.Errorf("extend lexicon: %w", err)
		}
		lex = extended
	}
	return agency.NewEvaluator(lex), nil
}

func resolveProviderConfig(cfg *config.Config, flagBackend, flagModel, flagBaseURL, flagAPIKeyEnv string, flagMaxTokens int) provider.Config {
	p := provider.Config{
		Backend:   cfg.Generation.Backend,
		Model:     cfg.Generation.Model,
		BaseURL:   cfg.Generation.BaseURL,
		APIKeyEnv: cfg.Generation.APIKeyEnv,
		MaxTokens: cfg.Generation.MaxTokens,
	}

	// Flags win over the config file.
	if flagBackend != "" {
		p.Backend = flagBackend
	}
	if flagModel != "" {
		p.Model = flagModel
	}
	if flagBaseURL != "" {
		p.BaseURL = flagBaseURL
	}
	if flagAPIKeyEnv != "" {
		p.APIKeyEnv = flagAPIKeyEnv
	}
	if flagMaxTokens > 0 {
		p.MaxTokens = flagMaxTokens
	}

	return p
}

func newProgressBar(total int, ci bool) *progressbar.ProgressBar {
	if ci {
		return nil
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
		progressbar.OptionSetDescription("assessing"),
		progressbar.OptionClearOnFinish(),
	)
}

func formatResult(r agency.Result, risk agency.RiskLevel, format string) string {
	switch format {
	case "json":
		return report.FormatResultJSON(r, risk)
	case "markdown":
		return report.FormatResultMarkdown(r, risk)
	default:
		return report.FormatResultTerminal(r, risk)
	}
}

func formatBatch(rep *runner.Report, format string) string {
	switch format {
	case "json":
		return report.FormatJSON(rep)
	case "markdown":
		return report.FormatMarkdown(rep)
	default:
		return report.FormatTerminal(rep)
	}
}

func writeOutput(output, path, format string, noPager bool) error {
	if path != "" {
		if err := os.WriteFile(path, []byte(output), 0644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Report written to %s\n", path)
		return nil
	}

	// Use pager for terminal format when stdout is a TTY
	if format == "terminal" && !noPager && isTerminal() {
		return outputWithPager(output)
	}

	fmt.Print(output)
	return nil
}

// isTerminal returns true if stdout is connected to a terminal.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// outputWithPager pipes output through a pager (less -R by default).
func outputWithPager(output string) error {
	pager := os.Getenv("PAGER")
	if pager == "" {
		pager = "less"
	}

	// For less, -R preserves ANSI colors, -X leaves output on screen
	// after quit
	var args []string
	if pager == "less" {
		args = []string{"-R", "-X"}
	}

	cmd := exec.Command(pager, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		fmt.Print(output)
		return nil
	}

	if err := cmd.Start(); err != nil {
		// Pager not available, fall back to direct output
		fmt.Print(output)
		return nil
	}

	io.WriteString(stdin, output)
	stdin.Close()

	// Ignore pager exit errors (e.g. user quits with 'q')
	cmd.Wait()
	return nil
}

func checkCIResult(rep *runner.Report, cfg *config.Config) error {
	if rep.HighRiskCount > cfg.Thresholds.MaxHighRisk {
		return fmt.Errorf("assessment failed: %d high-risk response(s) exceeds threshold %d",
			rep.HighRiskCount, cfg.Thresholds.MaxHighRisk)
	}
	if rep.GenerationErrors == rep.TotalCalls && rep.TotalCalls > 0 {
		return fmt.Errorf("assessment failed: all %d generation call(s) errored", rep.TotalCalls)
	}
	return nil
}

// applyCIDefaults sets machine-friendly defaults when --ci is used:
// JSON format and no pager, unless the user explicitly overrode them.
func applyCIDefaults(cmd *cobra.Command, format *string, noPager *bool, ci bool) {
	if !ci {
		return
	}
	if !cmd.Flags().Changed("format") {
		*format = "json"
	}
	*noPager = true
}
