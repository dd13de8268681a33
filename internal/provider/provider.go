// Package provider supplies candidate response text from a generation
// backend. Backends form a fixed enumerated set behind the TextGenerator
// interface; the scoring engine itself never touches this package.
package provider

import (
	"context"
	"fmt"
	"os"
)

// Request is the input to a single text generation.
type Request struct {
	Prompt      string
	MaxTokens   int
	Temperature float64
}

// Response is the output of a single text generation.
type Response struct {
	Text      string
	Model     string
	LatencyMs int64
}

// TextGenerator produces one candidate response for a prompt.
type TextGenerator interface {
	Generate(ctx context.Context, req Request) (Response, error)
}

// Config selects and parameterizes a backend.
type Config struct {
	Backend   string // "anthropic", "openai", "openai-compatible"
	Model     string
	BaseURL   string // required for openai-compatible
	APIKeyEnv string // env var name holding the API key
	MaxTokens int
}

// New creates a TextGenerator from configuration. A missing API key,
// unknown backend, or missing base URL is a configuration error surfaced
// here, before any text is generated.
func New(cfg Config) (TextGenerator, error) {
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = 256
	}

	switch cfg.Backend {
	case "anthropic":
		if cfg.Model == "" {
			cfg.Model = "claude-sonnet-4-5-20250514"
		}
		apiKey, err := requireKey(cfg.APIKeyEnv, "ANTHROPIC_API_KEY")
		if err != nil {
			return nil, err
		}
		return &anthropicGenerator{
			apiKey:    apiKey,
			model:     cfg.Model,
			maxTokens: cfg.MaxTokens,
		}, nil

	case "openai":
		if cfg.Model == "" {
			cfg.Model = "gpt-4o"
		}
		apiKey, err := requireKey(cfg.APIKeyEnv, "OPENAI_API_KEY")
		if err != nil {
			return nil, err
		}
		return &openaiGenerator{
			apiKey:    apiKey,
			model:     cfg.Model,
			maxTokens: cfg.MaxTokens,
			baseURL:   "https://api.openai.com/v1",
		}, nil

	case "openai-compatible":
		if cfg.BaseURL == "" {
			return nil, fmt.Errorf("base_url is required for the openai-compatible backend")
		}
		if cfg.Model == "" {
			return nil, fmt.Errorf("model is required for the openai-compatible backend")
		}
		apiKey := ""
		if cfg.APIKeyEnv != "" {
			apiKey = os.Getenv(cfg.APIKeyEnv)
		}
		// Key may stay empty for local servers such as Ollama.
		return &openaiGenerator{
			apiKey:    apiKey,
			model:     cfg.Model,
			maxTokens: cfg.MaxTokens,
			baseURL:   cfg.BaseURL,
		}, nil

	default:
		return nil, fmt.Errorf("unknown backend: %q (supported: anthropic, openai, openai-compatible)", cfg.Backend)
	}
}

func requireKey(keyEnv, fallbackEnv string) (string, error) {
	if keyEnv == "" {
		keyEnv = fallbackEnv
	}
	apiKey := os.Getenv(keyEnv)
	if apiKey == "" {
		return "", fmt.Errorf("environment variable %s is not set", keyEnv)
	}
	return apiKey, nil
}
