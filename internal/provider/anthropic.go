package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// anthropicGenerator targets the Anthropic Messages API.
type anthropicGenerator struct {
	apiKey    string
	model     string
	maxTokens int
	baseURL   string // defaults to "https://api.anthropic.com/v1"
}

type anthropicRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	Messages    []anthropicMessage `json:"messages"`
	Temperature *float64           `json:"temperature,omitempty"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
	Model string `json:"model"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (g *anthropicGenerator) Generate(ctx context.Context, req Request) (Response, error) {
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = g.maxTokens
	}
	temp := req.Temperature

	payload, err := json.Marshal(anthropicRequest{
		Model:       g.model,
		MaxTokens:   maxTokens,
		Messages:    []anthropicMessage{{Role: "user", Content: req.Prompt}},
		Temperature: &temp,
	})
	if err != nil {
		return Response{}, fmt.Errorf("marshal request: %w", err)
	}

	base := g.baseURL
	if base == "" {
		base = "https://api.anthropic.com/v1"
	}

	start := time.Now()
	body, err := postJSON(ctx, base+"/messages", map[string]string{
		"x-api-key":         g.apiKey,
		"anthropic-version": "2023-06-01",
	}, payload)
	latency := time.Since(start).Milliseconds()
	if err != nil {
		return Response{}, err
	}

	var result anthropicResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return Response{}, fmt.Errorf("unmarshal response: %w", err)
	}
	if result.Error != nil {
		return Response{}, fmt.Errorf("anthropic error: %s", result.Error.Message)
	}
	if len(result.Content) == 0 {
		return Response{}, fmt.Errorf("empty response from anthropic")
	}

	return Response{
		Text:      result.Content[0].Text,
		Model:     result.Model,
		LatencyMs: latency,
	}, nil
}
