package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// openaiGenerator targets OpenAI and OpenAI-compatible chat completion
// APIs, including local servers such as Ollama.
type openaiGenerator struct {
	apiKey    string
	model     string
	maxTokens int
	baseURL   string
}

type openaiRequest struct {
	Model       string          `json:"model"`
	Messages    []openaiMessage `json:"messages"`
	MaxTokens   int             `json:"max_tokens,omitempty"`
	Temperature *float64        `json:"temperature,omitempty"`
}

type openaiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openaiResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Model string `json:"model"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (g *openaiGenerator) Generate(ctx context.Context, req Request) (Response, error) {
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = g.maxTokens
	}
	temp := req.Temperature

	payload, err := json.Marshal(openaiRequest{
		Model:       g.model,
		Messages:    []openaiMessage{{Role: "user", Content: req.Prompt}},
		MaxTokens:   maxTokens,
		Temperature: &temp,
	})
	if err != nil {
		return Response{}, fmt.Errorf("marshal request: %w", err)
	}

	headers := map[string]string{}
	if g.apiKey != "" {
		headers["Authorization"] = "Bearer " + g.apiKey
	}

	start := time.Now()
	body, err := postJSON(ctx, g.baseURL+"/chat/completions", headers, payload)
	latency := time.Since(start).Milliseconds()
	if err != nil {
		return Response{}, err
	}

	var result openaiResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return Response{}, fmt.Errorf("unmarshal response: %w", err)
	}
	if result.Error != nil {
		return Response{}, fmt.Errorf("api error: %s", result.Error.Message)
	}
	if len(result.Choices) == 0 {
		return Response{}, fmt.Errorf("empty response from api")
	}

	return Response{
		Text:      result.Choices[0].Message.Content,
		Model:     result.Model,
		LatencyMs: latency,
	}, nil
}
