package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/genai"

	"careline/config"
	"careline/schema"
)

// GeminiProvider classifies queries via the Google Gemini API.
type GeminiProvider struct {
	client      *genai.Client
	model       string
	temperature float32
	timeout     time.Duration
}

// NewGeminiProvider builds the provider from validated configuration. The
// context is only used for client construction.
func NewGeminiProvider(ctx context.Context, cfg config.LLMConfig) (*GeminiProvider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini: api key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.APIKey})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = "gemini-1.5-pro"
	}
	timeout := time.Duration(cfg.TimeoutMs) * time.Millisecond
	if timeout <= 0 {
		timeout = 8 * time.Second
	}

	return &GeminiProvider{
		client:      client,
		model:       model,
		temperature: float32(cfg.Temperature),
		timeout:     timeout,
	}, nil
}

func (p *GeminiProvider) GetProviderType() string { return "gemini" }

// Classify sends one best-effort generation and parses the label.
func (p *GeminiProvider) Classify(ctx context.Context, query string) (schema.Intent, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	prompt := classifyPrompt + "\n\n" + buildUserPrompt(query)
	result, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt),
		&genai.GenerateContentConfig{Temperature: genai.Ptr(p.temperature)})
	if err != nil {
		return "", err
	}
	return ParseIntent(result.Text())
}
