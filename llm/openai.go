package llm

import (
	"context"
	"errors"
	"time"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"

	"careline/config"
	"careline/schema"
)

// OpenAIProvider classifies queries via an OpenAI-compatible chat
// completions endpoint. Azure and other compatible gateways are reached by
// setting base_url.
type OpenAIProvider struct {
	client      openai.Client
	model       string
	temperature float64
	maxTokens   int
	timeout     time.Duration
}

// NewOpenAIProvider builds the provider from validated configuration.
func NewOpenAIProvider(cfg config.LLMConfig) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai: api key is required")
	}
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o"
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 16
	}
	timeout := time.Duration(cfg.TimeoutMs) * time.Millisecond
	if timeout <= 0 {
		timeout = 8 * time.Second
	}

	return &OpenAIProvider{
		client:      openai.NewClient(opts...),
		model:       model,
		temperature: cfg.Temperature,
		maxTokens:   maxTokens,
		timeout:     timeout,
	}, nil
}

func (p *OpenAIProvider) GetProviderType() string { return "openai" }

// Classify sends one best-effort chat completion and parses the label.
func (p *OpenAIProvider) Classify(ctx context.Context, query string) (schema.Intent, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	completion, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(p.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(classifyPrompt),
			openai.UserMessage(buildUserPrompt(query)),
		},
		Temperature: openai.Float(p.temperature),
		MaxTokens:   openai.Int(int64(p.maxTokens)),
	})
	if err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", ErrAmbiguousLabel
	}
	return ParseIntent(completion.Choices[0].Message.Content)
}
