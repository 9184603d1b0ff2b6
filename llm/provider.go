// Package llm implements the delegated text-classification capability:
// given a query and the two-intent taxonomy, a provider returns one of the
// two labels or an error. Callers treat every failure as non-fatal and
// fall back to rule-based routing.
package llm

import (
	"context"
	"fmt"

	"careline/config"
	"careline/schema"
)

// Provider classifies a query into one of the two intents.
type Provider interface {
	Classify(ctx context.Context, query string) (schema.Intent, error)
	GetProviderType() string
}

// classifyPrompt describes the taxonomy. Keeping the reply to a single
// bare label makes the response cheap to parse and hard to get wrong.
const classifyPrompt = `You are an intent classifier for a healthcare clinic's customer service bot.
Classify the user's query into exactly one of two intents:
- "order_status": the user asks about a specific appointment, lab test or prescription order, its status, or mentions an order ID such as APT-12345, LAB-67890 or RX-11223.
- "faq": any general question about the clinic (hours, insurance, location, services, policies).
Reply with ONLY the intent label, nothing else.`

// buildUserPrompt renders the query for the delegate.
func buildUserPrompt(query string) string {
	return fmt.Sprintf("Query: %s", query)
}

// NewProvider builds the configured delegate. The config has already been
// validated, so unknown providers only occur on programmer error.
func NewProvider(ctx context.Context, cfg config.LLMConfig) (Provider, error) {
	switch cfg.Provider {
	case "openai":
		return NewOpenAIProvider(cfg)
	case "gemini":
		return NewGeminiProvider(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}
