package router

import (
	"context"
	"time"

	"careline/common/logger"
	"careline/llm"
	"careline/metrics"
)

// LLMRouter delegates the intent decision to an external language-model
// classifier. One best-effort call is made per query; any error, timeout
// or ambiguous reply falls back to the rule-based decision, so Route
// never returns an error.
type LLMRouter struct {
	provider llm.Provider
	fallback *RuleBasedRouter
}

// NewLLMRouter creates a delegate-backed router with rule fallback.
func NewLLMRouter(provider llm.Provider, fallback *RuleBasedRouter) *LLMRouter {
	if fallback == nil {
		fallback = NewRuleBasedRouter(nil)
	}
	return &LLMRouter{provider: provider, fallback: fallback}
}

// Route asks the delegate for a label and falls back to rules on failure.
func (r *LLMRouter) Route(ctx context.Context, query string) (Decision, error) {
	if r.provider == nil {
		return r.fallbackDecision(ctx, query, "no_provider")
	}

	start := time.Now()
	intent, err := r.provider.Classify(ctx, query)
	metrics.ObserveDelegate(start)
	if err != nil {
		logger.Warnf("router: delegate %s failed: %v", r.provider.GetProviderType(), err)
		return r.fallbackDecision(ctx, query, "delegate_error")
	}

	return Decision{
		Intent:     intent,
		Confidence: 0.9,
		Reason:     "delegate classification",
		Source:     r.provider.GetProviderType(),
	}, nil
}

func (r *LLMRouter) fallbackDecision(ctx context.Context, query, reason string) (Decision, error) {
	metrics.ObserveFallback(reason)
	decision, _ := r.fallback.Route(ctx, query)
	decision.Fallback = true
	return decision, nil
}
