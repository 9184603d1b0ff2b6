package router

import (
	"context"
	"fmt"

	"careline/config"
	"careline/llm"
)

// New builds a router from configuration. The rule-based router needs no
// collaborators; llm and http providers wrap it as the fallback. For the
// hybrid provider the endpoint wins when both an endpoint and an LLM
// delegate are configured.
func New(ctx context.Context, cfg *config.Config) (Router, error) {
	if cfg == nil {
		return NewRuleBasedRouter(nil), nil
	}

	rules := NewRuleBasedRouter(cfg.Router.ExtraKeywords)

	switch cfg.Router.Provider {
	case "", "rule":
		return rules, nil

	case "llm":
		provider, err := llm.NewProvider(ctx, cfg.Router.LLM)
		if err != nil {
			return nil, fmt.Errorf("build llm delegate: %w", err)
		}
		return NewLLMRouter(provider, rules), nil

	case "http":
		return NewHTTPRouter(cfg.Router.Endpoint, cfg.HTTP, rules), nil

	case "hybrid":
		var primary Router
		if cfg.Router.Endpoint != "" {
			primary = NewHTTPRouter(cfg.Router.Endpoint, cfg.HTTP, rules)
		} else {
			provider, err := llm.NewProvider(ctx, cfg.Router.LLM)
			if err != nil {
				return nil, fmt.Errorf("build llm delegate: %w", err)
			}
			primary = NewLLMRouter(provider, rules)
		}
		return NewHybridRouter(primary, rules), nil

	default:
		return nil, fmt.Errorf("unknown router provider %q", cfg.Router.Provider)
	}
}
