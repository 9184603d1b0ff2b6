// Package router decides which store handles a query. The rule-based
// router is a pure function over the query text; the llm and http routers
// delegate the decision to an external classifier and fall back to the
// rules on any failure, so routing as a whole never fails.
package router

import (
	"context"

	"careline/schema"
)

// Decision is the outcome of routing a single query.
type Decision struct {
	Intent     schema.Intent `json:"intent"`
	Confidence float64       `json:"confidence"`         // [0, 1]
	Reason     string        `json:"reason,omitempty"`   // human-readable
	Source     string        `json:"source"`             // rule, openai, gemini, http
	Fallback   bool          `json:"fallback,omitempty"` // delegate failed, rules decided
}

// Router determines the intent for a given query.
type Router interface {
	Route(ctx context.Context, query string) (Decision, error)
}

// HybridRouter tries a primary router and falls back to a secondary one.
type HybridRouter struct {
	Primary  Router
	Fallback Router
}

// NewHybridRouter creates a hybrid router. A nil fallback defaults to the
// rule-based router.
func NewHybridRouter(primary, fallback Router) *HybridRouter {
	if fallback == nil {
		fallback = NewRuleBasedRouter(nil)
	}
	return &HybridRouter{Primary: primary, Fallback: fallback}
}

// Route tries the primary router and uses the fallback on failure.
func (r *HybridRouter) Route(ctx context.Context, query string) (Decision, error) {
	if r.Primary != nil {
		decision, err := r.Primary.Route(ctx, query)
		if err == nil && decision.Intent.Valid() {
			return decision, nil
		}
	}
	if r.Fallback != nil {
		return r.Fallback.Route(ctx, query)
	}
	// Ultimate fallback: treat as a general question.
	return Decision{
		Intent:     schema.IntentFAQ,
		Confidence: 0.5,
		Reason:     "all routers unavailable, defaulting to faq",
		Source:     "default",
		Fallback:   true,
	}, nil
}
