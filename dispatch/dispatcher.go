// Package dispatch wires the intent router to the two stores: one query
// in, one answer out. Routing and lookup failures were absorbed further
// down, so Route always produces an answer.
package dispatch

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"time"

	"careline/cache"
	"careline/common/logger"
	"careline/metrics"
	"careline/router"
	"careline/schema"
	"careline/store"
)

// Result is the outcome of dispatching one query.
type Result struct {
	Intent   schema.Intent
	Answer   string
	Decision router.Decision
	Cached   bool
}

// Dispatcher routes queries to the matching store.
type Dispatcher struct {
	router   router.Router
	fallback *router.RuleBasedRouter
	faqs     *store.FAQStore
	orders   *store.OrderStore

	decisions cache.Cache
	cacheTTL  time.Duration
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithDecisionCache memoizes routing decisions for repeated queries. Only
// the decision is cached; store lookups always run, so answers reflect
// current data even when the intent was cached.
func WithDecisionCache(capacity int, ttl time.Duration) Option {
	return func(d *Dispatcher) {
		d.decisions = cache.NewLRU(capacity, ttl)
		d.cacheTTL = ttl
	}
}

// New creates a dispatcher over the given router and stores.
func New(r router.Router, faqs *store.FAQStore, orders *store.OrderStore, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		router:   r,
		fallback: router.NewRuleBasedRouter(nil),
		faqs:     faqs,
		orders:   orders,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Route classifies the query and invokes the matching store. It never
// fails: a router error (which configured routers do not produce, but the
// interface allows) degrades to the rule-based decision.
func (d *Dispatcher) Route(ctx context.Context, query string) Result {
	decision, cached := d.decide(ctx, query)

	var answer string
	start := time.Now()
	if decision.Intent == schema.IntentOrderStatus {
		answer = d.orders.Search(query)
		metrics.ObserveSearch("order", start)
	} else {
		answer = d.faqs.Search(query)
		metrics.ObserveSearch("faq", start)
	}

	metrics.ObserveDecision(string(decision.Intent), decision.Source)
	logger.Debugf("dispatch: intent=%s source=%s cached=%v", decision.Intent, decision.Source, cached)

	return Result{
		Intent:   decision.Intent,
		Answer:   answer,
		Decision: decision,
		Cached:   cached,
	}
}

func (d *Dispatcher) decide(ctx context.Context, query string) (router.Decision, bool) {
	var key string
	if d.decisions != nil {
		key = decisionKey(query)
		if v, ok := d.decisions.Get(key); ok {
			metrics.ObserveCache("hit")
			return v.(router.Decision), true
		}
		metrics.ObserveCache("miss")
	}

	decision, err := d.router.Route(ctx, query)
	if err != nil || !decision.Intent.Valid() {
		logger.Warnf("dispatch: router failed (%v), using rule-based decision", err)
		decision, _ = d.fallback.Route(ctx, query)
		decision.Fallback = true
	}

	if d.decisions != nil {
		d.decisions.Set(key, decision, d.cacheTTL)
	}
	return decision, false
}

func decisionKey(query string) string {
	sum := sha1.Sum([]byte(query))
	return hex.EncodeToString(sum[:])
}
