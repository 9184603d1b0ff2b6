package router

import (
	"context"
	"strings"

	"careline/common/logger"
	"careline/schema"
)

// orderKeywords suggest an order-status query when no order ID is present.
var orderKeywords = []string{
	"order", "appointment", "lab", "test", "prescription",
	"status", "result", "apt-", "lab-", "rx-",
	"scheduled", "ready", "pickup", "confirmed",
}

// RuleBasedRouter implements deterministic keyword/pattern routing. It is
// a pure, total function: Route never returns an error.
type RuleBasedRouter struct {
	keywords []string
}

// NewRuleBasedRouter creates a rule-based router. Extra keywords extend
// the built-in order-status set.
func NewRuleBasedRouter(extraKeywords []string) *RuleBasedRouter {
	kws := make([]string, 0, len(orderKeywords)+len(extraKeywords))
	kws = append(kws, orderKeywords...)
	for _, kw := range extraKeywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			kws = append(kws, kw)
		}
	}
	return &RuleBasedRouter{keywords: kws}
}

// Route applies the rules in fixed order: an order-ID pattern anywhere in
// the uppercased query wins immediately, then any order keyword in the
// lowercased query, then the FAQ default.
func (r *RuleBasedRouter) Route(_ context.Context, query string) (Decision, error) {
	if schema.OrderIDPattern.MatchString(strings.ToUpper(query)) {
		return Decision{
			Intent:     schema.IntentOrderStatus,
			Confidence: 1.0,
			Reason:     "order id pattern present",
			Source:     "rule",
		}, nil
	}

	queryLower := strings.ToLower(query)
	for _, kw := range r.keywords {
		if strings.Contains(queryLower, kw) {
			return Decision{
				Intent:     schema.IntentOrderStatus,
				Confidence: 0.8,
				Reason:     "order keyword: " + kw,
				Source:     "rule",
			}, nil
		}
	}

	logger.Debugf("router: no order signal in query, defaulting to faq")
	return Decision{
		Intent:     schema.IntentFAQ,
		Confidence: 0.6,
		Reason:     "no order signal, general question default",
		Source:     "rule",
	}, nil
}
