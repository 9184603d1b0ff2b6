package llm

import (
	"errors"
	"strings"

	"github.com/tidwall/gjson"

	"careline/schema"
)

// ErrAmbiguousLabel is returned when the delegate's reply does not
// unambiguously indicate either intent. Callers fall back to rule-based
// routing.
var ErrAmbiguousLabel = errors.New("ambiguous intent label")

// ParseIntent interprets a delegate's free-text reply. Models are asked
// for a bare label but in practice return quoted strings, JSON objects or
// short sentences, so parsing is deliberately lenient:
//  1. a JSON object with an "intent" or "label" field wins,
//  2. otherwise the trimmed reply itself is matched as a label,
//  3. otherwise the reply is scanned for exactly one intent mention.
func ParseIntent(raw string) (schema.Intent, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", ErrAmbiguousLabel
	}

	if gjson.Valid(text) {
		for _, field := range []string{"intent", "label"} {
			if v := gjson.Get(text, field); v.Exists() {
				if intent, ok := normalizeLabel(v.String()); ok {
					return intent, nil
				}
			}
		}
	}

	if intent, ok := normalizeLabel(text); ok {
		return intent, nil
	}

	// Substring scan over the whole reply; both present means ambiguous.
	lower := strings.ToLower(text)
	mentionsOrder := strings.Contains(lower, string(schema.IntentOrderStatus))
	mentionsFAQ := strings.Contains(lower, string(schema.IntentFAQ))
	switch {
	case mentionsOrder && !mentionsFAQ:
		return schema.IntentOrderStatus, nil
	case mentionsFAQ && !mentionsOrder:
		return schema.IntentFAQ, nil
	}
	return "", ErrAmbiguousLabel
}

func normalizeLabel(s string) (schema.Intent, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Trim(s, `"'.`+"`")
	switch s {
	case string(schema.IntentOrderStatus), "order status", "order", "orderstatus":
		return schema.IntentOrderStatus, true
	case string(schema.IntentFAQ), "general", "general faq", "faq question":
		return schema.IntentFAQ, true
	}
	return "", false
}
