package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"careline/common/httpx"
	"careline/common/logger"
	"careline/config"
	"careline/llm"
	"careline/metrics"
)

// HTTPRouter delegates the intent decision to an external HTTP classify
// service. Any transport or protocol failure falls back to the rule-based
// decision, so Route never returns an error.
type HTTPRouter struct {
	endpoint string
	client   *httpx.Client
	fallback *RuleBasedRouter
}

// NewHTTPRouter creates an HTTP-delegating router with rule fallback.
func NewHTTPRouter(endpoint string, httpCfg *config.HTTPClientConfig, fallback *RuleBasedRouter) *HTTPRouter {
	if fallback == nil {
		fallback = NewRuleBasedRouter(nil)
	}
	return &HTTPRouter{
		endpoint: endpoint,
		client:   httpx.NewFromConfig(httpCfg),
		fallback: fallback,
	}
}

type classifyRequest struct {
	Query string `json:"query"`
}

type classifyResponse struct {
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence,omitempty"`
	Reason     string  `json:"reason,omitempty"`
}

// Route posts the query to the classify service and falls back to rules
// on any failure or unknown label.
func (r *HTTPRouter) Route(ctx context.Context, query string) (Decision, error) {
	body, _ := json.Marshal(classifyRequest{Query: query})

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		logger.Warnf("router: failed to create classify request: %v", err)
		return r.fallbackDecision(ctx, query, "request_build")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(httpReq)
	if err != nil {
		logger.Warnf("router: classify request failed: %v", err)
		return r.fallbackDecision(ctx, query, "transport_error")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Warnf("router: classify service returned status %d", resp.StatusCode)
		return r.fallbackDecision(ctx, query, "bad_status")
	}

	var cr classifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		logger.Warnf("router: failed to decode classify response: %v", err)
		return r.fallbackDecision(ctx, query, "decode_error")
	}

	intent, err := llm.ParseIntent(cr.Intent)
	if err != nil {
		logger.Warnf("router: classify service returned unknown label %q", cr.Intent)
		return r.fallbackDecision(ctx, query, "unknown_label")
	}

	confidence := cr.Confidence
	if confidence <= 0 || confidence > 1 {
		confidence = 0.9
	}
	reason := cr.Reason
	if reason == "" {
		reason = "http classify service"
	}
	return Decision{
		Intent:     intent,
		Confidence: confidence,
		Reason:     reason,
		Source:     "http",
	}, nil
}

func (r *HTTPRouter) fallbackDecision(ctx context.Context, query, reason string) (Decision, error) {
	metrics.ObserveFallback(reason)
	decision, _ := r.fallback.Route(ctx, query)
	decision.Fallback = true
	return decision, nil
}
