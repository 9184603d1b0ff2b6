package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careline/config"
	"careline/schema"
)

func classifyServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func fastHTTPConfig() *config.HTTPClientConfig {
	return &config.HTTPClientConfig{TimeoutMs: 500, Retry: 1, BackoffMinMs: 1, BackoffMaxMs: 2}
}

func TestHTTPRouter_ServiceDecides(t *testing.T) {
	srv := classifyServer(t, func(w http.ResponseWriter, r *http.Request) {
		var req classifyRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "What are your hours?", req.Query)
		json.NewEncoder(w).Encode(classifyResponse{Intent: "order_status", Confidence: 0.75, Reason: "upstream says so"})
	})

	r := NewHTTPRouter(srv.URL, fastHTTPConfig(), nil)
	d, err := r.Route(context.Background(), "What are your hours?")
	require.NoError(t, err)
	assert.Equal(t, schema.IntentOrderStatus, d.Intent)
	assert.Equal(t, 0.75, d.Confidence)
	assert.Equal(t, "upstream says so", d.Reason)
	assert.Equal(t, "http", d.Source)
	assert.False(t, d.Fallback)
}

func TestHTTPRouter_DefaultsForMissingFields(t *testing.T) {
	srv := classifyServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(classifyResponse{Intent: "faq"})
	})

	r := NewHTTPRouter(srv.URL, fastHTTPConfig(), nil)
	d, _ := r.Route(context.Background(), "anything")
	assert.Equal(t, schema.IntentFAQ, d.Intent)
	assert.Equal(t, 0.9, d.Confidence)
	assert.Equal(t, "http classify service", d.Reason)
}

func TestHTTPRouter_FallsBackToRules(t *testing.T) {
	query := "Where is my order APT-12345?"

	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"not json", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("plain text"))
		}},
		{"unknown label", func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(classifyResponse{Intent: "refund"})
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := classifyServer(t, tc.handler)
			r := NewHTTPRouter(srv.URL, fastHTTPConfig(), NewRuleBasedRouter(nil))
			d, err := r.Route(context.Background(), query)
			require.NoError(t, err)
			assert.Equal(t, schema.IntentOrderStatus, d.Intent)
			assert.Equal(t, "rule", d.Source)
			assert.True(t, d.Fallback)
		})
	}
}

func TestHTTPRouter_UnreachableEndpointFallsBack(t *testing.T) {
	// Reserve a port and close the listener so nothing is serving there.
	srv := httptest.NewServer(http.NotFoundHandler())
	endpoint := srv.URL
	srv.Close()

	r := NewHTTPRouter(endpoint, fastHTTPConfig(), nil)
	d, err := r.Route(context.Background(), "do you take insurance")
	require.NoError(t, err)
	assert.Equal(t, schema.IntentFAQ, d.Intent)
	assert.True(t, d.Fallback)
}
