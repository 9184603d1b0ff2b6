package httpx

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careline/config"
)

func TestNewFromConfig_Defaults(t *testing.T) {
	c := NewFromConfig(nil)
	assert.Equal(t, 1200*time.Millisecond, c.opt.Timeout)
	assert.Equal(t, 1, c.opt.Retry)
	assert.Equal(t, 5, c.opt.MaxConsecutiveFail)
	assert.Equal(t, 5*time.Second, c.opt.CircuitOpen)
}

func TestClient_RetriesOnServerError(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, "payload", string(body))
		if atomic.AddInt32(&hits, 1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewFromConfig(&config.HTTPClientConfig{Retry: 2, BackoffMinMs: 1, BackoffMaxMs: 2})
	req, err := http.NewRequest(http.MethodPost, srv.URL, bytes.NewReader([]byte("payload")))
	require.NoError(t, err)

	resp, err := c.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}

func TestClient_ClientErrorIsNotRetried(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewFromConfig(&config.HTTPClientConfig{Retry: 3, BackoffMinMs: 1, BackoffMaxMs: 2})
	req, _ := http.NewRequest(http.MethodGet, srv.URL, nil)

	resp, err := c.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestClient_HostAllowlist(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewFromConfig(&config.HTTPClientConfig{HostAllowlist: []string{"classify.internal"}})
	req, _ := http.NewRequest(http.MethodGet, srv.URL, nil)
	_, err := c.Do(req)
	assert.ErrorIs(t, err, ErrHostNotAllowed)

	open := NewFromConfig(&config.HTTPClientConfig{HostAllowlist: []string{"*"}})
	resp, err := open.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
}

func TestClient_CircuitOpensAfterConsecutiveFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewFromConfig(&config.HTTPClientConfig{
		Retry:                  0,
		BackoffMinMs:           1,
		BackoffMaxMs:           2,
		MaxConsecutiveFailures: 2,
		CircuitOpenSeconds:     60,
	})

	for i := 0; i < 2; i++ {
		req, _ := http.NewRequest(http.MethodGet, srv.URL, nil)
		resp, err := c.Do(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	}

	req, _ := http.NewRequest(http.MethodGet, srv.URL, nil)
	_, err := c.Do(req)
	assert.ErrorIs(t, err, ErrCircuitOpen)
}

func TestMatchHost(t *testing.T) {
	assert.True(t, matchHost("*", "anything.example.com"))
	assert.True(t, matchHost("api.example.com", "API.example.com"))
	assert.True(t, matchHost("*.example.com", "api.example.com"))
	assert.True(t, matchHost("*.example.com", "example.com"))
	assert.False(t, matchHost("*.example.com", "example.org"))
	assert.False(t, matchHost("api.example.com", "api.example.org"))
}

func TestBackoffJitter(t *testing.T) {
	min, max := 10*time.Millisecond, 50*time.Millisecond
	for i := 0; i < 20; i++ {
		d := backoffJitter(min, max)
		assert.GreaterOrEqual(t, d, min)
		assert.Less(t, d, max)
	}
	assert.Equal(t, min, backoffJitter(min, min))
}
