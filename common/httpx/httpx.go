// Package httpx wraps net/http with the outbound-call policy used for the
// external classify service: bounded timeout, limited retry with jittered
// backoff, an optional host allowlist and a coarse circuit breaker.
package httpx

import (
	"crypto/tls"
	"errors"
	"math/rand"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"careline/common/logger"
	"careline/config"
)

var (
	// ErrCircuitOpen is returned while the breaker is open after repeated
	// consecutive failures.
	ErrCircuitOpen = errors.New("circuit open")
	// ErrHostNotAllowed is returned when the target host is not on the
	// configured allowlist.
	ErrHostNotAllowed = errors.New("host not allowed")
)

// Options holds the resolved client policy.
type Options struct {
	Timeout            time.Duration
	Retry              int
	BackoffMin         time.Duration
	BackoffMax         time.Duration
	HostAllowlist      []string
	MaxConsecutiveFail int
	CircuitOpen        time.Duration
}

// Client is a policy-enforcing HTTP client. The zero value is not usable;
// construct via NewFromConfig.
type Client struct {
	hc        *http.Client
	opt       Options
	fail      int32 // consecutive failures
	openUntil int64 // unix nanos until which the circuit stays open
}

// NewFromConfig builds a client from configuration, substituting defaults
// for any unset field. A nil config yields the default policy.
func NewFromConfig(cfg *config.HTTPClientConfig) *Client {
	to := 1200 * time.Millisecond
	if cfg != nil && cfg.TimeoutMs > 0 {
		to = time.Duration(cfg.TimeoutMs) * time.Millisecond
	}
	retry := 1
	if cfg != nil && cfg.Retry > 0 {
		retry = cfg.Retry
	}
	bmin := 100 * time.Millisecond
	if cfg != nil && cfg.BackoffMinMs > 0 {
		bmin = time.Duration(cfg.BackoffMinMs) * time.Millisecond
	}
	bmax := 800 * time.Millisecond
	if cfg != nil && cfg.BackoffMaxMs > 0 {
		bmax = time.Duration(cfg.BackoffMaxMs) * time.Millisecond
	}
	mcf := 5
	if cfg != nil && cfg.MaxConsecutiveFailures > 0 {
		mcf = cfg.MaxConsecutiveFailures
	}
	cop := 5 * time.Second
	if cfg != nil && cfg.CircuitOpenSeconds > 0 {
		cop = time.Duration(cfg.CircuitOpenSeconds) * time.Second
	}

	var allow []string
	if cfg != nil {
		allow = cfg.HostAllowlist
	}

	transport := &http.Transport{
		DialContext:     (&net.Dialer{Timeout: to}).DialContext,
		TLSClientConfig: &tls.Config{MinVersion: tls.VersionTLS12},
		MaxIdleConns:    100,
		IdleConnTimeout: 30 * time.Second,
	}
	return &Client{
		hc: &http.Client{Timeout: to, Transport: transport},
		opt: Options{
			Timeout:            to,
			Retry:              retry,
			BackoffMin:         bmin,
			BackoffMax:         bmax,
			HostAllowlist:      allow,
			MaxConsecutiveFail: mcf,
			CircuitOpen:        cop,
		},
	}
}

// Do issues the request under the configured policy. Responses with a
// status below 500 count as success for breaker purposes; the caller still
// inspects the status code.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	if !c.allowed(req.URL.String()) {
		logger.Warnf("httpx: blocked outbound host: %s", req.URL.String())
		return nil, ErrHostNotAllowed
	}
	if atomic.LoadInt64(&c.openUntil) > time.Now().UnixNano() {
		return nil, ErrCircuitOpen
	}

	var resp *http.Response
	var err error
	for i := 0; i <= c.opt.Retry; i++ {
		if i > 0 && req.GetBody != nil {
			if body, berr := req.GetBody(); berr == nil {
				req.Body = body
			}
		}
		resp, err = c.hc.Do(req)
		if err == nil && resp != nil && resp.StatusCode >= 200 && resp.StatusCode < 500 {
			atomic.StoreInt32(&c.fail, 0)
			return resp, nil
		}
		if resp != nil && resp.Body != nil {
			_ = resp.Body.Close()
		}
		logger.Warnf("httpx: request failed (try %d/%d) to %s: %v", i+1, c.opt.Retry+1, req.URL.String(), err)
		if i < c.opt.Retry {
			time.Sleep(backoffJitter(c.opt.BackoffMin, c.opt.BackoffMax))
		}
	}

	if atomic.AddInt32(&c.fail, 1) >= int32(c.opt.MaxConsecutiveFail) {
		atomic.StoreInt64(&c.openUntil, time.Now().Add(c.opt.CircuitOpen).UnixNano())
		atomic.StoreInt32(&c.fail, 0)
		logger.Warnf("httpx: circuit opened for %v", c.opt.CircuitOpen)
	}
	return resp, err
}

func (c *Client) allowed(u string) bool {
	if len(c.opt.HostAllowlist) == 0 {
		return true
	}
	pu, err := url.Parse(u)
	if err != nil {
		return false
	}
	host := pu.Hostname()
	for _, h := range c.opt.HostAllowlist {
		if matchHost(h, host) {
			return true
		}
	}
	return false
}

func matchHost(pattern, host string) bool {
	if pattern == "*" {
		return true
	}
	if strings.EqualFold(pattern, host) {
		return true
	}
	if strings.HasPrefix(pattern, "*.") {
		suf := strings.TrimPrefix(pattern, "*.")
		return strings.HasSuffix(host, "."+suf) || host == suf
	}
	return false
}

func backoffJitter(min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	return min + time.Duration(rand.Int63n(int64(max-min)))
}
