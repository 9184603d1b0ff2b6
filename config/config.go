package config

// Config is the root configuration for the careline service.
type Config struct {
	Router  RouterConfig      `json:"router" yaml:"router"`
	Data    DataConfig        `json:"data" yaml:"data"`
	Session *SessionConfig    `json:"session,omitempty" yaml:"session,omitempty"`
	HTTP    *HTTPClientConfig `json:"http,omitempty" yaml:"http,omitempty"`
	Cache   CacheConfig       `json:"cache,omitempty" yaml:"cache,omitempty"`
	// LogLevel selects the minimum log level: debug, info, warn, error.
	LogLevel string `json:"log_level,omitempty" yaml:"log_level,omitempty"`
}

// RouterConfig selects how intent decisions are made.
type RouterConfig struct {
	// Provider is one of: rule, llm, http, hybrid.
	// rule   - deterministic keyword/pattern routing, no external calls
	// llm    - delegate to an LLM classifier, rule fallback on failure
	// http   - delegate to an external HTTP classify service, rule fallback
	// hybrid - llm or http primary (whichever is configured), rule fallback
	Provider string `json:"provider" yaml:"provider"`
	// Endpoint of the external classify service (http/hybrid providers).
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`
	// ExtraKeywords extend the built-in order-status keyword set.
	ExtraKeywords []string  `json:"extra_keywords,omitempty" yaml:"extra_keywords,omitempty"`
	LLM           LLMConfig `json:"llm,omitempty" yaml:"llm,omitempty"`
}

// LLMConfig defines the delegated text-classification collaborator.
type LLMConfig struct {
	// Provider is one of: openai, gemini. Empty disables the delegate.
	Provider    string  `json:"provider,omitempty" yaml:"provider,omitempty"`
	APIKey      string  `json:"api_key,omitempty" yaml:"api_key,omitempty"`
	BaseURL     string  `json:"base_url,omitempty" yaml:"base_url,omitempty"`
	Model       string  `json:"model,omitempty" yaml:"model,omitempty"`
	Temperature float64 `json:"temperature,omitempty" yaml:"temperature,omitempty"`
	MaxTokens   int     `json:"max_tokens,omitempty" yaml:"max_tokens,omitempty"`
	TimeoutMs   int     `json:"timeout_ms,omitempty" yaml:"timeout_ms,omitempty"`
}

// DataConfig locates the read-only datasets backing the stores.
type DataConfig struct {
	FAQPath   string `json:"faq_path" yaml:"faq_path"`
	OrderPath string `json:"order_path" yaml:"order_path"`
	// OrderProvider is one of: json (default), sqlite.
	OrderProvider string `json:"order_provider,omitempty" yaml:"order_provider,omitempty"`
	// OrderDatabase is the SQLite database path for the sqlite provider.
	OrderDatabase string `json:"order_database,omitempty" yaml:"order_database,omitempty"`
}

// SessionConfig controls chat transcript storage.
type SessionConfig struct {
	// Store is one of: inmemory (default), redis.
	Store      string      `json:"store,omitempty" yaml:"store,omitempty"`
	TTLSeconds int         `json:"ttl_seconds,omitempty" yaml:"ttl_seconds,omitempty"`
	Redis      RedisConfig `json:"redis,omitempty" yaml:"redis,omitempty"`
}

// RedisConfig holds connection settings for the Redis session store.
type RedisConfig struct {
	Addr     string `json:"addr,omitempty" yaml:"addr,omitempty"`
	Username string `json:"username,omitempty" yaml:"username,omitempty"`
	Password string `json:"password,omitempty" yaml:"password,omitempty"`
	DB       int    `json:"db,omitempty" yaml:"db,omitempty"`
}

// CacheConfig controls the routing decision cache.
type CacheConfig struct {
	Enable     bool `json:"enable,omitempty" yaml:"enable,omitempty"`
	Capacity   int  `json:"capacity,omitempty" yaml:"capacity,omitempty"`
	TTLSeconds int  `json:"ttl_seconds,omitempty" yaml:"ttl_seconds,omitempty"`
}

// HTTPClientConfig tunes outbound HTTP calls (classify service).
type HTTPClientConfig struct {
	TimeoutMs              int      `json:"timeout_ms,omitempty" yaml:"timeout_ms,omitempty"`
	Retry                  int      `json:"retry,omitempty" yaml:"retry,omitempty"`
	BackoffMinMs           int      `json:"backoff_min_ms,omitempty" yaml:"backoff_min_ms,omitempty"`
	BackoffMaxMs           int      `json:"backoff_max_ms,omitempty" yaml:"backoff_max_ms,omitempty"`
	HostAllowlist          []string `json:"host_allowlist,omitempty" yaml:"host_allowlist,omitempty"`
	MaxConsecutiveFailures int      `json:"max_consecutive_failures,omitempty" yaml:"max_consecutive_failures,omitempty"`
	CircuitOpenSeconds     int      `json:"circuit_open_seconds,omitempty" yaml:"circuit_open_seconds,omitempty"`
}

// Default returns the baseline configuration: rule-based routing over the
// bundled JSON datasets, in-memory sessions, decision cache disabled.
func Default() *Config {
	return &Config{
		Router: RouterConfig{
			Provider: "rule",
			LLM: LLMConfig{
				Model:       "gpt-4o",
				Temperature: 0,
				MaxTokens:   16,
				TimeoutMs:   8000,
			},
		},
		Data: DataConfig{
			FAQPath:       "data/faq_data.json",
			OrderPath:     "data/order_data.json",
			OrderProvider: "json",
		},
		Cache: CacheConfig{
			Enable:     false,
			Capacity:   512,
			TTLSeconds: 60,
		},
		LogLevel: "info",
	}
}
