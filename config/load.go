package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables recognized as overrides for secrets so API keys
// never have to live in the config file.
const (
	EnvAPIKey    = "CARELINE_API_KEY"
	EnvOpenAIKey = "OPENAI_API_KEY"
	EnvGeminiKey = "GEMINI_API_KEY"
	EnvRedisAddr = "CARELINE_REDIS_ADDR"
)

// Load reads the configuration file at path, layered over Default().
// YAML and JSON files are both accepted. An empty path yields the
// defaults with environment overrides applied.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".json":
			if err := json.Unmarshal(raw, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		default:
			if err := yaml.Unmarshal(raw, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if cfg.Router.LLM.APIKey == "" {
		if v := os.Getenv(EnvAPIKey); v != "" {
			cfg.Router.LLM.APIKey = v
		}
	}
	if cfg.Router.LLM.APIKey == "" {
		switch cfg.Router.LLM.Provider {
		case "openai":
			cfg.Router.LLM.APIKey = os.Getenv(EnvOpenAIKey)
		case "gemini":
			cfg.Router.LLM.APIKey = os.Getenv(EnvGeminiKey)
		}
	}
	if cfg.Session != nil && cfg.Session.Redis.Addr == "" {
		cfg.Session.Redis.Addr = os.Getenv(EnvRedisAddr)
	}
}
