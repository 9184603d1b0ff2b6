package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a single configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation error [%s]: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (errs ValidationErrors) Error() string {
	if len(errs) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("found %d configuration error(s):\n", len(errs)))
	for i, err := range errs {
		b.WriteString(fmt.Sprintf("  %d. [%s] %s\n", i+1, err.Field, err.Message))
	}
	return b.String()
}

// Validate validates the complete configuration.
func (c *Config) Validate() error {
	var errs ValidationErrors

	errs = append(errs, c.validateRouter()...)
	errs = append(errs, c.validateData()...)
	errs = append(errs, c.validateSession()...)
	errs = append(errs, c.validateHTTP()...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (c *Config) validateRouter() ValidationErrors {
	var errs ValidationErrors

	switch c.Router.Provider {
	case "", "rule", "llm", "http", "hybrid":
	default:
		errs = append(errs, ValidationError{
			Field:   "router.provider",
			Message: fmt.Sprintf("unknown router provider %q (want rule, llm, http or hybrid)", c.Router.Provider),
		})
	}

	needsLLM := c.Router.Provider == "llm" ||
		(c.Router.Provider == "hybrid" && c.Router.Endpoint == "")
	if needsLLM {
		switch c.Router.LLM.Provider {
		case "openai", "gemini":
			if c.Router.LLM.APIKey == "" {
				errs = append(errs, ValidationError{
					Field:   "router.llm.api_key",
					Message: fmt.Sprintf("api key is required for the %s provider", c.Router.LLM.Provider),
				})
			}
			if c.Router.LLM.Model == "" {
				errs = append(errs, ValidationError{
					Field:   "router.llm.model",
					Message: "model is required when an LLM delegate is configured",
				})
			}
		case "":
			errs = append(errs, ValidationError{
				Field:   "router.llm.provider",
				Message: fmt.Sprintf("llm provider is required for router provider %q", c.Router.Provider),
			})
		default:
			errs = append(errs, ValidationError{
				Field:   "router.llm.provider",
				Message: fmt.Sprintf("unknown llm provider %q (want openai or gemini)", c.Router.LLM.Provider),
			})
		}
		if c.Router.LLM.TimeoutMs < 0 {
			errs = append(errs, ValidationError{
				Field:   "router.llm.timeout_ms",
				Message: fmt.Sprintf("timeout must be non-negative, got %d", c.Router.LLM.TimeoutMs),
			})
		}
	}

	if c.Router.Provider == "http" && c.Router.Endpoint == "" {
		errs = append(errs, ValidationError{
			Field:   "router.endpoint",
			Message: "endpoint is required for the http router provider",
		})
	}

	return errs
}

func (c *Config) validateData() ValidationErrors {
	var errs ValidationErrors

	if c.Data.FAQPath == "" {
		errs = append(errs, ValidationError{
			Field:   "data.faq_path",
			Message: "faq dataset path is required",
		})
	}

	switch c.Data.OrderProvider {
	case "", "json":
		if c.Data.OrderPath == "" {
			errs = append(errs, ValidationError{
				Field:   "data.order_path",
				Message: "order dataset path is required for the json provider",
			})
		}
	case "sqlite":
		if c.Data.OrderDatabase == "" {
			errs = append(errs, ValidationError{
				Field:   "data.order_database",
				Message: "database path is required for the sqlite provider",
			})
		}
	default:
		errs = append(errs, ValidationError{
			Field:   "data.order_provider",
			Message: fmt.Sprintf("unknown order provider %q (want json or sqlite)", c.Data.OrderProvider),
		})
	}

	return errs
}

func (c *Config) validateSession() ValidationErrors {
	var errs ValidationErrors
	if c.Session == nil {
		return errs
	}

	switch c.Session.Store {
	case "", "inmemory":
	case "redis":
		if c.Session.Redis.Addr == "" {
			errs = append(errs, ValidationError{
				Field:   "session.redis.addr",
				Message: "redis address is required for the redis session store",
			})
		}
	default:
		errs = append(errs, ValidationError{
			Field:   "session.store",
			Message: fmt.Sprintf("unknown session store %q (want inmemory or redis)", c.Session.Store),
		})
	}

	if c.Session.TTLSeconds < 0 {
		errs = append(errs, ValidationError{
			Field:   "session.ttl_seconds",
			Message: fmt.Sprintf("ttl must be non-negative, got %d", c.Session.TTLSeconds),
		})
	}

	return errs
}

func (c *Config) validateHTTP() ValidationErrors {
	var errs ValidationErrors
	if c.HTTP == nil {
		return errs
	}

	if c.HTTP.TimeoutMs < 0 {
		errs = append(errs, ValidationError{
			Field:   "http.timeout_ms",
			Message: fmt.Sprintf("timeout must be non-negative, got %d", c.HTTP.TimeoutMs),
		})
	}
	if c.HTTP.Retry < 0 {
		errs = append(errs, ValidationError{
			Field:   "http.retry",
			Message: fmt.Sprintf("retry must be non-negative, got %d", c.HTTP.Retry),
		})
	}
	if c.HTTP.BackoffMinMs > 0 && c.HTTP.BackoffMaxMs > 0 && c.HTTP.BackoffMaxMs < c.HTTP.BackoffMinMs {
		errs = append(errs, ValidationError{
			Field: "http.backoff_max_ms",
			Message: fmt.Sprintf("backoff_max_ms (%d) must not be less than backoff_min_ms (%d)",
				c.HTTP.BackoffMaxMs, c.HTTP.BackoffMinMs),
		})
	}

	return errs
}
