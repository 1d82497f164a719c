package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is returned by ValidateConfig when one or more fields are invalid
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, ve := range e {
		msgs[i] = ve.Error()
	}
	return strings.Join(msgs, "\n")
}

var validLogLevels = map[string]bool{
	"debug":   true,
	"info":    true,
	"warn":    true,
	"warning": true,
	"error":   true,
}

// ValidateConfig checks the configuration for values the server cannot start with
func ValidateConfig(cfg *Config) error {
	var errs ValidationErrors

	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port < 1 || port > 65535 {
		errs = append(errs, ValidationError{Field: "SERVER_PORT", Message: fmt.Sprintf("invalid port %q", cfg.ServerPort)})
	}

	switch cfg.LLMProvider {
	case ProviderOpenAI:
		if cfg.OpenAIURL == "" {
			errs = append(errs, ValidationError{Field: "OPENAI_API_URL", Message: "must not be empty"})
		}
		if cfg.OpenAIModel == "" {
			errs = append(errs, ValidationError{Field: "OPENAI_MODEL", Message: "must not be empty"})
		}
	case ProviderGemini:
		if cfg.GeminiModel == "" {
			errs = append(errs, ValidationError{Field: "GEMINI_MODEL", Message: "must not be empty"})
		}
	default:
		errs = append(errs, ValidationError{Field: "LLM_PROVIDER", Message: fmt.Sprintf("unsupported provider %q", cfg.LLMProvider)})
	}

	if cfg.UpstreamTimeout <= 0 {
		errs = append(errs, ValidationError{Field: "UPSTREAM_TIMEOUT", Message: "must be positive"})
	}
	if cfg.ShutdownTimeout <= 0 {
		errs = append(errs, ValidationError{Field: "SHUTDOWN_TIMEOUT", Message: "must be positive"})
	}

	if cfg.RateLimit < 0 {
		errs = append(errs, ValidationError{Field: "RATE_LIMIT", Message: "must not be negative"})
	}
	if cfg.RateLimit > 0 && cfg.RateLimitBurst < 1 {
		errs = append(errs, ValidationError{Field: "RATE_LIMIT_BURST", Message: "must be at least 1 when RATE_LIMIT is set"})
	}
	if cfg.RedisURL != "" && cfg.RecipeLimitPerHour < 1 {
		errs = append(errs, ValidationError{Field: "RECIPE_LIMIT_PER_HOUR", Message: "must be at least 1 when REDIS_URL is set"})
	}

	if !validLogLevels[strings.ToLower(cfg.LogLevel)] {
		errs = append(errs, ValidationError{Field: "LOG_LEVEL", Message: fmt.Sprintf("unknown level %q", cfg.LogLevel)})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
