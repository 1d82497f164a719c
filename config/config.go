package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Provider names accepted in LLM_PROVIDER
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Config holds all configuration for the application. The upstream API
// credential is not part of it: it is read from the environment each time a
// recipe is requested.
type Config struct {
	// Server configuration
	ServerHost      string
	ServerPort      string
	ShutdownTimeout time.Duration

	// Text-generation upstream
	LLMProvider     string
	OpenAIURL       string
	OpenAIModel     string
	GeminiModel     string
	UpstreamTimeout time.Duration

	// CORS
	CORSAllowOrigins []string

	// Rate limiting. RateLimit is in requests per second for the in-process
	// limiter, zero disables it. RedisURL enables the shared hourly limiter.
	RateLimit          float64
	RateLimitBurst     int
	RedisURL           string
	RecipeLimitPerHour int

	// Logging
	LogLevel string
}

// Address returns the host:port the HTTP server listens on
func (c *Config) Address() string {
	return c.ServerHost + ":" + c.ServerPort
}

// LoadConfig creates a new Config from environment variables, an optional
// .env file and, in production, Docker secrets.
func LoadConfig() (*Config, error) {
	env := GetEnvironment()

	if env != Production {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	r := &envReader{}
	cfg := &Config{
		ServerHost:         r.str("SERVER_HOST", ""),
		ServerPort:         r.str("SERVER_PORT", "8000"),
		ShutdownTimeout:    r.duration("SHUTDOWN_TIMEOUT", 10*time.Second),
		LLMProvider:        strings.ToLower(r.str("LLM_PROVIDER", ProviderOpenAI)),
		OpenAIURL:          strings.TrimRight(r.str("OPENAI_API_URL", "https://api.openai.com/v1"), "/"),
		OpenAIModel:        r.str("OPENAI_MODEL", "gpt-4"),
		GeminiModel:        r.str("GEMINI_MODEL", "gemini-1.5-flash"),
		UpstreamTimeout:    r.duration("UPSTREAM_TIMEOUT", 60*time.Second),
		CORSAllowOrigins:   r.list("CORS_ALLOW_ORIGINS", []string{"*"}),
		RateLimit:          r.float("RATE_LIMIT", 5),
		RateLimitBurst:     r.int("RATE_LIMIT_BURST", 10),
		RedisURL:           r.str("REDIS_URL", ""),
		RecipeLimitPerHour: r.int("RECIPE_LIMIT_PER_HOUR", 60),
		LogLevel:           r.str("LOG_LEVEL", "info"),
	}

	if env == Production && cfg.RedisURL == "" {
		cfg.RedisURL = readSecret("redis_url")
	}

	if len(r.errs) > 0 {
		return nil, fmt.Errorf("failed to parse configuration:\n%s", strings.Join(r.errs, "\n"))
	}

	// Validate the configuration
	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	slog.Debug("configuration loaded",
		"environment", env,
		"address", cfg.Address(),
		"provider", cfg.LLMProvider,
		"sharedRateLimit", cfg.RedisURL != "",
	)
	return cfg, nil
}

// envReader reads typed values from the environment and collects parse
// errors instead of failing on the first one.
type envReader struct {
	errs []string
}

func (r *envReader) str(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func (r *envReader) int(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.errs = append(r.errs, fmt.Sprintf("%s: invalid integer %q", key, v))
		return def
	}
	return n
}

func (r *envReader) float(key string, def float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		r.errs = append(r.errs, fmt.Sprintf("%s: invalid number %q", key, v))
		return def
	}
	return f
}

func (r *envReader) duration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		r.errs = append(r.errs, fmt.Sprintf("%s: invalid duration %q", key, v))
		return def
	}
	return d
}

func (r *envReader) list(key string, def []string) []string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
