package service

import (
	"fmt"

	"github.com/pageza/repas/backend/config"
)

// NewGenerator builds the Generator selected by cfg.LLMProvider. No
// credential is read here.
func NewGenerator(cfg *config.Config) (Generator, error) {
	switch cfg.LLMProvider {
	case config.ProviderOpenAI, "":
		return NewOpenAIGenerator(cfg.OpenAIURL, cfg.OpenAIModel, cfg.UpstreamTimeout), nil
	case config.ProviderGemini:
		return NewGeminiGenerator(cfg.GeminiModel, cfg.UpstreamTimeout), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider %q", cfg.LLMProvider)
	}
}
