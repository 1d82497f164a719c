package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	apperrors "github.com/pageza/repas/backend/internal/errors"
)

// GeminiGenerator calls Google Gemini through the generative-ai-go SDK
type GeminiGenerator struct {
	model   string
	keyEnv  string
	timeout time.Duration
	opts    []option.ClientOption
}

// NewGeminiGenerator creates a generator for the given Gemini model. Extra
// client options are appended after the API key.
func NewGeminiGenerator(model string, timeout time.Duration, opts ...option.ClientOption) *GeminiGenerator {
	return &GeminiGenerator{
		model:   model,
		keyEnv:  GeminiKeyEnv,
		timeout: timeout,
		opts:    opts,
	}
}

// Generate sends the system instruction and user prompt as one request
func (g *GeminiGenerator) Generate(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error) {
	apiKey, err := resolveAPIKey(g.keyEnv)
	if err != nil {
		return "", err
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	opts := append([]option.ClientOption{option.WithAPIKey(apiKey)}, g.opts...)
	cl, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrCodeGenerationFailed, "failed to create gemini client", err)
	}
	defer cl.Close()

	m := cl.GenerativeModel(g.model)
	m.SetMaxOutputTokens(int32(maxTokens))
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}

	resp, err := m.GenerateContent(ctx, genai.Text(userPrompt))
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrCodeGenerationFailed, "gemini request failed", err)
	}

	txt := firstText(resp)
	if txt == "" {
		return "", apperrors.New(apperrors.ErrCodeGenerationFailed, "gemini returned no text")
	}
	return txt, nil
}

// firstText concatenates the text parts of the first candidate that has any
func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var b strings.Builder
	for _, c := range resp.Candidates {
		if c == nil || c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				b.WriteString(string(t))
			}
		}
		if b.Len() > 0 {
			break
		}
	}
	return b.String()
}
