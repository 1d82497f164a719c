package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	apperrors "github.com/pageza/repas/backend/internal/errors"
)

// Message represents a message in the chat
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest represents a request to an OpenAI-compatible chat completions API
type ChatRequest struct {
	Model     string    `json:"model"`
	Messages  []Message `json:"messages"`
	MaxTokens int       `json:"max_tokens,omitempty"`
}

// ChatResponse is the subset of the chat completions reply we read
type ChatResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// OpenAIGenerator calls an OpenAI-compatible chat completions endpoint
type OpenAIGenerator struct {
	apiURL string
	model  string
	keyEnv string
	client *http.Client
}

// NewOpenAIGenerator creates a generator posting to apiURL + "/chat/completions"
func NewOpenAIGenerator(apiURL, model string, timeout time.Duration) *OpenAIGenerator {
	return &OpenAIGenerator{
		apiURL: apiURL,
		model:  model,
		keyEnv: OpenAIKeyEnv,
		client: &http.Client{Timeout: timeout},
	}
}

// Generate sends a system + user conversation and returns the first choice
func (g *OpenAIGenerator) Generate(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error) {
	apiKey, err := resolveAPIKey(g.keyEnv)
	if err != nil {
		return "", err
	}

	reqBody := ChatRequest{
		Model: g.model,
		Messages: []Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		MaxTokens: maxTokens,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.apiURL+"/chat/completions", bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	start := time.Now()
	resp, err := g.client.Do(req)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrCodeGenerationFailed, "failed to send request", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrCodeGenerationFailed, "failed to read response", err)
	}

	slog.Debug("chat completion received",
		"model", g.model,
		"status", resp.StatusCode,
		"bytes", len(body),
		"duration", time.Since(start).String(),
	)

	var result ChatResponse
	decodeErr := json.Unmarshal(body, &result)

	if resp.StatusCode != http.StatusOK {
		msg := string(body)
		if decodeErr == nil && result.Error != nil && result.Error.Message != "" {
			msg = result.Error.Message
		}
		return "", apperrors.WrapWithContext(apperrors.ErrCodeGenerationFailed,
			fmt.Sprintf("API request failed with status %d", resp.StatusCode),
			fmt.Errorf("%s", msg),
			map[string]any{"status": resp.StatusCode})
	}

	if decodeErr != nil {
		return "", apperrors.Wrap(apperrors.ErrCodeGenerationFailed, "failed to decode response", decodeErr)
	}

	if len(result.Choices) == 0 {
		return "", apperrors.New(apperrors.ErrCodeGenerationFailed, "no response from API")
	}

	return result.Choices[0].Message.Content, nil
}
