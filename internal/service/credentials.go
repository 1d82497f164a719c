package service

import (
	"errors"
	"fmt"
	"os"
	"strings"

	apperrors "github.com/pageza/repas/backend/internal/errors"
)

// Environment variables holding upstream credentials. Each may also be given
// as a file path in <NAME>_FILE.
const (
	OpenAIKeyEnv = "OPENAI_API_KEY"
	GeminiKeyEnv = "GEMINI_API_KEY"
)

// ErrMissingCredential is the cause of every configuration error raised for
// an absent API key.
var ErrMissingCredential = errors.New("missing API credential")

// resolveAPIKey reads the credential at call time so a missing key surfaces
// when a recipe is requested, not when the process starts.
func resolveAPIKey(envName string) (string, error) {
	if key := strings.TrimSpace(os.Getenv(envName)); key != "" {
		return key, nil
	}

	fileEnv := envName + "_FILE"
	path := os.Getenv(fileEnv)
	if path == "" {
		return "", apperrors.Wrap(apperrors.ErrCodeConfiguration,
			fmt.Sprintf("%s or %s must be set", envName, fileEnv), ErrMissingCredential)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrCodeConfiguration,
			fmt.Sprintf("failed to read %s", fileEnv), err)
	}

	key := strings.TrimSpace(string(data))
	if key == "" {
		return "", apperrors.Wrap(apperrors.ErrCodeConfiguration,
			fmt.Sprintf("%s points to an empty file", fileEnv), ErrMissingCredential)
	}
	return key, nil
}
