package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/repas/backend/internal/service"
)

// MockGenerator is a mock implementation of service.Generator
type MockGenerator struct {
	mock.Mock
}

// Generate mocks the Generate method
func (m *MockGenerator) Generate(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error) {
	args := m.Called(ctx, systemPrompt, userPrompt, maxTokens)
	return args.String(0), args.Error(1)
}

var _ service.Generator = (*MockGenerator)(nil)
