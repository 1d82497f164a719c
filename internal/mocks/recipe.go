package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/repas/backend/internal/service"
)

// MockRecipeService is a mock implementation of the recipe service
type MockRecipeService struct {
	mock.Mock
}

// GenerateRecipe mocks the GenerateRecipe method
func (m *MockRecipeService) GenerateRecipe(ctx context.Context, req service.RecipeRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

// SuggestRecipes mocks the SuggestRecipes method
func (m *MockRecipeService) SuggestRecipes(ctx context.Context, text string) ([]string, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

var _ service.RecipeServiceInterface = (*MockRecipeService)(nil)
