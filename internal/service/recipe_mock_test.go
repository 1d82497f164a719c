package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pageza/repas/backend/internal/mocks"
	"github.com/pageza/repas/backend/internal/service"
)

func TestRecipeService_OneUpstreamCallPerRequest(t *testing.T) {
	calories := 700
	gen := new(mocks.MockGenerator)
	gen.On("Generate", mock.Anything, "Tu es un nutritionniste expert.",
		service.BuildPrompt([]string{"courgette", "riz"}, 700), service.MaxRecipeTokens).
		Return("Risotto de courgette", nil).Once()

	recipe, err := service.NewRecipeService(gen).GenerateRecipe(context.Background(), service.RecipeRequest{
		Ingredients: []string{"courgette", "riz"},
		Calories:    &calories,
	})
	require.NoError(t, err)
	assert.Equal(t, "Risotto de courgette", recipe)
	gen.AssertExpectations(t)
	gen.AssertNumberOfCalls(t, "Generate", 1)
}

func TestRecipeService_ContextPassedThrough(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "marker")

	gen := new(mocks.MockGenerator)
	gen.On("Generate", mock.MatchedBy(func(c context.Context) bool { return c.Value(key{}) == "marker" }),
		mock.Anything, mock.Anything, service.MaxSuggestionTokens).
		Return("1. Omelette\n2. Salade", nil).Once()

	recipes, err := service.NewRecipeService(gen).SuggestRecipes(ctx, "oeufs")
	require.NoError(t, err)
	assert.Equal(t, []string{"1. Omelette", "2. Salade"}, recipes)
	gen.AssertExpectations(t)
}
