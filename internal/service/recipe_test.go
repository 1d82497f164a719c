package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/pageza/repas/backend/internal/errors"
)

// fakeGenerator records the last call and replies with a canned answer
type fakeGenerator struct {
	reply string
	err   error
	calls int

	systemPrompt string
	userPrompt   string
	maxTokens    int
}

func (f *fakeGenerator) Generate(_ context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error) {
	f.calls++
	f.systemPrompt = systemPrompt
	f.userPrompt = userPrompt
	f.maxTokens = maxTokens
	return f.reply, f.err
}

func TestBuildPrompt(t *testing.T) {
	got := BuildPrompt([]string{"riz", "thon", "tomate"}, 650)
	want := "Propose une recette simple et rapide avec les ingrédients suivants : riz, thon, tomate. " +
		"Respecte une limite de 650 kcal. Donne-moi les étapes de préparation et les valeurs nutritionnelles approximatives."
	assert.Equal(t, want, got)
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	ingredients := []string{"poulet", "courgette"}
	assert.Equal(t, BuildPrompt(ingredients, 900), BuildPrompt(ingredients, 900))
}

func TestBuildPrompt_RendersBudgetAsGiven(t *testing.T) {
	assert.Contains(t, BuildPrompt([]string{"riz"}, 0), "limite de 0 kcal")
	assert.Contains(t, BuildPrompt([]string{"riz"}, 1200), "limite de 1200 kcal")
}

func TestRecipeRequest_CalorieBudget(t *testing.T) {
	zero, budget := 0, 650
	assert.Equal(t, DefaultCalories, RecipeRequest{}.CalorieBudget())
	assert.Equal(t, 0, RecipeRequest{Calories: &zero}.CalorieBudget())
	assert.Equal(t, 650, RecipeRequest{Calories: &budget}.CalorieBudget())
}

func TestRecipeService_GenerateRecipe_ExplicitZeroCalories(t *testing.T) {
	gen := &fakeGenerator{reply: "Bouillon"}
	zero := 0

	_, err := NewRecipeService(gen).GenerateRecipe(context.Background(), RecipeRequest{
		Ingredients: []string{"riz"},
		Calories:    &zero,
	})
	require.NoError(t, err)
	assert.Contains(t, gen.userPrompt, "limite de 0 kcal")
}

func TestBuildPrompt_AcceptsAnyStrings(t *testing.T) {
	assert.Contains(t, BuildPrompt([]string{"quinoa", "Tofu fumé"}, 500), ": quinoa, Tofu fumé.")
}

func TestRecipeService_GenerateRecipe(t *testing.T) {
	gen := &fakeGenerator{reply: "  Riz au thon\n1. Cuire le riz\n  "}
	svc := NewRecipeService(gen)

	recipe, err := svc.GenerateRecipe(context.Background(), RecipeRequest{Ingredients: []string{"riz", "thon"}})
	require.NoError(t, err)

	assert.Equal(t, "Riz au thon\n1. Cuire le riz", recipe)
	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, "Tu es un nutritionniste expert.", gen.systemPrompt)
	assert.Equal(t, BuildPrompt([]string{"riz", "thon"}, 800), gen.userPrompt)
	assert.Equal(t, 500, gen.maxTokens)
}

func TestRecipeService_GenerateRecipe_NoIngredients(t *testing.T) {
	gen := &fakeGenerator{reply: "unused"}
	svc := NewRecipeService(gen)

	_, err := svc.GenerateRecipe(context.Background(), RecipeRequest{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoIngredients))
	assert.Equal(t, apperrors.ErrCodeInvalidRequest, apperrors.CodeOf(err))
	assert.Zero(t, gen.calls)
}

func TestRecipeService_GenerateRecipe_UpstreamFailure(t *testing.T) {
	cause := errors.New("connection refused")
	svc := NewRecipeService(&fakeGenerator{reply: "partial", err: cause})

	recipe, err := svc.GenerateRecipe(context.Background(), RecipeRequest{Ingredients: []string{"riz"}})
	require.Error(t, err)
	assert.Empty(t, recipe)
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, apperrors.ErrCodeGenerationFailed, apperrors.CodeOf(err))
}

func TestRecipeService_GenerateRecipe_ConfigurationErrorKept(t *testing.T) {
	cfgErr := apperrors.Wrap(apperrors.ErrCodeConfiguration, "OPENAI_API_KEY must be set", ErrMissingCredential)
	svc := NewRecipeService(&fakeGenerator{err: cfgErr})

	_, err := svc.GenerateRecipe(context.Background(), RecipeRequest{Ingredients: []string{"riz"}})
	assert.Equal(t, apperrors.ErrCodeConfiguration, apperrors.CodeOf(err))
	assert.True(t, errors.Is(err, ErrMissingCredential))
}

func TestRecipeService_GenerateRecipe_EmptyCompletion(t *testing.T) {
	svc := NewRecipeService(&fakeGenerator{reply: " \n\t "})

	recipe, err := svc.GenerateRecipe(context.Background(), RecipeRequest{Ingredients: []string{"riz"}})
	assert.Empty(t, recipe)
	assert.Equal(t, apperrors.ErrCodeGenerationFailed, apperrors.CodeOf(err))
}

func TestRecipeService_SuggestRecipes(t *testing.T) {
	gen := &fakeGenerator{reply: "Voici mes idées :\n1. Salade de thon\nFraîche.\n2. Omelette\n3. Riz sauté"}
	svc := NewRecipeService(gen)

	recipes, err := svc.SuggestRecipes(context.Background(), " oeufs, thon, riz ")
	require.NoError(t, err)

	assert.Equal(t, []string{"Voici mes idées :", "1. Salade de thon\nFraîche.", "2. Omelette", "3. Riz sauté"}, recipes)
	assert.Equal(t, "Ingrédients disponibles : oeufs, thon, riz", gen.userPrompt)
	assert.Contains(t, gen.systemPrompt, "Propose 5 recettes")
	assert.Equal(t, MaxSuggestionTokens, gen.maxTokens)
}

func TestRecipeService_SuggestRecipes_EmptyText(t *testing.T) {
	gen := &fakeGenerator{}
	_, err := NewRecipeService(gen).SuggestRecipes(context.Background(), "   ")
	assert.True(t, errors.Is(err, ErrNoText))
	assert.Zero(t, gen.calls)
}

func TestSplitSuggestions(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"single block", "Une seule idée", []string{"Une seule idée"}},
		{"numbered", "1. A\n2. B", []string{"1. A", "2. B"}},
		{"two digit numbers do not split", "9. A\n10. B", []string{"9. A\n10. B"}},
		{"blank entries dropped", "\n1. A\n\n2. B\n", []string{"1. A", "2. B"}},
		{"empty", "", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitSuggestions(tt.text))
		})
	}
}
