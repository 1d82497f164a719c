package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	apperrors "github.com/pageza/repas/backend/internal/errors"
)

const (
	// DefaultCalories is the calorie budget used when a request omits one
	DefaultCalories = 800
	// MaxRecipeTokens caps the length of a generated recipe
	MaxRecipeTokens = 500
	// MaxSuggestionTokens caps the length of a list of recipe ideas
	MaxSuggestionTokens = 1000

	nutritionistPrompt = "Tu es un nutritionniste expert."
	suggestionsPrompt  = "Tu es un nutritionniste. Propose 5 recettes saines, hypocaloriques, riches en protéines, " +
		"à IG bas, à partir des ingrédients suivants. Réponds avec des titres et résumés de recettes."
)

var (
	// ErrNoIngredients is returned when a recipe is requested for an empty list
	ErrNoIngredients = errors.New("at least one ingredient is required")
	// ErrNoText is returned when suggestions are requested for empty text
	ErrNoText = errors.New("ingredient text is required")
)

// RecipeRequest is a list of ingredients and a calorie budget. A nil
// Calories means DefaultCalories; an explicit zero is kept.
type RecipeRequest struct {
	Ingredients []string
	Calories    *int
}

// CalorieBudget returns the requested budget or DefaultCalories when absent
func (r RecipeRequest) CalorieBudget() int {
	if r.Calories == nil {
		return DefaultCalories
	}
	return *r.Calories
}

// BuildPrompt renders the recipe instruction for the given ingredients and
// calorie budget. The budget is rendered as given.
func BuildPrompt(ingredients []string, calories int) string {
	return fmt.Sprintf(
		"Propose une recette simple et rapide avec les ingrédients suivants : %s. "+
			"Respecte une limite de %d kcal. Donne-moi les étapes de préparation et les valeurs nutritionnelles approximatives.",
		strings.Join(ingredients, ", "), calories)
}

// RecipeService turns ingredient lists into recipe text through a Generator
type RecipeService struct {
	generator Generator
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(generator Generator) *RecipeService {
	return &RecipeService{generator: generator}
}

// GenerateRecipe asks the generator for one recipe and returns its trimmed text
func (s *RecipeService) GenerateRecipe(ctx context.Context, req RecipeRequest) (string, error) {
	if len(req.Ingredients) == 0 {
		observeGeneration("recipe", apperrors.ErrCodeInvalidRequest)
		return "", apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "invalid recipe request", ErrNoIngredients)
	}

	prompt := BuildPrompt(req.Ingredients, req.CalorieBudget())
	return s.generate(ctx, "recipe", nutritionistPrompt, prompt, MaxRecipeTokens)
}

// SuggestRecipes asks for a handful of recipe ideas based on free ingredient
// text and splits the reply into one entry per numbered item.
func (s *RecipeService) SuggestRecipes(ctx context.Context, text string) ([]string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		observeGeneration("suggestions", apperrors.ErrCodeInvalidRequest)
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "invalid suggestion request", ErrNoText)
	}

	reply, err := s.generate(ctx, "suggestions", suggestionsPrompt, "Ingrédients disponibles : "+text, MaxSuggestionTokens)
	if err != nil {
		return nil, err
	}
	return SplitSuggestions(reply), nil
}

func (s *RecipeService) generate(ctx context.Context, op, systemPrompt, userPrompt string, maxTokens int) (string, error) {
	text, err := s.generator.Generate(ctx, systemPrompt, userPrompt, maxTokens)
	if err != nil {
		err = classify(err)
		observeGeneration(op, apperrors.CodeOf(err))
		slog.Error("generation failed", "operation", op, "error", err)
		return "", err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		observeGeneration(op, apperrors.ErrCodeGenerationFailed)
		return "", apperrors.New(apperrors.ErrCodeGenerationFailed, "upstream returned an empty completion")
	}

	observeGeneration(op, "")
	return text, nil
}

// classify keeps structured errors as they are and marks everything else as
// an upstream generation failure.
func classify(err error) error {
	var se *apperrors.StructuredError
	if errors.As(err, &se) {
		return err
	}
	return apperrors.Wrap(apperrors.ErrCodeGenerationFailed, "recipe generation failed", err)
}

// SplitSuggestions splits text before every line that starts with a digit
// followed by a dot. Blank entries are dropped.
func SplitSuggestions(text string) []string {
	var (
		entries []string
		current []string
	)
	flush := func() {
		if entry := strings.TrimSpace(strings.Join(current, "\n")); entry != "" {
			entries = append(entries, entry)
		}
		current = current[:0]
	}

	for i, line := range strings.Split(text, "\n") {
		if i > 0 && len(line) >= 2 && line[0] >= '0' && line[0] <= '9' && line[1] == '.' {
			flush()
		}
		current = append(current, line)
	}
	flush()

	if entries == nil {
		entries = []string{}
	}
	return entries
}
