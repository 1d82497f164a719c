package service

import "context"

// Generator is the external text-generation collaborator. Implementations
// make exactly one upstream call per invocation and return the raw
// completion text.
type Generator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error)
}

// RecipeServiceInterface is what the HTTP handlers and the CLI depend on
type RecipeServiceInterface interface {
	GenerateRecipe(ctx context.Context, req RecipeRequest) (string, error)
	SuggestRecipes(ctx context.Context, text string) ([]string, error)
}
