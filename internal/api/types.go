package api

// FilterIngredientsRequest is the body of POST /filter-ingredients. Text is
// a pointer so an empty string passes binding while a missing field doesn't.
type FilterIngredientsRequest struct {
	Text *string `json:"text" binding:"required"`
}

// FilterIngredientsResponse lists the recognised ingredients
type FilterIngredientsResponse struct {
	Ingredients []string `json:"ingredients"`
}

// GenerateRecipeRequest is the body of POST /generate-recipe. An omitted
// calorie budget means the service default; an explicit zero is kept.
// Ingredient values are passed through as given.
type GenerateRecipeRequest struct {
	Ingredients []string `json:"ingredients" binding:"required,min=1"`
	Calories    *int     `json:"calories" binding:"omitempty,gte=0"`
}

// GenerateRecipeResponse carries the generated recipe text
type GenerateRecipeResponse struct {
	Recipe string `json:"recipe"`
}

// SuggestRecipesRequest is the body of POST /suggest-recipes
type SuggestRecipesRequest struct {
	Text string `json:"text" binding:"required"`
}

// SuggestRecipesResponse lists recipe ideas, one per entry
type SuggestRecipesResponse struct {
	Recipes []string `json:"recipes"`
}
