package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	apperrors "github.com/pageza/repas/backend/internal/errors"
	"github.com/pageza/repas/backend/internal/ingredients"
	"github.com/pageza/repas/backend/internal/middleware"
	"github.com/pageza/repas/backend/internal/service"
)

var ingredientMatches = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "repas_ingredient_matches_total",
		Help: "Number of times each known ingredient was found in filtered text",
	},
	[]string{"ingredient"},
)

// Handler serves the ingredient and recipe endpoints
type Handler struct {
	recipes service.RecipeServiceInterface
}

// NewHandler creates a new Handler instance
func NewHandler(recipes service.RecipeServiceInterface) *Handler {
	return &Handler{recipes: recipes}
}

// RegisterRoutes registers the ingredient and recipe routes
func (h *Handler) RegisterRoutes(router gin.IRoutes, generationLimits ...gin.HandlerFunc) {
	router.POST("/filter-ingredients", h.FilterIngredients)
	router.POST("/generate-recipe", chain(generationLimits, h.GenerateRecipe)...)
	router.POST("/suggest-recipes", chain(generationLimits, h.SuggestRecipes)...)
}

func chain(middlewares []gin.HandlerFunc, handler gin.HandlerFunc) []gin.HandlerFunc {
	handlers := make([]gin.HandlerFunc, 0, len(middlewares)+1)
	handlers = append(handlers, middlewares...)
	return append(handlers, handler)
}

// FilterIngredients returns the known ingredients mentioned in the text
func (h *Handler) FilterIngredients(c *gin.Context) {
	var req FilterIngredientsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.WriteError(c, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "invalid request body", err))
		return
	}

	found := ingredients.Extract(*req.Text)
	for _, name := range found {
		ingredientMatches.WithLabelValues(name).Inc()
	}

	c.JSON(http.StatusOK, FilterIngredientsResponse{Ingredients: found})
}

// GenerateRecipe asks the recipe service for one recipe
func (h *Handler) GenerateRecipe(c *gin.Context) {
	var req GenerateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.WriteError(c, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "invalid request body", err))
		return
	}

	recipe, err := h.recipes.GenerateRecipe(c.Request.Context(), service.RecipeRequest{
		Ingredients: req.Ingredients,
		Calories:    req.Calories,
	})
	if err != nil {
		middleware.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, GenerateRecipeResponse{Recipe: recipe})
}

// SuggestRecipes asks the recipe service for a list of recipe ideas
func (h *Handler) SuggestRecipes(c *gin.Context) {
	var req SuggestRecipesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.WriteError(c, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "invalid request body", err))
		return
	}

	recipes, err := h.recipes.SuggestRecipes(c.Request.Context(), req.Text)
	if err != nil {
		middleware.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuggestRecipesResponse{Recipes: recipes})
}
