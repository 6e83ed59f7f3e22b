package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/platewise/recipe-gateway/internal/service"
)

// RecipeHandler handles recipe generation requests
type RecipeHandler struct {
	recipes service.RecipeSource
}

// NewRecipeHandler creates a new RecipeHandler instance
func NewRecipeHandler(recipes service.RecipeSource) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

// RegisterRoutes registers the recipe routes
func (h *RecipeHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/getRecipe", h.GetRecipe)
}

// GetRecipe handles GET /getRecipe?foodName=<dish>. The recipe is returned
// pretty-printed so the body is readable as-is.
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	foodName := strings.TrimSpace(c.Query("foodName"))
	if foodName == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "foodName parameter is required"})
		return
	}

	recipe, err := h.recipes.Generate(c.Request.Context(), foodName)
	if err != nil {
		status, body := normalizeError(err)
		c.JSON(status, body)
		return
	}

	c.IndentedJSON(http.StatusOK, recipe)
}
