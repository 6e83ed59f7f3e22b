package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/platewise/recipe-gateway/internal/api"
	"github.com/platewise/recipe-gateway/internal/middleware"
)

// SetupRouter configures the gateway routes
func SetupRouter(recipeHandler *api.RecipeHandler, imageHandler *api.ImageHandler) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())

	recipeHandler.RegisterRoutes(router)
	imageHandler.RegisterRoutes(router)

	router.NoRoute(func(c *gin.Context) {
		c.String(http.StatusNotFound, "Not found")
	})

	return router
}
