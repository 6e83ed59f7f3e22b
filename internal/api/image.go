package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/platewise/recipe-gateway/internal/service"
)

// ImageHandler handles image lookup requests
type ImageHandler struct {
	images service.ImageSource
}

// NewImageHandler creates a new ImageHandler instance
func NewImageHandler(images service.ImageSource) *ImageHandler {
	return &ImageHandler{images: images}
}

// RegisterRoutes registers the image routes
func (h *ImageHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/getImage", h.GetImage)
}

// GetImage handles GET /getImage?foodOrIngName=<query>.
func (h *ImageHandler) GetImage(c *gin.Context) {
	query := strings.TrimSpace(c.Query("foodOrIngName"))
	if query == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "foodOrIngName parameter is required"})
		return
	}

	result, err := h.images.Lookup(c.Request.Context(), query)
	if err != nil {
		status, body := normalizeError(err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, result)
}
