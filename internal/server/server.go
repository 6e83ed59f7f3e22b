package server

import (
	"context"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/platewise/recipe-gateway/config"
	"github.com/platewise/recipe-gateway/internal/api"
	"github.com/platewise/recipe-gateway/internal/router"
	"github.com/platewise/recipe-gateway/internal/service"
)

// Server represents the HTTP server
type Server struct {
	http *http.Server
}

// New creates a new server instance with its services and routes wired
func New(cfg *config.Config) *Server {
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	recipes := service.NewCompletionClient(cfg)
	images := service.NewImageSearchClient(cfg)

	recipeHandler := api.NewRecipeHandler(recipes)
	imageHandler := api.NewImageHandler(images)

	engine := router.SetupRouter(recipeHandler, imageHandler)

	return &Server{
		http: &http.Server{
			Addr:    net.JoinHostPort(cfg.ServerHost, cfg.ServerPort),
			Handler: engine,
		},
	}
}

// Start runs the server until it is shut down
func (s *Server) Start() error {
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
