package middleware

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS attaches permissive cross-origin headers to every response.
func CORS() gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true
	cfg.AllowMethods = []string{"GET", "HEAD", "POST", "OPTIONS"}
	cfg.AllowHeaders = []string{"Content-Type"}
	return cors.New(cfg)
}
