package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the JSON body written when a handler panics.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Recovery converts panics into a well-formed JSON error response so a fault
// never reaches the caller as a raw stack trace or an empty body.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, err any) {
		log.Printf("panic recovered: %v", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "An unknown error occurred"})
	})
}
