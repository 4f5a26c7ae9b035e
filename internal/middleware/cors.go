package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS headers sent on every response.
const (
	AllowOrigin  = "*"
	AllowMethods = "GET, OPTIONS"
	AllowHeaders = "Content-Type"
)

// CORS is a permissive cross-origin middleware for local front-end development.
//
// Behavior:
//   - Sets Access-Control-Allow-{Origin,Methods,Headers} and Content-Type: application/json.
//   - Answers OPTIONS on any path with 200 and an empty body, without routing.
//
// It must be registered with router.Use so it also runs for unmatched paths.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", AllowOrigin)
		h.Set("Access-Control-Allow-Methods", AllowMethods)
		h.Set("Access-Control-Allow-Headers", AllowHeaders)
		h.Set("Content-Type", "application/json")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}
