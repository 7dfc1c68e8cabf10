package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

var defaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
	"http://127.0.0.1:3000",
	"http://127.0.0.1:5173",
}

// AllowedOrigins is the local dev hosts plus extra, trimmed and deduplicated.
// Every origin check in the server is built from this list.
func AllowedOrigins(extra []string) []string {
	out := make([]string, 0, len(defaultOrigins)+len(extra))
	seen := make(map[string]bool, cap(out))
	for _, list := range [][]string{defaultOrigins, extra} {
		for _, o := range list {
			if o = strings.TrimSpace(o); o != "" && !seen[o] {
				seen[o] = true
				out = append(out, o)
			}
		}
	}
	return out
}

// CORS reflects allowed origins (see AllowedOrigins) so that credentialed
// browser requests work.
func CORS(extra []string) gin.HandlerFunc {
	allowedOrigins := make(map[string]bool)
	for _, o := range AllowedOrigins(extra) {
		allowedOrigins[o] = true
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		if origin != "" && allowedOrigins[origin] {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Vary", "Origin")
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		}

		c.Writer.Header().Set("Access-Control-Allow-Headers",
			"Content-Type, Content-Length, Authorization, Accept, Origin, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods",
			"GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Max-Age", "600")

		// Preflight must finish before auth runs.
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
