package api

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// requireAPIKey checks the X-API-Key shared secret. Dev mode bypasses the
// check entirely; a missing server-side key rejects everything rather than
// silently opening the API.
func (s *Server) requireAPIKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.cfg.DevMode {
			c.Next()
			return
		}
		key := c.GetHeader("X-API-Key")
		if s.cfg.APIKey == "" || subtle.ConstantTimeCompare([]byte(key), []byte(s.cfg.APIKey)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or missing API key"})
			return
		}
		c.Next()
	}
}
