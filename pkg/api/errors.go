package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/consilium-ai/consilium/pkg/services"
)

// abortWithServiceError maps service-layer errors to HTTP responses.
func abortWithServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	switch {
	case errors.As(err, &validErr):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": validErr.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "resource not found"})
	case errors.Is(err, services.ErrBuiltinReadOnly):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "built-in agents are read-only"})
	case errors.Is(err, services.ErrAlreadyExists):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "resource already exists"})
	default:
		slog.Error("Unexpected service error", "error", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
