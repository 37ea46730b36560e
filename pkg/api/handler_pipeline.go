package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/consilium-ai/consilium/pkg/models"
)

func (s *Server) listPipelinesHandler(c *gin.Context) {
	pipelines, err := s.pipelines.List(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, pipelines)
}

func (s *Server) createPipelineHandler(c *gin.Context) {
	var req models.CreatePipelineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := s.pipelines.Create(c.Request.Context(), req)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// getPipelineHandler handles GET /api/pipelines/:id, steps included in order.
func (s *Server) getPipelineHandler(c *gin.Context) {
	p, err := s.pipelines.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) deletePipelineHandler(c *gin.Context) {
	if err := s.pipelines.Delete(c.Request.Context(), c.Param("id")); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
