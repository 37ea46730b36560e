package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/consilium-ai/consilium/pkg/models"
)

// listAgentsHandler handles GET /api/agents: builtins first, then stored.
func (s *Server) listAgentsHandler(c *gin.Context) {
	views, err := s.agents.List(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// createAgentHandler handles POST /api/agents.
func (s *Server) createAgentHandler(c *gin.Context) {
	var req models.CreateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := s.agents.Create(c.Request.Context(), req)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.AgentViewFromEnt(created))
}

// getAgentHandler handles GET /api/agents/:key.
func (s *Server) getAgentHandler(c *gin.Context) {
	view, err := s.agents.Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// updateAgentHandler handles PUT /api/agents/:key. Built-in agents are
// read-only and answer 409.
func (s *Server) updateAgentHandler(c *gin.Context) {
	var req models.UpdateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := s.agents.Update(c.Request.Context(), c.Param("key"), req)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.AgentViewFromEnt(updated))
}

// deleteAgentHandler handles DELETE /api/agents/:key.
func (s *Server) deleteAgentHandler(c *gin.Context) {
	if err := s.agents.Delete(c.Request.Context(), c.Param("key")); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
