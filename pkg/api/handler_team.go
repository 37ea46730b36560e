package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/consilium-ai/consilium/pkg/models"
)

func (s *Server) listTeamsHandler(c *gin.Context) {
	teams, err := s.teams.List(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}

func (s *Server) createTeamHandler(c *gin.Context) {
	var req models.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := s.teams.Create(c.Request.Context(), req)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (s *Server) getTeamHandler(c *gin.Context) {
	team, err := s.teams.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

func (s *Server) updateTeamHandler(c *gin.Context) {
	var req models.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := s.teams.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (s *Server) deleteTeamHandler(c *gin.Context) {
	if err := s.teams.Delete(c.Request.Context(), c.Param("id")); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
