package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/consilium-ai/consilium/pkg/models"
	"github.com/consilium-ai/consilium/pkg/protocol"
)

// listProtocolsHandler handles GET /api/protocols: the registry's catalog,
// sorted by key.
func (s *Server) listProtocolsHandler(c *gin.Context) {
	manifests := protocol.Manifests()
	views := make([]models.ProtocolView, 0, len(manifests))
	for _, m := range manifests {
		views = append(views, models.ProtocolView{
			Key:            m.Key,
			Name:           m.Name,
			Category:       m.Category,
			ProblemTypes:   m.ProblemTypes,
			CostTier:       m.CostTier,
			MinAgents:      m.MinAgents,
			MaxAgents:      m.MaxAgents,
			SupportsRounds: m.SupportsRounds,
			ToolsEnabled:   m.ToolsEnabled(),
			Description:    m.Description,
			WhenToUse:      m.WhenToUse,
			WhenNotToUse:   m.WhenNotToUse,
		})
	}
	c.JSON(http.StatusOK, views)
}
