// Package api exposes the HTTP surface: CRUD for agents, teams, and
// pipelines, the protocol catalog, run history, and the SSE endpoints that
// start runs and stream their progress.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/consilium-ai/consilium/pkg/database"
	"github.com/consilium-ai/consilium/pkg/runner"
	"github.com/consilium-ai/consilium/pkg/services"
)

// Config carries the server's auth and CORS settings.
type Config struct {
	// APIKey is the shared secret checked against X-API-Key. Required
	// unless DevMode is set.
	APIKey string
	// DevMode bypasses authentication for local development.
	DevMode bool
	// CORSOrigin is the single origin allowed to call the API from a
	// browser. Empty disables CORS headers.
	CORSOrigin string
}

// Server wires the HTTP handlers to the service layer and run controller.
type Server struct {
	db         *database.Client
	agents     *services.AgentService
	teams      *services.TeamService
	pipelines  *services.PipelineService
	runs       *services.RunService
	controller *runner.Controller
	cfg        Config
}

// NewServer creates the API server.
func NewServer(db *database.Client, agents *services.AgentService, teams *services.TeamService,
	pipelines *services.PipelineService, runs *services.RunService, controller *runner.Controller, cfg Config) *Server {
	return &Server{
		db:         db,
		agents:     agents,
		teams:      teams,
		pipelines:  pipelines,
		runs:       runs,
		controller: controller,
		cfg:        cfg,
	}
}

// Router builds the gin engine with all routes and middleware attached.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), securityHeaders(), corsMiddleware(s.cfg.CORSOrigin))

	api := router.Group("/api")
	api.GET("/health", s.healthHandler)

	authed := api.Group("", s.requireAPIKey())

	authed.GET("/agents", s.listAgentsHandler)
	authed.POST("/agents", s.createAgentHandler)
	authed.GET("/agents/:key", s.getAgentHandler)
	authed.PUT("/agents/:key", s.updateAgentHandler)
	authed.DELETE("/agents/:key", s.deleteAgentHandler)

	authed.GET("/protocols", s.listProtocolsHandler)

	authed.GET("/teams", s.listTeamsHandler)
	authed.POST("/teams", s.createTeamHandler)
	authed.GET("/teams/:id", s.getTeamHandler)
	authed.PUT("/teams/:id", s.updateTeamHandler)
	authed.DELETE("/teams/:id", s.deleteTeamHandler)

	authed.GET("/pipelines", s.listPipelinesHandler)
	authed.POST("/pipelines", s.createPipelineHandler)
	authed.GET("/pipelines/:id", s.getPipelineHandler)
	authed.DELETE("/pipelines/:id", s.deletePipelineHandler)

	authed.GET("/runs", s.listRunsHandler)
	authed.GET("/runs/:id", s.getRunHandler)
	authed.POST("/runs/:id/cancel", s.cancelRunHandler)
	authed.POST("/runs/protocol", s.startProtocolRunHandler)
	authed.POST("/runs/pipeline", s.startPipelineRunHandler)

	return router
}
