package api

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/consilium-ai/consilium/ent"
	"github.com/consilium-ai/consilium/pkg/events"
	"github.com/consilium-ai/consilium/pkg/models"
	"github.com/consilium-ai/consilium/pkg/protocol"
	"github.com/consilium-ai/consilium/pkg/runner"
)

// listRunsHandler handles GET /api/runs with status/protocol_key filters
// and limit/offset paging.
func (s *Server) listRunsHandler(c *gin.Context) {
	filters := models.RunFilters{
		Status:      c.Query("status"),
		ProtocolKey: c.Query("protocol_key"),
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filters.Limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			filters.Offset = n
		}
	}

	list, err := s.runs.List(c.Request.Context(), filters)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// getRunHandler handles GET /api/runs/:id: the run with its steps and
// outputs.
func (s *Server) getRunHandler(c *gin.Context) {
	detail, err := s.runs.GetDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// cancelRunHandler handles POST /api/runs/:id/cancel.
func (s *Server) cancelRunHandler(c *gin.Context) {
	cancelled, err := s.runs.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cancelled)
}

// startProtocolRunHandler handles POST /api/runs/protocol: creates the run
// record and streams its events as SSE until the run reaches a terminal
// state. Validation failures are plain JSON errors; the stream only starts
// once the run is accepted.
func (s *Server) startProtocolRunHandler(c *gin.Context) {
	var req models.StartProtocolRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	agentKeys, ok := s.resolveRunRoster(c, &req)
	if !ok {
		return
	}
	if _, _, found := protocol.Lookup(req.ProtocolKey); !found {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown protocol: " + req.ProtocolKey})
		return
	}

	r, err := s.runs.CreateProtocolRun(c.Request.Context(), req, agentKeys)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	s.streamRun(c, r, func(ctx context.Context, sink runner.Sink) error {
		return s.controller.ExecuteProtocol(ctx, r, sink)
	})
}

// startPipelineRunHandler handles POST /api/runs/pipeline.
func (s *Server) startPipelineRunHandler(c *gin.Context) {
	var req models.StartPipelineRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := s.pipelines.Get(c.Request.Context(), req.PipelineID); err != nil {
		abortWithServiceError(c, err)
		return
	}
	agentKeys := req.AgentKeys
	if len(agentKeys) == 0 && req.TeamID != "" {
		team, err := s.teams.Get(c.Request.Context(), req.TeamID)
		if err != nil {
			abortWithServiceError(c, err)
			return
		}
		agentKeys = team.AgentKeys
	}

	r, err := s.runs.CreatePipelineRun(c.Request.Context(), req, agentKeys)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	s.streamRun(c, r, func(ctx context.Context, sink runner.Sink) error {
		return s.controller.ExecutePipeline(ctx, r, sink)
	})
}

// resolveRunRoster fills in agent keys and a default protocol from the
// request's team, when one is named.
func (s *Server) resolveRunRoster(c *gin.Context, req *models.StartProtocolRunRequest) ([]string, bool) {
	agentKeys := req.AgentKeys
	if req.TeamID != "" {
		team, err := s.teams.Get(c.Request.Context(), req.TeamID)
		if err != nil {
			abortWithServiceError(c, err)
			return nil, false
		}
		if len(agentKeys) == 0 {
			agentKeys = team.AgentKeys
		}
		if req.ProtocolKey == "" {
			req.ProtocolKey = team.DefaultProtocol
		}
	}
	return agentKeys, true
}

// streamRun switches the response to SSE and executes the run, forwarding
// each event as an `event: <type>` frame. The client closing the connection
// cancels the run through the request context.
func (s *Server) streamRun(c *gin.Context, r *ent.Run, execute func(ctx context.Context, sink runner.Sink) error) {
	h := c.Writer.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	c.Writer.WriteHeader(http.StatusOK)
	c.Writer.Flush()

	sink := func(evt events.Event) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		default:
		}
		c.SSEvent(string(evt.Type), evt)
		c.Writer.Flush()
		return true
	}

	if err := execute(c.Request.Context(), sink); err != nil {
		// Terminal status and the error event were already delivered.
		slog.Warn("Run finished with error", "run_id", r.ID, "error", err)
	}
}
