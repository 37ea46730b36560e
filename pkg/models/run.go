package models

import (
	"time"

	"github.com/consilium-ai/consilium/ent"
)

// StartProtocolRunRequest is the body of POST /api/runs/protocol.
type StartProtocolRunRequest struct {
	Question    string   `json:"question"`
	ProtocolKey string   `json:"protocol_key"`
	AgentKeys   []string `json:"agent_keys,omitempty"`
	TeamID      string   `json:"team_id,omitempty"`
	Rounds      int      `json:"rounds,omitempty"`
}

// StartPipelineRunRequest is the body of POST /api/runs/pipeline.
type StartPipelineRunRequest struct {
	Question   string   `json:"question"`
	PipelineID string   `json:"pipeline_id"`
	AgentKeys  []string `json:"agent_keys,omitempty"`
	TeamID     string   `json:"team_id,omitempty"`
}

// RunFilters contains filtering options for listing runs.
type RunFilters struct {
	Status      string `json:"status,omitempty"`
	ProtocolKey string `json:"protocol_key,omitempty"`
	Limit       int    `json:"limit,omitempty"`
	Offset      int    `json:"offset,omitempty"`
}

// RunListResponse contains a paginated run list.
type RunListResponse struct {
	Runs       []*ent.Run `json:"runs"`
	TotalCount int        `json:"total_count"`
	Limit      int        `json:"limit"`
	Offset     int        `json:"offset"`
}

// RunDetail wraps a run with its persisted outputs and pipeline steps.
type RunDetail struct {
	Run     *ent.Run           `json:"run"`
	Steps   []*ent.RunStep     `json:"steps,omitempty"`
	Outputs []*ent.AgentOutput `json:"outputs,omitempty"`
}

// ProtocolView is the catalog record served by GET /api/protocols.
type ProtocolView struct {
	Key            string   `json:"key"`
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	ProblemTypes   []string `json:"problem_types"`
	CostTier       string   `json:"cost_tier"`
	MinAgents      int      `json:"min_agents"`
	MaxAgents      int      `json:"max_agents"`
	SupportsRounds bool     `json:"supports_rounds"`
	ToolsEnabled   bool     `json:"tools_enabled"`
	Description    string   `json:"description"`
	WhenToUse      string   `json:"when_to_use"`
	WhenNotToUse   string   `json:"when_not_to_use"`
}

// RunCompletion captures the terminal state the controller persists.
type RunCompletion struct {
	Synthesis    string
	ResultJSON   string
	InputTokens  int
	OutputTokens int
	CostUSD      float64
	CompletedAt  time.Time
}
