package protocol

import (
	"context"
	"strings"

	"github.com/consilium-ai/consilium/pkg/blackboard"
	"github.com/consilium-ai/consilium/pkg/llm"
	"github.com/consilium-ai/consilium/pkg/roster"
)

// Caller is the slice of the LLM gateway that stage executors use.
type Caller interface {
	Call(ctx context.Context, req llm.CallRequest) (*llm.CallResult, error)
}

// Config is the per-run execution configuration threaded into every stage.
type Config struct {
	RunID              string
	ThinkingModel      string
	OrchestrationModel string
	ReasoningBudget    int
	Rounds             int
}

// ExecFunc drives one stage to completion. It must return only after all of
// its internal work has been written to the blackboard.
type ExecFunc func(ctx context.Context, bb *blackboard.Blackboard, agents []*roster.Agent, cfg Config) error

// Stage is one trigger/executor pair within a protocol definition.
type Stage struct {
	Name    string
	Trigger Trigger
	Exec    ExecFunc

	// AgentsFilter selects a subset of the roster: "@category" matches by
	// agent category, a comma-separated list matches by key. Empty means
	// all agents.
	AgentsFilter string
}

// Definition is an ordered list of stages under a protocol id.
type Definition struct {
	ProtocolID string
	Stages     []Stage
}

// FilterAgents applies a stage's agent filter to the roster.
func FilterAgents(agents []*roster.Agent, filter string) []*roster.Agent {
	filter = strings.TrimSpace(filter)
	if filter == "" {
		return agents
	}

	if category, ok := strings.CutPrefix(filter, "@"); ok {
		var out []*roster.Agent
		for _, a := range agents {
			if a.Category == category {
				out = append(out, a)
			}
		}
		return out
	}

	wanted := make(map[string]bool)
	for _, name := range strings.Split(filter, ",") {
		wanted[strings.TrimSpace(name)] = true
	}
	var out []*roster.Agent
	for _, a := range agents {
		if wanted[a.Key] {
			out = append(out, a)
		}
	}
	return out
}
