// Package roster defines the agents that participate in protocol runs: the
// code-registered builtin roster and the store-backed custom agents, plus the
// prompt assembly applied when an agent is hydrated for a run.
package roster

import (
	"github.com/consilium-ai/consilium/pkg/blackboard"
)

// Agent categories group roster members for stage filters (@category).
const (
	CategoryExecutive  = "executive"
	CategoryAnalyst    = "analyst"
	CategorySpecialist = "specialist"
)

// Agent is a polymorphic actor: builtin agents are code-registered and
// read-only, custom agents come from the store. Inside a single run an agent
// is immutable.
type Agent struct {
	Key          string   `json:"key"`
	DisplayName  string   `json:"display_name"`
	Category     string   `json:"category,omitempty"`
	SystemPrompt string   `json:"system_prompt"`
	ModelID      string   `json:"model_id,omitempty"`
	MaxTokens    int      `json:"max_tokens,omitempty"`
	Temperature  *float64 `json:"temperature,omitempty"`
	Tools        []string `json:"tools,omitempty"`
	ContextScope []string `json:"context_scope,omitempty"`
	Builtin      bool     `json:"builtin"`
}

// PrimaryScope is the tag stamped onto blackboard entries this agent writes.
func (a *Agent) PrimaryScope() string {
	if len(a.ContextScope) == 0 {
		return blackboard.ScopeAll
	}
	return a.ContextScope[0]
}

// Reader returns the blackboard reader descriptor for scope-filtered reads.
func (a *Agent) Reader() *blackboard.Reader {
	return &blackboard.Reader{Name: a.DisplayName, ContextScope: a.ContextScope}
}
