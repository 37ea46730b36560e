// Package models holds the request, filter, and response records shared by
// the services and the HTTP API.
package models

import "github.com/consilium-ai/consilium/ent"

// CreateAgentRequest contains fields for registering a custom agent.
type CreateAgentRequest struct {
	Key          string   `json:"key"`
	DisplayName  string   `json:"display_name"`
	Category     string   `json:"category,omitempty"`
	SystemPrompt string   `json:"system_prompt"`
	ModelID      string   `json:"model_id,omitempty"`
	MaxTokens    int      `json:"max_tokens,omitempty"`
	Temperature  *float64 `json:"temperature,omitempty"`
	Frameworks   []string `json:"frameworks,omitempty"`
	Deliverable  string   `json:"deliverable_template,omitempty"`
	Style        string   `json:"communication_style,omitempty"`
	Tools        []string `json:"tools,omitempty"`
	ContextScope []string `json:"context_scope,omitempty"`
}

// UpdateAgentRequest contains the mutable fields of a custom agent. Nil
// pointers leave the field unchanged.
type UpdateAgentRequest struct {
	DisplayName  *string  `json:"display_name,omitempty"`
	Category     *string  `json:"category,omitempty"`
	SystemPrompt *string  `json:"system_prompt,omitempty"`
	ModelID      *string  `json:"model_id,omitempty"`
	MaxTokens    *int     `json:"max_tokens,omitempty"`
	Temperature  *float64 `json:"temperature,omitempty"`
	Frameworks   []string `json:"frameworks,omitempty"`
	Deliverable  *string  `json:"deliverable_template,omitempty"`
	Style        *string  `json:"communication_style,omitempty"`
	Tools        []string `json:"tools,omitempty"`
	ContextScope []string `json:"context_scope,omitempty"`
}

// AgentView is the merged roster record: builtin agents come from code,
// custom agents from the store.
type AgentView struct {
	Key          string   `json:"key"`
	DisplayName  string   `json:"display_name"`
	Category     string   `json:"category,omitempty"`
	SystemPrompt string   `json:"system_prompt"`
	ModelID      string   `json:"model_id,omitempty"`
	MaxTokens    int      `json:"max_tokens,omitempty"`
	Temperature  *float64 `json:"temperature,omitempty"`
	Frameworks   []string `json:"frameworks,omitempty"`
	Deliverable  string   `json:"deliverable_template,omitempty"`
	Style        string   `json:"communication_style,omitempty"`
	Tools        []string `json:"tools,omitempty"`
	ContextScope []string `json:"context_scope,omitempty"`
	Builtin      bool     `json:"builtin"`
}

// AgentViewFromEnt converts a stored agent row to the roster view.
func AgentViewFromEnt(a *ent.Agent) AgentView {
	return AgentView{
		Key:          a.ID,
		DisplayName:  a.DisplayName,
		Category:     a.Category,
		SystemPrompt: a.SystemPrompt,
		ModelID:      a.ModelID,
		MaxTokens:    a.MaxTokens,
		Temperature:  a.Temperature,
		Frameworks:   a.Frameworks,
		Deliverable:  a.DeliverableTemplate,
		Style:        a.CommunicationStyle,
		Tools:        a.Tools,
		ContextScope: a.ContextScope,
		Builtin:      false,
	}
}
