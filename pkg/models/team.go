package models

// CreateTeamRequest contains fields for creating a named roster.
type CreateTeamRequest struct {
	Name            string   `json:"name"`
	Description     string   `json:"description,omitempty"`
	AgentKeys       []string `json:"agent_keys"`
	DefaultProtocol string   `json:"default_protocol,omitempty"`
}

// UpdateTeamRequest contains the mutable fields of a team.
type UpdateTeamRequest struct {
	Name            *string  `json:"name,omitempty"`
	Description     *string  `json:"description,omitempty"`
	AgentKeys       []string `json:"agent_keys,omitempty"`
	DefaultProtocol *string  `json:"default_protocol,omitempty"`
}
