package models

// PipelineStepSpec describes one step when creating a pipeline.
type PipelineStepSpec struct {
	ProtocolKey        string   `json:"protocol_key"`
	QuestionTemplate   string   `json:"question_template"`
	AgentKeys          []string `json:"agent_keys,omitempty"`
	Rounds             int      `json:"rounds,omitempty"`
	ThinkingModel      string   `json:"thinking_model,omitempty"`
	OrchestrationModel string   `json:"orchestration_model,omitempty"`
	OutputPassthrough  bool     `json:"output_passthrough,omitempty"`
}

// CreatePipelineRequest contains fields for creating a pipeline with its
// ordered steps.
type CreatePipelineRequest struct {
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Steps       []PipelineStepSpec `json:"steps"`
}
