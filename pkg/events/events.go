// Package events defines the typed progress events carried on a run's live
// stream, the multi-producer single-consumer stream itself, and the context
// carrier that makes the stream reachable from gateway worker goroutines.
package events

import "time"

// Type identifies the kind of progress event. The wire name of an SSE frame
// is exactly this value.
type Type string

const (
	TypeRunStart     Type = "run_start"
	TypeStage        Type = "stage"
	TypeAgentRoster  Type = "agent_roster"
	TypeToolCall     Type = "tool_call"
	TypeToolResult   Type = "tool_result"
	TypeAgentOutput  Type = "agent_output"
	TypeSynthesis    Type = "synthesis"
	TypeStepStart    Type = "step_start"
	TypeStepComplete Type = "step_complete"
	TypeError        Type = "error"
	TypeRunComplete  Type = "run_complete"
)

// Event is one typed progress record. Payload is one of the payload structs
// below, matching Type.
type Event struct {
	Type      Type      `json:"type"`
	RunID     string    `json:"run_id"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload,omitempty"`
}

// RunStartPayload announces the start of protocol execution.
type RunStartPayload struct {
	ProtocolKey string `json:"protocol_key"`
	Question    string `json:"question"`
}

// StagePayload is a human-readable progress line.
type StagePayload struct {
	Message string `json:"message"`
}

// AgentRef identifies one roster member.
type AgentRef struct {
	Key         string `json:"key"`
	DisplayName string `json:"display_name"`
}

// AgentRosterPayload lists the hydrated roster for the run.
type AgentRosterPayload struct {
	Agents []AgentRef `json:"agents"`
}

// ToolCallPayload is emitted when an agent's tool loop issues a call.
type ToolCallPayload struct {
	Agent        string `json:"agent"`
	Tool         string `json:"tool"`
	InputSummary string `json:"input_summary"`
	Iteration    int    `json:"iteration"`
}

// ToolResultPayload is emitted when a tool call returns.
type ToolResultPayload struct {
	Agent     string `json:"agent"`
	Tool      string `json:"tool"`
	Preview   string `json:"preview"`
	ElapsedMS int64  `json:"elapsed_ms"`
	IsError   bool   `json:"is_error,omitempty"`
}

// AgentOutputPayload carries one agent's final text for the run or step.
type AgentOutputPayload struct {
	Agent string `json:"agent"`
	Text  string `json:"text"`
}

// SynthesisPayload carries the protocol's final synthesis.
type SynthesisPayload struct {
	Text string `json:"text"`
}

// StepStartPayload marks the start of one pipeline step.
type StepStartPayload struct {
	StepOrder   int    `json:"step_order"`
	ProtocolKey string `json:"protocol_key"`
	Question    string `json:"question"`
}

// StepCompletePayload marks the completion of one pipeline step.
type StepCompletePayload struct {
	StepOrder   int    `json:"step_order"`
	ProtocolKey string `json:"protocol_key"`
	Status      string `json:"status"`
}

// ErrorPayload reports a run-level failure.
type ErrorPayload struct {
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}

// RunCompletePayload terminates the stream.
type RunCompletePayload struct {
	Status         string  `json:"status"`
	ElapsedSeconds float64 `json:"elapsed_seconds"`
}

// New builds an event with the current timestamp.
func New(t Type, runID string, payload any) Event {
	return Event{Type: t, RunID: runID, Timestamp: time.Now().UTC(), Payload: payload}
}
