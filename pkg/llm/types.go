// Package llm is the single entry point for "agent talks to the model"
// operations: provider dispatch, the agentic tool loop, and live tool-event
// emission. Providers speak the Anthropic Messages API or an OpenAI-style
// chat-completions endpoint.
package llm

import (
	"context"

	"github.com/consilium-ai/consilium/pkg/tools"
)

// Role identifies a conversation turn's speaker.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// StopReasonToolUse is the provider stop condition that drives the tool loop.
const StopReasonToolUse = "tool_use"

// ToolCall is a model's request to invoke a tool.
type ToolCall struct {
	ID    string
	Name  string
	Input map[string]any
}

// ToolResult is the outcome of one tool call, fed back as part of a user turn.
type ToolResult struct {
	ToolCallID string
	Name       string
	Content    string
	IsError    bool
}

// Message is one conversation turn. Assistant turns may carry ToolCalls;
// user turns may carry ToolResults.
type Message struct {
	Role        Role
	Content     string
	ToolCalls   []ToolCall
	ToolResults []ToolResult
}

// Meta carries call attribution for tracing. Not sent to the provider.
type Meta struct {
	RunID      string
	ProtocolID string
	AgentName  string
}

// Request is a single provider invocation.
type Request struct {
	Model           string
	System          string
	Messages        []Message
	MaxTokens       int
	Temperature     *float64
	ReasoningBudget int // extended-reasoning token budget; 0 = off
	Tools           []tools.Definition
	Meta            Meta
}

// Response is a provider's reply to one Request.
type Response struct {
	Text       string
	ToolCalls  []ToolCall
	StopReason string
	Usage      TokenUsage
}

// TokenUsage counts tokens for one or more calls.
type TokenUsage struct {
	InputTokens  int
	OutputTokens int
}

// Add accumulates usage across loop iterations.
func (u *TokenUsage) Add(other TokenUsage) {
	u.InputTokens += other.InputTokens
	u.OutputTokens += other.OutputTokens
}

// Provider executes one chat-completion round trip.
type Provider interface {
	Name() string
	Complete(ctx context.Context, req *Request) (*Response, error)
}
