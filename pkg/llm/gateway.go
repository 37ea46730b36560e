package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/consilium-ai/consilium/pkg/events"
	"github.com/consilium-ai/consilium/pkg/roster"
	"github.com/consilium-ai/consilium/pkg/tools"
)

// MaxToolIterations caps the agentic loop. An agent that still wants tools
// after this many rounds gets its last text back instead of another turn.
const MaxToolIterations = 15

const defaultMaxTokens = 4096

// previewLimit bounds the tool input/output excerpts carried on live events.
const previewLimit = 200

// Gateway dispatches agent calls to a provider and drives the tool loop.
// Claude-family models go to the primary provider; agents pinned to anything
// else go through the chat-completions provider. Dispatch keys on the
// effective model id's family, not on whether the agent pinned it: a pinned
// claude-* id still takes the primary path and keeps native reasoning-budget
// support.
type Gateway struct {
	primary      Provider
	compat       Provider
	registry     *tools.Registry
	executor     *tools.Executor
	defaultModel string
}

// NewGateway assembles a gateway. compat may be nil when no chat-completions
// endpoint is configured; pinned non-Claude models then fail fast.
func NewGateway(primary, compat Provider, registry *tools.Registry, executor *tools.Executor, defaultModel string) *Gateway {
	return &Gateway{
		primary:      primary,
		compat:       compat,
		registry:     registry,
		executor:     executor,
		defaultModel: defaultModel,
	}
}

// CallRequest describes one agent invocation. Zero-value fields fall back to
// the agent's own configuration, then to gateway defaults.
type CallRequest struct {
	Agent *roster.Agent

	// Model is the fallback used when the agent does not pin its own id.
	Model           string
	System          string
	Prompt          string // appended as a trailing user turn when set
	Messages        []Message
	MaxTokens       int
	Temperature     *float64
	ReasoningBudget int
	Tools           []tools.Definition // overrides the agent's tool list
	NoTools         bool
	Meta            Meta
}

// ToolCallRecord is one executed tool call, kept for persistence.
type ToolCallRecord struct {
	Tool         string
	InputSummary string
	Result       string
	IsError      bool
	Elapsed      time.Duration
	Iteration    int
}

// CallResult is the outcome of a full agent call, tool loop included.
type CallResult struct {
	Text       string
	StopReason string
	Usage      TokenUsage
	ToolCalls  []ToolCallRecord
	Iterations int
}

// Call runs the agent conversation to completion: provider round trips
// interleaved with tool execution until the model stops asking for tools or
// the iteration cap is hit. Tool activity is emitted on the run's event
// stream as it happens.
func (g *Gateway) Call(ctx context.Context, req CallRequest) (*CallResult, error) {
	provReq, provider, err := g.resolve(ctx, req)
	if err != nil {
		return nil, err
	}

	agentName := displayName(req.Agent)
	result := &CallResult{}

	for iteration := 1; iteration <= MaxToolIterations; iteration++ {
		resp, err := provider.Complete(ctx, provReq)
		if err != nil {
			return nil, fmt.Errorf("agent %s call failed: %w", agentName, err)
		}
		result.Iterations = iteration
		result.Usage.Add(resp.Usage)
		result.StopReason = resp.StopReason
		if resp.Text != "" {
			result.Text = resp.Text
		}

		if resp.StopReason != StopReasonToolUse || len(resp.ToolCalls) == 0 {
			return result, nil
		}

		provReq.Messages = append(provReq.Messages, Message{
			Role:      RoleAssistant,
			Content:   resp.Text,
			ToolCalls: resp.ToolCalls,
		})
		provReq.Messages = append(provReq.Messages, Message{
			Role:        RoleUser,
			ToolResults: g.runTools(ctx, req.Meta.RunID, agentName, iteration, resp.ToolCalls, result),
		})
	}

	slog.Warn("tool loop hit iteration cap",
		"agent", agentName, "run_id", req.Meta.RunID, "cap", MaxToolIterations)
	return result, nil
}

// resolve folds the agent's configuration into a provider request and picks
// the provider for the effective model.
func (g *Gateway) resolve(ctx context.Context, req CallRequest) (*Request, Provider, error) {
	agent := req.Agent

	// An agent-pinned model wins over the call's fallback.
	var model string
	if agent != nil {
		model = agent.ModelID
	}
	if model == "" {
		model = req.Model
	}
	if model == "" {
		model = g.defaultModel
	}
	if model == "" {
		return nil, nil, fmt.Errorf("no model configured for call")
	}

	system := req.System
	if system == "" && agent != nil {
		system = agent.SystemPrompt
	}

	maxTokens := req.MaxTokens
	if maxTokens == 0 && agent != nil {
		maxTokens = agent.MaxTokens
	}
	if maxTokens == 0 {
		maxTokens = defaultMaxTokens
	}

	temperature := req.Temperature
	if temperature == nil && agent != nil {
		temperature = agent.Temperature
	}

	meta := req.Meta
	if meta.AgentName == "" {
		meta.AgentName = displayName(agent)
	}

	messages := make([]Message, 0, len(req.Messages)+1)
	messages = append(messages, req.Messages...)
	if req.Prompt != "" {
		messages = append(messages, Message{Role: RoleUser, Content: req.Prompt})
	}
	if len(messages) == 0 {
		return nil, nil, fmt.Errorf("call has no messages")
	}

	provReq := &Request{
		Model:           model,
		System:          system,
		Messages:        messages,
		MaxTokens:       maxTokens,
		Temperature:     temperature,
		ReasoningBudget: req.ReasoningBudget,
		Tools:           g.resolveTools(ctx, req),
		Meta:            meta,
	}

	provider := g.primary
	if !isClaudeModel(model) {
		if g.compat == nil {
			return nil, nil, fmt.Errorf("model %s needs a chat-completions provider, none configured", model)
		}
		provider = g.compat
	}
	return provReq, provider, nil
}

// resolveTools applies the precedence: suppression flags, then the request's
// explicit schemas, then the agent's tool list looked up in the registry.
func (g *Gateway) resolveTools(ctx context.Context, req CallRequest) []tools.Definition {
	if req.NoTools || events.NoTools(ctx) {
		return nil
	}
	if len(req.Tools) > 0 {
		return req.Tools
	}
	if req.Agent == nil || len(req.Agent.Tools) == 0 {
		return nil
	}
	return g.registry.Schemas(req.Agent.Tools)
}

// runTools executes one round of tool calls sequentially, emitting a
// tool_call/tool_result event pair per call.
func (g *Gateway) runTools(ctx context.Context, runID, agentName string, iteration int, calls []ToolCall, result *CallResult) []ToolResult {
	results := make([]ToolResult, 0, len(calls))
	for _, tc := range calls {
		summary := summarizeInput(tc.Input)
		events.Emit(ctx, events.New(events.TypeToolCall, runID, events.ToolCallPayload{
			Agent:        agentName,
			Tool:         tc.Name,
			InputSummary: summary,
			Iteration:    iteration,
		}))

		res := g.executor.Execute(ctx, tc.Name, tc.Input)

		events.Emit(ctx, events.New(events.TypeToolResult, runID, events.ToolResultPayload{
			Agent:     agentName,
			Tool:      tc.Name,
			Preview:   truncate(res.Content, previewLimit),
			ElapsedMS: res.Elapsed.Milliseconds(),
			IsError:   res.IsError,
		}))

		result.ToolCalls = append(result.ToolCalls, ToolCallRecord{
			Tool:         tc.Name,
			InputSummary: summary,
			Result:       res.Content,
			IsError:      res.IsError,
			Elapsed:      res.Elapsed,
			Iteration:    iteration,
		})
		results = append(results, ToolResult{
			ToolCallID: tc.ID,
			Name:       tc.Name,
			Content:    res.Content,
			IsError:    res.IsError,
		})
	}
	return results
}

func isClaudeModel(model string) bool {
	return strings.Contains(strings.ToLower(model), "claude")
}

func displayName(agent *roster.Agent) string {
	if agent == nil {
		return "agent"
	}
	if agent.DisplayName != "" {
		return agent.DisplayName
	}
	return agent.Key
}

func summarizeInput(input map[string]any) string {
	if len(input) == 0 {
		return "{}"
	}
	data, err := json.Marshal(input)
	if err != nil {
		return fmt.Sprintf("%v", input)
	}
	return truncate(string(data), previewLimit)
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && s[cut]&0xC0 == 0x80 { // back off to a rune start
		cut--
	}
	return s[:cut] + "…"
}
