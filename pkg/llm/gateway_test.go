package llm

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consilium-ai/consilium/pkg/events"
	"github.com/consilium-ai/consilium/pkg/roster"
	"github.com/consilium-ai/consilium/pkg/tools"
)

// stubProvider replays scripted responses; once the script runs out it keeps
// returning the last one.
type stubProvider struct {
	name      string
	responses []*Response
	calls     int
	lastReq   *Request
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Complete(_ context.Context, req *Request) (*Response, error) {
	s.calls++
	s.lastReq = req
	idx := s.calls - 1
	if idx >= len(s.responses) {
		idx = len(s.responses) - 1
	}
	if idx < 0 {
		return nil, fmt.Errorf("stub has no responses")
	}
	return s.responses[idx], nil
}

func textResponse(text string) *Response {
	return &Response{
		Text:       text,
		StopReason: "end_turn",
		Usage:      TokenUsage{InputTokens: 10, OutputTokens: 5},
	}
}

func toolUseResponse(id, tool string, input map[string]any) *Response {
	return &Response{
		StopReason: StopReasonToolUse,
		ToolCalls:  []ToolCall{{ID: id, Name: tool, Input: input}},
		Usage:      TokenUsage{InputTokens: 10, OutputTokens: 5},
	}
}

func newTestGateway(primary, compat Provider) (*Gateway, *tools.Registry) {
	registry := tools.NewRegistry()
	registry.Register(tools.Definition{
		Name:             "echo",
		Description:      "echo back the text input",
		ParametersSchema: `{"type":"object","properties":{"text":{"type":"string"}}}`,
	}, func(_ context.Context, input map[string]any, _ tools.Settings) (string, error) {
		text, _ := input["text"].(string)
		return "echo: " + text, nil
	})
	executor := tools.NewExecutor(registry, tools.Settings{})
	return NewGateway(primary, compat, registry, executor, "claude-sonnet-4"), registry
}

func TestCall_PlainCompletion(t *testing.T) {
	stub := &stubProvider{name: "anthropic", responses: []*Response{textResponse("the answer")}}
	g, _ := newTestGateway(stub, nil)

	res, err := g.Call(context.Background(), CallRequest{Prompt: "question"})
	require.NoError(t, err)
	assert.Equal(t, "the answer", res.Text)
	assert.Equal(t, 1, res.Iterations)
	assert.Equal(t, TokenUsage{InputTokens: 10, OutputTokens: 5}, res.Usage)
	assert.Equal(t, "claude-sonnet-4", stub.lastReq.Model, "default model applies")
	assert.Empty(t, res.ToolCalls)
}

func TestCall_ToolLoopFeedsResultsBack(t *testing.T) {
	stub := &stubProvider{name: "anthropic", responses: []*Response{
		toolUseResponse("tc-1", "echo", map[string]any{"text": "hi"}),
		textResponse("done"),
	}}
	g, _ := newTestGateway(stub, nil)
	agent := &roster.Agent{Key: "cfo", DisplayName: "CFO", Tools: []string{"echo"}}

	res, err := g.Call(context.Background(), CallRequest{Agent: agent, Prompt: "question"})
	require.NoError(t, err)
	assert.Equal(t, "done", res.Text)
	assert.Equal(t, 2, res.Iterations)
	require.Len(t, res.ToolCalls, 1)
	assert.Equal(t, "echo", res.ToolCalls[0].Tool)
	assert.Equal(t, "echo: hi", res.ToolCalls[0].Result)
	assert.False(t, res.ToolCalls[0].IsError)

	// Second provider call must see the assistant tool-use turn and the tool
	// result fed back as a user turn.
	msgs := stub.lastReq.Messages
	require.Len(t, msgs, 3)
	assert.Equal(t, RoleAssistant, msgs[1].Role)
	require.Len(t, msgs[1].ToolCalls, 1)
	assert.Equal(t, RoleUser, msgs[2].Role)
	require.Len(t, msgs[2].ToolResults, 1)
	assert.Equal(t, "tc-1", msgs[2].ToolResults[0].ToolCallID)
	assert.Equal(t, "echo: hi", msgs[2].ToolResults[0].Content)
}

func TestCall_ToolLoopIterationCap(t *testing.T) {
	// A model that never stops asking for tools.
	stub := &stubProvider{name: "anthropic", responses: []*Response{
		toolUseResponse("tc", "echo", map[string]any{"text": "again"}),
	}}
	g, _ := newTestGateway(stub, nil)
	agent := &roster.Agent{Key: "cto", Tools: []string{"echo"}}

	stream := events.NewStream()
	ctx := events.NewContext(context.Background(), stream)

	res, err := g.Call(ctx, CallRequest{Agent: agent, Prompt: "question", Meta: Meta{RunID: "run-1"}})
	require.NoError(t, err)
	assert.Equal(t, MaxToolIterations, res.Iterations)
	assert.Equal(t, MaxToolIterations, stub.calls)
	assert.Len(t, res.ToolCalls, MaxToolIterations)

	// One tool_call/tool_result pair per iteration, in order.
	var callCount, resultCount int
	for {
		evt, ok := stream.TryNext()
		if !ok {
			break
		}
		switch evt.Type {
		case events.TypeToolCall:
			callCount++
			payload := evt.Payload.(events.ToolCallPayload)
			assert.Equal(t, callCount, payload.Iteration)
			assert.Equal(t, "run-1", evt.RunID)
		case events.TypeToolResult:
			resultCount++
		}
		assert.GreaterOrEqual(t, callCount, resultCount, "call precedes its result")
	}
	assert.Equal(t, MaxToolIterations, callCount)
	assert.Equal(t, MaxToolIterations, resultCount)
}

func TestCall_ToolSuppression(t *testing.T) {
	stub := &stubProvider{name: "anthropic", responses: []*Response{textResponse("ok")}}
	g, _ := newTestGateway(stub, nil)
	agent := &roster.Agent{Key: "cmo", Tools: []string{"echo"}}

	// Request-level suppression.
	_, err := g.Call(context.Background(), CallRequest{Agent: agent, Prompt: "q", NoTools: true})
	require.NoError(t, err)
	assert.Empty(t, stub.lastReq.Tools)

	// Context-level suppression wins over the agent's tool list.
	ctx := events.WithNoTools(context.Background(), true)
	_, err = g.Call(ctx, CallRequest{Agent: agent, Prompt: "q"})
	require.NoError(t, err)
	assert.Empty(t, stub.lastReq.Tools)

	// Without suppression the agent's tools resolve through the registry.
	_, err = g.Call(context.Background(), CallRequest{Agent: agent, Prompt: "q"})
	require.NoError(t, err)
	require.Len(t, stub.lastReq.Tools, 1)
	assert.Equal(t, "echo", stub.lastReq.Tools[0].Name)
}

func TestCall_ExplicitToolsOverrideAgentList(t *testing.T) {
	stub := &stubProvider{name: "anthropic", responses: []*Response{textResponse("ok")}}
	g, _ := newTestGateway(stub, nil)
	agent := &roster.Agent{Key: "coo", Tools: []string{"echo"}}

	custom := []tools.Definition{{Name: "custom_tool", ParametersSchema: `{"type":"object"}`}}
	_, err := g.Call(context.Background(), CallRequest{Agent: agent, Prompt: "q", Tools: custom})
	require.NoError(t, err)
	require.Len(t, stub.lastReq.Tools, 1)
	assert.Equal(t, "custom_tool", stub.lastReq.Tools[0].Name)
}

func TestCall_PinnedModelRoutesToCompatProvider(t *testing.T) {
	primary := &stubProvider{name: "anthropic", responses: []*Response{textResponse("claude")}}
	compat := &stubProvider{name: "openai", responses: []*Response{textResponse("gpt")}}
	g, _ := newTestGateway(primary, compat)
	agent := &roster.Agent{Key: "analyst", ModelID: "gpt-4o"}

	res, err := g.Call(context.Background(), CallRequest{Agent: agent, Prompt: "q"})
	require.NoError(t, err)
	assert.Equal(t, "gpt", res.Text)
	assert.Equal(t, 0, primary.calls)
	assert.Equal(t, 1, compat.calls)
}

func TestCall_PinnedModelWithoutCompatProviderFails(t *testing.T) {
	primary := &stubProvider{name: "anthropic", responses: []*Response{textResponse("claude")}}
	g, _ := newTestGateway(primary, nil)
	agent := &roster.Agent{Key: "analyst", ModelID: "gpt-4o"}

	_, err := g.Call(context.Background(), CallRequest{Agent: agent, Prompt: "q"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat-completions provider")
}

func TestCall_AgentDefaultsApply(t *testing.T) {
	stub := &stubProvider{name: "anthropic", responses: []*Response{textResponse("ok")}}
	g, _ := newTestGateway(stub, nil)
	temp := 0.3
	agent := &roster.Agent{
		Key:          "cfo",
		SystemPrompt: "You are the CFO.",
		ModelID:      "claude-haiku-4",
		MaxTokens:    2048,
		Temperature:  &temp,
	}

	_, err := g.Call(context.Background(), CallRequest{Agent: agent, Prompt: "q"})
	require.NoError(t, err)
	assert.Equal(t, "claude-haiku-4", stub.lastReq.Model)
	assert.Equal(t, "You are the CFO.", stub.lastReq.System)
	assert.Equal(t, 2048, stub.lastReq.MaxTokens)
	require.NotNil(t, stub.lastReq.Temperature)
	assert.Equal(t, 0.3, *stub.lastReq.Temperature)
}

func TestEstimateCostUSD(t *testing.T) {
	usage := TokenUsage{InputTokens: 1_000_000, OutputTokens: 1_000_000}
	assert.InDelta(t, 18.0, EstimateCostUSD("claude-sonnet-4-20250514", usage), 1e-9)
	assert.InDelta(t, 90.0, EstimateCostUSD("claude-opus-4", usage), 1e-9)
	assert.Zero(t, EstimateCostUSD("mystery-model", usage))
}

func TestTruncatePreservesRunes(t *testing.T) {
	s := "héllo wörld"
	got := truncate(s, 6)
	assert.LessOrEqual(t, len(got), 6+len("…"))
	for _, r := range got {
		assert.NotEqual(t, '�', r)
	}
	assert.Equal(t, "short", truncate("short", 10))
}
