package runner

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consilium-ai/consilium/ent"
	"github.com/consilium-ai/consilium/ent/run"
	"github.com/consilium-ai/consilium/ent/runstep"
	"github.com/consilium-ai/consilium/pkg/events"
	"github.com/consilium-ai/consilium/pkg/llm"
	"github.com/consilium-ai/consilium/pkg/models"
	"github.com/consilium-ai/consilium/pkg/protocol"
	_ "github.com/consilium-ai/consilium/pkg/protocol/protocols" // register protocol keys
	"github.com/consilium-ai/consilium/pkg/services"
	"github.com/consilium-ai/consilium/test/util"
)

// scriptedCaller answers gateway calls from a response function and records
// every request.
type scriptedCaller struct {
	mu       sync.Mutex
	requests []llm.CallRequest
	respond  func(req llm.CallRequest) (string, error)
}

func (s *scriptedCaller) Call(ctx context.Context, req llm.CallRequest) (*llm.CallResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.mu.Unlock()

	text := "ok"
	if s.respond != nil {
		var err error
		if text, err = s.respond(req); err != nil {
			return nil, err
		}
	}
	return &llm.CallResult{Text: text, Usage: llm.TokenUsage{InputTokens: 10, OutputTokens: 5}}, nil
}

func (s *scriptedCaller) recorded() []llm.CallRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]llm.CallRequest(nil), s.requests...)
}

// blockingCaller parks every call until the run context is cancelled.
type blockingCaller struct{}

func (blockingCaller) Call(ctx context.Context, _ llm.CallRequest) (*llm.CallResult, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

// eventLog is a sink that records everything it accepts.
type eventLog struct {
	mu     sync.Mutex
	events []events.Event
}

func (l *eventLog) sink(evt events.Event) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, evt)
	return true
}

func (l *eventLog) all() []events.Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]events.Event(nil), l.events...)
}

func (l *eventLog) ofType(t events.Type) []events.Event {
	var matched []events.Event
	for _, evt := range l.all() {
		if evt.Type == t {
			matched = append(matched, evt)
		}
	}
	return matched
}

type testEnv struct {
	runs      *services.RunService
	agents    *services.AgentService
	pipelines *services.PipelineService
}

func newTestEnv(t *testing.T) (*ent.Client, *testEnv) {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	agents := services.NewAgentService(client)
	return client, &testEnv{
		runs:      services.NewRunService(client),
		agents:    agents,
		pipelines: services.NewPipelineService(client),
	}
}

func newController(env *testEnv, caller protocol.Caller) *Controller {
	return New(env.runs, env.agents, env.pipelines, caller, Config{
		ThinkingModel:      "claude-sonnet-4-5",
		OrchestrationModel: "claude-haiku-4-5",
	})
}

func TestControllerProtocolRunCompletes(t *testing.T) {
	_, env := newTestEnv(t)
	ctx := context.Background()

	caller := &scriptedCaller{respond: func(req llm.CallRequest) (string, error) {
		if req.Agent == nil {
			return "Combined recommendation.", nil
		}
		return "Perspective from " + req.Agent.DisplayName, nil
	}}
	ctrl := newController(env, caller)

	r, err := env.runs.CreateProtocolRun(ctx, models.StartProtocolRunRequest{
		Question:    "Should we acquire Acme Corp?",
		ProtocolKey: "parallel-synthesis",
	}, []string{"cfo", "cto"})
	require.NoError(t, err)

	log := &eventLog{}
	require.NoError(t, ctrl.ExecuteProtocol(ctx, r, log.sink))

	evts := log.all()
	require.NotEmpty(t, evts)
	assert.Equal(t, events.TypeRunStart, evts[0].Type)
	assert.Equal(t, events.TypeRunComplete, evts[len(evts)-1].Type)
	complete := evts[len(evts)-1].Payload.(events.RunCompletePayload)
	assert.Equal(t, "completed", complete.Status)

	roster := log.ofType(events.TypeAgentRoster)
	require.Len(t, roster, 1)
	assert.Len(t, roster[0].Payload.(events.AgentRosterPayload).Agents, 2)
	assert.Len(t, log.ofType(events.TypeAgentOutput), 2)
	synth := log.ofType(events.TypeSynthesis)
	require.Len(t, synth, 1)
	assert.Equal(t, "Combined recommendation.", synth[0].Payload.(events.SynthesisPayload).Text)

	detail, err := env.runs.GetDetail(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusCompleted, detail.Run.Status)
	require.NotNil(t, detail.Run.Synthesis)
	assert.Equal(t, "Combined recommendation.", *detail.Run.Synthesis)
	require.Len(t, detail.Outputs, 3)

	// 2 perspective calls + 1 synthesis call, 10 in / 5 out each.
	assert.Equal(t, 30, detail.Run.InputTokens)
	assert.Equal(t, 15, detail.Run.OutputTokens)
	assert.Greater(t, detail.Run.CostUsd, 0.0)
	require.Len(t, caller.recorded(), 3)

	// Each agent row carries its own call's figures; the synthesis row was
	// produced by a system call and stays unattributed.
	for _, out := range detail.Outputs {
		if out.AgentName == SynthesisAgent {
			assert.Zero(t, out.InputTokens)
			assert.Empty(t, out.ModelID)
			continue
		}
		assert.Equal(t, "claude-sonnet-4-5", out.ModelID)
		assert.Equal(t, 10, out.InputTokens)
		assert.Equal(t, 5, out.OutputTokens)
		assert.Greater(t, out.CostUsd, 0.0)
	}
}

// toolCaller reports one executed tool per agent call.
type toolCaller struct{}

func (toolCaller) Call(ctx context.Context, req llm.CallRequest) (*llm.CallResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	res := &llm.CallResult{Text: "ok", Usage: llm.TokenUsage{InputTokens: 10, OutputTokens: 5}}
	if req.Agent != nil {
		res.ToolCalls = []llm.ToolCallRecord{{Tool: "web_search", Iteration: 1}}
	}
	return res, nil
}

func TestControllerOutputsCarryToolCalls(t *testing.T) {
	_, env := newTestEnv(t)
	ctx := context.Background()
	ctrl := newController(env, toolCaller{})

	r, err := env.runs.CreateProtocolRun(ctx, models.StartProtocolRunRequest{
		Question:    "q",
		ProtocolKey: "parallel-synthesis",
	}, []string{"cfo", "cto"})
	require.NoError(t, err)

	log := &eventLog{}
	require.NoError(t, ctrl.ExecuteProtocol(ctx, r, log.sink))

	detail, err := env.runs.GetDetail(ctx, r.ID)
	require.NoError(t, err)
	require.Len(t, detail.Outputs, 3)
	for _, out := range detail.Outputs {
		if out.AgentName == SynthesisAgent {
			assert.Empty(t, out.ToolCalls)
			continue
		}
		assert.Equal(t, []string{"web_search"}, out.ToolCalls)
	}
}

func TestControllerRunFailurePersistsAndEmitsError(t *testing.T) {
	_, env := newTestEnv(t)
	ctx := context.Background()

	caller := &scriptedCaller{respond: func(llm.CallRequest) (string, error) {
		return "", errors.New("provider unavailable")
	}}
	ctrl := newController(env, caller)

	r, err := env.runs.CreateProtocolRun(ctx, models.StartProtocolRunRequest{
		Question:    "q",
		ProtocolKey: "parallel-synthesis",
	}, []string{"cfo", "cto"})
	require.NoError(t, err)

	log := &eventLog{}
	runErr := ctrl.ExecuteProtocol(ctx, r, log.sink)
	require.Error(t, runErr)

	errEvents := log.ofType(events.TypeError)
	require.Len(t, errEvents, 1)
	assert.Contains(t, errEvents[0].Payload.(events.ErrorPayload).Message, "provider unavailable")
	complete := log.ofType(events.TypeRunComplete)
	require.Len(t, complete, 1)
	assert.Equal(t, "failed", complete[0].Payload.(events.RunCompletePayload).Status)

	detail, err := env.runs.GetDetail(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusFailed, detail.Run.Status)
	require.NotNil(t, detail.Run.ErrorMessage)
	assert.Contains(t, *detail.Run.ErrorMessage, "provider unavailable")
}

func TestControllerUnknownProtocolFailsRun(t *testing.T) {
	_, env := newTestEnv(t)
	ctx := context.Background()
	ctrl := newController(env, &scriptedCaller{})

	r, err := env.runs.CreateProtocolRun(ctx, models.StartProtocolRunRequest{
		Question:    "q",
		ProtocolKey: "parallel-synthesis",
	}, nil)
	require.NoError(t, err)
	// Simulate a stale record whose protocol no longer exists.
	r.ProtocolKey = "retired-protocol"

	log := &eventLog{}
	runErr := ctrl.ExecuteProtocol(ctx, r, log.sink)
	require.Error(t, runErr)
	assert.Contains(t, runErr.Error(), "unknown protocol")

	loaded, err := env.runs.GetDetail(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusFailed, loaded.Run.Status)
}

func TestControllerConsumerCloseCancelsRun(t *testing.T) {
	_, env := newTestEnv(t)
	ctx := context.Background()
	ctrl := newController(env, blockingCaller{})

	r, err := env.runs.CreateProtocolRun(ctx, models.StartProtocolRunRequest{
		Question:    "q",
		ProtocolKey: "parallel-synthesis",
	}, []string{"cfo", "cto"})
	require.NoError(t, err)

	// The consumer refuses every event, as a closed SSE connection would.
	gone := func(events.Event) bool { return false }
	runErr := ctrl.ExecuteProtocol(ctx, r, gone)
	require.Error(t, runErr)
	assert.ErrorIs(t, runErr, context.Canceled)

	loaded, err := env.runs.GetDetail(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusFailed, loaded.Run.Status)
}

func TestControllerPipelinePassthrough(t *testing.T) {
	_, env := newTestEnv(t)
	ctx := context.Background()

	var calls int
	var mu sync.Mutex
	caller := &scriptedCaller{respond: func(llm.CallRequest) (string, error) {
		mu.Lock()
		defer mu.Unlock()
		calls++
		if calls == 1 {
			return "S1", nil
		}
		return "S2", nil
	}}
	ctrl := newController(env, caller)

	p, err := env.pipelines.Create(ctx, models.CreatePipelineRequest{
		Name: "two-step",
		Steps: []models.PipelineStepSpec{
			{ProtocolKey: "meta-framer", QuestionTemplate: "{question}", OutputPassthrough: true},
			{ProtocolKey: "meta-framer", QuestionTemplate: "Given: {prev_output}"},
		},
	})
	require.NoError(t, err)

	r, err := env.runs.CreatePipelineRun(ctx, models.StartPipelineRunRequest{
		Question:   "Where should we expand?",
		PipelineID: p.ID,
	}, nil)
	require.NoError(t, err)

	log := &eventLog{}
	require.NoError(t, ctrl.ExecutePipeline(ctx, r, log.sink))

	starts := log.ofType(events.TypeStepStart)
	require.Len(t, starts, 2)
	assert.Equal(t, "Given: S1", starts[1].Payload.(events.StepStartPayload).Question)

	requests := caller.recorded()
	require.Len(t, requests, 2)
	assert.Contains(t, requests[1].Prompt, "Given: S1")

	detail, err := env.runs.GetDetail(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusCompleted, detail.Run.Status)
	require.NotNil(t, detail.Run.Synthesis)
	assert.Equal(t, "S2", *detail.Run.Synthesis)
	require.Len(t, detail.Steps, 2)
	assert.Equal(t, runstep.StatusCompleted, detail.Steps[0].Status)
	assert.Equal(t, "Given: S1", detail.Steps[1].Question)
}

func TestControllerPipelineStepFailureFailsRun(t *testing.T) {
	_, env := newTestEnv(t)
	ctx := context.Background()

	var calls int
	var mu sync.Mutex
	caller := &scriptedCaller{respond: func(llm.CallRequest) (string, error) {
		mu.Lock()
		defer mu.Unlock()
		calls++
		if calls == 1 {
			return "S1", nil
		}
		return "", errors.New("boom")
	}}
	ctrl := newController(env, caller)

	p, err := env.pipelines.Create(ctx, models.CreatePipelineRequest{
		Name: "fails-midway",
		Steps: []models.PipelineStepSpec{
			{ProtocolKey: "meta-framer", QuestionTemplate: "{question}", OutputPassthrough: true},
			{ProtocolKey: "meta-framer", QuestionTemplate: "{prev_output}"},
		},
	})
	require.NoError(t, err)

	r, err := env.runs.CreatePipelineRun(ctx, models.StartPipelineRunRequest{
		Question:   "q",
		PipelineID: p.ID,
	}, nil)
	require.NoError(t, err)

	log := &eventLog{}
	runErr := ctrl.ExecutePipeline(ctx, r, log.sink)
	require.Error(t, runErr)
	assert.True(t, strings.Contains(runErr.Error(), "boom"))

	detail, err := env.runs.GetDetail(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusFailed, detail.Run.Status)
	require.Len(t, detail.Steps, 2)
	assert.Equal(t, runstep.StatusCompleted, detail.Steps[0].Status)
	assert.Equal(t, runstep.StatusFailed, detail.Steps[1].Status)

	completes := log.ofType(events.TypeStepComplete)
	require.Len(t, completes, 2)
	assert.Equal(t, "failed", completes[1].Payload.(events.StepCompletePayload).Status)
}
