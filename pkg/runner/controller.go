// Package runner drives protocol and pipeline runs end to end: lifecycle
// status transitions, roster hydration, event streaming, result extraction,
// and output persistence.
package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/consilium-ai/consilium/ent"
	"github.com/consilium-ai/consilium/pkg/events"
	"github.com/consilium-ai/consilium/pkg/llm"
	"github.com/consilium-ai/consilium/pkg/models"
	"github.com/consilium-ai/consilium/pkg/protocol"
	"github.com/consilium-ai/consilium/pkg/roster"
	"github.com/consilium-ai/consilium/pkg/services"
)

// drainInterval bounds how long a queued event waits before the controller
// forwards it to the consumer.
const drainInterval = 100 * time.Millisecond

// Sink receives drained events in production order. Returning false signals
// that the consumer is gone; the controller cancels the run in response.
type Sink func(events.Event) bool

// Config carries the controller-wide model defaults. Pipeline steps may
// override the models per step.
type Config struct {
	ThinkingModel      string
	OrchestrationModel string
	ReasoningBudget    int
}

// Controller executes runs against the protocol registry and persists their
// lifecycle and results.
type Controller struct {
	runs      *services.RunService
	agents    *services.AgentService
	pipelines *services.PipelineService
	caller    protocol.Caller
	cfg       Config
}

// New creates a run controller.
func New(runs *services.RunService, agents *services.AgentService, pipelines *services.PipelineService, caller protocol.Caller, cfg Config) *Controller {
	return &Controller{runs: runs, agents: agents, pipelines: pipelines, caller: caller, cfg: cfg}
}

// ExecuteProtocol drives one protocol run to a terminal state, forwarding
// every progress event to the sink. It returns the protocol error, if any;
// persistence problems are logged but never mask the run outcome.
func (c *Controller) ExecuteProtocol(ctx context.Context, r *ent.Run, sink Sink) error {
	// Terminal-state writes must survive consumer disconnect.
	persistCtx := context.WithoutCancel(ctx)

	manifest, ctor, ok := protocol.Lookup(r.ProtocolKey)
	if !ok {
		err := fmt.Errorf("unknown protocol %q", r.ProtocolKey)
		c.persistFailure(persistCtx, r.ID, err)
		return err
	}

	agents, err := c.resolveRoster(ctx, r.AgentKeys, manifest)
	if err != nil {
		c.persistFailure(persistCtx, r.ID, err)
		return err
	}

	if _, err := c.runs.MarkRunning(persistCtx, r.ID); err != nil {
		return fmt.Errorf("failed to mark run running: %w", err)
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	stream := events.NewStream()
	defer stream.Close()
	runCtx = events.NewContext(runCtx, stream)
	if !manifest.ToolsEnabled() {
		runCtx = events.WithNoTools(runCtx, true)
	}

	started := time.Now()
	stream.Publish(events.New(events.TypeRunStart, r.ID, events.RunStartPayload{
		ProtocolKey: r.ProtocolKey,
		Question:    r.Question,
	}))
	stream.Publish(events.New(events.TypeAgentRoster, r.ID, rosterPayload(agents)))
	stream.Publish(events.New(events.TypeStage, r.ID, events.StagePayload{
		Message: fmt.Sprintf("Running %s with %d agents", manifest.Name, len(agents)),
	}))

	meter := newMeter(c.caller)
	var result *protocol.Result
	runErr := c.drive(runCtx, stream, sink, cancel, func(taskCtx context.Context) error {
		res, err := ctor(meter).Run(taskCtx, r.Question, agents, protocol.Config{
			RunID:              r.ID,
			ThinkingModel:      c.cfg.ThinkingModel,
			OrchestrationModel: c.cfg.OrchestrationModel,
			ReasoningBudget:    c.cfg.ReasoningBudget,
			Rounds:             r.Rounds,
		})
		result = res
		return err
	})
	if runErr != nil {
		return c.finishFailed(persistCtx, r.ID, started, stream, sink, runErr)
	}

	records := Flatten(result)
	annotate(records, meter)
	synthesis := SynthesisText(result)
	for _, rec := range records {
		stream.Publish(events.New(events.TypeAgentOutput, r.ID, events.AgentOutputPayload{
			Agent: rec.AgentName,
			Text:  rec.Output,
		}))
	}
	if synthesis != "" {
		stream.Publish(events.New(events.TypeSynthesis, r.ID, events.SynthesisPayload{Text: synthesis}))
		records = append(records, services.OutputRecord{AgentName: SynthesisAgent, Output: synthesis})
	}

	if err := c.runs.SaveOutputs(persistCtx, r.ID, "", records); err != nil {
		slog.Error("Failed to persist run outputs", "run_id", r.ID, "error", err)
	}
	usage, cost := meter.Totals()
	if _, err := c.runs.Complete(persistCtx, r.ID, models.RunCompletion{
		Synthesis:    synthesis,
		ResultJSON:   result.Serialize(),
		InputTokens:  usage.InputTokens,
		OutputTokens: usage.OutputTokens,
		CostUSD:      cost,
	}); err != nil {
		slog.Error("Failed to complete run", "run_id", r.ID, "error", err)
	}

	stream.Publish(events.New(events.TypeRunComplete, r.ID, events.RunCompletePayload{
		Status:         "completed",
		ElapsedSeconds: time.Since(started).Seconds(),
	}))
	forward(stream, sink)
	return nil
}

// drive runs the work function in a background goroutine while draining the
// stream into the sink on a short poll. A refused sink cancels the run; the
// loop keeps draining until the work observes cancellation and returns.
func (c *Controller) drive(ctx context.Context, stream *events.Stream, sink Sink, cancel context.CancelFunc, work func(context.Context) error) error {
	done := make(chan error, 1)
	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				done <- &panicError{value: rec, stack: debug.Stack()}
			}
		}()
		done <- work(ctx)
	}()

	ticker := time.NewTicker(drainInterval)
	defer ticker.Stop()
	for {
		select {
		case err := <-done:
			forward(stream, sink)
			return err
		case <-ticker.C:
			if !forward(stream, sink) {
				cancel()
			}
		}
	}
}

// forward drains every queued event into the sink. Returns false as soon as
// the sink refuses one; undelivered events stay queued.
func forward(stream *events.Stream, sink Sink) bool {
	for {
		evt, ok := stream.TryNext()
		if !ok {
			return true
		}
		if !sink(evt) {
			return false
		}
	}
}

// finishFailed persists the failure and emits the error/run_complete pair.
func (c *Controller) finishFailed(persistCtx context.Context, runID string, started time.Time, stream *events.Stream, sink Sink, runErr error) error {
	c.persistFailure(persistCtx, runID, runErr)

	stream.Publish(events.New(events.TypeError, runID, events.ErrorPayload{
		Message: runErr.Error(),
		Stack:   stackOf(runErr),
	}))
	stream.Publish(events.New(events.TypeRunComplete, runID, events.RunCompletePayload{
		Status:         "failed",
		ElapsedSeconds: time.Since(started).Seconds(),
	}))
	forward(stream, sink)
	return runErr
}

func (c *Controller) persistFailure(ctx context.Context, runID string, runErr error) {
	if _, err := c.runs.Fail(ctx, runID, runErr.Error()); err != nil {
		slog.Error("Failed to persist run failure", "run_id", runID, "error", err)
	}
}

// resolveRoster hydrates the run's agents. An empty key list falls back to
// the builtin roster, clamped to the protocol's agent window.
func (c *Controller) resolveRoster(ctx context.Context, keys []string, manifest protocol.Manifest) ([]*roster.Agent, error) {
	var (
		agents []*roster.Agent
		err    error
	)
	if len(keys) == 0 {
		agents = roster.Builtins()
	} else {
		agents, err = c.agents.Resolve(ctx, keys)
		if err != nil {
			return nil, err
		}
	}
	if manifest.MaxAgents > 0 && len(agents) > manifest.MaxAgents {
		agents = agents[:manifest.MaxAgents]
	}
	if len(agents) < manifest.MinAgents {
		return nil, services.NewValidationError("agent_keys",
			fmt.Sprintf("%s needs at least %d agents, got %d", manifest.Key, manifest.MinAgents, len(agents)))
	}
	return agents, nil
}

func rosterPayload(agents []*roster.Agent) events.AgentRosterPayload {
	refs := make([]events.AgentRef, 0, len(agents))
	for _, a := range agents {
		refs = append(refs, events.AgentRef{Key: a.Key, DisplayName: a.DisplayName})
	}
	return events.AgentRosterPayload{Agents: refs}
}

// panicError carries the stack captured at the protocol goroutine's panic
// site, for the error event.
type panicError struct {
	value any
	stack []byte
}

func (e *panicError) Error() string {
	return fmt.Sprintf("protocol panicked: %v", e.value)
}

func stackOf(err error) string {
	var pe *panicError
	if errors.As(err, &pe) {
		return string(pe.stack)
	}
	return ""
}

// meter wraps the gateway to accumulate token usage and estimated cost
// across every call of one run, and keeps each agent's calls in production
// order so flattened output records can be attributed back to them.
type meter struct {
	inner protocol.Caller

	mu      sync.Mutex
	usage   llm.TokenUsage
	cost    float64
	byAgent map[string][]callFigures
}

// callFigures is one metered call's usage, pending attribution to an
// output record.
type callFigures struct {
	model     string
	usage     llm.TokenUsage
	cost      float64
	toolCalls []string
}

func newMeter(inner protocol.Caller) *meter {
	return &meter{inner: inner, byAgent: make(map[string][]callFigures)}
}

func (m *meter) Call(ctx context.Context, req llm.CallRequest) (*llm.CallResult, error) {
	res, err := m.inner.Call(ctx, req)
	if res != nil {
		model := req.Model
		if req.Agent != nil && req.Agent.ModelID != "" {
			model = req.Agent.ModelID
		}
		cost := llm.EstimateCostUSD(model, res.Usage)

		m.mu.Lock()
		m.usage.Add(res.Usage)
		m.cost += cost
		if req.Agent != nil {
			name := req.Agent.DisplayName
			if name == "" {
				name = req.Agent.Key
			}
			fig := callFigures{model: model, usage: res.Usage, cost: cost}
			for _, tc := range res.ToolCalls {
				fig.toolCalls = append(fig.toolCalls, tc.Tool)
			}
			m.byAgent[name] = append(m.byAgent[name], fig)
		}
		m.mu.Unlock()
	}
	return res, err
}

// take pops the named agent's oldest unclaimed call. Flattened records list
// an agent's outputs in the order its calls happened, so matching is FIFO.
func (m *meter) take(agentName string) (callFigures, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	pending := m.byAgent[agentName]
	if len(pending) == 0 {
		return callFigures{}, false
	}
	m.byAgent[agentName] = pending[1:]
	return pending[0], true
}

// Totals returns the accumulated usage and estimated cost.
func (m *meter) Totals() (llm.TokenUsage, float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.usage, m.cost
}

// annotate fills each record with the figures of the call that produced it.
// Unmatched rows (system authors, serialized fallbacks) keep zero usage.
func annotate(records []services.OutputRecord, m *meter) {
	for i := range records {
		fig, ok := m.take(records[i].AgentName)
		if !ok {
			continue
		}
		records[i].ModelID = fig.model
		records[i].ToolCalls = fig.toolCalls
		records[i].InputTokens = fig.usage.InputTokens
		records[i].OutputTokens = fig.usage.OutputTokens
		records[i].CostUSD = fig.cost
	}
}
