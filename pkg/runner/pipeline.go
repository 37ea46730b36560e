package runner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/consilium-ai/consilium/ent"
	"github.com/consilium-ai/consilium/pkg/events"
	"github.com/consilium-ai/consilium/pkg/models"
	"github.com/consilium-ai/consilium/pkg/protocol"
	"github.com/consilium-ai/consilium/pkg/roster"
	"github.com/consilium-ai/consilium/pkg/services"
)

// stepSummary is one step's row in a pipeline run's result record.
type stepSummary struct {
	StepIndex   int    `json:"step_index"`
	ProtocolKey string `json:"protocol_key"`
	Question    string `json:"question"`
	Synthesis   string `json:"synthesis,omitempty"`
}

// ExecutePipeline drives a pipeline run: each step's protocol in order,
// with {prev_output} threading between steps. The first failed step fails
// the whole run; completed steps stay persisted.
func (c *Controller) ExecutePipeline(ctx context.Context, r *ent.Run, sink Sink) error {
	persistCtx := context.WithoutCancel(ctx)

	if r.PipelineID == nil {
		err := errors.New("run has no pipeline")
		c.persistFailure(persistCtx, r.ID, err)
		return err
	}
	p, err := c.pipelines.Get(ctx, *r.PipelineID)
	if err != nil {
		err = fmt.Errorf("failed to load pipeline: %w", err)
		c.persistFailure(persistCtx, r.ID, err)
		return err
	}

	baseAgents, err := c.baseRoster(ctx, r.AgentKeys)
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

	started := time.Now()
	stream.Publish(events.New(events.TypeRunStart, r.ID, events.RunStartPayload{
		ProtocolKey: "pipeline:" + p.Name,
		Question:    r.Question,
	}))
	stream.Publish(events.New(events.TypeAgentRoster, r.ID, rosterPayload(baseAgents)))

	meter := newMeter(c.caller)
	summaries := make([]stepSummary, 0, len(p.Edges.Steps))
	prevOutput := ""
	lastSynthesis := ""

	for _, step := range p.Edges.Steps {
		if runCtx.Err() != nil {
			return c.finishFailed(persistCtx, r.ID, started, stream, sink, runCtx.Err())
		}

		question := protocol.Expand(step.QuestionTemplate, map[string]string{
			"question":    r.Question,
			"prev_output": prevOutput,
		})

		manifest, ctor, ok := protocol.Lookup(step.ProtocolKey)
		if !ok {
			return c.finishFailed(persistCtx, r.ID, started, stream, sink,
				fmt.Errorf("step %d: unknown protocol %q", step.StepIndex, step.ProtocolKey))
		}

		agents := baseAgents
		if len(step.AgentKeys) > 0 {
			agents, err = c.agents.Resolve(ctx, step.AgentKeys)
			if err != nil {
				return c.finishFailed(persistCtx, r.ID, started, stream, sink,
					fmt.Errorf("step %d: %w", step.StepIndex, err))
			}
		}
		if manifest.MaxAgents > 0 && len(agents) > manifest.MaxAgents {
			agents = agents[:manifest.MaxAgents]
		}

		rec, err := c.runs.CreateStep(persistCtx, r.ID, step.StepIndex, step.ProtocolKey, question)
		if err != nil {
			return c.finishFailed(persistCtx, r.ID, started, stream, sink,
				fmt.Errorf("step %d: %w", step.StepIndex, err))
		}
		stream.Publish(events.New(events.TypeStepStart, r.ID, events.StepStartPayload{
			StepOrder:   step.StepIndex,
			ProtocolKey: step.ProtocolKey,
			Question:    question,
		}))

		stepCtx := runCtx
		if !manifest.ToolsEnabled() {
			stepCtx = events.WithNoTools(runCtx, true)
		}
		cfg := protocol.Config{
			RunID:              r.ID,
			ThinkingModel:      c.cfg.ThinkingModel,
			OrchestrationModel: c.cfg.OrchestrationModel,
			ReasoningBudget:    c.cfg.ReasoningBudget,
			Rounds:             step.Rounds,
		}
		if step.ThinkingModel != "" {
			cfg.ThinkingModel = step.ThinkingModel
		}
		if step.OrchestrationModel != "" {
			cfg.OrchestrationModel = step.OrchestrationModel
		}

		// Chained meters: the step meter attributes calls to this step's
		// output rows, the run meter underneath keeps the run totals.
		stepMeter := newMeter(meter)
		var result *protocol.Result
		stepErr := c.drive(stepCtx, stream, sink, cancel, func(taskCtx context.Context) error {
			res, err := ctor(stepMeter).Run(taskCtx, question, agents, cfg)
			result = res
			return err
		})
		if stepErr != nil {
			if err := c.runs.FailStep(persistCtx, rec.ID, stepErr.Error()); err != nil {
				slog.Error("Failed to persist step failure", "run_id", r.ID, "step", step.StepIndex, "error", err)
			}
			stream.Publish(events.New(events.TypeStepComplete, r.ID, events.StepCompletePayload{
				StepOrder:   step.StepIndex,
				ProtocolKey: step.ProtocolKey,
				Status:      "failed",
			}))
			return c.finishFailed(persistCtx, r.ID, started, stream, sink,
				fmt.Errorf("step %d (%s): %w", step.StepIndex, step.ProtocolKey, stepErr))
		}

		records := Flatten(result)
		annotate(records, stepMeter)
		synthesis := SynthesisText(result)
		for _, out := range records {
			stream.Publish(events.New(events.TypeAgentOutput, r.ID, events.AgentOutputPayload{
				Agent: out.AgentName,
				Text:  out.Output,
			}))
		}
		if synthesis != "" {
			records = append(records, services.OutputRecord{AgentName: SynthesisAgent, Output: synthesis})
		}
		if err := c.runs.SaveOutputs(persistCtx, r.ID, rec.ID, records); err != nil {
			slog.Error("Failed to persist step outputs", "run_id", r.ID, "step", step.StepIndex, "error", err)
		}
		if err := c.runs.CompleteStep(persistCtx, rec.ID, synthesis, result.Serialize()); err != nil {
			slog.Error("Failed to complete step", "run_id", r.ID, "step", step.StepIndex, "error", err)
		}
		stream.Publish(events.New(events.TypeStepComplete, r.ID, events.StepCompletePayload{
			StepOrder:   step.StepIndex,
			ProtocolKey: step.ProtocolKey,
			Status:      "completed",
		}))
		if !forward(stream, sink) {
			cancel()
		}

		if step.OutputPassthrough {
			prevOutput = synthesis
			if prevOutput == "" && len(records) > 0 {
				prevOutput = records[len(records)-1].Output
			}
		}
		lastSynthesis = synthesis
		summaries = append(summaries, stepSummary{
			StepIndex:   step.StepIndex,
			ProtocolKey: step.ProtocolKey,
			Question:    question,
			Synthesis:   synthesis,
		})
	}

	resultJSON, err := json.MarshalIndent(summaries, "", "  ")
	if err != nil {
		resultJSON = []byte("[]")
	}
	usage, cost := meter.Totals()
	if _, err := c.runs.Complete(persistCtx, r.ID, models.RunCompletion{
		Synthesis:    lastSynthesis,
		ResultJSON:   string(resultJSON),
		InputTokens:  usage.InputTokens,
		OutputTokens: usage.OutputTokens,
		CostUSD:      cost,
	}); err != nil {
		slog.Error("Failed to complete run", "run_id", r.ID, "error", err)
	}

	if lastSynthesis != "" {
		stream.Publish(events.New(events.TypeSynthesis, r.ID, events.SynthesisPayload{Text: lastSynthesis}))
	}
	stream.Publish(events.New(events.TypeRunComplete, r.ID, events.RunCompletePayload{
		Status:         "completed",
		ElapsedSeconds: time.Since(started).Seconds(),
	}))
	forward(stream, sink)
	return nil
}

// baseRoster resolves the run-level roster without a protocol's agent
// window; steps clamp it themselves.
func (c *Controller) baseRoster(ctx context.Context, keys []string) ([]*roster.Agent, error) {
	if len(keys) == 0 {
		return roster.Builtins(), nil
	}
	return c.agents.Resolve(ctx, keys)
}
