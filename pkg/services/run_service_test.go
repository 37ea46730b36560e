package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consilium-ai/consilium/ent/run"
	"github.com/consilium-ai/consilium/pkg/models"
)

func TestRunService_ProtocolLifecycle(t *testing.T) {
	client := newTestClient(t)
	svc := NewRunService(client)
	ctx := context.Background()

	created, err := svc.CreateProtocolRun(ctx, models.StartProtocolRunRequest{
		Question:    "Should we expand to Brazil?",
		ProtocolKey: "parallel-synthesis",
		Rounds:      2,
	}, []string{"cfo", "cto"})
	require.NoError(t, err)
	assert.Equal(t, run.StatusPending, created.Status)
	assert.Equal(t, run.KindProtocol, created.Kind)
	assert.Equal(t, []string{"cfo", "cto"}, created.AgentKeys)

	running, err := svc.MarkRunning(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusRunning, running.Status)
	require.NotNil(t, running.StartedAt)

	completed, err := svc.Complete(ctx, created.ID, models.RunCompletion{
		Synthesis:    "Expand, cautiously.",
		ResultJSON:   `{"kind":"perspectives"}`,
		InputTokens:  1200,
		OutputTokens: 450,
		CostUSD:      0.0123,
	})
	require.NoError(t, err)
	assert.Equal(t, run.StatusCompleted, completed.Status)
	require.NotNil(t, completed.Synthesis)
	assert.Equal(t, "Expand, cautiously.", *completed.Synthesis)
	require.NotNil(t, completed.DurationMs)
	assert.GreaterOrEqual(t, *completed.DurationMs, 0)
	assert.Equal(t, 1200, completed.InputTokens)
}

func TestRunService_FailAndList(t *testing.T) {
	client := newTestClient(t)
	svc := NewRunService(client)
	ctx := context.Background()

	first, err := svc.CreateProtocolRun(ctx, models.StartProtocolRunRequest{
		Question:    "q1",
		ProtocolKey: "debate",
	}, nil)
	require.NoError(t, err)
	_, err = svc.CreateProtocolRun(ctx, models.StartProtocolRunRequest{
		Question:    "q2",
		ProtocolKey: "delphi",
	}, nil)
	require.NoError(t, err)

	failed, err := svc.Fail(ctx, first.ID, "provider unavailable")
	require.NoError(t, err)
	assert.Equal(t, run.StatusFailed, failed.Status)
	require.NotNil(t, failed.ErrorMessage)
	assert.Equal(t, "provider unavailable", *failed.ErrorMessage)

	list, err := svc.List(ctx, models.RunFilters{Status: "failed"})
	require.NoError(t, err)
	assert.Equal(t, 1, list.TotalCount)
	require.Len(t, list.Runs, 1)
	assert.Equal(t, first.ID, list.Runs[0].ID)

	list, err = svc.List(ctx, models.RunFilters{ProtocolKey: "delphi"})
	require.NoError(t, err)
	assert.Equal(t, 1, list.TotalCount)
}

func TestRunService_OutputsAndDetail(t *testing.T) {
	client := newTestClient(t)
	svc := NewRunService(client)
	ctx := context.Background()

	created, err := svc.CreateProtocolRun(ctx, models.StartProtocolRunRequest{
		Question:    "q",
		ProtocolKey: "debate",
	}, nil)
	require.NoError(t, err)

	err = svc.SaveOutputs(ctx, created.ID, "", []OutputRecord{
		{
			AgentName:    "CFO",
			ModelID:      "claude-sonnet-4-5",
			Round:        1,
			Output:       "hold",
			ToolCalls:    []string{"web_search", "calculator"},
			InputTokens:  120,
			OutputTokens: 40,
			CostUSD:      0.0009,
		},
		{AgentName: "CTO", Round: 1, Output: "invest"},
		{AgentName: "_synthesis", Output: "invest with a stop-loss"},
	})
	require.NoError(t, err)

	detail, err := svc.GetDetail(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, detail.Run.ID)
	require.Len(t, detail.Outputs, 3)
	assert.Equal(t, "CFO", detail.Outputs[0].AgentName)
	assert.Equal(t, "claude-sonnet-4-5", detail.Outputs[0].ModelID)
	assert.Equal(t, 1, detail.Outputs[0].Round)
	assert.Equal(t, []string{"web_search", "calculator"}, detail.Outputs[0].ToolCalls)
	assert.Equal(t, 120, detail.Outputs[0].InputTokens)
	assert.Equal(t, 40, detail.Outputs[0].OutputTokens)
	assert.InDelta(t, 0.0009, detail.Outputs[0].CostUsd, 1e-9)
	assert.Equal(t, "_synthesis", detail.Outputs[2].AgentName)
}

func TestRunService_PipelineSteps(t *testing.T) {
	client := newTestClient(t)
	svc := NewRunService(client)
	ctx := context.Background()

	created, err := svc.CreatePipelineRun(ctx, models.StartPipelineRunRequest{
		Question:   "q",
		PipelineID: "p-1",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, run.KindPipeline, created.Kind)

	step0, err := svc.CreateStep(ctx, created.ID, 0, "swot", "q")
	require.NoError(t, err)
	require.NoError(t, svc.CompleteStep(ctx, step0.ID, "grid done", `{"kind":"perspectives"}`))

	step1, err := svc.CreateStep(ctx, created.ID, 1, "debate", "Given: grid done")
	require.NoError(t, err)
	require.NoError(t, svc.FailStep(ctx, step1.ID, "boom"))

	detail, err := svc.GetDetail(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, detail.Steps, 2)
	require.NotNil(t, detail.Steps[0].Synthesis)
	assert.Equal(t, "grid done", *detail.Steps[0].Synthesis)
	require.NotNil(t, detail.Steps[1].ErrorMessage)
	assert.Equal(t, "boom", *detail.Steps[1].ErrorMessage)

	_, err = svc.GetDetail(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
