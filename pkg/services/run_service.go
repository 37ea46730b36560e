package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/consilium-ai/consilium/ent"
	"github.com/consilium-ai/consilium/ent/agentoutput"
	"github.com/consilium-ai/consilium/ent/run"
	"github.com/consilium-ai/consilium/ent/runstep"
	"github.com/consilium-ai/consilium/pkg/models"
)

// RunService manages run lifecycle and result persistence.
type RunService struct {
	client *ent.Client
}

// NewRunService creates a new RunService.
func NewRunService(client *ent.Client) *RunService {
	return &RunService{client: client}
}

// CreateProtocolRun records a pending protocol run.
func (s *RunService) CreateProtocolRun(ctx context.Context, req models.StartProtocolRunRequest, agentKeys []string) (*ent.Run, error) {
	if req.Question == "" {
		return nil, NewValidationError("question", "required")
	}
	if req.ProtocolKey == "" {
		return nil, NewValidationError("protocol_key", "required")
	}

	builder := s.client.Run.Create().
		SetID(uuid.New().String()).
		SetKind(run.KindProtocol).
		SetQuestion(req.Question).
		SetProtocolKey(req.ProtocolKey).
		SetAgentKeys(agentKeys).
		SetStatus(run.StatusPending)
	if req.TeamID != "" {
		builder.SetTeamID(req.TeamID)
	}
	if req.Rounds > 0 {
		builder.SetRounds(req.Rounds)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create run: %w", err)
	}
	return created, nil
}

// CreatePipelineRun records a pending pipeline run.
func (s *RunService) CreatePipelineRun(ctx context.Context, req models.StartPipelineRunRequest, agentKeys []string) (*ent.Run, error) {
	if req.Question == "" {
		return nil, NewValidationError("question", "required")
	}
	if req.PipelineID == "" {
		return nil, NewValidationError("pipeline_id", "required")
	}

	builder := s.client.Run.Create().
		SetID(uuid.New().String()).
		SetKind(run.KindPipeline).
		SetQuestion(req.Question).
		SetPipelineID(req.PipelineID).
		SetAgentKeys(agentKeys).
		SetStatus(run.StatusPending)
	if req.TeamID != "" {
		builder.SetTeamID(req.TeamID)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create run: %w", err)
	}
	return created, nil
}

// MarkRunning transitions a pending run to running.
func (s *RunService) MarkRunning(ctx context.Context, id string) (*ent.Run, error) {
	updated, err := s.client.Run.UpdateOneID(id).
		SetStatus(run.StatusRunning).
		SetStartedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to mark run running: %w", err)
	}
	return updated, nil
}

// Complete persists the terminal success state.
func (s *RunService) Complete(ctx context.Context, id string, completion models.RunCompletion) (*ent.Run, error) {
	current, err := s.client.Run.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load run: %w", err)
	}

	completedAt := completion.CompletedAt
	if completedAt.IsZero() {
		completedAt = time.Now().UTC()
	}
	builder := current.Update().
		SetStatus(run.StatusCompleted).
		SetCompletedAt(completedAt).
		SetSynthesis(completion.Synthesis).
		SetResultJSON(completion.ResultJSON).
		SetInputTokens(completion.InputTokens).
		SetOutputTokens(completion.OutputTokens).
		SetCostUsd(completion.CostUSD)
	if current.StartedAt != nil {
		builder.SetDurationMs(int(completedAt.Sub(*current.StartedAt).Milliseconds()))
	}

	updated, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to complete run: %w", err)
	}
	return updated, nil
}

// Fail persists the terminal failure state.
func (s *RunService) Fail(ctx context.Context, id string, message string) (*ent.Run, error) {
	updated, err := s.client.Run.UpdateOneID(id).
		SetStatus(run.StatusFailed).
		SetCompletedAt(time.Now().UTC()).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fail run: %w", err)
	}
	return updated, nil
}

// Cancel persists the cancelled state.
func (s *RunService) Cancel(ctx context.Context, id string) (*ent.Run, error) {
	updated, err := s.client.Run.UpdateOneID(id).
		SetStatus(run.StatusCancelled).
		SetCompletedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to cancel run: %w", err)
	}
	return updated, nil
}

// List returns runs matching the filters, newest first, with a total count.
func (s *RunService) List(ctx context.Context, filters models.RunFilters) (*models.RunListResponse, error) {
	query := s.client.Run.Query()
	if filters.Status != "" {
		query = query.Where(run.StatusEQ(run.Status(filters.Status)))
	}
	if filters.ProtocolKey != "" {
		query = query.Where(run.ProtocolKeyEQ(filters.ProtocolKey))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count runs: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	runs, err := query.
		Order(ent.Desc(run.FieldCreatedAt)).
		Limit(limit).
		Offset(filters.Offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	return &models.RunListResponse{
		Runs:       runs,
		TotalCount: total,
		Limit:      limit,
		Offset:     filters.Offset,
	}, nil
}

// GetDetail returns one run with its steps and outputs.
func (s *RunService) GetDetail(ctx context.Context, id string) (*models.RunDetail, error) {
	r, err := s.client.Run.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	steps, err := s.client.RunStep.Query().
		Where(runstep.RunID(id)).
		Order(ent.Asc(runstep.FieldStepIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load run steps: %w", err)
	}

	outputs, err := s.client.AgentOutput.Query().
		Where(agentoutput.RunID(id)).
		Order(ent.Asc(agentoutput.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load run outputs: %w", err)
	}

	return &models.RunDetail{Run: r, Steps: steps, Outputs: outputs}, nil
}

// OutputRecord is one flattened agent contribution to persist, with the
// usage figures of the call that produced it. Zero usage means the row was
// not attributable to a metered call (system rows, serialized fallbacks).
type OutputRecord struct {
	AgentName    string
	ModelID      string
	Round        int
	Stage        string
	Output       string
	ToolCalls    []string
	InputTokens  int
	OutputTokens int
	CostUSD      float64
}

// SaveOutputs persists the flattened result contributions for one run.
// runStepID ties pipeline outputs to their step; empty for protocol runs.
func (s *RunService) SaveOutputs(ctx context.Context, runID, runStepID string, records []OutputRecord) error {
	for _, rec := range records {
		builder := s.client.AgentOutput.Create().
			SetID(uuid.New().String()).
			SetRunID(runID).
			SetAgentName(rec.AgentName).
			SetOutput(rec.Output)
		if runStepID != "" {
			builder.SetRunStepID(runStepID)
		}
		if rec.ModelID != "" {
			builder.SetModelID(rec.ModelID)
		}
		if rec.Round > 0 {
			builder.SetRound(rec.Round)
		}
		if rec.Stage != "" {
			builder.SetStage(rec.Stage)
		}
		if len(rec.ToolCalls) > 0 {
			builder.SetToolCalls(rec.ToolCalls)
		}
		builder.SetInputTokens(rec.InputTokens).
			SetOutputTokens(rec.OutputTokens).
			SetCostUsd(rec.CostUSD)
		if _, err := builder.Save(ctx); err != nil {
			return fmt.Errorf("failed to save output for %s: %w", rec.AgentName, err)
		}
	}
	return nil
}

// CreateStep records one pending pipeline step execution.
func (s *RunService) CreateStep(ctx context.Context, runID string, stepIndex int, protocolKey, question string) (*ent.RunStep, error) {
	created, err := s.client.RunStep.Create().
		SetID(uuid.New().String()).
		SetRunID(runID).
		SetStepIndex(stepIndex).
		SetProtocolKey(protocolKey).
		SetQuestion(question).
		SetStatus(runstep.StatusRunning).
		SetStartedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create run step: %w", err)
	}
	return created, nil
}

// CompleteStep persists a step's success state.
func (s *RunService) CompleteStep(ctx context.Context, stepID, synthesis, resultJSON string) error {
	_, err := s.client.RunStep.UpdateOneID(stepID).
		SetStatus(runstep.StatusCompleted).
		SetCompletedAt(time.Now().UTC()).
		SetSynthesis(synthesis).
		SetResultJSON(resultJSON).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to complete run step: %w", err)
	}
	return nil
}

// FailStep persists a step's failure state.
func (s *RunService) FailStep(ctx context.Context, stepID, message string) error {
	_, err := s.client.RunStep.UpdateOneID(stepID).
		SetStatus(runstep.StatusFailed).
		SetCompletedAt(time.Now().UTC()).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to fail run step: %w", err)
	}
	return nil
}
