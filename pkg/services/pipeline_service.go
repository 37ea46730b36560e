package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/consilium-ai/consilium/ent"
	"github.com/consilium-ai/consilium/ent/pipeline"
	"github.com/consilium-ai/consilium/ent/pipelinestep"
	"github.com/consilium-ai/consilium/pkg/models"
	"github.com/consilium-ai/consilium/pkg/protocol"
)

// PipelineService manages pipelines and their ordered steps.
type PipelineService struct {
	client *ent.Client
}

// NewPipelineService creates a new PipelineService.
func NewPipelineService(client *ent.Client) *PipelineService {
	return &PipelineService{client: client}
}

// Create stores a pipeline and its steps in one transaction. Every step's
// protocol key must be registered.
func (s *PipelineService) Create(ctx context.Context, req models.CreatePipelineRequest) (*ent.Pipeline, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if len(req.Steps) == 0 {
		return nil, NewValidationError("steps", "at least one step required")
	}
	for i, step := range req.Steps {
		if _, _, ok := protocol.Lookup(step.ProtocolKey); !ok {
			return nil, NewValidationError("steps",
				fmt.Sprintf("step %d: unknown protocol %q", i, step.ProtocolKey))
		}
		if step.QuestionTemplate == "" {
			return nil, NewValidationError("steps",
				fmt.Sprintf("step %d: question_template required", i))
		}
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	builder := tx.Pipeline.Create().
		SetID(uuid.New().String()).
		SetName(req.Name)
	if req.Description != "" {
		builder.SetDescription(req.Description)
	}
	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create pipeline: %w", err)
	}

	for i, step := range req.Steps {
		stepBuilder := tx.PipelineStep.Create().
			SetID(uuid.New().String()).
			SetPipelineID(created.ID).
			SetStepIndex(i).
			SetProtocolKey(step.ProtocolKey).
			SetQuestionTemplate(step.QuestionTemplate).
			SetOutputPassthrough(step.OutputPassthrough)
		if len(step.AgentKeys) > 0 {
			stepBuilder.SetAgentKeys(step.AgentKeys)
		}
		if step.Rounds > 0 {
			stepBuilder.SetRounds(step.Rounds)
		}
		if step.ThinkingModel != "" {
			stepBuilder.SetThinkingModel(step.ThinkingModel)
		}
		if step.OrchestrationModel != "" {
			stepBuilder.SetOrchestrationModel(step.OrchestrationModel)
		}
		if _, err := stepBuilder.Save(ctx); err != nil {
			return nil, fmt.Errorf("failed to create pipeline step %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return s.Get(ctx, created.ID)
}

// Get returns one pipeline with its steps loaded in order.
func (s *PipelineService) Get(ctx context.Context, id string) (*ent.Pipeline, error) {
	p, err := s.client.Pipeline.Query().
		Where(pipeline.ID(id)).
		WithSteps(func(q *ent.PipelineStepQuery) {
			q.Order(ent.Asc(pipelinestep.FieldStepIndex))
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get pipeline: %w", err)
	}
	return p, nil
}

// List returns all pipelines with steps loaded.
func (s *PipelineService) List(ctx context.Context) ([]*ent.Pipeline, error) {
	ps, err := s.client.Pipeline.Query().
		WithSteps(func(q *ent.PipelineStepQuery) {
			q.Order(ent.Asc(pipelinestep.FieldStepIndex))
		}).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pipelines: %w", err)
	}
	return ps, nil
}

// Delete removes a pipeline; steps cascade.
func (s *PipelineService) Delete(ctx context.Context, id string) error {
	err := s.client.Pipeline.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete pipeline: %w", err)
	}
	return nil
}
