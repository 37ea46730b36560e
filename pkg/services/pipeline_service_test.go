package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consilium-ai/consilium/pkg/models"
	_ "github.com/consilium-ai/consilium/pkg/protocol/protocols" // register protocol keys
	"github.com/consilium-ai/consilium/pkg/roster"
)

func TestPipelineService_CreateAndGet(t *testing.T) {
	client := newTestClient(t)
	svc := NewPipelineService(client)
	ctx := context.Background()

	created, err := svc.Create(ctx, models.CreatePipelineRequest{
		Name:        "diligence",
		Description: "SWOT, then debate the posture, then gate it",
		Steps: []models.PipelineStepSpec{
			{ProtocolKey: "swot", QuestionTemplate: "{question}"},
			{ProtocolKey: "debate", QuestionTemplate: "Given this assessment:\n{prev_output}\n\nDecide: {question}", Rounds: 3},
			{ProtocolKey: "falsification", QuestionTemplate: "{prev_output}", OutputPassthrough: true},
		},
	})
	require.NoError(t, err)

	loaded, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Edges.Steps, 3)
	assert.Equal(t, "swot", loaded.Edges.Steps[0].ProtocolKey)
	assert.Equal(t, 1, loaded.Edges.Steps[1].StepIndex)
	assert.Equal(t, 3, loaded.Edges.Steps[1].Rounds)
	assert.True(t, loaded.Edges.Steps[2].OutputPassthrough)
}

func TestPipelineService_RejectsUnknownProtocol(t *testing.T) {
	client := newTestClient(t)
	svc := NewPipelineService(client)
	ctx := context.Background()

	_, err := svc.Create(ctx, models.CreatePipelineRequest{
		Name: "bad",
		Steps: []models.PipelineStepSpec{
			{ProtocolKey: "does-not-exist", QuestionTemplate: "{question}"},
		},
	})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestTeamService_CRUD(t *testing.T) {
	client := newTestClient(t)
	agents := NewAgentService(client)
	svc := NewTeamService(client, agents)
	ctx := context.Background()

	keys := []string{roster.Builtins()[0].Key, roster.Builtins()[1].Key}
	created, err := svc.Create(ctx, models.CreateTeamRequest{
		Name:            "executive-board",
		AgentKeys:       keys,
		DefaultProtocol: "parallel-synthesis",
	})
	require.NoError(t, err)
	assert.Equal(t, keys, created.AgentKeys)

	_, err = svc.Create(ctx, models.CreateTeamRequest{
		Name:      "ghost-team",
		AgentKeys: []string{"nobody"},
	})
	require.Error(t, err)
	assert.True(t, IsValidationError(err), "unknown roster keys are rejected")

	_, err = svc.Create(ctx, models.CreateTeamRequest{
		Name:      "executive-board",
		AgentKeys: keys,
	})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	newProto := "debate"
	updated, err := svc.Update(ctx, created.ID, models.UpdateTeamRequest{DefaultProtocol: &newProto})
	require.NoError(t, err)
	assert.Equal(t, "debate", updated.DefaultProtocol)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
