package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consilium-ai/consilium/pkg/models"
	"github.com/consilium-ai/consilium/pkg/roster"
)

func TestAgentService_CRUD(t *testing.T) {
	client := newTestClient(t)
	svc := NewAgentService(client)
	ctx := context.Background()

	temp := 0.3
	created, err := svc.Create(ctx, models.CreateAgentRequest{
		Key:          "supply-chain-advisor",
		DisplayName:  "Supply Chain Advisor",
		Category:     roster.CategorySpecialist,
		SystemPrompt: "You advise on logistics and supplier risk.",
		Temperature:  &temp,
		Tools:        []string{"web_search"},
		ContextScope: []string{"operational"},
	})
	require.NoError(t, err)
	assert.Equal(t, "supply-chain-advisor", created.ID)

	view, err := svc.Get(ctx, "supply-chain-advisor")
	require.NoError(t, err)
	assert.False(t, view.Builtin)
	assert.Equal(t, []string{"web_search"}, view.Tools)
	require.NotNil(t, view.Temperature)
	assert.Equal(t, 0.3, *view.Temperature)

	newName := "Logistics Advisor"
	updated, err := svc.Update(ctx, "supply-chain-advisor", models.UpdateAgentRequest{
		DisplayName: &newName,
	})
	require.NoError(t, err)
	assert.Equal(t, "Logistics Advisor", updated.DisplayName)
	assert.Equal(t, "You advise on logistics and supplier risk.", updated.SystemPrompt,
		"untouched fields survive partial updates")

	require.NoError(t, svc.Delete(ctx, "supply-chain-advisor"))
	_, err = svc.Get(ctx, "supply-chain-advisor")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAgentService_BuiltinsAreReadOnly(t *testing.T) {
	client := newTestClient(t)
	svc := NewAgentService(client)
	ctx := context.Background()

	builtins := roster.Builtins()
	require.NotEmpty(t, builtins)
	key := builtins[0].Key

	_, err := svc.Create(ctx, models.CreateAgentRequest{
		Key:          key,
		DisplayName:  "Impostor",
		SystemPrompt: "x",
	})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	name := "Renamed"
	_, err = svc.Update(ctx, key, models.UpdateAgentRequest{DisplayName: &name})
	assert.ErrorIs(t, err, ErrBuiltinReadOnly)

	assert.ErrorIs(t, svc.Delete(ctx, key), ErrBuiltinReadOnly)

	view, err := svc.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, view.Builtin)
}

func TestAgentService_ListMergesBuiltinsAndCustom(t *testing.T) {
	client := newTestClient(t)
	svc := NewAgentService(client)
	ctx := context.Background()

	_, err := svc.Create(ctx, models.CreateAgentRequest{
		Key:          "zz-custom",
		DisplayName:  "Custom",
		SystemPrompt: "x",
	})
	require.NoError(t, err)

	views, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, views, len(roster.Builtins())+1)
	assert.True(t, views[0].Builtin, "builtins list first")
	assert.Equal(t, "zz-custom", views[len(views)-1].Key)
}

func TestAgentService_Resolve(t *testing.T) {
	client := newTestClient(t)
	svc := NewAgentService(client)
	ctx := context.Background()

	_, err := svc.Create(ctx, models.CreateAgentRequest{
		Key:          "industry-analyst",
		DisplayName:  "Industry Analyst",
		SystemPrompt: "You track sector dynamics.",
		ModelID:      "gpt-4o-mini",
	})
	require.NoError(t, err)

	builtinKey := roster.Builtins()[0].Key
	agents, err := svc.Resolve(ctx, []string{builtinKey, "industry-analyst"})
	require.NoError(t, err)
	require.Len(t, agents, 2)
	assert.True(t, agents[0].Builtin)
	assert.Equal(t, "industry-analyst", agents[1].Key)
	assert.Equal(t, "gpt-4o-mini", agents[1].ModelID)
	assert.False(t, agents[1].Builtin)

	_, err = svc.Resolve(ctx, []string{"ghost"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAgentService_ResolveAssemblesPromptParts(t *testing.T) {
	client := newTestClient(t)
	svc := NewAgentService(client)
	ctx := context.Background()

	_, err := svc.Create(ctx, models.CreateAgentRequest{
		Key:          "pricing-advisor",
		DisplayName:  "Pricing Advisor",
		SystemPrompt: "You advise on pricing strategy.",
		Frameworks:   []string{"Van Westendorp price sensitivity"},
		Deliverable:  "A one-page pricing recommendation.",
		Style:        "Direct, numbers first.",
	})
	require.NoError(t, err)

	agents, err := svc.Resolve(ctx, []string{"pricing-advisor"})
	require.NoError(t, err)
	require.Len(t, agents, 1)

	prompt := agents[0].SystemPrompt
	assert.Contains(t, prompt, "You advise on pricing strategy.")
	assert.Contains(t, prompt, "## Framework\n\nVan Westendorp price sensitivity")
	assert.Contains(t, prompt, "## Deliverable\n\nA one-page pricing recommendation.")
	assert.Contains(t, prompt, "## Communication style\n\nDirect, numbers first.")
}
