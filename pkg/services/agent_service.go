package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/consilium-ai/consilium/ent"
	"github.com/consilium-ai/consilium/pkg/models"
	"github.com/consilium-ai/consilium/pkg/roster"
)

// AgentService manages custom agents and merges them with the builtin roster.
type AgentService struct {
	client *ent.Client
}

// NewAgentService creates a new AgentService.
func NewAgentService(client *ent.Client) *AgentService {
	return &AgentService{client: client}
}

// Create registers a custom agent. Builtin keys are reserved.
func (s *AgentService) Create(ctx context.Context, req models.CreateAgentRequest) (*ent.Agent, error) {
	if req.Key == "" {
		return nil, NewValidationError("key", "required")
	}
	if req.DisplayName == "" {
		return nil, NewValidationError("display_name", "required")
	}
	if req.SystemPrompt == "" {
		return nil, NewValidationError("system_prompt", "required")
	}
	if roster.IsBuiltinKey(req.Key) {
		return nil, ErrAlreadyExists
	}

	builder := s.client.Agent.Create().
		SetID(req.Key).
		SetDisplayName(req.DisplayName).
		SetSystemPrompt(req.SystemPrompt)
	if req.Category != "" {
		builder.SetCategory(req.Category)
	}
	if req.ModelID != "" {
		builder.SetModelID(req.ModelID)
	}
	if req.MaxTokens > 0 {
		builder.SetMaxTokens(req.MaxTokens)
	}
	if req.Temperature != nil {
		builder.SetTemperature(*req.Temperature)
	}
	if len(req.Frameworks) > 0 {
		builder.SetFrameworks(req.Frameworks)
	}
	if req.Deliverable != "" {
		builder.SetDeliverableTemplate(req.Deliverable)
	}
	if req.Style != "" {
		builder.SetCommunicationStyle(req.Style)
	}
	if len(req.Tools) > 0 {
		builder.SetTools(req.Tools)
	}
	if len(req.ContextScope) > 0 {
		builder.SetContextScope(req.ContextScope)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}
	return created, nil
}

// Get returns the roster view for one key, builtin or custom.
func (s *AgentService) Get(ctx context.Context, key string) (models.AgentView, error) {
	if b, ok := roster.Builtin(key); ok {
		return builtinView(b), nil
	}

	stored, err := s.client.Agent.Get(ctx, key)
	if err != nil {
		if ent.IsNotFound(err) {
			return models.AgentView{}, ErrNotFound
		}
		return models.AgentView{}, fmt.Errorf("failed to get agent: %w", err)
	}
	return models.AgentViewFromEnt(stored), nil
}

// List returns the merged roster: builtins first, then custom agents, each
// group sorted by key.
func (s *AgentService) List(ctx context.Context) ([]models.AgentView, error) {
	var views []models.AgentView
	for _, b := range roster.Builtins() {
		views = append(views, builtinView(b))
	}

	stored, err := s.client.Agent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}
	sort.Slice(stored, func(i, j int) bool { return stored[i].ID < stored[j].ID })
	for _, a := range stored {
		views = append(views, models.AgentViewFromEnt(a))
	}
	return views, nil
}

// Update modifies a custom agent. Builtin agents reject writes.
func (s *AgentService) Update(ctx context.Context, key string, req models.UpdateAgentRequest) (*ent.Agent, error) {
	if roster.IsBuiltinKey(key) {
		return nil, ErrBuiltinReadOnly
	}

	builder := s.client.Agent.UpdateOneID(key)
	if req.DisplayName != nil {
		builder.SetDisplayName(*req.DisplayName)
	}
	if req.Category != nil {
		builder.SetCategory(*req.Category)
	}
	if req.SystemPrompt != nil {
		builder.SetSystemPrompt(*req.SystemPrompt)
	}
	if req.ModelID != nil {
		builder.SetModelID(*req.ModelID)
	}
	if req.MaxTokens != nil {
		builder.SetMaxTokens(*req.MaxTokens)
	}
	if req.Temperature != nil {
		builder.SetTemperature(*req.Temperature)
	}
	if req.Frameworks != nil {
		builder.SetFrameworks(req.Frameworks)
	}
	if req.Deliverable != nil {
		builder.SetDeliverableTemplate(*req.Deliverable)
	}
	if req.Style != nil {
		builder.SetCommunicationStyle(*req.Style)
	}
	if req.Tools != nil {
		builder.SetTools(req.Tools)
	}
	if req.ContextScope != nil {
		builder.SetContextScope(req.ContextScope)
	}

	updated, err := builder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update agent: %w", err)
	}
	return updated, nil
}

// Delete removes a custom agent. Builtin agents reject writes.
func (s *AgentService) Delete(ctx context.Context, key string) error {
	if roster.IsBuiltinKey(key) {
		return ErrBuiltinReadOnly
	}
	err := s.client.Agent.DeleteOneID(key).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete agent: %w", err)
	}
	return nil
}

// Resolve hydrates roster keys into run-ready agents, builtin or custom.
// An unknown key fails the whole resolution.
func (s *AgentService) Resolve(ctx context.Context, keys []string) ([]*roster.Agent, error) {
	agents := make([]*roster.Agent, 0, len(keys))
	for _, key := range keys {
		if b, ok := roster.Builtin(key); ok {
			agents = append(agents, b)
			continue
		}
		stored, err := s.client.Agent.Get(ctx, key)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, fmt.Errorf("agent %q: %w", key, ErrNotFound)
			}
			return nil, fmt.Errorf("failed to resolve agent %q: %w", key, err)
		}
		prompt := roster.AssemblePrompt(stored.SystemPrompt, roster.PromptParts{
			Frameworks:          stored.Frameworks,
			DeliverableTemplate: stored.DeliverableTemplate,
			CommunicationStyle:  stored.CommunicationStyle,
		})
		agents = append(agents, &roster.Agent{
			Key:          stored.ID,
			DisplayName:  stored.DisplayName,
			Category:     stored.Category,
			SystemPrompt: prompt,
			ModelID:      stored.ModelID,
			MaxTokens:    stored.MaxTokens,
			Temperature:  stored.Temperature,
			Tools:        stored.Tools,
			ContextScope: stored.ContextScope,
		})
	}
	return agents, nil
}

func builtinView(a *roster.Agent) models.AgentView {
	return models.AgentView{
		Key:          a.Key,
		DisplayName:  a.DisplayName,
		Category:     a.Category,
		SystemPrompt: a.SystemPrompt,
		ModelID:      a.ModelID,
		MaxTokens:    a.MaxTokens,
		Temperature:  a.Temperature,
		Tools:        a.Tools,
		ContextScope: a.ContextScope,
		Builtin:      true,
	}
}
