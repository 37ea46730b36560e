package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/consilium-ai/consilium/ent"
	"github.com/consilium-ai/consilium/pkg/models"
)

// TeamService manages named rosters.
type TeamService struct {
	client *ent.Client
	agents *AgentService
}

// NewTeamService creates a new TeamService.
func NewTeamService(client *ent.Client, agents *AgentService) *TeamService {
	return &TeamService{client: client, agents: agents}
}

// Create validates the roster keys and stores the team.
func (s *TeamService) Create(ctx context.Context, req models.CreateTeamRequest) (*ent.Team, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if len(req.AgentKeys) == 0 {
		return nil, NewValidationError("agent_keys", "at least one agent required")
	}
	if _, err := s.agents.Resolve(ctx, req.AgentKeys); err != nil {
		return nil, NewValidationError("agent_keys", err.Error())
	}

	builder := s.client.Team.Create().
		SetID(uuid.New().String()).
		SetName(req.Name).
		SetAgentKeys(req.AgentKeys)
	if req.Description != "" {
		builder.SetDescription(req.Description)
	}
	if req.DefaultProtocol != "" {
		builder.SetDefaultProtocol(req.DefaultProtocol)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create team: %w", err)
	}
	return created, nil
}

// Get returns one team by id.
func (s *TeamService) Get(ctx context.Context, id string) (*ent.Team, error) {
	team, err := s.client.Team.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

// List returns all teams.
func (s *TeamService) List(ctx context.Context) ([]*ent.Team, error) {
	teams, err := s.client.Team.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

// Update modifies a team.
func (s *TeamService) Update(ctx context.Context, id string, req models.UpdateTeamRequest) (*ent.Team, error) {
	if req.AgentKeys != nil {
		if _, err := s.agents.Resolve(ctx, req.AgentKeys); err != nil {
			return nil, NewValidationError("agent_keys", err.Error())
		}
	}

	builder := s.client.Team.UpdateOneID(id)
	if req.Name != nil {
		builder.SetName(*req.Name)
	}
	if req.Description != nil {
		builder.SetDescription(*req.Description)
	}
	if req.AgentKeys != nil {
		builder.SetAgentKeys(req.AgentKeys)
	}
	if req.DefaultProtocol != nil {
		builder.SetDefaultProtocol(*req.DefaultProtocol)
	}

	updated, err := builder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to update team: %w", err)
	}
	return updated, nil
}

// Delete removes a team.
func (s *TeamService) Delete(ctx context.Context, id string) error {
	err := s.client.Team.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return nil
}
