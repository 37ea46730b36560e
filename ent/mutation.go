// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/consilium-ai/consilium/ent/agent"
	"github.com/consilium-ai/consilium/ent/agentoutput"
	"github.com/consilium-ai/consilium/ent/pipeline"
	"github.com/consilium-ai/consilium/ent/pipelinestep"
	"github.com/consilium-ai/consilium/ent/predicate"
	"github.com/consilium-ai/consilium/ent/run"
	"github.com/consilium-ai/consilium/ent/runstep"
	"github.com/consilium-ai/consilium/ent/team"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgent        = "Agent"
	TypeAgentOutput  = "AgentOutput"
	TypePipeline     = "Pipeline"
	TypePipelineStep = "PipelineStep"
	TypeRun          = "Run"
	TypeRunStep      = "RunStep"
	TypeTeam         = "Team"
)

// AgentMutation represents an operation that mutates the Agent nodes in the graph.
type AgentMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	display_name         *string
	category             *string
	system_prompt        *string
	model_id             *string
	max_tokens           *int
	addmax_tokens        *int
	temperature          *float64
	addtemperature       *float64
	frameworks           *[]string
	appendframeworks     []string
	deliverable_template *string
	communication_style  *string
	tools                *[]string
	appendtools          []string
	context_scope        *[]string
	appendcontext_scope  []string
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*Agent, error)
	predicates           []predicate.Agent
}

var _ ent.Mutation = (*AgentMutation)(nil)

// agentOption allows management of the mutation configuration using functional options.
type agentOption func(*AgentMutation)

// newAgentMutation creates new mutation for the Agent entity.
func newAgentMutation(c config, op Op, opts ...agentOption) *AgentMutation {
	m := &AgentMutation{
		config:        c,
		op:            op,
		typ:           TypeAgent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentID sets the ID field of the mutation.
func withAgentID(id string) agentOption {
	return func(m *AgentMutation) {
		var (
			err   error
			once  sync.Once
			value *Agent
		)
		m.oldValue = func(ctx context.Context) (*Agent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Agent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgent sets the old Agent of the mutation.
func withAgent(node *Agent) agentOption {
	return func(m *AgentMutation) {
		m.oldValue = func(context.Context) (*Agent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Agent entities.
func (m *AgentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Agent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDisplayName sets the "display_name" field.
func (m *AgentMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *AgentMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *AgentMutation) ResetDisplayName() {
	m.display_name = nil
}

// SetCategory sets the "category" field.
func (m *AgentMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *AgentMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ClearCategory clears the value of the "category" field.
func (m *AgentMutation) ClearCategory() {
	m.category = nil
	m.clearedFields[agent.FieldCategory] = struct{}{}
}

// CategoryCleared returns if the "category" field was cleared in this mutation.
func (m *AgentMutation) CategoryCleared() bool {
	_, ok := m.clearedFields[agent.FieldCategory]
	return ok
}

// ResetCategory resets all changes to the "category" field.
func (m *AgentMutation) ResetCategory() {
	m.category = nil
	delete(m.clearedFields, agent.FieldCategory)
}

// SetSystemPrompt sets the "system_prompt" field.
func (m *AgentMutation) SetSystemPrompt(s string) {
	m.system_prompt = &s
}

// SystemPrompt returns the value of the "system_prompt" field in the mutation.
func (m *AgentMutation) SystemPrompt() (r string, exists bool) {
	v := m.system_prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldSystemPrompt returns the old "system_prompt" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldSystemPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSystemPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSystemPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSystemPrompt: %w", err)
	}
	return oldValue.SystemPrompt, nil
}

// ResetSystemPrompt resets all changes to the "system_prompt" field.
func (m *AgentMutation) ResetSystemPrompt() {
	m.system_prompt = nil
}

// SetModelID sets the "model_id" field.
func (m *AgentMutation) SetModelID(s string) {
	m.model_id = &s
}

// ModelID returns the value of the "model_id" field in the mutation.
func (m *AgentMutation) ModelID() (r string, exists bool) {
	v := m.model_id
	if v == nil {
		return
	}
	return *v, true
}

// OldModelID returns the old "model_id" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldModelID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelID: %w", err)
	}
	return oldValue.ModelID, nil
}

// ClearModelID clears the value of the "model_id" field.
func (m *AgentMutation) ClearModelID() {
	m.model_id = nil
	m.clearedFields[agent.FieldModelID] = struct{}{}
}

// ModelIDCleared returns if the "model_id" field was cleared in this mutation.
func (m *AgentMutation) ModelIDCleared() bool {
	_, ok := m.clearedFields[agent.FieldModelID]
	return ok
}

// ResetModelID resets all changes to the "model_id" field.
func (m *AgentMutation) ResetModelID() {
	m.model_id = nil
	delete(m.clearedFields, agent.FieldModelID)
}

// SetMaxTokens sets the "max_tokens" field.
func (m *AgentMutation) SetMaxTokens(i int) {
	m.max_tokens = &i
	m.addmax_tokens = nil
}

// MaxTokens returns the value of the "max_tokens" field in the mutation.
func (m *AgentMutation) MaxTokens() (r int, exists bool) {
	v := m.max_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxTokens returns the old "max_tokens" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldMaxTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxTokens: %w", err)
	}
	return oldValue.MaxTokens, nil
}

// AddMaxTokens adds i to the "max_tokens" field.
func (m *AgentMutation) AddMaxTokens(i int) {
	if m.addmax_tokens != nil {
		*m.addmax_tokens += i
	} else {
		m.addmax_tokens = &i
	}
}

// AddedMaxTokens returns the value that was added to the "max_tokens" field in this mutation.
func (m *AgentMutation) AddedMaxTokens() (r int, exists bool) {
	v := m.addmax_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ClearMaxTokens clears the value of the "max_tokens" field.
func (m *AgentMutation) ClearMaxTokens() {
	m.max_tokens = nil
	m.addmax_tokens = nil
	m.clearedFields[agent.FieldMaxTokens] = struct{}{}
}

// MaxTokensCleared returns if the "max_tokens" field was cleared in this mutation.
func (m *AgentMutation) MaxTokensCleared() bool {
	_, ok := m.clearedFields[agent.FieldMaxTokens]
	return ok
}

// ResetMaxTokens resets all changes to the "max_tokens" field.
func (m *AgentMutation) ResetMaxTokens() {
	m.max_tokens = nil
	m.addmax_tokens = nil
	delete(m.clearedFields, agent.FieldMaxTokens)
}

// SetTemperature sets the "temperature" field.
func (m *AgentMutation) SetTemperature(f float64) {
	m.temperature = &f
	m.addtemperature = nil
}

// Temperature returns the value of the "temperature" field in the mutation.
func (m *AgentMutation) Temperature() (r float64, exists bool) {
	v := m.temperature
	if v == nil {
		return
	}
	return *v, true
}

// OldTemperature returns the old "temperature" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldTemperature(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemperature is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemperature requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemperature: %w", err)
	}
	return oldValue.Temperature, nil
}

// AddTemperature adds f to the "temperature" field.
func (m *AgentMutation) AddTemperature(f float64) {
	if m.addtemperature != nil {
		*m.addtemperature += f
	} else {
		m.addtemperature = &f
	}
}

// AddedTemperature returns the value that was added to the "temperature" field in this mutation.
func (m *AgentMutation) AddedTemperature() (r float64, exists bool) {
	v := m.addtemperature
	if v == nil {
		return
	}
	return *v, true
}

// ClearTemperature clears the value of the "temperature" field.
func (m *AgentMutation) ClearTemperature() {
	m.temperature = nil
	m.addtemperature = nil
	m.clearedFields[agent.FieldTemperature] = struct{}{}
}

// TemperatureCleared returns if the "temperature" field was cleared in this mutation.
func (m *AgentMutation) TemperatureCleared() bool {
	_, ok := m.clearedFields[agent.FieldTemperature]
	return ok
}

// ResetTemperature resets all changes to the "temperature" field.
func (m *AgentMutation) ResetTemperature() {
	m.temperature = nil
	m.addtemperature = nil
	delete(m.clearedFields, agent.FieldTemperature)
}

// SetFrameworks sets the "frameworks" field.
func (m *AgentMutation) SetFrameworks(s []string) {
	m.frameworks = &s
	m.appendframeworks = nil
}

// Frameworks returns the value of the "frameworks" field in the mutation.
func (m *AgentMutation) Frameworks() (r []string, exists bool) {
	v := m.frameworks
	if v == nil {
		return
	}
	return *v, true
}

// OldFrameworks returns the old "frameworks" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldFrameworks(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFrameworks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFrameworks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFrameworks: %w", err)
	}
	return oldValue.Frameworks, nil
}

// AppendFrameworks adds s to the "frameworks" field.
func (m *AgentMutation) AppendFrameworks(s []string) {
	m.appendframeworks = append(m.appendframeworks, s...)
}

// AppendedFrameworks returns the list of values that were appended to the "frameworks" field in this mutation.
func (m *AgentMutation) AppendedFrameworks() ([]string, bool) {
	if len(m.appendframeworks) == 0 {
		return nil, false
	}
	return m.appendframeworks, true
}

// ClearFrameworks clears the value of the "frameworks" field.
func (m *AgentMutation) ClearFrameworks() {
	m.frameworks = nil
	m.appendframeworks = nil
	m.clearedFields[agent.FieldFrameworks] = struct{}{}
}

// FrameworksCleared returns if the "frameworks" field was cleared in this mutation.
func (m *AgentMutation) FrameworksCleared() bool {
	_, ok := m.clearedFields[agent.FieldFrameworks]
	return ok
}

// ResetFrameworks resets all changes to the "frameworks" field.
func (m *AgentMutation) ResetFrameworks() {
	m.frameworks = nil
	m.appendframeworks = nil
	delete(m.clearedFields, agent.FieldFrameworks)
}

// SetDeliverableTemplate sets the "deliverable_template" field.
func (m *AgentMutation) SetDeliverableTemplate(s string) {
	m.deliverable_template = &s
}

// DeliverableTemplate returns the value of the "deliverable_template" field in the mutation.
func (m *AgentMutation) DeliverableTemplate() (r string, exists bool) {
	v := m.deliverable_template
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliverableTemplate returns the old "deliverable_template" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldDeliverableTemplate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliverableTemplate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliverableTemplate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliverableTemplate: %w", err)
	}
	return oldValue.DeliverableTemplate, nil
}

// ClearDeliverableTemplate clears the value of the "deliverable_template" field.
func (m *AgentMutation) ClearDeliverableTemplate() {
	m.deliverable_template = nil
	m.clearedFields[agent.FieldDeliverableTemplate] = struct{}{}
}

// DeliverableTemplateCleared returns if the "deliverable_template" field was cleared in this mutation.
func (m *AgentMutation) DeliverableTemplateCleared() bool {
	_, ok := m.clearedFields[agent.FieldDeliverableTemplate]
	return ok
}

// ResetDeliverableTemplate resets all changes to the "deliverable_template" field.
func (m *AgentMutation) ResetDeliverableTemplate() {
	m.deliverable_template = nil
	delete(m.clearedFields, agent.FieldDeliverableTemplate)
}

// SetCommunicationStyle sets the "communication_style" field.
func (m *AgentMutation) SetCommunicationStyle(s string) {
	m.communication_style = &s
}

// CommunicationStyle returns the value of the "communication_style" field in the mutation.
func (m *AgentMutation) CommunicationStyle() (r string, exists bool) {
	v := m.communication_style
	if v == nil {
		return
	}
	return *v, true
}

// OldCommunicationStyle returns the old "communication_style" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldCommunicationStyle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommunicationStyle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommunicationStyle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommunicationStyle: %w", err)
	}
	return oldValue.CommunicationStyle, nil
}

// ClearCommunicationStyle clears the value of the "communication_style" field.
func (m *AgentMutation) ClearCommunicationStyle() {
	m.communication_style = nil
	m.clearedFields[agent.FieldCommunicationStyle] = struct{}{}
}

// CommunicationStyleCleared returns if the "communication_style" field was cleared in this mutation.
func (m *AgentMutation) CommunicationStyleCleared() bool {
	_, ok := m.clearedFields[agent.FieldCommunicationStyle]
	return ok
}

// ResetCommunicationStyle resets all changes to the "communication_style" field.
func (m *AgentMutation) ResetCommunicationStyle() {
	m.communication_style = nil
	delete(m.clearedFields, agent.FieldCommunicationStyle)
}

// SetTools sets the "tools" field.
func (m *AgentMutation) SetTools(s []string) {
	m.tools = &s
	m.appendtools = nil
}

// Tools returns the value of the "tools" field in the mutation.
func (m *AgentMutation) Tools() (r []string, exists bool) {
	v := m.tools
	if v == nil {
		return
	}
	return *v, true
}

// OldTools returns the old "tools" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldTools(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTools is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTools requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTools: %w", err)
	}
	return oldValue.Tools, nil
}

// AppendTools adds s to the "tools" field.
func (m *AgentMutation) AppendTools(s []string) {
	m.appendtools = append(m.appendtools, s...)
}

// AppendedTools returns the list of values that were appended to the "tools" field in this mutation.
func (m *AgentMutation) AppendedTools() ([]string, bool) {
	if len(m.appendtools) == 0 {
		return nil, false
	}
	return m.appendtools, true
}

// ClearTools clears the value of the "tools" field.
func (m *AgentMutation) ClearTools() {
	m.tools = nil
	m.appendtools = nil
	m.clearedFields[agent.FieldTools] = struct{}{}
}

// ToolsCleared returns if the "tools" field was cleared in this mutation.
func (m *AgentMutation) ToolsCleared() bool {
	_, ok := m.clearedFields[agent.FieldTools]
	return ok
}

// ResetTools resets all changes to the "tools" field.
func (m *AgentMutation) ResetTools() {
	m.tools = nil
	m.appendtools = nil
	delete(m.clearedFields, agent.FieldTools)
}

// SetContextScope sets the "context_scope" field.
func (m *AgentMutation) SetContextScope(s []string) {
	m.context_scope = &s
	m.appendcontext_scope = nil
}

// ContextScope returns the value of the "context_scope" field in the mutation.
func (m *AgentMutation) ContextScope() (r []string, exists bool) {
	v := m.context_scope
	if v == nil {
		return
	}
	return *v, true
}

// OldContextScope returns the old "context_scope" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldContextScope(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContextScope is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContextScope requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContextScope: %w", err)
	}
	return oldValue.ContextScope, nil
}

// AppendContextScope adds s to the "context_scope" field.
func (m *AgentMutation) AppendContextScope(s []string) {
	m.appendcontext_scope = append(m.appendcontext_scope, s...)
}

// AppendedContextScope returns the list of values that were appended to the "context_scope" field in this mutation.
func (m *AgentMutation) AppendedContextScope() ([]string, bool) {
	if len(m.appendcontext_scope) == 0 {
		return nil, false
	}
	return m.appendcontext_scope, true
}

// ClearContextScope clears the value of the "context_scope" field.
func (m *AgentMutation) ClearContextScope() {
	m.context_scope = nil
	m.appendcontext_scope = nil
	m.clearedFields[agent.FieldContextScope] = struct{}{}
}

// ContextScopeCleared returns if the "context_scope" field was cleared in this mutation.
func (m *AgentMutation) ContextScopeCleared() bool {
	_, ok := m.clearedFields[agent.FieldContextScope]
	return ok
}

// ResetContextScope resets all changes to the "context_scope" field.
func (m *AgentMutation) ResetContextScope() {
	m.context_scope = nil
	m.appendcontext_scope = nil
	delete(m.clearedFields, agent.FieldContextScope)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AgentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AgentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AgentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the AgentMutation builder.
func (m *AgentMutation) Where(ps ...predicate.Agent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Agent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Agent).
func (m *AgentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.display_name != nil {
		fields = append(fields, agent.FieldDisplayName)
	}
	if m.category != nil {
		fields = append(fields, agent.FieldCategory)
	}
	if m.system_prompt != nil {
		fields = append(fields, agent.FieldSystemPrompt)
	}
	if m.model_id != nil {
		fields = append(fields, agent.FieldModelID)
	}
	if m.max_tokens != nil {
		fields = append(fields, agent.FieldMaxTokens)
	}
	if m.temperature != nil {
		fields = append(fields, agent.FieldTemperature)
	}
	if m.frameworks != nil {
		fields = append(fields, agent.FieldFrameworks)
	}
	if m.deliverable_template != nil {
		fields = append(fields, agent.FieldDeliverableTemplate)
	}
	if m.communication_style != nil {
		fields = append(fields, agent.FieldCommunicationStyle)
	}
	if m.tools != nil {
		fields = append(fields, agent.FieldTools)
	}
	if m.context_scope != nil {
		fields = append(fields, agent.FieldContextScope)
	}
	if m.created_at != nil {
		fields = append(fields, agent.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, agent.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agent.FieldDisplayName:
		return m.DisplayName()
	case agent.FieldCategory:
		return m.Category()
	case agent.FieldSystemPrompt:
		return m.SystemPrompt()
	case agent.FieldModelID:
		return m.ModelID()
	case agent.FieldMaxTokens:
		return m.MaxTokens()
	case agent.FieldTemperature:
		return m.Temperature()
	case agent.FieldFrameworks:
		return m.Frameworks()
	case agent.FieldDeliverableTemplate:
		return m.DeliverableTemplate()
	case agent.FieldCommunicationStyle:
		return m.CommunicationStyle()
	case agent.FieldTools:
		return m.Tools()
	case agent.FieldContextScope:
		return m.ContextScope()
	case agent.FieldCreatedAt:
		return m.CreatedAt()
	case agent.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agent.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case agent.FieldCategory:
		return m.OldCategory(ctx)
	case agent.FieldSystemPrompt:
		return m.OldSystemPrompt(ctx)
	case agent.FieldModelID:
		return m.OldModelID(ctx)
	case agent.FieldMaxTokens:
		return m.OldMaxTokens(ctx)
	case agent.FieldTemperature:
		return m.OldTemperature(ctx)
	case agent.FieldFrameworks:
		return m.OldFrameworks(ctx)
	case agent.FieldDeliverableTemplate:
		return m.OldDeliverableTemplate(ctx)
	case agent.FieldCommunicationStyle:
		return m.OldCommunicationStyle(ctx)
	case agent.FieldTools:
		return m.OldTools(ctx)
	case agent.FieldContextScope:
		return m.OldContextScope(ctx)
	case agent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agent.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Agent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agent.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case agent.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case agent.FieldSystemPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSystemPrompt(v)
		return nil
	case agent.FieldModelID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelID(v)
		return nil
	case agent.FieldMaxTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxTokens(v)
		return nil
	case agent.FieldTemperature:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemperature(v)
		return nil
	case agent.FieldFrameworks:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFrameworks(v)
		return nil
	case agent.FieldDeliverableTemplate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliverableTemplate(v)
		return nil
	case agent.FieldCommunicationStyle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommunicationStyle(v)
		return nil
	case agent.FieldTools:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTools(v)
		return nil
	case agent.FieldContextScope:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContextScope(v)
		return nil
	case agent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agent.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentMutation) AddedFields() []string {
	var fields []string
	if m.addmax_tokens != nil {
		fields = append(fields, agent.FieldMaxTokens)
	}
	if m.addtemperature != nil {
		fields = append(fields, agent.FieldTemperature)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agent.FieldMaxTokens:
		return m.AddedMaxTokens()
	case agent.FieldTemperature:
		return m.AddedTemperature()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agent.FieldMaxTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxTokens(v)
		return nil
	case agent.FieldTemperature:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTemperature(v)
		return nil
	}
	return fmt.Errorf("unknown Agent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agent.FieldCategory) {
		fields = append(fields, agent.FieldCategory)
	}
	if m.FieldCleared(agent.FieldModelID) {
		fields = append(fields, agent.FieldModelID)
	}
	if m.FieldCleared(agent.FieldMaxTokens) {
		fields = append(fields, agent.FieldMaxTokens)
	}
	if m.FieldCleared(agent.FieldTemperature) {
		fields = append(fields, agent.FieldTemperature)
	}
	if m.FieldCleared(agent.FieldFrameworks) {
		fields = append(fields, agent.FieldFrameworks)
	}
	if m.FieldCleared(agent.FieldDeliverableTemplate) {
		fields = append(fields, agent.FieldDeliverableTemplate)
	}
	if m.FieldCleared(agent.FieldCommunicationStyle) {
		fields = append(fields, agent.FieldCommunicationStyle)
	}
	if m.FieldCleared(agent.FieldTools) {
		fields = append(fields, agent.FieldTools)
	}
	if m.FieldCleared(agent.FieldContextScope) {
		fields = append(fields, agent.FieldContextScope)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentMutation) ClearField(name string) error {
	switch name {
	case agent.FieldCategory:
		m.ClearCategory()
		return nil
	case agent.FieldModelID:
		m.ClearModelID()
		return nil
	case agent.FieldMaxTokens:
		m.ClearMaxTokens()
		return nil
	case agent.FieldTemperature:
		m.ClearTemperature()
		return nil
	case agent.FieldFrameworks:
		m.ClearFrameworks()
		return nil
	case agent.FieldDeliverableTemplate:
		m.ClearDeliverableTemplate()
		return nil
	case agent.FieldCommunicationStyle:
		m.ClearCommunicationStyle()
		return nil
	case agent.FieldTools:
		m.ClearTools()
		return nil
	case agent.FieldContextScope:
		m.ClearContextScope()
		return nil
	}
	return fmt.Errorf("unknown Agent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentMutation) ResetField(name string) error {
	switch name {
	case agent.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case agent.FieldCategory:
		m.ResetCategory()
		return nil
	case agent.FieldSystemPrompt:
		m.ResetSystemPrompt()
		return nil
	case agent.FieldModelID:
		m.ResetModelID()
		return nil
	case agent.FieldMaxTokens:
		m.ResetMaxTokens()
		return nil
	case agent.FieldTemperature:
		m.ResetTemperature()
		return nil
	case agent.FieldFrameworks:
		m.ResetFrameworks()
		return nil
	case agent.FieldDeliverableTemplate:
		m.ResetDeliverableTemplate()
		return nil
	case agent.FieldCommunicationStyle:
		m.ResetCommunicationStyle()
		return nil
	case agent.FieldTools:
		m.ResetTools()
		return nil
	case agent.FieldContextScope:
		m.ResetContextScope()
		return nil
	case agent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agent.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Agent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Agent edge %s", name)
}

// AgentOutputMutation represents an operation that mutates the AgentOutput nodes in the graph.
type AgentOutputMutation struct {
	config
	op               Op
	typ              string
	id               *string
	agent_name       *string
	model_id         *string
	round            *int
	addround         *int
	stage            *string
	output           *string
	tool_calls       *[]string
	appendtool_calls []string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	cost_usd         *float64
	addcost_usd      *float64
	created_at       *time.Time
	clearedFields    map[string]struct{}
	run              *string
	clearedrun       bool
	step             *string
	clearedstep      bool
	done             bool
	oldValue         func(context.Context) (*AgentOutput, error)
	predicates       []predicate.AgentOutput
}

var _ ent.Mutation = (*AgentOutputMutation)(nil)

// agentoutputOption allows management of the mutation configuration using functional options.
type agentoutputOption func(*AgentOutputMutation)

// newAgentOutputMutation creates new mutation for the AgentOutput entity.
func newAgentOutputMutation(c config, op Op, opts ...agentoutputOption) *AgentOutputMutation {
	m := &AgentOutputMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentOutput,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentOutputID sets the ID field of the mutation.
func withAgentOutputID(id string) agentoutputOption {
	return func(m *AgentOutputMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentOutput
		)
		m.oldValue = func(ctx context.Context) (*AgentOutput, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentOutput.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentOutput sets the old AgentOutput of the mutation.
func withAgentOutput(node *AgentOutput) agentoutputOption {
	return func(m *AgentOutputMutation) {
		m.oldValue = func(context.Context) (*AgentOutput, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentOutputMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentOutputMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentOutput entities.
func (m *AgentOutputMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentOutputMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentOutputMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentOutput.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *AgentOutputMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *AgentOutputMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the AgentOutput entity.
// If the AgentOutput object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentOutputMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *AgentOutputMutation) ResetRunID() {
	m.run = nil
}

// SetRunStepID sets the "run_step_id" field.
func (m *AgentOutputMutation) SetRunStepID(s string) {
	m.step = &s
}

// RunStepID returns the value of the "run_step_id" field in the mutation.
func (m *AgentOutputMutation) RunStepID() (r string, exists bool) {
	v := m.step
	if v == nil {
		return
	}
	return *v, true
}

// OldRunStepID returns the old "run_step_id" field's value of the AgentOutput entity.
// If the AgentOutput object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentOutputMutation) OldRunStepID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunStepID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunStepID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunStepID: %w", err)
	}
	return oldValue.RunStepID, nil
}

// ClearRunStepID clears the value of the "run_step_id" field.
func (m *AgentOutputMutation) ClearRunStepID() {
	m.step = nil
	m.clearedFields[agentoutput.FieldRunStepID] = struct{}{}
}

// RunStepIDCleared returns if the "run_step_id" field was cleared in this mutation.
func (m *AgentOutputMutation) RunStepIDCleared() bool {
	_, ok := m.clearedFields[agentoutput.FieldRunStepID]
	return ok
}

// ResetRunStepID resets all changes to the "run_step_id" field.
func (m *AgentOutputMutation) ResetRunStepID() {
	m.step = nil
	delete(m.clearedFields, agentoutput.FieldRunStepID)
}

// SetAgentName sets the "agent_name" field.
func (m *AgentOutputMutation) SetAgentName(s string) {
	m.agent_name = &s
}

// AgentName returns the value of the "agent_name" field in the mutation.
func (m *AgentOutputMutation) AgentName() (r string, exists bool) {
	v := m.agent_name
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentName returns the old "agent_name" field's value of the AgentOutput entity.
// If the AgentOutput object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentOutputMutation) OldAgentName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentName: %w", err)
	}
	return oldValue.AgentName, nil
}

// ResetAgentName resets all changes to the "agent_name" field.
func (m *AgentOutputMutation) ResetAgentName() {
	m.agent_name = nil
}

// SetModelID sets the "model_id" field.
func (m *AgentOutputMutation) SetModelID(s string) {
	m.model_id = &s
}

// ModelID returns the value of the "model_id" field in the mutation.
func (m *AgentOutputMutation) ModelID() (r string, exists bool) {
	v := m.model_id
	if v == nil {
		return
	}
	return *v, true
}

// OldModelID returns the old "model_id" field's value of the AgentOutput entity.
// If the AgentOutput object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentOutputMutation) OldModelID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelID: %w", err)
	}
	return oldValue.ModelID, nil
}

// ClearModelID clears the value of the "model_id" field.
func (m *AgentOutputMutation) ClearModelID() {
	m.model_id = nil
	m.clearedFields[agentoutput.FieldModelID] = struct{}{}
}

// ModelIDCleared returns if the "model_id" field was cleared in this mutation.
func (m *AgentOutputMutation) ModelIDCleared() bool {
	_, ok := m.clearedFields[agentoutput.FieldModelID]
	return ok
}

// ResetModelID resets all changes to the "model_id" field.
func (m *AgentOutputMutation) ResetModelID() {
	m.model_id = nil
	delete(m.clearedFields, agentoutput.FieldModelID)
}

// SetRound sets the "round" field.
func (m *AgentOutputMutation) SetRound(i int) {
	m.round = &i
	m.addround = nil
}

// Round returns the value of the "round" field in the mutation.
func (m *AgentOutputMutation) Round() (r int, exists bool) {
	v := m.round
	if v == nil {
		return
	}
	return *v, true
}

// OldRound returns the old "round" field's value of the AgentOutput entity.
// If the AgentOutput object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentOutputMutation) OldRound(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRound is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRound requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRound: %w", err)
	}
	return oldValue.Round, nil
}

// AddRound adds i to the "round" field.
func (m *AgentOutputMutation) AddRound(i int) {
	if m.addround != nil {
		*m.addround += i
	} else {
		m.addround = &i
	}
}

// AddedRound returns the value that was added to the "round" field in this mutation.
func (m *AgentOutputMutation) AddedRound() (r int, exists bool) {
	v := m.addround
	if v == nil {
		return
	}
	return *v, true
}

// ClearRound clears the value of the "round" field.
func (m *AgentOutputMutation) ClearRound() {
	m.round = nil
	m.addround = nil
	m.clearedFields[agentoutput.FieldRound] = struct{}{}
}

// RoundCleared returns if the "round" field was cleared in this mutation.
func (m *AgentOutputMutation) RoundCleared() bool {
	_, ok := m.clearedFields[agentoutput.FieldRound]
	return ok
}

// ResetRound resets all changes to the "round" field.
func (m *AgentOutputMutation) ResetRound() {
	m.round = nil
	m.addround = nil
	delete(m.clearedFields, agentoutput.FieldRound)
}

// SetStage sets the "stage" field.
func (m *AgentOutputMutation) SetStage(s string) {
	m.stage = &s
}

// Stage returns the value of the "stage" field in the mutation.
func (m *AgentOutputMutation) Stage() (r string, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStage returns the old "stage" field's value of the AgentOutput entity.
// If the AgentOutput object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentOutputMutation) OldStage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage: %w", err)
	}
	return oldValue.Stage, nil
}

// ClearStage clears the value of the "stage" field.
func (m *AgentOutputMutation) ClearStage() {
	m.stage = nil
	m.clearedFields[agentoutput.FieldStage] = struct{}{}
}

// StageCleared returns if the "stage" field was cleared in this mutation.
func (m *AgentOutputMutation) StageCleared() bool {
	_, ok := m.clearedFields[agentoutput.FieldStage]
	return ok
}

// ResetStage resets all changes to the "stage" field.
func (m *AgentOutputMutation) ResetStage() {
	m.stage = nil
	delete(m.clearedFields, agentoutput.FieldStage)
}

// SetOutput sets the "output" field.
func (m *AgentOutputMutation) SetOutput(s string) {
	m.output = &s
}

// Output returns the value of the "output" field in the mutation.
func (m *AgentOutputMutation) Output() (r string, exists bool) {
	v := m.output
	if v == nil {
		return
	}
	return *v, true
}

// OldOutput returns the old "output" field's value of the AgentOutput entity.
// If the AgentOutput object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentOutputMutation) OldOutput(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutput: %w", err)
	}
	return oldValue.Output, nil
}

// ResetOutput resets all changes to the "output" field.
func (m *AgentOutputMutation) ResetOutput() {
	m.output = nil
}

// SetToolCalls sets the "tool_calls" field.
func (m *AgentOutputMutation) SetToolCalls(s []string) {
	m.tool_calls = &s
	m.appendtool_calls = nil
}

// ToolCalls returns the value of the "tool_calls" field in the mutation.
func (m *AgentOutputMutation) ToolCalls() (r []string, exists bool) {
	v := m.tool_calls
	if v == nil {
		return
	}
	return *v, true
}

// OldToolCalls returns the old "tool_calls" field's value of the AgentOutput entity.
// If the AgentOutput object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentOutputMutation) OldToolCalls(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolCalls is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolCalls requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolCalls: %w", err)
	}
	return oldValue.ToolCalls, nil
}

// AppendToolCalls adds s to the "tool_calls" field.
func (m *AgentOutputMutation) AppendToolCalls(s []string) {
	m.appendtool_calls = append(m.appendtool_calls, s...)
}

// AppendedToolCalls returns the list of values that were appended to the "tool_calls" field in this mutation.
func (m *AgentOutputMutation) AppendedToolCalls() ([]string, bool) {
	if len(m.appendtool_calls) == 0 {
		return nil, false
	}
	return m.appendtool_calls, true
}

// ClearToolCalls clears the value of the "tool_calls" field.
func (m *AgentOutputMutation) ClearToolCalls() {
	m.tool_calls = nil
	m.appendtool_calls = nil
	m.clearedFields[agentoutput.FieldToolCalls] = struct{}{}
}

// ToolCallsCleared returns if the "tool_calls" field was cleared in this mutation.
func (m *AgentOutputMutation) ToolCallsCleared() bool {
	_, ok := m.clearedFields[agentoutput.FieldToolCalls]
	return ok
}

// ResetToolCalls resets all changes to the "tool_calls" field.
func (m *AgentOutputMutation) ResetToolCalls() {
	m.tool_calls = nil
	m.appendtool_calls = nil
	delete(m.clearedFields, agentoutput.FieldToolCalls)
}

// SetInputTokens sets the "input_tokens" field.
func (m *AgentOutputMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *AgentOutputMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the AgentOutput entity.
// If the AgentOutput object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentOutputMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *AgentOutputMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *AgentOutputMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ClearInputTokens clears the value of the "input_tokens" field.
func (m *AgentOutputMutation) ClearInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
	m.clearedFields[agentoutput.FieldInputTokens] = struct{}{}
}

// InputTokensCleared returns if the "input_tokens" field was cleared in this mutation.
func (m *AgentOutputMutation) InputTokensCleared() bool {
	_, ok := m.clearedFields[agentoutput.FieldInputTokens]
	return ok
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *AgentOutputMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
	delete(m.clearedFields, agentoutput.FieldInputTokens)
}

// SetOutputTokens sets the "output_tokens" field.
func (m *AgentOutputMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *AgentOutputMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the AgentOutput entity.
// If the AgentOutput object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentOutputMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *AgentOutputMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *AgentOutputMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ClearOutputTokens clears the value of the "output_tokens" field.
func (m *AgentOutputMutation) ClearOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
	m.clearedFields[agentoutput.FieldOutputTokens] = struct{}{}
}

// OutputTokensCleared returns if the "output_tokens" field was cleared in this mutation.
func (m *AgentOutputMutation) OutputTokensCleared() bool {
	_, ok := m.clearedFields[agentoutput.FieldOutputTokens]
	return ok
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *AgentOutputMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
	delete(m.clearedFields, agentoutput.FieldOutputTokens)
}

// SetCostUsd sets the "cost_usd" field.
func (m *AgentOutputMutation) SetCostUsd(f float64) {
	m.cost_usd = &f
	m.addcost_usd = nil
}

// CostUsd returns the value of the "cost_usd" field in the mutation.
func (m *AgentOutputMutation) CostUsd() (r float64, exists bool) {
	v := m.cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldCostUsd returns the old "cost_usd" field's value of the AgentOutput entity.
// If the AgentOutput object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentOutputMutation) OldCostUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostUsd: %w", err)
	}
	return oldValue.CostUsd, nil
}

// AddCostUsd adds f to the "cost_usd" field.
func (m *AgentOutputMutation) AddCostUsd(f float64) {
	if m.addcost_usd != nil {
		*m.addcost_usd += f
	} else {
		m.addcost_usd = &f
	}
}

// AddedCostUsd returns the value that was added to the "cost_usd" field in this mutation.
func (m *AgentOutputMutation) AddedCostUsd() (r float64, exists bool) {
	v := m.addcost_usd
	if v == nil {
		return
	}
	return *v, true
}

// ClearCostUsd clears the value of the "cost_usd" field.
func (m *AgentOutputMutation) ClearCostUsd() {
	m.cost_usd = nil
	m.addcost_usd = nil
	m.clearedFields[agentoutput.FieldCostUsd] = struct{}{}
}

// CostUsdCleared returns if the "cost_usd" field was cleared in this mutation.
func (m *AgentOutputMutation) CostUsdCleared() bool {
	_, ok := m.clearedFields[agentoutput.FieldCostUsd]
	return ok
}

// ResetCostUsd resets all changes to the "cost_usd" field.
func (m *AgentOutputMutation) ResetCostUsd() {
	m.cost_usd = nil
	m.addcost_usd = nil
	delete(m.clearedFields, agentoutput.FieldCostUsd)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentOutputMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentOutputMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentOutput entity.
// If the AgentOutput object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentOutputMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentOutputMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRun clears the "run" edge to the Run entity.
func (m *AgentOutputMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[agentoutput.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the Run entity was cleared.
func (m *AgentOutputMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *AgentOutputMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *AgentOutputMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// SetStepID sets the "step" edge to the RunStep entity by id.
func (m *AgentOutputMutation) SetStepID(id string) {
	m.step = &id
}

// ClearStep clears the "step" edge to the RunStep entity.
func (m *AgentOutputMutation) ClearStep() {
	m.clearedstep = true
	m.clearedFields[agentoutput.FieldRunStepID] = struct{}{}
}

// StepCleared reports if the "step" edge to the RunStep entity was cleared.
func (m *AgentOutputMutation) StepCleared() bool {
	return m.RunStepIDCleared() || m.clearedstep
}

// StepID returns the "step" edge ID in the mutation.
func (m *AgentOutputMutation) StepID() (id string, exists bool) {
	if m.step != nil {
		return *m.step, true
	}
	return
}

// StepIDs returns the "step" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StepID instead. It exists only for internal usage by the builders.
func (m *AgentOutputMutation) StepIDs() (ids []string) {
	if id := m.step; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStep resets all changes to the "step" edge.
func (m *AgentOutputMutation) ResetStep() {
	m.step = nil
	m.clearedstep = false
}

// Where appends a list predicates to the AgentOutputMutation builder.
func (m *AgentOutputMutation) Where(ps ...predicate.AgentOutput) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentOutputMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentOutputMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentOutput, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentOutputMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentOutputMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentOutput).
func (m *AgentOutputMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentOutputMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.run != nil {
		fields = append(fields, agentoutput.FieldRunID)
	}
	if m.step != nil {
		fields = append(fields, agentoutput.FieldRunStepID)
	}
	if m.agent_name != nil {
		fields = append(fields, agentoutput.FieldAgentName)
	}
	if m.model_id != nil {
		fields = append(fields, agentoutput.FieldModelID)
	}
	if m.round != nil {
		fields = append(fields, agentoutput.FieldRound)
	}
	if m.stage != nil {
		fields = append(fields, agentoutput.FieldStage)
	}
	if m.output != nil {
		fields = append(fields, agentoutput.FieldOutput)
	}
	if m.tool_calls != nil {
		fields = append(fields, agentoutput.FieldToolCalls)
	}
	if m.input_tokens != nil {
		fields = append(fields, agentoutput.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, agentoutput.FieldOutputTokens)
	}
	if m.cost_usd != nil {
		fields = append(fields, agentoutput.FieldCostUsd)
	}
	if m.created_at != nil {
		fields = append(fields, agentoutput.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentOutputMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentoutput.FieldRunID:
		return m.RunID()
	case agentoutput.FieldRunStepID:
		return m.RunStepID()
	case agentoutput.FieldAgentName:
		return m.AgentName()
	case agentoutput.FieldModelID:
		return m.ModelID()
	case agentoutput.FieldRound:
		return m.Round()
	case agentoutput.FieldStage:
		return m.Stage()
	case agentoutput.FieldOutput:
		return m.Output()
	case agentoutput.FieldToolCalls:
		return m.ToolCalls()
	case agentoutput.FieldInputTokens:
		return m.InputTokens()
	case agentoutput.FieldOutputTokens:
		return m.OutputTokens()
	case agentoutput.FieldCostUsd:
		return m.CostUsd()
	case agentoutput.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentOutputMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentoutput.FieldRunID:
		return m.OldRunID(ctx)
	case agentoutput.FieldRunStepID:
		return m.OldRunStepID(ctx)
	case agentoutput.FieldAgentName:
		return m.OldAgentName(ctx)
	case agentoutput.FieldModelID:
		return m.OldModelID(ctx)
	case agentoutput.FieldRound:
		return m.OldRound(ctx)
	case agentoutput.FieldStage:
		return m.OldStage(ctx)
	case agentoutput.FieldOutput:
		return m.OldOutput(ctx)
	case agentoutput.FieldToolCalls:
		return m.OldToolCalls(ctx)
	case agentoutput.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case agentoutput.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case agentoutput.FieldCostUsd:
		return m.OldCostUsd(ctx)
	case agentoutput.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentOutput field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentOutputMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentoutput.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case agentoutput.FieldRunStepID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunStepID(v)
		return nil
	case agentoutput.FieldAgentName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentName(v)
		return nil
	case agentoutput.FieldModelID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelID(v)
		return nil
	case agentoutput.FieldRound:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRound(v)
		return nil
	case agentoutput.FieldStage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage(v)
		return nil
	case agentoutput.FieldOutput:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutput(v)
		return nil
	case agentoutput.FieldToolCalls:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolCalls(v)
		return nil
	case agentoutput.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case agentoutput.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case agentoutput.FieldCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostUsd(v)
		return nil
	case agentoutput.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentOutput field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentOutputMutation) AddedFields() []string {
	var fields []string
	if m.addround != nil {
		fields = append(fields, agentoutput.FieldRound)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, agentoutput.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, agentoutput.FieldOutputTokens)
	}
	if m.addcost_usd != nil {
		fields = append(fields, agentoutput.FieldCostUsd)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentOutputMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentoutput.FieldRound:
		return m.AddedRound()
	case agentoutput.FieldInputTokens:
		return m.AddedInputTokens()
	case agentoutput.FieldOutputTokens:
		return m.AddedOutputTokens()
	case agentoutput.FieldCostUsd:
		return m.AddedCostUsd()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentOutputMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentoutput.FieldRound:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRound(v)
		return nil
	case agentoutput.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case agentoutput.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case agentoutput.FieldCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCostUsd(v)
		return nil
	}
	return fmt.Errorf("unknown AgentOutput numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentOutputMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentoutput.FieldRunStepID) {
		fields = append(fields, agentoutput.FieldRunStepID)
	}
	if m.FieldCleared(agentoutput.FieldModelID) {
		fields = append(fields, agentoutput.FieldModelID)
	}
	if m.FieldCleared(agentoutput.FieldRound) {
		fields = append(fields, agentoutput.FieldRound)
	}
	if m.FieldCleared(agentoutput.FieldStage) {
		fields = append(fields, agentoutput.FieldStage)
	}
	if m.FieldCleared(agentoutput.FieldToolCalls) {
		fields = append(fields, agentoutput.FieldToolCalls)
	}
	if m.FieldCleared(agentoutput.FieldInputTokens) {
		fields = append(fields, agentoutput.FieldInputTokens)
	}
	if m.FieldCleared(agentoutput.FieldOutputTokens) {
		fields = append(fields, agentoutput.FieldOutputTokens)
	}
	if m.FieldCleared(agentoutput.FieldCostUsd) {
		fields = append(fields, agentoutput.FieldCostUsd)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentOutputMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentOutputMutation) ClearField(name string) error {
	switch name {
	case agentoutput.FieldRunStepID:
		m.ClearRunStepID()
		return nil
	case agentoutput.FieldModelID:
		m.ClearModelID()
		return nil
	case agentoutput.FieldRound:
		m.ClearRound()
		return nil
	case agentoutput.FieldStage:
		m.ClearStage()
		return nil
	case agentoutput.FieldToolCalls:
		m.ClearToolCalls()
		return nil
	case agentoutput.FieldInputTokens:
		m.ClearInputTokens()
		return nil
	case agentoutput.FieldOutputTokens:
		m.ClearOutputTokens()
		return nil
	case agentoutput.FieldCostUsd:
		m.ClearCostUsd()
		return nil
	}
	return fmt.Errorf("unknown AgentOutput nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentOutputMutation) ResetField(name string) error {
	switch name {
	case agentoutput.FieldRunID:
		m.ResetRunID()
		return nil
	case agentoutput.FieldRunStepID:
		m.ResetRunStepID()
		return nil
	case agentoutput.FieldAgentName:
		m.ResetAgentName()
		return nil
	case agentoutput.FieldModelID:
		m.ResetModelID()
		return nil
	case agentoutput.FieldRound:
		m.ResetRound()
		return nil
	case agentoutput.FieldStage:
		m.ResetStage()
		return nil
	case agentoutput.FieldOutput:
		m.ResetOutput()
		return nil
	case agentoutput.FieldToolCalls:
		m.ResetToolCalls()
		return nil
	case agentoutput.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case agentoutput.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case agentoutput.FieldCostUsd:
		m.ResetCostUsd()
		return nil
	case agentoutput.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentOutput field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentOutputMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.run != nil {
		edges = append(edges, agentoutput.EdgeRun)
	}
	if m.step != nil {
		edges = append(edges, agentoutput.EdgeStep)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentOutputMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentoutput.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	case agentoutput.EdgeStep:
		if id := m.step; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentOutputMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentOutputMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentOutputMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedrun {
		edges = append(edges, agentoutput.EdgeRun)
	}
	if m.clearedstep {
		edges = append(edges, agentoutput.EdgeStep)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentOutputMutation) EdgeCleared(name string) bool {
	switch name {
	case agentoutput.EdgeRun:
		return m.clearedrun
	case agentoutput.EdgeStep:
		return m.clearedstep
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentOutputMutation) ClearEdge(name string) error {
	switch name {
	case agentoutput.EdgeRun:
		m.ClearRun()
		return nil
	case agentoutput.EdgeStep:
		m.ClearStep()
		return nil
	}
	return fmt.Errorf("unknown AgentOutput unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentOutputMutation) ResetEdge(name string) error {
	switch name {
	case agentoutput.EdgeRun:
		m.ResetRun()
		return nil
	case agentoutput.EdgeStep:
		m.ResetStep()
		return nil
	}
	return fmt.Errorf("unknown AgentOutput edge %s", name)
}

// PipelineMutation represents an operation that mutates the Pipeline nodes in the graph.
type PipelineMutation struct {
	config
	op            Op
	typ           string
	id            *string
	name          *string
	description   *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	steps         map[string]struct{}
	removedsteps  map[string]struct{}
	clearedsteps  bool
	done          bool
	oldValue      func(context.Context) (*Pipeline, error)
	predicates    []predicate.Pipeline
}

var _ ent.Mutation = (*PipelineMutation)(nil)

// pipelineOption allows management of the mutation configuration using functional options.
type pipelineOption func(*PipelineMutation)

// newPipelineMutation creates new mutation for the Pipeline entity.
func newPipelineMutation(c config, op Op, opts ...pipelineOption) *PipelineMutation {
	m := &PipelineMutation{
		config:        c,
		op:            op,
		typ:           TypePipeline,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPipelineID sets the ID field of the mutation.
func withPipelineID(id string) pipelineOption {
	return func(m *PipelineMutation) {
		var (
			err   error
			once  sync.Once
			value *Pipeline
		)
		m.oldValue = func(ctx context.Context) (*Pipeline, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Pipeline.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPipeline sets the old Pipeline of the mutation.
func withPipeline(node *Pipeline) pipelineOption {
	return func(m *PipelineMutation) {
		m.oldValue = func(context.Context) (*Pipeline, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PipelineMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PipelineMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Pipeline entities.
func (m *PipelineMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PipelineMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PipelineMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Pipeline.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *PipelineMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *PipelineMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Pipeline entity.
// If the Pipeline object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *PipelineMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *PipelineMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *PipelineMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Pipeline entity.
// If the Pipeline object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *PipelineMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[pipeline.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *PipelineMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[pipeline.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *PipelineMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, pipeline.FieldDescription)
}

// SetCreatedAt sets the "created_at" field.
func (m *PipelineMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PipelineMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Pipeline entity.
// If the Pipeline object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PipelineMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PipelineMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PipelineMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Pipeline entity.
// If the Pipeline object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PipelineMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddStepIDs adds the "steps" edge to the PipelineStep entity by ids.
func (m *PipelineMutation) AddStepIDs(ids ...string) {
	if m.steps == nil {
		m.steps = make(map[string]struct{})
	}
	for i := range ids {
		m.steps[ids[i]] = struct{}{}
	}
}

// ClearSteps clears the "steps" edge to the PipelineStep entity.
func (m *PipelineMutation) ClearSteps() {
	m.clearedsteps = true
}

// StepsCleared reports if the "steps" edge to the PipelineStep entity was cleared.
func (m *PipelineMutation) StepsCleared() bool {
	return m.clearedsteps
}

// RemoveStepIDs removes the "steps" edge to the PipelineStep entity by IDs.
func (m *PipelineMutation) RemoveStepIDs(ids ...string) {
	if m.removedsteps == nil {
		m.removedsteps = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.steps, ids[i])
		m.removedsteps[ids[i]] = struct{}{}
	}
}

// RemovedSteps returns the removed IDs of the "steps" edge to the PipelineStep entity.
func (m *PipelineMutation) RemovedStepsIDs() (ids []string) {
	for id := range m.removedsteps {
		ids = append(ids, id)
	}
	return
}

// StepsIDs returns the "steps" edge IDs in the mutation.
func (m *PipelineMutation) StepsIDs() (ids []string) {
	for id := range m.steps {
		ids = append(ids, id)
	}
	return
}

// ResetSteps resets all changes to the "steps" edge.
func (m *PipelineMutation) ResetSteps() {
	m.steps = nil
	m.clearedsteps = false
	m.removedsteps = nil
}

// Where appends a list predicates to the PipelineMutation builder.
func (m *PipelineMutation) Where(ps ...predicate.Pipeline) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PipelineMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PipelineMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Pipeline, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PipelineMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PipelineMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Pipeline).
func (m *PipelineMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PipelineMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.name != nil {
		fields = append(fields, pipeline.FieldName)
	}
	if m.description != nil {
		fields = append(fields, pipeline.FieldDescription)
	}
	if m.created_at != nil {
		fields = append(fields, pipeline.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, pipeline.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PipelineMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pipeline.FieldName:
		return m.Name()
	case pipeline.FieldDescription:
		return m.Description()
	case pipeline.FieldCreatedAt:
		return m.CreatedAt()
	case pipeline.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PipelineMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pipeline.FieldName:
		return m.OldName(ctx)
	case pipeline.FieldDescription:
		return m.OldDescription(ctx)
	case pipeline.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case pipeline.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Pipeline field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pipeline.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case pipeline.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case pipeline.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case pipeline.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Pipeline field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PipelineMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PipelineMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Pipeline numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PipelineMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pipeline.FieldDescription) {
		fields = append(fields, pipeline.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PipelineMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PipelineMutation) ClearField(name string) error {
	switch name {
	case pipeline.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown Pipeline nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PipelineMutation) ResetField(name string) error {
	switch name {
	case pipeline.FieldName:
		m.ResetName()
		return nil
	case pipeline.FieldDescription:
		m.ResetDescription()
		return nil
	case pipeline.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case pipeline.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Pipeline field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PipelineMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.steps != nil {
		edges = append(edges, pipeline.EdgeSteps)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PipelineMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case pipeline.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.steps))
		for id := range m.steps {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PipelineMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedsteps != nil {
		edges = append(edges, pipeline.EdgeSteps)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PipelineMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case pipeline.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.removedsteps))
		for id := range m.removedsteps {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PipelineMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsteps {
		edges = append(edges, pipeline.EdgeSteps)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PipelineMutation) EdgeCleared(name string) bool {
	switch name {
	case pipeline.EdgeSteps:
		return m.clearedsteps
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PipelineMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Pipeline unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PipelineMutation) ResetEdge(name string) error {
	switch name {
	case pipeline.EdgeSteps:
		m.ResetSteps()
		return nil
	}
	return fmt.Errorf("unknown Pipeline edge %s", name)
}

// PipelineStepMutation represents an operation that mutates the PipelineStep nodes in the graph.
type PipelineStepMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	step_index          *int
	addstep_index       *int
	protocol_key        *string
	question_template   *string
	agent_keys          *[]string
	appendagent_keys    []string
	rounds              *int
	addrounds           *int
	thinking_model      *string
	orchestration_model *string
	output_passthrough  *bool
	clearedFields       map[string]struct{}
	pipeline            *string
	clearedpipeline     bool
	done                bool
	oldValue            func(context.Context) (*PipelineStep, error)
	predicates          []predicate.PipelineStep
}

var _ ent.Mutation = (*PipelineStepMutation)(nil)

// pipelinestepOption allows management of the mutation configuration using functional options.
type pipelinestepOption func(*PipelineStepMutation)

// newPipelineStepMutation creates new mutation for the PipelineStep entity.
func newPipelineStepMutation(c config, op Op, opts ...pipelinestepOption) *PipelineStepMutation {
	m := &PipelineStepMutation{
		config:        c,
		op:            op,
		typ:           TypePipelineStep,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPipelineStepID sets the ID field of the mutation.
func withPipelineStepID(id string) pipelinestepOption {
	return func(m *PipelineStepMutation) {
		var (
			err   error
			once  sync.Once
			value *PipelineStep
		)
		m.oldValue = func(ctx context.Context) (*PipelineStep, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PipelineStep.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPipelineStep sets the old PipelineStep of the mutation.
func withPipelineStep(node *PipelineStep) pipelinestepOption {
	return func(m *PipelineStepMutation) {
		m.oldValue = func(context.Context) (*PipelineStep, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PipelineStepMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PipelineStepMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PipelineStep entities.
func (m *PipelineStepMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PipelineStepMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PipelineStepMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PipelineStep.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPipelineID sets the "pipeline_id" field.
func (m *PipelineStepMutation) SetPipelineID(s string) {
	m.pipeline = &s
}

// PipelineID returns the value of the "pipeline_id" field in the mutation.
func (m *PipelineStepMutation) PipelineID() (r string, exists bool) {
	v := m.pipeline
	if v == nil {
		return
	}
	return *v, true
}

// OldPipelineID returns the old "pipeline_id" field's value of the PipelineStep entity.
// If the PipelineStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepMutation) OldPipelineID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPipelineID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPipelineID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPipelineID: %w", err)
	}
	return oldValue.PipelineID, nil
}

// ResetPipelineID resets all changes to the "pipeline_id" field.
func (m *PipelineStepMutation) ResetPipelineID() {
	m.pipeline = nil
}

// SetStepIndex sets the "step_index" field.
func (m *PipelineStepMutation) SetStepIndex(i int) {
	m.step_index = &i
	m.addstep_index = nil
}

// StepIndex returns the value of the "step_index" field in the mutation.
func (m *PipelineStepMutation) StepIndex() (r int, exists bool) {
	v := m.step_index
	if v == nil {
		return
	}
	return *v, true
}

// OldStepIndex returns the old "step_index" field's value of the PipelineStep entity.
// If the PipelineStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepMutation) OldStepIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepIndex: %w", err)
	}
	return oldValue.StepIndex, nil
}

// AddStepIndex adds i to the "step_index" field.
func (m *PipelineStepMutation) AddStepIndex(i int) {
	if m.addstep_index != nil {
		*m.addstep_index += i
	} else {
		m.addstep_index = &i
	}
}

// AddedStepIndex returns the value that was added to the "step_index" field in this mutation.
func (m *PipelineStepMutation) AddedStepIndex() (r int, exists bool) {
	v := m.addstep_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetStepIndex resets all changes to the "step_index" field.
func (m *PipelineStepMutation) ResetStepIndex() {
	m.step_index = nil
	m.addstep_index = nil
}

// SetProtocolKey sets the "protocol_key" field.
func (m *PipelineStepMutation) SetProtocolKey(s string) {
	m.protocol_key = &s
}

// ProtocolKey returns the value of the "protocol_key" field in the mutation.
func (m *PipelineStepMutation) ProtocolKey() (r string, exists bool) {
	v := m.protocol_key
	if v == nil {
		return
	}
	return *v, true
}

// OldProtocolKey returns the old "protocol_key" field's value of the PipelineStep entity.
// If the PipelineStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepMutation) OldProtocolKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProtocolKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProtocolKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProtocolKey: %w", err)
	}
	return oldValue.ProtocolKey, nil
}

// ResetProtocolKey resets all changes to the "protocol_key" field.
func (m *PipelineStepMutation) ResetProtocolKey() {
	m.protocol_key = nil
}

// SetQuestionTemplate sets the "question_template" field.
func (m *PipelineStepMutation) SetQuestionTemplate(s string) {
	m.question_template = &s
}

// QuestionTemplate returns the value of the "question_template" field in the mutation.
func (m *PipelineStepMutation) QuestionTemplate() (r string, exists bool) {
	v := m.question_template
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionTemplate returns the old "question_template" field's value of the PipelineStep entity.
// If the PipelineStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepMutation) OldQuestionTemplate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionTemplate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionTemplate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionTemplate: %w", err)
	}
	return oldValue.QuestionTemplate, nil
}

// ResetQuestionTemplate resets all changes to the "question_template" field.
func (m *PipelineStepMutation) ResetQuestionTemplate() {
	m.question_template = nil
}

// SetAgentKeys sets the "agent_keys" field.
func (m *PipelineStepMutation) SetAgentKeys(s []string) {
	m.agent_keys = &s
	m.appendagent_keys = nil
}

// AgentKeys returns the value of the "agent_keys" field in the mutation.
func (m *PipelineStepMutation) AgentKeys() (r []string, exists bool) {
	v := m.agent_keys
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentKeys returns the old "agent_keys" field's value of the PipelineStep entity.
// If the PipelineStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepMutation) OldAgentKeys(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentKeys is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentKeys requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentKeys: %w", err)
	}
	return oldValue.AgentKeys, nil
}

// AppendAgentKeys adds s to the "agent_keys" field.
func (m *PipelineStepMutation) AppendAgentKeys(s []string) {
	m.appendagent_keys = append(m.appendagent_keys, s...)
}

// AppendedAgentKeys returns the list of values that were appended to the "agent_keys" field in this mutation.
func (m *PipelineStepMutation) AppendedAgentKeys() ([]string, bool) {
	if len(m.appendagent_keys) == 0 {
		return nil, false
	}
	return m.appendagent_keys, true
}

// ClearAgentKeys clears the value of the "agent_keys" field.
func (m *PipelineStepMutation) ClearAgentKeys() {
	m.agent_keys = nil
	m.appendagent_keys = nil
	m.clearedFields[pipelinestep.FieldAgentKeys] = struct{}{}
}

// AgentKeysCleared returns if the "agent_keys" field was cleared in this mutation.
func (m *PipelineStepMutation) AgentKeysCleared() bool {
	_, ok := m.clearedFields[pipelinestep.FieldAgentKeys]
	return ok
}

// ResetAgentKeys resets all changes to the "agent_keys" field.
func (m *PipelineStepMutation) ResetAgentKeys() {
	m.agent_keys = nil
	m.appendagent_keys = nil
	delete(m.clearedFields, pipelinestep.FieldAgentKeys)
}

// SetRounds sets the "rounds" field.
func (m *PipelineStepMutation) SetRounds(i int) {
	m.rounds = &i
	m.addrounds = nil
}

// Rounds returns the value of the "rounds" field in the mutation.
func (m *PipelineStepMutation) Rounds() (r int, exists bool) {
	v := m.rounds
	if v == nil {
		return
	}
	return *v, true
}

// OldRounds returns the old "rounds" field's value of the PipelineStep entity.
// If the PipelineStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepMutation) OldRounds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRounds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRounds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRounds: %w", err)
	}
	return oldValue.Rounds, nil
}

// AddRounds adds i to the "rounds" field.
func (m *PipelineStepMutation) AddRounds(i int) {
	if m.addrounds != nil {
		*m.addrounds += i
	} else {
		m.addrounds = &i
	}
}

// AddedRounds returns the value that was added to the "rounds" field in this mutation.
func (m *PipelineStepMutation) AddedRounds() (r int, exists bool) {
	v := m.addrounds
	if v == nil {
		return
	}
	return *v, true
}

// ClearRounds clears the value of the "rounds" field.
func (m *PipelineStepMutation) ClearRounds() {
	m.rounds = nil
	m.addrounds = nil
	m.clearedFields[pipelinestep.FieldRounds] = struct{}{}
}

// RoundsCleared returns if the "rounds" field was cleared in this mutation.
func (m *PipelineStepMutation) RoundsCleared() bool {
	_, ok := m.clearedFields[pipelinestep.FieldRounds]
	return ok
}

// ResetRounds resets all changes to the "rounds" field.
func (m *PipelineStepMutation) ResetRounds() {
	m.rounds = nil
	m.addrounds = nil
	delete(m.clearedFields, pipelinestep.FieldRounds)
}

// SetThinkingModel sets the "thinking_model" field.
func (m *PipelineStepMutation) SetThinkingModel(s string) {
	m.thinking_model = &s
}

// ThinkingModel returns the value of the "thinking_model" field in the mutation.
func (m *PipelineStepMutation) ThinkingModel() (r string, exists bool) {
	v := m.thinking_model
	if v == nil {
		return
	}
	return *v, true
}

// OldThinkingModel returns the old "thinking_model" field's value of the PipelineStep entity.
// If the PipelineStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepMutation) OldThinkingModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThinkingModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThinkingModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThinkingModel: %w", err)
	}
	return oldValue.ThinkingModel, nil
}

// ClearThinkingModel clears the value of the "thinking_model" field.
func (m *PipelineStepMutation) ClearThinkingModel() {
	m.thinking_model = nil
	m.clearedFields[pipelinestep.FieldThinkingModel] = struct{}{}
}

// ThinkingModelCleared returns if the "thinking_model" field was cleared in this mutation.
func (m *PipelineStepMutation) ThinkingModelCleared() bool {
	_, ok := m.clearedFields[pipelinestep.FieldThinkingModel]
	return ok
}

// ResetThinkingModel resets all changes to the "thinking_model" field.
func (m *PipelineStepMutation) ResetThinkingModel() {
	m.thinking_model = nil
	delete(m.clearedFields, pipelinestep.FieldThinkingModel)
}

// SetOrchestrationModel sets the "orchestration_model" field.
func (m *PipelineStepMutation) SetOrchestrationModel(s string) {
	m.orchestration_model = &s
}

// OrchestrationModel returns the value of the "orchestration_model" field in the mutation.
func (m *PipelineStepMutation) OrchestrationModel() (r string, exists bool) {
	v := m.orchestration_model
	if v == nil {
		return
	}
	return *v, true
}

// OldOrchestrationModel returns the old "orchestration_model" field's value of the PipelineStep entity.
// If the PipelineStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepMutation) OldOrchestrationModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrchestrationModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrchestrationModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrchestrationModel: %w", err)
	}
	return oldValue.OrchestrationModel, nil
}

// ClearOrchestrationModel clears the value of the "orchestration_model" field.
func (m *PipelineStepMutation) ClearOrchestrationModel() {
	m.orchestration_model = nil
	m.clearedFields[pipelinestep.FieldOrchestrationModel] = struct{}{}
}

// OrchestrationModelCleared returns if the "orchestration_model" field was cleared in this mutation.
func (m *PipelineStepMutation) OrchestrationModelCleared() bool {
	_, ok := m.clearedFields[pipelinestep.FieldOrchestrationModel]
	return ok
}

// ResetOrchestrationModel resets all changes to the "orchestration_model" field.
func (m *PipelineStepMutation) ResetOrchestrationModel() {
	m.orchestration_model = nil
	delete(m.clearedFields, pipelinestep.FieldOrchestrationModel)
}

// SetOutputPassthrough sets the "output_passthrough" field.
func (m *PipelineStepMutation) SetOutputPassthrough(b bool) {
	m.output_passthrough = &b
}

// OutputPassthrough returns the value of the "output_passthrough" field in the mutation.
func (m *PipelineStepMutation) OutputPassthrough() (r bool, exists bool) {
	v := m.output_passthrough
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputPassthrough returns the old "output_passthrough" field's value of the PipelineStep entity.
// If the PipelineStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepMutation) OldOutputPassthrough(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputPassthrough is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputPassthrough requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputPassthrough: %w", err)
	}
	return oldValue.OutputPassthrough, nil
}

// ResetOutputPassthrough resets all changes to the "output_passthrough" field.
func (m *PipelineStepMutation) ResetOutputPassthrough() {
	m.output_passthrough = nil
}

// ClearPipeline clears the "pipeline" edge to the Pipeline entity.
func (m *PipelineStepMutation) ClearPipeline() {
	m.clearedpipeline = true
	m.clearedFields[pipelinestep.FieldPipelineID] = struct{}{}
}

// PipelineCleared reports if the "pipeline" edge to the Pipeline entity was cleared.
func (m *PipelineStepMutation) PipelineCleared() bool {
	return m.clearedpipeline
}

// PipelineIDs returns the "pipeline" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PipelineID instead. It exists only for internal usage by the builders.
func (m *PipelineStepMutation) PipelineIDs() (ids []string) {
	if id := m.pipeline; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPipeline resets all changes to the "pipeline" edge.
func (m *PipelineStepMutation) ResetPipeline() {
	m.pipeline = nil
	m.clearedpipeline = false
}

// Where appends a list predicates to the PipelineStepMutation builder.
func (m *PipelineStepMutation) Where(ps ...predicate.PipelineStep) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PipelineStepMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PipelineStepMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PipelineStep, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PipelineStepMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PipelineStepMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PipelineStep).
func (m *PipelineStepMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PipelineStepMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.pipeline != nil {
		fields = append(fields, pipelinestep.FieldPipelineID)
	}
	if m.step_index != nil {
		fields = append(fields, pipelinestep.FieldStepIndex)
	}
	if m.protocol_key != nil {
		fields = append(fields, pipelinestep.FieldProtocolKey)
	}
	if m.question_template != nil {
		fields = append(fields, pipelinestep.FieldQuestionTemplate)
	}
	if m.agent_keys != nil {
		fields = append(fields, pipelinestep.FieldAgentKeys)
	}
	if m.rounds != nil {
		fields = append(fields, pipelinestep.FieldRounds)
	}
	if m.thinking_model != nil {
		fields = append(fields, pipelinestep.FieldThinkingModel)
	}
	if m.orchestration_model != nil {
		fields = append(fields, pipelinestep.FieldOrchestrationModel)
	}
	if m.output_passthrough != nil {
		fields = append(fields, pipelinestep.FieldOutputPassthrough)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PipelineStepMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pipelinestep.FieldPipelineID:
		return m.PipelineID()
	case pipelinestep.FieldStepIndex:
		return m.StepIndex()
	case pipelinestep.FieldProtocolKey:
		return m.ProtocolKey()
	case pipelinestep.FieldQuestionTemplate:
		return m.QuestionTemplate()
	case pipelinestep.FieldAgentKeys:
		return m.AgentKeys()
	case pipelinestep.FieldRounds:
		return m.Rounds()
	case pipelinestep.FieldThinkingModel:
		return m.ThinkingModel()
	case pipelinestep.FieldOrchestrationModel:
		return m.OrchestrationModel()
	case pipelinestep.FieldOutputPassthrough:
		return m.OutputPassthrough()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PipelineStepMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pipelinestep.FieldPipelineID:
		return m.OldPipelineID(ctx)
	case pipelinestep.FieldStepIndex:
		return m.OldStepIndex(ctx)
	case pipelinestep.FieldProtocolKey:
		return m.OldProtocolKey(ctx)
	case pipelinestep.FieldQuestionTemplate:
		return m.OldQuestionTemplate(ctx)
	case pipelinestep.FieldAgentKeys:
		return m.OldAgentKeys(ctx)
	case pipelinestep.FieldRounds:
		return m.OldRounds(ctx)
	case pipelinestep.FieldThinkingModel:
		return m.OldThinkingModel(ctx)
	case pipelinestep.FieldOrchestrationModel:
		return m.OldOrchestrationModel(ctx)
	case pipelinestep.FieldOutputPassthrough:
		return m.OldOutputPassthrough(ctx)
	}
	return nil, fmt.Errorf("unknown PipelineStep field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineStepMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pipelinestep.FieldPipelineID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPipelineID(v)
		return nil
	case pipelinestep.FieldStepIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepIndex(v)
		return nil
	case pipelinestep.FieldProtocolKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProtocolKey(v)
		return nil
	case pipelinestep.FieldQuestionTemplate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionTemplate(v)
		return nil
	case pipelinestep.FieldAgentKeys:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentKeys(v)
		return nil
	case pipelinestep.FieldRounds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRounds(v)
		return nil
	case pipelinestep.FieldThinkingModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThinkingModel(v)
		return nil
	case pipelinestep.FieldOrchestrationModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrchestrationModel(v)
		return nil
	case pipelinestep.FieldOutputPassthrough:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputPassthrough(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineStep field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PipelineStepMutation) AddedFields() []string {
	var fields []string
	if m.addstep_index != nil {
		fields = append(fields, pipelinestep.FieldStepIndex)
	}
	if m.addrounds != nil {
		fields = append(fields, pipelinestep.FieldRounds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PipelineStepMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pipelinestep.FieldStepIndex:
		return m.AddedStepIndex()
	case pipelinestep.FieldRounds:
		return m.AddedRounds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineStepMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pipelinestep.FieldStepIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStepIndex(v)
		return nil
	case pipelinestep.FieldRounds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRounds(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineStep numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PipelineStepMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pipelinestep.FieldAgentKeys) {
		fields = append(fields, pipelinestep.FieldAgentKeys)
	}
	if m.FieldCleared(pipelinestep.FieldRounds) {
		fields = append(fields, pipelinestep.FieldRounds)
	}
	if m.FieldCleared(pipelinestep.FieldThinkingModel) {
		fields = append(fields, pipelinestep.FieldThinkingModel)
	}
	if m.FieldCleared(pipelinestep.FieldOrchestrationModel) {
		fields = append(fields, pipelinestep.FieldOrchestrationModel)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PipelineStepMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PipelineStepMutation) ClearField(name string) error {
	switch name {
	case pipelinestep.FieldAgentKeys:
		m.ClearAgentKeys()
		return nil
	case pipelinestep.FieldRounds:
		m.ClearRounds()
		return nil
	case pipelinestep.FieldThinkingModel:
		m.ClearThinkingModel()
		return nil
	case pipelinestep.FieldOrchestrationModel:
		m.ClearOrchestrationModel()
		return nil
	}
	return fmt.Errorf("unknown PipelineStep nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PipelineStepMutation) ResetField(name string) error {
	switch name {
	case pipelinestep.FieldPipelineID:
		m.ResetPipelineID()
		return nil
	case pipelinestep.FieldStepIndex:
		m.ResetStepIndex()
		return nil
	case pipelinestep.FieldProtocolKey:
		m.ResetProtocolKey()
		return nil
	case pipelinestep.FieldQuestionTemplate:
		m.ResetQuestionTemplate()
		return nil
	case pipelinestep.FieldAgentKeys:
		m.ResetAgentKeys()
		return nil
	case pipelinestep.FieldRounds:
		m.ResetRounds()
		return nil
	case pipelinestep.FieldThinkingModel:
		m.ResetThinkingModel()
		return nil
	case pipelinestep.FieldOrchestrationModel:
		m.ResetOrchestrationModel()
		return nil
	case pipelinestep.FieldOutputPassthrough:
		m.ResetOutputPassthrough()
		return nil
	}
	return fmt.Errorf("unknown PipelineStep field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PipelineStepMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.pipeline != nil {
		edges = append(edges, pipelinestep.EdgePipeline)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PipelineStepMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case pipelinestep.EdgePipeline:
		if id := m.pipeline; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PipelineStepMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PipelineStepMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PipelineStepMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedpipeline {
		edges = append(edges, pipelinestep.EdgePipeline)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PipelineStepMutation) EdgeCleared(name string) bool {
	switch name {
	case pipelinestep.EdgePipeline:
		return m.clearedpipeline
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PipelineStepMutation) ClearEdge(name string) error {
	switch name {
	case pipelinestep.EdgePipeline:
		m.ClearPipeline()
		return nil
	}
	return fmt.Errorf("unknown PipelineStep unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PipelineStepMutation) ResetEdge(name string) error {
	switch name {
	case pipelinestep.EdgePipeline:
		m.ResetPipeline()
		return nil
	}
	return fmt.Errorf("unknown PipelineStep edge %s", name)
}

// RunMutation represents an operation that mutates the Run nodes in the graph.
type RunMutation struct {
	config
	op               Op
	typ              string
	id               *string
	kind             *run.Kind
	question         *string
	protocol_key     *string
	pipeline_id      *string
	team_id          *string
	agent_keys       *[]string
	appendagent_keys []string
	rounds           *int
	addrounds        *int
	status           *run.Status
	created_at       *time.Time
	started_at       *time.Time
	completed_at     *time.Time
	duration_ms      *int
	addduration_ms   *int
	error_message    *string
	synthesis        *string
	result_json      *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	cost_usd         *float64
	addcost_usd      *float64
	clearedFields    map[string]struct{}
	steps            map[string]struct{}
	removedsteps     map[string]struct{}
	clearedsteps     bool
	outputs          map[string]struct{}
	removedoutputs   map[string]struct{}
	clearedoutputs   bool
	done             bool
	oldValue         func(context.Context) (*Run, error)
	predicates       []predicate.Run
}

var _ ent.Mutation = (*RunMutation)(nil)

// runOption allows management of the mutation configuration using functional options.
type runOption func(*RunMutation)

// newRunMutation creates new mutation for the Run entity.
func newRunMutation(c config, op Op, opts ...runOption) *RunMutation {
	m := &RunMutation{
		config:        c,
		op:            op,
		typ:           TypeRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRunID sets the ID field of the mutation.
func withRunID(id string) runOption {
	return func(m *RunMutation) {
		var (
			err   error
			once  sync.Once
			value *Run
		)
		m.oldValue = func(ctx context.Context) (*Run, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Run.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRun sets the old Run of the mutation.
func withRun(node *Run) runOption {
	return func(m *RunMutation) {
		m.oldValue = func(context.Context) (*Run, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Run entities.
func (m *RunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Run.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKind sets the "kind" field.
func (m *RunMutation) SetKind(r run.Kind) {
	m.kind = &r
}

// Kind returns the value of the "kind" field in the mutation.
func (m *RunMutation) Kind() (r run.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldKind(ctx context.Context) (v run.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *RunMutation) ResetKind() {
	m.kind = nil
}

// SetQuestion sets the "question" field.
func (m *RunMutation) SetQuestion(s string) {
	m.question = &s
}

// Question returns the value of the "question" field in the mutation.
func (m *RunMutation) Question() (r string, exists bool) {
	v := m.question
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestion returns the old "question" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldQuestion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestion: %w", err)
	}
	return oldValue.Question, nil
}

// ResetQuestion resets all changes to the "question" field.
func (m *RunMutation) ResetQuestion() {
	m.question = nil
}

// SetProtocolKey sets the "protocol_key" field.
func (m *RunMutation) SetProtocolKey(s string) {
	m.protocol_key = &s
}

// ProtocolKey returns the value of the "protocol_key" field in the mutation.
func (m *RunMutation) ProtocolKey() (r string, exists bool) {
	v := m.protocol_key
	if v == nil {
		return
	}
	return *v, true
}

// OldProtocolKey returns the old "protocol_key" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldProtocolKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProtocolKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProtocolKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProtocolKey: %w", err)
	}
	return oldValue.ProtocolKey, nil
}

// ClearProtocolKey clears the value of the "protocol_key" field.
func (m *RunMutation) ClearProtocolKey() {
	m.protocol_key = nil
	m.clearedFields[run.FieldProtocolKey] = struct{}{}
}

// ProtocolKeyCleared returns if the "protocol_key" field was cleared in this mutation.
func (m *RunMutation) ProtocolKeyCleared() bool {
	_, ok := m.clearedFields[run.FieldProtocolKey]
	return ok
}

// ResetProtocolKey resets all changes to the "protocol_key" field.
func (m *RunMutation) ResetProtocolKey() {
	m.protocol_key = nil
	delete(m.clearedFields, run.FieldProtocolKey)
}

// SetPipelineID sets the "pipeline_id" field.
func (m *RunMutation) SetPipelineID(s string) {
	m.pipeline_id = &s
}

// PipelineID returns the value of the "pipeline_id" field in the mutation.
func (m *RunMutation) PipelineID() (r string, exists bool) {
	v := m.pipeline_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPipelineID returns the old "pipeline_id" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldPipelineID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPipelineID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPipelineID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPipelineID: %w", err)
	}
	return oldValue.PipelineID, nil
}

// ClearPipelineID clears the value of the "pipeline_id" field.
func (m *RunMutation) ClearPipelineID() {
	m.pipeline_id = nil
	m.clearedFields[run.FieldPipelineID] = struct{}{}
}

// PipelineIDCleared returns if the "pipeline_id" field was cleared in this mutation.
func (m *RunMutation) PipelineIDCleared() bool {
	_, ok := m.clearedFields[run.FieldPipelineID]
	return ok
}

// ResetPipelineID resets all changes to the "pipeline_id" field.
func (m *RunMutation) ResetPipelineID() {
	m.pipeline_id = nil
	delete(m.clearedFields, run.FieldPipelineID)
}

// SetTeamID sets the "team_id" field.
func (m *RunMutation) SetTeamID(s string) {
	m.team_id = &s
}

// TeamID returns the value of the "team_id" field in the mutation.
func (m *RunMutation) TeamID() (r string, exists bool) {
	v := m.team_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTeamID returns the old "team_id" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldTeamID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTeamID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTeamID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTeamID: %w", err)
	}
	return oldValue.TeamID, nil
}

// ClearTeamID clears the value of the "team_id" field.
func (m *RunMutation) ClearTeamID() {
	m.team_id = nil
	m.clearedFields[run.FieldTeamID] = struct{}{}
}

// TeamIDCleared returns if the "team_id" field was cleared in this mutation.
func (m *RunMutation) TeamIDCleared() bool {
	_, ok := m.clearedFields[run.FieldTeamID]
	return ok
}

// ResetTeamID resets all changes to the "team_id" field.
func (m *RunMutation) ResetTeamID() {
	m.team_id = nil
	delete(m.clearedFields, run.FieldTeamID)
}

// SetAgentKeys sets the "agent_keys" field.
func (m *RunMutation) SetAgentKeys(s []string) {
	m.agent_keys = &s
	m.appendagent_keys = nil
}

// AgentKeys returns the value of the "agent_keys" field in the mutation.
func (m *RunMutation) AgentKeys() (r []string, exists bool) {
	v := m.agent_keys
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentKeys returns the old "agent_keys" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldAgentKeys(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentKeys is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentKeys requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentKeys: %w", err)
	}
	return oldValue.AgentKeys, nil
}

// AppendAgentKeys adds s to the "agent_keys" field.
func (m *RunMutation) AppendAgentKeys(s []string) {
	m.appendagent_keys = append(m.appendagent_keys, s...)
}

// AppendedAgentKeys returns the list of values that were appended to the "agent_keys" field in this mutation.
func (m *RunMutation) AppendedAgentKeys() ([]string, bool) {
	if len(m.appendagent_keys) == 0 {
		return nil, false
	}
	return m.appendagent_keys, true
}

// ClearAgentKeys clears the value of the "agent_keys" field.
func (m *RunMutation) ClearAgentKeys() {
	m.agent_keys = nil
	m.appendagent_keys = nil
	m.clearedFields[run.FieldAgentKeys] = struct{}{}
}

// AgentKeysCleared returns if the "agent_keys" field was cleared in this mutation.
func (m *RunMutation) AgentKeysCleared() bool {
	_, ok := m.clearedFields[run.FieldAgentKeys]
	return ok
}

// ResetAgentKeys resets all changes to the "agent_keys" field.
func (m *RunMutation) ResetAgentKeys() {
	m.agent_keys = nil
	m.appendagent_keys = nil
	delete(m.clearedFields, run.FieldAgentKeys)
}

// SetRounds sets the "rounds" field.
func (m *RunMutation) SetRounds(i int) {
	m.rounds = &i
	m.addrounds = nil
}

// Rounds returns the value of the "rounds" field in the mutation.
func (m *RunMutation) Rounds() (r int, exists bool) {
	v := m.rounds
	if v == nil {
		return
	}
	return *v, true
}

// OldRounds returns the old "rounds" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldRounds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRounds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRounds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRounds: %w", err)
	}
	return oldValue.Rounds, nil
}

// AddRounds adds i to the "rounds" field.
func (m *RunMutation) AddRounds(i int) {
	if m.addrounds != nil {
		*m.addrounds += i
	} else {
		m.addrounds = &i
	}
}

// AddedRounds returns the value that was added to the "rounds" field in this mutation.
func (m *RunMutation) AddedRounds() (r int, exists bool) {
	v := m.addrounds
	if v == nil {
		return
	}
	return *v, true
}

// ClearRounds clears the value of the "rounds" field.
func (m *RunMutation) ClearRounds() {
	m.rounds = nil
	m.addrounds = nil
	m.clearedFields[run.FieldRounds] = struct{}{}
}

// RoundsCleared returns if the "rounds" field was cleared in this mutation.
func (m *RunMutation) RoundsCleared() bool {
	_, ok := m.clearedFields[run.FieldRounds]
	return ok
}

// ResetRounds resets all changes to the "rounds" field.
func (m *RunMutation) ResetRounds() {
	m.rounds = nil
	m.addrounds = nil
	delete(m.clearedFields, run.FieldRounds)
}

// SetStatus sets the "status" field.
func (m *RunMutation) SetStatus(r run.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *RunMutation) Status() (r run.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldStatus(ctx context.Context) (v run.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *RunMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *RunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *RunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *RunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *RunMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[run.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *RunMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[run.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *RunMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, run.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *RunMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *RunMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *RunMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[run.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *RunMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[run.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *RunMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, run.FieldCompletedAt)
}

// SetDurationMs sets the "duration_ms" field.
func (m *RunMutation) SetDurationMs(i int) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *RunMutation) DurationMs() (r int, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldDurationMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *RunMutation) AddDurationMs(i int) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *RunMutation) AddedDurationMs() (r int, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *RunMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[run.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *RunMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[run.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *RunMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, run.FieldDurationMs)
}

// SetErrorMessage sets the "error_message" field.
func (m *RunMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *RunMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *RunMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[run.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *RunMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[run.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *RunMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, run.FieldErrorMessage)
}

// SetSynthesis sets the "synthesis" field.
func (m *RunMutation) SetSynthesis(s string) {
	m.synthesis = &s
}

// Synthesis returns the value of the "synthesis" field in the mutation.
func (m *RunMutation) Synthesis() (r string, exists bool) {
	v := m.synthesis
	if v == nil {
		return
	}
	return *v, true
}

// OldSynthesis returns the old "synthesis" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldSynthesis(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSynthesis is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSynthesis requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSynthesis: %w", err)
	}
	return oldValue.Synthesis, nil
}

// ClearSynthesis clears the value of the "synthesis" field.
func (m *RunMutation) ClearSynthesis() {
	m.synthesis = nil
	m.clearedFields[run.FieldSynthesis] = struct{}{}
}

// SynthesisCleared returns if the "synthesis" field was cleared in this mutation.
func (m *RunMutation) SynthesisCleared() bool {
	_, ok := m.clearedFields[run.FieldSynthesis]
	return ok
}

// ResetSynthesis resets all changes to the "synthesis" field.
func (m *RunMutation) ResetSynthesis() {
	m.synthesis = nil
	delete(m.clearedFields, run.FieldSynthesis)
}

// SetResultJSON sets the "result_json" field.
func (m *RunMutation) SetResultJSON(s string) {
	m.result_json = &s
}

// ResultJSON returns the value of the "result_json" field in the mutation.
func (m *RunMutation) ResultJSON() (r string, exists bool) {
	v := m.result_json
	if v == nil {
		return
	}
	return *v, true
}

// OldResultJSON returns the old "result_json" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldResultJSON(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultJSON: %w", err)
	}
	return oldValue.ResultJSON, nil
}

// ClearResultJSON clears the value of the "result_json" field.
func (m *RunMutation) ClearResultJSON() {
	m.result_json = nil
	m.clearedFields[run.FieldResultJSON] = struct{}{}
}

// ResultJSONCleared returns if the "result_json" field was cleared in this mutation.
func (m *RunMutation) ResultJSONCleared() bool {
	_, ok := m.clearedFields[run.FieldResultJSON]
	return ok
}

// ResetResultJSON resets all changes to the "result_json" field.
func (m *RunMutation) ResetResultJSON() {
	m.result_json = nil
	delete(m.clearedFields, run.FieldResultJSON)
}

// SetInputTokens sets the "input_tokens" field.
func (m *RunMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *RunMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *RunMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *RunMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ClearInputTokens clears the value of the "input_tokens" field.
func (m *RunMutation) ClearInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
	m.clearedFields[run.FieldInputTokens] = struct{}{}
}

// InputTokensCleared returns if the "input_tokens" field was cleared in this mutation.
func (m *RunMutation) InputTokensCleared() bool {
	_, ok := m.clearedFields[run.FieldInputTokens]
	return ok
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *RunMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
	delete(m.clearedFields, run.FieldInputTokens)
}

// SetOutputTokens sets the "output_tokens" field.
func (m *RunMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *RunMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *RunMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *RunMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ClearOutputTokens clears the value of the "output_tokens" field.
func (m *RunMutation) ClearOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
	m.clearedFields[run.FieldOutputTokens] = struct{}{}
}

// OutputTokensCleared returns if the "output_tokens" field was cleared in this mutation.
func (m *RunMutation) OutputTokensCleared() bool {
	_, ok := m.clearedFields[run.FieldOutputTokens]
	return ok
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *RunMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
	delete(m.clearedFields, run.FieldOutputTokens)
}

// SetCostUsd sets the "cost_usd" field.
func (m *RunMutation) SetCostUsd(f float64) {
	m.cost_usd = &f
	m.addcost_usd = nil
}

// CostUsd returns the value of the "cost_usd" field in the mutation.
func (m *RunMutation) CostUsd() (r float64, exists bool) {
	v := m.cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldCostUsd returns the old "cost_usd" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldCostUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostUsd: %w", err)
	}
	return oldValue.CostUsd, nil
}

// AddCostUsd adds f to the "cost_usd" field.
func (m *RunMutation) AddCostUsd(f float64) {
	if m.addcost_usd != nil {
		*m.addcost_usd += f
	} else {
		m.addcost_usd = &f
	}
}

// AddedCostUsd returns the value that was added to the "cost_usd" field in this mutation.
func (m *RunMutation) AddedCostUsd() (r float64, exists bool) {
	v := m.addcost_usd
	if v == nil {
		return
	}
	return *v, true
}

// ClearCostUsd clears the value of the "cost_usd" field.
func (m *RunMutation) ClearCostUsd() {
	m.cost_usd = nil
	m.addcost_usd = nil
	m.clearedFields[run.FieldCostUsd] = struct{}{}
}

// CostUsdCleared returns if the "cost_usd" field was cleared in this mutation.
func (m *RunMutation) CostUsdCleared() bool {
	_, ok := m.clearedFields[run.FieldCostUsd]
	return ok
}

// ResetCostUsd resets all changes to the "cost_usd" field.
func (m *RunMutation) ResetCostUsd() {
	m.cost_usd = nil
	m.addcost_usd = nil
	delete(m.clearedFields, run.FieldCostUsd)
}

// AddStepIDs adds the "steps" edge to the RunStep entity by ids.
func (m *RunMutation) AddStepIDs(ids ...string) {
	if m.steps == nil {
		m.steps = make(map[string]struct{})
	}
	for i := range ids {
		m.steps[ids[i]] = struct{}{}
	}
}

// ClearSteps clears the "steps" edge to the RunStep entity.
func (m *RunMutation) ClearSteps() {
	m.clearedsteps = true
}

// StepsCleared reports if the "steps" edge to the RunStep entity was cleared.
func (m *RunMutation) StepsCleared() bool {
	return m.clearedsteps
}

// RemoveStepIDs removes the "steps" edge to the RunStep entity by IDs.
func (m *RunMutation) RemoveStepIDs(ids ...string) {
	if m.removedsteps == nil {
		m.removedsteps = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.steps, ids[i])
		m.removedsteps[ids[i]] = struct{}{}
	}
}

// RemovedSteps returns the removed IDs of the "steps" edge to the RunStep entity.
func (m *RunMutation) RemovedStepsIDs() (ids []string) {
	for id := range m.removedsteps {
		ids = append(ids, id)
	}
	return
}

// StepsIDs returns the "steps" edge IDs in the mutation.
func (m *RunMutation) StepsIDs() (ids []string) {
	for id := range m.steps {
		ids = append(ids, id)
	}
	return
}

// ResetSteps resets all changes to the "steps" edge.
func (m *RunMutation) ResetSteps() {
	m.steps = nil
	m.clearedsteps = false
	m.removedsteps = nil
}

// AddOutputIDs adds the "outputs" edge to the AgentOutput entity by ids.
func (m *RunMutation) AddOutputIDs(ids ...string) {
	if m.outputs == nil {
		m.outputs = make(map[string]struct{})
	}
	for i := range ids {
		m.outputs[ids[i]] = struct{}{}
	}
}

// ClearOutputs clears the "outputs" edge to the AgentOutput entity.
func (m *RunMutation) ClearOutputs() {
	m.clearedoutputs = true
}

// OutputsCleared reports if the "outputs" edge to the AgentOutput entity was cleared.
func (m *RunMutation) OutputsCleared() bool {
	return m.clearedoutputs
}

// RemoveOutputIDs removes the "outputs" edge to the AgentOutput entity by IDs.
func (m *RunMutation) RemoveOutputIDs(ids ...string) {
	if m.removedoutputs == nil {
		m.removedoutputs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.outputs, ids[i])
		m.removedoutputs[ids[i]] = struct{}{}
	}
}

// RemovedOutputs returns the removed IDs of the "outputs" edge to the AgentOutput entity.
func (m *RunMutation) RemovedOutputsIDs() (ids []string) {
	for id := range m.removedoutputs {
		ids = append(ids, id)
	}
	return
}

// OutputsIDs returns the "outputs" edge IDs in the mutation.
func (m *RunMutation) OutputsIDs() (ids []string) {
	for id := range m.outputs {
		ids = append(ids, id)
	}
	return
}

// ResetOutputs resets all changes to the "outputs" edge.
func (m *RunMutation) ResetOutputs() {
	m.outputs = nil
	m.clearedoutputs = false
	m.removedoutputs = nil
}

// Where appends a list predicates to the RunMutation builder.
func (m *RunMutation) Where(ps ...predicate.Run) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Run, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Run).
func (m *RunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RunMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.kind != nil {
		fields = append(fields, run.FieldKind)
	}
	if m.question != nil {
		fields = append(fields, run.FieldQuestion)
	}
	if m.protocol_key != nil {
		fields = append(fields, run.FieldProtocolKey)
	}
	if m.pipeline_id != nil {
		fields = append(fields, run.FieldPipelineID)
	}
	if m.team_id != nil {
		fields = append(fields, run.FieldTeamID)
	}
	if m.agent_keys != nil {
		fields = append(fields, run.FieldAgentKeys)
	}
	if m.rounds != nil {
		fields = append(fields, run.FieldRounds)
	}
	if m.status != nil {
		fields = append(fields, run.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, run.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, run.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, run.FieldCompletedAt)
	}
	if m.duration_ms != nil {
		fields = append(fields, run.FieldDurationMs)
	}
	if m.error_message != nil {
		fields = append(fields, run.FieldErrorMessage)
	}
	if m.synthesis != nil {
		fields = append(fields, run.FieldSynthesis)
	}
	if m.result_json != nil {
		fields = append(fields, run.FieldResultJSON)
	}
	if m.input_tokens != nil {
		fields = append(fields, run.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, run.FieldOutputTokens)
	}
	if m.cost_usd != nil {
		fields = append(fields, run.FieldCostUsd)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case run.FieldKind:
		return m.Kind()
	case run.FieldQuestion:
		return m.Question()
	case run.FieldProtocolKey:
		return m.ProtocolKey()
	case run.FieldPipelineID:
		return m.PipelineID()
	case run.FieldTeamID:
		return m.TeamID()
	case run.FieldAgentKeys:
		return m.AgentKeys()
	case run.FieldRounds:
		return m.Rounds()
	case run.FieldStatus:
		return m.Status()
	case run.FieldCreatedAt:
		return m.CreatedAt()
	case run.FieldStartedAt:
		return m.StartedAt()
	case run.FieldCompletedAt:
		return m.CompletedAt()
	case run.FieldDurationMs:
		return m.DurationMs()
	case run.FieldErrorMessage:
		return m.ErrorMessage()
	case run.FieldSynthesis:
		return m.Synthesis()
	case run.FieldResultJSON:
		return m.ResultJSON()
	case run.FieldInputTokens:
		return m.InputTokens()
	case run.FieldOutputTokens:
		return m.OutputTokens()
	case run.FieldCostUsd:
		return m.CostUsd()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case run.FieldKind:
		return m.OldKind(ctx)
	case run.FieldQuestion:
		return m.OldQuestion(ctx)
	case run.FieldProtocolKey:
		return m.OldProtocolKey(ctx)
	case run.FieldPipelineID:
		return m.OldPipelineID(ctx)
	case run.FieldTeamID:
		return m.OldTeamID(ctx)
	case run.FieldAgentKeys:
		return m.OldAgentKeys(ctx)
	case run.FieldRounds:
		return m.OldRounds(ctx)
	case run.FieldStatus:
		return m.OldStatus(ctx)
	case run.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case run.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case run.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case run.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case run.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case run.FieldSynthesis:
		return m.OldSynthesis(ctx)
	case run.FieldResultJSON:
		return m.OldResultJSON(ctx)
	case run.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case run.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case run.FieldCostUsd:
		return m.OldCostUsd(ctx)
	}
	return nil, fmt.Errorf("unknown Run field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case run.FieldKind:
		v, ok := value.(run.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case run.FieldQuestion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestion(v)
		return nil
	case run.FieldProtocolKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProtocolKey(v)
		return nil
	case run.FieldPipelineID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPipelineID(v)
		return nil
	case run.FieldTeamID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTeamID(v)
		return nil
	case run.FieldAgentKeys:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentKeys(v)
		return nil
	case run.FieldRounds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRounds(v)
		return nil
	case run.FieldStatus:
		v, ok := value.(run.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case run.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case run.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case run.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case run.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case run.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case run.FieldSynthesis:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSynthesis(v)
		return nil
	case run.FieldResultJSON:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultJSON(v)
		return nil
	case run.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case run.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case run.FieldCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostUsd(v)
		return nil
	}
	return fmt.Errorf("unknown Run field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RunMutation) AddedFields() []string {
	var fields []string
	if m.addrounds != nil {
		fields = append(fields, run.FieldRounds)
	}
	if m.addduration_ms != nil {
		fields = append(fields, run.FieldDurationMs)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, run.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, run.FieldOutputTokens)
	}
	if m.addcost_usd != nil {
		fields = append(fields, run.FieldCostUsd)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case run.FieldRounds:
		return m.AddedRounds()
	case run.FieldDurationMs:
		return m.AddedDurationMs()
	case run.FieldInputTokens:
		return m.AddedInputTokens()
	case run.FieldOutputTokens:
		return m.AddedOutputTokens()
	case run.FieldCostUsd:
		return m.AddedCostUsd()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case run.FieldRounds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRounds(v)
		return nil
	case run.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	case run.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case run.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case run.FieldCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCostUsd(v)
		return nil
	}
	return fmt.Errorf("unknown Run numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(run.FieldProtocolKey) {
		fields = append(fields, run.FieldProtocolKey)
	}
	if m.FieldCleared(run.FieldPipelineID) {
		fields = append(fields, run.FieldPipelineID)
	}
	if m.FieldCleared(run.FieldTeamID) {
		fields = append(fields, run.FieldTeamID)
	}
	if m.FieldCleared(run.FieldAgentKeys) {
		fields = append(fields, run.FieldAgentKeys)
	}
	if m.FieldCleared(run.FieldRounds) {
		fields = append(fields, run.FieldRounds)
	}
	if m.FieldCleared(run.FieldStartedAt) {
		fields = append(fields, run.FieldStartedAt)
	}
	if m.FieldCleared(run.FieldCompletedAt) {
		fields = append(fields, run.FieldCompletedAt)
	}
	if m.FieldCleared(run.FieldDurationMs) {
		fields = append(fields, run.FieldDurationMs)
	}
	if m.FieldCleared(run.FieldErrorMessage) {
		fields = append(fields, run.FieldErrorMessage)
	}
	if m.FieldCleared(run.FieldSynthesis) {
		fields = append(fields, run.FieldSynthesis)
	}
	if m.FieldCleared(run.FieldResultJSON) {
		fields = append(fields, run.FieldResultJSON)
	}
	if m.FieldCleared(run.FieldInputTokens) {
		fields = append(fields, run.FieldInputTokens)
	}
	if m.FieldCleared(run.FieldOutputTokens) {
		fields = append(fields, run.FieldOutputTokens)
	}
	if m.FieldCleared(run.FieldCostUsd) {
		fields = append(fields, run.FieldCostUsd)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RunMutation) ClearField(name string) error {
	switch name {
	case run.FieldProtocolKey:
		m.ClearProtocolKey()
		return nil
	case run.FieldPipelineID:
		m.ClearPipelineID()
		return nil
	case run.FieldTeamID:
		m.ClearTeamID()
		return nil
	case run.FieldAgentKeys:
		m.ClearAgentKeys()
		return nil
	case run.FieldRounds:
		m.ClearRounds()
		return nil
	case run.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case run.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case run.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	case run.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case run.FieldSynthesis:
		m.ClearSynthesis()
		return nil
	case run.FieldResultJSON:
		m.ClearResultJSON()
		return nil
	case run.FieldInputTokens:
		m.ClearInputTokens()
		return nil
	case run.FieldOutputTokens:
		m.ClearOutputTokens()
		return nil
	case run.FieldCostUsd:
		m.ClearCostUsd()
		return nil
	}
	return fmt.Errorf("unknown Run nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RunMutation) ResetField(name string) error {
	switch name {
	case run.FieldKind:
		m.ResetKind()
		return nil
	case run.FieldQuestion:
		m.ResetQuestion()
		return nil
	case run.FieldProtocolKey:
		m.ResetProtocolKey()
		return nil
	case run.FieldPipelineID:
		m.ResetPipelineID()
		return nil
	case run.FieldTeamID:
		m.ResetTeamID()
		return nil
	case run.FieldAgentKeys:
		m.ResetAgentKeys()
		return nil
	case run.FieldRounds:
		m.ResetRounds()
		return nil
	case run.FieldStatus:
		m.ResetStatus()
		return nil
	case run.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case run.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case run.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case run.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case run.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case run.FieldSynthesis:
		m.ResetSynthesis()
		return nil
	case run.FieldResultJSON:
		m.ResetResultJSON()
		return nil
	case run.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case run.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case run.FieldCostUsd:
		m.ResetCostUsd()
		return nil
	}
	return fmt.Errorf("unknown Run field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RunMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.steps != nil {
		edges = append(edges, run.EdgeSteps)
	}
	if m.outputs != nil {
		edges = append(edges, run.EdgeOutputs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case run.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.steps))
		for id := range m.steps {
			ids = append(ids, id)
		}
		return ids
	case run.EdgeOutputs:
		ids := make([]ent.Value, 0, len(m.outputs))
		for id := range m.outputs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedsteps != nil {
		edges = append(edges, run.EdgeSteps)
	}
	if m.removedoutputs != nil {
		edges = append(edges, run.EdgeOutputs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RunMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case run.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.removedsteps))
		for id := range m.removedsteps {
			ids = append(ids, id)
		}
		return ids
	case run.EdgeOutputs:
		ids := make([]ent.Value, 0, len(m.removedoutputs))
		for id := range m.removedoutputs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsteps {
		edges = append(edges, run.EdgeSteps)
	}
	if m.clearedoutputs {
		edges = append(edges, run.EdgeOutputs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RunMutation) EdgeCleared(name string) bool {
	switch name {
	case run.EdgeSteps:
		return m.clearedsteps
	case run.EdgeOutputs:
		return m.clearedoutputs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RunMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Run unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RunMutation) ResetEdge(name string) error {
	switch name {
	case run.EdgeSteps:
		m.ResetSteps()
		return nil
	case run.EdgeOutputs:
		m.ResetOutputs()
		return nil
	}
	return fmt.Errorf("unknown Run edge %s", name)
}

// RunStepMutation represents an operation that mutates the RunStep nodes in the graph.
type RunStepMutation struct {
	config
	op             Op
	typ            string
	id             *string
	step_index     *int
	addstep_index  *int
	protocol_key   *string
	question       *string
	status         *runstep.Status
	started_at     *time.Time
	completed_at   *time.Time
	synthesis      *string
	result_json    *string
	error_message  *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	run            *string
	clearedrun     bool
	outputs        map[string]struct{}
	removedoutputs map[string]struct{}
	clearedoutputs bool
	done           bool
	oldValue       func(context.Context) (*RunStep, error)
	predicates     []predicate.RunStep
}

var _ ent.Mutation = (*RunStepMutation)(nil)

// runstepOption allows management of the mutation configuration using functional options.
type runstepOption func(*RunStepMutation)

// newRunStepMutation creates new mutation for the RunStep entity.
func newRunStepMutation(c config, op Op, opts ...runstepOption) *RunStepMutation {
	m := &RunStepMutation{
		config:        c,
		op:            op,
		typ:           TypeRunStep,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRunStepID sets the ID field of the mutation.
func withRunStepID(id string) runstepOption {
	return func(m *RunStepMutation) {
		var (
			err   error
			once  sync.Once
			value *RunStep
		)
		m.oldValue = func(ctx context.Context) (*RunStep, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RunStep.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRunStep sets the old RunStep of the mutation.
func withRunStep(node *RunStep) runstepOption {
	return func(m *RunStepMutation) {
		m.oldValue = func(context.Context) (*RunStep, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RunStepMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RunStepMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RunStep entities.
func (m *RunStepMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RunStepMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RunStepMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RunStep.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *RunStepMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *RunStepMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the RunStep entity.
// If the RunStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunStepMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *RunStepMutation) ResetRunID() {
	m.run = nil
}

// SetStepIndex sets the "step_index" field.
func (m *RunStepMutation) SetStepIndex(i int) {
	m.step_index = &i
	m.addstep_index = nil
}

// StepIndex returns the value of the "step_index" field in the mutation.
func (m *RunStepMutation) StepIndex() (r int, exists bool) {
	v := m.step_index
	if v == nil {
		return
	}
	return *v, true
}

// OldStepIndex returns the old "step_index" field's value of the RunStep entity.
// If the RunStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunStepMutation) OldStepIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepIndex: %w", err)
	}
	return oldValue.StepIndex, nil
}

// AddStepIndex adds i to the "step_index" field.
func (m *RunStepMutation) AddStepIndex(i int) {
	if m.addstep_index != nil {
		*m.addstep_index += i
	} else {
		m.addstep_index = &i
	}
}

// AddedStepIndex returns the value that was added to the "step_index" field in this mutation.
func (m *RunStepMutation) AddedStepIndex() (r int, exists bool) {
	v := m.addstep_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetStepIndex resets all changes to the "step_index" field.
func (m *RunStepMutation) ResetStepIndex() {
	m.step_index = nil
	m.addstep_index = nil
}

// SetProtocolKey sets the "protocol_key" field.
func (m *RunStepMutation) SetProtocolKey(s string) {
	m.protocol_key = &s
}

// ProtocolKey returns the value of the "protocol_key" field in the mutation.
func (m *RunStepMutation) ProtocolKey() (r string, exists bool) {
	v := m.protocol_key
	if v == nil {
		return
	}
	return *v, true
}

// OldProtocolKey returns the old "protocol_key" field's value of the RunStep entity.
// If the RunStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunStepMutation) OldProtocolKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProtocolKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProtocolKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProtocolKey: %w", err)
	}
	return oldValue.ProtocolKey, nil
}

// ResetProtocolKey resets all changes to the "protocol_key" field.
func (m *RunStepMutation) ResetProtocolKey() {
	m.protocol_key = nil
}

// SetQuestion sets the "question" field.
func (m *RunStepMutation) SetQuestion(s string) {
	m.question = &s
}

// Question returns the value of the "question" field in the mutation.
func (m *RunStepMutation) Question() (r string, exists bool) {
	v := m.question
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestion returns the old "question" field's value of the RunStep entity.
// If the RunStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunStepMutation) OldQuestion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestion: %w", err)
	}
	return oldValue.Question, nil
}

// ResetQuestion resets all changes to the "question" field.
func (m *RunStepMutation) ResetQuestion() {
	m.question = nil
}

// SetStatus sets the "status" field.
func (m *RunStepMutation) SetStatus(r runstep.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *RunStepMutation) Status() (r runstep.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the RunStep entity.
// If the RunStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunStepMutation) OldStatus(ctx context.Context) (v runstep.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *RunStepMutation) ResetStatus() {
	m.status = nil
}

// SetStartedAt sets the "started_at" field.
func (m *RunStepMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *RunStepMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the RunStep entity.
// If the RunStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunStepMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *RunStepMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[runstep.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *RunStepMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[runstep.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *RunStepMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, runstep.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *RunStepMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *RunStepMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the RunStep entity.
// If the RunStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunStepMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *RunStepMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[runstep.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *RunStepMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[runstep.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *RunStepMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, runstep.FieldCompletedAt)
}

// SetSynthesis sets the "synthesis" field.
func (m *RunStepMutation) SetSynthesis(s string) {
	m.synthesis = &s
}

// Synthesis returns the value of the "synthesis" field in the mutation.
func (m *RunStepMutation) Synthesis() (r string, exists bool) {
	v := m.synthesis
	if v == nil {
		return
	}
	return *v, true
}

// OldSynthesis returns the old "synthesis" field's value of the RunStep entity.
// If the RunStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunStepMutation) OldSynthesis(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSynthesis is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSynthesis requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSynthesis: %w", err)
	}
	return oldValue.Synthesis, nil
}

// ClearSynthesis clears the value of the "synthesis" field.
func (m *RunStepMutation) ClearSynthesis() {
	m.synthesis = nil
	m.clearedFields[runstep.FieldSynthesis] = struct{}{}
}

// SynthesisCleared returns if the "synthesis" field was cleared in this mutation.
func (m *RunStepMutation) SynthesisCleared() bool {
	_, ok := m.clearedFields[runstep.FieldSynthesis]
	return ok
}

// ResetSynthesis resets all changes to the "synthesis" field.
func (m *RunStepMutation) ResetSynthesis() {
	m.synthesis = nil
	delete(m.clearedFields, runstep.FieldSynthesis)
}

// SetResultJSON sets the "result_json" field.
func (m *RunStepMutation) SetResultJSON(s string) {
	m.result_json = &s
}

// ResultJSON returns the value of the "result_json" field in the mutation.
func (m *RunStepMutation) ResultJSON() (r string, exists bool) {
	v := m.result_json
	if v == nil {
		return
	}
	return *v, true
}

// OldResultJSON returns the old "result_json" field's value of the RunStep entity.
// If the RunStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunStepMutation) OldResultJSON(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultJSON: %w", err)
	}
	return oldValue.ResultJSON, nil
}

// ClearResultJSON clears the value of the "result_json" field.
func (m *RunStepMutation) ClearResultJSON() {
	m.result_json = nil
	m.clearedFields[runstep.FieldResultJSON] = struct{}{}
}

// ResultJSONCleared returns if the "result_json" field was cleared in this mutation.
func (m *RunStepMutation) ResultJSONCleared() bool {
	_, ok := m.clearedFields[runstep.FieldResultJSON]
	return ok
}

// ResetResultJSON resets all changes to the "result_json" field.
func (m *RunStepMutation) ResetResultJSON() {
	m.result_json = nil
	delete(m.clearedFields, runstep.FieldResultJSON)
}

// SetErrorMessage sets the "error_message" field.
func (m *RunStepMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *RunStepMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the RunStep entity.
// If the RunStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunStepMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *RunStepMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[runstep.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *RunStepMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[runstep.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *RunStepMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, runstep.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *RunStepMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RunStepMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RunStep entity.
// If the RunStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunStepMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RunStepMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRun clears the "run" edge to the Run entity.
func (m *RunStepMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[runstep.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the Run entity was cleared.
func (m *RunStepMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *RunStepMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *RunStepMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// AddOutputIDs adds the "outputs" edge to the AgentOutput entity by ids.
func (m *RunStepMutation) AddOutputIDs(ids ...string) {
	if m.outputs == nil {
		m.outputs = make(map[string]struct{})
	}
	for i := range ids {
		m.outputs[ids[i]] = struct{}{}
	}
}

// ClearOutputs clears the "outputs" edge to the AgentOutput entity.
func (m *RunStepMutation) ClearOutputs() {
	m.clearedoutputs = true
}

// OutputsCleared reports if the "outputs" edge to the AgentOutput entity was cleared.
func (m *RunStepMutation) OutputsCleared() bool {
	return m.clearedoutputs
}

// RemoveOutputIDs removes the "outputs" edge to the AgentOutput entity by IDs.
func (m *RunStepMutation) RemoveOutputIDs(ids ...string) {
	if m.removedoutputs == nil {
		m.removedoutputs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.outputs, ids[i])
		m.removedoutputs[ids[i]] = struct{}{}
	}
}

// RemovedOutputs returns the removed IDs of the "outputs" edge to the AgentOutput entity.
func (m *RunStepMutation) RemovedOutputsIDs() (ids []string) {
	for id := range m.removedoutputs {
		ids = append(ids, id)
	}
	return
}

// OutputsIDs returns the "outputs" edge IDs in the mutation.
func (m *RunStepMutation) OutputsIDs() (ids []string) {
	for id := range m.outputs {
		ids = append(ids, id)
	}
	return
}

// ResetOutputs resets all changes to the "outputs" edge.
func (m *RunStepMutation) ResetOutputs() {
	m.outputs = nil
	m.clearedoutputs = false
	m.removedoutputs = nil
}

// Where appends a list predicates to the RunStepMutation builder.
func (m *RunStepMutation) Where(ps ...predicate.RunStep) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RunStepMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RunStepMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RunStep, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RunStepMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RunStepMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RunStep).
func (m *RunStepMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RunStepMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.run != nil {
		fields = append(fields, runstep.FieldRunID)
	}
	if m.step_index != nil {
		fields = append(fields, runstep.FieldStepIndex)
	}
	if m.protocol_key != nil {
		fields = append(fields, runstep.FieldProtocolKey)
	}
	if m.question != nil {
		fields = append(fields, runstep.FieldQuestion)
	}
	if m.status != nil {
		fields = append(fields, runstep.FieldStatus)
	}
	if m.started_at != nil {
		fields = append(fields, runstep.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, runstep.FieldCompletedAt)
	}
	if m.synthesis != nil {
		fields = append(fields, runstep.FieldSynthesis)
	}
	if m.result_json != nil {
		fields = append(fields, runstep.FieldResultJSON)
	}
	if m.error_message != nil {
		fields = append(fields, runstep.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, runstep.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RunStepMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case runstep.FieldRunID:
		return m.RunID()
	case runstep.FieldStepIndex:
		return m.StepIndex()
	case runstep.FieldProtocolKey:
		return m.ProtocolKey()
	case runstep.FieldQuestion:
		return m.Question()
	case runstep.FieldStatus:
		return m.Status()
	case runstep.FieldStartedAt:
		return m.StartedAt()
	case runstep.FieldCompletedAt:
		return m.CompletedAt()
	case runstep.FieldSynthesis:
		return m.Synthesis()
	case runstep.FieldResultJSON:
		return m.ResultJSON()
	case runstep.FieldErrorMessage:
		return m.ErrorMessage()
	case runstep.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RunStepMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case runstep.FieldRunID:
		return m.OldRunID(ctx)
	case runstep.FieldStepIndex:
		return m.OldStepIndex(ctx)
	case runstep.FieldProtocolKey:
		return m.OldProtocolKey(ctx)
	case runstep.FieldQuestion:
		return m.OldQuestion(ctx)
	case runstep.FieldStatus:
		return m.OldStatus(ctx)
	case runstep.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case runstep.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case runstep.FieldSynthesis:
		return m.OldSynthesis(ctx)
	case runstep.FieldResultJSON:
		return m.OldResultJSON(ctx)
	case runstep.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case runstep.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RunStep field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunStepMutation) SetField(name string, value ent.Value) error {
	switch name {
	case runstep.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case runstep.FieldStepIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepIndex(v)
		return nil
	case runstep.FieldProtocolKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProtocolKey(v)
		return nil
	case runstep.FieldQuestion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestion(v)
		return nil
	case runstep.FieldStatus:
		v, ok := value.(runstep.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case runstep.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case runstep.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case runstep.FieldSynthesis:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSynthesis(v)
		return nil
	case runstep.FieldResultJSON:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultJSON(v)
		return nil
	case runstep.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case runstep.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RunStep field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RunStepMutation) AddedFields() []string {
	var fields []string
	if m.addstep_index != nil {
		fields = append(fields, runstep.FieldStepIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RunStepMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case runstep.FieldStepIndex:
		return m.AddedStepIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunStepMutation) AddField(name string, value ent.Value) error {
	switch name {
	case runstep.FieldStepIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStepIndex(v)
		return nil
	}
	return fmt.Errorf("unknown RunStep numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RunStepMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(runstep.FieldStartedAt) {
		fields = append(fields, runstep.FieldStartedAt)
	}
	if m.FieldCleared(runstep.FieldCompletedAt) {
		fields = append(fields, runstep.FieldCompletedAt)
	}
	if m.FieldCleared(runstep.FieldSynthesis) {
		fields = append(fields, runstep.FieldSynthesis)
	}
	if m.FieldCleared(runstep.FieldResultJSON) {
		fields = append(fields, runstep.FieldResultJSON)
	}
	if m.FieldCleared(runstep.FieldErrorMessage) {
		fields = append(fields, runstep.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RunStepMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RunStepMutation) ClearField(name string) error {
	switch name {
	case runstep.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case runstep.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case runstep.FieldSynthesis:
		m.ClearSynthesis()
		return nil
	case runstep.FieldResultJSON:
		m.ClearResultJSON()
		return nil
	case runstep.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown RunStep nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RunStepMutation) ResetField(name string) error {
	switch name {
	case runstep.FieldRunID:
		m.ResetRunID()
		return nil
	case runstep.FieldStepIndex:
		m.ResetStepIndex()
		return nil
	case runstep.FieldProtocolKey:
		m.ResetProtocolKey()
		return nil
	case runstep.FieldQuestion:
		m.ResetQuestion()
		return nil
	case runstep.FieldStatus:
		m.ResetStatus()
		return nil
	case runstep.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case runstep.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case runstep.FieldSynthesis:
		m.ResetSynthesis()
		return nil
	case runstep.FieldResultJSON:
		m.ResetResultJSON()
		return nil
	case runstep.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case runstep.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown RunStep field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RunStepMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.run != nil {
		edges = append(edges, runstep.EdgeRun)
	}
	if m.outputs != nil {
		edges = append(edges, runstep.EdgeOutputs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RunStepMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case runstep.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	case runstep.EdgeOutputs:
		ids := make([]ent.Value, 0, len(m.outputs))
		for id := range m.outputs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RunStepMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedoutputs != nil {
		edges = append(edges, runstep.EdgeOutputs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RunStepMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case runstep.EdgeOutputs:
		ids := make([]ent.Value, 0, len(m.removedoutputs))
		for id := range m.removedoutputs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RunStepMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedrun {
		edges = append(edges, runstep.EdgeRun)
	}
	if m.clearedoutputs {
		edges = append(edges, runstep.EdgeOutputs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RunStepMutation) EdgeCleared(name string) bool {
	switch name {
	case runstep.EdgeRun:
		return m.clearedrun
	case runstep.EdgeOutputs:
		return m.clearedoutputs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RunStepMutation) ClearEdge(name string) error {
	switch name {
	case runstep.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown RunStep unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RunStepMutation) ResetEdge(name string) error {
	switch name {
	case runstep.EdgeRun:
		m.ResetRun()
		return nil
	case runstep.EdgeOutputs:
		m.ResetOutputs()
		return nil
	}
	return fmt.Errorf("unknown RunStep edge %s", name)
}

// TeamMutation represents an operation that mutates the Team nodes in the graph.
type TeamMutation struct {
	config
	op               Op
	typ              string
	id               *string
	name             *string
	description      *string
	agent_keys       *[]string
	appendagent_keys []string
	default_protocol *string
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*Team, error)
	predicates       []predicate.Team
}

var _ ent.Mutation = (*TeamMutation)(nil)

// teamOption allows management of the mutation configuration using functional options.
type teamOption func(*TeamMutation)

// newTeamMutation creates new mutation for the Team entity.
func newTeamMutation(c config, op Op, opts ...teamOption) *TeamMutation {
	m := &TeamMutation{
		config:        c,
		op:            op,
		typ:           TypeTeam,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTeamID sets the ID field of the mutation.
func withTeamID(id string) teamOption {
	return func(m *TeamMutation) {
		var (
			err   error
			once  sync.Once
			value *Team
		)
		m.oldValue = func(ctx context.Context) (*Team, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Team.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTeam sets the old Team of the mutation.
func withTeam(node *Team) teamOption {
	return func(m *TeamMutation) {
		m.oldValue = func(context.Context) (*Team, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TeamMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TeamMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Team entities.
func (m *TeamMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TeamMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TeamMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Team.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *TeamMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TeamMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Team entity.
// If the Team object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TeamMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *TeamMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TeamMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Team entity.
// If the Team object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *TeamMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[team.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *TeamMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[team.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *TeamMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, team.FieldDescription)
}

// SetAgentKeys sets the "agent_keys" field.
func (m *TeamMutation) SetAgentKeys(s []string) {
	m.agent_keys = &s
	m.appendagent_keys = nil
}

// AgentKeys returns the value of the "agent_keys" field in the mutation.
func (m *TeamMutation) AgentKeys() (r []string, exists bool) {
	v := m.agent_keys
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentKeys returns the old "agent_keys" field's value of the Team entity.
// If the Team object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamMutation) OldAgentKeys(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentKeys is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentKeys requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentKeys: %w", err)
	}
	return oldValue.AgentKeys, nil
}

// AppendAgentKeys adds s to the "agent_keys" field.
func (m *TeamMutation) AppendAgentKeys(s []string) {
	m.appendagent_keys = append(m.appendagent_keys, s...)
}

// AppendedAgentKeys returns the list of values that were appended to the "agent_keys" field in this mutation.
func (m *TeamMutation) AppendedAgentKeys() ([]string, bool) {
	if len(m.appendagent_keys) == 0 {
		return nil, false
	}
	return m.appendagent_keys, true
}

// ResetAgentKeys resets all changes to the "agent_keys" field.
func (m *TeamMutation) ResetAgentKeys() {
	m.agent_keys = nil
	m.appendagent_keys = nil
}

// SetDefaultProtocol sets the "default_protocol" field.
func (m *TeamMutation) SetDefaultProtocol(s string) {
	m.default_protocol = &s
}

// DefaultProtocol returns the value of the "default_protocol" field in the mutation.
func (m *TeamMutation) DefaultProtocol() (r string, exists bool) {
	v := m.default_protocol
	if v == nil {
		return
	}
	return *v, true
}

// OldDefaultProtocol returns the old "default_protocol" field's value of the Team entity.
// If the Team object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamMutation) OldDefaultProtocol(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefaultProtocol is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefaultProtocol requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefaultProtocol: %w", err)
	}
	return oldValue.DefaultProtocol, nil
}

// ClearDefaultProtocol clears the value of the "default_protocol" field.
func (m *TeamMutation) ClearDefaultProtocol() {
	m.default_protocol = nil
	m.clearedFields[team.FieldDefaultProtocol] = struct{}{}
}

// DefaultProtocolCleared returns if the "default_protocol" field was cleared in this mutation.
func (m *TeamMutation) DefaultProtocolCleared() bool {
	_, ok := m.clearedFields[team.FieldDefaultProtocol]
	return ok
}

// ResetDefaultProtocol resets all changes to the "default_protocol" field.
func (m *TeamMutation) ResetDefaultProtocol() {
	m.default_protocol = nil
	delete(m.clearedFields, team.FieldDefaultProtocol)
}

// SetCreatedAt sets the "created_at" field.
func (m *TeamMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TeamMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Team entity.
// If the Team object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TeamMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TeamMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TeamMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Team entity.
// If the Team object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TeamMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the TeamMutation builder.
func (m *TeamMutation) Where(ps ...predicate.Team) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TeamMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TeamMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Team, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TeamMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TeamMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Team).
func (m *TeamMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TeamMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.name != nil {
		fields = append(fields, team.FieldName)
	}
	if m.description != nil {
		fields = append(fields, team.FieldDescription)
	}
	if m.agent_keys != nil {
		fields = append(fields, team.FieldAgentKeys)
	}
	if m.default_protocol != nil {
		fields = append(fields, team.FieldDefaultProtocol)
	}
	if m.created_at != nil {
		fields = append(fields, team.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, team.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TeamMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case team.FieldName:
		return m.Name()
	case team.FieldDescription:
		return m.Description()
	case team.FieldAgentKeys:
		return m.AgentKeys()
	case team.FieldDefaultProtocol:
		return m.DefaultProtocol()
	case team.FieldCreatedAt:
		return m.CreatedAt()
	case team.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TeamMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case team.FieldName:
		return m.OldName(ctx)
	case team.FieldDescription:
		return m.OldDescription(ctx)
	case team.FieldAgentKeys:
		return m.OldAgentKeys(ctx)
	case team.FieldDefaultProtocol:
		return m.OldDefaultProtocol(ctx)
	case team.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case team.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Team field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TeamMutation) SetField(name string, value ent.Value) error {
	switch name {
	case team.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case team.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case team.FieldAgentKeys:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentKeys(v)
		return nil
	case team.FieldDefaultProtocol:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefaultProtocol(v)
		return nil
	case team.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case team.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Team field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TeamMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TeamMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TeamMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Team numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TeamMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(team.FieldDescription) {
		fields = append(fields, team.FieldDescription)
	}
	if m.FieldCleared(team.FieldDefaultProtocol) {
		fields = append(fields, team.FieldDefaultProtocol)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TeamMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TeamMutation) ClearField(name string) error {
	switch name {
	case team.FieldDescription:
		m.ClearDescription()
		return nil
	case team.FieldDefaultProtocol:
		m.ClearDefaultProtocol()
		return nil
	}
	return fmt.Errorf("unknown Team nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TeamMutation) ResetField(name string) error {
	switch name {
	case team.FieldName:
		m.ResetName()
		return nil
	case team.FieldDescription:
		m.ResetDescription()
		return nil
	case team.FieldAgentKeys:
		m.ResetAgentKeys()
		return nil
	case team.FieldDefaultProtocol:
		m.ResetDefaultProtocol()
		return nil
	case team.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case team.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Team field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TeamMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TeamMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TeamMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TeamMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TeamMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TeamMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TeamMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Team unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TeamMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Team edge %s", name)
}
