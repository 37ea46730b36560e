// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/consilium-ai/consilium/ent/agent"
)

// AgentCreate is the builder for creating a Agent entity.
type AgentCreate struct {
	config
	mutation *AgentMutation
	hooks    []Hook
}

// SetDisplayName sets the "display_name" field.
func (_c *AgentCreate) SetDisplayName(v string) *AgentCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *AgentCreate) SetCategory(v string) *AgentCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *AgentCreate) SetNillableCategory(v *string) *AgentCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetSystemPrompt sets the "system_prompt" field.
func (_c *AgentCreate) SetSystemPrompt(v string) *AgentCreate {
	_c.mutation.SetSystemPrompt(v)
	return _c
}

// SetModelID sets the "model_id" field.
func (_c *AgentCreate) SetModelID(v string) *AgentCreate {
	_c.mutation.SetModelID(v)
	return _c
}

// SetNillableModelID sets the "model_id" field if the given value is not nil.
func (_c *AgentCreate) SetNillableModelID(v *string) *AgentCreate {
	if v != nil {
		_c.SetModelID(*v)
	}
	return _c
}

// SetMaxTokens sets the "max_tokens" field.
func (_c *AgentCreate) SetMaxTokens(v int) *AgentCreate {
	_c.mutation.SetMaxTokens(v)
	return _c
}

// SetNillableMaxTokens sets the "max_tokens" field if the given value is not nil.
func (_c *AgentCreate) SetNillableMaxTokens(v *int) *AgentCreate {
	if v != nil {
		_c.SetMaxTokens(*v)
	}
	return _c
}

// SetTemperature sets the "temperature" field.
func (_c *AgentCreate) SetTemperature(v float64) *AgentCreate {
	_c.mutation.SetTemperature(v)
	return _c
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_c *AgentCreate) SetNillableTemperature(v *float64) *AgentCreate {
	if v != nil {
		_c.SetTemperature(*v)
	}
	return _c
}

// SetFrameworks sets the "frameworks" field.
func (_c *AgentCreate) SetFrameworks(v []string) *AgentCreate {
	_c.mutation.SetFrameworks(v)
	return _c
}

// SetDeliverableTemplate sets the "deliverable_template" field.
func (_c *AgentCreate) SetDeliverableTemplate(v string) *AgentCreate {
	_c.mutation.SetDeliverableTemplate(v)
	return _c
}

// SetNillableDeliverableTemplate sets the "deliverable_template" field if the given value is not nil.
func (_c *AgentCreate) SetNillableDeliverableTemplate(v *string) *AgentCreate {
	if v != nil {
		_c.SetDeliverableTemplate(*v)
	}
	return _c
}

// SetCommunicationStyle sets the "communication_style" field.
func (_c *AgentCreate) SetCommunicationStyle(v string) *AgentCreate {
	_c.mutation.SetCommunicationStyle(v)
	return _c
}

// SetNillableCommunicationStyle sets the "communication_style" field if the given value is not nil.
func (_c *AgentCreate) SetNillableCommunicationStyle(v *string) *AgentCreate {
	if v != nil {
		_c.SetCommunicationStyle(*v)
	}
	return _c
}

// SetTools sets the "tools" field.
func (_c *AgentCreate) SetTools(v []string) *AgentCreate {
	_c.mutation.SetTools(v)
	return _c
}

// SetContextScope sets the "context_scope" field.
func (_c *AgentCreate) SetContextScope(v []string) *AgentCreate {
	_c.mutation.SetContextScope(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentCreate) SetCreatedAt(v time.Time) *AgentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentCreate) SetNillableCreatedAt(v *time.Time) *AgentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AgentCreate) SetUpdatedAt(v time.Time) *AgentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AgentCreate) SetNillableUpdatedAt(v *time.Time) *AgentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentCreate) SetID(v string) *AgentCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AgentMutation object of the builder.
func (_c *AgentCreate) Mutation() *AgentMutation {
	return _c.mutation
}

// Save creates the Agent in the database.
func (_c *AgentCreate) Save(ctx context.Context) (*Agent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentCreate) SaveX(ctx context.Context) *Agent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := agent.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentCreate) check() error {
	if _, ok := _c.mutation.DisplayName(); !ok {
		return &ValidationError{Name: "display_name", err: errors.New(`ent: missing required field "Agent.display_name"`)}
	}
	if _, ok := _c.mutation.SystemPrompt(); !ok {
		return &ValidationError{Name: "system_prompt", err: errors.New(`ent: missing required field "Agent.system_prompt"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Agent.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Agent.updated_at"`)}
	}
	return nil
}

func (_c *AgentCreate) sqlSave(ctx context.Context) (*Agent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Agent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentCreate) createSpec() (*Agent, *sqlgraph.CreateSpec) {
	var (
		_node = &Agent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agent.Table, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(agent.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(agent.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.SystemPrompt(); ok {
		_spec.SetField(agent.FieldSystemPrompt, field.TypeString, value)
		_node.SystemPrompt = value
	}
	if value, ok := _c.mutation.ModelID(); ok {
		_spec.SetField(agent.FieldModelID, field.TypeString, value)
		_node.ModelID = value
	}
	if value, ok := _c.mutation.MaxTokens(); ok {
		_spec.SetField(agent.FieldMaxTokens, field.TypeInt, value)
		_node.MaxTokens = value
	}
	if value, ok := _c.mutation.Temperature(); ok {
		_spec.SetField(agent.FieldTemperature, field.TypeFloat64, value)
		_node.Temperature = &value
	}
	if value, ok := _c.mutation.Frameworks(); ok {
		_spec.SetField(agent.FieldFrameworks, field.TypeJSON, value)
		_node.Frameworks = value
	}
	if value, ok := _c.mutation.DeliverableTemplate(); ok {
		_spec.SetField(agent.FieldDeliverableTemplate, field.TypeString, value)
		_node.DeliverableTemplate = value
	}
	if value, ok := _c.mutation.CommunicationStyle(); ok {
		_spec.SetField(agent.FieldCommunicationStyle, field.TypeString, value)
		_node.CommunicationStyle = value
	}
	if value, ok := _c.mutation.Tools(); ok {
		_spec.SetField(agent.FieldTools, field.TypeJSON, value)
		_node.Tools = value
	}
	if value, ok := _c.mutation.ContextScope(); ok {
		_spec.SetField(agent.FieldContextScope, field.TypeJSON, value)
		_node.ContextScope = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(agent.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// AgentCreateBulk is the builder for creating many Agent entities in bulk.
type AgentCreateBulk struct {
	config
	err      error
	builders []*AgentCreate
}

// Save creates the Agent entities in the database.
func (_c *AgentCreateBulk) Save(ctx context.Context) ([]*Agent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Agent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AgentCreateBulk) SaveX(ctx context.Context) []*Agent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
