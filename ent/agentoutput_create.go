// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/consilium-ai/consilium/ent/agentoutput"
	"github.com/consilium-ai/consilium/ent/run"
	"github.com/consilium-ai/consilium/ent/runstep"
)

// AgentOutputCreate is the builder for creating a AgentOutput entity.
type AgentOutputCreate struct {
	config
	mutation *AgentOutputMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *AgentOutputCreate) SetRunID(v string) *AgentOutputCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetRunStepID sets the "run_step_id" field.
func (_c *AgentOutputCreate) SetRunStepID(v string) *AgentOutputCreate {
	_c.mutation.SetRunStepID(v)
	return _c
}

// SetNillableRunStepID sets the "run_step_id" field if the given value is not nil.
func (_c *AgentOutputCreate) SetNillableRunStepID(v *string) *AgentOutputCreate {
	if v != nil {
		_c.SetRunStepID(*v)
	}
	return _c
}

// SetAgentName sets the "agent_name" field.
func (_c *AgentOutputCreate) SetAgentName(v string) *AgentOutputCreate {
	_c.mutation.SetAgentName(v)
	return _c
}

// SetModelID sets the "model_id" field.
func (_c *AgentOutputCreate) SetModelID(v string) *AgentOutputCreate {
	_c.mutation.SetModelID(v)
	return _c
}

// SetNillableModelID sets the "model_id" field if the given value is not nil.
func (_c *AgentOutputCreate) SetNillableModelID(v *string) *AgentOutputCreate {
	if v != nil {
		_c.SetModelID(*v)
	}
	return _c
}

// SetRound sets the "round" field.
func (_c *AgentOutputCreate) SetRound(v int) *AgentOutputCreate {
	_c.mutation.SetRound(v)
	return _c
}

// SetNillableRound sets the "round" field if the given value is not nil.
func (_c *AgentOutputCreate) SetNillableRound(v *int) *AgentOutputCreate {
	if v != nil {
		_c.SetRound(*v)
	}
	return _c
}

// SetStage sets the "stage" field.
func (_c *AgentOutputCreate) SetStage(v string) *AgentOutputCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_c *AgentOutputCreate) SetNillableStage(v *string) *AgentOutputCreate {
	if v != nil {
		_c.SetStage(*v)
	}
	return _c
}

// SetOutput sets the "output" field.
func (_c *AgentOutputCreate) SetOutput(v string) *AgentOutputCreate {
	_c.mutation.SetOutput(v)
	return _c
}

// SetToolCalls sets the "tool_calls" field.
func (_c *AgentOutputCreate) SetToolCalls(v []string) *AgentOutputCreate {
	_c.mutation.SetToolCalls(v)
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *AgentOutputCreate) SetInputTokens(v int) *AgentOutputCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_c *AgentOutputCreate) SetNillableInputTokens(v *int) *AgentOutputCreate {
	if v != nil {
		_c.SetInputTokens(*v)
	}
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *AgentOutputCreate) SetOutputTokens(v int) *AgentOutputCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_c *AgentOutputCreate) SetNillableOutputTokens(v *int) *AgentOutputCreate {
	if v != nil {
		_c.SetOutputTokens(*v)
	}
	return _c
}

// SetCostUsd sets the "cost_usd" field.
func (_c *AgentOutputCreate) SetCostUsd(v float64) *AgentOutputCreate {
	_c.mutation.SetCostUsd(v)
	return _c
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_c *AgentOutputCreate) SetNillableCostUsd(v *float64) *AgentOutputCreate {
	if v != nil {
		_c.SetCostUsd(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentOutputCreate) SetCreatedAt(v time.Time) *AgentOutputCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentOutputCreate) SetNillableCreatedAt(v *time.Time) *AgentOutputCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentOutputCreate) SetID(v string) *AgentOutputCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRun sets the "run" edge to the Run entity.
func (_c *AgentOutputCreate) SetRun(v *Run) *AgentOutputCreate {
	return _c.SetRunID(v.ID)
}

// SetStepID sets the "step" edge to the RunStep entity by ID.
func (_c *AgentOutputCreate) SetStepID(id string) *AgentOutputCreate {
	_c.mutation.SetStepID(id)
	return _c
}

// SetNillableStepID sets the "step" edge to the RunStep entity by ID if the given value is not nil.
func (_c *AgentOutputCreate) SetNillableStepID(id *string) *AgentOutputCreate {
	if id != nil {
		_c = _c.SetStepID(*id)
	}
	return _c
}

// SetStep sets the "step" edge to the RunStep entity.
func (_c *AgentOutputCreate) SetStep(v *RunStep) *AgentOutputCreate {
	return _c.SetStepID(v.ID)
}

// Mutation returns the AgentOutputMutation object of the builder.
func (_c *AgentOutputCreate) Mutation() *AgentOutputMutation {
	return _c.mutation
}

// Save creates the AgentOutput in the database.
func (_c *AgentOutputCreate) Save(ctx context.Context) (*AgentOutput, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentOutputCreate) SaveX(ctx context.Context) *AgentOutput {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentOutputCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentOutputCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentOutputCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentoutput.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentOutputCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "AgentOutput.run_id"`)}
	}
	if _, ok := _c.mutation.AgentName(); !ok {
		return &ValidationError{Name: "agent_name", err: errors.New(`ent: missing required field "AgentOutput.agent_name"`)}
	}
	if _, ok := _c.mutation.Output(); !ok {
		return &ValidationError{Name: "output", err: errors.New(`ent: missing required field "AgentOutput.output"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentOutput.created_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "AgentOutput.run"`)}
	}
	return nil
}

func (_c *AgentOutputCreate) sqlSave(ctx context.Context) (*AgentOutput, error) {
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
			return nil, fmt.Errorf("unexpected AgentOutput.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentOutputCreate) createSpec() (*AgentOutput, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentOutput{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentoutput.Table, sqlgraph.NewFieldSpec(agentoutput.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentName(); ok {
		_spec.SetField(agentoutput.FieldAgentName, field.TypeString, value)
		_node.AgentName = value
	}
	if value, ok := _c.mutation.ModelID(); ok {
		_spec.SetField(agentoutput.FieldModelID, field.TypeString, value)
		_node.ModelID = value
	}
	if value, ok := _c.mutation.Round(); ok {
		_spec.SetField(agentoutput.FieldRound, field.TypeInt, value)
		_node.Round = value
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(agentoutput.FieldStage, field.TypeString, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.Output(); ok {
		_spec.SetField(agentoutput.FieldOutput, field.TypeString, value)
		_node.Output = value
	}
	if value, ok := _c.mutation.ToolCalls(); ok {
		_spec.SetField(agentoutput.FieldToolCalls, field.TypeJSON, value)
		_node.ToolCalls = value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(agentoutput.FieldInputTokens, field.TypeInt, value)
		_node.InputTokens = value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(agentoutput.FieldOutputTokens, field.TypeInt, value)
		_node.OutputTokens = value
	}
	if value, ok := _c.mutation.CostUsd(); ok {
		_spec.SetField(agentoutput.FieldCostUsd, field.TypeFloat64, value)
		_node.CostUsd = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentoutput.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentoutput.RunTable,
			Columns: []string{agentoutput.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(run.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RunID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StepIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentoutput.StepTable,
			Columns: []string{agentoutput.StepColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runstep.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RunStepID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AgentOutputCreateBulk is the builder for creating many AgentOutput entities in bulk.
type AgentOutputCreateBulk struct {
	config
	err      error
	builders []*AgentOutputCreate
}

// Save creates the AgentOutput entities in the database.
func (_c *AgentOutputCreateBulk) Save(ctx context.Context) ([]*AgentOutput, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentOutput, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentOutputMutation)
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
func (_c *AgentOutputCreateBulk) SaveX(ctx context.Context) []*AgentOutput {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentOutputCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentOutputCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
