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

// RunStepCreate is the builder for creating a RunStep entity.
type RunStepCreate struct {
	config
	mutation *RunStepMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *RunStepCreate) SetRunID(v string) *RunStepCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetStepIndex sets the "step_index" field.
func (_c *RunStepCreate) SetStepIndex(v int) *RunStepCreate {
	_c.mutation.SetStepIndex(v)
	return _c
}

// SetProtocolKey sets the "protocol_key" field.
func (_c *RunStepCreate) SetProtocolKey(v string) *RunStepCreate {
	_c.mutation.SetProtocolKey(v)
	return _c
}

// SetQuestion sets the "question" field.
func (_c *RunStepCreate) SetQuestion(v string) *RunStepCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *RunStepCreate) SetStatus(v runstep.Status) *RunStepCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RunStepCreate) SetNillableStatus(v *runstep.Status) *RunStepCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *RunStepCreate) SetStartedAt(v time.Time) *RunStepCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *RunStepCreate) SetNillableStartedAt(v *time.Time) *RunStepCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *RunStepCreate) SetCompletedAt(v time.Time) *RunStepCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *RunStepCreate) SetNillableCompletedAt(v *time.Time) *RunStepCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetSynthesis sets the "synthesis" field.
func (_c *RunStepCreate) SetSynthesis(v string) *RunStepCreate {
	_c.mutation.SetSynthesis(v)
	return _c
}

// SetNillableSynthesis sets the "synthesis" field if the given value is not nil.
func (_c *RunStepCreate) SetNillableSynthesis(v *string) *RunStepCreate {
	if v != nil {
		_c.SetSynthesis(*v)
	}
	return _c
}

// SetResultJSON sets the "result_json" field.
func (_c *RunStepCreate) SetResultJSON(v string) *RunStepCreate {
	_c.mutation.SetResultJSON(v)
	return _c
}

// SetNillableResultJSON sets the "result_json" field if the given value is not nil.
func (_c *RunStepCreate) SetNillableResultJSON(v *string) *RunStepCreate {
	if v != nil {
		_c.SetResultJSON(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *RunStepCreate) SetErrorMessage(v string) *RunStepCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *RunStepCreate) SetNillableErrorMessage(v *string) *RunStepCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RunStepCreate) SetCreatedAt(v time.Time) *RunStepCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RunStepCreate) SetNillableCreatedAt(v *time.Time) *RunStepCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RunStepCreate) SetID(v string) *RunStepCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRun sets the "run" edge to the Run entity.
func (_c *RunStepCreate) SetRun(v *Run) *RunStepCreate {
	return _c.SetRunID(v.ID)
}

// AddOutputIDs adds the "outputs" edge to the AgentOutput entity by IDs.
func (_c *RunStepCreate) AddOutputIDs(ids ...string) *RunStepCreate {
	_c.mutation.AddOutputIDs(ids...)
	return _c
}

// AddOutputs adds the "outputs" edges to the AgentOutput entity.
func (_c *RunStepCreate) AddOutputs(v ...*AgentOutput) *RunStepCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddOutputIDs(ids...)
}

// Mutation returns the RunStepMutation object of the builder.
func (_c *RunStepCreate) Mutation() *RunStepMutation {
	return _c.mutation
}

// Save creates the RunStep in the database.
func (_c *RunStepCreate) Save(ctx context.Context) (*RunStep, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RunStepCreate) SaveX(ctx context.Context) *RunStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunStepCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunStepCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RunStepCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := runstep.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := runstep.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RunStepCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "RunStep.run_id"`)}
	}
	if _, ok := _c.mutation.StepIndex(); !ok {
		return &ValidationError{Name: "step_index", err: errors.New(`ent: missing required field "RunStep.step_index"`)}
	}
	if _, ok := _c.mutation.ProtocolKey(); !ok {
		return &ValidationError{Name: "protocol_key", err: errors.New(`ent: missing required field "RunStep.protocol_key"`)}
	}
	if _, ok := _c.mutation.Question(); !ok {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required field "RunStep.question"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "RunStep.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := runstep.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RunStep.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RunStep.created_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "RunStep.run"`)}
	}
	return nil
}

func (_c *RunStepCreate) sqlSave(ctx context.Context) (*RunStep, error) {
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
			return nil, fmt.Errorf("unexpected RunStep.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RunStepCreate) createSpec() (*RunStep, *sqlgraph.CreateSpec) {
	var (
		_node = &RunStep{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(runstep.Table, sqlgraph.NewFieldSpec(runstep.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StepIndex(); ok {
		_spec.SetField(runstep.FieldStepIndex, field.TypeInt, value)
		_node.StepIndex = value
	}
	if value, ok := _c.mutation.ProtocolKey(); ok {
		_spec.SetField(runstep.FieldProtocolKey, field.TypeString, value)
		_node.ProtocolKey = value
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(runstep.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(runstep.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(runstep.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(runstep.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.Synthesis(); ok {
		_spec.SetField(runstep.FieldSynthesis, field.TypeString, value)
		_node.Synthesis = &value
	}
	if value, ok := _c.mutation.ResultJSON(); ok {
		_spec.SetField(runstep.FieldResultJSON, field.TypeString, value)
		_node.ResultJSON = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(runstep.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(runstep.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   runstep.RunTable,
			Columns: []string{runstep.RunColumn},
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
	if nodes := _c.mutation.OutputsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   runstep.OutputsTable,
			Columns: []string{runstep.OutputsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentoutput.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RunStepCreateBulk is the builder for creating many RunStep entities in bulk.
type RunStepCreateBulk struct {
	config
	err      error
	builders []*RunStepCreate
}

// Save creates the RunStep entities in the database.
func (_c *RunStepCreateBulk) Save(ctx context.Context) ([]*RunStep, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RunStep, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RunStepMutation)
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
func (_c *RunStepCreateBulk) SaveX(ctx context.Context) []*RunStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunStepCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunStepCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
