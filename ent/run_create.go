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

// RunCreate is the builder for creating a Run entity.
type RunCreate struct {
	config
	mutation *RunMutation
	hooks    []Hook
}

// SetKind sets the "kind" field.
func (_c *RunCreate) SetKind(v run.Kind) *RunCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetQuestion sets the "question" field.
func (_c *RunCreate) SetQuestion(v string) *RunCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetProtocolKey sets the "protocol_key" field.
func (_c *RunCreate) SetProtocolKey(v string) *RunCreate {
	_c.mutation.SetProtocolKey(v)
	return _c
}

// SetNillableProtocolKey sets the "protocol_key" field if the given value is not nil.
func (_c *RunCreate) SetNillableProtocolKey(v *string) *RunCreate {
	if v != nil {
		_c.SetProtocolKey(*v)
	}
	return _c
}

// SetPipelineID sets the "pipeline_id" field.
func (_c *RunCreate) SetPipelineID(v string) *RunCreate {
	_c.mutation.SetPipelineID(v)
	return _c
}

// SetNillablePipelineID sets the "pipeline_id" field if the given value is not nil.
func (_c *RunCreate) SetNillablePipelineID(v *string) *RunCreate {
	if v != nil {
		_c.SetPipelineID(*v)
	}
	return _c
}

// SetTeamID sets the "team_id" field.
func (_c *RunCreate) SetTeamID(v string) *RunCreate {
	_c.mutation.SetTeamID(v)
	return _c
}

// SetNillableTeamID sets the "team_id" field if the given value is not nil.
func (_c *RunCreate) SetNillableTeamID(v *string) *RunCreate {
	if v != nil {
		_c.SetTeamID(*v)
	}
	return _c
}

// SetAgentKeys sets the "agent_keys" field.
func (_c *RunCreate) SetAgentKeys(v []string) *RunCreate {
	_c.mutation.SetAgentKeys(v)
	return _c
}

// SetRounds sets the "rounds" field.
func (_c *RunCreate) SetRounds(v int) *RunCreate {
	_c.mutation.SetRounds(v)
	return _c
}

// SetNillableRounds sets the "rounds" field if the given value is not nil.
func (_c *RunCreate) SetNillableRounds(v *int) *RunCreate {
	if v != nil {
		_c.SetRounds(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *RunCreate) SetStatus(v run.Status) *RunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RunCreate) SetNillableStatus(v *run.Status) *RunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RunCreate) SetCreatedAt(v time.Time) *RunCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableCreatedAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *RunCreate) SetStartedAt(v time.Time) *RunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableStartedAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *RunCreate) SetCompletedAt(v time.Time) *RunCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableCompletedAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *RunCreate) SetDurationMs(v int) *RunCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *RunCreate) SetNillableDurationMs(v *int) *RunCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *RunCreate) SetErrorMessage(v string) *RunCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *RunCreate) SetNillableErrorMessage(v *string) *RunCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetSynthesis sets the "synthesis" field.
func (_c *RunCreate) SetSynthesis(v string) *RunCreate {
	_c.mutation.SetSynthesis(v)
	return _c
}

// SetNillableSynthesis sets the "synthesis" field if the given value is not nil.
func (_c *RunCreate) SetNillableSynthesis(v *string) *RunCreate {
	if v != nil {
		_c.SetSynthesis(*v)
	}
	return _c
}

// SetResultJSON sets the "result_json" field.
func (_c *RunCreate) SetResultJSON(v string) *RunCreate {
	_c.mutation.SetResultJSON(v)
	return _c
}

// SetNillableResultJSON sets the "result_json" field if the given value is not nil.
func (_c *RunCreate) SetNillableResultJSON(v *string) *RunCreate {
	if v != nil {
		_c.SetResultJSON(*v)
	}
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *RunCreate) SetInputTokens(v int) *RunCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_c *RunCreate) SetNillableInputTokens(v *int) *RunCreate {
	if v != nil {
		_c.SetInputTokens(*v)
	}
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *RunCreate) SetOutputTokens(v int) *RunCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_c *RunCreate) SetNillableOutputTokens(v *int) *RunCreate {
	if v != nil {
		_c.SetOutputTokens(*v)
	}
	return _c
}

// SetCostUsd sets the "cost_usd" field.
func (_c *RunCreate) SetCostUsd(v float64) *RunCreate {
	_c.mutation.SetCostUsd(v)
	return _c
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_c *RunCreate) SetNillableCostUsd(v *float64) *RunCreate {
	if v != nil {
		_c.SetCostUsd(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RunCreate) SetID(v string) *RunCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddStepIDs adds the "steps" edge to the RunStep entity by IDs.
func (_c *RunCreate) AddStepIDs(ids ...string) *RunCreate {
	_c.mutation.AddStepIDs(ids...)
	return _c
}

// AddSteps adds the "steps" edges to the RunStep entity.
func (_c *RunCreate) AddSteps(v ...*RunStep) *RunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStepIDs(ids...)
}

// AddOutputIDs adds the "outputs" edge to the AgentOutput entity by IDs.
func (_c *RunCreate) AddOutputIDs(ids ...string) *RunCreate {
	_c.mutation.AddOutputIDs(ids...)
	return _c
}

// AddOutputs adds the "outputs" edges to the AgentOutput entity.
func (_c *RunCreate) AddOutputs(v ...*AgentOutput) *RunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddOutputIDs(ids...)
}

// Mutation returns the RunMutation object of the builder.
func (_c *RunCreate) Mutation() *RunMutation {
	return _c.mutation
}

// Save creates the Run in the database.
func (_c *RunCreate) Save(ctx context.Context) (*Run, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RunCreate) SaveX(ctx context.Context) *Run {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RunCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := run.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := run.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RunCreate) check() error {
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "Run.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := run.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Run.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Question(); !ok {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required field "Run.question"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Run.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := run.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Run.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Run.created_at"`)}
	}
	return nil
}

func (_c *RunCreate) sqlSave(ctx context.Context) (*Run, error) {
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
			return nil, fmt.Errorf("unexpected Run.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RunCreate) createSpec() (*Run, *sqlgraph.CreateSpec) {
	var (
		_node = &Run{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(run.Table, sqlgraph.NewFieldSpec(run.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(run.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(run.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.ProtocolKey(); ok {
		_spec.SetField(run.FieldProtocolKey, field.TypeString, value)
		_node.ProtocolKey = value
	}
	if value, ok := _c.mutation.PipelineID(); ok {
		_spec.SetField(run.FieldPipelineID, field.TypeString, value)
		_node.PipelineID = &value
	}
	if value, ok := _c.mutation.TeamID(); ok {
		_spec.SetField(run.FieldTeamID, field.TypeString, value)
		_node.TeamID = &value
	}
	if value, ok := _c.mutation.AgentKeys(); ok {
		_spec.SetField(run.FieldAgentKeys, field.TypeJSON, value)
		_node.AgentKeys = value
	}
	if value, ok := _c.mutation.Rounds(); ok {
		_spec.SetField(run.FieldRounds, field.TypeInt, value)
		_node.Rounds = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(run.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(run.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(run.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(run.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(run.FieldDurationMs, field.TypeInt, value)
		_node.DurationMs = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(run.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.Synthesis(); ok {
		_spec.SetField(run.FieldSynthesis, field.TypeString, value)
		_node.Synthesis = &value
	}
	if value, ok := _c.mutation.ResultJSON(); ok {
		_spec.SetField(run.FieldResultJSON, field.TypeString, value)
		_node.ResultJSON = &value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(run.FieldInputTokens, field.TypeInt, value)
		_node.InputTokens = value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(run.FieldOutputTokens, field.TypeInt, value)
		_node.OutputTokens = value
	}
	if value, ok := _c.mutation.CostUsd(); ok {
		_spec.SetField(run.FieldCostUsd, field.TypeFloat64, value)
		_node.CostUsd = value
	}
	if nodes := _c.mutation.StepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.StepsTable,
			Columns: []string{run.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runstep.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.OutputsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.OutputsTable,
			Columns: []string{run.OutputsColumn},
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

// RunCreateBulk is the builder for creating many Run entities in bulk.
type RunCreateBulk struct {
	config
	err      error
	builders []*RunCreate
}

// Save creates the Run entities in the database.
func (_c *RunCreateBulk) Save(ctx context.Context) ([]*Run, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Run, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RunMutation)
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
func (_c *RunCreateBulk) SaveX(ctx context.Context) []*Run {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
