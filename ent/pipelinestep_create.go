// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/consilium-ai/consilium/ent/pipeline"
	"github.com/consilium-ai/consilium/ent/pipelinestep"
)

// PipelineStepCreate is the builder for creating a PipelineStep entity.
type PipelineStepCreate struct {
	config
	mutation *PipelineStepMutation
	hooks    []Hook
}

// SetPipelineID sets the "pipeline_id" field.
func (_c *PipelineStepCreate) SetPipelineID(v string) *PipelineStepCreate {
	_c.mutation.SetPipelineID(v)
	return _c
}

// SetStepIndex sets the "step_index" field.
func (_c *PipelineStepCreate) SetStepIndex(v int) *PipelineStepCreate {
	_c.mutation.SetStepIndex(v)
	return _c
}

// SetProtocolKey sets the "protocol_key" field.
func (_c *PipelineStepCreate) SetProtocolKey(v string) *PipelineStepCreate {
	_c.mutation.SetProtocolKey(v)
	return _c
}

// SetQuestionTemplate sets the "question_template" field.
func (_c *PipelineStepCreate) SetQuestionTemplate(v string) *PipelineStepCreate {
	_c.mutation.SetQuestionTemplate(v)
	return _c
}

// SetAgentKeys sets the "agent_keys" field.
func (_c *PipelineStepCreate) SetAgentKeys(v []string) *PipelineStepCreate {
	_c.mutation.SetAgentKeys(v)
	return _c
}

// SetRounds sets the "rounds" field.
func (_c *PipelineStepCreate) SetRounds(v int) *PipelineStepCreate {
	_c.mutation.SetRounds(v)
	return _c
}

// SetNillableRounds sets the "rounds" field if the given value is not nil.
func (_c *PipelineStepCreate) SetNillableRounds(v *int) *PipelineStepCreate {
	if v != nil {
		_c.SetRounds(*v)
	}
	return _c
}

// SetThinkingModel sets the "thinking_model" field.
func (_c *PipelineStepCreate) SetThinkingModel(v string) *PipelineStepCreate {
	_c.mutation.SetThinkingModel(v)
	return _c
}

// SetNillableThinkingModel sets the "thinking_model" field if the given value is not nil.
func (_c *PipelineStepCreate) SetNillableThinkingModel(v *string) *PipelineStepCreate {
	if v != nil {
		_c.SetThinkingModel(*v)
	}
	return _c
}

// SetOrchestrationModel sets the "orchestration_model" field.
func (_c *PipelineStepCreate) SetOrchestrationModel(v string) *PipelineStepCreate {
	_c.mutation.SetOrchestrationModel(v)
	return _c
}

// SetNillableOrchestrationModel sets the "orchestration_model" field if the given value is not nil.
func (_c *PipelineStepCreate) SetNillableOrchestrationModel(v *string) *PipelineStepCreate {
	if v != nil {
		_c.SetOrchestrationModel(*v)
	}
	return _c
}

// SetOutputPassthrough sets the "output_passthrough" field.
func (_c *PipelineStepCreate) SetOutputPassthrough(v bool) *PipelineStepCreate {
	_c.mutation.SetOutputPassthrough(v)
	return _c
}

// SetNillableOutputPassthrough sets the "output_passthrough" field if the given value is not nil.
func (_c *PipelineStepCreate) SetNillableOutputPassthrough(v *bool) *PipelineStepCreate {
	if v != nil {
		_c.SetOutputPassthrough(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PipelineStepCreate) SetID(v string) *PipelineStepCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetPipeline sets the "pipeline" edge to the Pipeline entity.
func (_c *PipelineStepCreate) SetPipeline(v *Pipeline) *PipelineStepCreate {
	return _c.SetPipelineID(v.ID)
}

// Mutation returns the PipelineStepMutation object of the builder.
func (_c *PipelineStepCreate) Mutation() *PipelineStepMutation {
	return _c.mutation
}

// Save creates the PipelineStep in the database.
func (_c *PipelineStepCreate) Save(ctx context.Context) (*PipelineStep, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PipelineStepCreate) SaveX(ctx context.Context) *PipelineStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineStepCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineStepCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PipelineStepCreate) defaults() {
	if _, ok := _c.mutation.OutputPassthrough(); !ok {
		v := pipelinestep.DefaultOutputPassthrough
		_c.mutation.SetOutputPassthrough(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PipelineStepCreate) check() error {
	if _, ok := _c.mutation.PipelineID(); !ok {
		return &ValidationError{Name: "pipeline_id", err: errors.New(`ent: missing required field "PipelineStep.pipeline_id"`)}
	}
	if _, ok := _c.mutation.StepIndex(); !ok {
		return &ValidationError{Name: "step_index", err: errors.New(`ent: missing required field "PipelineStep.step_index"`)}
	}
	if _, ok := _c.mutation.ProtocolKey(); !ok {
		return &ValidationError{Name: "protocol_key", err: errors.New(`ent: missing required field "PipelineStep.protocol_key"`)}
	}
	if _, ok := _c.mutation.QuestionTemplate(); !ok {
		return &ValidationError{Name: "question_template", err: errors.New(`ent: missing required field "PipelineStep.question_template"`)}
	}
	if _, ok := _c.mutation.OutputPassthrough(); !ok {
		return &ValidationError{Name: "output_passthrough", err: errors.New(`ent: missing required field "PipelineStep.output_passthrough"`)}
	}
	if len(_c.mutation.PipelineIDs()) == 0 {
		return &ValidationError{Name: "pipeline", err: errors.New(`ent: missing required edge "PipelineStep.pipeline"`)}
	}
	return nil
}

func (_c *PipelineStepCreate) sqlSave(ctx context.Context) (*PipelineStep, error) {
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
			return nil, fmt.Errorf("unexpected PipelineStep.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PipelineStepCreate) createSpec() (*PipelineStep, *sqlgraph.CreateSpec) {
	var (
		_node = &PipelineStep{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pipelinestep.Table, sqlgraph.NewFieldSpec(pipelinestep.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StepIndex(); ok {
		_spec.SetField(pipelinestep.FieldStepIndex, field.TypeInt, value)
		_node.StepIndex = value
	}
	if value, ok := _c.mutation.ProtocolKey(); ok {
		_spec.SetField(pipelinestep.FieldProtocolKey, field.TypeString, value)
		_node.ProtocolKey = value
	}
	if value, ok := _c.mutation.QuestionTemplate(); ok {
		_spec.SetField(pipelinestep.FieldQuestionTemplate, field.TypeString, value)
		_node.QuestionTemplate = value
	}
	if value, ok := _c.mutation.AgentKeys(); ok {
		_spec.SetField(pipelinestep.FieldAgentKeys, field.TypeJSON, value)
		_node.AgentKeys = value
	}
	if value, ok := _c.mutation.Rounds(); ok {
		_spec.SetField(pipelinestep.FieldRounds, field.TypeInt, value)
		_node.Rounds = value
	}
	if value, ok := _c.mutation.ThinkingModel(); ok {
		_spec.SetField(pipelinestep.FieldThinkingModel, field.TypeString, value)
		_node.ThinkingModel = value
	}
	if value, ok := _c.mutation.OrchestrationModel(); ok {
		_spec.SetField(pipelinestep.FieldOrchestrationModel, field.TypeString, value)
		_node.OrchestrationModel = value
	}
	if value, ok := _c.mutation.OutputPassthrough(); ok {
		_spec.SetField(pipelinestep.FieldOutputPassthrough, field.TypeBool, value)
		_node.OutputPassthrough = value
	}
	if nodes := _c.mutation.PipelineIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pipelinestep.PipelineTable,
			Columns: []string{pipelinestep.PipelineColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipeline.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PipelineID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PipelineStepCreateBulk is the builder for creating many PipelineStep entities in bulk.
type PipelineStepCreateBulk struct {
	config
	err      error
	builders []*PipelineStepCreate
}

// Save creates the PipelineStep entities in the database.
func (_c *PipelineStepCreateBulk) Save(ctx context.Context) ([]*PipelineStep, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PipelineStep, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PipelineStepMutation)
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
func (_c *PipelineStepCreateBulk) SaveX(ctx context.Context) []*PipelineStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineStepCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineStepCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
