// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/consilium-ai/consilium/ent/pipelinestep"
	"github.com/consilium-ai/consilium/ent/predicate"
)

// PipelineStepUpdate is the builder for updating PipelineStep entities.
type PipelineStepUpdate struct {
	config
	hooks    []Hook
	mutation *PipelineStepMutation
}

// Where appends a list predicates to the PipelineStepUpdate builder.
func (_u *PipelineStepUpdate) Where(ps ...predicate.PipelineStep) *PipelineStepUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStepIndex sets the "step_index" field.
func (_u *PipelineStepUpdate) SetStepIndex(v int) *PipelineStepUpdate {
	_u.mutation.ResetStepIndex()
	_u.mutation.SetStepIndex(v)
	return _u
}

// SetNillableStepIndex sets the "step_index" field if the given value is not nil.
func (_u *PipelineStepUpdate) SetNillableStepIndex(v *int) *PipelineStepUpdate {
	if v != nil {
		_u.SetStepIndex(*v)
	}
	return _u
}

// AddStepIndex adds value to the "step_index" field.
func (_u *PipelineStepUpdate) AddStepIndex(v int) *PipelineStepUpdate {
	_u.mutation.AddStepIndex(v)
	return _u
}

// SetProtocolKey sets the "protocol_key" field.
func (_u *PipelineStepUpdate) SetProtocolKey(v string) *PipelineStepUpdate {
	_u.mutation.SetProtocolKey(v)
	return _u
}

// SetNillableProtocolKey sets the "protocol_key" field if the given value is not nil.
func (_u *PipelineStepUpdate) SetNillableProtocolKey(v *string) *PipelineStepUpdate {
	if v != nil {
		_u.SetProtocolKey(*v)
	}
	return _u
}

// SetQuestionTemplate sets the "question_template" field.
func (_u *PipelineStepUpdate) SetQuestionTemplate(v string) *PipelineStepUpdate {
	_u.mutation.SetQuestionTemplate(v)
	return _u
}

// SetNillableQuestionTemplate sets the "question_template" field if the given value is not nil.
func (_u *PipelineStepUpdate) SetNillableQuestionTemplate(v *string) *PipelineStepUpdate {
	if v != nil {
		_u.SetQuestionTemplate(*v)
	}
	return _u
}

// SetAgentKeys sets the "agent_keys" field.
func (_u *PipelineStepUpdate) SetAgentKeys(v []string) *PipelineStepUpdate {
	_u.mutation.SetAgentKeys(v)
	return _u
}

// AppendAgentKeys appends value to the "agent_keys" field.
func (_u *PipelineStepUpdate) AppendAgentKeys(v []string) *PipelineStepUpdate {
	_u.mutation.AppendAgentKeys(v)
	return _u
}

// ClearAgentKeys clears the value of the "agent_keys" field.
func (_u *PipelineStepUpdate) ClearAgentKeys() *PipelineStepUpdate {
	_u.mutation.ClearAgentKeys()
	return _u
}

// SetRounds sets the "rounds" field.
func (_u *PipelineStepUpdate) SetRounds(v int) *PipelineStepUpdate {
	_u.mutation.ResetRounds()
	_u.mutation.SetRounds(v)
	return _u
}

// SetNillableRounds sets the "rounds" field if the given value is not nil.
func (_u *PipelineStepUpdate) SetNillableRounds(v *int) *PipelineStepUpdate {
	if v != nil {
		_u.SetRounds(*v)
	}
	return _u
}

// AddRounds adds value to the "rounds" field.
func (_u *PipelineStepUpdate) AddRounds(v int) *PipelineStepUpdate {
	_u.mutation.AddRounds(v)
	return _u
}

// ClearRounds clears the value of the "rounds" field.
func (_u *PipelineStepUpdate) ClearRounds() *PipelineStepUpdate {
	_u.mutation.ClearRounds()
	return _u
}

// SetThinkingModel sets the "thinking_model" field.
func (_u *PipelineStepUpdate) SetThinkingModel(v string) *PipelineStepUpdate {
	_u.mutation.SetThinkingModel(v)
	return _u
}

// SetNillableThinkingModel sets the "thinking_model" field if the given value is not nil.
func (_u *PipelineStepUpdate) SetNillableThinkingModel(v *string) *PipelineStepUpdate {
	if v != nil {
		_u.SetThinkingModel(*v)
	}
	return _u
}

// ClearThinkingModel clears the value of the "thinking_model" field.
func (_u *PipelineStepUpdate) ClearThinkingModel() *PipelineStepUpdate {
	_u.mutation.ClearThinkingModel()
	return _u
}

// SetOrchestrationModel sets the "orchestration_model" field.
func (_u *PipelineStepUpdate) SetOrchestrationModel(v string) *PipelineStepUpdate {
	_u.mutation.SetOrchestrationModel(v)
	return _u
}

// SetNillableOrchestrationModel sets the "orchestration_model" field if the given value is not nil.
func (_u *PipelineStepUpdate) SetNillableOrchestrationModel(v *string) *PipelineStepUpdate {
	if v != nil {
		_u.SetOrchestrationModel(*v)
	}
	return _u
}

// ClearOrchestrationModel clears the value of the "orchestration_model" field.
func (_u *PipelineStepUpdate) ClearOrchestrationModel() *PipelineStepUpdate {
	_u.mutation.ClearOrchestrationModel()
	return _u
}

// SetOutputPassthrough sets the "output_passthrough" field.
func (_u *PipelineStepUpdate) SetOutputPassthrough(v bool) *PipelineStepUpdate {
	_u.mutation.SetOutputPassthrough(v)
	return _u
}

// SetNillableOutputPassthrough sets the "output_passthrough" field if the given value is not nil.
func (_u *PipelineStepUpdate) SetNillableOutputPassthrough(v *bool) *PipelineStepUpdate {
	if v != nil {
		_u.SetOutputPassthrough(*v)
	}
	return _u
}

// Mutation returns the PipelineStepMutation object of the builder.
func (_u *PipelineStepUpdate) Mutation() *PipelineStepMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PipelineStepUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineStepUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PipelineStepUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineStepUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineStepUpdate) check() error {
	if _u.mutation.PipelineCleared() && len(_u.mutation.PipelineIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PipelineStep.pipeline"`)
	}
	return nil
}

func (_u *PipelineStepUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipelinestep.Table, pipelinestep.Columns, sqlgraph.NewFieldSpec(pipelinestep.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StepIndex(); ok {
		_spec.SetField(pipelinestep.FieldStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepIndex(); ok {
		_spec.AddField(pipelinestep.FieldStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProtocolKey(); ok {
		_spec.SetField(pipelinestep.FieldProtocolKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionTemplate(); ok {
		_spec.SetField(pipelinestep.FieldQuestionTemplate, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentKeys(); ok {
		_spec.SetField(pipelinestep.FieldAgentKeys, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAgentKeys(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pipelinestep.FieldAgentKeys, value)
		})
	}
	if _u.mutation.AgentKeysCleared() {
		_spec.ClearField(pipelinestep.FieldAgentKeys, field.TypeJSON)
	}
	if value, ok := _u.mutation.Rounds(); ok {
		_spec.SetField(pipelinestep.FieldRounds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRounds(); ok {
		_spec.AddField(pipelinestep.FieldRounds, field.TypeInt, value)
	}
	if _u.mutation.RoundsCleared() {
		_spec.ClearField(pipelinestep.FieldRounds, field.TypeInt)
	}
	if value, ok := _u.mutation.ThinkingModel(); ok {
		_spec.SetField(pipelinestep.FieldThinkingModel, field.TypeString, value)
	}
	if _u.mutation.ThinkingModelCleared() {
		_spec.ClearField(pipelinestep.FieldThinkingModel, field.TypeString)
	}
	if value, ok := _u.mutation.OrchestrationModel(); ok {
		_spec.SetField(pipelinestep.FieldOrchestrationModel, field.TypeString, value)
	}
	if _u.mutation.OrchestrationModelCleared() {
		_spec.ClearField(pipelinestep.FieldOrchestrationModel, field.TypeString)
	}
	if value, ok := _u.mutation.OutputPassthrough(); ok {
		_spec.SetField(pipelinestep.FieldOutputPassthrough, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelinestep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PipelineStepUpdateOne is the builder for updating a single PipelineStep entity.
type PipelineStepUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PipelineStepMutation
}

// SetStepIndex sets the "step_index" field.
func (_u *PipelineStepUpdateOne) SetStepIndex(v int) *PipelineStepUpdateOne {
	_u.mutation.ResetStepIndex()
	_u.mutation.SetStepIndex(v)
	return _u
}

// SetNillableStepIndex sets the "step_index" field if the given value is not nil.
func (_u *PipelineStepUpdateOne) SetNillableStepIndex(v *int) *PipelineStepUpdateOne {
	if v != nil {
		_u.SetStepIndex(*v)
	}
	return _u
}

// AddStepIndex adds value to the "step_index" field.
func (_u *PipelineStepUpdateOne) AddStepIndex(v int) *PipelineStepUpdateOne {
	_u.mutation.AddStepIndex(v)
	return _u
}

// SetProtocolKey sets the "protocol_key" field.
func (_u *PipelineStepUpdateOne) SetProtocolKey(v string) *PipelineStepUpdateOne {
	_u.mutation.SetProtocolKey(v)
	return _u
}

// SetNillableProtocolKey sets the "protocol_key" field if the given value is not nil.
func (_u *PipelineStepUpdateOne) SetNillableProtocolKey(v *string) *PipelineStepUpdateOne {
	if v != nil {
		_u.SetProtocolKey(*v)
	}
	return _u
}

// SetQuestionTemplate sets the "question_template" field.
func (_u *PipelineStepUpdateOne) SetQuestionTemplate(v string) *PipelineStepUpdateOne {
	_u.mutation.SetQuestionTemplate(v)
	return _u
}

// SetNillableQuestionTemplate sets the "question_template" field if the given value is not nil.
func (_u *PipelineStepUpdateOne) SetNillableQuestionTemplate(v *string) *PipelineStepUpdateOne {
	if v != nil {
		_u.SetQuestionTemplate(*v)
	}
	return _u
}

// SetAgentKeys sets the "agent_keys" field.
func (_u *PipelineStepUpdateOne) SetAgentKeys(v []string) *PipelineStepUpdateOne {
	_u.mutation.SetAgentKeys(v)
	return _u
}

// AppendAgentKeys appends value to the "agent_keys" field.
func (_u *PipelineStepUpdateOne) AppendAgentKeys(v []string) *PipelineStepUpdateOne {
	_u.mutation.AppendAgentKeys(v)
	return _u
}

// ClearAgentKeys clears the value of the "agent_keys" field.
func (_u *PipelineStepUpdateOne) ClearAgentKeys() *PipelineStepUpdateOne {
	_u.mutation.ClearAgentKeys()
	return _u
}

// SetRounds sets the "rounds" field.
func (_u *PipelineStepUpdateOne) SetRounds(v int) *PipelineStepUpdateOne {
	_u.mutation.ResetRounds()
	_u.mutation.SetRounds(v)
	return _u
}

// SetNillableRounds sets the "rounds" field if the given value is not nil.
func (_u *PipelineStepUpdateOne) SetNillableRounds(v *int) *PipelineStepUpdateOne {
	if v != nil {
		_u.SetRounds(*v)
	}
	return _u
}

// AddRounds adds value to the "rounds" field.
func (_u *PipelineStepUpdateOne) AddRounds(v int) *PipelineStepUpdateOne {
	_u.mutation.AddRounds(v)
	return _u
}

// ClearRounds clears the value of the "rounds" field.
func (_u *PipelineStepUpdateOne) ClearRounds() *PipelineStepUpdateOne {
	_u.mutation.ClearRounds()
	return _u
}

// SetThinkingModel sets the "thinking_model" field.
func (_u *PipelineStepUpdateOne) SetThinkingModel(v string) *PipelineStepUpdateOne {
	_u.mutation.SetThinkingModel(v)
	return _u
}

// SetNillableThinkingModel sets the "thinking_model" field if the given value is not nil.
func (_u *PipelineStepUpdateOne) SetNillableThinkingModel(v *string) *PipelineStepUpdateOne {
	if v != nil {
		_u.SetThinkingModel(*v)
	}
	return _u
}

// ClearThinkingModel clears the value of the "thinking_model" field.
func (_u *PipelineStepUpdateOne) ClearThinkingModel() *PipelineStepUpdateOne {
	_u.mutation.ClearThinkingModel()
	return _u
}

// SetOrchestrationModel sets the "orchestration_model" field.
func (_u *PipelineStepUpdateOne) SetOrchestrationModel(v string) *PipelineStepUpdateOne {
	_u.mutation.SetOrchestrationModel(v)
	return _u
}

// SetNillableOrchestrationModel sets the "orchestration_model" field if the given value is not nil.
func (_u *PipelineStepUpdateOne) SetNillableOrchestrationModel(v *string) *PipelineStepUpdateOne {
	if v != nil {
		_u.SetOrchestrationModel(*v)
	}
	return _u
}

// ClearOrchestrationModel clears the value of the "orchestration_model" field.
func (_u *PipelineStepUpdateOne) ClearOrchestrationModel() *PipelineStepUpdateOne {
	_u.mutation.ClearOrchestrationModel()
	return _u
}

// SetOutputPassthrough sets the "output_passthrough" field.
func (_u *PipelineStepUpdateOne) SetOutputPassthrough(v bool) *PipelineStepUpdateOne {
	_u.mutation.SetOutputPassthrough(v)
	return _u
}

// SetNillableOutputPassthrough sets the "output_passthrough" field if the given value is not nil.
func (_u *PipelineStepUpdateOne) SetNillableOutputPassthrough(v *bool) *PipelineStepUpdateOne {
	if v != nil {
		_u.SetOutputPassthrough(*v)
	}
	return _u
}

// Mutation returns the PipelineStepMutation object of the builder.
func (_u *PipelineStepUpdateOne) Mutation() *PipelineStepMutation {
	return _u.mutation
}

// Where appends a list predicates to the PipelineStepUpdate builder.
func (_u *PipelineStepUpdateOne) Where(ps ...predicate.PipelineStep) *PipelineStepUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PipelineStepUpdateOne) Select(field string, fields ...string) *PipelineStepUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PipelineStep entity.
func (_u *PipelineStepUpdateOne) Save(ctx context.Context) (*PipelineStep, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineStepUpdateOne) SaveX(ctx context.Context) *PipelineStep {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PipelineStepUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineStepUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineStepUpdateOne) check() error {
	if _u.mutation.PipelineCleared() && len(_u.mutation.PipelineIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PipelineStep.pipeline"`)
	}
	return nil
}

func (_u *PipelineStepUpdateOne) sqlSave(ctx context.Context) (_node *PipelineStep, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipelinestep.Table, pipelinestep.Columns, sqlgraph.NewFieldSpec(pipelinestep.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PipelineStep.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pipelinestep.FieldID)
		for _, f := range fields {
			if !pipelinestep.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pipelinestep.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StepIndex(); ok {
		_spec.SetField(pipelinestep.FieldStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepIndex(); ok {
		_spec.AddField(pipelinestep.FieldStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProtocolKey(); ok {
		_spec.SetField(pipelinestep.FieldProtocolKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionTemplate(); ok {
		_spec.SetField(pipelinestep.FieldQuestionTemplate, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentKeys(); ok {
		_spec.SetField(pipelinestep.FieldAgentKeys, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAgentKeys(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pipelinestep.FieldAgentKeys, value)
		})
	}
	if _u.mutation.AgentKeysCleared() {
		_spec.ClearField(pipelinestep.FieldAgentKeys, field.TypeJSON)
	}
	if value, ok := _u.mutation.Rounds(); ok {
		_spec.SetField(pipelinestep.FieldRounds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRounds(); ok {
		_spec.AddField(pipelinestep.FieldRounds, field.TypeInt, value)
	}
	if _u.mutation.RoundsCleared() {
		_spec.ClearField(pipelinestep.FieldRounds, field.TypeInt)
	}
	if value, ok := _u.mutation.ThinkingModel(); ok {
		_spec.SetField(pipelinestep.FieldThinkingModel, field.TypeString, value)
	}
	if _u.mutation.ThinkingModelCleared() {
		_spec.ClearField(pipelinestep.FieldThinkingModel, field.TypeString)
	}
	if value, ok := _u.mutation.OrchestrationModel(); ok {
		_spec.SetField(pipelinestep.FieldOrchestrationModel, field.TypeString, value)
	}
	if _u.mutation.OrchestrationModelCleared() {
		_spec.ClearField(pipelinestep.FieldOrchestrationModel, field.TypeString)
	}
	if value, ok := _u.mutation.OutputPassthrough(); ok {
		_spec.SetField(pipelinestep.FieldOutputPassthrough, field.TypeBool, value)
	}
	_node = &PipelineStep{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelinestep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
