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
	"github.com/consilium-ai/consilium/ent/agentoutput"
	"github.com/consilium-ai/consilium/ent/predicate"
)

// AgentOutputUpdate is the builder for updating AgentOutput entities.
type AgentOutputUpdate struct {
	config
	hooks    []Hook
	mutation *AgentOutputMutation
}

// Where appends a list predicates to the AgentOutputUpdate builder.
func (_u *AgentOutputUpdate) Where(ps ...predicate.AgentOutput) *AgentOutputUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentName sets the "agent_name" field.
func (_u *AgentOutputUpdate) SetAgentName(v string) *AgentOutputUpdate {
	_u.mutation.SetAgentName(v)
	return _u
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_u *AgentOutputUpdate) SetNillableAgentName(v *string) *AgentOutputUpdate {
	if v != nil {
		_u.SetAgentName(*v)
	}
	return _u
}

// SetModelID sets the "model_id" field.
func (_u *AgentOutputUpdate) SetModelID(v string) *AgentOutputUpdate {
	_u.mutation.SetModelID(v)
	return _u
}

// SetNillableModelID sets the "model_id" field if the given value is not nil.
func (_u *AgentOutputUpdate) SetNillableModelID(v *string) *AgentOutputUpdate {
	if v != nil {
		_u.SetModelID(*v)
	}
	return _u
}

// ClearModelID clears the value of the "model_id" field.
func (_u *AgentOutputUpdate) ClearModelID() *AgentOutputUpdate {
	_u.mutation.ClearModelID()
	return _u
}

// SetRound sets the "round" field.
func (_u *AgentOutputUpdate) SetRound(v int) *AgentOutputUpdate {
	_u.mutation.ResetRound()
	_u.mutation.SetRound(v)
	return _u
}

// SetNillableRound sets the "round" field if the given value is not nil.
func (_u *AgentOutputUpdate) SetNillableRound(v *int) *AgentOutputUpdate {
	if v != nil {
		_u.SetRound(*v)
	}
	return _u
}

// AddRound adds value to the "round" field.
func (_u *AgentOutputUpdate) AddRound(v int) *AgentOutputUpdate {
	_u.mutation.AddRound(v)
	return _u
}

// ClearRound clears the value of the "round" field.
func (_u *AgentOutputUpdate) ClearRound() *AgentOutputUpdate {
	_u.mutation.ClearRound()
	return _u
}

// SetStage sets the "stage" field.
func (_u *AgentOutputUpdate) SetStage(v string) *AgentOutputUpdate {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *AgentOutputUpdate) SetNillableStage(v *string) *AgentOutputUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// ClearStage clears the value of the "stage" field.
func (_u *AgentOutputUpdate) ClearStage() *AgentOutputUpdate {
	_u.mutation.ClearStage()
	return _u
}

// SetOutput sets the "output" field.
func (_u *AgentOutputUpdate) SetOutput(v string) *AgentOutputUpdate {
	_u.mutation.SetOutput(v)
	return _u
}

// SetNillableOutput sets the "output" field if the given value is not nil.
func (_u *AgentOutputUpdate) SetNillableOutput(v *string) *AgentOutputUpdate {
	if v != nil {
		_u.SetOutput(*v)
	}
	return _u
}

// SetToolCalls sets the "tool_calls" field.
func (_u *AgentOutputUpdate) SetToolCalls(v []string) *AgentOutputUpdate {
	_u.mutation.SetToolCalls(v)
	return _u
}

// AppendToolCalls appends value to the "tool_calls" field.
func (_u *AgentOutputUpdate) AppendToolCalls(v []string) *AgentOutputUpdate {
	_u.mutation.AppendToolCalls(v)
	return _u
}

// ClearToolCalls clears the value of the "tool_calls" field.
func (_u *AgentOutputUpdate) ClearToolCalls() *AgentOutputUpdate {
	_u.mutation.ClearToolCalls()
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *AgentOutputUpdate) SetInputTokens(v int) *AgentOutputUpdate {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *AgentOutputUpdate) SetNillableInputTokens(v *int) *AgentOutputUpdate {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *AgentOutputUpdate) AddInputTokens(v int) *AgentOutputUpdate {
	_u.mutation.AddInputTokens(v)
	return _u
}

// ClearInputTokens clears the value of the "input_tokens" field.
func (_u *AgentOutputUpdate) ClearInputTokens() *AgentOutputUpdate {
	_u.mutation.ClearInputTokens()
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *AgentOutputUpdate) SetOutputTokens(v int) *AgentOutputUpdate {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *AgentOutputUpdate) SetNillableOutputTokens(v *int) *AgentOutputUpdate {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *AgentOutputUpdate) AddOutputTokens(v int) *AgentOutputUpdate {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// ClearOutputTokens clears the value of the "output_tokens" field.
func (_u *AgentOutputUpdate) ClearOutputTokens() *AgentOutputUpdate {
	_u.mutation.ClearOutputTokens()
	return _u
}

// SetCostUsd sets the "cost_usd" field.
func (_u *AgentOutputUpdate) SetCostUsd(v float64) *AgentOutputUpdate {
	_u.mutation.ResetCostUsd()
	_u.mutation.SetCostUsd(v)
	return _u
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_u *AgentOutputUpdate) SetNillableCostUsd(v *float64) *AgentOutputUpdate {
	if v != nil {
		_u.SetCostUsd(*v)
	}
	return _u
}

// AddCostUsd adds value to the "cost_usd" field.
func (_u *AgentOutputUpdate) AddCostUsd(v float64) *AgentOutputUpdate {
	_u.mutation.AddCostUsd(v)
	return _u
}

// ClearCostUsd clears the value of the "cost_usd" field.
func (_u *AgentOutputUpdate) ClearCostUsd() *AgentOutputUpdate {
	_u.mutation.ClearCostUsd()
	return _u
}

// Mutation returns the AgentOutputMutation object of the builder.
func (_u *AgentOutputUpdate) Mutation() *AgentOutputMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentOutputUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentOutputUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentOutputUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentOutputUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentOutputUpdate) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentOutput.run"`)
	}
	return nil
}

func (_u *AgentOutputUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentoutput.Table, agentoutput.Columns, sqlgraph.NewFieldSpec(agentoutput.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentName(); ok {
		_spec.SetField(agentoutput.FieldAgentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelID(); ok {
		_spec.SetField(agentoutput.FieldModelID, field.TypeString, value)
	}
	if _u.mutation.ModelIDCleared() {
		_spec.ClearField(agentoutput.FieldModelID, field.TypeString)
	}
	if value, ok := _u.mutation.Round(); ok {
		_spec.SetField(agentoutput.FieldRound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRound(); ok {
		_spec.AddField(agentoutput.FieldRound, field.TypeInt, value)
	}
	if _u.mutation.RoundCleared() {
		_spec.ClearField(agentoutput.FieldRound, field.TypeInt)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(agentoutput.FieldStage, field.TypeString, value)
	}
	if _u.mutation.StageCleared() {
		_spec.ClearField(agentoutput.FieldStage, field.TypeString)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(agentoutput.FieldOutput, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToolCalls(); ok {
		_spec.SetField(agentoutput.FieldToolCalls, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedToolCalls(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentoutput.FieldToolCalls, value)
		})
	}
	if _u.mutation.ToolCallsCleared() {
		_spec.ClearField(agentoutput.FieldToolCalls, field.TypeJSON)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(agentoutput.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(agentoutput.FieldInputTokens, field.TypeInt, value)
	}
	if _u.mutation.InputTokensCleared() {
		_spec.ClearField(agentoutput.FieldInputTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(agentoutput.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(agentoutput.FieldOutputTokens, field.TypeInt, value)
	}
	if _u.mutation.OutputTokensCleared() {
		_spec.ClearField(agentoutput.FieldOutputTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.CostUsd(); ok {
		_spec.SetField(agentoutput.FieldCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostUsd(); ok {
		_spec.AddField(agentoutput.FieldCostUsd, field.TypeFloat64, value)
	}
	if _u.mutation.CostUsdCleared() {
		_spec.ClearField(agentoutput.FieldCostUsd, field.TypeFloat64)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentoutput.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentOutputUpdateOne is the builder for updating a single AgentOutput entity.
type AgentOutputUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentOutputMutation
}

// SetAgentName sets the "agent_name" field.
func (_u *AgentOutputUpdateOne) SetAgentName(v string) *AgentOutputUpdateOne {
	_u.mutation.SetAgentName(v)
	return _u
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_u *AgentOutputUpdateOne) SetNillableAgentName(v *string) *AgentOutputUpdateOne {
	if v != nil {
		_u.SetAgentName(*v)
	}
	return _u
}

// SetModelID sets the "model_id" field.
func (_u *AgentOutputUpdateOne) SetModelID(v string) *AgentOutputUpdateOne {
	_u.mutation.SetModelID(v)
	return _u
}

// SetNillableModelID sets the "model_id" field if the given value is not nil.
func (_u *AgentOutputUpdateOne) SetNillableModelID(v *string) *AgentOutputUpdateOne {
	if v != nil {
		_u.SetModelID(*v)
	}
	return _u
}

// ClearModelID clears the value of the "model_id" field.
func (_u *AgentOutputUpdateOne) ClearModelID() *AgentOutputUpdateOne {
	_u.mutation.ClearModelID()
	return _u
}

// SetRound sets the "round" field.
func (_u *AgentOutputUpdateOne) SetRound(v int) *AgentOutputUpdateOne {
	_u.mutation.ResetRound()
	_u.mutation.SetRound(v)
	return _u
}

// SetNillableRound sets the "round" field if the given value is not nil.
func (_u *AgentOutputUpdateOne) SetNillableRound(v *int) *AgentOutputUpdateOne {
	if v != nil {
		_u.SetRound(*v)
	}
	return _u
}

// AddRound adds value to the "round" field.
func (_u *AgentOutputUpdateOne) AddRound(v int) *AgentOutputUpdateOne {
	_u.mutation.AddRound(v)
	return _u
}

// ClearRound clears the value of the "round" field.
func (_u *AgentOutputUpdateOne) ClearRound() *AgentOutputUpdateOne {
	_u.mutation.ClearRound()
	return _u
}

// SetStage sets the "stage" field.
func (_u *AgentOutputUpdateOne) SetStage(v string) *AgentOutputUpdateOne {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *AgentOutputUpdateOne) SetNillableStage(v *string) *AgentOutputUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// ClearStage clears the value of the "stage" field.
func (_u *AgentOutputUpdateOne) ClearStage() *AgentOutputUpdateOne {
	_u.mutation.ClearStage()
	return _u
}

// SetOutput sets the "output" field.
func (_u *AgentOutputUpdateOne) SetOutput(v string) *AgentOutputUpdateOne {
	_u.mutation.SetOutput(v)
	return _u
}

// SetNillableOutput sets the "output" field if the given value is not nil.
func (_u *AgentOutputUpdateOne) SetNillableOutput(v *string) *AgentOutputUpdateOne {
	if v != nil {
		_u.SetOutput(*v)
	}
	return _u
}

// SetToolCalls sets the "tool_calls" field.
func (_u *AgentOutputUpdateOne) SetToolCalls(v []string) *AgentOutputUpdateOne {
	_u.mutation.SetToolCalls(v)
	return _u
}

// AppendToolCalls appends value to the "tool_calls" field.
func (_u *AgentOutputUpdateOne) AppendToolCalls(v []string) *AgentOutputUpdateOne {
	_u.mutation.AppendToolCalls(v)
	return _u
}

// ClearToolCalls clears the value of the "tool_calls" field.
func (_u *AgentOutputUpdateOne) ClearToolCalls() *AgentOutputUpdateOne {
	_u.mutation.ClearToolCalls()
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *AgentOutputUpdateOne) SetInputTokens(v int) *AgentOutputUpdateOne {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *AgentOutputUpdateOne) SetNillableInputTokens(v *int) *AgentOutputUpdateOne {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *AgentOutputUpdateOne) AddInputTokens(v int) *AgentOutputUpdateOne {
	_u.mutation.AddInputTokens(v)
	return _u
}

// ClearInputTokens clears the value of the "input_tokens" field.
func (_u *AgentOutputUpdateOne) ClearInputTokens() *AgentOutputUpdateOne {
	_u.mutation.ClearInputTokens()
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *AgentOutputUpdateOne) SetOutputTokens(v int) *AgentOutputUpdateOne {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *AgentOutputUpdateOne) SetNillableOutputTokens(v *int) *AgentOutputUpdateOne {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *AgentOutputUpdateOne) AddOutputTokens(v int) *AgentOutputUpdateOne {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// ClearOutputTokens clears the value of the "output_tokens" field.
func (_u *AgentOutputUpdateOne) ClearOutputTokens() *AgentOutputUpdateOne {
	_u.mutation.ClearOutputTokens()
	return _u
}

// SetCostUsd sets the "cost_usd" field.
func (_u *AgentOutputUpdateOne) SetCostUsd(v float64) *AgentOutputUpdateOne {
	_u.mutation.ResetCostUsd()
	_u.mutation.SetCostUsd(v)
	return _u
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_u *AgentOutputUpdateOne) SetNillableCostUsd(v *float64) *AgentOutputUpdateOne {
	if v != nil {
		_u.SetCostUsd(*v)
	}
	return _u
}

// AddCostUsd adds value to the "cost_usd" field.
func (_u *AgentOutputUpdateOne) AddCostUsd(v float64) *AgentOutputUpdateOne {
	_u.mutation.AddCostUsd(v)
	return _u
}

// ClearCostUsd clears the value of the "cost_usd" field.
func (_u *AgentOutputUpdateOne) ClearCostUsd() *AgentOutputUpdateOne {
	_u.mutation.ClearCostUsd()
	return _u
}

// Mutation returns the AgentOutputMutation object of the builder.
func (_u *AgentOutputUpdateOne) Mutation() *AgentOutputMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentOutputUpdate builder.
func (_u *AgentOutputUpdateOne) Where(ps ...predicate.AgentOutput) *AgentOutputUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentOutputUpdateOne) Select(field string, fields ...string) *AgentOutputUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentOutput entity.
func (_u *AgentOutputUpdateOne) Save(ctx context.Context) (*AgentOutput, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentOutputUpdateOne) SaveX(ctx context.Context) *AgentOutput {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentOutputUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentOutputUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentOutputUpdateOne) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentOutput.run"`)
	}
	return nil
}

func (_u *AgentOutputUpdateOne) sqlSave(ctx context.Context) (_node *AgentOutput, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentoutput.Table, agentoutput.Columns, sqlgraph.NewFieldSpec(agentoutput.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentOutput.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentoutput.FieldID)
		for _, f := range fields {
			if !agentoutput.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentoutput.FieldID {
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
	if value, ok := _u.mutation.AgentName(); ok {
		_spec.SetField(agentoutput.FieldAgentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelID(); ok {
		_spec.SetField(agentoutput.FieldModelID, field.TypeString, value)
	}
	if _u.mutation.ModelIDCleared() {
		_spec.ClearField(agentoutput.FieldModelID, field.TypeString)
	}
	if value, ok := _u.mutation.Round(); ok {
		_spec.SetField(agentoutput.FieldRound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRound(); ok {
		_spec.AddField(agentoutput.FieldRound, field.TypeInt, value)
	}
	if _u.mutation.RoundCleared() {
		_spec.ClearField(agentoutput.FieldRound, field.TypeInt)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(agentoutput.FieldStage, field.TypeString, value)
	}
	if _u.mutation.StageCleared() {
		_spec.ClearField(agentoutput.FieldStage, field.TypeString)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(agentoutput.FieldOutput, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToolCalls(); ok {
		_spec.SetField(agentoutput.FieldToolCalls, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedToolCalls(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentoutput.FieldToolCalls, value)
		})
	}
	if _u.mutation.ToolCallsCleared() {
		_spec.ClearField(agentoutput.FieldToolCalls, field.TypeJSON)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(agentoutput.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(agentoutput.FieldInputTokens, field.TypeInt, value)
	}
	if _u.mutation.InputTokensCleared() {
		_spec.ClearField(agentoutput.FieldInputTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(agentoutput.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(agentoutput.FieldOutputTokens, field.TypeInt, value)
	}
	if _u.mutation.OutputTokensCleared() {
		_spec.ClearField(agentoutput.FieldOutputTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.CostUsd(); ok {
		_spec.SetField(agentoutput.FieldCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostUsd(); ok {
		_spec.AddField(agentoutput.FieldCostUsd, field.TypeFloat64, value)
	}
	if _u.mutation.CostUsdCleared() {
		_spec.ClearField(agentoutput.FieldCostUsd, field.TypeFloat64)
	}
	_node = &AgentOutput{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentoutput.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
