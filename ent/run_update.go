// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/consilium-ai/consilium/ent/agentoutput"
	"github.com/consilium-ai/consilium/ent/predicate"
	"github.com/consilium-ai/consilium/ent/run"
	"github.com/consilium-ai/consilium/ent/runstep"
)

// RunUpdate is the builder for updating Run entities.
type RunUpdate struct {
	config
	hooks    []Hook
	mutation *RunMutation
}

// Where appends a list predicates to the RunUpdate builder.
func (_u *RunUpdate) Where(ps ...predicate.Run) *RunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *RunUpdate) SetKind(v run.Kind) *RunUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *RunUpdate) SetNillableKind(v *run.Kind) *RunUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *RunUpdate) SetQuestion(v string) *RunUpdate {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *RunUpdate) SetNillableQuestion(v *string) *RunUpdate {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetProtocolKey sets the "protocol_key" field.
func (_u *RunUpdate) SetProtocolKey(v string) *RunUpdate {
	_u.mutation.SetProtocolKey(v)
	return _u
}

// SetNillableProtocolKey sets the "protocol_key" field if the given value is not nil.
func (_u *RunUpdate) SetNillableProtocolKey(v *string) *RunUpdate {
	if v != nil {
		_u.SetProtocolKey(*v)
	}
	return _u
}

// ClearProtocolKey clears the value of the "protocol_key" field.
func (_u *RunUpdate) ClearProtocolKey() *RunUpdate {
	_u.mutation.ClearProtocolKey()
	return _u
}

// SetPipelineID sets the "pipeline_id" field.
func (_u *RunUpdate) SetPipelineID(v string) *RunUpdate {
	_u.mutation.SetPipelineID(v)
	return _u
}

// SetNillablePipelineID sets the "pipeline_id" field if the given value is not nil.
func (_u *RunUpdate) SetNillablePipelineID(v *string) *RunUpdate {
	if v != nil {
		_u.SetPipelineID(*v)
	}
	return _u
}

// ClearPipelineID clears the value of the "pipeline_id" field.
func (_u *RunUpdate) ClearPipelineID() *RunUpdate {
	_u.mutation.ClearPipelineID()
	return _u
}

// SetTeamID sets the "team_id" field.
func (_u *RunUpdate) SetTeamID(v string) *RunUpdate {
	_u.mutation.SetTeamID(v)
	return _u
}

// SetNillableTeamID sets the "team_id" field if the given value is not nil.
func (_u *RunUpdate) SetNillableTeamID(v *string) *RunUpdate {
	if v != nil {
		_u.SetTeamID(*v)
	}
	return _u
}

// ClearTeamID clears the value of the "team_id" field.
func (_u *RunUpdate) ClearTeamID() *RunUpdate {
	_u.mutation.ClearTeamID()
	return _u
}

// SetAgentKeys sets the "agent_keys" field.
func (_u *RunUpdate) SetAgentKeys(v []string) *RunUpdate {
	_u.mutation.SetAgentKeys(v)
	return _u
}

// AppendAgentKeys appends value to the "agent_keys" field.
func (_u *RunUpdate) AppendAgentKeys(v []string) *RunUpdate {
	_u.mutation.AppendAgentKeys(v)
	return _u
}

// ClearAgentKeys clears the value of the "agent_keys" field.
func (_u *RunUpdate) ClearAgentKeys() *RunUpdate {
	_u.mutation.ClearAgentKeys()
	return _u
}

// SetRounds sets the "rounds" field.
func (_u *RunUpdate) SetRounds(v int) *RunUpdate {
	_u.mutation.ResetRounds()
	_u.mutation.SetRounds(v)
	return _u
}

// SetNillableRounds sets the "rounds" field if the given value is not nil.
func (_u *RunUpdate) SetNillableRounds(v *int) *RunUpdate {
	if v != nil {
		_u.SetRounds(*v)
	}
	return _u
}

// AddRounds adds value to the "rounds" field.
func (_u *RunUpdate) AddRounds(v int) *RunUpdate {
	_u.mutation.AddRounds(v)
	return _u
}

// ClearRounds clears the value of the "rounds" field.
func (_u *RunUpdate) ClearRounds() *RunUpdate {
	_u.mutation.ClearRounds()
	return _u
}

// SetStatus sets the "status" field.
func (_u *RunUpdate) SetStatus(v run.Status) *RunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RunUpdate) SetNillableStatus(v *run.Status) *RunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *RunUpdate) SetStartedAt(v time.Time) *RunUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *RunUpdate) SetNillableStartedAt(v *time.Time) *RunUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *RunUpdate) ClearStartedAt() *RunUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *RunUpdate) SetCompletedAt(v time.Time) *RunUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *RunUpdate) SetNillableCompletedAt(v *time.Time) *RunUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *RunUpdate) ClearCompletedAt() *RunUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *RunUpdate) SetDurationMs(v int) *RunUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *RunUpdate) SetNillableDurationMs(v *int) *RunUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *RunUpdate) AddDurationMs(v int) *RunUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *RunUpdate) ClearDurationMs() *RunUpdate {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *RunUpdate) SetErrorMessage(v string) *RunUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *RunUpdate) SetNillableErrorMessage(v *string) *RunUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *RunUpdate) ClearErrorMessage() *RunUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetSynthesis sets the "synthesis" field.
func (_u *RunUpdate) SetSynthesis(v string) *RunUpdate {
	_u.mutation.SetSynthesis(v)
	return _u
}

// SetNillableSynthesis sets the "synthesis" field if the given value is not nil.
func (_u *RunUpdate) SetNillableSynthesis(v *string) *RunUpdate {
	if v != nil {
		_u.SetSynthesis(*v)
	}
	return _u
}

// ClearSynthesis clears the value of the "synthesis" field.
func (_u *RunUpdate) ClearSynthesis() *RunUpdate {
	_u.mutation.ClearSynthesis()
	return _u
}

// SetResultJSON sets the "result_json" field.
func (_u *RunUpdate) SetResultJSON(v string) *RunUpdate {
	_u.mutation.SetResultJSON(v)
	return _u
}

// SetNillableResultJSON sets the "result_json" field if the given value is not nil.
func (_u *RunUpdate) SetNillableResultJSON(v *string) *RunUpdate {
	if v != nil {
		_u.SetResultJSON(*v)
	}
	return _u
}

// ClearResultJSON clears the value of the "result_json" field.
func (_u *RunUpdate) ClearResultJSON() *RunUpdate {
	_u.mutation.ClearResultJSON()
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *RunUpdate) SetInputTokens(v int) *RunUpdate {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *RunUpdate) SetNillableInputTokens(v *int) *RunUpdate {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *RunUpdate) AddInputTokens(v int) *RunUpdate {
	_u.mutation.AddInputTokens(v)
	return _u
}

// ClearInputTokens clears the value of the "input_tokens" field.
func (_u *RunUpdate) ClearInputTokens() *RunUpdate {
	_u.mutation.ClearInputTokens()
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *RunUpdate) SetOutputTokens(v int) *RunUpdate {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *RunUpdate) SetNillableOutputTokens(v *int) *RunUpdate {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *RunUpdate) AddOutputTokens(v int) *RunUpdate {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// ClearOutputTokens clears the value of the "output_tokens" field.
func (_u *RunUpdate) ClearOutputTokens() *RunUpdate {
	_u.mutation.ClearOutputTokens()
	return _u
}

// SetCostUsd sets the "cost_usd" field.
func (_u *RunUpdate) SetCostUsd(v float64) *RunUpdate {
	_u.mutation.ResetCostUsd()
	_u.mutation.SetCostUsd(v)
	return _u
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_u *RunUpdate) SetNillableCostUsd(v *float64) *RunUpdate {
	if v != nil {
		_u.SetCostUsd(*v)
	}
	return _u
}

// AddCostUsd adds value to the "cost_usd" field.
func (_u *RunUpdate) AddCostUsd(v float64) *RunUpdate {
	_u.mutation.AddCostUsd(v)
	return _u
}

// ClearCostUsd clears the value of the "cost_usd" field.
func (_u *RunUpdate) ClearCostUsd() *RunUpdate {
	_u.mutation.ClearCostUsd()
	return _u
}

// AddStepIDs adds the "steps" edge to the RunStep entity by IDs.
func (_u *RunUpdate) AddStepIDs(ids ...string) *RunUpdate {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the RunStep entity.
func (_u *RunUpdate) AddSteps(v ...*RunStep) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// AddOutputIDs adds the "outputs" edge to the AgentOutput entity by IDs.
func (_u *RunUpdate) AddOutputIDs(ids ...string) *RunUpdate {
	_u.mutation.AddOutputIDs(ids...)
	return _u
}

// AddOutputs adds the "outputs" edges to the AgentOutput entity.
func (_u *RunUpdate) AddOutputs(v ...*AgentOutput) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOutputIDs(ids...)
}

// Mutation returns the RunMutation object of the builder.
func (_u *RunUpdate) Mutation() *RunMutation {
	return _u.mutation
}

// ClearSteps clears all "steps" edges to the RunStep entity.
func (_u *RunUpdate) ClearSteps() *RunUpdate {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to RunStep entities by IDs.
func (_u *RunUpdate) RemoveStepIDs(ids ...string) *RunUpdate {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to RunStep entities.
func (_u *RunUpdate) RemoveSteps(v ...*RunStep) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// ClearOutputs clears all "outputs" edges to the AgentOutput entity.
func (_u *RunUpdate) ClearOutputs() *RunUpdate {
	_u.mutation.ClearOutputs()
	return _u
}

// RemoveOutputIDs removes the "outputs" edge to AgentOutput entities by IDs.
func (_u *RunUpdate) RemoveOutputIDs(ids ...string) *RunUpdate {
	_u.mutation.RemoveOutputIDs(ids...)
	return _u
}

// RemoveOutputs removes "outputs" edges to AgentOutput entities.
func (_u *RunUpdate) RemoveOutputs(v ...*AgentOutput) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOutputIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := run.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Run.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := run.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Run.status": %w`, err)}
		}
	}
	return nil
}

func (_u *RunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(run.Table, run.Columns, sqlgraph.NewFieldSpec(run.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(run.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(run.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProtocolKey(); ok {
		_spec.SetField(run.FieldProtocolKey, field.TypeString, value)
	}
	if _u.mutation.ProtocolKeyCleared() {
		_spec.ClearField(run.FieldProtocolKey, field.TypeString)
	}
	if value, ok := _u.mutation.PipelineID(); ok {
		_spec.SetField(run.FieldPipelineID, field.TypeString, value)
	}
	if _u.mutation.PipelineIDCleared() {
		_spec.ClearField(run.FieldPipelineID, field.TypeString)
	}
	if value, ok := _u.mutation.TeamID(); ok {
		_spec.SetField(run.FieldTeamID, field.TypeString, value)
	}
	if _u.mutation.TeamIDCleared() {
		_spec.ClearField(run.FieldTeamID, field.TypeString)
	}
	if value, ok := _u.mutation.AgentKeys(); ok {
		_spec.SetField(run.FieldAgentKeys, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAgentKeys(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, run.FieldAgentKeys, value)
		})
	}
	if _u.mutation.AgentKeysCleared() {
		_spec.ClearField(run.FieldAgentKeys, field.TypeJSON)
	}
	if value, ok := _u.mutation.Rounds(); ok {
		_spec.SetField(run.FieldRounds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRounds(); ok {
		_spec.AddField(run.FieldRounds, field.TypeInt, value)
	}
	if _u.mutation.RoundsCleared() {
		_spec.ClearField(run.FieldRounds, field.TypeInt)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(run.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(run.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(run.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(run.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(run.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(run.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(run.FieldDurationMs, field.TypeInt, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(run.FieldDurationMs, field.TypeInt)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(run.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(run.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Synthesis(); ok {
		_spec.SetField(run.FieldSynthesis, field.TypeString, value)
	}
	if _u.mutation.SynthesisCleared() {
		_spec.ClearField(run.FieldSynthesis, field.TypeString)
	}
	if value, ok := _u.mutation.ResultJSON(); ok {
		_spec.SetField(run.FieldResultJSON, field.TypeString, value)
	}
	if _u.mutation.ResultJSONCleared() {
		_spec.ClearField(run.FieldResultJSON, field.TypeString)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(run.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(run.FieldInputTokens, field.TypeInt, value)
	}
	if _u.mutation.InputTokensCleared() {
		_spec.ClearField(run.FieldInputTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(run.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(run.FieldOutputTokens, field.TypeInt, value)
	}
	if _u.mutation.OutputTokensCleared() {
		_spec.ClearField(run.FieldOutputTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.CostUsd(); ok {
		_spec.SetField(run.FieldCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostUsd(); ok {
		_spec.AddField(run.FieldCostUsd, field.TypeFloat64, value)
	}
	if _u.mutation.CostUsdCleared() {
		_spec.ClearField(run.FieldCostUsd, field.TypeFloat64)
	}
	if _u.mutation.StepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OutputsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOutputsIDs(); len(nodes) > 0 && !_u.mutation.OutputsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OutputsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{run.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RunUpdateOne is the builder for updating a single Run entity.
type RunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RunMutation
}

// SetKind sets the "kind" field.
func (_u *RunUpdateOne) SetKind(v run.Kind) *RunUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableKind(v *run.Kind) *RunUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *RunUpdateOne) SetQuestion(v string) *RunUpdateOne {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableQuestion(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetProtocolKey sets the "protocol_key" field.
func (_u *RunUpdateOne) SetProtocolKey(v string) *RunUpdateOne {
	_u.mutation.SetProtocolKey(v)
	return _u
}

// SetNillableProtocolKey sets the "protocol_key" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableProtocolKey(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetProtocolKey(*v)
	}
	return _u
}

// ClearProtocolKey clears the value of the "protocol_key" field.
func (_u *RunUpdateOne) ClearProtocolKey() *RunUpdateOne {
	_u.mutation.ClearProtocolKey()
	return _u
}

// SetPipelineID sets the "pipeline_id" field.
func (_u *RunUpdateOne) SetPipelineID(v string) *RunUpdateOne {
	_u.mutation.SetPipelineID(v)
	return _u
}

// SetNillablePipelineID sets the "pipeline_id" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillablePipelineID(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetPipelineID(*v)
	}
	return _u
}

// ClearPipelineID clears the value of the "pipeline_id" field.
func (_u *RunUpdateOne) ClearPipelineID() *RunUpdateOne {
	_u.mutation.ClearPipelineID()
	return _u
}

// SetTeamID sets the "team_id" field.
func (_u *RunUpdateOne) SetTeamID(v string) *RunUpdateOne {
	_u.mutation.SetTeamID(v)
	return _u
}

// SetNillableTeamID sets the "team_id" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableTeamID(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetTeamID(*v)
	}
	return _u
}

// ClearTeamID clears the value of the "team_id" field.
func (_u *RunUpdateOne) ClearTeamID() *RunUpdateOne {
	_u.mutation.ClearTeamID()
	return _u
}

// SetAgentKeys sets the "agent_keys" field.
func (_u *RunUpdateOne) SetAgentKeys(v []string) *RunUpdateOne {
	_u.mutation.SetAgentKeys(v)
	return _u
}

// AppendAgentKeys appends value to the "agent_keys" field.
func (_u *RunUpdateOne) AppendAgentKeys(v []string) *RunUpdateOne {
	_u.mutation.AppendAgentKeys(v)
	return _u
}

// ClearAgentKeys clears the value of the "agent_keys" field.
func (_u *RunUpdateOne) ClearAgentKeys() *RunUpdateOne {
	_u.mutation.ClearAgentKeys()
	return _u
}

// SetRounds sets the "rounds" field.
func (_u *RunUpdateOne) SetRounds(v int) *RunUpdateOne {
	_u.mutation.ResetRounds()
	_u.mutation.SetRounds(v)
	return _u
}

// SetNillableRounds sets the "rounds" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableRounds(v *int) *RunUpdateOne {
	if v != nil {
		_u.SetRounds(*v)
	}
	return _u
}

// AddRounds adds value to the "rounds" field.
func (_u *RunUpdateOne) AddRounds(v int) *RunUpdateOne {
	_u.mutation.AddRounds(v)
	return _u
}

// ClearRounds clears the value of the "rounds" field.
func (_u *RunUpdateOne) ClearRounds() *RunUpdateOne {
	_u.mutation.ClearRounds()
	return _u
}

// SetStatus sets the "status" field.
func (_u *RunUpdateOne) SetStatus(v run.Status) *RunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableStatus(v *run.Status) *RunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *RunUpdateOne) SetStartedAt(v time.Time) *RunUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableStartedAt(v *time.Time) *RunUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *RunUpdateOne) ClearStartedAt() *RunUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *RunUpdateOne) SetCompletedAt(v time.Time) *RunUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableCompletedAt(v *time.Time) *RunUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *RunUpdateOne) ClearCompletedAt() *RunUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *RunUpdateOne) SetDurationMs(v int) *RunUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableDurationMs(v *int) *RunUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *RunUpdateOne) AddDurationMs(v int) *RunUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *RunUpdateOne) ClearDurationMs() *RunUpdateOne {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *RunUpdateOne) SetErrorMessage(v string) *RunUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableErrorMessage(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *RunUpdateOne) ClearErrorMessage() *RunUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetSynthesis sets the "synthesis" field.
func (_u *RunUpdateOne) SetSynthesis(v string) *RunUpdateOne {
	_u.mutation.SetSynthesis(v)
	return _u
}

// SetNillableSynthesis sets the "synthesis" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableSynthesis(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetSynthesis(*v)
	}
	return _u
}

// ClearSynthesis clears the value of the "synthesis" field.
func (_u *RunUpdateOne) ClearSynthesis() *RunUpdateOne {
	_u.mutation.ClearSynthesis()
	return _u
}

// SetResultJSON sets the "result_json" field.
func (_u *RunUpdateOne) SetResultJSON(v string) *RunUpdateOne {
	_u.mutation.SetResultJSON(v)
	return _u
}

// SetNillableResultJSON sets the "result_json" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableResultJSON(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetResultJSON(*v)
	}
	return _u
}

// ClearResultJSON clears the value of the "result_json" field.
func (_u *RunUpdateOne) ClearResultJSON() *RunUpdateOne {
	_u.mutation.ClearResultJSON()
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *RunUpdateOne) SetInputTokens(v int) *RunUpdateOne {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableInputTokens(v *int) *RunUpdateOne {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *RunUpdateOne) AddInputTokens(v int) *RunUpdateOne {
	_u.mutation.AddInputTokens(v)
	return _u
}

// ClearInputTokens clears the value of the "input_tokens" field.
func (_u *RunUpdateOne) ClearInputTokens() *RunUpdateOne {
	_u.mutation.ClearInputTokens()
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *RunUpdateOne) SetOutputTokens(v int) *RunUpdateOne {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableOutputTokens(v *int) *RunUpdateOne {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *RunUpdateOne) AddOutputTokens(v int) *RunUpdateOne {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// ClearOutputTokens clears the value of the "output_tokens" field.
func (_u *RunUpdateOne) ClearOutputTokens() *RunUpdateOne {
	_u.mutation.ClearOutputTokens()
	return _u
}

// SetCostUsd sets the "cost_usd" field.
func (_u *RunUpdateOne) SetCostUsd(v float64) *RunUpdateOne {
	_u.mutation.ResetCostUsd()
	_u.mutation.SetCostUsd(v)
	return _u
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableCostUsd(v *float64) *RunUpdateOne {
	if v != nil {
		_u.SetCostUsd(*v)
	}
	return _u
}

// AddCostUsd adds value to the "cost_usd" field.
func (_u *RunUpdateOne) AddCostUsd(v float64) *RunUpdateOne {
	_u.mutation.AddCostUsd(v)
	return _u
}

// ClearCostUsd clears the value of the "cost_usd" field.
func (_u *RunUpdateOne) ClearCostUsd() *RunUpdateOne {
	_u.mutation.ClearCostUsd()
	return _u
}

// AddStepIDs adds the "steps" edge to the RunStep entity by IDs.
func (_u *RunUpdateOne) AddStepIDs(ids ...string) *RunUpdateOne {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the RunStep entity.
func (_u *RunUpdateOne) AddSteps(v ...*RunStep) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// AddOutputIDs adds the "outputs" edge to the AgentOutput entity by IDs.
func (_u *RunUpdateOne) AddOutputIDs(ids ...string) *RunUpdateOne {
	_u.mutation.AddOutputIDs(ids...)
	return _u
}

// AddOutputs adds the "outputs" edges to the AgentOutput entity.
func (_u *RunUpdateOne) AddOutputs(v ...*AgentOutput) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOutputIDs(ids...)
}

// Mutation returns the RunMutation object of the builder.
func (_u *RunUpdateOne) Mutation() *RunMutation {
	return _u.mutation
}

// ClearSteps clears all "steps" edges to the RunStep entity.
func (_u *RunUpdateOne) ClearSteps() *RunUpdateOne {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to RunStep entities by IDs.
func (_u *RunUpdateOne) RemoveStepIDs(ids ...string) *RunUpdateOne {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to RunStep entities.
func (_u *RunUpdateOne) RemoveSteps(v ...*RunStep) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// ClearOutputs clears all "outputs" edges to the AgentOutput entity.
func (_u *RunUpdateOne) ClearOutputs() *RunUpdateOne {
	_u.mutation.ClearOutputs()
	return _u
}

// RemoveOutputIDs removes the "outputs" edge to AgentOutput entities by IDs.
func (_u *RunUpdateOne) RemoveOutputIDs(ids ...string) *RunUpdateOne {
	_u.mutation.RemoveOutputIDs(ids...)
	return _u
}

// RemoveOutputs removes "outputs" edges to AgentOutput entities.
func (_u *RunUpdateOne) RemoveOutputs(v ...*AgentOutput) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOutputIDs(ids...)
}

// Where appends a list predicates to the RunUpdate builder.
func (_u *RunUpdateOne) Where(ps ...predicate.Run) *RunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RunUpdateOne) Select(field string, fields ...string) *RunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Run entity.
func (_u *RunUpdateOne) Save(ctx context.Context) (*Run, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunUpdateOne) SaveX(ctx context.Context) *Run {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := run.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Run.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := run.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Run.status": %w`, err)}
		}
	}
	return nil
}

func (_u *RunUpdateOne) sqlSave(ctx context.Context) (_node *Run, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(run.Table, run.Columns, sqlgraph.NewFieldSpec(run.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Run.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, run.FieldID)
		for _, f := range fields {
			if !run.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != run.FieldID {
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
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(run.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(run.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProtocolKey(); ok {
		_spec.SetField(run.FieldProtocolKey, field.TypeString, value)
	}
	if _u.mutation.ProtocolKeyCleared() {
		_spec.ClearField(run.FieldProtocolKey, field.TypeString)
	}
	if value, ok := _u.mutation.PipelineID(); ok {
		_spec.SetField(run.FieldPipelineID, field.TypeString, value)
	}
	if _u.mutation.PipelineIDCleared() {
		_spec.ClearField(run.FieldPipelineID, field.TypeString)
	}
	if value, ok := _u.mutation.TeamID(); ok {
		_spec.SetField(run.FieldTeamID, field.TypeString, value)
	}
	if _u.mutation.TeamIDCleared() {
		_spec.ClearField(run.FieldTeamID, field.TypeString)
	}
	if value, ok := _u.mutation.AgentKeys(); ok {
		_spec.SetField(run.FieldAgentKeys, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAgentKeys(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, run.FieldAgentKeys, value)
		})
	}
	if _u.mutation.AgentKeysCleared() {
		_spec.ClearField(run.FieldAgentKeys, field.TypeJSON)
	}
	if value, ok := _u.mutation.Rounds(); ok {
		_spec.SetField(run.FieldRounds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRounds(); ok {
		_spec.AddField(run.FieldRounds, field.TypeInt, value)
	}
	if _u.mutation.RoundsCleared() {
		_spec.ClearField(run.FieldRounds, field.TypeInt)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(run.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(run.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(run.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(run.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(run.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(run.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(run.FieldDurationMs, field.TypeInt, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(run.FieldDurationMs, field.TypeInt)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(run.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(run.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Synthesis(); ok {
		_spec.SetField(run.FieldSynthesis, field.TypeString, value)
	}
	if _u.mutation.SynthesisCleared() {
		_spec.ClearField(run.FieldSynthesis, field.TypeString)
	}
	if value, ok := _u.mutation.ResultJSON(); ok {
		_spec.SetField(run.FieldResultJSON, field.TypeString, value)
	}
	if _u.mutation.ResultJSONCleared() {
		_spec.ClearField(run.FieldResultJSON, field.TypeString)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(run.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(run.FieldInputTokens, field.TypeInt, value)
	}
	if _u.mutation.InputTokensCleared() {
		_spec.ClearField(run.FieldInputTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(run.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(run.FieldOutputTokens, field.TypeInt, value)
	}
	if _u.mutation.OutputTokensCleared() {
		_spec.ClearField(run.FieldOutputTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.CostUsd(); ok {
		_spec.SetField(run.FieldCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostUsd(); ok {
		_spec.AddField(run.FieldCostUsd, field.TypeFloat64, value)
	}
	if _u.mutation.CostUsdCleared() {
		_spec.ClearField(run.FieldCostUsd, field.TypeFloat64)
	}
	if _u.mutation.StepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OutputsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOutputsIDs(); len(nodes) > 0 && !_u.mutation.OutputsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OutputsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Run{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{run.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
