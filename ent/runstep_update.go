// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/consilium-ai/consilium/ent/agentoutput"
	"github.com/consilium-ai/consilium/ent/predicate"
	"github.com/consilium-ai/consilium/ent/runstep"
)

// RunStepUpdate is the builder for updating RunStep entities.
type RunStepUpdate struct {
	config
	hooks    []Hook
	mutation *RunStepMutation
}

// Where appends a list predicates to the RunStepUpdate builder.
func (_u *RunStepUpdate) Where(ps ...predicate.RunStep) *RunStepUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStepIndex sets the "step_index" field.
func (_u *RunStepUpdate) SetStepIndex(v int) *RunStepUpdate {
	_u.mutation.ResetStepIndex()
	_u.mutation.SetStepIndex(v)
	return _u
}

// SetNillableStepIndex sets the "step_index" field if the given value is not nil.
func (_u *RunStepUpdate) SetNillableStepIndex(v *int) *RunStepUpdate {
	if v != nil {
		_u.SetStepIndex(*v)
	}
	return _u
}

// AddStepIndex adds value to the "step_index" field.
func (_u *RunStepUpdate) AddStepIndex(v int) *RunStepUpdate {
	_u.mutation.AddStepIndex(v)
	return _u
}

// SetProtocolKey sets the "protocol_key" field.
func (_u *RunStepUpdate) SetProtocolKey(v string) *RunStepUpdate {
	_u.mutation.SetProtocolKey(v)
	return _u
}

// SetNillableProtocolKey sets the "protocol_key" field if the given value is not nil.
func (_u *RunStepUpdate) SetNillableProtocolKey(v *string) *RunStepUpdate {
	if v != nil {
		_u.SetProtocolKey(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *RunStepUpdate) SetQuestion(v string) *RunStepUpdate {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *RunStepUpdate) SetNillableQuestion(v *string) *RunStepUpdate {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RunStepUpdate) SetStatus(v runstep.Status) *RunStepUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RunStepUpdate) SetNillableStatus(v *runstep.Status) *RunStepUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *RunStepUpdate) SetStartedAt(v time.Time) *RunStepUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *RunStepUpdate) SetNillableStartedAt(v *time.Time) *RunStepUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *RunStepUpdate) ClearStartedAt() *RunStepUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *RunStepUpdate) SetCompletedAt(v time.Time) *RunStepUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *RunStepUpdate) SetNillableCompletedAt(v *time.Time) *RunStepUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *RunStepUpdate) ClearCompletedAt() *RunStepUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetSynthesis sets the "synthesis" field.
func (_u *RunStepUpdate) SetSynthesis(v string) *RunStepUpdate {
	_u.mutation.SetSynthesis(v)
	return _u
}

// SetNillableSynthesis sets the "synthesis" field if the given value is not nil.
func (_u *RunStepUpdate) SetNillableSynthesis(v *string) *RunStepUpdate {
	if v != nil {
		_u.SetSynthesis(*v)
	}
	return _u
}

// ClearSynthesis clears the value of the "synthesis" field.
func (_u *RunStepUpdate) ClearSynthesis() *RunStepUpdate {
	_u.mutation.ClearSynthesis()
	return _u
}

// SetResultJSON sets the "result_json" field.
func (_u *RunStepUpdate) SetResultJSON(v string) *RunStepUpdate {
	_u.mutation.SetResultJSON(v)
	return _u
}

// SetNillableResultJSON sets the "result_json" field if the given value is not nil.
func (_u *RunStepUpdate) SetNillableResultJSON(v *string) *RunStepUpdate {
	if v != nil {
		_u.SetResultJSON(*v)
	}
	return _u
}

// ClearResultJSON clears the value of the "result_json" field.
func (_u *RunStepUpdate) ClearResultJSON() *RunStepUpdate {
	_u.mutation.ClearResultJSON()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *RunStepUpdate) SetErrorMessage(v string) *RunStepUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *RunStepUpdate) SetNillableErrorMessage(v *string) *RunStepUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *RunStepUpdate) ClearErrorMessage() *RunStepUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// AddOutputIDs adds the "outputs" edge to the AgentOutput entity by IDs.
func (_u *RunStepUpdate) AddOutputIDs(ids ...string) *RunStepUpdate {
	_u.mutation.AddOutputIDs(ids...)
	return _u
}

// AddOutputs adds the "outputs" edges to the AgentOutput entity.
func (_u *RunStepUpdate) AddOutputs(v ...*AgentOutput) *RunStepUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOutputIDs(ids...)
}

// Mutation returns the RunStepMutation object of the builder.
func (_u *RunStepUpdate) Mutation() *RunStepMutation {
	return _u.mutation
}

// ClearOutputs clears all "outputs" edges to the AgentOutput entity.
func (_u *RunStepUpdate) ClearOutputs() *RunStepUpdate {
	_u.mutation.ClearOutputs()
	return _u
}

// RemoveOutputIDs removes the "outputs" edge to AgentOutput entities by IDs.
func (_u *RunStepUpdate) RemoveOutputIDs(ids ...string) *RunStepUpdate {
	_u.mutation.RemoveOutputIDs(ids...)
	return _u
}

// RemoveOutputs removes "outputs" edges to AgentOutput entities.
func (_u *RunStepUpdate) RemoveOutputs(v ...*AgentOutput) *RunStepUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOutputIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RunStepUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunStepUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RunStepUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunStepUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunStepUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := runstep.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RunStep.status": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RunStep.run"`)
	}
	return nil
}

func (_u *RunStepUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(runstep.Table, runstep.Columns, sqlgraph.NewFieldSpec(runstep.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StepIndex(); ok {
		_spec.SetField(runstep.FieldStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepIndex(); ok {
		_spec.AddField(runstep.FieldStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProtocolKey(); ok {
		_spec.SetField(runstep.FieldProtocolKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(runstep.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(runstep.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(runstep.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(runstep.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(runstep.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(runstep.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Synthesis(); ok {
		_spec.SetField(runstep.FieldSynthesis, field.TypeString, value)
	}
	if _u.mutation.SynthesisCleared() {
		_spec.ClearField(runstep.FieldSynthesis, field.TypeString)
	}
	if value, ok := _u.mutation.ResultJSON(); ok {
		_spec.SetField(runstep.FieldResultJSON, field.TypeString, value)
	}
	if _u.mutation.ResultJSONCleared() {
		_spec.ClearField(runstep.FieldResultJSON, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(runstep.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(runstep.FieldErrorMessage, field.TypeString)
	}
	if _u.mutation.OutputsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOutputsIDs(); len(nodes) > 0 && !_u.mutation.OutputsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OutputsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{runstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RunStepUpdateOne is the builder for updating a single RunStep entity.
type RunStepUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RunStepMutation
}

// SetStepIndex sets the "step_index" field.
func (_u *RunStepUpdateOne) SetStepIndex(v int) *RunStepUpdateOne {
	_u.mutation.ResetStepIndex()
	_u.mutation.SetStepIndex(v)
	return _u
}

// SetNillableStepIndex sets the "step_index" field if the given value is not nil.
func (_u *RunStepUpdateOne) SetNillableStepIndex(v *int) *RunStepUpdateOne {
	if v != nil {
		_u.SetStepIndex(*v)
	}
	return _u
}

// AddStepIndex adds value to the "step_index" field.
func (_u *RunStepUpdateOne) AddStepIndex(v int) *RunStepUpdateOne {
	_u.mutation.AddStepIndex(v)
	return _u
}

// SetProtocolKey sets the "protocol_key" field.
func (_u *RunStepUpdateOne) SetProtocolKey(v string) *RunStepUpdateOne {
	_u.mutation.SetProtocolKey(v)
	return _u
}

// SetNillableProtocolKey sets the "protocol_key" field if the given value is not nil.
func (_u *RunStepUpdateOne) SetNillableProtocolKey(v *string) *RunStepUpdateOne {
	if v != nil {
		_u.SetProtocolKey(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *RunStepUpdateOne) SetQuestion(v string) *RunStepUpdateOne {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *RunStepUpdateOne) SetNillableQuestion(v *string) *RunStepUpdateOne {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RunStepUpdateOne) SetStatus(v runstep.Status) *RunStepUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RunStepUpdateOne) SetNillableStatus(v *runstep.Status) *RunStepUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *RunStepUpdateOne) SetStartedAt(v time.Time) *RunStepUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *RunStepUpdateOne) SetNillableStartedAt(v *time.Time) *RunStepUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *RunStepUpdateOne) ClearStartedAt() *RunStepUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *RunStepUpdateOne) SetCompletedAt(v time.Time) *RunStepUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *RunStepUpdateOne) SetNillableCompletedAt(v *time.Time) *RunStepUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *RunStepUpdateOne) ClearCompletedAt() *RunStepUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetSynthesis sets the "synthesis" field.
func (_u *RunStepUpdateOne) SetSynthesis(v string) *RunStepUpdateOne {
	_u.mutation.SetSynthesis(v)
	return _u
}

// SetNillableSynthesis sets the "synthesis" field if the given value is not nil.
func (_u *RunStepUpdateOne) SetNillableSynthesis(v *string) *RunStepUpdateOne {
	if v != nil {
		_u.SetSynthesis(*v)
	}
	return _u
}

// ClearSynthesis clears the value of the "synthesis" field.
func (_u *RunStepUpdateOne) ClearSynthesis() *RunStepUpdateOne {
	_u.mutation.ClearSynthesis()
	return _u
}

// SetResultJSON sets the "result_json" field.
func (_u *RunStepUpdateOne) SetResultJSON(v string) *RunStepUpdateOne {
	_u.mutation.SetResultJSON(v)
	return _u
}

// SetNillableResultJSON sets the "result_json" field if the given value is not nil.
func (_u *RunStepUpdateOne) SetNillableResultJSON(v *string) *RunStepUpdateOne {
	if v != nil {
		_u.SetResultJSON(*v)
	}
	return _u
}

// ClearResultJSON clears the value of the "result_json" field.
func (_u *RunStepUpdateOne) ClearResultJSON() *RunStepUpdateOne {
	_u.mutation.ClearResultJSON()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *RunStepUpdateOne) SetErrorMessage(v string) *RunStepUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *RunStepUpdateOne) SetNillableErrorMessage(v *string) *RunStepUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *RunStepUpdateOne) ClearErrorMessage() *RunStepUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// AddOutputIDs adds the "outputs" edge to the AgentOutput entity by IDs.
func (_u *RunStepUpdateOne) AddOutputIDs(ids ...string) *RunStepUpdateOne {
	_u.mutation.AddOutputIDs(ids...)
	return _u
}

// AddOutputs adds the "outputs" edges to the AgentOutput entity.
func (_u *RunStepUpdateOne) AddOutputs(v ...*AgentOutput) *RunStepUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOutputIDs(ids...)
}

// Mutation returns the RunStepMutation object of the builder.
func (_u *RunStepUpdateOne) Mutation() *RunStepMutation {
	return _u.mutation
}

// ClearOutputs clears all "outputs" edges to the AgentOutput entity.
func (_u *RunStepUpdateOne) ClearOutputs() *RunStepUpdateOne {
	_u.mutation.ClearOutputs()
	return _u
}

// RemoveOutputIDs removes the "outputs" edge to AgentOutput entities by IDs.
func (_u *RunStepUpdateOne) RemoveOutputIDs(ids ...string) *RunStepUpdateOne {
	_u.mutation.RemoveOutputIDs(ids...)
	return _u
}

// RemoveOutputs removes "outputs" edges to AgentOutput entities.
func (_u *RunStepUpdateOne) RemoveOutputs(v ...*AgentOutput) *RunStepUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOutputIDs(ids...)
}

// Where appends a list predicates to the RunStepUpdate builder.
func (_u *RunStepUpdateOne) Where(ps ...predicate.RunStep) *RunStepUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RunStepUpdateOne) Select(field string, fields ...string) *RunStepUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RunStep entity.
func (_u *RunStepUpdateOne) Save(ctx context.Context) (*RunStep, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunStepUpdateOne) SaveX(ctx context.Context) *RunStep {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RunStepUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunStepUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunStepUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := runstep.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RunStep.status": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RunStep.run"`)
	}
	return nil
}

func (_u *RunStepUpdateOne) sqlSave(ctx context.Context) (_node *RunStep, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(runstep.Table, runstep.Columns, sqlgraph.NewFieldSpec(runstep.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RunStep.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, runstep.FieldID)
		for _, f := range fields {
			if !runstep.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != runstep.FieldID {
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
		_spec.SetField(runstep.FieldStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepIndex(); ok {
		_spec.AddField(runstep.FieldStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProtocolKey(); ok {
		_spec.SetField(runstep.FieldProtocolKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(runstep.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(runstep.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(runstep.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(runstep.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(runstep.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(runstep.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Synthesis(); ok {
		_spec.SetField(runstep.FieldSynthesis, field.TypeString, value)
	}
	if _u.mutation.SynthesisCleared() {
		_spec.ClearField(runstep.FieldSynthesis, field.TypeString)
	}
	if value, ok := _u.mutation.ResultJSON(); ok {
		_spec.SetField(runstep.FieldResultJSON, field.TypeString, value)
	}
	if _u.mutation.ResultJSONCleared() {
		_spec.ClearField(runstep.FieldResultJSON, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(runstep.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(runstep.FieldErrorMessage, field.TypeString)
	}
	if _u.mutation.OutputsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOutputsIDs(); len(nodes) > 0 && !_u.mutation.OutputsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OutputsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &RunStep{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{runstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
