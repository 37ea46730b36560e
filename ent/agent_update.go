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
	"github.com/consilium-ai/consilium/ent/agent"
	"github.com/consilium-ai/consilium/ent/predicate"
)

// AgentUpdate is the builder for updating Agent entities.
type AgentUpdate struct {
	config
	hooks    []Hook
	mutation *AgentMutation
}

// Where appends a list predicates to the AgentUpdate builder.
func (_u *AgentUpdate) Where(ps ...predicate.Agent) *AgentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *AgentUpdate) SetDisplayName(v string) *AgentUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableDisplayName(v *string) *AgentUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *AgentUpdate) SetCategory(v string) *AgentUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableCategory(v *string) *AgentUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *AgentUpdate) ClearCategory() *AgentUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetSystemPrompt sets the "system_prompt" field.
func (_u *AgentUpdate) SetSystemPrompt(v string) *AgentUpdate {
	_u.mutation.SetSystemPrompt(v)
	return _u
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableSystemPrompt(v *string) *AgentUpdate {
	if v != nil {
		_u.SetSystemPrompt(*v)
	}
	return _u
}

// SetModelID sets the "model_id" field.
func (_u *AgentUpdate) SetModelID(v string) *AgentUpdate {
	_u.mutation.SetModelID(v)
	return _u
}

// SetNillableModelID sets the "model_id" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableModelID(v *string) *AgentUpdate {
	if v != nil {
		_u.SetModelID(*v)
	}
	return _u
}

// ClearModelID clears the value of the "model_id" field.
func (_u *AgentUpdate) ClearModelID() *AgentUpdate {
	_u.mutation.ClearModelID()
	return _u
}

// SetMaxTokens sets the "max_tokens" field.
func (_u *AgentUpdate) SetMaxTokens(v int) *AgentUpdate {
	_u.mutation.ResetMaxTokens()
	_u.mutation.SetMaxTokens(v)
	return _u
}

// SetNillableMaxTokens sets the "max_tokens" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableMaxTokens(v *int) *AgentUpdate {
	if v != nil {
		_u.SetMaxTokens(*v)
	}
	return _u
}

// AddMaxTokens adds value to the "max_tokens" field.
func (_u *AgentUpdate) AddMaxTokens(v int) *AgentUpdate {
	_u.mutation.AddMaxTokens(v)
	return _u
}

// ClearMaxTokens clears the value of the "max_tokens" field.
func (_u *AgentUpdate) ClearMaxTokens() *AgentUpdate {
	_u.mutation.ClearMaxTokens()
	return _u
}

// SetTemperature sets the "temperature" field.
func (_u *AgentUpdate) SetTemperature(v float64) *AgentUpdate {
	_u.mutation.ResetTemperature()
	_u.mutation.SetTemperature(v)
	return _u
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableTemperature(v *float64) *AgentUpdate {
	if v != nil {
		_u.SetTemperature(*v)
	}
	return _u
}

// AddTemperature adds value to the "temperature" field.
func (_u *AgentUpdate) AddTemperature(v float64) *AgentUpdate {
	_u.mutation.AddTemperature(v)
	return _u
}

// ClearTemperature clears the value of the "temperature" field.
func (_u *AgentUpdate) ClearTemperature() *AgentUpdate {
	_u.mutation.ClearTemperature()
	return _u
}

// SetFrameworks sets the "frameworks" field.
func (_u *AgentUpdate) SetFrameworks(v []string) *AgentUpdate {
	_u.mutation.SetFrameworks(v)
	return _u
}

// AppendFrameworks appends value to the "frameworks" field.
func (_u *AgentUpdate) AppendFrameworks(v []string) *AgentUpdate {
	_u.mutation.AppendFrameworks(v)
	return _u
}

// ClearFrameworks clears the value of the "frameworks" field.
func (_u *AgentUpdate) ClearFrameworks() *AgentUpdate {
	_u.mutation.ClearFrameworks()
	return _u
}

// SetDeliverableTemplate sets the "deliverable_template" field.
func (_u *AgentUpdate) SetDeliverableTemplate(v string) *AgentUpdate {
	_u.mutation.SetDeliverableTemplate(v)
	return _u
}

// SetNillableDeliverableTemplate sets the "deliverable_template" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableDeliverableTemplate(v *string) *AgentUpdate {
	if v != nil {
		_u.SetDeliverableTemplate(*v)
	}
	return _u
}

// ClearDeliverableTemplate clears the value of the "deliverable_template" field.
func (_u *AgentUpdate) ClearDeliverableTemplate() *AgentUpdate {
	_u.mutation.ClearDeliverableTemplate()
	return _u
}

// SetCommunicationStyle sets the "communication_style" field.
func (_u *AgentUpdate) SetCommunicationStyle(v string) *AgentUpdate {
	_u.mutation.SetCommunicationStyle(v)
	return _u
}

// SetNillableCommunicationStyle sets the "communication_style" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableCommunicationStyle(v *string) *AgentUpdate {
	if v != nil {
		_u.SetCommunicationStyle(*v)
	}
	return _u
}

// ClearCommunicationStyle clears the value of the "communication_style" field.
func (_u *AgentUpdate) ClearCommunicationStyle() *AgentUpdate {
	_u.mutation.ClearCommunicationStyle()
	return _u
}

// SetTools sets the "tools" field.
func (_u *AgentUpdate) SetTools(v []string) *AgentUpdate {
	_u.mutation.SetTools(v)
	return _u
}

// AppendTools appends value to the "tools" field.
func (_u *AgentUpdate) AppendTools(v []string) *AgentUpdate {
	_u.mutation.AppendTools(v)
	return _u
}

// ClearTools clears the value of the "tools" field.
func (_u *AgentUpdate) ClearTools() *AgentUpdate {
	_u.mutation.ClearTools()
	return _u
}

// SetContextScope sets the "context_scope" field.
func (_u *AgentUpdate) SetContextScope(v []string) *AgentUpdate {
	_u.mutation.SetContextScope(v)
	return _u
}

// AppendContextScope appends value to the "context_scope" field.
func (_u *AgentUpdate) AppendContextScope(v []string) *AgentUpdate {
	_u.mutation.AppendContextScope(v)
	return _u
}

// ClearContextScope clears the value of the "context_scope" field.
func (_u *AgentUpdate) ClearContextScope() *AgentUpdate {
	_u.mutation.ClearContextScope()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentUpdate) SetUpdatedAt(v time.Time) *AgentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AgentMutation object of the builder.
func (_u *AgentUpdate) Mutation() *AgentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *AgentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(agent.Table, agent.Columns, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(agent.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(agent.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(agent.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.SystemPrompt(); ok {
		_spec.SetField(agent.FieldSystemPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelID(); ok {
		_spec.SetField(agent.FieldModelID, field.TypeString, value)
	}
	if _u.mutation.ModelIDCleared() {
		_spec.ClearField(agent.FieldModelID, field.TypeString)
	}
	if value, ok := _u.mutation.MaxTokens(); ok {
		_spec.SetField(agent.FieldMaxTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxTokens(); ok {
		_spec.AddField(agent.FieldMaxTokens, field.TypeInt, value)
	}
	if _u.mutation.MaxTokensCleared() {
		_spec.ClearField(agent.FieldMaxTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.Temperature(); ok {
		_spec.SetField(agent.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTemperature(); ok {
		_spec.AddField(agent.FieldTemperature, field.TypeFloat64, value)
	}
	if _u.mutation.TemperatureCleared() {
		_spec.ClearField(agent.FieldTemperature, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Frameworks(); ok {
		_spec.SetField(agent.FieldFrameworks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFrameworks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agent.FieldFrameworks, value)
		})
	}
	if _u.mutation.FrameworksCleared() {
		_spec.ClearField(agent.FieldFrameworks, field.TypeJSON)
	}
	if value, ok := _u.mutation.DeliverableTemplate(); ok {
		_spec.SetField(agent.FieldDeliverableTemplate, field.TypeString, value)
	}
	if _u.mutation.DeliverableTemplateCleared() {
		_spec.ClearField(agent.FieldDeliverableTemplate, field.TypeString)
	}
	if value, ok := _u.mutation.CommunicationStyle(); ok {
		_spec.SetField(agent.FieldCommunicationStyle, field.TypeString, value)
	}
	if _u.mutation.CommunicationStyleCleared() {
		_spec.ClearField(agent.FieldCommunicationStyle, field.TypeString)
	}
	if value, ok := _u.mutation.Tools(); ok {
		_spec.SetField(agent.FieldTools, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTools(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agent.FieldTools, value)
		})
	}
	if _u.mutation.ToolsCleared() {
		_spec.ClearField(agent.FieldTools, field.TypeJSON)
	}
	if value, ok := _u.mutation.ContextScope(); ok {
		_spec.SetField(agent.FieldContextScope, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedContextScope(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agent.FieldContextScope, value)
		})
	}
	if _u.mutation.ContextScopeCleared() {
		_spec.ClearField(agent.FieldContextScope, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agent.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentUpdateOne is the builder for updating a single Agent entity.
type AgentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentMutation
}

// SetDisplayName sets the "display_name" field.
func (_u *AgentUpdateOne) SetDisplayName(v string) *AgentUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableDisplayName(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *AgentUpdateOne) SetCategory(v string) *AgentUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableCategory(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *AgentUpdateOne) ClearCategory() *AgentUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetSystemPrompt sets the "system_prompt" field.
func (_u *AgentUpdateOne) SetSystemPrompt(v string) *AgentUpdateOne {
	_u.mutation.SetSystemPrompt(v)
	return _u
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableSystemPrompt(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetSystemPrompt(*v)
	}
	return _u
}

// SetModelID sets the "model_id" field.
func (_u *AgentUpdateOne) SetModelID(v string) *AgentUpdateOne {
	_u.mutation.SetModelID(v)
	return _u
}

// SetNillableModelID sets the "model_id" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableModelID(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetModelID(*v)
	}
	return _u
}

// ClearModelID clears the value of the "model_id" field.
func (_u *AgentUpdateOne) ClearModelID() *AgentUpdateOne {
	_u.mutation.ClearModelID()
	return _u
}

// SetMaxTokens sets the "max_tokens" field.
func (_u *AgentUpdateOne) SetMaxTokens(v int) *AgentUpdateOne {
	_u.mutation.ResetMaxTokens()
	_u.mutation.SetMaxTokens(v)
	return _u
}

// SetNillableMaxTokens sets the "max_tokens" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableMaxTokens(v *int) *AgentUpdateOne {
	if v != nil {
		_u.SetMaxTokens(*v)
	}
	return _u
}

// AddMaxTokens adds value to the "max_tokens" field.
func (_u *AgentUpdateOne) AddMaxTokens(v int) *AgentUpdateOne {
	_u.mutation.AddMaxTokens(v)
	return _u
}

// ClearMaxTokens clears the value of the "max_tokens" field.
func (_u *AgentUpdateOne) ClearMaxTokens() *AgentUpdateOne {
	_u.mutation.ClearMaxTokens()
	return _u
}

// SetTemperature sets the "temperature" field.
func (_u *AgentUpdateOne) SetTemperature(v float64) *AgentUpdateOne {
	_u.mutation.ResetTemperature()
	_u.mutation.SetTemperature(v)
	return _u
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableTemperature(v *float64) *AgentUpdateOne {
	if v != nil {
		_u.SetTemperature(*v)
	}
	return _u
}

// AddTemperature adds value to the "temperature" field.
func (_u *AgentUpdateOne) AddTemperature(v float64) *AgentUpdateOne {
	_u.mutation.AddTemperature(v)
	return _u
}

// ClearTemperature clears the value of the "temperature" field.
func (_u *AgentUpdateOne) ClearTemperature() *AgentUpdateOne {
	_u.mutation.ClearTemperature()
	return _u
}

// SetFrameworks sets the "frameworks" field.
func (_u *AgentUpdateOne) SetFrameworks(v []string) *AgentUpdateOne {
	_u.mutation.SetFrameworks(v)
	return _u
}

// AppendFrameworks appends value to the "frameworks" field.
func (_u *AgentUpdateOne) AppendFrameworks(v []string) *AgentUpdateOne {
	_u.mutation.AppendFrameworks(v)
	return _u
}

// ClearFrameworks clears the value of the "frameworks" field.
func (_u *AgentUpdateOne) ClearFrameworks() *AgentUpdateOne {
	_u.mutation.ClearFrameworks()
	return _u
}

// SetDeliverableTemplate sets the "deliverable_template" field.
func (_u *AgentUpdateOne) SetDeliverableTemplate(v string) *AgentUpdateOne {
	_u.mutation.SetDeliverableTemplate(v)
	return _u
}

// SetNillableDeliverableTemplate sets the "deliverable_template" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableDeliverableTemplate(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetDeliverableTemplate(*v)
	}
	return _u
}

// ClearDeliverableTemplate clears the value of the "deliverable_template" field.
func (_u *AgentUpdateOne) ClearDeliverableTemplate() *AgentUpdateOne {
	_u.mutation.ClearDeliverableTemplate()
	return _u
}

// SetCommunicationStyle sets the "communication_style" field.
func (_u *AgentUpdateOne) SetCommunicationStyle(v string) *AgentUpdateOne {
	_u.mutation.SetCommunicationStyle(v)
	return _u
}

// SetNillableCommunicationStyle sets the "communication_style" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableCommunicationStyle(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetCommunicationStyle(*v)
	}
	return _u
}

// ClearCommunicationStyle clears the value of the "communication_style" field.
func (_u *AgentUpdateOne) ClearCommunicationStyle() *AgentUpdateOne {
	_u.mutation.ClearCommunicationStyle()
	return _u
}

// SetTools sets the "tools" field.
func (_u *AgentUpdateOne) SetTools(v []string) *AgentUpdateOne {
	_u.mutation.SetTools(v)
	return _u
}

// AppendTools appends value to the "tools" field.
func (_u *AgentUpdateOne) AppendTools(v []string) *AgentUpdateOne {
	_u.mutation.AppendTools(v)
	return _u
}

// ClearTools clears the value of the "tools" field.
func (_u *AgentUpdateOne) ClearTools() *AgentUpdateOne {
	_u.mutation.ClearTools()
	return _u
}

// SetContextScope sets the "context_scope" field.
func (_u *AgentUpdateOne) SetContextScope(v []string) *AgentUpdateOne {
	_u.mutation.SetContextScope(v)
	return _u
}

// AppendContextScope appends value to the "context_scope" field.
func (_u *AgentUpdateOne) AppendContextScope(v []string) *AgentUpdateOne {
	_u.mutation.AppendContextScope(v)
	return _u
}

// ClearContextScope clears the value of the "context_scope" field.
func (_u *AgentUpdateOne) ClearContextScope() *AgentUpdateOne {
	_u.mutation.ClearContextScope()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentUpdateOne) SetUpdatedAt(v time.Time) *AgentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AgentMutation object of the builder.
func (_u *AgentUpdateOne) Mutation() *AgentMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentUpdate builder.
func (_u *AgentUpdateOne) Where(ps ...predicate.Agent) *AgentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentUpdateOne) Select(field string, fields ...string) *AgentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Agent entity.
func (_u *AgentUpdateOne) Save(ctx context.Context) (*Agent, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentUpdateOne) SaveX(ctx context.Context) *Agent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *AgentUpdateOne) sqlSave(ctx context.Context) (_node *Agent, err error) {
	_spec := sqlgraph.NewUpdateSpec(agent.Table, agent.Columns, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Agent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agent.FieldID)
		for _, f := range fields {
			if !agent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agent.FieldID {
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
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(agent.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(agent.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(agent.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.SystemPrompt(); ok {
		_spec.SetField(agent.FieldSystemPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelID(); ok {
		_spec.SetField(agent.FieldModelID, field.TypeString, value)
	}
	if _u.mutation.ModelIDCleared() {
		_spec.ClearField(agent.FieldModelID, field.TypeString)
	}
	if value, ok := _u.mutation.MaxTokens(); ok {
		_spec.SetField(agent.FieldMaxTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxTokens(); ok {
		_spec.AddField(agent.FieldMaxTokens, field.TypeInt, value)
	}
	if _u.mutation.MaxTokensCleared() {
		_spec.ClearField(agent.FieldMaxTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.Temperature(); ok {
		_spec.SetField(agent.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTemperature(); ok {
		_spec.AddField(agent.FieldTemperature, field.TypeFloat64, value)
	}
	if _u.mutation.TemperatureCleared() {
		_spec.ClearField(agent.FieldTemperature, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Frameworks(); ok {
		_spec.SetField(agent.FieldFrameworks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFrameworks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agent.FieldFrameworks, value)
		})
	}
	if _u.mutation.FrameworksCleared() {
		_spec.ClearField(agent.FieldFrameworks, field.TypeJSON)
	}
	if value, ok := _u.mutation.DeliverableTemplate(); ok {
		_spec.SetField(agent.FieldDeliverableTemplate, field.TypeString, value)
	}
	if _u.mutation.DeliverableTemplateCleared() {
		_spec.ClearField(agent.FieldDeliverableTemplate, field.TypeString)
	}
	if value, ok := _u.mutation.CommunicationStyle(); ok {
		_spec.SetField(agent.FieldCommunicationStyle, field.TypeString, value)
	}
	if _u.mutation.CommunicationStyleCleared() {
		_spec.ClearField(agent.FieldCommunicationStyle, field.TypeString)
	}
	if value, ok := _u.mutation.Tools(); ok {
		_spec.SetField(agent.FieldTools, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTools(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agent.FieldTools, value)
		})
	}
	if _u.mutation.ToolsCleared() {
		_spec.ClearField(agent.FieldTools, field.TypeJSON)
	}
	if value, ok := _u.mutation.ContextScope(); ok {
		_spec.SetField(agent.FieldContextScope, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedContextScope(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agent.FieldContextScope, value)
		})
	}
	if _u.mutation.ContextScopeCleared() {
		_spec.ClearField(agent.FieldContextScope, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agent.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Agent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
