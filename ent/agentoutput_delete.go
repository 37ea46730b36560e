// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/consilium-ai/consilium/ent/agentoutput"
	"github.com/consilium-ai/consilium/ent/predicate"
)

// AgentOutputDelete is the builder for deleting a AgentOutput entity.
type AgentOutputDelete struct {
	config
	hooks    []Hook
	mutation *AgentOutputMutation
}

// Where appends a list predicates to the AgentOutputDelete builder.
func (_d *AgentOutputDelete) Where(ps ...predicate.AgentOutput) *AgentOutputDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AgentOutputDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AgentOutputDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AgentOutputDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(agentoutput.Table, sqlgraph.NewFieldSpec(agentoutput.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// AgentOutputDeleteOne is the builder for deleting a single AgentOutput entity.
type AgentOutputDeleteOne struct {
	_d *AgentOutputDelete
}

// Where appends a list predicates to the AgentOutputDelete builder.
func (_d *AgentOutputDeleteOne) Where(ps ...predicate.AgentOutput) *AgentOutputDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AgentOutputDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{agentoutput.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AgentOutputDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
