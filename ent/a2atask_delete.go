// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/incidentfox/incidentfox/ent/a2atask"
	"github.com/incidentfox/incidentfox/ent/predicate"
)

// A2ATaskDelete is the builder for deleting a A2ATask entity.
type A2ATaskDelete struct {
	config
	hooks    []Hook
	mutation *A2ATaskMutation
}

// Where appends a list predicates to the A2ATaskDelete builder.
func (_d *A2ATaskDelete) Where(ps ...predicate.A2ATask) *A2ATaskDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *A2ATaskDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *A2ATaskDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *A2ATaskDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(a2atask.Table, sqlgraph.NewFieldSpec(a2atask.FieldID, field.TypeString))
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

// A2ATaskDeleteOne is the builder for deleting a single A2ATask entity.
type A2ATaskDeleteOne struct {
	_d *A2ATaskDelete
}

// Where appends a list predicates to the A2ATaskDelete builder.
func (_d *A2ATaskDeleteOne) Where(ps ...predicate.A2ATask) *A2ATaskDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *A2ATaskDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{a2atask.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *A2ATaskDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
