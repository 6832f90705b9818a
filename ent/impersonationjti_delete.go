// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/incidentfox/incidentfox/ent/impersonationjti"
	"github.com/incidentfox/incidentfox/ent/predicate"
)

// ImpersonationJTIDelete is the builder for deleting a ImpersonationJTI entity.
type ImpersonationJTIDelete struct {
	config
	hooks    []Hook
	mutation *ImpersonationJTIMutation
}

// Where appends a list predicates to the ImpersonationJTIDelete builder.
func (_d *ImpersonationJTIDelete) Where(ps ...predicate.ImpersonationJTI) *ImpersonationJTIDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ImpersonationJTIDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ImpersonationJTIDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ImpersonationJTIDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(impersonationjti.Table, sqlgraph.NewFieldSpec(impersonationjti.FieldID, field.TypeString))
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

// ImpersonationJTIDeleteOne is the builder for deleting a single ImpersonationJTI entity.
type ImpersonationJTIDeleteOne struct {
	_d *ImpersonationJTIDelete
}

// Where appends a list predicates to the ImpersonationJTIDelete builder.
func (_d *ImpersonationJTIDeleteOne) Where(ps ...predicate.ImpersonationJTI) *ImpersonationJTIDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ImpersonationJTIDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{impersonationjti.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ImpersonationJTIDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
