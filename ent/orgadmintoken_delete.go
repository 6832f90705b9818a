// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/incidentfox/incidentfox/ent/orgadmintoken"
	"github.com/incidentfox/incidentfox/ent/predicate"
)

// OrgAdminTokenDelete is the builder for deleting a OrgAdminToken entity.
type OrgAdminTokenDelete struct {
	config
	hooks    []Hook
	mutation *OrgAdminTokenMutation
}

// Where appends a list predicates to the OrgAdminTokenDelete builder.
func (_d *OrgAdminTokenDelete) Where(ps ...predicate.OrgAdminToken) *OrgAdminTokenDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *OrgAdminTokenDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *OrgAdminTokenDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *OrgAdminTokenDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(orgadmintoken.Table, sqlgraph.NewFieldSpec(orgadmintoken.FieldID, field.TypeString))
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

// OrgAdminTokenDeleteOne is the builder for deleting a single OrgAdminToken entity.
type OrgAdminTokenDeleteOne struct {
	_d *OrgAdminTokenDelete
}

// Where appends a list predicates to the OrgAdminTokenDelete builder.
func (_d *OrgAdminTokenDeleteOne) Where(ps ...predicate.OrgAdminToken) *OrgAdminTokenDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *OrgAdminTokenDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{orgadmintoken.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *OrgAdminTokenDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
