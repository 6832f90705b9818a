// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/incidentfox/incidentfox/ent/predicate"
	"github.com/incidentfox/incidentfox/ent/provisioningrun"
)

// ProvisioningRunDelete is the builder for deleting a ProvisioningRun entity.
type ProvisioningRunDelete struct {
	config
	hooks    []Hook
	mutation *ProvisioningRunMutation
}

// Where appends a list predicates to the ProvisioningRunDelete builder.
func (_d *ProvisioningRunDelete) Where(ps ...predicate.ProvisioningRun) *ProvisioningRunDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ProvisioningRunDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ProvisioningRunDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ProvisioningRunDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(provisioningrun.Table, sqlgraph.NewFieldSpec(provisioningrun.FieldID, field.TypeString))
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

// ProvisioningRunDeleteOne is the builder for deleting a single ProvisioningRun entity.
type ProvisioningRunDeleteOne struct {
	_d *ProvisioningRunDelete
}

// Where appends a list predicates to the ProvisioningRunDelete builder.
func (_d *ProvisioningRunDeleteOne) Where(ps ...predicate.ProvisioningRun) *ProvisioningRunDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ProvisioningRunDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{provisioningrun.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ProvisioningRunDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
