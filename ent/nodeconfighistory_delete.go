// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/incidentfox/incidentfox/ent/nodeconfighistory"
	"github.com/incidentfox/incidentfox/ent/predicate"
)

// NodeConfigHistoryDelete is the builder for deleting a NodeConfigHistory entity.
type NodeConfigHistoryDelete struct {
	config
	hooks    []Hook
	mutation *NodeConfigHistoryMutation
}

// Where appends a list predicates to the NodeConfigHistoryDelete builder.
func (_d *NodeConfigHistoryDelete) Where(ps ...predicate.NodeConfigHistory) *NodeConfigHistoryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *NodeConfigHistoryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *NodeConfigHistoryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *NodeConfigHistoryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(nodeconfighistory.Table, sqlgraph.NewFieldSpec(nodeconfighistory.FieldID, field.TypeString))
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

// NodeConfigHistoryDeleteOne is the builder for deleting a single NodeConfigHistory entity.
type NodeConfigHistoryDeleteOne struct {
	_d *NodeConfigHistoryDelete
}

// Where appends a list predicates to the NodeConfigHistoryDelete builder.
func (_d *NodeConfigHistoryDeleteOne) Where(ps ...predicate.NodeConfigHistory) *NodeConfigHistoryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *NodeConfigHistoryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{nodeconfighistory.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *NodeConfigHistoryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
