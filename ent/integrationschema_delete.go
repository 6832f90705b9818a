// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/incidentfox/incidentfox/ent/integrationschema"
	"github.com/incidentfox/incidentfox/ent/predicate"
)

// IntegrationSchemaDelete is the builder for deleting a IntegrationSchema entity.
type IntegrationSchemaDelete struct {
	config
	hooks    []Hook
	mutation *IntegrationSchemaMutation
}

// Where appends a list predicates to the IntegrationSchemaDelete builder.
func (_d *IntegrationSchemaDelete) Where(ps ...predicate.IntegrationSchema) *IntegrationSchemaDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *IntegrationSchemaDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *IntegrationSchemaDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *IntegrationSchemaDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(integrationschema.Table, sqlgraph.NewFieldSpec(integrationschema.FieldID, field.TypeString))
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

// IntegrationSchemaDeleteOne is the builder for deleting a single IntegrationSchema entity.
type IntegrationSchemaDeleteOne struct {
	_d *IntegrationSchemaDelete
}

// Where appends a list predicates to the IntegrationSchemaDelete builder.
func (_d *IntegrationSchemaDeleteOne) Where(ps ...predicate.IntegrationSchema) *IntegrationSchemaDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *IntegrationSchemaDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{integrationschema.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *IntegrationSchemaDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
