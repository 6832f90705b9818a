// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/incidentfox/incidentfox/ent/integrationschema"
	"github.com/incidentfox/incidentfox/ent/predicate"
)

// IntegrationSchemaUpdate is the builder for updating IntegrationSchema entities.
type IntegrationSchemaUpdate struct {
	config
	hooks    []Hook
	mutation *IntegrationSchemaMutation
}

// Where appends a list predicates to the IntegrationSchemaUpdate builder.
func (_u *IntegrationSchemaUpdate) Where(ps ...predicate.IntegrationSchema) *IntegrationSchemaUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *IntegrationSchemaUpdate) SetName(v string) *IntegrationSchemaUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *IntegrationSchemaUpdate) SetNillableName(v *string) *IntegrationSchemaUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *IntegrationSchemaUpdate) SetCategory(v string) *IntegrationSchemaUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *IntegrationSchemaUpdate) SetNillableCategory(v *string) *IntegrationSchemaUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetFields sets the "fields" field.
func (_u *IntegrationSchemaUpdate) SetFields(v []map[string]interface{}) *IntegrationSchemaUpdate {
	_u.mutation.SetFields(v)
	return _u
}

// AppendFields appends value to the "fields" field.
func (_u *IntegrationSchemaUpdate) AppendFields(v []map[string]interface{}) *IntegrationSchemaUpdate {
	_u.mutation.AppendFields(v)
	return _u
}

// Mutation returns the IntegrationSchemaMutation object of the builder.
func (_u *IntegrationSchemaUpdate) Mutation() *IntegrationSchemaMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IntegrationSchemaUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IntegrationSchemaUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IntegrationSchemaUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IntegrationSchemaUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *IntegrationSchemaUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(integrationschema.Table, integrationschema.Columns, sqlgraph.NewFieldSpec(integrationschema.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(integrationschema.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(integrationschema.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetFields(); ok {
		_spec.SetField(integrationschema.FieldFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, integrationschema.FieldFields, value)
		})
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{integrationschema.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IntegrationSchemaUpdateOne is the builder for updating a single IntegrationSchema entity.
type IntegrationSchemaUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IntegrationSchemaMutation
}

// SetName sets the "name" field.
func (_u *IntegrationSchemaUpdateOne) SetName(v string) *IntegrationSchemaUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *IntegrationSchemaUpdateOne) SetNillableName(v *string) *IntegrationSchemaUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *IntegrationSchemaUpdateOne) SetCategory(v string) *IntegrationSchemaUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *IntegrationSchemaUpdateOne) SetNillableCategory(v *string) *IntegrationSchemaUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetFields sets the "fields" field.
func (_u *IntegrationSchemaUpdateOne) SetFields(v []map[string]interface{}) *IntegrationSchemaUpdateOne {
	_u.mutation.SetFields(v)
	return _u
}

// AppendFields appends value to the "fields" field.
func (_u *IntegrationSchemaUpdateOne) AppendFields(v []map[string]interface{}) *IntegrationSchemaUpdateOne {
	_u.mutation.AppendFields(v)
	return _u
}

// Mutation returns the IntegrationSchemaMutation object of the builder.
func (_u *IntegrationSchemaUpdateOne) Mutation() *IntegrationSchemaMutation {
	return _u.mutation
}

// Where appends a list predicates to the IntegrationSchemaUpdate builder.
func (_u *IntegrationSchemaUpdateOne) Where(ps ...predicate.IntegrationSchema) *IntegrationSchemaUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IntegrationSchemaUpdateOne) Select(field string, fields ...string) *IntegrationSchemaUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated IntegrationSchema entity.
func (_u *IntegrationSchemaUpdateOne) Save(ctx context.Context) (*IntegrationSchema, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IntegrationSchemaUpdateOne) SaveX(ctx context.Context) *IntegrationSchema {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IntegrationSchemaUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IntegrationSchemaUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *IntegrationSchemaUpdateOne) sqlSave(ctx context.Context) (_node *IntegrationSchema, err error) {
	_spec := sqlgraph.NewUpdateSpec(integrationschema.Table, integrationschema.Columns, sqlgraph.NewFieldSpec(integrationschema.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "IntegrationSchema.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, integrationschema.FieldID)
		for _, f := range fields {
			if !integrationschema.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != integrationschema.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(integrationschema.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(integrationschema.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetFields(); ok {
		_spec.SetField(integrationschema.FieldFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, integrationschema.FieldFields, value)
		})
	}
	_node = &IntegrationSchema{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{integrationschema.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
