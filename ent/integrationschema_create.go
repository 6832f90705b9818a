// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/incidentfox/incidentfox/ent/integrationschema"
)

// IntegrationSchemaCreate is the builder for creating a IntegrationSchema entity.
type IntegrationSchemaCreate struct {
	config
	mutation *IntegrationSchemaMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *IntegrationSchemaCreate) SetName(v string) *IntegrationSchemaCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *IntegrationSchemaCreate) SetCategory(v string) *IntegrationSchemaCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetFields sets the "fields" field.
func (_c *IntegrationSchemaCreate) SetFields(v []map[string]interface{}) *IntegrationSchemaCreate {
	_c.mutation.SetFields(v)
	return _c
}

// SetID sets the "id" field.
func (_c *IntegrationSchemaCreate) SetID(v string) *IntegrationSchemaCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the IntegrationSchemaMutation object of the builder.
func (_c *IntegrationSchemaCreate) Mutation() *IntegrationSchemaMutation {
	return _c.mutation
}

// Save creates the IntegrationSchema in the database.
func (_c *IntegrationSchemaCreate) Save(ctx context.Context) (*IntegrationSchema, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IntegrationSchemaCreate) SaveX(ctx context.Context) *IntegrationSchema {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IntegrationSchemaCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IntegrationSchemaCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IntegrationSchemaCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "IntegrationSchema.name"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "IntegrationSchema.category"`)}
	}
	if _, ok := _c.mutation.GetFields(); !ok {
		return &ValidationError{Name: "fields", err: errors.New(`ent: missing required field "IntegrationSchema.fields"`)}
	}
	return nil
}

func (_c *IntegrationSchemaCreate) sqlSave(ctx context.Context) (*IntegrationSchema, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected IntegrationSchema.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *IntegrationSchemaCreate) createSpec() (*IntegrationSchema, *sqlgraph.CreateSpec) {
	var (
		_node = &IntegrationSchema{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(integrationschema.Table, sqlgraph.NewFieldSpec(integrationschema.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(integrationschema.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(integrationschema.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.GetFields(); ok {
		_spec.SetField(integrationschema.FieldFields, field.TypeJSON, value)
		_node.Fields = value
	}
	return _node, _spec
}

// IntegrationSchemaCreateBulk is the builder for creating many IntegrationSchema entities in bulk.
type IntegrationSchemaCreateBulk struct {
	config
	err      error
	builders []*IntegrationSchemaCreate
}

// Save creates the IntegrationSchema entities in the database.
func (_c *IntegrationSchemaCreateBulk) Save(ctx context.Context) ([]*IntegrationSchema, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*IntegrationSchema, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IntegrationSchemaMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *IntegrationSchemaCreateBulk) SaveX(ctx context.Context) []*IntegrationSchema {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IntegrationSchemaCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IntegrationSchemaCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
