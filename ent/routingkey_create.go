// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/incidentfox/incidentfox/ent/routingkey"
)

// RoutingKeyCreate is the builder for creating a RoutingKey entity.
type RoutingKeyCreate struct {
	config
	mutation *RoutingKeyMutation
	hooks    []Hook
}

// SetSource sets the "source" field.
func (_c *RoutingKeyCreate) SetSource(v routingkey.Source) *RoutingKeyCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetKey sets the "key" field.
func (_c *RoutingKeyCreate) SetKey(v string) *RoutingKeyCreate {
	_c.mutation.SetKey(v)
	return _c
}

// SetOrgID sets the "org_id" field.
func (_c *RoutingKeyCreate) SetOrgID(v string) *RoutingKeyCreate {
	_c.mutation.SetOrgID(v)
	return _c
}

// SetTeamNodeID sets the "team_node_id" field.
func (_c *RoutingKeyCreate) SetTeamNodeID(v string) *RoutingKeyCreate {
	_c.mutation.SetTeamNodeID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RoutingKeyCreate) SetCreatedAt(v time.Time) *RoutingKeyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RoutingKeyCreate) SetNillableCreatedAt(v *time.Time) *RoutingKeyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RoutingKeyCreate) SetID(v string) *RoutingKeyCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the RoutingKeyMutation object of the builder.
func (_c *RoutingKeyCreate) Mutation() *RoutingKeyMutation {
	return _c.mutation
}

// Save creates the RoutingKey in the database.
func (_c *RoutingKeyCreate) Save(ctx context.Context) (*RoutingKey, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RoutingKeyCreate) SaveX(ctx context.Context) *RoutingKey {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoutingKeyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoutingKeyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RoutingKeyCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := routingkey.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RoutingKeyCreate) check() error {
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "RoutingKey.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := routingkey.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "RoutingKey.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Key(); !ok {
		return &ValidationError{Name: "key", err: errors.New(`ent: missing required field "RoutingKey.key"`)}
	}
	if _, ok := _c.mutation.OrgID(); !ok {
		return &ValidationError{Name: "org_id", err: errors.New(`ent: missing required field "RoutingKey.org_id"`)}
	}
	if _, ok := _c.mutation.TeamNodeID(); !ok {
		return &ValidationError{Name: "team_node_id", err: errors.New(`ent: missing required field "RoutingKey.team_node_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RoutingKey.created_at"`)}
	}
	return nil
}

func (_c *RoutingKeyCreate) sqlSave(ctx context.Context) (*RoutingKey, error) {
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
			return nil, fmt.Errorf("unexpected RoutingKey.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RoutingKeyCreate) createSpec() (*RoutingKey, *sqlgraph.CreateSpec) {
	var (
		_node = &RoutingKey{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(routingkey.Table, sqlgraph.NewFieldSpec(routingkey.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(routingkey.FieldSource, field.TypeEnum, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Key(); ok {
		_spec.SetField(routingkey.FieldKey, field.TypeString, value)
		_node.Key = value
	}
	if value, ok := _c.mutation.OrgID(); ok {
		_spec.SetField(routingkey.FieldOrgID, field.TypeString, value)
		_node.OrgID = value
	}
	if value, ok := _c.mutation.TeamNodeID(); ok {
		_spec.SetField(routingkey.FieldTeamNodeID, field.TypeString, value)
		_node.TeamNodeID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(routingkey.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// RoutingKeyCreateBulk is the builder for creating many RoutingKey entities in bulk.
type RoutingKeyCreateBulk struct {
	config
	err      error
	builders []*RoutingKeyCreate
}

// Save creates the RoutingKey entities in the database.
func (_c *RoutingKeyCreateBulk) Save(ctx context.Context) ([]*RoutingKey, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RoutingKey, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RoutingKeyMutation)
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
func (_c *RoutingKeyCreateBulk) SaveX(ctx context.Context) []*RoutingKey {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoutingKeyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoutingKeyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
