// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/incidentfox/incidentfox/ent/orgnode"
)

// OrgNodeCreate is the builder for creating a OrgNode entity.
type OrgNodeCreate struct {
	config
	mutation *OrgNodeMutation
	hooks    []Hook
}

// SetOrgID sets the "org_id" field.
func (_c *OrgNodeCreate) SetOrgID(v string) *OrgNodeCreate {
	_c.mutation.SetOrgID(v)
	return _c
}

// SetNodeID sets the "node_id" field.
func (_c *OrgNodeCreate) SetNodeID(v string) *OrgNodeCreate {
	_c.mutation.SetNodeID(v)
	return _c
}

// SetParentID sets the "parent_id" field.
func (_c *OrgNodeCreate) SetParentID(v string) *OrgNodeCreate {
	_c.mutation.SetParentID(v)
	return _c
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_c *OrgNodeCreate) SetNillableParentID(v *string) *OrgNodeCreate {
	if v != nil {
		_c.SetParentID(*v)
	}
	return _c
}

// SetKind sets the "kind" field.
func (_c *OrgNodeCreate) SetKind(v orgnode.Kind) *OrgNodeCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetName sets the "name" field.
func (_c *OrgNodeCreate) SetName(v string) *OrgNodeCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDepth sets the "depth" field.
func (_c *OrgNodeCreate) SetDepth(v int) *OrgNodeCreate {
	_c.mutation.SetDepth(v)
	return _c
}

// SetNillableDepth sets the "depth" field if the given value is not nil.
func (_c *OrgNodeCreate) SetNillableDepth(v *int) *OrgNodeCreate {
	if v != nil {
		_c.SetDepth(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *OrgNodeCreate) SetCreatedAt(v time.Time) *OrgNodeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OrgNodeCreate) SetNillableCreatedAt(v *time.Time) *OrgNodeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *OrgNodeCreate) SetID(v string) *OrgNodeCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the OrgNodeMutation object of the builder.
func (_c *OrgNodeCreate) Mutation() *OrgNodeMutation {
	return _c.mutation
}

// Save creates the OrgNode in the database.
func (_c *OrgNodeCreate) Save(ctx context.Context) (*OrgNode, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OrgNodeCreate) SaveX(ctx context.Context) *OrgNode {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrgNodeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrgNodeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OrgNodeCreate) defaults() {
	if _, ok := _c.mutation.Depth(); !ok {
		v := orgnode.DefaultDepth
		_c.mutation.SetDepth(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := orgnode.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OrgNodeCreate) check() error {
	if _, ok := _c.mutation.OrgID(); !ok {
		return &ValidationError{Name: "org_id", err: errors.New(`ent: missing required field "OrgNode.org_id"`)}
	}
	if _, ok := _c.mutation.NodeID(); !ok {
		return &ValidationError{Name: "node_id", err: errors.New(`ent: missing required field "OrgNode.node_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "OrgNode.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := orgnode.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "OrgNode.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "OrgNode.name"`)}
	}
	if _, ok := _c.mutation.Depth(); !ok {
		return &ValidationError{Name: "depth", err: errors.New(`ent: missing required field "OrgNode.depth"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "OrgNode.created_at"`)}
	}
	return nil
}

func (_c *OrgNodeCreate) sqlSave(ctx context.Context) (*OrgNode, error) {
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
			return nil, fmt.Errorf("unexpected OrgNode.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *OrgNodeCreate) createSpec() (*OrgNode, *sqlgraph.CreateSpec) {
	var (
		_node = &OrgNode{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(orgnode.Table, sqlgraph.NewFieldSpec(orgnode.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OrgID(); ok {
		_spec.SetField(orgnode.FieldOrgID, field.TypeString, value)
		_node.OrgID = value
	}
	if value, ok := _c.mutation.NodeID(); ok {
		_spec.SetField(orgnode.FieldNodeID, field.TypeString, value)
		_node.NodeID = value
	}
	if value, ok := _c.mutation.ParentID(); ok {
		_spec.SetField(orgnode.FieldParentID, field.TypeString, value)
		_node.ParentID = &value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(orgnode.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(orgnode.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Depth(); ok {
		_spec.SetField(orgnode.FieldDepth, field.TypeInt, value)
		_node.Depth = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(orgnode.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OrgNodeCreateBulk is the builder for creating many OrgNode entities in bulk.
type OrgNodeCreateBulk struct {
	config
	err      error
	builders []*OrgNodeCreate
}

// Save creates the OrgNode entities in the database.
func (_c *OrgNodeCreateBulk) Save(ctx context.Context) ([]*OrgNode, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OrgNode, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OrgNodeMutation)
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
func (_c *OrgNodeCreateBulk) SaveX(ctx context.Context) []*OrgNode {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrgNodeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrgNodeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
