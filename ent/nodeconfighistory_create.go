// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/incidentfox/incidentfox/ent/nodeconfighistory"
)

// NodeConfigHistoryCreate is the builder for creating a NodeConfigHistory entity.
type NodeConfigHistoryCreate struct {
	config
	mutation *NodeConfigHistoryMutation
	hooks    []Hook
}

// SetOrgID sets the "org_id" field.
func (_c *NodeConfigHistoryCreate) SetOrgID(v string) *NodeConfigHistoryCreate {
	_c.mutation.SetOrgID(v)
	return _c
}

// SetNodeID sets the "node_id" field.
func (_c *NodeConfigHistoryCreate) SetNodeID(v string) *NodeConfigHistoryCreate {
	_c.mutation.SetNodeID(v)
	return _c
}

// SetConfig sets the "config" field.
func (_c *NodeConfigHistoryCreate) SetConfig(v map[string]interface{}) *NodeConfigHistoryCreate {
	_c.mutation.SetConfig(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *NodeConfigHistoryCreate) SetVersion(v int) *NodeConfigHistoryCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetRecordedAt sets the "recorded_at" field.
func (_c *NodeConfigHistoryCreate) SetRecordedAt(v time.Time) *NodeConfigHistoryCreate {
	_c.mutation.SetRecordedAt(v)
	return _c
}

// SetNillableRecordedAt sets the "recorded_at" field if the given value is not nil.
func (_c *NodeConfigHistoryCreate) SetNillableRecordedAt(v *time.Time) *NodeConfigHistoryCreate {
	if v != nil {
		_c.SetRecordedAt(*v)
	}
	return _c
}

// SetUpdatedBy sets the "updated_by" field.
func (_c *NodeConfigHistoryCreate) SetUpdatedBy(v string) *NodeConfigHistoryCreate {
	_c.mutation.SetUpdatedBy(v)
	return _c
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_c *NodeConfigHistoryCreate) SetNillableUpdatedBy(v *string) *NodeConfigHistoryCreate {
	if v != nil {
		_c.SetUpdatedBy(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *NodeConfigHistoryCreate) SetID(v string) *NodeConfigHistoryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the NodeConfigHistoryMutation object of the builder.
func (_c *NodeConfigHistoryCreate) Mutation() *NodeConfigHistoryMutation {
	return _c.mutation
}

// Save creates the NodeConfigHistory in the database.
func (_c *NodeConfigHistoryCreate) Save(ctx context.Context) (*NodeConfigHistory, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *NodeConfigHistoryCreate) SaveX(ctx context.Context) *NodeConfigHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NodeConfigHistoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NodeConfigHistoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *NodeConfigHistoryCreate) defaults() {
	if _, ok := _c.mutation.RecordedAt(); !ok {
		v := nodeconfighistory.DefaultRecordedAt()
		_c.mutation.SetRecordedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *NodeConfigHistoryCreate) check() error {
	if _, ok := _c.mutation.OrgID(); !ok {
		return &ValidationError{Name: "org_id", err: errors.New(`ent: missing required field "NodeConfigHistory.org_id"`)}
	}
	if _, ok := _c.mutation.NodeID(); !ok {
		return &ValidationError{Name: "node_id", err: errors.New(`ent: missing required field "NodeConfigHistory.node_id"`)}
	}
	if _, ok := _c.mutation.Config(); !ok {
		return &ValidationError{Name: "config", err: errors.New(`ent: missing required field "NodeConfigHistory.config"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "NodeConfigHistory.version"`)}
	}
	if _, ok := _c.mutation.RecordedAt(); !ok {
		return &ValidationError{Name: "recorded_at", err: errors.New(`ent: missing required field "NodeConfigHistory.recorded_at"`)}
	}
	return nil
}

func (_c *NodeConfigHistoryCreate) sqlSave(ctx context.Context) (*NodeConfigHistory, error) {
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
			return nil, fmt.Errorf("unexpected NodeConfigHistory.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *NodeConfigHistoryCreate) createSpec() (*NodeConfigHistory, *sqlgraph.CreateSpec) {
	var (
		_node = &NodeConfigHistory{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(nodeconfighistory.Table, sqlgraph.NewFieldSpec(nodeconfighistory.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OrgID(); ok {
		_spec.SetField(nodeconfighistory.FieldOrgID, field.TypeString, value)
		_node.OrgID = value
	}
	if value, ok := _c.mutation.NodeID(); ok {
		_spec.SetField(nodeconfighistory.FieldNodeID, field.TypeString, value)
		_node.NodeID = value
	}
	if value, ok := _c.mutation.Config(); ok {
		_spec.SetField(nodeconfighistory.FieldConfig, field.TypeJSON, value)
		_node.Config = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(nodeconfighistory.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.RecordedAt(); ok {
		_spec.SetField(nodeconfighistory.FieldRecordedAt, field.TypeTime, value)
		_node.RecordedAt = value
	}
	if value, ok := _c.mutation.UpdatedBy(); ok {
		_spec.SetField(nodeconfighistory.FieldUpdatedBy, field.TypeString, value)
		_node.UpdatedBy = value
	}
	return _node, _spec
}

// NodeConfigHistoryCreateBulk is the builder for creating many NodeConfigHistory entities in bulk.
type NodeConfigHistoryCreateBulk struct {
	config
	err      error
	builders []*NodeConfigHistoryCreate
}

// Save creates the NodeConfigHistory entities in the database.
func (_c *NodeConfigHistoryCreateBulk) Save(ctx context.Context) ([]*NodeConfigHistory, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*NodeConfigHistory, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*NodeConfigHistoryMutation)
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
func (_c *NodeConfigHistoryCreateBulk) SaveX(ctx context.Context) []*NodeConfigHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NodeConfigHistoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NodeConfigHistoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
