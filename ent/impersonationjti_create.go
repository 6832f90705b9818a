// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/incidentfox/incidentfox/ent/impersonationjti"
)

// ImpersonationJTICreate is the builder for creating a ImpersonationJTI entity.
type ImpersonationJTICreate struct {
	config
	mutation *ImpersonationJTIMutation
	hooks    []Hook
}

// SetOrgID sets the "org_id" field.
func (_c *ImpersonationJTICreate) SetOrgID(v string) *ImpersonationJTICreate {
	_c.mutation.SetOrgID(v)
	return _c
}

// SetTeamNodeID sets the "team_node_id" field.
func (_c *ImpersonationJTICreate) SetTeamNodeID(v string) *ImpersonationJTICreate {
	_c.mutation.SetTeamNodeID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ImpersonationJTICreate) SetCreatedAt(v time.Time) *ImpersonationJTICreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ImpersonationJTICreate) SetNillableCreatedAt(v *time.Time) *ImpersonationJTICreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *ImpersonationJTICreate) SetExpiresAt(v time.Time) *ImpersonationJTICreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ImpersonationJTICreate) SetID(v string) *ImpersonationJTICreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ImpersonationJTIMutation object of the builder.
func (_c *ImpersonationJTICreate) Mutation() *ImpersonationJTIMutation {
	return _c.mutation
}

// Save creates the ImpersonationJTI in the database.
func (_c *ImpersonationJTICreate) Save(ctx context.Context) (*ImpersonationJTI, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ImpersonationJTICreate) SaveX(ctx context.Context) *ImpersonationJTI {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ImpersonationJTICreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ImpersonationJTICreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ImpersonationJTICreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := impersonationjti.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ImpersonationJTICreate) check() error {
	if _, ok := _c.mutation.OrgID(); !ok {
		return &ValidationError{Name: "org_id", err: errors.New(`ent: missing required field "ImpersonationJTI.org_id"`)}
	}
	if _, ok := _c.mutation.TeamNodeID(); !ok {
		return &ValidationError{Name: "team_node_id", err: errors.New(`ent: missing required field "ImpersonationJTI.team_node_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ImpersonationJTI.created_at"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "ImpersonationJTI.expires_at"`)}
	}
	return nil
}

func (_c *ImpersonationJTICreate) sqlSave(ctx context.Context) (*ImpersonationJTI, error) {
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
			return nil, fmt.Errorf("unexpected ImpersonationJTI.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ImpersonationJTICreate) createSpec() (*ImpersonationJTI, *sqlgraph.CreateSpec) {
	var (
		_node = &ImpersonationJTI{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(impersonationjti.Table, sqlgraph.NewFieldSpec(impersonationjti.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OrgID(); ok {
		_spec.SetField(impersonationjti.FieldOrgID, field.TypeString, value)
		_node.OrgID = value
	}
	if value, ok := _c.mutation.TeamNodeID(); ok {
		_spec.SetField(impersonationjti.FieldTeamNodeID, field.TypeString, value)
		_node.TeamNodeID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(impersonationjti.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(impersonationjti.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	return _node, _spec
}

// ImpersonationJTICreateBulk is the builder for creating many ImpersonationJTI entities in bulk.
type ImpersonationJTICreateBulk struct {
	config
	err      error
	builders []*ImpersonationJTICreate
}

// Save creates the ImpersonationJTI entities in the database.
func (_c *ImpersonationJTICreateBulk) Save(ctx context.Context) ([]*ImpersonationJTI, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ImpersonationJTI, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ImpersonationJTIMutation)
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
func (_c *ImpersonationJTICreateBulk) SaveX(ctx context.Context) []*ImpersonationJTI {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ImpersonationJTICreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ImpersonationJTICreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
