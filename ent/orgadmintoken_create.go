// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/incidentfox/incidentfox/ent/orgadmintoken"
)

// OrgAdminTokenCreate is the builder for creating a OrgAdminToken entity.
type OrgAdminTokenCreate struct {
	config
	mutation *OrgAdminTokenMutation
	hooks    []Hook
}

// SetOrgID sets the "org_id" field.
func (_c *OrgAdminTokenCreate) SetOrgID(v string) *OrgAdminTokenCreate {
	_c.mutation.SetOrgID(v)
	return _c
}

// SetTokenHash sets the "token_hash" field.
func (_c *OrgAdminTokenCreate) SetTokenHash(v string) *OrgAdminTokenCreate {
	_c.mutation.SetTokenHash(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *OrgAdminTokenCreate) SetCreatedAt(v time.Time) *OrgAdminTokenCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OrgAdminTokenCreate) SetNillableCreatedAt(v *time.Time) *OrgAdminTokenCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetLastUsedAt sets the "last_used_at" field.
func (_c *OrgAdminTokenCreate) SetLastUsedAt(v time.Time) *OrgAdminTokenCreate {
	_c.mutation.SetLastUsedAt(v)
	return _c
}

// SetNillableLastUsedAt sets the "last_used_at" field if the given value is not nil.
func (_c *OrgAdminTokenCreate) SetNillableLastUsedAt(v *time.Time) *OrgAdminTokenCreate {
	if v != nil {
		_c.SetLastUsedAt(*v)
	}
	return _c
}

// SetRevokedAt sets the "revoked_at" field.
func (_c *OrgAdminTokenCreate) SetRevokedAt(v time.Time) *OrgAdminTokenCreate {
	_c.mutation.SetRevokedAt(v)
	return _c
}

// SetNillableRevokedAt sets the "revoked_at" field if the given value is not nil.
func (_c *OrgAdminTokenCreate) SetNillableRevokedAt(v *time.Time) *OrgAdminTokenCreate {
	if v != nil {
		_c.SetRevokedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *OrgAdminTokenCreate) SetID(v string) *OrgAdminTokenCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the OrgAdminTokenMutation object of the builder.
func (_c *OrgAdminTokenCreate) Mutation() *OrgAdminTokenMutation {
	return _c.mutation
}

// Save creates the OrgAdminToken in the database.
func (_c *OrgAdminTokenCreate) Save(ctx context.Context) (*OrgAdminToken, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OrgAdminTokenCreate) SaveX(ctx context.Context) *OrgAdminToken {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrgAdminTokenCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrgAdminTokenCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OrgAdminTokenCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := orgadmintoken.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OrgAdminTokenCreate) check() error {
	if _, ok := _c.mutation.OrgID(); !ok {
		return &ValidationError{Name: "org_id", err: errors.New(`ent: missing required field "OrgAdminToken.org_id"`)}
	}
	if _, ok := _c.mutation.TokenHash(); !ok {
		return &ValidationError{Name: "token_hash", err: errors.New(`ent: missing required field "OrgAdminToken.token_hash"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "OrgAdminToken.created_at"`)}
	}
	return nil
}

func (_c *OrgAdminTokenCreate) sqlSave(ctx context.Context) (*OrgAdminToken, error) {
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
			return nil, fmt.Errorf("unexpected OrgAdminToken.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *OrgAdminTokenCreate) createSpec() (*OrgAdminToken, *sqlgraph.CreateSpec) {
	var (
		_node = &OrgAdminToken{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(orgadmintoken.Table, sqlgraph.NewFieldSpec(orgadmintoken.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OrgID(); ok {
		_spec.SetField(orgadmintoken.FieldOrgID, field.TypeString, value)
		_node.OrgID = value
	}
	if value, ok := _c.mutation.TokenHash(); ok {
		_spec.SetField(orgadmintoken.FieldTokenHash, field.TypeString, value)
		_node.TokenHash = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(orgadmintoken.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.LastUsedAt(); ok {
		_spec.SetField(orgadmintoken.FieldLastUsedAt, field.TypeTime, value)
		_node.LastUsedAt = &value
	}
	if value, ok := _c.mutation.RevokedAt(); ok {
		_spec.SetField(orgadmintoken.FieldRevokedAt, field.TypeTime, value)
		_node.RevokedAt = &value
	}
	return _node, _spec
}

// OrgAdminTokenCreateBulk is the builder for creating many OrgAdminToken entities in bulk.
type OrgAdminTokenCreateBulk struct {
	config
	err      error
	builders []*OrgAdminTokenCreate
}

// Save creates the OrgAdminToken entities in the database.
func (_c *OrgAdminTokenCreateBulk) Save(ctx context.Context) ([]*OrgAdminToken, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OrgAdminToken, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OrgAdminTokenMutation)
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
func (_c *OrgAdminTokenCreateBulk) SaveX(ctx context.Context) []*OrgAdminToken {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrgAdminTokenCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrgAdminTokenCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
