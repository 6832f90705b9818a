// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/incidentfox/incidentfox/ent/tokenaudit"
)

// TokenAuditCreate is the builder for creating a TokenAudit entity.
type TokenAuditCreate struct {
	config
	mutation *TokenAuditMutation
	hooks    []Hook
}

// SetTs sets the "ts" field.
func (_c *TokenAuditCreate) SetTs(v time.Time) *TokenAuditCreate {
	_c.mutation.SetTs(v)
	return _c
}

// SetNillableTs sets the "ts" field if the given value is not nil.
func (_c *TokenAuditCreate) SetNillableTs(v *time.Time) *TokenAuditCreate {
	if v != nil {
		_c.SetTs(*v)
	}
	return _c
}

// SetOrgID sets the "org_id" field.
func (_c *TokenAuditCreate) SetOrgID(v string) *TokenAuditCreate {
	_c.mutation.SetOrgID(v)
	return _c
}

// SetTeamNodeID sets the "team_node_id" field.
func (_c *TokenAuditCreate) SetTeamNodeID(v string) *TokenAuditCreate {
	_c.mutation.SetTeamNodeID(v)
	return _c
}

// SetNillableTeamNodeID sets the "team_node_id" field if the given value is not nil.
func (_c *TokenAuditCreate) SetNillableTeamNodeID(v *string) *TokenAuditCreate {
	if v != nil {
		_c.SetTeamNodeID(*v)
	}
	return _c
}

// SetTokenID sets the "token_id" field.
func (_c *TokenAuditCreate) SetTokenID(v string) *TokenAuditCreate {
	_c.mutation.SetTokenID(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *TokenAuditCreate) SetAction(v tokenaudit.Action) *TokenAuditCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetActor sets the "actor" field.
func (_c *TokenAuditCreate) SetActor(v string) *TokenAuditCreate {
	_c.mutation.SetActor(v)
	return _c
}

// SetID sets the "id" field.
func (_c *TokenAuditCreate) SetID(v string) *TokenAuditCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the TokenAuditMutation object of the builder.
func (_c *TokenAuditCreate) Mutation() *TokenAuditMutation {
	return _c.mutation
}

// Save creates the TokenAudit in the database.
func (_c *TokenAuditCreate) Save(ctx context.Context) (*TokenAudit, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TokenAuditCreate) SaveX(ctx context.Context) *TokenAudit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TokenAuditCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TokenAuditCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TokenAuditCreate) defaults() {
	if _, ok := _c.mutation.Ts(); !ok {
		v := tokenaudit.DefaultTs()
		_c.mutation.SetTs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TokenAuditCreate) check() error {
	if _, ok := _c.mutation.Ts(); !ok {
		return &ValidationError{Name: "ts", err: errors.New(`ent: missing required field "TokenAudit.ts"`)}
	}
	if _, ok := _c.mutation.OrgID(); !ok {
		return &ValidationError{Name: "org_id", err: errors.New(`ent: missing required field "TokenAudit.org_id"`)}
	}
	if _, ok := _c.mutation.TokenID(); !ok {
		return &ValidationError{Name: "token_id", err: errors.New(`ent: missing required field "TokenAudit.token_id"`)}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "TokenAudit.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := tokenaudit.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "TokenAudit.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Actor(); !ok {
		return &ValidationError{Name: "actor", err: errors.New(`ent: missing required field "TokenAudit.actor"`)}
	}
	return nil
}

func (_c *TokenAuditCreate) sqlSave(ctx context.Context) (*TokenAudit, error) {
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
			return nil, fmt.Errorf("unexpected TokenAudit.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TokenAuditCreate) createSpec() (*TokenAudit, *sqlgraph.CreateSpec) {
	var (
		_node = &TokenAudit{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tokenaudit.Table, sqlgraph.NewFieldSpec(tokenaudit.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Ts(); ok {
		_spec.SetField(tokenaudit.FieldTs, field.TypeTime, value)
		_node.Ts = value
	}
	if value, ok := _c.mutation.OrgID(); ok {
		_spec.SetField(tokenaudit.FieldOrgID, field.TypeString, value)
		_node.OrgID = value
	}
	if value, ok := _c.mutation.TeamNodeID(); ok {
		_spec.SetField(tokenaudit.FieldTeamNodeID, field.TypeString, value)
		_node.TeamNodeID = value
	}
	if value, ok := _c.mutation.TokenID(); ok {
		_spec.SetField(tokenaudit.FieldTokenID, field.TypeString, value)
		_node.TokenID = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(tokenaudit.FieldAction, field.TypeEnum, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.Actor(); ok {
		_spec.SetField(tokenaudit.FieldActor, field.TypeString, value)
		_node.Actor = value
	}
	return _node, _spec
}

// TokenAuditCreateBulk is the builder for creating many TokenAudit entities in bulk.
type TokenAuditCreateBulk struct {
	config
	err      error
	builders []*TokenAuditCreate
}

// Save creates the TokenAudit entities in the database.
func (_c *TokenAuditCreateBulk) Save(ctx context.Context) ([]*TokenAudit, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TokenAudit, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TokenAuditMutation)
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
func (_c *TokenAuditCreateBulk) SaveX(ctx context.Context) []*TokenAudit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TokenAuditCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TokenAuditCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
