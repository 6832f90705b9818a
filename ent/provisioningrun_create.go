// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/incidentfox/incidentfox/ent/provisioningrun"
)

// ProvisioningRunCreate is the builder for creating a ProvisioningRun entity.
type ProvisioningRunCreate struct {
	config
	mutation *ProvisioningRunMutation
	hooks    []Hook
}

// SetOrgID sets the "org_id" field.
func (_c *ProvisioningRunCreate) SetOrgID(v string) *ProvisioningRunCreate {
	_c.mutation.SetOrgID(v)
	return _c
}

// SetTeamNodeID sets the "team_node_id" field.
func (_c *ProvisioningRunCreate) SetTeamNodeID(v string) *ProvisioningRunCreate {
	_c.mutation.SetTeamNodeID(v)
	return _c
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_c *ProvisioningRunCreate) SetIdempotencyKey(v string) *ProvisioningRunCreate {
	_c.mutation.SetIdempotencyKey(v)
	return _c
}

// SetNillableIdempotencyKey sets the "idempotency_key" field if the given value is not nil.
func (_c *ProvisioningRunCreate) SetNillableIdempotencyKey(v *string) *ProvisioningRunCreate {
	if v != nil {
		_c.SetIdempotencyKey(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ProvisioningRunCreate) SetStatus(v provisioningrun.Status) *ProvisioningRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ProvisioningRunCreate) SetNillableStatus(v *provisioningrun.Status) *ProvisioningRunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSteps sets the "steps" field.
func (_c *ProvisioningRunCreate) SetSteps(v []map[string]interface{}) *ProvisioningRunCreate {
	_c.mutation.SetSteps(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ProvisioningRunCreate) SetErrorMessage(v string) *ProvisioningRunCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ProvisioningRunCreate) SetNillableErrorMessage(v *string) *ProvisioningRunCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProvisioningRunCreate) SetCreatedAt(v time.Time) *ProvisioningRunCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProvisioningRunCreate) SetNillableCreatedAt(v *time.Time) *ProvisioningRunCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProvisioningRunCreate) SetUpdatedAt(v time.Time) *ProvisioningRunCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProvisioningRunCreate) SetNillableUpdatedAt(v *time.Time) *ProvisioningRunCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProvisioningRunCreate) SetID(v string) *ProvisioningRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ProvisioningRunMutation object of the builder.
func (_c *ProvisioningRunCreate) Mutation() *ProvisioningRunMutation {
	return _c.mutation
}

// Save creates the ProvisioningRun in the database.
func (_c *ProvisioningRunCreate) Save(ctx context.Context) (*ProvisioningRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProvisioningRunCreate) SaveX(ctx context.Context) *ProvisioningRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProvisioningRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProvisioningRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProvisioningRunCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := provisioningrun.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := provisioningrun.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := provisioningrun.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProvisioningRunCreate) check() error {
	if _, ok := _c.mutation.OrgID(); !ok {
		return &ValidationError{Name: "org_id", err: errors.New(`ent: missing required field "ProvisioningRun.org_id"`)}
	}
	if _, ok := _c.mutation.TeamNodeID(); !ok {
		return &ValidationError{Name: "team_node_id", err: errors.New(`ent: missing required field "ProvisioningRun.team_node_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ProvisioningRun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := provisioningrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProvisioningRun.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ProvisioningRun.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ProvisioningRun.updated_at"`)}
	}
	return nil
}

func (_c *ProvisioningRunCreate) sqlSave(ctx context.Context) (*ProvisioningRun, error) {
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
			return nil, fmt.Errorf("unexpected ProvisioningRun.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProvisioningRunCreate) createSpec() (*ProvisioningRun, *sqlgraph.CreateSpec) {
	var (
		_node = &ProvisioningRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(provisioningrun.Table, sqlgraph.NewFieldSpec(provisioningrun.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OrgID(); ok {
		_spec.SetField(provisioningrun.FieldOrgID, field.TypeString, value)
		_node.OrgID = value
	}
	if value, ok := _c.mutation.TeamNodeID(); ok {
		_spec.SetField(provisioningrun.FieldTeamNodeID, field.TypeString, value)
		_node.TeamNodeID = value
	}
	if value, ok := _c.mutation.IdempotencyKey(); ok {
		_spec.SetField(provisioningrun.FieldIdempotencyKey, field.TypeString, value)
		_node.IdempotencyKey = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(provisioningrun.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Steps(); ok {
		_spec.SetField(provisioningrun.FieldSteps, field.TypeJSON, value)
		_node.Steps = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(provisioningrun.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(provisioningrun.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(provisioningrun.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ProvisioningRunCreateBulk is the builder for creating many ProvisioningRun entities in bulk.
type ProvisioningRunCreateBulk struct {
	config
	err      error
	builders []*ProvisioningRunCreate
}

// Save creates the ProvisioningRun entities in the database.
func (_c *ProvisioningRunCreateBulk) Save(ctx context.Context) ([]*ProvisioningRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProvisioningRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProvisioningRunMutation)
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
func (_c *ProvisioningRunCreateBulk) SaveX(ctx context.Context) []*ProvisioningRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProvisioningRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProvisioningRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
