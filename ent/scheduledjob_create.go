// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/incidentfox/incidentfox/ent/scheduledjob"
)

// ScheduledJobCreate is the builder for creating a ScheduledJob entity.
type ScheduledJobCreate struct {
	config
	mutation *ScheduledJobMutation
	hooks    []Hook
}

// SetOrgID sets the "org_id" field.
func (_c *ScheduledJobCreate) SetOrgID(v string) *ScheduledJobCreate {
	_c.mutation.SetOrgID(v)
	return _c
}

// SetTeamNodeID sets the "team_node_id" field.
func (_c *ScheduledJobCreate) SetTeamNodeID(v string) *ScheduledJobCreate {
	_c.mutation.SetTeamNodeID(v)
	return _c
}

// SetJobType sets the "job_type" field.
func (_c *ScheduledJobCreate) SetJobType(v string) *ScheduledJobCreate {
	_c.mutation.SetJobType(v)
	return _c
}

// SetCronExpr sets the "cron_expr" field.
func (_c *ScheduledJobCreate) SetCronExpr(v string) *ScheduledJobCreate {
	_c.mutation.SetCronExpr(v)
	return _c
}

// SetConfig sets the "config" field.
func (_c *ScheduledJobCreate) SetConfig(v map[string]interface{}) *ScheduledJobCreate {
	_c.mutation.SetConfig(v)
	return _c
}

// SetNextFireAt sets the "next_fire_at" field.
func (_c *ScheduledJobCreate) SetNextFireAt(v time.Time) *ScheduledJobCreate {
	_c.mutation.SetNextFireAt(v)
	return _c
}

// SetLastStatus sets the "last_status" field.
func (_c *ScheduledJobCreate) SetLastStatus(v string) *ScheduledJobCreate {
	_c.mutation.SetLastStatus(v)
	return _c
}

// SetNillableLastStatus sets the "last_status" field if the given value is not nil.
func (_c *ScheduledJobCreate) SetNillableLastStatus(v *string) *ScheduledJobCreate {
	if v != nil {
		_c.SetLastStatus(*v)
	}
	return _c
}

// SetLockOwner sets the "lock_owner" field.
func (_c *ScheduledJobCreate) SetLockOwner(v string) *ScheduledJobCreate {
	_c.mutation.SetLockOwner(v)
	return _c
}

// SetNillableLockOwner sets the "lock_owner" field if the given value is not nil.
func (_c *ScheduledJobCreate) SetNillableLockOwner(v *string) *ScheduledJobCreate {
	if v != nil {
		_c.SetLockOwner(*v)
	}
	return _c
}

// SetLockExpiresAt sets the "lock_expires_at" field.
func (_c *ScheduledJobCreate) SetLockExpiresAt(v time.Time) *ScheduledJobCreate {
	_c.mutation.SetLockExpiresAt(v)
	return _c
}

// SetNillableLockExpiresAt sets the "lock_expires_at" field if the given value is not nil.
func (_c *ScheduledJobCreate) SetNillableLockExpiresAt(v *time.Time) *ScheduledJobCreate {
	if v != nil {
		_c.SetLockExpiresAt(*v)
	}
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *ScheduledJobCreate) SetEnabled(v bool) *ScheduledJobCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *ScheduledJobCreate) SetNillableEnabled(v *bool) *ScheduledJobCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ScheduledJobCreate) SetCreatedAt(v time.Time) *ScheduledJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ScheduledJobCreate) SetNillableCreatedAt(v *time.Time) *ScheduledJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ScheduledJobCreate) SetUpdatedAt(v time.Time) *ScheduledJobCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ScheduledJobCreate) SetNillableUpdatedAt(v *time.Time) *ScheduledJobCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ScheduledJobCreate) SetID(v string) *ScheduledJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ScheduledJobMutation object of the builder.
func (_c *ScheduledJobCreate) Mutation() *ScheduledJobMutation {
	return _c.mutation
}

// Save creates the ScheduledJob in the database.
func (_c *ScheduledJobCreate) Save(ctx context.Context) (*ScheduledJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScheduledJobCreate) SaveX(ctx context.Context) *ScheduledJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduledJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduledJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScheduledJobCreate) defaults() {
	if _, ok := _c.mutation.Enabled(); !ok {
		v := scheduledjob.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := scheduledjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := scheduledjob.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScheduledJobCreate) check() error {
	if _, ok := _c.mutation.OrgID(); !ok {
		return &ValidationError{Name: "org_id", err: errors.New(`ent: missing required field "ScheduledJob.org_id"`)}
	}
	if _, ok := _c.mutation.TeamNodeID(); !ok {
		return &ValidationError{Name: "team_node_id", err: errors.New(`ent: missing required field "ScheduledJob.team_node_id"`)}
	}
	if _, ok := _c.mutation.JobType(); !ok {
		return &ValidationError{Name: "job_type", err: errors.New(`ent: missing required field "ScheduledJob.job_type"`)}
	}
	if _, ok := _c.mutation.CronExpr(); !ok {
		return &ValidationError{Name: "cron_expr", err: errors.New(`ent: missing required field "ScheduledJob.cron_expr"`)}
	}
	if _, ok := _c.mutation.NextFireAt(); !ok {
		return &ValidationError{Name: "next_fire_at", err: errors.New(`ent: missing required field "ScheduledJob.next_fire_at"`)}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "ScheduledJob.enabled"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ScheduledJob.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ScheduledJob.updated_at"`)}
	}
	return nil
}

func (_c *ScheduledJobCreate) sqlSave(ctx context.Context) (*ScheduledJob, error) {
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
			return nil, fmt.Errorf("unexpected ScheduledJob.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ScheduledJobCreate) createSpec() (*ScheduledJob, *sqlgraph.CreateSpec) {
	var (
		_node = &ScheduledJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scheduledjob.Table, sqlgraph.NewFieldSpec(scheduledjob.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OrgID(); ok {
		_spec.SetField(scheduledjob.FieldOrgID, field.TypeString, value)
		_node.OrgID = value
	}
	if value, ok := _c.mutation.TeamNodeID(); ok {
		_spec.SetField(scheduledjob.FieldTeamNodeID, field.TypeString, value)
		_node.TeamNodeID = value
	}
	if value, ok := _c.mutation.JobType(); ok {
		_spec.SetField(scheduledjob.FieldJobType, field.TypeString, value)
		_node.JobType = value
	}
	if value, ok := _c.mutation.CronExpr(); ok {
		_spec.SetField(scheduledjob.FieldCronExpr, field.TypeString, value)
		_node.CronExpr = value
	}
	if value, ok := _c.mutation.Config(); ok {
		_spec.SetField(scheduledjob.FieldConfig, field.TypeJSON, value)
		_node.Config = value
	}
	if value, ok := _c.mutation.NextFireAt(); ok {
		_spec.SetField(scheduledjob.FieldNextFireAt, field.TypeTime, value)
		_node.NextFireAt = value
	}
	if value, ok := _c.mutation.LastStatus(); ok {
		_spec.SetField(scheduledjob.FieldLastStatus, field.TypeString, value)
		_node.LastStatus = value
	}
	if value, ok := _c.mutation.LockOwner(); ok {
		_spec.SetField(scheduledjob.FieldLockOwner, field.TypeString, value)
		_node.LockOwner = &value
	}
	if value, ok := _c.mutation.LockExpiresAt(); ok {
		_spec.SetField(scheduledjob.FieldLockExpiresAt, field.TypeTime, value)
		_node.LockExpiresAt = &value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(scheduledjob.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(scheduledjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(scheduledjob.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ScheduledJobCreateBulk is the builder for creating many ScheduledJob entities in bulk.
type ScheduledJobCreateBulk struct {
	config
	err      error
	builders []*ScheduledJobCreate
}

// Save creates the ScheduledJob entities in the database.
func (_c *ScheduledJobCreateBulk) Save(ctx context.Context) ([]*ScheduledJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScheduledJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScheduledJobMutation)
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
func (_c *ScheduledJobCreateBulk) SaveX(ctx context.Context) []*ScheduledJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduledJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduledJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
