// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/incidentfox/incidentfox/ent/predicate"
	"github.com/incidentfox/incidentfox/ent/scheduledjob"
)

// ScheduledJobUpdate is the builder for updating ScheduledJob entities.
type ScheduledJobUpdate struct {
	config
	hooks    []Hook
	mutation *ScheduledJobMutation
}

// Where appends a list predicates to the ScheduledJobUpdate builder.
func (_u *ScheduledJobUpdate) Where(ps ...predicate.ScheduledJob) *ScheduledJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOrgID sets the "org_id" field.
func (_u *ScheduledJobUpdate) SetOrgID(v string) *ScheduledJobUpdate {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *ScheduledJobUpdate) SetNillableOrgID(v *string) *ScheduledJobUpdate {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetTeamNodeID sets the "team_node_id" field.
func (_u *ScheduledJobUpdate) SetTeamNodeID(v string) *ScheduledJobUpdate {
	_u.mutation.SetTeamNodeID(v)
	return _u
}

// SetNillableTeamNodeID sets the "team_node_id" field if the given value is not nil.
func (_u *ScheduledJobUpdate) SetNillableTeamNodeID(v *string) *ScheduledJobUpdate {
	if v != nil {
		_u.SetTeamNodeID(*v)
	}
	return _u
}

// SetJobType sets the "job_type" field.
func (_u *ScheduledJobUpdate) SetJobType(v string) *ScheduledJobUpdate {
	_u.mutation.SetJobType(v)
	return _u
}

// SetNillableJobType sets the "job_type" field if the given value is not nil.
func (_u *ScheduledJobUpdate) SetNillableJobType(v *string) *ScheduledJobUpdate {
	if v != nil {
		_u.SetJobType(*v)
	}
	return _u
}

// SetCronExpr sets the "cron_expr" field.
func (_u *ScheduledJobUpdate) SetCronExpr(v string) *ScheduledJobUpdate {
	_u.mutation.SetCronExpr(v)
	return _u
}

// SetNillableCronExpr sets the "cron_expr" field if the given value is not nil.
func (_u *ScheduledJobUpdate) SetNillableCronExpr(v *string) *ScheduledJobUpdate {
	if v != nil {
		_u.SetCronExpr(*v)
	}
	return _u
}

// SetConfig sets the "config" field.
func (_u *ScheduledJobUpdate) SetConfig(v map[string]interface{}) *ScheduledJobUpdate {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *ScheduledJobUpdate) ClearConfig() *ScheduledJobUpdate {
	_u.mutation.ClearConfig()
	return _u
}

// SetNextFireAt sets the "next_fire_at" field.
func (_u *ScheduledJobUpdate) SetNextFireAt(v time.Time) *ScheduledJobUpdate {
	_u.mutation.SetNextFireAt(v)
	return _u
}

// SetNillableNextFireAt sets the "next_fire_at" field if the given value is not nil.
func (_u *ScheduledJobUpdate) SetNillableNextFireAt(v *time.Time) *ScheduledJobUpdate {
	if v != nil {
		_u.SetNextFireAt(*v)
	}
	return _u
}

// SetLastStatus sets the "last_status" field.
func (_u *ScheduledJobUpdate) SetLastStatus(v string) *ScheduledJobUpdate {
	_u.mutation.SetLastStatus(v)
	return _u
}

// SetNillableLastStatus sets the "last_status" field if the given value is not nil.
func (_u *ScheduledJobUpdate) SetNillableLastStatus(v *string) *ScheduledJobUpdate {
	if v != nil {
		_u.SetLastStatus(*v)
	}
	return _u
}

// ClearLastStatus clears the value of the "last_status" field.
func (_u *ScheduledJobUpdate) ClearLastStatus() *ScheduledJobUpdate {
	_u.mutation.ClearLastStatus()
	return _u
}

// SetLockOwner sets the "lock_owner" field.
func (_u *ScheduledJobUpdate) SetLockOwner(v string) *ScheduledJobUpdate {
	_u.mutation.SetLockOwner(v)
	return _u
}

// SetNillableLockOwner sets the "lock_owner" field if the given value is not nil.
func (_u *ScheduledJobUpdate) SetNillableLockOwner(v *string) *ScheduledJobUpdate {
	if v != nil {
		_u.SetLockOwner(*v)
	}
	return _u
}

// ClearLockOwner clears the value of the "lock_owner" field.
func (_u *ScheduledJobUpdate) ClearLockOwner() *ScheduledJobUpdate {
	_u.mutation.ClearLockOwner()
	return _u
}

// SetLockExpiresAt sets the "lock_expires_at" field.
func (_u *ScheduledJobUpdate) SetLockExpiresAt(v time.Time) *ScheduledJobUpdate {
	_u.mutation.SetLockExpiresAt(v)
	return _u
}

// SetNillableLockExpiresAt sets the "lock_expires_at" field if the given value is not nil.
func (_u *ScheduledJobUpdate) SetNillableLockExpiresAt(v *time.Time) *ScheduledJobUpdate {
	if v != nil {
		_u.SetLockExpiresAt(*v)
	}
	return _u
}

// ClearLockExpiresAt clears the value of the "lock_expires_at" field.
func (_u *ScheduledJobUpdate) ClearLockExpiresAt() *ScheduledJobUpdate {
	_u.mutation.ClearLockExpiresAt()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *ScheduledJobUpdate) SetEnabled(v bool) *ScheduledJobUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *ScheduledJobUpdate) SetNillableEnabled(v *bool) *ScheduledJobUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ScheduledJobUpdate) SetCreatedAt(v time.Time) *ScheduledJobUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ScheduledJobUpdate) SetNillableCreatedAt(v *time.Time) *ScheduledJobUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ScheduledJobUpdate) SetUpdatedAt(v time.Time) *ScheduledJobUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ScheduledJobMutation object of the builder.
func (_u *ScheduledJobUpdate) Mutation() *ScheduledJobMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScheduledJobUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduledJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScheduledJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduledJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ScheduledJobUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := scheduledjob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ScheduledJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(scheduledjob.Table, scheduledjob.Columns, sqlgraph.NewFieldSpec(scheduledjob.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OrgID(); ok {
		_spec.SetField(scheduledjob.FieldOrgID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TeamNodeID(); ok {
		_spec.SetField(scheduledjob.FieldTeamNodeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.JobType(); ok {
		_spec.SetField(scheduledjob.FieldJobType, field.TypeString, value)
	}
	if value, ok := _u.mutation.CronExpr(); ok {
		_spec.SetField(scheduledjob.FieldCronExpr, field.TypeString, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(scheduledjob.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(scheduledjob.FieldConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.NextFireAt(); ok {
		_spec.SetField(scheduledjob.FieldNextFireAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastStatus(); ok {
		_spec.SetField(scheduledjob.FieldLastStatus, field.TypeString, value)
	}
	if _u.mutation.LastStatusCleared() {
		_spec.ClearField(scheduledjob.FieldLastStatus, field.TypeString)
	}
	if value, ok := _u.mutation.LockOwner(); ok {
		_spec.SetField(scheduledjob.FieldLockOwner, field.TypeString, value)
	}
	if _u.mutation.LockOwnerCleared() {
		_spec.ClearField(scheduledjob.FieldLockOwner, field.TypeString)
	}
	if value, ok := _u.mutation.LockExpiresAt(); ok {
		_spec.SetField(scheduledjob.FieldLockExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.LockExpiresAtCleared() {
		_spec.ClearField(scheduledjob.FieldLockExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(scheduledjob.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(scheduledjob.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(scheduledjob.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scheduledjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScheduledJobUpdateOne is the builder for updating a single ScheduledJob entity.
type ScheduledJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScheduledJobMutation
}

// SetOrgID sets the "org_id" field.
func (_u *ScheduledJobUpdateOne) SetOrgID(v string) *ScheduledJobUpdateOne {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *ScheduledJobUpdateOne) SetNillableOrgID(v *string) *ScheduledJobUpdateOne {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetTeamNodeID sets the "team_node_id" field.
func (_u *ScheduledJobUpdateOne) SetTeamNodeID(v string) *ScheduledJobUpdateOne {
	_u.mutation.SetTeamNodeID(v)
	return _u
}

// SetNillableTeamNodeID sets the "team_node_id" field if the given value is not nil.
func (_u *ScheduledJobUpdateOne) SetNillableTeamNodeID(v *string) *ScheduledJobUpdateOne {
	if v != nil {
		_u.SetTeamNodeID(*v)
	}
	return _u
}

// SetJobType sets the "job_type" field.
func (_u *ScheduledJobUpdateOne) SetJobType(v string) *ScheduledJobUpdateOne {
	_u.mutation.SetJobType(v)
	return _u
}

// SetNillableJobType sets the "job_type" field if the given value is not nil.
func (_u *ScheduledJobUpdateOne) SetNillableJobType(v *string) *ScheduledJobUpdateOne {
	if v != nil {
		_u.SetJobType(*v)
	}
	return _u
}

// SetCronExpr sets the "cron_expr" field.
func (_u *ScheduledJobUpdateOne) SetCronExpr(v string) *ScheduledJobUpdateOne {
	_u.mutation.SetCronExpr(v)
	return _u
}

// SetNillableCronExpr sets the "cron_expr" field if the given value is not nil.
func (_u *ScheduledJobUpdateOne) SetNillableCronExpr(v *string) *ScheduledJobUpdateOne {
	if v != nil {
		_u.SetCronExpr(*v)
	}
	return _u
}

// SetConfig sets the "config" field.
func (_u *ScheduledJobUpdateOne) SetConfig(v map[string]interface{}) *ScheduledJobUpdateOne {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *ScheduledJobUpdateOne) ClearConfig() *ScheduledJobUpdateOne {
	_u.mutation.ClearConfig()
	return _u
}

// SetNextFireAt sets the "next_fire_at" field.
func (_u *ScheduledJobUpdateOne) SetNextFireAt(v time.Time) *ScheduledJobUpdateOne {
	_u.mutation.SetNextFireAt(v)
	return _u
}

// SetNillableNextFireAt sets the "next_fire_at" field if the given value is not nil.
func (_u *ScheduledJobUpdateOne) SetNillableNextFireAt(v *time.Time) *ScheduledJobUpdateOne {
	if v != nil {
		_u.SetNextFireAt(*v)
	}
	return _u
}

// SetLastStatus sets the "last_status" field.
func (_u *ScheduledJobUpdateOne) SetLastStatus(v string) *ScheduledJobUpdateOne {
	_u.mutation.SetLastStatus(v)
	return _u
}

// SetNillableLastStatus sets the "last_status" field if the given value is not nil.
func (_u *ScheduledJobUpdateOne) SetNillableLastStatus(v *string) *ScheduledJobUpdateOne {
	if v != nil {
		_u.SetLastStatus(*v)
	}
	return _u
}

// ClearLastStatus clears the value of the "last_status" field.
func (_u *ScheduledJobUpdateOne) ClearLastStatus() *ScheduledJobUpdateOne {
	_u.mutation.ClearLastStatus()
	return _u
}

// SetLockOwner sets the "lock_owner" field.
func (_u *ScheduledJobUpdateOne) SetLockOwner(v string) *ScheduledJobUpdateOne {
	_u.mutation.SetLockOwner(v)
	return _u
}

// SetNillableLockOwner sets the "lock_owner" field if the given value is not nil.
func (_u *ScheduledJobUpdateOne) SetNillableLockOwner(v *string) *ScheduledJobUpdateOne {
	if v != nil {
		_u.SetLockOwner(*v)
	}
	return _u
}

// ClearLockOwner clears the value of the "lock_owner" field.
func (_u *ScheduledJobUpdateOne) ClearLockOwner() *ScheduledJobUpdateOne {
	_u.mutation.ClearLockOwner()
	return _u
}

// SetLockExpiresAt sets the "lock_expires_at" field.
func (_u *ScheduledJobUpdateOne) SetLockExpiresAt(v time.Time) *ScheduledJobUpdateOne {
	_u.mutation.SetLockExpiresAt(v)
	return _u
}

// SetNillableLockExpiresAt sets the "lock_expires_at" field if the given value is not nil.
func (_u *ScheduledJobUpdateOne) SetNillableLockExpiresAt(v *time.Time) *ScheduledJobUpdateOne {
	if v != nil {
		_u.SetLockExpiresAt(*v)
	}
	return _u
}

// ClearLockExpiresAt clears the value of the "lock_expires_at" field.
func (_u *ScheduledJobUpdateOne) ClearLockExpiresAt() *ScheduledJobUpdateOne {
	_u.mutation.ClearLockExpiresAt()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *ScheduledJobUpdateOne) SetEnabled(v bool) *ScheduledJobUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *ScheduledJobUpdateOne) SetNillableEnabled(v *bool) *ScheduledJobUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ScheduledJobUpdateOne) SetCreatedAt(v time.Time) *ScheduledJobUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ScheduledJobUpdateOne) SetNillableCreatedAt(v *time.Time) *ScheduledJobUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ScheduledJobUpdateOne) SetUpdatedAt(v time.Time) *ScheduledJobUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ScheduledJobMutation object of the builder.
func (_u *ScheduledJobUpdateOne) Mutation() *ScheduledJobMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScheduledJobUpdate builder.
func (_u *ScheduledJobUpdateOne) Where(ps ...predicate.ScheduledJob) *ScheduledJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScheduledJobUpdateOne) Select(field string, fields ...string) *ScheduledJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScheduledJob entity.
func (_u *ScheduledJobUpdateOne) Save(ctx context.Context) (*ScheduledJob, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduledJobUpdateOne) SaveX(ctx context.Context) *ScheduledJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScheduledJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduledJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ScheduledJobUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := scheduledjob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ScheduledJobUpdateOne) sqlSave(ctx context.Context) (_node *ScheduledJob, err error) {
	_spec := sqlgraph.NewUpdateSpec(scheduledjob.Table, scheduledjob.Columns, sqlgraph.NewFieldSpec(scheduledjob.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScheduledJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scheduledjob.FieldID)
		for _, f := range fields {
			if !scheduledjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scheduledjob.FieldID {
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
	if value, ok := _u.mutation.OrgID(); ok {
		_spec.SetField(scheduledjob.FieldOrgID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TeamNodeID(); ok {
		_spec.SetField(scheduledjob.FieldTeamNodeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.JobType(); ok {
		_spec.SetField(scheduledjob.FieldJobType, field.TypeString, value)
	}
	if value, ok := _u.mutation.CronExpr(); ok {
		_spec.SetField(scheduledjob.FieldCronExpr, field.TypeString, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(scheduledjob.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(scheduledjob.FieldConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.NextFireAt(); ok {
		_spec.SetField(scheduledjob.FieldNextFireAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastStatus(); ok {
		_spec.SetField(scheduledjob.FieldLastStatus, field.TypeString, value)
	}
	if _u.mutation.LastStatusCleared() {
		_spec.ClearField(scheduledjob.FieldLastStatus, field.TypeString)
	}
	if value, ok := _u.mutation.LockOwner(); ok {
		_spec.SetField(scheduledjob.FieldLockOwner, field.TypeString, value)
	}
	if _u.mutation.LockOwnerCleared() {
		_spec.ClearField(scheduledjob.FieldLockOwner, field.TypeString)
	}
	if value, ok := _u.mutation.LockExpiresAt(); ok {
		_spec.SetField(scheduledjob.FieldLockExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.LockExpiresAtCleared() {
		_spec.ClearField(scheduledjob.FieldLockExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(scheduledjob.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(scheduledjob.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(scheduledjob.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ScheduledJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scheduledjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
