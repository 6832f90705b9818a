// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/incidentfox/incidentfox/ent/predicate"
	"github.com/incidentfox/incidentfox/ent/provisioningrun"
)

// ProvisioningRunUpdate is the builder for updating ProvisioningRun entities.
type ProvisioningRunUpdate struct {
	config
	hooks    []Hook
	mutation *ProvisioningRunMutation
}

// Where appends a list predicates to the ProvisioningRunUpdate builder.
func (_u *ProvisioningRunUpdate) Where(ps ...predicate.ProvisioningRun) *ProvisioningRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOrgID sets the "org_id" field.
func (_u *ProvisioningRunUpdate) SetOrgID(v string) *ProvisioningRunUpdate {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *ProvisioningRunUpdate) SetNillableOrgID(v *string) *ProvisioningRunUpdate {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetTeamNodeID sets the "team_node_id" field.
func (_u *ProvisioningRunUpdate) SetTeamNodeID(v string) *ProvisioningRunUpdate {
	_u.mutation.SetTeamNodeID(v)
	return _u
}

// SetNillableTeamNodeID sets the "team_node_id" field if the given value is not nil.
func (_u *ProvisioningRunUpdate) SetNillableTeamNodeID(v *string) *ProvisioningRunUpdate {
	if v != nil {
		_u.SetTeamNodeID(*v)
	}
	return _u
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_u *ProvisioningRunUpdate) SetIdempotencyKey(v string) *ProvisioningRunUpdate {
	_u.mutation.SetIdempotencyKey(v)
	return _u
}

// SetNillableIdempotencyKey sets the "idempotency_key" field if the given value is not nil.
func (_u *ProvisioningRunUpdate) SetNillableIdempotencyKey(v *string) *ProvisioningRunUpdate {
	if v != nil {
		_u.SetIdempotencyKey(*v)
	}
	return _u
}

// ClearIdempotencyKey clears the value of the "idempotency_key" field.
func (_u *ProvisioningRunUpdate) ClearIdempotencyKey() *ProvisioningRunUpdate {
	_u.mutation.ClearIdempotencyKey()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProvisioningRunUpdate) SetStatus(v provisioningrun.Status) *ProvisioningRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProvisioningRunUpdate) SetNillableStatus(v *provisioningrun.Status) *ProvisioningRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSteps sets the "steps" field.
func (_u *ProvisioningRunUpdate) SetSteps(v []map[string]interface{}) *ProvisioningRunUpdate {
	_u.mutation.SetSteps(v)
	return _u
}

// AppendSteps appends value to the "steps" field.
func (_u *ProvisioningRunUpdate) AppendSteps(v []map[string]interface{}) *ProvisioningRunUpdate {
	_u.mutation.AppendSteps(v)
	return _u
}

// ClearSteps clears the value of the "steps" field.
func (_u *ProvisioningRunUpdate) ClearSteps() *ProvisioningRunUpdate {
	_u.mutation.ClearSteps()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ProvisioningRunUpdate) SetErrorMessage(v string) *ProvisioningRunUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ProvisioningRunUpdate) SetNillableErrorMessage(v *string) *ProvisioningRunUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ProvisioningRunUpdate) ClearErrorMessage() *ProvisioningRunUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ProvisioningRunUpdate) SetCreatedAt(v time.Time) *ProvisioningRunUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ProvisioningRunUpdate) SetNillableCreatedAt(v *time.Time) *ProvisioningRunUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProvisioningRunUpdate) SetUpdatedAt(v time.Time) *ProvisioningRunUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProvisioningRunMutation object of the builder.
func (_u *ProvisioningRunUpdate) Mutation() *ProvisioningRunMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProvisioningRunUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProvisioningRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProvisioningRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProvisioningRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProvisioningRunUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := provisioningrun.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProvisioningRunUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := provisioningrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProvisioningRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ProvisioningRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(provisioningrun.Table, provisioningrun.Columns, sqlgraph.NewFieldSpec(provisioningrun.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OrgID(); ok {
		_spec.SetField(provisioningrun.FieldOrgID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TeamNodeID(); ok {
		_spec.SetField(provisioningrun.FieldTeamNodeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.IdempotencyKey(); ok {
		_spec.SetField(provisioningrun.FieldIdempotencyKey, field.TypeString, value)
	}
	if _u.mutation.IdempotencyKeyCleared() {
		_spec.ClearField(provisioningrun.FieldIdempotencyKey, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(provisioningrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Steps(); ok {
		_spec.SetField(provisioningrun.FieldSteps, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSteps(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, provisioningrun.FieldSteps, value)
		})
	}
	if _u.mutation.StepsCleared() {
		_spec.ClearField(provisioningrun.FieldSteps, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(provisioningrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(provisioningrun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(provisioningrun.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(provisioningrun.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{provisioningrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProvisioningRunUpdateOne is the builder for updating a single ProvisioningRun entity.
type ProvisioningRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProvisioningRunMutation
}

// SetOrgID sets the "org_id" field.
func (_u *ProvisioningRunUpdateOne) SetOrgID(v string) *ProvisioningRunUpdateOne {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *ProvisioningRunUpdateOne) SetNillableOrgID(v *string) *ProvisioningRunUpdateOne {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetTeamNodeID sets the "team_node_id" field.
func (_u *ProvisioningRunUpdateOne) SetTeamNodeID(v string) *ProvisioningRunUpdateOne {
	_u.mutation.SetTeamNodeID(v)
	return _u
}

// SetNillableTeamNodeID sets the "team_node_id" field if the given value is not nil.
func (_u *ProvisioningRunUpdateOne) SetNillableTeamNodeID(v *string) *ProvisioningRunUpdateOne {
	if v != nil {
		_u.SetTeamNodeID(*v)
	}
	return _u
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_u *ProvisioningRunUpdateOne) SetIdempotencyKey(v string) *ProvisioningRunUpdateOne {
	_u.mutation.SetIdempotencyKey(v)
	return _u
}

// SetNillableIdempotencyKey sets the "idempotency_key" field if the given value is not nil.
func (_u *ProvisioningRunUpdateOne) SetNillableIdempotencyKey(v *string) *ProvisioningRunUpdateOne {
	if v != nil {
		_u.SetIdempotencyKey(*v)
	}
	return _u
}

// ClearIdempotencyKey clears the value of the "idempotency_key" field.
func (_u *ProvisioningRunUpdateOne) ClearIdempotencyKey() *ProvisioningRunUpdateOne {
	_u.mutation.ClearIdempotencyKey()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProvisioningRunUpdateOne) SetStatus(v provisioningrun.Status) *ProvisioningRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProvisioningRunUpdateOne) SetNillableStatus(v *provisioningrun.Status) *ProvisioningRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSteps sets the "steps" field.
func (_u *ProvisioningRunUpdateOne) SetSteps(v []map[string]interface{}) *ProvisioningRunUpdateOne {
	_u.mutation.SetSteps(v)
	return _u
}

// AppendSteps appends value to the "steps" field.
func (_u *ProvisioningRunUpdateOne) AppendSteps(v []map[string]interface{}) *ProvisioningRunUpdateOne {
	_u.mutation.AppendSteps(v)
	return _u
}

// ClearSteps clears the value of the "steps" field.
func (_u *ProvisioningRunUpdateOne) ClearSteps() *ProvisioningRunUpdateOne {
	_u.mutation.ClearSteps()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ProvisioningRunUpdateOne) SetErrorMessage(v string) *ProvisioningRunUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ProvisioningRunUpdateOne) SetNillableErrorMessage(v *string) *ProvisioningRunUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ProvisioningRunUpdateOne) ClearErrorMessage() *ProvisioningRunUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ProvisioningRunUpdateOne) SetCreatedAt(v time.Time) *ProvisioningRunUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ProvisioningRunUpdateOne) SetNillableCreatedAt(v *time.Time) *ProvisioningRunUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProvisioningRunUpdateOne) SetUpdatedAt(v time.Time) *ProvisioningRunUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProvisioningRunMutation object of the builder.
func (_u *ProvisioningRunUpdateOne) Mutation() *ProvisioningRunMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProvisioningRunUpdate builder.
func (_u *ProvisioningRunUpdateOne) Where(ps ...predicate.ProvisioningRun) *ProvisioningRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProvisioningRunUpdateOne) Select(field string, fields ...string) *ProvisioningRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProvisioningRun entity.
func (_u *ProvisioningRunUpdateOne) Save(ctx context.Context) (*ProvisioningRun, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProvisioningRunUpdateOne) SaveX(ctx context.Context) *ProvisioningRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProvisioningRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProvisioningRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProvisioningRunUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := provisioningrun.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProvisioningRunUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := provisioningrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProvisioningRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ProvisioningRunUpdateOne) sqlSave(ctx context.Context) (_node *ProvisioningRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(provisioningrun.Table, provisioningrun.Columns, sqlgraph.NewFieldSpec(provisioningrun.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProvisioningRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, provisioningrun.FieldID)
		for _, f := range fields {
			if !provisioningrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != provisioningrun.FieldID {
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
		_spec.SetField(provisioningrun.FieldOrgID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TeamNodeID(); ok {
		_spec.SetField(provisioningrun.FieldTeamNodeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.IdempotencyKey(); ok {
		_spec.SetField(provisioningrun.FieldIdempotencyKey, field.TypeString, value)
	}
	if _u.mutation.IdempotencyKeyCleared() {
		_spec.ClearField(provisioningrun.FieldIdempotencyKey, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(provisioningrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Steps(); ok {
		_spec.SetField(provisioningrun.FieldSteps, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSteps(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, provisioningrun.FieldSteps, value)
		})
	}
	if _u.mutation.StepsCleared() {
		_spec.ClearField(provisioningrun.FieldSteps, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(provisioningrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(provisioningrun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(provisioningrun.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(provisioningrun.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ProvisioningRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{provisioningrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
