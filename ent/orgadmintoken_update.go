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
	"github.com/incidentfox/incidentfox/ent/orgadmintoken"
	"github.com/incidentfox/incidentfox/ent/predicate"
)

// OrgAdminTokenUpdate is the builder for updating OrgAdminToken entities.
type OrgAdminTokenUpdate struct {
	config
	hooks    []Hook
	mutation *OrgAdminTokenMutation
}

// Where appends a list predicates to the OrgAdminTokenUpdate builder.
func (_u *OrgAdminTokenUpdate) Where(ps ...predicate.OrgAdminToken) *OrgAdminTokenUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOrgID sets the "org_id" field.
func (_u *OrgAdminTokenUpdate) SetOrgID(v string) *OrgAdminTokenUpdate {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *OrgAdminTokenUpdate) SetNillableOrgID(v *string) *OrgAdminTokenUpdate {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetTokenHash sets the "token_hash" field.
func (_u *OrgAdminTokenUpdate) SetTokenHash(v string) *OrgAdminTokenUpdate {
	_u.mutation.SetTokenHash(v)
	return _u
}

// SetNillableTokenHash sets the "token_hash" field if the given value is not nil.
func (_u *OrgAdminTokenUpdate) SetNillableTokenHash(v *string) *OrgAdminTokenUpdate {
	if v != nil {
		_u.SetTokenHash(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *OrgAdminTokenUpdate) SetCreatedAt(v time.Time) *OrgAdminTokenUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *OrgAdminTokenUpdate) SetNillableCreatedAt(v *time.Time) *OrgAdminTokenUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetLastUsedAt sets the "last_used_at" field.
func (_u *OrgAdminTokenUpdate) SetLastUsedAt(v time.Time) *OrgAdminTokenUpdate {
	_u.mutation.SetLastUsedAt(v)
	return _u
}

// SetNillableLastUsedAt sets the "last_used_at" field if the given value is not nil.
func (_u *OrgAdminTokenUpdate) SetNillableLastUsedAt(v *time.Time) *OrgAdminTokenUpdate {
	if v != nil {
		_u.SetLastUsedAt(*v)
	}
	return _u
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (_u *OrgAdminTokenUpdate) ClearLastUsedAt() *OrgAdminTokenUpdate {
	_u.mutation.ClearLastUsedAt()
	return _u
}

// SetRevokedAt sets the "revoked_at" field.
func (_u *OrgAdminTokenUpdate) SetRevokedAt(v time.Time) *OrgAdminTokenUpdate {
	_u.mutation.SetRevokedAt(v)
	return _u
}

// SetNillableRevokedAt sets the "revoked_at" field if the given value is not nil.
func (_u *OrgAdminTokenUpdate) SetNillableRevokedAt(v *time.Time) *OrgAdminTokenUpdate {
	if v != nil {
		_u.SetRevokedAt(*v)
	}
	return _u
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (_u *OrgAdminTokenUpdate) ClearRevokedAt() *OrgAdminTokenUpdate {
	_u.mutation.ClearRevokedAt()
	return _u
}

// Mutation returns the OrgAdminTokenMutation object of the builder.
func (_u *OrgAdminTokenUpdate) Mutation() *OrgAdminTokenMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OrgAdminTokenUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrgAdminTokenUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OrgAdminTokenUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrgAdminTokenUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *OrgAdminTokenUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(orgadmintoken.Table, orgadmintoken.Columns, sqlgraph.NewFieldSpec(orgadmintoken.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OrgID(); ok {
		_spec.SetField(orgadmintoken.FieldOrgID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TokenHash(); ok {
		_spec.SetField(orgadmintoken.FieldTokenHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(orgadmintoken.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastUsedAt(); ok {
		_spec.SetField(orgadmintoken.FieldLastUsedAt, field.TypeTime, value)
	}
	if _u.mutation.LastUsedAtCleared() {
		_spec.ClearField(orgadmintoken.FieldLastUsedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RevokedAt(); ok {
		_spec.SetField(orgadmintoken.FieldRevokedAt, field.TypeTime, value)
	}
	if _u.mutation.RevokedAtCleared() {
		_spec.ClearField(orgadmintoken.FieldRevokedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{orgadmintoken.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OrgAdminTokenUpdateOne is the builder for updating a single OrgAdminToken entity.
type OrgAdminTokenUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OrgAdminTokenMutation
}

// SetOrgID sets the "org_id" field.
func (_u *OrgAdminTokenUpdateOne) SetOrgID(v string) *OrgAdminTokenUpdateOne {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *OrgAdminTokenUpdateOne) SetNillableOrgID(v *string) *OrgAdminTokenUpdateOne {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetTokenHash sets the "token_hash" field.
func (_u *OrgAdminTokenUpdateOne) SetTokenHash(v string) *OrgAdminTokenUpdateOne {
	_u.mutation.SetTokenHash(v)
	return _u
}

// SetNillableTokenHash sets the "token_hash" field if the given value is not nil.
func (_u *OrgAdminTokenUpdateOne) SetNillableTokenHash(v *string) *OrgAdminTokenUpdateOne {
	if v != nil {
		_u.SetTokenHash(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *OrgAdminTokenUpdateOne) SetCreatedAt(v time.Time) *OrgAdminTokenUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *OrgAdminTokenUpdateOne) SetNillableCreatedAt(v *time.Time) *OrgAdminTokenUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetLastUsedAt sets the "last_used_at" field.
func (_u *OrgAdminTokenUpdateOne) SetLastUsedAt(v time.Time) *OrgAdminTokenUpdateOne {
	_u.mutation.SetLastUsedAt(v)
	return _u
}

// SetNillableLastUsedAt sets the "last_used_at" field if the given value is not nil.
func (_u *OrgAdminTokenUpdateOne) SetNillableLastUsedAt(v *time.Time) *OrgAdminTokenUpdateOne {
	if v != nil {
		_u.SetLastUsedAt(*v)
	}
	return _u
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (_u *OrgAdminTokenUpdateOne) ClearLastUsedAt() *OrgAdminTokenUpdateOne {
	_u.mutation.ClearLastUsedAt()
	return _u
}

// SetRevokedAt sets the "revoked_at" field.
func (_u *OrgAdminTokenUpdateOne) SetRevokedAt(v time.Time) *OrgAdminTokenUpdateOne {
	_u.mutation.SetRevokedAt(v)
	return _u
}

// SetNillableRevokedAt sets the "revoked_at" field if the given value is not nil.
func (_u *OrgAdminTokenUpdateOne) SetNillableRevokedAt(v *time.Time) *OrgAdminTokenUpdateOne {
	if v != nil {
		_u.SetRevokedAt(*v)
	}
	return _u
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (_u *OrgAdminTokenUpdateOne) ClearRevokedAt() *OrgAdminTokenUpdateOne {
	_u.mutation.ClearRevokedAt()
	return _u
}

// Mutation returns the OrgAdminTokenMutation object of the builder.
func (_u *OrgAdminTokenUpdateOne) Mutation() *OrgAdminTokenMutation {
	return _u.mutation
}

// Where appends a list predicates to the OrgAdminTokenUpdate builder.
func (_u *OrgAdminTokenUpdateOne) Where(ps ...predicate.OrgAdminToken) *OrgAdminTokenUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OrgAdminTokenUpdateOne) Select(field string, fields ...string) *OrgAdminTokenUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OrgAdminToken entity.
func (_u *OrgAdminTokenUpdateOne) Save(ctx context.Context) (*OrgAdminToken, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrgAdminTokenUpdateOne) SaveX(ctx context.Context) *OrgAdminToken {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OrgAdminTokenUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrgAdminTokenUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *OrgAdminTokenUpdateOne) sqlSave(ctx context.Context) (_node *OrgAdminToken, err error) {
	_spec := sqlgraph.NewUpdateSpec(orgadmintoken.Table, orgadmintoken.Columns, sqlgraph.NewFieldSpec(orgadmintoken.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OrgAdminToken.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, orgadmintoken.FieldID)
		for _, f := range fields {
			if !orgadmintoken.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != orgadmintoken.FieldID {
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
		_spec.SetField(orgadmintoken.FieldOrgID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TokenHash(); ok {
		_spec.SetField(orgadmintoken.FieldTokenHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(orgadmintoken.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastUsedAt(); ok {
		_spec.SetField(orgadmintoken.FieldLastUsedAt, field.TypeTime, value)
	}
	if _u.mutation.LastUsedAtCleared() {
		_spec.ClearField(orgadmintoken.FieldLastUsedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RevokedAt(); ok {
		_spec.SetField(orgadmintoken.FieldRevokedAt, field.TypeTime, value)
	}
	if _u.mutation.RevokedAtCleared() {
		_spec.ClearField(orgadmintoken.FieldRevokedAt, field.TypeTime)
	}
	_node = &OrgAdminToken{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{orgadmintoken.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
