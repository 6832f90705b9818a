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
	"github.com/incidentfox/incidentfox/ent/tokenaudit"
)

// TokenAuditUpdate is the builder for updating TokenAudit entities.
type TokenAuditUpdate struct {
	config
	hooks    []Hook
	mutation *TokenAuditMutation
}

// Where appends a list predicates to the TokenAuditUpdate builder.
func (_u *TokenAuditUpdate) Where(ps ...predicate.TokenAudit) *TokenAuditUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTs sets the "ts" field.
func (_u *TokenAuditUpdate) SetTs(v time.Time) *TokenAuditUpdate {
	_u.mutation.SetTs(v)
	return _u
}

// SetNillableTs sets the "ts" field if the given value is not nil.
func (_u *TokenAuditUpdate) SetNillableTs(v *time.Time) *TokenAuditUpdate {
	if v != nil {
		_u.SetTs(*v)
	}
	return _u
}

// SetOrgID sets the "org_id" field.
func (_u *TokenAuditUpdate) SetOrgID(v string) *TokenAuditUpdate {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *TokenAuditUpdate) SetNillableOrgID(v *string) *TokenAuditUpdate {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetTeamNodeID sets the "team_node_id" field.
func (_u *TokenAuditUpdate) SetTeamNodeID(v string) *TokenAuditUpdate {
	_u.mutation.SetTeamNodeID(v)
	return _u
}

// SetNillableTeamNodeID sets the "team_node_id" field if the given value is not nil.
func (_u *TokenAuditUpdate) SetNillableTeamNodeID(v *string) *TokenAuditUpdate {
	if v != nil {
		_u.SetTeamNodeID(*v)
	}
	return _u
}

// ClearTeamNodeID clears the value of the "team_node_id" field.
func (_u *TokenAuditUpdate) ClearTeamNodeID() *TokenAuditUpdate {
	_u.mutation.ClearTeamNodeID()
	return _u
}

// SetTokenID sets the "token_id" field.
func (_u *TokenAuditUpdate) SetTokenID(v string) *TokenAuditUpdate {
	_u.mutation.SetTokenID(v)
	return _u
}

// SetNillableTokenID sets the "token_id" field if the given value is not nil.
func (_u *TokenAuditUpdate) SetNillableTokenID(v *string) *TokenAuditUpdate {
	if v != nil {
		_u.SetTokenID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *TokenAuditUpdate) SetAction(v tokenaudit.Action) *TokenAuditUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *TokenAuditUpdate) SetNillableAction(v *tokenaudit.Action) *TokenAuditUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetActor sets the "actor" field.
func (_u *TokenAuditUpdate) SetActor(v string) *TokenAuditUpdate {
	_u.mutation.SetActor(v)
	return _u
}

// SetNillableActor sets the "actor" field if the given value is not nil.
func (_u *TokenAuditUpdate) SetNillableActor(v *string) *TokenAuditUpdate {
	if v != nil {
		_u.SetActor(*v)
	}
	return _u
}

// Mutation returns the TokenAuditMutation object of the builder.
func (_u *TokenAuditUpdate) Mutation() *TokenAuditMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TokenAuditUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TokenAuditUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TokenAuditUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TokenAuditUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TokenAuditUpdate) check() error {
	if v, ok := _u.mutation.Action(); ok {
		if err := tokenaudit.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "TokenAudit.action": %w`, err)}
		}
	}
	return nil
}

func (_u *TokenAuditUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tokenaudit.Table, tokenaudit.Columns, sqlgraph.NewFieldSpec(tokenaudit.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Ts(); ok {
		_spec.SetField(tokenaudit.FieldTs, field.TypeTime, value)
	}
	if value, ok := _u.mutation.OrgID(); ok {
		_spec.SetField(tokenaudit.FieldOrgID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TeamNodeID(); ok {
		_spec.SetField(tokenaudit.FieldTeamNodeID, field.TypeString, value)
	}
	if _u.mutation.TeamNodeIDCleared() {
		_spec.ClearField(tokenaudit.FieldTeamNodeID, field.TypeString)
	}
	if value, ok := _u.mutation.TokenID(); ok {
		_spec.SetField(tokenaudit.FieldTokenID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(tokenaudit.FieldAction, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Actor(); ok {
		_spec.SetField(tokenaudit.FieldActor, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tokenaudit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TokenAuditUpdateOne is the builder for updating a single TokenAudit entity.
type TokenAuditUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TokenAuditMutation
}

// SetTs sets the "ts" field.
func (_u *TokenAuditUpdateOne) SetTs(v time.Time) *TokenAuditUpdateOne {
	_u.mutation.SetTs(v)
	return _u
}

// SetNillableTs sets the "ts" field if the given value is not nil.
func (_u *TokenAuditUpdateOne) SetNillableTs(v *time.Time) *TokenAuditUpdateOne {
	if v != nil {
		_u.SetTs(*v)
	}
	return _u
}

// SetOrgID sets the "org_id" field.
func (_u *TokenAuditUpdateOne) SetOrgID(v string) *TokenAuditUpdateOne {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *TokenAuditUpdateOne) SetNillableOrgID(v *string) *TokenAuditUpdateOne {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetTeamNodeID sets the "team_node_id" field.
func (_u *TokenAuditUpdateOne) SetTeamNodeID(v string) *TokenAuditUpdateOne {
	_u.mutation.SetTeamNodeID(v)
	return _u
}

// SetNillableTeamNodeID sets the "team_node_id" field if the given value is not nil.
func (_u *TokenAuditUpdateOne) SetNillableTeamNodeID(v *string) *TokenAuditUpdateOne {
	if v != nil {
		_u.SetTeamNodeID(*v)
	}
	return _u
}

// ClearTeamNodeID clears the value of the "team_node_id" field.
func (_u *TokenAuditUpdateOne) ClearTeamNodeID() *TokenAuditUpdateOne {
	_u.mutation.ClearTeamNodeID()
	return _u
}

// SetTokenID sets the "token_id" field.
func (_u *TokenAuditUpdateOne) SetTokenID(v string) *TokenAuditUpdateOne {
	_u.mutation.SetTokenID(v)
	return _u
}

// SetNillableTokenID sets the "token_id" field if the given value is not nil.
func (_u *TokenAuditUpdateOne) SetNillableTokenID(v *string) *TokenAuditUpdateOne {
	if v != nil {
		_u.SetTokenID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *TokenAuditUpdateOne) SetAction(v tokenaudit.Action) *TokenAuditUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *TokenAuditUpdateOne) SetNillableAction(v *tokenaudit.Action) *TokenAuditUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetActor sets the "actor" field.
func (_u *TokenAuditUpdateOne) SetActor(v string) *TokenAuditUpdateOne {
	_u.mutation.SetActor(v)
	return _u
}

// SetNillableActor sets the "actor" field if the given value is not nil.
func (_u *TokenAuditUpdateOne) SetNillableActor(v *string) *TokenAuditUpdateOne {
	if v != nil {
		_u.SetActor(*v)
	}
	return _u
}

// Mutation returns the TokenAuditMutation object of the builder.
func (_u *TokenAuditUpdateOne) Mutation() *TokenAuditMutation {
	return _u.mutation
}

// Where appends a list predicates to the TokenAuditUpdate builder.
func (_u *TokenAuditUpdateOne) Where(ps ...predicate.TokenAudit) *TokenAuditUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TokenAuditUpdateOne) Select(field string, fields ...string) *TokenAuditUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TokenAudit entity.
func (_u *TokenAuditUpdateOne) Save(ctx context.Context) (*TokenAudit, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TokenAuditUpdateOne) SaveX(ctx context.Context) *TokenAudit {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TokenAuditUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TokenAuditUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TokenAuditUpdateOne) check() error {
	if v, ok := _u.mutation.Action(); ok {
		if err := tokenaudit.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "TokenAudit.action": %w`, err)}
		}
	}
	return nil
}

func (_u *TokenAuditUpdateOne) sqlSave(ctx context.Context) (_node *TokenAudit, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tokenaudit.Table, tokenaudit.Columns, sqlgraph.NewFieldSpec(tokenaudit.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TokenAudit.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tokenaudit.FieldID)
		for _, f := range fields {
			if !tokenaudit.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tokenaudit.FieldID {
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
	if value, ok := _u.mutation.Ts(); ok {
		_spec.SetField(tokenaudit.FieldTs, field.TypeTime, value)
	}
	if value, ok := _u.mutation.OrgID(); ok {
		_spec.SetField(tokenaudit.FieldOrgID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TeamNodeID(); ok {
		_spec.SetField(tokenaudit.FieldTeamNodeID, field.TypeString, value)
	}
	if _u.mutation.TeamNodeIDCleared() {
		_spec.ClearField(tokenaudit.FieldTeamNodeID, field.TypeString)
	}
	if value, ok := _u.mutation.TokenID(); ok {
		_spec.SetField(tokenaudit.FieldTokenID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(tokenaudit.FieldAction, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Actor(); ok {
		_spec.SetField(tokenaudit.FieldActor, field.TypeString, value)
	}
	_node = &TokenAudit{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tokenaudit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
