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
	"github.com/incidentfox/incidentfox/ent/impersonationjti"
	"github.com/incidentfox/incidentfox/ent/predicate"
)

// ImpersonationJTIUpdate is the builder for updating ImpersonationJTI entities.
type ImpersonationJTIUpdate struct {
	config
	hooks    []Hook
	mutation *ImpersonationJTIMutation
}

// Where appends a list predicates to the ImpersonationJTIUpdate builder.
func (_u *ImpersonationJTIUpdate) Where(ps ...predicate.ImpersonationJTI) *ImpersonationJTIUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOrgID sets the "org_id" field.
func (_u *ImpersonationJTIUpdate) SetOrgID(v string) *ImpersonationJTIUpdate {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *ImpersonationJTIUpdate) SetNillableOrgID(v *string) *ImpersonationJTIUpdate {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetTeamNodeID sets the "team_node_id" field.
func (_u *ImpersonationJTIUpdate) SetTeamNodeID(v string) *ImpersonationJTIUpdate {
	_u.mutation.SetTeamNodeID(v)
	return _u
}

// SetNillableTeamNodeID sets the "team_node_id" field if the given value is not nil.
func (_u *ImpersonationJTIUpdate) SetNillableTeamNodeID(v *string) *ImpersonationJTIUpdate {
	if v != nil {
		_u.SetTeamNodeID(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ImpersonationJTIUpdate) SetCreatedAt(v time.Time) *ImpersonationJTIUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ImpersonationJTIUpdate) SetNillableCreatedAt(v *time.Time) *ImpersonationJTIUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ImpersonationJTIUpdate) SetExpiresAt(v time.Time) *ImpersonationJTIUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ImpersonationJTIUpdate) SetNillableExpiresAt(v *time.Time) *ImpersonationJTIUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the ImpersonationJTIMutation object of the builder.
func (_u *ImpersonationJTIUpdate) Mutation() *ImpersonationJTIMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ImpersonationJTIUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ImpersonationJTIUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ImpersonationJTIUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ImpersonationJTIUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ImpersonationJTIUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(impersonationjti.Table, impersonationjti.Columns, sqlgraph.NewFieldSpec(impersonationjti.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OrgID(); ok {
		_spec.SetField(impersonationjti.FieldOrgID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TeamNodeID(); ok {
		_spec.SetField(impersonationjti.FieldTeamNodeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(impersonationjti.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(impersonationjti.FieldExpiresAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{impersonationjti.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ImpersonationJTIUpdateOne is the builder for updating a single ImpersonationJTI entity.
type ImpersonationJTIUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ImpersonationJTIMutation
}

// SetOrgID sets the "org_id" field.
func (_u *ImpersonationJTIUpdateOne) SetOrgID(v string) *ImpersonationJTIUpdateOne {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *ImpersonationJTIUpdateOne) SetNillableOrgID(v *string) *ImpersonationJTIUpdateOne {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetTeamNodeID sets the "team_node_id" field.
func (_u *ImpersonationJTIUpdateOne) SetTeamNodeID(v string) *ImpersonationJTIUpdateOne {
	_u.mutation.SetTeamNodeID(v)
	return _u
}

// SetNillableTeamNodeID sets the "team_node_id" field if the given value is not nil.
func (_u *ImpersonationJTIUpdateOne) SetNillableTeamNodeID(v *string) *ImpersonationJTIUpdateOne {
	if v != nil {
		_u.SetTeamNodeID(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ImpersonationJTIUpdateOne) SetCreatedAt(v time.Time) *ImpersonationJTIUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ImpersonationJTIUpdateOne) SetNillableCreatedAt(v *time.Time) *ImpersonationJTIUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ImpersonationJTIUpdateOne) SetExpiresAt(v time.Time) *ImpersonationJTIUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ImpersonationJTIUpdateOne) SetNillableExpiresAt(v *time.Time) *ImpersonationJTIUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the ImpersonationJTIMutation object of the builder.
func (_u *ImpersonationJTIUpdateOne) Mutation() *ImpersonationJTIMutation {
	return _u.mutation
}

// Where appends a list predicates to the ImpersonationJTIUpdate builder.
func (_u *ImpersonationJTIUpdateOne) Where(ps ...predicate.ImpersonationJTI) *ImpersonationJTIUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ImpersonationJTIUpdateOne) Select(field string, fields ...string) *ImpersonationJTIUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ImpersonationJTI entity.
func (_u *ImpersonationJTIUpdateOne) Save(ctx context.Context) (*ImpersonationJTI, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ImpersonationJTIUpdateOne) SaveX(ctx context.Context) *ImpersonationJTI {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ImpersonationJTIUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ImpersonationJTIUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ImpersonationJTIUpdateOne) sqlSave(ctx context.Context) (_node *ImpersonationJTI, err error) {
	_spec := sqlgraph.NewUpdateSpec(impersonationjti.Table, impersonationjti.Columns, sqlgraph.NewFieldSpec(impersonationjti.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ImpersonationJTI.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, impersonationjti.FieldID)
		for _, f := range fields {
			if !impersonationjti.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != impersonationjti.FieldID {
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
		_spec.SetField(impersonationjti.FieldOrgID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TeamNodeID(); ok {
		_spec.SetField(impersonationjti.FieldTeamNodeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(impersonationjti.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(impersonationjti.FieldExpiresAt, field.TypeTime, value)
	}
	_node = &ImpersonationJTI{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{impersonationjti.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
