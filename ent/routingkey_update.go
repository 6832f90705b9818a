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
	"github.com/incidentfox/incidentfox/ent/routingkey"
)

// RoutingKeyUpdate is the builder for updating RoutingKey entities.
type RoutingKeyUpdate struct {
	config
	hooks    []Hook
	mutation *RoutingKeyMutation
}

// Where appends a list predicates to the RoutingKeyUpdate builder.
func (_u *RoutingKeyUpdate) Where(ps ...predicate.RoutingKey) *RoutingKeyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSource sets the "source" field.
func (_u *RoutingKeyUpdate) SetSource(v routingkey.Source) *RoutingKeyUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *RoutingKeyUpdate) SetNillableSource(v *routingkey.Source) *RoutingKeyUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetKey sets the "key" field.
func (_u *RoutingKeyUpdate) SetKey(v string) *RoutingKeyUpdate {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *RoutingKeyUpdate) SetNillableKey(v *string) *RoutingKeyUpdate {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetOrgID sets the "org_id" field.
func (_u *RoutingKeyUpdate) SetOrgID(v string) *RoutingKeyUpdate {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *RoutingKeyUpdate) SetNillableOrgID(v *string) *RoutingKeyUpdate {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetTeamNodeID sets the "team_node_id" field.
func (_u *RoutingKeyUpdate) SetTeamNodeID(v string) *RoutingKeyUpdate {
	_u.mutation.SetTeamNodeID(v)
	return _u
}

// SetNillableTeamNodeID sets the "team_node_id" field if the given value is not nil.
func (_u *RoutingKeyUpdate) SetNillableTeamNodeID(v *string) *RoutingKeyUpdate {
	if v != nil {
		_u.SetTeamNodeID(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *RoutingKeyUpdate) SetCreatedAt(v time.Time) *RoutingKeyUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *RoutingKeyUpdate) SetNillableCreatedAt(v *time.Time) *RoutingKeyUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the RoutingKeyMutation object of the builder.
func (_u *RoutingKeyUpdate) Mutation() *RoutingKeyMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RoutingKeyUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RoutingKeyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RoutingKeyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RoutingKeyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RoutingKeyUpdate) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := routingkey.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "RoutingKey.source": %w`, err)}
		}
	}
	return nil
}

func (_u *RoutingKeyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(routingkey.Table, routingkey.Columns, sqlgraph.NewFieldSpec(routingkey.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(routingkey.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(routingkey.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.OrgID(); ok {
		_spec.SetField(routingkey.FieldOrgID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TeamNodeID(); ok {
		_spec.SetField(routingkey.FieldTeamNodeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(routingkey.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{routingkey.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RoutingKeyUpdateOne is the builder for updating a single RoutingKey entity.
type RoutingKeyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RoutingKeyMutation
}

// SetSource sets the "source" field.
func (_u *RoutingKeyUpdateOne) SetSource(v routingkey.Source) *RoutingKeyUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *RoutingKeyUpdateOne) SetNillableSource(v *routingkey.Source) *RoutingKeyUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetKey sets the "key" field.
func (_u *RoutingKeyUpdateOne) SetKey(v string) *RoutingKeyUpdateOne {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *RoutingKeyUpdateOne) SetNillableKey(v *string) *RoutingKeyUpdateOne {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetOrgID sets the "org_id" field.
func (_u *RoutingKeyUpdateOne) SetOrgID(v string) *RoutingKeyUpdateOne {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *RoutingKeyUpdateOne) SetNillableOrgID(v *string) *RoutingKeyUpdateOne {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetTeamNodeID sets the "team_node_id" field.
func (_u *RoutingKeyUpdateOne) SetTeamNodeID(v string) *RoutingKeyUpdateOne {
	_u.mutation.SetTeamNodeID(v)
	return _u
}

// SetNillableTeamNodeID sets the "team_node_id" field if the given value is not nil.
func (_u *RoutingKeyUpdateOne) SetNillableTeamNodeID(v *string) *RoutingKeyUpdateOne {
	if v != nil {
		_u.SetTeamNodeID(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *RoutingKeyUpdateOne) SetCreatedAt(v time.Time) *RoutingKeyUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *RoutingKeyUpdateOne) SetNillableCreatedAt(v *time.Time) *RoutingKeyUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the RoutingKeyMutation object of the builder.
func (_u *RoutingKeyUpdateOne) Mutation() *RoutingKeyMutation {
	return _u.mutation
}

// Where appends a list predicates to the RoutingKeyUpdate builder.
func (_u *RoutingKeyUpdateOne) Where(ps ...predicate.RoutingKey) *RoutingKeyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RoutingKeyUpdateOne) Select(field string, fields ...string) *RoutingKeyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RoutingKey entity.
func (_u *RoutingKeyUpdateOne) Save(ctx context.Context) (*RoutingKey, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RoutingKeyUpdateOne) SaveX(ctx context.Context) *RoutingKey {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RoutingKeyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RoutingKeyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RoutingKeyUpdateOne) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := routingkey.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "RoutingKey.source": %w`, err)}
		}
	}
	return nil
}

func (_u *RoutingKeyUpdateOne) sqlSave(ctx context.Context) (_node *RoutingKey, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(routingkey.Table, routingkey.Columns, sqlgraph.NewFieldSpec(routingkey.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RoutingKey.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, routingkey.FieldID)
		for _, f := range fields {
			if !routingkey.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != routingkey.FieldID {
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
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(routingkey.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(routingkey.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.OrgID(); ok {
		_spec.SetField(routingkey.FieldOrgID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TeamNodeID(); ok {
		_spec.SetField(routingkey.FieldTeamNodeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(routingkey.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &RoutingKey{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{routingkey.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
