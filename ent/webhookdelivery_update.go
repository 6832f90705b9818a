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
	"github.com/incidentfox/incidentfox/ent/webhookdelivery"
)

// WebhookDeliveryUpdate is the builder for updating WebhookDelivery entities.
type WebhookDeliveryUpdate struct {
	config
	hooks    []Hook
	mutation *WebhookDeliveryMutation
}

// Where appends a list predicates to the WebhookDeliveryUpdate builder.
func (_u *WebhookDeliveryUpdate) Where(ps ...predicate.WebhookDelivery) *WebhookDeliveryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVendor sets the "vendor" field.
func (_u *WebhookDeliveryUpdate) SetVendor(v string) *WebhookDeliveryUpdate {
	_u.mutation.SetVendor(v)
	return _u
}

// SetNillableVendor sets the "vendor" field if the given value is not nil.
func (_u *WebhookDeliveryUpdate) SetNillableVendor(v *string) *WebhookDeliveryUpdate {
	if v != nil {
		_u.SetVendor(*v)
	}
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *WebhookDeliveryUpdate) SetEventID(v string) *WebhookDeliveryUpdate {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *WebhookDeliveryUpdate) SetNillableEventID(v *string) *WebhookDeliveryUpdate {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetOrgID sets the "org_id" field.
func (_u *WebhookDeliveryUpdate) SetOrgID(v string) *WebhookDeliveryUpdate {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *WebhookDeliveryUpdate) SetNillableOrgID(v *string) *WebhookDeliveryUpdate {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// ClearOrgID clears the value of the "org_id" field.
func (_u *WebhookDeliveryUpdate) ClearOrgID() *WebhookDeliveryUpdate {
	_u.mutation.ClearOrgID()
	return _u
}

// SetTeamNodeID sets the "team_node_id" field.
func (_u *WebhookDeliveryUpdate) SetTeamNodeID(v string) *WebhookDeliveryUpdate {
	_u.mutation.SetTeamNodeID(v)
	return _u
}

// SetNillableTeamNodeID sets the "team_node_id" field if the given value is not nil.
func (_u *WebhookDeliveryUpdate) SetNillableTeamNodeID(v *string) *WebhookDeliveryUpdate {
	if v != nil {
		_u.SetTeamNodeID(*v)
	}
	return _u
}

// ClearTeamNodeID clears the value of the "team_node_id" field.
func (_u *WebhookDeliveryUpdate) ClearTeamNodeID() *WebhookDeliveryUpdate {
	_u.mutation.ClearTeamNodeID()
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *WebhookDeliveryUpdate) SetOutcome(v string) *WebhookDeliveryUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *WebhookDeliveryUpdate) SetNillableOutcome(v *string) *WebhookDeliveryUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// ClearOutcome clears the value of the "outcome" field.
func (_u *WebhookDeliveryUpdate) ClearOutcome() *WebhookDeliveryUpdate {
	_u.mutation.ClearOutcome()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *WebhookDeliveryUpdate) SetCreatedAt(v time.Time) *WebhookDeliveryUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *WebhookDeliveryUpdate) SetNillableCreatedAt(v *time.Time) *WebhookDeliveryUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the WebhookDeliveryMutation object of the builder.
func (_u *WebhookDeliveryUpdate) Mutation() *WebhookDeliveryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WebhookDeliveryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WebhookDeliveryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WebhookDeliveryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WebhookDeliveryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *WebhookDeliveryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(webhookdelivery.Table, webhookdelivery.Columns, sqlgraph.NewFieldSpec(webhookdelivery.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Vendor(); ok {
		_spec.SetField(webhookdelivery.FieldVendor, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(webhookdelivery.FieldEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.OrgID(); ok {
		_spec.SetField(webhookdelivery.FieldOrgID, field.TypeString, value)
	}
	if _u.mutation.OrgIDCleared() {
		_spec.ClearField(webhookdelivery.FieldOrgID, field.TypeString)
	}
	if value, ok := _u.mutation.TeamNodeID(); ok {
		_spec.SetField(webhookdelivery.FieldTeamNodeID, field.TypeString, value)
	}
	if _u.mutation.TeamNodeIDCleared() {
		_spec.ClearField(webhookdelivery.FieldTeamNodeID, field.TypeString)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(webhookdelivery.FieldOutcome, field.TypeString, value)
	}
	if _u.mutation.OutcomeCleared() {
		_spec.ClearField(webhookdelivery.FieldOutcome, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(webhookdelivery.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{webhookdelivery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WebhookDeliveryUpdateOne is the builder for updating a single WebhookDelivery entity.
type WebhookDeliveryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WebhookDeliveryMutation
}

// SetVendor sets the "vendor" field.
func (_u *WebhookDeliveryUpdateOne) SetVendor(v string) *WebhookDeliveryUpdateOne {
	_u.mutation.SetVendor(v)
	return _u
}

// SetNillableVendor sets the "vendor" field if the given value is not nil.
func (_u *WebhookDeliveryUpdateOne) SetNillableVendor(v *string) *WebhookDeliveryUpdateOne {
	if v != nil {
		_u.SetVendor(*v)
	}
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *WebhookDeliveryUpdateOne) SetEventID(v string) *WebhookDeliveryUpdateOne {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *WebhookDeliveryUpdateOne) SetNillableEventID(v *string) *WebhookDeliveryUpdateOne {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetOrgID sets the "org_id" field.
func (_u *WebhookDeliveryUpdateOne) SetOrgID(v string) *WebhookDeliveryUpdateOne {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *WebhookDeliveryUpdateOne) SetNillableOrgID(v *string) *WebhookDeliveryUpdateOne {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// ClearOrgID clears the value of the "org_id" field.
func (_u *WebhookDeliveryUpdateOne) ClearOrgID() *WebhookDeliveryUpdateOne {
	_u.mutation.ClearOrgID()
	return _u
}

// SetTeamNodeID sets the "team_node_id" field.
func (_u *WebhookDeliveryUpdateOne) SetTeamNodeID(v string) *WebhookDeliveryUpdateOne {
	_u.mutation.SetTeamNodeID(v)
	return _u
}

// SetNillableTeamNodeID sets the "team_node_id" field if the given value is not nil.
func (_u *WebhookDeliveryUpdateOne) SetNillableTeamNodeID(v *string) *WebhookDeliveryUpdateOne {
	if v != nil {
		_u.SetTeamNodeID(*v)
	}
	return _u
}

// ClearTeamNodeID clears the value of the "team_node_id" field.
func (_u *WebhookDeliveryUpdateOne) ClearTeamNodeID() *WebhookDeliveryUpdateOne {
	_u.mutation.ClearTeamNodeID()
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *WebhookDeliveryUpdateOne) SetOutcome(v string) *WebhookDeliveryUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *WebhookDeliveryUpdateOne) SetNillableOutcome(v *string) *WebhookDeliveryUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// ClearOutcome clears the value of the "outcome" field.
func (_u *WebhookDeliveryUpdateOne) ClearOutcome() *WebhookDeliveryUpdateOne {
	_u.mutation.ClearOutcome()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *WebhookDeliveryUpdateOne) SetCreatedAt(v time.Time) *WebhookDeliveryUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *WebhookDeliveryUpdateOne) SetNillableCreatedAt(v *time.Time) *WebhookDeliveryUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the WebhookDeliveryMutation object of the builder.
func (_u *WebhookDeliveryUpdateOne) Mutation() *WebhookDeliveryMutation {
	return _u.mutation
}

// Where appends a list predicates to the WebhookDeliveryUpdate builder.
func (_u *WebhookDeliveryUpdateOne) Where(ps ...predicate.WebhookDelivery) *WebhookDeliveryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WebhookDeliveryUpdateOne) Select(field string, fields ...string) *WebhookDeliveryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WebhookDelivery entity.
func (_u *WebhookDeliveryUpdateOne) Save(ctx context.Context) (*WebhookDelivery, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WebhookDeliveryUpdateOne) SaveX(ctx context.Context) *WebhookDelivery {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WebhookDeliveryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WebhookDeliveryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *WebhookDeliveryUpdateOne) sqlSave(ctx context.Context) (_node *WebhookDelivery, err error) {
	_spec := sqlgraph.NewUpdateSpec(webhookdelivery.Table, webhookdelivery.Columns, sqlgraph.NewFieldSpec(webhookdelivery.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WebhookDelivery.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, webhookdelivery.FieldID)
		for _, f := range fields {
			if !webhookdelivery.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != webhookdelivery.FieldID {
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
	if value, ok := _u.mutation.Vendor(); ok {
		_spec.SetField(webhookdelivery.FieldVendor, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(webhookdelivery.FieldEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.OrgID(); ok {
		_spec.SetField(webhookdelivery.FieldOrgID, field.TypeString, value)
	}
	if _u.mutation.OrgIDCleared() {
		_spec.ClearField(webhookdelivery.FieldOrgID, field.TypeString)
	}
	if value, ok := _u.mutation.TeamNodeID(); ok {
		_spec.SetField(webhookdelivery.FieldTeamNodeID, field.TypeString, value)
	}
	if _u.mutation.TeamNodeIDCleared() {
		_spec.ClearField(webhookdelivery.FieldTeamNodeID, field.TypeString)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(webhookdelivery.FieldOutcome, field.TypeString, value)
	}
	if _u.mutation.OutcomeCleared() {
		_spec.ClearField(webhookdelivery.FieldOutcome, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(webhookdelivery.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &WebhookDelivery{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{webhookdelivery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
