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
	"github.com/incidentfox/incidentfox/ent/nodeconfighistory"
	"github.com/incidentfox/incidentfox/ent/predicate"
)

// NodeConfigHistoryUpdate is the builder for updating NodeConfigHistory entities.
type NodeConfigHistoryUpdate struct {
	config
	hooks    []Hook
	mutation *NodeConfigHistoryMutation
}

// Where appends a list predicates to the NodeConfigHistoryUpdate builder.
func (_u *NodeConfigHistoryUpdate) Where(ps ...predicate.NodeConfigHistory) *NodeConfigHistoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOrgID sets the "org_id" field.
func (_u *NodeConfigHistoryUpdate) SetOrgID(v string) *NodeConfigHistoryUpdate {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *NodeConfigHistoryUpdate) SetNillableOrgID(v *string) *NodeConfigHistoryUpdate {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetNodeID sets the "node_id" field.
func (_u *NodeConfigHistoryUpdate) SetNodeID(v string) *NodeConfigHistoryUpdate {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *NodeConfigHistoryUpdate) SetNillableNodeID(v *string) *NodeConfigHistoryUpdate {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// SetConfig sets the "config" field.
func (_u *NodeConfigHistoryUpdate) SetConfig(v map[string]interface{}) *NodeConfigHistoryUpdate {
	_u.mutation.SetConfig(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *NodeConfigHistoryUpdate) SetVersion(v int) *NodeConfigHistoryUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *NodeConfigHistoryUpdate) SetNillableVersion(v *int) *NodeConfigHistoryUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *NodeConfigHistoryUpdate) AddVersion(v int) *NodeConfigHistoryUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetRecordedAt sets the "recorded_at" field.
func (_u *NodeConfigHistoryUpdate) SetRecordedAt(v time.Time) *NodeConfigHistoryUpdate {
	_u.mutation.SetRecordedAt(v)
	return _u
}

// SetNillableRecordedAt sets the "recorded_at" field if the given value is not nil.
func (_u *NodeConfigHistoryUpdate) SetNillableRecordedAt(v *time.Time) *NodeConfigHistoryUpdate {
	if v != nil {
		_u.SetRecordedAt(*v)
	}
	return _u
}

// SetUpdatedBy sets the "updated_by" field.
func (_u *NodeConfigHistoryUpdate) SetUpdatedBy(v string) *NodeConfigHistoryUpdate {
	_u.mutation.SetUpdatedBy(v)
	return _u
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_u *NodeConfigHistoryUpdate) SetNillableUpdatedBy(v *string) *NodeConfigHistoryUpdate {
	if v != nil {
		_u.SetUpdatedBy(*v)
	}
	return _u
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (_u *NodeConfigHistoryUpdate) ClearUpdatedBy() *NodeConfigHistoryUpdate {
	_u.mutation.ClearUpdatedBy()
	return _u
}

// Mutation returns the NodeConfigHistoryMutation object of the builder.
func (_u *NodeConfigHistoryUpdate) Mutation() *NodeConfigHistoryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *NodeConfigHistoryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NodeConfigHistoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *NodeConfigHistoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NodeConfigHistoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *NodeConfigHistoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(nodeconfighistory.Table, nodeconfighistory.Columns, sqlgraph.NewFieldSpec(nodeconfighistory.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OrgID(); ok {
		_spec.SetField(nodeconfighistory.FieldOrgID, field.TypeString, value)
	}
	if value, ok := _u.mutation.NodeID(); ok {
		_spec.SetField(nodeconfighistory.FieldNodeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(nodeconfighistory.FieldConfig, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(nodeconfighistory.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(nodeconfighistory.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RecordedAt(); ok {
		_spec.SetField(nodeconfighistory.FieldRecordedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedBy(); ok {
		_spec.SetField(nodeconfighistory.FieldUpdatedBy, field.TypeString, value)
	}
	if _u.mutation.UpdatedByCleared() {
		_spec.ClearField(nodeconfighistory.FieldUpdatedBy, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{nodeconfighistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// NodeConfigHistoryUpdateOne is the builder for updating a single NodeConfigHistory entity.
type NodeConfigHistoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *NodeConfigHistoryMutation
}

// SetOrgID sets the "org_id" field.
func (_u *NodeConfigHistoryUpdateOne) SetOrgID(v string) *NodeConfigHistoryUpdateOne {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *NodeConfigHistoryUpdateOne) SetNillableOrgID(v *string) *NodeConfigHistoryUpdateOne {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetNodeID sets the "node_id" field.
func (_u *NodeConfigHistoryUpdateOne) SetNodeID(v string) *NodeConfigHistoryUpdateOne {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *NodeConfigHistoryUpdateOne) SetNillableNodeID(v *string) *NodeConfigHistoryUpdateOne {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// SetConfig sets the "config" field.
func (_u *NodeConfigHistoryUpdateOne) SetConfig(v map[string]interface{}) *NodeConfigHistoryUpdateOne {
	_u.mutation.SetConfig(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *NodeConfigHistoryUpdateOne) SetVersion(v int) *NodeConfigHistoryUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *NodeConfigHistoryUpdateOne) SetNillableVersion(v *int) *NodeConfigHistoryUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *NodeConfigHistoryUpdateOne) AddVersion(v int) *NodeConfigHistoryUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetRecordedAt sets the "recorded_at" field.
func (_u *NodeConfigHistoryUpdateOne) SetRecordedAt(v time.Time) *NodeConfigHistoryUpdateOne {
	_u.mutation.SetRecordedAt(v)
	return _u
}

// SetNillableRecordedAt sets the "recorded_at" field if the given value is not nil.
func (_u *NodeConfigHistoryUpdateOne) SetNillableRecordedAt(v *time.Time) *NodeConfigHistoryUpdateOne {
	if v != nil {
		_u.SetRecordedAt(*v)
	}
	return _u
}

// SetUpdatedBy sets the "updated_by" field.
func (_u *NodeConfigHistoryUpdateOne) SetUpdatedBy(v string) *NodeConfigHistoryUpdateOne {
	_u.mutation.SetUpdatedBy(v)
	return _u
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_u *NodeConfigHistoryUpdateOne) SetNillableUpdatedBy(v *string) *NodeConfigHistoryUpdateOne {
	if v != nil {
		_u.SetUpdatedBy(*v)
	}
	return _u
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (_u *NodeConfigHistoryUpdateOne) ClearUpdatedBy() *NodeConfigHistoryUpdateOne {
	_u.mutation.ClearUpdatedBy()
	return _u
}

// Mutation returns the NodeConfigHistoryMutation object of the builder.
func (_u *NodeConfigHistoryUpdateOne) Mutation() *NodeConfigHistoryMutation {
	return _u.mutation
}

// Where appends a list predicates to the NodeConfigHistoryUpdate builder.
func (_u *NodeConfigHistoryUpdateOne) Where(ps ...predicate.NodeConfigHistory) *NodeConfigHistoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *NodeConfigHistoryUpdateOne) Select(field string, fields ...string) *NodeConfigHistoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated NodeConfigHistory entity.
func (_u *NodeConfigHistoryUpdateOne) Save(ctx context.Context) (*NodeConfigHistory, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NodeConfigHistoryUpdateOne) SaveX(ctx context.Context) *NodeConfigHistory {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *NodeConfigHistoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NodeConfigHistoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *NodeConfigHistoryUpdateOne) sqlSave(ctx context.Context) (_node *NodeConfigHistory, err error) {
	_spec := sqlgraph.NewUpdateSpec(nodeconfighistory.Table, nodeconfighistory.Columns, sqlgraph.NewFieldSpec(nodeconfighistory.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "NodeConfigHistory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, nodeconfighistory.FieldID)
		for _, f := range fields {
			if !nodeconfighistory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != nodeconfighistory.FieldID {
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
		_spec.SetField(nodeconfighistory.FieldOrgID, field.TypeString, value)
	}
	if value, ok := _u.mutation.NodeID(); ok {
		_spec.SetField(nodeconfighistory.FieldNodeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(nodeconfighistory.FieldConfig, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(nodeconfighistory.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(nodeconfighistory.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RecordedAt(); ok {
		_spec.SetField(nodeconfighistory.FieldRecordedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedBy(); ok {
		_spec.SetField(nodeconfighistory.FieldUpdatedBy, field.TypeString, value)
	}
	if _u.mutation.UpdatedByCleared() {
		_spec.ClearField(nodeconfighistory.FieldUpdatedBy, field.TypeString)
	}
	_node = &NodeConfigHistory{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{nodeconfighistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
