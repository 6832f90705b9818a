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
	"github.com/incidentfox/incidentfox/ent/orgnode"
	"github.com/incidentfox/incidentfox/ent/predicate"
)

// OrgNodeUpdate is the builder for updating OrgNode entities.
type OrgNodeUpdate struct {
	config
	hooks    []Hook
	mutation *OrgNodeMutation
}

// Where appends a list predicates to the OrgNodeUpdate builder.
func (_u *OrgNodeUpdate) Where(ps ...predicate.OrgNode) *OrgNodeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOrgID sets the "org_id" field.
func (_u *OrgNodeUpdate) SetOrgID(v string) *OrgNodeUpdate {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *OrgNodeUpdate) SetNillableOrgID(v *string) *OrgNodeUpdate {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetNodeID sets the "node_id" field.
func (_u *OrgNodeUpdate) SetNodeID(v string) *OrgNodeUpdate {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *OrgNodeUpdate) SetNillableNodeID(v *string) *OrgNodeUpdate {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// SetParentID sets the "parent_id" field.
func (_u *OrgNodeUpdate) SetParentID(v string) *OrgNodeUpdate {
	_u.mutation.SetParentID(v)
	return _u
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_u *OrgNodeUpdate) SetNillableParentID(v *string) *OrgNodeUpdate {
	if v != nil {
		_u.SetParentID(*v)
	}
	return _u
}

// ClearParentID clears the value of the "parent_id" field.
func (_u *OrgNodeUpdate) ClearParentID() *OrgNodeUpdate {
	_u.mutation.ClearParentID()
	return _u
}

// SetKind sets the "kind" field.
func (_u *OrgNodeUpdate) SetKind(v orgnode.Kind) *OrgNodeUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *OrgNodeUpdate) SetNillableKind(v *orgnode.Kind) *OrgNodeUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *OrgNodeUpdate) SetName(v string) *OrgNodeUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *OrgNodeUpdate) SetNillableName(v *string) *OrgNodeUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDepth sets the "depth" field.
func (_u *OrgNodeUpdate) SetDepth(v int) *OrgNodeUpdate {
	_u.mutation.ResetDepth()
	_u.mutation.SetDepth(v)
	return _u
}

// SetNillableDepth sets the "depth" field if the given value is not nil.
func (_u *OrgNodeUpdate) SetNillableDepth(v *int) *OrgNodeUpdate {
	if v != nil {
		_u.SetDepth(*v)
	}
	return _u
}

// AddDepth adds value to the "depth" field.
func (_u *OrgNodeUpdate) AddDepth(v int) *OrgNodeUpdate {
	_u.mutation.AddDepth(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *OrgNodeUpdate) SetCreatedAt(v time.Time) *OrgNodeUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *OrgNodeUpdate) SetNillableCreatedAt(v *time.Time) *OrgNodeUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the OrgNodeMutation object of the builder.
func (_u *OrgNodeUpdate) Mutation() *OrgNodeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OrgNodeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrgNodeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OrgNodeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrgNodeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrgNodeUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := orgnode.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "OrgNode.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *OrgNodeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(orgnode.Table, orgnode.Columns, sqlgraph.NewFieldSpec(orgnode.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OrgID(); ok {
		_spec.SetField(orgnode.FieldOrgID, field.TypeString, value)
	}
	if value, ok := _u.mutation.NodeID(); ok {
		_spec.SetField(orgnode.FieldNodeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ParentID(); ok {
		_spec.SetField(orgnode.FieldParentID, field.TypeString, value)
	}
	if _u.mutation.ParentIDCleared() {
		_spec.ClearField(orgnode.FieldParentID, field.TypeString)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(orgnode.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(orgnode.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Depth(); ok {
		_spec.SetField(orgnode.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDepth(); ok {
		_spec.AddField(orgnode.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(orgnode.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{orgnode.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OrgNodeUpdateOne is the builder for updating a single OrgNode entity.
type OrgNodeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OrgNodeMutation
}

// SetOrgID sets the "org_id" field.
func (_u *OrgNodeUpdateOne) SetOrgID(v string) *OrgNodeUpdateOne {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *OrgNodeUpdateOne) SetNillableOrgID(v *string) *OrgNodeUpdateOne {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetNodeID sets the "node_id" field.
func (_u *OrgNodeUpdateOne) SetNodeID(v string) *OrgNodeUpdateOne {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *OrgNodeUpdateOne) SetNillableNodeID(v *string) *OrgNodeUpdateOne {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// SetParentID sets the "parent_id" field.
func (_u *OrgNodeUpdateOne) SetParentID(v string) *OrgNodeUpdateOne {
	_u.mutation.SetParentID(v)
	return _u
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_u *OrgNodeUpdateOne) SetNillableParentID(v *string) *OrgNodeUpdateOne {
	if v != nil {
		_u.SetParentID(*v)
	}
	return _u
}

// ClearParentID clears the value of the "parent_id" field.
func (_u *OrgNodeUpdateOne) ClearParentID() *OrgNodeUpdateOne {
	_u.mutation.ClearParentID()
	return _u
}

// SetKind sets the "kind" field.
func (_u *OrgNodeUpdateOne) SetKind(v orgnode.Kind) *OrgNodeUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *OrgNodeUpdateOne) SetNillableKind(v *orgnode.Kind) *OrgNodeUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *OrgNodeUpdateOne) SetName(v string) *OrgNodeUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *OrgNodeUpdateOne) SetNillableName(v *string) *OrgNodeUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDepth sets the "depth" field.
func (_u *OrgNodeUpdateOne) SetDepth(v int) *OrgNodeUpdateOne {
	_u.mutation.ResetDepth()
	_u.mutation.SetDepth(v)
	return _u
}

// SetNillableDepth sets the "depth" field if the given value is not nil.
func (_u *OrgNodeUpdateOne) SetNillableDepth(v *int) *OrgNodeUpdateOne {
	if v != nil {
		_u.SetDepth(*v)
	}
	return _u
}

// AddDepth adds value to the "depth" field.
func (_u *OrgNodeUpdateOne) AddDepth(v int) *OrgNodeUpdateOne {
	_u.mutation.AddDepth(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *OrgNodeUpdateOne) SetCreatedAt(v time.Time) *OrgNodeUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *OrgNodeUpdateOne) SetNillableCreatedAt(v *time.Time) *OrgNodeUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the OrgNodeMutation object of the builder.
func (_u *OrgNodeUpdateOne) Mutation() *OrgNodeMutation {
	return _u.mutation
}

// Where appends a list predicates to the OrgNodeUpdate builder.
func (_u *OrgNodeUpdateOne) Where(ps ...predicate.OrgNode) *OrgNodeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OrgNodeUpdateOne) Select(field string, fields ...string) *OrgNodeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OrgNode entity.
func (_u *OrgNodeUpdateOne) Save(ctx context.Context) (*OrgNode, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrgNodeUpdateOne) SaveX(ctx context.Context) *OrgNode {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OrgNodeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrgNodeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrgNodeUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := orgnode.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "OrgNode.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *OrgNodeUpdateOne) sqlSave(ctx context.Context) (_node *OrgNode, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(orgnode.Table, orgnode.Columns, sqlgraph.NewFieldSpec(orgnode.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OrgNode.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, orgnode.FieldID)
		for _, f := range fields {
			if !orgnode.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != orgnode.FieldID {
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
		_spec.SetField(orgnode.FieldOrgID, field.TypeString, value)
	}
	if value, ok := _u.mutation.NodeID(); ok {
		_spec.SetField(orgnode.FieldNodeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ParentID(); ok {
		_spec.SetField(orgnode.FieldParentID, field.TypeString, value)
	}
	if _u.mutation.ParentIDCleared() {
		_spec.ClearField(orgnode.FieldParentID, field.TypeString)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(orgnode.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(orgnode.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Depth(); ok {
		_spec.SetField(orgnode.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDepth(); ok {
		_spec.AddField(orgnode.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(orgnode.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &OrgNode{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{orgnode.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
