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
	"github.com/incidentfox/incidentfox/ent/nodeconfig"
	"github.com/incidentfox/incidentfox/ent/predicate"
)

// NodeConfigUpdate is the builder for updating NodeConfig entities.
type NodeConfigUpdate struct {
	config
	hooks    []Hook
	mutation *NodeConfigMutation
}

// Where appends a list predicates to the NodeConfigUpdate builder.
func (_u *NodeConfigUpdate) Where(ps ...predicate.NodeConfig) *NodeConfigUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOrgID sets the "org_id" field.
func (_u *NodeConfigUpdate) SetOrgID(v string) *NodeConfigUpdate {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *NodeConfigUpdate) SetNillableOrgID(v *string) *NodeConfigUpdate {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetNodeID sets the "node_id" field.
func (_u *NodeConfigUpdate) SetNodeID(v string) *NodeConfigUpdate {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *NodeConfigUpdate) SetNillableNodeID(v *string) *NodeConfigUpdate {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// SetConfig sets the "config" field.
func (_u *NodeConfigUpdate) SetConfig(v map[string]interface{}) *NodeConfigUpdate {
	_u.mutation.SetConfig(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *NodeConfigUpdate) SetVersion(v int) *NodeConfigUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *NodeConfigUpdate) SetNillableVersion(v *int) *NodeConfigUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *NodeConfigUpdate) AddVersion(v int) *NodeConfigUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *NodeConfigUpdate) SetUpdatedAt(v time.Time) *NodeConfigUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUpdatedBy sets the "updated_by" field.
func (_u *NodeConfigUpdate) SetUpdatedBy(v string) *NodeConfigUpdate {
	_u.mutation.SetUpdatedBy(v)
	return _u
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_u *NodeConfigUpdate) SetNillableUpdatedBy(v *string) *NodeConfigUpdate {
	if v != nil {
		_u.SetUpdatedBy(*v)
	}
	return _u
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (_u *NodeConfigUpdate) ClearUpdatedBy() *NodeConfigUpdate {
	_u.mutation.ClearUpdatedBy()
	return _u
}

// Mutation returns the NodeConfigMutation object of the builder.
func (_u *NodeConfigUpdate) Mutation() *NodeConfigMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *NodeConfigUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NodeConfigUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *NodeConfigUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NodeConfigUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *NodeConfigUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := nodeconfig.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NodeConfigUpdate) check() error {
	if v, ok := _u.mutation.Version(); ok {
		if err := nodeconfig.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "NodeConfig.version": %w`, err)}
		}
	}
	return nil
}

func (_u *NodeConfigUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(nodeconfig.Table, nodeconfig.Columns, sqlgraph.NewFieldSpec(nodeconfig.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OrgID(); ok {
		_spec.SetField(nodeconfig.FieldOrgID, field.TypeString, value)
	}
	if value, ok := _u.mutation.NodeID(); ok {
		_spec.SetField(nodeconfig.FieldNodeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(nodeconfig.FieldConfig, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(nodeconfig.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(nodeconfig.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(nodeconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedBy(); ok {
		_spec.SetField(nodeconfig.FieldUpdatedBy, field.TypeString, value)
	}
	if _u.mutation.UpdatedByCleared() {
		_spec.ClearField(nodeconfig.FieldUpdatedBy, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{nodeconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// NodeConfigUpdateOne is the builder for updating a single NodeConfig entity.
type NodeConfigUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *NodeConfigMutation
}

// SetOrgID sets the "org_id" field.
func (_u *NodeConfigUpdateOne) SetOrgID(v string) *NodeConfigUpdateOne {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *NodeConfigUpdateOne) SetNillableOrgID(v *string) *NodeConfigUpdateOne {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetNodeID sets the "node_id" field.
func (_u *NodeConfigUpdateOne) SetNodeID(v string) *NodeConfigUpdateOne {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *NodeConfigUpdateOne) SetNillableNodeID(v *string) *NodeConfigUpdateOne {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// SetConfig sets the "config" field.
func (_u *NodeConfigUpdateOne) SetConfig(v map[string]interface{}) *NodeConfigUpdateOne {
	_u.mutation.SetConfig(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *NodeConfigUpdateOne) SetVersion(v int) *NodeConfigUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *NodeConfigUpdateOne) SetNillableVersion(v *int) *NodeConfigUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *NodeConfigUpdateOne) AddVersion(v int) *NodeConfigUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *NodeConfigUpdateOne) SetUpdatedAt(v time.Time) *NodeConfigUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUpdatedBy sets the "updated_by" field.
func (_u *NodeConfigUpdateOne) SetUpdatedBy(v string) *NodeConfigUpdateOne {
	_u.mutation.SetUpdatedBy(v)
	return _u
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_u *NodeConfigUpdateOne) SetNillableUpdatedBy(v *string) *NodeConfigUpdateOne {
	if v != nil {
		_u.SetUpdatedBy(*v)
	}
	return _u
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (_u *NodeConfigUpdateOne) ClearUpdatedBy() *NodeConfigUpdateOne {
	_u.mutation.ClearUpdatedBy()
	return _u
}

// Mutation returns the NodeConfigMutation object of the builder.
func (_u *NodeConfigUpdateOne) Mutation() *NodeConfigMutation {
	return _u.mutation
}

// Where appends a list predicates to the NodeConfigUpdate builder.
func (_u *NodeConfigUpdateOne) Where(ps ...predicate.NodeConfig) *NodeConfigUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *NodeConfigUpdateOne) Select(field string, fields ...string) *NodeConfigUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated NodeConfig entity.
func (_u *NodeConfigUpdateOne) Save(ctx context.Context) (*NodeConfig, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NodeConfigUpdateOne) SaveX(ctx context.Context) *NodeConfig {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *NodeConfigUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NodeConfigUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *NodeConfigUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := nodeconfig.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NodeConfigUpdateOne) check() error {
	if v, ok := _u.mutation.Version(); ok {
		if err := nodeconfig.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "NodeConfig.version": %w`, err)}
		}
	}
	return nil
}

func (_u *NodeConfigUpdateOne) sqlSave(ctx context.Context) (_node *NodeConfig, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(nodeconfig.Table, nodeconfig.Columns, sqlgraph.NewFieldSpec(nodeconfig.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "NodeConfig.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, nodeconfig.FieldID)
		for _, f := range fields {
			if !nodeconfig.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != nodeconfig.FieldID {
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
		_spec.SetField(nodeconfig.FieldOrgID, field.TypeString, value)
	}
	if value, ok := _u.mutation.NodeID(); ok {
		_spec.SetField(nodeconfig.FieldNodeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(nodeconfig.FieldConfig, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(nodeconfig.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(nodeconfig.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(nodeconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedBy(); ok {
		_spec.SetField(nodeconfig.FieldUpdatedBy, field.TypeString, value)
	}
	if _u.mutation.UpdatedByCleared() {
		_spec.ClearField(nodeconfig.FieldUpdatedBy, field.TypeString)
	}
	_node = &NodeConfig{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{nodeconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
