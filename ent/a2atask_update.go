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
	"github.com/incidentfox/incidentfox/ent/a2atask"
	"github.com/incidentfox/incidentfox/ent/predicate"
)

// A2ATaskUpdate is the builder for updating A2ATask entities.
type A2ATaskUpdate struct {
	config
	hooks    []Hook
	mutation *A2ATaskMutation
}

// Where appends a list predicates to the A2ATaskUpdate builder.
func (_u *A2ATaskUpdate) Where(ps ...predicate.A2ATask) *A2ATaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *A2ATaskUpdate) SetStatus(v a2atask.Status) *A2ATaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *A2ATaskUpdate) SetNillableStatus(v *a2atask.Status) *A2ATaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *A2ATaskUpdate) SetMessage(v map[string]interface{}) *A2ATaskUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetResultMessage sets the "result_message" field.
func (_u *A2ATaskUpdate) SetResultMessage(v map[string]interface{}) *A2ATaskUpdate {
	_u.mutation.SetResultMessage(v)
	return _u
}

// ClearResultMessage clears the value of the "result_message" field.
func (_u *A2ATaskUpdate) ClearResultMessage() *A2ATaskUpdate {
	_u.mutation.ClearResultMessage()
	return _u
}

// SetArtifacts sets the "artifacts" field.
func (_u *A2ATaskUpdate) SetArtifacts(v []map[string]interface{}) *A2ATaskUpdate {
	_u.mutation.SetArtifacts(v)
	return _u
}

// AppendArtifacts appends value to the "artifacts" field.
func (_u *A2ATaskUpdate) AppendArtifacts(v []map[string]interface{}) *A2ATaskUpdate {
	_u.mutation.AppendArtifacts(v)
	return _u
}

// ClearArtifacts clears the value of the "artifacts" field.
func (_u *A2ATaskUpdate) ClearArtifacts() *A2ATaskUpdate {
	_u.mutation.ClearArtifacts()
	return _u
}

// SetHistory sets the "history" field.
func (_u *A2ATaskUpdate) SetHistory(v []map[string]interface{}) *A2ATaskUpdate {
	_u.mutation.SetHistory(v)
	return _u
}

// AppendHistory appends value to the "history" field.
func (_u *A2ATaskUpdate) AppendHistory(v []map[string]interface{}) *A2ATaskUpdate {
	_u.mutation.AppendHistory(v)
	return _u
}

// ClearHistory clears the value of the "history" field.
func (_u *A2ATaskUpdate) ClearHistory() *A2ATaskUpdate {
	_u.mutation.ClearHistory()
	return _u
}

// SetOrgID sets the "org_id" field.
func (_u *A2ATaskUpdate) SetOrgID(v string) *A2ATaskUpdate {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *A2ATaskUpdate) SetNillableOrgID(v *string) *A2ATaskUpdate {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetTeamNodeID sets the "team_node_id" field.
func (_u *A2ATaskUpdate) SetTeamNodeID(v string) *A2ATaskUpdate {
	_u.mutation.SetTeamNodeID(v)
	return _u
}

// SetNillableTeamNodeID sets the "team_node_id" field if the given value is not nil.
func (_u *A2ATaskUpdate) SetNillableTeamNodeID(v *string) *A2ATaskUpdate {
	if v != nil {
		_u.SetTeamNodeID(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *A2ATaskUpdate) SetCreatedAt(v time.Time) *A2ATaskUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *A2ATaskUpdate) SetNillableCreatedAt(v *time.Time) *A2ATaskUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *A2ATaskUpdate) SetUpdatedAt(v time.Time) *A2ATaskUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the A2ATaskMutation object of the builder.
func (_u *A2ATaskUpdate) Mutation() *A2ATaskMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *A2ATaskUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *A2ATaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *A2ATaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *A2ATaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *A2ATaskUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := a2atask.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *A2ATaskUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := a2atask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "A2ATask.status": %w`, err)}
		}
	}
	return nil
}

func (_u *A2ATaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(a2atask.Table, a2atask.Columns, sqlgraph.NewFieldSpec(a2atask.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(a2atask.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(a2atask.FieldMessage, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ResultMessage(); ok {
		_spec.SetField(a2atask.FieldResultMessage, field.TypeJSON, value)
	}
	if _u.mutation.ResultMessageCleared() {
		_spec.ClearField(a2atask.FieldResultMessage, field.TypeJSON)
	}
	if value, ok := _u.mutation.Artifacts(); ok {
		_spec.SetField(a2atask.FieldArtifacts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedArtifacts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, a2atask.FieldArtifacts, value)
		})
	}
	if _u.mutation.ArtifactsCleared() {
		_spec.ClearField(a2atask.FieldArtifacts, field.TypeJSON)
	}
	if value, ok := _u.mutation.History(); ok {
		_spec.SetField(a2atask.FieldHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, a2atask.FieldHistory, value)
		})
	}
	if _u.mutation.HistoryCleared() {
		_spec.ClearField(a2atask.FieldHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.OrgID(); ok {
		_spec.SetField(a2atask.FieldOrgID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TeamNodeID(); ok {
		_spec.SetField(a2atask.FieldTeamNodeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(a2atask.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(a2atask.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{a2atask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// A2ATaskUpdateOne is the builder for updating a single A2ATask entity.
type A2ATaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *A2ATaskMutation
}

// SetStatus sets the "status" field.
func (_u *A2ATaskUpdateOne) SetStatus(v a2atask.Status) *A2ATaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *A2ATaskUpdateOne) SetNillableStatus(v *a2atask.Status) *A2ATaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *A2ATaskUpdateOne) SetMessage(v map[string]interface{}) *A2ATaskUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetResultMessage sets the "result_message" field.
func (_u *A2ATaskUpdateOne) SetResultMessage(v map[string]interface{}) *A2ATaskUpdateOne {
	_u.mutation.SetResultMessage(v)
	return _u
}

// ClearResultMessage clears the value of the "result_message" field.
func (_u *A2ATaskUpdateOne) ClearResultMessage() *A2ATaskUpdateOne {
	_u.mutation.ClearResultMessage()
	return _u
}

// SetArtifacts sets the "artifacts" field.
func (_u *A2ATaskUpdateOne) SetArtifacts(v []map[string]interface{}) *A2ATaskUpdateOne {
	_u.mutation.SetArtifacts(v)
	return _u
}

// AppendArtifacts appends value to the "artifacts" field.
func (_u *A2ATaskUpdateOne) AppendArtifacts(v []map[string]interface{}) *A2ATaskUpdateOne {
	_u.mutation.AppendArtifacts(v)
	return _u
}

// ClearArtifacts clears the value of the "artifacts" field.
func (_u *A2ATaskUpdateOne) ClearArtifacts() *A2ATaskUpdateOne {
	_u.mutation.ClearArtifacts()
	return _u
}

// SetHistory sets the "history" field.
func (_u *A2ATaskUpdateOne) SetHistory(v []map[string]interface{}) *A2ATaskUpdateOne {
	_u.mutation.SetHistory(v)
	return _u
}

// AppendHistory appends value to the "history" field.
func (_u *A2ATaskUpdateOne) AppendHistory(v []map[string]interface{}) *A2ATaskUpdateOne {
	_u.mutation.AppendHistory(v)
	return _u
}

// ClearHistory clears the value of the "history" field.
func (_u *A2ATaskUpdateOne) ClearHistory() *A2ATaskUpdateOne {
	_u.mutation.ClearHistory()
	return _u
}

// SetOrgID sets the "org_id" field.
func (_u *A2ATaskUpdateOne) SetOrgID(v string) *A2ATaskUpdateOne {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *A2ATaskUpdateOne) SetNillableOrgID(v *string) *A2ATaskUpdateOne {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetTeamNodeID sets the "team_node_id" field.
func (_u *A2ATaskUpdateOne) SetTeamNodeID(v string) *A2ATaskUpdateOne {
	_u.mutation.SetTeamNodeID(v)
	return _u
}

// SetNillableTeamNodeID sets the "team_node_id" field if the given value is not nil.
func (_u *A2ATaskUpdateOne) SetNillableTeamNodeID(v *string) *A2ATaskUpdateOne {
	if v != nil {
		_u.SetTeamNodeID(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *A2ATaskUpdateOne) SetCreatedAt(v time.Time) *A2ATaskUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *A2ATaskUpdateOne) SetNillableCreatedAt(v *time.Time) *A2ATaskUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *A2ATaskUpdateOne) SetUpdatedAt(v time.Time) *A2ATaskUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the A2ATaskMutation object of the builder.
func (_u *A2ATaskUpdateOne) Mutation() *A2ATaskMutation {
	return _u.mutation
}

// Where appends a list predicates to the A2ATaskUpdate builder.
func (_u *A2ATaskUpdateOne) Where(ps ...predicate.A2ATask) *A2ATaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *A2ATaskUpdateOne) Select(field string, fields ...string) *A2ATaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated A2ATask entity.
func (_u *A2ATaskUpdateOne) Save(ctx context.Context) (*A2ATask, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *A2ATaskUpdateOne) SaveX(ctx context.Context) *A2ATask {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *A2ATaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *A2ATaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *A2ATaskUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := a2atask.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *A2ATaskUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := a2atask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "A2ATask.status": %w`, err)}
		}
	}
	return nil
}

func (_u *A2ATaskUpdateOne) sqlSave(ctx context.Context) (_node *A2ATask, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(a2atask.Table, a2atask.Columns, sqlgraph.NewFieldSpec(a2atask.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "A2ATask.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, a2atask.FieldID)
		for _, f := range fields {
			if !a2atask.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != a2atask.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(a2atask.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(a2atask.FieldMessage, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ResultMessage(); ok {
		_spec.SetField(a2atask.FieldResultMessage, field.TypeJSON, value)
	}
	if _u.mutation.ResultMessageCleared() {
		_spec.ClearField(a2atask.FieldResultMessage, field.TypeJSON)
	}
	if value, ok := _u.mutation.Artifacts(); ok {
		_spec.SetField(a2atask.FieldArtifacts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedArtifacts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, a2atask.FieldArtifacts, value)
		})
	}
	if _u.mutation.ArtifactsCleared() {
		_spec.ClearField(a2atask.FieldArtifacts, field.TypeJSON)
	}
	if value, ok := _u.mutation.History(); ok {
		_spec.SetField(a2atask.FieldHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, a2atask.FieldHistory, value)
		})
	}
	if _u.mutation.HistoryCleared() {
		_spec.ClearField(a2atask.FieldHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.OrgID(); ok {
		_spec.SetField(a2atask.FieldOrgID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TeamNodeID(); ok {
		_spec.SetField(a2atask.FieldTeamNodeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(a2atask.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(a2atask.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &A2ATask{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{a2atask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
