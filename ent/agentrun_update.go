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
	"github.com/incidentfox/incidentfox/ent/agentrun"
	"github.com/incidentfox/incidentfox/ent/predicate"
)

// AgentRunUpdate is the builder for updating AgentRun entities.
type AgentRunUpdate struct {
	config
	hooks    []Hook
	mutation *AgentRunMutation
}

// Where appends a list predicates to the AgentRunUpdate builder.
func (_u *AgentRunUpdate) Where(ps ...predicate.AgentRun) *AgentRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCorrelationID sets the "correlation_id" field.
func (_u *AgentRunUpdate) SetCorrelationID(v string) *AgentRunUpdate {
	_u.mutation.SetCorrelationID(v)
	return _u
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableCorrelationID(v *string) *AgentRunUpdate {
	if v != nil {
		_u.SetCorrelationID(*v)
	}
	return _u
}

// ClearCorrelationID clears the value of the "correlation_id" field.
func (_u *AgentRunUpdate) ClearCorrelationID() *AgentRunUpdate {
	_u.mutation.ClearCorrelationID()
	return _u
}

// SetOrgID sets the "org_id" field.
func (_u *AgentRunUpdate) SetOrgID(v string) *AgentRunUpdate {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableOrgID(v *string) *AgentRunUpdate {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetTeamNodeID sets the "team_node_id" field.
func (_u *AgentRunUpdate) SetTeamNodeID(v string) *AgentRunUpdate {
	_u.mutation.SetTeamNodeID(v)
	return _u
}

// SetNillableTeamNodeID sets the "team_node_id" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableTeamNodeID(v *string) *AgentRunUpdate {
	if v != nil {
		_u.SetTeamNodeID(*v)
	}
	return _u
}

// SetAgentName sets the "agent_name" field.
func (_u *AgentRunUpdate) SetAgentName(v string) *AgentRunUpdate {
	_u.mutation.SetAgentName(v)
	return _u
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableAgentName(v *string) *AgentRunUpdate {
	if v != nil {
		_u.SetAgentName(*v)
	}
	return _u
}

// SetTriggerSource sets the "trigger_source" field.
func (_u *AgentRunUpdate) SetTriggerSource(v string) *AgentRunUpdate {
	_u.mutation.SetTriggerSource(v)
	return _u
}

// SetNillableTriggerSource sets the "trigger_source" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableTriggerSource(v *string) *AgentRunUpdate {
	if v != nil {
		_u.SetTriggerSource(*v)
	}
	return _u
}

// ClearTriggerSource clears the value of the "trigger_source" field.
func (_u *AgentRunUpdate) ClearTriggerSource() *AgentRunUpdate {
	_u.mutation.ClearTriggerSource()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentRunUpdate) SetStatus(v agentrun.Status) *AgentRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableStatus(v *agentrun.Status) *AgentRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AgentRunUpdate) SetStartedAt(v time.Time) *AgentRunUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableStartedAt(v *time.Time) *AgentRunUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *AgentRunUpdate) SetEndedAt(v time.Time) *AgentRunUpdate {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableEndedAt(v *time.Time) *AgentRunUpdate {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *AgentRunUpdate) ClearEndedAt() *AgentRunUpdate {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetMaxTurns sets the "max_turns" field.
func (_u *AgentRunUpdate) SetMaxTurns(v int) *AgentRunUpdate {
	_u.mutation.ResetMaxTurns()
	_u.mutation.SetMaxTurns(v)
	return _u
}

// SetNillableMaxTurns sets the "max_turns" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableMaxTurns(v *int) *AgentRunUpdate {
	if v != nil {
		_u.SetMaxTurns(*v)
	}
	return _u
}

// AddMaxTurns adds value to the "max_turns" field.
func (_u *AgentRunUpdate) AddMaxTurns(v int) *AgentRunUpdate {
	_u.mutation.AddMaxTurns(v)
	return _u
}

// SetEventsCount sets the "events_count" field.
func (_u *AgentRunUpdate) SetEventsCount(v int) *AgentRunUpdate {
	_u.mutation.ResetEventsCount()
	_u.mutation.SetEventsCount(v)
	return _u
}

// SetNillableEventsCount sets the "events_count" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableEventsCount(v *int) *AgentRunUpdate {
	if v != nil {
		_u.SetEventsCount(*v)
	}
	return _u
}

// AddEventsCount adds value to the "events_count" field.
func (_u *AgentRunUpdate) AddEventsCount(v int) *AgentRunUpdate {
	_u.mutation.AddEventsCount(v)
	return _u
}

// SetOutputRef sets the "output_ref" field.
func (_u *AgentRunUpdate) SetOutputRef(v string) *AgentRunUpdate {
	_u.mutation.SetOutputRef(v)
	return _u
}

// SetNillableOutputRef sets the "output_ref" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableOutputRef(v *string) *AgentRunUpdate {
	if v != nil {
		_u.SetOutputRef(*v)
	}
	return _u
}

// ClearOutputRef clears the value of the "output_ref" field.
func (_u *AgentRunUpdate) ClearOutputRef() *AgentRunUpdate {
	_u.mutation.ClearOutputRef()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AgentRunUpdate) SetErrorMessage(v string) *AgentRunUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableErrorMessage(v *string) *AgentRunUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AgentRunUpdate) ClearErrorMessage() *AgentRunUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the AgentRunMutation object of the builder.
func (_u *AgentRunUpdate) Mutation() *AgentRunMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentRunUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentrun.Table, agentrun.Columns, sqlgraph.NewFieldSpec(agentrun.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CorrelationID(); ok {
		_spec.SetField(agentrun.FieldCorrelationID, field.TypeString, value)
	}
	if _u.mutation.CorrelationIDCleared() {
		_spec.ClearField(agentrun.FieldCorrelationID, field.TypeString)
	}
	if value, ok := _u.mutation.OrgID(); ok {
		_spec.SetField(agentrun.FieldOrgID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TeamNodeID(); ok {
		_spec.SetField(agentrun.FieldTeamNodeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentName(); ok {
		_spec.SetField(agentrun.FieldAgentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TriggerSource(); ok {
		_spec.SetField(agentrun.FieldTriggerSource, field.TypeString, value)
	}
	if _u.mutation.TriggerSourceCleared() {
		_spec.ClearField(agentrun.FieldTriggerSource, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(agentrun.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(agentrun.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(agentrun.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.MaxTurns(); ok {
		_spec.SetField(agentrun.FieldMaxTurns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxTurns(); ok {
		_spec.AddField(agentrun.FieldMaxTurns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EventsCount(); ok {
		_spec.SetField(agentrun.FieldEventsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEventsCount(); ok {
		_spec.AddField(agentrun.FieldEventsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputRef(); ok {
		_spec.SetField(agentrun.FieldOutputRef, field.TypeString, value)
	}
	if _u.mutation.OutputRefCleared() {
		_spec.ClearField(agentrun.FieldOutputRef, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(agentrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(agentrun.FieldErrorMessage, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentRunUpdateOne is the builder for updating a single AgentRun entity.
type AgentRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentRunMutation
}

// SetCorrelationID sets the "correlation_id" field.
func (_u *AgentRunUpdateOne) SetCorrelationID(v string) *AgentRunUpdateOne {
	_u.mutation.SetCorrelationID(v)
	return _u
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableCorrelationID(v *string) *AgentRunUpdateOne {
	if v != nil {
		_u.SetCorrelationID(*v)
	}
	return _u
}

// ClearCorrelationID clears the value of the "correlation_id" field.
func (_u *AgentRunUpdateOne) ClearCorrelationID() *AgentRunUpdateOne {
	_u.mutation.ClearCorrelationID()
	return _u
}

// SetOrgID sets the "org_id" field.
func (_u *AgentRunUpdateOne) SetOrgID(v string) *AgentRunUpdateOne {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableOrgID(v *string) *AgentRunUpdateOne {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetTeamNodeID sets the "team_node_id" field.
func (_u *AgentRunUpdateOne) SetTeamNodeID(v string) *AgentRunUpdateOne {
	_u.mutation.SetTeamNodeID(v)
	return _u
}

// SetNillableTeamNodeID sets the "team_node_id" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableTeamNodeID(v *string) *AgentRunUpdateOne {
	if v != nil {
		_u.SetTeamNodeID(*v)
	}
	return _u
}

// SetAgentName sets the "agent_name" field.
func (_u *AgentRunUpdateOne) SetAgentName(v string) *AgentRunUpdateOne {
	_u.mutation.SetAgentName(v)
	return _u
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableAgentName(v *string) *AgentRunUpdateOne {
	if v != nil {
		_u.SetAgentName(*v)
	}
	return _u
}

// SetTriggerSource sets the "trigger_source" field.
func (_u *AgentRunUpdateOne) SetTriggerSource(v string) *AgentRunUpdateOne {
	_u.mutation.SetTriggerSource(v)
	return _u
}

// SetNillableTriggerSource sets the "trigger_source" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableTriggerSource(v *string) *AgentRunUpdateOne {
	if v != nil {
		_u.SetTriggerSource(*v)
	}
	return _u
}

// ClearTriggerSource clears the value of the "trigger_source" field.
func (_u *AgentRunUpdateOne) ClearTriggerSource() *AgentRunUpdateOne {
	_u.mutation.ClearTriggerSource()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentRunUpdateOne) SetStatus(v agentrun.Status) *AgentRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableStatus(v *agentrun.Status) *AgentRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AgentRunUpdateOne) SetStartedAt(v time.Time) *AgentRunUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableStartedAt(v *time.Time) *AgentRunUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *AgentRunUpdateOne) SetEndedAt(v time.Time) *AgentRunUpdateOne {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableEndedAt(v *time.Time) *AgentRunUpdateOne {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *AgentRunUpdateOne) ClearEndedAt() *AgentRunUpdateOne {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetMaxTurns sets the "max_turns" field.
func (_u *AgentRunUpdateOne) SetMaxTurns(v int) *AgentRunUpdateOne {
	_u.mutation.ResetMaxTurns()
	_u.mutation.SetMaxTurns(v)
	return _u
}

// SetNillableMaxTurns sets the "max_turns" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableMaxTurns(v *int) *AgentRunUpdateOne {
	if v != nil {
		_u.SetMaxTurns(*v)
	}
	return _u
}

// AddMaxTurns adds value to the "max_turns" field.
func (_u *AgentRunUpdateOne) AddMaxTurns(v int) *AgentRunUpdateOne {
	_u.mutation.AddMaxTurns(v)
	return _u
}

// SetEventsCount sets the "events_count" field.
func (_u *AgentRunUpdateOne) SetEventsCount(v int) *AgentRunUpdateOne {
	_u.mutation.ResetEventsCount()
	_u.mutation.SetEventsCount(v)
	return _u
}

// SetNillableEventsCount sets the "events_count" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableEventsCount(v *int) *AgentRunUpdateOne {
	if v != nil {
		_u.SetEventsCount(*v)
	}
	return _u
}

// AddEventsCount adds value to the "events_count" field.
func (_u *AgentRunUpdateOne) AddEventsCount(v int) *AgentRunUpdateOne {
	_u.mutation.AddEventsCount(v)
	return _u
}

// SetOutputRef sets the "output_ref" field.
func (_u *AgentRunUpdateOne) SetOutputRef(v string) *AgentRunUpdateOne {
	_u.mutation.SetOutputRef(v)
	return _u
}

// SetNillableOutputRef sets the "output_ref" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableOutputRef(v *string) *AgentRunUpdateOne {
	if v != nil {
		_u.SetOutputRef(*v)
	}
	return _u
}

// ClearOutputRef clears the value of the "output_ref" field.
func (_u *AgentRunUpdateOne) ClearOutputRef() *AgentRunUpdateOne {
	_u.mutation.ClearOutputRef()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AgentRunUpdateOne) SetErrorMessage(v string) *AgentRunUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableErrorMessage(v *string) *AgentRunUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AgentRunUpdateOne) ClearErrorMessage() *AgentRunUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the AgentRunMutation object of the builder.
func (_u *AgentRunUpdateOne) Mutation() *AgentRunMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentRunUpdate builder.
func (_u *AgentRunUpdateOne) Where(ps ...predicate.AgentRun) *AgentRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentRunUpdateOne) Select(field string, fields ...string) *AgentRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentRun entity.
func (_u *AgentRunUpdateOne) Save(ctx context.Context) (*AgentRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentRunUpdateOne) SaveX(ctx context.Context) *AgentRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentRunUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentRunUpdateOne) sqlSave(ctx context.Context) (_node *AgentRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentrun.Table, agentrun.Columns, sqlgraph.NewFieldSpec(agentrun.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentrun.FieldID)
		for _, f := range fields {
			if !agentrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentrun.FieldID {
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
	if value, ok := _u.mutation.CorrelationID(); ok {
		_spec.SetField(agentrun.FieldCorrelationID, field.TypeString, value)
	}
	if _u.mutation.CorrelationIDCleared() {
		_spec.ClearField(agentrun.FieldCorrelationID, field.TypeString)
	}
	if value, ok := _u.mutation.OrgID(); ok {
		_spec.SetField(agentrun.FieldOrgID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TeamNodeID(); ok {
		_spec.SetField(agentrun.FieldTeamNodeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentName(); ok {
		_spec.SetField(agentrun.FieldAgentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TriggerSource(); ok {
		_spec.SetField(agentrun.FieldTriggerSource, field.TypeString, value)
	}
	if _u.mutation.TriggerSourceCleared() {
		_spec.ClearField(agentrun.FieldTriggerSource, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(agentrun.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(agentrun.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(agentrun.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.MaxTurns(); ok {
		_spec.SetField(agentrun.FieldMaxTurns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxTurns(); ok {
		_spec.AddField(agentrun.FieldMaxTurns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EventsCount(); ok {
		_spec.SetField(agentrun.FieldEventsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEventsCount(); ok {
		_spec.AddField(agentrun.FieldEventsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputRef(); ok {
		_spec.SetField(agentrun.FieldOutputRef, field.TypeString, value)
	}
	if _u.mutation.OutputRefCleared() {
		_spec.ClearField(agentrun.FieldOutputRef, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(agentrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(agentrun.FieldErrorMessage, field.TypeString)
	}
	_node = &AgentRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
