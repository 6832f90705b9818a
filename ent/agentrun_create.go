// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/incidentfox/incidentfox/ent/agentrun"
)

// AgentRunCreate is the builder for creating a AgentRun entity.
type AgentRunCreate struct {
	config
	mutation *AgentRunMutation
	hooks    []Hook
}

// SetCorrelationID sets the "correlation_id" field.
func (_c *AgentRunCreate) SetCorrelationID(v string) *AgentRunCreate {
	_c.mutation.SetCorrelationID(v)
	return _c
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_c *AgentRunCreate) SetNillableCorrelationID(v *string) *AgentRunCreate {
	if v != nil {
		_c.SetCorrelationID(*v)
	}
	return _c
}

// SetOrgID sets the "org_id" field.
func (_c *AgentRunCreate) SetOrgID(v string) *AgentRunCreate {
	_c.mutation.SetOrgID(v)
	return _c
}

// SetTeamNodeID sets the "team_node_id" field.
func (_c *AgentRunCreate) SetTeamNodeID(v string) *AgentRunCreate {
	_c.mutation.SetTeamNodeID(v)
	return _c
}

// SetAgentName sets the "agent_name" field.
func (_c *AgentRunCreate) SetAgentName(v string) *AgentRunCreate {
	_c.mutation.SetAgentName(v)
	return _c
}

// SetTriggerSource sets the "trigger_source" field.
func (_c *AgentRunCreate) SetTriggerSource(v string) *AgentRunCreate {
	_c.mutation.SetTriggerSource(v)
	return _c
}

// SetNillableTriggerSource sets the "trigger_source" field if the given value is not nil.
func (_c *AgentRunCreate) SetNillableTriggerSource(v *string) *AgentRunCreate {
	if v != nil {
		_c.SetTriggerSource(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *AgentRunCreate) SetStatus(v agentrun.Status) *AgentRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AgentRunCreate) SetNillableStatus(v *agentrun.Status) *AgentRunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *AgentRunCreate) SetStartedAt(v time.Time) *AgentRunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *AgentRunCreate) SetNillableStartedAt(v *time.Time) *AgentRunCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetEndedAt sets the "ended_at" field.
func (_c *AgentRunCreate) SetEndedAt(v time.Time) *AgentRunCreate {
	_c.mutation.SetEndedAt(v)
	return _c
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_c *AgentRunCreate) SetNillableEndedAt(v *time.Time) *AgentRunCreate {
	if v != nil {
		_c.SetEndedAt(*v)
	}
	return _c
}

// SetMaxTurns sets the "max_turns" field.
func (_c *AgentRunCreate) SetMaxTurns(v int) *AgentRunCreate {
	_c.mutation.SetMaxTurns(v)
	return _c
}

// SetNillableMaxTurns sets the "max_turns" field if the given value is not nil.
func (_c *AgentRunCreate) SetNillableMaxTurns(v *int) *AgentRunCreate {
	if v != nil {
		_c.SetMaxTurns(*v)
	}
	return _c
}

// SetEventsCount sets the "events_count" field.
func (_c *AgentRunCreate) SetEventsCount(v int) *AgentRunCreate {
	_c.mutation.SetEventsCount(v)
	return _c
}

// SetNillableEventsCount sets the "events_count" field if the given value is not nil.
func (_c *AgentRunCreate) SetNillableEventsCount(v *int) *AgentRunCreate {
	if v != nil {
		_c.SetEventsCount(*v)
	}
	return _c
}

// SetOutputRef sets the "output_ref" field.
func (_c *AgentRunCreate) SetOutputRef(v string) *AgentRunCreate {
	_c.mutation.SetOutputRef(v)
	return _c
}

// SetNillableOutputRef sets the "output_ref" field if the given value is not nil.
func (_c *AgentRunCreate) SetNillableOutputRef(v *string) *AgentRunCreate {
	if v != nil {
		_c.SetOutputRef(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *AgentRunCreate) SetErrorMessage(v string) *AgentRunCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *AgentRunCreate) SetNillableErrorMessage(v *string) *AgentRunCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentRunCreate) SetID(v string) *AgentRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AgentRunMutation object of the builder.
func (_c *AgentRunCreate) Mutation() *AgentRunMutation {
	return _c.mutation
}

// Save creates the AgentRun in the database.
func (_c *AgentRunCreate) Save(ctx context.Context) (*AgentRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentRunCreate) SaveX(ctx context.Context) *AgentRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentRunCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := agentrun.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := agentrun.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.MaxTurns(); !ok {
		v := agentrun.DefaultMaxTurns
		_c.mutation.SetMaxTurns(v)
	}
	if _, ok := _c.mutation.EventsCount(); !ok {
		v := agentrun.DefaultEventsCount
		_c.mutation.SetEventsCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentRunCreate) check() error {
	if _, ok := _c.mutation.OrgID(); !ok {
		return &ValidationError{Name: "org_id", err: errors.New(`ent: missing required field "AgentRun.org_id"`)}
	}
	if _, ok := _c.mutation.TeamNodeID(); !ok {
		return &ValidationError{Name: "team_node_id", err: errors.New(`ent: missing required field "AgentRun.team_node_id"`)}
	}
	if _, ok := _c.mutation.AgentName(); !ok {
		return &ValidationError{Name: "agent_name", err: errors.New(`ent: missing required field "AgentRun.agent_name"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AgentRun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := agentrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentRun.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "AgentRun.started_at"`)}
	}
	if _, ok := _c.mutation.MaxTurns(); !ok {
		return &ValidationError{Name: "max_turns", err: errors.New(`ent: missing required field "AgentRun.max_turns"`)}
	}
	if _, ok := _c.mutation.EventsCount(); !ok {
		return &ValidationError{Name: "events_count", err: errors.New(`ent: missing required field "AgentRun.events_count"`)}
	}
	return nil
}

func (_c *AgentRunCreate) sqlSave(ctx context.Context) (*AgentRun, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected AgentRun.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentRunCreate) createSpec() (*AgentRun, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentrun.Table, sqlgraph.NewFieldSpec(agentrun.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CorrelationID(); ok {
		_spec.SetField(agentrun.FieldCorrelationID, field.TypeString, value)
		_node.CorrelationID = value
	}
	if value, ok := _c.mutation.OrgID(); ok {
		_spec.SetField(agentrun.FieldOrgID, field.TypeString, value)
		_node.OrgID = value
	}
	if value, ok := _c.mutation.TeamNodeID(); ok {
		_spec.SetField(agentrun.FieldTeamNodeID, field.TypeString, value)
		_node.TeamNodeID = value
	}
	if value, ok := _c.mutation.AgentName(); ok {
		_spec.SetField(agentrun.FieldAgentName, field.TypeString, value)
		_node.AgentName = value
	}
	if value, ok := _c.mutation.TriggerSource(); ok {
		_spec.SetField(agentrun.FieldTriggerSource, field.TypeString, value)
		_node.TriggerSource = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(agentrun.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(agentrun.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.EndedAt(); ok {
		_spec.SetField(agentrun.FieldEndedAt, field.TypeTime, value)
		_node.EndedAt = &value
	}
	if value, ok := _c.mutation.MaxTurns(); ok {
		_spec.SetField(agentrun.FieldMaxTurns, field.TypeInt, value)
		_node.MaxTurns = value
	}
	if value, ok := _c.mutation.EventsCount(); ok {
		_spec.SetField(agentrun.FieldEventsCount, field.TypeInt, value)
		_node.EventsCount = value
	}
	if value, ok := _c.mutation.OutputRef(); ok {
		_spec.SetField(agentrun.FieldOutputRef, field.TypeString, value)
		_node.OutputRef = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(agentrun.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	return _node, _spec
}

// AgentRunCreateBulk is the builder for creating many AgentRun entities in bulk.
type AgentRunCreateBulk struct {
	config
	err      error
	builders []*AgentRunCreate
}

// Save creates the AgentRun entities in the database.
func (_c *AgentRunCreateBulk) Save(ctx context.Context) ([]*AgentRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentRunMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AgentRunCreateBulk) SaveX(ctx context.Context) []*AgentRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
