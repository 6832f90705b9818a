// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/incidentfox/incidentfox/ent/a2atask"
)

// A2ATaskCreate is the builder for creating a A2ATask entity.
type A2ATaskCreate struct {
	config
	mutation *A2ATaskMutation
	hooks    []Hook
}

// SetStatus sets the "status" field.
func (_c *A2ATaskCreate) SetStatus(v a2atask.Status) *A2ATaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *A2ATaskCreate) SetNillableStatus(v *a2atask.Status) *A2ATaskCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetMessage sets the "message" field.
func (_c *A2ATaskCreate) SetMessage(v map[string]interface{}) *A2ATaskCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetResultMessage sets the "result_message" field.
func (_c *A2ATaskCreate) SetResultMessage(v map[string]interface{}) *A2ATaskCreate {
	_c.mutation.SetResultMessage(v)
	return _c
}

// SetArtifacts sets the "artifacts" field.
func (_c *A2ATaskCreate) SetArtifacts(v []map[string]interface{}) *A2ATaskCreate {
	_c.mutation.SetArtifacts(v)
	return _c
}

// SetHistory sets the "history" field.
func (_c *A2ATaskCreate) SetHistory(v []map[string]interface{}) *A2ATaskCreate {
	_c.mutation.SetHistory(v)
	return _c
}

// SetOrgID sets the "org_id" field.
func (_c *A2ATaskCreate) SetOrgID(v string) *A2ATaskCreate {
	_c.mutation.SetOrgID(v)
	return _c
}

// SetTeamNodeID sets the "team_node_id" field.
func (_c *A2ATaskCreate) SetTeamNodeID(v string) *A2ATaskCreate {
	_c.mutation.SetTeamNodeID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *A2ATaskCreate) SetCreatedAt(v time.Time) *A2ATaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *A2ATaskCreate) SetNillableCreatedAt(v *time.Time) *A2ATaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *A2ATaskCreate) SetUpdatedAt(v time.Time) *A2ATaskCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *A2ATaskCreate) SetNillableUpdatedAt(v *time.Time) *A2ATaskCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *A2ATaskCreate) SetID(v string) *A2ATaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the A2ATaskMutation object of the builder.
func (_c *A2ATaskCreate) Mutation() *A2ATaskMutation {
	return _c.mutation
}

// Save creates the A2ATask in the database.
func (_c *A2ATaskCreate) Save(ctx context.Context) (*A2ATask, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *A2ATaskCreate) SaveX(ctx context.Context) *A2ATask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *A2ATaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *A2ATaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *A2ATaskCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := a2atask.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := a2atask.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := a2atask.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *A2ATaskCreate) check() error {
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "A2ATask.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := a2atask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "A2ATask.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required field "A2ATask.message"`)}
	}
	if _, ok := _c.mutation.OrgID(); !ok {
		return &ValidationError{Name: "org_id", err: errors.New(`ent: missing required field "A2ATask.org_id"`)}
	}
	if _, ok := _c.mutation.TeamNodeID(); !ok {
		return &ValidationError{Name: "team_node_id", err: errors.New(`ent: missing required field "A2ATask.team_node_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "A2ATask.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "A2ATask.updated_at"`)}
	}
	return nil
}

func (_c *A2ATaskCreate) sqlSave(ctx context.Context) (*A2ATask, error) {
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
			return nil, fmt.Errorf("unexpected A2ATask.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *A2ATaskCreate) createSpec() (*A2ATask, *sqlgraph.CreateSpec) {
	var (
		_node = &A2ATask{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(a2atask.Table, sqlgraph.NewFieldSpec(a2atask.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(a2atask.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(a2atask.FieldMessage, field.TypeJSON, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.ResultMessage(); ok {
		_spec.SetField(a2atask.FieldResultMessage, field.TypeJSON, value)
		_node.ResultMessage = value
	}
	if value, ok := _c.mutation.Artifacts(); ok {
		_spec.SetField(a2atask.FieldArtifacts, field.TypeJSON, value)
		_node.Artifacts = value
	}
	if value, ok := _c.mutation.History(); ok {
		_spec.SetField(a2atask.FieldHistory, field.TypeJSON, value)
		_node.History = value
	}
	if value, ok := _c.mutation.OrgID(); ok {
		_spec.SetField(a2atask.FieldOrgID, field.TypeString, value)
		_node.OrgID = value
	}
	if value, ok := _c.mutation.TeamNodeID(); ok {
		_spec.SetField(a2atask.FieldTeamNodeID, field.TypeString, value)
		_node.TeamNodeID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(a2atask.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(a2atask.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// A2ATaskCreateBulk is the builder for creating many A2ATask entities in bulk.
type A2ATaskCreateBulk struct {
	config
	err      error
	builders []*A2ATaskCreate
}

// Save creates the A2ATask entities in the database.
func (_c *A2ATaskCreateBulk) Save(ctx context.Context) ([]*A2ATask, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*A2ATask, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*A2ATaskMutation)
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
func (_c *A2ATaskCreateBulk) SaveX(ctx context.Context) []*A2ATask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *A2ATaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *A2ATaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
