// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/incidentfox/incidentfox/ent/a2atask"
	"github.com/incidentfox/incidentfox/ent/agentrun"
	"github.com/incidentfox/incidentfox/ent/auditevent"
	"github.com/incidentfox/incidentfox/ent/impersonationjti"
	"github.com/incidentfox/incidentfox/ent/integrationschema"
	"github.com/incidentfox/incidentfox/ent/nodeconfig"
	"github.com/incidentfox/incidentfox/ent/nodeconfighistory"
	"github.com/incidentfox/incidentfox/ent/orgadmintoken"
	"github.com/incidentfox/incidentfox/ent/orgnode"
	"github.com/incidentfox/incidentfox/ent/predicate"
	"github.com/incidentfox/incidentfox/ent/provisioningrun"
	"github.com/incidentfox/incidentfox/ent/routingkey"
	"github.com/incidentfox/incidentfox/ent/scheduledjob"
	"github.com/incidentfox/incidentfox/ent/teamtoken"
	"github.com/incidentfox/incidentfox/ent/tokenaudit"
	"github.com/incidentfox/incidentfox/ent/webhookdelivery"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeA2ATask           = "A2ATask"
	TypeAgentRun          = "AgentRun"
	TypeAuditEvent        = "AuditEvent"
	TypeImpersonationJTI  = "ImpersonationJTI"
	TypeIntegrationSchema = "IntegrationSchema"
	TypeNodeConfig        = "NodeConfig"
	TypeNodeConfigHistory = "NodeConfigHistory"
	TypeOrgAdminToken     = "OrgAdminToken"
	TypeOrgNode           = "OrgNode"
	TypeProvisioningRun   = "ProvisioningRun"
	TypeRoutingKey        = "RoutingKey"
	TypeScheduledJob      = "ScheduledJob"
	TypeTeamToken         = "TeamToken"
	TypeTokenAudit        = "TokenAudit"
	TypeWebhookDelivery   = "WebhookDelivery"
)

// A2ATaskMutation represents an operation that mutates the A2ATask nodes in the graph.
type A2ATaskMutation struct {
	config
	op              Op
	typ             string
	id              *string
	status          *a2atask.Status
	message         *map[string]interface{}
	result_message  *map[string]interface{}
	artifacts       *[]map[string]interface{}
	appendartifacts []map[string]interface{}
	history         *[]map[string]interface{}
	appendhistory   []map[string]interface{}
	org_id          *string
	team_node_id    *string
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*A2ATask, error)
	predicates      []predicate.A2ATask
}

var _ ent.Mutation = (*A2ATaskMutation)(nil)

// a2ataskOption allows management of the mutation configuration using functional options.
type a2ataskOption func(*A2ATaskMutation)

// newA2ATaskMutation creates new mutation for the A2ATask entity.
func newA2ATaskMutation(c config, op Op, opts ...a2ataskOption) *A2ATaskMutation {
	m := &A2ATaskMutation{
		config:        c,
		op:            op,
		typ:           TypeA2ATask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withA2ATaskID sets the ID field of the mutation.
func withA2ATaskID(id string) a2ataskOption {
	return func(m *A2ATaskMutation) {
		var (
			err   error
			once  sync.Once
			value *A2ATask
		)
		m.oldValue = func(ctx context.Context) (*A2ATask, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().A2ATask.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withA2ATask sets the old A2ATask of the mutation.
func withA2ATask(node *A2ATask) a2ataskOption {
	return func(m *A2ATaskMutation) {
		m.oldValue = func(context.Context) (*A2ATask, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m A2ATaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m A2ATaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of A2ATask entities.
func (m *A2ATaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *A2ATaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *A2ATaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().A2ATask.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStatus sets the "status" field.
func (m *A2ATaskMutation) SetStatus(a a2atask.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *A2ATaskMutation) Status() (r a2atask.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the A2ATask entity.
// If the A2ATask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *A2ATaskMutation) OldStatus(ctx context.Context) (v a2atask.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *A2ATaskMutation) ResetStatus() {
	m.status = nil
}

// SetMessage sets the "message" field.
func (m *A2ATaskMutation) SetMessage(value map[string]interface{}) {
	m.message = &value
}

// Message returns the value of the "message" field in the mutation.
func (m *A2ATaskMutation) Message() (r map[string]interface{}, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the A2ATask entity.
// If the A2ATask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *A2ATaskMutation) OldMessage(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *A2ATaskMutation) ResetMessage() {
	m.message = nil
}

// SetResultMessage sets the "result_message" field.
func (m *A2ATaskMutation) SetResultMessage(value map[string]interface{}) {
	m.result_message = &value
}

// ResultMessage returns the value of the "result_message" field in the mutation.
func (m *A2ATaskMutation) ResultMessage() (r map[string]interface{}, exists bool) {
	v := m.result_message
	if v == nil {
		return
	}
	return *v, true
}

// OldResultMessage returns the old "result_message" field's value of the A2ATask entity.
// If the A2ATask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *A2ATaskMutation) OldResultMessage(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultMessage: %w", err)
	}
	return oldValue.ResultMessage, nil
}

// ClearResultMessage clears the value of the "result_message" field.
func (m *A2ATaskMutation) ClearResultMessage() {
	m.result_message = nil
	m.clearedFields[a2atask.FieldResultMessage] = struct{}{}
}

// ResultMessageCleared returns if the "result_message" field was cleared in this mutation.
func (m *A2ATaskMutation) ResultMessageCleared() bool {
	_, ok := m.clearedFields[a2atask.FieldResultMessage]
	return ok
}

// ResetResultMessage resets all changes to the "result_message" field.
func (m *A2ATaskMutation) ResetResultMessage() {
	m.result_message = nil
	delete(m.clearedFields, a2atask.FieldResultMessage)
}

// SetArtifacts sets the "artifacts" field.
func (m *A2ATaskMutation) SetArtifacts(value []map[string]interface{}) {
	m.artifacts = &value
	m.appendartifacts = nil
}

// Artifacts returns the value of the "artifacts" field in the mutation.
func (m *A2ATaskMutation) Artifacts() (r []map[string]interface{}, exists bool) {
	v := m.artifacts
	if v == nil {
		return
	}
	return *v, true
}

// OldArtifacts returns the old "artifacts" field's value of the A2ATask entity.
// If the A2ATask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *A2ATaskMutation) OldArtifacts(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArtifacts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArtifacts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArtifacts: %w", err)
	}
	return oldValue.Artifacts, nil
}

// AppendArtifacts adds value to the "artifacts" field.
func (m *A2ATaskMutation) AppendArtifacts(value []map[string]interface{}) {
	m.appendartifacts = append(m.appendartifacts, value...)
}

// AppendedArtifacts returns the list of values that were appended to the "artifacts" field in this mutation.
func (m *A2ATaskMutation) AppendedArtifacts() ([]map[string]interface{}, bool) {
	if len(m.appendartifacts) == 0 {
		return nil, false
	}
	return m.appendartifacts, true
}

// ClearArtifacts clears the value of the "artifacts" field.
func (m *A2ATaskMutation) ClearArtifacts() {
	m.artifacts = nil
	m.appendartifacts = nil
	m.clearedFields[a2atask.FieldArtifacts] = struct{}{}
}

// ArtifactsCleared returns if the "artifacts" field was cleared in this mutation.
func (m *A2ATaskMutation) ArtifactsCleared() bool {
	_, ok := m.clearedFields[a2atask.FieldArtifacts]
	return ok
}

// ResetArtifacts resets all changes to the "artifacts" field.
func (m *A2ATaskMutation) ResetArtifacts() {
	m.artifacts = nil
	m.appendartifacts = nil
	delete(m.clearedFields, a2atask.FieldArtifacts)
}

// SetHistory sets the "history" field.
func (m *A2ATaskMutation) SetHistory(value []map[string]interface{}) {
	m.history = &value
	m.appendhistory = nil
}

// History returns the value of the "history" field in the mutation.
func (m *A2ATaskMutation) History() (r []map[string]interface{}, exists bool) {
	v := m.history
	if v == nil {
		return
	}
	return *v, true
}

// OldHistory returns the old "history" field's value of the A2ATask entity.
// If the A2ATask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *A2ATaskMutation) OldHistory(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHistory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHistory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHistory: %w", err)
	}
	return oldValue.History, nil
}

// AppendHistory adds value to the "history" field.
func (m *A2ATaskMutation) AppendHistory(value []map[string]interface{}) {
	m.appendhistory = append(m.appendhistory, value...)
}

// AppendedHistory returns the list of values that were appended to the "history" field in this mutation.
func (m *A2ATaskMutation) AppendedHistory() ([]map[string]interface{}, bool) {
	if len(m.appendhistory) == 0 {
		return nil, false
	}
	return m.appendhistory, true
}

// ClearHistory clears the value of the "history" field.
func (m *A2ATaskMutation) ClearHistory() {
	m.history = nil
	m.appendhistory = nil
	m.clearedFields[a2atask.FieldHistory] = struct{}{}
}

// HistoryCleared returns if the "history" field was cleared in this mutation.
func (m *A2ATaskMutation) HistoryCleared() bool {
	_, ok := m.clearedFields[a2atask.FieldHistory]
	return ok
}

// ResetHistory resets all changes to the "history" field.
func (m *A2ATaskMutation) ResetHistory() {
	m.history = nil
	m.appendhistory = nil
	delete(m.clearedFields, a2atask.FieldHistory)
}

// SetOrgID sets the "org_id" field.
func (m *A2ATaskMutation) SetOrgID(s string) {
	m.org_id = &s
}

// OrgID returns the value of the "org_id" field in the mutation.
func (m *A2ATaskMutation) OrgID() (r string, exists bool) {
	v := m.org_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrgID returns the old "org_id" field's value of the A2ATask entity.
// If the A2ATask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *A2ATaskMutation) OldOrgID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrgID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrgID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrgID: %w", err)
	}
	return oldValue.OrgID, nil
}

// ResetOrgID resets all changes to the "org_id" field.
func (m *A2ATaskMutation) ResetOrgID() {
	m.org_id = nil
}

// SetTeamNodeID sets the "team_node_id" field.
func (m *A2ATaskMutation) SetTeamNodeID(s string) {
	m.team_node_id = &s
}

// TeamNodeID returns the value of the "team_node_id" field in the mutation.
func (m *A2ATaskMutation) TeamNodeID() (r string, exists bool) {
	v := m.team_node_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTeamNodeID returns the old "team_node_id" field's value of the A2ATask entity.
// If the A2ATask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *A2ATaskMutation) OldTeamNodeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTeamNodeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTeamNodeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTeamNodeID: %w", err)
	}
	return oldValue.TeamNodeID, nil
}

// ResetTeamNodeID resets all changes to the "team_node_id" field.
func (m *A2ATaskMutation) ResetTeamNodeID() {
	m.team_node_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *A2ATaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *A2ATaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the A2ATask entity.
// If the A2ATask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *A2ATaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *A2ATaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *A2ATaskMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *A2ATaskMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the A2ATask entity.
// If the A2ATask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *A2ATaskMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *A2ATaskMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the A2ATaskMutation builder.
func (m *A2ATaskMutation) Where(ps ...predicate.A2ATask) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the A2ATaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *A2ATaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.A2ATask, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *A2ATaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *A2ATaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (A2ATask).
func (m *A2ATaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *A2ATaskMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.status != nil {
		fields = append(fields, a2atask.FieldStatus)
	}
	if m.message != nil {
		fields = append(fields, a2atask.FieldMessage)
	}
	if m.result_message != nil {
		fields = append(fields, a2atask.FieldResultMessage)
	}
	if m.artifacts != nil {
		fields = append(fields, a2atask.FieldArtifacts)
	}
	if m.history != nil {
		fields = append(fields, a2atask.FieldHistory)
	}
	if m.org_id != nil {
		fields = append(fields, a2atask.FieldOrgID)
	}
	if m.team_node_id != nil {
		fields = append(fields, a2atask.FieldTeamNodeID)
	}
	if m.created_at != nil {
		fields = append(fields, a2atask.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, a2atask.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *A2ATaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case a2atask.FieldStatus:
		return m.Status()
	case a2atask.FieldMessage:
		return m.Message()
	case a2atask.FieldResultMessage:
		return m.ResultMessage()
	case a2atask.FieldArtifacts:
		return m.Artifacts()
	case a2atask.FieldHistory:
		return m.History()
	case a2atask.FieldOrgID:
		return m.OrgID()
	case a2atask.FieldTeamNodeID:
		return m.TeamNodeID()
	case a2atask.FieldCreatedAt:
		return m.CreatedAt()
	case a2atask.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *A2ATaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case a2atask.FieldStatus:
		return m.OldStatus(ctx)
	case a2atask.FieldMessage:
		return m.OldMessage(ctx)
	case a2atask.FieldResultMessage:
		return m.OldResultMessage(ctx)
	case a2atask.FieldArtifacts:
		return m.OldArtifacts(ctx)
	case a2atask.FieldHistory:
		return m.OldHistory(ctx)
	case a2atask.FieldOrgID:
		return m.OldOrgID(ctx)
	case a2atask.FieldTeamNodeID:
		return m.OldTeamNodeID(ctx)
	case a2atask.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case a2atask.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown A2ATask field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *A2ATaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case a2atask.FieldStatus:
		v, ok := value.(a2atask.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case a2atask.FieldMessage:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case a2atask.FieldResultMessage:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultMessage(v)
		return nil
	case a2atask.FieldArtifacts:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArtifacts(v)
		return nil
	case a2atask.FieldHistory:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHistory(v)
		return nil
	case a2atask.FieldOrgID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrgID(v)
		return nil
	case a2atask.FieldTeamNodeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTeamNodeID(v)
		return nil
	case a2atask.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case a2atask.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown A2ATask field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *A2ATaskMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *A2ATaskMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *A2ATaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown A2ATask numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *A2ATaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(a2atask.FieldResultMessage) {
		fields = append(fields, a2atask.FieldResultMessage)
	}
	if m.FieldCleared(a2atask.FieldArtifacts) {
		fields = append(fields, a2atask.FieldArtifacts)
	}
	if m.FieldCleared(a2atask.FieldHistory) {
		fields = append(fields, a2atask.FieldHistory)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *A2ATaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *A2ATaskMutation) ClearField(name string) error {
	switch name {
	case a2atask.FieldResultMessage:
		m.ClearResultMessage()
		return nil
	case a2atask.FieldArtifacts:
		m.ClearArtifacts()
		return nil
	case a2atask.FieldHistory:
		m.ClearHistory()
		return nil
	}
	return fmt.Errorf("unknown A2ATask nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *A2ATaskMutation) ResetField(name string) error {
	switch name {
	case a2atask.FieldStatus:
		m.ResetStatus()
		return nil
	case a2atask.FieldMessage:
		m.ResetMessage()
		return nil
	case a2atask.FieldResultMessage:
		m.ResetResultMessage()
		return nil
	case a2atask.FieldArtifacts:
		m.ResetArtifacts()
		return nil
	case a2atask.FieldHistory:
		m.ResetHistory()
		return nil
	case a2atask.FieldOrgID:
		m.ResetOrgID()
		return nil
	case a2atask.FieldTeamNodeID:
		m.ResetTeamNodeID()
		return nil
	case a2atask.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case a2atask.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown A2ATask field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *A2ATaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *A2ATaskMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *A2ATaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *A2ATaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *A2ATaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *A2ATaskMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *A2ATaskMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown A2ATask unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *A2ATaskMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown A2ATask edge %s", name)
}

// AgentRunMutation represents an operation that mutates the AgentRun nodes in the graph.
type AgentRunMutation struct {
	config
	op              Op
	typ             string
	id              *string
	correlation_id  *string
	org_id          *string
	team_node_id    *string
	agent_name      *string
	trigger_source  *string
	status          *agentrun.Status
	started_at      *time.Time
	ended_at        *time.Time
	max_turns       *int
	addmax_turns    *int
	events_count    *int
	addevents_count *int
	output_ref      *string
	error_message   *string
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*AgentRun, error)
	predicates      []predicate.AgentRun
}

var _ ent.Mutation = (*AgentRunMutation)(nil)

// agentrunOption allows management of the mutation configuration using functional options.
type agentrunOption func(*AgentRunMutation)

// newAgentRunMutation creates new mutation for the AgentRun entity.
func newAgentRunMutation(c config, op Op, opts ...agentrunOption) *AgentRunMutation {
	m := &AgentRunMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentRunID sets the ID field of the mutation.
func withAgentRunID(id string) agentrunOption {
	return func(m *AgentRunMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentRun
		)
		m.oldValue = func(ctx context.Context) (*AgentRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentRun sets the old AgentRun of the mutation.
func withAgentRun(node *AgentRun) agentrunOption {
	return func(m *AgentRunMutation) {
		m.oldValue = func(context.Context) (*AgentRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentRun entities.
func (m *AgentRunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentRunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentRunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCorrelationID sets the "correlation_id" field.
func (m *AgentRunMutation) SetCorrelationID(s string) {
	m.correlation_id = &s
}

// CorrelationID returns the value of the "correlation_id" field in the mutation.
func (m *AgentRunMutation) CorrelationID() (r string, exists bool) {
	v := m.correlation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrelationID returns the old "correlation_id" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldCorrelationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrelationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrelationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrelationID: %w", err)
	}
	return oldValue.CorrelationID, nil
}

// ClearCorrelationID clears the value of the "correlation_id" field.
func (m *AgentRunMutation) ClearCorrelationID() {
	m.correlation_id = nil
	m.clearedFields[agentrun.FieldCorrelationID] = struct{}{}
}

// CorrelationIDCleared returns if the "correlation_id" field was cleared in this mutation.
func (m *AgentRunMutation) CorrelationIDCleared() bool {
	_, ok := m.clearedFields[agentrun.FieldCorrelationID]
	return ok
}

// ResetCorrelationID resets all changes to the "correlation_id" field.
func (m *AgentRunMutation) ResetCorrelationID() {
	m.correlation_id = nil
	delete(m.clearedFields, agentrun.FieldCorrelationID)
}

// SetOrgID sets the "org_id" field.
func (m *AgentRunMutation) SetOrgID(s string) {
	m.org_id = &s
}

// OrgID returns the value of the "org_id" field in the mutation.
func (m *AgentRunMutation) OrgID() (r string, exists bool) {
	v := m.org_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrgID returns the old "org_id" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldOrgID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrgID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrgID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrgID: %w", err)
	}
	return oldValue.OrgID, nil
}

// ResetOrgID resets all changes to the "org_id" field.
func (m *AgentRunMutation) ResetOrgID() {
	m.org_id = nil
}

// SetTeamNodeID sets the "team_node_id" field.
func (m *AgentRunMutation) SetTeamNodeID(s string) {
	m.team_node_id = &s
}

// TeamNodeID returns the value of the "team_node_id" field in the mutation.
func (m *AgentRunMutation) TeamNodeID() (r string, exists bool) {
	v := m.team_node_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTeamNodeID returns the old "team_node_id" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldTeamNodeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTeamNodeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTeamNodeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTeamNodeID: %w", err)
	}
	return oldValue.TeamNodeID, nil
}

// ResetTeamNodeID resets all changes to the "team_node_id" field.
func (m *AgentRunMutation) ResetTeamNodeID() {
	m.team_node_id = nil
}

// SetAgentName sets the "agent_name" field.
func (m *AgentRunMutation) SetAgentName(s string) {
	m.agent_name = &s
}

// AgentName returns the value of the "agent_name" field in the mutation.
func (m *AgentRunMutation) AgentName() (r string, exists bool) {
	v := m.agent_name
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentName returns the old "agent_name" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldAgentName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentName: %w", err)
	}
	return oldValue.AgentName, nil
}

// ResetAgentName resets all changes to the "agent_name" field.
func (m *AgentRunMutation) ResetAgentName() {
	m.agent_name = nil
}

// SetTriggerSource sets the "trigger_source" field.
func (m *AgentRunMutation) SetTriggerSource(s string) {
	m.trigger_source = &s
}

// TriggerSource returns the value of the "trigger_source" field in the mutation.
func (m *AgentRunMutation) TriggerSource() (r string, exists bool) {
	v := m.trigger_source
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggerSource returns the old "trigger_source" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldTriggerSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggerSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggerSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggerSource: %w", err)
	}
	return oldValue.TriggerSource, nil
}

// ClearTriggerSource clears the value of the "trigger_source" field.
func (m *AgentRunMutation) ClearTriggerSource() {
	m.trigger_source = nil
	m.clearedFields[agentrun.FieldTriggerSource] = struct{}{}
}

// TriggerSourceCleared returns if the "trigger_source" field was cleared in this mutation.
func (m *AgentRunMutation) TriggerSourceCleared() bool {
	_, ok := m.clearedFields[agentrun.FieldTriggerSource]
	return ok
}

// ResetTriggerSource resets all changes to the "trigger_source" field.
func (m *AgentRunMutation) ResetTriggerSource() {
	m.trigger_source = nil
	delete(m.clearedFields, agentrun.FieldTriggerSource)
}

// SetStatus sets the "status" field.
func (m *AgentRunMutation) SetStatus(a agentrun.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentRunMutation) Status() (r agentrun.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldStatus(ctx context.Context) (v agentrun.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AgentRunMutation) ResetStatus() {
	m.status = nil
}

// SetStartedAt sets the "started_at" field.
func (m *AgentRunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *AgentRunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *AgentRunMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetEndedAt sets the "ended_at" field.
func (m *AgentRunMutation) SetEndedAt(t time.Time) {
	m.ended_at = &t
}

// EndedAt returns the value of the "ended_at" field in the mutation.
func (m *AgentRunMutation) EndedAt() (r time.Time, exists bool) {
	v := m.ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndedAt returns the old "ended_at" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldEndedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndedAt: %w", err)
	}
	return oldValue.EndedAt, nil
}

// ClearEndedAt clears the value of the "ended_at" field.
func (m *AgentRunMutation) ClearEndedAt() {
	m.ended_at = nil
	m.clearedFields[agentrun.FieldEndedAt] = struct{}{}
}

// EndedAtCleared returns if the "ended_at" field was cleared in this mutation.
func (m *AgentRunMutation) EndedAtCleared() bool {
	_, ok := m.clearedFields[agentrun.FieldEndedAt]
	return ok
}

// ResetEndedAt resets all changes to the "ended_at" field.
func (m *AgentRunMutation) ResetEndedAt() {
	m.ended_at = nil
	delete(m.clearedFields, agentrun.FieldEndedAt)
}

// SetMaxTurns sets the "max_turns" field.
func (m *AgentRunMutation) SetMaxTurns(i int) {
	m.max_turns = &i
	m.addmax_turns = nil
}

// MaxTurns returns the value of the "max_turns" field in the mutation.
func (m *AgentRunMutation) MaxTurns() (r int, exists bool) {
	v := m.max_turns
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxTurns returns the old "max_turns" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldMaxTurns(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxTurns is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxTurns requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxTurns: %w", err)
	}
	return oldValue.MaxTurns, nil
}

// AddMaxTurns adds i to the "max_turns" field.
func (m *AgentRunMutation) AddMaxTurns(i int) {
	if m.addmax_turns != nil {
		*m.addmax_turns += i
	} else {
		m.addmax_turns = &i
	}
}

// AddedMaxTurns returns the value that was added to the "max_turns" field in this mutation.
func (m *AgentRunMutation) AddedMaxTurns() (r int, exists bool) {
	v := m.addmax_turns
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxTurns resets all changes to the "max_turns" field.
func (m *AgentRunMutation) ResetMaxTurns() {
	m.max_turns = nil
	m.addmax_turns = nil
}

// SetEventsCount sets the "events_count" field.
func (m *AgentRunMutation) SetEventsCount(i int) {
	m.events_count = &i
	m.addevents_count = nil
}

// EventsCount returns the value of the "events_count" field in the mutation.
func (m *AgentRunMutation) EventsCount() (r int, exists bool) {
	v := m.events_count
	if v == nil {
		return
	}
	return *v, true
}

// OldEventsCount returns the old "events_count" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldEventsCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventsCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventsCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventsCount: %w", err)
	}
	return oldValue.EventsCount, nil
}

// AddEventsCount adds i to the "events_count" field.
func (m *AgentRunMutation) AddEventsCount(i int) {
	if m.addevents_count != nil {
		*m.addevents_count += i
	} else {
		m.addevents_count = &i
	}
}

// AddedEventsCount returns the value that was added to the "events_count" field in this mutation.
func (m *AgentRunMutation) AddedEventsCount() (r int, exists bool) {
	v := m.addevents_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetEventsCount resets all changes to the "events_count" field.
func (m *AgentRunMutation) ResetEventsCount() {
	m.events_count = nil
	m.addevents_count = nil
}

// SetOutputRef sets the "output_ref" field.
func (m *AgentRunMutation) SetOutputRef(s string) {
	m.output_ref = &s
}

// OutputRef returns the value of the "output_ref" field in the mutation.
func (m *AgentRunMutation) OutputRef() (r string, exists bool) {
	v := m.output_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputRef returns the old "output_ref" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldOutputRef(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputRef: %w", err)
	}
	return oldValue.OutputRef, nil
}

// ClearOutputRef clears the value of the "output_ref" field.
func (m *AgentRunMutation) ClearOutputRef() {
	m.output_ref = nil
	m.clearedFields[agentrun.FieldOutputRef] = struct{}{}
}

// OutputRefCleared returns if the "output_ref" field was cleared in this mutation.
func (m *AgentRunMutation) OutputRefCleared() bool {
	_, ok := m.clearedFields[agentrun.FieldOutputRef]
	return ok
}

// ResetOutputRef resets all changes to the "output_ref" field.
func (m *AgentRunMutation) ResetOutputRef() {
	m.output_ref = nil
	delete(m.clearedFields, agentrun.FieldOutputRef)
}

// SetErrorMessage sets the "error_message" field.
func (m *AgentRunMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *AgentRunMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *AgentRunMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[agentrun.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *AgentRunMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[agentrun.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *AgentRunMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, agentrun.FieldErrorMessage)
}

// Where appends a list predicates to the AgentRunMutation builder.
func (m *AgentRunMutation) Where(ps ...predicate.AgentRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentRun).
func (m *AgentRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentRunMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.correlation_id != nil {
		fields = append(fields, agentrun.FieldCorrelationID)
	}
	if m.org_id != nil {
		fields = append(fields, agentrun.FieldOrgID)
	}
	if m.team_node_id != nil {
		fields = append(fields, agentrun.FieldTeamNodeID)
	}
	if m.agent_name != nil {
		fields = append(fields, agentrun.FieldAgentName)
	}
	if m.trigger_source != nil {
		fields = append(fields, agentrun.FieldTriggerSource)
	}
	if m.status != nil {
		fields = append(fields, agentrun.FieldStatus)
	}
	if m.started_at != nil {
		fields = append(fields, agentrun.FieldStartedAt)
	}
	if m.ended_at != nil {
		fields = append(fields, agentrun.FieldEndedAt)
	}
	if m.max_turns != nil {
		fields = append(fields, agentrun.FieldMaxTurns)
	}
	if m.events_count != nil {
		fields = append(fields, agentrun.FieldEventsCount)
	}
	if m.output_ref != nil {
		fields = append(fields, agentrun.FieldOutputRef)
	}
	if m.error_message != nil {
		fields = append(fields, agentrun.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentrun.FieldCorrelationID:
		return m.CorrelationID()
	case agentrun.FieldOrgID:
		return m.OrgID()
	case agentrun.FieldTeamNodeID:
		return m.TeamNodeID()
	case agentrun.FieldAgentName:
		return m.AgentName()
	case agentrun.FieldTriggerSource:
		return m.TriggerSource()
	case agentrun.FieldStatus:
		return m.Status()
	case agentrun.FieldStartedAt:
		return m.StartedAt()
	case agentrun.FieldEndedAt:
		return m.EndedAt()
	case agentrun.FieldMaxTurns:
		return m.MaxTurns()
	case agentrun.FieldEventsCount:
		return m.EventsCount()
	case agentrun.FieldOutputRef:
		return m.OutputRef()
	case agentrun.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentrun.FieldCorrelationID:
		return m.OldCorrelationID(ctx)
	case agentrun.FieldOrgID:
		return m.OldOrgID(ctx)
	case agentrun.FieldTeamNodeID:
		return m.OldTeamNodeID(ctx)
	case agentrun.FieldAgentName:
		return m.OldAgentName(ctx)
	case agentrun.FieldTriggerSource:
		return m.OldTriggerSource(ctx)
	case agentrun.FieldStatus:
		return m.OldStatus(ctx)
	case agentrun.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case agentrun.FieldEndedAt:
		return m.OldEndedAt(ctx)
	case agentrun.FieldMaxTurns:
		return m.OldMaxTurns(ctx)
	case agentrun.FieldEventsCount:
		return m.OldEventsCount(ctx)
	case agentrun.FieldOutputRef:
		return m.OldOutputRef(ctx)
	case agentrun.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown AgentRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentrun.FieldCorrelationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrelationID(v)
		return nil
	case agentrun.FieldOrgID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrgID(v)
		return nil
	case agentrun.FieldTeamNodeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTeamNodeID(v)
		return nil
	case agentrun.FieldAgentName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentName(v)
		return nil
	case agentrun.FieldTriggerSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggerSource(v)
		return nil
	case agentrun.FieldStatus:
		v, ok := value.(agentrun.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agentrun.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case agentrun.FieldEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndedAt(v)
		return nil
	case agentrun.FieldMaxTurns:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxTurns(v)
		return nil
	case agentrun.FieldEventsCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventsCount(v)
		return nil
	case agentrun.FieldOutputRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputRef(v)
		return nil
	case agentrun.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown AgentRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentRunMutation) AddedFields() []string {
	var fields []string
	if m.addmax_turns != nil {
		fields = append(fields, agentrun.FieldMaxTurns)
	}
	if m.addevents_count != nil {
		fields = append(fields, agentrun.FieldEventsCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentrun.FieldMaxTurns:
		return m.AddedMaxTurns()
	case agentrun.FieldEventsCount:
		return m.AddedEventsCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentrun.FieldMaxTurns:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxTurns(v)
		return nil
	case agentrun.FieldEventsCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEventsCount(v)
		return nil
	}
	return fmt.Errorf("unknown AgentRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentrun.FieldCorrelationID) {
		fields = append(fields, agentrun.FieldCorrelationID)
	}
	if m.FieldCleared(agentrun.FieldTriggerSource) {
		fields = append(fields, agentrun.FieldTriggerSource)
	}
	if m.FieldCleared(agentrun.FieldEndedAt) {
		fields = append(fields, agentrun.FieldEndedAt)
	}
	if m.FieldCleared(agentrun.FieldOutputRef) {
		fields = append(fields, agentrun.FieldOutputRef)
	}
	if m.FieldCleared(agentrun.FieldErrorMessage) {
		fields = append(fields, agentrun.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentRunMutation) ClearField(name string) error {
	switch name {
	case agentrun.FieldCorrelationID:
		m.ClearCorrelationID()
		return nil
	case agentrun.FieldTriggerSource:
		m.ClearTriggerSource()
		return nil
	case agentrun.FieldEndedAt:
		m.ClearEndedAt()
		return nil
	case agentrun.FieldOutputRef:
		m.ClearOutputRef()
		return nil
	case agentrun.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown AgentRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentRunMutation) ResetField(name string) error {
	switch name {
	case agentrun.FieldCorrelationID:
		m.ResetCorrelationID()
		return nil
	case agentrun.FieldOrgID:
		m.ResetOrgID()
		return nil
	case agentrun.FieldTeamNodeID:
		m.ResetTeamNodeID()
		return nil
	case agentrun.FieldAgentName:
		m.ResetAgentName()
		return nil
	case agentrun.FieldTriggerSource:
		m.ResetTriggerSource()
		return nil
	case agentrun.FieldStatus:
		m.ResetStatus()
		return nil
	case agentrun.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case agentrun.FieldEndedAt:
		m.ResetEndedAt()
		return nil
	case agentrun.FieldMaxTurns:
		m.ResetMaxTurns()
		return nil
	case agentrun.FieldEventsCount:
		m.ResetEventsCount()
		return nil
	case agentrun.FieldOutputRef:
		m.ResetOutputRef()
		return nil
	case agentrun.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown AgentRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentRunMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentRunMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentRunMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AgentRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentRunMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AgentRun edge %s", name)
}

// AuditEventMutation represents an operation that mutates the AuditEvent nodes in the graph.
type AuditEventMutation struct {
	config
	op            Op
	typ           string
	id            *string
	ts            *time.Time
	actor         *string
	action        *string
	target        *string
	outcome       *auditevent.Outcome
	detail        *map[string]interface{}
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AuditEvent, error)
	predicates    []predicate.AuditEvent
}

var _ ent.Mutation = (*AuditEventMutation)(nil)

// auditeventOption allows management of the mutation configuration using functional options.
type auditeventOption func(*AuditEventMutation)

// newAuditEventMutation creates new mutation for the AuditEvent entity.
func newAuditEventMutation(c config, op Op, opts ...auditeventOption) *AuditEventMutation {
	m := &AuditEventMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditEventID sets the ID field of the mutation.
func withAuditEventID(id string) auditeventOption {
	return func(m *AuditEventMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditEvent
		)
		m.oldValue = func(ctx context.Context) (*AuditEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditEvent sets the old AuditEvent of the mutation.
func withAuditEvent(node *AuditEvent) auditeventOption {
	return func(m *AuditEventMutation) {
		m.oldValue = func(context.Context) (*AuditEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AuditEvent entities.
func (m *AuditEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTs sets the "ts" field.
func (m *AuditEventMutation) SetTs(t time.Time) {
	m.ts = &t
}

// Ts returns the value of the "ts" field in the mutation.
func (m *AuditEventMutation) Ts() (r time.Time, exists bool) {
	v := m.ts
	if v == nil {
		return
	}
	return *v, true
}

// OldTs returns the old "ts" field's value of the AuditEvent entity.
// If the AuditEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEventMutation) OldTs(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTs: %w", err)
	}
	return oldValue.Ts, nil
}

// ResetTs resets all changes to the "ts" field.
func (m *AuditEventMutation) ResetTs() {
	m.ts = nil
}

// SetActor sets the "actor" field.
func (m *AuditEventMutation) SetActor(s string) {
	m.actor = &s
}

// Actor returns the value of the "actor" field in the mutation.
func (m *AuditEventMutation) Actor() (r string, exists bool) {
	v := m.actor
	if v == nil {
		return
	}
	return *v, true
}

// OldActor returns the old "actor" field's value of the AuditEvent entity.
// If the AuditEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEventMutation) OldActor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActor: %w", err)
	}
	return oldValue.Actor, nil
}

// ResetActor resets all changes to the "actor" field.
func (m *AuditEventMutation) ResetActor() {
	m.actor = nil
}

// SetAction sets the "action" field.
func (m *AuditEventMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *AuditEventMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the AuditEvent entity.
// If the AuditEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEventMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *AuditEventMutation) ResetAction() {
	m.action = nil
}

// SetTarget sets the "target" field.
func (m *AuditEventMutation) SetTarget(s string) {
	m.target = &s
}

// Target returns the value of the "target" field in the mutation.
func (m *AuditEventMutation) Target() (r string, exists bool) {
	v := m.target
	if v == nil {
		return
	}
	return *v, true
}

// OldTarget returns the old "target" field's value of the AuditEvent entity.
// If the AuditEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEventMutation) OldTarget(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTarget is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTarget requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTarget: %w", err)
	}
	return oldValue.Target, nil
}

// ClearTarget clears the value of the "target" field.
func (m *AuditEventMutation) ClearTarget() {
	m.target = nil
	m.clearedFields[auditevent.FieldTarget] = struct{}{}
}

// TargetCleared returns if the "target" field was cleared in this mutation.
func (m *AuditEventMutation) TargetCleared() bool {
	_, ok := m.clearedFields[auditevent.FieldTarget]
	return ok
}

// ResetTarget resets all changes to the "target" field.
func (m *AuditEventMutation) ResetTarget() {
	m.target = nil
	delete(m.clearedFields, auditevent.FieldTarget)
}

// SetOutcome sets the "outcome" field.
func (m *AuditEventMutation) SetOutcome(a auditevent.Outcome) {
	m.outcome = &a
}

// Outcome returns the value of the "outcome" field in the mutation.
func (m *AuditEventMutation) Outcome() (r auditevent.Outcome, exists bool) {
	v := m.outcome
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcome returns the old "outcome" field's value of the AuditEvent entity.
// If the AuditEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEventMutation) OldOutcome(ctx context.Context) (v auditevent.Outcome, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcome is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcome requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcome: %w", err)
	}
	return oldValue.Outcome, nil
}

// ResetOutcome resets all changes to the "outcome" field.
func (m *AuditEventMutation) ResetOutcome() {
	m.outcome = nil
}

// SetDetail sets the "detail" field.
func (m *AuditEventMutation) SetDetail(value map[string]interface{}) {
	m.detail = &value
}

// Detail returns the value of the "detail" field in the mutation.
func (m *AuditEventMutation) Detail() (r map[string]interface{}, exists bool) {
	v := m.detail
	if v == nil {
		return
	}
	return *v, true
}

// OldDetail returns the old "detail" field's value of the AuditEvent entity.
// If the AuditEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEventMutation) OldDetail(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetail: %w", err)
	}
	return oldValue.Detail, nil
}

// ClearDetail clears the value of the "detail" field.
func (m *AuditEventMutation) ClearDetail() {
	m.detail = nil
	m.clearedFields[auditevent.FieldDetail] = struct{}{}
}

// DetailCleared returns if the "detail" field was cleared in this mutation.
func (m *AuditEventMutation) DetailCleared() bool {
	_, ok := m.clearedFields[auditevent.FieldDetail]
	return ok
}

// ResetDetail resets all changes to the "detail" field.
func (m *AuditEventMutation) ResetDetail() {
	m.detail = nil
	delete(m.clearedFields, auditevent.FieldDetail)
}

// Where appends a list predicates to the AuditEventMutation builder.
func (m *AuditEventMutation) Where(ps ...predicate.AuditEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditEvent).
func (m *AuditEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditEventMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.ts != nil {
		fields = append(fields, auditevent.FieldTs)
	}
	if m.actor != nil {
		fields = append(fields, auditevent.FieldActor)
	}
	if m.action != nil {
		fields = append(fields, auditevent.FieldAction)
	}
	if m.target != nil {
		fields = append(fields, auditevent.FieldTarget)
	}
	if m.outcome != nil {
		fields = append(fields, auditevent.FieldOutcome)
	}
	if m.detail != nil {
		fields = append(fields, auditevent.FieldDetail)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditevent.FieldTs:
		return m.Ts()
	case auditevent.FieldActor:
		return m.Actor()
	case auditevent.FieldAction:
		return m.Action()
	case auditevent.FieldTarget:
		return m.Target()
	case auditevent.FieldOutcome:
		return m.Outcome()
	case auditevent.FieldDetail:
		return m.Detail()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditevent.FieldTs:
		return m.OldTs(ctx)
	case auditevent.FieldActor:
		return m.OldActor(ctx)
	case auditevent.FieldAction:
		return m.OldAction(ctx)
	case auditevent.FieldTarget:
		return m.OldTarget(ctx)
	case auditevent.FieldOutcome:
		return m.OldOutcome(ctx)
	case auditevent.FieldDetail:
		return m.OldDetail(ctx)
	}
	return nil, fmt.Errorf("unknown AuditEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditevent.FieldTs:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTs(v)
		return nil
	case auditevent.FieldActor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActor(v)
		return nil
	case auditevent.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case auditevent.FieldTarget:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTarget(v)
		return nil
	case auditevent.FieldOutcome:
		v, ok := value.(auditevent.Outcome)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcome(v)
		return nil
	case auditevent.FieldDetail:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetail(v)
		return nil
	}
	return fmt.Errorf("unknown AuditEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AuditEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditevent.FieldTarget) {
		fields = append(fields, auditevent.FieldTarget)
	}
	if m.FieldCleared(auditevent.FieldDetail) {
		fields = append(fields, auditevent.FieldDetail)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditEventMutation) ClearField(name string) error {
	switch name {
	case auditevent.FieldTarget:
		m.ClearTarget()
		return nil
	case auditevent.FieldDetail:
		m.ClearDetail()
		return nil
	}
	return fmt.Errorf("unknown AuditEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditEventMutation) ResetField(name string) error {
	switch name {
	case auditevent.FieldTs:
		m.ResetTs()
		return nil
	case auditevent.FieldActor:
		m.ResetActor()
		return nil
	case auditevent.FieldAction:
		m.ResetAction()
		return nil
	case auditevent.FieldTarget:
		m.ResetTarget()
		return nil
	case auditevent.FieldOutcome:
		m.ResetOutcome()
		return nil
	case auditevent.FieldDetail:
		m.ResetDetail()
		return nil
	}
	return fmt.Errorf("unknown AuditEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AuditEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AuditEvent edge %s", name)
}

// ImpersonationJTIMutation represents an operation that mutates the ImpersonationJTI nodes in the graph.
type ImpersonationJTIMutation struct {
	config
	op            Op
	typ           string
	id            *string
	org_id        *string
	team_node_id  *string
	created_at    *time.Time
	expires_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ImpersonationJTI, error)
	predicates    []predicate.ImpersonationJTI
}

var _ ent.Mutation = (*ImpersonationJTIMutation)(nil)

// impersonationjtiOption allows management of the mutation configuration using functional options.
type impersonationjtiOption func(*ImpersonationJTIMutation)

// newImpersonationJTIMutation creates new mutation for the ImpersonationJTI entity.
func newImpersonationJTIMutation(c config, op Op, opts ...impersonationjtiOption) *ImpersonationJTIMutation {
	m := &ImpersonationJTIMutation{
		config:        c,
		op:            op,
		typ:           TypeImpersonationJTI,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withImpersonationJTIID sets the ID field of the mutation.
func withImpersonationJTIID(id string) impersonationjtiOption {
	return func(m *ImpersonationJTIMutation) {
		var (
			err   error
			once  sync.Once
			value *ImpersonationJTI
		)
		m.oldValue = func(ctx context.Context) (*ImpersonationJTI, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ImpersonationJTI.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withImpersonationJTI sets the old ImpersonationJTI of the mutation.
func withImpersonationJTI(node *ImpersonationJTI) impersonationjtiOption {
	return func(m *ImpersonationJTIMutation) {
		m.oldValue = func(context.Context) (*ImpersonationJTI, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ImpersonationJTIMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ImpersonationJTIMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ImpersonationJTI entities.
func (m *ImpersonationJTIMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ImpersonationJTIMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ImpersonationJTIMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ImpersonationJTI.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOrgID sets the "org_id" field.
func (m *ImpersonationJTIMutation) SetOrgID(s string) {
	m.org_id = &s
}

// OrgID returns the value of the "org_id" field in the mutation.
func (m *ImpersonationJTIMutation) OrgID() (r string, exists bool) {
	v := m.org_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrgID returns the old "org_id" field's value of the ImpersonationJTI entity.
// If the ImpersonationJTI object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImpersonationJTIMutation) OldOrgID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrgID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrgID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrgID: %w", err)
	}
	return oldValue.OrgID, nil
}

// ResetOrgID resets all changes to the "org_id" field.
func (m *ImpersonationJTIMutation) ResetOrgID() {
	m.org_id = nil
}

// SetTeamNodeID sets the "team_node_id" field.
func (m *ImpersonationJTIMutation) SetTeamNodeID(s string) {
	m.team_node_id = &s
}

// TeamNodeID returns the value of the "team_node_id" field in the mutation.
func (m *ImpersonationJTIMutation) TeamNodeID() (r string, exists bool) {
	v := m.team_node_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTeamNodeID returns the old "team_node_id" field's value of the ImpersonationJTI entity.
// If the ImpersonationJTI object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImpersonationJTIMutation) OldTeamNodeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTeamNodeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTeamNodeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTeamNodeID: %w", err)
	}
	return oldValue.TeamNodeID, nil
}

// ResetTeamNodeID resets all changes to the "team_node_id" field.
func (m *ImpersonationJTIMutation) ResetTeamNodeID() {
	m.team_node_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ImpersonationJTIMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ImpersonationJTIMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ImpersonationJTI entity.
// If the ImpersonationJTI object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImpersonationJTIMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ImpersonationJTIMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *ImpersonationJTIMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *ImpersonationJTIMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the ImpersonationJTI entity.
// If the ImpersonationJTI object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImpersonationJTIMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *ImpersonationJTIMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// Where appends a list predicates to the ImpersonationJTIMutation builder.
func (m *ImpersonationJTIMutation) Where(ps ...predicate.ImpersonationJTI) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ImpersonationJTIMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ImpersonationJTIMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ImpersonationJTI, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ImpersonationJTIMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ImpersonationJTIMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ImpersonationJTI).
func (m *ImpersonationJTIMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ImpersonationJTIMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.org_id != nil {
		fields = append(fields, impersonationjti.FieldOrgID)
	}
	if m.team_node_id != nil {
		fields = append(fields, impersonationjti.FieldTeamNodeID)
	}
	if m.created_at != nil {
		fields = append(fields, impersonationjti.FieldCreatedAt)
	}
	if m.expires_at != nil {
		fields = append(fields, impersonationjti.FieldExpiresAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ImpersonationJTIMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case impersonationjti.FieldOrgID:
		return m.OrgID()
	case impersonationjti.FieldTeamNodeID:
		return m.TeamNodeID()
	case impersonationjti.FieldCreatedAt:
		return m.CreatedAt()
	case impersonationjti.FieldExpiresAt:
		return m.ExpiresAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ImpersonationJTIMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case impersonationjti.FieldOrgID:
		return m.OldOrgID(ctx)
	case impersonationjti.FieldTeamNodeID:
		return m.OldTeamNodeID(ctx)
	case impersonationjti.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case impersonationjti.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	}
	return nil, fmt.Errorf("unknown ImpersonationJTI field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ImpersonationJTIMutation) SetField(name string, value ent.Value) error {
	switch name {
	case impersonationjti.FieldOrgID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrgID(v)
		return nil
	case impersonationjti.FieldTeamNodeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTeamNodeID(v)
		return nil
	case impersonationjti.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case impersonationjti.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	}
	return fmt.Errorf("unknown ImpersonationJTI field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ImpersonationJTIMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ImpersonationJTIMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ImpersonationJTIMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ImpersonationJTI numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ImpersonationJTIMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ImpersonationJTIMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ImpersonationJTIMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ImpersonationJTI nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ImpersonationJTIMutation) ResetField(name string) error {
	switch name {
	case impersonationjti.FieldOrgID:
		m.ResetOrgID()
		return nil
	case impersonationjti.FieldTeamNodeID:
		m.ResetTeamNodeID()
		return nil
	case impersonationjti.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case impersonationjti.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown ImpersonationJTI field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ImpersonationJTIMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ImpersonationJTIMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ImpersonationJTIMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ImpersonationJTIMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ImpersonationJTIMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ImpersonationJTIMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ImpersonationJTIMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ImpersonationJTI unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ImpersonationJTIMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ImpersonationJTI edge %s", name)
}

// IntegrationSchemaMutation represents an operation that mutates the IntegrationSchema nodes in the graph.
type IntegrationSchemaMutation struct {
	config
	op            Op
	typ           string
	id            *string
	name          *string
	category      *string
	fields        *[]map[string]interface{}
	appendfields  []map[string]interface{}
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*IntegrationSchema, error)
	predicates    []predicate.IntegrationSchema
}

var _ ent.Mutation = (*IntegrationSchemaMutation)(nil)

// integrationschemaOption allows management of the mutation configuration using functional options.
type integrationschemaOption func(*IntegrationSchemaMutation)

// newIntegrationSchemaMutation creates new mutation for the IntegrationSchema entity.
func newIntegrationSchemaMutation(c config, op Op, opts ...integrationschemaOption) *IntegrationSchemaMutation {
	m := &IntegrationSchemaMutation{
		config:        c,
		op:            op,
		typ:           TypeIntegrationSchema,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIntegrationSchemaID sets the ID field of the mutation.
func withIntegrationSchemaID(id string) integrationschemaOption {
	return func(m *IntegrationSchemaMutation) {
		var (
			err   error
			once  sync.Once
			value *IntegrationSchema
		)
		m.oldValue = func(ctx context.Context) (*IntegrationSchema, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().IntegrationSchema.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIntegrationSchema sets the old IntegrationSchema of the mutation.
func withIntegrationSchema(node *IntegrationSchema) integrationschemaOption {
	return func(m *IntegrationSchemaMutation) {
		m.oldValue = func(context.Context) (*IntegrationSchema, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IntegrationSchemaMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IntegrationSchemaMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of IntegrationSchema entities.
func (m *IntegrationSchemaMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IntegrationSchemaMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IntegrationSchemaMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().IntegrationSchema.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *IntegrationSchemaMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *IntegrationSchemaMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the IntegrationSchema entity.
// If the IntegrationSchema object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrationSchemaMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *IntegrationSchemaMutation) ResetName() {
	m.name = nil
}

// SetCategory sets the "category" field.
func (m *IntegrationSchemaMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *IntegrationSchemaMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the IntegrationSchema entity.
// If the IntegrationSchema object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrationSchemaMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *IntegrationSchemaMutation) ResetCategory() {
	m.category = nil
}

// SetFields sets the "fields" field.
func (m *IntegrationSchemaMutation) SetFields(value []map[string]interface{}) {
	m.fields = &value
	m.appendfields = nil
}

// GetFields returns the value of the "fields" field in the mutation.
func (m *IntegrationSchemaMutation) GetFields() (r []map[string]interface{}, exists bool) {
	v := m.fields
	if v == nil {
		return
	}
	return *v, true
}

// OldFields returns the old "fields" field's value of the IntegrationSchema entity.
// If the IntegrationSchema object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrationSchemaMutation) OldFields(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFields is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFields requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFields: %w", err)
	}
	return oldValue.Fields, nil
}

// AppendFields adds value to the "fields" field.
func (m *IntegrationSchemaMutation) AppendFields(value []map[string]interface{}) {
	m.appendfields = append(m.appendfields, value...)
}

// AppendedFields returns the list of values that were appended to the "fields" field in this mutation.
func (m *IntegrationSchemaMutation) AppendedFields() ([]map[string]interface{}, bool) {
	if len(m.appendfields) == 0 {
		return nil, false
	}
	return m.appendfields, true
}

// ResetFields resets all changes to the "fields" field.
func (m *IntegrationSchemaMutation) ResetFields() {
	m.fields = nil
	m.appendfields = nil
}

// Where appends a list predicates to the IntegrationSchemaMutation builder.
func (m *IntegrationSchemaMutation) Where(ps ...predicate.IntegrationSchema) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IntegrationSchemaMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IntegrationSchemaMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.IntegrationSchema, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IntegrationSchemaMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IntegrationSchemaMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (IntegrationSchema).
func (m *IntegrationSchemaMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IntegrationSchemaMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.name != nil {
		fields = append(fields, integrationschema.FieldName)
	}
	if m.category != nil {
		fields = append(fields, integrationschema.FieldCategory)
	}
	if m.fields != nil {
		fields = append(fields, integrationschema.FieldFields)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IntegrationSchemaMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case integrationschema.FieldName:
		return m.Name()
	case integrationschema.FieldCategory:
		return m.Category()
	case integrationschema.FieldFields:
		return m.GetFields()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IntegrationSchemaMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case integrationschema.FieldName:
		return m.OldName(ctx)
	case integrationschema.FieldCategory:
		return m.OldCategory(ctx)
	case integrationschema.FieldFields:
		return m.OldFields(ctx)
	}
	return nil, fmt.Errorf("unknown IntegrationSchema field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IntegrationSchemaMutation) SetField(name string, value ent.Value) error {
	switch name {
	case integrationschema.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case integrationschema.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case integrationschema.FieldFields:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFields(v)
		return nil
	}
	return fmt.Errorf("unknown IntegrationSchema field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IntegrationSchemaMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IntegrationSchemaMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IntegrationSchemaMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown IntegrationSchema numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IntegrationSchemaMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IntegrationSchemaMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IntegrationSchemaMutation) ClearField(name string) error {
	return fmt.Errorf("unknown IntegrationSchema nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IntegrationSchemaMutation) ResetField(name string) error {
	switch name {
	case integrationschema.FieldName:
		m.ResetName()
		return nil
	case integrationschema.FieldCategory:
		m.ResetCategory()
		return nil
	case integrationschema.FieldFields:
		m.ResetFields()
		return nil
	}
	return fmt.Errorf("unknown IntegrationSchema field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IntegrationSchemaMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IntegrationSchemaMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IntegrationSchemaMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IntegrationSchemaMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IntegrationSchemaMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IntegrationSchemaMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IntegrationSchemaMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown IntegrationSchema unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IntegrationSchemaMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown IntegrationSchema edge %s", name)
}

// NodeConfigMutation represents an operation that mutates the NodeConfig nodes in the graph.
type NodeConfigMutation struct {
	config
	op            Op
	typ           string
	id            *string
	org_id        *string
	node_id       *string
	_config       *map[string]interface{}
	version       *int
	addversion    *int
	updated_at    *time.Time
	updated_by    *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*NodeConfig, error)
	predicates    []predicate.NodeConfig
}

var _ ent.Mutation = (*NodeConfigMutation)(nil)

// nodeconfigOption allows management of the mutation configuration using functional options.
type nodeconfigOption func(*NodeConfigMutation)

// newNodeConfigMutation creates new mutation for the NodeConfig entity.
func newNodeConfigMutation(c config, op Op, opts ...nodeconfigOption) *NodeConfigMutation {
	m := &NodeConfigMutation{
		config:        c,
		op:            op,
		typ:           TypeNodeConfig,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNodeConfigID sets the ID field of the mutation.
func withNodeConfigID(id string) nodeconfigOption {
	return func(m *NodeConfigMutation) {
		var (
			err   error
			once  sync.Once
			value *NodeConfig
		)
		m.oldValue = func(ctx context.Context) (*NodeConfig, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().NodeConfig.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNodeConfig sets the old NodeConfig of the mutation.
func withNodeConfig(node *NodeConfig) nodeconfigOption {
	return func(m *NodeConfigMutation) {
		m.oldValue = func(context.Context) (*NodeConfig, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NodeConfigMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NodeConfigMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of NodeConfig entities.
func (m *NodeConfigMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NodeConfigMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NodeConfigMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().NodeConfig.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOrgID sets the "org_id" field.
func (m *NodeConfigMutation) SetOrgID(s string) {
	m.org_id = &s
}

// OrgID returns the value of the "org_id" field in the mutation.
func (m *NodeConfigMutation) OrgID() (r string, exists bool) {
	v := m.org_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrgID returns the old "org_id" field's value of the NodeConfig entity.
// If the NodeConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NodeConfigMutation) OldOrgID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrgID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrgID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrgID: %w", err)
	}
	return oldValue.OrgID, nil
}

// ResetOrgID resets all changes to the "org_id" field.
func (m *NodeConfigMutation) ResetOrgID() {
	m.org_id = nil
}

// SetNodeID sets the "node_id" field.
func (m *NodeConfigMutation) SetNodeID(s string) {
	m.node_id = &s
}

// NodeID returns the value of the "node_id" field in the mutation.
func (m *NodeConfigMutation) NodeID() (r string, exists bool) {
	v := m.node_id
	if v == nil {
		return
	}
	return *v, true
}

// OldNodeID returns the old "node_id" field's value of the NodeConfig entity.
// If the NodeConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NodeConfigMutation) OldNodeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNodeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNodeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNodeID: %w", err)
	}
	return oldValue.NodeID, nil
}

// ResetNodeID resets all changes to the "node_id" field.
func (m *NodeConfigMutation) ResetNodeID() {
	m.node_id = nil
}

// SetConfig sets the "config" field.
func (m *NodeConfigMutation) SetConfig(value map[string]interface{}) {
	m._config = &value
}

// Config returns the value of the "config" field in the mutation.
func (m *NodeConfigMutation) Config() (r map[string]interface{}, exists bool) {
	v := m._config
	if v == nil {
		return
	}
	return *v, true
}

// OldConfig returns the old "config" field's value of the NodeConfig entity.
// If the NodeConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NodeConfigMutation) OldConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfig: %w", err)
	}
	return oldValue.Config, nil
}

// ResetConfig resets all changes to the "config" field.
func (m *NodeConfigMutation) ResetConfig() {
	m._config = nil
}

// SetVersion sets the "version" field.
func (m *NodeConfigMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *NodeConfigMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the NodeConfig entity.
// If the NodeConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NodeConfigMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *NodeConfigMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *NodeConfigMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *NodeConfigMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *NodeConfigMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *NodeConfigMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the NodeConfig entity.
// If the NodeConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NodeConfigMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *NodeConfigMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUpdatedBy sets the "updated_by" field.
func (m *NodeConfigMutation) SetUpdatedBy(s string) {
	m.updated_by = &s
}

// UpdatedBy returns the value of the "updated_by" field in the mutation.
func (m *NodeConfigMutation) UpdatedBy() (r string, exists bool) {
	v := m.updated_by
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedBy returns the old "updated_by" field's value of the NodeConfig entity.
// If the NodeConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NodeConfigMutation) OldUpdatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedBy: %w", err)
	}
	return oldValue.UpdatedBy, nil
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (m *NodeConfigMutation) ClearUpdatedBy() {
	m.updated_by = nil
	m.clearedFields[nodeconfig.FieldUpdatedBy] = struct{}{}
}

// UpdatedByCleared returns if the "updated_by" field was cleared in this mutation.
func (m *NodeConfigMutation) UpdatedByCleared() bool {
	_, ok := m.clearedFields[nodeconfig.FieldUpdatedBy]
	return ok
}

// ResetUpdatedBy resets all changes to the "updated_by" field.
func (m *NodeConfigMutation) ResetUpdatedBy() {
	m.updated_by = nil
	delete(m.clearedFields, nodeconfig.FieldUpdatedBy)
}

// Where appends a list predicates to the NodeConfigMutation builder.
func (m *NodeConfigMutation) Where(ps ...predicate.NodeConfig) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NodeConfigMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NodeConfigMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.NodeConfig, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NodeConfigMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NodeConfigMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (NodeConfig).
func (m *NodeConfigMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NodeConfigMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.org_id != nil {
		fields = append(fields, nodeconfig.FieldOrgID)
	}
	if m.node_id != nil {
		fields = append(fields, nodeconfig.FieldNodeID)
	}
	if m._config != nil {
		fields = append(fields, nodeconfig.FieldConfig)
	}
	if m.version != nil {
		fields = append(fields, nodeconfig.FieldVersion)
	}
	if m.updated_at != nil {
		fields = append(fields, nodeconfig.FieldUpdatedAt)
	}
	if m.updated_by != nil {
		fields = append(fields, nodeconfig.FieldUpdatedBy)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NodeConfigMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case nodeconfig.FieldOrgID:
		return m.OrgID()
	case nodeconfig.FieldNodeID:
		return m.NodeID()
	case nodeconfig.FieldConfig:
		return m.Config()
	case nodeconfig.FieldVersion:
		return m.Version()
	case nodeconfig.FieldUpdatedAt:
		return m.UpdatedAt()
	case nodeconfig.FieldUpdatedBy:
		return m.UpdatedBy()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NodeConfigMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case nodeconfig.FieldOrgID:
		return m.OldOrgID(ctx)
	case nodeconfig.FieldNodeID:
		return m.OldNodeID(ctx)
	case nodeconfig.FieldConfig:
		return m.OldConfig(ctx)
	case nodeconfig.FieldVersion:
		return m.OldVersion(ctx)
	case nodeconfig.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case nodeconfig.FieldUpdatedBy:
		return m.OldUpdatedBy(ctx)
	}
	return nil, fmt.Errorf("unknown NodeConfig field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NodeConfigMutation) SetField(name string, value ent.Value) error {
	switch name {
	case nodeconfig.FieldOrgID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrgID(v)
		return nil
	case nodeconfig.FieldNodeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNodeID(v)
		return nil
	case nodeconfig.FieldConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfig(v)
		return nil
	case nodeconfig.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case nodeconfig.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case nodeconfig.FieldUpdatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedBy(v)
		return nil
	}
	return fmt.Errorf("unknown NodeConfig field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NodeConfigMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, nodeconfig.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NodeConfigMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case nodeconfig.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NodeConfigMutation) AddField(name string, value ent.Value) error {
	switch name {
	case nodeconfig.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown NodeConfig numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NodeConfigMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(nodeconfig.FieldUpdatedBy) {
		fields = append(fields, nodeconfig.FieldUpdatedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NodeConfigMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NodeConfigMutation) ClearField(name string) error {
	switch name {
	case nodeconfig.FieldUpdatedBy:
		m.ClearUpdatedBy()
		return nil
	}
	return fmt.Errorf("unknown NodeConfig nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NodeConfigMutation) ResetField(name string) error {
	switch name {
	case nodeconfig.FieldOrgID:
		m.ResetOrgID()
		return nil
	case nodeconfig.FieldNodeID:
		m.ResetNodeID()
		return nil
	case nodeconfig.FieldConfig:
		m.ResetConfig()
		return nil
	case nodeconfig.FieldVersion:
		m.ResetVersion()
		return nil
	case nodeconfig.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case nodeconfig.FieldUpdatedBy:
		m.ResetUpdatedBy()
		return nil
	}
	return fmt.Errorf("unknown NodeConfig field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NodeConfigMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NodeConfigMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NodeConfigMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NodeConfigMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NodeConfigMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NodeConfigMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NodeConfigMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown NodeConfig unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NodeConfigMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown NodeConfig edge %s", name)
}

// NodeConfigHistoryMutation represents an operation that mutates the NodeConfigHistory nodes in the graph.
type NodeConfigHistoryMutation struct {
	config
	op            Op
	typ           string
	id            *string
	org_id        *string
	node_id       *string
	_config       *map[string]interface{}
	version       *int
	addversion    *int
	recorded_at   *time.Time
	updated_by    *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*NodeConfigHistory, error)
	predicates    []predicate.NodeConfigHistory
}

var _ ent.Mutation = (*NodeConfigHistoryMutation)(nil)

// nodeconfighistoryOption allows management of the mutation configuration using functional options.
type nodeconfighistoryOption func(*NodeConfigHistoryMutation)

// newNodeConfigHistoryMutation creates new mutation for the NodeConfigHistory entity.
func newNodeConfigHistoryMutation(c config, op Op, opts ...nodeconfighistoryOption) *NodeConfigHistoryMutation {
	m := &NodeConfigHistoryMutation{
		config:        c,
		op:            op,
		typ:           TypeNodeConfigHistory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNodeConfigHistoryID sets the ID field of the mutation.
func withNodeConfigHistoryID(id string) nodeconfighistoryOption {
	return func(m *NodeConfigHistoryMutation) {
		var (
			err   error
			once  sync.Once
			value *NodeConfigHistory
		)
		m.oldValue = func(ctx context.Context) (*NodeConfigHistory, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().NodeConfigHistory.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNodeConfigHistory sets the old NodeConfigHistory of the mutation.
func withNodeConfigHistory(node *NodeConfigHistory) nodeconfighistoryOption {
	return func(m *NodeConfigHistoryMutation) {
		m.oldValue = func(context.Context) (*NodeConfigHistory, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NodeConfigHistoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NodeConfigHistoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of NodeConfigHistory entities.
func (m *NodeConfigHistoryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NodeConfigHistoryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NodeConfigHistoryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().NodeConfigHistory.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOrgID sets the "org_id" field.
func (m *NodeConfigHistoryMutation) SetOrgID(s string) {
	m.org_id = &s
}

// OrgID returns the value of the "org_id" field in the mutation.
func (m *NodeConfigHistoryMutation) OrgID() (r string, exists bool) {
	v := m.org_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrgID returns the old "org_id" field's value of the NodeConfigHistory entity.
// If the NodeConfigHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NodeConfigHistoryMutation) OldOrgID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrgID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrgID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrgID: %w", err)
	}
	return oldValue.OrgID, nil
}

// ResetOrgID resets all changes to the "org_id" field.
func (m *NodeConfigHistoryMutation) ResetOrgID() {
	m.org_id = nil
}

// SetNodeID sets the "node_id" field.
func (m *NodeConfigHistoryMutation) SetNodeID(s string) {
	m.node_id = &s
}

// NodeID returns the value of the "node_id" field in the mutation.
func (m *NodeConfigHistoryMutation) NodeID() (r string, exists bool) {
	v := m.node_id
	if v == nil {
		return
	}
	return *v, true
}

// OldNodeID returns the old "node_id" field's value of the NodeConfigHistory entity.
// If the NodeConfigHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NodeConfigHistoryMutation) OldNodeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNodeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNodeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNodeID: %w", err)
	}
	return oldValue.NodeID, nil
}

// ResetNodeID resets all changes to the "node_id" field.
func (m *NodeConfigHistoryMutation) ResetNodeID() {
	m.node_id = nil
}

// SetConfig sets the "config" field.
func (m *NodeConfigHistoryMutation) SetConfig(value map[string]interface{}) {
	m._config = &value
}

// Config returns the value of the "config" field in the mutation.
func (m *NodeConfigHistoryMutation) Config() (r map[string]interface{}, exists bool) {
	v := m._config
	if v == nil {
		return
	}
	return *v, true
}

// OldConfig returns the old "config" field's value of the NodeConfigHistory entity.
// If the NodeConfigHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NodeConfigHistoryMutation) OldConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfig: %w", err)
	}
	return oldValue.Config, nil
}

// ResetConfig resets all changes to the "config" field.
func (m *NodeConfigHistoryMutation) ResetConfig() {
	m._config = nil
}

// SetVersion sets the "version" field.
func (m *NodeConfigHistoryMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *NodeConfigHistoryMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the NodeConfigHistory entity.
// If the NodeConfigHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NodeConfigHistoryMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *NodeConfigHistoryMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *NodeConfigHistoryMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *NodeConfigHistoryMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetRecordedAt sets the "recorded_at" field.
func (m *NodeConfigHistoryMutation) SetRecordedAt(t time.Time) {
	m.recorded_at = &t
}

// RecordedAt returns the value of the "recorded_at" field in the mutation.
func (m *NodeConfigHistoryMutation) RecordedAt() (r time.Time, exists bool) {
	v := m.recorded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordedAt returns the old "recorded_at" field's value of the NodeConfigHistory entity.
// If the NodeConfigHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NodeConfigHistoryMutation) OldRecordedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordedAt: %w", err)
	}
	return oldValue.RecordedAt, nil
}

// ResetRecordedAt resets all changes to the "recorded_at" field.
func (m *NodeConfigHistoryMutation) ResetRecordedAt() {
	m.recorded_at = nil
}

// SetUpdatedBy sets the "updated_by" field.
func (m *NodeConfigHistoryMutation) SetUpdatedBy(s string) {
	m.updated_by = &s
}

// UpdatedBy returns the value of the "updated_by" field in the mutation.
func (m *NodeConfigHistoryMutation) UpdatedBy() (r string, exists bool) {
	v := m.updated_by
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedBy returns the old "updated_by" field's value of the NodeConfigHistory entity.
// If the NodeConfigHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NodeConfigHistoryMutation) OldUpdatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedBy: %w", err)
	}
	return oldValue.UpdatedBy, nil
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (m *NodeConfigHistoryMutation) ClearUpdatedBy() {
	m.updated_by = nil
	m.clearedFields[nodeconfighistory.FieldUpdatedBy] = struct{}{}
}

// UpdatedByCleared returns if the "updated_by" field was cleared in this mutation.
func (m *NodeConfigHistoryMutation) UpdatedByCleared() bool {
	_, ok := m.clearedFields[nodeconfighistory.FieldUpdatedBy]
	return ok
}

// ResetUpdatedBy resets all changes to the "updated_by" field.
func (m *NodeConfigHistoryMutation) ResetUpdatedBy() {
	m.updated_by = nil
	delete(m.clearedFields, nodeconfighistory.FieldUpdatedBy)
}

// Where appends a list predicates to the NodeConfigHistoryMutation builder.
func (m *NodeConfigHistoryMutation) Where(ps ...predicate.NodeConfigHistory) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NodeConfigHistoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NodeConfigHistoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.NodeConfigHistory, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NodeConfigHistoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NodeConfigHistoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (NodeConfigHistory).
func (m *NodeConfigHistoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NodeConfigHistoryMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.org_id != nil {
		fields = append(fields, nodeconfighistory.FieldOrgID)
	}
	if m.node_id != nil {
		fields = append(fields, nodeconfighistory.FieldNodeID)
	}
	if m._config != nil {
		fields = append(fields, nodeconfighistory.FieldConfig)
	}
	if m.version != nil {
		fields = append(fields, nodeconfighistory.FieldVersion)
	}
	if m.recorded_at != nil {
		fields = append(fields, nodeconfighistory.FieldRecordedAt)
	}
	if m.updated_by != nil {
		fields = append(fields, nodeconfighistory.FieldUpdatedBy)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NodeConfigHistoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case nodeconfighistory.FieldOrgID:
		return m.OrgID()
	case nodeconfighistory.FieldNodeID:
		return m.NodeID()
	case nodeconfighistory.FieldConfig:
		return m.Config()
	case nodeconfighistory.FieldVersion:
		return m.Version()
	case nodeconfighistory.FieldRecordedAt:
		return m.RecordedAt()
	case nodeconfighistory.FieldUpdatedBy:
		return m.UpdatedBy()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NodeConfigHistoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case nodeconfighistory.FieldOrgID:
		return m.OldOrgID(ctx)
	case nodeconfighistory.FieldNodeID:
		return m.OldNodeID(ctx)
	case nodeconfighistory.FieldConfig:
		return m.OldConfig(ctx)
	case nodeconfighistory.FieldVersion:
		return m.OldVersion(ctx)
	case nodeconfighistory.FieldRecordedAt:
		return m.OldRecordedAt(ctx)
	case nodeconfighistory.FieldUpdatedBy:
		return m.OldUpdatedBy(ctx)
	}
	return nil, fmt.Errorf("unknown NodeConfigHistory field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NodeConfigHistoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case nodeconfighistory.FieldOrgID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrgID(v)
		return nil
	case nodeconfighistory.FieldNodeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNodeID(v)
		return nil
	case nodeconfighistory.FieldConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfig(v)
		return nil
	case nodeconfighistory.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case nodeconfighistory.FieldRecordedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordedAt(v)
		return nil
	case nodeconfighistory.FieldUpdatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedBy(v)
		return nil
	}
	return fmt.Errorf("unknown NodeConfigHistory field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NodeConfigHistoryMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, nodeconfighistory.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NodeConfigHistoryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case nodeconfighistory.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NodeConfigHistoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case nodeconfighistory.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown NodeConfigHistory numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NodeConfigHistoryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(nodeconfighistory.FieldUpdatedBy) {
		fields = append(fields, nodeconfighistory.FieldUpdatedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NodeConfigHistoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NodeConfigHistoryMutation) ClearField(name string) error {
	switch name {
	case nodeconfighistory.FieldUpdatedBy:
		m.ClearUpdatedBy()
		return nil
	}
	return fmt.Errorf("unknown NodeConfigHistory nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NodeConfigHistoryMutation) ResetField(name string) error {
	switch name {
	case nodeconfighistory.FieldOrgID:
		m.ResetOrgID()
		return nil
	case nodeconfighistory.FieldNodeID:
		m.ResetNodeID()
		return nil
	case nodeconfighistory.FieldConfig:
		m.ResetConfig()
		return nil
	case nodeconfighistory.FieldVersion:
		m.ResetVersion()
		return nil
	case nodeconfighistory.FieldRecordedAt:
		m.ResetRecordedAt()
		return nil
	case nodeconfighistory.FieldUpdatedBy:
		m.ResetUpdatedBy()
		return nil
	}
	return fmt.Errorf("unknown NodeConfigHistory field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NodeConfigHistoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NodeConfigHistoryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NodeConfigHistoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NodeConfigHistoryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NodeConfigHistoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NodeConfigHistoryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NodeConfigHistoryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown NodeConfigHistory unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NodeConfigHistoryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown NodeConfigHistory edge %s", name)
}

// OrgAdminTokenMutation represents an operation that mutates the OrgAdminToken nodes in the graph.
type OrgAdminTokenMutation struct {
	config
	op            Op
	typ           string
	id            *string
	org_id        *string
	token_hash    *string
	created_at    *time.Time
	last_used_at  *time.Time
	revoked_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*OrgAdminToken, error)
	predicates    []predicate.OrgAdminToken
}

var _ ent.Mutation = (*OrgAdminTokenMutation)(nil)

// orgadmintokenOption allows management of the mutation configuration using functional options.
type orgadmintokenOption func(*OrgAdminTokenMutation)

// newOrgAdminTokenMutation creates new mutation for the OrgAdminToken entity.
func newOrgAdminTokenMutation(c config, op Op, opts ...orgadmintokenOption) *OrgAdminTokenMutation {
	m := &OrgAdminTokenMutation{
		config:        c,
		op:            op,
		typ:           TypeOrgAdminToken,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOrgAdminTokenID sets the ID field of the mutation.
func withOrgAdminTokenID(id string) orgadmintokenOption {
	return func(m *OrgAdminTokenMutation) {
		var (
			err   error
			once  sync.Once
			value *OrgAdminToken
		)
		m.oldValue = func(ctx context.Context) (*OrgAdminToken, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OrgAdminToken.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOrgAdminToken sets the old OrgAdminToken of the mutation.
func withOrgAdminToken(node *OrgAdminToken) orgadmintokenOption {
	return func(m *OrgAdminTokenMutation) {
		m.oldValue = func(context.Context) (*OrgAdminToken, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OrgAdminTokenMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OrgAdminTokenMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of OrgAdminToken entities.
func (m *OrgAdminTokenMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OrgAdminTokenMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OrgAdminTokenMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OrgAdminToken.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOrgID sets the "org_id" field.
func (m *OrgAdminTokenMutation) SetOrgID(s string) {
	m.org_id = &s
}

// OrgID returns the value of the "org_id" field in the mutation.
func (m *OrgAdminTokenMutation) OrgID() (r string, exists bool) {
	v := m.org_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrgID returns the old "org_id" field's value of the OrgAdminToken entity.
// If the OrgAdminToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrgAdminTokenMutation) OldOrgID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrgID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrgID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrgID: %w", err)
	}
	return oldValue.OrgID, nil
}

// ResetOrgID resets all changes to the "org_id" field.
func (m *OrgAdminTokenMutation) ResetOrgID() {
	m.org_id = nil
}

// SetTokenHash sets the "token_hash" field.
func (m *OrgAdminTokenMutation) SetTokenHash(s string) {
	m.token_hash = &s
}

// TokenHash returns the value of the "token_hash" field in the mutation.
func (m *OrgAdminTokenMutation) TokenHash() (r string, exists bool) {
	v := m.token_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldTokenHash returns the old "token_hash" field's value of the OrgAdminToken entity.
// If the OrgAdminToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrgAdminTokenMutation) OldTokenHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokenHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokenHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokenHash: %w", err)
	}
	return oldValue.TokenHash, nil
}

// ResetTokenHash resets all changes to the "token_hash" field.
func (m *OrgAdminTokenMutation) ResetTokenHash() {
	m.token_hash = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *OrgAdminTokenMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OrgAdminTokenMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the OrgAdminToken entity.
// If the OrgAdminToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrgAdminTokenMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *OrgAdminTokenMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetLastUsedAt sets the "last_used_at" field.
func (m *OrgAdminTokenMutation) SetLastUsedAt(t time.Time) {
	m.last_used_at = &t
}

// LastUsedAt returns the value of the "last_used_at" field in the mutation.
func (m *OrgAdminTokenMutation) LastUsedAt() (r time.Time, exists bool) {
	v := m.last_used_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUsedAt returns the old "last_used_at" field's value of the OrgAdminToken entity.
// If the OrgAdminToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrgAdminTokenMutation) OldLastUsedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUsedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUsedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUsedAt: %w", err)
	}
	return oldValue.LastUsedAt, nil
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (m *OrgAdminTokenMutation) ClearLastUsedAt() {
	m.last_used_at = nil
	m.clearedFields[orgadmintoken.FieldLastUsedAt] = struct{}{}
}

// LastUsedAtCleared returns if the "last_used_at" field was cleared in this mutation.
func (m *OrgAdminTokenMutation) LastUsedAtCleared() bool {
	_, ok := m.clearedFields[orgadmintoken.FieldLastUsedAt]
	return ok
}

// ResetLastUsedAt resets all changes to the "last_used_at" field.
func (m *OrgAdminTokenMutation) ResetLastUsedAt() {
	m.last_used_at = nil
	delete(m.clearedFields, orgadmintoken.FieldLastUsedAt)
}

// SetRevokedAt sets the "revoked_at" field.
func (m *OrgAdminTokenMutation) SetRevokedAt(t time.Time) {
	m.revoked_at = &t
}

// RevokedAt returns the value of the "revoked_at" field in the mutation.
func (m *OrgAdminTokenMutation) RevokedAt() (r time.Time, exists bool) {
	v := m.revoked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRevokedAt returns the old "revoked_at" field's value of the OrgAdminToken entity.
// If the OrgAdminToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrgAdminTokenMutation) OldRevokedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRevokedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRevokedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRevokedAt: %w", err)
	}
	return oldValue.RevokedAt, nil
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (m *OrgAdminTokenMutation) ClearRevokedAt() {
	m.revoked_at = nil
	m.clearedFields[orgadmintoken.FieldRevokedAt] = struct{}{}
}

// RevokedAtCleared returns if the "revoked_at" field was cleared in this mutation.
func (m *OrgAdminTokenMutation) RevokedAtCleared() bool {
	_, ok := m.clearedFields[orgadmintoken.FieldRevokedAt]
	return ok
}

// ResetRevokedAt resets all changes to the "revoked_at" field.
func (m *OrgAdminTokenMutation) ResetRevokedAt() {
	m.revoked_at = nil
	delete(m.clearedFields, orgadmintoken.FieldRevokedAt)
}

// Where appends a list predicates to the OrgAdminTokenMutation builder.
func (m *OrgAdminTokenMutation) Where(ps ...predicate.OrgAdminToken) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OrgAdminTokenMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OrgAdminTokenMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OrgAdminToken, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OrgAdminTokenMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OrgAdminTokenMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OrgAdminToken).
func (m *OrgAdminTokenMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OrgAdminTokenMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.org_id != nil {
		fields = append(fields, orgadmintoken.FieldOrgID)
	}
	if m.token_hash != nil {
		fields = append(fields, orgadmintoken.FieldTokenHash)
	}
	if m.created_at != nil {
		fields = append(fields, orgadmintoken.FieldCreatedAt)
	}
	if m.last_used_at != nil {
		fields = append(fields, orgadmintoken.FieldLastUsedAt)
	}
	if m.revoked_at != nil {
		fields = append(fields, orgadmintoken.FieldRevokedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OrgAdminTokenMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case orgadmintoken.FieldOrgID:
		return m.OrgID()
	case orgadmintoken.FieldTokenHash:
		return m.TokenHash()
	case orgadmintoken.FieldCreatedAt:
		return m.CreatedAt()
	case orgadmintoken.FieldLastUsedAt:
		return m.LastUsedAt()
	case orgadmintoken.FieldRevokedAt:
		return m.RevokedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OrgAdminTokenMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case orgadmintoken.FieldOrgID:
		return m.OldOrgID(ctx)
	case orgadmintoken.FieldTokenHash:
		return m.OldTokenHash(ctx)
	case orgadmintoken.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case orgadmintoken.FieldLastUsedAt:
		return m.OldLastUsedAt(ctx)
	case orgadmintoken.FieldRevokedAt:
		return m.OldRevokedAt(ctx)
	}
	return nil, fmt.Errorf("unknown OrgAdminToken field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrgAdminTokenMutation) SetField(name string, value ent.Value) error {
	switch name {
	case orgadmintoken.FieldOrgID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrgID(v)
		return nil
	case orgadmintoken.FieldTokenHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokenHash(v)
		return nil
	case orgadmintoken.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case orgadmintoken.FieldLastUsedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUsedAt(v)
		return nil
	case orgadmintoken.FieldRevokedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRevokedAt(v)
		return nil
	}
	return fmt.Errorf("unknown OrgAdminToken field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OrgAdminTokenMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OrgAdminTokenMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrgAdminTokenMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown OrgAdminToken numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OrgAdminTokenMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(orgadmintoken.FieldLastUsedAt) {
		fields = append(fields, orgadmintoken.FieldLastUsedAt)
	}
	if m.FieldCleared(orgadmintoken.FieldRevokedAt) {
		fields = append(fields, orgadmintoken.FieldRevokedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OrgAdminTokenMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OrgAdminTokenMutation) ClearField(name string) error {
	switch name {
	case orgadmintoken.FieldLastUsedAt:
		m.ClearLastUsedAt()
		return nil
	case orgadmintoken.FieldRevokedAt:
		m.ClearRevokedAt()
		return nil
	}
	return fmt.Errorf("unknown OrgAdminToken nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OrgAdminTokenMutation) ResetField(name string) error {
	switch name {
	case orgadmintoken.FieldOrgID:
		m.ResetOrgID()
		return nil
	case orgadmintoken.FieldTokenHash:
		m.ResetTokenHash()
		return nil
	case orgadmintoken.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case orgadmintoken.FieldLastUsedAt:
		m.ResetLastUsedAt()
		return nil
	case orgadmintoken.FieldRevokedAt:
		m.ResetRevokedAt()
		return nil
	}
	return fmt.Errorf("unknown OrgAdminToken field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OrgAdminTokenMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OrgAdminTokenMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OrgAdminTokenMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OrgAdminTokenMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OrgAdminTokenMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OrgAdminTokenMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OrgAdminTokenMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown OrgAdminToken unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OrgAdminTokenMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown OrgAdminToken edge %s", name)
}

// OrgNodeMutation represents an operation that mutates the OrgNode nodes in the graph.
type OrgNodeMutation struct {
	config
	op            Op
	typ           string
	id            *string
	org_id        *string
	node_id       *string
	parent_id     *string
	kind          *orgnode.Kind
	name          *string
	depth         *int
	adddepth      *int
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*OrgNode, error)
	predicates    []predicate.OrgNode
}

var _ ent.Mutation = (*OrgNodeMutation)(nil)

// orgnodeOption allows management of the mutation configuration using functional options.
type orgnodeOption func(*OrgNodeMutation)

// newOrgNodeMutation creates new mutation for the OrgNode entity.
func newOrgNodeMutation(c config, op Op, opts ...orgnodeOption) *OrgNodeMutation {
	m := &OrgNodeMutation{
		config:        c,
		op:            op,
		typ:           TypeOrgNode,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOrgNodeID sets the ID field of the mutation.
func withOrgNodeID(id string) orgnodeOption {
	return func(m *OrgNodeMutation) {
		var (
			err   error
			once  sync.Once
			value *OrgNode
		)
		m.oldValue = func(ctx context.Context) (*OrgNode, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OrgNode.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOrgNode sets the old OrgNode of the mutation.
func withOrgNode(node *OrgNode) orgnodeOption {
	return func(m *OrgNodeMutation) {
		m.oldValue = func(context.Context) (*OrgNode, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OrgNodeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OrgNodeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of OrgNode entities.
func (m *OrgNodeMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OrgNodeMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OrgNodeMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OrgNode.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOrgID sets the "org_id" field.
func (m *OrgNodeMutation) SetOrgID(s string) {
	m.org_id = &s
}

// OrgID returns the value of the "org_id" field in the mutation.
func (m *OrgNodeMutation) OrgID() (r string, exists bool) {
	v := m.org_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrgID returns the old "org_id" field's value of the OrgNode entity.
// If the OrgNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrgNodeMutation) OldOrgID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrgID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrgID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrgID: %w", err)
	}
	return oldValue.OrgID, nil
}

// ResetOrgID resets all changes to the "org_id" field.
func (m *OrgNodeMutation) ResetOrgID() {
	m.org_id = nil
}

// SetNodeID sets the "node_id" field.
func (m *OrgNodeMutation) SetNodeID(s string) {
	m.node_id = &s
}

// NodeID returns the value of the "node_id" field in the mutation.
func (m *OrgNodeMutation) NodeID() (r string, exists bool) {
	v := m.node_id
	if v == nil {
		return
	}
	return *v, true
}

// OldNodeID returns the old "node_id" field's value of the OrgNode entity.
// If the OrgNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrgNodeMutation) OldNodeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNodeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNodeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNodeID: %w", err)
	}
	return oldValue.NodeID, nil
}

// ResetNodeID resets all changes to the "node_id" field.
func (m *OrgNodeMutation) ResetNodeID() {
	m.node_id = nil
}

// SetParentID sets the "parent_id" field.
func (m *OrgNodeMutation) SetParentID(s string) {
	m.parent_id = &s
}

// ParentID returns the value of the "parent_id" field in the mutation.
func (m *OrgNodeMutation) ParentID() (r string, exists bool) {
	v := m.parent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentID returns the old "parent_id" field's value of the OrgNode entity.
// If the OrgNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrgNodeMutation) OldParentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentID: %w", err)
	}
	return oldValue.ParentID, nil
}

// ClearParentID clears the value of the "parent_id" field.
func (m *OrgNodeMutation) ClearParentID() {
	m.parent_id = nil
	m.clearedFields[orgnode.FieldParentID] = struct{}{}
}

// ParentIDCleared returns if the "parent_id" field was cleared in this mutation.
func (m *OrgNodeMutation) ParentIDCleared() bool {
	_, ok := m.clearedFields[orgnode.FieldParentID]
	return ok
}

// ResetParentID resets all changes to the "parent_id" field.
func (m *OrgNodeMutation) ResetParentID() {
	m.parent_id = nil
	delete(m.clearedFields, orgnode.FieldParentID)
}

// SetKind sets the "kind" field.
func (m *OrgNodeMutation) SetKind(o orgnode.Kind) {
	m.kind = &o
}

// Kind returns the value of the "kind" field in the mutation.
func (m *OrgNodeMutation) Kind() (r orgnode.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the OrgNode entity.
// If the OrgNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrgNodeMutation) OldKind(ctx context.Context) (v orgnode.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *OrgNodeMutation) ResetKind() {
	m.kind = nil
}

// SetName sets the "name" field.
func (m *OrgNodeMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *OrgNodeMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the OrgNode entity.
// If the OrgNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrgNodeMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *OrgNodeMutation) ResetName() {
	m.name = nil
}

// SetDepth sets the "depth" field.
func (m *OrgNodeMutation) SetDepth(i int) {
	m.depth = &i
	m.adddepth = nil
}

// Depth returns the value of the "depth" field in the mutation.
func (m *OrgNodeMutation) Depth() (r int, exists bool) {
	v := m.depth
	if v == nil {
		return
	}
	return *v, true
}

// OldDepth returns the old "depth" field's value of the OrgNode entity.
// If the OrgNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrgNodeMutation) OldDepth(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDepth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDepth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDepth: %w", err)
	}
	return oldValue.Depth, nil
}

// AddDepth adds i to the "depth" field.
func (m *OrgNodeMutation) AddDepth(i int) {
	if m.adddepth != nil {
		*m.adddepth += i
	} else {
		m.adddepth = &i
	}
}

// AddedDepth returns the value that was added to the "depth" field in this mutation.
func (m *OrgNodeMutation) AddedDepth() (r int, exists bool) {
	v := m.adddepth
	if v == nil {
		return
	}
	return *v, true
}

// ResetDepth resets all changes to the "depth" field.
func (m *OrgNodeMutation) ResetDepth() {
	m.depth = nil
	m.adddepth = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *OrgNodeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OrgNodeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the OrgNode entity.
// If the OrgNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrgNodeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *OrgNodeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the OrgNodeMutation builder.
func (m *OrgNodeMutation) Where(ps ...predicate.OrgNode) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OrgNodeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OrgNodeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OrgNode, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OrgNodeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OrgNodeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OrgNode).
func (m *OrgNodeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OrgNodeMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.org_id != nil {
		fields = append(fields, orgnode.FieldOrgID)
	}
	if m.node_id != nil {
		fields = append(fields, orgnode.FieldNodeID)
	}
	if m.parent_id != nil {
		fields = append(fields, orgnode.FieldParentID)
	}
	if m.kind != nil {
		fields = append(fields, orgnode.FieldKind)
	}
	if m.name != nil {
		fields = append(fields, orgnode.FieldName)
	}
	if m.depth != nil {
		fields = append(fields, orgnode.FieldDepth)
	}
	if m.created_at != nil {
		fields = append(fields, orgnode.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OrgNodeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case orgnode.FieldOrgID:
		return m.OrgID()
	case orgnode.FieldNodeID:
		return m.NodeID()
	case orgnode.FieldParentID:
		return m.ParentID()
	case orgnode.FieldKind:
		return m.Kind()
	case orgnode.FieldName:
		return m.Name()
	case orgnode.FieldDepth:
		return m.Depth()
	case orgnode.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OrgNodeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case orgnode.FieldOrgID:
		return m.OldOrgID(ctx)
	case orgnode.FieldNodeID:
		return m.OldNodeID(ctx)
	case orgnode.FieldParentID:
		return m.OldParentID(ctx)
	case orgnode.FieldKind:
		return m.OldKind(ctx)
	case orgnode.FieldName:
		return m.OldName(ctx)
	case orgnode.FieldDepth:
		return m.OldDepth(ctx)
	case orgnode.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown OrgNode field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrgNodeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case orgnode.FieldOrgID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrgID(v)
		return nil
	case orgnode.FieldNodeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNodeID(v)
		return nil
	case orgnode.FieldParentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentID(v)
		return nil
	case orgnode.FieldKind:
		v, ok := value.(orgnode.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case orgnode.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case orgnode.FieldDepth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDepth(v)
		return nil
	case orgnode.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown OrgNode field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OrgNodeMutation) AddedFields() []string {
	var fields []string
	if m.adddepth != nil {
		fields = append(fields, orgnode.FieldDepth)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OrgNodeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case orgnode.FieldDepth:
		return m.AddedDepth()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrgNodeMutation) AddField(name string, value ent.Value) error {
	switch name {
	case orgnode.FieldDepth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDepth(v)
		return nil
	}
	return fmt.Errorf("unknown OrgNode numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OrgNodeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(orgnode.FieldParentID) {
		fields = append(fields, orgnode.FieldParentID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OrgNodeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OrgNodeMutation) ClearField(name string) error {
	switch name {
	case orgnode.FieldParentID:
		m.ClearParentID()
		return nil
	}
	return fmt.Errorf("unknown OrgNode nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OrgNodeMutation) ResetField(name string) error {
	switch name {
	case orgnode.FieldOrgID:
		m.ResetOrgID()
		return nil
	case orgnode.FieldNodeID:
		m.ResetNodeID()
		return nil
	case orgnode.FieldParentID:
		m.ResetParentID()
		return nil
	case orgnode.FieldKind:
		m.ResetKind()
		return nil
	case orgnode.FieldName:
		m.ResetName()
		return nil
	case orgnode.FieldDepth:
		m.ResetDepth()
		return nil
	case orgnode.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown OrgNode field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OrgNodeMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OrgNodeMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OrgNodeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OrgNodeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OrgNodeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OrgNodeMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OrgNodeMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown OrgNode unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OrgNodeMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown OrgNode edge %s", name)
}

// ProvisioningRunMutation represents an operation that mutates the ProvisioningRun nodes in the graph.
type ProvisioningRunMutation struct {
	config
	op              Op
	typ             string
	id              *string
	org_id          *string
	team_node_id    *string
	idempotency_key *string
	status          *provisioningrun.Status
	steps           *[]map[string]interface{}
	appendsteps     []map[string]interface{}
	error_message   *string
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*ProvisioningRun, error)
	predicates      []predicate.ProvisioningRun
}

var _ ent.Mutation = (*ProvisioningRunMutation)(nil)

// provisioningrunOption allows management of the mutation configuration using functional options.
type provisioningrunOption func(*ProvisioningRunMutation)

// newProvisioningRunMutation creates new mutation for the ProvisioningRun entity.
func newProvisioningRunMutation(c config, op Op, opts ...provisioningrunOption) *ProvisioningRunMutation {
	m := &ProvisioningRunMutation{
		config:        c,
		op:            op,
		typ:           TypeProvisioningRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProvisioningRunID sets the ID field of the mutation.
func withProvisioningRunID(id string) provisioningrunOption {
	return func(m *ProvisioningRunMutation) {
		var (
			err   error
			once  sync.Once
			value *ProvisioningRun
		)
		m.oldValue = func(ctx context.Context) (*ProvisioningRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProvisioningRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProvisioningRun sets the old ProvisioningRun of the mutation.
func withProvisioningRun(node *ProvisioningRun) provisioningrunOption {
	return func(m *ProvisioningRunMutation) {
		m.oldValue = func(context.Context) (*ProvisioningRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProvisioningRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProvisioningRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ProvisioningRun entities.
func (m *ProvisioningRunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProvisioningRunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProvisioningRunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProvisioningRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOrgID sets the "org_id" field.
func (m *ProvisioningRunMutation) SetOrgID(s string) {
	m.org_id = &s
}

// OrgID returns the value of the "org_id" field in the mutation.
func (m *ProvisioningRunMutation) OrgID() (r string, exists bool) {
	v := m.org_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrgID returns the old "org_id" field's value of the ProvisioningRun entity.
// If the ProvisioningRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProvisioningRunMutation) OldOrgID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrgID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrgID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrgID: %w", err)
	}
	return oldValue.OrgID, nil
}

// ResetOrgID resets all changes to the "org_id" field.
func (m *ProvisioningRunMutation) ResetOrgID() {
	m.org_id = nil
}

// SetTeamNodeID sets the "team_node_id" field.
func (m *ProvisioningRunMutation) SetTeamNodeID(s string) {
	m.team_node_id = &s
}

// TeamNodeID returns the value of the "team_node_id" field in the mutation.
func (m *ProvisioningRunMutation) TeamNodeID() (r string, exists bool) {
	v := m.team_node_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTeamNodeID returns the old "team_node_id" field's value of the ProvisioningRun entity.
// If the ProvisioningRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProvisioningRunMutation) OldTeamNodeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTeamNodeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTeamNodeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTeamNodeID: %w", err)
	}
	return oldValue.TeamNodeID, nil
}

// ResetTeamNodeID resets all changes to the "team_node_id" field.
func (m *ProvisioningRunMutation) ResetTeamNodeID() {
	m.team_node_id = nil
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (m *ProvisioningRunMutation) SetIdempotencyKey(s string) {
	m.idempotency_key = &s
}

// IdempotencyKey returns the value of the "idempotency_key" field in the mutation.
func (m *ProvisioningRunMutation) IdempotencyKey() (r string, exists bool) {
	v := m.idempotency_key
	if v == nil {
		return
	}
	return *v, true
}

// OldIdempotencyKey returns the old "idempotency_key" field's value of the ProvisioningRun entity.
// If the ProvisioningRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProvisioningRunMutation) OldIdempotencyKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIdempotencyKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIdempotencyKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIdempotencyKey: %w", err)
	}
	return oldValue.IdempotencyKey, nil
}

// ClearIdempotencyKey clears the value of the "idempotency_key" field.
func (m *ProvisioningRunMutation) ClearIdempotencyKey() {
	m.idempotency_key = nil
	m.clearedFields[provisioningrun.FieldIdempotencyKey] = struct{}{}
}

// IdempotencyKeyCleared returns if the "idempotency_key" field was cleared in this mutation.
func (m *ProvisioningRunMutation) IdempotencyKeyCleared() bool {
	_, ok := m.clearedFields[provisioningrun.FieldIdempotencyKey]
	return ok
}

// ResetIdempotencyKey resets all changes to the "idempotency_key" field.
func (m *ProvisioningRunMutation) ResetIdempotencyKey() {
	m.idempotency_key = nil
	delete(m.clearedFields, provisioningrun.FieldIdempotencyKey)
}

// SetStatus sets the "status" field.
func (m *ProvisioningRunMutation) SetStatus(pr provisioningrun.Status) {
	m.status = &pr
}

// Status returns the value of the "status" field in the mutation.
func (m *ProvisioningRunMutation) Status() (r provisioningrun.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ProvisioningRun entity.
// If the ProvisioningRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProvisioningRunMutation) OldStatus(ctx context.Context) (v provisioningrun.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ProvisioningRunMutation) ResetStatus() {
	m.status = nil
}

// SetSteps sets the "steps" field.
func (m *ProvisioningRunMutation) SetSteps(value []map[string]interface{}) {
	m.steps = &value
	m.appendsteps = nil
}

// Steps returns the value of the "steps" field in the mutation.
func (m *ProvisioningRunMutation) Steps() (r []map[string]interface{}, exists bool) {
	v := m.steps
	if v == nil {
		return
	}
	return *v, true
}

// OldSteps returns the old "steps" field's value of the ProvisioningRun entity.
// If the ProvisioningRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProvisioningRunMutation) OldSteps(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSteps is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSteps requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSteps: %w", err)
	}
	return oldValue.Steps, nil
}

// AppendSteps adds value to the "steps" field.
func (m *ProvisioningRunMutation) AppendSteps(value []map[string]interface{}) {
	m.appendsteps = append(m.appendsteps, value...)
}

// AppendedSteps returns the list of values that were appended to the "steps" field in this mutation.
func (m *ProvisioningRunMutation) AppendedSteps() ([]map[string]interface{}, bool) {
	if len(m.appendsteps) == 0 {
		return nil, false
	}
	return m.appendsteps, true
}

// ClearSteps clears the value of the "steps" field.
func (m *ProvisioningRunMutation) ClearSteps() {
	m.steps = nil
	m.appendsteps = nil
	m.clearedFields[provisioningrun.FieldSteps] = struct{}{}
}

// StepsCleared returns if the "steps" field was cleared in this mutation.
func (m *ProvisioningRunMutation) StepsCleared() bool {
	_, ok := m.clearedFields[provisioningrun.FieldSteps]
	return ok
}

// ResetSteps resets all changes to the "steps" field.
func (m *ProvisioningRunMutation) ResetSteps() {
	m.steps = nil
	m.appendsteps = nil
	delete(m.clearedFields, provisioningrun.FieldSteps)
}

// SetErrorMessage sets the "error_message" field.
func (m *ProvisioningRunMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ProvisioningRunMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ProvisioningRun entity.
// If the ProvisioningRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProvisioningRunMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ProvisioningRunMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[provisioningrun.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ProvisioningRunMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[provisioningrun.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ProvisioningRunMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, provisioningrun.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProvisioningRunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProvisioningRunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ProvisioningRun entity.
// If the ProvisioningRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProvisioningRunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProvisioningRunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProvisioningRunMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProvisioningRunMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ProvisioningRun entity.
// If the ProvisioningRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProvisioningRunMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProvisioningRunMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ProvisioningRunMutation builder.
func (m *ProvisioningRunMutation) Where(ps ...predicate.ProvisioningRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProvisioningRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProvisioningRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProvisioningRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProvisioningRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProvisioningRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProvisioningRun).
func (m *ProvisioningRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProvisioningRunMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.org_id != nil {
		fields = append(fields, provisioningrun.FieldOrgID)
	}
	if m.team_node_id != nil {
		fields = append(fields, provisioningrun.FieldTeamNodeID)
	}
	if m.idempotency_key != nil {
		fields = append(fields, provisioningrun.FieldIdempotencyKey)
	}
	if m.status != nil {
		fields = append(fields, provisioningrun.FieldStatus)
	}
	if m.steps != nil {
		fields = append(fields, provisioningrun.FieldSteps)
	}
	if m.error_message != nil {
		fields = append(fields, provisioningrun.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, provisioningrun.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, provisioningrun.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProvisioningRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case provisioningrun.FieldOrgID:
		return m.OrgID()
	case provisioningrun.FieldTeamNodeID:
		return m.TeamNodeID()
	case provisioningrun.FieldIdempotencyKey:
		return m.IdempotencyKey()
	case provisioningrun.FieldStatus:
		return m.Status()
	case provisioningrun.FieldSteps:
		return m.Steps()
	case provisioningrun.FieldErrorMessage:
		return m.ErrorMessage()
	case provisioningrun.FieldCreatedAt:
		return m.CreatedAt()
	case provisioningrun.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProvisioningRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case provisioningrun.FieldOrgID:
		return m.OldOrgID(ctx)
	case provisioningrun.FieldTeamNodeID:
		return m.OldTeamNodeID(ctx)
	case provisioningrun.FieldIdempotencyKey:
		return m.OldIdempotencyKey(ctx)
	case provisioningrun.FieldStatus:
		return m.OldStatus(ctx)
	case provisioningrun.FieldSteps:
		return m.OldSteps(ctx)
	case provisioningrun.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case provisioningrun.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case provisioningrun.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProvisioningRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProvisioningRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case provisioningrun.FieldOrgID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrgID(v)
		return nil
	case provisioningrun.FieldTeamNodeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTeamNodeID(v)
		return nil
	case provisioningrun.FieldIdempotencyKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIdempotencyKey(v)
		return nil
	case provisioningrun.FieldStatus:
		v, ok := value.(provisioningrun.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case provisioningrun.FieldSteps:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSteps(v)
		return nil
	case provisioningrun.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case provisioningrun.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case provisioningrun.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProvisioningRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProvisioningRunMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProvisioningRunMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProvisioningRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ProvisioningRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProvisioningRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(provisioningrun.FieldIdempotencyKey) {
		fields = append(fields, provisioningrun.FieldIdempotencyKey)
	}
	if m.FieldCleared(provisioningrun.FieldSteps) {
		fields = append(fields, provisioningrun.FieldSteps)
	}
	if m.FieldCleared(provisioningrun.FieldErrorMessage) {
		fields = append(fields, provisioningrun.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProvisioningRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProvisioningRunMutation) ClearField(name string) error {
	switch name {
	case provisioningrun.FieldIdempotencyKey:
		m.ClearIdempotencyKey()
		return nil
	case provisioningrun.FieldSteps:
		m.ClearSteps()
		return nil
	case provisioningrun.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown ProvisioningRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProvisioningRunMutation) ResetField(name string) error {
	switch name {
	case provisioningrun.FieldOrgID:
		m.ResetOrgID()
		return nil
	case provisioningrun.FieldTeamNodeID:
		m.ResetTeamNodeID()
		return nil
	case provisioningrun.FieldIdempotencyKey:
		m.ResetIdempotencyKey()
		return nil
	case provisioningrun.FieldStatus:
		m.ResetStatus()
		return nil
	case provisioningrun.FieldSteps:
		m.ResetSteps()
		return nil
	case provisioningrun.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case provisioningrun.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case provisioningrun.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ProvisioningRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProvisioningRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProvisioningRunMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProvisioningRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProvisioningRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProvisioningRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProvisioningRunMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProvisioningRunMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ProvisioningRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProvisioningRunMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ProvisioningRun edge %s", name)
}

// RoutingKeyMutation represents an operation that mutates the RoutingKey nodes in the graph.
type RoutingKeyMutation struct {
	config
	op            Op
	typ           string
	id            *string
	source        *routingkey.Source
	key           *string
	org_id        *string
	team_node_id  *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*RoutingKey, error)
	predicates    []predicate.RoutingKey
}

var _ ent.Mutation = (*RoutingKeyMutation)(nil)

// routingkeyOption allows management of the mutation configuration using functional options.
type routingkeyOption func(*RoutingKeyMutation)

// newRoutingKeyMutation creates new mutation for the RoutingKey entity.
func newRoutingKeyMutation(c config, op Op, opts ...routingkeyOption) *RoutingKeyMutation {
	m := &RoutingKeyMutation{
		config:        c,
		op:            op,
		typ:           TypeRoutingKey,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRoutingKeyID sets the ID field of the mutation.
func withRoutingKeyID(id string) routingkeyOption {
	return func(m *RoutingKeyMutation) {
		var (
			err   error
			once  sync.Once
			value *RoutingKey
		)
		m.oldValue = func(ctx context.Context) (*RoutingKey, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RoutingKey.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRoutingKey sets the old RoutingKey of the mutation.
func withRoutingKey(node *RoutingKey) routingkeyOption {
	return func(m *RoutingKeyMutation) {
		m.oldValue = func(context.Context) (*RoutingKey, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RoutingKeyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RoutingKeyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RoutingKey entities.
func (m *RoutingKeyMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RoutingKeyMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RoutingKeyMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RoutingKey.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSource sets the "source" field.
func (m *RoutingKeyMutation) SetSource(r routingkey.Source) {
	m.source = &r
}

// Source returns the value of the "source" field in the mutation.
func (m *RoutingKeyMutation) Source() (r routingkey.Source, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the RoutingKey entity.
// If the RoutingKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutingKeyMutation) OldSource(ctx context.Context) (v routingkey.Source, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *RoutingKeyMutation) ResetSource() {
	m.source = nil
}

// SetKey sets the "key" field.
func (m *RoutingKeyMutation) SetKey(s string) {
	m.key = &s
}

// Key returns the value of the "key" field in the mutation.
func (m *RoutingKeyMutation) Key() (r string, exists bool) {
	v := m.key
	if v == nil {
		return
	}
	return *v, true
}

// OldKey returns the old "key" field's value of the RoutingKey entity.
// If the RoutingKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutingKeyMutation) OldKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKey: %w", err)
	}
	return oldValue.Key, nil
}

// ResetKey resets all changes to the "key" field.
func (m *RoutingKeyMutation) ResetKey() {
	m.key = nil
}

// SetOrgID sets the "org_id" field.
func (m *RoutingKeyMutation) SetOrgID(s string) {
	m.org_id = &s
}

// OrgID returns the value of the "org_id" field in the mutation.
func (m *RoutingKeyMutation) OrgID() (r string, exists bool) {
	v := m.org_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrgID returns the old "org_id" field's value of the RoutingKey entity.
// If the RoutingKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutingKeyMutation) OldOrgID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrgID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrgID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrgID: %w", err)
	}
	return oldValue.OrgID, nil
}

// ResetOrgID resets all changes to the "org_id" field.
func (m *RoutingKeyMutation) ResetOrgID() {
	m.org_id = nil
}

// SetTeamNodeID sets the "team_node_id" field.
func (m *RoutingKeyMutation) SetTeamNodeID(s string) {
	m.team_node_id = &s
}

// TeamNodeID returns the value of the "team_node_id" field in the mutation.
func (m *RoutingKeyMutation) TeamNodeID() (r string, exists bool) {
	v := m.team_node_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTeamNodeID returns the old "team_node_id" field's value of the RoutingKey entity.
// If the RoutingKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutingKeyMutation) OldTeamNodeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTeamNodeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTeamNodeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTeamNodeID: %w", err)
	}
	return oldValue.TeamNodeID, nil
}

// ResetTeamNodeID resets all changes to the "team_node_id" field.
func (m *RoutingKeyMutation) ResetTeamNodeID() {
	m.team_node_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *RoutingKeyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RoutingKeyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RoutingKey entity.
// If the RoutingKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutingKeyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RoutingKeyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the RoutingKeyMutation builder.
func (m *RoutingKeyMutation) Where(ps ...predicate.RoutingKey) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RoutingKeyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RoutingKeyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RoutingKey, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RoutingKeyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RoutingKeyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RoutingKey).
func (m *RoutingKeyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RoutingKeyMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.source != nil {
		fields = append(fields, routingkey.FieldSource)
	}
	if m.key != nil {
		fields = append(fields, routingkey.FieldKey)
	}
	if m.org_id != nil {
		fields = append(fields, routingkey.FieldOrgID)
	}
	if m.team_node_id != nil {
		fields = append(fields, routingkey.FieldTeamNodeID)
	}
	if m.created_at != nil {
		fields = append(fields, routingkey.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RoutingKeyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case routingkey.FieldSource:
		return m.Source()
	case routingkey.FieldKey:
		return m.Key()
	case routingkey.FieldOrgID:
		return m.OrgID()
	case routingkey.FieldTeamNodeID:
		return m.TeamNodeID()
	case routingkey.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RoutingKeyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case routingkey.FieldSource:
		return m.OldSource(ctx)
	case routingkey.FieldKey:
		return m.OldKey(ctx)
	case routingkey.FieldOrgID:
		return m.OldOrgID(ctx)
	case routingkey.FieldTeamNodeID:
		return m.OldTeamNodeID(ctx)
	case routingkey.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RoutingKey field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RoutingKeyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case routingkey.FieldSource:
		v, ok := value.(routingkey.Source)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case routingkey.FieldKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKey(v)
		return nil
	case routingkey.FieldOrgID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrgID(v)
		return nil
	case routingkey.FieldTeamNodeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTeamNodeID(v)
		return nil
	case routingkey.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RoutingKey field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RoutingKeyMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RoutingKeyMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RoutingKeyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown RoutingKey numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RoutingKeyMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RoutingKeyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RoutingKeyMutation) ClearField(name string) error {
	return fmt.Errorf("unknown RoutingKey nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RoutingKeyMutation) ResetField(name string) error {
	switch name {
	case routingkey.FieldSource:
		m.ResetSource()
		return nil
	case routingkey.FieldKey:
		m.ResetKey()
		return nil
	case routingkey.FieldOrgID:
		m.ResetOrgID()
		return nil
	case routingkey.FieldTeamNodeID:
		m.ResetTeamNodeID()
		return nil
	case routingkey.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown RoutingKey field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RoutingKeyMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RoutingKeyMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RoutingKeyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RoutingKeyMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RoutingKeyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RoutingKeyMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RoutingKeyMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RoutingKey unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RoutingKeyMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RoutingKey edge %s", name)
}

// ScheduledJobMutation represents an operation that mutates the ScheduledJob nodes in the graph.
type ScheduledJobMutation struct {
	config
	op              Op
	typ             string
	id              *string
	org_id          *string
	team_node_id    *string
	job_type        *string
	cron_expr       *string
	_config         *map[string]interface{}
	next_fire_at    *time.Time
	last_status     *string
	lock_owner      *string
	lock_expires_at *time.Time
	enabled         *bool
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*ScheduledJob, error)
	predicates      []predicate.ScheduledJob
}

var _ ent.Mutation = (*ScheduledJobMutation)(nil)

// scheduledjobOption allows management of the mutation configuration using functional options.
type scheduledjobOption func(*ScheduledJobMutation)

// newScheduledJobMutation creates new mutation for the ScheduledJob entity.
func newScheduledJobMutation(c config, op Op, opts ...scheduledjobOption) *ScheduledJobMutation {
	m := &ScheduledJobMutation{
		config:        c,
		op:            op,
		typ:           TypeScheduledJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScheduledJobID sets the ID field of the mutation.
func withScheduledJobID(id string) scheduledjobOption {
	return func(m *ScheduledJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ScheduledJob
		)
		m.oldValue = func(ctx context.Context) (*ScheduledJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ScheduledJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScheduledJob sets the old ScheduledJob of the mutation.
func withScheduledJob(node *ScheduledJob) scheduledjobOption {
	return func(m *ScheduledJobMutation) {
		m.oldValue = func(context.Context) (*ScheduledJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScheduledJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScheduledJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ScheduledJob entities.
func (m *ScheduledJobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScheduledJobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScheduledJobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ScheduledJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOrgID sets the "org_id" field.
func (m *ScheduledJobMutation) SetOrgID(s string) {
	m.org_id = &s
}

// OrgID returns the value of the "org_id" field in the mutation.
func (m *ScheduledJobMutation) OrgID() (r string, exists bool) {
	v := m.org_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrgID returns the old "org_id" field's value of the ScheduledJob entity.
// If the ScheduledJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledJobMutation) OldOrgID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrgID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrgID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrgID: %w", err)
	}
	return oldValue.OrgID, nil
}

// ResetOrgID resets all changes to the "org_id" field.
func (m *ScheduledJobMutation) ResetOrgID() {
	m.org_id = nil
}

// SetTeamNodeID sets the "team_node_id" field.
func (m *ScheduledJobMutation) SetTeamNodeID(s string) {
	m.team_node_id = &s
}

// TeamNodeID returns the value of the "team_node_id" field in the mutation.
func (m *ScheduledJobMutation) TeamNodeID() (r string, exists bool) {
	v := m.team_node_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTeamNodeID returns the old "team_node_id" field's value of the ScheduledJob entity.
// If the ScheduledJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledJobMutation) OldTeamNodeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTeamNodeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTeamNodeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTeamNodeID: %w", err)
	}
	return oldValue.TeamNodeID, nil
}

// ResetTeamNodeID resets all changes to the "team_node_id" field.
func (m *ScheduledJobMutation) ResetTeamNodeID() {
	m.team_node_id = nil
}

// SetJobType sets the "job_type" field.
func (m *ScheduledJobMutation) SetJobType(s string) {
	m.job_type = &s
}

// JobType returns the value of the "job_type" field in the mutation.
func (m *ScheduledJobMutation) JobType() (r string, exists bool) {
	v := m.job_type
	if v == nil {
		return
	}
	return *v, true
}

// OldJobType returns the old "job_type" field's value of the ScheduledJob entity.
// If the ScheduledJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledJobMutation) OldJobType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobType: %w", err)
	}
	return oldValue.JobType, nil
}

// ResetJobType resets all changes to the "job_type" field.
func (m *ScheduledJobMutation) ResetJobType() {
	m.job_type = nil
}

// SetCronExpr sets the "cron_expr" field.
func (m *ScheduledJobMutation) SetCronExpr(s string) {
	m.cron_expr = &s
}

// CronExpr returns the value of the "cron_expr" field in the mutation.
func (m *ScheduledJobMutation) CronExpr() (r string, exists bool) {
	v := m.cron_expr
	if v == nil {
		return
	}
	return *v, true
}

// OldCronExpr returns the old "cron_expr" field's value of the ScheduledJob entity.
// If the ScheduledJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledJobMutation) OldCronExpr(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCronExpr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCronExpr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCronExpr: %w", err)
	}
	return oldValue.CronExpr, nil
}

// ResetCronExpr resets all changes to the "cron_expr" field.
func (m *ScheduledJobMutation) ResetCronExpr() {
	m.cron_expr = nil
}

// SetConfig sets the "config" field.
func (m *ScheduledJobMutation) SetConfig(value map[string]interface{}) {
	m._config = &value
}

// Config returns the value of the "config" field in the mutation.
func (m *ScheduledJobMutation) Config() (r map[string]interface{}, exists bool) {
	v := m._config
	if v == nil {
		return
	}
	return *v, true
}

// OldConfig returns the old "config" field's value of the ScheduledJob entity.
// If the ScheduledJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledJobMutation) OldConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfig: %w", err)
	}
	return oldValue.Config, nil
}

// ClearConfig clears the value of the "config" field.
func (m *ScheduledJobMutation) ClearConfig() {
	m._config = nil
	m.clearedFields[scheduledjob.FieldConfig] = struct{}{}
}

// ConfigCleared returns if the "config" field was cleared in this mutation.
func (m *ScheduledJobMutation) ConfigCleared() bool {
	_, ok := m.clearedFields[scheduledjob.FieldConfig]
	return ok
}

// ResetConfig resets all changes to the "config" field.
func (m *ScheduledJobMutation) ResetConfig() {
	m._config = nil
	delete(m.clearedFields, scheduledjob.FieldConfig)
}

// SetNextFireAt sets the "next_fire_at" field.
func (m *ScheduledJobMutation) SetNextFireAt(t time.Time) {
	m.next_fire_at = &t
}

// NextFireAt returns the value of the "next_fire_at" field in the mutation.
func (m *ScheduledJobMutation) NextFireAt() (r time.Time, exists bool) {
	v := m.next_fire_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextFireAt returns the old "next_fire_at" field's value of the ScheduledJob entity.
// If the ScheduledJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledJobMutation) OldNextFireAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextFireAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextFireAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextFireAt: %w", err)
	}
	return oldValue.NextFireAt, nil
}

// ResetNextFireAt resets all changes to the "next_fire_at" field.
func (m *ScheduledJobMutation) ResetNextFireAt() {
	m.next_fire_at = nil
}

// SetLastStatus sets the "last_status" field.
func (m *ScheduledJobMutation) SetLastStatus(s string) {
	m.last_status = &s
}

// LastStatus returns the value of the "last_status" field in the mutation.
func (m *ScheduledJobMutation) LastStatus() (r string, exists bool) {
	v := m.last_status
	if v == nil {
		return
	}
	return *v, true
}

// OldLastStatus returns the old "last_status" field's value of the ScheduledJob entity.
// If the ScheduledJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledJobMutation) OldLastStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastStatus: %w", err)
	}
	return oldValue.LastStatus, nil
}

// ClearLastStatus clears the value of the "last_status" field.
func (m *ScheduledJobMutation) ClearLastStatus() {
	m.last_status = nil
	m.clearedFields[scheduledjob.FieldLastStatus] = struct{}{}
}

// LastStatusCleared returns if the "last_status" field was cleared in this mutation.
func (m *ScheduledJobMutation) LastStatusCleared() bool {
	_, ok := m.clearedFields[scheduledjob.FieldLastStatus]
	return ok
}

// ResetLastStatus resets all changes to the "last_status" field.
func (m *ScheduledJobMutation) ResetLastStatus() {
	m.last_status = nil
	delete(m.clearedFields, scheduledjob.FieldLastStatus)
}

// SetLockOwner sets the "lock_owner" field.
func (m *ScheduledJobMutation) SetLockOwner(s string) {
	m.lock_owner = &s
}

// LockOwner returns the value of the "lock_owner" field in the mutation.
func (m *ScheduledJobMutation) LockOwner() (r string, exists bool) {
	v := m.lock_owner
	if v == nil {
		return
	}
	return *v, true
}

// OldLockOwner returns the old "lock_owner" field's value of the ScheduledJob entity.
// If the ScheduledJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledJobMutation) OldLockOwner(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLockOwner is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLockOwner requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLockOwner: %w", err)
	}
	return oldValue.LockOwner, nil
}

// ClearLockOwner clears the value of the "lock_owner" field.
func (m *ScheduledJobMutation) ClearLockOwner() {
	m.lock_owner = nil
	m.clearedFields[scheduledjob.FieldLockOwner] = struct{}{}
}

// LockOwnerCleared returns if the "lock_owner" field was cleared in this mutation.
func (m *ScheduledJobMutation) LockOwnerCleared() bool {
	_, ok := m.clearedFields[scheduledjob.FieldLockOwner]
	return ok
}

// ResetLockOwner resets all changes to the "lock_owner" field.
func (m *ScheduledJobMutation) ResetLockOwner() {
	m.lock_owner = nil
	delete(m.clearedFields, scheduledjob.FieldLockOwner)
}

// SetLockExpiresAt sets the "lock_expires_at" field.
func (m *ScheduledJobMutation) SetLockExpiresAt(t time.Time) {
	m.lock_expires_at = &t
}

// LockExpiresAt returns the value of the "lock_expires_at" field in the mutation.
func (m *ScheduledJobMutation) LockExpiresAt() (r time.Time, exists bool) {
	v := m.lock_expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLockExpiresAt returns the old "lock_expires_at" field's value of the ScheduledJob entity.
// If the ScheduledJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledJobMutation) OldLockExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLockExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLockExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLockExpiresAt: %w", err)
	}
	return oldValue.LockExpiresAt, nil
}

// ClearLockExpiresAt clears the value of the "lock_expires_at" field.
func (m *ScheduledJobMutation) ClearLockExpiresAt() {
	m.lock_expires_at = nil
	m.clearedFields[scheduledjob.FieldLockExpiresAt] = struct{}{}
}

// LockExpiresAtCleared returns if the "lock_expires_at" field was cleared in this mutation.
func (m *ScheduledJobMutation) LockExpiresAtCleared() bool {
	_, ok := m.clearedFields[scheduledjob.FieldLockExpiresAt]
	return ok
}

// ResetLockExpiresAt resets all changes to the "lock_expires_at" field.
func (m *ScheduledJobMutation) ResetLockExpiresAt() {
	m.lock_expires_at = nil
	delete(m.clearedFields, scheduledjob.FieldLockExpiresAt)
}

// SetEnabled sets the "enabled" field.
func (m *ScheduledJobMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *ScheduledJobMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the ScheduledJob entity.
// If the ScheduledJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledJobMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *ScheduledJobMutation) ResetEnabled() {
	m.enabled = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ScheduledJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ScheduledJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ScheduledJob entity.
// If the ScheduledJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ScheduledJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ScheduledJobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ScheduledJobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ScheduledJob entity.
// If the ScheduledJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledJobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ScheduledJobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ScheduledJobMutation builder.
func (m *ScheduledJobMutation) Where(ps ...predicate.ScheduledJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScheduledJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScheduledJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ScheduledJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScheduledJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScheduledJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ScheduledJob).
func (m *ScheduledJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScheduledJobMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.org_id != nil {
		fields = append(fields, scheduledjob.FieldOrgID)
	}
	if m.team_node_id != nil {
		fields = append(fields, scheduledjob.FieldTeamNodeID)
	}
	if m.job_type != nil {
		fields = append(fields, scheduledjob.FieldJobType)
	}
	if m.cron_expr != nil {
		fields = append(fields, scheduledjob.FieldCronExpr)
	}
	if m._config != nil {
		fields = append(fields, scheduledjob.FieldConfig)
	}
	if m.next_fire_at != nil {
		fields = append(fields, scheduledjob.FieldNextFireAt)
	}
	if m.last_status != nil {
		fields = append(fields, scheduledjob.FieldLastStatus)
	}
	if m.lock_owner != nil {
		fields = append(fields, scheduledjob.FieldLockOwner)
	}
	if m.lock_expires_at != nil {
		fields = append(fields, scheduledjob.FieldLockExpiresAt)
	}
	if m.enabled != nil {
		fields = append(fields, scheduledjob.FieldEnabled)
	}
	if m.created_at != nil {
		fields = append(fields, scheduledjob.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, scheduledjob.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScheduledJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scheduledjob.FieldOrgID:
		return m.OrgID()
	case scheduledjob.FieldTeamNodeID:
		return m.TeamNodeID()
	case scheduledjob.FieldJobType:
		return m.JobType()
	case scheduledjob.FieldCronExpr:
		return m.CronExpr()
	case scheduledjob.FieldConfig:
		return m.Config()
	case scheduledjob.FieldNextFireAt:
		return m.NextFireAt()
	case scheduledjob.FieldLastStatus:
		return m.LastStatus()
	case scheduledjob.FieldLockOwner:
		return m.LockOwner()
	case scheduledjob.FieldLockExpiresAt:
		return m.LockExpiresAt()
	case scheduledjob.FieldEnabled:
		return m.Enabled()
	case scheduledjob.FieldCreatedAt:
		return m.CreatedAt()
	case scheduledjob.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScheduledJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scheduledjob.FieldOrgID:
		return m.OldOrgID(ctx)
	case scheduledjob.FieldTeamNodeID:
		return m.OldTeamNodeID(ctx)
	case scheduledjob.FieldJobType:
		return m.OldJobType(ctx)
	case scheduledjob.FieldCronExpr:
		return m.OldCronExpr(ctx)
	case scheduledjob.FieldConfig:
		return m.OldConfig(ctx)
	case scheduledjob.FieldNextFireAt:
		return m.OldNextFireAt(ctx)
	case scheduledjob.FieldLastStatus:
		return m.OldLastStatus(ctx)
	case scheduledjob.FieldLockOwner:
		return m.OldLockOwner(ctx)
	case scheduledjob.FieldLockExpiresAt:
		return m.OldLockExpiresAt(ctx)
	case scheduledjob.FieldEnabled:
		return m.OldEnabled(ctx)
	case scheduledjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case scheduledjob.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ScheduledJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScheduledJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scheduledjob.FieldOrgID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrgID(v)
		return nil
	case scheduledjob.FieldTeamNodeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTeamNodeID(v)
		return nil
	case scheduledjob.FieldJobType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobType(v)
		return nil
	case scheduledjob.FieldCronExpr:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCronExpr(v)
		return nil
	case scheduledjob.FieldConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfig(v)
		return nil
	case scheduledjob.FieldNextFireAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextFireAt(v)
		return nil
	case scheduledjob.FieldLastStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastStatus(v)
		return nil
	case scheduledjob.FieldLockOwner:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLockOwner(v)
		return nil
	case scheduledjob.FieldLockExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLockExpiresAt(v)
		return nil
	case scheduledjob.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case scheduledjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case scheduledjob.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ScheduledJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScheduledJobMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScheduledJobMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScheduledJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ScheduledJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScheduledJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(scheduledjob.FieldConfig) {
		fields = append(fields, scheduledjob.FieldConfig)
	}
	if m.FieldCleared(scheduledjob.FieldLastStatus) {
		fields = append(fields, scheduledjob.FieldLastStatus)
	}
	if m.FieldCleared(scheduledjob.FieldLockOwner) {
		fields = append(fields, scheduledjob.FieldLockOwner)
	}
	if m.FieldCleared(scheduledjob.FieldLockExpiresAt) {
		fields = append(fields, scheduledjob.FieldLockExpiresAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScheduledJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScheduledJobMutation) ClearField(name string) error {
	switch name {
	case scheduledjob.FieldConfig:
		m.ClearConfig()
		return nil
	case scheduledjob.FieldLastStatus:
		m.ClearLastStatus()
		return nil
	case scheduledjob.FieldLockOwner:
		m.ClearLockOwner()
		return nil
	case scheduledjob.FieldLockExpiresAt:
		m.ClearLockExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown ScheduledJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScheduledJobMutation) ResetField(name string) error {
	switch name {
	case scheduledjob.FieldOrgID:
		m.ResetOrgID()
		return nil
	case scheduledjob.FieldTeamNodeID:
		m.ResetTeamNodeID()
		return nil
	case scheduledjob.FieldJobType:
		m.ResetJobType()
		return nil
	case scheduledjob.FieldCronExpr:
		m.ResetCronExpr()
		return nil
	case scheduledjob.FieldConfig:
		m.ResetConfig()
		return nil
	case scheduledjob.FieldNextFireAt:
		m.ResetNextFireAt()
		return nil
	case scheduledjob.FieldLastStatus:
		m.ResetLastStatus()
		return nil
	case scheduledjob.FieldLockOwner:
		m.ResetLockOwner()
		return nil
	case scheduledjob.FieldLockExpiresAt:
		m.ResetLockExpiresAt()
		return nil
	case scheduledjob.FieldEnabled:
		m.ResetEnabled()
		return nil
	case scheduledjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case scheduledjob.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ScheduledJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScheduledJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScheduledJobMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScheduledJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScheduledJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScheduledJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScheduledJobMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScheduledJobMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ScheduledJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScheduledJobMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ScheduledJob edge %s", name)
}

// TeamTokenMutation represents an operation that mutates the TeamToken nodes in the graph.
type TeamTokenMutation struct {
	config
	op            Op
	typ           string
	id            *string
	org_id        *string
	team_node_id  *string
	token_hash    *string
	created_at    *time.Time
	last_used_at  *time.Time
	revoked_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*TeamToken, error)
	predicates    []predicate.TeamToken
}

var _ ent.Mutation = (*TeamTokenMutation)(nil)

// teamtokenOption allows management of the mutation configuration using functional options.
type teamtokenOption func(*TeamTokenMutation)

// newTeamTokenMutation creates new mutation for the TeamToken entity.
func newTeamTokenMutation(c config, op Op, opts ...teamtokenOption) *TeamTokenMutation {
	m := &TeamTokenMutation{
		config:        c,
		op:            op,
		typ:           TypeTeamToken,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTeamTokenID sets the ID field of the mutation.
func withTeamTokenID(id string) teamtokenOption {
	return func(m *TeamTokenMutation) {
		var (
			err   error
			once  sync.Once
			value *TeamToken
		)
		m.oldValue = func(ctx context.Context) (*TeamToken, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TeamToken.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTeamToken sets the old TeamToken of the mutation.
func withTeamToken(node *TeamToken) teamtokenOption {
	return func(m *TeamTokenMutation) {
		m.oldValue = func(context.Context) (*TeamToken, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TeamTokenMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TeamTokenMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TeamToken entities.
func (m *TeamTokenMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TeamTokenMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TeamTokenMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TeamToken.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOrgID sets the "org_id" field.
func (m *TeamTokenMutation) SetOrgID(s string) {
	m.org_id = &s
}

// OrgID returns the value of the "org_id" field in the mutation.
func (m *TeamTokenMutation) OrgID() (r string, exists bool) {
	v := m.org_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrgID returns the old "org_id" field's value of the TeamToken entity.
// If the TeamToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamTokenMutation) OldOrgID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrgID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrgID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrgID: %w", err)
	}
	return oldValue.OrgID, nil
}

// ResetOrgID resets all changes to the "org_id" field.
func (m *TeamTokenMutation) ResetOrgID() {
	m.org_id = nil
}

// SetTeamNodeID sets the "team_node_id" field.
func (m *TeamTokenMutation) SetTeamNodeID(s string) {
	m.team_node_id = &s
}

// TeamNodeID returns the value of the "team_node_id" field in the mutation.
func (m *TeamTokenMutation) TeamNodeID() (r string, exists bool) {
	v := m.team_node_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTeamNodeID returns the old "team_node_id" field's value of the TeamToken entity.
// If the TeamToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamTokenMutation) OldTeamNodeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTeamNodeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTeamNodeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTeamNodeID: %w", err)
	}
	return oldValue.TeamNodeID, nil
}

// ResetTeamNodeID resets all changes to the "team_node_id" field.
func (m *TeamTokenMutation) ResetTeamNodeID() {
	m.team_node_id = nil
}

// SetTokenHash sets the "token_hash" field.
func (m *TeamTokenMutation) SetTokenHash(s string) {
	m.token_hash = &s
}

// TokenHash returns the value of the "token_hash" field in the mutation.
func (m *TeamTokenMutation) TokenHash() (r string, exists bool) {
	v := m.token_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldTokenHash returns the old "token_hash" field's value of the TeamToken entity.
// If the TeamToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamTokenMutation) OldTokenHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokenHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokenHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokenHash: %w", err)
	}
	return oldValue.TokenHash, nil
}

// ResetTokenHash resets all changes to the "token_hash" field.
func (m *TeamTokenMutation) ResetTokenHash() {
	m.token_hash = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TeamTokenMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TeamTokenMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TeamToken entity.
// If the TeamToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamTokenMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TeamTokenMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetLastUsedAt sets the "last_used_at" field.
func (m *TeamTokenMutation) SetLastUsedAt(t time.Time) {
	m.last_used_at = &t
}

// LastUsedAt returns the value of the "last_used_at" field in the mutation.
func (m *TeamTokenMutation) LastUsedAt() (r time.Time, exists bool) {
	v := m.last_used_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUsedAt returns the old "last_used_at" field's value of the TeamToken entity.
// If the TeamToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamTokenMutation) OldLastUsedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUsedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUsedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUsedAt: %w", err)
	}
	return oldValue.LastUsedAt, nil
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (m *TeamTokenMutation) ClearLastUsedAt() {
	m.last_used_at = nil
	m.clearedFields[teamtoken.FieldLastUsedAt] = struct{}{}
}

// LastUsedAtCleared returns if the "last_used_at" field was cleared in this mutation.
func (m *TeamTokenMutation) LastUsedAtCleared() bool {
	_, ok := m.clearedFields[teamtoken.FieldLastUsedAt]
	return ok
}

// ResetLastUsedAt resets all changes to the "last_used_at" field.
func (m *TeamTokenMutation) ResetLastUsedAt() {
	m.last_used_at = nil
	delete(m.clearedFields, teamtoken.FieldLastUsedAt)
}

// SetRevokedAt sets the "revoked_at" field.
func (m *TeamTokenMutation) SetRevokedAt(t time.Time) {
	m.revoked_at = &t
}

// RevokedAt returns the value of the "revoked_at" field in the mutation.
func (m *TeamTokenMutation) RevokedAt() (r time.Time, exists bool) {
	v := m.revoked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRevokedAt returns the old "revoked_at" field's value of the TeamToken entity.
// If the TeamToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamTokenMutation) OldRevokedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRevokedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRevokedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRevokedAt: %w", err)
	}
	return oldValue.RevokedAt, nil
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (m *TeamTokenMutation) ClearRevokedAt() {
	m.revoked_at = nil
	m.clearedFields[teamtoken.FieldRevokedAt] = struct{}{}
}

// RevokedAtCleared returns if the "revoked_at" field was cleared in this mutation.
func (m *TeamTokenMutation) RevokedAtCleared() bool {
	_, ok := m.clearedFields[teamtoken.FieldRevokedAt]
	return ok
}

// ResetRevokedAt resets all changes to the "revoked_at" field.
func (m *TeamTokenMutation) ResetRevokedAt() {
	m.revoked_at = nil
	delete(m.clearedFields, teamtoken.FieldRevokedAt)
}

// Where appends a list predicates to the TeamTokenMutation builder.
func (m *TeamTokenMutation) Where(ps ...predicate.TeamToken) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TeamTokenMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TeamTokenMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TeamToken, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TeamTokenMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TeamTokenMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TeamToken).
func (m *TeamTokenMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TeamTokenMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.org_id != nil {
		fields = append(fields, teamtoken.FieldOrgID)
	}
	if m.team_node_id != nil {
		fields = append(fields, teamtoken.FieldTeamNodeID)
	}
	if m.token_hash != nil {
		fields = append(fields, teamtoken.FieldTokenHash)
	}
	if m.created_at != nil {
		fields = append(fields, teamtoken.FieldCreatedAt)
	}
	if m.last_used_at != nil {
		fields = append(fields, teamtoken.FieldLastUsedAt)
	}
	if m.revoked_at != nil {
		fields = append(fields, teamtoken.FieldRevokedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TeamTokenMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case teamtoken.FieldOrgID:
		return m.OrgID()
	case teamtoken.FieldTeamNodeID:
		return m.TeamNodeID()
	case teamtoken.FieldTokenHash:
		return m.TokenHash()
	case teamtoken.FieldCreatedAt:
		return m.CreatedAt()
	case teamtoken.FieldLastUsedAt:
		return m.LastUsedAt()
	case teamtoken.FieldRevokedAt:
		return m.RevokedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TeamTokenMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case teamtoken.FieldOrgID:
		return m.OldOrgID(ctx)
	case teamtoken.FieldTeamNodeID:
		return m.OldTeamNodeID(ctx)
	case teamtoken.FieldTokenHash:
		return m.OldTokenHash(ctx)
	case teamtoken.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case teamtoken.FieldLastUsedAt:
		return m.OldLastUsedAt(ctx)
	case teamtoken.FieldRevokedAt:
		return m.OldRevokedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TeamToken field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TeamTokenMutation) SetField(name string, value ent.Value) error {
	switch name {
	case teamtoken.FieldOrgID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrgID(v)
		return nil
	case teamtoken.FieldTeamNodeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTeamNodeID(v)
		return nil
	case teamtoken.FieldTokenHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokenHash(v)
		return nil
	case teamtoken.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case teamtoken.FieldLastUsedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUsedAt(v)
		return nil
	case teamtoken.FieldRevokedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRevokedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TeamToken field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TeamTokenMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TeamTokenMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TeamTokenMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TeamToken numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TeamTokenMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(teamtoken.FieldLastUsedAt) {
		fields = append(fields, teamtoken.FieldLastUsedAt)
	}
	if m.FieldCleared(teamtoken.FieldRevokedAt) {
		fields = append(fields, teamtoken.FieldRevokedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TeamTokenMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TeamTokenMutation) ClearField(name string) error {
	switch name {
	case teamtoken.FieldLastUsedAt:
		m.ClearLastUsedAt()
		return nil
	case teamtoken.FieldRevokedAt:
		m.ClearRevokedAt()
		return nil
	}
	return fmt.Errorf("unknown TeamToken nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TeamTokenMutation) ResetField(name string) error {
	switch name {
	case teamtoken.FieldOrgID:
		m.ResetOrgID()
		return nil
	case teamtoken.FieldTeamNodeID:
		m.ResetTeamNodeID()
		return nil
	case teamtoken.FieldTokenHash:
		m.ResetTokenHash()
		return nil
	case teamtoken.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case teamtoken.FieldLastUsedAt:
		m.ResetLastUsedAt()
		return nil
	case teamtoken.FieldRevokedAt:
		m.ResetRevokedAt()
		return nil
	}
	return fmt.Errorf("unknown TeamToken field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TeamTokenMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TeamTokenMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TeamTokenMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TeamTokenMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TeamTokenMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TeamTokenMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TeamTokenMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TeamToken unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TeamTokenMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TeamToken edge %s", name)
}

// TokenAuditMutation represents an operation that mutates the TokenAudit nodes in the graph.
type TokenAuditMutation struct {
	config
	op            Op
	typ           string
	id            *string
	ts            *time.Time
	org_id        *string
	team_node_id  *string
	token_id      *string
	action        *tokenaudit.Action
	actor         *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*TokenAudit, error)
	predicates    []predicate.TokenAudit
}

var _ ent.Mutation = (*TokenAuditMutation)(nil)

// tokenauditOption allows management of the mutation configuration using functional options.
type tokenauditOption func(*TokenAuditMutation)

// newTokenAuditMutation creates new mutation for the TokenAudit entity.
func newTokenAuditMutation(c config, op Op, opts ...tokenauditOption) *TokenAuditMutation {
	m := &TokenAuditMutation{
		config:        c,
		op:            op,
		typ:           TypeTokenAudit,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTokenAuditID sets the ID field of the mutation.
func withTokenAuditID(id string) tokenauditOption {
	return func(m *TokenAuditMutation) {
		var (
			err   error
			once  sync.Once
			value *TokenAudit
		)
		m.oldValue = func(ctx context.Context) (*TokenAudit, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TokenAudit.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTokenAudit sets the old TokenAudit of the mutation.
func withTokenAudit(node *TokenAudit) tokenauditOption {
	return func(m *TokenAuditMutation) {
		m.oldValue = func(context.Context) (*TokenAudit, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TokenAuditMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TokenAuditMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TokenAudit entities.
func (m *TokenAuditMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TokenAuditMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TokenAuditMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TokenAudit.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTs sets the "ts" field.
func (m *TokenAuditMutation) SetTs(t time.Time) {
	m.ts = &t
}

// Ts returns the value of the "ts" field in the mutation.
func (m *TokenAuditMutation) Ts() (r time.Time, exists bool) {
	v := m.ts
	if v == nil {
		return
	}
	return *v, true
}

// OldTs returns the old "ts" field's value of the TokenAudit entity.
// If the TokenAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenAuditMutation) OldTs(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTs: %w", err)
	}
	return oldValue.Ts, nil
}

// ResetTs resets all changes to the "ts" field.
func (m *TokenAuditMutation) ResetTs() {
	m.ts = nil
}

// SetOrgID sets the "org_id" field.
func (m *TokenAuditMutation) SetOrgID(s string) {
	m.org_id = &s
}

// OrgID returns the value of the "org_id" field in the mutation.
func (m *TokenAuditMutation) OrgID() (r string, exists bool) {
	v := m.org_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrgID returns the old "org_id" field's value of the TokenAudit entity.
// If the TokenAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenAuditMutation) OldOrgID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrgID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrgID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrgID: %w", err)
	}
	return oldValue.OrgID, nil
}

// ResetOrgID resets all changes to the "org_id" field.
func (m *TokenAuditMutation) ResetOrgID() {
	m.org_id = nil
}

// SetTeamNodeID sets the "team_node_id" field.
func (m *TokenAuditMutation) SetTeamNodeID(s string) {
	m.team_node_id = &s
}

// TeamNodeID returns the value of the "team_node_id" field in the mutation.
func (m *TokenAuditMutation) TeamNodeID() (r string, exists bool) {
	v := m.team_node_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTeamNodeID returns the old "team_node_id" field's value of the TokenAudit entity.
// If the TokenAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenAuditMutation) OldTeamNodeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTeamNodeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTeamNodeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTeamNodeID: %w", err)
	}
	return oldValue.TeamNodeID, nil
}

// ClearTeamNodeID clears the value of the "team_node_id" field.
func (m *TokenAuditMutation) ClearTeamNodeID() {
	m.team_node_id = nil
	m.clearedFields[tokenaudit.FieldTeamNodeID] = struct{}{}
}

// TeamNodeIDCleared returns if the "team_node_id" field was cleared in this mutation.
func (m *TokenAuditMutation) TeamNodeIDCleared() bool {
	_, ok := m.clearedFields[tokenaudit.FieldTeamNodeID]
	return ok
}

// ResetTeamNodeID resets all changes to the "team_node_id" field.
func (m *TokenAuditMutation) ResetTeamNodeID() {
	m.team_node_id = nil
	delete(m.clearedFields, tokenaudit.FieldTeamNodeID)
}

// SetTokenID sets the "token_id" field.
func (m *TokenAuditMutation) SetTokenID(s string) {
	m.token_id = &s
}

// TokenID returns the value of the "token_id" field in the mutation.
func (m *TokenAuditMutation) TokenID() (r string, exists bool) {
	v := m.token_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTokenID returns the old "token_id" field's value of the TokenAudit entity.
// If the TokenAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenAuditMutation) OldTokenID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokenID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokenID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokenID: %w", err)
	}
	return oldValue.TokenID, nil
}

// ResetTokenID resets all changes to the "token_id" field.
func (m *TokenAuditMutation) ResetTokenID() {
	m.token_id = nil
}

// SetAction sets the "action" field.
func (m *TokenAuditMutation) SetAction(t tokenaudit.Action) {
	m.action = &t
}

// Action returns the value of the "action" field in the mutation.
func (m *TokenAuditMutation) Action() (r tokenaudit.Action, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the TokenAudit entity.
// If the TokenAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenAuditMutation) OldAction(ctx context.Context) (v tokenaudit.Action, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *TokenAuditMutation) ResetAction() {
	m.action = nil
}

// SetActor sets the "actor" field.
func (m *TokenAuditMutation) SetActor(s string) {
	m.actor = &s
}

// Actor returns the value of the "actor" field in the mutation.
func (m *TokenAuditMutation) Actor() (r string, exists bool) {
	v := m.actor
	if v == nil {
		return
	}
	return *v, true
}

// OldActor returns the old "actor" field's value of the TokenAudit entity.
// If the TokenAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenAuditMutation) OldActor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActor: %w", err)
	}
	return oldValue.Actor, nil
}

// ResetActor resets all changes to the "actor" field.
func (m *TokenAuditMutation) ResetActor() {
	m.actor = nil
}

// Where appends a list predicates to the TokenAuditMutation builder.
func (m *TokenAuditMutation) Where(ps ...predicate.TokenAudit) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TokenAuditMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TokenAuditMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TokenAudit, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TokenAuditMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TokenAuditMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TokenAudit).
func (m *TokenAuditMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TokenAuditMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.ts != nil {
		fields = append(fields, tokenaudit.FieldTs)
	}
	if m.org_id != nil {
		fields = append(fields, tokenaudit.FieldOrgID)
	}
	if m.team_node_id != nil {
		fields = append(fields, tokenaudit.FieldTeamNodeID)
	}
	if m.token_id != nil {
		fields = append(fields, tokenaudit.FieldTokenID)
	}
	if m.action != nil {
		fields = append(fields, tokenaudit.FieldAction)
	}
	if m.actor != nil {
		fields = append(fields, tokenaudit.FieldActor)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TokenAuditMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tokenaudit.FieldTs:
		return m.Ts()
	case tokenaudit.FieldOrgID:
		return m.OrgID()
	case tokenaudit.FieldTeamNodeID:
		return m.TeamNodeID()
	case tokenaudit.FieldTokenID:
		return m.TokenID()
	case tokenaudit.FieldAction:
		return m.Action()
	case tokenaudit.FieldActor:
		return m.Actor()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TokenAuditMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tokenaudit.FieldTs:
		return m.OldTs(ctx)
	case tokenaudit.FieldOrgID:
		return m.OldOrgID(ctx)
	case tokenaudit.FieldTeamNodeID:
		return m.OldTeamNodeID(ctx)
	case tokenaudit.FieldTokenID:
		return m.OldTokenID(ctx)
	case tokenaudit.FieldAction:
		return m.OldAction(ctx)
	case tokenaudit.FieldActor:
		return m.OldActor(ctx)
	}
	return nil, fmt.Errorf("unknown TokenAudit field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TokenAuditMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tokenaudit.FieldTs:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTs(v)
		return nil
	case tokenaudit.FieldOrgID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrgID(v)
		return nil
	case tokenaudit.FieldTeamNodeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTeamNodeID(v)
		return nil
	case tokenaudit.FieldTokenID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokenID(v)
		return nil
	case tokenaudit.FieldAction:
		v, ok := value.(tokenaudit.Action)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case tokenaudit.FieldActor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActor(v)
		return nil
	}
	return fmt.Errorf("unknown TokenAudit field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TokenAuditMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TokenAuditMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TokenAuditMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TokenAudit numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TokenAuditMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tokenaudit.FieldTeamNodeID) {
		fields = append(fields, tokenaudit.FieldTeamNodeID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TokenAuditMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TokenAuditMutation) ClearField(name string) error {
	switch name {
	case tokenaudit.FieldTeamNodeID:
		m.ClearTeamNodeID()
		return nil
	}
	return fmt.Errorf("unknown TokenAudit nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TokenAuditMutation) ResetField(name string) error {
	switch name {
	case tokenaudit.FieldTs:
		m.ResetTs()
		return nil
	case tokenaudit.FieldOrgID:
		m.ResetOrgID()
		return nil
	case tokenaudit.FieldTeamNodeID:
		m.ResetTeamNodeID()
		return nil
	case tokenaudit.FieldTokenID:
		m.ResetTokenID()
		return nil
	case tokenaudit.FieldAction:
		m.ResetAction()
		return nil
	case tokenaudit.FieldActor:
		m.ResetActor()
		return nil
	}
	return fmt.Errorf("unknown TokenAudit field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TokenAuditMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TokenAuditMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TokenAuditMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TokenAuditMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TokenAuditMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TokenAuditMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TokenAuditMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TokenAudit unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TokenAuditMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TokenAudit edge %s", name)
}

// WebhookDeliveryMutation represents an operation that mutates the WebhookDelivery nodes in the graph.
type WebhookDeliveryMutation struct {
	config
	op            Op
	typ           string
	id            *string
	vendor        *string
	event_id      *string
	org_id        *string
	team_node_id  *string
	outcome       *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*WebhookDelivery, error)
	predicates    []predicate.WebhookDelivery
}

var _ ent.Mutation = (*WebhookDeliveryMutation)(nil)

// webhookdeliveryOption allows management of the mutation configuration using functional options.
type webhookdeliveryOption func(*WebhookDeliveryMutation)

// newWebhookDeliveryMutation creates new mutation for the WebhookDelivery entity.
func newWebhookDeliveryMutation(c config, op Op, opts ...webhookdeliveryOption) *WebhookDeliveryMutation {
	m := &WebhookDeliveryMutation{
		config:        c,
		op:            op,
		typ:           TypeWebhookDelivery,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWebhookDeliveryID sets the ID field of the mutation.
func withWebhookDeliveryID(id string) webhookdeliveryOption {
	return func(m *WebhookDeliveryMutation) {
		var (
			err   error
			once  sync.Once
			value *WebhookDelivery
		)
		m.oldValue = func(ctx context.Context) (*WebhookDelivery, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WebhookDelivery.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWebhookDelivery sets the old WebhookDelivery of the mutation.
func withWebhookDelivery(node *WebhookDelivery) webhookdeliveryOption {
	return func(m *WebhookDeliveryMutation) {
		m.oldValue = func(context.Context) (*WebhookDelivery, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WebhookDeliveryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WebhookDeliveryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WebhookDelivery entities.
func (m *WebhookDeliveryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WebhookDeliveryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WebhookDeliveryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WebhookDelivery.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetVendor sets the "vendor" field.
func (m *WebhookDeliveryMutation) SetVendor(s string) {
	m.vendor = &s
}

// Vendor returns the value of the "vendor" field in the mutation.
func (m *WebhookDeliveryMutation) Vendor() (r string, exists bool) {
	v := m.vendor
	if v == nil {
		return
	}
	return *v, true
}

// OldVendor returns the old "vendor" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldVendor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVendor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVendor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVendor: %w", err)
	}
	return oldValue.Vendor, nil
}

// ResetVendor resets all changes to the "vendor" field.
func (m *WebhookDeliveryMutation) ResetVendor() {
	m.vendor = nil
}

// SetEventID sets the "event_id" field.
func (m *WebhookDeliveryMutation) SetEventID(s string) {
	m.event_id = &s
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *WebhookDeliveryMutation) EventID() (r string, exists bool) {
	v := m.event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *WebhookDeliveryMutation) ResetEventID() {
	m.event_id = nil
}

// SetOrgID sets the "org_id" field.
func (m *WebhookDeliveryMutation) SetOrgID(s string) {
	m.org_id = &s
}

// OrgID returns the value of the "org_id" field in the mutation.
func (m *WebhookDeliveryMutation) OrgID() (r string, exists bool) {
	v := m.org_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrgID returns the old "org_id" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldOrgID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrgID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrgID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrgID: %w", err)
	}
	return oldValue.OrgID, nil
}

// ClearOrgID clears the value of the "org_id" field.
func (m *WebhookDeliveryMutation) ClearOrgID() {
	m.org_id = nil
	m.clearedFields[webhookdelivery.FieldOrgID] = struct{}{}
}

// OrgIDCleared returns if the "org_id" field was cleared in this mutation.
func (m *WebhookDeliveryMutation) OrgIDCleared() bool {
	_, ok := m.clearedFields[webhookdelivery.FieldOrgID]
	return ok
}

// ResetOrgID resets all changes to the "org_id" field.
func (m *WebhookDeliveryMutation) ResetOrgID() {
	m.org_id = nil
	delete(m.clearedFields, webhookdelivery.FieldOrgID)
}

// SetTeamNodeID sets the "team_node_id" field.
func (m *WebhookDeliveryMutation) SetTeamNodeID(s string) {
	m.team_node_id = &s
}

// TeamNodeID returns the value of the "team_node_id" field in the mutation.
func (m *WebhookDeliveryMutation) TeamNodeID() (r string, exists bool) {
	v := m.team_node_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTeamNodeID returns the old "team_node_id" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldTeamNodeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTeamNodeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTeamNodeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTeamNodeID: %w", err)
	}
	return oldValue.TeamNodeID, nil
}

// ClearTeamNodeID clears the value of the "team_node_id" field.
func (m *WebhookDeliveryMutation) ClearTeamNodeID() {
	m.team_node_id = nil
	m.clearedFields[webhookdelivery.FieldTeamNodeID] = struct{}{}
}

// TeamNodeIDCleared returns if the "team_node_id" field was cleared in this mutation.
func (m *WebhookDeliveryMutation) TeamNodeIDCleared() bool {
	_, ok := m.clearedFields[webhookdelivery.FieldTeamNodeID]
	return ok
}

// ResetTeamNodeID resets all changes to the "team_node_id" field.
func (m *WebhookDeliveryMutation) ResetTeamNodeID() {
	m.team_node_id = nil
	delete(m.clearedFields, webhookdelivery.FieldTeamNodeID)
}

// SetOutcome sets the "outcome" field.
func (m *WebhookDeliveryMutation) SetOutcome(s string) {
	m.outcome = &s
}

// Outcome returns the value of the "outcome" field in the mutation.
func (m *WebhookDeliveryMutation) Outcome() (r string, exists bool) {
	v := m.outcome
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcome returns the old "outcome" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldOutcome(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcome is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcome requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcome: %w", err)
	}
	return oldValue.Outcome, nil
}

// ClearOutcome clears the value of the "outcome" field.
func (m *WebhookDeliveryMutation) ClearOutcome() {
	m.outcome = nil
	m.clearedFields[webhookdelivery.FieldOutcome] = struct{}{}
}

// OutcomeCleared returns if the "outcome" field was cleared in this mutation.
func (m *WebhookDeliveryMutation) OutcomeCleared() bool {
	_, ok := m.clearedFields[webhookdelivery.FieldOutcome]
	return ok
}

// ResetOutcome resets all changes to the "outcome" field.
func (m *WebhookDeliveryMutation) ResetOutcome() {
	m.outcome = nil
	delete(m.clearedFields, webhookdelivery.FieldOutcome)
}

// SetCreatedAt sets the "created_at" field.
func (m *WebhookDeliveryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WebhookDeliveryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WebhookDeliveryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the WebhookDeliveryMutation builder.
func (m *WebhookDeliveryMutation) Where(ps ...predicate.WebhookDelivery) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WebhookDeliveryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WebhookDeliveryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WebhookDelivery, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WebhookDeliveryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WebhookDeliveryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WebhookDelivery).
func (m *WebhookDeliveryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WebhookDeliveryMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.vendor != nil {
		fields = append(fields, webhookdelivery.FieldVendor)
	}
	if m.event_id != nil {
		fields = append(fields, webhookdelivery.FieldEventID)
	}
	if m.org_id != nil {
		fields = append(fields, webhookdelivery.FieldOrgID)
	}
	if m.team_node_id != nil {
		fields = append(fields, webhookdelivery.FieldTeamNodeID)
	}
	if m.outcome != nil {
		fields = append(fields, webhookdelivery.FieldOutcome)
	}
	if m.created_at != nil {
		fields = append(fields, webhookdelivery.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WebhookDeliveryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case webhookdelivery.FieldVendor:
		return m.Vendor()
	case webhookdelivery.FieldEventID:
		return m.EventID()
	case webhookdelivery.FieldOrgID:
		return m.OrgID()
	case webhookdelivery.FieldTeamNodeID:
		return m.TeamNodeID()
	case webhookdelivery.FieldOutcome:
		return m.Outcome()
	case webhookdelivery.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WebhookDeliveryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case webhookdelivery.FieldVendor:
		return m.OldVendor(ctx)
	case webhookdelivery.FieldEventID:
		return m.OldEventID(ctx)
	case webhookdelivery.FieldOrgID:
		return m.OldOrgID(ctx)
	case webhookdelivery.FieldTeamNodeID:
		return m.OldTeamNodeID(ctx)
	case webhookdelivery.FieldOutcome:
		return m.OldOutcome(ctx)
	case webhookdelivery.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WebhookDelivery field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WebhookDeliveryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case webhookdelivery.FieldVendor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVendor(v)
		return nil
	case webhookdelivery.FieldEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case webhookdelivery.FieldOrgID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrgID(v)
		return nil
	case webhookdelivery.FieldTeamNodeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTeamNodeID(v)
		return nil
	case webhookdelivery.FieldOutcome:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcome(v)
		return nil
	case webhookdelivery.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WebhookDelivery field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WebhookDeliveryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WebhookDeliveryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WebhookDeliveryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown WebhookDelivery numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WebhookDeliveryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(webhookdelivery.FieldOrgID) {
		fields = append(fields, webhookdelivery.FieldOrgID)
	}
	if m.FieldCleared(webhookdelivery.FieldTeamNodeID) {
		fields = append(fields, webhookdelivery.FieldTeamNodeID)
	}
	if m.FieldCleared(webhookdelivery.FieldOutcome) {
		fields = append(fields, webhookdelivery.FieldOutcome)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WebhookDeliveryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WebhookDeliveryMutation) ClearField(name string) error {
	switch name {
	case webhookdelivery.FieldOrgID:
		m.ClearOrgID()
		return nil
	case webhookdelivery.FieldTeamNodeID:
		m.ClearTeamNodeID()
		return nil
	case webhookdelivery.FieldOutcome:
		m.ClearOutcome()
		return nil
	}
	return fmt.Errorf("unknown WebhookDelivery nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WebhookDeliveryMutation) ResetField(name string) error {
	switch name {
	case webhookdelivery.FieldVendor:
		m.ResetVendor()
		return nil
	case webhookdelivery.FieldEventID:
		m.ResetEventID()
		return nil
	case webhookdelivery.FieldOrgID:
		m.ResetOrgID()
		return nil
	case webhookdelivery.FieldTeamNodeID:
		m.ResetTeamNodeID()
		return nil
	case webhookdelivery.FieldOutcome:
		m.ResetOutcome()
		return nil
	case webhookdelivery.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown WebhookDelivery field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WebhookDeliveryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WebhookDeliveryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WebhookDeliveryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WebhookDeliveryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WebhookDeliveryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WebhookDeliveryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WebhookDeliveryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown WebhookDelivery unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WebhookDeliveryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown WebhookDelivery edge %s", name)
}
