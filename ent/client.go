// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/incidentfox/incidentfox/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
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
	"github.com/incidentfox/incidentfox/ent/provisioningrun"
	"github.com/incidentfox/incidentfox/ent/routingkey"
	"github.com/incidentfox/incidentfox/ent/scheduledjob"
	"github.com/incidentfox/incidentfox/ent/teamtoken"
	"github.com/incidentfox/incidentfox/ent/tokenaudit"
	"github.com/incidentfox/incidentfox/ent/webhookdelivery"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// A2ATask is the client for interacting with the A2ATask builders.
	A2ATask *A2ATaskClient
	// AgentRun is the client for interacting with the AgentRun builders.
	AgentRun *AgentRunClient
	// AuditEvent is the client for interacting with the AuditEvent builders.
	AuditEvent *AuditEventClient
	// ImpersonationJTI is the client for interacting with the ImpersonationJTI builders.
	ImpersonationJTI *ImpersonationJTIClient
	// IntegrationSchema is the client for interacting with the IntegrationSchema builders.
	IntegrationSchema *IntegrationSchemaClient
	// NodeConfig is the client for interacting with the NodeConfig builders.
	NodeConfig *NodeConfigClient
	// NodeConfigHistory is the client for interacting with the NodeConfigHistory builders.
	NodeConfigHistory *NodeConfigHistoryClient
	// OrgAdminToken is the client for interacting with the OrgAdminToken builders.
	OrgAdminToken *OrgAdminTokenClient
	// OrgNode is the client for interacting with the OrgNode builders.
	OrgNode *OrgNodeClient
	// ProvisioningRun is the client for interacting with the ProvisioningRun builders.
	ProvisioningRun *ProvisioningRunClient
	// RoutingKey is the client for interacting with the RoutingKey builders.
	RoutingKey *RoutingKeyClient
	// ScheduledJob is the client for interacting with the ScheduledJob builders.
	ScheduledJob *ScheduledJobClient
	// TeamToken is the client for interacting with the TeamToken builders.
	TeamToken *TeamTokenClient
	// TokenAudit is the client for interacting with the TokenAudit builders.
	TokenAudit *TokenAuditClient
	// WebhookDelivery is the client for interacting with the WebhookDelivery builders.
	WebhookDelivery *WebhookDeliveryClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.A2ATask = NewA2ATaskClient(c.config)
	c.AgentRun = NewAgentRunClient(c.config)
	c.AuditEvent = NewAuditEventClient(c.config)
	c.ImpersonationJTI = NewImpersonationJTIClient(c.config)
	c.IntegrationSchema = NewIntegrationSchemaClient(c.config)
	c.NodeConfig = NewNodeConfigClient(c.config)
	c.NodeConfigHistory = NewNodeConfigHistoryClient(c.config)
	c.OrgAdminToken = NewOrgAdminTokenClient(c.config)
	c.OrgNode = NewOrgNodeClient(c.config)
	c.ProvisioningRun = NewProvisioningRunClient(c.config)
	c.RoutingKey = NewRoutingKeyClient(c.config)
	c.ScheduledJob = NewScheduledJobClient(c.config)
	c.TeamToken = NewTeamTokenClient(c.config)
	c.TokenAudit = NewTokenAuditClient(c.config)
	c.WebhookDelivery = NewWebhookDeliveryClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		A2ATask:           NewA2ATaskClient(cfg),
		AgentRun:          NewAgentRunClient(cfg),
		AuditEvent:        NewAuditEventClient(cfg),
		ImpersonationJTI:  NewImpersonationJTIClient(cfg),
		IntegrationSchema: NewIntegrationSchemaClient(cfg),
		NodeConfig:        NewNodeConfigClient(cfg),
		NodeConfigHistory: NewNodeConfigHistoryClient(cfg),
		OrgAdminToken:     NewOrgAdminTokenClient(cfg),
		OrgNode:           NewOrgNodeClient(cfg),
		ProvisioningRun:   NewProvisioningRunClient(cfg),
		RoutingKey:        NewRoutingKeyClient(cfg),
		ScheduledJob:      NewScheduledJobClient(cfg),
		TeamToken:         NewTeamTokenClient(cfg),
		TokenAudit:        NewTokenAuditClient(cfg),
		WebhookDelivery:   NewWebhookDeliveryClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		A2ATask:           NewA2ATaskClient(cfg),
		AgentRun:          NewAgentRunClient(cfg),
		AuditEvent:        NewAuditEventClient(cfg),
		ImpersonationJTI:  NewImpersonationJTIClient(cfg),
		IntegrationSchema: NewIntegrationSchemaClient(cfg),
		NodeConfig:        NewNodeConfigClient(cfg),
		NodeConfigHistory: NewNodeConfigHistoryClient(cfg),
		OrgAdminToken:     NewOrgAdminTokenClient(cfg),
		OrgNode:           NewOrgNodeClient(cfg),
		ProvisioningRun:   NewProvisioningRunClient(cfg),
		RoutingKey:        NewRoutingKeyClient(cfg),
		ScheduledJob:      NewScheduledJobClient(cfg),
		TeamToken:         NewTeamTokenClient(cfg),
		TokenAudit:        NewTokenAuditClient(cfg),
		WebhookDelivery:   NewWebhookDeliveryClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		A2ATask.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.A2ATask, c.AgentRun, c.AuditEvent, c.ImpersonationJTI, c.IntegrationSchema,
		c.NodeConfig, c.NodeConfigHistory, c.OrgAdminToken, c.OrgNode,
		c.ProvisioningRun, c.RoutingKey, c.ScheduledJob, c.TeamToken, c.TokenAudit,
		c.WebhookDelivery,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.A2ATask, c.AgentRun, c.AuditEvent, c.ImpersonationJTI, c.IntegrationSchema,
		c.NodeConfig, c.NodeConfigHistory, c.OrgAdminToken, c.OrgNode,
		c.ProvisioningRun, c.RoutingKey, c.ScheduledJob, c.TeamToken, c.TokenAudit,
		c.WebhookDelivery,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *A2ATaskMutation:
		return c.A2ATask.mutate(ctx, m)
	case *AgentRunMutation:
		return c.AgentRun.mutate(ctx, m)
	case *AuditEventMutation:
		return c.AuditEvent.mutate(ctx, m)
	case *ImpersonationJTIMutation:
		return c.ImpersonationJTI.mutate(ctx, m)
	case *IntegrationSchemaMutation:
		return c.IntegrationSchema.mutate(ctx, m)
	case *NodeConfigMutation:
		return c.NodeConfig.mutate(ctx, m)
	case *NodeConfigHistoryMutation:
		return c.NodeConfigHistory.mutate(ctx, m)
	case *OrgAdminTokenMutation:
		return c.OrgAdminToken.mutate(ctx, m)
	case *OrgNodeMutation:
		return c.OrgNode.mutate(ctx, m)
	case *ProvisioningRunMutation:
		return c.ProvisioningRun.mutate(ctx, m)
	case *RoutingKeyMutation:
		return c.RoutingKey.mutate(ctx, m)
	case *ScheduledJobMutation:
		return c.ScheduledJob.mutate(ctx, m)
	case *TeamTokenMutation:
		return c.TeamToken.mutate(ctx, m)
	case *TokenAuditMutation:
		return c.TokenAudit.mutate(ctx, m)
	case *WebhookDeliveryMutation:
		return c.WebhookDelivery.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// A2ATaskClient is a client for the A2ATask schema.
type A2ATaskClient struct {
	config
}

// NewA2ATaskClient returns a client for the A2ATask from the given config.
func NewA2ATaskClient(c config) *A2ATaskClient {
	return &A2ATaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `a2atask.Hooks(f(g(h())))`.
func (c *A2ATaskClient) Use(hooks ...Hook) {
	c.hooks.A2ATask = append(c.hooks.A2ATask, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `a2atask.Intercept(f(g(h())))`.
func (c *A2ATaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.A2ATask = append(c.inters.A2ATask, interceptors...)
}

// Create returns a builder for creating a A2ATask entity.
func (c *A2ATaskClient) Create() *A2ATaskCreate {
	mutation := newA2ATaskMutation(c.config, OpCreate)
	return &A2ATaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of A2ATask entities.
func (c *A2ATaskClient) CreateBulk(builders ...*A2ATaskCreate) *A2ATaskCreateBulk {
	return &A2ATaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *A2ATaskClient) MapCreateBulk(slice any, setFunc func(*A2ATaskCreate, int)) *A2ATaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &A2ATaskCreateBulk{err: fmt.Errorf("calling to A2ATaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*A2ATaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &A2ATaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for A2ATask.
func (c *A2ATaskClient) Update() *A2ATaskUpdate {
	mutation := newA2ATaskMutation(c.config, OpUpdate)
	return &A2ATaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *A2ATaskClient) UpdateOne(_m *A2ATask) *A2ATaskUpdateOne {
	mutation := newA2ATaskMutation(c.config, OpUpdateOne, withA2ATask(_m))
	return &A2ATaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *A2ATaskClient) UpdateOneID(id string) *A2ATaskUpdateOne {
	mutation := newA2ATaskMutation(c.config, OpUpdateOne, withA2ATaskID(id))
	return &A2ATaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for A2ATask.
func (c *A2ATaskClient) Delete() *A2ATaskDelete {
	mutation := newA2ATaskMutation(c.config, OpDelete)
	return &A2ATaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *A2ATaskClient) DeleteOne(_m *A2ATask) *A2ATaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *A2ATaskClient) DeleteOneID(id string) *A2ATaskDeleteOne {
	builder := c.Delete().Where(a2atask.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &A2ATaskDeleteOne{builder}
}

// Query returns a query builder for A2ATask.
func (c *A2ATaskClient) Query() *A2ATaskQuery {
	return &A2ATaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeA2ATask},
		inters: c.Interceptors(),
	}
}

// Get returns a A2ATask entity by its id.
func (c *A2ATaskClient) Get(ctx context.Context, id string) (*A2ATask, error) {
	return c.Query().Where(a2atask.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *A2ATaskClient) GetX(ctx context.Context, id string) *A2ATask {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *A2ATaskClient) Hooks() []Hook {
	return c.hooks.A2ATask
}

// Interceptors returns the client interceptors.
func (c *A2ATaskClient) Interceptors() []Interceptor {
	return c.inters.A2ATask
}

func (c *A2ATaskClient) mutate(ctx context.Context, m *A2ATaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&A2ATaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&A2ATaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&A2ATaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&A2ATaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown A2ATask mutation op: %q", m.Op())
	}
}

// AgentRunClient is a client for the AgentRun schema.
type AgentRunClient struct {
	config
}

// NewAgentRunClient returns a client for the AgentRun from the given config.
func NewAgentRunClient(c config) *AgentRunClient {
	return &AgentRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentrun.Hooks(f(g(h())))`.
func (c *AgentRunClient) Use(hooks ...Hook) {
	c.hooks.AgentRun = append(c.hooks.AgentRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentrun.Intercept(f(g(h())))`.
func (c *AgentRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentRun = append(c.inters.AgentRun, interceptors...)
}

// Create returns a builder for creating a AgentRun entity.
func (c *AgentRunClient) Create() *AgentRunCreate {
	mutation := newAgentRunMutation(c.config, OpCreate)
	return &AgentRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentRun entities.
func (c *AgentRunClient) CreateBulk(builders ...*AgentRunCreate) *AgentRunCreateBulk {
	return &AgentRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentRunClient) MapCreateBulk(slice any, setFunc func(*AgentRunCreate, int)) *AgentRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentRunCreateBulk{err: fmt.Errorf("calling to AgentRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentRun.
func (c *AgentRunClient) Update() *AgentRunUpdate {
	mutation := newAgentRunMutation(c.config, OpUpdate)
	return &AgentRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentRunClient) UpdateOne(_m *AgentRun) *AgentRunUpdateOne {
	mutation := newAgentRunMutation(c.config, OpUpdateOne, withAgentRun(_m))
	return &AgentRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentRunClient) UpdateOneID(id string) *AgentRunUpdateOne {
	mutation := newAgentRunMutation(c.config, OpUpdateOne, withAgentRunID(id))
	return &AgentRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentRun.
func (c *AgentRunClient) Delete() *AgentRunDelete {
	mutation := newAgentRunMutation(c.config, OpDelete)
	return &AgentRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentRunClient) DeleteOne(_m *AgentRun) *AgentRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentRunClient) DeleteOneID(id string) *AgentRunDeleteOne {
	builder := c.Delete().Where(agentrun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentRunDeleteOne{builder}
}

// Query returns a query builder for AgentRun.
func (c *AgentRunClient) Query() *AgentRunQuery {
	return &AgentRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentRun},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentRun entity by its id.
func (c *AgentRunClient) Get(ctx context.Context, id string) (*AgentRun, error) {
	return c.Query().Where(agentrun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentRunClient) GetX(ctx context.Context, id string) *AgentRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AgentRunClient) Hooks() []Hook {
	return c.hooks.AgentRun
}

// Interceptors returns the client interceptors.
func (c *AgentRunClient) Interceptors() []Interceptor {
	return c.inters.AgentRun
}

func (c *AgentRunClient) mutate(ctx context.Context, m *AgentRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentRun mutation op: %q", m.Op())
	}
}

// AuditEventClient is a client for the AuditEvent schema.
type AuditEventClient struct {
	config
}

// NewAuditEventClient returns a client for the AuditEvent from the given config.
func NewAuditEventClient(c config) *AuditEventClient {
	return &AuditEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `auditevent.Hooks(f(g(h())))`.
func (c *AuditEventClient) Use(hooks ...Hook) {
	c.hooks.AuditEvent = append(c.hooks.AuditEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `auditevent.Intercept(f(g(h())))`.
func (c *AuditEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AuditEvent = append(c.inters.AuditEvent, interceptors...)
}

// Create returns a builder for creating a AuditEvent entity.
func (c *AuditEventClient) Create() *AuditEventCreate {
	mutation := newAuditEventMutation(c.config, OpCreate)
	return &AuditEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AuditEvent entities.
func (c *AuditEventClient) CreateBulk(builders ...*AuditEventCreate) *AuditEventCreateBulk {
	return &AuditEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuditEventClient) MapCreateBulk(slice any, setFunc func(*AuditEventCreate, int)) *AuditEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuditEventCreateBulk{err: fmt.Errorf("calling to AuditEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuditEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuditEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AuditEvent.
func (c *AuditEventClient) Update() *AuditEventUpdate {
	mutation := newAuditEventMutation(c.config, OpUpdate)
	return &AuditEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuditEventClient) UpdateOne(_m *AuditEvent) *AuditEventUpdateOne {
	mutation := newAuditEventMutation(c.config, OpUpdateOne, withAuditEvent(_m))
	return &AuditEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuditEventClient) UpdateOneID(id string) *AuditEventUpdateOne {
	mutation := newAuditEventMutation(c.config, OpUpdateOne, withAuditEventID(id))
	return &AuditEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AuditEvent.
func (c *AuditEventClient) Delete() *AuditEventDelete {
	mutation := newAuditEventMutation(c.config, OpDelete)
	return &AuditEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuditEventClient) DeleteOne(_m *AuditEvent) *AuditEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuditEventClient) DeleteOneID(id string) *AuditEventDeleteOne {
	builder := c.Delete().Where(auditevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuditEventDeleteOne{builder}
}

// Query returns a query builder for AuditEvent.
func (c *AuditEventClient) Query() *AuditEventQuery {
	return &AuditEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAuditEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AuditEvent entity by its id.
func (c *AuditEventClient) Get(ctx context.Context, id string) (*AuditEvent, error) {
	return c.Query().Where(auditevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuditEventClient) GetX(ctx context.Context, id string) *AuditEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AuditEventClient) Hooks() []Hook {
	return c.hooks.AuditEvent
}

// Interceptors returns the client interceptors.
func (c *AuditEventClient) Interceptors() []Interceptor {
	return c.inters.AuditEvent
}

func (c *AuditEventClient) mutate(ctx context.Context, m *AuditEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuditEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuditEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuditEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuditEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AuditEvent mutation op: %q", m.Op())
	}
}

// ImpersonationJTIClient is a client for the ImpersonationJTI schema.
type ImpersonationJTIClient struct {
	config
}

// NewImpersonationJTIClient returns a client for the ImpersonationJTI from the given config.
func NewImpersonationJTIClient(c config) *ImpersonationJTIClient {
	return &ImpersonationJTIClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `impersonationjti.Hooks(f(g(h())))`.
func (c *ImpersonationJTIClient) Use(hooks ...Hook) {
	c.hooks.ImpersonationJTI = append(c.hooks.ImpersonationJTI, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `impersonationjti.Intercept(f(g(h())))`.
func (c *ImpersonationJTIClient) Intercept(interceptors ...Interceptor) {
	c.inters.ImpersonationJTI = append(c.inters.ImpersonationJTI, interceptors...)
}

// Create returns a builder for creating a ImpersonationJTI entity.
func (c *ImpersonationJTIClient) Create() *ImpersonationJTICreate {
	mutation := newImpersonationJTIMutation(c.config, OpCreate)
	return &ImpersonationJTICreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ImpersonationJTI entities.
func (c *ImpersonationJTIClient) CreateBulk(builders ...*ImpersonationJTICreate) *ImpersonationJTICreateBulk {
	return &ImpersonationJTICreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ImpersonationJTIClient) MapCreateBulk(slice any, setFunc func(*ImpersonationJTICreate, int)) *ImpersonationJTICreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ImpersonationJTICreateBulk{err: fmt.Errorf("calling to ImpersonationJTIClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ImpersonationJTICreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ImpersonationJTICreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ImpersonationJTI.
func (c *ImpersonationJTIClient) Update() *ImpersonationJTIUpdate {
	mutation := newImpersonationJTIMutation(c.config, OpUpdate)
	return &ImpersonationJTIUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ImpersonationJTIClient) UpdateOne(_m *ImpersonationJTI) *ImpersonationJTIUpdateOne {
	mutation := newImpersonationJTIMutation(c.config, OpUpdateOne, withImpersonationJTI(_m))
	return &ImpersonationJTIUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ImpersonationJTIClient) UpdateOneID(id string) *ImpersonationJTIUpdateOne {
	mutation := newImpersonationJTIMutation(c.config, OpUpdateOne, withImpersonationJTIID(id))
	return &ImpersonationJTIUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ImpersonationJTI.
func (c *ImpersonationJTIClient) Delete() *ImpersonationJTIDelete {
	mutation := newImpersonationJTIMutation(c.config, OpDelete)
	return &ImpersonationJTIDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ImpersonationJTIClient) DeleteOne(_m *ImpersonationJTI) *ImpersonationJTIDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ImpersonationJTIClient) DeleteOneID(id string) *ImpersonationJTIDeleteOne {
	builder := c.Delete().Where(impersonationjti.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ImpersonationJTIDeleteOne{builder}
}

// Query returns a query builder for ImpersonationJTI.
func (c *ImpersonationJTIClient) Query() *ImpersonationJTIQuery {
	return &ImpersonationJTIQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeImpersonationJTI},
		inters: c.Interceptors(),
	}
}

// Get returns a ImpersonationJTI entity by its id.
func (c *ImpersonationJTIClient) Get(ctx context.Context, id string) (*ImpersonationJTI, error) {
	return c.Query().Where(impersonationjti.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ImpersonationJTIClient) GetX(ctx context.Context, id string) *ImpersonationJTI {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ImpersonationJTIClient) Hooks() []Hook {
	return c.hooks.ImpersonationJTI
}

// Interceptors returns the client interceptors.
func (c *ImpersonationJTIClient) Interceptors() []Interceptor {
	return c.inters.ImpersonationJTI
}

func (c *ImpersonationJTIClient) mutate(ctx context.Context, m *ImpersonationJTIMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ImpersonationJTICreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ImpersonationJTIUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ImpersonationJTIUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ImpersonationJTIDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ImpersonationJTI mutation op: %q", m.Op())
	}
}

// IntegrationSchemaClient is a client for the IntegrationSchema schema.
type IntegrationSchemaClient struct {
	config
}

// NewIntegrationSchemaClient returns a client for the IntegrationSchema from the given config.
func NewIntegrationSchemaClient(c config) *IntegrationSchemaClient {
	return &IntegrationSchemaClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `integrationschema.Hooks(f(g(h())))`.
func (c *IntegrationSchemaClient) Use(hooks ...Hook) {
	c.hooks.IntegrationSchema = append(c.hooks.IntegrationSchema, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `integrationschema.Intercept(f(g(h())))`.
func (c *IntegrationSchemaClient) Intercept(interceptors ...Interceptor) {
	c.inters.IntegrationSchema = append(c.inters.IntegrationSchema, interceptors...)
}

// Create returns a builder for creating a IntegrationSchema entity.
func (c *IntegrationSchemaClient) Create() *IntegrationSchemaCreate {
	mutation := newIntegrationSchemaMutation(c.config, OpCreate)
	return &IntegrationSchemaCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of IntegrationSchema entities.
func (c *IntegrationSchemaClient) CreateBulk(builders ...*IntegrationSchemaCreate) *IntegrationSchemaCreateBulk {
	return &IntegrationSchemaCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *IntegrationSchemaClient) MapCreateBulk(slice any, setFunc func(*IntegrationSchemaCreate, int)) *IntegrationSchemaCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &IntegrationSchemaCreateBulk{err: fmt.Errorf("calling to IntegrationSchemaClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*IntegrationSchemaCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &IntegrationSchemaCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for IntegrationSchema.
func (c *IntegrationSchemaClient) Update() *IntegrationSchemaUpdate {
	mutation := newIntegrationSchemaMutation(c.config, OpUpdate)
	return &IntegrationSchemaUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *IntegrationSchemaClient) UpdateOne(_m *IntegrationSchema) *IntegrationSchemaUpdateOne {
	mutation := newIntegrationSchemaMutation(c.config, OpUpdateOne, withIntegrationSchema(_m))
	return &IntegrationSchemaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *IntegrationSchemaClient) UpdateOneID(id string) *IntegrationSchemaUpdateOne {
	mutation := newIntegrationSchemaMutation(c.config, OpUpdateOne, withIntegrationSchemaID(id))
	return &IntegrationSchemaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for IntegrationSchema.
func (c *IntegrationSchemaClient) Delete() *IntegrationSchemaDelete {
	mutation := newIntegrationSchemaMutation(c.config, OpDelete)
	return &IntegrationSchemaDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *IntegrationSchemaClient) DeleteOne(_m *IntegrationSchema) *IntegrationSchemaDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *IntegrationSchemaClient) DeleteOneID(id string) *IntegrationSchemaDeleteOne {
	builder := c.Delete().Where(integrationschema.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &IntegrationSchemaDeleteOne{builder}
}

// Query returns a query builder for IntegrationSchema.
func (c *IntegrationSchemaClient) Query() *IntegrationSchemaQuery {
	return &IntegrationSchemaQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeIntegrationSchema},
		inters: c.Interceptors(),
	}
}

// Get returns a IntegrationSchema entity by its id.
func (c *IntegrationSchemaClient) Get(ctx context.Context, id string) (*IntegrationSchema, error) {
	return c.Query().Where(integrationschema.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *IntegrationSchemaClient) GetX(ctx context.Context, id string) *IntegrationSchema {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *IntegrationSchemaClient) Hooks() []Hook {
	return c.hooks.IntegrationSchema
}

// Interceptors returns the client interceptors.
func (c *IntegrationSchemaClient) Interceptors() []Interceptor {
	return c.inters.IntegrationSchema
}

func (c *IntegrationSchemaClient) mutate(ctx context.Context, m *IntegrationSchemaMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&IntegrationSchemaCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&IntegrationSchemaUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&IntegrationSchemaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&IntegrationSchemaDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown IntegrationSchema mutation op: %q", m.Op())
	}
}

// NodeConfigClient is a client for the NodeConfig schema.
type NodeConfigClient struct {
	config
}

// NewNodeConfigClient returns a client for the NodeConfig from the given config.
func NewNodeConfigClient(c config) *NodeConfigClient {
	return &NodeConfigClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `nodeconfig.Hooks(f(g(h())))`.
func (c *NodeConfigClient) Use(hooks ...Hook) {
	c.hooks.NodeConfig = append(c.hooks.NodeConfig, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `nodeconfig.Intercept(f(g(h())))`.
func (c *NodeConfigClient) Intercept(interceptors ...Interceptor) {
	c.inters.NodeConfig = append(c.inters.NodeConfig, interceptors...)
}

// Create returns a builder for creating a NodeConfig entity.
func (c *NodeConfigClient) Create() *NodeConfigCreate {
	mutation := newNodeConfigMutation(c.config, OpCreate)
	return &NodeConfigCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of NodeConfig entities.
func (c *NodeConfigClient) CreateBulk(builders ...*NodeConfigCreate) *NodeConfigCreateBulk {
	return &NodeConfigCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *NodeConfigClient) MapCreateBulk(slice any, setFunc func(*NodeConfigCreate, int)) *NodeConfigCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &NodeConfigCreateBulk{err: fmt.Errorf("calling to NodeConfigClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*NodeConfigCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &NodeConfigCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for NodeConfig.
func (c *NodeConfigClient) Update() *NodeConfigUpdate {
	mutation := newNodeConfigMutation(c.config, OpUpdate)
	return &NodeConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *NodeConfigClient) UpdateOne(_m *NodeConfig) *NodeConfigUpdateOne {
	mutation := newNodeConfigMutation(c.config, OpUpdateOne, withNodeConfig(_m))
	return &NodeConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *NodeConfigClient) UpdateOneID(id string) *NodeConfigUpdateOne {
	mutation := newNodeConfigMutation(c.config, OpUpdateOne, withNodeConfigID(id))
	return &NodeConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for NodeConfig.
func (c *NodeConfigClient) Delete() *NodeConfigDelete {
	mutation := newNodeConfigMutation(c.config, OpDelete)
	return &NodeConfigDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *NodeConfigClient) DeleteOne(_m *NodeConfig) *NodeConfigDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *NodeConfigClient) DeleteOneID(id string) *NodeConfigDeleteOne {
	builder := c.Delete().Where(nodeconfig.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &NodeConfigDeleteOne{builder}
}

// Query returns a query builder for NodeConfig.
func (c *NodeConfigClient) Query() *NodeConfigQuery {
	return &NodeConfigQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeNodeConfig},
		inters: c.Interceptors(),
	}
}

// Get returns a NodeConfig entity by its id.
func (c *NodeConfigClient) Get(ctx context.Context, id string) (*NodeConfig, error) {
	return c.Query().Where(nodeconfig.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *NodeConfigClient) GetX(ctx context.Context, id string) *NodeConfig {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *NodeConfigClient) Hooks() []Hook {
	return c.hooks.NodeConfig
}

// Interceptors returns the client interceptors.
func (c *NodeConfigClient) Interceptors() []Interceptor {
	return c.inters.NodeConfig
}

func (c *NodeConfigClient) mutate(ctx context.Context, m *NodeConfigMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&NodeConfigCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&NodeConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&NodeConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&NodeConfigDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown NodeConfig mutation op: %q", m.Op())
	}
}

// NodeConfigHistoryClient is a client for the NodeConfigHistory schema.
type NodeConfigHistoryClient struct {
	config
}

// NewNodeConfigHistoryClient returns a client for the NodeConfigHistory from the given config.
func NewNodeConfigHistoryClient(c config) *NodeConfigHistoryClient {
	return &NodeConfigHistoryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `nodeconfighistory.Hooks(f(g(h())))`.
func (c *NodeConfigHistoryClient) Use(hooks ...Hook) {
	c.hooks.NodeConfigHistory = append(c.hooks.NodeConfigHistory, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `nodeconfighistory.Intercept(f(g(h())))`.
func (c *NodeConfigHistoryClient) Intercept(interceptors ...Interceptor) {
	c.inters.NodeConfigHistory = append(c.inters.NodeConfigHistory, interceptors...)
}

// Create returns a builder for creating a NodeConfigHistory entity.
func (c *NodeConfigHistoryClient) Create() *NodeConfigHistoryCreate {
	mutation := newNodeConfigHistoryMutation(c.config, OpCreate)
	return &NodeConfigHistoryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of NodeConfigHistory entities.
func (c *NodeConfigHistoryClient) CreateBulk(builders ...*NodeConfigHistoryCreate) *NodeConfigHistoryCreateBulk {
	return &NodeConfigHistoryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *NodeConfigHistoryClient) MapCreateBulk(slice any, setFunc func(*NodeConfigHistoryCreate, int)) *NodeConfigHistoryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &NodeConfigHistoryCreateBulk{err: fmt.Errorf("calling to NodeConfigHistoryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*NodeConfigHistoryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &NodeConfigHistoryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for NodeConfigHistory.
func (c *NodeConfigHistoryClient) Update() *NodeConfigHistoryUpdate {
	mutation := newNodeConfigHistoryMutation(c.config, OpUpdate)
	return &NodeConfigHistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *NodeConfigHistoryClient) UpdateOne(_m *NodeConfigHistory) *NodeConfigHistoryUpdateOne {
	mutation := newNodeConfigHistoryMutation(c.config, OpUpdateOne, withNodeConfigHistory(_m))
	return &NodeConfigHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *NodeConfigHistoryClient) UpdateOneID(id string) *NodeConfigHistoryUpdateOne {
	mutation := newNodeConfigHistoryMutation(c.config, OpUpdateOne, withNodeConfigHistoryID(id))
	return &NodeConfigHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for NodeConfigHistory.
func (c *NodeConfigHistoryClient) Delete() *NodeConfigHistoryDelete {
	mutation := newNodeConfigHistoryMutation(c.config, OpDelete)
	return &NodeConfigHistoryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *NodeConfigHistoryClient) DeleteOne(_m *NodeConfigHistory) *NodeConfigHistoryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *NodeConfigHistoryClient) DeleteOneID(id string) *NodeConfigHistoryDeleteOne {
	builder := c.Delete().Where(nodeconfighistory.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &NodeConfigHistoryDeleteOne{builder}
}

// Query returns a query builder for NodeConfigHistory.
func (c *NodeConfigHistoryClient) Query() *NodeConfigHistoryQuery {
	return &NodeConfigHistoryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeNodeConfigHistory},
		inters: c.Interceptors(),
	}
}

// Get returns a NodeConfigHistory entity by its id.
func (c *NodeConfigHistoryClient) Get(ctx context.Context, id string) (*NodeConfigHistory, error) {
	return c.Query().Where(nodeconfighistory.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *NodeConfigHistoryClient) GetX(ctx context.Context, id string) *NodeConfigHistory {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *NodeConfigHistoryClient) Hooks() []Hook {
	return c.hooks.NodeConfigHistory
}

// Interceptors returns the client interceptors.
func (c *NodeConfigHistoryClient) Interceptors() []Interceptor {
	return c.inters.NodeConfigHistory
}

func (c *NodeConfigHistoryClient) mutate(ctx context.Context, m *NodeConfigHistoryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&NodeConfigHistoryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&NodeConfigHistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&NodeConfigHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&NodeConfigHistoryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown NodeConfigHistory mutation op: %q", m.Op())
	}
}

// OrgAdminTokenClient is a client for the OrgAdminToken schema.
type OrgAdminTokenClient struct {
	config
}

// NewOrgAdminTokenClient returns a client for the OrgAdminToken from the given config.
func NewOrgAdminTokenClient(c config) *OrgAdminTokenClient {
	return &OrgAdminTokenClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `orgadmintoken.Hooks(f(g(h())))`.
func (c *OrgAdminTokenClient) Use(hooks ...Hook) {
	c.hooks.OrgAdminToken = append(c.hooks.OrgAdminToken, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `orgadmintoken.Intercept(f(g(h())))`.
func (c *OrgAdminTokenClient) Intercept(interceptors ...Interceptor) {
	c.inters.OrgAdminToken = append(c.inters.OrgAdminToken, interceptors...)
}

// Create returns a builder for creating a OrgAdminToken entity.
func (c *OrgAdminTokenClient) Create() *OrgAdminTokenCreate {
	mutation := newOrgAdminTokenMutation(c.config, OpCreate)
	return &OrgAdminTokenCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OrgAdminToken entities.
func (c *OrgAdminTokenClient) CreateBulk(builders ...*OrgAdminTokenCreate) *OrgAdminTokenCreateBulk {
	return &OrgAdminTokenCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OrgAdminTokenClient) MapCreateBulk(slice any, setFunc func(*OrgAdminTokenCreate, int)) *OrgAdminTokenCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OrgAdminTokenCreateBulk{err: fmt.Errorf("calling to OrgAdminTokenClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OrgAdminTokenCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OrgAdminTokenCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OrgAdminToken.
func (c *OrgAdminTokenClient) Update() *OrgAdminTokenUpdate {
	mutation := newOrgAdminTokenMutation(c.config, OpUpdate)
	return &OrgAdminTokenUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OrgAdminTokenClient) UpdateOne(_m *OrgAdminToken) *OrgAdminTokenUpdateOne {
	mutation := newOrgAdminTokenMutation(c.config, OpUpdateOne, withOrgAdminToken(_m))
	return &OrgAdminTokenUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OrgAdminTokenClient) UpdateOneID(id string) *OrgAdminTokenUpdateOne {
	mutation := newOrgAdminTokenMutation(c.config, OpUpdateOne, withOrgAdminTokenID(id))
	return &OrgAdminTokenUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OrgAdminToken.
func (c *OrgAdminTokenClient) Delete() *OrgAdminTokenDelete {
	mutation := newOrgAdminTokenMutation(c.config, OpDelete)
	return &OrgAdminTokenDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OrgAdminTokenClient) DeleteOne(_m *OrgAdminToken) *OrgAdminTokenDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OrgAdminTokenClient) DeleteOneID(id string) *OrgAdminTokenDeleteOne {
	builder := c.Delete().Where(orgadmintoken.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OrgAdminTokenDeleteOne{builder}
}

// Query returns a query builder for OrgAdminToken.
func (c *OrgAdminTokenClient) Query() *OrgAdminTokenQuery {
	return &OrgAdminTokenQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOrgAdminToken},
		inters: c.Interceptors(),
	}
}

// Get returns a OrgAdminToken entity by its id.
func (c *OrgAdminTokenClient) Get(ctx context.Context, id string) (*OrgAdminToken, error) {
	return c.Query().Where(orgadmintoken.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OrgAdminTokenClient) GetX(ctx context.Context, id string) *OrgAdminToken {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *OrgAdminTokenClient) Hooks() []Hook {
	return c.hooks.OrgAdminToken
}

// Interceptors returns the client interceptors.
func (c *OrgAdminTokenClient) Interceptors() []Interceptor {
	return c.inters.OrgAdminToken
}

func (c *OrgAdminTokenClient) mutate(ctx context.Context, m *OrgAdminTokenMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OrgAdminTokenCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OrgAdminTokenUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OrgAdminTokenUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OrgAdminTokenDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OrgAdminToken mutation op: %q", m.Op())
	}
}

// OrgNodeClient is a client for the OrgNode schema.
type OrgNodeClient struct {
	config
}

// NewOrgNodeClient returns a client for the OrgNode from the given config.
func NewOrgNodeClient(c config) *OrgNodeClient {
	return &OrgNodeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `orgnode.Hooks(f(g(h())))`.
func (c *OrgNodeClient) Use(hooks ...Hook) {
	c.hooks.OrgNode = append(c.hooks.OrgNode, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `orgnode.Intercept(f(g(h())))`.
func (c *OrgNodeClient) Intercept(interceptors ...Interceptor) {
	c.inters.OrgNode = append(c.inters.OrgNode, interceptors...)
}

// Create returns a builder for creating a OrgNode entity.
func (c *OrgNodeClient) Create() *OrgNodeCreate {
	mutation := newOrgNodeMutation(c.config, OpCreate)
	return &OrgNodeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OrgNode entities.
func (c *OrgNodeClient) CreateBulk(builders ...*OrgNodeCreate) *OrgNodeCreateBulk {
	return &OrgNodeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OrgNodeClient) MapCreateBulk(slice any, setFunc func(*OrgNodeCreate, int)) *OrgNodeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OrgNodeCreateBulk{err: fmt.Errorf("calling to OrgNodeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OrgNodeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OrgNodeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OrgNode.
func (c *OrgNodeClient) Update() *OrgNodeUpdate {
	mutation := newOrgNodeMutation(c.config, OpUpdate)
	return &OrgNodeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OrgNodeClient) UpdateOne(_m *OrgNode) *OrgNodeUpdateOne {
	mutation := newOrgNodeMutation(c.config, OpUpdateOne, withOrgNode(_m))
	return &OrgNodeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OrgNodeClient) UpdateOneID(id string) *OrgNodeUpdateOne {
	mutation := newOrgNodeMutation(c.config, OpUpdateOne, withOrgNodeID(id))
	return &OrgNodeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OrgNode.
func (c *OrgNodeClient) Delete() *OrgNodeDelete {
	mutation := newOrgNodeMutation(c.config, OpDelete)
	return &OrgNodeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OrgNodeClient) DeleteOne(_m *OrgNode) *OrgNodeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OrgNodeClient) DeleteOneID(id string) *OrgNodeDeleteOne {
	builder := c.Delete().Where(orgnode.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OrgNodeDeleteOne{builder}
}

// Query returns a query builder for OrgNode.
func (c *OrgNodeClient) Query() *OrgNodeQuery {
	return &OrgNodeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOrgNode},
		inters: c.Interceptors(),
	}
}

// Get returns a OrgNode entity by its id.
func (c *OrgNodeClient) Get(ctx context.Context, id string) (*OrgNode, error) {
	return c.Query().Where(orgnode.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OrgNodeClient) GetX(ctx context.Context, id string) *OrgNode {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *OrgNodeClient) Hooks() []Hook {
	return c.hooks.OrgNode
}

// Interceptors returns the client interceptors.
func (c *OrgNodeClient) Interceptors() []Interceptor {
	return c.inters.OrgNode
}

func (c *OrgNodeClient) mutate(ctx context.Context, m *OrgNodeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OrgNodeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OrgNodeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OrgNodeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OrgNodeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OrgNode mutation op: %q", m.Op())
	}
}

// ProvisioningRunClient is a client for the ProvisioningRun schema.
type ProvisioningRunClient struct {
	config
}

// NewProvisioningRunClient returns a client for the ProvisioningRun from the given config.
func NewProvisioningRunClient(c config) *ProvisioningRunClient {
	return &ProvisioningRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `provisioningrun.Hooks(f(g(h())))`.
func (c *ProvisioningRunClient) Use(hooks ...Hook) {
	c.hooks.ProvisioningRun = append(c.hooks.ProvisioningRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `provisioningrun.Intercept(f(g(h())))`.
func (c *ProvisioningRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProvisioningRun = append(c.inters.ProvisioningRun, interceptors...)
}

// Create returns a builder for creating a ProvisioningRun entity.
func (c *ProvisioningRunClient) Create() *ProvisioningRunCreate {
	mutation := newProvisioningRunMutation(c.config, OpCreate)
	return &ProvisioningRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProvisioningRun entities.
func (c *ProvisioningRunClient) CreateBulk(builders ...*ProvisioningRunCreate) *ProvisioningRunCreateBulk {
	return &ProvisioningRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProvisioningRunClient) MapCreateBulk(slice any, setFunc func(*ProvisioningRunCreate, int)) *ProvisioningRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProvisioningRunCreateBulk{err: fmt.Errorf("calling to ProvisioningRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProvisioningRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProvisioningRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProvisioningRun.
func (c *ProvisioningRunClient) Update() *ProvisioningRunUpdate {
	mutation := newProvisioningRunMutation(c.config, OpUpdate)
	return &ProvisioningRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProvisioningRunClient) UpdateOne(_m *ProvisioningRun) *ProvisioningRunUpdateOne {
	mutation := newProvisioningRunMutation(c.config, OpUpdateOne, withProvisioningRun(_m))
	return &ProvisioningRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProvisioningRunClient) UpdateOneID(id string) *ProvisioningRunUpdateOne {
	mutation := newProvisioningRunMutation(c.config, OpUpdateOne, withProvisioningRunID(id))
	return &ProvisioningRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProvisioningRun.
func (c *ProvisioningRunClient) Delete() *ProvisioningRunDelete {
	mutation := newProvisioningRunMutation(c.config, OpDelete)
	return &ProvisioningRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProvisioningRunClient) DeleteOne(_m *ProvisioningRun) *ProvisioningRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProvisioningRunClient) DeleteOneID(id string) *ProvisioningRunDeleteOne {
	builder := c.Delete().Where(provisioningrun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProvisioningRunDeleteOne{builder}
}

// Query returns a query builder for ProvisioningRun.
func (c *ProvisioningRunClient) Query() *ProvisioningRunQuery {
	return &ProvisioningRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProvisioningRun},
		inters: c.Interceptors(),
	}
}

// Get returns a ProvisioningRun entity by its id.
func (c *ProvisioningRunClient) Get(ctx context.Context, id string) (*ProvisioningRun, error) {
	return c.Query().Where(provisioningrun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProvisioningRunClient) GetX(ctx context.Context, id string) *ProvisioningRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProvisioningRunClient) Hooks() []Hook {
	return c.hooks.ProvisioningRun
}

// Interceptors returns the client interceptors.
func (c *ProvisioningRunClient) Interceptors() []Interceptor {
	return c.inters.ProvisioningRun
}

func (c *ProvisioningRunClient) mutate(ctx context.Context, m *ProvisioningRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProvisioningRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProvisioningRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProvisioningRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProvisioningRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProvisioningRun mutation op: %q", m.Op())
	}
}

// RoutingKeyClient is a client for the RoutingKey schema.
type RoutingKeyClient struct {
	config
}

// NewRoutingKeyClient returns a client for the RoutingKey from the given config.
func NewRoutingKeyClient(c config) *RoutingKeyClient {
	return &RoutingKeyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `routingkey.Hooks(f(g(h())))`.
func (c *RoutingKeyClient) Use(hooks ...Hook) {
	c.hooks.RoutingKey = append(c.hooks.RoutingKey, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `routingkey.Intercept(f(g(h())))`.
func (c *RoutingKeyClient) Intercept(interceptors ...Interceptor) {
	c.inters.RoutingKey = append(c.inters.RoutingKey, interceptors...)
}

// Create returns a builder for creating a RoutingKey entity.
func (c *RoutingKeyClient) Create() *RoutingKeyCreate {
	mutation := newRoutingKeyMutation(c.config, OpCreate)
	return &RoutingKeyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RoutingKey entities.
func (c *RoutingKeyClient) CreateBulk(builders ...*RoutingKeyCreate) *RoutingKeyCreateBulk {
	return &RoutingKeyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RoutingKeyClient) MapCreateBulk(slice any, setFunc func(*RoutingKeyCreate, int)) *RoutingKeyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RoutingKeyCreateBulk{err: fmt.Errorf("calling to RoutingKeyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RoutingKeyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RoutingKeyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RoutingKey.
func (c *RoutingKeyClient) Update() *RoutingKeyUpdate {
	mutation := newRoutingKeyMutation(c.config, OpUpdate)
	return &RoutingKeyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RoutingKeyClient) UpdateOne(_m *RoutingKey) *RoutingKeyUpdateOne {
	mutation := newRoutingKeyMutation(c.config, OpUpdateOne, withRoutingKey(_m))
	return &RoutingKeyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RoutingKeyClient) UpdateOneID(id string) *RoutingKeyUpdateOne {
	mutation := newRoutingKeyMutation(c.config, OpUpdateOne, withRoutingKeyID(id))
	return &RoutingKeyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RoutingKey.
func (c *RoutingKeyClient) Delete() *RoutingKeyDelete {
	mutation := newRoutingKeyMutation(c.config, OpDelete)
	return &RoutingKeyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RoutingKeyClient) DeleteOne(_m *RoutingKey) *RoutingKeyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RoutingKeyClient) DeleteOneID(id string) *RoutingKeyDeleteOne {
	builder := c.Delete().Where(routingkey.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RoutingKeyDeleteOne{builder}
}

// Query returns a query builder for RoutingKey.
func (c *RoutingKeyClient) Query() *RoutingKeyQuery {
	return &RoutingKeyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRoutingKey},
		inters: c.Interceptors(),
	}
}

// Get returns a RoutingKey entity by its id.
func (c *RoutingKeyClient) Get(ctx context.Context, id string) (*RoutingKey, error) {
	return c.Query().Where(routingkey.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RoutingKeyClient) GetX(ctx context.Context, id string) *RoutingKey {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RoutingKeyClient) Hooks() []Hook {
	return c.hooks.RoutingKey
}

// Interceptors returns the client interceptors.
func (c *RoutingKeyClient) Interceptors() []Interceptor {
	return c.inters.RoutingKey
}

func (c *RoutingKeyClient) mutate(ctx context.Context, m *RoutingKeyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RoutingKeyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RoutingKeyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RoutingKeyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RoutingKeyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RoutingKey mutation op: %q", m.Op())
	}
}

// ScheduledJobClient is a client for the ScheduledJob schema.
type ScheduledJobClient struct {
	config
}

// NewScheduledJobClient returns a client for the ScheduledJob from the given config.
func NewScheduledJobClient(c config) *ScheduledJobClient {
	return &ScheduledJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `scheduledjob.Hooks(f(g(h())))`.
func (c *ScheduledJobClient) Use(hooks ...Hook) {
	c.hooks.ScheduledJob = append(c.hooks.ScheduledJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `scheduledjob.Intercept(f(g(h())))`.
func (c *ScheduledJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.ScheduledJob = append(c.inters.ScheduledJob, interceptors...)
}

// Create returns a builder for creating a ScheduledJob entity.
func (c *ScheduledJobClient) Create() *ScheduledJobCreate {
	mutation := newScheduledJobMutation(c.config, OpCreate)
	return &ScheduledJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ScheduledJob entities.
func (c *ScheduledJobClient) CreateBulk(builders ...*ScheduledJobCreate) *ScheduledJobCreateBulk {
	return &ScheduledJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ScheduledJobClient) MapCreateBulk(slice any, setFunc func(*ScheduledJobCreate, int)) *ScheduledJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ScheduledJobCreateBulk{err: fmt.Errorf("calling to ScheduledJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ScheduledJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ScheduledJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ScheduledJob.
func (c *ScheduledJobClient) Update() *ScheduledJobUpdate {
	mutation := newScheduledJobMutation(c.config, OpUpdate)
	return &ScheduledJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ScheduledJobClient) UpdateOne(_m *ScheduledJob) *ScheduledJobUpdateOne {
	mutation := newScheduledJobMutation(c.config, OpUpdateOne, withScheduledJob(_m))
	return &ScheduledJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ScheduledJobClient) UpdateOneID(id string) *ScheduledJobUpdateOne {
	mutation := newScheduledJobMutation(c.config, OpUpdateOne, withScheduledJobID(id))
	return &ScheduledJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ScheduledJob.
func (c *ScheduledJobClient) Delete() *ScheduledJobDelete {
	mutation := newScheduledJobMutation(c.config, OpDelete)
	return &ScheduledJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ScheduledJobClient) DeleteOne(_m *ScheduledJob) *ScheduledJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ScheduledJobClient) DeleteOneID(id string) *ScheduledJobDeleteOne {
	builder := c.Delete().Where(scheduledjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ScheduledJobDeleteOne{builder}
}

// Query returns a query builder for ScheduledJob.
func (c *ScheduledJobClient) Query() *ScheduledJobQuery {
	return &ScheduledJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeScheduledJob},
		inters: c.Interceptors(),
	}
}

// Get returns a ScheduledJob entity by its id.
func (c *ScheduledJobClient) Get(ctx context.Context, id string) (*ScheduledJob, error) {
	return c.Query().Where(scheduledjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ScheduledJobClient) GetX(ctx context.Context, id string) *ScheduledJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ScheduledJobClient) Hooks() []Hook {
	return c.hooks.ScheduledJob
}

// Interceptors returns the client interceptors.
func (c *ScheduledJobClient) Interceptors() []Interceptor {
	return c.inters.ScheduledJob
}

func (c *ScheduledJobClient) mutate(ctx context.Context, m *ScheduledJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ScheduledJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ScheduledJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ScheduledJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ScheduledJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ScheduledJob mutation op: %q", m.Op())
	}
}

// TeamTokenClient is a client for the TeamToken schema.
type TeamTokenClient struct {
	config
}

// NewTeamTokenClient returns a client for the TeamToken from the given config.
func NewTeamTokenClient(c config) *TeamTokenClient {
	return &TeamTokenClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `teamtoken.Hooks(f(g(h())))`.
func (c *TeamTokenClient) Use(hooks ...Hook) {
	c.hooks.TeamToken = append(c.hooks.TeamToken, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `teamtoken.Intercept(f(g(h())))`.
func (c *TeamTokenClient) Intercept(interceptors ...Interceptor) {
	c.inters.TeamToken = append(c.inters.TeamToken, interceptors...)
}

// Create returns a builder for creating a TeamToken entity.
func (c *TeamTokenClient) Create() *TeamTokenCreate {
	mutation := newTeamTokenMutation(c.config, OpCreate)
	return &TeamTokenCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TeamToken entities.
func (c *TeamTokenClient) CreateBulk(builders ...*TeamTokenCreate) *TeamTokenCreateBulk {
	return &TeamTokenCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TeamTokenClient) MapCreateBulk(slice any, setFunc func(*TeamTokenCreate, int)) *TeamTokenCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TeamTokenCreateBulk{err: fmt.Errorf("calling to TeamTokenClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TeamTokenCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TeamTokenCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TeamToken.
func (c *TeamTokenClient) Update() *TeamTokenUpdate {
	mutation := newTeamTokenMutation(c.config, OpUpdate)
	return &TeamTokenUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TeamTokenClient) UpdateOne(_m *TeamToken) *TeamTokenUpdateOne {
	mutation := newTeamTokenMutation(c.config, OpUpdateOne, withTeamToken(_m))
	return &TeamTokenUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TeamTokenClient) UpdateOneID(id string) *TeamTokenUpdateOne {
	mutation := newTeamTokenMutation(c.config, OpUpdateOne, withTeamTokenID(id))
	return &TeamTokenUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TeamToken.
func (c *TeamTokenClient) Delete() *TeamTokenDelete {
	mutation := newTeamTokenMutation(c.config, OpDelete)
	return &TeamTokenDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TeamTokenClient) DeleteOne(_m *TeamToken) *TeamTokenDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TeamTokenClient) DeleteOneID(id string) *TeamTokenDeleteOne {
	builder := c.Delete().Where(teamtoken.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TeamTokenDeleteOne{builder}
}

// Query returns a query builder for TeamToken.
func (c *TeamTokenClient) Query() *TeamTokenQuery {
	return &TeamTokenQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTeamToken},
		inters: c.Interceptors(),
	}
}

// Get returns a TeamToken entity by its id.
func (c *TeamTokenClient) Get(ctx context.Context, id string) (*TeamToken, error) {
	return c.Query().Where(teamtoken.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TeamTokenClient) GetX(ctx context.Context, id string) *TeamToken {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TeamTokenClient) Hooks() []Hook {
	return c.hooks.TeamToken
}

// Interceptors returns the client interceptors.
func (c *TeamTokenClient) Interceptors() []Interceptor {
	return c.inters.TeamToken
}

func (c *TeamTokenClient) mutate(ctx context.Context, m *TeamTokenMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TeamTokenCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TeamTokenUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TeamTokenUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TeamTokenDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TeamToken mutation op: %q", m.Op())
	}
}

// TokenAuditClient is a client for the TokenAudit schema.
type TokenAuditClient struct {
	config
}

// NewTokenAuditClient returns a client for the TokenAudit from the given config.
func NewTokenAuditClient(c config) *TokenAuditClient {
	return &TokenAuditClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tokenaudit.Hooks(f(g(h())))`.
func (c *TokenAuditClient) Use(hooks ...Hook) {
	c.hooks.TokenAudit = append(c.hooks.TokenAudit, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tokenaudit.Intercept(f(g(h())))`.
func (c *TokenAuditClient) Intercept(interceptors ...Interceptor) {
	c.inters.TokenAudit = append(c.inters.TokenAudit, interceptors...)
}

// Create returns a builder for creating a TokenAudit entity.
func (c *TokenAuditClient) Create() *TokenAuditCreate {
	mutation := newTokenAuditMutation(c.config, OpCreate)
	return &TokenAuditCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TokenAudit entities.
func (c *TokenAuditClient) CreateBulk(builders ...*TokenAuditCreate) *TokenAuditCreateBulk {
	return &TokenAuditCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TokenAuditClient) MapCreateBulk(slice any, setFunc func(*TokenAuditCreate, int)) *TokenAuditCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TokenAuditCreateBulk{err: fmt.Errorf("calling to TokenAuditClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TokenAuditCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TokenAuditCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TokenAudit.
func (c *TokenAuditClient) Update() *TokenAuditUpdate {
	mutation := newTokenAuditMutation(c.config, OpUpdate)
	return &TokenAuditUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TokenAuditClient) UpdateOne(_m *TokenAudit) *TokenAuditUpdateOne {
	mutation := newTokenAuditMutation(c.config, OpUpdateOne, withTokenAudit(_m))
	return &TokenAuditUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TokenAuditClient) UpdateOneID(id string) *TokenAuditUpdateOne {
	mutation := newTokenAuditMutation(c.config, OpUpdateOne, withTokenAuditID(id))
	return &TokenAuditUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TokenAudit.
func (c *TokenAuditClient) Delete() *TokenAuditDelete {
	mutation := newTokenAuditMutation(c.config, OpDelete)
	return &TokenAuditDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TokenAuditClient) DeleteOne(_m *TokenAudit) *TokenAuditDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TokenAuditClient) DeleteOneID(id string) *TokenAuditDeleteOne {
	builder := c.Delete().Where(tokenaudit.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TokenAuditDeleteOne{builder}
}

// Query returns a query builder for TokenAudit.
func (c *TokenAuditClient) Query() *TokenAuditQuery {
	return &TokenAuditQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTokenAudit},
		inters: c.Interceptors(),
	}
}

// Get returns a TokenAudit entity by its id.
func (c *TokenAuditClient) Get(ctx context.Context, id string) (*TokenAudit, error) {
	return c.Query().Where(tokenaudit.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TokenAuditClient) GetX(ctx context.Context, id string) *TokenAudit {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TokenAuditClient) Hooks() []Hook {
	return c.hooks.TokenAudit
}

// Interceptors returns the client interceptors.
func (c *TokenAuditClient) Interceptors() []Interceptor {
	return c.inters.TokenAudit
}

func (c *TokenAuditClient) mutate(ctx context.Context, m *TokenAuditMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TokenAuditCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TokenAuditUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TokenAuditUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TokenAuditDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TokenAudit mutation op: %q", m.Op())
	}
}

// WebhookDeliveryClient is a client for the WebhookDelivery schema.
type WebhookDeliveryClient struct {
	config
}

// NewWebhookDeliveryClient returns a client for the WebhookDelivery from the given config.
func NewWebhookDeliveryClient(c config) *WebhookDeliveryClient {
	return &WebhookDeliveryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `webhookdelivery.Hooks(f(g(h())))`.
func (c *WebhookDeliveryClient) Use(hooks ...Hook) {
	c.hooks.WebhookDelivery = append(c.hooks.WebhookDelivery, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `webhookdelivery.Intercept(f(g(h())))`.
func (c *WebhookDeliveryClient) Intercept(interceptors ...Interceptor) {
	c.inters.WebhookDelivery = append(c.inters.WebhookDelivery, interceptors...)
}

// Create returns a builder for creating a WebhookDelivery entity.
func (c *WebhookDeliveryClient) Create() *WebhookDeliveryCreate {
	mutation := newWebhookDeliveryMutation(c.config, OpCreate)
	return &WebhookDeliveryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WebhookDelivery entities.
func (c *WebhookDeliveryClient) CreateBulk(builders ...*WebhookDeliveryCreate) *WebhookDeliveryCreateBulk {
	return &WebhookDeliveryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WebhookDeliveryClient) MapCreateBulk(slice any, setFunc func(*WebhookDeliveryCreate, int)) *WebhookDeliveryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WebhookDeliveryCreateBulk{err: fmt.Errorf("calling to WebhookDeliveryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WebhookDeliveryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WebhookDeliveryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WebhookDelivery.
func (c *WebhookDeliveryClient) Update() *WebhookDeliveryUpdate {
	mutation := newWebhookDeliveryMutation(c.config, OpUpdate)
	return &WebhookDeliveryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WebhookDeliveryClient) UpdateOne(_m *WebhookDelivery) *WebhookDeliveryUpdateOne {
	mutation := newWebhookDeliveryMutation(c.config, OpUpdateOne, withWebhookDelivery(_m))
	return &WebhookDeliveryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WebhookDeliveryClient) UpdateOneID(id string) *WebhookDeliveryUpdateOne {
	mutation := newWebhookDeliveryMutation(c.config, OpUpdateOne, withWebhookDeliveryID(id))
	return &WebhookDeliveryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WebhookDelivery.
func (c *WebhookDeliveryClient) Delete() *WebhookDeliveryDelete {
	mutation := newWebhookDeliveryMutation(c.config, OpDelete)
	return &WebhookDeliveryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WebhookDeliveryClient) DeleteOne(_m *WebhookDelivery) *WebhookDeliveryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WebhookDeliveryClient) DeleteOneID(id string) *WebhookDeliveryDeleteOne {
	builder := c.Delete().Where(webhookdelivery.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WebhookDeliveryDeleteOne{builder}
}

// Query returns a query builder for WebhookDelivery.
func (c *WebhookDeliveryClient) Query() *WebhookDeliveryQuery {
	return &WebhookDeliveryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWebhookDelivery},
		inters: c.Interceptors(),
	}
}

// Get returns a WebhookDelivery entity by its id.
func (c *WebhookDeliveryClient) Get(ctx context.Context, id string) (*WebhookDelivery, error) {
	return c.Query().Where(webhookdelivery.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WebhookDeliveryClient) GetX(ctx context.Context, id string) *WebhookDelivery {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WebhookDeliveryClient) Hooks() []Hook {
	return c.hooks.WebhookDelivery
}

// Interceptors returns the client interceptors.
func (c *WebhookDeliveryClient) Interceptors() []Interceptor {
	return c.inters.WebhookDelivery
}

func (c *WebhookDeliveryClient) mutate(ctx context.Context, m *WebhookDeliveryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WebhookDeliveryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WebhookDeliveryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WebhookDeliveryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WebhookDeliveryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WebhookDelivery mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		A2ATask, AgentRun, AuditEvent, ImpersonationJTI, IntegrationSchema, NodeConfig,
		NodeConfigHistory, OrgAdminToken, OrgNode, ProvisioningRun, RoutingKey,
		ScheduledJob, TeamToken, TokenAudit, WebhookDelivery []ent.Hook
	}
	inters struct {
		A2ATask, AgentRun, AuditEvent, ImpersonationJTI, IntegrationSchema, NodeConfig,
		NodeConfigHistory, OrgAdminToken, OrgNode, ProvisioningRun, RoutingKey,
		ScheduledJob, TeamToken, TokenAudit, WebhookDelivery []ent.Interceptor
	}
)
