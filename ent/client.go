// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/consilium-ai/consilium/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/consilium-ai/consilium/ent/agent"
	"github.com/consilium-ai/consilium/ent/agentoutput"
	"github.com/consilium-ai/consilium/ent/pipeline"
	"github.com/consilium-ai/consilium/ent/pipelinestep"
	"github.com/consilium-ai/consilium/ent/run"
	"github.com/consilium-ai/consilium/ent/runstep"
	"github.com/consilium-ai/consilium/ent/team"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Agent is the client for interacting with the Agent builders.
	Agent *AgentClient
	// AgentOutput is the client for interacting with the AgentOutput builders.
	AgentOutput *AgentOutputClient
	// Pipeline is the client for interacting with the Pipeline builders.
	Pipeline *PipelineClient
	// PipelineStep is the client for interacting with the PipelineStep builders.
	PipelineStep *PipelineStepClient
	// Run is the client for interacting with the Run builders.
	Run *RunClient
	// RunStep is the client for interacting with the RunStep builders.
	RunStep *RunStepClient
	// Team is the client for interacting with the Team builders.
	Team *TeamClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Agent = NewAgentClient(c.config)
	c.AgentOutput = NewAgentOutputClient(c.config)
	c.Pipeline = NewPipelineClient(c.config)
	c.PipelineStep = NewPipelineStepClient(c.config)
	c.Run = NewRunClient(c.config)
	c.RunStep = NewRunStepClient(c.config)
	c.Team = NewTeamClient(c.config)
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
		ctx:          ctx,
		config:       cfg,
		Agent:        NewAgentClient(cfg),
		AgentOutput:  NewAgentOutputClient(cfg),
		Pipeline:     NewPipelineClient(cfg),
		PipelineStep: NewPipelineStepClient(cfg),
		Run:          NewRunClient(cfg),
		RunStep:      NewRunStepClient(cfg),
		Team:         NewTeamClient(cfg),
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
		ctx:          ctx,
		config:       cfg,
		Agent:        NewAgentClient(cfg),
		AgentOutput:  NewAgentOutputClient(cfg),
		Pipeline:     NewPipelineClient(cfg),
		PipelineStep: NewPipelineStepClient(cfg),
		Run:          NewRunClient(cfg),
		RunStep:      NewRunStepClient(cfg),
		Team:         NewTeamClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Agent.
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
		c.Agent, c.AgentOutput, c.Pipeline, c.PipelineStep, c.Run, c.RunStep, c.Team,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Agent, c.AgentOutput, c.Pipeline, c.PipelineStep, c.Run, c.RunStep, c.Team,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentMutation:
		return c.Agent.mutate(ctx, m)
	case *AgentOutputMutation:
		return c.AgentOutput.mutate(ctx, m)
	case *PipelineMutation:
		return c.Pipeline.mutate(ctx, m)
	case *PipelineStepMutation:
		return c.PipelineStep.mutate(ctx, m)
	case *RunMutation:
		return c.Run.mutate(ctx, m)
	case *RunStepMutation:
		return c.RunStep.mutate(ctx, m)
	case *TeamMutation:
		return c.Team.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentClient is a client for the Agent schema.
type AgentClient struct {
	config
}

// NewAgentClient returns a client for the Agent from the given config.
func NewAgentClient(c config) *AgentClient {
	return &AgentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agent.Hooks(f(g(h())))`.
func (c *AgentClient) Use(hooks ...Hook) {
	c.hooks.Agent = append(c.hooks.Agent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agent.Intercept(f(g(h())))`.
func (c *AgentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Agent = append(c.inters.Agent, interceptors...)
}

// Create returns a builder for creating a Agent entity.
func (c *AgentClient) Create() *AgentCreate {
	mutation := newAgentMutation(c.config, OpCreate)
	return &AgentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Agent entities.
func (c *AgentClient) CreateBulk(builders ...*AgentCreate) *AgentCreateBulk {
	return &AgentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentClient) MapCreateBulk(slice any, setFunc func(*AgentCreate, int)) *AgentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentCreateBulk{err: fmt.Errorf("calling to AgentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Agent.
func (c *AgentClient) Update() *AgentUpdate {
	mutation := newAgentMutation(c.config, OpUpdate)
	return &AgentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentClient) UpdateOne(_m *Agent) *AgentUpdateOne {
	mutation := newAgentMutation(c.config, OpUpdateOne, withAgent(_m))
	return &AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentClient) UpdateOneID(id string) *AgentUpdateOne {
	mutation := newAgentMutation(c.config, OpUpdateOne, withAgentID(id))
	return &AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Agent.
func (c *AgentClient) Delete() *AgentDelete {
	mutation := newAgentMutation(c.config, OpDelete)
	return &AgentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentClient) DeleteOne(_m *Agent) *AgentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentClient) DeleteOneID(id string) *AgentDeleteOne {
	builder := c.Delete().Where(agent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentDeleteOne{builder}
}

// Query returns a query builder for Agent.
func (c *AgentClient) Query() *AgentQuery {
	return &AgentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgent},
		inters: c.Interceptors(),
	}
}

// Get returns a Agent entity by its id.
func (c *AgentClient) Get(ctx context.Context, id string) (*Agent, error) {
	return c.Query().Where(agent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentClient) GetX(ctx context.Context, id string) *Agent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AgentClient) Hooks() []Hook {
	return c.hooks.Agent
}

// Interceptors returns the client interceptors.
func (c *AgentClient) Interceptors() []Interceptor {
	return c.inters.Agent
}

func (c *AgentClient) mutate(ctx context.Context, m *AgentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Agent mutation op: %q", m.Op())
	}
}

// AgentOutputClient is a client for the AgentOutput schema.
type AgentOutputClient struct {
	config
}

// NewAgentOutputClient returns a client for the AgentOutput from the given config.
func NewAgentOutputClient(c config) *AgentOutputClient {
	return &AgentOutputClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentoutput.Hooks(f(g(h())))`.
func (c *AgentOutputClient) Use(hooks ...Hook) {
	c.hooks.AgentOutput = append(c.hooks.AgentOutput, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentoutput.Intercept(f(g(h())))`.
func (c *AgentOutputClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentOutput = append(c.inters.AgentOutput, interceptors...)
}

// Create returns a builder for creating a AgentOutput entity.
func (c *AgentOutputClient) Create() *AgentOutputCreate {
	mutation := newAgentOutputMutation(c.config, OpCreate)
	return &AgentOutputCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentOutput entities.
func (c *AgentOutputClient) CreateBulk(builders ...*AgentOutputCreate) *AgentOutputCreateBulk {
	return &AgentOutputCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentOutputClient) MapCreateBulk(slice any, setFunc func(*AgentOutputCreate, int)) *AgentOutputCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentOutputCreateBulk{err: fmt.Errorf("calling to AgentOutputClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentOutputCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentOutputCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentOutput.
func (c *AgentOutputClient) Update() *AgentOutputUpdate {
	mutation := newAgentOutputMutation(c.config, OpUpdate)
	return &AgentOutputUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentOutputClient) UpdateOne(_m *AgentOutput) *AgentOutputUpdateOne {
	mutation := newAgentOutputMutation(c.config, OpUpdateOne, withAgentOutput(_m))
	return &AgentOutputUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentOutputClient) UpdateOneID(id string) *AgentOutputUpdateOne {
	mutation := newAgentOutputMutation(c.config, OpUpdateOne, withAgentOutputID(id))
	return &AgentOutputUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentOutput.
func (c *AgentOutputClient) Delete() *AgentOutputDelete {
	mutation := newAgentOutputMutation(c.config, OpDelete)
	return &AgentOutputDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentOutputClient) DeleteOne(_m *AgentOutput) *AgentOutputDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentOutputClient) DeleteOneID(id string) *AgentOutputDeleteOne {
	builder := c.Delete().Where(agentoutput.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentOutputDeleteOne{builder}
}

// Query returns a query builder for AgentOutput.
func (c *AgentOutputClient) Query() *AgentOutputQuery {
	return &AgentOutputQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentOutput},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentOutput entity by its id.
func (c *AgentOutputClient) Get(ctx context.Context, id string) (*AgentOutput, error) {
	return c.Query().Where(agentoutput.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentOutputClient) GetX(ctx context.Context, id string) *AgentOutput {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a AgentOutput.
func (c *AgentOutputClient) QueryRun(_m *AgentOutput) *RunQuery {
	query := (&RunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentoutput.Table, agentoutput.FieldID, id),
			sqlgraph.To(run.Table, run.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agentoutput.RunTable, agentoutput.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryStep queries the step edge of a AgentOutput.
func (c *AgentOutputClient) QueryStep(_m *AgentOutput) *RunStepQuery {
	query := (&RunStepClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentoutput.Table, agentoutput.FieldID, id),
			sqlgraph.To(runstep.Table, runstep.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agentoutput.StepTable, agentoutput.StepColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentOutputClient) Hooks() []Hook {
	return c.hooks.AgentOutput
}

// Interceptors returns the client interceptors.
func (c *AgentOutputClient) Interceptors() []Interceptor {
	return c.inters.AgentOutput
}

func (c *AgentOutputClient) mutate(ctx context.Context, m *AgentOutputMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentOutputCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentOutputUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentOutputUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentOutputDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentOutput mutation op: %q", m.Op())
	}
}

// PipelineClient is a client for the Pipeline schema.
type PipelineClient struct {
	config
}

// NewPipelineClient returns a client for the Pipeline from the given config.
func NewPipelineClient(c config) *PipelineClient {
	return &PipelineClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pipeline.Hooks(f(g(h())))`.
func (c *PipelineClient) Use(hooks ...Hook) {
	c.hooks.Pipeline = append(c.hooks.Pipeline, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pipeline.Intercept(f(g(h())))`.
func (c *PipelineClient) Intercept(interceptors ...Interceptor) {
	c.inters.Pipeline = append(c.inters.Pipeline, interceptors...)
}

// Create returns a builder for creating a Pipeline entity.
func (c *PipelineClient) Create() *PipelineCreate {
	mutation := newPipelineMutation(c.config, OpCreate)
	return &PipelineCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Pipeline entities.
func (c *PipelineClient) CreateBulk(builders ...*PipelineCreate) *PipelineCreateBulk {
	return &PipelineCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PipelineClient) MapCreateBulk(slice any, setFunc func(*PipelineCreate, int)) *PipelineCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PipelineCreateBulk{err: fmt.Errorf("calling to PipelineClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PipelineCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PipelineCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Pipeline.
func (c *PipelineClient) Update() *PipelineUpdate {
	mutation := newPipelineMutation(c.config, OpUpdate)
	return &PipelineUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PipelineClient) UpdateOne(_m *Pipeline) *PipelineUpdateOne {
	mutation := newPipelineMutation(c.config, OpUpdateOne, withPipeline(_m))
	return &PipelineUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PipelineClient) UpdateOneID(id string) *PipelineUpdateOne {
	mutation := newPipelineMutation(c.config, OpUpdateOne, withPipelineID(id))
	return &PipelineUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Pipeline.
func (c *PipelineClient) Delete() *PipelineDelete {
	mutation := newPipelineMutation(c.config, OpDelete)
	return &PipelineDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PipelineClient) DeleteOne(_m *Pipeline) *PipelineDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PipelineClient) DeleteOneID(id string) *PipelineDeleteOne {
	builder := c.Delete().Where(pipeline.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PipelineDeleteOne{builder}
}

// Query returns a query builder for Pipeline.
func (c *PipelineClient) Query() *PipelineQuery {
	return &PipelineQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePipeline},
		inters: c.Interceptors(),
	}
}

// Get returns a Pipeline entity by its id.
func (c *PipelineClient) Get(ctx context.Context, id string) (*Pipeline, error) {
	return c.Query().Where(pipeline.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PipelineClient) GetX(ctx context.Context, id string) *Pipeline {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySteps queries the steps edge of a Pipeline.
func (c *PipelineClient) QuerySteps(_m *Pipeline) *PipelineStepQuery {
	query := (&PipelineStepClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(pipeline.Table, pipeline.FieldID, id),
			sqlgraph.To(pipelinestep.Table, pipelinestep.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, pipeline.StepsTable, pipeline.StepsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PipelineClient) Hooks() []Hook {
	return c.hooks.Pipeline
}

// Interceptors returns the client interceptors.
func (c *PipelineClient) Interceptors() []Interceptor {
	return c.inters.Pipeline
}

func (c *PipelineClient) mutate(ctx context.Context, m *PipelineMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PipelineCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PipelineUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PipelineUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PipelineDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Pipeline mutation op: %q", m.Op())
	}
}

// PipelineStepClient is a client for the PipelineStep schema.
type PipelineStepClient struct {
	config
}

// NewPipelineStepClient returns a client for the PipelineStep from the given config.
func NewPipelineStepClient(c config) *PipelineStepClient {
	return &PipelineStepClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pipelinestep.Hooks(f(g(h())))`.
func (c *PipelineStepClient) Use(hooks ...Hook) {
	c.hooks.PipelineStep = append(c.hooks.PipelineStep, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pipelinestep.Intercept(f(g(h())))`.
func (c *PipelineStepClient) Intercept(interceptors ...Interceptor) {
	c.inters.PipelineStep = append(c.inters.PipelineStep, interceptors...)
}

// Create returns a builder for creating a PipelineStep entity.
func (c *PipelineStepClient) Create() *PipelineStepCreate {
	mutation := newPipelineStepMutation(c.config, OpCreate)
	return &PipelineStepCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PipelineStep entities.
func (c *PipelineStepClient) CreateBulk(builders ...*PipelineStepCreate) *PipelineStepCreateBulk {
	return &PipelineStepCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PipelineStepClient) MapCreateBulk(slice any, setFunc func(*PipelineStepCreate, int)) *PipelineStepCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PipelineStepCreateBulk{err: fmt.Errorf("calling to PipelineStepClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PipelineStepCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PipelineStepCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PipelineStep.
func (c *PipelineStepClient) Update() *PipelineStepUpdate {
	mutation := newPipelineStepMutation(c.config, OpUpdate)
	return &PipelineStepUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PipelineStepClient) UpdateOne(_m *PipelineStep) *PipelineStepUpdateOne {
	mutation := newPipelineStepMutation(c.config, OpUpdateOne, withPipelineStep(_m))
	return &PipelineStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PipelineStepClient) UpdateOneID(id string) *PipelineStepUpdateOne {
	mutation := newPipelineStepMutation(c.config, OpUpdateOne, withPipelineStepID(id))
	return &PipelineStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PipelineStep.
func (c *PipelineStepClient) Delete() *PipelineStepDelete {
	mutation := newPipelineStepMutation(c.config, OpDelete)
	return &PipelineStepDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PipelineStepClient) DeleteOne(_m *PipelineStep) *PipelineStepDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PipelineStepClient) DeleteOneID(id string) *PipelineStepDeleteOne {
	builder := c.Delete().Where(pipelinestep.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PipelineStepDeleteOne{builder}
}

// Query returns a query builder for PipelineStep.
func (c *PipelineStepClient) Query() *PipelineStepQuery {
	return &PipelineStepQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePipelineStep},
		inters: c.Interceptors(),
	}
}

// Get returns a PipelineStep entity by its id.
func (c *PipelineStepClient) Get(ctx context.Context, id string) (*PipelineStep, error) {
	return c.Query().Where(pipelinestep.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PipelineStepClient) GetX(ctx context.Context, id string) *PipelineStep {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPipeline queries the pipeline edge of a PipelineStep.
func (c *PipelineStepClient) QueryPipeline(_m *PipelineStep) *PipelineQuery {
	query := (&PipelineClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(pipelinestep.Table, pipelinestep.FieldID, id),
			sqlgraph.To(pipeline.Table, pipeline.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, pipelinestep.PipelineTable, pipelinestep.PipelineColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PipelineStepClient) Hooks() []Hook {
	return c.hooks.PipelineStep
}

// Interceptors returns the client interceptors.
func (c *PipelineStepClient) Interceptors() []Interceptor {
	return c.inters.PipelineStep
}

func (c *PipelineStepClient) mutate(ctx context.Context, m *PipelineStepMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PipelineStepCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PipelineStepUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PipelineStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PipelineStepDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PipelineStep mutation op: %q", m.Op())
	}
}

// RunClient is a client for the Run schema.
type RunClient struct {
	config
}

// NewRunClient returns a client for the Run from the given config.
func NewRunClient(c config) *RunClient {
	return &RunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `run.Hooks(f(g(h())))`.
func (c *RunClient) Use(hooks ...Hook) {
	c.hooks.Run = append(c.hooks.Run, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `run.Intercept(f(g(h())))`.
func (c *RunClient) Intercept(interceptors ...Interceptor) {
	c.inters.Run = append(c.inters.Run, interceptors...)
}

// Create returns a builder for creating a Run entity.
func (c *RunClient) Create() *RunCreate {
	mutation := newRunMutation(c.config, OpCreate)
	return &RunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Run entities.
func (c *RunClient) CreateBulk(builders ...*RunCreate) *RunCreateBulk {
	return &RunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RunClient) MapCreateBulk(slice any, setFunc func(*RunCreate, int)) *RunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RunCreateBulk{err: fmt.Errorf("calling to RunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Run.
func (c *RunClient) Update() *RunUpdate {
	mutation := newRunMutation(c.config, OpUpdate)
	return &RunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RunClient) UpdateOne(_m *Run) *RunUpdateOne {
	mutation := newRunMutation(c.config, OpUpdateOne, withRun(_m))
	return &RunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RunClient) UpdateOneID(id string) *RunUpdateOne {
	mutation := newRunMutation(c.config, OpUpdateOne, withRunID(id))
	return &RunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Run.
func (c *RunClient) Delete() *RunDelete {
	mutation := newRunMutation(c.config, OpDelete)
	return &RunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RunClient) DeleteOne(_m *Run) *RunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RunClient) DeleteOneID(id string) *RunDeleteOne {
	builder := c.Delete().Where(run.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RunDeleteOne{builder}
}

// Query returns a query builder for Run.
func (c *RunClient) Query() *RunQuery {
	return &RunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRun},
		inters: c.Interceptors(),
	}
}

// Get returns a Run entity by its id.
func (c *RunClient) Get(ctx context.Context, id string) (*Run, error) {
	return c.Query().Where(run.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RunClient) GetX(ctx context.Context, id string) *Run {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySteps queries the steps edge of a Run.
func (c *RunClient) QuerySteps(_m *Run) *RunStepQuery {
	query := (&RunStepClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(run.Table, run.FieldID, id),
			sqlgraph.To(runstep.Table, runstep.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, run.StepsTable, run.StepsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryOutputs queries the outputs edge of a Run.
func (c *RunClient) QueryOutputs(_m *Run) *AgentOutputQuery {
	query := (&AgentOutputClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(run.Table, run.FieldID, id),
			sqlgraph.To(agentoutput.Table, agentoutput.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, run.OutputsTable, run.OutputsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RunClient) Hooks() []Hook {
	return c.hooks.Run
}

// Interceptors returns the client interceptors.
func (c *RunClient) Interceptors() []Interceptor {
	return c.inters.Run
}

func (c *RunClient) mutate(ctx context.Context, m *RunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Run mutation op: %q", m.Op())
	}
}

// RunStepClient is a client for the RunStep schema.
type RunStepClient struct {
	config
}

// NewRunStepClient returns a client for the RunStep from the given config.
func NewRunStepClient(c config) *RunStepClient {
	return &RunStepClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `runstep.Hooks(f(g(h())))`.
func (c *RunStepClient) Use(hooks ...Hook) {
	c.hooks.RunStep = append(c.hooks.RunStep, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `runstep.Intercept(f(g(h())))`.
func (c *RunStepClient) Intercept(interceptors ...Interceptor) {
	c.inters.RunStep = append(c.inters.RunStep, interceptors...)
}

// Create returns a builder for creating a RunStep entity.
func (c *RunStepClient) Create() *RunStepCreate {
	mutation := newRunStepMutation(c.config, OpCreate)
	return &RunStepCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RunStep entities.
func (c *RunStepClient) CreateBulk(builders ...*RunStepCreate) *RunStepCreateBulk {
	return &RunStepCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RunStepClient) MapCreateBulk(slice any, setFunc func(*RunStepCreate, int)) *RunStepCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RunStepCreateBulk{err: fmt.Errorf("calling to RunStepClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RunStepCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RunStepCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RunStep.
func (c *RunStepClient) Update() *RunStepUpdate {
	mutation := newRunStepMutation(c.config, OpUpdate)
	return &RunStepUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RunStepClient) UpdateOne(_m *RunStep) *RunStepUpdateOne {
	mutation := newRunStepMutation(c.config, OpUpdateOne, withRunStep(_m))
	return &RunStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RunStepClient) UpdateOneID(id string) *RunStepUpdateOne {
	mutation := newRunStepMutation(c.config, OpUpdateOne, withRunStepID(id))
	return &RunStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RunStep.
func (c *RunStepClient) Delete() *RunStepDelete {
	mutation := newRunStepMutation(c.config, OpDelete)
	return &RunStepDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RunStepClient) DeleteOne(_m *RunStep) *RunStepDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RunStepClient) DeleteOneID(id string) *RunStepDeleteOne {
	builder := c.Delete().Where(runstep.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RunStepDeleteOne{builder}
}

// Query returns a query builder for RunStep.
func (c *RunStepClient) Query() *RunStepQuery {
	return &RunStepQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRunStep},
		inters: c.Interceptors(),
	}
}

// Get returns a RunStep entity by its id.
func (c *RunStepClient) Get(ctx context.Context, id string) (*RunStep, error) {
	return c.Query().Where(runstep.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RunStepClient) GetX(ctx context.Context, id string) *RunStep {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a RunStep.
func (c *RunStepClient) QueryRun(_m *RunStep) *RunQuery {
	query := (&RunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(runstep.Table, runstep.FieldID, id),
			sqlgraph.To(run.Table, run.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, runstep.RunTable, runstep.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryOutputs queries the outputs edge of a RunStep.
func (c *RunStepClient) QueryOutputs(_m *RunStep) *AgentOutputQuery {
	query := (&AgentOutputClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(runstep.Table, runstep.FieldID, id),
			sqlgraph.To(agentoutput.Table, agentoutput.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, runstep.OutputsTable, runstep.OutputsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RunStepClient) Hooks() []Hook {
	return c.hooks.RunStep
}

// Interceptors returns the client interceptors.
func (c *RunStepClient) Interceptors() []Interceptor {
	return c.inters.RunStep
}

func (c *RunStepClient) mutate(ctx context.Context, m *RunStepMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RunStepCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RunStepUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RunStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RunStepDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RunStep mutation op: %q", m.Op())
	}
}

// TeamClient is a client for the Team schema.
type TeamClient struct {
	config
}

// NewTeamClient returns a client for the Team from the given config.
func NewTeamClient(c config) *TeamClient {
	return &TeamClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `team.Hooks(f(g(h())))`.
func (c *TeamClient) Use(hooks ...Hook) {
	c.hooks.Team = append(c.hooks.Team, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `team.Intercept(f(g(h())))`.
func (c *TeamClient) Intercept(interceptors ...Interceptor) {
	c.inters.Team = append(c.inters.Team, interceptors...)
}

// Create returns a builder for creating a Team entity.
func (c *TeamClient) Create() *TeamCreate {
	mutation := newTeamMutation(c.config, OpCreate)
	return &TeamCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Team entities.
func (c *TeamClient) CreateBulk(builders ...*TeamCreate) *TeamCreateBulk {
	return &TeamCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TeamClient) MapCreateBulk(slice any, setFunc func(*TeamCreate, int)) *TeamCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TeamCreateBulk{err: fmt.Errorf("calling to TeamClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TeamCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TeamCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Team.
func (c *TeamClient) Update() *TeamUpdate {
	mutation := newTeamMutation(c.config, OpUpdate)
	return &TeamUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TeamClient) UpdateOne(_m *Team) *TeamUpdateOne {
	mutation := newTeamMutation(c.config, OpUpdateOne, withTeam(_m))
	return &TeamUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TeamClient) UpdateOneID(id string) *TeamUpdateOne {
	mutation := newTeamMutation(c.config, OpUpdateOne, withTeamID(id))
	return &TeamUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Team.
func (c *TeamClient) Delete() *TeamDelete {
	mutation := newTeamMutation(c.config, OpDelete)
	return &TeamDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TeamClient) DeleteOne(_m *Team) *TeamDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TeamClient) DeleteOneID(id string) *TeamDeleteOne {
	builder := c.Delete().Where(team.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TeamDeleteOne{builder}
}

// Query returns a query builder for Team.
func (c *TeamClient) Query() *TeamQuery {
	return &TeamQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTeam},
		inters: c.Interceptors(),
	}
}

// Get returns a Team entity by its id.
func (c *TeamClient) Get(ctx context.Context, id string) (*Team, error) {
	return c.Query().Where(team.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TeamClient) GetX(ctx context.Context, id string) *Team {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TeamClient) Hooks() []Hook {
	return c.hooks.Team
}

// Interceptors returns the client interceptors.
func (c *TeamClient) Interceptors() []Interceptor {
	return c.inters.Team
}

func (c *TeamClient) mutate(ctx context.Context, m *TeamMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TeamCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TeamUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TeamUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TeamDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Team mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Agent, AgentOutput, Pipeline, PipelineStep, Run, RunStep, Team []ent.Hook
	}
	inters struct {
		Agent, AgentOutput, Pipeline, PipelineStep, Run, RunStep, Team []ent.Interceptor
	}
)
