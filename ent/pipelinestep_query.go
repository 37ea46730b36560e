// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/consilium-ai/consilium/ent/pipeline"
	"github.com/consilium-ai/consilium/ent/pipelinestep"
	"github.com/consilium-ai/consilium/ent/predicate"
)

// PipelineStepQuery is the builder for querying PipelineStep entities.
type PipelineStepQuery struct {
	config
	ctx          *QueryContext
	order        []pipelinestep.OrderOption
	inters       []Interceptor
	predicates   []predicate.PipelineStep
	withPipeline *PipelineQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the PipelineStepQuery builder.
func (_q *PipelineStepQuery) Where(ps ...predicate.PipelineStep) *PipelineStepQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *PipelineStepQuery) Limit(limit int) *PipelineStepQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *PipelineStepQuery) Offset(offset int) *PipelineStepQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *PipelineStepQuery) Unique(unique bool) *PipelineStepQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *PipelineStepQuery) Order(o ...pipelinestep.OrderOption) *PipelineStepQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryPipeline chains the current query on the "pipeline" edge.
func (_q *PipelineStepQuery) QueryPipeline() *PipelineQuery {
	query := (&PipelineClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(pipelinestep.Table, pipelinestep.FieldID, selector),
			sqlgraph.To(pipeline.Table, pipeline.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, pipelinestep.PipelineTable, pipelinestep.PipelineColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first PipelineStep entity from the query.
// Returns a *NotFoundError when no PipelineStep was found.
func (_q *PipelineStepQuery) First(ctx context.Context) (*PipelineStep, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{pipelinestep.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *PipelineStepQuery) FirstX(ctx context.Context) *PipelineStep {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first PipelineStep ID from the query.
// Returns a *NotFoundError when no PipelineStep ID was found.
func (_q *PipelineStepQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{pipelinestep.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *PipelineStepQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single PipelineStep entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one PipelineStep entity is found.
// Returns a *NotFoundError when no PipelineStep entities are found.
func (_q *PipelineStepQuery) Only(ctx context.Context) (*PipelineStep, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{pipelinestep.Label}
	default:
		return nil, &NotSingularError{pipelinestep.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *PipelineStepQuery) OnlyX(ctx context.Context) *PipelineStep {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only PipelineStep ID in the query.
// Returns a *NotSingularError when more than one PipelineStep ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *PipelineStepQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{pipelinestep.Label}
	default:
		err = &NotSingularError{pipelinestep.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *PipelineStepQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of PipelineSteps.
func (_q *PipelineStepQuery) All(ctx context.Context) ([]*PipelineStep, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*PipelineStep, *PipelineStepQuery]()
	return withInterceptors[[]*PipelineStep](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *PipelineStepQuery) AllX(ctx context.Context) []*PipelineStep {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of PipelineStep IDs.
func (_q *PipelineStepQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(pipelinestep.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *PipelineStepQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *PipelineStepQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*PipelineStepQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *PipelineStepQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *PipelineStepQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *PipelineStepQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the PipelineStepQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *PipelineStepQuery) Clone() *PipelineStepQuery {
	if _q == nil {
		return nil
	}
	return &PipelineStepQuery{
		config:       _q.config,
		ctx:          _q.ctx.Clone(),
		order:        append([]pipelinestep.OrderOption{}, _q.order...),
		inters:       append([]Interceptor{}, _q.inters...),
		predicates:   append([]predicate.PipelineStep{}, _q.predicates...),
		withPipeline: _q.withPipeline.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithPipeline tells the query-builder to eager-load the nodes that are connected to
// the "pipeline" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PipelineStepQuery) WithPipeline(opts ...func(*PipelineQuery)) *PipelineStepQuery {
	query := (&PipelineClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPipeline = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		PipelineID string `json:"pipeline_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.PipelineStep.Query().
//		GroupBy(pipelinestep.FieldPipelineID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *PipelineStepQuery) GroupBy(field string, fields ...string) *PipelineStepGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &PipelineStepGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = pipelinestep.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		PipelineID string `json:"pipeline_id,omitempty"`
//	}
//
//	client.PipelineStep.Query().
//		Select(pipelinestep.FieldPipelineID).
//		Scan(ctx, &v)
func (_q *PipelineStepQuery) Select(fields ...string) *PipelineStepSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &PipelineStepSelect{PipelineStepQuery: _q}
	sbuild.label = pipelinestep.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a PipelineStepSelect configured with the given aggregations.
func (_q *PipelineStepQuery) Aggregate(fns ...AggregateFunc) *PipelineStepSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *PipelineStepQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !pipelinestep.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *PipelineStepQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*PipelineStep, error) {
	var (
		nodes       = []*PipelineStep{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withPipeline != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*PipelineStep).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &PipelineStep{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withPipeline; query != nil {
		if err := _q.loadPipeline(ctx, query, nodes, nil,
			func(n *PipelineStep, e *Pipeline) { n.Edges.Pipeline = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *PipelineStepQuery) loadPipeline(ctx context.Context, query *PipelineQuery, nodes []*PipelineStep, init func(*PipelineStep), assign func(*PipelineStep, *Pipeline)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*PipelineStep)
	for i := range nodes {
		fk := nodes[i].PipelineID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(pipeline.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "pipeline_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *PipelineStepQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *PipelineStepQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(pipelinestep.Table, pipelinestep.Columns, sqlgraph.NewFieldSpec(pipelinestep.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pipelinestep.FieldID)
		for i := range fields {
			if fields[i] != pipelinestep.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withPipeline != nil {
			_spec.Node.AddColumnOnce(pipelinestep.FieldPipelineID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *PipelineStepQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(pipelinestep.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = pipelinestep.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// PipelineStepGroupBy is the group-by builder for PipelineStep entities.
type PipelineStepGroupBy struct {
	selector
	build *PipelineStepQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *PipelineStepGroupBy) Aggregate(fns ...AggregateFunc) *PipelineStepGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *PipelineStepGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PipelineStepQuery, *PipelineStepGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *PipelineStepGroupBy) sqlScan(ctx context.Context, root *PipelineStepQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// PipelineStepSelect is the builder for selecting fields of PipelineStep entities.
type PipelineStepSelect struct {
	*PipelineStepQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *PipelineStepSelect) Aggregate(fns ...AggregateFunc) *PipelineStepSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *PipelineStepSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PipelineStepQuery, *PipelineStepSelect](ctx, _s.PipelineStepQuery, _s, _s.inters, v)
}

func (_s *PipelineStepSelect) sqlScan(ctx context.Context, root *PipelineStepQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
