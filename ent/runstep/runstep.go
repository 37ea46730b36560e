// Code generated by ent, DO NOT EDIT.

package runstep

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the runstep type in the database.
	Label = "run_step"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "run_step_id"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldStepIndex holds the string denoting the step_index field in the database.
	FieldStepIndex = "step_index"
	// FieldProtocolKey holds the string denoting the protocol_key field in the database.
	FieldProtocolKey = "protocol_key"
	// FieldQuestion holds the string denoting the question field in the database.
	FieldQuestion = "question"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldSynthesis holds the string denoting the synthesis field in the database.
	FieldSynthesis = "synthesis"
	// FieldResultJSON holds the string denoting the result_json field in the database.
	FieldResultJSON = "result_json"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeRun holds the string denoting the run edge name in mutations.
	EdgeRun = "run"
	// EdgeOutputs holds the string denoting the outputs edge name in mutations.
	EdgeOutputs = "outputs"
	// RunFieldID holds the string denoting the ID field of the Run.
	RunFieldID = "run_id"
	// AgentOutputFieldID holds the string denoting the ID field of the AgentOutput.
	AgentOutputFieldID = "output_id"
	// Table holds the table name of the runstep in the database.
	Table = "run_steps"
	// RunTable is the table that holds the run relation/edge.
	RunTable = "run_steps"
	// RunInverseTable is the table name for the Run entity.
	// It exists in this package in order to avoid circular dependency with the "run" package.
	RunInverseTable = "runs"
	// RunColumn is the table column denoting the run relation/edge.
	RunColumn = "run_id"
	// OutputsTable is the table that holds the outputs relation/edge.
	OutputsTable = "agent_outputs"
	// OutputsInverseTable is the table name for the AgentOutput entity.
	// It exists in this package in order to avoid circular dependency with the "agentoutput" package.
	OutputsInverseTable = "agent_outputs"
	// OutputsColumn is the table column denoting the outputs relation/edge.
	OutputsColumn = "run_step_id"
)

// Columns holds all SQL columns for runstep fields.
var Columns = []string{
	FieldID,
	FieldRunID,
	FieldStepIndex,
	FieldProtocolKey,
	FieldQuestion,
	FieldStatus,
	FieldStartedAt,
	FieldCompletedAt,
	FieldSynthesis,
	FieldResultJSON,
	FieldErrorMessage,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusSkipped   Status = "skipped"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusRunning, StatusCompleted, StatusFailed, StatusSkipped:
		return nil
	default:
		return fmt.Errorf("runstep: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the RunStep queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByStepIndex orders the results by the step_index field.
func ByStepIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepIndex, opts...).ToFunc()
}

// ByProtocolKey orders the results by the protocol_key field.
func ByProtocolKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProtocolKey, opts...).ToFunc()
}

// ByQuestion orders the results by the question field.
func ByQuestion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestion, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// BySynthesis orders the results by the synthesis field.
func BySynthesis(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSynthesis, opts...).ToFunc()
}

// ByResultJSON orders the results by the result_json field.
func ByResultJSON(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResultJSON, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByRunField orders the results by run field.
func ByRunField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRunStep(), sql.OrderByField(field, opts...))
	}
}

// ByOutputsCount orders the results by outputs count.
func ByOutputsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newOutputsStep(), opts...)
	}
}

// ByOutputs orders the results by outputs terms.
func ByOutputs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOutputsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newRunStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RunInverseTable, RunFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
	)
}
func newOutputsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OutputsInverseTable, AgentOutputFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, OutputsTable, OutputsColumn),
	)
}
