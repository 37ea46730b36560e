// Code generated by ent, DO NOT EDIT.

package run

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the run type in the database.
	Label = "run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "run_id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldQuestion holds the string denoting the question field in the database.
	FieldQuestion = "question"
	// FieldProtocolKey holds the string denoting the protocol_key field in the database.
	FieldProtocolKey = "protocol_key"
	// FieldPipelineID holds the string denoting the pipeline_id field in the database.
	FieldPipelineID = "pipeline_id"
	// FieldTeamID holds the string denoting the team_id field in the database.
	FieldTeamID = "team_id"
	// FieldAgentKeys holds the string denoting the agent_keys field in the database.
	FieldAgentKeys = "agent_keys"
	// FieldRounds holds the string denoting the rounds field in the database.
	FieldRounds = "rounds"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldDurationMs holds the string denoting the duration_ms field in the database.
	FieldDurationMs = "duration_ms"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldSynthesis holds the string denoting the synthesis field in the database.
	FieldSynthesis = "synthesis"
	// FieldResultJSON holds the string denoting the result_json field in the database.
	FieldResultJSON = "result_json"
	// FieldInputTokens holds the string denoting the input_tokens field in the database.
	FieldInputTokens = "input_tokens"
	// FieldOutputTokens holds the string denoting the output_tokens field in the database.
	FieldOutputTokens = "output_tokens"
	// FieldCostUsd holds the string denoting the cost_usd field in the database.
	FieldCostUsd = "cost_usd"
	// EdgeSteps holds the string denoting the steps edge name in mutations.
	EdgeSteps = "steps"
	// EdgeOutputs holds the string denoting the outputs edge name in mutations.
	EdgeOutputs = "outputs"
	// RunStepFieldID holds the string denoting the ID field of the RunStep.
	RunStepFieldID = "run_step_id"
	// AgentOutputFieldID holds the string denoting the ID field of the AgentOutput.
	AgentOutputFieldID = "output_id"
	// Table holds the table name of the run in the database.
	Table = "runs"
	// StepsTable is the table that holds the steps relation/edge.
	StepsTable = "run_steps"
	// StepsInverseTable is the table name for the RunStep entity.
	// It exists in this package in order to avoid circular dependency with the "runstep" package.
	StepsInverseTable = "run_steps"
	// StepsColumn is the table column denoting the steps relation/edge.
	StepsColumn = "run_id"
	// OutputsTable is the table that holds the outputs relation/edge.
	OutputsTable = "agent_outputs"
	// OutputsInverseTable is the table name for the AgentOutput entity.
	// It exists in this package in order to avoid circular dependency with the "agentoutput" package.
	OutputsInverseTable = "agent_outputs"
	// OutputsColumn is the table column denoting the outputs relation/edge.
	OutputsColumn = "run_id"
)

// Columns holds all SQL columns for run fields.
var Columns = []string{
	FieldID,
	FieldKind,
	FieldQuestion,
	FieldProtocolKey,
	FieldPipelineID,
	FieldTeamID,
	FieldAgentKeys,
	FieldRounds,
	FieldStatus,
	FieldCreatedAt,
	FieldStartedAt,
	FieldCompletedAt,
	FieldDurationMs,
	FieldErrorMessage,
	FieldSynthesis,
	FieldResultJSON,
	FieldInputTokens,
	FieldOutputTokens,
	FieldCostUsd,
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

// Kind defines the type for the "kind" enum field.
type Kind string

// Kind values.
const (
	KindProtocol Kind = "protocol"
	KindPipeline Kind = "pipeline"
)

func (k Kind) String() string {
	return string(k)
}

// KindValidator is a validator for the "kind" field enum values. It is called by the builders before save.
func KindValidator(k Kind) error {
	switch k {
	case KindProtocol, KindPipeline:
		return nil
	default:
		return fmt.Errorf("run: invalid enum value for kind field: %q", k)
	}
}

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
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusRunning, StatusCompleted, StatusFailed, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("run: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Run queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByQuestion orders the results by the question field.
func ByQuestion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestion, opts...).ToFunc()
}

// ByProtocolKey orders the results by the protocol_key field.
func ByProtocolKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProtocolKey, opts...).ToFunc()
}

// ByPipelineID orders the results by the pipeline_id field.
func ByPipelineID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPipelineID, opts...).ToFunc()
}

// ByTeamID orders the results by the team_id field.
func ByTeamID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTeamID, opts...).ToFunc()
}

// ByRounds orders the results by the rounds field.
func ByRounds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRounds, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByDurationMs orders the results by the duration_ms field.
func ByDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMs, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// BySynthesis orders the results by the synthesis field.
func BySynthesis(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSynthesis, opts...).ToFunc()
}

// ByResultJSON orders the results by the result_json field.
func ByResultJSON(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResultJSON, opts...).ToFunc()
}

// ByInputTokens orders the results by the input_tokens field.
func ByInputTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInputTokens, opts...).ToFunc()
}

// ByOutputTokens orders the results by the output_tokens field.
func ByOutputTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutputTokens, opts...).ToFunc()
}

// ByCostUsd orders the results by the cost_usd field.
func ByCostUsd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCostUsd, opts...).ToFunc()
}

// ByStepsCount orders the results by steps count.
func ByStepsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStepsStep(), opts...)
	}
}

// BySteps orders the results by steps terms.
func BySteps(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStepsStep(), append([]sql.OrderTerm{term}, terms...)...)
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
func newStepsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StepsInverseTable, RunStepFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StepsTable, StepsColumn),
	)
}
func newOutputsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OutputsInverseTable, AgentOutputFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, OutputsTable, OutputsColumn),
	)
}
