// Code generated by ent, DO NOT EDIT.

package pipelinestep

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the pipelinestep type in the database.
	Label = "pipeline_step"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "step_id"
	// FieldPipelineID holds the string denoting the pipeline_id field in the database.
	FieldPipelineID = "pipeline_id"
	// FieldStepIndex holds the string denoting the step_index field in the database.
	FieldStepIndex = "step_index"
	// FieldProtocolKey holds the string denoting the protocol_key field in the database.
	FieldProtocolKey = "protocol_key"
	// FieldQuestionTemplate holds the string denoting the question_template field in the database.
	FieldQuestionTemplate = "question_template"
	// FieldAgentKeys holds the string denoting the agent_keys field in the database.
	FieldAgentKeys = "agent_keys"
	// FieldRounds holds the string denoting the rounds field in the database.
	FieldRounds = "rounds"
	// FieldThinkingModel holds the string denoting the thinking_model field in the database.
	FieldThinkingModel = "thinking_model"
	// FieldOrchestrationModel holds the string denoting the orchestration_model field in the database.
	FieldOrchestrationModel = "orchestration_model"
	// FieldOutputPassthrough holds the string denoting the output_passthrough field in the database.
	FieldOutputPassthrough = "output_passthrough"
	// EdgePipeline holds the string denoting the pipeline edge name in mutations.
	EdgePipeline = "pipeline"
	// PipelineFieldID holds the string denoting the ID field of the Pipeline.
	PipelineFieldID = "pipeline_id"
	// Table holds the table name of the pipelinestep in the database.
	Table = "pipeline_steps"
	// PipelineTable is the table that holds the pipeline relation/edge.
	PipelineTable = "pipeline_steps"
	// PipelineInverseTable is the table name for the Pipeline entity.
	// It exists in this package in order to avoid circular dependency with the "pipeline" package.
	PipelineInverseTable = "pipelines"
	// PipelineColumn is the table column denoting the pipeline relation/edge.
	PipelineColumn = "pipeline_id"
)

// Columns holds all SQL columns for pipelinestep fields.
var Columns = []string{
	FieldID,
	FieldPipelineID,
	FieldStepIndex,
	FieldProtocolKey,
	FieldQuestionTemplate,
	FieldAgentKeys,
	FieldRounds,
	FieldThinkingModel,
	FieldOrchestrationModel,
	FieldOutputPassthrough,
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
	// DefaultOutputPassthrough holds the default value on creation for the "output_passthrough" field.
	DefaultOutputPassthrough bool
)

// OrderOption defines the ordering options for the PipelineStep queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPipelineID orders the results by the pipeline_id field.
func ByPipelineID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPipelineID, opts...).ToFunc()
}

// ByStepIndex orders the results by the step_index field.
func ByStepIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepIndex, opts...).ToFunc()
}

// ByProtocolKey orders the results by the protocol_key field.
func ByProtocolKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProtocolKey, opts...).ToFunc()
}

// ByQuestionTemplate orders the results by the question_template field.
func ByQuestionTemplate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionTemplate, opts...).ToFunc()
}

// ByRounds orders the results by the rounds field.
func ByRounds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRounds, opts...).ToFunc()
}

// ByThinkingModel orders the results by the thinking_model field.
func ByThinkingModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldThinkingModel, opts...).ToFunc()
}

// ByOrchestrationModel orders the results by the orchestration_model field.
func ByOrchestrationModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrchestrationModel, opts...).ToFunc()
}

// ByOutputPassthrough orders the results by the output_passthrough field.
func ByOutputPassthrough(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutputPassthrough, opts...).ToFunc()
}

// ByPipelineField orders the results by pipeline field.
func ByPipelineField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPipelineStep(), sql.OrderByField(field, opts...))
	}
}
func newPipelineStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PipelineInverseTable, PipelineFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PipelineTable, PipelineColumn),
	)
}
