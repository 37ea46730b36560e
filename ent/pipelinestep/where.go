// Code generated by ent, DO NOT EDIT.

package pipelinestep

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/consilium-ai/consilium/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldContainsFold(FieldID, id))
}

// PipelineID applies equality check predicate on the "pipeline_id" field. It's identical to PipelineIDEQ.
func PipelineID(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldPipelineID, v))
}

// StepIndex applies equality check predicate on the "step_index" field. It's identical to StepIndexEQ.
func StepIndex(v int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldStepIndex, v))
}

// ProtocolKey applies equality check predicate on the "protocol_key" field. It's identical to ProtocolKeyEQ.
func ProtocolKey(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldProtocolKey, v))
}

// QuestionTemplate applies equality check predicate on the "question_template" field. It's identical to QuestionTemplateEQ.
func QuestionTemplate(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldQuestionTemplate, v))
}

// Rounds applies equality check predicate on the "rounds" field. It's identical to RoundsEQ.
func Rounds(v int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldRounds, v))
}

// ThinkingModel applies equality check predicate on the "thinking_model" field. It's identical to ThinkingModelEQ.
func ThinkingModel(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldThinkingModel, v))
}

// OrchestrationModel applies equality check predicate on the "orchestration_model" field. It's identical to OrchestrationModelEQ.
func OrchestrationModel(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldOrchestrationModel, v))
}

// OutputPassthrough applies equality check predicate on the "output_passthrough" field. It's identical to OutputPassthroughEQ.
func OutputPassthrough(v bool) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldOutputPassthrough, v))
}

// PipelineIDEQ applies the EQ predicate on the "pipeline_id" field.
func PipelineIDEQ(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldPipelineID, v))
}

// PipelineIDNEQ applies the NEQ predicate on the "pipeline_id" field.
func PipelineIDNEQ(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNEQ(FieldPipelineID, v))
}

// PipelineIDIn applies the In predicate on the "pipeline_id" field.
func PipelineIDIn(vs ...string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldIn(FieldPipelineID, vs...))
}

// PipelineIDNotIn applies the NotIn predicate on the "pipeline_id" field.
func PipelineIDNotIn(vs ...string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNotIn(FieldPipelineID, vs...))
}

// PipelineIDGT applies the GT predicate on the "pipeline_id" field.
func PipelineIDGT(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldGT(FieldPipelineID, v))
}

// PipelineIDGTE applies the GTE predicate on the "pipeline_id" field.
func PipelineIDGTE(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldGTE(FieldPipelineID, v))
}

// PipelineIDLT applies the LT predicate on the "pipeline_id" field.
func PipelineIDLT(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldLT(FieldPipelineID, v))
}

// PipelineIDLTE applies the LTE predicate on the "pipeline_id" field.
func PipelineIDLTE(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldLTE(FieldPipelineID, v))
}

// PipelineIDContains applies the Contains predicate on the "pipeline_id" field.
func PipelineIDContains(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldContains(FieldPipelineID, v))
}

// PipelineIDHasPrefix applies the HasPrefix predicate on the "pipeline_id" field.
func PipelineIDHasPrefix(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldHasPrefix(FieldPipelineID, v))
}

// PipelineIDHasSuffix applies the HasSuffix predicate on the "pipeline_id" field.
func PipelineIDHasSuffix(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldHasSuffix(FieldPipelineID, v))
}

// PipelineIDEqualFold applies the EqualFold predicate on the "pipeline_id" field.
func PipelineIDEqualFold(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEqualFold(FieldPipelineID, v))
}

// PipelineIDContainsFold applies the ContainsFold predicate on the "pipeline_id" field.
func PipelineIDContainsFold(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldContainsFold(FieldPipelineID, v))
}

// StepIndexEQ applies the EQ predicate on the "step_index" field.
func StepIndexEQ(v int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldStepIndex, v))
}

// StepIndexNEQ applies the NEQ predicate on the "step_index" field.
func StepIndexNEQ(v int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNEQ(FieldStepIndex, v))
}

// StepIndexIn applies the In predicate on the "step_index" field.
func StepIndexIn(vs ...int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldIn(FieldStepIndex, vs...))
}

// StepIndexNotIn applies the NotIn predicate on the "step_index" field.
func StepIndexNotIn(vs ...int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNotIn(FieldStepIndex, vs...))
}

// StepIndexGT applies the GT predicate on the "step_index" field.
func StepIndexGT(v int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldGT(FieldStepIndex, v))
}

// StepIndexGTE applies the GTE predicate on the "step_index" field.
func StepIndexGTE(v int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldGTE(FieldStepIndex, v))
}

// StepIndexLT applies the LT predicate on the "step_index" field.
func StepIndexLT(v int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldLT(FieldStepIndex, v))
}

// StepIndexLTE applies the LTE predicate on the "step_index" field.
func StepIndexLTE(v int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldLTE(FieldStepIndex, v))
}

// ProtocolKeyEQ applies the EQ predicate on the "protocol_key" field.
func ProtocolKeyEQ(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldProtocolKey, v))
}

// ProtocolKeyNEQ applies the NEQ predicate on the "protocol_key" field.
func ProtocolKeyNEQ(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNEQ(FieldProtocolKey, v))
}

// ProtocolKeyIn applies the In predicate on the "protocol_key" field.
func ProtocolKeyIn(vs ...string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldIn(FieldProtocolKey, vs...))
}

// ProtocolKeyNotIn applies the NotIn predicate on the "protocol_key" field.
func ProtocolKeyNotIn(vs ...string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNotIn(FieldProtocolKey, vs...))
}

// ProtocolKeyGT applies the GT predicate on the "protocol_key" field.
func ProtocolKeyGT(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldGT(FieldProtocolKey, v))
}

// ProtocolKeyGTE applies the GTE predicate on the "protocol_key" field.
func ProtocolKeyGTE(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldGTE(FieldProtocolKey, v))
}

// ProtocolKeyLT applies the LT predicate on the "protocol_key" field.
func ProtocolKeyLT(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldLT(FieldProtocolKey, v))
}

// ProtocolKeyLTE applies the LTE predicate on the "protocol_key" field.
func ProtocolKeyLTE(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldLTE(FieldProtocolKey, v))
}

// ProtocolKeyContains applies the Contains predicate on the "protocol_key" field.
func ProtocolKeyContains(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldContains(FieldProtocolKey, v))
}

// ProtocolKeyHasPrefix applies the HasPrefix predicate on the "protocol_key" field.
func ProtocolKeyHasPrefix(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldHasPrefix(FieldProtocolKey, v))
}

// ProtocolKeyHasSuffix applies the HasSuffix predicate on the "protocol_key" field.
func ProtocolKeyHasSuffix(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldHasSuffix(FieldProtocolKey, v))
}

// ProtocolKeyEqualFold applies the EqualFold predicate on the "protocol_key" field.
func ProtocolKeyEqualFold(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEqualFold(FieldProtocolKey, v))
}

// ProtocolKeyContainsFold applies the ContainsFold predicate on the "protocol_key" field.
func ProtocolKeyContainsFold(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldContainsFold(FieldProtocolKey, v))
}

// QuestionTemplateEQ applies the EQ predicate on the "question_template" field.
func QuestionTemplateEQ(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldQuestionTemplate, v))
}

// QuestionTemplateNEQ applies the NEQ predicate on the "question_template" field.
func QuestionTemplateNEQ(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNEQ(FieldQuestionTemplate, v))
}

// QuestionTemplateIn applies the In predicate on the "question_template" field.
func QuestionTemplateIn(vs ...string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldIn(FieldQuestionTemplate, vs...))
}

// QuestionTemplateNotIn applies the NotIn predicate on the "question_template" field.
func QuestionTemplateNotIn(vs ...string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNotIn(FieldQuestionTemplate, vs...))
}

// QuestionTemplateGT applies the GT predicate on the "question_template" field.
func QuestionTemplateGT(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldGT(FieldQuestionTemplate, v))
}

// QuestionTemplateGTE applies the GTE predicate on the "question_template" field.
func QuestionTemplateGTE(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldGTE(FieldQuestionTemplate, v))
}

// QuestionTemplateLT applies the LT predicate on the "question_template" field.
func QuestionTemplateLT(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldLT(FieldQuestionTemplate, v))
}

// QuestionTemplateLTE applies the LTE predicate on the "question_template" field.
func QuestionTemplateLTE(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldLTE(FieldQuestionTemplate, v))
}

// QuestionTemplateContains applies the Contains predicate on the "question_template" field.
func QuestionTemplateContains(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldContains(FieldQuestionTemplate, v))
}

// QuestionTemplateHasPrefix applies the HasPrefix predicate on the "question_template" field.
func QuestionTemplateHasPrefix(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldHasPrefix(FieldQuestionTemplate, v))
}

// QuestionTemplateHasSuffix applies the HasSuffix predicate on the "question_template" field.
func QuestionTemplateHasSuffix(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldHasSuffix(FieldQuestionTemplate, v))
}

// QuestionTemplateEqualFold applies the EqualFold predicate on the "question_template" field.
func QuestionTemplateEqualFold(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEqualFold(FieldQuestionTemplate, v))
}

// QuestionTemplateContainsFold applies the ContainsFold predicate on the "question_template" field.
func QuestionTemplateContainsFold(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldContainsFold(FieldQuestionTemplate, v))
}

// AgentKeysIsNil applies the IsNil predicate on the "agent_keys" field.
func AgentKeysIsNil() predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldIsNull(FieldAgentKeys))
}

// AgentKeysNotNil applies the NotNil predicate on the "agent_keys" field.
func AgentKeysNotNil() predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNotNull(FieldAgentKeys))
}

// RoundsEQ applies the EQ predicate on the "rounds" field.
func RoundsEQ(v int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldRounds, v))
}

// RoundsNEQ applies the NEQ predicate on the "rounds" field.
func RoundsNEQ(v int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNEQ(FieldRounds, v))
}

// RoundsIn applies the In predicate on the "rounds" field.
func RoundsIn(vs ...int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldIn(FieldRounds, vs...))
}

// RoundsNotIn applies the NotIn predicate on the "rounds" field.
func RoundsNotIn(vs ...int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNotIn(FieldRounds, vs...))
}

// RoundsGT applies the GT predicate on the "rounds" field.
func RoundsGT(v int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldGT(FieldRounds, v))
}

// RoundsGTE applies the GTE predicate on the "rounds" field.
func RoundsGTE(v int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldGTE(FieldRounds, v))
}

// RoundsLT applies the LT predicate on the "rounds" field.
func RoundsLT(v int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldLT(FieldRounds, v))
}

// RoundsLTE applies the LTE predicate on the "rounds" field.
func RoundsLTE(v int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldLTE(FieldRounds, v))
}

// RoundsIsNil applies the IsNil predicate on the "rounds" field.
func RoundsIsNil() predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldIsNull(FieldRounds))
}

// RoundsNotNil applies the NotNil predicate on the "rounds" field.
func RoundsNotNil() predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNotNull(FieldRounds))
}

// ThinkingModelEQ applies the EQ predicate on the "thinking_model" field.
func ThinkingModelEQ(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldThinkingModel, v))
}

// ThinkingModelNEQ applies the NEQ predicate on the "thinking_model" field.
func ThinkingModelNEQ(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNEQ(FieldThinkingModel, v))
}

// ThinkingModelIn applies the In predicate on the "thinking_model" field.
func ThinkingModelIn(vs ...string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldIn(FieldThinkingModel, vs...))
}

// ThinkingModelNotIn applies the NotIn predicate on the "thinking_model" field.
func ThinkingModelNotIn(vs ...string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNotIn(FieldThinkingModel, vs...))
}

// ThinkingModelGT applies the GT predicate on the "thinking_model" field.
func ThinkingModelGT(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldGT(FieldThinkingModel, v))
}

// ThinkingModelGTE applies the GTE predicate on the "thinking_model" field.
func ThinkingModelGTE(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldGTE(FieldThinkingModel, v))
}

// ThinkingModelLT applies the LT predicate on the "thinking_model" field.
func ThinkingModelLT(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldLT(FieldThinkingModel, v))
}

// ThinkingModelLTE applies the LTE predicate on the "thinking_model" field.
func ThinkingModelLTE(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldLTE(FieldThinkingModel, v))
}

// ThinkingModelContains applies the Contains predicate on the "thinking_model" field.
func ThinkingModelContains(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldContains(FieldThinkingModel, v))
}

// ThinkingModelHasPrefix applies the HasPrefix predicate on the "thinking_model" field.
func ThinkingModelHasPrefix(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldHasPrefix(FieldThinkingModel, v))
}

// ThinkingModelHasSuffix applies the HasSuffix predicate on the "thinking_model" field.
func ThinkingModelHasSuffix(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldHasSuffix(FieldThinkingModel, v))
}

// ThinkingModelIsNil applies the IsNil predicate on the "thinking_model" field.
func ThinkingModelIsNil() predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldIsNull(FieldThinkingModel))
}

// ThinkingModelNotNil applies the NotNil predicate on the "thinking_model" field.
func ThinkingModelNotNil() predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNotNull(FieldThinkingModel))
}

// ThinkingModelEqualFold applies the EqualFold predicate on the "thinking_model" field.
func ThinkingModelEqualFold(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEqualFold(FieldThinkingModel, v))
}

// ThinkingModelContainsFold applies the ContainsFold predicate on the "thinking_model" field.
func ThinkingModelContainsFold(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldContainsFold(FieldThinkingModel, v))
}

// OrchestrationModelEQ applies the EQ predicate on the "orchestration_model" field.
func OrchestrationModelEQ(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldOrchestrationModel, v))
}

// OrchestrationModelNEQ applies the NEQ predicate on the "orchestration_model" field.
func OrchestrationModelNEQ(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNEQ(FieldOrchestrationModel, v))
}

// OrchestrationModelIn applies the In predicate on the "orchestration_model" field.
func OrchestrationModelIn(vs ...string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldIn(FieldOrchestrationModel, vs...))
}

// OrchestrationModelNotIn applies the NotIn predicate on the "orchestration_model" field.
func OrchestrationModelNotIn(vs ...string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNotIn(FieldOrchestrationModel, vs...))
}

// OrchestrationModelGT applies the GT predicate on the "orchestration_model" field.
func OrchestrationModelGT(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldGT(FieldOrchestrationModel, v))
}

// OrchestrationModelGTE applies the GTE predicate on the "orchestration_model" field.
func OrchestrationModelGTE(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldGTE(FieldOrchestrationModel, v))
}

// OrchestrationModelLT applies the LT predicate on the "orchestration_model" field.
func OrchestrationModelLT(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldLT(FieldOrchestrationModel, v))
}

// OrchestrationModelLTE applies the LTE predicate on the "orchestration_model" field.
func OrchestrationModelLTE(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldLTE(FieldOrchestrationModel, v))
}

// OrchestrationModelContains applies the Contains predicate on the "orchestration_model" field.
func OrchestrationModelContains(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldContains(FieldOrchestrationModel, v))
}

// OrchestrationModelHasPrefix applies the HasPrefix predicate on the "orchestration_model" field.
func OrchestrationModelHasPrefix(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldHasPrefix(FieldOrchestrationModel, v))
}

// OrchestrationModelHasSuffix applies the HasSuffix predicate on the "orchestration_model" field.
func OrchestrationModelHasSuffix(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldHasSuffix(FieldOrchestrationModel, v))
}

// OrchestrationModelIsNil applies the IsNil predicate on the "orchestration_model" field.
func OrchestrationModelIsNil() predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldIsNull(FieldOrchestrationModel))
}

// OrchestrationModelNotNil applies the NotNil predicate on the "orchestration_model" field.
func OrchestrationModelNotNil() predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNotNull(FieldOrchestrationModel))
}

// OrchestrationModelEqualFold applies the EqualFold predicate on the "orchestration_model" field.
func OrchestrationModelEqualFold(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEqualFold(FieldOrchestrationModel, v))
}

// OrchestrationModelContainsFold applies the ContainsFold predicate on the "orchestration_model" field.
func OrchestrationModelContainsFold(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldContainsFold(FieldOrchestrationModel, v))
}

// OutputPassthroughEQ applies the EQ predicate on the "output_passthrough" field.
func OutputPassthroughEQ(v bool) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldOutputPassthrough, v))
}

// OutputPassthroughNEQ applies the NEQ predicate on the "output_passthrough" field.
func OutputPassthroughNEQ(v bool) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNEQ(FieldOutputPassthrough, v))
}

// HasPipeline applies the HasEdge predicate on the "pipeline" edge.
func HasPipeline() predicate.PipelineStep {
	return predicate.PipelineStep(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PipelineTable, PipelineColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPipelineWith applies the HasEdge predicate on the "pipeline" edge with a given conditions (other predicates).
func HasPipelineWith(preds ...predicate.Pipeline) predicate.PipelineStep {
	return predicate.PipelineStep(func(s *sql.Selector) {
		step := newPipelineStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PipelineStep) predicate.PipelineStep {
	return predicate.PipelineStep(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PipelineStep) predicate.PipelineStep {
	return predicate.PipelineStep(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PipelineStep) predicate.PipelineStep {
	return predicate.PipelineStep(sql.NotPredicates(p))
}
