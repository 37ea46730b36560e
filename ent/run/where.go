// Code generated by ent, DO NOT EDIT.

package run

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/consilium-ai/consilium/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldID, id))
}

// Question applies equality check predicate on the "question" field. It's identical to QuestionEQ.
func Question(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldQuestion, v))
}

// ProtocolKey applies equality check predicate on the "protocol_key" field. It's identical to ProtocolKeyEQ.
func ProtocolKey(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldProtocolKey, v))
}

// PipelineID applies equality check predicate on the "pipeline_id" field. It's identical to PipelineIDEQ.
func PipelineID(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldPipelineID, v))
}

// TeamID applies equality check predicate on the "team_id" field. It's identical to TeamIDEQ.
func TeamID(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldTeamID, v))
}

// Rounds applies equality check predicate on the "rounds" field. It's identical to RoundsEQ.
func Rounds(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldRounds, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCompletedAt, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldDurationMs, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldErrorMessage, v))
}

// Synthesis applies equality check predicate on the "synthesis" field. It's identical to SynthesisEQ.
func Synthesis(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldSynthesis, v))
}

// ResultJSON applies equality check predicate on the "result_json" field. It's identical to ResultJSONEQ.
func ResultJSON(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldResultJSON, v))
}

// InputTokens applies equality check predicate on the "input_tokens" field. It's identical to InputTokensEQ.
func InputTokens(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldInputTokens, v))
}

// OutputTokens applies equality check predicate on the "output_tokens" field. It's identical to OutputTokensEQ.
func OutputTokens(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldOutputTokens, v))
}

// CostUsd applies equality check predicate on the "cost_usd" field. It's identical to CostUsdEQ.
func CostUsd(v float64) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCostUsd, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldKind, vs...))
}

// QuestionEQ applies the EQ predicate on the "question" field.
func QuestionEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldQuestion, v))
}

// QuestionNEQ applies the NEQ predicate on the "question" field.
func QuestionNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldQuestion, v))
}

// QuestionIn applies the In predicate on the "question" field.
func QuestionIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldQuestion, vs...))
}

// QuestionNotIn applies the NotIn predicate on the "question" field.
func QuestionNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldQuestion, vs...))
}

// QuestionGT applies the GT predicate on the "question" field.
func QuestionGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldQuestion, v))
}

// QuestionGTE applies the GTE predicate on the "question" field.
func QuestionGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldQuestion, v))
}

// QuestionLT applies the LT predicate on the "question" field.
func QuestionLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldQuestion, v))
}

// QuestionLTE applies the LTE predicate on the "question" field.
func QuestionLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldQuestion, v))
}

// QuestionContains applies the Contains predicate on the "question" field.
func QuestionContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldQuestion, v))
}

// QuestionHasPrefix applies the HasPrefix predicate on the "question" field.
func QuestionHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldQuestion, v))
}

// QuestionHasSuffix applies the HasSuffix predicate on the "question" field.
func QuestionHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldQuestion, v))
}

// QuestionEqualFold applies the EqualFold predicate on the "question" field.
func QuestionEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldQuestion, v))
}

// QuestionContainsFold applies the ContainsFold predicate on the "question" field.
func QuestionContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldQuestion, v))
}

// ProtocolKeyEQ applies the EQ predicate on the "protocol_key" field.
func ProtocolKeyEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldProtocolKey, v))
}

// ProtocolKeyNEQ applies the NEQ predicate on the "protocol_key" field.
func ProtocolKeyNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldProtocolKey, v))
}

// ProtocolKeyIn applies the In predicate on the "protocol_key" field.
func ProtocolKeyIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldProtocolKey, vs...))
}

// ProtocolKeyNotIn applies the NotIn predicate on the "protocol_key" field.
func ProtocolKeyNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldProtocolKey, vs...))
}

// ProtocolKeyGT applies the GT predicate on the "protocol_key" field.
func ProtocolKeyGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldProtocolKey, v))
}

// ProtocolKeyGTE applies the GTE predicate on the "protocol_key" field.
func ProtocolKeyGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldProtocolKey, v))
}

// ProtocolKeyLT applies the LT predicate on the "protocol_key" field.
func ProtocolKeyLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldProtocolKey, v))
}

// ProtocolKeyLTE applies the LTE predicate on the "protocol_key" field.
func ProtocolKeyLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldProtocolKey, v))
}

// ProtocolKeyContains applies the Contains predicate on the "protocol_key" field.
func ProtocolKeyContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldProtocolKey, v))
}

// ProtocolKeyHasPrefix applies the HasPrefix predicate on the "protocol_key" field.
func ProtocolKeyHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldProtocolKey, v))
}

// ProtocolKeyHasSuffix applies the HasSuffix predicate on the "protocol_key" field.
func ProtocolKeyHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldProtocolKey, v))
}

// ProtocolKeyIsNil applies the IsNil predicate on the "protocol_key" field.
func ProtocolKeyIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldProtocolKey))
}

// ProtocolKeyNotNil applies the NotNil predicate on the "protocol_key" field.
func ProtocolKeyNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldProtocolKey))
}

// ProtocolKeyEqualFold applies the EqualFold predicate on the "protocol_key" field.
func ProtocolKeyEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldProtocolKey, v))
}

// ProtocolKeyContainsFold applies the ContainsFold predicate on the "protocol_key" field.
func ProtocolKeyContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldProtocolKey, v))
}

// PipelineIDEQ applies the EQ predicate on the "pipeline_id" field.
func PipelineIDEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldPipelineID, v))
}

// PipelineIDNEQ applies the NEQ predicate on the "pipeline_id" field.
func PipelineIDNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldPipelineID, v))
}

// PipelineIDIn applies the In predicate on the "pipeline_id" field.
func PipelineIDIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldPipelineID, vs...))
}

// PipelineIDNotIn applies the NotIn predicate on the "pipeline_id" field.
func PipelineIDNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldPipelineID, vs...))
}

// PipelineIDGT applies the GT predicate on the "pipeline_id" field.
func PipelineIDGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldPipelineID, v))
}

// PipelineIDGTE applies the GTE predicate on the "pipeline_id" field.
func PipelineIDGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldPipelineID, v))
}

// PipelineIDLT applies the LT predicate on the "pipeline_id" field.
func PipelineIDLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldPipelineID, v))
}

// PipelineIDLTE applies the LTE predicate on the "pipeline_id" field.
func PipelineIDLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldPipelineID, v))
}

// PipelineIDContains applies the Contains predicate on the "pipeline_id" field.
func PipelineIDContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldPipelineID, v))
}

// PipelineIDHasPrefix applies the HasPrefix predicate on the "pipeline_id" field.
func PipelineIDHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldPipelineID, v))
}

// PipelineIDHasSuffix applies the HasSuffix predicate on the "pipeline_id" field.
func PipelineIDHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldPipelineID, v))
}

// PipelineIDIsNil applies the IsNil predicate on the "pipeline_id" field.
func PipelineIDIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldPipelineID))
}

// PipelineIDNotNil applies the NotNil predicate on the "pipeline_id" field.
func PipelineIDNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldPipelineID))
}

// PipelineIDEqualFold applies the EqualFold predicate on the "pipeline_id" field.
func PipelineIDEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldPipelineID, v))
}

// PipelineIDContainsFold applies the ContainsFold predicate on the "pipeline_id" field.
func PipelineIDContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldPipelineID, v))
}

// TeamIDEQ applies the EQ predicate on the "team_id" field.
func TeamIDEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldTeamID, v))
}

// TeamIDNEQ applies the NEQ predicate on the "team_id" field.
func TeamIDNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldTeamID, v))
}

// TeamIDIn applies the In predicate on the "team_id" field.
func TeamIDIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldTeamID, vs...))
}

// TeamIDNotIn applies the NotIn predicate on the "team_id" field.
func TeamIDNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldTeamID, vs...))
}

// TeamIDGT applies the GT predicate on the "team_id" field.
func TeamIDGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldTeamID, v))
}

// TeamIDGTE applies the GTE predicate on the "team_id" field.
func TeamIDGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldTeamID, v))
}

// TeamIDLT applies the LT predicate on the "team_id" field.
func TeamIDLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldTeamID, v))
}

// TeamIDLTE applies the LTE predicate on the "team_id" field.
func TeamIDLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldTeamID, v))
}

// TeamIDContains applies the Contains predicate on the "team_id" field.
func TeamIDContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldTeamID, v))
}

// TeamIDHasPrefix applies the HasPrefix predicate on the "team_id" field.
func TeamIDHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldTeamID, v))
}

// TeamIDHasSuffix applies the HasSuffix predicate on the "team_id" field.
func TeamIDHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldTeamID, v))
}

// TeamIDIsNil applies the IsNil predicate on the "team_id" field.
func TeamIDIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldTeamID))
}

// TeamIDNotNil applies the NotNil predicate on the "team_id" field.
func TeamIDNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldTeamID))
}

// TeamIDEqualFold applies the EqualFold predicate on the "team_id" field.
func TeamIDEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldTeamID, v))
}

// TeamIDContainsFold applies the ContainsFold predicate on the "team_id" field.
func TeamIDContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldTeamID, v))
}

// AgentKeysIsNil applies the IsNil predicate on the "agent_keys" field.
func AgentKeysIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldAgentKeys))
}

// AgentKeysNotNil applies the NotNil predicate on the "agent_keys" field.
func AgentKeysNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldAgentKeys))
}

// RoundsEQ applies the EQ predicate on the "rounds" field.
func RoundsEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldRounds, v))
}

// RoundsNEQ applies the NEQ predicate on the "rounds" field.
func RoundsNEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldRounds, v))
}

// RoundsIn applies the In predicate on the "rounds" field.
func RoundsIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldRounds, vs...))
}

// RoundsNotIn applies the NotIn predicate on the "rounds" field.
func RoundsNotIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldRounds, vs...))
}

// RoundsGT applies the GT predicate on the "rounds" field.
func RoundsGT(v int) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldRounds, v))
}

// RoundsGTE applies the GTE predicate on the "rounds" field.
func RoundsGTE(v int) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldRounds, v))
}

// RoundsLT applies the LT predicate on the "rounds" field.
func RoundsLT(v int) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldRounds, v))
}

// RoundsLTE applies the LTE predicate on the "rounds" field.
func RoundsLTE(v int) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldRounds, v))
}

// RoundsIsNil applies the IsNil predicate on the "rounds" field.
func RoundsIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldRounds))
}

// RoundsNotNil applies the NotNil predicate on the "rounds" field.
func RoundsNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldRounds))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldStatus, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldCompletedAt))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldDurationMs, v))
}

// DurationMsIsNil applies the IsNil predicate on the "duration_ms" field.
func DurationMsIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldDurationMs))
}

// DurationMsNotNil applies the NotNil predicate on the "duration_ms" field.
func DurationMsNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldDurationMs))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldErrorMessage, v))
}

// SynthesisEQ applies the EQ predicate on the "synthesis" field.
func SynthesisEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldSynthesis, v))
}

// SynthesisNEQ applies the NEQ predicate on the "synthesis" field.
func SynthesisNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldSynthesis, v))
}

// SynthesisIn applies the In predicate on the "synthesis" field.
func SynthesisIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldSynthesis, vs...))
}

// SynthesisNotIn applies the NotIn predicate on the "synthesis" field.
func SynthesisNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldSynthesis, vs...))
}

// SynthesisGT applies the GT predicate on the "synthesis" field.
func SynthesisGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldSynthesis, v))
}

// SynthesisGTE applies the GTE predicate on the "synthesis" field.
func SynthesisGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldSynthesis, v))
}

// SynthesisLT applies the LT predicate on the "synthesis" field.
func SynthesisLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldSynthesis, v))
}

// SynthesisLTE applies the LTE predicate on the "synthesis" field.
func SynthesisLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldSynthesis, v))
}

// SynthesisContains applies the Contains predicate on the "synthesis" field.
func SynthesisContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldSynthesis, v))
}

// SynthesisHasPrefix applies the HasPrefix predicate on the "synthesis" field.
func SynthesisHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldSynthesis, v))
}

// SynthesisHasSuffix applies the HasSuffix predicate on the "synthesis" field.
func SynthesisHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldSynthesis, v))
}

// SynthesisIsNil applies the IsNil predicate on the "synthesis" field.
func SynthesisIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldSynthesis))
}

// SynthesisNotNil applies the NotNil predicate on the "synthesis" field.
func SynthesisNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldSynthesis))
}

// SynthesisEqualFold applies the EqualFold predicate on the "synthesis" field.
func SynthesisEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldSynthesis, v))
}

// SynthesisContainsFold applies the ContainsFold predicate on the "synthesis" field.
func SynthesisContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldSynthesis, v))
}

// ResultJSONEQ applies the EQ predicate on the "result_json" field.
func ResultJSONEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldResultJSON, v))
}

// ResultJSONNEQ applies the NEQ predicate on the "result_json" field.
func ResultJSONNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldResultJSON, v))
}

// ResultJSONIn applies the In predicate on the "result_json" field.
func ResultJSONIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldResultJSON, vs...))
}

// ResultJSONNotIn applies the NotIn predicate on the "result_json" field.
func ResultJSONNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldResultJSON, vs...))
}

// ResultJSONGT applies the GT predicate on the "result_json" field.
func ResultJSONGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldResultJSON, v))
}

// ResultJSONGTE applies the GTE predicate on the "result_json" field.
func ResultJSONGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldResultJSON, v))
}

// ResultJSONLT applies the LT predicate on the "result_json" field.
func ResultJSONLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldResultJSON, v))
}

// ResultJSONLTE applies the LTE predicate on the "result_json" field.
func ResultJSONLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldResultJSON, v))
}

// ResultJSONContains applies the Contains predicate on the "result_json" field.
func ResultJSONContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldResultJSON, v))
}

// ResultJSONHasPrefix applies the HasPrefix predicate on the "result_json" field.
func ResultJSONHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldResultJSON, v))
}

// ResultJSONHasSuffix applies the HasSuffix predicate on the "result_json" field.
func ResultJSONHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldResultJSON, v))
}

// ResultJSONIsNil applies the IsNil predicate on the "result_json" field.
func ResultJSONIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldResultJSON))
}

// ResultJSONNotNil applies the NotNil predicate on the "result_json" field.
func ResultJSONNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldResultJSON))
}

// ResultJSONEqualFold applies the EqualFold predicate on the "result_json" field.
func ResultJSONEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldResultJSON, v))
}

// ResultJSONContainsFold applies the ContainsFold predicate on the "result_json" field.
func ResultJSONContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldResultJSON, v))
}

// InputTokensEQ applies the EQ predicate on the "input_tokens" field.
func InputTokensEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldInputTokens, v))
}

// InputTokensNEQ applies the NEQ predicate on the "input_tokens" field.
func InputTokensNEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldInputTokens, v))
}

// InputTokensIn applies the In predicate on the "input_tokens" field.
func InputTokensIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldInputTokens, vs...))
}

// InputTokensNotIn applies the NotIn predicate on the "input_tokens" field.
func InputTokensNotIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldInputTokens, vs...))
}

// InputTokensGT applies the GT predicate on the "input_tokens" field.
func InputTokensGT(v int) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldInputTokens, v))
}

// InputTokensGTE applies the GTE predicate on the "input_tokens" field.
func InputTokensGTE(v int) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldInputTokens, v))
}

// InputTokensLT applies the LT predicate on the "input_tokens" field.
func InputTokensLT(v int) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldInputTokens, v))
}

// InputTokensLTE applies the LTE predicate on the "input_tokens" field.
func InputTokensLTE(v int) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldInputTokens, v))
}

// InputTokensIsNil applies the IsNil predicate on the "input_tokens" field.
func InputTokensIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldInputTokens))
}

// InputTokensNotNil applies the NotNil predicate on the "input_tokens" field.
func InputTokensNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldInputTokens))
}

// OutputTokensEQ applies the EQ predicate on the "output_tokens" field.
func OutputTokensEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldOutputTokens, v))
}

// OutputTokensNEQ applies the NEQ predicate on the "output_tokens" field.
func OutputTokensNEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldOutputTokens, v))
}

// OutputTokensIn applies the In predicate on the "output_tokens" field.
func OutputTokensIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldOutputTokens, vs...))
}

// OutputTokensNotIn applies the NotIn predicate on the "output_tokens" field.
func OutputTokensNotIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldOutputTokens, vs...))
}

// OutputTokensGT applies the GT predicate on the "output_tokens" field.
func OutputTokensGT(v int) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldOutputTokens, v))
}

// OutputTokensGTE applies the GTE predicate on the "output_tokens" field.
func OutputTokensGTE(v int) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldOutputTokens, v))
}

// OutputTokensLT applies the LT predicate on the "output_tokens" field.
func OutputTokensLT(v int) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldOutputTokens, v))
}

// OutputTokensLTE applies the LTE predicate on the "output_tokens" field.
func OutputTokensLTE(v int) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldOutputTokens, v))
}

// OutputTokensIsNil applies the IsNil predicate on the "output_tokens" field.
func OutputTokensIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldOutputTokens))
}

// OutputTokensNotNil applies the NotNil predicate on the "output_tokens" field.
func OutputTokensNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldOutputTokens))
}

// CostUsdEQ applies the EQ predicate on the "cost_usd" field.
func CostUsdEQ(v float64) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCostUsd, v))
}

// CostUsdNEQ applies the NEQ predicate on the "cost_usd" field.
func CostUsdNEQ(v float64) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldCostUsd, v))
}

// CostUsdIn applies the In predicate on the "cost_usd" field.
func CostUsdIn(vs ...float64) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldCostUsd, vs...))
}

// CostUsdNotIn applies the NotIn predicate on the "cost_usd" field.
func CostUsdNotIn(vs ...float64) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldCostUsd, vs...))
}

// CostUsdGT applies the GT predicate on the "cost_usd" field.
func CostUsdGT(v float64) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldCostUsd, v))
}

// CostUsdGTE applies the GTE predicate on the "cost_usd" field.
func CostUsdGTE(v float64) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldCostUsd, v))
}

// CostUsdLT applies the LT predicate on the "cost_usd" field.
func CostUsdLT(v float64) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldCostUsd, v))
}

// CostUsdLTE applies the LTE predicate on the "cost_usd" field.
func CostUsdLTE(v float64) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldCostUsd, v))
}

// CostUsdIsNil applies the IsNil predicate on the "cost_usd" field.
func CostUsdIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldCostUsd))
}

// CostUsdNotNil applies the NotNil predicate on the "cost_usd" field.
func CostUsdNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldCostUsd))
}

// HasSteps applies the HasEdge predicate on the "steps" edge.
func HasSteps() predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StepsTable, StepsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStepsWith applies the HasEdge predicate on the "steps" edge with a given conditions (other predicates).
func HasStepsWith(preds ...predicate.RunStep) predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := newStepsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasOutputs applies the HasEdge predicate on the "outputs" edge.
func HasOutputs() predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, OutputsTable, OutputsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOutputsWith applies the HasEdge predicate on the "outputs" edge with a given conditions (other predicates).
func HasOutputsWith(preds ...predicate.AgentOutput) predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := newOutputsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Run) predicate.Run {
	return predicate.Run(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Run) predicate.Run {
	return predicate.Run(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Run) predicate.Run {
	return predicate.Run(sql.NotPredicates(p))
}
