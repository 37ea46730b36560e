// Code generated by ent, DO NOT EDIT.

package runstep

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/consilium-ai/consilium/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.RunStep {
	return predicate.RunStep(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.RunStep {
	return predicate.RunStep(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.RunStep {
	return predicate.RunStep(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.RunStep {
	return predicate.RunStep(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.RunStep {
	return predicate.RunStep(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.RunStep {
	return predicate.RunStep(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.RunStep {
	return predicate.RunStep(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.RunStep {
	return predicate.RunStep(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.RunStep {
	return predicate.RunStep(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.RunStep {
	return predicate.RunStep(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.RunStep {
	return predicate.RunStep(sql.FieldContainsFold(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldEQ(FieldRunID, v))
}

// StepIndex applies equality check predicate on the "step_index" field. It's identical to StepIndexEQ.
func StepIndex(v int) predicate.RunStep {
	return predicate.RunStep(sql.FieldEQ(FieldStepIndex, v))
}

// ProtocolKey applies equality check predicate on the "protocol_key" field. It's identical to ProtocolKeyEQ.
func ProtocolKey(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldEQ(FieldProtocolKey, v))
}

// Question applies equality check predicate on the "question" field. It's identical to QuestionEQ.
func Question(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldEQ(FieldQuestion, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.RunStep {
	return predicate.RunStep(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.RunStep {
	return predicate.RunStep(sql.FieldEQ(FieldCompletedAt, v))
}

// Synthesis applies equality check predicate on the "synthesis" field. It's identical to SynthesisEQ.
func Synthesis(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldEQ(FieldSynthesis, v))
}

// ResultJSON applies equality check predicate on the "result_json" field. It's identical to ResultJSONEQ.
func ResultJSON(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldEQ(FieldResultJSON, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RunStep {
	return predicate.RunStep(sql.FieldEQ(FieldCreatedAt, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.RunStep {
	return predicate.RunStep(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.RunStep {
	return predicate.RunStep(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldContainsFold(FieldRunID, v))
}

// StepIndexEQ applies the EQ predicate on the "step_index" field.
func StepIndexEQ(v int) predicate.RunStep {
	return predicate.RunStep(sql.FieldEQ(FieldStepIndex, v))
}

// StepIndexNEQ applies the NEQ predicate on the "step_index" field.
func StepIndexNEQ(v int) predicate.RunStep {
	return predicate.RunStep(sql.FieldNEQ(FieldStepIndex, v))
}

// StepIndexIn applies the In predicate on the "step_index" field.
func StepIndexIn(vs ...int) predicate.RunStep {
	return predicate.RunStep(sql.FieldIn(FieldStepIndex, vs...))
}

// StepIndexNotIn applies the NotIn predicate on the "step_index" field.
func StepIndexNotIn(vs ...int) predicate.RunStep {
	return predicate.RunStep(sql.FieldNotIn(FieldStepIndex, vs...))
}

// StepIndexGT applies the GT predicate on the "step_index" field.
func StepIndexGT(v int) predicate.RunStep {
	return predicate.RunStep(sql.FieldGT(FieldStepIndex, v))
}

// StepIndexGTE applies the GTE predicate on the "step_index" field.
func StepIndexGTE(v int) predicate.RunStep {
	return predicate.RunStep(sql.FieldGTE(FieldStepIndex, v))
}

// StepIndexLT applies the LT predicate on the "step_index" field.
func StepIndexLT(v int) predicate.RunStep {
	return predicate.RunStep(sql.FieldLT(FieldStepIndex, v))
}

// StepIndexLTE applies the LTE predicate on the "step_index" field.
func StepIndexLTE(v int) predicate.RunStep {
	return predicate.RunStep(sql.FieldLTE(FieldStepIndex, v))
}

// ProtocolKeyEQ applies the EQ predicate on the "protocol_key" field.
func ProtocolKeyEQ(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldEQ(FieldProtocolKey, v))
}

// ProtocolKeyNEQ applies the NEQ predicate on the "protocol_key" field.
func ProtocolKeyNEQ(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldNEQ(FieldProtocolKey, v))
}

// ProtocolKeyIn applies the In predicate on the "protocol_key" field.
func ProtocolKeyIn(vs ...string) predicate.RunStep {
	return predicate.RunStep(sql.FieldIn(FieldProtocolKey, vs...))
}

// ProtocolKeyNotIn applies the NotIn predicate on the "protocol_key" field.
func ProtocolKeyNotIn(vs ...string) predicate.RunStep {
	return predicate.RunStep(sql.FieldNotIn(FieldProtocolKey, vs...))
}

// ProtocolKeyGT applies the GT predicate on the "protocol_key" field.
func ProtocolKeyGT(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldGT(FieldProtocolKey, v))
}

// ProtocolKeyGTE applies the GTE predicate on the "protocol_key" field.
func ProtocolKeyGTE(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldGTE(FieldProtocolKey, v))
}

// ProtocolKeyLT applies the LT predicate on the "protocol_key" field.
func ProtocolKeyLT(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldLT(FieldProtocolKey, v))
}

// ProtocolKeyLTE applies the LTE predicate on the "protocol_key" field.
func ProtocolKeyLTE(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldLTE(FieldProtocolKey, v))
}

// ProtocolKeyContains applies the Contains predicate on the "protocol_key" field.
func ProtocolKeyContains(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldContains(FieldProtocolKey, v))
}

// ProtocolKeyHasPrefix applies the HasPrefix predicate on the "protocol_key" field.
func ProtocolKeyHasPrefix(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldHasPrefix(FieldProtocolKey, v))
}

// ProtocolKeyHasSuffix applies the HasSuffix predicate on the "protocol_key" field.
func ProtocolKeyHasSuffix(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldHasSuffix(FieldProtocolKey, v))
}

// ProtocolKeyEqualFold applies the EqualFold predicate on the "protocol_key" field.
func ProtocolKeyEqualFold(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldEqualFold(FieldProtocolKey, v))
}

// ProtocolKeyContainsFold applies the ContainsFold predicate on the "protocol_key" field.
func ProtocolKeyContainsFold(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldContainsFold(FieldProtocolKey, v))
}

// QuestionEQ applies the EQ predicate on the "question" field.
func QuestionEQ(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldEQ(FieldQuestion, v))
}

// QuestionNEQ applies the NEQ predicate on the "question" field.
func QuestionNEQ(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldNEQ(FieldQuestion, v))
}

// QuestionIn applies the In predicate on the "question" field.
func QuestionIn(vs ...string) predicate.RunStep {
	return predicate.RunStep(sql.FieldIn(FieldQuestion, vs...))
}

// QuestionNotIn applies the NotIn predicate on the "question" field.
func QuestionNotIn(vs ...string) predicate.RunStep {
	return predicate.RunStep(sql.FieldNotIn(FieldQuestion, vs...))
}

// QuestionGT applies the GT predicate on the "question" field.
func QuestionGT(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldGT(FieldQuestion, v))
}

// QuestionGTE applies the GTE predicate on the "question" field.
func QuestionGTE(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldGTE(FieldQuestion, v))
}

// QuestionLT applies the LT predicate on the "question" field.
func QuestionLT(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldLT(FieldQuestion, v))
}

// QuestionLTE applies the LTE predicate on the "question" field.
func QuestionLTE(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldLTE(FieldQuestion, v))
}

// QuestionContains applies the Contains predicate on the "question" field.
func QuestionContains(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldContains(FieldQuestion, v))
}

// QuestionHasPrefix applies the HasPrefix predicate on the "question" field.
func QuestionHasPrefix(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldHasPrefix(FieldQuestion, v))
}

// QuestionHasSuffix applies the HasSuffix predicate on the "question" field.
func QuestionHasSuffix(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldHasSuffix(FieldQuestion, v))
}

// QuestionEqualFold applies the EqualFold predicate on the "question" field.
func QuestionEqualFold(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldEqualFold(FieldQuestion, v))
}

// QuestionContainsFold applies the ContainsFold predicate on the "question" field.
func QuestionContainsFold(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldContainsFold(FieldQuestion, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.RunStep {
	return predicate.RunStep(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.RunStep {
	return predicate.RunStep(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.RunStep {
	return predicate.RunStep(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.RunStep {
	return predicate.RunStep(sql.FieldNotIn(FieldStatus, vs...))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.RunStep {
	return predicate.RunStep(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.RunStep {
	return predicate.RunStep(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.RunStep {
	return predicate.RunStep(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.RunStep {
	return predicate.RunStep(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.RunStep {
	return predicate.RunStep(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.RunStep {
	return predicate.RunStep(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.RunStep {
	return predicate.RunStep(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.RunStep {
	return predicate.RunStep(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.RunStep {
	return predicate.RunStep(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.RunStep {
	return predicate.RunStep(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.RunStep {
	return predicate.RunStep(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.RunStep {
	return predicate.RunStep(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.RunStep {
	return predicate.RunStep(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.RunStep {
	return predicate.RunStep(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.RunStep {
	return predicate.RunStep(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.RunStep {
	return predicate.RunStep(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.RunStep {
	return predicate.RunStep(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.RunStep {
	return predicate.RunStep(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.RunStep {
	return predicate.RunStep(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.RunStep {
	return predicate.RunStep(sql.FieldNotNull(FieldCompletedAt))
}

// SynthesisEQ applies the EQ predicate on the "synthesis" field.
func SynthesisEQ(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldEQ(FieldSynthesis, v))
}

// SynthesisNEQ applies the NEQ predicate on the "synthesis" field.
func SynthesisNEQ(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldNEQ(FieldSynthesis, v))
}

// SynthesisIn applies the In predicate on the "synthesis" field.
func SynthesisIn(vs ...string) predicate.RunStep {
	return predicate.RunStep(sql.FieldIn(FieldSynthesis, vs...))
}

// SynthesisNotIn applies the NotIn predicate on the "synthesis" field.
func SynthesisNotIn(vs ...string) predicate.RunStep {
	return predicate.RunStep(sql.FieldNotIn(FieldSynthesis, vs...))
}

// SynthesisGT applies the GT predicate on the "synthesis" field.
func SynthesisGT(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldGT(FieldSynthesis, v))
}

// SynthesisGTE applies the GTE predicate on the "synthesis" field.
func SynthesisGTE(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldGTE(FieldSynthesis, v))
}

// SynthesisLT applies the LT predicate on the "synthesis" field.
func SynthesisLT(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldLT(FieldSynthesis, v))
}

// SynthesisLTE applies the LTE predicate on the "synthesis" field.
func SynthesisLTE(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldLTE(FieldSynthesis, v))
}

// SynthesisContains applies the Contains predicate on the "synthesis" field.
func SynthesisContains(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldContains(FieldSynthesis, v))
}

// SynthesisHasPrefix applies the HasPrefix predicate on the "synthesis" field.
func SynthesisHasPrefix(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldHasPrefix(FieldSynthesis, v))
}

// SynthesisHasSuffix applies the HasSuffix predicate on the "synthesis" field.
func SynthesisHasSuffix(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldHasSuffix(FieldSynthesis, v))
}

// SynthesisIsNil applies the IsNil predicate on the "synthesis" field.
func SynthesisIsNil() predicate.RunStep {
	return predicate.RunStep(sql.FieldIsNull(FieldSynthesis))
}

// SynthesisNotNil applies the NotNil predicate on the "synthesis" field.
func SynthesisNotNil() predicate.RunStep {
	return predicate.RunStep(sql.FieldNotNull(FieldSynthesis))
}

// SynthesisEqualFold applies the EqualFold predicate on the "synthesis" field.
func SynthesisEqualFold(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldEqualFold(FieldSynthesis, v))
}

// SynthesisContainsFold applies the ContainsFold predicate on the "synthesis" field.
func SynthesisContainsFold(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldContainsFold(FieldSynthesis, v))
}

// ResultJSONEQ applies the EQ predicate on the "result_json" field.
func ResultJSONEQ(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldEQ(FieldResultJSON, v))
}

// ResultJSONNEQ applies the NEQ predicate on the "result_json" field.
func ResultJSONNEQ(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldNEQ(FieldResultJSON, v))
}

// ResultJSONIn applies the In predicate on the "result_json" field.
func ResultJSONIn(vs ...string) predicate.RunStep {
	return predicate.RunStep(sql.FieldIn(FieldResultJSON, vs...))
}

// ResultJSONNotIn applies the NotIn predicate on the "result_json" field.
func ResultJSONNotIn(vs ...string) predicate.RunStep {
	return predicate.RunStep(sql.FieldNotIn(FieldResultJSON, vs...))
}

// ResultJSONGT applies the GT predicate on the "result_json" field.
func ResultJSONGT(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldGT(FieldResultJSON, v))
}

// ResultJSONGTE applies the GTE predicate on the "result_json" field.
func ResultJSONGTE(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldGTE(FieldResultJSON, v))
}

// ResultJSONLT applies the LT predicate on the "result_json" field.
func ResultJSONLT(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldLT(FieldResultJSON, v))
}

// ResultJSONLTE applies the LTE predicate on the "result_json" field.
func ResultJSONLTE(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldLTE(FieldResultJSON, v))
}

// ResultJSONContains applies the Contains predicate on the "result_json" field.
func ResultJSONContains(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldContains(FieldResultJSON, v))
}

// ResultJSONHasPrefix applies the HasPrefix predicate on the "result_json" field.
func ResultJSONHasPrefix(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldHasPrefix(FieldResultJSON, v))
}

// ResultJSONHasSuffix applies the HasSuffix predicate on the "result_json" field.
func ResultJSONHasSuffix(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldHasSuffix(FieldResultJSON, v))
}

// ResultJSONIsNil applies the IsNil predicate on the "result_json" field.
func ResultJSONIsNil() predicate.RunStep {
	return predicate.RunStep(sql.FieldIsNull(FieldResultJSON))
}

// ResultJSONNotNil applies the NotNil predicate on the "result_json" field.
func ResultJSONNotNil() predicate.RunStep {
	return predicate.RunStep(sql.FieldNotNull(FieldResultJSON))
}

// ResultJSONEqualFold applies the EqualFold predicate on the "result_json" field.
func ResultJSONEqualFold(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldEqualFold(FieldResultJSON, v))
}

// ResultJSONContainsFold applies the ContainsFold predicate on the "result_json" field.
func ResultJSONContainsFold(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldContainsFold(FieldResultJSON, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.RunStep {
	return predicate.RunStep(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.RunStep {
	return predicate.RunStep(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.RunStep {
	return predicate.RunStep(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.RunStep {
	return predicate.RunStep(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.RunStep {
	return predicate.RunStep(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RunStep {
	return predicate.RunStep(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RunStep {
	return predicate.RunStep(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RunStep {
	return predicate.RunStep(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RunStep {
	return predicate.RunStep(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RunStep {
	return predicate.RunStep(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RunStep {
	return predicate.RunStep(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RunStep {
	return predicate.RunStep(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RunStep {
	return predicate.RunStep(sql.FieldLTE(FieldCreatedAt, v))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.RunStep {
	return predicate.RunStep(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.Run) predicate.RunStep {
	return predicate.RunStep(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasOutputs applies the HasEdge predicate on the "outputs" edge.
func HasOutputs() predicate.RunStep {
	return predicate.RunStep(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, OutputsTable, OutputsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOutputsWith applies the HasEdge predicate on the "outputs" edge with a given conditions (other predicates).
func HasOutputsWith(preds ...predicate.AgentOutput) predicate.RunStep {
	return predicate.RunStep(func(s *sql.Selector) {
		step := newOutputsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RunStep) predicate.RunStep {
	return predicate.RunStep(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RunStep) predicate.RunStep {
	return predicate.RunStep(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RunStep) predicate.RunStep {
	return predicate.RunStep(sql.NotPredicates(p))
}
