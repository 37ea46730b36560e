// Code generated by ent, DO NOT EDIT.

package agentoutput

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/consilium-ai/consilium/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldContainsFold(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldEQ(FieldRunID, v))
}

// RunStepID applies equality check predicate on the "run_step_id" field. It's identical to RunStepIDEQ.
func RunStepID(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldEQ(FieldRunStepID, v))
}

// AgentName applies equality check predicate on the "agent_name" field. It's identical to AgentNameEQ.
func AgentName(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldEQ(FieldAgentName, v))
}

// ModelID applies equality check predicate on the "model_id" field. It's identical to ModelIDEQ.
func ModelID(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldEQ(FieldModelID, v))
}

// Round applies equality check predicate on the "round" field. It's identical to RoundEQ.
func Round(v int) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldEQ(FieldRound, v))
}

// Stage applies equality check predicate on the "stage" field. It's identical to StageEQ.
func Stage(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldEQ(FieldStage, v))
}

// Output applies equality check predicate on the "output" field. It's identical to OutputEQ.
func Output(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldEQ(FieldOutput, v))
}

// InputTokens applies equality check predicate on the "input_tokens" field. It's identical to InputTokensEQ.
func InputTokens(v int) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldEQ(FieldInputTokens, v))
}

// OutputTokens applies equality check predicate on the "output_tokens" field. It's identical to OutputTokensEQ.
func OutputTokens(v int) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldEQ(FieldOutputTokens, v))
}

// CostUsd applies equality check predicate on the "cost_usd" field. It's identical to CostUsdEQ.
func CostUsd(v float64) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldEQ(FieldCostUsd, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldEQ(FieldCreatedAt, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldContainsFold(FieldRunID, v))
}

// RunStepIDEQ applies the EQ predicate on the "run_step_id" field.
func RunStepIDEQ(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldEQ(FieldRunStepID, v))
}

// RunStepIDNEQ applies the NEQ predicate on the "run_step_id" field.
func RunStepIDNEQ(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldNEQ(FieldRunStepID, v))
}

// RunStepIDIn applies the In predicate on the "run_step_id" field.
func RunStepIDIn(vs ...string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldIn(FieldRunStepID, vs...))
}

// RunStepIDNotIn applies the NotIn predicate on the "run_step_id" field.
func RunStepIDNotIn(vs ...string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldNotIn(FieldRunStepID, vs...))
}

// RunStepIDGT applies the GT predicate on the "run_step_id" field.
func RunStepIDGT(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldGT(FieldRunStepID, v))
}

// RunStepIDGTE applies the GTE predicate on the "run_step_id" field.
func RunStepIDGTE(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldGTE(FieldRunStepID, v))
}

// RunStepIDLT applies the LT predicate on the "run_step_id" field.
func RunStepIDLT(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldLT(FieldRunStepID, v))
}

// RunStepIDLTE applies the LTE predicate on the "run_step_id" field.
func RunStepIDLTE(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldLTE(FieldRunStepID, v))
}

// RunStepIDContains applies the Contains predicate on the "run_step_id" field.
func RunStepIDContains(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldContains(FieldRunStepID, v))
}

// RunStepIDHasPrefix applies the HasPrefix predicate on the "run_step_id" field.
func RunStepIDHasPrefix(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldHasPrefix(FieldRunStepID, v))
}

// RunStepIDHasSuffix applies the HasSuffix predicate on the "run_step_id" field.
func RunStepIDHasSuffix(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldHasSuffix(FieldRunStepID, v))
}

// RunStepIDIsNil applies the IsNil predicate on the "run_step_id" field.
func RunStepIDIsNil() predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldIsNull(FieldRunStepID))
}

// RunStepIDNotNil applies the NotNil predicate on the "run_step_id" field.
func RunStepIDNotNil() predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldNotNull(FieldRunStepID))
}

// RunStepIDEqualFold applies the EqualFold predicate on the "run_step_id" field.
func RunStepIDEqualFold(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldEqualFold(FieldRunStepID, v))
}

// RunStepIDContainsFold applies the ContainsFold predicate on the "run_step_id" field.
func RunStepIDContainsFold(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldContainsFold(FieldRunStepID, v))
}

// AgentNameEQ applies the EQ predicate on the "agent_name" field.
func AgentNameEQ(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldEQ(FieldAgentName, v))
}

// AgentNameNEQ applies the NEQ predicate on the "agent_name" field.
func AgentNameNEQ(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldNEQ(FieldAgentName, v))
}

// AgentNameIn applies the In predicate on the "agent_name" field.
func AgentNameIn(vs ...string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldIn(FieldAgentName, vs...))
}

// AgentNameNotIn applies the NotIn predicate on the "agent_name" field.
func AgentNameNotIn(vs ...string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldNotIn(FieldAgentName, vs...))
}

// AgentNameGT applies the GT predicate on the "agent_name" field.
func AgentNameGT(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldGT(FieldAgentName, v))
}

// AgentNameGTE applies the GTE predicate on the "agent_name" field.
func AgentNameGTE(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldGTE(FieldAgentName, v))
}

// AgentNameLT applies the LT predicate on the "agent_name" field.
func AgentNameLT(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldLT(FieldAgentName, v))
}

// AgentNameLTE applies the LTE predicate on the "agent_name" field.
func AgentNameLTE(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldLTE(FieldAgentName, v))
}

// AgentNameContains applies the Contains predicate on the "agent_name" field.
func AgentNameContains(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldContains(FieldAgentName, v))
}

// AgentNameHasPrefix applies the HasPrefix predicate on the "agent_name" field.
func AgentNameHasPrefix(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldHasPrefix(FieldAgentName, v))
}

// AgentNameHasSuffix applies the HasSuffix predicate on the "agent_name" field.
func AgentNameHasSuffix(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldHasSuffix(FieldAgentName, v))
}

// AgentNameEqualFold applies the EqualFold predicate on the "agent_name" field.
func AgentNameEqualFold(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldEqualFold(FieldAgentName, v))
}

// AgentNameContainsFold applies the ContainsFold predicate on the "agent_name" field.
func AgentNameContainsFold(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldContainsFold(FieldAgentName, v))
}

// ModelIDEQ applies the EQ predicate on the "model_id" field.
func ModelIDEQ(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldEQ(FieldModelID, v))
}

// ModelIDNEQ applies the NEQ predicate on the "model_id" field.
func ModelIDNEQ(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldNEQ(FieldModelID, v))
}

// ModelIDIn applies the In predicate on the "model_id" field.
func ModelIDIn(vs ...string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldIn(FieldModelID, vs...))
}

// ModelIDNotIn applies the NotIn predicate on the "model_id" field.
func ModelIDNotIn(vs ...string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldNotIn(FieldModelID, vs...))
}

// ModelIDGT applies the GT predicate on the "model_id" field.
func ModelIDGT(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldGT(FieldModelID, v))
}

// ModelIDGTE applies the GTE predicate on the "model_id" field.
func ModelIDGTE(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldGTE(FieldModelID, v))
}

// ModelIDLT applies the LT predicate on the "model_id" field.
func ModelIDLT(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldLT(FieldModelID, v))
}

// ModelIDLTE applies the LTE predicate on the "model_id" field.
func ModelIDLTE(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldLTE(FieldModelID, v))
}

// ModelIDContains applies the Contains predicate on the "model_id" field.
func ModelIDContains(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldContains(FieldModelID, v))
}

// ModelIDHasPrefix applies the HasPrefix predicate on the "model_id" field.
func ModelIDHasPrefix(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldHasPrefix(FieldModelID, v))
}

// ModelIDHasSuffix applies the HasSuffix predicate on the "model_id" field.
func ModelIDHasSuffix(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldHasSuffix(FieldModelID, v))
}

// ModelIDIsNil applies the IsNil predicate on the "model_id" field.
func ModelIDIsNil() predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldIsNull(FieldModelID))
}

// ModelIDNotNil applies the NotNil predicate on the "model_id" field.
func ModelIDNotNil() predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldNotNull(FieldModelID))
}

// ModelIDEqualFold applies the EqualFold predicate on the "model_id" field.
func ModelIDEqualFold(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldEqualFold(FieldModelID, v))
}

// ModelIDContainsFold applies the ContainsFold predicate on the "model_id" field.
func ModelIDContainsFold(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldContainsFold(FieldModelID, v))
}

// RoundEQ applies the EQ predicate on the "round" field.
func RoundEQ(v int) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldEQ(FieldRound, v))
}

// RoundNEQ applies the NEQ predicate on the "round" field.
func RoundNEQ(v int) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldNEQ(FieldRound, v))
}

// RoundIn applies the In predicate on the "round" field.
func RoundIn(vs ...int) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldIn(FieldRound, vs...))
}

// RoundNotIn applies the NotIn predicate on the "round" field.
func RoundNotIn(vs ...int) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldNotIn(FieldRound, vs...))
}

// RoundGT applies the GT predicate on the "round" field.
func RoundGT(v int) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldGT(FieldRound, v))
}

// RoundGTE applies the GTE predicate on the "round" field.
func RoundGTE(v int) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldGTE(FieldRound, v))
}

// RoundLT applies the LT predicate on the "round" field.
func RoundLT(v int) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldLT(FieldRound, v))
}

// RoundLTE applies the LTE predicate on the "round" field.
func RoundLTE(v int) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldLTE(FieldRound, v))
}

// RoundIsNil applies the IsNil predicate on the "round" field.
func RoundIsNil() predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldIsNull(FieldRound))
}

// RoundNotNil applies the NotNil predicate on the "round" field.
func RoundNotNil() predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldNotNull(FieldRound))
}

// StageEQ applies the EQ predicate on the "stage" field.
func StageEQ(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldEQ(FieldStage, v))
}

// StageNEQ applies the NEQ predicate on the "stage" field.
func StageNEQ(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldNEQ(FieldStage, v))
}

// StageIn applies the In predicate on the "stage" field.
func StageIn(vs ...string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldIn(FieldStage, vs...))
}

// StageNotIn applies the NotIn predicate on the "stage" field.
func StageNotIn(vs ...string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldNotIn(FieldStage, vs...))
}

// StageGT applies the GT predicate on the "stage" field.
func StageGT(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldGT(FieldStage, v))
}

// StageGTE applies the GTE predicate on the "stage" field.
func StageGTE(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldGTE(FieldStage, v))
}

// StageLT applies the LT predicate on the "stage" field.
func StageLT(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldLT(FieldStage, v))
}

// StageLTE applies the LTE predicate on the "stage" field.
func StageLTE(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldLTE(FieldStage, v))
}

// StageContains applies the Contains predicate on the "stage" field.
func StageContains(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldContains(FieldStage, v))
}

// StageHasPrefix applies the HasPrefix predicate on the "stage" field.
func StageHasPrefix(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldHasPrefix(FieldStage, v))
}

// StageHasSuffix applies the HasSuffix predicate on the "stage" field.
func StageHasSuffix(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldHasSuffix(FieldStage, v))
}

// StageIsNil applies the IsNil predicate on the "stage" field.
func StageIsNil() predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldIsNull(FieldStage))
}

// StageNotNil applies the NotNil predicate on the "stage" field.
func StageNotNil() predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldNotNull(FieldStage))
}

// StageEqualFold applies the EqualFold predicate on the "stage" field.
func StageEqualFold(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldEqualFold(FieldStage, v))
}

// StageContainsFold applies the ContainsFold predicate on the "stage" field.
func StageContainsFold(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldContainsFold(FieldStage, v))
}

// OutputEQ applies the EQ predicate on the "output" field.
func OutputEQ(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldEQ(FieldOutput, v))
}

// OutputNEQ applies the NEQ predicate on the "output" field.
func OutputNEQ(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldNEQ(FieldOutput, v))
}

// OutputIn applies the In predicate on the "output" field.
func OutputIn(vs ...string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldIn(FieldOutput, vs...))
}

// OutputNotIn applies the NotIn predicate on the "output" field.
func OutputNotIn(vs ...string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldNotIn(FieldOutput, vs...))
}

// OutputGT applies the GT predicate on the "output" field.
func OutputGT(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldGT(FieldOutput, v))
}

// OutputGTE applies the GTE predicate on the "output" field.
func OutputGTE(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldGTE(FieldOutput, v))
}

// OutputLT applies the LT predicate on the "output" field.
func OutputLT(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldLT(FieldOutput, v))
}

// OutputLTE applies the LTE predicate on the "output" field.
func OutputLTE(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldLTE(FieldOutput, v))
}

// OutputContains applies the Contains predicate on the "output" field.
func OutputContains(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldContains(FieldOutput, v))
}

// OutputHasPrefix applies the HasPrefix predicate on the "output" field.
func OutputHasPrefix(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldHasPrefix(FieldOutput, v))
}

// OutputHasSuffix applies the HasSuffix predicate on the "output" field.
func OutputHasSuffix(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldHasSuffix(FieldOutput, v))
}

// OutputEqualFold applies the EqualFold predicate on the "output" field.
func OutputEqualFold(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldEqualFold(FieldOutput, v))
}

// OutputContainsFold applies the ContainsFold predicate on the "output" field.
func OutputContainsFold(v string) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldContainsFold(FieldOutput, v))
}

// ToolCallsIsNil applies the IsNil predicate on the "tool_calls" field.
func ToolCallsIsNil() predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldIsNull(FieldToolCalls))
}

// ToolCallsNotNil applies the NotNil predicate on the "tool_calls" field.
func ToolCallsNotNil() predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldNotNull(FieldToolCalls))
}

// InputTokensEQ applies the EQ predicate on the "input_tokens" field.
func InputTokensEQ(v int) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldEQ(FieldInputTokens, v))
}

// InputTokensNEQ applies the NEQ predicate on the "input_tokens" field.
func InputTokensNEQ(v int) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldNEQ(FieldInputTokens, v))
}

// InputTokensIn applies the In predicate on the "input_tokens" field.
func InputTokensIn(vs ...int) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldIn(FieldInputTokens, vs...))
}

// InputTokensNotIn applies the NotIn predicate on the "input_tokens" field.
func InputTokensNotIn(vs ...int) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldNotIn(FieldInputTokens, vs...))
}

// InputTokensGT applies the GT predicate on the "input_tokens" field.
func InputTokensGT(v int) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldGT(FieldInputTokens, v))
}

// InputTokensGTE applies the GTE predicate on the "input_tokens" field.
func InputTokensGTE(v int) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldGTE(FieldInputTokens, v))
}

// InputTokensLT applies the LT predicate on the "input_tokens" field.
func InputTokensLT(v int) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldLT(FieldInputTokens, v))
}

// InputTokensLTE applies the LTE predicate on the "input_tokens" field.
func InputTokensLTE(v int) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldLTE(FieldInputTokens, v))
}

// InputTokensIsNil applies the IsNil predicate on the "input_tokens" field.
func InputTokensIsNil() predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldIsNull(FieldInputTokens))
}

// InputTokensNotNil applies the NotNil predicate on the "input_tokens" field.
func InputTokensNotNil() predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldNotNull(FieldInputTokens))
}

// OutputTokensEQ applies the EQ predicate on the "output_tokens" field.
func OutputTokensEQ(v int) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldEQ(FieldOutputTokens, v))
}

// OutputTokensNEQ applies the NEQ predicate on the "output_tokens" field.
func OutputTokensNEQ(v int) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldNEQ(FieldOutputTokens, v))
}

// OutputTokensIn applies the In predicate on the "output_tokens" field.
func OutputTokensIn(vs ...int) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldIn(FieldOutputTokens, vs...))
}

// OutputTokensNotIn applies the NotIn predicate on the "output_tokens" field.
func OutputTokensNotIn(vs ...int) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldNotIn(FieldOutputTokens, vs...))
}

// OutputTokensGT applies the GT predicate on the "output_tokens" field.
func OutputTokensGT(v int) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldGT(FieldOutputTokens, v))
}

// OutputTokensGTE applies the GTE predicate on the "output_tokens" field.
func OutputTokensGTE(v int) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldGTE(FieldOutputTokens, v))
}

// OutputTokensLT applies the LT predicate on the "output_tokens" field.
func OutputTokensLT(v int) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldLT(FieldOutputTokens, v))
}

// OutputTokensLTE applies the LTE predicate on the "output_tokens" field.
func OutputTokensLTE(v int) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldLTE(FieldOutputTokens, v))
}

// OutputTokensIsNil applies the IsNil predicate on the "output_tokens" field.
func OutputTokensIsNil() predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldIsNull(FieldOutputTokens))
}

// OutputTokensNotNil applies the NotNil predicate on the "output_tokens" field.
func OutputTokensNotNil() predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldNotNull(FieldOutputTokens))
}

// CostUsdEQ applies the EQ predicate on the "cost_usd" field.
func CostUsdEQ(v float64) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldEQ(FieldCostUsd, v))
}

// CostUsdNEQ applies the NEQ predicate on the "cost_usd" field.
func CostUsdNEQ(v float64) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldNEQ(FieldCostUsd, v))
}

// CostUsdIn applies the In predicate on the "cost_usd" field.
func CostUsdIn(vs ...float64) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldIn(FieldCostUsd, vs...))
}

// CostUsdNotIn applies the NotIn predicate on the "cost_usd" field.
func CostUsdNotIn(vs ...float64) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldNotIn(FieldCostUsd, vs...))
}

// CostUsdGT applies the GT predicate on the "cost_usd" field.
func CostUsdGT(v float64) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldGT(FieldCostUsd, v))
}

// CostUsdGTE applies the GTE predicate on the "cost_usd" field.
func CostUsdGTE(v float64) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldGTE(FieldCostUsd, v))
}

// CostUsdLT applies the LT predicate on the "cost_usd" field.
func CostUsdLT(v float64) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldLT(FieldCostUsd, v))
}

// CostUsdLTE applies the LTE predicate on the "cost_usd" field.
func CostUsdLTE(v float64) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldLTE(FieldCostUsd, v))
}

// CostUsdIsNil applies the IsNil predicate on the "cost_usd" field.
func CostUsdIsNil() predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldIsNull(FieldCostUsd))
}

// CostUsdNotNil applies the NotNil predicate on the "cost_usd" field.
func CostUsdNotNil() predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldNotNull(FieldCostUsd))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AgentOutput {
	return predicate.AgentOutput(sql.FieldLTE(FieldCreatedAt, v))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.AgentOutput {
	return predicate.AgentOutput(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.Run) predicate.AgentOutput {
	return predicate.AgentOutput(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasStep applies the HasEdge predicate on the "step" edge.
func HasStep() predicate.AgentOutput {
	return predicate.AgentOutput(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, StepTable, StepColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStepWith applies the HasEdge predicate on the "step" edge with a given conditions (other predicates).
func HasStepWith(preds ...predicate.RunStep) predicate.AgentOutput {
	return predicate.AgentOutput(func(s *sql.Selector) {
		step := newStepStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentOutput) predicate.AgentOutput {
	return predicate.AgentOutput(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentOutput) predicate.AgentOutput {
	return predicate.AgentOutput(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentOutput) predicate.AgentOutput {
	return predicate.AgentOutput(sql.NotPredicates(p))
}
