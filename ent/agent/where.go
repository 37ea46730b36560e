// Code generated by ent, DO NOT EDIT.

package agent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/consilium-ai/consilium/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldID, id))
}

// DisplayName applies equality check predicate on the "display_name" field. It's identical to DisplayNameEQ.
func DisplayName(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldDisplayName, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldCategory, v))
}

// SystemPrompt applies equality check predicate on the "system_prompt" field. It's identical to SystemPromptEQ.
func SystemPrompt(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldSystemPrompt, v))
}

// ModelID applies equality check predicate on the "model_id" field. It's identical to ModelIDEQ.
func ModelID(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldModelID, v))
}

// MaxTokens applies equality check predicate on the "max_tokens" field. It's identical to MaxTokensEQ.
func MaxTokens(v int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldMaxTokens, v))
}

// Temperature applies equality check predicate on the "temperature" field. It's identical to TemperatureEQ.
func Temperature(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldTemperature, v))
}

// DeliverableTemplate applies equality check predicate on the "deliverable_template" field. It's identical to DeliverableTemplateEQ.
func DeliverableTemplate(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldDeliverableTemplate, v))
}

// CommunicationStyle applies equality check predicate on the "communication_style" field. It's identical to CommunicationStyleEQ.
func CommunicationStyle(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldCommunicationStyle, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldUpdatedAt, v))
}

// DisplayNameEQ applies the EQ predicate on the "display_name" field.
func DisplayNameEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldDisplayName, v))
}

// DisplayNameNEQ applies the NEQ predicate on the "display_name" field.
func DisplayNameNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldDisplayName, v))
}

// DisplayNameIn applies the In predicate on the "display_name" field.
func DisplayNameIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldDisplayName, vs...))
}

// DisplayNameNotIn applies the NotIn predicate on the "display_name" field.
func DisplayNameNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldDisplayName, vs...))
}

// DisplayNameGT applies the GT predicate on the "display_name" field.
func DisplayNameGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldDisplayName, v))
}

// DisplayNameGTE applies the GTE predicate on the "display_name" field.
func DisplayNameGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldDisplayName, v))
}

// DisplayNameLT applies the LT predicate on the "display_name" field.
func DisplayNameLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldDisplayName, v))
}

// DisplayNameLTE applies the LTE predicate on the "display_name" field.
func DisplayNameLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldDisplayName, v))
}

// DisplayNameContains applies the Contains predicate on the "display_name" field.
func DisplayNameContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldDisplayName, v))
}

// DisplayNameHasPrefix applies the HasPrefix predicate on the "display_name" field.
func DisplayNameHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldDisplayName, v))
}

// DisplayNameHasSuffix applies the HasSuffix predicate on the "display_name" field.
func DisplayNameHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldDisplayName, v))
}

// DisplayNameEqualFold applies the EqualFold predicate on the "display_name" field.
func DisplayNameEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldDisplayName, v))
}

// DisplayNameContainsFold applies the ContainsFold predicate on the "display_name" field.
func DisplayNameContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldDisplayName, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryIsNil applies the IsNil predicate on the "category" field.
func CategoryIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldCategory))
}

// CategoryNotNil applies the NotNil predicate on the "category" field.
func CategoryNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldCategory))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldCategory, v))
}

// SystemPromptEQ applies the EQ predicate on the "system_prompt" field.
func SystemPromptEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldSystemPrompt, v))
}

// SystemPromptNEQ applies the NEQ predicate on the "system_prompt" field.
func SystemPromptNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldSystemPrompt, v))
}

// SystemPromptIn applies the In predicate on the "system_prompt" field.
func SystemPromptIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldSystemPrompt, vs...))
}

// SystemPromptNotIn applies the NotIn predicate on the "system_prompt" field.
func SystemPromptNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldSystemPrompt, vs...))
}

// SystemPromptGT applies the GT predicate on the "system_prompt" field.
func SystemPromptGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldSystemPrompt, v))
}

// SystemPromptGTE applies the GTE predicate on the "system_prompt" field.
func SystemPromptGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldSystemPrompt, v))
}

// SystemPromptLT applies the LT predicate on the "system_prompt" field.
func SystemPromptLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldSystemPrompt, v))
}

// SystemPromptLTE applies the LTE predicate on the "system_prompt" field.
func SystemPromptLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldSystemPrompt, v))
}

// SystemPromptContains applies the Contains predicate on the "system_prompt" field.
func SystemPromptContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldSystemPrompt, v))
}

// SystemPromptHasPrefix applies the HasPrefix predicate on the "system_prompt" field.
func SystemPromptHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldSystemPrompt, v))
}

// SystemPromptHasSuffix applies the HasSuffix predicate on the "system_prompt" field.
func SystemPromptHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldSystemPrompt, v))
}

// SystemPromptEqualFold applies the EqualFold predicate on the "system_prompt" field.
func SystemPromptEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldSystemPrompt, v))
}

// SystemPromptContainsFold applies the ContainsFold predicate on the "system_prompt" field.
func SystemPromptContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldSystemPrompt, v))
}

// ModelIDEQ applies the EQ predicate on the "model_id" field.
func ModelIDEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldModelID, v))
}

// ModelIDNEQ applies the NEQ predicate on the "model_id" field.
func ModelIDNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldModelID, v))
}

// ModelIDIn applies the In predicate on the "model_id" field.
func ModelIDIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldModelID, vs...))
}

// ModelIDNotIn applies the NotIn predicate on the "model_id" field.
func ModelIDNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldModelID, vs...))
}

// ModelIDGT applies the GT predicate on the "model_id" field.
func ModelIDGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldModelID, v))
}

// ModelIDGTE applies the GTE predicate on the "model_id" field.
func ModelIDGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldModelID, v))
}

// ModelIDLT applies the LT predicate on the "model_id" field.
func ModelIDLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldModelID, v))
}

// ModelIDLTE applies the LTE predicate on the "model_id" field.
func ModelIDLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldModelID, v))
}

// ModelIDContains applies the Contains predicate on the "model_id" field.
func ModelIDContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldModelID, v))
}

// ModelIDHasPrefix applies the HasPrefix predicate on the "model_id" field.
func ModelIDHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldModelID, v))
}

// ModelIDHasSuffix applies the HasSuffix predicate on the "model_id" field.
func ModelIDHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldModelID, v))
}

// ModelIDIsNil applies the IsNil predicate on the "model_id" field.
func ModelIDIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldModelID))
}

// ModelIDNotNil applies the NotNil predicate on the "model_id" field.
func ModelIDNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldModelID))
}

// ModelIDEqualFold applies the EqualFold predicate on the "model_id" field.
func ModelIDEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldModelID, v))
}

// ModelIDContainsFold applies the ContainsFold predicate on the "model_id" field.
func ModelIDContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldModelID, v))
}

// MaxTokensEQ applies the EQ predicate on the "max_tokens" field.
func MaxTokensEQ(v int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldMaxTokens, v))
}

// MaxTokensNEQ applies the NEQ predicate on the "max_tokens" field.
func MaxTokensNEQ(v int) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldMaxTokens, v))
}

// MaxTokensIn applies the In predicate on the "max_tokens" field.
func MaxTokensIn(vs ...int) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldMaxTokens, vs...))
}

// MaxTokensNotIn applies the NotIn predicate on the "max_tokens" field.
func MaxTokensNotIn(vs ...int) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldMaxTokens, vs...))
}

// MaxTokensGT applies the GT predicate on the "max_tokens" field.
func MaxTokensGT(v int) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldMaxTokens, v))
}

// MaxTokensGTE applies the GTE predicate on the "max_tokens" field.
func MaxTokensGTE(v int) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldMaxTokens, v))
}

// MaxTokensLT applies the LT predicate on the "max_tokens" field.
func MaxTokensLT(v int) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldMaxTokens, v))
}

// MaxTokensLTE applies the LTE predicate on the "max_tokens" field.
func MaxTokensLTE(v int) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldMaxTokens, v))
}

// MaxTokensIsNil applies the IsNil predicate on the "max_tokens" field.
func MaxTokensIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldMaxTokens))
}

// MaxTokensNotNil applies the NotNil predicate on the "max_tokens" field.
func MaxTokensNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldMaxTokens))
}

// TemperatureEQ applies the EQ predicate on the "temperature" field.
func TemperatureEQ(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldTemperature, v))
}

// TemperatureNEQ applies the NEQ predicate on the "temperature" field.
func TemperatureNEQ(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldTemperature, v))
}

// TemperatureIn applies the In predicate on the "temperature" field.
func TemperatureIn(vs ...float64) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldTemperature, vs...))
}

// TemperatureNotIn applies the NotIn predicate on the "temperature" field.
func TemperatureNotIn(vs ...float64) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldTemperature, vs...))
}

// TemperatureGT applies the GT predicate on the "temperature" field.
func TemperatureGT(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldTemperature, v))
}

// TemperatureGTE applies the GTE predicate on the "temperature" field.
func TemperatureGTE(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldTemperature, v))
}

// TemperatureLT applies the LT predicate on the "temperature" field.
func TemperatureLT(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldTemperature, v))
}

// TemperatureLTE applies the LTE predicate on the "temperature" field.
func TemperatureLTE(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldTemperature, v))
}

// TemperatureIsNil applies the IsNil predicate on the "temperature" field.
func TemperatureIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldTemperature))
}

// TemperatureNotNil applies the NotNil predicate on the "temperature" field.
func TemperatureNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldTemperature))
}

// FrameworksIsNil applies the IsNil predicate on the "frameworks" field.
func FrameworksIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldFrameworks))
}

// FrameworksNotNil applies the NotNil predicate on the "frameworks" field.
func FrameworksNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldFrameworks))
}

// DeliverableTemplateEQ applies the EQ predicate on the "deliverable_template" field.
func DeliverableTemplateEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldDeliverableTemplate, v))
}

// DeliverableTemplateNEQ applies the NEQ predicate on the "deliverable_template" field.
func DeliverableTemplateNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldDeliverableTemplate, v))
}

// DeliverableTemplateIn applies the In predicate on the "deliverable_template" field.
func DeliverableTemplateIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldDeliverableTemplate, vs...))
}

// DeliverableTemplateNotIn applies the NotIn predicate on the "deliverable_template" field.
func DeliverableTemplateNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldDeliverableTemplate, vs...))
}

// DeliverableTemplateGT applies the GT predicate on the "deliverable_template" field.
func DeliverableTemplateGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldDeliverableTemplate, v))
}

// DeliverableTemplateGTE applies the GTE predicate on the "deliverable_template" field.
func DeliverableTemplateGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldDeliverableTemplate, v))
}

// DeliverableTemplateLT applies the LT predicate on the "deliverable_template" field.
func DeliverableTemplateLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldDeliverableTemplate, v))
}

// DeliverableTemplateLTE applies the LTE predicate on the "deliverable_template" field.
func DeliverableTemplateLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldDeliverableTemplate, v))
}

// DeliverableTemplateContains applies the Contains predicate on the "deliverable_template" field.
func DeliverableTemplateContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldDeliverableTemplate, v))
}

// DeliverableTemplateHasPrefix applies the HasPrefix predicate on the "deliverable_template" field.
func DeliverableTemplateHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldDeliverableTemplate, v))
}

// DeliverableTemplateHasSuffix applies the HasSuffix predicate on the "deliverable_template" field.
func DeliverableTemplateHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldDeliverableTemplate, v))
}

// DeliverableTemplateIsNil applies the IsNil predicate on the "deliverable_template" field.
func DeliverableTemplateIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldDeliverableTemplate))
}

// DeliverableTemplateNotNil applies the NotNil predicate on the "deliverable_template" field.
func DeliverableTemplateNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldDeliverableTemplate))
}

// DeliverableTemplateEqualFold applies the EqualFold predicate on the "deliverable_template" field.
func DeliverableTemplateEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldDeliverableTemplate, v))
}

// DeliverableTemplateContainsFold applies the ContainsFold predicate on the "deliverable_template" field.
func DeliverableTemplateContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldDeliverableTemplate, v))
}

// CommunicationStyleEQ applies the EQ predicate on the "communication_style" field.
func CommunicationStyleEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldCommunicationStyle, v))
}

// CommunicationStyleNEQ applies the NEQ predicate on the "communication_style" field.
func CommunicationStyleNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldCommunicationStyle, v))
}

// CommunicationStyleIn applies the In predicate on the "communication_style" field.
func CommunicationStyleIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldCommunicationStyle, vs...))
}

// CommunicationStyleNotIn applies the NotIn predicate on the "communication_style" field.
func CommunicationStyleNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldCommunicationStyle, vs...))
}

// CommunicationStyleGT applies the GT predicate on the "communication_style" field.
func CommunicationStyleGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldCommunicationStyle, v))
}

// CommunicationStyleGTE applies the GTE predicate on the "communication_style" field.
func CommunicationStyleGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldCommunicationStyle, v))
}

// CommunicationStyleLT applies the LT predicate on the "communication_style" field.
func CommunicationStyleLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldCommunicationStyle, v))
}

// CommunicationStyleLTE applies the LTE predicate on the "communication_style" field.
func CommunicationStyleLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldCommunicationStyle, v))
}

// CommunicationStyleContains applies the Contains predicate on the "communication_style" field.
func CommunicationStyleContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldCommunicationStyle, v))
}

// CommunicationStyleHasPrefix applies the HasPrefix predicate on the "communication_style" field.
func CommunicationStyleHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldCommunicationStyle, v))
}

// CommunicationStyleHasSuffix applies the HasSuffix predicate on the "communication_style" field.
func CommunicationStyleHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldCommunicationStyle, v))
}

// CommunicationStyleIsNil applies the IsNil predicate on the "communication_style" field.
func CommunicationStyleIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldCommunicationStyle))
}

// CommunicationStyleNotNil applies the NotNil predicate on the "communication_style" field.
func CommunicationStyleNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldCommunicationStyle))
}

// CommunicationStyleEqualFold applies the EqualFold predicate on the "communication_style" field.
func CommunicationStyleEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldCommunicationStyle, v))
}

// CommunicationStyleContainsFold applies the ContainsFold predicate on the "communication_style" field.
func CommunicationStyleContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldCommunicationStyle, v))
}

// ToolsIsNil applies the IsNil predicate on the "tools" field.
func ToolsIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldTools))
}

// ToolsNotNil applies the NotNil predicate on the "tools" field.
func ToolsNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldTools))
}

// ContextScopeIsNil applies the IsNil predicate on the "context_scope" field.
func ContextScopeIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldContextScope))
}

// ContextScopeNotNil applies the NotNil predicate on the "context_scope" field.
func ContextScopeNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldContextScope))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.NotPredicates(p))
}
