package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PipelineStep holds the schema definition for one step of a pipeline.
type PipelineStep struct {
	ent.Schema
}

// Fields of the PipelineStep.
func (PipelineStep) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("step_id").
			Unique().
			Immutable(),
		field.String("pipeline_id").
			Immutable(),
		field.Int("step_index").
			Comment("Position in pipeline: 0, 1, 2..."),
		field.String("protocol_key"),
		field.Text("question_template").
			Comment("May reference {prev_output} and {question}"),
		field.JSON("agent_keys", []string{}).
			Optional().
			Comment("Step-specific roster; empty inherits the run's roster"),
		field.Int("rounds").
			Optional().
			Comment("Round override for round-based protocols"),
		field.String("thinking_model").
			Optional().
			Comment("Per-step override of the default thinking model"),
		field.String("orchestration_model").
			Optional().
			Comment("Per-step override of the default orchestration model"),
		field.Bool("output_passthrough").
			Default(false).
			Comment("Pass the step's synthesis verbatim as the next step's {prev_output} without re-synthesis"),
	}
}

// Edges of the PipelineStep.
func (PipelineStep) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("pipeline", Pipeline.Type).
			Ref("steps").
			Field("pipeline_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the PipelineStep.
func (PipelineStep) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("pipeline_id", "step_index").
			Unique(),
	}
}
