package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentOutput holds the schema definition for one agent's contribution to a
// run, flattened from the protocol result for querying.
type AgentOutput struct {
	ent.Schema
}

// Fields of the AgentOutput.
func (AgentOutput) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("output_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.String("run_step_id").
			Optional().
			Immutable().
			Comment("Owning pipeline step; unset for single-protocol runs"),
		field.String("agent_name").
			Comment("Display name, or '_synthesis' for the merged recommendation"),
		field.String("model_id").
			Optional().
			Comment("Model that produced the output; empty for system rows"),
		field.Int("round").
			Optional().
			Comment("Round number for round-structured protocols"),
		field.String("stage").
			Optional().
			Comment("Stage name for stage-structured protocols"),
		field.Text("output"),
		field.JSON("tool_calls", []string{}).
			Optional().
			Comment("Tool names invoked while producing the output, in call order"),
		field.Int("input_tokens").
			Optional(),
		field.Int("output_tokens").
			Optional(),
		field.Float("cost_usd").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the AgentOutput.
func (AgentOutput) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", Run.Type).
			Ref("outputs").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
		edge.From("step", RunStep.Type).
			Ref("outputs").
			Field("run_step_id").
			Unique().
			Immutable(),
	}
}

// Indexes of the AgentOutput.
func (AgentOutput) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id"),
		index.Fields("run_id", "agent_name"),
	}
}
