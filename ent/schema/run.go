package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Run holds the schema definition for one protocol or pipeline execution.
type Run struct {
	ent.Schema
}

// Fields of the Run.
func (Run) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_id").
			Unique().
			Immutable(),
		field.Enum("kind").
			Values("protocol", "pipeline"),
		field.Text("question").
			Comment("The strategic question as submitted (full-text searchable)"),
		field.String("protocol_key").
			Optional().
			Comment("Set for kind=protocol"),
		field.String("pipeline_id").
			Optional().
			Nillable().
			Comment("Set for kind=pipeline"),
		field.String("team_id").
			Optional().
			Nillable(),
		field.JSON("agent_keys", []string{}).
			Optional().
			Comment("Resolved roster at submission time"),
		field.Int("rounds").
			Optional(),
		field.Enum("status").
			Values("pending", "running", "completed", "failed", "cancelled").
			Default("pending"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Int("duration_ms").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Text("synthesis").
			Optional().
			Nillable().
			Comment("Final recommendation (full-text searchable)"),
		field.Text("result_json").
			Optional().
			Nillable().
			Comment("Serialized protocol result"),
		field.Int("input_tokens").
			Optional(),
		field.Int("output_tokens").
			Optional(),
		field.Float("cost_usd").
			Optional(),
	}
}

// Edges of the Run.
func (Run) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("steps", RunStep.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("outputs", AgentOutput.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Run.
func (Run) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("protocol_key"),
		index.Fields("status", "created_at"),
	}
}
