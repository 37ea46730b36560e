package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RunStep holds the schema definition for one pipeline step's execution
// within a run.
type RunStep struct {
	ent.Schema
}

// Fields of the RunStep.
func (RunStep) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_step_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.Int("step_index"),
		field.String("protocol_key"),
		field.Text("question").
			Comment("Question after {prev_output} substitution"),
		field.Enum("status").
			Values("pending", "running", "completed", "failed", "skipped").
			Default("pending"),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Text("synthesis").
			Optional().
			Nillable(),
		field.Text("result_json").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the RunStep.
func (RunStep) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", Run.Type).
			Ref("steps").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
		edge.To("outputs", AgentOutput.Type),
	}
}

// Indexes of the RunStep.
func (RunStep) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "step_index").
			Unique(),
	}
}
