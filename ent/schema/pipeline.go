package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Pipeline holds the schema definition for multi-step protocol sequences.
type Pipeline struct {
	ent.Schema
}

// Fields of the Pipeline.
func (Pipeline) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("pipeline_id").
			Unique().
			Immutable(),
		field.String("name").
			Unique(),
		field.Text("description").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Pipeline.
func (Pipeline) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("steps", PipelineStep.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
