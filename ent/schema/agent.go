package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Agent holds the schema definition for custom advisor agents. Builtin agents
// are code-registered and never stored; the API merges both views.
type Agent struct {
	ent.Schema
}

// Fields of the Agent.
func (Agent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_key").
			Unique().
			Immutable().
			Comment("Roster key, e.g. 'cfo' or 'supply-chain-advisor'"),
		field.String("display_name"),
		field.String("category").
			Optional().
			Comment("Roster grouping for @category stage filters"),
		field.Text("system_prompt"),
		field.String("model_id").
			Optional().
			Comment("Pinned model; empty means the run's thinking model"),
		field.Int("max_tokens").
			Optional(),
		field.Float("temperature").
			Optional().
			Nillable(),
		field.JSON("frameworks", []string{}).
			Optional().
			Comment("Named analysis frameworks appended to the system prompt"),
		field.Text("deliverable_template").
			Optional(),
		field.Text("communication_style").
			Optional(),
		field.JSON("tools", []string{}).
			Optional().
			Comment("Tool names this agent may call"),
		field.JSON("context_scope", []string{}).
			Optional().
			Comment("Blackboard scopes visible to this agent; empty sees all"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Agent.
func (Agent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("category"),
	}
}
