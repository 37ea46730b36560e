package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Team holds the schema definition for named agent rosters.
type Team struct {
	ent.Schema
}

// Fields of the Team.
func (Team) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("team_id").
			Unique().
			Immutable(),
		field.String("name").
			Unique(),
		field.Text("description").
			Optional(),
		field.JSON("agent_keys", []string{}).
			Comment("Roster keys, builtin or custom, in seating order"),
		field.String("default_protocol").
			Optional().
			Comment("Protocol key used when a run names the team but no protocol"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
