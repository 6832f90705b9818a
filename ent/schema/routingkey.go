package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RoutingKey maps one external routing key (Slack channel, GitHub repo,
// PagerDuty service, ...) to exactly one (org_id, team_node_id). The unique
// index on (source, key) is what makes a second claim fail.
type RoutingKey struct {
	ent.Schema
}

// Fields of the RoutingKey.
func (RoutingKey) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.Enum("source").
			Values("slack", "github", "pagerduty", "incidentio", "teams", "gchat"),
		field.String("key"),
		field.String("org_id"),
		field.String("team_node_id"),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Indexes of the RoutingKey.
func (RoutingKey) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("source", "key").
			Unique(),
		index.Fields("org_id", "team_node_id"),
	}
}
