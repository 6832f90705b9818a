package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WebhookDelivery deduplicates vendor webhook deliveries. The unique index on
// (vendor, event_id) lets a redelivered event return the prior outcome.
type WebhookDelivery struct {
	ent.Schema
}

// Fields of the WebhookDelivery.
func (WebhookDelivery) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("vendor"),
		field.String("event_id"),
		field.String("org_id").
			Optional(),
		field.String("team_node_id").
			Optional(),
		field.String("outcome").
			Optional(),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Indexes of the WebhookDelivery.
func (WebhookDelivery) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("vendor", "event_id").
			Unique(),
		index.Fields("created_at"),
	}
}
