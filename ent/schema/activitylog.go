package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ActivityLog holds the schema definition for the append-only audit trail.
// This is the primary debugging artifact — every lifecycle transition and
// node dispatch the run loop performs writes one row here.
type ActivityLog struct {
	ent.Schema
}

// Fields of the ActivityLog.
func (ActivityLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("instance_id").
			Immutable(),
		field.Enum("activity_type").
			Values(
				"INSTANCE_CREATED",
				"INSTANCE_STARTED",
				"NODE_ENTERED",
				"NODE_COMPLETED",
				"SERVICE_TASK_EXECUTED",
				"INSTANCE_SUSPENDED",
				"INSTANCE_RESUMED",
				"INSTANCE_COMPLETED",
				"INSTANCE_ERROR",
				"NODE_ERROR",
			).
			Immutable(),
		field.String("node_id").
			Optional().
			Nillable().
			Immutable(),
		field.JSON("details", map[string]any{}).
			Optional().
			Immutable(),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ActivityLog.
func (ActivityLog) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("instance", ProcessInstance.Type).
			Ref("activity_logs").
			Field("instance_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ActivityLog.
func (ActivityLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("instance_id", "timestamp"),
	}
}
