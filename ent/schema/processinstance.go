package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProcessInstance holds the schema definition for a single execution of a
// ProcessDefinition.
type ProcessInstance struct {
	ent.Schema
}

// Fields of the ProcessInstance.
func (ProcessInstance) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("instance_id").
			Unique().
			Immutable(),
		field.String("definition_id").
			Immutable(),
		field.Enum("status").
			Values("RUNNING", "SUSPENDED", "COMPLETED", "ERROR").
			Default("RUNNING"),
		field.Time("start_time").
			Default(time.Now).
			Immutable(),
		field.Time("end_time").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("Worker that last processed this instance"),
		field.String("start_event_id").
			Optional().
			Nillable(),
	}
}

// Edges of the ProcessInstance.
func (ProcessInstance) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("definition", ProcessDefinition.Type).
			Ref("instances").
			Field("definition_id").
			Unique().
			Required().
			Immutable(),
		edge.To("variables", Variable.Type),
		edge.To("activity_logs", ActivityLog.Type),
	}
}

// Indexes of the ProcessInstance.
func (ProcessInstance) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("definition_id"),
	}
}
