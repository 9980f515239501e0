package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Variable holds the schema definition for a process-instance variable.
// Unique per (instance_id, scope_id, name); versioned on every write so
// stale reads can be detected.
type Variable struct {
	ent.Schema
}

// Fields of the Variable.
func (Variable) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("instance_id").
			Immutable(),
		field.String("scope_id").
			Optional().
			Nillable().
			Comment("nil means instance-level (root scope)"),
		field.String("name"),
		field.Enum("value_type").
			Values("string", "integer", "float", "boolean", "json"),
		field.JSON("value_data", map[string]any{}),
		field.Int("version").
			Default(1),
	}
}

// Edges of the Variable.
func (Variable) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("instance", ProcessInstance.Type).
			Ref("variables").
			Field("instance_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Variable.
func (Variable) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("instance_id", "scope_id", "name").
			Unique(),
	}
}
