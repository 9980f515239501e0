package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProcessDefinition holds the schema definition for a BPMN process definition.
// Immutable per version — versions are separate rows, never mutated
// after creation.
type ProcessDefinition struct {
	ent.Schema
}

// Fields of the ProcessDefinition.
func (ProcessDefinition) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("definition_id").
			Unique().
			Immutable(),
		field.String("name").
			Immutable(),
		field.Int("version").
			Immutable().
			Comment("Monotonic per definition id"),
		field.Text("bpmn_xml").
			Immutable().
			Comment("Source of truth for the graph; parsed on demand"),
		field.JSON("variable_definitions", []map[string]any{}).
			Optional().
			Immutable(),
		field.String("current_branch").
			Optional().
			Nillable(),
	}
}

// Edges of the ProcessDefinition.
func (ProcessDefinition) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("instances", ProcessInstance.Type),
	}
}

// Indexes of the ProcessDefinition.
func (ProcessDefinition) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name", "version").
			Annotations(entsql.IndexWhere("true")),
	}
}
