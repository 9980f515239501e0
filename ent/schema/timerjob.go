package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TimerJob holds the schema for the scheduler's persistent job store.
// Two flavors share one table: a start-event job (InstanceID empty) fires by
// publishing process.started for a fresh instance; an instance-bound job
// (InstanceID set) fires an already-registered intermediate/boundary timer
// catch. Postgres is the single writer of timer jobs — Redis only carries
// a rehydration mirror
// (see faststore.TimerMetadata) for start-event jobs.
type TimerJob struct {
	ent.Schema
}

func (TimerJob) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable(),
		field.String("definition_id").
			Immutable(),
		field.String("node_id").
			Immutable(),
		field.String("instance_id").
			Optional().
			Immutable().
			Comment("empty for a timer start-event job; set for a boundary/intermediate catch"),
		field.String("timer_type").
			Immutable().
			Comment("duration | repetition | date"),
		field.String("timer_value").
			Immutable().
			Comment("raw ISO-8601 expression"),
		field.Time("next_run_time"),
		field.Int("remaining_fires").
			Optional().
			Nillable().
			Comment("repetition count remaining; nil means duration/date (one-shot) or unbounded repetition"),
		field.Bool("active").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (TimerJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("next_run_time", "active"),
		index.Fields("definition_id", "node_id", "instance_id").
			Unique(),
	}
}
