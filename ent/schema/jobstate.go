package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// JobState holds the schema definition for the JobState entity.
// One row per background job (auto-processing scheduler, maintenance
// jobs), keyed by job name. Counters reset when the process restarts.
type JobState struct {
	ent.Schema
}

// Fields of the JobState.
func (JobState) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_name").
			Unique().
			Immutable(),
		field.Time("last_check_at").
			Optional().
			Nillable(),
		field.Int("currently_processing_doc_id").
			Optional().
			Nillable(),
		field.Int("processed_since_start").
			Default(0),
		field.Int("errors_since_start").
			Default(0),
		field.Bool("paused").
			Default(false),
		field.String("paused_reason").
			Optional().
			Nillable(),
	}
}

// Annotations of the JobState.
func (JobState) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "job_states"},
	}
}
