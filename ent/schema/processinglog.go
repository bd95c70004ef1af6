package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProcessingLog holds the schema definition for the ProcessingLog entity.
// Append-only audit trail of pipeline activity, replayed by the UI.
type ProcessingLog struct {
	ent.Schema
}

// Fields of the ProcessingLog.
func (ProcessingLog) Fields() []ent.Field {
	return []ent.Field{
		field.Int("doc_id").
			Immutable(),
		field.String("step").
			Immutable().
			Comment("Pipeline stage name, or 'scheduler'/'review' for out-of-band entries"),
		field.String("event_type").
			Immutable(),
		field.JSON("data", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ProcessingLog.
func (ProcessingLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("doc_id", "created_at"),
		index.Fields("created_at"),
	}
}

// Annotations of the ProcessingLog.
func (ProcessingLog) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "processing_logs"},
	}
}
