package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PendingReview holds the schema definition for the PendingReview entity.
// One row per value the pipeline could not auto-apply: either the
// confirmation loop exhausted its retry budget, or entity-creation policy
// requires a human to approve a net-new name.
type PendingReview struct {
	ent.Schema
}

// Fields of the PendingReview.
func (PendingReview) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("review_id").
			Unique().
			Immutable(),
		field.Int("doc_id").
			Immutable(),
		field.String("doc_title").
			Optional().
			Comment("Title snapshot at enqueue time; the DMS copy may change"),
		field.Enum("kind").
			Values("title", "correspondent", "document_type", "tag",
				"custom_field", "document_link", "schema_suggestion"),
		field.Text("suggestion").
			Comment("The analyst's proposed value"),
		field.String("suggestion_norm").
			Comment("Normalized suggestion text, the dedup and blocklist key"),
		field.Text("reasoning").
			Optional(),
		field.JSON("alternatives", []string{}).
			Optional(),
		field.Int("attempts").
			Default(0).
			Comment("Confirmation rounds consumed before escalation"),
		field.Text("last_feedback").
			Optional().
			Nillable().
			Comment("Reviewer model's final objection, if any"),
		field.String("next_tag").
			Optional().
			Nillable().
			Comment("Workflow tag applied on approval to resume the pipeline"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("Per-kind payload, e.g. entity_kind for schema suggestions"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the PendingReview.
func (PendingReview) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("doc_id"),
		index.Fields("kind"),
		// At most one open review per (doc, kind, normalized suggestion).
		index.Fields("doc_id", "kind", "suggestion_norm").
			Unique(),
	}
}

// Annotations of the PendingReview.
func (PendingReview) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "pending_reviews"},
	}
}
