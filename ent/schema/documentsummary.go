package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DocumentSummary holds the schema definition for the DocumentSummary entity.
// Local-only output of the optional summary stage; never written back
// to the DMS.
type DocumentSummary struct {
	ent.Schema
}

// Fields of the DocumentSummary.
func (DocumentSummary) Fields() []ent.Field {
	return []ent.Field{
		field.Int("doc_id").
			Unique().
			Immutable(),
		field.Text("summary"),
		field.String("model").
			Comment("Model that produced the summary"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the DocumentSummary.
func (DocumentSummary) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
	}
}

// Annotations of the DocumentSummary.
func (DocumentSummary) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "document_summaries"},
	}
}
