package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EntityMetadata holds the schema definition for the EntityMetadata entity.
// Locally stored descriptions and translations for DMS entities
// (correspondents, document types, tags). Filled by the
// metadata-enhancement maintenance job.
type EntityMetadata struct {
	ent.Schema
}

// Fields of the EntityMetadata.
func (EntityMetadata) Fields() []ent.Field {
	return []ent.Field{
		field.Enum("entity_kind").
			Values("correspondent", "document_type", "tag"),
		field.Int("entity_id").
			Comment("DMS id of the entity"),
		field.String("name").
			Comment("Name snapshot for display when the DMS is unreachable"),
		field.Text("description").
			Optional(),
		field.JSON("translations", map[string]string{}).
			Optional().
			Comment("language code -> translated name"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the EntityMetadata.
func (EntityMetadata) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("entity_kind", "entity_id").
			Unique(),
	}
}

// Annotations of the EntityMetadata.
func (EntityMetadata) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "entity_metadata"},
	}
}
