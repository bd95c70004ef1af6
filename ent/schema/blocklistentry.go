package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BlocklistEntry holds the schema definition for the BlocklistEntry entity.
// A normalized suggestion string that must never be proposed again.
// kind scopes the block to one review kind; "global" blocks everywhere.
type BlocklistEntry struct {
	ent.Schema
}

// Fields of the BlocklistEntry.
func (BlocklistEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("kind").
			Comment("Review kind, or 'global'"),
		field.String("suggestion_norm"),
		field.String("reason").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the BlocklistEntry.
func (BlocklistEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("kind", "suggestion_norm").
			Unique(),
	}
}

// Annotations of the BlocklistEntry.
func (BlocklistEntry) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "blocklist_entries"},
	}
}
