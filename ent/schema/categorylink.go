package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CategoryLink holds the schema definition for the CategoryLink entity
// (junction table). entity_id refers to a product, blog post or project
// depending on family; link_order is the entity's position in listings
// scoped to that one category.
type CategoryLink struct {
	ent.Schema
}

// Fields of the CategoryLink.
func (CategoryLink) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id"),
		field.String("family").NotEmpty().MaxLen(20),
		field.Int64("entity_id"),
		field.Int64("category_id"),
		field.Int("link_order"),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

// Edges of the CategoryLink.
func (CategoryLink) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("category", Category.Type).
			Ref("links").
			Unique().
			Required().
			Field("category_id"),
	}
}

// Indexes of the CategoryLink.
func (CategoryLink) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("category_id"),
		index.Fields("family", "entity_id"),
		index.Fields("family", "entity_id", "category_id").Unique(),
	}
}
