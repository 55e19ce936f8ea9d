package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Category holds the schema definition for the Category entity.
// Categories belong to exactly one family (product, blog or project); slugs
// are unique within a family. Hierarchy is a single level: a category that
// has a parent can never itself be a parent.
type Category struct {
	ent.Schema
}

// Fields of the Category.
func (Category) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id"),
		field.String("family").NotEmpty().MaxLen(20),
		field.String("name").NotEmpty().MaxLen(100),
		field.String("slug").NotEmpty().MaxLen(100),
		field.Int64("parent_id").Optional().Nillable(),
		field.Int("display_order").Default(0),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

// Edges of the Category.
func (Category) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("children", Category.Type).
			From("parent").
			Unique().
			Field("parent_id"),
		edge.To("links", CategoryLink.Type),
	}
}

// Indexes of the Category.
func (Category) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("family"),
		index.Fields("family", "slug").Unique(),
	}
}
