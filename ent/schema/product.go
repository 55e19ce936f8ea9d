package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Product holds the schema definition for the Product entity.
// primary_category_id is denormalized: it must always be one of the product's
// linked categories, or nil when the product has no links. The category link
// manager is the only writer.
type Product struct {
	ent.Schema
}

// Fields of the Product.
func (Product) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id"),
		field.String("title").NotEmpty().MaxLen(300),
		field.String("slug").NotEmpty().MaxLen(300).Unique(),
		field.Text("description").Default(""),
		field.Float("price").Default(0),
		field.String("image_url").Default("").MaxLen(1000),
		field.Bool("active").Default(true),
		field.Int64("primary_category_id").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Indexes of the Product.
func (Product) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("primary_category_id"),
	}
}
