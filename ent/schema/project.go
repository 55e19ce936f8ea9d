package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Project holds the schema definition for the Project entity (portfolio
// reference). position drives the "first N projects" selection on the
// homepage, so it stays contiguous the same way block positions do.
type Project struct {
	ent.Schema
}

// Fields of the Project.
func (Project) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id"),
		field.String("title").NotEmpty().MaxLen(300),
		field.String("slug").NotEmpty().MaxLen(300).Unique(),
		field.Text("description").Default(""),
		field.String("image_url").Default("").MaxLen(1000),
		field.Bool("active").Default(true),
		field.Int("position").Default(0),
		field.Int64("primary_category_id").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Indexes of the Project.
func (Project) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("position"),
		index.Fields("primary_category_id"),
	}
}
