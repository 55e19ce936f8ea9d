package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BlogPost holds the schema definition for the BlogPost entity.
type BlogPost struct {
	ent.Schema
}

// Fields of the BlogPost.
func (BlogPost) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id"),
		field.String("title").NotEmpty().MaxLen(300),
		field.String("slug").NotEmpty().MaxLen(300).Unique(),
		field.String("excerpt").Default("").MaxLen(1000),
		field.Text("body").Default(""),
		field.String("image_url").Default("").MaxLen(1000),
		field.Bool("published").Default(false),
		field.Time("published_at").Optional().Nillable(),
		field.Int64("primary_category_id").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Indexes of the BlogPost.
func (BlogPost) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("published"),
		index.Fields("primary_category_id"),
	}
}
