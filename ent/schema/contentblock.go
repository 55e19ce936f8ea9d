package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ContentBlock holds the schema definition for the ContentBlock entity.
// A block is one ordered, typed unit of page content. Its payload shape is
// selected by section_type and validated by the section registry before write.
type ContentBlock struct {
	ent.Schema
}

// Fields of the ContentBlock.
func (ContentBlock) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id"),
		field.String("page").NotEmpty().MaxLen(100),
		field.String("section_type").NotEmpty().MaxLen(50),
		field.Int("position"),
		field.Bool("active").Default(true),
		field.String("title").Default("").MaxLen(500),
		field.String("subtitle").Default("").MaxLen(500),
		field.Text("body").Default(""),
		field.String("image_url").Default("").MaxLen(1000),
		field.String("button_text").Default("").MaxLen(200),
		field.String("button_url").Default("").MaxLen(1000),
		field.JSON("payload", json.RawMessage{}).Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Indexes of the ContentBlock.
// (page, position) is deliberately not unique: reorders rewrite positions
// inside one transaction and pass through transient duplicates.
func (ContentBlock) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("page"),
		index.Fields("page", "position"),
	}
}
