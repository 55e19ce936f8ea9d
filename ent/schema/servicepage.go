package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ServicePage holds the schema definition for the ServicePage entity.
// Each service page owns the "service-<slug>" block namespace; deleting the
// page deletes every block in that namespace.
type ServicePage struct {
	ent.Schema
}

// Fields of the ServicePage.
func (ServicePage) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id"),
		field.String("title").NotEmpty().MaxLen(300),
		field.String("slug").NotEmpty().MaxLen(100).Unique(),
		field.Text("description").Default(""),
		field.Bool("active").Default(true),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Indexes of the ServicePage.
func (ServicePage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("active"),
	}
}
