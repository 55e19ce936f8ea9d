// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"sitecms/ent/category"
	"sitecms/ent/categorylink"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// CategoryLink is the model entity for the CategoryLink schema.
type CategoryLink struct {
	config `json:"-"`
	// ID of the ent.
	ID int64 `json:"id,omitempty"`
	// Family holds the value of the "family" field.
	Family string `json:"family,omitempty"`
	// EntityID holds the value of the "entity_id" field.
	EntityID int64 `json:"entity_id,omitempty"`
	// CategoryID holds the value of the "category_id" field.
	CategoryID int64 `json:"category_id,omitempty"`
	// LinkOrder holds the value of the "link_order" field.
	LinkOrder int `json:"link_order,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CategoryLinkQuery when eager-loading is set.
	Edges        CategoryLinkEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CategoryLinkEdges holds the relations/edges for other nodes in the graph.
type CategoryLinkEdges struct {
	// Category holds the value of the category edge.
	Category *Category `json:"category,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// CategoryOrErr returns the Category value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CategoryLinkEdges) CategoryOrErr() (*Category, error) {
	if e.Category != nil {
		return e.Category, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: category.Label}
	}
	return nil, &NotLoadedError{edge: "category"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CategoryLink) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case categorylink.FieldID, categorylink.FieldEntityID, categorylink.FieldCategoryID, categorylink.FieldLinkOrder:
			values[i] = new(sql.NullInt64)
		case categorylink.FieldFamily:
			values[i] = new(sql.NullString)
		case categorylink.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CategoryLink fields.
func (_m *CategoryLink) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case categorylink.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int64(value.Int64)
		case categorylink.FieldFamily:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field family", values[i])
			} else if value.Valid {
				_m.Family = value.String
			}
		case categorylink.FieldEntityID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field entity_id", values[i])
			} else if value.Valid {
				_m.EntityID = value.Int64
			}
		case categorylink.FieldCategoryID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field category_id", values[i])
			} else if value.Valid {
				_m.CategoryID = value.Int64
			}
		case categorylink.FieldLinkOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field link_order", values[i])
			} else if value.Valid {
				_m.LinkOrder = int(value.Int64)
			}
		case categorylink.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CategoryLink.
// This includes values selected through modifiers, order, etc.
func (_m *CategoryLink) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCategory queries the "category" edge of the CategoryLink entity.
func (_m *CategoryLink) QueryCategory() *CategoryQuery {
	return NewCategoryLinkClient(_m.config).QueryCategory(_m)
}

// Update returns a builder for updating this CategoryLink.
// Note that you need to call CategoryLink.Unwrap() before calling this method if this CategoryLink
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CategoryLink) Update() *CategoryLinkUpdateOne {
	return NewCategoryLinkClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CategoryLink entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CategoryLink) Unwrap() *CategoryLink {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CategoryLink is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CategoryLink) String() string {
	var builder strings.Builder
	builder.WriteString("CategoryLink(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("family=")
	builder.WriteString(_m.Family)
	builder.WriteString(", ")
	builder.WriteString("entity_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.EntityID))
	builder.WriteString(", ")
	builder.WriteString("category_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CategoryID))
	builder.WriteString(", ")
	builder.WriteString("link_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.LinkOrder))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CategoryLinks is a parsable slice of CategoryLink.
type CategoryLinks []*CategoryLink
