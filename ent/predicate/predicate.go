// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// BlogPost is the predicate function for blogpost builders.
type BlogPost func(*sql.Selector)

// Category is the predicate function for category builders.
type Category func(*sql.Selector)

// CategoryLink is the predicate function for categorylink builders.
type CategoryLink func(*sql.Selector)

// ContentBlock is the predicate function for contentblock builders.
type ContentBlock func(*sql.Selector)

// Product is the predicate function for product builders.
type Product func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// ServicePage is the predicate function for servicepage builders.
type ServicePage func(*sql.Selector)
