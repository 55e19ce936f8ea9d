// Code generated by ent, DO NOT EDIT.

package categorylink

import (
	"sitecms/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

// ID filters vertices based on their ID field.
func ID(id int64) predicate.CategoryLink {
	return predicate.CategoryLink(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int64) predicate.CategoryLink {
	return predicate.CategoryLink(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int64) predicate.CategoryLink {
	return predicate.CategoryLink(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int64) predicate.CategoryLink {
	return predicate.CategoryLink(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int64) predicate.CategoryLink {
	return predicate.CategoryLink(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int64) predicate.CategoryLink {
	return predicate.CategoryLink(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int64) predicate.CategoryLink {
	return predicate.CategoryLink(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int64) predicate.CategoryLink {
	return predicate.CategoryLink(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int64) predicate.CategoryLink {
	return predicate.CategoryLink(sql.FieldLTE(FieldID, id))
}

// Family applies equality check predicate on the "family" field. It's identical to FamilyEQ.
func Family(v string) predicate.CategoryLink {
	return predicate.CategoryLink(sql.FieldEQ(FieldFamily, v))
}

// EntityID applies equality check predicate on the "entity_id" field. It's identical to EntityIDEQ.
func EntityID(v int64) predicate.CategoryLink {
	return predicate.CategoryLink(sql.FieldEQ(FieldEntityID, v))
}

// CategoryID applies equality check predicate on the "category_id" field. It's identical to CategoryIDEQ.
func CategoryID(v int64) predicate.CategoryLink {
	return predicate.CategoryLink(sql.FieldEQ(FieldCategoryID, v))
}

// LinkOrder applies equality check predicate on the "link_order" field. It's identical to LinkOrderEQ.
func LinkOrder(v int) predicate.CategoryLink {
	return predicate.CategoryLink(sql.FieldEQ(FieldLinkOrder, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CategoryLink {
	return predicate.CategoryLink(sql.FieldEQ(FieldCreatedAt, v))
}

// FamilyEQ applies the EQ predicate on the "family" field.
func FamilyEQ(v string) predicate.CategoryLink {
	return predicate.CategoryLink(sql.FieldEQ(FieldFamily, v))
}

// FamilyNEQ applies the NEQ predicate on the "family" field.
func FamilyNEQ(v string) predicate.CategoryLink {
	return predicate.CategoryLink(sql.FieldNEQ(FieldFamily, v))
}

// FamilyIn applies the In predicate on the "family" field.
func FamilyIn(vs ...string) predicate.CategoryLink {
	return predicate.CategoryLink(sql.FieldIn(FieldFamily, vs...))
}

// FamilyNotIn applies the NotIn predicate on the "family" field.
func FamilyNotIn(vs ...string) predicate.CategoryLink {
	return predicate.CategoryLink(sql.FieldNotIn(FieldFamily, vs...))
}

// FamilyGT applies the GT predicate on the "family" field.
func FamilyGT(v string) predicate.CategoryLink {
	return predicate.CategoryLink(sql.FieldGT(FieldFamily, v))
}

// FamilyGTE applies the GTE predicate on the "family" field.
func FamilyGTE(v string) predicate.CategoryLink {
	return predicate.CategoryLink(sql.FieldGTE(FieldFamily, v))
}

// FamilyLT applies the LT predicate on the "family" field.
func FamilyLT(v string) predicate.CategoryLink {
	return predicate.CategoryLink(sql.FieldLT(FieldFamily, v))
}

// FamilyLTE applies the LTE predicate on the "family" field.
func FamilyLTE(v string) predicate.CategoryLink {
	return predicate.CategoryLink(sql.FieldLTE(FieldFamily, v))
}

// FamilyContains applies the Contains predicate on the "family" field.
func FamilyContains(v string) predicate.CategoryLink {
	return predicate.CategoryLink(sql.FieldContains(FieldFamily, v))
}

// FamilyHasPrefix applies the HasPrefix predicate on the "family" field.
func FamilyHasPrefix(v string) predicate.CategoryLink {
	return predicate.CategoryLink(sql.FieldHasPrefix(FieldFamily, v))
}

// FamilyHasSuffix applies the HasSuffix predicate on the "family" field.
func FamilyHasSuffix(v string) predicate.CategoryLink {
	return predicate.CategoryLink(sql.FieldHasSuffix(FieldFamily, v))
}

// FamilyEqualFold applies the EqualFold predicate on the "family" field.
func FamilyEqualFold(v string) predicate.CategoryLink {
	return predicate.CategoryLink(sql.FieldEqualFold(FieldFamily, v))
}

// FamilyContainsFold applies the ContainsFold predicate on the "family" field.
func FamilyContainsFold(v string) predicate.CategoryLink {
	return predicate.CategoryLink(sql.FieldContainsFold(FieldFamily, v))
}

// EntityIDEQ applies the EQ predicate on the "entity_id" field.
func EntityIDEQ(v int64) predicate.CategoryLink {
	return predicate.CategoryLink(sql.FieldEQ(FieldEntityID, v))
}

// EntityIDNEQ applies the NEQ predicate on the "entity_id" field.
func EntityIDNEQ(v int64) predicate.CategoryLink {
	return predicate.CategoryLink(sql.FieldNEQ(FieldEntityID, v))
}

// EntityIDIn applies the In predicate on the "entity_id" field.
func EntityIDIn(vs ...int64) predicate.CategoryLink {
	return predicate.CategoryLink(sql.FieldIn(FieldEntityID, vs...))
}

// EntityIDNotIn applies the NotIn predicate on the "entity_id" field.
func EntityIDNotIn(vs ...int64) predicate.CategoryLink {
	return predicate.CategoryLink(sql.FieldNotIn(FieldEntityID, vs...))
}

// EntityIDGT applies the GT predicate on the "entity_id" field.
func EntityIDGT(v int64) predicate.CategoryLink {
	return predicate.CategoryLink(sql.FieldGT(FieldEntityID, v))
}

// EntityIDGTE applies the GTE predicate on the "entity_id" field.
func EntityIDGTE(v int64) predicate.CategoryLink {
	return predicate.CategoryLink(sql.FieldGTE(FieldEntityID, v))
}

// EntityIDLT applies the LT predicate on the "entity_id" field.
func EntityIDLT(v int64) predicate.CategoryLink {
	return predicate.CategoryLink(sql.FieldLT(FieldEntityID, v))
}

// EntityIDLTE applies the LTE predicate on the "entity_id" field.
func EntityIDLTE(v int64) predicate.CategoryLink {
	return predicate.CategoryLink(sql.FieldLTE(FieldEntityID, v))
}

// CategoryIDEQ applies the EQ predicate on the "category_id" field.
func CategoryIDEQ(v int64) predicate.CategoryLink {
	return predicate.CategoryLink(sql.FieldEQ(FieldCategoryID, v))
}

// CategoryIDNEQ applies the NEQ predicate on the "category_id" field.
func CategoryIDNEQ(v int64) predicate.CategoryLink {
	return predicate.CategoryLink(sql.FieldNEQ(FieldCategoryID, v))
}

// CategoryIDIn applies the In predicate on the "category_id" field.
func CategoryIDIn(vs ...int64) predicate.CategoryLink {
	return predicate.CategoryLink(sql.FieldIn(FieldCategoryID, vs...))
}

// CategoryIDNotIn applies the NotIn predicate on the "category_id" field.
func CategoryIDNotIn(vs ...int64) predicate.CategoryLink {
	return predicate.CategoryLink(sql.FieldNotIn(FieldCategoryID, vs...))
}

// LinkOrderEQ applies the EQ predicate on the "link_order" field.
func LinkOrderEQ(v int) predicate.CategoryLink {
	return predicate.CategoryLink(sql.FieldEQ(FieldLinkOrder, v))
}

// LinkOrderNEQ applies the NEQ predicate on the "link_order" field.
func LinkOrderNEQ(v int) predicate.CategoryLink {
	return predicate.CategoryLink(sql.FieldNEQ(FieldLinkOrder, v))
}

// LinkOrderIn applies the In predicate on the "link_order" field.
func LinkOrderIn(vs ...int) predicate.CategoryLink {
	return predicate.CategoryLink(sql.FieldIn(FieldLinkOrder, vs...))
}

// LinkOrderNotIn applies the NotIn predicate on the "link_order" field.
func LinkOrderNotIn(vs ...int) predicate.CategoryLink {
	return predicate.CategoryLink(sql.FieldNotIn(FieldLinkOrder, vs...))
}

// LinkOrderGT applies the GT predicate on the "link_order" field.
func LinkOrderGT(v int) predicate.CategoryLink {
	return predicate.CategoryLink(sql.FieldGT(FieldLinkOrder, v))
}

// LinkOrderGTE applies the GTE predicate on the "link_order" field.
func LinkOrderGTE(v int) predicate.CategoryLink {
	return predicate.CategoryLink(sql.FieldGTE(FieldLinkOrder, v))
}

// LinkOrderLT applies the LT predicate on the "link_order" field.
func LinkOrderLT(v int) predicate.CategoryLink {
	return predicate.CategoryLink(sql.FieldLT(FieldLinkOrder, v))
}

// LinkOrderLTE applies the LTE predicate on the "link_order" field.
func LinkOrderLTE(v int) predicate.CategoryLink {
	return predicate.CategoryLink(sql.FieldLTE(FieldLinkOrder, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CategoryLink {
	return predicate.CategoryLink(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CategoryLink {
	return predicate.CategoryLink(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CategoryLink {
	return predicate.CategoryLink(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CategoryLink {
	return predicate.CategoryLink(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CategoryLink {
	return predicate.CategoryLink(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CategoryLink {
	return predicate.CategoryLink(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CategoryLink {
	return predicate.CategoryLink(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CategoryLink {
	return predicate.CategoryLink(sql.FieldLTE(FieldCreatedAt, v))
}

// HasCategory applies the HasEdge predicate on the "category" edge.
func HasCategory() predicate.CategoryLink {
	return predicate.CategoryLink(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CategoryTable, CategoryColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCategoryWith applies the HasEdge predicate on the "category" edge with a given conditions (other predicates).
func HasCategoryWith(preds ...predicate.Category) predicate.CategoryLink {
	return predicate.CategoryLink(func(s *sql.Selector) {
		step := newCategoryStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CategoryLink) predicate.CategoryLink {
	return predicate.CategoryLink(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CategoryLink) predicate.CategoryLink {
	return predicate.CategoryLink(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CategoryLink) predicate.CategoryLink {
	return predicate.CategoryLink(sql.NotPredicates(p))
}
