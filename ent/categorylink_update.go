// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sitecms/ent/category"
	"sitecms/ent/categorylink"
	"sitecms/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// CategoryLinkUpdate is the builder for updating CategoryLink entities.
type CategoryLinkUpdate struct {
	config
	hooks    []Hook
	mutation *CategoryLinkMutation
}

// Where appends a list predicates to the CategoryLinkUpdate builder.
func (_u *CategoryLinkUpdate) Where(ps ...predicate.CategoryLink) *CategoryLinkUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFamily sets the "family" field.
func (_u *CategoryLinkUpdate) SetFamily(v string) *CategoryLinkUpdate {
	_u.mutation.SetFamily(v)
	return _u
}

// SetNillableFamily sets the "family" field if the given value is not nil.
func (_u *CategoryLinkUpdate) SetNillableFamily(v *string) *CategoryLinkUpdate {
	if v != nil {
		_u.SetFamily(*v)
	}
	return _u
}

// SetEntityID sets the "entity_id" field.
func (_u *CategoryLinkUpdate) SetEntityID(v int64) *CategoryLinkUpdate {
	_u.mutation.ResetEntityID()
	_u.mutation.SetEntityID(v)
	return _u
}

// SetNillableEntityID sets the "entity_id" field if the given value is not nil.
func (_u *CategoryLinkUpdate) SetNillableEntityID(v *int64) *CategoryLinkUpdate {
	if v != nil {
		_u.SetEntityID(*v)
	}
	return _u
}

// AddEntityID adds value to the "entity_id" field.
func (_u *CategoryLinkUpdate) AddEntityID(v int64) *CategoryLinkUpdate {
	_u.mutation.AddEntityID(v)
	return _u
}

// SetCategoryID sets the "category_id" field.
func (_u *CategoryLinkUpdate) SetCategoryID(v int64) *CategoryLinkUpdate {
	_u.mutation.SetCategoryID(v)
	return _u
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_u *CategoryLinkUpdate) SetNillableCategoryID(v *int64) *CategoryLinkUpdate {
	if v != nil {
		_u.SetCategoryID(*v)
	}
	return _u
}

// SetLinkOrder sets the "link_order" field.
func (_u *CategoryLinkUpdate) SetLinkOrder(v int) *CategoryLinkUpdate {
	_u.mutation.ResetLinkOrder()
	_u.mutation.SetLinkOrder(v)
	return _u
}

// SetNillableLinkOrder sets the "link_order" field if the given value is not nil.
func (_u *CategoryLinkUpdate) SetNillableLinkOrder(v *int) *CategoryLinkUpdate {
	if v != nil {
		_u.SetLinkOrder(*v)
	}
	return _u
}

// AddLinkOrder adds value to the "link_order" field.
func (_u *CategoryLinkUpdate) AddLinkOrder(v int) *CategoryLinkUpdate {
	_u.mutation.AddLinkOrder(v)
	return _u
}

// SetCategory sets the "category" edge to the Category entity.
func (_u *CategoryLinkUpdate) SetCategory(v *Category) *CategoryLinkUpdate {
	return _u.SetCategoryID(v.ID)
}

// Mutation returns the CategoryLinkMutation object of the builder.
func (_u *CategoryLinkUpdate) Mutation() *CategoryLinkMutation {
	return _u.mutation
}

// ClearCategory clears the "category" edge to the Category entity.
func (_u *CategoryLinkUpdate) ClearCategory() *CategoryLinkUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CategoryLinkUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CategoryLinkUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CategoryLinkUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CategoryLinkUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CategoryLinkUpdate) check() error {
	if v, ok := _u.mutation.Family(); ok {
		if err := categorylink.FamilyValidator(v); err != nil {
			return &ValidationError{Name: "family", err: fmt.Errorf(`ent: validator failed for field "CategoryLink.family": %w`, err)}
		}
	}
	if _u.mutation.CategoryCleared() && len(_u.mutation.CategoryIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CategoryLink.category"`)
	}
	return nil
}

func (_u *CategoryLinkUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(categorylink.Table, categorylink.Columns, sqlgraph.NewFieldSpec(categorylink.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Family(); ok {
		_spec.SetField(categorylink.FieldFamily, field.TypeString, value)
	}
	if value, ok := _u.mutation.EntityID(); ok {
		_spec.SetField(categorylink.FieldEntityID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedEntityID(); ok {
		_spec.AddField(categorylink.FieldEntityID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LinkOrder(); ok {
		_spec.SetField(categorylink.FieldLinkOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLinkOrder(); ok {
		_spec.AddField(categorylink.FieldLinkOrder, field.TypeInt, value)
	}
	if _u.mutation.CategoryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   categorylink.CategoryTable,
			Columns: []string{categorylink.CategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CategoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   categorylink.CategoryTable,
			Columns: []string{categorylink.CategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{categorylink.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CategoryLinkUpdateOne is the builder for updating a single CategoryLink entity.
type CategoryLinkUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CategoryLinkMutation
}

// SetFamily sets the "family" field.
func (_u *CategoryLinkUpdateOne) SetFamily(v string) *CategoryLinkUpdateOne {
	_u.mutation.SetFamily(v)
	return _u
}

// SetNillableFamily sets the "family" field if the given value is not nil.
func (_u *CategoryLinkUpdateOne) SetNillableFamily(v *string) *CategoryLinkUpdateOne {
	if v != nil {
		_u.SetFamily(*v)
	}
	return _u
}

// SetEntityID sets the "entity_id" field.
func (_u *CategoryLinkUpdateOne) SetEntityID(v int64) *CategoryLinkUpdateOne {
	_u.mutation.ResetEntityID()
	_u.mutation.SetEntityID(v)
	return _u
}

// SetNillableEntityID sets the "entity_id" field if the given value is not nil.
func (_u *CategoryLinkUpdateOne) SetNillableEntityID(v *int64) *CategoryLinkUpdateOne {
	if v != nil {
		_u.SetEntityID(*v)
	}
	return _u
}

// AddEntityID adds value to the "entity_id" field.
func (_u *CategoryLinkUpdateOne) AddEntityID(v int64) *CategoryLinkUpdateOne {
	_u.mutation.AddEntityID(v)
	return _u
}

// SetCategoryID sets the "category_id" field.
func (_u *CategoryLinkUpdateOne) SetCategoryID(v int64) *CategoryLinkUpdateOne {
	_u.mutation.SetCategoryID(v)
	return _u
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_u *CategoryLinkUpdateOne) SetNillableCategoryID(v *int64) *CategoryLinkUpdateOne {
	if v != nil {
		_u.SetCategoryID(*v)
	}
	return _u
}

// SetLinkOrder sets the "link_order" field.
func (_u *CategoryLinkUpdateOne) SetLinkOrder(v int) *CategoryLinkUpdateOne {
	_u.mutation.ResetLinkOrder()
	_u.mutation.SetLinkOrder(v)
	return _u
}

// SetNillableLinkOrder sets the "link_order" field if the given value is not nil.
func (_u *CategoryLinkUpdateOne) SetNillableLinkOrder(v *int) *CategoryLinkUpdateOne {
	if v != nil {
		_u.SetLinkOrder(*v)
	}
	return _u
}

// AddLinkOrder adds value to the "link_order" field.
func (_u *CategoryLinkUpdateOne) AddLinkOrder(v int) *CategoryLinkUpdateOne {
	_u.mutation.AddLinkOrder(v)
	return _u
}

// SetCategory sets the "category" edge to the Category entity.
func (_u *CategoryLinkUpdateOne) SetCategory(v *Category) *CategoryLinkUpdateOne {
	return _u.SetCategoryID(v.ID)
}

// Mutation returns the CategoryLinkMutation object of the builder.
func (_u *CategoryLinkUpdateOne) Mutation() *CategoryLinkMutation {
	return _u.mutation
}

// ClearCategory clears the "category" edge to the Category entity.
func (_u *CategoryLinkUpdateOne) ClearCategory() *CategoryLinkUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// Where appends a list predicates to the CategoryLinkUpdate builder.
func (_u *CategoryLinkUpdateOne) Where(ps ...predicate.CategoryLink) *CategoryLinkUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CategoryLinkUpdateOne) Select(field string, fields ...string) *CategoryLinkUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CategoryLink entity.
func (_u *CategoryLinkUpdateOne) Save(ctx context.Context) (*CategoryLink, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CategoryLinkUpdateOne) SaveX(ctx context.Context) *CategoryLink {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CategoryLinkUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CategoryLinkUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CategoryLinkUpdateOne) check() error {
	if v, ok := _u.mutation.Family(); ok {
		if err := categorylink.FamilyValidator(v); err != nil {
			return &ValidationError{Name: "family", err: fmt.Errorf(`ent: validator failed for field "CategoryLink.family": %w`, err)}
		}
	}
	if _u.mutation.CategoryCleared() && len(_u.mutation.CategoryIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CategoryLink.category"`)
	}
	return nil
}

func (_u *CategoryLinkUpdateOne) sqlSave(ctx context.Context) (_node *CategoryLink, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(categorylink.Table, categorylink.Columns, sqlgraph.NewFieldSpec(categorylink.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CategoryLink.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, categorylink.FieldID)
		for _, f := range fields {
			if !categorylink.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != categorylink.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Family(); ok {
		_spec.SetField(categorylink.FieldFamily, field.TypeString, value)
	}
	if value, ok := _u.mutation.EntityID(); ok {
		_spec.SetField(categorylink.FieldEntityID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedEntityID(); ok {
		_spec.AddField(categorylink.FieldEntityID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LinkOrder(); ok {
		_spec.SetField(categorylink.FieldLinkOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLinkOrder(); ok {
		_spec.AddField(categorylink.FieldLinkOrder, field.TypeInt, value)
	}
	if _u.mutation.CategoryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   categorylink.CategoryTable,
			Columns: []string{categorylink.CategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CategoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   categorylink.CategoryTable,
			Columns: []string{categorylink.CategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CategoryLink{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{categorylink.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
