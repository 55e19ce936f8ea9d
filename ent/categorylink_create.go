// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sitecms/ent/category"
	"sitecms/ent/categorylink"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// CategoryLinkCreate is the builder for creating a CategoryLink entity.
type CategoryLinkCreate struct {
	config
	mutation *CategoryLinkMutation
	hooks    []Hook
}

// SetFamily sets the "family" field.
func (_c *CategoryLinkCreate) SetFamily(v string) *CategoryLinkCreate {
	_c.mutation.SetFamily(v)
	return _c
}

// SetEntityID sets the "entity_id" field.
func (_c *CategoryLinkCreate) SetEntityID(v int64) *CategoryLinkCreate {
	_c.mutation.SetEntityID(v)
	return _c
}

// SetCategoryID sets the "category_id" field.
func (_c *CategoryLinkCreate) SetCategoryID(v int64) *CategoryLinkCreate {
	_c.mutation.SetCategoryID(v)
	return _c
}

// SetLinkOrder sets the "link_order" field.
func (_c *CategoryLinkCreate) SetLinkOrder(v int) *CategoryLinkCreate {
	_c.mutation.SetLinkOrder(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CategoryLinkCreate) SetCreatedAt(v time.Time) *CategoryLinkCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CategoryLinkCreate) SetNillableCreatedAt(v *time.Time) *CategoryLinkCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CategoryLinkCreate) SetID(v int64) *CategoryLinkCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetCategory sets the "category" edge to the Category entity.
func (_c *CategoryLinkCreate) SetCategory(v *Category) *CategoryLinkCreate {
	return _c.SetCategoryID(v.ID)
}

// Mutation returns the CategoryLinkMutation object of the builder.
func (_c *CategoryLinkCreate) Mutation() *CategoryLinkMutation {
	return _c.mutation
}

// Save creates the CategoryLink in the database.
func (_c *CategoryLinkCreate) Save(ctx context.Context) (*CategoryLink, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CategoryLinkCreate) SaveX(ctx context.Context) *CategoryLink {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CategoryLinkCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CategoryLinkCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CategoryLinkCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := categorylink.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CategoryLinkCreate) check() error {
	if _, ok := _c.mutation.Family(); !ok {
		return &ValidationError{Name: "family", err: errors.New(`ent: missing required field "CategoryLink.family"`)}
	}
	if v, ok := _c.mutation.Family(); ok {
		if err := categorylink.FamilyValidator(v); err != nil {
			return &ValidationError{Name: "family", err: fmt.Errorf(`ent: validator failed for field "CategoryLink.family": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EntityID(); !ok {
		return &ValidationError{Name: "entity_id", err: errors.New(`ent: missing required field "CategoryLink.entity_id"`)}
	}
	if _, ok := _c.mutation.CategoryID(); !ok {
		return &ValidationError{Name: "category_id", err: errors.New(`ent: missing required field "CategoryLink.category_id"`)}
	}
	if _, ok := _c.mutation.LinkOrder(); !ok {
		return &ValidationError{Name: "link_order", err: errors.New(`ent: missing required field "CategoryLink.link_order"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CategoryLink.created_at"`)}
	}
	if len(_c.mutation.CategoryIDs()) == 0 {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required edge "CategoryLink.category"`)}
	}
	return nil
}

func (_c *CategoryLinkCreate) sqlSave(ctx context.Context) (*CategoryLink, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = int64(id)
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CategoryLinkCreate) createSpec() (*CategoryLink, *sqlgraph.CreateSpec) {
	var (
		_node = &CategoryLink{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(categorylink.Table, sqlgraph.NewFieldSpec(categorylink.FieldID, field.TypeInt64))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Family(); ok {
		_spec.SetField(categorylink.FieldFamily, field.TypeString, value)
		_node.Family = value
	}
	if value, ok := _c.mutation.EntityID(); ok {
		_spec.SetField(categorylink.FieldEntityID, field.TypeInt64, value)
		_node.EntityID = value
	}
	if value, ok := _c.mutation.LinkOrder(); ok {
		_spec.SetField(categorylink.FieldLinkOrder, field.TypeInt, value)
		_node.LinkOrder = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(categorylink.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.CategoryIDs(); len(nodes) > 0 {
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
		_node.CategoryID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CategoryLinkCreateBulk is the builder for creating many CategoryLink entities in bulk.
type CategoryLinkCreateBulk struct {
	config
	err      error
	builders []*CategoryLinkCreate
}

// Save creates the CategoryLink entities in the database.
func (_c *CategoryLinkCreateBulk) Save(ctx context.Context) ([]*CategoryLink, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CategoryLink, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CategoryLinkMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int64(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CategoryLinkCreateBulk) SaveX(ctx context.Context) []*CategoryLink {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CategoryLinkCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CategoryLinkCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
