// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sitecms/ent/predicate"
	"sitecms/ent/servicepage"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// ServicePageUpdate is the builder for updating ServicePage entities.
type ServicePageUpdate struct {
	config
	hooks    []Hook
	mutation *ServicePageMutation
}

// Where appends a list predicates to the ServicePageUpdate builder.
func (_u *ServicePageUpdate) Where(ps ...predicate.ServicePage) *ServicePageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *ServicePageUpdate) SetTitle(v string) *ServicePageUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ServicePageUpdate) SetNillableTitle(v *string) *ServicePageUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *ServicePageUpdate) SetSlug(v string) *ServicePageUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *ServicePageUpdate) SetNillableSlug(v *string) *ServicePageUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ServicePageUpdate) SetDescription(v string) *ServicePageUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ServicePageUpdate) SetNillableDescription(v *string) *ServicePageUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *ServicePageUpdate) SetActive(v bool) *ServicePageUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *ServicePageUpdate) SetNillableActive(v *bool) *ServicePageUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ServicePageUpdate) SetUpdatedAt(v time.Time) *ServicePageUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ServicePageMutation object of the builder.
func (_u *ServicePageUpdate) Mutation() *ServicePageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ServicePageUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ServicePageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ServicePageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ServicePageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ServicePageUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := servicepage.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ServicePageUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := servicepage.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "ServicePage.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := servicepage.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "ServicePage.slug": %w`, err)}
		}
	}
	return nil
}

func (_u *ServicePageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(servicepage.Table, servicepage.Columns, sqlgraph.NewFieldSpec(servicepage.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(servicepage.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(servicepage.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(servicepage.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(servicepage.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(servicepage.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{servicepage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ServicePageUpdateOne is the builder for updating a single ServicePage entity.
type ServicePageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ServicePageMutation
}

// SetTitle sets the "title" field.
func (_u *ServicePageUpdateOne) SetTitle(v string) *ServicePageUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ServicePageUpdateOne) SetNillableTitle(v *string) *ServicePageUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *ServicePageUpdateOne) SetSlug(v string) *ServicePageUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *ServicePageUpdateOne) SetNillableSlug(v *string) *ServicePageUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ServicePageUpdateOne) SetDescription(v string) *ServicePageUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ServicePageUpdateOne) SetNillableDescription(v *string) *ServicePageUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *ServicePageUpdateOne) SetActive(v bool) *ServicePageUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *ServicePageUpdateOne) SetNillableActive(v *bool) *ServicePageUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ServicePageUpdateOne) SetUpdatedAt(v time.Time) *ServicePageUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ServicePageMutation object of the builder.
func (_u *ServicePageUpdateOne) Mutation() *ServicePageMutation {
	return _u.mutation
}

// Where appends a list predicates to the ServicePageUpdate builder.
func (_u *ServicePageUpdateOne) Where(ps ...predicate.ServicePage) *ServicePageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ServicePageUpdateOne) Select(field string, fields ...string) *ServicePageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ServicePage entity.
func (_u *ServicePageUpdateOne) Save(ctx context.Context) (*ServicePage, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ServicePageUpdateOne) SaveX(ctx context.Context) *ServicePage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ServicePageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ServicePageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ServicePageUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := servicepage.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ServicePageUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := servicepage.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "ServicePage.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := servicepage.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "ServicePage.slug": %w`, err)}
		}
	}
	return nil
}

func (_u *ServicePageUpdateOne) sqlSave(ctx context.Context) (_node *ServicePage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(servicepage.Table, servicepage.Columns, sqlgraph.NewFieldSpec(servicepage.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ServicePage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, servicepage.FieldID)
		for _, f := range fields {
			if !servicepage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != servicepage.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(servicepage.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(servicepage.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(servicepage.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(servicepage.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(servicepage.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ServicePage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{servicepage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
