// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sitecms/ent/blogpost"
	"sitecms/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// BlogPostUpdate is the builder for updating BlogPost entities.
type BlogPostUpdate struct {
	config
	hooks    []Hook
	mutation *BlogPostMutation
}

// Where appends a list predicates to the BlogPostUpdate builder.
func (_u *BlogPostUpdate) Where(ps ...predicate.BlogPost) *BlogPostUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *BlogPostUpdate) SetTitle(v string) *BlogPostUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *BlogPostUpdate) SetNillableTitle(v *string) *BlogPostUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *BlogPostUpdate) SetSlug(v string) *BlogPostUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *BlogPostUpdate) SetNillableSlug(v *string) *BlogPostUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetExcerpt sets the "excerpt" field.
func (_u *BlogPostUpdate) SetExcerpt(v string) *BlogPostUpdate {
	_u.mutation.SetExcerpt(v)
	return _u
}

// SetNillableExcerpt sets the "excerpt" field if the given value is not nil.
func (_u *BlogPostUpdate) SetNillableExcerpt(v *string) *BlogPostUpdate {
	if v != nil {
		_u.SetExcerpt(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *BlogPostUpdate) SetBody(v string) *BlogPostUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *BlogPostUpdate) SetNillableBody(v *string) *BlogPostUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetImageURL sets the "image_url" field.
func (_u *BlogPostUpdate) SetImageURL(v string) *BlogPostUpdate {
	_u.mutation.SetImageURL(v)
	return _u
}

// SetNillableImageURL sets the "image_url" field if the given value is not nil.
func (_u *BlogPostUpdate) SetNillableImageURL(v *string) *BlogPostUpdate {
	if v != nil {
		_u.SetImageURL(*v)
	}
	return _u
}

// SetPublished sets the "published" field.
func (_u *BlogPostUpdate) SetPublished(v bool) *BlogPostUpdate {
	_u.mutation.SetPublished(v)
	return _u
}

// SetNillablePublished sets the "published" field if the given value is not nil.
func (_u *BlogPostUpdate) SetNillablePublished(v *bool) *BlogPostUpdate {
	if v != nil {
		_u.SetPublished(*v)
	}
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *BlogPostUpdate) SetPublishedAt(v time.Time) *BlogPostUpdate {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *BlogPostUpdate) SetNillablePublishedAt(v *time.Time) *BlogPostUpdate {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (_u *BlogPostUpdate) ClearPublishedAt() *BlogPostUpdate {
	_u.mutation.ClearPublishedAt()
	return _u
}

// SetPrimaryCategoryID sets the "primary_category_id" field.
func (_u *BlogPostUpdate) SetPrimaryCategoryID(v int64) *BlogPostUpdate {
	_u.mutation.ResetPrimaryCategoryID()
	_u.mutation.SetPrimaryCategoryID(v)
	return _u
}

// SetNillablePrimaryCategoryID sets the "primary_category_id" field if the given value is not nil.
func (_u *BlogPostUpdate) SetNillablePrimaryCategoryID(v *int64) *BlogPostUpdate {
	if v != nil {
		_u.SetPrimaryCategoryID(*v)
	}
	return _u
}

// AddPrimaryCategoryID adds value to the "primary_category_id" field.
func (_u *BlogPostUpdate) AddPrimaryCategoryID(v int64) *BlogPostUpdate {
	_u.mutation.AddPrimaryCategoryID(v)
	return _u
}

// ClearPrimaryCategoryID clears the value of the "primary_category_id" field.
func (_u *BlogPostUpdate) ClearPrimaryCategoryID() *BlogPostUpdate {
	_u.mutation.ClearPrimaryCategoryID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BlogPostUpdate) SetUpdatedAt(v time.Time) *BlogPostUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the BlogPostMutation object of the builder.
func (_u *BlogPostUpdate) Mutation() *BlogPostMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BlogPostUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BlogPostUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BlogPostUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BlogPostUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BlogPostUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := blogpost.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BlogPostUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := blogpost.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "BlogPost.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := blogpost.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "BlogPost.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Excerpt(); ok {
		if err := blogpost.ExcerptValidator(v); err != nil {
			return &ValidationError{Name: "excerpt", err: fmt.Errorf(`ent: validator failed for field "BlogPost.excerpt": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ImageURL(); ok {
		if err := blogpost.ImageURLValidator(v); err != nil {
			return &ValidationError{Name: "image_url", err: fmt.Errorf(`ent: validator failed for field "BlogPost.image_url": %w`, err)}
		}
	}
	return nil
}

func (_u *BlogPostUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(blogpost.Table, blogpost.Columns, sqlgraph.NewFieldSpec(blogpost.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(blogpost.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(blogpost.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Excerpt(); ok {
		_spec.SetField(blogpost.FieldExcerpt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(blogpost.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImageURL(); ok {
		_spec.SetField(blogpost.FieldImageURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Published(); ok {
		_spec.SetField(blogpost.FieldPublished, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(blogpost.FieldPublishedAt, field.TypeTime, value)
	}
	if _u.mutation.PublishedAtCleared() {
		_spec.ClearField(blogpost.FieldPublishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PrimaryCategoryID(); ok {
		_spec.SetField(blogpost.FieldPrimaryCategoryID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPrimaryCategoryID(); ok {
		_spec.AddField(blogpost.FieldPrimaryCategoryID, field.TypeInt64, value)
	}
	if _u.mutation.PrimaryCategoryIDCleared() {
		_spec.ClearField(blogpost.FieldPrimaryCategoryID, field.TypeInt64)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(blogpost.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{blogpost.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BlogPostUpdateOne is the builder for updating a single BlogPost entity.
type BlogPostUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BlogPostMutation
}

// SetTitle sets the "title" field.
func (_u *BlogPostUpdateOne) SetTitle(v string) *BlogPostUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *BlogPostUpdateOne) SetNillableTitle(v *string) *BlogPostUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *BlogPostUpdateOne) SetSlug(v string) *BlogPostUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *BlogPostUpdateOne) SetNillableSlug(v *string) *BlogPostUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetExcerpt sets the "excerpt" field.
func (_u *BlogPostUpdateOne) SetExcerpt(v string) *BlogPostUpdateOne {
	_u.mutation.SetExcerpt(v)
	return _u
}

// SetNillableExcerpt sets the "excerpt" field if the given value is not nil.
func (_u *BlogPostUpdateOne) SetNillableExcerpt(v *string) *BlogPostUpdateOne {
	if v != nil {
		_u.SetExcerpt(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *BlogPostUpdateOne) SetBody(v string) *BlogPostUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *BlogPostUpdateOne) SetNillableBody(v *string) *BlogPostUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetImageURL sets the "image_url" field.
func (_u *BlogPostUpdateOne) SetImageURL(v string) *BlogPostUpdateOne {
	_u.mutation.SetImageURL(v)
	return _u
}

// SetNillableImageURL sets the "image_url" field if the given value is not nil.
func (_u *BlogPostUpdateOne) SetNillableImageURL(v *string) *BlogPostUpdateOne {
	if v != nil {
		_u.SetImageURL(*v)
	}
	return _u
}

// SetPublished sets the "published" field.
func (_u *BlogPostUpdateOne) SetPublished(v bool) *BlogPostUpdateOne {
	_u.mutation.SetPublished(v)
	return _u
}

// SetNillablePublished sets the "published" field if the given value is not nil.
func (_u *BlogPostUpdateOne) SetNillablePublished(v *bool) *BlogPostUpdateOne {
	if v != nil {
		_u.SetPublished(*v)
	}
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *BlogPostUpdateOne) SetPublishedAt(v time.Time) *BlogPostUpdateOne {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *BlogPostUpdateOne) SetNillablePublishedAt(v *time.Time) *BlogPostUpdateOne {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (_u *BlogPostUpdateOne) ClearPublishedAt() *BlogPostUpdateOne {
	_u.mutation.ClearPublishedAt()
	return _u
}

// SetPrimaryCategoryID sets the "primary_category_id" field.
func (_u *BlogPostUpdateOne) SetPrimaryCategoryID(v int64) *BlogPostUpdateOne {
	_u.mutation.ResetPrimaryCategoryID()
	_u.mutation.SetPrimaryCategoryID(v)
	return _u
}

// SetNillablePrimaryCategoryID sets the "primary_category_id" field if the given value is not nil.
func (_u *BlogPostUpdateOne) SetNillablePrimaryCategoryID(v *int64) *BlogPostUpdateOne {
	if v != nil {
		_u.SetPrimaryCategoryID(*v)
	}
	return _u
}

// AddPrimaryCategoryID adds value to the "primary_category_id" field.
func (_u *BlogPostUpdateOne) AddPrimaryCategoryID(v int64) *BlogPostUpdateOne {
	_u.mutation.AddPrimaryCategoryID(v)
	return _u
}

// ClearPrimaryCategoryID clears the value of the "primary_category_id" field.
func (_u *BlogPostUpdateOne) ClearPrimaryCategoryID() *BlogPostUpdateOne {
	_u.mutation.ClearPrimaryCategoryID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BlogPostUpdateOne) SetUpdatedAt(v time.Time) *BlogPostUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the BlogPostMutation object of the builder.
func (_u *BlogPostUpdateOne) Mutation() *BlogPostMutation {
	return _u.mutation
}

// Where appends a list predicates to the BlogPostUpdate builder.
func (_u *BlogPostUpdateOne) Where(ps ...predicate.BlogPost) *BlogPostUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BlogPostUpdateOne) Select(field string, fields ...string) *BlogPostUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BlogPost entity.
func (_u *BlogPostUpdateOne) Save(ctx context.Context) (*BlogPost, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BlogPostUpdateOne) SaveX(ctx context.Context) *BlogPost {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BlogPostUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BlogPostUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BlogPostUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := blogpost.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BlogPostUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := blogpost.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "BlogPost.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := blogpost.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "BlogPost.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Excerpt(); ok {
		if err := blogpost.ExcerptValidator(v); err != nil {
			return &ValidationError{Name: "excerpt", err: fmt.Errorf(`ent: validator failed for field "BlogPost.excerpt": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ImageURL(); ok {
		if err := blogpost.ImageURLValidator(v); err != nil {
			return &ValidationError{Name: "image_url", err: fmt.Errorf(`ent: validator failed for field "BlogPost.image_url": %w`, err)}
		}
	}
	return nil
}

func (_u *BlogPostUpdateOne) sqlSave(ctx context.Context) (_node *BlogPost, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(blogpost.Table, blogpost.Columns, sqlgraph.NewFieldSpec(blogpost.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BlogPost.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, blogpost.FieldID)
		for _, f := range fields {
			if !blogpost.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != blogpost.FieldID {
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
		_spec.SetField(blogpost.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(blogpost.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Excerpt(); ok {
		_spec.SetField(blogpost.FieldExcerpt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(blogpost.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImageURL(); ok {
		_spec.SetField(blogpost.FieldImageURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Published(); ok {
		_spec.SetField(blogpost.FieldPublished, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(blogpost.FieldPublishedAt, field.TypeTime, value)
	}
	if _u.mutation.PublishedAtCleared() {
		_spec.ClearField(blogpost.FieldPublishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PrimaryCategoryID(); ok {
		_spec.SetField(blogpost.FieldPrimaryCategoryID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPrimaryCategoryID(); ok {
		_spec.AddField(blogpost.FieldPrimaryCategoryID, field.TypeInt64, value)
	}
	if _u.mutation.PrimaryCategoryIDCleared() {
		_spec.ClearField(blogpost.FieldPrimaryCategoryID, field.TypeInt64)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(blogpost.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &BlogPost{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{blogpost.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
