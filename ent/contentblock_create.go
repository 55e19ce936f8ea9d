// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sitecms/ent/contentblock"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// ContentBlockCreate is the builder for creating a ContentBlock entity.
type ContentBlockCreate struct {
	config
	mutation *ContentBlockMutation
	hooks    []Hook
}

// SetPage sets the "page" field.
func (_c *ContentBlockCreate) SetPage(v string) *ContentBlockCreate {
	_c.mutation.SetPage(v)
	return _c
}

// SetSectionType sets the "section_type" field.
func (_c *ContentBlockCreate) SetSectionType(v string) *ContentBlockCreate {
	_c.mutation.SetSectionType(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *ContentBlockCreate) SetPosition(v int) *ContentBlockCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetActive sets the "active" field.
func (_c *ContentBlockCreate) SetActive(v bool) *ContentBlockCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *ContentBlockCreate) SetNillableActive(v *bool) *ContentBlockCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *ContentBlockCreate) SetTitle(v string) *ContentBlockCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *ContentBlockCreate) SetNillableTitle(v *string) *ContentBlockCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetSubtitle sets the "subtitle" field.
func (_c *ContentBlockCreate) SetSubtitle(v string) *ContentBlockCreate {
	_c.mutation.SetSubtitle(v)
	return _c
}

// SetNillableSubtitle sets the "subtitle" field if the given value is not nil.
func (_c *ContentBlockCreate) SetNillableSubtitle(v *string) *ContentBlockCreate {
	if v != nil {
		_c.SetSubtitle(*v)
	}
	return _c
}

// SetBody sets the "body" field.
func (_c *ContentBlockCreate) SetBody(v string) *ContentBlockCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_c *ContentBlockCreate) SetNillableBody(v *string) *ContentBlockCreate {
	if v != nil {
		_c.SetBody(*v)
	}
	return _c
}

// SetImageURL sets the "image_url" field.
func (_c *ContentBlockCreate) SetImageURL(v string) *ContentBlockCreate {
	_c.mutation.SetImageURL(v)
	return _c
}

// SetNillableImageURL sets the "image_url" field if the given value is not nil.
func (_c *ContentBlockCreate) SetNillableImageURL(v *string) *ContentBlockCreate {
	if v != nil {
		_c.SetImageURL(*v)
	}
	return _c
}

// SetButtonText sets the "button_text" field.
func (_c *ContentBlockCreate) SetButtonText(v string) *ContentBlockCreate {
	_c.mutation.SetButtonText(v)
	return _c
}

// SetNillableButtonText sets the "button_text" field if the given value is not nil.
func (_c *ContentBlockCreate) SetNillableButtonText(v *string) *ContentBlockCreate {
	if v != nil {
		_c.SetButtonText(*v)
	}
	return _c
}

// SetButtonURL sets the "button_url" field.
func (_c *ContentBlockCreate) SetButtonURL(v string) *ContentBlockCreate {
	_c.mutation.SetButtonURL(v)
	return _c
}

// SetNillableButtonURL sets the "button_url" field if the given value is not nil.
func (_c *ContentBlockCreate) SetNillableButtonURL(v *string) *ContentBlockCreate {
	if v != nil {
		_c.SetButtonURL(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *ContentBlockCreate) SetPayload(v json.RawMessage) *ContentBlockCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ContentBlockCreate) SetCreatedAt(v time.Time) *ContentBlockCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ContentBlockCreate) SetNillableCreatedAt(v *time.Time) *ContentBlockCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ContentBlockCreate) SetUpdatedAt(v time.Time) *ContentBlockCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ContentBlockCreate) SetNillableUpdatedAt(v *time.Time) *ContentBlockCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ContentBlockCreate) SetID(v int64) *ContentBlockCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ContentBlockMutation object of the builder.
func (_c *ContentBlockCreate) Mutation() *ContentBlockMutation {
	return _c.mutation
}

// Save creates the ContentBlock in the database.
func (_c *ContentBlockCreate) Save(ctx context.Context) (*ContentBlock, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ContentBlockCreate) SaveX(ctx context.Context) *ContentBlock {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContentBlockCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContentBlockCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ContentBlockCreate) defaults() {
	if _, ok := _c.mutation.Active(); !ok {
		v := contentblock.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.Title(); !ok {
		v := contentblock.DefaultTitle
		_c.mutation.SetTitle(v)
	}
	if _, ok := _c.mutation.Subtitle(); !ok {
		v := contentblock.DefaultSubtitle
		_c.mutation.SetSubtitle(v)
	}
	if _, ok := _c.mutation.Body(); !ok {
		v := contentblock.DefaultBody
		_c.mutation.SetBody(v)
	}
	if _, ok := _c.mutation.ImageURL(); !ok {
		v := contentblock.DefaultImageURL
		_c.mutation.SetImageURL(v)
	}
	if _, ok := _c.mutation.ButtonText(); !ok {
		v := contentblock.DefaultButtonText
		_c.mutation.SetButtonText(v)
	}
	if _, ok := _c.mutation.ButtonURL(); !ok {
		v := contentblock.DefaultButtonURL
		_c.mutation.SetButtonURL(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := contentblock.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := contentblock.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ContentBlockCreate) check() error {
	if _, ok := _c.mutation.Page(); !ok {
		return &ValidationError{Name: "page", err: errors.New(`ent: missing required field "ContentBlock.page"`)}
	}
	if v, ok := _c.mutation.Page(); ok {
		if err := contentblock.PageValidator(v); err != nil {
			return &ValidationError{Name: "page", err: fmt.Errorf(`ent: validator failed for field "ContentBlock.page": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SectionType(); !ok {
		return &ValidationError{Name: "section_type", err: errors.New(`ent: missing required field "ContentBlock.section_type"`)}
	}
	if v, ok := _c.mutation.SectionType(); ok {
		if err := contentblock.SectionTypeValidator(v); err != nil {
			return &ValidationError{Name: "section_type", err: fmt.Errorf(`ent: validator failed for field "ContentBlock.section_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "ContentBlock.position"`)}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "ContentBlock.active"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "ContentBlock.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := contentblock.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "ContentBlock.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subtitle(); !ok {
		return &ValidationError{Name: "subtitle", err: errors.New(`ent: missing required field "ContentBlock.subtitle"`)}
	}
	if v, ok := _c.mutation.Subtitle(); ok {
		if err := contentblock.SubtitleValidator(v); err != nil {
			return &ValidationError{Name: "subtitle", err: fmt.Errorf(`ent: validator failed for field "ContentBlock.subtitle": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Body(); !ok {
		return &ValidationError{Name: "body", err: errors.New(`ent: missing required field "ContentBlock.body"`)}
	}
	if _, ok := _c.mutation.ImageURL(); !ok {
		return &ValidationError{Name: "image_url", err: errors.New(`ent: missing required field "ContentBlock.image_url"`)}
	}
	if v, ok := _c.mutation.ImageURL(); ok {
		if err := contentblock.ImageURLValidator(v); err != nil {
			return &ValidationError{Name: "image_url", err: fmt.Errorf(`ent: validator failed for field "ContentBlock.image_url": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ButtonText(); !ok {
		return &ValidationError{Name: "button_text", err: errors.New(`ent: missing required field "ContentBlock.button_text"`)}
	}
	if v, ok := _c.mutation.ButtonText(); ok {
		if err := contentblock.ButtonTextValidator(v); err != nil {
			return &ValidationError{Name: "button_text", err: fmt.Errorf(`ent: validator failed for field "ContentBlock.button_text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ButtonURL(); !ok {
		return &ValidationError{Name: "button_url", err: errors.New(`ent: missing required field "ContentBlock.button_url"`)}
	}
	if v, ok := _c.mutation.ButtonURL(); ok {
		if err := contentblock.ButtonURLValidator(v); err != nil {
			return &ValidationError{Name: "button_url", err: fmt.Errorf(`ent: validator failed for field "ContentBlock.button_url": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ContentBlock.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ContentBlock.updated_at"`)}
	}
	return nil
}

func (_c *ContentBlockCreate) sqlSave(ctx context.Context) (*ContentBlock, error) {
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

func (_c *ContentBlockCreate) createSpec() (*ContentBlock, *sqlgraph.CreateSpec) {
	var (
		_node = &ContentBlock{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(contentblock.Table, sqlgraph.NewFieldSpec(contentblock.FieldID, field.TypeInt64))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Page(); ok {
		_spec.SetField(contentblock.FieldPage, field.TypeString, value)
		_node.Page = value
	}
	if value, ok := _c.mutation.SectionType(); ok {
		_spec.SetField(contentblock.FieldSectionType, field.TypeString, value)
		_node.SectionType = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(contentblock.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(contentblock.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(contentblock.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Subtitle(); ok {
		_spec.SetField(contentblock.FieldSubtitle, field.TypeString, value)
		_node.Subtitle = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(contentblock.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.ImageURL(); ok {
		_spec.SetField(contentblock.FieldImageURL, field.TypeString, value)
		_node.ImageURL = value
	}
	if value, ok := _c.mutation.ButtonText(); ok {
		_spec.SetField(contentblock.FieldButtonText, field.TypeString, value)
		_node.ButtonText = value
	}
	if value, ok := _c.mutation.ButtonURL(); ok {
		_spec.SetField(contentblock.FieldButtonURL, field.TypeString, value)
		_node.ButtonURL = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(contentblock.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(contentblock.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(contentblock.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ContentBlockCreateBulk is the builder for creating many ContentBlock entities in bulk.
type ContentBlockCreateBulk struct {
	config
	err      error
	builders []*ContentBlockCreate
}

// Save creates the ContentBlock entities in the database.
func (_c *ContentBlockCreateBulk) Save(ctx context.Context) ([]*ContentBlock, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ContentBlock, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContentBlockMutation)
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
func (_c *ContentBlockCreateBulk) SaveX(ctx context.Context) []*ContentBlock {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContentBlockCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContentBlockCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
