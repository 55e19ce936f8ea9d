// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sitecms/ent/contentblock"
	"sitecms/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
)

// ContentBlockUpdate is the builder for updating ContentBlock entities.
type ContentBlockUpdate struct {
	config
	hooks    []Hook
	mutation *ContentBlockMutation
}

// Where appends a list predicates to the ContentBlockUpdate builder.
func (_u *ContentBlockUpdate) Where(ps ...predicate.ContentBlock) *ContentBlockUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPage sets the "page" field.
func (_u *ContentBlockUpdate) SetPage(v string) *ContentBlockUpdate {
	_u.mutation.SetPage(v)
	return _u
}

// SetNillablePage sets the "page" field if the given value is not nil.
func (_u *ContentBlockUpdate) SetNillablePage(v *string) *ContentBlockUpdate {
	if v != nil {
		_u.SetPage(*v)
	}
	return _u
}

// SetSectionType sets the "section_type" field.
func (_u *ContentBlockUpdate) SetSectionType(v string) *ContentBlockUpdate {
	_u.mutation.SetSectionType(v)
	return _u
}

// SetNillableSectionType sets the "section_type" field if the given value is not nil.
func (_u *ContentBlockUpdate) SetNillableSectionType(v *string) *ContentBlockUpdate {
	if v != nil {
		_u.SetSectionType(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *ContentBlockUpdate) SetPosition(v int) *ContentBlockUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *ContentBlockUpdate) SetNillablePosition(v *int) *ContentBlockUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *ContentBlockUpdate) AddPosition(v int) *ContentBlockUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetActive sets the "active" field.
func (_u *ContentBlockUpdate) SetActive(v bool) *ContentBlockUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *ContentBlockUpdate) SetNillableActive(v *bool) *ContentBlockUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ContentBlockUpdate) SetTitle(v string) *ContentBlockUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ContentBlockUpdate) SetNillableTitle(v *string) *ContentBlockUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSubtitle sets the "subtitle" field.
func (_u *ContentBlockUpdate) SetSubtitle(v string) *ContentBlockUpdate {
	_u.mutation.SetSubtitle(v)
	return _u
}

// SetNillableSubtitle sets the "subtitle" field if the given value is not nil.
func (_u *ContentBlockUpdate) SetNillableSubtitle(v *string) *ContentBlockUpdate {
	if v != nil {
		_u.SetSubtitle(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *ContentBlockUpdate) SetBody(v string) *ContentBlockUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *ContentBlockUpdate) SetNillableBody(v *string) *ContentBlockUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetImageURL sets the "image_url" field.
func (_u *ContentBlockUpdate) SetImageURL(v string) *ContentBlockUpdate {
	_u.mutation.SetImageURL(v)
	return _u
}

// SetNillableImageURL sets the "image_url" field if the given value is not nil.
func (_u *ContentBlockUpdate) SetNillableImageURL(v *string) *ContentBlockUpdate {
	if v != nil {
		_u.SetImageURL(*v)
	}
	return _u
}

// SetButtonText sets the "button_text" field.
func (_u *ContentBlockUpdate) SetButtonText(v string) *ContentBlockUpdate {
	_u.mutation.SetButtonText(v)
	return _u
}

// SetNillableButtonText sets the "button_text" field if the given value is not nil.
func (_u *ContentBlockUpdate) SetNillableButtonText(v *string) *ContentBlockUpdate {
	if v != nil {
		_u.SetButtonText(*v)
	}
	return _u
}

// SetButtonURL sets the "button_url" field.
func (_u *ContentBlockUpdate) SetButtonURL(v string) *ContentBlockUpdate {
	_u.mutation.SetButtonURL(v)
	return _u
}

// SetNillableButtonURL sets the "button_url" field if the given value is not nil.
func (_u *ContentBlockUpdate) SetNillableButtonURL(v *string) *ContentBlockUpdate {
	if v != nil {
		_u.SetButtonURL(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *ContentBlockUpdate) SetPayload(v json.RawMessage) *ContentBlockUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// AppendPayload appends value to the "payload" field.
func (_u *ContentBlockUpdate) AppendPayload(v json.RawMessage) *ContentBlockUpdate {
	_u.mutation.AppendPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *ContentBlockUpdate) ClearPayload() *ContentBlockUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContentBlockUpdate) SetUpdatedAt(v time.Time) *ContentBlockUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ContentBlockMutation object of the builder.
func (_u *ContentBlockUpdate) Mutation() *ContentBlockMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContentBlockUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContentBlockUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContentBlockUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContentBlockUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContentBlockUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := contentblock.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContentBlockUpdate) check() error {
	if v, ok := _u.mutation.Page(); ok {
		if err := contentblock.PageValidator(v); err != nil {
			return &ValidationError{Name: "page", err: fmt.Errorf(`ent: validator failed for field "ContentBlock.page": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SectionType(); ok {
		if err := contentblock.SectionTypeValidator(v); err != nil {
			return &ValidationError{Name: "section_type", err: fmt.Errorf(`ent: validator failed for field "ContentBlock.section_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := contentblock.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "ContentBlock.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subtitle(); ok {
		if err := contentblock.SubtitleValidator(v); err != nil {
			return &ValidationError{Name: "subtitle", err: fmt.Errorf(`ent: validator failed for field "ContentBlock.subtitle": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ImageURL(); ok {
		if err := contentblock.ImageURLValidator(v); err != nil {
			return &ValidationError{Name: "image_url", err: fmt.Errorf(`ent: validator failed for field "ContentBlock.image_url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ButtonText(); ok {
		if err := contentblock.ButtonTextValidator(v); err != nil {
			return &ValidationError{Name: "button_text", err: fmt.Errorf(`ent: validator failed for field "ContentBlock.button_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ButtonURL(); ok {
		if err := contentblock.ButtonURLValidator(v); err != nil {
			return &ValidationError{Name: "button_url", err: fmt.Errorf(`ent: validator failed for field "ContentBlock.button_url": %w`, err)}
		}
	}
	return nil
}

func (_u *ContentBlockUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contentblock.Table, contentblock.Columns, sqlgraph.NewFieldSpec(contentblock.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Page(); ok {
		_spec.SetField(contentblock.FieldPage, field.TypeString, value)
	}
	if value, ok := _u.mutation.SectionType(); ok {
		_spec.SetField(contentblock.FieldSectionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(contentblock.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(contentblock.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(contentblock.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(contentblock.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subtitle(); ok {
		_spec.SetField(contentblock.FieldSubtitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(contentblock.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImageURL(); ok {
		_spec.SetField(contentblock.FieldImageURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.ButtonText(); ok {
		_spec.SetField(contentblock.FieldButtonText, field.TypeString, value)
	}
	if value, ok := _u.mutation.ButtonURL(); ok {
		_spec.SetField(contentblock.FieldButtonURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(contentblock.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPayload(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contentblock.FieldPayload, value)
		})
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(contentblock.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(contentblock.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contentblock.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContentBlockUpdateOne is the builder for updating a single ContentBlock entity.
type ContentBlockUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContentBlockMutation
}

// SetPage sets the "page" field.
func (_u *ContentBlockUpdateOne) SetPage(v string) *ContentBlockUpdateOne {
	_u.mutation.SetPage(v)
	return _u
}

// SetNillablePage sets the "page" field if the given value is not nil.
func (_u *ContentBlockUpdateOne) SetNillablePage(v *string) *ContentBlockUpdateOne {
	if v != nil {
		_u.SetPage(*v)
	}
	return _u
}

// SetSectionType sets the "section_type" field.
func (_u *ContentBlockUpdateOne) SetSectionType(v string) *ContentBlockUpdateOne {
	_u.mutation.SetSectionType(v)
	return _u
}

// SetNillableSectionType sets the "section_type" field if the given value is not nil.
func (_u *ContentBlockUpdateOne) SetNillableSectionType(v *string) *ContentBlockUpdateOne {
	if v != nil {
		_u.SetSectionType(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *ContentBlockUpdateOne) SetPosition(v int) *ContentBlockUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *ContentBlockUpdateOne) SetNillablePosition(v *int) *ContentBlockUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *ContentBlockUpdateOne) AddPosition(v int) *ContentBlockUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetActive sets the "active" field.
func (_u *ContentBlockUpdateOne) SetActive(v bool) *ContentBlockUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *ContentBlockUpdateOne) SetNillableActive(v *bool) *ContentBlockUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ContentBlockUpdateOne) SetTitle(v string) *ContentBlockUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ContentBlockUpdateOne) SetNillableTitle(v *string) *ContentBlockUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSubtitle sets the "subtitle" field.
func (_u *ContentBlockUpdateOne) SetSubtitle(v string) *ContentBlockUpdateOne {
	_u.mutation.SetSubtitle(v)
	return _u
}

// SetNillableSubtitle sets the "subtitle" field if the given value is not nil.
func (_u *ContentBlockUpdateOne) SetNillableSubtitle(v *string) *ContentBlockUpdateOne {
	if v != nil {
		_u.SetSubtitle(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *ContentBlockUpdateOne) SetBody(v string) *ContentBlockUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *ContentBlockUpdateOne) SetNillableBody(v *string) *ContentBlockUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetImageURL sets the "image_url" field.
func (_u *ContentBlockUpdateOne) SetImageURL(v string) *ContentBlockUpdateOne {
	_u.mutation.SetImageURL(v)
	return _u
}

// SetNillableImageURL sets the "image_url" field if the given value is not nil.
func (_u *ContentBlockUpdateOne) SetNillableImageURL(v *string) *ContentBlockUpdateOne {
	if v != nil {
		_u.SetImageURL(*v)
	}
	return _u
}

// SetButtonText sets the "button_text" field.
func (_u *ContentBlockUpdateOne) SetButtonText(v string) *ContentBlockUpdateOne {
	_u.mutation.SetButtonText(v)
	return _u
}

// SetNillableButtonText sets the "button_text" field if the given value is not nil.
func (_u *ContentBlockUpdateOne) SetNillableButtonText(v *string) *ContentBlockUpdateOne {
	if v != nil {
		_u.SetButtonText(*v)
	}
	return _u
}

// SetButtonURL sets the "button_url" field.
func (_u *ContentBlockUpdateOne) SetButtonURL(v string) *ContentBlockUpdateOne {
	_u.mutation.SetButtonURL(v)
	return _u
}

// SetNillableButtonURL sets the "button_url" field if the given value is not nil.
func (_u *ContentBlockUpdateOne) SetNillableButtonURL(v *string) *ContentBlockUpdateOne {
	if v != nil {
		_u.SetButtonURL(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *ContentBlockUpdateOne) SetPayload(v json.RawMessage) *ContentBlockUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// AppendPayload appends value to the "payload" field.
func (_u *ContentBlockUpdateOne) AppendPayload(v json.RawMessage) *ContentBlockUpdateOne {
	_u.mutation.AppendPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *ContentBlockUpdateOne) ClearPayload() *ContentBlockUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContentBlockUpdateOne) SetUpdatedAt(v time.Time) *ContentBlockUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ContentBlockMutation object of the builder.
func (_u *ContentBlockUpdateOne) Mutation() *ContentBlockMutation {
	return _u.mutation
}

// Where appends a list predicates to the ContentBlockUpdate builder.
func (_u *ContentBlockUpdateOne) Where(ps ...predicate.ContentBlock) *ContentBlockUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContentBlockUpdateOne) Select(field string, fields ...string) *ContentBlockUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ContentBlock entity.
func (_u *ContentBlockUpdateOne) Save(ctx context.Context) (*ContentBlock, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContentBlockUpdateOne) SaveX(ctx context.Context) *ContentBlock {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContentBlockUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContentBlockUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContentBlockUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := contentblock.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContentBlockUpdateOne) check() error {
	if v, ok := _u.mutation.Page(); ok {
		if err := contentblock.PageValidator(v); err != nil {
			return &ValidationError{Name: "page", err: fmt.Errorf(`ent: validator failed for field "ContentBlock.page": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SectionType(); ok {
		if err := contentblock.SectionTypeValidator(v); err != nil {
			return &ValidationError{Name: "section_type", err: fmt.Errorf(`ent: validator failed for field "ContentBlock.section_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := contentblock.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "ContentBlock.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subtitle(); ok {
		if err := contentblock.SubtitleValidator(v); err != nil {
			return &ValidationError{Name: "subtitle", err: fmt.Errorf(`ent: validator failed for field "ContentBlock.subtitle": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ImageURL(); ok {
		if err := contentblock.ImageURLValidator(v); err != nil {
			return &ValidationError{Name: "image_url", err: fmt.Errorf(`ent: validator failed for field "ContentBlock.image_url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ButtonText(); ok {
		if err := contentblock.ButtonTextValidator(v); err != nil {
			return &ValidationError{Name: "button_text", err: fmt.Errorf(`ent: validator failed for field "ContentBlock.button_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ButtonURL(); ok {
		if err := contentblock.ButtonURLValidator(v); err != nil {
			return &ValidationError{Name: "button_url", err: fmt.Errorf(`ent: validator failed for field "ContentBlock.button_url": %w`, err)}
		}
	}
	return nil
}

func (_u *ContentBlockUpdateOne) sqlSave(ctx context.Context) (_node *ContentBlock, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contentblock.Table, contentblock.Columns, sqlgraph.NewFieldSpec(contentblock.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ContentBlock.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contentblock.FieldID)
		for _, f := range fields {
			if !contentblock.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contentblock.FieldID {
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
	if value, ok := _u.mutation.Page(); ok {
		_spec.SetField(contentblock.FieldPage, field.TypeString, value)
	}
	if value, ok := _u.mutation.SectionType(); ok {
		_spec.SetField(contentblock.FieldSectionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(contentblock.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(contentblock.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(contentblock.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(contentblock.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subtitle(); ok {
		_spec.SetField(contentblock.FieldSubtitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(contentblock.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImageURL(); ok {
		_spec.SetField(contentblock.FieldImageURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.ButtonText(); ok {
		_spec.SetField(contentblock.FieldButtonText, field.TypeString, value)
	}
	if value, ok := _u.mutation.ButtonURL(); ok {
		_spec.SetField(contentblock.FieldButtonURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(contentblock.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPayload(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contentblock.FieldPayload, value)
		})
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(contentblock.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(contentblock.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ContentBlock{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contentblock.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
