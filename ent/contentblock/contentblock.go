// Code generated by ent, DO NOT EDIT.

package contentblock

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the contentblock type in the database.
	Label = "content_block"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPage holds the string denoting the page field in the database.
	FieldPage = "page"
	// FieldSectionType holds the string denoting the section_type field in the database.
	FieldSectionType = "section_type"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// FieldActive holds the string denoting the active field in the database.
	FieldActive = "active"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldSubtitle holds the string denoting the subtitle field in the database.
	FieldSubtitle = "subtitle"
	// FieldBody holds the string denoting the body field in the database.
	FieldBody = "body"
	// FieldImageURL holds the string denoting the image_url field in the database.
	FieldImageURL = "image_url"
	// FieldButtonText holds the string denoting the button_text field in the database.
	FieldButtonText = "button_text"
	// FieldButtonURL holds the string denoting the button_url field in the database.
	FieldButtonURL = "button_url"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the contentblock in the database.
	Table = "content_blocks"
)

// Columns holds all SQL columns for contentblock fields.
var Columns = []string{
	FieldID,
	FieldPage,
	FieldSectionType,
	FieldPosition,
	FieldActive,
	FieldTitle,
	FieldSubtitle,
	FieldBody,
	FieldImageURL,
	FieldButtonText,
	FieldButtonURL,
	FieldPayload,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// PageValidator is a validator for the "page" field. It is called by the builders before save.
	PageValidator func(string) error
	// SectionTypeValidator is a validator for the "section_type" field. It is called by the builders before save.
	SectionTypeValidator func(string) error
	// DefaultActive holds the default value on creation for the "active" field.
	DefaultActive bool
	// DefaultTitle holds the default value on creation for the "title" field.
	DefaultTitle string
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// DefaultSubtitle holds the default value on creation for the "subtitle" field.
	DefaultSubtitle string
	// SubtitleValidator is a validator for the "subtitle" field. It is called by the builders before save.
	SubtitleValidator func(string) error
	// DefaultBody holds the default value on creation for the "body" field.
	DefaultBody string
	// DefaultImageURL holds the default value on creation for the "image_url" field.
	DefaultImageURL string
	// ImageURLValidator is a validator for the "image_url" field. It is called by the builders before save.
	ImageURLValidator func(string) error
	// DefaultButtonText holds the default value on creation for the "button_text" field.
	DefaultButtonText string
	// ButtonTextValidator is a validator for the "button_text" field. It is called by the builders before save.
	ButtonTextValidator func(string) error
	// DefaultButtonURL holds the default value on creation for the "button_url" field.
	DefaultButtonURL string
	// ButtonURLValidator is a validator for the "button_url" field. It is called by the builders before save.
	ButtonURLValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the ContentBlock queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPage orders the results by the page field.
func ByPage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPage, opts...).ToFunc()
}

// BySectionType orders the results by the section_type field.
func BySectionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSectionType, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// ByActive orders the results by the active field.
func ByActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActive, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// BySubtitle orders the results by the subtitle field.
func BySubtitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubtitle, opts...).ToFunc()
}

// ByBody orders the results by the body field.
func ByBody(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBody, opts...).ToFunc()
}

// ByImageURL orders the results by the image_url field.
func ByImageURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImageURL, opts...).ToFunc()
}

// ByButtonText orders the results by the button_text field.
func ByButtonText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldButtonText, opts...).ToFunc()
}

// ByButtonURL orders the results by the button_url field.
func ByButtonURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldButtonURL, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
