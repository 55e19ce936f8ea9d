// Code generated by ent, DO NOT EDIT.

package contentblock

import (
	"sitecms/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id int64) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int64) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int64) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int64) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int64) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int64) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int64) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int64) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int64) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldLTE(FieldID, id))
}

// Page applies equality check predicate on the "page" field. It's identical to PageEQ.
func Page(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldEQ(FieldPage, v))
}

// SectionType applies equality check predicate on the "section_type" field. It's identical to SectionTypeEQ.
func SectionType(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldEQ(FieldSectionType, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldEQ(FieldPosition, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldEQ(FieldActive, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldEQ(FieldTitle, v))
}

// Subtitle applies equality check predicate on the "subtitle" field. It's identical to SubtitleEQ.
func Subtitle(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldEQ(FieldSubtitle, v))
}

// Body applies equality check predicate on the "body" field. It's identical to BodyEQ.
func Body(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldEQ(FieldBody, v))
}

// ImageURL applies equality check predicate on the "image_url" field. It's identical to ImageURLEQ.
func ImageURL(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldEQ(FieldImageURL, v))
}

// ButtonText applies equality check predicate on the "button_text" field. It's identical to ButtonTextEQ.
func ButtonText(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldEQ(FieldButtonText, v))
}

// ButtonURL applies equality check predicate on the "button_url" field. It's identical to ButtonURLEQ.
func ButtonURL(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldEQ(FieldButtonURL, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldEQ(FieldUpdatedAt, v))
}

// PageEQ applies the EQ predicate on the "page" field.
func PageEQ(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldEQ(FieldPage, v))
}

// PageNEQ applies the NEQ predicate on the "page" field.
func PageNEQ(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldNEQ(FieldPage, v))
}

// PageIn applies the In predicate on the "page" field.
func PageIn(vs ...string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldIn(FieldPage, vs...))
}

// PageNotIn applies the NotIn predicate on the "page" field.
func PageNotIn(vs ...string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldNotIn(FieldPage, vs...))
}

// PageGT applies the GT predicate on the "page" field.
func PageGT(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldGT(FieldPage, v))
}

// PageGTE applies the GTE predicate on the "page" field.
func PageGTE(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldGTE(FieldPage, v))
}

// PageLT applies the LT predicate on the "page" field.
func PageLT(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldLT(FieldPage, v))
}

// PageLTE applies the LTE predicate on the "page" field.
func PageLTE(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldLTE(FieldPage, v))
}

// PageContains applies the Contains predicate on the "page" field.
func PageContains(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldContains(FieldPage, v))
}

// PageHasPrefix applies the HasPrefix predicate on the "page" field.
func PageHasPrefix(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldHasPrefix(FieldPage, v))
}

// PageHasSuffix applies the HasSuffix predicate on the "page" field.
func PageHasSuffix(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldHasSuffix(FieldPage, v))
}

// PageEqualFold applies the EqualFold predicate on the "page" field.
func PageEqualFold(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldEqualFold(FieldPage, v))
}

// PageContainsFold applies the ContainsFold predicate on the "page" field.
func PageContainsFold(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldContainsFold(FieldPage, v))
}

// SectionTypeEQ applies the EQ predicate on the "section_type" field.
func SectionTypeEQ(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldEQ(FieldSectionType, v))
}

// SectionTypeNEQ applies the NEQ predicate on the "section_type" field.
func SectionTypeNEQ(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldNEQ(FieldSectionType, v))
}

// SectionTypeIn applies the In predicate on the "section_type" field.
func SectionTypeIn(vs ...string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldIn(FieldSectionType, vs...))
}

// SectionTypeNotIn applies the NotIn predicate on the "section_type" field.
func SectionTypeNotIn(vs ...string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldNotIn(FieldSectionType, vs...))
}

// SectionTypeGT applies the GT predicate on the "section_type" field.
func SectionTypeGT(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldGT(FieldSectionType, v))
}

// SectionTypeGTE applies the GTE predicate on the "section_type" field.
func SectionTypeGTE(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldGTE(FieldSectionType, v))
}

// SectionTypeLT applies the LT predicate on the "section_type" field.
func SectionTypeLT(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldLT(FieldSectionType, v))
}

// SectionTypeLTE applies the LTE predicate on the "section_type" field.
func SectionTypeLTE(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldLTE(FieldSectionType, v))
}

// SectionTypeContains applies the Contains predicate on the "section_type" field.
func SectionTypeContains(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldContains(FieldSectionType, v))
}

// SectionTypeHasPrefix applies the HasPrefix predicate on the "section_type" field.
func SectionTypeHasPrefix(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldHasPrefix(FieldSectionType, v))
}

// SectionTypeHasSuffix applies the HasSuffix predicate on the "section_type" field.
func SectionTypeHasSuffix(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldHasSuffix(FieldSectionType, v))
}

// SectionTypeEqualFold applies the EqualFold predicate on the "section_type" field.
func SectionTypeEqualFold(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldEqualFold(FieldSectionType, v))
}

// SectionTypeContainsFold applies the ContainsFold predicate on the "section_type" field.
func SectionTypeContainsFold(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldContainsFold(FieldSectionType, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldLTE(FieldPosition, v))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldNEQ(FieldActive, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldContainsFold(FieldTitle, v))
}

// SubtitleEQ applies the EQ predicate on the "subtitle" field.
func SubtitleEQ(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldEQ(FieldSubtitle, v))
}

// SubtitleNEQ applies the NEQ predicate on the "subtitle" field.
func SubtitleNEQ(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldNEQ(FieldSubtitle, v))
}

// SubtitleIn applies the In predicate on the "subtitle" field.
func SubtitleIn(vs ...string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldIn(FieldSubtitle, vs...))
}

// SubtitleNotIn applies the NotIn predicate on the "subtitle" field.
func SubtitleNotIn(vs ...string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldNotIn(FieldSubtitle, vs...))
}

// SubtitleGT applies the GT predicate on the "subtitle" field.
func SubtitleGT(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldGT(FieldSubtitle, v))
}

// SubtitleGTE applies the GTE predicate on the "subtitle" field.
func SubtitleGTE(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldGTE(FieldSubtitle, v))
}

// SubtitleLT applies the LT predicate on the "subtitle" field.
func SubtitleLT(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldLT(FieldSubtitle, v))
}

// SubtitleLTE applies the LTE predicate on the "subtitle" field.
func SubtitleLTE(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldLTE(FieldSubtitle, v))
}

// SubtitleContains applies the Contains predicate on the "subtitle" field.
func SubtitleContains(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldContains(FieldSubtitle, v))
}

// SubtitleHasPrefix applies the HasPrefix predicate on the "subtitle" field.
func SubtitleHasPrefix(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldHasPrefix(FieldSubtitle, v))
}

// SubtitleHasSuffix applies the HasSuffix predicate on the "subtitle" field.
func SubtitleHasSuffix(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldHasSuffix(FieldSubtitle, v))
}

// SubtitleEqualFold applies the EqualFold predicate on the "subtitle" field.
func SubtitleEqualFold(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldEqualFold(FieldSubtitle, v))
}

// SubtitleContainsFold applies the ContainsFold predicate on the "subtitle" field.
func SubtitleContainsFold(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldContainsFold(FieldSubtitle, v))
}

// BodyEQ applies the EQ predicate on the "body" field.
func BodyEQ(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldEQ(FieldBody, v))
}

// BodyNEQ applies the NEQ predicate on the "body" field.
func BodyNEQ(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldNEQ(FieldBody, v))
}

// BodyIn applies the In predicate on the "body" field.
func BodyIn(vs ...string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldIn(FieldBody, vs...))
}

// BodyNotIn applies the NotIn predicate on the "body" field.
func BodyNotIn(vs ...string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldNotIn(FieldBody, vs...))
}

// BodyGT applies the GT predicate on the "body" field.
func BodyGT(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldGT(FieldBody, v))
}

// BodyGTE applies the GTE predicate on the "body" field.
func BodyGTE(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldGTE(FieldBody, v))
}

// BodyLT applies the LT predicate on the "body" field.
func BodyLT(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldLT(FieldBody, v))
}

// BodyLTE applies the LTE predicate on the "body" field.
func BodyLTE(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldLTE(FieldBody, v))
}

// BodyContains applies the Contains predicate on the "body" field.
func BodyContains(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldContains(FieldBody, v))
}

// BodyHasPrefix applies the HasPrefix predicate on the "body" field.
func BodyHasPrefix(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldHasPrefix(FieldBody, v))
}

// BodyHasSuffix applies the HasSuffix predicate on the "body" field.
func BodyHasSuffix(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldHasSuffix(FieldBody, v))
}

// BodyEqualFold applies the EqualFold predicate on the "body" field.
func BodyEqualFold(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldEqualFold(FieldBody, v))
}

// BodyContainsFold applies the ContainsFold predicate on the "body" field.
func BodyContainsFold(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldContainsFold(FieldBody, v))
}

// ImageURLEQ applies the EQ predicate on the "image_url" field.
func ImageURLEQ(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldEQ(FieldImageURL, v))
}

// ImageURLNEQ applies the NEQ predicate on the "image_url" field.
func ImageURLNEQ(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldNEQ(FieldImageURL, v))
}

// ImageURLIn applies the In predicate on the "image_url" field.
func ImageURLIn(vs ...string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldIn(FieldImageURL, vs...))
}

// ImageURLNotIn applies the NotIn predicate on the "image_url" field.
func ImageURLNotIn(vs ...string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldNotIn(FieldImageURL, vs...))
}

// ImageURLGT applies the GT predicate on the "image_url" field.
func ImageURLGT(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldGT(FieldImageURL, v))
}

// ImageURLGTE applies the GTE predicate on the "image_url" field.
func ImageURLGTE(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldGTE(FieldImageURL, v))
}

// ImageURLLT applies the LT predicate on the "image_url" field.
func ImageURLLT(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldLT(FieldImageURL, v))
}

// ImageURLLTE applies the LTE predicate on the "image_url" field.
func ImageURLLTE(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldLTE(FieldImageURL, v))
}

// ImageURLContains applies the Contains predicate on the "image_url" field.
func ImageURLContains(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldContains(FieldImageURL, v))
}

// ImageURLHasPrefix applies the HasPrefix predicate on the "image_url" field.
func ImageURLHasPrefix(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldHasPrefix(FieldImageURL, v))
}

// ImageURLHasSuffix applies the HasSuffix predicate on the "image_url" field.
func ImageURLHasSuffix(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldHasSuffix(FieldImageURL, v))
}

// ImageURLEqualFold applies the EqualFold predicate on the "image_url" field.
func ImageURLEqualFold(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldEqualFold(FieldImageURL, v))
}

// ImageURLContainsFold applies the ContainsFold predicate on the "image_url" field.
func ImageURLContainsFold(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldContainsFold(FieldImageURL, v))
}

// ButtonTextEQ applies the EQ predicate on the "button_text" field.
func ButtonTextEQ(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldEQ(FieldButtonText, v))
}

// ButtonTextNEQ applies the NEQ predicate on the "button_text" field.
func ButtonTextNEQ(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldNEQ(FieldButtonText, v))
}

// ButtonTextIn applies the In predicate on the "button_text" field.
func ButtonTextIn(vs ...string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldIn(FieldButtonText, vs...))
}

// ButtonTextNotIn applies the NotIn predicate on the "button_text" field.
func ButtonTextNotIn(vs ...string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldNotIn(FieldButtonText, vs...))
}

// ButtonTextGT applies the GT predicate on the "button_text" field.
func ButtonTextGT(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldGT(FieldButtonText, v))
}

// ButtonTextGTE applies the GTE predicate on the "button_text" field.
func ButtonTextGTE(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldGTE(FieldButtonText, v))
}

// ButtonTextLT applies the LT predicate on the "button_text" field.
func ButtonTextLT(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldLT(FieldButtonText, v))
}

// ButtonTextLTE applies the LTE predicate on the "button_text" field.
func ButtonTextLTE(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldLTE(FieldButtonText, v))
}

// ButtonTextContains applies the Contains predicate on the "button_text" field.
func ButtonTextContains(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldContains(FieldButtonText, v))
}

// ButtonTextHasPrefix applies the HasPrefix predicate on the "button_text" field.
func ButtonTextHasPrefix(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldHasPrefix(FieldButtonText, v))
}

// ButtonTextHasSuffix applies the HasSuffix predicate on the "button_text" field.
func ButtonTextHasSuffix(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldHasSuffix(FieldButtonText, v))
}

// ButtonTextEqualFold applies the EqualFold predicate on the "button_text" field.
func ButtonTextEqualFold(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldEqualFold(FieldButtonText, v))
}

// ButtonTextContainsFold applies the ContainsFold predicate on the "button_text" field.
func ButtonTextContainsFold(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldContainsFold(FieldButtonText, v))
}

// ButtonURLEQ applies the EQ predicate on the "button_url" field.
func ButtonURLEQ(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldEQ(FieldButtonURL, v))
}

// ButtonURLNEQ applies the NEQ predicate on the "button_url" field.
func ButtonURLNEQ(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldNEQ(FieldButtonURL, v))
}

// ButtonURLIn applies the In predicate on the "button_url" field.
func ButtonURLIn(vs ...string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldIn(FieldButtonURL, vs...))
}

// ButtonURLNotIn applies the NotIn predicate on the "button_url" field.
func ButtonURLNotIn(vs ...string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldNotIn(FieldButtonURL, vs...))
}

// ButtonURLGT applies the GT predicate on the "button_url" field.
func ButtonURLGT(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldGT(FieldButtonURL, v))
}

// ButtonURLGTE applies the GTE predicate on the "button_url" field.
func ButtonURLGTE(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldGTE(FieldButtonURL, v))
}

// ButtonURLLT applies the LT predicate on the "button_url" field.
func ButtonURLLT(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldLT(FieldButtonURL, v))
}

// ButtonURLLTE applies the LTE predicate on the "button_url" field.
func ButtonURLLTE(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldLTE(FieldButtonURL, v))
}

// ButtonURLContains applies the Contains predicate on the "button_url" field.
func ButtonURLContains(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldContains(FieldButtonURL, v))
}

// ButtonURLHasPrefix applies the HasPrefix predicate on the "button_url" field.
func ButtonURLHasPrefix(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldHasPrefix(FieldButtonURL, v))
}

// ButtonURLHasSuffix applies the HasSuffix predicate on the "button_url" field.
func ButtonURLHasSuffix(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldHasSuffix(FieldButtonURL, v))
}

// ButtonURLEqualFold applies the EqualFold predicate on the "button_url" field.
func ButtonURLEqualFold(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldEqualFold(FieldButtonURL, v))
}

// ButtonURLContainsFold applies the ContainsFold predicate on the "button_url" field.
func ButtonURLContainsFold(v string) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldContainsFold(FieldButtonURL, v))
}

// PayloadIsNil applies the IsNil predicate on the "payload" field.
func PayloadIsNil() predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldIsNull(FieldPayload))
}

// PayloadNotNil applies the NotNil predicate on the "payload" field.
func PayloadNotNil() predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldNotNull(FieldPayload))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ContentBlock {
	return predicate.ContentBlock(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ContentBlock) predicate.ContentBlock {
	return predicate.ContentBlock(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ContentBlock) predicate.ContentBlock {
	return predicate.ContentBlock(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ContentBlock) predicate.ContentBlock {
	return predicate.ContentBlock(sql.NotPredicates(p))
}
