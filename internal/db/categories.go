package db

import (
	"context"
	"fmt"

	"sitecms/ent"
	"sitecms/ent/blogpost"
	"sitecms/ent/category"
	"sitecms/ent/categorylink"
	"sitecms/ent/product"
	"sitecms/ent/project"
)

// Category families. Products, blog posts and projects each own their
// categories; families never share rows.
const (
	FamilyProduct = "product"
	FamilyBlog    = "blog"
	FamilyProject = "project"
)

func validFamily(family string) bool {
	switch family {
	case FamilyProduct, FamilyBlog, FamilyProject:
		return true
	}
	return false
}

// CategoryCreate holds the fields accepted when creating a category.
type CategoryCreate struct {
	Family       string
	Name         string
	Slug         string
	ParentID     *int64
	DisplayOrder int
}

// CategoryUpdate holds the fields accepted for a partial category update.
// ClearParent detaches the category from its parent.
type CategoryUpdate struct {
	Name         *string
	Slug         *string
	DisplayOrder *int
	ParentID     *int64
	ClearParent  bool
}

// validateParent enforces the single-level hierarchy: the parent must exist,
// belong to the same family, and must not itself have a parent.
func validateParent(ctx context.Context, client *ent.Client, family string, parentID int64, selfID int64) error {
	if parentID == selfID {
		return validationErr("parent_id", "category cannot be its own parent")
	}
	parent, err := client.Category.Get(ctx, parentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return validationErr("parent_id", fmt.Sprintf("parent category %d does not exist", parentID))
		}
		return fmt.Errorf("failed to get parent category: %w", err)
	}
	if parent.Family != family {
		return validationErr("parent_id", fmt.Sprintf("parent category %d belongs to family %q", parentID, parent.Family))
	}
	if parent.ParentID != nil {
		return validationErr("parent_id", fmt.Sprintf("category %d has a parent itself and cannot be one", parentID))
	}
	return nil
}

// CreateCategory creates a category within a family.
func (db *DB) CreateCategory(ctx context.Context, in CategoryCreate) (*ent.Category, error) {
	if !validFamily(in.Family) {
		return nil, validationErr("family", fmt.Sprintf("unknown category family %q", in.Family))
	}
	if in.Name == "" {
		return nil, validationErr("name", "name is required")
	}
	if in.Slug == "" {
		return nil, validationErr("slug", "slug is required")
	}
	if in.ParentID != nil {
		if err := validateParent(ctx, db.Client, in.Family, *in.ParentID, 0); err != nil {
			return nil, err
		}
	}

	builder := db.Client.Category.Create().
		SetFamily(in.Family).
		SetName(in.Name).
		SetSlug(in.Slug).
		SetDisplayOrder(in.DisplayOrder)
	if in.ParentID != nil {
		builder.SetParentID(*in.ParentID)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("slug %q already exists in family %q: %w", in.Slug, in.Family, ErrConflict)
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return created, nil
}

// UpdateCategory applies a partial update. Assigning a parent to a category
// that has children of its own would create a second level, so it is
// rejected.
func (db *DB) UpdateCategory(ctx context.Context, id int64, in CategoryUpdate) (*ent.Category, error) {
	cat, err := db.Client.Category.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("category %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	builder := db.Client.Category.UpdateOneID(id)
	if in.Name != nil {
		if *in.Name == "" {
			return nil, validationErr("name", "name cannot be empty")
		}
		builder.SetName(*in.Name)
	}
	if in.Slug != nil {
		if *in.Slug == "" {
			return nil, validationErr("slug", "slug cannot be empty")
		}
		builder.SetSlug(*in.Slug)
	}
	if in.DisplayOrder != nil {
		builder.SetDisplayOrder(*in.DisplayOrder)
	}
	if in.ClearParent {
		builder.ClearParentID()
	} else if in.ParentID != nil {
		if err := validateParent(ctx, db.Client, cat.Family, *in.ParentID, id); err != nil {
			return nil, err
		}
		hasChildren, err := db.Client.Category.Query().
			Where(category.ParentID(id)).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to check for child categories: %w", err)
		}
		if hasChildren {
			return nil, validationErr("parent_id", "category has children and cannot be given a parent")
		}
		builder.SetParentID(*in.ParentID)
	}

	updated, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("category slug conflict: %w", ErrConflict)
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return updated, nil
}

// ListCategories returns a family's categories ordered for display.
func (db *DB) ListCategories(ctx context.Context, family string) ([]*ent.Category, error) {
	if !validFamily(family) {
		return nil, validationErr("family", fmt.Sprintf("unknown category family %q", family))
	}
	cats, err := db.Client.Category.Query().
		Where(category.Family(family)).
		Order(ent.Asc(category.FieldDisplayOrder), ent.Asc(category.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return cats, nil
}

// entityExists reports whether the family's entity row exists.
func entityExists(ctx context.Context, tx *ent.Tx, family string, entityID int64) (bool, error) {
	switch family {
	case FamilyProduct:
		return tx.Product.Query().Where(product.ID(entityID)).Exist(ctx)
	case FamilyBlog:
		return tx.BlogPost.Query().Where(blogpost.ID(entityID)).Exist(ctx)
	case FamilyProject:
		return tx.Project.Query().Where(project.ID(entityID)).Exist(ctx)
	}
	return false, validationErr("family", fmt.Sprintf("unknown category family %q", family))
}

// primaryCategoryID reads an entity's denormalized primary pointer.
func primaryCategoryID(ctx context.Context, tx *ent.Tx, family string, entityID int64) (*int64, error) {
	switch family {
	case FamilyProduct:
		p, err := tx.Product.Get(ctx, entityID)
		if err != nil {
			return nil, err
		}
		return p.PrimaryCategoryID, nil
	case FamilyBlog:
		b, err := tx.BlogPost.Get(ctx, entityID)
		if err != nil {
			return nil, err
		}
		return b.PrimaryCategoryID, nil
	case FamilyProject:
		p, err := tx.Project.Get(ctx, entityID)
		if err != nil {
			return nil, err
		}
		return p.PrimaryCategoryID, nil
	}
	return nil, validationErr("family", fmt.Sprintf("unknown category family %q", family))
}

// writePrimaryCategoryID writes (or clears, when nil) the primary pointer.
func writePrimaryCategoryID(ctx context.Context, tx *ent.Tx, family string, entityID int64, categoryID *int64) error {
	switch family {
	case FamilyProduct:
		b := tx.Product.UpdateOneID(entityID)
		if categoryID == nil {
			b.ClearPrimaryCategoryID()
		} else {
			b.SetPrimaryCategoryID(*categoryID)
		}
		return b.Exec(ctx)
	case FamilyBlog:
		b := tx.BlogPost.UpdateOneID(entityID)
		if categoryID == nil {
			b.ClearPrimaryCategoryID()
		} else {
			b.SetPrimaryCategoryID(*categoryID)
		}
		return b.Exec(ctx)
	case FamilyProject:
		b := tx.Project.UpdateOneID(entityID)
		if categoryID == nil {
			b.ClearPrimaryCategoryID()
		} else {
			b.SetPrimaryCategoryID(*categoryID)
		}
		return b.Exec(ctx)
	}
	return validationErr("family", fmt.Sprintf("unknown category family %q", family))
}

// rederivePrimary enforces the primary invariant for one entity: the primary
// must be a member of the current link set, the first link when none is set,
// and nil when the set is empty. Every mutation path that can touch an
// entity's link set funnels through here.
func rederivePrimary(ctx context.Context, tx *ent.Tx, family string, entityID int64, preferred []int64) error {
	current, err := primaryCategoryID(ctx, tx, family, entityID)
	if err != nil {
		return fmt.Errorf("failed to read primary category: %w", err)
	}

	links, err := tx.CategoryLink.Query().
		Where(categorylink.Family(family), categorylink.EntityID(entityID)).
		Order(ent.Asc(categorylink.FieldLinkOrder), ent.Asc(categorylink.FieldID)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to list category links: %w", err)
	}

	if len(links) == 0 {
		if current == nil {
			return nil
		}
		return writePrimaryCategoryID(ctx, tx, family, entityID, nil)
	}

	linked := make(map[int64]bool, len(links))
	for _, l := range links {
		linked[l.CategoryID] = true
	}
	if current != nil && linked[*current] {
		// Primary is preserved across edits that leave the link set intact.
		return nil
	}

	// Prefer the caller's ordering (the new link list on a replace), falling
	// back to the lowest link_order.
	for _, id := range preferred {
		if linked[id] {
			return writePrimaryCategoryID(ctx, tx, family, entityID, &id)
		}
	}
	first := links[0].CategoryID
	return writePrimaryCategoryID(ctx, tx, family, entityID, &first)
}

// renumberCategoryLinks closes link_order gaps for one category's listing.
func renumberCategoryLinks(ctx context.Context, tx *ent.Tx, family string, categoryID int64) error {
	links, err := tx.CategoryLink.Query().
		Where(categorylink.Family(family), categorylink.CategoryID(categoryID)).
		Order(ent.Asc(categorylink.FieldLinkOrder), ent.Asc(categorylink.FieldID)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to list links for renumbering: %w", err)
	}
	for i, l := range links {
		if l.LinkOrder == i {
			continue
		}
		if err := tx.CategoryLink.UpdateOneID(l.ID).SetLinkOrder(i).Exec(ctx); err != nil {
			return fmt.Errorf("failed to renumber link %d: %w", l.ID, err)
		}
	}
	return nil
}

// SetEntityCategories replaces an entity's linked-category set. Links that
// survive keep their link_order; new links are appended to each category's
// listing; removed links free their order slots. The primary pointer is
// re-derived in the same transaction, so it can never dangle.
func (db *DB) SetEntityCategories(ctx context.Context, family string, entityID int64, categoryIDs []int64) error {
	if !validFamily(family) {
		return validationErr("family", fmt.Sprintf("unknown category family %q", family))
	}
	seen := make(map[int64]bool, len(categoryIDs))
	for _, id := range categoryIDs {
		if seen[id] {
			return validationErr("category_ids", fmt.Sprintf("category %d appears more than once", id))
		}
		seen[id] = true
	}

	return db.withTx(ctx, func(tx *ent.Tx) error {
		exists, err := entityExists(ctx, tx, family, entityID)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%s %d: %w", family, entityID, ErrNotFound)
		}

		if len(categoryIDs) > 0 {
			count, err := tx.Category.Query().
				Where(category.Family(family), category.IDIn(categoryIDs...)).
				Count(ctx)
			if err != nil {
				return fmt.Errorf("failed to verify categories: %w", err)
			}
			if count != len(categoryIDs) {
				return validationErr("category_ids", fmt.Sprintf("one or more categories do not exist in family %q", family))
			}
		}

		existing, err := tx.CategoryLink.Query().
			Where(categorylink.Family(family), categorylink.EntityID(entityID)).
			All(ctx)
		if err != nil {
			return fmt.Errorf("failed to list existing links: %w", err)
		}
		existingSet := make(map[int64]bool, len(existing))
		for _, l := range existing {
			existingSet[l.CategoryID] = true
		}

		// Delete links dropped from the new set, then close the order gaps
		// they leave in each affected category's listing.
		var removed []int64
		for _, l := range existing {
			if !seen[l.CategoryID] {
				removed = append(removed, l.CategoryID)
			}
		}
		if len(removed) > 0 {
			_, err := tx.CategoryLink.Delete().
				Where(
					categorylink.Family(family),
					categorylink.EntityID(entityID),
					categorylink.CategoryIDIn(removed...),
				).
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to delete removed links: %w", err)
			}
			for _, catID := range removed {
				if err := renumberCategoryLinks(ctx, tx, family, catID); err != nil {
					return err
				}
			}
		}

		// Append new links at the end of each category's listing.
		for _, catID := range categoryIDs {
			if existingSet[catID] {
				continue
			}
			last, err := tx.CategoryLink.Query().
				Where(categorylink.Family(family), categorylink.CategoryID(catID)).
				Order(ent.Desc(categorylink.FieldLinkOrder)).
				First(ctx)
			next := 0
			if err == nil {
				next = last.LinkOrder + 1
			} else if !ent.IsNotFound(err) {
				return fmt.Errorf("failed to query last link order: %w", err)
			}

			_, err = tx.CategoryLink.Create().
				SetFamily(family).
				SetEntityID(entityID).
				SetCategoryID(catID).
				SetLinkOrder(next).
				Save(ctx)
			if err != nil {
				if ent.IsConstraintError(err) {
					return fmt.Errorf("entity %d is already linked to category %d: %w", entityID, catID, ErrConflict)
				}
				return fmt.Errorf("failed to create link: %w", err)
			}
		}

		return rederivePrimary(ctx, tx, family, entityID, categoryIDs)
	})
}

// SetPrimaryCategory points the entity's primary at one of its linked
// categories. A category outside the link set is a constraint error, not an
// implicit link.
func (db *DB) SetPrimaryCategory(ctx context.Context, family string, entityID, categoryID int64) error {
	if !validFamily(family) {
		return validationErr("family", fmt.Sprintf("unknown category family %q", family))
	}

	return db.withTx(ctx, func(tx *ent.Tx) error {
		exists, err := entityExists(ctx, tx, family, entityID)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%s %d: %w", family, entityID, ErrNotFound)
		}

		linked, err := tx.CategoryLink.Query().
			Where(
				categorylink.Family(family),
				categorylink.EntityID(entityID),
				categorylink.CategoryID(categoryID),
			).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("failed to check link: %w", err)
		}
		if !linked {
			return fmt.Errorf("category %d is not linked to %s %d: %w", categoryID, family, entityID, ErrConflict)
		}

		return writePrimaryCategoryID(ctx, tx, family, entityID, &categoryID)
	})
}

// ReorderCategoryEntities writes link_order=index for the given full
// ordering of a category's entities, atomically. Same contiguity contract as
// a page reorder, scoped by category instead of page.
func (db *DB) ReorderCategoryEntities(ctx context.Context, family string, categoryID int64, entityIDs []int64) error {
	if !validFamily(family) {
		return validationErr("family", fmt.Sprintf("unknown category family %q", family))
	}

	return db.withTx(ctx, func(tx *ent.Tx) error {
		cat, err := tx.Category.Get(ctx, categoryID)
		if err != nil {
			if ent.IsNotFound(err) {
				return fmt.Errorf("category %d: %w", categoryID, ErrNotFound)
			}
			return fmt.Errorf("failed to get category: %w", err)
		}
		if cat.Family != family {
			return validationErr("family", fmt.Sprintf("category %d belongs to family %q", categoryID, cat.Family))
		}

		links, err := tx.CategoryLink.Query().
			Where(categorylink.Family(family), categorylink.CategoryID(categoryID)).
			All(ctx)
		if err != nil {
			return fmt.Errorf("failed to list links: %w", err)
		}

		if len(entityIDs) != len(links) {
			return validationErr("entity_ids", fmt.Sprintf("expected %d entity ids for category %d, got %d", len(links), categoryID, len(entityIDs)))
		}
		linkByEntity := make(map[int64]int64, len(links))
		for _, l := range links {
			linkByEntity[l.EntityID] = l.ID
		}
		seen := make(map[int64]bool, len(entityIDs))
		for _, id := range entityIDs {
			if _, ok := linkByEntity[id]; !ok {
				return validationErr("entity_ids", fmt.Sprintf("entity %d is not linked to category %d", id, categoryID))
			}
			if seen[id] {
				return validationErr("entity_ids", fmt.Sprintf("entity %d appears more than once", id))
			}
			seen[id] = true
		}

		for i, id := range entityIDs {
			if err := tx.CategoryLink.UpdateOneID(linkByEntity[id]).SetLinkOrder(i).Exec(ctx); err != nil {
				return fmt.Errorf("failed to set link order for entity %d: %w", id, err)
			}
		}
		return nil
	})
}

// DeleteCategory removes a category, cascades over its link rows, detaches
// its children and re-derives the primary of every entity that pointed at
// it, all in one transaction.
func (db *DB) DeleteCategory(ctx context.Context, id int64) error {
	return db.withTx(ctx, func(tx *ent.Tx) error {
		cat, err := tx.Category.Get(ctx, id)
		if err != nil {
			if ent.IsNotFound(err) {
				return fmt.Errorf("category %d: %w", id, ErrNotFound)
			}
			return fmt.Errorf("failed to get category: %w", err)
		}

		// Children survive as top-level categories.
		_, err = tx.Category.Update().
			Where(category.ParentID(id)).
			ClearParentID().
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to detach child categories: %w", err)
		}

		links, err := tx.CategoryLink.Query().
			Where(categorylink.CategoryID(id)).
			All(ctx)
		if err != nil {
			return fmt.Errorf("failed to list category links: %w", err)
		}

		if len(links) > 0 {
			_, err = tx.CategoryLink.Delete().
				Where(categorylink.CategoryID(id)).
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to delete category links: %w", err)
			}
		}

		for _, l := range links {
			if err := rederivePrimary(ctx, tx, cat.Family, l.EntityID, nil); err != nil {
				return err
			}
		}

		if err := tx.Category.DeleteOneID(id).Exec(ctx); err != nil {
			return fmt.Errorf("failed to delete category: %w", err)
		}
		return nil
	})
}

// DeleteEntity removes a content entity together with its link rows, closing
// the link_order gaps in every category it was listed under.
func (db *DB) DeleteEntity(ctx context.Context, family string, entityID int64) error {
	if !validFamily(family) {
		return validationErr("family", fmt.Sprintf("unknown category family %q", family))
	}

	return db.withTx(ctx, func(tx *ent.Tx) error {
		exists, err := entityExists(ctx, tx, family, entityID)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%s %d: %w", family, entityID, ErrNotFound)
		}

		links, err := tx.CategoryLink.Query().
			Where(categorylink.Family(family), categorylink.EntityID(entityID)).
			All(ctx)
		if err != nil {
			return fmt.Errorf("failed to list entity links: %w", err)
		}
		if len(links) > 0 {
			_, err = tx.CategoryLink.Delete().
				Where(categorylink.Family(family), categorylink.EntityID(entityID)).
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to delete entity links: %w", err)
			}
			for _, l := range links {
				if err := renumberCategoryLinks(ctx, tx, family, l.CategoryID); err != nil {
					return err
				}
			}
		}

		switch family {
		case FamilyProduct:
			err = tx.Product.DeleteOneID(entityID).Exec(ctx)
		case FamilyBlog:
			err = tx.BlogPost.DeleteOneID(entityID).Exec(ctx)
		case FamilyProject:
			err = tx.Project.DeleteOneID(entityID).Exec(ctx)
		}
		if err != nil {
			return fmt.Errorf("failed to delete %s %d: %w", family, entityID, err)
		}

		// Project positions stay contiguous for the homepage "first N" cut.
		if family == FamilyProject {
			return renumberProjects(ctx, tx)
		}
		return nil
	})
}

// PrimaryCategoryOf reads an entity's denormalized primary pointer outside a
// transaction, for API responses.
func (db *DB) PrimaryCategoryOf(ctx context.Context, family string, entityID int64) (*int64, error) {
	switch family {
	case FamilyProduct:
		p, err := db.Client.Product.Get(ctx, entityID)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, fmt.Errorf("%s %d: %w", family, entityID, ErrNotFound)
			}
			return nil, err
		}
		return p.PrimaryCategoryID, nil
	case FamilyBlog:
		b, err := db.Client.BlogPost.Get(ctx, entityID)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, fmt.Errorf("%s %d: %w", family, entityID, ErrNotFound)
			}
			return nil, err
		}
		return b.PrimaryCategoryID, nil
	case FamilyProject:
		p, err := db.Client.Project.Get(ctx, entityID)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, fmt.Errorf("%s %d: %w", family, entityID, ErrNotFound)
			}
			return nil, err
		}
		return p.PrimaryCategoryID, nil
	}
	return nil, validationErr("family", fmt.Sprintf("unknown category family %q", family))
}

// EntityCategoryIDs returns the entity's linked category ids ascending by
// link_order.
func (db *DB) EntityCategoryIDs(ctx context.Context, family string, entityID int64) ([]int64, error) {
	if !validFamily(family) {
		return nil, validationErr("family", fmt.Sprintf("unknown category family %q", family))
	}
	links, err := db.Client.CategoryLink.Query().
		Where(categorylink.Family(family), categorylink.EntityID(entityID)).
		Order(ent.Asc(categorylink.FieldLinkOrder), ent.Asc(categorylink.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list entity links: %w", err)
	}
	ids := make([]int64, 0, len(links))
	for _, l := range links {
		ids = append(ids, l.CategoryID)
	}
	return ids, nil
}

// CategoryEntityIDs returns the category's entity ids ascending by
// link_order, for category-scoped listings.
func (db *DB) CategoryEntityIDs(ctx context.Context, family string, categoryID int64) ([]int64, error) {
	if !validFamily(family) {
		return nil, validationErr("family", fmt.Sprintf("unknown category family %q", family))
	}
	links, err := db.Client.CategoryLink.Query().
		Where(categorylink.Family(family), categorylink.CategoryID(categoryID)).
		Order(ent.Asc(categorylink.FieldLinkOrder), ent.Asc(categorylink.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list category links: %w", err)
	}
	ids := make([]int64, 0, len(links))
	for _, l := range links {
		ids = append(ids, l.EntityID)
	}
	return ids, nil
}
