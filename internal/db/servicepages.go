package db

import (
	"context"
	"fmt"

	"sitecms/ent"
	"sitecms/ent/contentblock"
)

// ServicePageUpdate holds the fields accepted for a partial service page
// update.
type ServicePageUpdate struct {
	Title       *string
	Slug        *string
	Description *string
	Active      *bool
}

// UpdateServicePage applies a partial update. Renaming the slug migrates the
// page's blocks to the new namespace in the same transaction, so no block is
// ever orphaned.
func (db *DB) UpdateServicePage(ctx context.Context, id int64, in ServicePageUpdate) (*ent.ServicePage, error) {
	var updated *ent.ServicePage
	err := db.withTx(ctx, func(tx *ent.Tx) error {
		sp, err := tx.ServicePage.Get(ctx, id)
		if err != nil {
			if ent.IsNotFound(err) {
				return fmt.Errorf("service page %d: %w", id, ErrNotFound)
			}
			return fmt.Errorf("failed to get service page: %w", err)
		}

		builder := tx.ServicePage.UpdateOneID(id)
		if in.Title != nil {
			if *in.Title == "" {
				return validationErr("title", "title cannot be empty")
			}
			builder.SetTitle(*in.Title)
		}
		if in.Description != nil {
			builder.SetDescription(*in.Description)
		}
		if in.Active != nil {
			builder.SetActive(*in.Active)
		}
		if in.Slug != nil && *in.Slug != sp.Slug {
			if *in.Slug == "" {
				return validationErr("slug", "slug cannot be empty")
			}
			builder.SetSlug(*in.Slug)
			_, err := tx.ContentBlock.Update().
				Where(contentblock.Page(ServicePageNamespace(sp.Slug))).
				SetPage(ServicePageNamespace(*in.Slug)).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("failed to migrate service page blocks: %w", err)
			}
		}

		updated, err = builder.Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return fmt.Errorf("service page slug conflict: %w", ErrConflict)
			}
			return fmt.Errorf("failed to update service page: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteServicePage removes a service page together with every block in its
// "service-<slug>" namespace.
func (db *DB) DeleteServicePage(ctx context.Context, id int64) error {
	return db.withTx(ctx, func(tx *ent.Tx) error {
		sp, err := tx.ServicePage.Get(ctx, id)
		if err != nil {
			if ent.IsNotFound(err) {
				return fmt.Errorf("service page %d: %w", id, ErrNotFound)
			}
			return fmt.Errorf("failed to get service page: %w", err)
		}

		_, err = tx.ContentBlock.Delete().
			Where(contentblock.Page(ServicePageNamespace(sp.Slug))).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to delete service page blocks: %w", err)
		}

		if err := tx.ServicePage.DeleteOneID(id).Exec(ctx); err != nil {
			return fmt.Errorf("failed to delete service page: %w", err)
		}
		return nil
	})
}
