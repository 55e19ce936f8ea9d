package db

import (
	"context"
	"errors"
	"testing"

	"sitecms/ent"
	"sitecms/ent/categorylink"
)

func mustCreateCategory(t *testing.T, db *DB, family, name, slug string) *ent.Category {
	t.Helper()

	cat, err := db.CreateCategory(context.Background(), CategoryCreate{
		Family: family,
		Name:   name,
		Slug:   slug,
	})
	if err != nil {
		t.Fatalf("Failed to create category %q: %v", slug, err)
	}
	return cat
}

func mustCreateProduct(t *testing.T, db *DB, title, slug string) *ent.Product {
	t.Helper()

	p, err := db.Client.Product.Create().
		SetTitle(title).
		SetSlug(slug).
		Save(context.Background())
	if err != nil {
		t.Fatalf("Failed to create product %q: %v", slug, err)
	}
	return p
}

func productPrimary(t *testing.T, db *DB, id int64) *int64 {
	t.Helper()

	p, err := db.Client.Product.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("Failed to get product %d: %v", id, err)
	}
	return p.PrimaryCategoryID
}

func linkRows(t *testing.T, db *DB, family string, entityID int64) map[int64]int {
	t.Helper()

	links, err := db.Client.CategoryLink.Query().
		Where(categorylink.Family(family), categorylink.EntityID(entityID)).
		All(context.Background())
	if err != nil {
		t.Fatalf("Failed to list links: %v", err)
	}
	rows := make(map[int64]int, len(links))
	for _, l := range links {
		rows[l.CategoryID] = l.LinkOrder
	}
	return rows
}

func TestCategoryCRUD(t *testing.T) {
	db := newTestDB(t, "categories_crud")
	ctx := context.Background()

	parent := mustCreateCategory(t, db, FamilyProduct, "Clothing", "clothing")
	child, err := db.CreateCategory(ctx, CategoryCreate{
		Family:   FamilyProduct,
		Name:     "Dresses",
		Slug:     "dresses",
		ParentID: &parent.ID,
	})
	if err != nil {
		t.Fatalf("Failed to create child category: %v", err)
	}
	if child.ParentID == nil || *child.ParentID != parent.ID {
		t.Error("Child category not attached to parent")
	}

	t.Run("rejects unknown family", func(t *testing.T) {
		_, err := db.CreateCategory(ctx, CategoryCreate{Family: "gadgets", Name: "X", Slug: "x"})
		if _, ok := AsValidation(err); !ok {
			t.Errorf("Expected validation error, got %v", err)
		}
	})

	t.Run("duplicate slug in family conflicts", func(t *testing.T) {
		_, err := db.CreateCategory(ctx, CategoryCreate{Family: FamilyProduct, Name: "Other", Slug: "clothing"})
		if !errors.Is(err, ErrConflict) {
			t.Errorf("Expected ErrConflict, got %v", err)
		}
	})

	t.Run("same slug allowed across families", func(t *testing.T) {
		if _, err := db.CreateCategory(ctx, CategoryCreate{Family: FamilyBlog, Name: "Clothing", Slug: "clothing"}); err != nil {
			t.Errorf("Expected slug to be family-scoped: %v", err)
		}
	})

	t.Run("child cannot become a parent", func(t *testing.T) {
		_, err := db.CreateCategory(ctx, CategoryCreate{
			Family:   FamilyProduct,
			Name:     "Mini dresses",
			Slug:     "mini-dresses",
			ParentID: &child.ID,
		})
		if _, ok := AsValidation(err); !ok {
			t.Errorf("Expected validation error, got %v", err)
		}
	})

	t.Run("parent must match family", func(t *testing.T) {
		blogCat := mustCreateCategory(t, db, FamilyBlog, "News", "news")
		_, err := db.CreateCategory(ctx, CategoryCreate{
			Family:   FamilyProduct,
			Name:     "Bad",
			Slug:     "bad",
			ParentID: &blogCat.ID,
		})
		if _, ok := AsValidation(err); !ok {
			t.Errorf("Expected validation error, got %v", err)
		}
	})

	t.Run("category with children cannot get a parent", func(t *testing.T) {
		other := mustCreateCategory(t, db, FamilyProduct, "Shoes", "shoes")
		_, err := db.UpdateCategory(ctx, parent.ID, CategoryUpdate{ParentID: &other.ID})
		if _, ok := AsValidation(err); !ok {
			t.Errorf("Expected validation error, got %v", err)
		}
	})

	t.Run("list is family scoped", func(t *testing.T) {
		cats, err := db.ListCategories(ctx, FamilyBlog)
		if err != nil {
			t.Fatalf("Failed to list: %v", err)
		}
		for _, c := range cats {
			if c.Family != FamilyBlog {
				t.Errorf("Foreign family %q in blog listing", c.Family)
			}
		}
	})
}

func TestSetEntityCategories(t *testing.T) {
	db := newTestDB(t, "categories_setlinks")
	ctx := context.Background()

	a := mustCreateCategory(t, db, FamilyProduct, "A", "a")
	b := mustCreateCategory(t, db, FamilyProduct, "B", "b")
	c := mustCreateCategory(t, db, FamilyProduct, "C", "c")
	p := mustCreateProduct(t, db, "Widget", "widget")

	// First link set: primary defaults to the first id
	if err := db.SetEntityCategories(ctx, FamilyProduct, p.ID, []int64{a.ID, b.ID}); err != nil {
		t.Fatalf("Failed to set links: %v", err)
	}
	if got := productPrimary(t, db, p.ID); got == nil || *got != a.ID {
		t.Errorf("Primary = %v, want %d", got, a.ID)
	}
	rows := linkRows(t, db, FamilyProduct, p.ID)
	if len(rows) != 2 {
		t.Fatalf("Link rows = %v, want 2 entries", rows)
	}

	t.Run("idempotent replace", func(t *testing.T) {
		before := linkRows(t, db, FamilyProduct, p.ID)
		if err := db.SetEntityCategories(ctx, FamilyProduct, p.ID, []int64{a.ID, b.ID}); err != nil {
			t.Fatalf("Failed to re-set links: %v", err)
		}
		after := linkRows(t, db, FamilyProduct, p.ID)
		if len(before) != len(after) {
			t.Fatalf("Row count changed: %v -> %v", before, after)
		}
		for cat, order := range before {
			if after[cat] != order {
				t.Errorf("link_order for category %d changed %d -> %d", cat, order, after[cat])
			}
		}
		if got := productPrimary(t, db, p.ID); got == nil || *got != a.ID {
			t.Errorf("Primary changed by idempotent replace: %v", got)
		}
	})

	t.Run("replace re-derives dangling primary", func(t *testing.T) {
		// primary = a; replacing with {b, c} must not leave it dangling
		if err := db.SetEntityCategories(ctx, FamilyProduct, p.ID, []int64{b.ID, c.ID}); err != nil {
			t.Fatalf("Failed to replace links: %v", err)
		}
		if got := productPrimary(t, db, p.ID); got == nil || *got != b.ID {
			t.Errorf("Primary = %v, want %d (first of new set)", got, b.ID)
		}
		rows := linkRows(t, db, FamilyProduct, p.ID)
		if _, ok := rows[a.ID]; ok {
			t.Error("Removed link still present")
		}
	})

	t.Run("empty set clears primary", func(t *testing.T) {
		if err := db.SetEntityCategories(ctx, FamilyProduct, p.ID, nil); err != nil {
			t.Fatalf("Failed to clear links: %v", err)
		}
		if got := productPrimary(t, db, p.ID); got != nil {
			t.Errorf("Primary = %v, want nil", got)
		}
		if rows := linkRows(t, db, FamilyProduct, p.ID); len(rows) != 0 {
			t.Errorf("Link rows remain: %v", rows)
		}
	})

	t.Run("rejects duplicate category ids", func(t *testing.T) {
		err := db.SetEntityCategories(ctx, FamilyProduct, p.ID, []int64{a.ID, a.ID})
		if _, ok := AsValidation(err); !ok {
			t.Errorf("Expected validation error, got %v", err)
		}
	})

	t.Run("rejects categories from another family", func(t *testing.T) {
		blogCat := mustCreateCategory(t, db, FamilyBlog, "News", "news")
		err := db.SetEntityCategories(ctx, FamilyProduct, p.ID, []int64{blogCat.ID})
		if _, ok := AsValidation(err); !ok {
			t.Errorf("Expected validation error, got %v", err)
		}
	})

	t.Run("unknown entity is not found", func(t *testing.T) {
		err := db.SetEntityCategories(ctx, FamilyProduct, 99999, []int64{a.ID})
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}

func TestLinkOrderAppendAndRenumber(t *testing.T) {
	db := newTestDB(t, "categories_linkorder")
	ctx := context.Background()

	cat := mustCreateCategory(t, db, FamilyProduct, "Featured", "featured")
	p1 := mustCreateProduct(t, db, "One", "one")
	p2 := mustCreateProduct(t, db, "Two", "two")
	p3 := mustCreateProduct(t, db, "Three", "three")

	for _, p := range []*ent.Product{p1, p2, p3} {
		if err := db.SetEntityCategories(ctx, FamilyProduct, p.ID, []int64{cat.ID}); err != nil {
			t.Fatalf("Failed to link product %d: %v", p.ID, err)
		}
	}

	ids, err := db.CategoryEntityIDs(ctx, FamilyProduct, cat.ID)
	if err != nil {
		t.Fatalf("Failed to list category entities: %v", err)
	}
	want := []int64{p1.ID, p2.ID, p3.ID}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("Category listing = %v, want %v", ids, want)
		}
	}

	// Unlinking the middle product closes the gap in the remaining listing
	if err := db.SetEntityCategories(ctx, FamilyProduct, p2.ID, nil); err != nil {
		t.Fatalf("Failed to unlink: %v", err)
	}
	if rows := linkRows(t, db, FamilyProduct, p1.ID); rows[cat.ID] != 0 {
		t.Errorf("p1 link_order = %d, want 0", rows[cat.ID])
	}
	if rows := linkRows(t, db, FamilyProduct, p3.ID); rows[cat.ID] != 1 {
		t.Errorf("p3 link_order = %d, want 1", rows[cat.ID])
	}
}

func TestReorderCategoryEntities(t *testing.T) {
	db := newTestDB(t, "categories_reorder")
	ctx := context.Background()

	cat := mustCreateCategory(t, db, FamilyProduct, "Featured", "featured")
	p1 := mustCreateProduct(t, db, "One", "one")
	p2 := mustCreateProduct(t, db, "Two", "two")
	p3 := mustCreateProduct(t, db, "Three", "three")
	for _, p := range []*ent.Product{p1, p2, p3} {
		if err := db.SetEntityCategories(ctx, FamilyProduct, p.ID, []int64{cat.ID}); err != nil {
			t.Fatalf("Failed to link: %v", err)
		}
	}

	if err := db.ReorderCategoryEntities(ctx, FamilyProduct, cat.ID, []int64{p3.ID, p1.ID, p2.ID}); err != nil {
		t.Fatalf("Failed to reorder: %v", err)
	}

	ids, err := db.CategoryEntityIDs(ctx, FamilyProduct, cat.ID)
	if err != nil {
		t.Fatalf("Failed to list: %v", err)
	}
	want := []int64{p3.ID, p1.ID, p2.ID}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("Listing after reorder = %v, want %v", ids, want)
		}
	}

	t.Run("rejects partial orderings", func(t *testing.T) {
		err := db.ReorderCategoryEntities(ctx, FamilyProduct, cat.ID, []int64{p1.ID})
		if _, ok := AsValidation(err); !ok {
			t.Errorf("Expected validation error, got %v", err)
		}
	})

	t.Run("rejects unlinked entities", func(t *testing.T) {
		stray := mustCreateProduct(t, db, "Stray", "stray")
		err := db.ReorderCategoryEntities(ctx, FamilyProduct, cat.ID, []int64{p1.ID, p2.ID, stray.ID})
		if _, ok := AsValidation(err); !ok {
			t.Errorf("Expected validation error, got %v", err)
		}
	})

	t.Run("unknown category is not found", func(t *testing.T) {
		err := db.ReorderCategoryEntities(ctx, FamilyProduct, 99999, nil)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}

func TestSetPrimaryCategory(t *testing.T) {
	db := newTestDB(t, "categories_primary")
	ctx := context.Background()

	a := mustCreateCategory(t, db, FamilyProduct, "A", "a")
	b := mustCreateCategory(t, db, FamilyProduct, "B", "b")
	p := mustCreateProduct(t, db, "Widget", "widget")
	if err := db.SetEntityCategories(ctx, FamilyProduct, p.ID, []int64{a.ID, b.ID}); err != nil {
		t.Fatalf("Failed to link: %v", err)
	}

	if err := db.SetPrimaryCategory(ctx, FamilyProduct, p.ID, b.ID); err != nil {
		t.Fatalf("Failed to set primary: %v", err)
	}
	if got := productPrimary(t, db, p.ID); got == nil || *got != b.ID {
		t.Errorf("Primary = %v, want %d", got, b.ID)
	}

	t.Run("unlinked category is a conflict", func(t *testing.T) {
		c := mustCreateCategory(t, db, FamilyProduct, "C", "c")
		err := db.SetPrimaryCategory(ctx, FamilyProduct, p.ID, c.ID)
		if !errors.Is(err, ErrConflict) {
			t.Errorf("Expected ErrConflict, got %v", err)
		}
	})

	t.Run("unknown entity is not found", func(t *testing.T) {
		err := db.SetPrimaryCategory(ctx, FamilyProduct, 99999, a.ID)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}

func TestDeleteCategoryCascade(t *testing.T) {
	db := newTestDB(t, "categories_cascade")
	ctx := context.Background()

	a := mustCreateCategory(t, db, FamilyProduct, "A", "a")
	b := mustCreateCategory(t, db, FamilyProduct, "B", "b")
	p1 := mustCreateProduct(t, db, "One", "one")
	p2 := mustCreateProduct(t, db, "Two", "two")

	// p1 linked to {a, b} with primary a; p2 linked only to a
	if err := db.SetEntityCategories(ctx, FamilyProduct, p1.ID, []int64{a.ID, b.ID}); err != nil {
		t.Fatalf("Failed to link p1: %v", err)
	}
	if err := db.SetEntityCategories(ctx, FamilyProduct, p2.ID, []int64{a.ID}); err != nil {
		t.Fatalf("Failed to link p2: %v", err)
	}

	if err := db.DeleteCategory(ctx, a.ID); err != nil {
		t.Fatalf("Failed to delete category: %v", err)
	}

	// p1 falls back to its remaining link; p2 has none left
	if got := productPrimary(t, db, p1.ID); got == nil || *got != b.ID {
		t.Errorf("p1 primary = %v, want %d", got, b.ID)
	}
	if got := productPrimary(t, db, p2.ID); got != nil {
		t.Errorf("p2 primary = %v, want nil", got)
	}

	// No orphaned link rows reference the deleted category
	count, err := db.Client.CategoryLink.Query().
		Where(categorylink.CategoryID(a.ID)).
		Count(ctx)
	if err != nil {
		t.Fatalf("Failed to count links: %v", err)
	}
	if count != 0 {
		t.Errorf("Orphaned links = %d, want 0", count)
	}

	t.Run("children are detached", func(t *testing.T) {
		parent := mustCreateCategory(t, db, FamilyProduct, "Parent", "parent")
		child, err := db.CreateCategory(ctx, CategoryCreate{
			Family:   FamilyProduct,
			Name:     "Child",
			Slug:     "child",
			ParentID: &parent.ID,
		})
		if err != nil {
			t.Fatalf("Failed to create child: %v", err)
		}
		if err := db.DeleteCategory(ctx, parent.ID); err != nil {
			t.Fatalf("Failed to delete parent: %v", err)
		}
		got, err := db.Client.Category.Get(ctx, child.ID)
		if err != nil {
			t.Fatalf("Child category gone: %v", err)
		}
		if got.ParentID != nil {
			t.Errorf("Child parent_id = %v, want nil", got.ParentID)
		}
	})
}

func TestDeleteEntity(t *testing.T) {
	db := newTestDB(t, "categories_delentity")
	ctx := context.Background()

	cat := mustCreateCategory(t, db, FamilyProduct, "Featured", "featured")
	p1 := mustCreateProduct(t, db, "One", "one")
	p2 := mustCreateProduct(t, db, "Two", "two")
	for _, p := range []*ent.Product{p1, p2} {
		if err := db.SetEntityCategories(ctx, FamilyProduct, p.ID, []int64{cat.ID}); err != nil {
			t.Fatalf("Failed to link: %v", err)
		}
	}

	if err := db.DeleteEntity(ctx, FamilyProduct, p1.ID); err != nil {
		t.Fatalf("Failed to delete entity: %v", err)
	}

	if _, err := db.Client.Product.Get(ctx, p1.ID); !ent.IsNotFound(err) {
		t.Error("Product row still present")
	}
	// Remaining listing closes the gap
	if rows := linkRows(t, db, FamilyProduct, p2.ID); rows[cat.ID] != 0 {
		t.Errorf("p2 link_order = %d, want 0", rows[cat.ID])
	}

	t.Run("unknown entity is not found", func(t *testing.T) {
		if err := db.DeleteEntity(ctx, FamilyProduct, p1.ID); !errors.Is(err, ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}
