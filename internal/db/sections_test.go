package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"go.uber.org/zap/zaptest"
	_ "modernc.org/sqlite"

	"sitecms/ent"
)

// newTestDB opens an in-memory SQLite database wired the same way as New:
// modernc registers its driver as "sqlite", so the ent client is built over
// the plain sql.DB handle. name keeps the shared-cache databases of
// parallel tests apart.
func newTestDB(t *testing.T, name string) *DB {
	t.Helper()

	sqlDB, err := sql.Open("sqlite", "file:"+name+"?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	client := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.SQLite, sqlDB)))
	if err := client.Schema.Create(context.Background()); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	t.Cleanup(func() { client.Close() })

	return &DB{
		DB:     sqlDB,
		Client: client,
		logger: zaptest.NewLogger(t),
	}
}

func mustCreateSection(t *testing.T, db *DB, page, sectionType string) *ent.ContentBlock {
	t.Helper()

	block, err := db.CreateSection(context.Background(), SectionCreate{
		Page:        page,
		SectionType: sectionType,
	})
	if err != nil {
		t.Fatalf("Failed to create %s section on %q: %v", sectionType, page, err)
	}
	return block
}

// pagePositions returns (id, position) pairs ascending by position.
func pagePositions(t *testing.T, db *DB, page string) ([]int64, []int) {
	t.Helper()

	blocks, err := db.ListSectionsByPage(context.Background(), page, true)
	if err != nil {
		t.Fatalf("Failed to list page %q: %v", page, err)
	}
	ids := make([]int64, len(blocks))
	positions := make([]int, len(blocks))
	for i, b := range blocks {
		ids[i] = b.ID
		positions[i] = b.Position
	}
	return ids, positions
}

func assertContiguous(t *testing.T, positions []int) {
	t.Helper()

	for i, p := range positions {
		if p != i {
			t.Fatalf("Positions not contiguous: got %v", positions)
		}
	}
}

func TestCreateSectionAppends(t *testing.T) {
	db := newTestDB(t, "sections_create")
	ctx := context.Background()

	first := mustCreateSection(t, db, "home", "hero")
	if first.Position != 0 {
		t.Errorf("First block position = %d, want 0", first.Position)
	}

	second := mustCreateSection(t, db, "home", "trust")
	if second.Position != 1 {
		t.Errorf("Second block position = %d, want 1", second.Position)
	}

	// A different page starts its own sequence at 0
	other := mustCreateSection(t, db, "about", "hero")
	if other.Position != 0 {
		t.Errorf("Block on fresh page position = %d, want 0", other.Position)
	}

	_, positions := pagePositions(t, db, "home")
	assertContiguous(t, positions)

	t.Run("rejects missing page", func(t *testing.T) {
		_, err := db.CreateSection(ctx, SectionCreate{SectionType: "hero"})
		if _, ok := AsValidation(err); !ok {
			t.Errorf("Expected validation error, got %v", err)
		}
	})

	t.Run("rejects unknown section type", func(t *testing.T) {
		_, err := db.CreateSection(ctx, SectionCreate{Page: "home", SectionType: "hologram"})
		if _, ok := AsValidation(err); !ok {
			t.Errorf("Expected validation error, got %v", err)
		}
	})

	t.Run("rejects wrong payload shape", func(t *testing.T) {
		_, err := db.CreateSection(ctx, SectionCreate{
			Page:        "home",
			SectionType: "faq",
			Payload:     json.RawMessage(`{"question":"not a list"}`),
		})
		ve, ok := AsValidation(err)
		if !ok {
			t.Fatalf("Expected validation error, got %v", err)
		}
		if ve.Field != "payload" {
			t.Errorf("Validation field = %q, want payload", ve.Field)
		}
	})
}

func TestUpdateSection(t *testing.T) {
	db := newTestDB(t, "sections_update")
	ctx := context.Background()

	block := mustCreateSection(t, db, "home", "video")

	title := "Watch our intro"
	inactive := false
	updated, err := db.UpdateSection(ctx, block.ID, SectionUpdate{
		Title:   &title,
		Active:  &inactive,
		Payload: json.RawMessage(`{"url":"https://cdn.example.com/intro.mp4","autoplay":true}`),
	})
	if err != nil {
		t.Fatalf("Failed to update section: %v", err)
	}
	if updated.Title != title {
		t.Errorf("Title = %q, want %q", updated.Title, title)
	}
	if updated.Active {
		t.Error("Expected block to be inactive")
	}
	if updated.Position != block.Position || updated.Page != block.Page {
		t.Error("Update must not touch page or position")
	}

	t.Run("payload validated against block type", func(t *testing.T) {
		_, err := db.UpdateSection(ctx, block.ID, SectionUpdate{
			Payload: json.RawMessage(`["not","an","object"]`),
		})
		if _, ok := AsValidation(err); !ok {
			t.Errorf("Expected validation error, got %v", err)
		}
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		_, err := db.UpdateSection(ctx, 99999, SectionUpdate{Title: &title})
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("inactive blocks hidden from public listing", func(t *testing.T) {
		visible, err := db.ListSectionsByPage(ctx, "home", false)
		if err != nil {
			t.Fatalf("Failed to list: %v", err)
		}
		for _, b := range visible {
			if b.ID == block.ID {
				t.Error("Inactive block returned in public listing")
			}
		}
		all, err := db.ListSectionsByPage(ctx, "home", true)
		if err != nil {
			t.Fatalf("Failed to list: %v", err)
		}
		if len(all) != 1 {
			t.Errorf("Admin listing length = %d, want 1", len(all))
		}
	})
}

func TestDeleteSectionClosesGap(t *testing.T) {
	db := newTestDB(t, "sections_delete")
	ctx := context.Background()

	hero := mustCreateSection(t, db, "home", "hero")
	trust := mustCreateSection(t, db, "home", "trust")
	products := mustCreateSection(t, db, "home", "products")

	// home = [hero#0, trust#1, products#2]; deleting trust#1 must yield
	// [hero#0, products#1], never [hero#0, products#2].
	if err := db.DeleteSection(ctx, trust.ID); err != nil {
		t.Fatalf("Failed to delete section: %v", err)
	}

	ids, positions := pagePositions(t, db, "home")
	assertContiguous(t, positions)
	if len(ids) != 2 || ids[0] != hero.ID || ids[1] != products.ID {
		t.Fatalf("Remaining ids = %v, want [%d %d]", ids, hero.ID, products.ID)
	}

	t.Run("unknown id is not found", func(t *testing.T) {
		if err := db.DeleteSection(ctx, trust.ID); !errors.Is(err, ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}

func TestReorderSections(t *testing.T) {
	db := newTestDB(t, "sections_reorder")
	ctx := context.Background()

	a := mustCreateSection(t, db, "home", "hero")
	b := mustCreateSection(t, db, "home", "trust")
	c := mustCreateSection(t, db, "home", "faq")

	if err := db.ReorderSections(ctx, "home", []int64{c.ID, a.ID, b.ID}); err != nil {
		t.Fatalf("Failed to reorder: %v", err)
	}

	ids, positions := pagePositions(t, db, "home")
	assertContiguous(t, positions)
	want := []int64{c.ID, a.ID, b.ID}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("Order after reorder = %v, want %v", ids, want)
		}
	}

	t.Run("reorder is a permutation", func(t *testing.T) {
		// The id set is unchanged; only positions moved
		if len(ids) != 3 {
			t.Fatalf("Block count changed: %d", len(ids))
		}
	})

	t.Run("rejects missing ids", func(t *testing.T) {
		err := db.ReorderSections(ctx, "home", []int64{a.ID, b.ID})
		if _, ok := AsValidation(err); !ok {
			t.Errorf("Expected validation error, got %v", err)
		}
	})

	t.Run("rejects foreign ids", func(t *testing.T) {
		other := mustCreateSection(t, db, "about", "hero")
		err := db.ReorderSections(ctx, "home", []int64{a.ID, b.ID, other.ID})
		if _, ok := AsValidation(err); !ok {
			t.Errorf("Expected validation error, got %v", err)
		}
	})

	t.Run("rejects duplicate ids", func(t *testing.T) {
		err := db.ReorderSections(ctx, "home", []int64{a.ID, a.ID, b.ID})
		if _, ok := AsValidation(err); !ok {
			t.Errorf("Expected validation error, got %v", err)
		}
	})

	t.Run("failed reorder leaves order untouched", func(t *testing.T) {
		_ = db.ReorderSections(ctx, "home", []int64{a.ID, b.ID})
		got, positions := pagePositions(t, db, "home")
		assertContiguous(t, positions)
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("Order changed by rejected reorder: %v", got)
			}
		}
	})
}

func TestMoveSectionsToEdge(t *testing.T) {
	db := newTestDB(t, "sections_bulkmove")
	ctx := context.Background()

	a := mustCreateSection(t, db, "home", "hero")
	b := mustCreateSection(t, db, "home", "trust")
	c := mustCreateSection(t, db, "home", "faq")
	d := mustCreateSection(t, db, "home", "cta")

	// Moving {b, d} to the top keeps their relative order: [b d a c]
	if err := db.MoveSectionsToEdge(ctx, "home", []int64{d.ID, b.ID}, true); err != nil {
		t.Fatalf("Failed to bulk move: %v", err)
	}
	ids, positions := pagePositions(t, db, "home")
	assertContiguous(t, positions)
	want := []int64{b.ID, d.ID, a.ID, c.ID}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("Order after move-to-top = %v, want %v", ids, want)
		}
	}

	// Moving {b, a} to the bottom: [d c b a]
	if err := db.MoveSectionsToEdge(ctx, "home", []int64{a.ID, b.ID}, false); err != nil {
		t.Fatalf("Failed to bulk move: %v", err)
	}
	ids, positions = pagePositions(t, db, "home")
	assertContiguous(t, positions)
	want = []int64{d.ID, c.ID, b.ID, a.ID}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("Order after move-to-bottom = %v, want %v", ids, want)
		}
	}

	t.Run("rejects empty selection", func(t *testing.T) {
		err := db.MoveSectionsToEdge(ctx, "home", nil, true)
		if _, ok := AsValidation(err); !ok {
			t.Errorf("Expected validation error, got %v", err)
		}
	})
}

func TestMoveSection(t *testing.T) {
	db := newTestDB(t, "sections_move")
	ctx := context.Background()

	hero := mustCreateSection(t, db, "home", "hero")
	products := mustCreateSection(t, db, "home", "products")

	// Moving to an empty page lands at position 0, and the source page is
	// renumbered in the same transaction.
	moved, err := db.MoveSection(ctx, products.ID, "about")
	if err != nil {
		t.Fatalf("Failed to move section: %v", err)
	}
	if moved.Page != "about" || moved.Position != 0 {
		t.Errorf("Moved block = (%q, %d), want (about, 0)", moved.Page, moved.Position)
	}

	homeIDs, homePositions := pagePositions(t, db, "home")
	assertContiguous(t, homePositions)
	if len(homeIDs) != 1 || homeIDs[0] != hero.ID {
		t.Errorf("home = %v, want [%d]", homeIDs, hero.ID)
	}

	// Moving onto a populated page appends at the end
	faq := mustCreateSection(t, db, "home", "faq")
	movedFaq, err := db.MoveSection(ctx, faq.ID, "about")
	if err != nil {
		t.Fatalf("Failed to move section: %v", err)
	}
	if movedFaq.Position != 1 {
		t.Errorf("Appended block position = %d, want 1", movedFaq.Position)
	}
	_, aboutPositions := pagePositions(t, db, "about")
	assertContiguous(t, aboutPositions)

	t.Run("rejects same-page move", func(t *testing.T) {
		_, err := db.MoveSection(ctx, hero.ID, "home")
		if _, ok := AsValidation(err); !ok {
			t.Errorf("Expected validation error, got %v", err)
		}
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		_, err := db.MoveSection(ctx, 99999, "about")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}

func TestInitializeDefaultSections(t *testing.T) {
	db := newTestDB(t, "sections_init")
	ctx := context.Background()

	blocks, err := db.InitializeDefaultSections(ctx, "home", "home")
	if err != nil {
		t.Fatalf("Failed to initialize defaults: %v", err)
	}
	if len(blocks) == 0 {
		t.Fatal("Expected seeded blocks")
	}
	for i, b := range blocks {
		if b.Position != i {
			t.Errorf("Seeded block %d position = %d", i, b.Position)
		}
	}
	if blocks[0].SectionType != "hero" {
		t.Errorf("First seeded type = %q, want hero", blocks[0].SectionType)
	}

	t.Run("non-empty page conflicts", func(t *testing.T) {
		_, err := db.InitializeDefaultSections(ctx, "home", "home")
		if !errors.Is(err, ErrConflict) {
			t.Errorf("Expected ErrConflict, got %v", err)
		}
	})

	t.Run("unknown template rejected", func(t *testing.T) {
		_, err := db.InitializeDefaultSections(ctx, "landing", "mystery")
		if _, ok := AsValidation(err); !ok {
			t.Errorf("Expected validation error, got %v", err)
		}
	})

	t.Run("service template seeds a service namespace", func(t *testing.T) {
		ns := ServicePageNamespace("roof-repair")
		blocks, err := db.InitializeDefaultSections(ctx, ns, "service")
		if err != nil {
			t.Fatalf("Failed to initialize service page: %v", err)
		}
		for _, b := range blocks {
			if b.Page != ns {
				t.Errorf("Seeded block page = %q, want %q", b.Page, ns)
			}
		}
	})
}

func TestListPages(t *testing.T) {
	db := newTestDB(t, "sections_pages")
	ctx := context.Background()

	mustCreateSection(t, db, "home", "hero")
	mustCreateSection(t, db, "home", "faq")
	mustCreateSection(t, db, "about", "hero")

	// An empty service page still shows up in the selector
	_, err := db.Client.ServicePage.Create().
		SetTitle("Roof Repair").
		SetSlug("roof-repair").
		Save(ctx)
	if err != nil {
		t.Fatalf("Failed to create service page: %v", err)
	}

	pages, err := db.ListPages(ctx)
	if err != nil {
		t.Fatalf("Failed to list pages: %v", err)
	}

	counts := make(map[string]int, len(pages))
	for _, p := range pages {
		counts[p.Page] = p.BlockCount
	}
	if counts["home"] != 2 {
		t.Errorf("home block count = %d, want 2", counts["home"])
	}
	if counts["about"] != 1 {
		t.Errorf("about block count = %d, want 1", counts["about"])
	}
	if got, ok := counts[ServicePageNamespace("roof-repair")]; !ok || got != 0 {
		t.Errorf("service namespace count = %d,%v; want 0,true", got, ok)
	}
}

// End-to-end: delete closes the gap, then a cross-page move leaves both
// pages contiguous.
func TestDeleteThenMoveScenario(t *testing.T) {
	db := newTestDB(t, "sections_scenario")
	ctx := context.Background()

	hero := mustCreateSection(t, db, "home", "hero")
	trust := mustCreateSection(t, db, "home", "trust")
	products := mustCreateSection(t, db, "home", "products")

	if err := db.DeleteSection(ctx, trust.ID); err != nil {
		t.Fatalf("Failed to delete: %v", err)
	}
	ids, positions := pagePositions(t, db, "home")
	if len(ids) != 2 || positions[1] != 1 {
		t.Fatalf("After delete: ids=%v positions=%v", ids, positions)
	}

	if _, err := db.MoveSection(ctx, products.ID, "about"); err != nil {
		t.Fatalf("Failed to move: %v", err)
	}

	homeIDs, homePositions := pagePositions(t, db, "home")
	if len(homeIDs) != 1 || homeIDs[0] != hero.ID || homePositions[0] != 0 {
		t.Errorf("home = ids %v positions %v, want [hero] [0]", homeIDs, homePositions)
	}
	aboutIDs, aboutPositions := pagePositions(t, db, "about")
	if len(aboutIDs) != 1 || aboutIDs[0] != products.ID || aboutPositions[0] != 0 {
		t.Errorf("about = ids %v positions %v, want [products] [0]", aboutIDs, aboutPositions)
	}
}
