package db

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"sitecms/ent"
	"sitecms/ent/contentblock"
	"sitecms/ent/servicepage"
	"sitecms/internal/sections"
)

// ServicePageNamespace returns the block namespace owned by a service page.
// Service pages are created dynamically, so their blocks live under a slug
// namespace instead of a static page name.
func ServicePageNamespace(slug string) string {
	return "service-" + slug
}

// SectionCreate holds the fields accepted when creating a content block.
// The position is never supplied by the caller; new blocks are appended.
type SectionCreate struct {
	Page        string
	SectionType string
	Title       string
	Subtitle    string
	Body        string
	ImageURL    string
	ButtonText  string
	ButtonURL   string
	Active      *bool
	Payload     json.RawMessage
}

// SectionUpdate holds the fields accepted for a partial block update.
// page and position are excluded: those only change through ReorderSections,
// MoveSection and the delete renumbering pass.
type SectionUpdate struct {
	Title      *string
	Subtitle   *string
	Body       *string
	ImageURL   *string
	ButtonText *string
	ButtonURL  *string
	Active     *bool
	Payload    json.RawMessage
}

// PageInfo is one entry of the page selector: a page namespace and how many
// blocks it currently holds.
type PageInfo struct {
	Page       string `json:"page"`
	BlockCount int    `json:"block_count"`
}

// withTx runs fn inside a transaction, rolling back on error or panic.
func (db *DB) withTx(ctx context.Context, fn func(tx *ent.Tx) error) error {
	tx, err := db.Client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if v := recover(); v != nil {
			tx.Rollback()
			panic(v)
		}
	}()
	if err := fn(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			err = fmt.Errorf("%w: rolling back transaction: %v", err, rerr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// nextPagePosition returns max(position)+1 for a page, or 0 when empty.
func nextPagePosition(ctx context.Context, tx *ent.Tx, page string) (int, error) {
	last, err := tx.ContentBlock.Query().
		Where(contentblock.Page(page)).
		Order(ent.Desc(contentblock.FieldPosition)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to query last position: %w", err)
	}
	return last.Position + 1, nil
}

// renumberPage rewrites positions 0..N-1 for a page, keeping the blocks'
// prior relative order. Downstream "first N" consumers assume contiguity, so
// every structural change ends with this pass.
func renumberPage(ctx context.Context, tx *ent.Tx, page string) error {
	blocks, err := tx.ContentBlock.Query().
		Where(contentblock.Page(page)).
		Order(ent.Asc(contentblock.FieldPosition), ent.Asc(contentblock.FieldID)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to list blocks for renumbering: %w", err)
	}
	for i, b := range blocks {
		if b.Position == i {
			continue
		}
		if err := tx.ContentBlock.UpdateOneID(b.ID).SetPosition(i).Exec(ctx); err != nil {
			return fmt.Errorf("failed to renumber block %d: %w", b.ID, err)
		}
	}
	return nil
}

// CreateSection appends a new content block at the end of its page.
func (db *DB) CreateSection(ctx context.Context, in SectionCreate) (*ent.ContentBlock, error) {
	if in.Page == "" {
		return nil, validationErr("page", "page is required")
	}
	if in.SectionType == "" {
		return nil, validationErr("section_type", "section type is required")
	}
	reg := sections.Default()
	if !reg.Known(in.SectionType) {
		return nil, validationErr("section_type", fmt.Sprintf("unknown section type %q", in.SectionType))
	}
	if err := reg.Validate(in.SectionType, in.Payload); err != nil {
		return nil, validationErr("payload", err.Error())
	}

	var created *ent.ContentBlock
	err := db.withTx(ctx, func(tx *ent.Tx) error {
		pos, err := nextPagePosition(ctx, tx, in.Page)
		if err != nil {
			return err
		}

		builder := tx.ContentBlock.Create().
			SetPage(in.Page).
			SetSectionType(in.SectionType).
			SetPosition(pos).
			SetTitle(in.Title).
			SetSubtitle(in.Subtitle).
			SetBody(in.Body).
			SetImageURL(in.ImageURL).
			SetButtonText(in.ButtonText).
			SetButtonURL(in.ButtonURL)
		if in.Active != nil {
			builder.SetActive(*in.Active)
		}
		if len(in.Payload) > 0 {
			builder.SetPayload(in.Payload)
		}

		created, err = builder.Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to create content block: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateSection applies a partial field update to a block. The payload, when
// present, is validated against the block's own section type.
func (db *DB) UpdateSection(ctx context.Context, id int64, in SectionUpdate) (*ent.ContentBlock, error) {
	block, err := db.Client.ContentBlock.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("content block %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get content block: %w", err)
	}

	if in.Payload != nil {
		if err := sections.Default().Validate(block.SectionType, in.Payload); err != nil {
			return nil, validationErr("payload", err.Error())
		}
	}

	builder := db.Client.ContentBlock.UpdateOneID(id)
	if in.Title != nil {
		builder.SetTitle(*in.Title)
	}
	if in.Subtitle != nil {
		builder.SetSubtitle(*in.Subtitle)
	}
	if in.Body != nil {
		builder.SetBody(*in.Body)
	}
	if in.ImageURL != nil {
		builder.SetImageURL(*in.ImageURL)
	}
	if in.ButtonText != nil {
		builder.SetButtonText(*in.ButtonText)
	}
	if in.ButtonURL != nil {
		builder.SetButtonURL(*in.ButtonURL)
	}
	if in.Active != nil {
		builder.SetActive(*in.Active)
	}
	if in.Payload != nil {
		builder.SetPayload(in.Payload)
	}

	updated, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update content block: %w", err)
	}
	return updated, nil
}

// DeleteSection removes a block and closes the position gap it leaves on its
// page, so the remaining blocks are renumbered 0..N-2 in their prior order.
func (db *DB) DeleteSection(ctx context.Context, id int64) error {
	return db.withTx(ctx, func(tx *ent.Tx) error {
		block, err := tx.ContentBlock.Get(ctx, id)
		if err != nil {
			if ent.IsNotFound(err) {
				return fmt.Errorf("content block %d: %w", id, ErrNotFound)
			}
			return fmt.Errorf("failed to get content block: %w", err)
		}
		if err := tx.ContentBlock.DeleteOneID(id).Exec(ctx); err != nil {
			return fmt.Errorf("failed to delete content block: %w", err)
		}
		return renumberPage(ctx, tx, block.Page)
	})
}

// ListSectionsByPage returns a page's blocks ascending by position. The
// public renderer passes includeInactive=false; the admin editor sees all.
func (db *DB) ListSectionsByPage(ctx context.Context, page string, includeInactive bool) ([]*ent.ContentBlock, error) {
	q := db.Client.ContentBlock.Query().
		Where(contentblock.Page(page))
	if !includeInactive {
		q = q.Where(contentblock.Active(true))
	}
	blocks, err := q.
		Order(ent.Asc(contentblock.FieldPosition), ent.Asc(contentblock.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list content blocks: %w", err)
	}
	return blocks, nil
}

// ListPages returns every known page namespace for page-selector UIs: each
// distinct page that has blocks, plus the namespace of every service page
// even when it is still empty.
func (db *DB) ListPages(ctx context.Context) ([]PageInfo, error) {
	var rows []struct {
		Page  string `json:"page"`
		Count int    `json:"count"`
	}
	err := db.Client.ContentBlock.Query().
		GroupBy(contentblock.FieldPage).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to group blocks by page: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Page] = row.Count
	}

	slugs, err := db.Client.ServicePage.Query().
		Select(servicepage.FieldSlug).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list service pages: %w", err)
	}
	for _, slug := range slugs {
		ns := ServicePageNamespace(slug)
		if _, ok := counts[ns]; !ok {
			counts[ns] = 0
		}
	}

	pages := make([]PageInfo, 0, len(counts))
	for page, count := range counts {
		pages = append(pages, PageInfo{Page: page, BlockCount: count})
	}
	sort.Slice(pages, func(i, j int) bool { return pages[i].Page < pages[j].Page })
	return pages, nil
}

// ReorderSections writes position=index for the given full ordering of a
// page's blocks, atomically. ids must be a permutation of the page's current
// block set; anything else is rejected before any write happens.
func (db *DB) ReorderSections(ctx context.Context, page string, ids []int64) error {
	return db.withTx(ctx, func(tx *ent.Tx) error {
		blocks, err := tx.ContentBlock.Query().
			Where(contentblock.Page(page)).
			All(ctx)
		if err != nil {
			return fmt.Errorf("failed to list content blocks: %w", err)
		}

		if len(ids) != len(blocks) {
			return validationErr("ids", fmt.Sprintf("expected %d block ids for page %q, got %d", len(blocks), page, len(ids)))
		}
		onPage := make(map[int64]bool, len(blocks))
		for _, b := range blocks {
			onPage[b.ID] = true
		}
		seen := make(map[int64]bool, len(ids))
		for _, id := range ids {
			if !onPage[id] {
				return validationErr("ids", fmt.Sprintf("block %d is not on page %q", id, page))
			}
			if seen[id] {
				return validationErr("ids", fmt.Sprintf("block %d appears more than once", id))
			}
			seen[id] = true
		}

		for i, id := range ids {
			if err := tx.ContentBlock.UpdateOneID(id).SetPosition(i).Exec(ctx); err != nil {
				return fmt.Errorf("failed to set position of block %d: %w", id, err)
			}
		}
		return nil
	})
}

// MoveSectionsToEdge relocates a selected subset of a page's blocks to the
// top or bottom as one contiguous run, preserving the subset's current
// relative order. Equivalent to a full reorder.
func (db *DB) MoveSectionsToEdge(ctx context.Context, page string, ids []int64, top bool) error {
	if len(ids) == 0 {
		return validationErr("ids", "at least one block id is required")
	}

	blocks, err := db.ListSectionsByPage(ctx, page, true)
	if err != nil {
		return err
	}

	selected := make(map[int64]bool, len(ids))
	for _, id := range ids {
		if selected[id] {
			return validationErr("ids", fmt.Sprintf("block %d appears more than once", id))
		}
		selected[id] = true
	}

	var moved, rest []int64
	for _, b := range blocks {
		if selected[b.ID] {
			moved = append(moved, b.ID)
			delete(selected, b.ID)
		} else {
			rest = append(rest, b.ID)
		}
	}
	for id := range selected {
		return validationErr("ids", fmt.Sprintf("block %d is not on page %q", id, page))
	}

	var ordered []int64
	if top {
		ordered = append(moved, rest...)
	} else {
		ordered = append(rest, moved...)
	}
	return db.ReorderSections(ctx, page, ordered)
}

// MoveSection re-homes a block onto another page, appended at the end of the
// target's order (position 0 on an empty page). The source page is
// renumbered in the same transaction; a move must never leave a gap behind.
func (db *DB) MoveSection(ctx context.Context, id int64, targetPage string) (*ent.ContentBlock, error) {
	if targetPage == "" {
		return nil, validationErr("target_page", "target page is required")
	}

	var moved *ent.ContentBlock
	err := db.withTx(ctx, func(tx *ent.Tx) error {
		block, err := tx.ContentBlock.Get(ctx, id)
		if err != nil {
			if ent.IsNotFound(err) {
				return fmt.Errorf("content block %d: %w", id, ErrNotFound)
			}
			return fmt.Errorf("failed to get content block: %w", err)
		}
		if block.Page == targetPage {
			return validationErr("target_page", fmt.Sprintf("block %d is already on page %q", id, targetPage))
		}
		sourcePage := block.Page

		pos, err := nextPagePosition(ctx, tx, targetPage)
		if err != nil {
			return err
		}

		moved, err = tx.ContentBlock.UpdateOneID(id).
			SetPage(targetPage).
			SetPosition(pos).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to move content block: %w", err)
		}

		return renumberPage(ctx, tx, sourcePage)
	})
	if err != nil {
		return nil, err
	}
	return moved, nil
}

// InitializeDefaultSections seeds a fixed template of (type, position) blocks
// onto a page that has none yet.
func (db *DB) InitializeDefaultSections(ctx context.Context, page, template string) ([]*ent.ContentBlock, error) {
	if page == "" {
		return nil, validationErr("page", "page is required")
	}
	seeds, ok := sections.Default().Template(template)
	if !ok {
		return nil, validationErr("template", fmt.Sprintf("unknown template %q", template))
	}

	var created []*ent.ContentBlock
	err := db.withTx(ctx, func(tx *ent.Tx) error {
		count, err := tx.ContentBlock.Query().
			Where(contentblock.Page(page)).
			Count(ctx)
		if err != nil {
			return fmt.Errorf("failed to count blocks: %w", err)
		}
		if count > 0 {
			return fmt.Errorf("page %q already has %d blocks: %w", page, count, ErrConflict)
		}

		for i, seed := range seeds {
			block, err := tx.ContentBlock.Create().
				SetPage(page).
				SetSectionType(seed.SectionType).
				SetPosition(i).
				SetTitle(seed.Title).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("failed to seed section %q: %w", seed.SectionType, err)
			}
			created = append(created, block)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
