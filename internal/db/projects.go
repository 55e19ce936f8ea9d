package db

import (
	"context"
	"fmt"

	"sitecms/ent"
	"sitecms/ent/project"
)

// ProjectCreate holds the fields accepted when creating a project. Position
// is assigned by appending, the same way content blocks are.
type ProjectCreate struct {
	Title       string
	Slug        string
	Description string
	ImageURL    string
	Active      *bool
}

// CreateProject appends a project at the end of the portfolio ordering.
func (db *DB) CreateProject(ctx context.Context, in ProjectCreate) (*ent.Project, error) {
	if in.Title == "" {
		return nil, validationErr("title", "title is required")
	}
	if in.Slug == "" {
		return nil, validationErr("slug", "slug is required")
	}

	var created *ent.Project
	err := db.withTx(ctx, func(tx *ent.Tx) error {
		last, err := tx.Project.Query().
			Order(ent.Desc(project.FieldPosition)).
			First(ctx)
		next := 0
		if err == nil {
			next = last.Position + 1
		} else if !ent.IsNotFound(err) {
			return fmt.Errorf("failed to query last project position: %w", err)
		}

		builder := tx.Project.Create().
			SetTitle(in.Title).
			SetSlug(in.Slug).
			SetDescription(in.Description).
			SetImageURL(in.ImageURL).
			SetPosition(next)
		if in.Active != nil {
			builder.SetActive(*in.Active)
		}

		created, err = builder.Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return fmt.Errorf("project slug %q already exists: %w", in.Slug, ErrConflict)
			}
			return fmt.Errorf("failed to create project: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// ReorderProjects applies a full new portfolio ordering. ids must be a
// permutation of all project ids.
func (db *DB) ReorderProjects(ctx context.Context, ids []int64) error {
	return db.withTx(ctx, func(tx *ent.Tx) error {
		projects, err := tx.Project.Query().All(ctx)
		if err != nil {
			return fmt.Errorf("failed to list projects: %w", err)
		}
		if len(ids) != len(projects) {
			return validationErr("ids", fmt.Sprintf("expected %d project ids, got %d", len(projects), len(ids)))
		}
		existing := make(map[int64]bool, len(projects))
		for _, p := range projects {
			existing[p.ID] = true
		}
		seen := make(map[int64]bool, len(ids))
		for _, id := range ids {
			if !existing[id] {
				return validationErr("ids", fmt.Sprintf("project %d does not exist", id))
			}
			if seen[id] {
				return validationErr("ids", fmt.Sprintf("project %d appears more than once", id))
			}
			seen[id] = true
		}

		for i, id := range ids {
			if err := tx.Project.UpdateOneID(id).SetPosition(i).Exec(ctx); err != nil {
				return fmt.Errorf("failed to set project position: %w", err)
			}
		}
		return nil
	})
}

// renumberProjects closes position gaps after a project delete.
func renumberProjects(ctx context.Context, tx *ent.Tx) error {
	projects, err := tx.Project.Query().
		Order(ent.Asc(project.FieldPosition), ent.Asc(project.FieldID)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to list projects for renumbering: %w", err)
	}
	for i, p := range projects {
		if p.Position == i {
			continue
		}
		if err := tx.Project.UpdateOneID(p.ID).SetPosition(i).Exec(ctx); err != nil {
			return fmt.Errorf("failed to renumber project %d: %w", p.ID, err)
		}
	}
	return nil
}
