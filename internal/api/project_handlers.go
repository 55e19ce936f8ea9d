package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"sitecms/ent"
	"sitecms/ent/category"
	"sitecms/ent/project"
	"sitecms/internal/db"
)

// ProjectResponse represents a portfolio project in API responses
type ProjectResponse struct {
	ID                int64     `json:"id"`
	Title             string    `json:"title"`
	Slug              string    `json:"slug"`
	Description       string    `json:"description"`
	ImageURL          string    `json:"image_url"`
	Active            bool      `json:"active"`
	Position          int       `json:"position"`
	PrimaryCategoryID *int64    `json:"primary_category_id,omitempty"`
	CategoryIDs       []int64   `json:"category_ids,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func toProjectResponse(p *ent.Project) ProjectResponse {
	return ProjectResponse{
		ID:                p.ID,
		Title:             p.Title,
		Slug:              p.Slug,
		Description:       p.Description,
		ImageURL:          p.ImageURL,
		Active:            p.Active,
		Position:          p.Position,
		PrimaryCategoryID: p.PrimaryCategoryID,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

// CreateProjectRequest represents a request to create a project
type CreateProjectRequest struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Active      *bool  `json:"active,omitempty"`
}

// UpdateProjectRequest represents a partial project update. Position only
// changes through the reorder endpoint.
type UpdateProjectRequest struct {
	Title       *string `json:"title,omitempty"`
	Slug        *string `json:"slug,omitempty"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

// ReorderProjectsRequest carries the full new portfolio ordering
type ReorderProjectsRequest struct {
	IDs []int64 `json:"ids"`
}

// HandleListProjects returns active projects in portfolio order. ?limit=N
// cuts the list for the homepage strip; ?category= filters like products.
func (s *Server) HandleListProjects(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.config.DBQueryTimeout)
	defer cancel()

	if slug := r.URL.Query().Get("category"); slug != "" {
		s.listProjectsByCategory(ctx, w, slug)
		return
	}

	query := s.db.Client.Project.Query().
		Where(project.Active(true)).
		Order(ent.Asc(project.FieldPosition))
	if l, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && l > 0 {
		query.Limit(l)
	}

	projects, err := query.All(ctx)
	if err != nil {
		s.respondDBError(w, err, "list projects")
		return
	}

	response := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		response = append(response, toProjectResponse(p))
	}

	respondJSON(w, http.StatusOK, response)
}

func (s *Server) listProjectsByCategory(ctx context.Context, w http.ResponseWriter, slug string) {
	cat, err := s.db.Client.Category.Query().
		Where(category.Family(db.FamilyProject), category.Slug(slug)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			respondError(w, http.StatusNotFound, "category not found", "not_found")
			return
		}
		s.respondDBError(w, err, "list projects")
		return
	}

	ids, err := s.db.CategoryEntityIDs(ctx, db.FamilyProject, cat.ID)
	if err != nil {
		s.respondDBError(w, err, "list projects")
		return
	}

	projects, err := s.db.Client.Project.Query().
		Where(project.IDIn(ids...), project.Active(true)).
		All(ctx)
	if err != nil {
		s.respondDBError(w, err, "list projects")
		return
	}

	byID := make(map[int64]*ent.Project, len(projects))
	for _, p := range projects {
		byID[p.ID] = p
	}
	response := make([]ProjectResponse, 0, len(projects))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			response = append(response, toProjectResponse(p))
		}
	}

	respondJSON(w, http.StatusOK, response)
}

// HandleGetProject returns a single active project by slug
func (s *Server) HandleGetProject(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.config.DBQueryTimeout)
	defer cancel()

	slug := chi.URLParam(r, "slug")
	p, err := s.db.Client.Project.Query().
		Where(project.Slug(slug), project.Active(true)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			respondError(w, http.StatusNotFound, "project not found", "not_found")
			return
		}
		s.respondDBError(w, err, "get project")
		return
	}

	response := toProjectResponse(p)
	ids, err := s.db.EntityCategoryIDs(ctx, db.FamilyProject, p.ID)
	if err != nil {
		s.respondDBError(w, err, "load project categories")
		return
	}
	response.CategoryIDs = ids

	respondJSON(w, http.StatusOK, response)
}

// HandleCreateProject creates a project at the end of the portfolio ordering
func (s *Server) HandleCreateProject(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.config.DBQueryTimeout)
	defer cancel()

	var req CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", "invalid_input")
		return
	}

	p, err := s.db.CreateProject(ctx, db.ProjectCreate{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Active:      req.Active,
	})
	if err != nil {
		s.respondDBError(w, err, "create project")
		return
	}

	s.logger.Info("Project created", zap.Int64("id", p.ID), zap.String("slug", p.Slug))
	respondJSON(w, http.StatusCreated, toProjectResponse(p))
}

// HandleUpdateProject applies a partial project update
func (s *Server) HandleUpdateProject(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.config.DBQueryTimeout)
	defer cancel()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid project ID", "invalid_input")
		return
	}

	var req UpdateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", "invalid_input")
		return
	}

	builder := s.db.Client.Project.UpdateOneID(id)
	if req.Title != nil {
		builder.SetTitle(*req.Title)
	}
	if req.Slug != nil {
		builder.SetSlug(*req.Slug)
	}
	if req.Description != nil {
		builder.SetDescription(*req.Description)
	}
	if req.ImageURL != nil {
		builder.SetImageURL(*req.ImageURL)
	}
	if req.Active != nil {
		builder.SetActive(*req.Active)
	}

	p, err := builder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			respondError(w, http.StatusNotFound, "project not found", "not_found")
			return
		}
		if ent.IsConstraintError(err) {
			respondError(w, http.StatusConflict, "project slug already exists", "conflict")
			return
		}
		s.respondDBError(w, err, "update project")
		return
	}

	respondJSON(w, http.StatusOK, toProjectResponse(p))
}

// HandleDeleteProject removes a project; the portfolio ordering closes up
func (s *Server) HandleDeleteProject(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.config.DBQueryTimeout)
	defer cancel()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid project ID", "invalid_input")
		return
	}

	if err := s.db.DeleteEntity(ctx, db.FamilyProject, id); err != nil {
		s.respondDBError(w, err, "delete project")
		return
	}

	s.logger.Info("Project deleted", zap.Int64("id", id))
	respondJSON(w, http.StatusOK, map[string]string{"message": "Project deleted"})
}

// HandleReorderProjects applies a full new portfolio ordering
func (s *Server) HandleReorderProjects(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.config.DBQueryTimeout)
	defer cancel()

	var req ReorderProjectsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", "invalid_input")
		return
	}

	if err := s.db.ReorderProjects(ctx, req.IDs); err != nil {
		s.respondDBError(w, err, "reorder projects")
		return
	}

	projects, err := s.db.Client.Project.Query().
		Order(ent.Asc(project.FieldPosition)).
		All(ctx)
	if err != nil {
		s.respondDBError(w, err, "list projects")
		return
	}

	response := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		response = append(response, toProjectResponse(p))
	}

	respondJSON(w, http.StatusOK, response)
}

// HandleSetProjectCategories replaces a project's linked-category set
func (s *Server) HandleSetProjectCategories(w http.ResponseWriter, r *http.Request) {
	s.setEntityCategories(w, r, db.FamilyProject)
}

// HandleSetProjectPrimaryCategory points a project's primary at a linked category
func (s *Server) HandleSetProjectPrimaryCategory(w http.ResponseWriter, r *http.Request) {
	s.setPrimaryCategory(w, r, db.FamilyProject)
}
