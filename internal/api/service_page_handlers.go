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
	"sitecms/ent/servicepage"
	"sitecms/internal/db"
)

// ServicePageResponse represents a service page in API responses
type ServicePageResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Active      bool      `json:"active"`
	Page        string    `json:"page"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toServicePageResponse(sp *ent.ServicePage) ServicePageResponse {
	return ServicePageResponse{
		ID:          sp.ID,
		Title:       sp.Title,
		Slug:        sp.Slug,
		Description: sp.Description,
		Active:      sp.Active,
		Page:        db.ServicePageNamespace(sp.Slug),
		CreatedAt:   sp.CreatedAt,
		UpdatedAt:   sp.UpdatedAt,
	}
}

// CreateServicePageRequest represents a request to create a service page
type CreateServicePageRequest struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Active      *bool  `json:"active,omitempty"`
}

// UpdateServicePageRequest represents a partial service page update. Renaming
// the slug moves the page's blocks to the new namespace.
type UpdateServicePageRequest struct {
	Title       *string `json:"title,omitempty"`
	Slug        *string `json:"slug,omitempty"`
	Description *string `json:"description,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

// HandleListServicePages returns active service pages
func (s *Server) HandleListServicePages(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.config.DBQueryTimeout)
	defer cancel()

	pages, err := s.db.Client.ServicePage.Query().
		Where(servicepage.Active(true)).
		Order(ent.Asc(servicepage.FieldTitle)).
		All(ctx)
	if err != nil {
		s.respondDBError(w, err, "list service pages")
		return
	}

	response := make([]ServicePageResponse, 0, len(pages))
	for _, sp := range pages {
		response = append(response, toServicePageResponse(sp))
	}

	respondJSON(w, http.StatusOK, response)
}

// HandleAdminListServicePages returns all service pages, inactive included
func (s *Server) HandleAdminListServicePages(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.config.DBQueryTimeout)
	defer cancel()

	pages, err := s.db.Client.ServicePage.Query().
		Order(ent.Asc(servicepage.FieldTitle)).
		All(ctx)
	if err != nil {
		s.respondDBError(w, err, "list service pages")
		return
	}

	response := make([]ServicePageResponse, 0, len(pages))
	for _, sp := range pages {
		response = append(response, toServicePageResponse(sp))
	}

	respondJSON(w, http.StatusOK, response)
}

// HandleGetServicePage returns a single active service page by slug
func (s *Server) HandleGetServicePage(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.config.DBQueryTimeout)
	defer cancel()

	slug := chi.URLParam(r, "slug")
	sp, err := s.db.Client.ServicePage.Query().
		Where(servicepage.Slug(slug), servicepage.Active(true)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			respondError(w, http.StatusNotFound, "service page not found", "not_found")
			return
		}
		s.respondDBError(w, err, "get service page")
		return
	}

	respondJSON(w, http.StatusOK, toServicePageResponse(sp))
}

// HandleCreateServicePage creates a service page and its block namespace
func (s *Server) HandleCreateServicePage(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.config.DBQueryTimeout)
	defer cancel()

	var req CreateServicePageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", "invalid_input")
		return
	}
	if req.Title == "" || req.Slug == "" {
		respondError(w, http.StatusBadRequest, "title and slug are required", "invalid_input")
		return
	}

	builder := s.db.Client.ServicePage.Create().
		SetTitle(req.Title).
		SetSlug(req.Slug).
		SetDescription(req.Description)
	if req.Active != nil {
		builder.SetActive(*req.Active)
	}

	sp, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			respondError(w, http.StatusConflict, "service page slug already exists", "conflict")
			return
		}
		s.respondDBError(w, err, "create service page")
		return
	}

	s.logger.Info("Service page created",
		zap.Int64("id", sp.ID),
		zap.String("slug", sp.Slug),
		zap.String("page", db.ServicePageNamespace(sp.Slug)),
	)

	respondJSON(w, http.StatusCreated, toServicePageResponse(sp))
}

// HandleUpdateServicePage applies a partial service page update
func (s *Server) HandleUpdateServicePage(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.config.DBQueryTimeout)
	defer cancel()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid service page ID", "invalid_input")
		return
	}

	var req UpdateServicePageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", "invalid_input")
		return
	}

	sp, err := s.db.UpdateServicePage(ctx, id, db.ServicePageUpdate{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		Active:      req.Active,
	})
	if err != nil {
		s.respondDBError(w, err, "update service page")
		return
	}

	respondJSON(w, http.StatusOK, toServicePageResponse(sp))
}

// HandleDeleteServicePage removes a service page and every block in its
// namespace
func (s *Server) HandleDeleteServicePage(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.config.DBQueryTimeout)
	defer cancel()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid service page ID", "invalid_input")
		return
	}

	if err := s.db.DeleteServicePage(ctx, id); err != nil {
		s.respondDBError(w, err, "delete service page")
		return
	}

	s.logger.Info("Service page deleted", zap.Int64("id", id))
	respondJSON(w, http.StatusOK, map[string]string{"message": "Service page deleted"})
}
