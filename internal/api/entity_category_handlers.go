package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// SetEntityCategoriesRequest replaces an entity's full linked-category set
type SetEntityCategoriesRequest struct {
	CategoryIDs []int64 `json:"category_ids"`
}

// SetPrimaryCategoryRequest points an entity's primary at one linked category
type SetPrimaryCategoryRequest struct {
	CategoryID int64 `json:"category_id"`
}

// EntityCategoriesResponse is the post-mutation view of an entity's links
type EntityCategoriesResponse struct {
	CategoryIDs       []int64 `json:"category_ids"`
	PrimaryCategoryID *int64  `json:"primary_category_id"`
}

// setEntityCategories is the shared implementation behind the per-family
// PUT .../{id}/categories endpoints.
func (s *Server) setEntityCategories(w http.ResponseWriter, r *http.Request, family string) {
	ctx, cancel := context.WithTimeout(r.Context(), s.config.DBQueryTimeout)
	defer cancel()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid entity ID", "invalid_input")
		return
	}

	var req SetEntityCategoriesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", "invalid_input")
		return
	}

	if err := s.db.SetEntityCategories(ctx, family, id, req.CategoryIDs); err != nil {
		s.respondDBError(w, err, "set categories")
		return
	}

	s.logger.Info("Entity categories replaced",
		zap.String("family", family),
		zap.Int64("entity_id", id),
		zap.Int("categories", len(req.CategoryIDs)),
	)

	s.respondEntityCategories(w, r, family, id)
}

// setPrimaryCategory is the shared implementation behind the per-family
// PUT .../{id}/primary-category endpoints.
func (s *Server) setPrimaryCategory(w http.ResponseWriter, r *http.Request, family string) {
	ctx, cancel := context.WithTimeout(r.Context(), s.config.DBQueryTimeout)
	defer cancel()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid entity ID", "invalid_input")
		return
	}

	var req SetPrimaryCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", "invalid_input")
		return
	}

	if err := s.db.SetPrimaryCategory(ctx, family, id, req.CategoryID); err != nil {
		s.respondDBError(w, err, "set primary category")
		return
	}

	s.respondEntityCategories(w, r, family, id)
}

func (s *Server) respondEntityCategories(w http.ResponseWriter, r *http.Request, family string, id int64) {
	ctx, cancel := context.WithTimeout(r.Context(), s.config.DBQueryTimeout)
	defer cancel()

	ids, err := s.db.EntityCategoryIDs(ctx, family, id)
	if err != nil {
		s.respondDBError(w, err, "list entity categories")
		return
	}
	primary, err := s.db.PrimaryCategoryOf(ctx, family, id)
	if err != nil {
		s.respondDBError(w, err, "read primary category")
		return
	}

	respondJSON(w, http.StatusOK, EntityCategoriesResponse{
		CategoryIDs:       ids,
		PrimaryCategoryID: primary,
	})
}
