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
	"sitecms/internal/db"
)

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID           int64     `json:"id"`
	Family       string    `json:"family"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	ParentID     *int64    `json:"parent_id,omitempty"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

func toCategoryResponse(c *ent.Category) CategoryResponse {
	return CategoryResponse{
		ID:           c.ID,
		Family:       c.Family,
		Name:         c.Name,
		Slug:         c.Slug,
		ParentID:     c.ParentID,
		DisplayOrder: c.DisplayOrder,
		CreatedAt:    c.CreatedAt,
	}
}

// CreateCategoryRequest represents a request to create a category
type CreateCategoryRequest struct {
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	ParentID     *int64 `json:"parent_id,omitempty"`
	DisplayOrder int    `json:"display_order"`
}

// UpdateCategoryRequest represents a partial category update. Setting
// clear_parent detaches the category from its parent.
type UpdateCategoryRequest struct {
	Name         *string `json:"name,omitempty"`
	Slug         *string `json:"slug,omitempty"`
	ParentID     *int64  `json:"parent_id,omitempty"`
	ClearParent  bool    `json:"clear_parent,omitempty"`
	DisplayOrder *int    `json:"display_order,omitempty"`
}

// ReorderCategoryEntitiesRequest carries the full new ordering of a
// category's entity listing
type ReorderCategoryEntitiesRequest struct {
	EntityIDs []int64 `json:"entity_ids"`
}

// HandleListCategories returns a family's categories in display order
func (s *Server) HandleListCategories(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.config.DBQueryTimeout)
	defer cancel()

	family := chi.URLParam(r, "family")
	cats, err := s.db.ListCategories(ctx, family)
	if err != nil {
		s.respondDBError(w, err, "list categories")
		return
	}

	response := make([]CategoryResponse, 0, len(cats))
	for _, c := range cats {
		response = append(response, toCategoryResponse(c))
	}

	respondJSON(w, http.StatusOK, response)
}

// HandleCreateCategory creates a category within a family
func (s *Server) HandleCreateCategory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.config.DBQueryTimeout)
	defer cancel()

	family := chi.URLParam(r, "family")

	var req CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", "invalid_input")
		return
	}

	cat, err := s.db.CreateCategory(ctx, db.CategoryCreate{
		Family:       family,
		Name:         req.Name,
		Slug:         req.Slug,
		ParentID:     req.ParentID,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		s.respondDBError(w, err, "create category")
		return
	}

	s.logger.Info("Category created",
		zap.Int64("id", cat.ID),
		zap.String("family", cat.Family),
		zap.String("slug", cat.Slug),
	)

	respondJSON(w, http.StatusCreated, toCategoryResponse(cat))
}

// HandleUpdateCategory applies a partial category update
func (s *Server) HandleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.config.DBQueryTimeout)
	defer cancel()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid category ID", "invalid_input")
		return
	}

	var req UpdateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", "invalid_input")
		return
	}

	cat, err := s.db.UpdateCategory(ctx, id, db.CategoryUpdate{
		Name:         req.Name,
		Slug:         req.Slug,
		ParentID:     req.ParentID,
		ClearParent:  req.ClearParent,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		s.respondDBError(w, err, "update category")
		return
	}

	respondJSON(w, http.StatusOK, toCategoryResponse(cat))
}

// HandleDeleteCategory removes a category. Linked entities fall back to their
// next category or lose their primary; child categories become top-level.
func (s *Server) HandleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.config.DBQueryTimeout)
	defer cancel()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid category ID", "invalid_input")
		return
	}

	if err := s.db.DeleteCategory(ctx, id); err != nil {
		s.respondDBError(w, err, "delete category")
		return
	}

	s.logger.Info("Category deleted", zap.Int64("id", id))
	respondJSON(w, http.StatusOK, map[string]string{"message": "Category deleted"})
}

// HandleReorderCategoryEntities applies a full new ordering to a category's
// entity listing
func (s *Server) HandleReorderCategoryEntities(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.config.DBQueryTimeout)
	defer cancel()

	family := chi.URLParam(r, "family")
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid category ID", "invalid_input")
		return
	}

	var req ReorderCategoryEntitiesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", "invalid_input")
		return
	}

	if err := s.db.ReorderCategoryEntities(ctx, family, id, req.EntityIDs); err != nil {
		s.respondDBError(w, err, "reorder category entities")
		return
	}

	ids, err := s.db.CategoryEntityIDs(ctx, family, id)
	if err != nil {
		s.respondDBError(w, err, "list category entities")
		return
	}

	respondJSON(w, http.StatusOK, map[string][]int64{"entity_ids": ids})
}
