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
	"sitecms/internal/sections"
)

// SectionResponse represents a content block in API responses
type SectionResponse struct {
	ID          int64           `json:"id"`
	Page        string          `json:"page"`
	SectionType string          `json:"section_type"`
	Position    int             `json:"position"`
	Active      bool            `json:"active"`
	Title       string          `json:"title"`
	Subtitle    string          `json:"subtitle"`
	Body        string          `json:"body"`
	ImageURL    string          `json:"image_url"`
	ButtonText  string          `json:"button_text"`
	ButtonURL   string          `json:"button_url"`
	Payload     json.RawMessage `json:"payload,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func toSectionResponse(b *ent.ContentBlock) SectionResponse {
	return SectionResponse{
		ID:          b.ID,
		Page:        b.Page,
		SectionType: b.SectionType,
		Position:    b.Position,
		Active:      b.Active,
		Title:       b.Title,
		Subtitle:    b.Subtitle,
		Body:        b.Body,
		ImageURL:    b.ImageURL,
		ButtonText:  b.ButtonText,
		ButtonURL:   b.ButtonURL,
		Payload:     b.Payload,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func toSectionResponses(blocks []*ent.ContentBlock) []SectionResponse {
	out := make([]SectionResponse, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, toSectionResponse(b))
	}
	return out
}

// CreateSectionRequest represents a request to create a content block
type CreateSectionRequest struct {
	Page        string          `json:"page"`
	SectionType string          `json:"section_type"`
	Title       string          `json:"title"`
	Subtitle    string          `json:"subtitle"`
	Body        string          `json:"body"`
	ImageURL    string          `json:"image_url"`
	ButtonText  string          `json:"button_text"`
	ButtonURL   string          `json:"button_url"`
	Active      *bool           `json:"active,omitempty"`
	Payload     json.RawMessage `json:"payload,omitempty"`
}

// UpdateSectionRequest represents a partial content block update. Page and
// position are not updatable here; use the move and reorder endpoints.
type UpdateSectionRequest struct {
	Title      *string         `json:"title,omitempty"`
	Subtitle   *string         `json:"subtitle,omitempty"`
	Body       *string         `json:"body,omitempty"`
	ImageURL   *string         `json:"image_url,omitempty"`
	ButtonText *string         `json:"button_text,omitempty"`
	ButtonURL  *string         `json:"button_url,omitempty"`
	Active     *bool           `json:"active,omitempty"`
	Payload    json.RawMessage `json:"payload,omitempty"`
}

// ReorderSectionsRequest carries the full new ordering of a page's blocks
type ReorderSectionsRequest struct {
	IDs []int64 `json:"ids"`
}

// BulkMoveSectionsRequest moves a subset of a page's blocks to one edge
type BulkMoveSectionsRequest struct {
	IDs  []int64 `json:"ids"`
	Edge string  `json:"edge"` // "top" or "bottom"
}

// MoveSectionRequest re-homes one block onto another page
type MoveSectionRequest struct {
	TargetPage string `json:"target_page"`
}

// InitSectionsRequest seeds a page with its template's default blocks
type InitSectionsRequest struct {
	Template string `json:"template"`
}

// HandleListPages returns every known page namespace with its block count
func (s *Server) HandleListPages(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.config.DBQueryTimeout)
	defer cancel()

	pages, err := s.db.ListPages(ctx)
	if err != nil {
		s.respondDBError(w, err, "list pages")
		return
	}

	respondJSON(w, http.StatusOK, pages)
}

// HandleListPageSections returns a page's active blocks in display order
func (s *Server) HandleListPageSections(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.config.DBQueryTimeout)
	defer cancel()

	page := chi.URLParam(r, "page")
	blocks, err := s.db.ListSectionsByPage(ctx, page, false)
	if err != nil {
		s.respondDBError(w, err, "list sections")
		return
	}

	respondJSON(w, http.StatusOK, toSectionResponses(blocks))
}

// HandleAdminListPageSections returns all of a page's blocks, inactive included
func (s *Server) HandleAdminListPageSections(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.config.DBQueryTimeout)
	defer cancel()

	page := chi.URLParam(r, "page")
	blocks, err := s.db.ListSectionsByPage(ctx, page, true)
	if err != nil {
		s.respondDBError(w, err, "list sections")
		return
	}

	respondJSON(w, http.StatusOK, toSectionResponses(blocks))
}

// HandleListSectionTypes returns the section type registry for the editor UI
func (s *Server) HandleListSectionTypes(w http.ResponseWriter, r *http.Request) {
	reg := sections.Default()

	type sectionType struct {
		Type  string `json:"type"`
		Shape string `json:"shape"`
	}
	types := make([]sectionType, 0)
	for _, tag := range reg.Types() {
		shape, _ := reg.Shape(tag)
		types = append(types, sectionType{Type: tag, Shape: string(shape)})
	}

	respondJSON(w, http.StatusOK, types)
}

// HandleCreateSection appends a new block to the end of its page
func (s *Server) HandleCreateSection(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.config.DBQueryTimeout)
	defer cancel()

	var req CreateSectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", "invalid_input")
		return
	}

	block, err := s.db.CreateSection(ctx, db.SectionCreate{
		Page:        req.Page,
		SectionType: req.SectionType,
		Title:       req.Title,
		Subtitle:    req.Subtitle,
		Body:        req.Body,
		ImageURL:    req.ImageURL,
		ButtonText:  req.ButtonText,
		ButtonURL:   req.ButtonURL,
		Active:      req.Active,
		Payload:     req.Payload,
	})
	if err != nil {
		s.respondDBError(w, err, "create section")
		return
	}

	s.logger.Info("Section created",
		zap.Int64("id", block.ID),
		zap.String("page", block.Page),
		zap.String("section_type", block.SectionType),
	)

	respondJSON(w, http.StatusCreated, toSectionResponse(block))
}

// HandleUpdateSection applies a partial update to a block's content fields
func (s *Server) HandleUpdateSection(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.config.DBQueryTimeout)
	defer cancel()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid section ID", "invalid_input")
		return
	}

	var req UpdateSectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", "invalid_input")
		return
	}

	block, err := s.db.UpdateSection(ctx, id, db.SectionUpdate{
		Title:      req.Title,
		Subtitle:   req.Subtitle,
		Body:       req.Body,
		ImageURL:   req.ImageURL,
		ButtonText: req.ButtonText,
		ButtonURL:  req.ButtonURL,
		Active:     req.Active,
		Payload:    req.Payload,
	})
	if err != nil {
		s.respondDBError(w, err, "update section")
		return
	}

	respondJSON(w, http.StatusOK, toSectionResponse(block))
}

// HandleDeleteSection removes a block; the remaining page positions close up
func (s *Server) HandleDeleteSection(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.config.DBQueryTimeout)
	defer cancel()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid section ID", "invalid_input")
		return
	}

	if err := s.db.DeleteSection(ctx, id); err != nil {
		s.respondDBError(w, err, "delete section")
		return
	}

	s.logger.Info("Section deleted", zap.Int64("id", id))
	respondJSON(w, http.StatusOK, map[string]string{"message": "Section deleted"})
}

// HandleReorderSections applies a full new ordering to one page
func (s *Server) HandleReorderSections(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.config.DBQueryTimeout)
	defer cancel()

	page := chi.URLParam(r, "page")

	var req ReorderSectionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", "invalid_input")
		return
	}

	if err := s.db.ReorderSections(ctx, page, req.IDs); err != nil {
		s.respondDBError(w, err, "reorder sections")
		return
	}

	blocks, err := s.db.ListSectionsByPage(ctx, page, true)
	if err != nil {
		s.respondDBError(w, err, "list sections")
		return
	}

	respondJSON(w, http.StatusOK, toSectionResponses(blocks))
}

// HandleBulkMoveSections moves a subset of a page's blocks to the top or
// bottom as one contiguous run
func (s *Server) HandleBulkMoveSections(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.config.DBQueryTimeout)
	defer cancel()

	page := chi.URLParam(r, "page")

	var req BulkMoveSectionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", "invalid_input")
		return
	}
	if req.Edge != "top" && req.Edge != "bottom" {
		respondError(w, http.StatusBadRequest, "edge must be \"top\" or \"bottom\"", "invalid_input")
		return
	}

	if err := s.db.MoveSectionsToEdge(ctx, page, req.IDs, req.Edge == "top"); err != nil {
		s.respondDBError(w, err, "move sections")
		return
	}

	blocks, err := s.db.ListSectionsByPage(ctx, page, true)
	if err != nil {
		s.respondDBError(w, err, "list sections")
		return
	}

	respondJSON(w, http.StatusOK, toSectionResponses(blocks))
}

// HandleMoveSection re-homes a block onto another page, appended at the end
func (s *Server) HandleMoveSection(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.config.DBQueryTimeout)
	defer cancel()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid section ID", "invalid_input")
		return
	}

	var req MoveSectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", "invalid_input")
		return
	}

	block, err := s.db.MoveSection(ctx, id, req.TargetPage)
	if err != nil {
		s.respondDBError(w, err, "move section")
		return
	}

	s.logger.Info("Section moved",
		zap.Int64("id", block.ID),
		zap.String("target_page", block.Page),
	)

	respondJSON(w, http.StatusOK, toSectionResponse(block))
}

// HandleInitializeSections seeds an empty page with its template defaults
func (s *Server) HandleInitializeSections(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.config.DBQueryTimeout)
	defer cancel()

	page := chi.URLParam(r, "page")

	var req InitSectionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", "invalid_input")
		return
	}

	blocks, err := s.db.InitializeDefaultSections(ctx, page, req.Template)
	if err != nil {
		s.respondDBError(w, err, "initialize sections")
		return
	}

	s.logger.Info("Page initialized",
		zap.String("page", page),
		zap.String("template", req.Template),
		zap.Int("blocks", len(blocks)),
	)

	respondJSON(w, http.StatusCreated, toSectionResponses(blocks))
}
