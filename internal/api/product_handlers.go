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
	"sitecms/ent/product"
	"sitecms/internal/db"
)

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID                int64     `json:"id"`
	Title             string    `json:"title"`
	Slug              string    `json:"slug"`
	Description       string    `json:"description"`
	Price             float64   `json:"price"`
	ImageURL          string    `json:"image_url"`
	Active            bool      `json:"active"`
	PrimaryCategoryID *int64    `json:"primary_category_id,omitempty"`
	CategoryIDs       []int64   `json:"category_ids,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func toProductResponse(p *ent.Product) ProductResponse {
	return ProductResponse{
		ID:                p.ID,
		Title:             p.Title,
		Slug:              p.Slug,
		Description:       p.Description,
		Price:             p.Price,
		ImageURL:          p.ImageURL,
		Active:            p.Active,
		PrimaryCategoryID: p.PrimaryCategoryID,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

// CreateProductRequest represents a request to create a product
type CreateProductRequest struct {
	Title       string  `json:"title"`
	Slug        string  `json:"slug"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
	Active      *bool   `json:"active,omitempty"`
}

// UpdateProductRequest represents a partial product update
type UpdateProductRequest struct {
	Title       *string  `json:"title,omitempty"`
	Slug        *string  `json:"slug,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	ImageURL    *string  `json:"image_url,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}

// HandleListProducts returns active products, optionally filtered to one
// category (ordered by the category's curated listing)
func (s *Server) HandleListProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.config.DBQueryTimeout)
	defer cancel()

	if slug := r.URL.Query().Get("category"); slug != "" {
		s.listProductsByCategory(ctx, w, slug)
		return
	}

	products, err := s.db.Client.Product.Query().
		Where(product.Active(true)).
		Order(ent.Desc(product.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		s.respondDBError(w, err, "list products")
		return
	}

	response := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, toProductResponse(p))
	}

	respondJSON(w, http.StatusOK, response)
}

func (s *Server) listProductsByCategory(ctx context.Context, w http.ResponseWriter, slug string) {
	cat, err := s.db.Client.Category.Query().
		Where(category.Family(db.FamilyProduct), category.Slug(slug)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			respondError(w, http.StatusNotFound, "category not found", "not_found")
			return
		}
		s.respondDBError(w, err, "list products")
		return
	}

	ids, err := s.db.CategoryEntityIDs(ctx, db.FamilyProduct, cat.ID)
	if err != nil {
		s.respondDBError(w, err, "list products")
		return
	}

	products, err := s.db.Client.Product.Query().
		Where(product.IDIn(ids...), product.Active(true)).
		All(ctx)
	if err != nil {
		s.respondDBError(w, err, "list products")
		return
	}

	// Preserve the category's link_order
	byID := make(map[int64]*ent.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	response := make([]ProductResponse, 0, len(products))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			response = append(response, toProductResponse(p))
		}
	}

	respondJSON(w, http.StatusOK, response)
}

// HandleGetProduct returns a single product by slug, with its category links
func (s *Server) HandleGetProduct(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.config.DBQueryTimeout)
	defer cancel()

	slug := chi.URLParam(r, "slug")
	p, err := s.db.Client.Product.Query().
		Where(product.Slug(slug), product.Active(true)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			respondError(w, http.StatusNotFound, "product not found", "not_found")
			return
		}
		s.respondDBError(w, err, "get product")
		return
	}

	response := toProductResponse(p)
	ids, err := s.db.EntityCategoryIDs(ctx, db.FamilyProduct, p.ID)
	if err != nil {
		s.respondDBError(w, err, "load product categories")
		return
	}
	response.CategoryIDs = ids

	respondJSON(w, http.StatusOK, response)
}

// HandleCreateProduct creates a product
func (s *Server) HandleCreateProduct(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.config.DBQueryTimeout)
	defer cancel()

	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", "invalid_input")
		return
	}
	if req.Title == "" || req.Slug == "" {
		respondError(w, http.StatusBadRequest, "title and slug are required", "invalid_input")
		return
	}

	builder := s.db.Client.Product.Create().
		SetTitle(req.Title).
		SetSlug(req.Slug).
		SetDescription(req.Description).
		SetPrice(req.Price).
		SetImageURL(req.ImageURL)
	if req.Active != nil {
		builder.SetActive(*req.Active)
	}

	p, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			respondError(w, http.StatusConflict, "product slug already exists", "conflict")
			return
		}
		s.respondDBError(w, err, "create product")
		return
	}

	s.logger.Info("Product created", zap.Int64("id", p.ID), zap.String("slug", p.Slug))
	respondJSON(w, http.StatusCreated, toProductResponse(p))
}

// HandleUpdateProduct applies a partial product update
func (s *Server) HandleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.config.DBQueryTimeout)
	defer cancel()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid product ID", "invalid_input")
		return
	}

	var req UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", "invalid_input")
		return
	}

	builder := s.db.Client.Product.UpdateOneID(id)
	if req.Title != nil {
		builder.SetTitle(*req.Title)
	}
	if req.Slug != nil {
		builder.SetSlug(*req.Slug)
	}
	if req.Description != nil {
		builder.SetDescription(*req.Description)
	}
	if req.Price != nil {
		builder.SetPrice(*req.Price)
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
			respondError(w, http.StatusNotFound, "product not found", "not_found")
			return
		}
		if ent.IsConstraintError(err) {
			respondError(w, http.StatusConflict, "product slug already exists", "conflict")
			return
		}
		s.respondDBError(w, err, "update product")
		return
	}

	respondJSON(w, http.StatusOK, toProductResponse(p))
}

// HandleDeleteProduct removes a product and its category links
func (s *Server) HandleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.config.DBQueryTimeout)
	defer cancel()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid product ID", "invalid_input")
		return
	}

	if err := s.db.DeleteEntity(ctx, db.FamilyProduct, id); err != nil {
		s.respondDBError(w, err, "delete product")
		return
	}

	s.logger.Info("Product deleted", zap.Int64("id", id))
	respondJSON(w, http.StatusOK, map[string]string{"message": "Product deleted"})
}

// HandleSetProductCategories replaces a product's linked-category set
func (s *Server) HandleSetProductCategories(w http.ResponseWriter, r *http.Request) {
	s.setEntityCategories(w, r, db.FamilyProduct)
}

// HandleSetProductPrimaryCategory points a product's primary at a linked category
func (s *Server) HandleSetProductPrimaryCategory(w http.ResponseWriter, r *http.Request) {
	s.setPrimaryCategory(w, r, db.FamilyProduct)
}
