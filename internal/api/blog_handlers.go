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
	"sitecms/ent/blogpost"
	"sitecms/ent/category"
	"sitecms/internal/db"
)

// BlogPostResponse represents a blog post in API responses
type BlogPostResponse struct {
	ID                int64      `json:"id"`
	Title             string     `json:"title"`
	Slug              string     `json:"slug"`
	Excerpt           string     `json:"excerpt"`
	Body              string     `json:"body,omitempty"`
	ImageURL          string     `json:"image_url"`
	Published         bool       `json:"published"`
	PublishedAt       *time.Time `json:"published_at,omitempty"`
	PrimaryCategoryID *int64     `json:"primary_category_id,omitempty"`
	CategoryIDs       []int64    `json:"category_ids,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func toBlogPostResponse(p *ent.BlogPost, includeBody bool) BlogPostResponse {
	resp := BlogPostResponse{
		ID:                p.ID,
		Title:             p.Title,
		Slug:              p.Slug,
		Excerpt:           p.Excerpt,
		ImageURL:          p.ImageURL,
		Published:         p.Published,
		PublishedAt:       p.PublishedAt,
		PrimaryCategoryID: p.PrimaryCategoryID,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
	if includeBody {
		resp.Body = p.Body
	}
	return resp
}

// CreateBlogPostRequest represents a request to create a blog post
type CreateBlogPostRequest struct {
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	Excerpt   string `json:"excerpt"`
	Body      string `json:"body"`
	ImageURL  string `json:"image_url"`
	Published *bool  `json:"published,omitempty"`
}

// UpdateBlogPostRequest represents a partial blog post update
type UpdateBlogPostRequest struct {
	Title     *string `json:"title,omitempty"`
	Slug      *string `json:"slug,omitempty"`
	Excerpt   *string `json:"excerpt,omitempty"`
	Body      *string `json:"body,omitempty"`
	ImageURL  *string `json:"image_url,omitempty"`
	Published *bool   `json:"published,omitempty"`
}

// HandleListBlogPosts returns published posts newest first, optionally
// filtered to one category (ordered by the category's curated listing)
func (s *Server) HandleListBlogPosts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.config.DBQueryTimeout)
	defer cancel()

	if slug := r.URL.Query().Get("category"); slug != "" {
		s.listBlogPostsByCategory(ctx, w, slug)
		return
	}

	posts, err := s.db.Client.BlogPost.Query().
		Where(blogpost.Published(true)).
		Order(ent.Desc(blogpost.FieldPublishedAt), ent.Desc(blogpost.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		s.respondDBError(w, err, "list blog posts")
		return
	}

	response := make([]BlogPostResponse, 0, len(posts))
	for _, p := range posts {
		response = append(response, toBlogPostResponse(p, false))
	}

	respondJSON(w, http.StatusOK, response)
}

func (s *Server) listBlogPostsByCategory(ctx context.Context, w http.ResponseWriter, slug string) {
	cat, err := s.db.Client.Category.Query().
		Where(category.Family(db.FamilyBlog), category.Slug(slug)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			respondError(w, http.StatusNotFound, "category not found", "not_found")
			return
		}
		s.respondDBError(w, err, "list blog posts")
		return
	}

	ids, err := s.db.CategoryEntityIDs(ctx, db.FamilyBlog, cat.ID)
	if err != nil {
		s.respondDBError(w, err, "list blog posts")
		return
	}

	posts, err := s.db.Client.BlogPost.Query().
		Where(blogpost.IDIn(ids...), blogpost.Published(true)).
		All(ctx)
	if err != nil {
		s.respondDBError(w, err, "list blog posts")
		return
	}

	byID := make(map[int64]*ent.BlogPost, len(posts))
	for _, p := range posts {
		byID[p.ID] = p
	}
	response := make([]BlogPostResponse, 0, len(posts))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			response = append(response, toBlogPostResponse(p, false))
		}
	}

	respondJSON(w, http.StatusOK, response)
}

// HandleGetBlogPost returns a single published post by slug, body included
func (s *Server) HandleGetBlogPost(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.config.DBQueryTimeout)
	defer cancel()

	slug := chi.URLParam(r, "slug")
	p, err := s.db.Client.BlogPost.Query().
		Where(blogpost.Slug(slug), blogpost.Published(true)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			respondError(w, http.StatusNotFound, "blog post not found", "not_found")
			return
		}
		s.respondDBError(w, err, "get blog post")
		return
	}

	response := toBlogPostResponse(p, true)
	ids, err := s.db.EntityCategoryIDs(ctx, db.FamilyBlog, p.ID)
	if err != nil {
		s.respondDBError(w, err, "load blog post categories")
		return
	}
	response.CategoryIDs = ids

	respondJSON(w, http.StatusOK, response)
}

// HandleCreateBlogPost creates a blog post
func (s *Server) HandleCreateBlogPost(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.config.DBQueryTimeout)
	defer cancel()

	var req CreateBlogPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", "invalid_input")
		return
	}
	if req.Title == "" || req.Slug == "" {
		respondError(w, http.StatusBadRequest, "title and slug are required", "invalid_input")
		return
	}

	builder := s.db.Client.BlogPost.Create().
		SetTitle(req.Title).
		SetSlug(req.Slug).
		SetExcerpt(req.Excerpt).
		SetBody(req.Body).
		SetImageURL(req.ImageURL)
	if req.Published != nil && *req.Published {
		builder.SetPublished(true).SetPublishedAt(time.Now())
	}

	p, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			respondError(w, http.StatusConflict, "blog post slug already exists", "conflict")
			return
		}
		s.respondDBError(w, err, "create blog post")
		return
	}

	s.logger.Info("Blog post created", zap.Int64("id", p.ID), zap.String("slug", p.Slug))
	respondJSON(w, http.StatusCreated, toBlogPostResponse(p, true))
}

// HandleUpdateBlogPost applies a partial blog post update. Publishing for the
// first time stamps published_at.
func (s *Server) HandleUpdateBlogPost(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.config.DBQueryTimeout)
	defer cancel()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid blog post ID", "invalid_input")
		return
	}

	var req UpdateBlogPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", "invalid_input")
		return
	}

	current, err := s.db.Client.BlogPost.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			respondError(w, http.StatusNotFound, "blog post not found", "not_found")
			return
		}
		s.respondDBError(w, err, "update blog post")
		return
	}

	builder := s.db.Client.BlogPost.UpdateOneID(id)
	if req.Title != nil {
		builder.SetTitle(*req.Title)
	}
	if req.Slug != nil {
		builder.SetSlug(*req.Slug)
	}
	if req.Excerpt != nil {
		builder.SetExcerpt(*req.Excerpt)
	}
	if req.Body != nil {
		builder.SetBody(*req.Body)
	}
	if req.ImageURL != nil {
		builder.SetImageURL(*req.ImageURL)
	}
	if req.Published != nil {
		builder.SetPublished(*req.Published)
		if *req.Published && current.PublishedAt == nil {
			builder.SetPublishedAt(time.Now())
		}
	}

	p, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			respondError(w, http.StatusConflict, "blog post slug already exists", "conflict")
			return
		}
		s.respondDBError(w, err, "update blog post")
		return
	}

	respondJSON(w, http.StatusOK, toBlogPostResponse(p, true))
}

// HandleDeleteBlogPost removes a blog post and its category links
func (s *Server) HandleDeleteBlogPost(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.config.DBQueryTimeout)
	defer cancel()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid blog post ID", "invalid_input")
		return
	}

	if err := s.db.DeleteEntity(ctx, db.FamilyBlog, id); err != nil {
		s.respondDBError(w, err, "delete blog post")
		return
	}

	s.logger.Info("Blog post deleted", zap.Int64("id", id))
	respondJSON(w, http.StatusOK, map[string]string{"message": "Blog post deleted"})
}

// HandleSetBlogPostCategories replaces a post's linked-category set
func (s *Server) HandleSetBlogPostCategories(w http.ResponseWriter, r *http.Request) {
	s.setEntityCategories(w, r, db.FamilyBlog)
}

// HandleSetBlogPostPrimaryCategory points a post's primary at a linked category
func (s *Server) HandleSetBlogPostPrimaryCategory(w http.ResponseWriter, r *http.Request) {
	s.setPrimaryCategory(w, r, db.FamilyBlog)
}
