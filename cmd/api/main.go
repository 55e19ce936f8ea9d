package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"sitecms/internal/api"
	"sitecms/internal/config"
	"sitecms/internal/db"
	"sitecms/internal/images"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	logger := config.MustInitLogger(cfg.Env, cfg.LogLevel)
	defer logger.Sync() // Flush any buffered log entries

	logger.Info("Starting sitecms API",
		zap.String("env", cfg.Env),
		zap.String("port", cfg.Port),
	)

	// Initialize database with auto-migrations
	dbCfg := db.Config{
		Driver:         cfg.DBDriver,
		DBPath:         cfg.DBPath,
		DSN:            cfg.DBDSN,
		MigrationsPath: cfg.MigrationsPath,
	}

	database, err := db.New(dbCfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer database.Close()

	// Initialize image upload service (disabled when CLOUDINARY_URL is empty)
	uploader, err := images.New(cfg.CloudinaryURL, logger)
	if err != nil {
		logger.Fatal("Failed to initialize image service", zap.Error(err))
	}
	if !uploader.Enabled() {
		logger.Warn("CLOUDINARY_URL not set, image uploads disabled")
	}

	// Create server with logger
	server := api.NewServer(database, cfg, logger)
	server.SetUploader(uploader)

	// Setup router
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(api.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	// Request size limit (1MB); the upload endpoint raises its own cap
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/admin/uploads" {
				r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
			}
			next.ServeHTTP(w, r)
		})
	})

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := database.HealthCheck(ctx); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			fmt.Fprintf(w, `{"status":"error","message":"database unavailable"}`)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status":"ok","database":"connected"}`)
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Public site content
		r.Get("/pages", server.HandleListPages)
		r.Get("/pages/{page}/sections", server.HandleListPageSections)
		r.Get("/categories/{family}", server.HandleListCategories)
		r.Get("/products", server.HandleListProducts)
		r.Get("/products/{slug}", server.HandleGetProduct)
		r.Get("/blog-posts", server.HandleListBlogPosts)
		r.Get("/blog-posts/{slug}", server.HandleGetBlogPost)
		r.Get("/projects", server.HandleListProjects)
		r.Get("/projects/{slug}", server.HandleGetProject)
		r.Get("/service-pages", server.HandleListServicePages)
		r.Get("/service-pages/{slug}", server.HandleGetServicePage)

		// Editor routes
		r.Route("/admin", func(r chi.Router) {
			r.Use(api.RateLimitMiddleware(cfg.RateLimitRequests))

			// Sections
			r.Get("/section-types", server.HandleListSectionTypes)
			r.Get("/pages/{page}/sections", server.HandleAdminListPageSections)
			r.Post("/sections", server.HandleCreateSection)
			r.Patch("/sections/{id}", server.HandleUpdateSection)
			r.Delete("/sections/{id}", server.HandleDeleteSection)
			r.Put("/sections/{id}/move", server.HandleMoveSection)
			r.Put("/pages/{page}/sections/reorder", server.HandleReorderSections)
			r.Put("/pages/{page}/sections/bulk-move", server.HandleBulkMoveSections)
			r.Post("/pages/{page}/init", server.HandleInitializeSections)

			// Categories
			r.Post("/categories/{family}", server.HandleCreateCategory)
			r.Patch("/categories/{family}/{id}", server.HandleUpdateCategory)
			r.Delete("/categories/{family}/{id}", server.HandleDeleteCategory)
			r.Put("/categories/{family}/{id}/entities/reorder", server.HandleReorderCategoryEntities)

			// Products
			r.Post("/products", server.HandleCreateProduct)
			r.Patch("/products/{id}", server.HandleUpdateProduct)
			r.Delete("/products/{id}", server.HandleDeleteProduct)
			r.Put("/products/{id}/categories", server.HandleSetProductCategories)
			r.Put("/products/{id}/primary-category", server.HandleSetProductPrimaryCategory)

			// Blog posts
			r.Post("/blog-posts", server.HandleCreateBlogPost)
			r.Patch("/blog-posts/{id}", server.HandleUpdateBlogPost)
			r.Delete("/blog-posts/{id}", server.HandleDeleteBlogPost)
			r.Put("/blog-posts/{id}/categories", server.HandleSetBlogPostCategories)
			r.Put("/blog-posts/{id}/primary-category", server.HandleSetBlogPostPrimaryCategory)

			// Projects
			r.Post("/projects", server.HandleCreateProject)
			r.Patch("/projects/{id}", server.HandleUpdateProject)
			r.Delete("/projects/{id}", server.HandleDeleteProject)
			r.Put("/projects/reorder", server.HandleReorderProjects)
			r.Put("/projects/{id}/categories", server.HandleSetProjectCategories)
			r.Put("/projects/{id}/primary-category", server.HandleSetProjectPrimaryCategory)

			// Service pages
			r.Get("/service-pages", server.HandleAdminListServicePages)
			r.Post("/service-pages", server.HandleCreateServicePage)
			r.Patch("/service-pages/{id}", server.HandleUpdateServicePage)
			r.Delete("/service-pages/{id}", server.HandleDeleteServicePage)

			// Image uploads
			r.Post("/uploads", server.HandleUploadImage)
			r.Delete("/uploads", server.HandleDestroyImage)
		})
	})

	// Create HTTP server
	addr := fmt.Sprintf(":%s", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for server errors
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		logger.Info("Server listening", zap.String("addr", addr))
		serverErrors <- srv.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive shutdown signal or server error
	select {
	case err := <-serverErrors:
		logger.Fatal("Server error", zap.Error(err))
	case sig := <-shutdown:
		logger.Info("Received shutdown signal, starting graceful shutdown", zap.String("signal", sig.String()))

		// Give outstanding requests 30 seconds to complete
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Gracefully shutdown server
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("Graceful shutdown failed", zap.Error(err))
			if err := srv.Close(); err != nil {
				logger.Fatal("Failed to close server", zap.Error(err))
			}
		}

		logger.Info("Server stopped gracefully")
	}
}
