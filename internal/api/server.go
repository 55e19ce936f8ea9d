package api

import (
	"go.uber.org/zap"

	"sitecms/internal/config"
	"sitecms/internal/db"
	"sitecms/internal/images"
)

// Server holds the application dependencies
type Server struct {
	db     *db.DB
	config *config.Config
	logger *zap.Logger
	images images.Uploader
}

// NewServer creates a new API server
func NewServer(database *db.DB, cfg *config.Config, logger *zap.Logger) *Server {
	return &Server{
		db:     database,
		config: cfg,
		logger: logger,
	}
}

// SetUploader sets the image upload service
func (s *Server) SetUploader(uploader images.Uploader) {
	s.images = uploader
}
