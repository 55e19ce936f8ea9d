// Package images wraps the Cloudinary SDK behind a small uploader interface
// so handlers can run with image hosting disabled in development and tests.
package images

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Upload is the result of pushing one image to the hosting provider.
type Upload struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

// Uploader stores and removes site images.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, folder string) (*Upload, error)
	Destroy(ctx context.Context, publicID string) error
	Enabled() bool
}

// Service is the Cloudinary-backed Uploader. A nil Service (no CLOUDINARY_URL
// configured) reports itself disabled and rejects uploads.
type Service struct {
	cld    *cloudinary.Cloudinary
	logger *zap.Logger
}

// New builds a Service from a cloudinary:// URL. An empty URL yields a
// disabled service rather than an error, so local setups work without
// credentials.
func New(cloudinaryURL string, logger *zap.Logger) (*Service, error) {
	if cloudinaryURL == "" {
		return &Service{logger: logger}, nil
	}
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}
	return &Service{cld: cld, logger: logger}, nil
}

func (s *Service) Enabled() bool {
	return s != nil && s.cld != nil
}

// Upload pushes the file under folder/<uuid> and returns the hosted URL.
func (s *Service) Upload(ctx context.Context, file io.Reader, folder string) (*Upload, error) {
	if !s.Enabled() {
		return nil, fmt.Errorf("image uploads are not configured")
	}

	publicID := uuid.NewString()
	if folder != "" {
		publicID = strings.TrimSuffix(folder, "/") + "/" + publicID
	}

	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID: publicID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}

	s.logger.Info("Image uploaded",
		zap.String("public_id", result.PublicID),
		zap.String("url", result.SecureURL),
	)

	return &Upload{URL: result.SecureURL, PublicID: result.PublicID}, nil
}

// Destroy removes a previously uploaded image. Failures are logged and
// returned; callers deleting content rows treat them as non-fatal.
func (s *Service) Destroy(ctx context.Context, publicID string) error {
	if !s.Enabled() || publicID == "" {
		return nil
	}

	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		s.logger.Warn("Failed to destroy image", zap.String("public_id", publicID), zap.Error(err))
		return fmt.Errorf("failed to destroy image %s: %w", publicID, err)
	}
	return nil
}
