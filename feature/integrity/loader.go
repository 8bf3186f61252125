package integrity

import (
	"schema-engine/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new integrity feature.
func NewFeature(client storage.Client, bucket string, prefixes []string, db *gorm.DB, store GraphStore, userHeader string, logger *zap.Logger) *Feature {
	svc := NewService(client, bucket, prefixes, db, store, logger)
	return &Feature{service: svc, handler: NewHandler(svc, userHeader)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "integrity"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
