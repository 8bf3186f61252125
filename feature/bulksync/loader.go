package bulksync

import (
	"schema-engine/core/server"

	"github.com/gofiber/fiber/v2"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new sync feature around service.
func NewFeature(service *Service, cfg server.Config) *Feature {
	return &Feature{service: service, handler: NewHandler(service, cfg)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "sync"
}

// IsEnabled reports whether a storage client is configured.
func (f *Feature) IsEnabled() bool {
	return f.service != nil && f.service.client != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
