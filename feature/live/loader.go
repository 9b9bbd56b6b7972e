package live

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	registry *Registry
	handler  *Handler
}

// NewFeature creates the live updates feature.
func NewFeature(registry *Registry, resolver CategoryResolver, logger *zap.Logger) *Feature {
	return &Feature{
		registry: registry,
		handler:  NewHandler(registry, resolver, logger),
	}
}

// Registry returns the subscriber registry, for shutdown draining.
func (f *Feature) Registry() *Registry {
	return f.registry
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "live"
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
