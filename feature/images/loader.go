package images

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature wires the image proxy into the application.
type Feature struct {
	handler *Handler
}

// NewFeature creates the image proxy feature.
func NewFeature(apiKey, version string, logger *zap.Logger) *Feature {
	return &Feature{
		handler: NewHandler(apiKey, version, logger),
	}
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "images"
}

// IsEnabled reports whether the feature should be loaded.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
