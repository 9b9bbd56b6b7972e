package status

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature wires the status endpoints into the application.
type Feature struct {
	handler *Handler
}

// NewFeature creates the status feature.
func NewFeature(report *Report, checker ConnectivityChecker, version string, logger *zap.Logger) *Feature {
	return &Feature{
		handler: NewHandler(report, checker, version, logger),
	}
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "status"
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
