package bucketlist

import (
	"github.com/dorsabag/bucketListBackendDeploy/core/notion"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the bucket list feature.
func NewFeature(client notion.Client, tables TablesConfig, parentPageID string, logger *zap.Logger) *Feature {
	prov := NewProvisioner(client, tables, parentPageID, logger)
	svc := NewService(client, prov, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Service returns the underlying service for collaborators that need it
// (startup provisioning, health checks, webhook routing).
func (f *Feature) Service() *Service {
	return f.service
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "bucketlist"
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
