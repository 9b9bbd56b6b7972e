package status

import (
	"time"

	"github.com/dorsabag/bucketListBackendDeploy/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const serviceName = "Bucket List API"

// Handler serves the root and health endpoints.
type Handler struct {
	report  *Report
	checker ConnectivityChecker
	version string
	logger  *zap.Logger
	now     func() time.Time
}

// NewHandler creates a new status handler.
func NewHandler(report *Report, checker ConnectivityChecker, version string, logger *zap.Logger) *Handler {
	return &Handler{
		report:  report,
		checker: checker,
		version: version,
		logger:  logger,
		now:     time.Now,
	}
}

// RegisterRoutes registers the status routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/api/", h.HandleRoot)
	app.Get("/api/health", h.HandleHealth)
}

// HandleRoot returns service identity and provisioning state.
func (h *Handler) HandleRoot(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"name":                  serviceName,
		"version":               h.version,
		"status":                "running",
		"databases_initialized": h.report.Initialized(),
	})
}

// HandleHealth reports liveness for load balancers. Degraded configuration
// or provisioning failures return 503 with the reasons, and so does a failed
// connectivity probe: a backend whose only data store is unreachable must not
// keep receiving traffic.
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	timestamp := h.now().UTC().Format(time.RFC3339)

	if reasons := h.report.Degraded(); len(reasons) > 0 {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status":    "degraded",
			"reasons":   reasons,
			"timestamp": timestamp,
		})
	}

	if err := h.checker.Connectivity(c.UserContext()); err != nil {
		l.Warn("Health connectivity check failed", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status":           "unhealthy",
			"notion_connected": false,
			"error":            "Notion connectivity failed: " + err.Error(),
			"timestamp":        timestamp,
		})
	}

	return c.JSON(fiber.Map{
		"status":           "healthy",
		"notion_connected": true,
		"timestamp":        timestamp,
	})
}
