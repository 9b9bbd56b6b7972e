package live

import (
	"sync"
	"time"

	"github.com/dorsabag/bucketListBackendDeploy/core/logger"
	"github.com/dorsabag/bucketListBackendDeploy/feature/bucketlist"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CategoryResolver maps an external database id back to a category. Webhook
// payloads only carry the originating database id.
type CategoryResolver interface {
	CategoryFor(tableID string) (bucketlist.Category, bool)
}

// Handler exposes the WebSocket endpoint and the inbound webhook receiver.
type Handler struct {
	registry *Registry
	resolver CategoryResolver
	logger   *zap.Logger
	now      func() time.Time
}

// NewHandler creates a new live updates handler.
func NewHandler(registry *Registry, resolver CategoryResolver, logger *zap.Logger) *Handler {
	return &Handler{
		registry: registry,
		resolver: resolver,
		logger:   logger,
		now:      time.Now,
	}
}

// RegisterRoutes registers the live update routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws", websocket.New(h.handleSocket))
	app.Post("/api/webhooks/notion", h.HandleWebhook)
}

// wsSubscriber adapts a websocket connection to the Subscriber interface.
// Writes are serialized: two overlapping broadcasts must not interleave
// frames on the same connection.
type wsSubscriber struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (s *wsSubscriber) Send(ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteJSON(ev)
}

// handleSocket keeps one client connection registered for its lifetime. The
// read loop only drains keep-alive traffic; the first read error tears the
// connection down.
func (h *Handler) handleSocket(conn *websocket.Conn) {
	sub := &wsSubscriber{conn: conn}
	h.registry.Register(sub)
	h.logger.Info("WebSocket client connected", zap.Int("clients", h.registry.Len()))

	defer func() {
		h.registry.Unregister(sub)
		h.logger.Info("WebSocket client disconnected", zap.Int("clients", h.registry.Len()))
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// webhookPayload mirrors Notion's change notification shape.
type webhookPayload struct {
	Type   string `json:"type"`
	Object string `json:"object"`
	Data   struct {
		ID     string `json:"id"`
		Parent struct {
			DatabaseID string `json:"database_id"`
		} `json:"parent"`
	} `json:"data"`
}

// changeEventTypes are the notification types translated into broadcasts.
var changeEventTypes = map[string]bool{
	"page.created":          true,
	"page.property_updated": true,
	"page.deleted":          true,
}

// HandleWebhook translates an external change notification into a broadcast.
// Notifications for unmapped databases are silently ignored.
func (h *Handler) HandleWebhook(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	// Always answer 200: an error response would make the sender retry a
	// payload this backend will never fan out.
	var payload webhookPayload
	if err := c.BodyParser(&payload); err != nil {
		l.Warn("Ignoring malformed webhook payload", zap.Error(err))
		return c.JSON(fiber.Map{
			"status":  "error",
			"message": "invalid webhook payload",
		})
	}

	if changeEventTypes[payload.Type] {
		if category, ok := h.resolver.CategoryFor(payload.Data.Parent.DatabaseID); ok {
			delivered := h.registry.Broadcast(Event{
				Type:      "notion_update",
				EventType: payload.Type,
				Category:  string(category),
				PageID:    payload.Data.ID,
				Timestamp: h.now().UTC(),
				Message:   payload.Type + " in " + string(category) + " category",
			})
			l.Info("Broadcasted change event",
				zap.String("event_type", payload.Type),
				zap.String("category", string(category)),
				zap.Int("clients", delivered))
		}
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Webhook processed",
	})
}
