package images

import (
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dorsabag/bucketListBackendDeploy/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// notionImagePrefix is the only wrapper accepted, preventing the proxy from
// being used against arbitrary hosts.
const notionImagePrefix = "https://www.notion.so/image/"

const fetchTimeout = 10 * time.Second

const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Handler proxies Notion-authenticated images to the frontend.
type Handler struct {
	apiKey  string
	version string
	http    *http.Client
	logger  *zap.Logger
}

// NewHandler creates a new image proxy handler.
func NewHandler(apiKey, version string, logger *zap.Logger) *Handler {
	return &Handler{
		apiKey:  apiKey,
		version: version,
		http:    &http.Client{Timeout: fetchTimeout},
		logger:  logger,
	}
}

// RegisterRoutes registers the image proxy route.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/api/proxy-image", h.HandleProxyImage)
}

// HandleProxyImage unwraps a Notion image URL and streams the image back.
// The original upstream is tried first with a browser user agent; if that
// fails, the wrapper URL is fetched with API credentials.
func (h *Handler) HandleProxyImage(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	wrapped := c.Query("url")

	if !strings.HasPrefix(wrapped, notionImagePrefix) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid image URL",
		})
	}

	original := extractOriginalURL(wrapped)
	if original != "" {
		if body, contentType, ok := h.fetch(original, map[string]string{"User-Agent": browserUserAgent}); ok {
			return respondImage(c, body, contentType)
		}
		l.Warn("Original image URL failed, falling back to Notion", zap.String("url", original))
	}

	// Fallback: wrapper URL with API credentials.
	headers := map[string]string{
		"Authorization":  "Bearer " + h.apiKey,
		"Notion-Version": h.version,
	}
	if body, contentType, ok := h.fetch(wrapped, headers); ok {
		return respondImage(c, body, contentType)
	}

	l.Error("Failed to fetch image from both original and Notion URLs", zap.String("url", wrapped))
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": "Image not found",
	})
}

// extractOriginalURL pulls the embedded upstream URL out of the wrapper.
// Wrapper URLs are double-encoded, so unescape twice. An embedded reference
// with a non-http scheme (e.g. attachment:) yields "".
func extractOriginalURL(wrapped string) string {
	_, rest, found := strings.Cut(wrapped, "/image/")
	if !found {
		return ""
	}
	encoded, _, _ := strings.Cut(rest, "?")

	decoded := encoded
	for i := 0; i < 2; i++ {
		next, err := url.QueryUnescape(decoded)
		if err != nil {
			break
		}
		decoded = next
	}

	if !strings.HasPrefix(decoded, "http://") && !strings.HasPrefix(decoded, "https://") {
		return ""
	}
	return decoded
}

func (h *Handler) fetch(target string, headers map[string]string) ([]byte, string, bool) {
	req, err := http.NewRequest(http.MethodGet, target, nil)
	if err != nil {
		return nil, "", false
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := h.http.Do(req)
	if err != nil {
		return nil, "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", false
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", false
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}
	return body, contentType, true
}

func respondImage(c *fiber.Ctx, body []byte, contentType string) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderCacheControl, "public, max-age=3600")
	return c.Send(body)
}
