package status

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeChecker struct {
	err error
}

func (f *fakeChecker) Connectivity(ctx context.Context) error {
	return f.err
}

func setupStatusApp(t *testing.T, report *Report, checker ConnectivityChecker) *fiber.App {
	t.Helper()
	app := fiber.New()
	handler := NewHandler(report, checker, "1.0.0", zap.NewNop())
	handler.RegisterRoutes(app)
	return app
}

func TestHandleRoot(t *testing.T) {
	report := NewReport()
	report.SetInitialized(true)
	app := setupStatusApp(t, report, &fakeChecker{})

	req := httptest.NewRequest("GET", "/api/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "running", body["status"])
	assert.Equal(t, "1.0.0", body["version"])
	assert.Equal(t, true, body["databases_initialized"])
}

func TestHandleHealthHealthy(t *testing.T) {
	report := NewReport()
	report.SetInitialized(true)
	app := setupStatusApp(t, report, &fakeChecker{})

	req := httptest.NewRequest("GET", "/api/health", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, true, body["notion_connected"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestHandleHealthConnectivityFailure(t *testing.T) {
	report := NewReport()
	report.SetInitialized(true)
	app := setupStatusApp(t, report, &fakeChecker{err: errors.New("remote unreachable")})

	req := httptest.NewRequest("GET", "/api/health", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "unhealthy", body["status"])
	assert.Equal(t, false, body["notion_connected"])
	assert.Contains(t, body["error"], "remote unreachable")
}

func TestHandleHealthDegraded(t *testing.T) {
	report := NewReport()
	report.AddMissingConfig("notion.api_key")
	report.SetProvisionErrors(map[string]string{"books": "parent page id not configured"})
	app := setupStatusApp(t, report, &fakeChecker{})

	req := httptest.NewRequest("GET", "/api/health", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "degraded", body["status"])

	reasons := body["reasons"].([]any)
	require.Len(t, reasons, 2)
	assert.Equal(t, "missing configuration: notion.api_key", reasons[0])
	assert.Equal(t, "provisioning failed for books: parent page id not configured", reasons[1])
}

func TestReportDegradedOrdering(t *testing.T) {
	report := NewReport()
	report.SetProvisionErrors(map[string]string{"movies": "x", "books": "y"})

	reasons := report.Degraded()
	require.Len(t, reasons, 2)
	assert.Equal(t, "provisioning failed for books: y", reasons[0])
	assert.Equal(t, "provisioning failed for movies: x", reasons[1])
}
