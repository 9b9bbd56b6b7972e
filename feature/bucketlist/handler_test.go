package bucketlist

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dorsabag/bucketListBackendDeploy/core/notion"
	"github.com/dorsabag/bucketListBackendDeploy/core/notion/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T, tables TablesConfig) (*fiber.App, *mocks.Client) {
	t.Helper()
	app := fiber.New()
	mockClient := new(mocks.Client)
	prov := NewProvisioner(mockClient, tables, "", zap.NewNop())
	svc := NewService(mockClient, prov, zap.NewNop())
	handler := NewHandler(svc)
	handler.RegisterRoutes(app)
	return app, mockClient
}

func TestHandleListCategories(t *testing.T) {
	app, _ := setupTestApp(t, TablesConfig{})

	req := httptest.NewRequest("GET", "/api/categories", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["success"])

	categories := body["categories"].(map[string]any)
	assert.Contains(t, categories, "live_shows")
	assert.Contains(t, categories, "books")
	// Episodes are internal and never listed.
	assert.NotContains(t, categories, "episodes")
	assert.Equal(t, float64(len(categories)), body["count"])
}

func TestHandleCreateItem(t *testing.T) {
	app, mockClient := setupTestApp(t, TablesConfig{LiveShows: "db-shows"})

	mockClient.On("CreatePage", mock.Anything, "db-shows", mock.Anything).
		Return(&notion.Record{ID: "item-1", Properties: map[string]any{"Name": "Radiohead"}}, nil).Once()

	req := httptest.NewRequest("POST", "/api/categories/live_shows/items",
		strings.NewReader(`{"title": "Radiohead", "location": "Park HaYarkon"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["success"])
	item := body["item"].(map[string]any)
	assert.Equal(t, "item-1", item["id"])
	mockClient.AssertExpectations(t)
}

func TestHandleCreateItemValidation(t *testing.T) {
	app, _ := setupTestApp(t, TablesConfig{LiveShows: "db-shows"})

	req := httptest.NewRequest("POST", "/api/categories/live_shows/items",
		strings.NewReader(`{"location": "nowhere"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["error"], "title is required")
}

func TestHandleCreateItemUnknownCategory(t *testing.T) {
	app, _ := setupTestApp(t, TablesConfig{})

	req := httptest.NewRequest("POST", "/api/categories/gardening/items",
		strings.NewReader(`{"title": "x"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHandleListItems(t *testing.T) {
	app, mockClient := setupTestApp(t, TablesConfig{DiningOut: "db-dining"})

	mockClient.On("QueryDatabase", mock.Anything, "db-dining", 25).Return(&notion.QueryResult{
		Records: []*notion.Record{
			{ID: "i1", Properties: map[string]any{"Name": "Taizu"}},
		},
		HasMore: true,
	}, nil).Once()

	req := httptest.NewRequest("GET", "/api/categories/dining_out/items?limit=25", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "dining_out", body["category"])
	assert.Equal(t, float64(1), body["count"])
	assert.Equal(t, true, body["has_more"])
}

func TestHandleListItemsUpstreamFailure(t *testing.T) {
	app, mockClient := setupTestApp(t, TablesConfig{DiningOut: "db-dining"})

	mockClient.On("QueryDatabase", mock.Anything, "db-dining", mock.Anything).
		Return(nil, &notion.UpstreamError{StatusCode: 500, Err: assert.AnError}).Once()

	req := httptest.NewRequest("GET", "/api/categories/dining_out/items", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 502, resp.StatusCode)
}

func TestHandleListItemsRateLimited(t *testing.T) {
	app, mockClient := setupTestApp(t, TablesConfig{DiningOut: "db-dining"})

	mockClient.On("QueryDatabase", mock.Anything, "db-dining", mock.Anything).
		Return(nil, &notion.RateLimitedError{StatusCode: 429}).Once()

	req := httptest.NewRequest("GET", "/api/categories/dining_out/items", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 429, resp.StatusCode)
}

func TestHandleUpdateItem(t *testing.T) {
	app, mockClient := setupTestApp(t, TablesConfig{TVShows: "db-tv"})

	mockClient.On("UpdatePage", mock.Anything, "item-1", mock.Anything).
		Return(&notion.Record{ID: "item-1", Properties: map[string]any{"Name": "The Wire"}}, nil).Once()

	req := httptest.NewRequest("PUT", "/api/categories/tv_shows/items/item-1",
		strings.NewReader(`{"rating": "10"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	mockClient.AssertExpectations(t)
}

func TestHandleUpdateItemEmptyBody(t *testing.T) {
	app, _ := setupTestApp(t, TablesConfig{TVShows: "db-tv"})

	req := httptest.NewRequest("PUT", "/api/categories/tv_shows/items/item-1",
		strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHandleDeleteItem(t *testing.T) {
	app, mockClient := setupTestApp(t, TablesConfig{Podcasts: "db-pod"})

	mockClient.On("ArchivePage", mock.Anything, "item-1").Return(nil).Once()

	req := httptest.NewRequest("DELETE", "/api/categories/podcasts/items/item-1", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	mockClient.AssertExpectations(t)
}

func TestHandleShowEpisodes(t *testing.T) {
	app, mockClient := setupTestApp(t, TablesConfig{TVShows: "db-tv", Episodes: "db-ep"})

	show := &notion.Record{ID: "show-1", Properties: map[string]any{"Name": "The Wire"}}
	mockClient.On("GetPage", mock.Anything, "show-1").Return(show, nil).Once()
	mockClient.On("QueryDatabase", mock.Anything, "db-ep", mock.Anything).Return(&notion.QueryResult{
		Records: []*notion.Record{
			{ID: "e1", Properties: map[string]any{"Show": "The Wire"}},
		},
	}, nil).Once()

	req := httptest.NewRequest("GET", "/api/categories/tv_shows/items/show-1/episodes", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "show-1", body["show_id"])
	assert.Equal(t, "The Wire", body["show_name"])
	assert.Equal(t, float64(1), body["count"])
}

func TestHandleCountryCities(t *testing.T) {
	app, mockClient := setupTestApp(t, TablesConfig{AroundWorld: "db-world"})

	country := &notion.Record{ID: "c1", Properties: map[string]any{"Name": "🇹🇭 Thailand"}}
	mockClient.On("GetPage", mock.Anything, "c1").Return(country, nil).Once()
	mockClient.On("QueryDatabase", mock.Anything, "db-world", mock.Anything).Return(&notion.QueryResult{
		Records: []*notion.Record{
			{ID: "i1", Properties: map[string]any{"Name": "Bangkok street food"}},
		},
	}, nil).Once()

	req := httptest.NewRequest("GET", "/api/categories/around_world/items/c1/cities", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Thailand", body["country_name"])
	assert.Equal(t, float64(1), body["count"])
}

func TestHandleAddImageProperties(t *testing.T) {
	app, mockClient := setupTestApp(t, TablesConfig{LiveShows: "db-shows"})

	mockClient.On("UpdateDatabase", mock.Anything, "db-shows", mock.Anything).Return(nil).Once()

	req := httptest.NewRequest("POST", "/api/admin/add-image-properties", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	mockClient.AssertExpectations(t)
}
