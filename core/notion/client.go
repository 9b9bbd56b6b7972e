package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// maxPageSize is Notion's hard cap on results per query request.
const maxPageSize = 100

// QueryResult holds a fully drained database query.
type QueryResult struct {
	Records []*Record
	// HasMore is true when the result was truncated at the caller's limit
	// and the store still had further pages.
	HasMore    bool
	NextCursor string
}

// DatabaseRequest describes a database to create under a parent page.
type DatabaseRequest struct {
	ParentPageID string
	Title        string
	Emoji        string
	Properties   map[string]any
}

// Client defines the interface for Notion operations.
type Client interface {
	// QueryDatabase returns up to limit records from a database, draining
	// pagination transparently.
	QueryDatabase(ctx context.Context, databaseID string, limit int) (*QueryResult, error)
	// CreatePage creates a record in a database.
	CreatePage(ctx context.Context, databaseID string, properties map[string]any) (*Record, error)
	// UpdatePage patches the given properties onto an existing record.
	UpdatePage(ctx context.Context, pageID string, properties map[string]any) (*Record, error)
	// ArchivePage archives (soft deletes) a record.
	ArchivePage(ctx context.Context, pageID string) error
	// GetPage fetches a single record by id.
	GetPage(ctx context.Context, pageID string) (*Record, error)
	// CreateDatabase creates a new database and returns its id.
	CreateDatabase(ctx context.Context, req *DatabaseRequest) (string, error)
	// UpdateDatabase adds or updates schema properties on a database.
	UpdateDatabase(ctx context.Context, databaseID string, properties map[string]any) error
}

type httpClient struct {
	baseURL    string
	apiKey     string
	version    string
	http       *http.Client
	maxRetries int
	retryDelay time.Duration
	sleep      func(time.Duration)
	logger     *zap.Logger
}

// NewClient creates a Notion API client from the configuration.
func NewClient(cfg Config, logger *zap.Logger) Client {
	return newHTTPClient(cfg, logger, time.Sleep)
}

func newHTTPClient(cfg Config, logger *zap.Logger, sleep func(time.Duration)) *httpClient {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 10
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	retries := cfg.MaxRetries
	if retries <= 0 {
		retries = 3
	}
	delay := time.Duration(cfg.RetryDelayMS) * time.Millisecond
	if delay <= 0 {
		delay = time.Second
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ResponseHeaderTimeout: timeoutDuration,
	}

	return &httpClient{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		version:    cfg.Version,
		http:       &http.Client{Transport: transport, Timeout: timeoutDuration},
		maxRetries: retries,
		retryDelay: delay,
		sleep:      sleep,
		logger:     logger,
	}
}

// doRequest performs one API call with retry and backoff. On 429 it honours
// Retry-After when present, otherwise delay*2^attempt; transient failures
// (network errors, 5xx) back off the same way. Non-429 4xx responses fail
// immediately since retrying a caller error cannot help.
func (c *httpClient) doRequest(ctx context.Context, method, url string, body any) ([]byte, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	var lastErr error
	lastStatus := 0

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, url, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to build request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		req.Header.Set("Notion-Version", c.version)
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.http.Do(req)
		if err != nil {
			lastErr = err
			lastStatus = 0
			if attempt == c.maxRetries {
				break
			}
			c.sleep(c.backoff(attempt))
			continue
		}

		data, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusTooManyRequests:
			lastStatus = resp.StatusCode
			lastErr = fmt.Errorf("rate limited: %s", string(data))
			if attempt == c.maxRetries {
				break
			}
			c.sleep(c.retryAfter(resp, attempt))
			continue

		case resp.StatusCode >= 500:
			lastStatus = resp.StatusCode
			lastErr = fmt.Errorf("server error: %s", string(data))
			if attempt == c.maxRetries {
				break
			}
			c.sleep(c.backoff(attempt))
			continue

		case resp.StatusCode >= 400:
			return nil, &UpstreamError{
				StatusCode: resp.StatusCode,
				Err:        fmt.Errorf("%s %s: %s", method, url, string(data)),
			}

		default:
			if readErr != nil {
				return nil, &UpstreamError{StatusCode: resp.StatusCode, Err: readErr}
			}
			return data, nil
		}
		break
	}

	if lastStatus == http.StatusTooManyRequests {
		return nil, &RateLimitedError{StatusCode: lastStatus, Err: lastErr}
	}
	return nil, &UpstreamError{StatusCode: lastStatus, Err: lastErr}
}

func (c *httpClient) backoff(attempt int) time.Duration {
	return c.retryDelay * time.Duration(1<<attempt)
}

func (c *httpClient) retryAfter(resp *http.Response, attempt int) time.Duration {
	if v := resp.Header.Get("Retry-After"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return c.backoff(attempt)
}

type queryResponse struct {
	Results    []json.RawMessage `json:"results"`
	HasMore    bool              `json:"has_more"`
	NextCursor *string           `json:"next_cursor"`
}

func (c *httpClient) QueryDatabase(ctx context.Context, databaseID string, limit int) (*QueryResult, error) {
	if limit <= 0 {
		limit = maxPageSize
	}
	url := fmt.Sprintf("%s/databases/%s/query", c.baseURL, databaseID)

	records := make([]*Record, 0, limit)
	hasMore := true
	cursor := ""

	for hasMore {
		payload := map[string]any{
			"page_size": min(limit, maxPageSize),
		}
		if cursor != "" {
			payload["start_cursor"] = cursor
		}

		data, err := c.doRequest(ctx, http.MethodPost, url, payload)
		if err != nil {
			return nil, err
		}

		var page queryResponse
		if err := json.Unmarshal(data, &page); err != nil {
			return nil, fmt.Errorf("failed to decode query response: %w", err)
		}

		for _, raw := range page.Results {
			rec, err := Simplify(raw)
			if err != nil {
				return nil, err
			}
			records = append(records, rec)
		}

		hasMore = page.HasMore
		if page.NextCursor != nil {
			cursor = *page.NextCursor
		}

		if len(records) >= limit {
			records = records[:limit]
			break
		}
	}

	return &QueryResult{
		Records:    records,
		HasMore:    len(records) >= limit && hasMore,
		NextCursor: cursor,
	}, nil
}

func (c *httpClient) CreatePage(ctx context.Context, databaseID string, properties map[string]any) (*Record, error) {
	payload := map[string]any{
		"parent":     map[string]any{"database_id": databaseID},
		"properties": properties,
	}
	data, err := c.doRequest(ctx, http.MethodPost, c.baseURL+"/pages", payload)
	if err != nil {
		return nil, err
	}
	return Simplify(data)
}

func (c *httpClient) UpdatePage(ctx context.Context, pageID string, properties map[string]any) (*Record, error) {
	payload := map[string]any{"properties": properties}
	data, err := c.doRequest(ctx, http.MethodPatch, c.baseURL+"/pages/"+pageID, payload)
	if err != nil {
		return nil, err
	}
	return Simplify(data)
}

func (c *httpClient) ArchivePage(ctx context.Context, pageID string) error {
	payload := map[string]any{"archived": true}
	_, err := c.doRequest(ctx, http.MethodPatch, c.baseURL+"/pages/"+pageID, payload)
	return err
}

func (c *httpClient) GetPage(ctx context.Context, pageID string) (*Record, error) {
	data, err := c.doRequest(ctx, http.MethodGet, c.baseURL+"/pages/"+pageID, nil)
	if err != nil {
		return nil, err
	}
	return Simplify(data)
}

func (c *httpClient) CreateDatabase(ctx context.Context, req *DatabaseRequest) (string, error) {
	payload := map[string]any{
		"parent": map[string]any{
			"type":    "page_id",
			"page_id": req.ParentPageID,
		},
		"title": []any{
			map[string]any{
				"type": "text",
				"text": map[string]any{"content": req.Title, "link": nil},
			},
		},
		"properties": req.Properties,
	}
	if req.Emoji != "" {
		payload["icon"] = map[string]any{"type": "emoji", "emoji": req.Emoji}
	}

	data, err := c.doRequest(ctx, http.MethodPost, c.baseURL+"/databases", payload)
	if err != nil {
		return "", err
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(data, &created); err != nil {
		return "", fmt.Errorf("failed to decode database response: %w", err)
	}
	c.logger.Info("Created Notion database", zap.String("database_id", created.ID), zap.String("title", req.Title))
	return created.ID, nil
}

func (c *httpClient) UpdateDatabase(ctx context.Context, databaseID string, properties map[string]any) error {
	payload := map[string]any{"properties": properties}
	_, err := c.doRequest(ctx, http.MethodPatch, c.baseURL+"/databases/"+databaseID, payload)
	return err
}
