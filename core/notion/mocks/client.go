package mocks

import (
	"context"

	"github.com/dorsabag/bucketListBackendDeploy/core/notion"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of notion.Client
type Client struct {
	mock.Mock
}

func (m *Client) QueryDatabase(ctx context.Context, databaseID string, limit int) (*notion.QueryResult, error) {
	args := m.Called(ctx, databaseID, limit)
	if res, ok := args.Get(0).(*notion.QueryResult); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) CreatePage(ctx context.Context, databaseID string, properties map[string]any) (*notion.Record, error) {
	args := m.Called(ctx, databaseID, properties)
	if rec, ok := args.Get(0).(*notion.Record); ok {
		return rec, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) UpdatePage(ctx context.Context, pageID string, properties map[string]any) (*notion.Record, error) {
	args := m.Called(ctx, pageID, properties)
	if rec, ok := args.Get(0).(*notion.Record); ok {
		return rec, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) ArchivePage(ctx context.Context, pageID string) error {
	args := m.Called(ctx, pageID)
	return args.Error(0)
}

func (m *Client) GetPage(ctx context.Context, pageID string) (*notion.Record, error) {
	args := m.Called(ctx, pageID)
	if rec, ok := args.Get(0).(*notion.Record); ok {
		return rec, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) CreateDatabase(ctx context.Context, req *notion.DatabaseRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *Client) UpdateDatabase(ctx context.Context, databaseID string, properties map[string]any) error {
	args := m.Called(ctx, databaseID, properties)
	return args.Error(0)
}
