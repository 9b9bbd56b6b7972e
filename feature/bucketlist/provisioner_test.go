package bucketlist

import (
	"context"
	"testing"

	"github.com/dorsabag/bucketListBackendDeploy/core/notion"
	"github.com/dorsabag/bucketListBackendDeploy/core/notion/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestEnsureReturnsConfiguredID(t *testing.T) {
	mockClient := new(mocks.Client)
	prov := NewProvisioner(mockClient, TablesConfig{LiveShows: "db-shows"}, "", zap.NewNop())

	id, err := prov.Ensure(context.Background(), CategoryLiveShows)
	require.NoError(t, err)
	assert.Equal(t, "db-shows", id)
	mockClient.AssertNotCalled(t, "CreateDatabase")
}

func TestEnsureLegacyMissingID(t *testing.T) {
	mockClient := new(mocks.Client)
	prov := NewProvisioner(mockClient, TablesConfig{}, "parent-1", zap.NewNop())

	_, err := prov.Ensure(context.Background(), CategoryPodcasts)
	var unknownErr *UnknownCategoryError
	require.ErrorAs(t, err, &unknownErr)
}

func TestEnsureCreatesAndAdoptsDatabase(t *testing.T) {
	mockClient := new(mocks.Client)
	prov := NewProvisioner(mockClient, TablesConfig{}, "parent-1", zap.NewNop())

	mockClient.On("CreateDatabase", mock.Anything, mock.MatchedBy(func(req *notion.DatabaseRequest) bool {
		return req.ParentPageID == "parent-1" && req.Title == "Books" && req.Properties["Author"] != nil
	})).Return("db-books", nil).Once()

	id, err := prov.Ensure(context.Background(), CategoryBooks)
	require.NoError(t, err)
	assert.Equal(t, "db-books", id)

	// Adopted: the second call resolves without another create.
	id, err = prov.Ensure(context.Background(), CategoryBooks)
	require.NoError(t, err)
	assert.Equal(t, "db-books", id)
	mockClient.AssertExpectations(t)
}

func TestEnsureGenericWithoutParentPage(t *testing.T) {
	mockClient := new(mocks.Client)
	prov := NewProvisioner(mockClient, TablesConfig{}, "", zap.NewNop())

	id, err := prov.Ensure(context.Background(), CategoryMovies)
	require.NoError(t, err)
	assert.Equal(t, "", id)
	mockClient.AssertNotCalled(t, "CreateDatabase")
}

func TestInitializeAllIsolatesFailures(t *testing.T) {
	mockClient := new(mocks.Client)
	prov := NewProvisioner(mockClient, TablesConfig{Books: "db-books"}, "parent-1", zap.NewNop())

	mockClient.On("CreateDatabase", mock.Anything, mock.MatchedBy(func(req *notion.DatabaseRequest) bool {
		return req.Title == "Movies"
	})).Return("", assert.AnError).Once()

	result := prov.InitializeAll(context.Background())

	assert.Equal(t, []Category{CategoryBooks}, result.Existing)
	assert.Empty(t, result.Created)
	assert.Contains(t, result.Errors, CategoryMovies)
	assert.False(t, result.OK())
}

func TestInitializeAllWithoutParentPage(t *testing.T) {
	mockClient := new(mocks.Client)
	prov := NewProvisioner(mockClient, TablesConfig{}, "", zap.NewNop())

	result := prov.InitializeAll(context.Background())

	assert.Equal(t, "parent page id not configured", result.Errors[CategoryBooks])
	assert.Equal(t, "parent page id not configured", result.Errors[CategoryMovies])
	assert.False(t, result.OK())
}

func TestCategoryFor(t *testing.T) {
	prov := NewProvisioner(new(mocks.Client), TablesConfig{TVShows: "db-tv"}, "", zap.NewNop())

	c, ok := prov.CategoryFor("db-tv")
	require.True(t, ok)
	assert.Equal(t, CategoryTVShows, c)

	_, ok = prov.CategoryFor("db-other")
	assert.False(t, ok)

	_, ok = prov.CategoryFor("")
	assert.False(t, ok)
}
