package directory

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/travelbot-console/internal/types"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// MockFetcher is a mock implementation of Fetcher.
type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) Cities(ctx context.Context) ([]types.City, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.City), args.Error(1)
}

// MockResolver is a mock implementation of Resolver.
type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) ResolveImageURL(imagePath string) (string, error) {
	args := m.Called(imagePath)
	return args.String(0), args.Error(1)
}

func TestLoadReplacesWholeCache(t *testing.T) {
	dir := NewCityDirectory(nil, nil, testLogger())
	ctx := context.Background()

	dir.Load(ctx, []types.City{{Code: "osaka", Label: "Osaka"}})

	_, err := dir.Lookup("seoul")
	assert.ErrorIs(t, err, types.ErrNotFound)

	dir.Load(ctx, []types.City{{Code: "seoul", Label: "Seoul"}})

	_, err = dir.Lookup("osaka")
	assert.ErrorIs(t, err, types.ErrNotFound, "stale entries must not survive a reload")

	city, err := dir.Lookup("seoul")
	require.NoError(t, err)
	assert.Equal(t, "Seoul", city.Label)
}

func TestLookupIsCaseSensitive(t *testing.T) {
	dir := NewCityDirectory(nil, nil, testLogger())
	dir.Load(context.Background(), []types.City{{Code: "osaka", Label: "Osaka"}})

	_, err := dir.Lookup("Osaka")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestCodesPreserveLoadOrder(t *testing.T) {
	dir := NewCityDirectory(nil, nil, testLogger())
	dir.Load(context.Background(), []types.City{
		{Code: "osaka"}, {Code: "seoul"}, {Code: "kyoto"},
	})

	assert.Equal(t, []string{"osaka", "seoul", "kyoto"}, dir.Codes())
}

func TestRefreshLoadsOnSuccess(t *testing.T) {
	fetcher := new(MockFetcher)
	fetcher.On("Cities", mock.Anything).Return([]types.City{{Code: "osaka", Label: "Osaka"}}, nil)

	dir := NewCityDirectory(fetcher, nil, testLogger())
	require.NoError(t, dir.Refresh(context.Background()))

	city, err := dir.Lookup("osaka")
	require.NoError(t, err)
	assert.Equal(t, "Osaka", city.Label)
	fetcher.AssertExpectations(t)
}

func TestRefreshFailureLeavesDirectoryUntouched(t *testing.T) {
	fetcher := new(MockFetcher)
	fetcher.On("Cities", mock.Anything).Return(nil, errors.New("connection refused"))

	dir := NewCityDirectory(fetcher, nil, testLogger())
	dir.Load(context.Background(), []types.City{{Code: "osaka", Label: "Osaka"}})

	err := dir.Refresh(context.Background())
	assert.Error(t, err)

	city, lookupErr := dir.Lookup("osaka")
	require.NoError(t, lookupErr, "failed refresh must not clear the cache")
	assert.Equal(t, "Osaka", city.Label)
}

func TestImageURLHidesUnresolvableImages(t *testing.T) {
	resolver := new(MockResolver)
	resolver.On("ResolveImageURL", "/static/cities/osaka.png").
		Return("", types.ErrImageUnresolvable)

	dir := NewCityDirectory(nil, resolver, testLogger())

	url := dir.ImageURL(types.City{Code: "osaka", ImagePath: "/static/cities/osaka.png"})
	assert.Empty(t, url)
}

func TestImageURLResolvesAgainstBackend(t *testing.T) {
	resolver := new(MockResolver)
	resolver.On("ResolveImageURL", "/static/cities/seoul.jpg").
		Return("http://localhost:8000/static/cities/seoul.jpg", nil)

	dir := NewCityDirectory(nil, resolver, testLogger())

	url := dir.ImageURL(types.City{Code: "seoul", ImagePath: "/static/cities/seoul.jpg"})
	assert.Equal(t, "http://localhost:8000/static/cities/seoul.jpg", url)
}

func TestImageURLWithoutResolverOrPath(t *testing.T) {
	dir := NewCityDirectory(nil, nil, testLogger())
	assert.Empty(t, dir.ImageURL(types.City{Code: "osaka", ImagePath: "/x.png"}))

	resolver := new(MockResolver)
	dir = NewCityDirectory(nil, resolver, testLogger())
	assert.Empty(t, dir.ImageURL(types.City{Code: "osaka"}))
	resolver.AssertNotCalled(t, "ResolveImageURL", mock.Anything)
}
