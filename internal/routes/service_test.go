package routes

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"alpineair/pkg/cache"
)

// MockRepository is a mock implementation of Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetAll(ctx context.Context) ([]Route, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Route), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id uuid.UUID) (*Route, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Route), args.Error(1)
}

func (m *MockRepository) GetPopular(ctx context.Context, limit int) ([]Route, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Route), args.Error(1)
}

func (m *MockRepository) Search(ctx context.Context, query string) ([]Route, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Route), args.Error(1)
}

type fakeCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (f *fakeCache) Get(ctx context.Context, key string, dest interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.entries[key]
	if !ok {
		return cache.ErrCacheMiss
	}
	return json.Unmarshal(data, dest)
}

func (f *fakeCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.entries[key] = data
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, key string) error            { return nil }
func (f *fakeCache) DeletePattern(ctx context.Context, pattern string) error { return nil }
func (f *fakeCache) Exists(ctx context.Context, key string) bool             { return false }
func (f *fakeCache) Ping(ctx context.Context) error                          { return nil }

func TestGetAllRoutes_SecondCallServedFromCache(t *testing.T) {
	mockRepo := &MockRepository{}
	fake := newFakeCache()
	svc := NewService(mockRepo, fake)

	routes := []Route{{ID: uuid.New(), Origin: "JFK", Destination: "ZRH", BasePrice: 849}}
	mockRepo.On("GetAll", mock.Anything).Return(routes, nil)

	first, err := svc.GetAllRoutes(context.Background())
	assert.NoError(t, err)
	assert.Len(t, first, 1)

	second, err := svc.GetAllRoutes(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, first[0].ID, second[0].ID)

	mockRepo.AssertNumberOfCalls(t, "GetAll", 1)
}

func TestGetRouteByID_CachesDetail(t *testing.T) {
	mockRepo := &MockRepository{}
	fake := newFakeCache()
	svc := NewService(mockRepo, fake)

	route := &Route{ID: uuid.New(), Origin: "LHR", Destination: "ZRH", BasePrice: 199}
	mockRepo.On("GetByID", mock.Anything, route.ID).Return(route, nil)

	_, err := svc.GetRouteByID(context.Background(), route.ID)
	assert.NoError(t, err)

	got, err := svc.GetRouteByID(context.Background(), route.ID)
	assert.NoError(t, err)
	assert.Equal(t, route.ID, got.ID)

	mockRepo.AssertNumberOfCalls(t, "GetByID", 1)
}

func TestGetRouteSuggestions_EmptyQueryListsAll(t *testing.T) {
	mockRepo := &MockRepository{}
	svc := NewService(mockRepo, nil)

	all := []Route{{ID: uuid.New()}, {ID: uuid.New()}}
	mockRepo.On("GetAll", mock.Anything).Return(all, nil)

	got, err := svc.GetRouteSuggestions(context.Background(), "   ")

	assert.NoError(t, err)
	assert.Len(t, got, 2)
	mockRepo.AssertNotCalled(t, "Search")
}

func TestGetPopularRoutes_UsesDefaultLimit(t *testing.T) {
	mockRepo := &MockRepository{}
	svc := NewService(mockRepo, nil)

	mockRepo.On("GetPopular", mock.Anything, defaultPopularLimit).Return([]Route{}, nil)

	_, err := svc.GetPopularRoutes(context.Background())

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
