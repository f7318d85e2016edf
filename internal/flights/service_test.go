package flights

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"alpineair/internal/shared/constants"
	"alpineair/pkg/cache"
)

// MockRepository is a mock implementation of Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Search(ctx context.Context, criteria SearchCriteria) ([]Flight, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Flight), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id uuid.UUID) (*Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Flight), args.Error(1)
}

// fakeCache is an in-memory stand-in for the Redis cache. It stores JSON
// blobs like the real one so type round-trips behave identically.
type fakeCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	gets    int
	sets    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (f *fakeCache) Get(ctx context.Context, key string, dest interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gets++
	data, ok := f.entries[key]
	if !ok {
		return cache.ErrCacheMiss
	}
	return json.Unmarshal(data, dest)
}

func (f *fakeCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sets++
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.entries[key] = data
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.entries, key)
	return nil
}

func (f *fakeCache) DeletePattern(ctx context.Context, pattern string) error { return nil }
func (f *fakeCache) Exists(ctx context.Context, key string) bool            { return false }
func (f *fakeCache) Ping(ctx context.Context) error                         { return nil }

func validRequest() SearchRequest {
	return SearchRequest{
		Origin:        "JFK",
		Destination:   "ZRH",
		DepartureDate: "2026-09-15",
		Passengers:    2,
	}
}

func TestSearchFlights_CacheMissQueriesStoreAndPopulates(t *testing.T) {
	mockRepo := &MockRepository{}
	fake := newFakeCache()
	svc := NewService(mockRepo, fake)

	results := []Flight{{ID: uuid.New(), Price: 849, AvailableSeats: 10}}
	mockRepo.On("Search", mock.Anything, mock.AnythingOfType("flights.SearchCriteria")).Return(results, nil)

	flights, err := svc.SearchFlights(context.Background(), validRequest())

	assert.NoError(t, err)
	assert.Len(t, flights, 1)
	assert.Equal(t, 1, fake.sets)
	mockRepo.AssertNumberOfCalls(t, "Search", 1)

	expectedDate, _ := time.ParseInLocation("2006-01-02", "2026-09-15", time.UTC)
	key := constants.BuildFlightSearchKey("JFK", "ZRH", expectedDate, 2)
	_, ok := fake.entries[key]
	assert.True(t, ok, "miss should populate the canonical key")
}

func TestSearchFlights_CacheHitSkipsStore(t *testing.T) {
	mockRepo := &MockRepository{}
	fake := newFakeCache()
	svc := NewService(mockRepo, fake)

	req := validRequest()
	expectedDate, _ := time.ParseInLocation("2006-01-02", req.DepartureDate, time.UTC)
	key := constants.BuildFlightSearchKey(req.Origin, req.Destination, expectedDate, req.Passengers)
	cached := []Flight{{ID: uuid.New(), Price: 799}}
	data, _ := json.Marshal(cached)
	fake.entries[key] = data

	flights, err := svc.SearchFlights(context.Background(), req)

	assert.NoError(t, err)
	assert.Len(t, flights, 1)
	assert.Equal(t, cached[0].ID, flights[0].ID)
	mockRepo.AssertNotCalled(t, "Search")
}

func TestSearchFlights_LowercaseInputSharesCacheEntry(t *testing.T) {
	mockRepo := &MockRepository{}
	fake := newFakeCache()
	svc := NewService(mockRepo, fake)

	mockRepo.On("Search", mock.Anything, mock.AnythingOfType("flights.SearchCriteria")).Return([]Flight{}, nil)

	req := validRequest()
	req.Origin = "jfk"
	req.Destination = "zrh"
	_, err := svc.SearchFlights(context.Background(), req)
	assert.NoError(t, err)

	// Same search with canonical casing must hit the entry just written.
	_, err = svc.SearchFlights(context.Background(), validRequest())
	assert.NoError(t, err)
	mockRepo.AssertNumberOfCalls(t, "Search", 1)
}

func TestSearchFlights_PassengerCountIsPartOfTheKey(t *testing.T) {
	mockRepo := &MockRepository{}
	fake := newFakeCache()
	svc := NewService(mockRepo, fake)

	mockRepo.On("Search", mock.Anything, mock.AnythingOfType("flights.SearchCriteria")).Return([]Flight{}, nil)

	req := validRequest()
	_, err := svc.SearchFlights(context.Background(), req)
	assert.NoError(t, err)

	req.Passengers = 4
	_, err = svc.SearchFlights(context.Background(), req)
	assert.NoError(t, err)

	// Different party sizes filter differently, so neither may reuse the
	// other's entry.
	mockRepo.AssertNumberOfCalls(t, "Search", 2)
	assert.Len(t, fake.entries, 2)
}

func TestSearchFlights_InvalidInputFailsBeforeCacheAndStore(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SearchRequest)
	}{
		{"missing origin", func(r *SearchRequest) { r.Origin = "" }},
		{"missing destination", func(r *SearchRequest) { r.Destination = "" }},
		{"zero passengers", func(r *SearchRequest) { r.Passengers = 0 }},
		{"too many passengers", func(r *SearchRequest) { r.Passengers = 10 }},
		{"malformed date", func(r *SearchRequest) { r.DepartureDate = "15-09-2026" }},
		{"malformed return date", func(r *SearchRequest) { r.ReturnDate = "next week" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &MockRepository{}
			fake := newFakeCache()
			svc := NewService(mockRepo, fake)

			req := validRequest()
			tt.mutate(&req)

			_, err := svc.SearchFlights(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidSearchInput)
			assert.Equal(t, 0, fake.gets)
			mockRepo.AssertNotCalled(t, "Search")
		})
	}
}

func TestSearchFlights_EmptyResultIsNotAnError(t *testing.T) {
	mockRepo := &MockRepository{}
	fake := newFakeCache()
	svc := NewService(mockRepo, fake)

	mockRepo.On("Search", mock.Anything, mock.AnythingOfType("flights.SearchCriteria")).Return([]Flight(nil), nil)

	flights, err := svc.SearchFlights(context.Background(), validRequest())

	assert.NoError(t, err)
	assert.NotNil(t, flights)
	assert.Empty(t, flights)
	// The empty list is cached too; absence of flights is a valid answer.
	assert.Equal(t, 1, fake.sets)
}

func TestSearchFlights_NilCacheDegradesToStore(t *testing.T) {
	mockRepo := &MockRepository{}
	svc := NewService(mockRepo, nil)

	mockRepo.On("Search", mock.Anything, mock.AnythingOfType("flights.SearchCriteria")).Return([]Flight{}, nil)

	_, err := svc.SearchFlights(context.Background(), validRequest())
	assert.NoError(t, err)
	mockRepo.AssertNumberOfCalls(t, "Search", 1)
}
