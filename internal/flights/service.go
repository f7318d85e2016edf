package flights

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"alpineair/internal/shared/constants"
	"alpineair/pkg/cache"
	"alpineair/pkg/logger"

	"github.com/google/uuid"
)

// Service implements flight search with a cache-aside layer in front of the
// store. Cached entries expire on their TTL only; booking a seat does not
// invalidate them, so a result may overstate availability for up to the TTL.
// The booking path re-checks seats authoritatively, so staleness here can
// cost a wasted booking attempt but never an oversold flight.
type Service interface {
	SearchFlights(ctx context.Context, req SearchRequest) ([]Flight, error)
	GetFlightByID(ctx context.Context, id uuid.UUID) (*Flight, error)
}

type service struct {
	repo         Repository
	cacheService cache.Service
}

func NewService(repo Repository, cacheService cache.Service) Service {
	return &service{
		repo:         repo,
		cacheService: cacheService,
	}
}

// SearchFlights runs the cache-aside search flow:
// validate, consult the cache, fall back to the store on a miss, repopulate.
func (s *service) SearchFlights(ctx context.Context, req SearchRequest) ([]Flight, error) {
	criteria, err := req.Validate()
	if err != nil {
		return nil, err
	}
	criteria.Origin = strings.ToUpper(criteria.Origin)
	criteria.Destination = strings.ToUpper(criteria.Destination)

	cacheKey := constants.BuildFlightSearchKey(
		criteria.Origin, criteria.Destination, criteria.DepartureDate, criteria.Passengers)

	appLogger := logger.GetDefault()

	if s.cacheService != nil {
		var cached []Flight
		cacheErr := s.cacheService.Get(ctx, cacheKey, &cached)
		if cacheErr == nil {
			appLogger.LogFlightSearch(ctx, criteria.Origin, criteria.Destination, true, len(cached))
			return cached, nil
		}
		if !errors.Is(cacheErr, cache.ErrCacheMiss) {
			// A broken cache degrades to the store; it never fails a search.
			appLogger.Warn("search cache get failed", "error", cacheErr)
		}
	}

	flights, err := s.repo.Search(ctx, *criteria)
	if err != nil {
		return nil, fmt.Errorf("flight search query failed: %w", err)
	}
	if flights == nil {
		flights = []Flight{}
	}

	if s.cacheService != nil {
		if err := s.cacheService.Set(ctx, cacheKey, flights, constants.TTL_FLIGHT_SEARCH); err != nil {
			appLogger.Warn("search cache set failed", "error", err)
		}
	}

	appLogger.LogFlightSearch(ctx, criteria.Origin, criteria.Destination, false, len(flights))
	return flights, nil
}

func (s *service) GetFlightByID(ctx context.Context, id uuid.UUID) (*Flight, error) {
	return s.repo.GetByID(ctx, id)
}
