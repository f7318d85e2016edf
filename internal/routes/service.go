package routes

import (
	"context"
	"errors"
	"strings"

	"alpineair/internal/shared/constants"
	"alpineair/pkg/cache"
	"alpineair/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const defaultPopularLimit = 5

// Service exposes route reference data. Listings and details are cached
// aggressively since routes never change after creation.
type Service interface {
	GetAllRoutes(ctx context.Context) ([]Route, error)
	GetRouteByID(ctx context.Context, id uuid.UUID) (*Route, error)
	GetPopularRoutes(ctx context.Context) ([]Route, error)
	GetRouteSuggestions(ctx context.Context, query string) ([]Route, error)
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

func (s *service) GetAllRoutes(ctx context.Context) ([]Route, error) {
	if s.cacheService != nil {
		var cached []Route
		if err := s.cacheService.Get(ctx, constants.CACHE_KEY_ROUTES_LIST, &cached); err == nil {
			return cached, nil
		}
	}

	routes, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.cacheService != nil {
		if err := s.cacheService.Set(ctx, constants.CACHE_KEY_ROUTES_LIST, routes, constants.TTL_ROUTE_LIST); err != nil {
			logger.GetDefault().Warn("route list cache set failed", "error", err)
		}
	}

	return routes, nil
}

func (s *service) GetRouteByID(ctx context.Context, id uuid.UUID) (*Route, error) {
	cacheKey := constants.BuildRouteDetailKey(id.String())

	if s.cacheService != nil {
		var cached Route
		if err := s.cacheService.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	route, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRouteNotFound
		}
		return nil, err
	}

	if s.cacheService != nil {
		if err := s.cacheService.Set(ctx, cacheKey, route, constants.TTL_ROUTE_DETAIL); err != nil {
			logger.GetDefault().Warn("route detail cache set failed", "error", err)
		}
	}

	return route, nil
}

func (s *service) GetPopularRoutes(ctx context.Context) ([]Route, error) {
	return s.repo.GetPopular(ctx, defaultPopularLimit)
}

func (s *service) GetRouteSuggestions(ctx context.Context, query string) ([]Route, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.GetAllRoutes(ctx)
	}
	return s.repo.Search(ctx, query)
}
