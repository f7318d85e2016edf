package preferences

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"alpineair/internal/routes"
)

var (
	ErrInvalidPreferenceInput = errors.New("invalid preference input")
	ErrRouteNotFound          = errors.New("route not found")
)

const (
	MinTimeWindow = 1
	MaxTimeWindow = 24
	MinPassengers = 1
	MaxPassengers = 9
)

type Service interface {
	SavePreference(ctx context.Context, userID uuid.UUID, req SavePreferenceRequest) (*Preference, error)
	GetUserPreferences(ctx context.Context, userID uuid.UUID) ([]Preference, error)
}

type service struct {
	repo      Repository
	routeRepo routes.Repository
}

func NewService(repo Repository, routeRepo routes.Repository) Service {
	return &service{repo: repo, routeRepo: routeRepo}
}

func (s *service) SavePreference(ctx context.Context, userID uuid.UUID, req SavePreferenceRequest) (*Preference, error) {
	routeID, err := uuid.Parse(req.RouteID)
	if err != nil {
		return nil, ErrInvalidPreferenceInput
	}

	slot := SlotAnytime
	if req.TimeSlot != "" {
		slot = TimeSlot(strings.ToUpper(strings.TrimSpace(req.TimeSlot)))
		if !slot.IsValid() {
			return nil, ErrInvalidPreferenceInput
		}
	}
	if req.TimeWindow < MinTimeWindow || req.TimeWindow > MaxTimeWindow {
		return nil, ErrInvalidPreferenceInput
	}
	if req.Passengers < MinPassengers || req.Passengers > MaxPassengers {
		return nil, ErrInvalidPreferenceInput
	}

	if _, err := s.routeRepo.GetByID(ctx, routeID); err != nil {
		if errors.Is(err, routes.ErrRouteNotFound) {
			return nil, ErrRouteNotFound
		}
		return nil, err
	}

	pref := &Preference{
		ID:         uuid.New(),
		UserID:     userID,
		RouteID:    routeID,
		TimeSlot:   slot,
		TimeWindow: req.TimeWindow,
		Passengers: req.Passengers,
	}
	if err := s.repo.Upsert(ctx, pref); err != nil {
		return nil, err
	}

	return s.repo.GetByUserAndRoute(ctx, userID, routeID)
}

func (s *service) GetUserPreferences(ctx context.Context, userID uuid.UUID) ([]Preference, error) {
	prefs, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if prefs == nil {
		prefs = []Preference{}
	}
	return prefs, nil
}
