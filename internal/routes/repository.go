package routes

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrRouteNotFound = errors.New("route not found")

type Repository interface {
	GetAll(ctx context.Context) ([]Route, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Route, error)
	GetPopular(ctx context.Context, limit int) ([]Route, error)
	Search(ctx context.Context, query string) ([]Route, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetAll(ctx context.Context) ([]Route, error) {
	var routes []Route
	err := r.db.WithContext(ctx).
		Order("origin ASC, destination ASC").
		Find(&routes).Error
	return routes, err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Route, error) {
	var route Route
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&route).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRouteNotFound
		}
		return nil, err
	}
	return &route, nil
}

// GetPopular ranks routes by confirmed booking volume on their flights.
func (r *repository) GetPopular(ctx context.Context, limit int) ([]Route, error) {
	var routes []Route
	err := r.db.WithContext(ctx).
		Model(&Route{}).
		Select("routes.*, COUNT(bookings.id) AS booking_count").
		Joins("LEFT JOIN flights ON flights.route_id = routes.id").
		Joins("LEFT JOIN bookings ON bookings.flight_id = flights.id AND bookings.status = ?", "CONFIRMED").
		Group("routes.id").
		Order("booking_count DESC").
		Limit(limit).
		Find(&routes).Error
	return routes, err
}

func (r *repository) Search(ctx context.Context, query string) ([]Route, error) {
	var routes []Route
	pattern := "%" + query + "%"
	err := r.db.WithContext(ctx).
		Where("origin ILIKE ? OR destination ILIKE ?", pattern, pattern).
		Order("origin ASC").
		Find(&routes).Error
	return routes, err
}
