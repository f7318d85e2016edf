package flights

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrFlightNotFound = errors.New("flight not found")

type Repository interface {
	Search(ctx context.Context, criteria SearchCriteria) ([]Flight, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Flight, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Search returns flights on the requested city pair departing within the
// requested day that can still seat the whole party, soonest first.
func (r *repository) Search(ctx context.Context, criteria SearchCriteria) ([]Flight, error) {
	dayStart := criteria.DepartureDate
	dayEnd := dayStart.Add(24 * time.Hour)

	var flights []Flight
	err := r.db.WithContext(ctx).
		Joins("Route").
		Where("\"Route\".origin = ? AND \"Route\".destination = ?", criteria.Origin, criteria.Destination).
		Where("flights.departure_time >= ? AND flights.departure_time < ?", dayStart, dayEnd).
		Where("flights.available_seats >= ?", criteria.Passengers).
		Order("flights.departure_time ASC").
		Find(&flights).Error
	if err != nil {
		return nil, err
	}
	return flights, nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Flight, error) {
	var flight Flight
	err := r.db.WithContext(ctx).
		Preload("Route").
		Where("flights.id = ?", id).
		First(&flight).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFlightNotFound
		}
		return nil, err
	}
	return &flight, nil
}
