package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alpineair/internal/flights"
)

var (
	ErrBookingNotFound       = errors.New("booking not found")
	ErrFlightNotFound        = errors.New("flight not found")
	ErrFlightNotBookable     = errors.New("flight is not open for booking")
	ErrInsufficientSeats     = errors.New("not enough seats available")
	ErrBookingNotCancellable = errors.New("booking cannot be cancelled")
)

type Repository interface {
	CreateBookingWithSeatDecrement(ctx context.Context, booking *Booking, seats int) error
	GetByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	GetUserBookings(ctx context.Context, userID uuid.UUID) ([]Booking, error)
	CancelBookingWithSeatRestore(ctx context.Context, bookingID, userID uuid.UUID) (*Booking, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// CreateBookingWithSeatDecrement reserves seats and persists the booking in a
// single transaction. The seat reservation is a conditional update so two
// concurrent requests can never both claim the last seats.
func (r *repository) CreateBookingWithSeatDecrement(ctx context.Context, booking *Booking, seats int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&flights.Flight{}).
			Where("id = ? AND available_seats >= ? AND status IN ?",
				booking.FlightID, seats, []string{string(flights.StatusScheduled), string(flights.StatusDelayed)}).
			UpdateColumn("available_seats", gorm.Expr("available_seats - ?", seats))
		if result.Error != nil {
			return fmt.Errorf("failed to reserve seats: %w", result.Error)
		}

		if result.RowsAffected == 0 {
			// Nothing matched: figure out which precondition failed.
			var flight flights.Flight
			if err := tx.Select("id", "available_seats", "status").First(&flight, "id = ?", booking.FlightID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrFlightNotFound
				}
				return fmt.Errorf("failed to load flight: %w", err)
			}
			if !flight.Status.IsBookable() {
				return ErrFlightNotBookable
			}
			return ErrInsufficientSeats
		}

		if err := tx.Create(booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}
		return nil
	})
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	var booking Booking
	err := r.db.WithContext(ctx).
		Preload("Passengers").
		Preload("Flight").
		Preload("Flight.Route").
		First(&booking, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return &booking, nil
}

func (r *repository) GetUserBookings(ctx context.Context, userID uuid.UUID) ([]Booking, error) {
	var list []Booking
	err := r.db.WithContext(ctx).
		Preload("Passengers").
		Preload("Flight").
		Preload("Flight.Route").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return list, nil
}

// CancelBookingWithSeatRestore flips a confirmed booking to cancelled and
// returns its seats to the flight. The status flip is conditional so a
// double cancel can never restore seats twice.
func (r *repository) CancelBookingWithSeatRestore(ctx context.Context, bookingID, userID uuid.UUID) (*Booking, error) {
	var booking Booking
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Passengers").First(&booking, "id = ? AND user_id = ?", bookingID, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("failed to load booking: %w", err)
		}

		result := tx.Model(&Booking{}).
			Where("id = ? AND status = ?", booking.ID, StatusConfirmed).
			Updates(map[string]interface{}{
				"status":       StatusCancelled,
				"cancelled_at": gorm.Expr("NOW()"),
			})
		if result.Error != nil {
			return fmt.Errorf("failed to cancel booking: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrBookingNotCancellable
		}

		seats := len(booking.Passengers)
		if err := tx.Model(&flights.Flight{}).
			Where("id = ?", booking.FlightID).
			UpdateColumn("available_seats", gorm.Expr("available_seats + ?", seats)).Error; err != nil {
			return fmt.Errorf("failed to restore seats: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, booking.ID)
}
