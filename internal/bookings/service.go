package bookings

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"alpineair/internal/flights"
	"alpineair/pkg/logger"
)

var ErrInvalidBookingInput = errors.New("invalid booking input")

const (
	MinPassengers = 1
	MaxPassengers = 9
)

type Service interface {
	CreateBooking(ctx context.Context, userID uuid.UUID, req CreateBookingRequest) (*Booking, error)
	GetBooking(ctx context.Context, userID, bookingID uuid.UUID) (*Booking, error)
	GetUserBookings(ctx context.Context, userID uuid.UUID) ([]Booking, error)
	CancelBooking(ctx context.Context, userID, bookingID uuid.UUID) (*Booking, error)
}

type service struct {
	repo       Repository
	flightRepo flights.Repository
	publisher  EventPublisher
	logger     *logger.Logger
}

func NewService(repo Repository, flightRepo flights.Repository, publisher EventPublisher, log *logger.Logger) Service {
	return &service{
		repo:       repo,
		flightRepo: flightRepo,
		publisher:  publisher,
		logger:     log,
	}
}

func (s *service) CreateBooking(ctx context.Context, userID uuid.UUID, req CreateBookingRequest) (*Booking, error) {
	flightID, err := uuid.Parse(req.FlightID)
	if err != nil {
		return nil, ErrInvalidBookingInput
	}
	passengers, err := buildPassengers(req.Passengers)
	if err != nil {
		return nil, err
	}

	flight, err := s.flightRepo.GetByID(ctx, flightID)
	if err != nil {
		if errors.Is(err, flights.ErrFlightNotFound) {
			return nil, ErrFlightNotFound
		}
		return nil, err
	}
	if !flight.Status.IsBookable() {
		return nil, ErrFlightNotBookable
	}

	booking := &Booking{
		ID:         uuid.New(),
		UserID:     userID,
		FlightID:   flightID,
		Status:     StatusConfirmed,
		TotalPrice: flight.Price * float64(len(passengers)),
		Passengers: passengers,
	}

	if err := s.repo.CreateBookingWithSeatDecrement(ctx, booking, len(passengers)); err != nil {
		return nil, err
	}

	s.logger.LogBookingCreated(ctx, booking.ID.String(), flightID.String(), userID.String(), len(passengers))
	s.publish(ctx, EventBookingCreated, booking)

	return s.repo.GetByID(ctx, booking.ID)
}

func (s *service) GetBooking(ctx context.Context, userID, bookingID uuid.UUID) (*Booking, error) {
	booking, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	// Bookings owned by someone else look identical to missing ones.
	if booking.UserID != userID {
		return nil, ErrBookingNotFound
	}
	return booking, nil
}

func (s *service) GetUserBookings(ctx context.Context, userID uuid.UUID) ([]Booking, error) {
	return s.repo.GetUserBookings(ctx, userID)
}

func (s *service) CancelBooking(ctx context.Context, userID, bookingID uuid.UUID) (*Booking, error) {
	booking, err := s.repo.CancelBookingWithSeatRestore(ctx, bookingID, userID)
	if err != nil {
		return nil, err
	}

	s.logger.LogBookingCancelled(ctx, booking.ID.String(), booking.FlightID.String(), userID.String())
	s.publish(ctx, EventBookingCancelled, booking)

	return booking, nil
}

func (s *service) publish(ctx context.Context, eventType string, booking *Booking) {
	if s.publisher == nil {
		return
	}
	event := BookingEvent{
		Type:       eventType,
		BookingID:  booking.ID,
		FlightID:   booking.FlightID,
		UserID:     booking.UserID,
		Passengers: len(booking.Passengers),
		TotalPrice: booking.TotalPrice,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.PublishBookingEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish booking event", "type", eventType, "booking_id", booking.ID.String(), "error", err)
	}
}

func buildPassengers(inputs []PassengerInput) ([]Passenger, error) {
	if len(inputs) < MinPassengers || len(inputs) > MaxPassengers {
		return nil, ErrInvalidBookingInput
	}
	passengers := make([]Passenger, 0, len(inputs))
	for _, in := range inputs {
		name := strings.TrimSpace(in.Name)
		email := strings.TrimSpace(in.Email)
		if name == "" || email == "" || !strings.Contains(email, "@") {
			return nil, ErrInvalidBookingInput
		}

		meal := MealPreference(strings.ToUpper(strings.TrimSpace(in.MealPreference)))
		if meal == "" {
			meal = MealRegular
		}
		if !meal.IsValid() {
			return nil, ErrInvalidBookingInput
		}

		var seat SeatPreference
		if in.SeatPreference != "" {
			seat = SeatPreference(strings.ToUpper(strings.TrimSpace(in.SeatPreference)))
			if !seat.IsValid() {
				return nil, ErrInvalidBookingInput
			}
		}

		passengers = append(passengers, Passenger{
			ID:             uuid.New(),
			Name:           name,
			Email:          email,
			MealPreference: meal,
			SeatPreference: seat,
		})
	}
	return passengers, nil
}
