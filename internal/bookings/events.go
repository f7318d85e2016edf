package bookings

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	EventBookingCreated   = "booking.created"
	EventBookingCancelled = "booking.cancelled"
)

// BookingEvent is published to the booking events topic after a booking
// changes state.
type BookingEvent struct {
	Type       string    `json:"type"`
	BookingID  uuid.UUID `json:"booking_id"`
	FlightID   uuid.UUID `json:"flight_id"`
	UserID     uuid.UUID `json:"user_id"`
	Passengers int       `json:"passengers"`
	TotalPrice float64   `json:"total_price"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher delivers booking events to downstream consumers. Publishing
// is best effort; failures must not fail the booking itself.
type EventPublisher interface {
	PublishBookingEvent(ctx context.Context, event BookingEvent) error
}
