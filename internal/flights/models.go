package flights

import (
	"time"

	"alpineair/internal/routes"

	"github.com/google/uuid"
)

// Flight is one scheduled departure on a route. AvailableSeats is the only
// mutable field in the hot path; it is decremented by bookings through a
// conditional update and may never go below zero.
type Flight struct {
	ID             uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	RouteID        uuid.UUID `json:"route_id" gorm:"type:uuid;index;not null"`
	DepartureTime  time.Time `json:"departure_time" gorm:"index;not null"`
	ArrivalTime    time.Time `json:"arrival_time" gorm:"not null"`
	Price          float64   `json:"price" gorm:"not null"`
	Capacity       int       `json:"capacity" gorm:"not null"`
	AvailableSeats int       `json:"available_seats" gorm:"not null;check:available_seats >= 0"`
	Status         Status    `json:"status" gorm:"type:varchar(20);default:'SCHEDULED'"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relationships
	Route *routes.Route `json:"route,omitempty" gorm:"foreignKey:RouteID"`
}

// TableName sets the table name for Flight
func (Flight) TableName() string {
	return "flights"
}

// HasSeatsFor reports whether the flight can take a party of the given size
func (f *Flight) HasSeatsFor(passengers int) bool {
	return f.AvailableSeats >= passengers
}
