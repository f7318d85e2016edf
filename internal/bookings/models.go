package bookings

import (
	"time"

	"alpineair/internal/flights"
	"alpineair/internal/users"

	"github.com/google/uuid"
)

// Booking ties a user to a flight with the party that travels. Passengers
// are owned exclusively by their booking: they are created with it and
// deleted with it, never persisted on their own.
type Booking struct {
	ID          uuid.UUID  `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	UserID      uuid.UUID  `json:"user_id" gorm:"type:uuid;index;not null"`
	FlightID    uuid.UUID  `json:"flight_id" gorm:"type:uuid;index;not null"`
	Status      Status     `json:"status" gorm:"type:varchar(20);default:'CONFIRMED'"`
	TotalPrice  float64    `json:"total_price" gorm:"not null"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`

	// Relationships
	User       *users.User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Flight     *flights.Flight `json:"flight,omitempty" gorm:"foreignKey:FlightID"`
	Passengers []Passenger     `json:"passengers,omitempty" gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE;"`
}

// Passenger is one traveler on a booking
type Passenger struct {
	ID             uuid.UUID      `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	BookingID      uuid.UUID      `json:"booking_id" gorm:"type:uuid;index;not null"`
	Name           string         `json:"name" gorm:"not null"`
	Email          string         `json:"email" gorm:"not null"`
	MealPreference MealPreference `json:"meal_preference" gorm:"type:varchar(20);default:'REGULAR'"`
	SeatPreference SeatPreference `json:"seat_preference,omitempty" gorm:"type:varchar(10)"`
	CreatedAt      time.Time      `json:"created_at"`
}

// TableName sets the table name for Booking
func (Booking) TableName() string {
	return "bookings"
}

// TableName sets the table name for Passenger
func (Passenger) TableName() string {
	return "passengers"
}

// IsConfirmed reports whether the booking is active
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// IsCancelled reports whether the booking was cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}
