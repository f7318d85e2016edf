package routes

import (
	"time"

	"github.com/google/uuid"
)

// Route is immutable reference data: a city pair the carrier serves, with
// the base economics every flight on it inherits.
type Route struct {
	ID             uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	Origin         string    `json:"origin" gorm:"type:varchar(8);not null;index:idx_routes_city_pair,unique"`
	Destination    string    `json:"destination" gorm:"type:varchar(8);not null;index:idx_routes_city_pair,unique"`
	BasePrice      float64   `json:"base_price" gorm:"not null"`
	FlightDuration int       `json:"flight_duration" gorm:"not null"` // minutes
	Distance       int       `json:"distance"`                        // kilometers
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TableName sets the table name for Route
func (Route) TableName() string {
	return "routes"
}
