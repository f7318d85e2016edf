package database

import (
	"alpineair/internal/bookings"
	"alpineair/internal/flights"
	"alpineair/internal/preferences"
	"alpineair/internal/routes"
	"alpineair/internal/users"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&routes.Route{},
		&flights.Flight{},
		&bookings.Booking{},
		&bookings.Passenger{},
		&preferences.Preference{},
	)
}
