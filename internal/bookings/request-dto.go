package bookings

// PassengerInput is one traveler in a booking request
type PassengerInput struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	MealPreference string `json:"meal_preference,omitempty"`
	SeatPreference string `json:"seat_preference,omitempty"`
}

// CreateBookingRequest is the body of POST /bookings
type CreateBookingRequest struct {
	FlightID   string           `json:"flight_id" binding:"required,uuid"`
	Passengers []PassengerInput `json:"passengers" binding:"required,min=1,max=9,dive"`
}
