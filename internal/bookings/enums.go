package bookings

// MealPreference is a passenger's catering choice
type MealPreference string

const (
	MealRegular    MealPreference = "REGULAR"
	MealVegetarian MealPreference = "VEGETARIAN"
	MealVegan      MealPreference = "VEGAN"
	MealHalal      MealPreference = "HALAL"
	MealKosher     MealPreference = "KOSHER"
)

func (m MealPreference) IsValid() bool {
	switch m {
	case MealRegular, MealVegetarian, MealVegan, MealHalal, MealKosher:
		return true
	}
	return false
}

// SeatPreference is a passenger's optional seat assignment wish
type SeatPreference string

const (
	SeatWindow SeatPreference = "WINDOW"
	SeatAisle  SeatPreference = "AISLE"
	SeatMiddle SeatPreference = "MIDDLE"
)

func (s SeatPreference) IsValid() bool {
	switch s {
	case SeatWindow, SeatAisle, SeatMiddle:
		return true
	}
	return false
}
