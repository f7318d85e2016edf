package preferences

import (
	"time"

	"github.com/google/uuid"

	"alpineair/internal/routes"
)

// TimeSlot names a preferred departure window for a saved route.
type TimeSlot string

const (
	SlotMorning   TimeSlot = "MORNING"
	SlotAfternoon TimeSlot = "AFTERNOON"
	SlotEvening   TimeSlot = "EVENING"
	SlotAnytime   TimeSlot = "ANYTIME"
)

func (t TimeSlot) IsValid() bool {
	switch t {
	case SlotMorning, SlotAfternoon, SlotEvening, SlotAnytime:
		return true
	}
	return false
}

// Preference is one user's saved search defaults for a route. A user holds
// at most one row per route; saving again overwrites the old values.
type Preference struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID `json:"-" gorm:"type:uuid;not null;uniqueIndex:idx_preferences_user_route"`
	RouteID       uuid.UUID `json:"route_id" gorm:"type:uuid;not null;uniqueIndex:idx_preferences_user_route"`
	TimeSlot      TimeSlot  `json:"time_slot" gorm:"type:varchar(20);default:'ANYTIME'"`
	TimeWindow    int       `json:"time_window" gorm:"not null;default:4"`
	Passengers    int       `json:"passengers" gorm:"not null;default:1"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Route *routes.Route `json:"route,omitempty" gorm:"foreignKey:RouteID"`
}

func (Preference) TableName() string {
	return "preferences"
}
