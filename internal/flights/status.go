package flights

type Status string

const (
	StatusScheduled Status = "SCHEDULED"
	StatusDelayed   Status = "DELAYED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

// IsValid checks if the flight status is valid
func (s Status) IsValid() bool {
	switch s {
	case StatusScheduled, StatusDelayed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// IsBookable reports whether new bookings may be taken on a flight in this
// state. Delayed flights still fly, so they remain bookable.
func (s Status) IsBookable() bool {
	return s == StatusScheduled || s == StatusDelayed
}
