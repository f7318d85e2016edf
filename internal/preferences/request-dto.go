package preferences

// SavePreferenceRequest is the body of PUT /preferences
type SavePreferenceRequest struct {
	RouteID    string `json:"route_id" binding:"required,uuid"`
	TimeSlot   string `json:"time_slot,omitempty"`
	TimeWindow int    `json:"time_window" binding:"required"`
	Passengers int    `json:"passengers" binding:"required"`
}
