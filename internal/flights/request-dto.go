package flights

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidSearchInput = errors.New("invalid search input")

const (
	MinPassengers = 1
	MaxPassengers = 9
)

// SearchRequest carries the raw query parameters of a flight search
type SearchRequest struct {
	Origin        string `form:"origin"`
	Destination   string `form:"destination"`
	DepartureDate string `form:"departureDate"`
	ReturnDate    string `form:"returnDate"`
	Passengers    int    `form:"passengers"`
}

// SearchCriteria is the validated, normalized form of a search request.
// DepartureDate is truncated to midnight UTC; the query window covers that
// whole day.
type SearchCriteria struct {
	Origin        string
	Destination   string
	DepartureDate time.Time
	Passengers    int
}

// Validate normalizes the request into criteria, failing before any cache
// or store access when the input is malformed.
func (r SearchRequest) Validate() (*SearchCriteria, error) {
	if r.Origin == "" {
		return nil, fmt.Errorf("%w: origin is required", ErrInvalidSearchInput)
	}
	if r.Destination == "" {
		return nil, fmt.Errorf("%w: destination is required", ErrInvalidSearchInput)
	}
	if r.Passengers < MinPassengers || r.Passengers > MaxPassengers {
		return nil, fmt.Errorf("%w: passengers must be between %d and %d", ErrInvalidSearchInput, MinPassengers, MaxPassengers)
	}

	departureDate, err := time.ParseInLocation("2006-01-02", r.DepartureDate, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: departureDate must be YYYY-MM-DD", ErrInvalidSearchInput)
	}

	if r.ReturnDate != "" {
		if _, err := time.ParseInLocation("2006-01-02", r.ReturnDate, time.UTC); err != nil {
			return nil, fmt.Errorf("%w: returnDate must be YYYY-MM-DD", ErrInvalidSearchInput)
		}
	}

	return &SearchCriteria{
		Origin:        r.Origin,
		Destination:   r.Destination,
		DepartureDate: departureDate,
		Passengers:    r.Passengers,
	}, nil
}
