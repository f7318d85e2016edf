package flights

import (
	"errors"
	"net/http"
	"strconv"

	"alpineair/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// SearchFlights handles GET /api/v1/search/flights
func (c *Controller) SearchFlights(ctx *gin.Context) {
	passengers, err := strconv.Atoi(ctx.DefaultQuery("passengers", "1"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid search parameters",
			nil, gin.H{"passengers": "must be an integer"})
		return
	}

	req := SearchRequest{
		Origin:        ctx.Query("origin"),
		Destination:   ctx.Query("destination"),
		DepartureDate: ctx.Query("departureDate"),
		ReturnDate:    ctx.Query("returnDate"),
		Passengers:    passengers,
	}

	flights, err := c.service.SearchFlights(ctx.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidSearchInput) {
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid search parameters",
				nil, gin.H{"details": err.Error()})
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Flight search failed", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Flights retrieved successfully",
		gin.H{"flights": flights}, nil)
}

// GetFlight handles GET /api/v1/flights/:id
func (c *Controller) GetFlight(ctx *gin.Context) {
	flightID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid flight ID", nil, nil)
		return
	}

	flight, err := c.service.GetFlightByID(ctx.Request.Context(), flightID)
	if err != nil {
		if errors.Is(err, ErrFlightNotFound) {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Flight not found", nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to fetch flight", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Flight retrieved successfully",
		gin.H{"flight": flight}, nil)
}
