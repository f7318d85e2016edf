package bookings

import (
	"errors"
	"net/http"

	"alpineair/internal/shared/middleware"
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

// CreateBooking handles POST /api/v1/bookings
func (c *Controller) CreateBooking(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req CreateBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid booking request",
			nil, gin.H{"details": err.Error()})
		return
	}

	booking, err := c.service.CreateBooking(ctx.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidBookingInput):
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid booking request",
				nil, gin.H{"details": err.Error()})
		case errors.Is(err, ErrFlightNotFound):
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Flight not found", nil, nil)
		case errors.Is(err, ErrFlightNotBookable):
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Flight is not open for booking", nil, nil)
		case errors.Is(err, ErrInsufficientSeats):
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Not enough seats available",
				nil, gin.H{"code": "INSUFFICIENT_SEATS"})
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to create booking", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Booking created successfully",
		gin.H{"booking": booking}, nil)
}

// GetBookings handles GET /api/v1/bookings
func (c *Controller) GetBookings(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	bookings, err := c.service.GetUserBookings(ctx.Request.Context(), userID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to fetch bookings", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Bookings retrieved successfully",
		gin.H{"bookings": bookings}, nil)
}

// GetBooking handles GET /api/v1/bookings/:id
func (c *Controller) GetBooking(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	bookingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid booking ID", nil, nil)
		return
	}

	booking, err := c.service.GetBooking(ctx.Request.Context(), userID, bookingID)
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Booking not found", nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to fetch booking", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking retrieved successfully",
		gin.H{"booking": booking}, nil)
}

// CancelBooking handles POST /api/v1/bookings/:id/cancel
func (c *Controller) CancelBooking(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	bookingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid booking ID", nil, nil)
		return
	}

	booking, err := c.service.CancelBooking(ctx.Request.Context(), userID, bookingID)
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Booking not found", nil, nil)
		case errors.Is(err, ErrBookingNotCancellable):
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Booking cannot be cancelled", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to cancel booking", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking cancelled successfully",
		gin.H{"booking": booking}, nil)
}

func currentUserID(ctx *gin.Context) (uuid.UUID, bool) {
	raw, exists := ctx.Get(middleware.ContextUserID)
	if !exists {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "Authentication required", nil, nil)
		return uuid.Nil, false
	}
	str, ok := raw.(string)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "Authentication required", nil, nil)
		return uuid.Nil, false
	}
	userID, err := uuid.Parse(str)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "Authentication required", nil, nil)
		return uuid.Nil, false
	}
	return userID, true
}
