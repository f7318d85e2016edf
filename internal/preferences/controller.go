package preferences

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

// GetPreferences handles GET /api/v1/preferences
func (c *Controller) GetPreferences(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	prefs, err := c.service.GetUserPreferences(ctx.Request.Context(), userID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to fetch preferences", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Preferences retrieved successfully",
		gin.H{"preferences": prefs}, nil)
}

// SavePreference handles PUT /api/v1/preferences
func (c *Controller) SavePreference(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req SavePreferenceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid preference request",
			nil, gin.H{"details": err.Error()})
		return
	}

	pref, err := c.service.SavePreference(ctx.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidPreferenceInput):
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid preference request",
				nil, gin.H{"details": err.Error()})
		case errors.Is(err, ErrRouteNotFound):
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Route not found", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to save preference", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Preference saved successfully",
		gin.H{"preference": pref}, nil)
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
