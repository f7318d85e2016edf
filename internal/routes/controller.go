package routes

import (
	"errors"
	"net/http"

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

// GetRoutes handles GET /api/v1/routes
func (c *Controller) GetRoutes(ctx *gin.Context) {
	routes, err := c.service.GetAllRoutes(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to fetch routes", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Routes retrieved successfully",
		gin.H{"routes": routes}, nil)
}

// GetPopularRoutes handles GET /api/v1/routes/popular
func (c *Controller) GetPopularRoutes(ctx *gin.Context) {
	routes, err := c.service.GetPopularRoutes(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to fetch popular routes", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Popular routes retrieved successfully",
		gin.H{"routes": routes}, nil)
}

// GetRouteSuggestions handles GET /api/v1/routes/suggestions?query=
func (c *Controller) GetRouteSuggestions(ctx *gin.Context) {
	routes, err := c.service.GetRouteSuggestions(ctx.Request.Context(), ctx.Query("query"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to fetch route suggestions", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Route suggestions retrieved successfully",
		gin.H{"routes": routes}, nil)
}

// GetRoute handles GET /api/v1/routes/:id
func (c *Controller) GetRoute(ctx *gin.Context) {
	routeID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid route ID", nil, nil)
		return
	}

	route, err := c.service.GetRouteByID(ctx.Request.Context(), routeID)
	if err != nil {
		if errors.Is(err, ErrRouteNotFound) {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Route not found", nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to fetch route", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Route retrieved successfully",
		gin.H{"route": route}, nil)
}
