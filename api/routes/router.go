// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"alpineair/internal/bookings"
	"alpineair/internal/flights"
	"alpineair/internal/identity"
	"alpineair/internal/preferences"
	routedomain "alpineair/internal/routes"
	"alpineair/internal/shared/config"
	"alpineair/internal/shared/database"
	"alpineair/internal/shared/middleware"
	"alpineair/internal/users"
	"alpineair/pkg/cache"
	"alpineair/pkg/logger"
)

// Router holds all route dependencies
type Router struct {
	config    *config.Config
	db        *database.DB
	cache     cache.Service
	verifier  identity.Verifier
	publisher bookings.EventPublisher
	logger    *logger.Logger
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, cacheService cache.Service, verifier identity.Verifier, publisher bookings.EventPublisher, log *logger.Logger) *Router {
	return &Router{
		config:    cfg,
		db:        db,
		cache:     cacheService,
		verifier:  verifier,
		publisher: publisher,
		logger:    log,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	userRepo := users.NewRepository(r.db.GetPostgreSQL())
	requireAuth := middleware.RequireAuth(r.verifier, userRepo)

	api := engine.Group(r.config.GetAPIBasePath())
	{
		routeRepo := r.setupRouteRoutes(api)
		flightRepo := r.setupFlightRoutes(api)
		r.setupBookingRoutes(api, flightRepo, requireAuth)
		r.setupPreferenceRoutes(api, routeRepo, requireAuth)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "alpineair-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "alpineair-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})
}

// setupRouteRoutes configures route reference data endpoints
func (r *Router) setupRouteRoutes(rg *gin.RouterGroup) routedomain.Repository {
	routeRepo := routedomain.NewRepository(r.db.GetPostgreSQL())
	routeService := routedomain.NewService(routeRepo, r.cache)
	routeController := routedomain.NewController(routeService)

	routedomain.SetupRouteRoutes(rg, routeController)
	return routeRepo
}

// setupFlightRoutes configures flight search endpoints
func (r *Router) setupFlightRoutes(rg *gin.RouterGroup) flights.Repository {
	flightRepo := flights.NewRepository(r.db.GetPostgreSQL())
	flightService := flights.NewService(flightRepo, r.cache)
	flightController := flights.NewController(flightService)

	flights.SetupFlightRoutes(rg, flightController)
	return flightRepo
}

// setupBookingRoutes configures booking endpoints behind auth
func (r *Router) setupBookingRoutes(rg *gin.RouterGroup, flightRepo flights.Repository, requireAuth gin.HandlerFunc) {
	bookingRepo := bookings.NewRepository(r.db.GetPostgreSQL())
	bookingService := bookings.NewService(bookingRepo, flightRepo, r.publisher, r.logger)
	bookingController := bookings.NewController(bookingService)

	authed := rg.Group("")
	authed.Use(requireAuth)
	bookings.SetupBookingRoutes(authed, bookingController)
}

// setupPreferenceRoutes configures preference endpoints behind auth
func (r *Router) setupPreferenceRoutes(rg *gin.RouterGroup, routeRepo routedomain.Repository, requireAuth gin.HandlerFunc) {
	prefRepo := preferences.NewRepository(r.db.GetPostgreSQL())
	prefService := preferences.NewService(prefRepo, routeRepo)
	prefController := preferences.NewController(prefService)

	authed := rg.Group("")
	authed.Use(requireAuth)
	preferences.SetupPreferenceRoutes(authed, prefController)
}
