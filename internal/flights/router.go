package flights

import (
	"github.com/gin-gonic/gin"
)

// SetupFlightRoutes configures flight search and lookup endpoints.
// Search is public: unauthenticated visitors can browse availability.
func SetupFlightRoutes(rg *gin.RouterGroup, controller *Controller) {
	search := rg.Group("/search")
	{
		search.GET("/flights", controller.SearchFlights) // GET /api/v1/search/flights?origin=JFK&destination=ZRH&departureDate=2024-06-01&passengers=2
	}

	flights := rg.Group("/flights")
	{
		flights.GET("/:id", controller.GetFlight) // GET /api/v1/flights/:id
	}
}
