package routes

import (
	"github.com/gin-gonic/gin"
)

// SetupRouteRoutes configures route reference data endpoints. All public.
func SetupRouteRoutes(rg *gin.RouterGroup, controller *Controller) {
	routes := rg.Group("/routes")
	{
		routes.GET("", controller.GetRoutes)                        // GET /api/v1/routes
		routes.GET("/popular", controller.GetPopularRoutes)         // GET /api/v1/routes/popular
		routes.GET("/suggestions", controller.GetRouteSuggestions)  // GET /api/v1/routes/suggestions?query=zrh
		routes.GET("/:id", controller.GetRoute)                     // GET /api/v1/routes/:id
	}
}
