package bookings

import "github.com/gin-gonic/gin"

// SetupBookingRoutes mounts booking endpoints. All of them require auth,
// which is applied by the caller on the group.
func SetupBookingRoutes(rg *gin.RouterGroup, controller *Controller) {
	bookings := rg.Group("/bookings")
	{
		bookings.POST("", controller.CreateBooking)
		bookings.GET("", controller.GetBookings)
		bookings.GET("/:id", controller.GetBooking)
		bookings.POST("/:id/cancel", controller.CancelBooking)
	}
}
