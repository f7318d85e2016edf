package preferences

import "github.com/gin-gonic/gin"

// SetupPreferenceRoutes mounts preference endpoints. Auth is applied by the
// caller on the group.
func SetupPreferenceRoutes(rg *gin.RouterGroup, controller *Controller) {
	prefs := rg.Group("/preferences")
	{
		prefs.GET("", controller.GetPreferences)
		prefs.PUT("", controller.SavePreference)
	}
}
