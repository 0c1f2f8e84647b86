package routes

import (
	"fitquest/controllers"

	"github.com/gin-gonic/gin"
)

// SetupNotificationRoutes wires the inbox endpoints onto the auth group.
func SetupNotificationRoutes(rg *gin.RouterGroup) {
	rg.GET("/notifications", controllers.ListNotifications)
	rg.POST("/notifications/read", controllers.MarkNotificationsRead)
}
