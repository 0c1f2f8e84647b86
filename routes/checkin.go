package routes

import (
	"fitquest/controllers"

	"github.com/gin-gonic/gin"
)

func CheckInRouteHandler(c *gin.Context) {
	controllers.CheckIn(c)
}

func GetBadgeStatusRouteHandler(c *gin.Context) {
	controllers.GetBadgeStatus(c)
}
