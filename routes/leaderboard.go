package routes

import (
	"fitquest/controllers"

	"github.com/gin-gonic/gin"
)

func GetDuoLeaderboardRouteHandler(c *gin.Context) {
	controllers.GetDuoLeaderboard(c)
}
