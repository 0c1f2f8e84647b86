package routes

import (
	"fitquest/controllers"

	"github.com/gin-gonic/gin"
)

func GetProfileRouteHandler(ctx *gin.Context) {
	controllers.GetProfile(ctx)
}

func UpdateProfileRouteHandler(ctx *gin.Context) {
	controllers.UpdateProfile(ctx)
}

func SetBuddyRouteHandler(ctx *gin.Context) {
	controllers.SetBuddy(ctx)
}
