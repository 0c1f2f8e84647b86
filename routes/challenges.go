package routes

import (
	"fitquest/controllers"

	"github.com/gin-gonic/gin"
)

// SetupChallengeRoutes wires the challenge endpoints onto the auth group.
func SetupChallengeRoutes(rg *gin.RouterGroup) {
	rg.GET("/challenges", controllers.ListChallenges)
	rg.POST("/challenges/:id/join", controllers.JoinChallenge)
	rg.POST("/challenges/:id/leave", controllers.LeaveChallenge)
	rg.GET("/challenges/:id/progress", controllers.GetChallengeProgress)
	rg.POST("/challenges/:id/proof", controllers.SubmitProof)
}
