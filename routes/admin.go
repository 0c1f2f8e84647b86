package routes

import (
	"fitquest/controllers"

	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes wires the admin endpoints onto the admin group.
func SetupAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/admin/challenges", controllers.CreateChallenge)
	rg.POST("/admin/challenges/:id/resolve-proof", controllers.ResolveProof)
}
